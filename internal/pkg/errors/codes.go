package errors

// Error code constants. The contract surfaces a stable machine-readable code
// with every failure so clients never have to match on message strings.

// Validation error codes (rejected before any write).
const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeNegativePrice    = "NEGATIVE_PRICE"
	CodeInvalidDate      = "INVALID_DATE"
)

// Precondition error codes (referenced parent missing or not ready).
const (
	CodeTechSpecRequired = "TECH_SPEC_REQUIRED"
)

// Not-found error codes.
const (
	CodeSatelliteNotFound   = "SATELLITE_NOT_FOUND"
	CodeElectronicsNotFound = "ELECTRONICS_NOT_FOUND"
	CodeMaterialNotFound    = "MATERIAL_NOT_FOUND"
	CodeStandNotFound       = "STAND_NOT_FOUND"
	CodeSensorNotFound      = "SENSOR_NOT_FOUND"
	CodeStageNotFound       = "STAGE_NOT_FOUND"
)

// Contract / transport error codes.
const (
	CodeUnknownOperation = "UNKNOWN_OPERATION"
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeInvalidCreds     = "INVALID_CREDENTIALS"
)

// Store error codes (constraint violations, connectivity).
const (
	CodeStoreError    = "STORE_ERROR"
	CodeInternalError = "INTERNAL_ERROR"
)

// Convenience constructors using predefined codes.

// ErrNegativePrice rejects a negative electronics price.
func ErrNegativePrice() *AppError {
	return BadRequest(CodeNegativePrice, "electronics price must not be negative")
}

// ErrTechSpecRequired reports the missing technical-specification precondition.
func ErrTechSpecRequired() *AppError {
	return UnprocessableEntity(CodeTechSpecRequired, "satellite has no technical specification")
}

// ErrUnknownOperation reports an operation name outside the contract.
func ErrUnknownOperation(name string) *AppError {
	return BadRequest(CodeUnknownOperation, "unknown operation: "+name)
}
