package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppErrorError(t *testing.T) {
	t.Parallel()

	plain := New(CodeSatelliteNotFound, "satellite not found", http.StatusNotFound)
	if got, want := plain.Error(), "SATELLITE_NOT_FOUND: satellite not found"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}

	wrapped := Wrap(errors.New("conn refused"), CodeStoreError, "query failed", http.StatusInternalServerError)
	if got, want := wrapped.Error(), "STORE_ERROR: query failed: conn refused"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestUnwrapSupportsErrorsIs(t *testing.T) {
	t.Parallel()

	base := errors.New("row missing")
	appErr := Wrap(base, CodeStageNotFound, "stage not found", http.StatusNotFound)

	if !errors.Is(appErr, base) {
		t.Fatal("errors.Is should reach the wrapped error")
	}
}

func TestIsAppError(t *testing.T) {
	t.Parallel()

	appErr := ErrTechSpecRequired()
	wrapped := fmt.Errorf("add stand: %w", appErr)

	got, ok := IsAppError(wrapped)
	if !ok {
		t.Fatal("IsAppError() = false, want true")
	}
	if got.Code != CodeTechSpecRequired {
		t.Fatalf("Code = %q, want %q", got.Code, CodeTechSpecRequired)
	}
	if got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("HTTPStatus = %d, want %d", got.HTTPStatus, http.StatusUnprocessableEntity)
	}

	if _, ok := IsAppError(errors.New("plain")); ok {
		t.Fatal("IsAppError(plain) = true, want false")
	}
}

func TestConstructorsCarryCategorySentinels(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  *AppError
		want error
	}{
		{NotFound(CodeSatelliteNotFound, "satellite not found"), ErrNotFound},
		{BadRequest(CodeValidationFailed, "bad input"), ErrBadRequest},
		{Unauthorized(CodeUnauthorized, "no token"), ErrUnauthorized},
		{Forbidden(CodeForbidden, "role denied"), ErrForbidden},
		{UnprocessableEntity(CodeTechSpecRequired, "no spec"), ErrBadRequest},
		{Internal(CodeInternalError, "boom"), ErrInternal},
		{ErrNegativePrice(), ErrBadRequest},
		{ErrTechSpecRequired(), ErrBadRequest},
		{ErrUnknownOperation("frobnicate"), ErrBadRequest},
	}
	for _, tc := range cases {
		if !errors.Is(tc.err, tc.want) {
			t.Fatalf("%s: errors.Is(%v, %v) = false", tc.err.Code, tc.err, tc.want)
		}
	}

	// Categories stay distinct.
	if errors.Is(NotFound(CodeSensorNotFound, "sensor not found"), ErrBadRequest) {
		t.Fatal("not-found error matched the bad-request sentinel")
	}
}

func TestConstructorStatuses(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  *AppError
		want int
	}{
		{NotFound(CodeSensorNotFound, "sensor not found"), http.StatusNotFound},
		{BadRequest(CodeValidationFailed, "bad input"), http.StatusBadRequest},
		{Unauthorized(CodeUnauthorized, "no token"), http.StatusUnauthorized},
		{Forbidden(CodeForbidden, "role denied"), http.StatusForbidden},
		{UnprocessableEntity(CodeTechSpecRequired, "no spec"), http.StatusUnprocessableEntity},
		{Internal(CodeInternalError, "boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if tc.err.HTTPStatus != tc.want {
			t.Fatalf("%s: HTTPStatus = %d, want %d", tc.err.Code, tc.err.HTTPStatus, tc.want)
		}
	}
}
