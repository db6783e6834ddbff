// Code generated by ent, DO NOT EDIT.

package stand

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the stand type in the database.
	Label = "stand"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldNameOfStand holds the string denoting the name_of_stand field in the database.
	FieldNameOfStand = "name_of_stand"
	// FieldTypeOfStand holds the string denoting the type_of_stand field in the database.
	FieldTypeOfStand = "type_of_stand"
	// EdgeSatellite holds the string denoting the satellite edge name in mutations.
	EdgeSatellite = "satellite"
	// EdgeTechnicalSpecification holds the string denoting the technical_specification edge name in mutations.
	EdgeTechnicalSpecification = "technical_specification"
	// EdgeSensors holds the string denoting the sensors edge name in mutations.
	EdgeSensors = "sensors"
	// EdgeHardwareRequirements holds the string denoting the hardware_requirements edge name in mutations.
	EdgeHardwareRequirements = "hardware_requirements"
	// EdgePhysicalTestData holds the string denoting the physical_test_data edge name in mutations.
	EdgePhysicalTestData = "physical_test_data"
	// EdgeMaterialOpCharacteristics holds the string denoting the material_op_characteristics edge name in mutations.
	EdgeMaterialOpCharacteristics = "material_op_characteristics"
	// Table holds the table name of the stand in the database.
	Table = "stands"
	// SatelliteTable is the table that holds the satellite relation/edge.
	SatelliteTable = "stands"
	// SatelliteInverseTable is the table name for the Satellite entity.
	// It exists in this package in order to avoid circular dependency with the "satellite" package.
	SatelliteInverseTable = "satellites"
	// SatelliteColumn is the table column denoting the satellite relation/edge.
	SatelliteColumn = "satellite_stands"
	// TechnicalSpecificationTable is the table that holds the technical_specification relation/edge.
	TechnicalSpecificationTable = "stands"
	// TechnicalSpecificationInverseTable is the table name for the TechnicalSpecification entity.
	// It exists in this package in order to avoid circular dependency with the "technicalspecification" package.
	TechnicalSpecificationInverseTable = "technical_specifications"
	// TechnicalSpecificationColumn is the table column denoting the technical_specification relation/edge.
	TechnicalSpecificationColumn = "technical_specification_stands"
	// SensorsTable is the table that holds the sensors relation/edge.
	SensorsTable = "sensors"
	// SensorsInverseTable is the table name for the Sensor entity.
	// It exists in this package in order to avoid circular dependency with the "sensor" package.
	SensorsInverseTable = "sensors"
	// SensorsColumn is the table column denoting the sensors relation/edge.
	SensorsColumn = "stand_sensors"
	// HardwareRequirementsTable is the table that holds the hardware_requirements relation/edge.
	HardwareRequirementsTable = "hardware_requirements"
	// HardwareRequirementsInverseTable is the table name for the HardwareRequirement entity.
	// It exists in this package in order to avoid circular dependency with the "hardwarerequirement" package.
	HardwareRequirementsInverseTable = "hardware_requirements"
	// HardwareRequirementsColumn is the table column denoting the hardware_requirements relation/edge.
	HardwareRequirementsColumn = "stand_hardware_requirements"
	// PhysicalTestDataTable is the table that holds the physical_test_data relation/edge.
	PhysicalTestDataTable = "physical_test_data"
	// PhysicalTestDataInverseTable is the table name for the PhysicalTestData entity.
	// It exists in this package in order to avoid circular dependency with the "physicaltestdata" package.
	PhysicalTestDataInverseTable = "physical_test_data"
	// PhysicalTestDataColumn is the table column denoting the physical_test_data relation/edge.
	PhysicalTestDataColumn = "stand_physical_test_data"
	// MaterialOpCharacteristicsTable is the table that holds the material_op_characteristics relation/edge.
	MaterialOpCharacteristicsTable = "material_operational_characteristics"
	// MaterialOpCharacteristicsInverseTable is the table name for the MaterialOperationalCharacteristic entity.
	// It exists in this package in order to avoid circular dependency with the "materialoperationalcharacteristic" package.
	MaterialOpCharacteristicsInverseTable = "material_operational_characteristics"
	// MaterialOpCharacteristicsColumn is the table column denoting the material_op_characteristics relation/edge.
	MaterialOpCharacteristicsColumn = "stand_material_op_characteristics"
)

// Columns holds all SQL columns for stand fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldNameOfStand,
	FieldTypeOfStand,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "stands"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"satellite_stands",
	"technical_specification_stands",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// NameOfStandValidator is a validator for the "name_of_stand" field. It is called by the builders before save.
	NameOfStandValidator func(string) error
	// TypeOfStandValidator is a validator for the "type_of_stand" field. It is called by the builders before save.
	TypeOfStandValidator func(string) error
)

// OrderOption defines the ordering options for the Stand queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByNameOfStand orders the results by the name_of_stand field.
func ByNameOfStand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNameOfStand, opts...).ToFunc()
}

// ByTypeOfStand orders the results by the type_of_stand field.
func ByTypeOfStand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTypeOfStand, opts...).ToFunc()
}

// BySatelliteField orders the results by satellite field.
func BySatelliteField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSatelliteStep(), sql.OrderByField(field, opts...))
	}
}

// ByTechnicalSpecificationField orders the results by technical_specification field.
func ByTechnicalSpecificationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTechnicalSpecificationStep(), sql.OrderByField(field, opts...))
	}
}

// BySensorsCount orders the results by sensors count.
func BySensorsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSensorsStep(), opts...)
	}
}

// BySensors orders the results by sensors terms.
func BySensors(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSensorsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByHardwareRequirementsCount orders the results by hardware_requirements count.
func ByHardwareRequirementsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newHardwareRequirementsStep(), opts...)
	}
}

// ByHardwareRequirements orders the results by hardware_requirements terms.
func ByHardwareRequirements(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHardwareRequirementsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPhysicalTestDataCount orders the results by physical_test_data count.
func ByPhysicalTestDataCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPhysicalTestDataStep(), opts...)
	}
}

// ByPhysicalTestData orders the results by physical_test_data terms.
func ByPhysicalTestData(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPhysicalTestDataStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMaterialOpCharacteristicsCount orders the results by material_op_characteristics count.
func ByMaterialOpCharacteristicsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMaterialOpCharacteristicsStep(), opts...)
	}
}

// ByMaterialOpCharacteristics orders the results by material_op_characteristics terms.
func ByMaterialOpCharacteristics(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMaterialOpCharacteristicsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSatelliteStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SatelliteInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SatelliteTable, SatelliteColumn),
	)
}
func newTechnicalSpecificationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TechnicalSpecificationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TechnicalSpecificationTable, TechnicalSpecificationColumn),
	)
}
func newSensorsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SensorsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SensorsTable, SensorsColumn),
	)
}
func newHardwareRequirementsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HardwareRequirementsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, HardwareRequirementsTable, HardwareRequirementsColumn),
	)
}
func newPhysicalTestDataStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PhysicalTestDataInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PhysicalTestDataTable, PhysicalTestDataColumn),
	)
}
func newMaterialOpCharacteristicsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MaterialOpCharacteristicsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MaterialOpCharacteristicsTable, MaterialOpCharacteristicsColumn),
	)
}
