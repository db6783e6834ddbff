// Code generated by ent, DO NOT EDIT.

package material

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the material type in the database.
	Label = "material"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldTypeOfMaterial holds the string denoting the type_of_material field in the database.
	FieldTypeOfMaterial = "type_of_material"
	// FieldAmount holds the string denoting the amount field in the database.
	FieldAmount = "amount"
	// FieldUnit holds the string denoting the unit field in the database.
	FieldUnit = "unit"
	// EdgeFunctionalCharacteristics holds the string denoting the functional_characteristics edge name in mutations.
	EdgeFunctionalCharacteristics = "functional_characteristics"
	// EdgeOperationalCharacteristics holds the string denoting the operational_characteristics edge name in mutations.
	EdgeOperationalCharacteristics = "operational_characteristics"
	// Table holds the table name of the material in the database.
	Table = "materials"
	// FunctionalCharacteristicsTable is the table that holds the functional_characteristics relation/edge.
	FunctionalCharacteristicsTable = "material_functional_characteristics"
	// FunctionalCharacteristicsInverseTable is the table name for the MaterialFunctionalCharacteristic entity.
	// It exists in this package in order to avoid circular dependency with the "materialfunctionalcharacteristic" package.
	FunctionalCharacteristicsInverseTable = "material_functional_characteristics"
	// FunctionalCharacteristicsColumn is the table column denoting the functional_characteristics relation/edge.
	FunctionalCharacteristicsColumn = "material_functional_characteristics"
	// OperationalCharacteristicsTable is the table that holds the operational_characteristics relation/edge.
	OperationalCharacteristicsTable = "material_operational_characteristics"
	// OperationalCharacteristicsInverseTable is the table name for the MaterialOperationalCharacteristic entity.
	// It exists in this package in order to avoid circular dependency with the "materialoperationalcharacteristic" package.
	OperationalCharacteristicsInverseTable = "material_operational_characteristics"
	// OperationalCharacteristicsColumn is the table column denoting the operational_characteristics relation/edge.
	OperationalCharacteristicsColumn = "material_operational_characteristics"
)

// Columns holds all SQL columns for material fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldTypeOfMaterial,
	FieldAmount,
	FieldUnit,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
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
	// TypeOfMaterialValidator is a validator for the "type_of_material" field. It is called by the builders before save.
	TypeOfMaterialValidator func(string) error
	// UnitValidator is a validator for the "unit" field. It is called by the builders before save.
	UnitValidator func(string) error
)

// OrderOption defines the ordering options for the Material queries.
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

// ByTypeOfMaterial orders the results by the type_of_material field.
func ByTypeOfMaterial(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTypeOfMaterial, opts...).ToFunc()
}

// ByAmount orders the results by the amount field.
func ByAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmount, opts...).ToFunc()
}

// ByUnit orders the results by the unit field.
func ByUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnit, opts...).ToFunc()
}

// ByFunctionalCharacteristicsCount orders the results by functional_characteristics count.
func ByFunctionalCharacteristicsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFunctionalCharacteristicsStep(), opts...)
	}
}

// ByFunctionalCharacteristics orders the results by functional_characteristics terms.
func ByFunctionalCharacteristics(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFunctionalCharacteristicsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByOperationalCharacteristicsCount orders the results by operational_characteristics count.
func ByOperationalCharacteristicsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newOperationalCharacteristicsStep(), opts...)
	}
}

// ByOperationalCharacteristics orders the results by operational_characteristics terms.
func ByOperationalCharacteristics(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOperationalCharacteristicsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newFunctionalCharacteristicsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FunctionalCharacteristicsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FunctionalCharacteristicsTable, FunctionalCharacteristicsColumn),
	)
}
func newOperationalCharacteristicsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OperationalCharacteristicsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, OperationalCharacteristicsTable, OperationalCharacteristicsColumn),
	)
}
