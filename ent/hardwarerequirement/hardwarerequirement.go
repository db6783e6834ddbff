// Code generated by ent, DO NOT EDIT.

package hardwarerequirement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the hardwarerequirement type in the database.
	Label = "hardware_requirement"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldValue holds the string denoting the value field in the database.
	FieldValue = "value"
	// FieldUnit holds the string denoting the unit field in the database.
	FieldUnit = "unit"
	// EdgeStand holds the string denoting the stand edge name in mutations.
	EdgeStand = "stand"
	// Table holds the table name of the hardwarerequirement in the database.
	Table = "hardware_requirements"
	// StandTable is the table that holds the stand relation/edge.
	StandTable = "hardware_requirements"
	// StandInverseTable is the table name for the Stand entity.
	// It exists in this package in order to avoid circular dependency with the "stand" package.
	StandInverseTable = "stands"
	// StandColumn is the table column denoting the stand relation/edge.
	StandColumn = "stand_hardware_requirements"
)

// Columns holds all SQL columns for hardwarerequirement fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldValue,
	FieldUnit,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "hardware_requirements"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"stand_hardware_requirements",
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
	// UnitValidator is a validator for the "unit" field. It is called by the builders before save.
	UnitValidator func(string) error
)

// OrderOption defines the ordering options for the HardwareRequirement queries.
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

// ByValue orders the results by the value field.
func ByValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValue, opts...).ToFunc()
}

// ByUnit orders the results by the unit field.
func ByUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnit, opts...).ToFunc()
}

// ByStandField orders the results by stand field.
func ByStandField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStandStep(), sql.OrderByField(field, opts...))
	}
}
func newStandStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StandInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, StandTable, StandColumn),
	)
}
