// Code generated by ent, DO NOT EDIT.

package satelliteopcharacteristic

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the satelliteopcharacteristic type in the database.
	Label = "satellite_op_characteristic"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldParameterName holds the string denoting the parameter_name field in the database.
	FieldParameterName = "parameter_name"
	// FieldValue holds the string denoting the value field in the database.
	FieldValue = "value"
	// FieldUnit holds the string denoting the unit field in the database.
	FieldUnit = "unit"
	// EdgeSatellite holds the string denoting the satellite edge name in mutations.
	EdgeSatellite = "satellite"
	// Table holds the table name of the satelliteopcharacteristic in the database.
	Table = "satellite_op_characteristics"
	// SatelliteTable is the table that holds the satellite relation/edge.
	SatelliteTable = "satellite_op_characteristics"
	// SatelliteInverseTable is the table name for the Satellite entity.
	// It exists in this package in order to avoid circular dependency with the "satellite" package.
	SatelliteInverseTable = "satellites"
	// SatelliteColumn is the table column denoting the satellite relation/edge.
	SatelliteColumn = "satellite_op_characteristics"
)

// Columns holds all SQL columns for satelliteopcharacteristic fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldParameterName,
	FieldValue,
	FieldUnit,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "satellite_op_characteristics"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"satellite_op_characteristics",
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
	// ParameterNameValidator is a validator for the "parameter_name" field. It is called by the builders before save.
	ParameterNameValidator func(string) error
	// UnitValidator is a validator for the "unit" field. It is called by the builders before save.
	UnitValidator func(string) error
)

// OrderOption defines the ordering options for the SatelliteOpCharacteristic queries.
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

// ByParameterName orders the results by the parameter_name field.
func ByParameterName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParameterName, opts...).ToFunc()
}

// ByValue orders the results by the value field.
func ByValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValue, opts...).ToFunc()
}

// ByUnit orders the results by the unit field.
func ByUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnit, opts...).ToFunc()
}

// BySatelliteField orders the results by satellite field.
func BySatelliteField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSatelliteStep(), sql.OrderByField(field, opts...))
	}
}
func newSatelliteStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SatelliteInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SatelliteTable, SatelliteColumn),
	)
}
