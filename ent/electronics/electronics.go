// Code generated by ent, DO NOT EDIT.

package electronics

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the electronics type in the database.
	Label = "electronics"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldLocation holds the string denoting the location field in the database.
	FieldLocation = "location"
	// FieldPrice holds the string denoting the price field in the database.
	FieldPrice = "price"
	// EdgeSatellite holds the string denoting the satellite edge name in mutations.
	EdgeSatellite = "satellite"
	// Table holds the table name of the electronics in the database.
	Table = "electronics"
	// SatelliteTable is the table that holds the satellite relation/edge.
	SatelliteTable = "electronics"
	// SatelliteInverseTable is the table name for the Satellite entity.
	// It exists in this package in order to avoid circular dependency with the "satellite" package.
	SatelliteInverseTable = "satellites"
	// SatelliteColumn is the table column denoting the satellite relation/edge.
	SatelliteColumn = "satellite_electronics"
)

// Columns holds all SQL columns for electronics fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldModel,
	FieldType,
	FieldLocation,
	FieldPrice,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "electronics"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"satellite_electronics",
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
	// ModelValidator is a validator for the "model" field. It is called by the builders before save.
	ModelValidator func(string) error
	// TypeValidator is a validator for the "type" field. It is called by the builders before save.
	TypeValidator func(string) error
	// LocationValidator is a validator for the "location" field. It is called by the builders before save.
	LocationValidator func(string) error
	// PriceValidator is a validator for the "price" field. It is called by the builders before save.
	PriceValidator func(float64) error
)

// OrderOption defines the ordering options for the Electronics queries.
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

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByLocation orders the results by the location field.
func ByLocation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocation, opts...).ToFunc()
}

// ByPrice orders the results by the price field.
func ByPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrice, opts...).ToFunc()
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
