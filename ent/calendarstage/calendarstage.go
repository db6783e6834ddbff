// Code generated by ent, DO NOT EDIT.

package calendarstage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the calendarstage type in the database.
	Label = "calendar_stage"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldNameOfStage holds the string denoting the name_of_stage field in the database.
	FieldNameOfStage = "name_of_stage"
	// FieldTimeOfFrame holds the string denoting the time_of_frame field in the database.
	FieldTimeOfFrame = "time_of_frame"
	// FieldDuration holds the string denoting the duration field in the database.
	FieldDuration = "duration"
	// EdgeSatellite holds the string denoting the satellite edge name in mutations.
	EdgeSatellite = "satellite"
	// EdgeTechnicalSpecification holds the string denoting the technical_specification edge name in mutations.
	EdgeTechnicalSpecification = "technical_specification"
	// Table holds the table name of the calendarstage in the database.
	Table = "calendar_stages"
	// SatelliteTable is the table that holds the satellite relation/edge.
	SatelliteTable = "calendar_stages"
	// SatelliteInverseTable is the table name for the Satellite entity.
	// It exists in this package in order to avoid circular dependency with the "satellite" package.
	SatelliteInverseTable = "satellites"
	// SatelliteColumn is the table column denoting the satellite relation/edge.
	SatelliteColumn = "satellite_calendar_stages"
	// TechnicalSpecificationTable is the table that holds the technical_specification relation/edge.
	TechnicalSpecificationTable = "calendar_stages"
	// TechnicalSpecificationInverseTable is the table name for the TechnicalSpecification entity.
	// It exists in this package in order to avoid circular dependency with the "technicalspecification" package.
	TechnicalSpecificationInverseTable = "technical_specifications"
	// TechnicalSpecificationColumn is the table column denoting the technical_specification relation/edge.
	TechnicalSpecificationColumn = "technical_specification_calendar_stages"
)

// Columns holds all SQL columns for calendarstage fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldNameOfStage,
	FieldTimeOfFrame,
	FieldDuration,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "calendar_stages"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"satellite_calendar_stages",
	"technical_specification_calendar_stages",
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
	// NameOfStageValidator is a validator for the "name_of_stage" field. It is called by the builders before save.
	NameOfStageValidator func(string) error
	// DurationValidator is a validator for the "duration" field. It is called by the builders before save.
	DurationValidator func(int) error
)

// OrderOption defines the ordering options for the CalendarStage queries.
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

// ByNameOfStage orders the results by the name_of_stage field.
func ByNameOfStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNameOfStage, opts...).ToFunc()
}

// ByTimeOfFrame orders the results by the time_of_frame field.
func ByTimeOfFrame(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeOfFrame, opts...).ToFunc()
}

// ByDuration orders the results by the duration field.
func ByDuration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDuration, opts...).ToFunc()
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
