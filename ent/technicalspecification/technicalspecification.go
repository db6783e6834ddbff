// Code generated by ent, DO NOT EDIT.

package technicalspecification

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the technicalspecification type in the database.
	Label = "technical_specification"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// EdgeSatellite holds the string denoting the satellite edge name in mutations.
	EdgeSatellite = "satellite"
	// EdgeStands holds the string denoting the stands edge name in mutations.
	EdgeStands = "stands"
	// EdgeCalendarStages holds the string denoting the calendar_stages edge name in mutations.
	EdgeCalendarStages = "calendar_stages"
	// Table holds the table name of the technicalspecification in the database.
	Table = "technical_specifications"
	// SatelliteTable is the table that holds the satellite relation/edge.
	SatelliteTable = "technical_specifications"
	// SatelliteInverseTable is the table name for the Satellite entity.
	// It exists in this package in order to avoid circular dependency with the "satellite" package.
	SatelliteInverseTable = "satellites"
	// SatelliteColumn is the table column denoting the satellite relation/edge.
	SatelliteColumn = "satellite_technical_specifications"
	// StandsTable is the table that holds the stands relation/edge.
	StandsTable = "stands"
	// StandsInverseTable is the table name for the Stand entity.
	// It exists in this package in order to avoid circular dependency with the "stand" package.
	StandsInverseTable = "stands"
	// StandsColumn is the table column denoting the stands relation/edge.
	StandsColumn = "technical_specification_stands"
	// CalendarStagesTable is the table that holds the calendar_stages relation/edge.
	CalendarStagesTable = "calendar_stages"
	// CalendarStagesInverseTable is the table name for the CalendarStage entity.
	// It exists in this package in order to avoid circular dependency with the "calendarstage" package.
	CalendarStagesInverseTable = "calendar_stages"
	// CalendarStagesColumn is the table column denoting the calendar_stages relation/edge.
	CalendarStagesColumn = "technical_specification_calendar_stages"
)

// Columns holds all SQL columns for technicalspecification fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDescription,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "technical_specifications"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"satellite_technical_specifications",
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
)

// OrderOption defines the ordering options for the TechnicalSpecification queries.
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

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// BySatelliteField orders the results by satellite field.
func BySatelliteField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSatelliteStep(), sql.OrderByField(field, opts...))
	}
}

// ByStandsCount orders the results by stands count.
func ByStandsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStandsStep(), opts...)
	}
}

// ByStands orders the results by stands terms.
func ByStands(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStandsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCalendarStagesCount orders the results by calendar_stages count.
func ByCalendarStagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCalendarStagesStep(), opts...)
	}
}

// ByCalendarStages orders the results by calendar_stages terms.
func ByCalendarStages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCalendarStagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSatelliteStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SatelliteInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SatelliteTable, SatelliteColumn),
	)
}
func newStandsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StandsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StandsTable, StandsColumn),
	)
}
func newCalendarStagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CalendarStagesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CalendarStagesTable, CalendarStagesColumn),
	)
}
