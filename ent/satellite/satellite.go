// Code generated by ent, DO NOT EDIT.

package satellite

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the satellite type in the database.
	Label = "satellite"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// EdgeElectronics holds the string denoting the electronics edge name in mutations.
	EdgeElectronics = "electronics"
	// EdgeCalendarStages holds the string denoting the calendar_stages edge name in mutations.
	EdgeCalendarStages = "calendar_stages"
	// EdgeTechnicalSpecifications holds the string denoting the technical_specifications edge name in mutations.
	EdgeTechnicalSpecifications = "technical_specifications"
	// EdgeOpCharacteristics holds the string denoting the op_characteristics edge name in mutations.
	EdgeOpCharacteristics = "op_characteristics"
	// EdgeStands holds the string denoting the stands edge name in mutations.
	EdgeStands = "stands"
	// Table holds the table name of the satellite in the database.
	Table = "satellites"
	// ElectronicsTable is the table that holds the electronics relation/edge.
	ElectronicsTable = "electronics"
	// ElectronicsInverseTable is the table name for the Electronics entity.
	// It exists in this package in order to avoid circular dependency with the "electronics" package.
	ElectronicsInverseTable = "electronics"
	// ElectronicsColumn is the table column denoting the electronics relation/edge.
	ElectronicsColumn = "satellite_electronics"
	// CalendarStagesTable is the table that holds the calendar_stages relation/edge.
	CalendarStagesTable = "calendar_stages"
	// CalendarStagesInverseTable is the table name for the CalendarStage entity.
	// It exists in this package in order to avoid circular dependency with the "calendarstage" package.
	CalendarStagesInverseTable = "calendar_stages"
	// CalendarStagesColumn is the table column denoting the calendar_stages relation/edge.
	CalendarStagesColumn = "satellite_calendar_stages"
	// TechnicalSpecificationsTable is the table that holds the technical_specifications relation/edge.
	TechnicalSpecificationsTable = "technical_specifications"
	// TechnicalSpecificationsInverseTable is the table name for the TechnicalSpecification entity.
	// It exists in this package in order to avoid circular dependency with the "technicalspecification" package.
	TechnicalSpecificationsInverseTable = "technical_specifications"
	// TechnicalSpecificationsColumn is the table column denoting the technical_specifications relation/edge.
	TechnicalSpecificationsColumn = "satellite_technical_specifications"
	// OpCharacteristicsTable is the table that holds the op_characteristics relation/edge.
	OpCharacteristicsTable = "satellite_op_characteristics"
	// OpCharacteristicsInverseTable is the table name for the SatelliteOpCharacteristic entity.
	// It exists in this package in order to avoid circular dependency with the "satelliteopcharacteristic" package.
	OpCharacteristicsInverseTable = "satellite_op_characteristics"
	// OpCharacteristicsColumn is the table column denoting the op_characteristics relation/edge.
	OpCharacteristicsColumn = "satellite_op_characteristics"
	// StandsTable is the table that holds the stands relation/edge.
	StandsTable = "stands"
	// StandsInverseTable is the table name for the Stand entity.
	// It exists in this package in order to avoid circular dependency with the "stand" package.
	StandsInverseTable = "stands"
	// StandsColumn is the table column denoting the stands relation/edge.
	StandsColumn = "satellite_stands"
)

// Columns holds all SQL columns for satellite fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldName,
	FieldType,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// TypeValidator is a validator for the "type" field. It is called by the builders before save.
	TypeValidator func(string) error
)

// OrderOption defines the ordering options for the Satellite queries.
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

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByElectronicsCount orders the results by electronics count.
func ByElectronicsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newElectronicsStep(), opts...)
	}
}

// ByElectronics orders the results by electronics terms.
func ByElectronics(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newElectronicsStep(), append([]sql.OrderTerm{term}, terms...)...)
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

// ByTechnicalSpecificationsCount orders the results by technical_specifications count.
func ByTechnicalSpecificationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTechnicalSpecificationsStep(), opts...)
	}
}

// ByTechnicalSpecifications orders the results by technical_specifications terms.
func ByTechnicalSpecifications(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTechnicalSpecificationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByOpCharacteristicsCount orders the results by op_characteristics count.
func ByOpCharacteristicsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newOpCharacteristicsStep(), opts...)
	}
}

// ByOpCharacteristics orders the results by op_characteristics terms.
func ByOpCharacteristics(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOpCharacteristicsStep(), append([]sql.OrderTerm{term}, terms...)...)
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
func newElectronicsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ElectronicsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ElectronicsTable, ElectronicsColumn),
	)
}
func newCalendarStagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CalendarStagesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CalendarStagesTable, CalendarStagesColumn),
	)
}
func newTechnicalSpecificationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TechnicalSpecificationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TechnicalSpecificationsTable, TechnicalSpecificationsColumn),
	)
}
func newOpCharacteristicsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OpCharacteristicsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, OpCharacteristicsTable, OpCharacteristicsColumn),
	)
}
func newStandsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StandsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StandsTable, StandsColumn),
	)
}
