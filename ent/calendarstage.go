// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"satfab.io/satfab/ent/calendarstage"
	"satfab.io/satfab/ent/satellite"
	"satfab.io/satfab/ent/technicalspecification"
)

// CalendarStage is the model entity for the CalendarStage schema.
type CalendarStage struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// NameOfStage holds the value of the "name_of_stage" field.
	NameOfStage string `json:"name_of_stage,omitempty"`
	// TimeOfFrame holds the value of the "time_of_frame" field.
	TimeOfFrame time.Time `json:"time_of_frame,omitempty"`
	// Duration holds the value of the "duration" field.
	Duration int `json:"duration,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CalendarStageQuery when eager-loading is set.
	Edges                                   CalendarStageEdges `json:"edges"`
	satellite_calendar_stages               *int
	technical_specification_calendar_stages *int
	selectValues                            sql.SelectValues
}

// CalendarStageEdges holds the relations/edges for other nodes in the graph.
type CalendarStageEdges struct {
	// Satellite holds the value of the satellite edge.
	Satellite *Satellite `json:"satellite,omitempty"`
	// TechnicalSpecification holds the value of the technical_specification edge.
	TechnicalSpecification *TechnicalSpecification `json:"technical_specification,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SatelliteOrErr returns the Satellite value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CalendarStageEdges) SatelliteOrErr() (*Satellite, error) {
	if e.Satellite != nil {
		return e.Satellite, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: satellite.Label}
	}
	return nil, &NotLoadedError{edge: "satellite"}
}

// TechnicalSpecificationOrErr returns the TechnicalSpecification value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CalendarStageEdges) TechnicalSpecificationOrErr() (*TechnicalSpecification, error) {
	if e.TechnicalSpecification != nil {
		return e.TechnicalSpecification, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: technicalspecification.Label}
	}
	return nil, &NotLoadedError{edge: "technical_specification"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CalendarStage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case calendarstage.FieldID, calendarstage.FieldDuration:
			values[i] = new(sql.NullInt64)
		case calendarstage.FieldNameOfStage:
			values[i] = new(sql.NullString)
		case calendarstage.FieldCreatedAt, calendarstage.FieldUpdatedAt, calendarstage.FieldTimeOfFrame:
			values[i] = new(sql.NullTime)
		case calendarstage.ForeignKeys[0]: // satellite_calendar_stages
			values[i] = new(sql.NullInt64)
		case calendarstage.ForeignKeys[1]: // technical_specification_calendar_stages
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CalendarStage fields.
func (_m *CalendarStage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case calendarstage.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case calendarstage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case calendarstage.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case calendarstage.FieldNameOfStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name_of_stage", values[i])
			} else if value.Valid {
				_m.NameOfStage = value.String
			}
		case calendarstage.FieldTimeOfFrame:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field time_of_frame", values[i])
			} else if value.Valid {
				_m.TimeOfFrame = value.Time
			}
		case calendarstage.FieldDuration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration", values[i])
			} else if value.Valid {
				_m.Duration = int(value.Int64)
			}
		case calendarstage.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field satellite_calendar_stages", value)
			} else if value.Valid {
				_m.satellite_calendar_stages = new(int)
				*_m.satellite_calendar_stages = int(value.Int64)
			}
		case calendarstage.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field technical_specification_calendar_stages", value)
			} else if value.Valid {
				_m.technical_specification_calendar_stages = new(int)
				*_m.technical_specification_calendar_stages = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CalendarStage.
// This includes values selected through modifiers, order, etc.
func (_m *CalendarStage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySatellite queries the "satellite" edge of the CalendarStage entity.
func (_m *CalendarStage) QuerySatellite() *SatelliteQuery {
	return NewCalendarStageClient(_m.config).QuerySatellite(_m)
}

// QueryTechnicalSpecification queries the "technical_specification" edge of the CalendarStage entity.
func (_m *CalendarStage) QueryTechnicalSpecification() *TechnicalSpecificationQuery {
	return NewCalendarStageClient(_m.config).QueryTechnicalSpecification(_m)
}

// Update returns a builder for updating this CalendarStage.
// Note that you need to call CalendarStage.Unwrap() before calling this method if this CalendarStage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CalendarStage) Update() *CalendarStageUpdateOne {
	return NewCalendarStageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CalendarStage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CalendarStage) Unwrap() *CalendarStage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CalendarStage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CalendarStage) String() string {
	var builder strings.Builder
	builder.WriteString("CalendarStage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name_of_stage=")
	builder.WriteString(_m.NameOfStage)
	builder.WriteString(", ")
	builder.WriteString("time_of_frame=")
	builder.WriteString(_m.TimeOfFrame.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("duration=")
	builder.WriteString(fmt.Sprintf("%v", _m.Duration))
	builder.WriteByte(')')
	return builder.String()
}

// CalendarStages is a parsable slice of CalendarStage.
type CalendarStages []*CalendarStage
