// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"satfab.io/satfab/ent/satellite"
	"satfab.io/satfab/ent/technicalspecification"
)

// TechnicalSpecification is the model entity for the TechnicalSpecification schema.
type TechnicalSpecification struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TechnicalSpecificationQuery when eager-loading is set.
	Edges                              TechnicalSpecificationEdges `json:"edges"`
	satellite_technical_specifications *int
	selectValues                       sql.SelectValues
}

// TechnicalSpecificationEdges holds the relations/edges for other nodes in the graph.
type TechnicalSpecificationEdges struct {
	// Satellite holds the value of the satellite edge.
	Satellite *Satellite `json:"satellite,omitempty"`
	// Stands holds the value of the stands edge.
	Stands []*Stand `json:"stands,omitempty"`
	// CalendarStages holds the value of the calendar_stages edge.
	CalendarStages []*CalendarStage `json:"calendar_stages,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// SatelliteOrErr returns the Satellite value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TechnicalSpecificationEdges) SatelliteOrErr() (*Satellite, error) {
	if e.Satellite != nil {
		return e.Satellite, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: satellite.Label}
	}
	return nil, &NotLoadedError{edge: "satellite"}
}

// StandsOrErr returns the Stands value or an error if the edge
// was not loaded in eager-loading.
func (e TechnicalSpecificationEdges) StandsOrErr() ([]*Stand, error) {
	if e.loadedTypes[1] {
		return e.Stands, nil
	}
	return nil, &NotLoadedError{edge: "stands"}
}

// CalendarStagesOrErr returns the CalendarStages value or an error if the edge
// was not loaded in eager-loading.
func (e TechnicalSpecificationEdges) CalendarStagesOrErr() ([]*CalendarStage, error) {
	if e.loadedTypes[2] {
		return e.CalendarStages, nil
	}
	return nil, &NotLoadedError{edge: "calendar_stages"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TechnicalSpecification) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case technicalspecification.FieldID:
			values[i] = new(sql.NullInt64)
		case technicalspecification.FieldDescription:
			values[i] = new(sql.NullString)
		case technicalspecification.FieldCreatedAt, technicalspecification.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case technicalspecification.ForeignKeys[0]: // satellite_technical_specifications
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TechnicalSpecification fields.
func (_m *TechnicalSpecification) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case technicalspecification.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case technicalspecification.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case technicalspecification.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case technicalspecification.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case technicalspecification.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field satellite_technical_specifications", value)
			} else if value.Valid {
				_m.satellite_technical_specifications = new(int)
				*_m.satellite_technical_specifications = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TechnicalSpecification.
// This includes values selected through modifiers, order, etc.
func (_m *TechnicalSpecification) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySatellite queries the "satellite" edge of the TechnicalSpecification entity.
func (_m *TechnicalSpecification) QuerySatellite() *SatelliteQuery {
	return NewTechnicalSpecificationClient(_m.config).QuerySatellite(_m)
}

// QueryStands queries the "stands" edge of the TechnicalSpecification entity.
func (_m *TechnicalSpecification) QueryStands() *StandQuery {
	return NewTechnicalSpecificationClient(_m.config).QueryStands(_m)
}

// QueryCalendarStages queries the "calendar_stages" edge of the TechnicalSpecification entity.
func (_m *TechnicalSpecification) QueryCalendarStages() *CalendarStageQuery {
	return NewTechnicalSpecificationClient(_m.config).QueryCalendarStages(_m)
}

// Update returns a builder for updating this TechnicalSpecification.
// Note that you need to call TechnicalSpecification.Unwrap() before calling this method if this TechnicalSpecification
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TechnicalSpecification) Update() *TechnicalSpecificationUpdateOne {
	return NewTechnicalSpecificationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TechnicalSpecification entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TechnicalSpecification) Unwrap() *TechnicalSpecification {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TechnicalSpecification is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TechnicalSpecification) String() string {
	var builder strings.Builder
	builder.WriteString("TechnicalSpecification(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// TechnicalSpecifications is a parsable slice of TechnicalSpecification.
type TechnicalSpecifications []*TechnicalSpecification
