// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"satfab.io/satfab/ent/satellite"
)

// Satellite is the model entity for the Satellite schema.
type Satellite struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Type holds the value of the "type" field.
	Type string `json:"type,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SatelliteQuery when eager-loading is set.
	Edges        SatelliteEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SatelliteEdges holds the relations/edges for other nodes in the graph.
type SatelliteEdges struct {
	// Electronics holds the value of the electronics edge.
	Electronics []*Electronics `json:"electronics,omitempty"`
	// CalendarStages holds the value of the calendar_stages edge.
	CalendarStages []*CalendarStage `json:"calendar_stages,omitempty"`
	// TechnicalSpecifications holds the value of the technical_specifications edge.
	TechnicalSpecifications []*TechnicalSpecification `json:"technical_specifications,omitempty"`
	// OpCharacteristics holds the value of the op_characteristics edge.
	OpCharacteristics []*SatelliteOpCharacteristic `json:"op_characteristics,omitempty"`
	// Stands holds the value of the stands edge.
	Stands []*Stand `json:"stands,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// ElectronicsOrErr returns the Electronics value or an error if the edge
// was not loaded in eager-loading.
func (e SatelliteEdges) ElectronicsOrErr() ([]*Electronics, error) {
	if e.loadedTypes[0] {
		return e.Electronics, nil
	}
	return nil, &NotLoadedError{edge: "electronics"}
}

// CalendarStagesOrErr returns the CalendarStages value or an error if the edge
// was not loaded in eager-loading.
func (e SatelliteEdges) CalendarStagesOrErr() ([]*CalendarStage, error) {
	if e.loadedTypes[1] {
		return e.CalendarStages, nil
	}
	return nil, &NotLoadedError{edge: "calendar_stages"}
}

// TechnicalSpecificationsOrErr returns the TechnicalSpecifications value or an error if the edge
// was not loaded in eager-loading.
func (e SatelliteEdges) TechnicalSpecificationsOrErr() ([]*TechnicalSpecification, error) {
	if e.loadedTypes[2] {
		return e.TechnicalSpecifications, nil
	}
	return nil, &NotLoadedError{edge: "technical_specifications"}
}

// OpCharacteristicsOrErr returns the OpCharacteristics value or an error if the edge
// was not loaded in eager-loading.
func (e SatelliteEdges) OpCharacteristicsOrErr() ([]*SatelliteOpCharacteristic, error) {
	if e.loadedTypes[3] {
		return e.OpCharacteristics, nil
	}
	return nil, &NotLoadedError{edge: "op_characteristics"}
}

// StandsOrErr returns the Stands value or an error if the edge
// was not loaded in eager-loading.
func (e SatelliteEdges) StandsOrErr() ([]*Stand, error) {
	if e.loadedTypes[4] {
		return e.Stands, nil
	}
	return nil, &NotLoadedError{edge: "stands"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Satellite) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case satellite.FieldID:
			values[i] = new(sql.NullInt64)
		case satellite.FieldName, satellite.FieldType:
			values[i] = new(sql.NullString)
		case satellite.FieldCreatedAt, satellite.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Satellite fields.
func (_m *Satellite) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case satellite.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case satellite.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case satellite.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case satellite.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case satellite.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Satellite.
// This includes values selected through modifiers, order, etc.
func (_m *Satellite) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryElectronics queries the "electronics" edge of the Satellite entity.
func (_m *Satellite) QueryElectronics() *ElectronicsQuery {
	return NewSatelliteClient(_m.config).QueryElectronics(_m)
}

// QueryCalendarStages queries the "calendar_stages" edge of the Satellite entity.
func (_m *Satellite) QueryCalendarStages() *CalendarStageQuery {
	return NewSatelliteClient(_m.config).QueryCalendarStages(_m)
}

// QueryTechnicalSpecifications queries the "technical_specifications" edge of the Satellite entity.
func (_m *Satellite) QueryTechnicalSpecifications() *TechnicalSpecificationQuery {
	return NewSatelliteClient(_m.config).QueryTechnicalSpecifications(_m)
}

// QueryOpCharacteristics queries the "op_characteristics" edge of the Satellite entity.
func (_m *Satellite) QueryOpCharacteristics() *SatelliteOpCharacteristicQuery {
	return NewSatelliteClient(_m.config).QueryOpCharacteristics(_m)
}

// QueryStands queries the "stands" edge of the Satellite entity.
func (_m *Satellite) QueryStands() *StandQuery {
	return NewSatelliteClient(_m.config).QueryStands(_m)
}

// Update returns a builder for updating this Satellite.
// Note that you need to call Satellite.Unwrap() before calling this method if this Satellite
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Satellite) Update() *SatelliteUpdateOne {
	return NewSatelliteClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Satellite entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Satellite) Unwrap() *Satellite {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Satellite is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Satellite) String() string {
	var builder strings.Builder
	builder.WriteString("Satellite(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(_m.Type)
	builder.WriteByte(')')
	return builder.String()
}

// Satellites is a parsable slice of Satellite.
type Satellites []*Satellite
