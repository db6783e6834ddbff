// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"satfab.io/satfab/ent/sensor"
	"satfab.io/satfab/ent/stand"
)

// Sensor is the model entity for the Sensor schema.
type Sensor struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Location holds the value of the "location" field.
	Location string `json:"location,omitempty"`
	// Value holds the value of the "value" field.
	Value *float64 `json:"value,omitempty"`
	// Unit holds the value of the "unit" field.
	Unit *string `json:"unit,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SensorQuery when eager-loading is set.
	Edges         SensorEdges `json:"edges"`
	stand_sensors *int
	selectValues  sql.SelectValues
}

// SensorEdges holds the relations/edges for other nodes in the graph.
type SensorEdges struct {
	// Stand holds the value of the stand edge.
	Stand *Stand `json:"stand,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// StandOrErr returns the Stand value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SensorEdges) StandOrErr() (*Stand, error) {
	if e.Stand != nil {
		return e.Stand, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: stand.Label}
	}
	return nil, &NotLoadedError{edge: "stand"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Sensor) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sensor.FieldValue:
			values[i] = new(sql.NullFloat64)
		case sensor.FieldID:
			values[i] = new(sql.NullInt64)
		case sensor.FieldLocation, sensor.FieldUnit, sensor.FieldDescription:
			values[i] = new(sql.NullString)
		case sensor.FieldCreatedAt, sensor.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case sensor.ForeignKeys[0]: // stand_sensors
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Sensor fields.
func (_m *Sensor) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sensor.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sensor.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case sensor.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case sensor.FieldLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location", values[i])
			} else if value.Valid {
				_m.Location = value.String
			}
		case sensor.FieldValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = new(float64)
				*_m.Value = value.Float64
			}
		case sensor.FieldUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit", values[i])
			} else if value.Valid {
				_m.Unit = new(string)
				*_m.Unit = value.String
			}
		case sensor.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case sensor.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field stand_sensors", value)
			} else if value.Valid {
				_m.stand_sensors = new(int)
				*_m.stand_sensors = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the Sensor.
// This includes values selected through modifiers, order, etc.
func (_m *Sensor) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStand queries the "stand" edge of the Sensor entity.
func (_m *Sensor) QueryStand() *StandQuery {
	return NewSensorClient(_m.config).QueryStand(_m)
}

// Update returns a builder for updating this Sensor.
// Note that you need to call Sensor.Unwrap() before calling this method if this Sensor
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Sensor) Update() *SensorUpdateOne {
	return NewSensorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Sensor entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Sensor) Unwrap() *Sensor {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Sensor is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Sensor) String() string {
	var builder strings.Builder
	builder.WriteString("Sensor(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("location=")
	builder.WriteString(_m.Location)
	builder.WriteString(", ")
	if v := _m.Value; v != nil {
		builder.WriteString("value=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Unit; v != nil {
		builder.WriteString("unit=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteByte(')')
	return builder.String()
}

// Sensors is a parsable slice of Sensor.
type Sensors []*Sensor
