// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"satfab.io/satfab/ent/satellite"
	"satfab.io/satfab/ent/satelliteopcharacteristic"
)

// SatelliteOpCharacteristic is the model entity for the SatelliteOpCharacteristic schema.
type SatelliteOpCharacteristic struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// ParameterName holds the value of the "parameter_name" field.
	ParameterName string `json:"parameter_name,omitempty"`
	// Value holds the value of the "value" field.
	Value float64 `json:"value,omitempty"`
	// Unit holds the value of the "unit" field.
	Unit string `json:"unit,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SatelliteOpCharacteristicQuery when eager-loading is set.
	Edges                        SatelliteOpCharacteristicEdges `json:"edges"`
	satellite_op_characteristics *int
	selectValues                 sql.SelectValues
}

// SatelliteOpCharacteristicEdges holds the relations/edges for other nodes in the graph.
type SatelliteOpCharacteristicEdges struct {
	// Satellite holds the value of the satellite edge.
	Satellite *Satellite `json:"satellite,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SatelliteOrErr returns the Satellite value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SatelliteOpCharacteristicEdges) SatelliteOrErr() (*Satellite, error) {
	if e.Satellite != nil {
		return e.Satellite, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: satellite.Label}
	}
	return nil, &NotLoadedError{edge: "satellite"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SatelliteOpCharacteristic) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case satelliteopcharacteristic.FieldValue:
			values[i] = new(sql.NullFloat64)
		case satelliteopcharacteristic.FieldID:
			values[i] = new(sql.NullInt64)
		case satelliteopcharacteristic.FieldParameterName, satelliteopcharacteristic.FieldUnit:
			values[i] = new(sql.NullString)
		case satelliteopcharacteristic.FieldCreatedAt, satelliteopcharacteristic.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case satelliteopcharacteristic.ForeignKeys[0]: // satellite_op_characteristics
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SatelliteOpCharacteristic fields.
func (_m *SatelliteOpCharacteristic) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case satelliteopcharacteristic.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case satelliteopcharacteristic.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case satelliteopcharacteristic.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case satelliteopcharacteristic.FieldParameterName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parameter_name", values[i])
			} else if value.Valid {
				_m.ParameterName = value.String
			}
		case satelliteopcharacteristic.FieldValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = value.Float64
			}
		case satelliteopcharacteristic.FieldUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit", values[i])
			} else if value.Valid {
				_m.Unit = value.String
			}
		case satelliteopcharacteristic.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field satellite_op_characteristics", value)
			} else if value.Valid {
				_m.satellite_op_characteristics = new(int)
				*_m.satellite_op_characteristics = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the SatelliteOpCharacteristic.
// This includes values selected through modifiers, order, etc.
func (_m *SatelliteOpCharacteristic) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySatellite queries the "satellite" edge of the SatelliteOpCharacteristic entity.
func (_m *SatelliteOpCharacteristic) QuerySatellite() *SatelliteQuery {
	return NewSatelliteOpCharacteristicClient(_m.config).QuerySatellite(_m)
}

// Update returns a builder for updating this SatelliteOpCharacteristic.
// Note that you need to call SatelliteOpCharacteristic.Unwrap() before calling this method if this SatelliteOpCharacteristic
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SatelliteOpCharacteristic) Update() *SatelliteOpCharacteristicUpdateOne {
	return NewSatelliteOpCharacteristicClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SatelliteOpCharacteristic entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SatelliteOpCharacteristic) Unwrap() *SatelliteOpCharacteristic {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SatelliteOpCharacteristic is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SatelliteOpCharacteristic) String() string {
	var builder strings.Builder
	builder.WriteString("SatelliteOpCharacteristic(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("parameter_name=")
	builder.WriteString(_m.ParameterName)
	builder.WriteString(", ")
	builder.WriteString("value=")
	builder.WriteString(fmt.Sprintf("%v", _m.Value))
	builder.WriteString(", ")
	builder.WriteString("unit=")
	builder.WriteString(_m.Unit)
	builder.WriteByte(')')
	return builder.String()
}

// SatelliteOpCharacteristics is a parsable slice of SatelliteOpCharacteristic.
type SatelliteOpCharacteristics []*SatelliteOpCharacteristic
