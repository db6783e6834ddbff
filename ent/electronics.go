// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"satfab.io/satfab/ent/electronics"
	"satfab.io/satfab/ent/satellite"
)

// Electronics is the model entity for the Electronics schema.
type Electronics struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// Type holds the value of the "type" field.
	Type string `json:"type,omitempty"`
	// Location holds the value of the "location" field.
	Location string `json:"location,omitempty"`
	// Price holds the value of the "price" field.
	Price float64 `json:"price,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ElectronicsQuery when eager-loading is set.
	Edges                 ElectronicsEdges `json:"edges"`
	satellite_electronics *int
	selectValues          sql.SelectValues
}

// ElectronicsEdges holds the relations/edges for other nodes in the graph.
type ElectronicsEdges struct {
	// Satellite holds the value of the satellite edge.
	Satellite *Satellite `json:"satellite,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SatelliteOrErr returns the Satellite value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ElectronicsEdges) SatelliteOrErr() (*Satellite, error) {
	if e.Satellite != nil {
		return e.Satellite, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: satellite.Label}
	}
	return nil, &NotLoadedError{edge: "satellite"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Electronics) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case electronics.FieldPrice:
			values[i] = new(sql.NullFloat64)
		case electronics.FieldID:
			values[i] = new(sql.NullInt64)
		case electronics.FieldModel, electronics.FieldType, electronics.FieldLocation:
			values[i] = new(sql.NullString)
		case electronics.FieldCreatedAt, electronics.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case electronics.ForeignKeys[0]: // satellite_electronics
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Electronics fields.
func (_m *Electronics) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case electronics.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case electronics.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case electronics.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case electronics.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case electronics.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = value.String
			}
		case electronics.FieldLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location", values[i])
			} else if value.Valid {
				_m.Location = value.String
			}
		case electronics.FieldPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field price", values[i])
			} else if value.Valid {
				_m.Price = value.Float64
			}
		case electronics.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field satellite_electronics", value)
			} else if value.Valid {
				_m.satellite_electronics = new(int)
				*_m.satellite_electronics = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Electronics.
// This includes values selected through modifiers, order, etc.
func (_m *Electronics) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySatellite queries the "satellite" edge of the Electronics entity.
func (_m *Electronics) QuerySatellite() *SatelliteQuery {
	return NewElectronicsClient(_m.config).QuerySatellite(_m)
}

// Update returns a builder for updating this Electronics.
// Note that you need to call Electronics.Unwrap() before calling this method if this Electronics
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Electronics) Update() *ElectronicsUpdateOne {
	return NewElectronicsClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Electronics entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Electronics) Unwrap() *Electronics {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Electronics is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Electronics) String() string {
	var builder strings.Builder
	builder.WriteString("Electronics(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(_m.Type)
	builder.WriteString(", ")
	builder.WriteString("location=")
	builder.WriteString(_m.Location)
	builder.WriteString(", ")
	builder.WriteString("price=")
	builder.WriteString(fmt.Sprintf("%v", _m.Price))
	builder.WriteByte(')')
	return builder.String()
}

// ElectronicsSlice is a parsable slice of Electronics.
type ElectronicsSlice []*Electronics
