// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"satfab.io/satfab/ent/material"
	"satfab.io/satfab/ent/materialfunctionalcharacteristic"
)

// MaterialFunctionalCharacteristic is the model entity for the MaterialFunctionalCharacteristic schema.
type MaterialFunctionalCharacteristic struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Unit holds the value of the "unit" field.
	Unit string `json:"unit,omitempty"`
	// Value holds the value of the "value" field.
	Value float64 `json:"value,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MaterialFunctionalCharacteristicQuery when eager-loading is set.
	Edges                               MaterialFunctionalCharacteristicEdges `json:"edges"`
	material_functional_characteristics *int
	selectValues                        sql.SelectValues
}

// MaterialFunctionalCharacteristicEdges holds the relations/edges for other nodes in the graph.
type MaterialFunctionalCharacteristicEdges struct {
	// Material holds the value of the material edge.
	Material *Material `json:"material,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MaterialOrErr returns the Material value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MaterialFunctionalCharacteristicEdges) MaterialOrErr() (*Material, error) {
	if e.Material != nil {
		return e.Material, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: material.Label}
	}
	return nil, &NotLoadedError{edge: "material"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MaterialFunctionalCharacteristic) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case materialfunctionalcharacteristic.FieldValue:
			values[i] = new(sql.NullFloat64)
		case materialfunctionalcharacteristic.FieldID:
			values[i] = new(sql.NullInt64)
		case materialfunctionalcharacteristic.FieldUnit, materialfunctionalcharacteristic.FieldDescription:
			values[i] = new(sql.NullString)
		case materialfunctionalcharacteristic.FieldCreatedAt, materialfunctionalcharacteristic.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case materialfunctionalcharacteristic.ForeignKeys[0]: // material_functional_characteristics
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MaterialFunctionalCharacteristic fields.
func (_m *MaterialFunctionalCharacteristic) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case materialfunctionalcharacteristic.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case materialfunctionalcharacteristic.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case materialfunctionalcharacteristic.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case materialfunctionalcharacteristic.FieldUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit", values[i])
			} else if value.Valid {
				_m.Unit = value.String
			}
		case materialfunctionalcharacteristic.FieldValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = value.Float64
			}
		case materialfunctionalcharacteristic.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case materialfunctionalcharacteristic.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field material_functional_characteristics", value)
			} else if value.Valid {
				_m.material_functional_characteristics = new(int)
				*_m.material_functional_characteristics = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the MaterialFunctionalCharacteristic.
// This includes values selected through modifiers, order, etc.
func (_m *MaterialFunctionalCharacteristic) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMaterial queries the "material" edge of the MaterialFunctionalCharacteristic entity.
func (_m *MaterialFunctionalCharacteristic) QueryMaterial() *MaterialQuery {
	return NewMaterialFunctionalCharacteristicClient(_m.config).QueryMaterial(_m)
}

// Update returns a builder for updating this MaterialFunctionalCharacteristic.
// Note that you need to call MaterialFunctionalCharacteristic.Unwrap() before calling this method if this MaterialFunctionalCharacteristic
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MaterialFunctionalCharacteristic) Update() *MaterialFunctionalCharacteristicUpdateOne {
	return NewMaterialFunctionalCharacteristicClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MaterialFunctionalCharacteristic entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MaterialFunctionalCharacteristic) Unwrap() *MaterialFunctionalCharacteristic {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MaterialFunctionalCharacteristic is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MaterialFunctionalCharacteristic) String() string {
	var builder strings.Builder
	builder.WriteString("MaterialFunctionalCharacteristic(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("unit=")
	builder.WriteString(_m.Unit)
	builder.WriteString(", ")
	builder.WriteString("value=")
	builder.WriteString(fmt.Sprintf("%v", _m.Value))
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteByte(')')
	return builder.String()
}

// MaterialFunctionalCharacteristics is a parsable slice of MaterialFunctionalCharacteristic.
type MaterialFunctionalCharacteristics []*MaterialFunctionalCharacteristic
