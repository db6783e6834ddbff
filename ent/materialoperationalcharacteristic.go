// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"satfab.io/satfab/ent/material"
	"satfab.io/satfab/ent/materialoperationalcharacteristic"
	"satfab.io/satfab/ent/stand"
)

// MaterialOperationalCharacteristic is the model entity for the MaterialOperationalCharacteristic schema.
type MaterialOperationalCharacteristic struct {
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
	Description *string `json:"description,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MaterialOperationalCharacteristicQuery when eager-loading is set.
	Edges                                MaterialOperationalCharacteristicEdges `json:"edges"`
	material_operational_characteristics *int
	stand_material_op_characteristics    *int
	selectValues                         sql.SelectValues
}

// MaterialOperationalCharacteristicEdges holds the relations/edges for other nodes in the graph.
type MaterialOperationalCharacteristicEdges struct {
	// Material holds the value of the material edge.
	Material *Material `json:"material,omitempty"`
	// Stand holds the value of the stand edge.
	Stand *Stand `json:"stand,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// MaterialOrErr returns the Material value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MaterialOperationalCharacteristicEdges) MaterialOrErr() (*Material, error) {
	if e.Material != nil {
		return e.Material, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: material.Label}
	}
	return nil, &NotLoadedError{edge: "material"}
}

// StandOrErr returns the Stand value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MaterialOperationalCharacteristicEdges) StandOrErr() (*Stand, error) {
	if e.Stand != nil {
		return e.Stand, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: stand.Label}
	}
	return nil, &NotLoadedError{edge: "stand"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MaterialOperationalCharacteristic) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case materialoperationalcharacteristic.FieldValue:
			values[i] = new(sql.NullFloat64)
		case materialoperationalcharacteristic.FieldID:
			values[i] = new(sql.NullInt64)
		case materialoperationalcharacteristic.FieldUnit, materialoperationalcharacteristic.FieldDescription:
			values[i] = new(sql.NullString)
		case materialoperationalcharacteristic.FieldCreatedAt, materialoperationalcharacteristic.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case materialoperationalcharacteristic.ForeignKeys[0]: // material_operational_characteristics
			values[i] = new(sql.NullInt64)
		case materialoperationalcharacteristic.ForeignKeys[1]: // stand_material_op_characteristics
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MaterialOperationalCharacteristic fields.
func (_m *MaterialOperationalCharacteristic) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case materialoperationalcharacteristic.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case materialoperationalcharacteristic.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case materialoperationalcharacteristic.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case materialoperationalcharacteristic.FieldUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit", values[i])
			} else if value.Valid {
				_m.Unit = value.String
			}
		case materialoperationalcharacteristic.FieldValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = value.Float64
			}
		case materialoperationalcharacteristic.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case materialoperationalcharacteristic.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field material_operational_characteristics", value)
			} else if value.Valid {
				_m.material_operational_characteristics = new(int)
				*_m.material_operational_characteristics = int(value.Int64)
			}
		case materialoperationalcharacteristic.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field stand_material_op_characteristics", value)
			} else if value.Valid {
				_m.stand_material_op_characteristics = new(int)
				*_m.stand_material_op_characteristics = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the MaterialOperationalCharacteristic.
// This includes values selected through modifiers, order, etc.
func (_m *MaterialOperationalCharacteristic) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMaterial queries the "material" edge of the MaterialOperationalCharacteristic entity.
func (_m *MaterialOperationalCharacteristic) QueryMaterial() *MaterialQuery {
	return NewMaterialOperationalCharacteristicClient(_m.config).QueryMaterial(_m)
}

// QueryStand queries the "stand" edge of the MaterialOperationalCharacteristic entity.
func (_m *MaterialOperationalCharacteristic) QueryStand() *StandQuery {
	return NewMaterialOperationalCharacteristicClient(_m.config).QueryStand(_m)
}

// Update returns a builder for updating this MaterialOperationalCharacteristic.
// Note that you need to call MaterialOperationalCharacteristic.Unwrap() before calling this method if this MaterialOperationalCharacteristic
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MaterialOperationalCharacteristic) Update() *MaterialOperationalCharacteristicUpdateOne {
	return NewMaterialOperationalCharacteristicClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MaterialOperationalCharacteristic entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MaterialOperationalCharacteristic) Unwrap() *MaterialOperationalCharacteristic {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MaterialOperationalCharacteristic is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MaterialOperationalCharacteristic) String() string {
	var builder strings.Builder
	builder.WriteString("MaterialOperationalCharacteristic(")
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
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// MaterialOperationalCharacteristics is a parsable slice of MaterialOperationalCharacteristic.
type MaterialOperationalCharacteristics []*MaterialOperationalCharacteristic
