// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"satfab.io/satfab/ent/material"
)

// Material is the model entity for the Material schema.
type Material struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// TypeOfMaterial holds the value of the "type_of_material" field.
	TypeOfMaterial string `json:"type_of_material,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount float64 `json:"amount,omitempty"`
	// Unit holds the value of the "unit" field.
	Unit string `json:"unit,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MaterialQuery when eager-loading is set.
	Edges        MaterialEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MaterialEdges holds the relations/edges for other nodes in the graph.
type MaterialEdges struct {
	// FunctionalCharacteristics holds the value of the functional_characteristics edge.
	FunctionalCharacteristics []*MaterialFunctionalCharacteristic `json:"functional_characteristics,omitempty"`
	// OperationalCharacteristics holds the value of the operational_characteristics edge.
	OperationalCharacteristics []*MaterialOperationalCharacteristic `json:"operational_characteristics,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// FunctionalCharacteristicsOrErr returns the FunctionalCharacteristics value or an error if the edge
// was not loaded in eager-loading.
func (e MaterialEdges) FunctionalCharacteristicsOrErr() ([]*MaterialFunctionalCharacteristic, error) {
	if e.loadedTypes[0] {
		return e.FunctionalCharacteristics, nil
	}
	return nil, &NotLoadedError{edge: "functional_characteristics"}
}

// OperationalCharacteristicsOrErr returns the OperationalCharacteristics value or an error if the edge
// was not loaded in eager-loading.
func (e MaterialEdges) OperationalCharacteristicsOrErr() ([]*MaterialOperationalCharacteristic, error) {
	if e.loadedTypes[1] {
		return e.OperationalCharacteristics, nil
	}
	return nil, &NotLoadedError{edge: "operational_characteristics"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Material) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case material.FieldAmount:
			values[i] = new(sql.NullFloat64)
		case material.FieldID:
			values[i] = new(sql.NullInt64)
		case material.FieldTypeOfMaterial, material.FieldUnit:
			values[i] = new(sql.NullString)
		case material.FieldCreatedAt, material.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Material fields.
func (_m *Material) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case material.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case material.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case material.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case material.FieldTypeOfMaterial:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type_of_material", values[i])
			} else if value.Valid {
				_m.TypeOfMaterial = value.String
			}
		case material.FieldAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = value.Float64
			}
		case material.FieldUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit", values[i])
			} else if value.Valid {
				_m.Unit = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Material.
// This includes values selected through modifiers, order, etc.
func (_m *Material) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFunctionalCharacteristics queries the "functional_characteristics" edge of the Material entity.
func (_m *Material) QueryFunctionalCharacteristics() *MaterialFunctionalCharacteristicQuery {
	return NewMaterialClient(_m.config).QueryFunctionalCharacteristics(_m)
}

// QueryOperationalCharacteristics queries the "operational_characteristics" edge of the Material entity.
func (_m *Material) QueryOperationalCharacteristics() *MaterialOperationalCharacteristicQuery {
	return NewMaterialClient(_m.config).QueryOperationalCharacteristics(_m)
}

// Update returns a builder for updating this Material.
// Note that you need to call Material.Unwrap() before calling this method if this Material
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Material) Update() *MaterialUpdateOne {
	return NewMaterialClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Material entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Material) Unwrap() *Material {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Material is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Material) String() string {
	var builder strings.Builder
	builder.WriteString("Material(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("type_of_material=")
	builder.WriteString(_m.TypeOfMaterial)
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.Amount))
	builder.WriteString(", ")
	builder.WriteString("unit=")
	builder.WriteString(_m.Unit)
	builder.WriteByte(')')
	return builder.String()
}

// Materials is a parsable slice of Material.
type Materials []*Material
