// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"satfab.io/satfab/ent/hardwarerequirement"
	"satfab.io/satfab/ent/stand"
)

// HardwareRequirement is the model entity for the HardwareRequirement schema.
type HardwareRequirement struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Value holds the value of the "value" field.
	Value float64 `json:"value,omitempty"`
	// Unit holds the value of the "unit" field.
	Unit string `json:"unit,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the HardwareRequirementQuery when eager-loading is set.
	Edges                       HardwareRequirementEdges `json:"edges"`
	stand_hardware_requirements *int
	selectValues                sql.SelectValues
}

// HardwareRequirementEdges holds the relations/edges for other nodes in the graph.
type HardwareRequirementEdges struct {
	// Stand holds the value of the stand edge.
	Stand *Stand `json:"stand,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// StandOrErr returns the Stand value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HardwareRequirementEdges) StandOrErr() (*Stand, error) {
	if e.Stand != nil {
		return e.Stand, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: stand.Label}
	}
	return nil, &NotLoadedError{edge: "stand"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HardwareRequirement) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case hardwarerequirement.FieldValue:
			values[i] = new(sql.NullFloat64)
		case hardwarerequirement.FieldID:
			values[i] = new(sql.NullInt64)
		case hardwarerequirement.FieldUnit:
			values[i] = new(sql.NullString)
		case hardwarerequirement.FieldCreatedAt, hardwarerequirement.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case hardwarerequirement.ForeignKeys[0]: // stand_hardware_requirements
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HardwareRequirement fields.
func (_m *HardwareRequirement) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case hardwarerequirement.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case hardwarerequirement.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case hardwarerequirement.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case hardwarerequirement.FieldValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = value.Float64
			}
		case hardwarerequirement.FieldUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit", values[i])
			} else if value.Valid {
				_m.Unit = value.String
			}
		case hardwarerequirement.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field stand_hardware_requirements", value)
			} else if value.Valid {
				_m.stand_hardware_requirements = new(int)
				*_m.stand_hardware_requirements = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the HardwareRequirement.
// This includes values selected through modifiers, order, etc.
func (_m *HardwareRequirement) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStand queries the "stand" edge of the HardwareRequirement entity.
func (_m *HardwareRequirement) QueryStand() *StandQuery {
	return NewHardwareRequirementClient(_m.config).QueryStand(_m)
}

// Update returns a builder for updating this HardwareRequirement.
// Note that you need to call HardwareRequirement.Unwrap() before calling this method if this HardwareRequirement
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HardwareRequirement) Update() *HardwareRequirementUpdateOne {
	return NewHardwareRequirementClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HardwareRequirement entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HardwareRequirement) Unwrap() *HardwareRequirement {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: HardwareRequirement is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HardwareRequirement) String() string {
	var builder strings.Builder
	builder.WriteString("HardwareRequirement(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("value=")
	builder.WriteString(fmt.Sprintf("%v", _m.Value))
	builder.WriteString(", ")
	builder.WriteString("unit=")
	builder.WriteString(_m.Unit)
	builder.WriteByte(')')
	return builder.String()
}

// HardwareRequirements is a parsable slice of HardwareRequirement.
type HardwareRequirements []*HardwareRequirement
