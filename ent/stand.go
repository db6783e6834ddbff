// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"satfab.io/satfab/ent/satellite"
	"satfab.io/satfab/ent/stand"
	"satfab.io/satfab/ent/technicalspecification"
)

// Stand is the model entity for the Stand schema.
type Stand struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// NameOfStand holds the value of the "name_of_stand" field.
	NameOfStand string `json:"name_of_stand,omitempty"`
	// TypeOfStand holds the value of the "type_of_stand" field.
	TypeOfStand string `json:"type_of_stand,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StandQuery when eager-loading is set.
	Edges                          StandEdges `json:"edges"`
	satellite_stands               *int
	technical_specification_stands *int
	selectValues                   sql.SelectValues
}

// StandEdges holds the relations/edges for other nodes in the graph.
type StandEdges struct {
	// Satellite holds the value of the satellite edge.
	Satellite *Satellite `json:"satellite,omitempty"`
	// TechnicalSpecification holds the value of the technical_specification edge.
	TechnicalSpecification *TechnicalSpecification `json:"technical_specification,omitempty"`
	// Sensors holds the value of the sensors edge.
	Sensors []*Sensor `json:"sensors,omitempty"`
	// HardwareRequirements holds the value of the hardware_requirements edge.
	HardwareRequirements []*HardwareRequirement `json:"hardware_requirements,omitempty"`
	// PhysicalTestData holds the value of the physical_test_data edge.
	PhysicalTestData []*PhysicalTestData `json:"physical_test_data,omitempty"`
	// MaterialOpCharacteristics holds the value of the material_op_characteristics edge.
	MaterialOpCharacteristics []*MaterialOperationalCharacteristic `json:"material_op_characteristics,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// SatelliteOrErr returns the Satellite value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StandEdges) SatelliteOrErr() (*Satellite, error) {
	if e.Satellite != nil {
		return e.Satellite, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: satellite.Label}
	}
	return nil, &NotLoadedError{edge: "satellite"}
}

// TechnicalSpecificationOrErr returns the TechnicalSpecification value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StandEdges) TechnicalSpecificationOrErr() (*TechnicalSpecification, error) {
	if e.TechnicalSpecification != nil {
		return e.TechnicalSpecification, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: technicalspecification.Label}
	}
	return nil, &NotLoadedError{edge: "technical_specification"}
}

// SensorsOrErr returns the Sensors value or an error if the edge
// was not loaded in eager-loading.
func (e StandEdges) SensorsOrErr() ([]*Sensor, error) {
	if e.loadedTypes[2] {
		return e.Sensors, nil
	}
	return nil, &NotLoadedError{edge: "sensors"}
}

// HardwareRequirementsOrErr returns the HardwareRequirements value or an error if the edge
// was not loaded in eager-loading.
func (e StandEdges) HardwareRequirementsOrErr() ([]*HardwareRequirement, error) {
	if e.loadedTypes[3] {
		return e.HardwareRequirements, nil
	}
	return nil, &NotLoadedError{edge: "hardware_requirements"}
}

// PhysicalTestDataOrErr returns the PhysicalTestData value or an error if the edge
// was not loaded in eager-loading.
func (e StandEdges) PhysicalTestDataOrErr() ([]*PhysicalTestData, error) {
	if e.loadedTypes[4] {
		return e.PhysicalTestData, nil
	}
	return nil, &NotLoadedError{edge: "physical_test_data"}
}

// MaterialOpCharacteristicsOrErr returns the MaterialOpCharacteristics value or an error if the edge
// was not loaded in eager-loading.
func (e StandEdges) MaterialOpCharacteristicsOrErr() ([]*MaterialOperationalCharacteristic, error) {
	if e.loadedTypes[5] {
		return e.MaterialOpCharacteristics, nil
	}
	return nil, &NotLoadedError{edge: "material_op_characteristics"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Stand) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stand.FieldID:
			values[i] = new(sql.NullInt64)
		case stand.FieldNameOfStand, stand.FieldTypeOfStand:
			values[i] = new(sql.NullString)
		case stand.FieldCreatedAt, stand.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case stand.ForeignKeys[0]: // satellite_stands
			values[i] = new(sql.NullInt64)
		case stand.ForeignKeys[1]: // technical_specification_stands
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Stand fields.
func (_m *Stand) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stand.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case stand.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case stand.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case stand.FieldNameOfStand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name_of_stand", values[i])
			} else if value.Valid {
				_m.NameOfStand = value.String
			}
		case stand.FieldTypeOfStand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type_of_stand", values[i])
			} else if value.Valid {
				_m.TypeOfStand = value.String
			}
		case stand.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field satellite_stands", value)
			} else if value.Valid {
				_m.satellite_stands = new(int)
				*_m.satellite_stands = int(value.Int64)
			}
		case stand.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field technical_specification_stands", value)
			} else if value.Valid {
				_m.technical_specification_stands = new(int)
				*_m.technical_specification_stands = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Stand.
// This includes values selected through modifiers, order, etc.
func (_m *Stand) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySatellite queries the "satellite" edge of the Stand entity.
func (_m *Stand) QuerySatellite() *SatelliteQuery {
	return NewStandClient(_m.config).QuerySatellite(_m)
}

// QueryTechnicalSpecification queries the "technical_specification" edge of the Stand entity.
func (_m *Stand) QueryTechnicalSpecification() *TechnicalSpecificationQuery {
	return NewStandClient(_m.config).QueryTechnicalSpecification(_m)
}

// QuerySensors queries the "sensors" edge of the Stand entity.
func (_m *Stand) QuerySensors() *SensorQuery {
	return NewStandClient(_m.config).QuerySensors(_m)
}

// QueryHardwareRequirements queries the "hardware_requirements" edge of the Stand entity.
func (_m *Stand) QueryHardwareRequirements() *HardwareRequirementQuery {
	return NewStandClient(_m.config).QueryHardwareRequirements(_m)
}

// QueryPhysicalTestData queries the "physical_test_data" edge of the Stand entity.
func (_m *Stand) QueryPhysicalTestData() *PhysicalTestDataQuery {
	return NewStandClient(_m.config).QueryPhysicalTestData(_m)
}

// QueryMaterialOpCharacteristics queries the "material_op_characteristics" edge of the Stand entity.
func (_m *Stand) QueryMaterialOpCharacteristics() *MaterialOperationalCharacteristicQuery {
	return NewStandClient(_m.config).QueryMaterialOpCharacteristics(_m)
}

// Update returns a builder for updating this Stand.
// Note that you need to call Stand.Unwrap() before calling this method if this Stand
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Stand) Update() *StandUpdateOne {
	return NewStandClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Stand entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Stand) Unwrap() *Stand {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Stand is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Stand) String() string {
	var builder strings.Builder
	builder.WriteString("Stand(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name_of_stand=")
	builder.WriteString(_m.NameOfStand)
	builder.WriteString(", ")
	builder.WriteString("type_of_stand=")
	builder.WriteString(_m.TypeOfStand)
	builder.WriteByte(')')
	return builder.String()
}

// Stands is a parsable slice of Stand.
type Stands []*Stand
