// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"satfab.io/satfab/ent/hardwarerequirement"
	"satfab.io/satfab/ent/materialoperationalcharacteristic"
	"satfab.io/satfab/ent/physicaltestdata"
	"satfab.io/satfab/ent/predicate"
	"satfab.io/satfab/ent/satellite"
	"satfab.io/satfab/ent/sensor"
	"satfab.io/satfab/ent/stand"
	"satfab.io/satfab/ent/technicalspecification"
)

// StandUpdate is the builder for updating Stand entities.
type StandUpdate struct {
	config
	hooks    []Hook
	mutation *StandMutation
}

// Where appends a list predicates to the StandUpdate builder.
func (_u *StandUpdate) Where(ps ...predicate.Stand) *StandUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StandUpdate) SetUpdatedAt(v time.Time) *StandUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNameOfStand sets the "name_of_stand" field.
func (_u *StandUpdate) SetNameOfStand(v string) *StandUpdate {
	_u.mutation.SetNameOfStand(v)
	return _u
}

// SetNillableNameOfStand sets the "name_of_stand" field if the given value is not nil.
func (_u *StandUpdate) SetNillableNameOfStand(v *string) *StandUpdate {
	if v != nil {
		_u.SetNameOfStand(*v)
	}
	return _u
}

// SetTypeOfStand sets the "type_of_stand" field.
func (_u *StandUpdate) SetTypeOfStand(v string) *StandUpdate {
	_u.mutation.SetTypeOfStand(v)
	return _u
}

// SetNillableTypeOfStand sets the "type_of_stand" field if the given value is not nil.
func (_u *StandUpdate) SetNillableTypeOfStand(v *string) *StandUpdate {
	if v != nil {
		_u.SetTypeOfStand(*v)
	}
	return _u
}

// SetSatelliteID sets the "satellite" edge to the Satellite entity by ID.
func (_u *StandUpdate) SetSatelliteID(id int) *StandUpdate {
	_u.mutation.SetSatelliteID(id)
	return _u
}

// SetSatellite sets the "satellite" edge to the Satellite entity.
func (_u *StandUpdate) SetSatellite(v *Satellite) *StandUpdate {
	return _u.SetSatelliteID(v.ID)
}

// SetTechnicalSpecificationID sets the "technical_specification" edge to the TechnicalSpecification entity by ID.
func (_u *StandUpdate) SetTechnicalSpecificationID(id int) *StandUpdate {
	_u.mutation.SetTechnicalSpecificationID(id)
	return _u
}

// SetTechnicalSpecification sets the "technical_specification" edge to the TechnicalSpecification entity.
func (_u *StandUpdate) SetTechnicalSpecification(v *TechnicalSpecification) *StandUpdate {
	return _u.SetTechnicalSpecificationID(v.ID)
}

// AddSensorIDs adds the "sensors" edge to the Sensor entity by IDs.
func (_u *StandUpdate) AddSensorIDs(ids ...int) *StandUpdate {
	_u.mutation.AddSensorIDs(ids...)
	return _u
}

// AddSensors adds the "sensors" edges to the Sensor entity.
func (_u *StandUpdate) AddSensors(v ...*Sensor) *StandUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSensorIDs(ids...)
}

// AddHardwareRequirementIDs adds the "hardware_requirements" edge to the HardwareRequirement entity by IDs.
func (_u *StandUpdate) AddHardwareRequirementIDs(ids ...int) *StandUpdate {
	_u.mutation.AddHardwareRequirementIDs(ids...)
	return _u
}

// AddHardwareRequirements adds the "hardware_requirements" edges to the HardwareRequirement entity.
func (_u *StandUpdate) AddHardwareRequirements(v ...*HardwareRequirement) *StandUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHardwareRequirementIDs(ids...)
}

// AddPhysicalTestDatumIDs adds the "physical_test_data" edge to the PhysicalTestData entity by IDs.
func (_u *StandUpdate) AddPhysicalTestDatumIDs(ids ...int) *StandUpdate {
	_u.mutation.AddPhysicalTestDatumIDs(ids...)
	return _u
}

// AddPhysicalTestData adds the "physical_test_data" edges to the PhysicalTestData entity.
func (_u *StandUpdate) AddPhysicalTestData(v ...*PhysicalTestData) *StandUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPhysicalTestDatumIDs(ids...)
}

// AddMaterialOpCharacteristicIDs adds the "material_op_characteristics" edge to the MaterialOperationalCharacteristic entity by IDs.
func (_u *StandUpdate) AddMaterialOpCharacteristicIDs(ids ...int) *StandUpdate {
	_u.mutation.AddMaterialOpCharacteristicIDs(ids...)
	return _u
}

// AddMaterialOpCharacteristics adds the "material_op_characteristics" edges to the MaterialOperationalCharacteristic entity.
func (_u *StandUpdate) AddMaterialOpCharacteristics(v ...*MaterialOperationalCharacteristic) *StandUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMaterialOpCharacteristicIDs(ids...)
}

// Mutation returns the StandMutation object of the builder.
func (_u *StandUpdate) Mutation() *StandMutation {
	return _u.mutation
}

// ClearSatellite clears the "satellite" edge to the Satellite entity.
func (_u *StandUpdate) ClearSatellite() *StandUpdate {
	_u.mutation.ClearSatellite()
	return _u
}

// ClearTechnicalSpecification clears the "technical_specification" edge to the TechnicalSpecification entity.
func (_u *StandUpdate) ClearTechnicalSpecification() *StandUpdate {
	_u.mutation.ClearTechnicalSpecification()
	return _u
}

// ClearSensors clears all "sensors" edges to the Sensor entity.
func (_u *StandUpdate) ClearSensors() *StandUpdate {
	_u.mutation.ClearSensors()
	return _u
}

// RemoveSensorIDs removes the "sensors" edge to Sensor entities by IDs.
func (_u *StandUpdate) RemoveSensorIDs(ids ...int) *StandUpdate {
	_u.mutation.RemoveSensorIDs(ids...)
	return _u
}

// RemoveSensors removes "sensors" edges to Sensor entities.
func (_u *StandUpdate) RemoveSensors(v ...*Sensor) *StandUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSensorIDs(ids...)
}

// ClearHardwareRequirements clears all "hardware_requirements" edges to the HardwareRequirement entity.
func (_u *StandUpdate) ClearHardwareRequirements() *StandUpdate {
	_u.mutation.ClearHardwareRequirements()
	return _u
}

// RemoveHardwareRequirementIDs removes the "hardware_requirements" edge to HardwareRequirement entities by IDs.
func (_u *StandUpdate) RemoveHardwareRequirementIDs(ids ...int) *StandUpdate {
	_u.mutation.RemoveHardwareRequirementIDs(ids...)
	return _u
}

// RemoveHardwareRequirements removes "hardware_requirements" edges to HardwareRequirement entities.
func (_u *StandUpdate) RemoveHardwareRequirements(v ...*HardwareRequirement) *StandUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHardwareRequirementIDs(ids...)
}

// ClearPhysicalTestData clears all "physical_test_data" edges to the PhysicalTestData entity.
func (_u *StandUpdate) ClearPhysicalTestData() *StandUpdate {
	_u.mutation.ClearPhysicalTestData()
	return _u
}

// RemovePhysicalTestDatumIDs removes the "physical_test_data" edge to PhysicalTestData entities by IDs.
func (_u *StandUpdate) RemovePhysicalTestDatumIDs(ids ...int) *StandUpdate {
	_u.mutation.RemovePhysicalTestDatumIDs(ids...)
	return _u
}

// RemovePhysicalTestData removes "physical_test_data" edges to PhysicalTestData entities.
func (_u *StandUpdate) RemovePhysicalTestData(v ...*PhysicalTestData) *StandUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePhysicalTestDatumIDs(ids...)
}

// ClearMaterialOpCharacteristics clears all "material_op_characteristics" edges to the MaterialOperationalCharacteristic entity.
func (_u *StandUpdate) ClearMaterialOpCharacteristics() *StandUpdate {
	_u.mutation.ClearMaterialOpCharacteristics()
	return _u
}

// RemoveMaterialOpCharacteristicIDs removes the "material_op_characteristics" edge to MaterialOperationalCharacteristic entities by IDs.
func (_u *StandUpdate) RemoveMaterialOpCharacteristicIDs(ids ...int) *StandUpdate {
	_u.mutation.RemoveMaterialOpCharacteristicIDs(ids...)
	return _u
}

// RemoveMaterialOpCharacteristics removes "material_op_characteristics" edges to MaterialOperationalCharacteristic entities.
func (_u *StandUpdate) RemoveMaterialOpCharacteristics(v ...*MaterialOperationalCharacteristic) *StandUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMaterialOpCharacteristicIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StandUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StandUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StandUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StandUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StandUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stand.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StandUpdate) check() error {
	if v, ok := _u.mutation.NameOfStand(); ok {
		if err := stand.NameOfStandValidator(v); err != nil {
			return &ValidationError{Name: "name_of_stand", err: fmt.Errorf(`ent: validator failed for field "Stand.name_of_stand": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TypeOfStand(); ok {
		if err := stand.TypeOfStandValidator(v); err != nil {
			return &ValidationError{Name: "type_of_stand", err: fmt.Errorf(`ent: validator failed for field "Stand.type_of_stand": %w`, err)}
		}
	}
	if _u.mutation.SatelliteCleared() && len(_u.mutation.SatelliteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Stand.satellite"`)
	}
	if _u.mutation.TechnicalSpecificationCleared() && len(_u.mutation.TechnicalSpecificationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Stand.technical_specification"`)
	}
	return nil
}

func (_u *StandUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stand.Table, stand.Columns, sqlgraph.NewFieldSpec(stand.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stand.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.NameOfStand(); ok {
		_spec.SetField(stand.FieldNameOfStand, field.TypeString, value)
	}
	if value, ok := _u.mutation.TypeOfStand(); ok {
		_spec.SetField(stand.FieldTypeOfStand, field.TypeString, value)
	}
	if _u.mutation.SatelliteCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stand.SatelliteTable,
			Columns: []string{stand.SatelliteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(satellite.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SatelliteIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stand.SatelliteTable,
			Columns: []string{stand.SatelliteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(satellite.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TechnicalSpecificationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stand.TechnicalSpecificationTable,
			Columns: []string{stand.TechnicalSpecificationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(technicalspecification.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TechnicalSpecificationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stand.TechnicalSpecificationTable,
			Columns: []string{stand.TechnicalSpecificationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(technicalspecification.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SensorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stand.SensorsTable,
			Columns: []string{stand.SensorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sensor.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSensorsIDs(); len(nodes) > 0 && !_u.mutation.SensorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stand.SensorsTable,
			Columns: []string{stand.SensorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sensor.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SensorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stand.SensorsTable,
			Columns: []string{stand.SensorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sensor.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.HardwareRequirementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stand.HardwareRequirementsTable,
			Columns: []string{stand.HardwareRequirementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hardwarerequirement.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHardwareRequirementsIDs(); len(nodes) > 0 && !_u.mutation.HardwareRequirementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stand.HardwareRequirementsTable,
			Columns: []string{stand.HardwareRequirementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hardwarerequirement.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HardwareRequirementsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stand.HardwareRequirementsTable,
			Columns: []string{stand.HardwareRequirementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hardwarerequirement.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PhysicalTestDataCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stand.PhysicalTestDataTable,
			Columns: []string{stand.PhysicalTestDataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(physicaltestdata.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPhysicalTestDataIDs(); len(nodes) > 0 && !_u.mutation.PhysicalTestDataCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stand.PhysicalTestDataTable,
			Columns: []string{stand.PhysicalTestDataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(physicaltestdata.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PhysicalTestDataIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stand.PhysicalTestDataTable,
			Columns: []string{stand.PhysicalTestDataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(physicaltestdata.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MaterialOpCharacteristicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stand.MaterialOpCharacteristicsTable,
			Columns: []string{stand.MaterialOpCharacteristicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(materialoperationalcharacteristic.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMaterialOpCharacteristicsIDs(); len(nodes) > 0 && !_u.mutation.MaterialOpCharacteristicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stand.MaterialOpCharacteristicsTable,
			Columns: []string{stand.MaterialOpCharacteristicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(materialoperationalcharacteristic.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MaterialOpCharacteristicsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stand.MaterialOpCharacteristicsTable,
			Columns: []string{stand.MaterialOpCharacteristicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(materialoperationalcharacteristic.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stand.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StandUpdateOne is the builder for updating a single Stand entity.
type StandUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StandMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StandUpdateOne) SetUpdatedAt(v time.Time) *StandUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNameOfStand sets the "name_of_stand" field.
func (_u *StandUpdateOne) SetNameOfStand(v string) *StandUpdateOne {
	_u.mutation.SetNameOfStand(v)
	return _u
}

// SetNillableNameOfStand sets the "name_of_stand" field if the given value is not nil.
func (_u *StandUpdateOne) SetNillableNameOfStand(v *string) *StandUpdateOne {
	if v != nil {
		_u.SetNameOfStand(*v)
	}
	return _u
}

// SetTypeOfStand sets the "type_of_stand" field.
func (_u *StandUpdateOne) SetTypeOfStand(v string) *StandUpdateOne {
	_u.mutation.SetTypeOfStand(v)
	return _u
}

// SetNillableTypeOfStand sets the "type_of_stand" field if the given value is not nil.
func (_u *StandUpdateOne) SetNillableTypeOfStand(v *string) *StandUpdateOne {
	if v != nil {
		_u.SetTypeOfStand(*v)
	}
	return _u
}

// SetSatelliteID sets the "satellite" edge to the Satellite entity by ID.
func (_u *StandUpdateOne) SetSatelliteID(id int) *StandUpdateOne {
	_u.mutation.SetSatelliteID(id)
	return _u
}

// SetSatellite sets the "satellite" edge to the Satellite entity.
func (_u *StandUpdateOne) SetSatellite(v *Satellite) *StandUpdateOne {
	return _u.SetSatelliteID(v.ID)
}

// SetTechnicalSpecificationID sets the "technical_specification" edge to the TechnicalSpecification entity by ID.
func (_u *StandUpdateOne) SetTechnicalSpecificationID(id int) *StandUpdateOne {
	_u.mutation.SetTechnicalSpecificationID(id)
	return _u
}

// SetTechnicalSpecification sets the "technical_specification" edge to the TechnicalSpecification entity.
func (_u *StandUpdateOne) SetTechnicalSpecification(v *TechnicalSpecification) *StandUpdateOne {
	return _u.SetTechnicalSpecificationID(v.ID)
}

// AddSensorIDs adds the "sensors" edge to the Sensor entity by IDs.
func (_u *StandUpdateOne) AddSensorIDs(ids ...int) *StandUpdateOne {
	_u.mutation.AddSensorIDs(ids...)
	return _u
}

// AddSensors adds the "sensors" edges to the Sensor entity.
func (_u *StandUpdateOne) AddSensors(v ...*Sensor) *StandUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSensorIDs(ids...)
}

// AddHardwareRequirementIDs adds the "hardware_requirements" edge to the HardwareRequirement entity by IDs.
func (_u *StandUpdateOne) AddHardwareRequirementIDs(ids ...int) *StandUpdateOne {
	_u.mutation.AddHardwareRequirementIDs(ids...)
	return _u
}

// AddHardwareRequirements adds the "hardware_requirements" edges to the HardwareRequirement entity.
func (_u *StandUpdateOne) AddHardwareRequirements(v ...*HardwareRequirement) *StandUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHardwareRequirementIDs(ids...)
}

// AddPhysicalTestDatumIDs adds the "physical_test_data" edge to the PhysicalTestData entity by IDs.
func (_u *StandUpdateOne) AddPhysicalTestDatumIDs(ids ...int) *StandUpdateOne {
	_u.mutation.AddPhysicalTestDatumIDs(ids...)
	return _u
}

// AddPhysicalTestData adds the "physical_test_data" edges to the PhysicalTestData entity.
func (_u *StandUpdateOne) AddPhysicalTestData(v ...*PhysicalTestData) *StandUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPhysicalTestDatumIDs(ids...)
}

// AddMaterialOpCharacteristicIDs adds the "material_op_characteristics" edge to the MaterialOperationalCharacteristic entity by IDs.
func (_u *StandUpdateOne) AddMaterialOpCharacteristicIDs(ids ...int) *StandUpdateOne {
	_u.mutation.AddMaterialOpCharacteristicIDs(ids...)
	return _u
}

// AddMaterialOpCharacteristics adds the "material_op_characteristics" edges to the MaterialOperationalCharacteristic entity.
func (_u *StandUpdateOne) AddMaterialOpCharacteristics(v ...*MaterialOperationalCharacteristic) *StandUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMaterialOpCharacteristicIDs(ids...)
}

// Mutation returns the StandMutation object of the builder.
func (_u *StandUpdateOne) Mutation() *StandMutation {
	return _u.mutation
}

// ClearSatellite clears the "satellite" edge to the Satellite entity.
func (_u *StandUpdateOne) ClearSatellite() *StandUpdateOne {
	_u.mutation.ClearSatellite()
	return _u
}

// ClearTechnicalSpecification clears the "technical_specification" edge to the TechnicalSpecification entity.
func (_u *StandUpdateOne) ClearTechnicalSpecification() *StandUpdateOne {
	_u.mutation.ClearTechnicalSpecification()
	return _u
}

// ClearSensors clears all "sensors" edges to the Sensor entity.
func (_u *StandUpdateOne) ClearSensors() *StandUpdateOne {
	_u.mutation.ClearSensors()
	return _u
}

// RemoveSensorIDs removes the "sensors" edge to Sensor entities by IDs.
func (_u *StandUpdateOne) RemoveSensorIDs(ids ...int) *StandUpdateOne {
	_u.mutation.RemoveSensorIDs(ids...)
	return _u
}

// RemoveSensors removes "sensors" edges to Sensor entities.
func (_u *StandUpdateOne) RemoveSensors(v ...*Sensor) *StandUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSensorIDs(ids...)
}

// ClearHardwareRequirements clears all "hardware_requirements" edges to the HardwareRequirement entity.
func (_u *StandUpdateOne) ClearHardwareRequirements() *StandUpdateOne {
	_u.mutation.ClearHardwareRequirements()
	return _u
}

// RemoveHardwareRequirementIDs removes the "hardware_requirements" edge to HardwareRequirement entities by IDs.
func (_u *StandUpdateOne) RemoveHardwareRequirementIDs(ids ...int) *StandUpdateOne {
	_u.mutation.RemoveHardwareRequirementIDs(ids...)
	return _u
}

// RemoveHardwareRequirements removes "hardware_requirements" edges to HardwareRequirement entities.
func (_u *StandUpdateOne) RemoveHardwareRequirements(v ...*HardwareRequirement) *StandUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHardwareRequirementIDs(ids...)
}

// ClearPhysicalTestData clears all "physical_test_data" edges to the PhysicalTestData entity.
func (_u *StandUpdateOne) ClearPhysicalTestData() *StandUpdateOne {
	_u.mutation.ClearPhysicalTestData()
	return _u
}

// RemovePhysicalTestDatumIDs removes the "physical_test_data" edge to PhysicalTestData entities by IDs.
func (_u *StandUpdateOne) RemovePhysicalTestDatumIDs(ids ...int) *StandUpdateOne {
	_u.mutation.RemovePhysicalTestDatumIDs(ids...)
	return _u
}

// RemovePhysicalTestData removes "physical_test_data" edges to PhysicalTestData entities.
func (_u *StandUpdateOne) RemovePhysicalTestData(v ...*PhysicalTestData) *StandUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePhysicalTestDatumIDs(ids...)
}

// ClearMaterialOpCharacteristics clears all "material_op_characteristics" edges to the MaterialOperationalCharacteristic entity.
func (_u *StandUpdateOne) ClearMaterialOpCharacteristics() *StandUpdateOne {
	_u.mutation.ClearMaterialOpCharacteristics()
	return _u
}

// RemoveMaterialOpCharacteristicIDs removes the "material_op_characteristics" edge to MaterialOperationalCharacteristic entities by IDs.
func (_u *StandUpdateOne) RemoveMaterialOpCharacteristicIDs(ids ...int) *StandUpdateOne {
	_u.mutation.RemoveMaterialOpCharacteristicIDs(ids...)
	return _u
}

// RemoveMaterialOpCharacteristics removes "material_op_characteristics" edges to MaterialOperationalCharacteristic entities.
func (_u *StandUpdateOne) RemoveMaterialOpCharacteristics(v ...*MaterialOperationalCharacteristic) *StandUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMaterialOpCharacteristicIDs(ids...)
}

// Where appends a list predicates to the StandUpdate builder.
func (_u *StandUpdateOne) Where(ps ...predicate.Stand) *StandUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StandUpdateOne) Select(field string, fields ...string) *StandUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Stand entity.
func (_u *StandUpdateOne) Save(ctx context.Context) (*Stand, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StandUpdateOne) SaveX(ctx context.Context) *Stand {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StandUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StandUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StandUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stand.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StandUpdateOne) check() error {
	if v, ok := _u.mutation.NameOfStand(); ok {
		if err := stand.NameOfStandValidator(v); err != nil {
			return &ValidationError{Name: "name_of_stand", err: fmt.Errorf(`ent: validator failed for field "Stand.name_of_stand": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TypeOfStand(); ok {
		if err := stand.TypeOfStandValidator(v); err != nil {
			return &ValidationError{Name: "type_of_stand", err: fmt.Errorf(`ent: validator failed for field "Stand.type_of_stand": %w`, err)}
		}
	}
	if _u.mutation.SatelliteCleared() && len(_u.mutation.SatelliteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Stand.satellite"`)
	}
	if _u.mutation.TechnicalSpecificationCleared() && len(_u.mutation.TechnicalSpecificationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Stand.technical_specification"`)
	}
	return nil
}

func (_u *StandUpdateOne) sqlSave(ctx context.Context) (_node *Stand, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stand.Table, stand.Columns, sqlgraph.NewFieldSpec(stand.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Stand.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stand.FieldID)
		for _, f := range fields {
			if !stand.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stand.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stand.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.NameOfStand(); ok {
		_spec.SetField(stand.FieldNameOfStand, field.TypeString, value)
	}
	if value, ok := _u.mutation.TypeOfStand(); ok {
		_spec.SetField(stand.FieldTypeOfStand, field.TypeString, value)
	}
	if _u.mutation.SatelliteCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stand.SatelliteTable,
			Columns: []string{stand.SatelliteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(satellite.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SatelliteIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stand.SatelliteTable,
			Columns: []string{stand.SatelliteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(satellite.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TechnicalSpecificationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stand.TechnicalSpecificationTable,
			Columns: []string{stand.TechnicalSpecificationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(technicalspecification.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TechnicalSpecificationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stand.TechnicalSpecificationTable,
			Columns: []string{stand.TechnicalSpecificationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(technicalspecification.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SensorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stand.SensorsTable,
			Columns: []string{stand.SensorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sensor.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSensorsIDs(); len(nodes) > 0 && !_u.mutation.SensorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stand.SensorsTable,
			Columns: []string{stand.SensorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sensor.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SensorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stand.SensorsTable,
			Columns: []string{stand.SensorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sensor.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.HardwareRequirementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stand.HardwareRequirementsTable,
			Columns: []string{stand.HardwareRequirementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hardwarerequirement.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHardwareRequirementsIDs(); len(nodes) > 0 && !_u.mutation.HardwareRequirementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stand.HardwareRequirementsTable,
			Columns: []string{stand.HardwareRequirementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hardwarerequirement.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HardwareRequirementsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stand.HardwareRequirementsTable,
			Columns: []string{stand.HardwareRequirementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hardwarerequirement.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PhysicalTestDataCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stand.PhysicalTestDataTable,
			Columns: []string{stand.PhysicalTestDataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(physicaltestdata.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPhysicalTestDataIDs(); len(nodes) > 0 && !_u.mutation.PhysicalTestDataCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stand.PhysicalTestDataTable,
			Columns: []string{stand.PhysicalTestDataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(physicaltestdata.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PhysicalTestDataIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stand.PhysicalTestDataTable,
			Columns: []string{stand.PhysicalTestDataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(physicaltestdata.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MaterialOpCharacteristicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stand.MaterialOpCharacteristicsTable,
			Columns: []string{stand.MaterialOpCharacteristicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(materialoperationalcharacteristic.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMaterialOpCharacteristicsIDs(); len(nodes) > 0 && !_u.mutation.MaterialOpCharacteristicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stand.MaterialOpCharacteristicsTable,
			Columns: []string{stand.MaterialOpCharacteristicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(materialoperationalcharacteristic.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MaterialOpCharacteristicsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stand.MaterialOpCharacteristicsTable,
			Columns: []string{stand.MaterialOpCharacteristicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(materialoperationalcharacteristic.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Stand{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stand.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
