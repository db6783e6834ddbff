// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"satfab.io/satfab/ent/hardwarerequirement"
	"satfab.io/satfab/ent/materialoperationalcharacteristic"
	"satfab.io/satfab/ent/physicaltestdata"
	"satfab.io/satfab/ent/satellite"
	"satfab.io/satfab/ent/sensor"
	"satfab.io/satfab/ent/stand"
	"satfab.io/satfab/ent/technicalspecification"
)

// StandCreate is the builder for creating a Stand entity.
type StandCreate struct {
	config
	mutation *StandMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *StandCreate) SetCreatedAt(v time.Time) *StandCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StandCreate) SetNillableCreatedAt(v *time.Time) *StandCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StandCreate) SetUpdatedAt(v time.Time) *StandCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StandCreate) SetNillableUpdatedAt(v *time.Time) *StandCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetNameOfStand sets the "name_of_stand" field.
func (_c *StandCreate) SetNameOfStand(v string) *StandCreate {
	_c.mutation.SetNameOfStand(v)
	return _c
}

// SetTypeOfStand sets the "type_of_stand" field.
func (_c *StandCreate) SetTypeOfStand(v string) *StandCreate {
	_c.mutation.SetTypeOfStand(v)
	return _c
}

// SetSatelliteID sets the "satellite" edge to the Satellite entity by ID.
func (_c *StandCreate) SetSatelliteID(id int) *StandCreate {
	_c.mutation.SetSatelliteID(id)
	return _c
}

// SetSatellite sets the "satellite" edge to the Satellite entity.
func (_c *StandCreate) SetSatellite(v *Satellite) *StandCreate {
	return _c.SetSatelliteID(v.ID)
}

// SetTechnicalSpecificationID sets the "technical_specification" edge to the TechnicalSpecification entity by ID.
func (_c *StandCreate) SetTechnicalSpecificationID(id int) *StandCreate {
	_c.mutation.SetTechnicalSpecificationID(id)
	return _c
}

// SetTechnicalSpecification sets the "technical_specification" edge to the TechnicalSpecification entity.
func (_c *StandCreate) SetTechnicalSpecification(v *TechnicalSpecification) *StandCreate {
	return _c.SetTechnicalSpecificationID(v.ID)
}

// AddSensorIDs adds the "sensors" edge to the Sensor entity by IDs.
func (_c *StandCreate) AddSensorIDs(ids ...int) *StandCreate {
	_c.mutation.AddSensorIDs(ids...)
	return _c
}

// AddSensors adds the "sensors" edges to the Sensor entity.
func (_c *StandCreate) AddSensors(v ...*Sensor) *StandCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSensorIDs(ids...)
}

// AddHardwareRequirementIDs adds the "hardware_requirements" edge to the HardwareRequirement entity by IDs.
func (_c *StandCreate) AddHardwareRequirementIDs(ids ...int) *StandCreate {
	_c.mutation.AddHardwareRequirementIDs(ids...)
	return _c
}

// AddHardwareRequirements adds the "hardware_requirements" edges to the HardwareRequirement entity.
func (_c *StandCreate) AddHardwareRequirements(v ...*HardwareRequirement) *StandCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddHardwareRequirementIDs(ids...)
}

// AddPhysicalTestDatumIDs adds the "physical_test_data" edge to the PhysicalTestData entity by IDs.
func (_c *StandCreate) AddPhysicalTestDatumIDs(ids ...int) *StandCreate {
	_c.mutation.AddPhysicalTestDatumIDs(ids...)
	return _c
}

// AddPhysicalTestData adds the "physical_test_data" edges to the PhysicalTestData entity.
func (_c *StandCreate) AddPhysicalTestData(v ...*PhysicalTestData) *StandCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPhysicalTestDatumIDs(ids...)
}

// AddMaterialOpCharacteristicIDs adds the "material_op_characteristics" edge to the MaterialOperationalCharacteristic entity by IDs.
func (_c *StandCreate) AddMaterialOpCharacteristicIDs(ids ...int) *StandCreate {
	_c.mutation.AddMaterialOpCharacteristicIDs(ids...)
	return _c
}

// AddMaterialOpCharacteristics adds the "material_op_characteristics" edges to the MaterialOperationalCharacteristic entity.
func (_c *StandCreate) AddMaterialOpCharacteristics(v ...*MaterialOperationalCharacteristic) *StandCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMaterialOpCharacteristicIDs(ids...)
}

// Mutation returns the StandMutation object of the builder.
func (_c *StandCreate) Mutation() *StandMutation {
	return _c.mutation
}

// Save creates the Stand in the database.
func (_c *StandCreate) Save(ctx context.Context) (*Stand, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StandCreate) SaveX(ctx context.Context) *Stand {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StandCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StandCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StandCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stand.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := stand.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StandCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Stand.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Stand.updated_at"`)}
	}
	if _, ok := _c.mutation.NameOfStand(); !ok {
		return &ValidationError{Name: "name_of_stand", err: errors.New(`ent: missing required field "Stand.name_of_stand"`)}
	}
	if v, ok := _c.mutation.NameOfStand(); ok {
		if err := stand.NameOfStandValidator(v); err != nil {
			return &ValidationError{Name: "name_of_stand", err: fmt.Errorf(`ent: validator failed for field "Stand.name_of_stand": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TypeOfStand(); !ok {
		return &ValidationError{Name: "type_of_stand", err: errors.New(`ent: missing required field "Stand.type_of_stand"`)}
	}
	if v, ok := _c.mutation.TypeOfStand(); ok {
		if err := stand.TypeOfStandValidator(v); err != nil {
			return &ValidationError{Name: "type_of_stand", err: fmt.Errorf(`ent: validator failed for field "Stand.type_of_stand": %w`, err)}
		}
	}
	if len(_c.mutation.SatelliteIDs()) == 0 {
		return &ValidationError{Name: "satellite", err: errors.New(`ent: missing required edge "Stand.satellite"`)}
	}
	if len(_c.mutation.TechnicalSpecificationIDs()) == 0 {
		return &ValidationError{Name: "technical_specification", err: errors.New(`ent: missing required edge "Stand.technical_specification"`)}
	}
	return nil
}

func (_c *StandCreate) sqlSave(ctx context.Context) (*Stand, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StandCreate) createSpec() (*Stand, *sqlgraph.CreateSpec) {
	var (
		_node = &Stand{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stand.Table, sqlgraph.NewFieldSpec(stand.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stand.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(stand.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.NameOfStand(); ok {
		_spec.SetField(stand.FieldNameOfStand, field.TypeString, value)
		_node.NameOfStand = value
	}
	if value, ok := _c.mutation.TypeOfStand(); ok {
		_spec.SetField(stand.FieldTypeOfStand, field.TypeString, value)
		_node.TypeOfStand = value
	}
	if nodes := _c.mutation.SatelliteIDs(); len(nodes) > 0 {
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
		_node.satellite_stands = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TechnicalSpecificationIDs(); len(nodes) > 0 {
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
		_node.technical_specification_stands = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SensorsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.HardwareRequirementsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PhysicalTestDataIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MaterialOpCharacteristicsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// StandCreateBulk is the builder for creating many Stand entities in bulk.
type StandCreateBulk struct {
	config
	err      error
	builders []*StandCreate
}

// Save creates the Stand entities in the database.
func (_c *StandCreateBulk) Save(ctx context.Context) ([]*Stand, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Stand, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StandMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StandCreateBulk) SaveX(ctx context.Context) []*Stand {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StandCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StandCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
