// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"satfab.io/satfab/ent/calendarstage"
	"satfab.io/satfab/ent/electronics"
	"satfab.io/satfab/ent/satellite"
	"satfab.io/satfab/ent/satelliteopcharacteristic"
	"satfab.io/satfab/ent/stand"
	"satfab.io/satfab/ent/technicalspecification"
)

// SatelliteCreate is the builder for creating a Satellite entity.
type SatelliteCreate struct {
	config
	mutation *SatelliteMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *SatelliteCreate) SetCreatedAt(v time.Time) *SatelliteCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SatelliteCreate) SetNillableCreatedAt(v *time.Time) *SatelliteCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SatelliteCreate) SetUpdatedAt(v time.Time) *SatelliteCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SatelliteCreate) SetNillableUpdatedAt(v *time.Time) *SatelliteCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *SatelliteCreate) SetName(v string) *SatelliteCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetType sets the "type" field.
func (_c *SatelliteCreate) SetType(v string) *SatelliteCreate {
	_c.mutation.SetType(v)
	return _c
}

// AddElectronicIDs adds the "electronics" edge to the Electronics entity by IDs.
func (_c *SatelliteCreate) AddElectronicIDs(ids ...int) *SatelliteCreate {
	_c.mutation.AddElectronicIDs(ids...)
	return _c
}

// AddElectronics adds the "electronics" edges to the Electronics entity.
func (_c *SatelliteCreate) AddElectronics(v ...*Electronics) *SatelliteCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddElectronicIDs(ids...)
}

// AddCalendarStageIDs adds the "calendar_stages" edge to the CalendarStage entity by IDs.
func (_c *SatelliteCreate) AddCalendarStageIDs(ids ...int) *SatelliteCreate {
	_c.mutation.AddCalendarStageIDs(ids...)
	return _c
}

// AddCalendarStages adds the "calendar_stages" edges to the CalendarStage entity.
func (_c *SatelliteCreate) AddCalendarStages(v ...*CalendarStage) *SatelliteCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCalendarStageIDs(ids...)
}

// AddTechnicalSpecificationIDs adds the "technical_specifications" edge to the TechnicalSpecification entity by IDs.
func (_c *SatelliteCreate) AddTechnicalSpecificationIDs(ids ...int) *SatelliteCreate {
	_c.mutation.AddTechnicalSpecificationIDs(ids...)
	return _c
}

// AddTechnicalSpecifications adds the "technical_specifications" edges to the TechnicalSpecification entity.
func (_c *SatelliteCreate) AddTechnicalSpecifications(v ...*TechnicalSpecification) *SatelliteCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTechnicalSpecificationIDs(ids...)
}

// AddOpCharacteristicIDs adds the "op_characteristics" edge to the SatelliteOpCharacteristic entity by IDs.
func (_c *SatelliteCreate) AddOpCharacteristicIDs(ids ...int) *SatelliteCreate {
	_c.mutation.AddOpCharacteristicIDs(ids...)
	return _c
}

// AddOpCharacteristics adds the "op_characteristics" edges to the SatelliteOpCharacteristic entity.
func (_c *SatelliteCreate) AddOpCharacteristics(v ...*SatelliteOpCharacteristic) *SatelliteCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOpCharacteristicIDs(ids...)
}

// AddStandIDs adds the "stands" edge to the Stand entity by IDs.
func (_c *SatelliteCreate) AddStandIDs(ids ...int) *SatelliteCreate {
	_c.mutation.AddStandIDs(ids...)
	return _c
}

// AddStands adds the "stands" edges to the Stand entity.
func (_c *SatelliteCreate) AddStands(v ...*Stand) *SatelliteCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStandIDs(ids...)
}

// Mutation returns the SatelliteMutation object of the builder.
func (_c *SatelliteCreate) Mutation() *SatelliteMutation {
	return _c.mutation
}

// Save creates the Satellite in the database.
func (_c *SatelliteCreate) Save(ctx context.Context) (*Satellite, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SatelliteCreate) SaveX(ctx context.Context) *Satellite {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SatelliteCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SatelliteCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SatelliteCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := satellite.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := satellite.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SatelliteCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Satellite.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Satellite.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Satellite.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := satellite.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Satellite.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Satellite.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := satellite.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Satellite.type": %w`, err)}
		}
	}
	return nil
}

func (_c *SatelliteCreate) sqlSave(ctx context.Context) (*Satellite, error) {
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

func (_c *SatelliteCreate) createSpec() (*Satellite, *sqlgraph.CreateSpec) {
	var (
		_node = &Satellite{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(satellite.Table, sqlgraph.NewFieldSpec(satellite.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(satellite.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(satellite.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(satellite.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(satellite.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if nodes := _c.mutation.ElectronicsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   satellite.ElectronicsTable,
			Columns: []string{satellite.ElectronicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(electronics.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CalendarStagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   satellite.CalendarStagesTable,
			Columns: []string{satellite.CalendarStagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(calendarstage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TechnicalSpecificationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   satellite.TechnicalSpecificationsTable,
			Columns: []string{satellite.TechnicalSpecificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(technicalspecification.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OpCharacteristicsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   satellite.OpCharacteristicsTable,
			Columns: []string{satellite.OpCharacteristicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(satelliteopcharacteristic.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StandsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   satellite.StandsTable,
			Columns: []string{satellite.StandsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stand.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SatelliteCreateBulk is the builder for creating many Satellite entities in bulk.
type SatelliteCreateBulk struct {
	config
	err      error
	builders []*SatelliteCreate
}

// Save creates the Satellite entities in the database.
func (_c *SatelliteCreateBulk) Save(ctx context.Context) ([]*Satellite, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Satellite, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SatelliteMutation)
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
func (_c *SatelliteCreateBulk) SaveX(ctx context.Context) []*Satellite {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SatelliteCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SatelliteCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
