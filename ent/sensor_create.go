// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"satfab.io/satfab/ent/sensor"
	"satfab.io/satfab/ent/stand"
)

// SensorCreate is the builder for creating a Sensor entity.
type SensorCreate struct {
	config
	mutation *SensorMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *SensorCreate) SetCreatedAt(v time.Time) *SensorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SensorCreate) SetNillableCreatedAt(v *time.Time) *SensorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SensorCreate) SetUpdatedAt(v time.Time) *SensorCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SensorCreate) SetNillableUpdatedAt(v *time.Time) *SensorCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetLocation sets the "location" field.
func (_c *SensorCreate) SetLocation(v string) *SensorCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *SensorCreate) SetValue(v float64) *SensorCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_c *SensorCreate) SetNillableValue(v *float64) *SensorCreate {
	if v != nil {
		_c.SetValue(*v)
	}
	return _c
}

// SetUnit sets the "unit" field.
func (_c *SensorCreate) SetUnit(v string) *SensorCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_c *SensorCreate) SetNillableUnit(v *string) *SensorCreate {
	if v != nil {
		_c.SetUnit(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *SensorCreate) SetDescription(v string) *SensorCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetStandID sets the "stand" edge to the Stand entity by ID.
func (_c *SensorCreate) SetStandID(id int) *SensorCreate {
	_c.mutation.SetStandID(id)
	return _c
}

// SetStand sets the "stand" edge to the Stand entity.
func (_c *SensorCreate) SetStand(v *Stand) *SensorCreate {
	return _c.SetStandID(v.ID)
}

// Mutation returns the SensorMutation object of the builder.
func (_c *SensorCreate) Mutation() *SensorMutation {
	return _c.mutation
}

// Save creates the Sensor in the database.
func (_c *SensorCreate) Save(ctx context.Context) (*Sensor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SensorCreate) SaveX(ctx context.Context) *Sensor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SensorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SensorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SensorCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sensor.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sensor.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SensorCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Sensor.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Sensor.updated_at"`)}
	}
	if _, ok := _c.mutation.Location(); !ok {
		return &ValidationError{Name: "location", err: errors.New(`ent: missing required field "Sensor.location"`)}
	}
	if v, ok := _c.mutation.Location(); ok {
		if err := sensor.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`ent: validator failed for field "Sensor.location": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Sensor.description"`)}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := sensor.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Sensor.description": %w`, err)}
		}
	}
	if len(_c.mutation.StandIDs()) == 0 {
		return &ValidationError{Name: "stand", err: errors.New(`ent: missing required edge "Sensor.stand"`)}
	}
	return nil
}

func (_c *SensorCreate) sqlSave(ctx context.Context) (*Sensor, error) {
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

func (_c *SensorCreate) createSpec() (*Sensor, *sqlgraph.CreateSpec) {
	var (
		_node = &Sensor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sensor.Table, sqlgraph.NewFieldSpec(sensor.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sensor.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sensor.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(sensor.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(sensor.FieldValue, field.TypeFloat64, value)
		_node.Value = &value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(sensor.FieldUnit, field.TypeString, value)
		_node.Unit = &value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(sensor.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if nodes := _c.mutation.StandIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sensor.StandTable,
			Columns: []string{sensor.StandColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stand.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.stand_sensors = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SensorCreateBulk is the builder for creating many Sensor entities in bulk.
type SensorCreateBulk struct {
	config
	err      error
	builders []*SensorCreate
}

// Save creates the Sensor entities in the database.
func (_c *SensorCreateBulk) Save(ctx context.Context) ([]*Sensor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Sensor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SensorMutation)
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
func (_c *SensorCreateBulk) SaveX(ctx context.Context) []*Sensor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SensorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SensorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
