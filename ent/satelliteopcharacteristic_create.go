// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"satfab.io/satfab/ent/satellite"
	"satfab.io/satfab/ent/satelliteopcharacteristic"
)

// SatelliteOpCharacteristicCreate is the builder for creating a SatelliteOpCharacteristic entity.
type SatelliteOpCharacteristicCreate struct {
	config
	mutation *SatelliteOpCharacteristicMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *SatelliteOpCharacteristicCreate) SetCreatedAt(v time.Time) *SatelliteOpCharacteristicCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SatelliteOpCharacteristicCreate) SetNillableCreatedAt(v *time.Time) *SatelliteOpCharacteristicCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SatelliteOpCharacteristicCreate) SetUpdatedAt(v time.Time) *SatelliteOpCharacteristicCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SatelliteOpCharacteristicCreate) SetNillableUpdatedAt(v *time.Time) *SatelliteOpCharacteristicCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetParameterName sets the "parameter_name" field.
func (_c *SatelliteOpCharacteristicCreate) SetParameterName(v string) *SatelliteOpCharacteristicCreate {
	_c.mutation.SetParameterName(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *SatelliteOpCharacteristicCreate) SetValue(v float64) *SatelliteOpCharacteristicCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetUnit sets the "unit" field.
func (_c *SatelliteOpCharacteristicCreate) SetUnit(v string) *SatelliteOpCharacteristicCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetSatelliteID sets the "satellite" edge to the Satellite entity by ID.
func (_c *SatelliteOpCharacteristicCreate) SetSatelliteID(id int) *SatelliteOpCharacteristicCreate {
	_c.mutation.SetSatelliteID(id)
	return _c
}

// SetSatellite sets the "satellite" edge to the Satellite entity.
func (_c *SatelliteOpCharacteristicCreate) SetSatellite(v *Satellite) *SatelliteOpCharacteristicCreate {
	return _c.SetSatelliteID(v.ID)
}

// Mutation returns the SatelliteOpCharacteristicMutation object of the builder.
func (_c *SatelliteOpCharacteristicCreate) Mutation() *SatelliteOpCharacteristicMutation {
	return _c.mutation
}

// Save creates the SatelliteOpCharacteristic in the database.
func (_c *SatelliteOpCharacteristicCreate) Save(ctx context.Context) (*SatelliteOpCharacteristic, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SatelliteOpCharacteristicCreate) SaveX(ctx context.Context) *SatelliteOpCharacteristic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SatelliteOpCharacteristicCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SatelliteOpCharacteristicCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SatelliteOpCharacteristicCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := satelliteopcharacteristic.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := satelliteopcharacteristic.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SatelliteOpCharacteristicCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SatelliteOpCharacteristic.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SatelliteOpCharacteristic.updated_at"`)}
	}
	if _, ok := _c.mutation.ParameterName(); !ok {
		return &ValidationError{Name: "parameter_name", err: errors.New(`ent: missing required field "SatelliteOpCharacteristic.parameter_name"`)}
	}
	if v, ok := _c.mutation.ParameterName(); ok {
		if err := satelliteopcharacteristic.ParameterNameValidator(v); err != nil {
			return &ValidationError{Name: "parameter_name", err: fmt.Errorf(`ent: validator failed for field "SatelliteOpCharacteristic.parameter_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "SatelliteOpCharacteristic.value"`)}
	}
	if _, ok := _c.mutation.Unit(); !ok {
		return &ValidationError{Name: "unit", err: errors.New(`ent: missing required field "SatelliteOpCharacteristic.unit"`)}
	}
	if v, ok := _c.mutation.Unit(); ok {
		if err := satelliteopcharacteristic.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "SatelliteOpCharacteristic.unit": %w`, err)}
		}
	}
	if len(_c.mutation.SatelliteIDs()) == 0 {
		return &ValidationError{Name: "satellite", err: errors.New(`ent: missing required edge "SatelliteOpCharacteristic.satellite"`)}
	}
	return nil
}

func (_c *SatelliteOpCharacteristicCreate) sqlSave(ctx context.Context) (*SatelliteOpCharacteristic, error) {
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

func (_c *SatelliteOpCharacteristicCreate) createSpec() (*SatelliteOpCharacteristic, *sqlgraph.CreateSpec) {
	var (
		_node = &SatelliteOpCharacteristic{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(satelliteopcharacteristic.Table, sqlgraph.NewFieldSpec(satelliteopcharacteristic.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(satelliteopcharacteristic.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(satelliteopcharacteristic.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ParameterName(); ok {
		_spec.SetField(satelliteopcharacteristic.FieldParameterName, field.TypeString, value)
		_node.ParameterName = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(satelliteopcharacteristic.FieldValue, field.TypeFloat64, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(satelliteopcharacteristic.FieldUnit, field.TypeString, value)
		_node.Unit = value
	}
	if nodes := _c.mutation.SatelliteIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   satelliteopcharacteristic.SatelliteTable,
			Columns: []string{satelliteopcharacteristic.SatelliteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(satellite.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.satellite_op_characteristics = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SatelliteOpCharacteristicCreateBulk is the builder for creating many SatelliteOpCharacteristic entities in bulk.
type SatelliteOpCharacteristicCreateBulk struct {
	config
	err      error
	builders []*SatelliteOpCharacteristicCreate
}

// Save creates the SatelliteOpCharacteristic entities in the database.
func (_c *SatelliteOpCharacteristicCreateBulk) Save(ctx context.Context) ([]*SatelliteOpCharacteristic, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SatelliteOpCharacteristic, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SatelliteOpCharacteristicMutation)
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
func (_c *SatelliteOpCharacteristicCreateBulk) SaveX(ctx context.Context) []*SatelliteOpCharacteristic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SatelliteOpCharacteristicCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SatelliteOpCharacteristicCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
