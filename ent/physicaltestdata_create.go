// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"satfab.io/satfab/ent/physicaltestdata"
	"satfab.io/satfab/ent/stand"
)

// PhysicalTestDataCreate is the builder for creating a PhysicalTestData entity.
type PhysicalTestDataCreate struct {
	config
	mutation *PhysicalTestDataMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *PhysicalTestDataCreate) SetCreatedAt(v time.Time) *PhysicalTestDataCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PhysicalTestDataCreate) SetNillableCreatedAt(v *time.Time) *PhysicalTestDataCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PhysicalTestDataCreate) SetUpdatedAt(v time.Time) *PhysicalTestDataCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PhysicalTestDataCreate) SetNillableUpdatedAt(v *time.Time) *PhysicalTestDataCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetValue sets the "value" field.
func (_c *PhysicalTestDataCreate) SetValue(v float64) *PhysicalTestDataCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetUnit sets the "unit" field.
func (_c *PhysicalTestDataCreate) SetUnit(v string) *PhysicalTestDataCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *PhysicalTestDataCreate) SetDescription(v string) *PhysicalTestDataCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetStandID sets the "stand" edge to the Stand entity by ID.
func (_c *PhysicalTestDataCreate) SetStandID(id int) *PhysicalTestDataCreate {
	_c.mutation.SetStandID(id)
	return _c
}

// SetStand sets the "stand" edge to the Stand entity.
func (_c *PhysicalTestDataCreate) SetStand(v *Stand) *PhysicalTestDataCreate {
	return _c.SetStandID(v.ID)
}

// Mutation returns the PhysicalTestDataMutation object of the builder.
func (_c *PhysicalTestDataCreate) Mutation() *PhysicalTestDataMutation {
	return _c.mutation
}

// Save creates the PhysicalTestData in the database.
func (_c *PhysicalTestDataCreate) Save(ctx context.Context) (*PhysicalTestData, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PhysicalTestDataCreate) SaveX(ctx context.Context) *PhysicalTestData {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PhysicalTestDataCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PhysicalTestDataCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PhysicalTestDataCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := physicaltestdata.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := physicaltestdata.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PhysicalTestDataCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PhysicalTestData.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PhysicalTestData.updated_at"`)}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "PhysicalTestData.value"`)}
	}
	if _, ok := _c.mutation.Unit(); !ok {
		return &ValidationError{Name: "unit", err: errors.New(`ent: missing required field "PhysicalTestData.unit"`)}
	}
	if v, ok := _c.mutation.Unit(); ok {
		if err := physicaltestdata.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "PhysicalTestData.unit": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "PhysicalTestData.description"`)}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := physicaltestdata.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "PhysicalTestData.description": %w`, err)}
		}
	}
	if len(_c.mutation.StandIDs()) == 0 {
		return &ValidationError{Name: "stand", err: errors.New(`ent: missing required edge "PhysicalTestData.stand"`)}
	}
	return nil
}

func (_c *PhysicalTestDataCreate) sqlSave(ctx context.Context) (*PhysicalTestData, error) {
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

func (_c *PhysicalTestDataCreate) createSpec() (*PhysicalTestData, *sqlgraph.CreateSpec) {
	var (
		_node = &PhysicalTestData{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(physicaltestdata.Table, sqlgraph.NewFieldSpec(physicaltestdata.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(physicaltestdata.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(physicaltestdata.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(physicaltestdata.FieldValue, field.TypeFloat64, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(physicaltestdata.FieldUnit, field.TypeString, value)
		_node.Unit = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(physicaltestdata.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if nodes := _c.mutation.StandIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   physicaltestdata.StandTable,
			Columns: []string{physicaltestdata.StandColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stand.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.stand_physical_test_data = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PhysicalTestDataCreateBulk is the builder for creating many PhysicalTestData entities in bulk.
type PhysicalTestDataCreateBulk struct {
	config
	err      error
	builders []*PhysicalTestDataCreate
}

// Save creates the PhysicalTestData entities in the database.
func (_c *PhysicalTestDataCreateBulk) Save(ctx context.Context) ([]*PhysicalTestData, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PhysicalTestData, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PhysicalTestDataMutation)
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
func (_c *PhysicalTestDataCreateBulk) SaveX(ctx context.Context) []*PhysicalTestData {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PhysicalTestDataCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PhysicalTestDataCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
