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
	"satfab.io/satfab/ent/stand"
)

// HardwareRequirementCreate is the builder for creating a HardwareRequirement entity.
type HardwareRequirementCreate struct {
	config
	mutation *HardwareRequirementMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *HardwareRequirementCreate) SetCreatedAt(v time.Time) *HardwareRequirementCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HardwareRequirementCreate) SetNillableCreatedAt(v *time.Time) *HardwareRequirementCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *HardwareRequirementCreate) SetUpdatedAt(v time.Time) *HardwareRequirementCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *HardwareRequirementCreate) SetNillableUpdatedAt(v *time.Time) *HardwareRequirementCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetValue sets the "value" field.
func (_c *HardwareRequirementCreate) SetValue(v float64) *HardwareRequirementCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetUnit sets the "unit" field.
func (_c *HardwareRequirementCreate) SetUnit(v string) *HardwareRequirementCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetStandID sets the "stand" edge to the Stand entity by ID.
func (_c *HardwareRequirementCreate) SetStandID(id int) *HardwareRequirementCreate {
	_c.mutation.SetStandID(id)
	return _c
}

// SetStand sets the "stand" edge to the Stand entity.
func (_c *HardwareRequirementCreate) SetStand(v *Stand) *HardwareRequirementCreate {
	return _c.SetStandID(v.ID)
}

// Mutation returns the HardwareRequirementMutation object of the builder.
func (_c *HardwareRequirementCreate) Mutation() *HardwareRequirementMutation {
	return _c.mutation
}

// Save creates the HardwareRequirement in the database.
func (_c *HardwareRequirementCreate) Save(ctx context.Context) (*HardwareRequirement, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HardwareRequirementCreate) SaveX(ctx context.Context) *HardwareRequirement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HardwareRequirementCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HardwareRequirementCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HardwareRequirementCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := hardwarerequirement.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := hardwarerequirement.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HardwareRequirementCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "HardwareRequirement.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "HardwareRequirement.updated_at"`)}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "HardwareRequirement.value"`)}
	}
	if _, ok := _c.mutation.Unit(); !ok {
		return &ValidationError{Name: "unit", err: errors.New(`ent: missing required field "HardwareRequirement.unit"`)}
	}
	if v, ok := _c.mutation.Unit(); ok {
		if err := hardwarerequirement.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "HardwareRequirement.unit": %w`, err)}
		}
	}
	if len(_c.mutation.StandIDs()) == 0 {
		return &ValidationError{Name: "stand", err: errors.New(`ent: missing required edge "HardwareRequirement.stand"`)}
	}
	return nil
}

func (_c *HardwareRequirementCreate) sqlSave(ctx context.Context) (*HardwareRequirement, error) {
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

func (_c *HardwareRequirementCreate) createSpec() (*HardwareRequirement, *sqlgraph.CreateSpec) {
	var (
		_node = &HardwareRequirement{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(hardwarerequirement.Table, sqlgraph.NewFieldSpec(hardwarerequirement.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(hardwarerequirement.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(hardwarerequirement.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(hardwarerequirement.FieldValue, field.TypeFloat64, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(hardwarerequirement.FieldUnit, field.TypeString, value)
		_node.Unit = value
	}
	if nodes := _c.mutation.StandIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   hardwarerequirement.StandTable,
			Columns: []string{hardwarerequirement.StandColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stand.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.stand_hardware_requirements = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// HardwareRequirementCreateBulk is the builder for creating many HardwareRequirement entities in bulk.
type HardwareRequirementCreateBulk struct {
	config
	err      error
	builders []*HardwareRequirementCreate
}

// Save creates the HardwareRequirement entities in the database.
func (_c *HardwareRequirementCreateBulk) Save(ctx context.Context) ([]*HardwareRequirement, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HardwareRequirement, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HardwareRequirementMutation)
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
func (_c *HardwareRequirementCreateBulk) SaveX(ctx context.Context) []*HardwareRequirement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HardwareRequirementCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HardwareRequirementCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
