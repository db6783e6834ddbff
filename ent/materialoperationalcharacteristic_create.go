// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"satfab.io/satfab/ent/material"
	"satfab.io/satfab/ent/materialoperationalcharacteristic"
	"satfab.io/satfab/ent/stand"
)

// MaterialOperationalCharacteristicCreate is the builder for creating a MaterialOperationalCharacteristic entity.
type MaterialOperationalCharacteristicCreate struct {
	config
	mutation *MaterialOperationalCharacteristicMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *MaterialOperationalCharacteristicCreate) SetCreatedAt(v time.Time) *MaterialOperationalCharacteristicCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MaterialOperationalCharacteristicCreate) SetNillableCreatedAt(v *time.Time) *MaterialOperationalCharacteristicCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MaterialOperationalCharacteristicCreate) SetUpdatedAt(v time.Time) *MaterialOperationalCharacteristicCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MaterialOperationalCharacteristicCreate) SetNillableUpdatedAt(v *time.Time) *MaterialOperationalCharacteristicCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUnit sets the "unit" field.
func (_c *MaterialOperationalCharacteristicCreate) SetUnit(v string) *MaterialOperationalCharacteristicCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *MaterialOperationalCharacteristicCreate) SetValue(v float64) *MaterialOperationalCharacteristicCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *MaterialOperationalCharacteristicCreate) SetDescription(v string) *MaterialOperationalCharacteristicCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *MaterialOperationalCharacteristicCreate) SetNillableDescription(v *string) *MaterialOperationalCharacteristicCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetMaterialID sets the "material" edge to the Material entity by ID.
func (_c *MaterialOperationalCharacteristicCreate) SetMaterialID(id int) *MaterialOperationalCharacteristicCreate {
	_c.mutation.SetMaterialID(id)
	return _c
}

// SetMaterial sets the "material" edge to the Material entity.
func (_c *MaterialOperationalCharacteristicCreate) SetMaterial(v *Material) *MaterialOperationalCharacteristicCreate {
	return _c.SetMaterialID(v.ID)
}

// SetStandID sets the "stand" edge to the Stand entity by ID.
func (_c *MaterialOperationalCharacteristicCreate) SetStandID(id int) *MaterialOperationalCharacteristicCreate {
	_c.mutation.SetStandID(id)
	return _c
}

// SetStand sets the "stand" edge to the Stand entity.
func (_c *MaterialOperationalCharacteristicCreate) SetStand(v *Stand) *MaterialOperationalCharacteristicCreate {
	return _c.SetStandID(v.ID)
}

// Mutation returns the MaterialOperationalCharacteristicMutation object of the builder.
func (_c *MaterialOperationalCharacteristicCreate) Mutation() *MaterialOperationalCharacteristicMutation {
	return _c.mutation
}

// Save creates the MaterialOperationalCharacteristic in the database.
func (_c *MaterialOperationalCharacteristicCreate) Save(ctx context.Context) (*MaterialOperationalCharacteristic, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MaterialOperationalCharacteristicCreate) SaveX(ctx context.Context) *MaterialOperationalCharacteristic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MaterialOperationalCharacteristicCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MaterialOperationalCharacteristicCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MaterialOperationalCharacteristicCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := materialoperationalcharacteristic.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := materialoperationalcharacteristic.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MaterialOperationalCharacteristicCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MaterialOperationalCharacteristic.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MaterialOperationalCharacteristic.updated_at"`)}
	}
	if _, ok := _c.mutation.Unit(); !ok {
		return &ValidationError{Name: "unit", err: errors.New(`ent: missing required field "MaterialOperationalCharacteristic.unit"`)}
	}
	if v, ok := _c.mutation.Unit(); ok {
		if err := materialoperationalcharacteristic.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "MaterialOperationalCharacteristic.unit": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "MaterialOperationalCharacteristic.value"`)}
	}
	if len(_c.mutation.MaterialIDs()) == 0 {
		return &ValidationError{Name: "material", err: errors.New(`ent: missing required edge "MaterialOperationalCharacteristic.material"`)}
	}
	if len(_c.mutation.StandIDs()) == 0 {
		return &ValidationError{Name: "stand", err: errors.New(`ent: missing required edge "MaterialOperationalCharacteristic.stand"`)}
	}
	return nil
}

func (_c *MaterialOperationalCharacteristicCreate) sqlSave(ctx context.Context) (*MaterialOperationalCharacteristic, error) {
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

func (_c *MaterialOperationalCharacteristicCreate) createSpec() (*MaterialOperationalCharacteristic, *sqlgraph.CreateSpec) {
	var (
		_node = &MaterialOperationalCharacteristic{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(materialoperationalcharacteristic.Table, sqlgraph.NewFieldSpec(materialoperationalcharacteristic.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(materialoperationalcharacteristic.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(materialoperationalcharacteristic.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(materialoperationalcharacteristic.FieldUnit, field.TypeString, value)
		_node.Unit = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(materialoperationalcharacteristic.FieldValue, field.TypeFloat64, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(materialoperationalcharacteristic.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if nodes := _c.mutation.MaterialIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   materialoperationalcharacteristic.MaterialTable,
			Columns: []string{materialoperationalcharacteristic.MaterialColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(material.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.material_operational_characteristics = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StandIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   materialoperationalcharacteristic.StandTable,
			Columns: []string{materialoperationalcharacteristic.StandColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stand.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.stand_material_op_characteristics = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MaterialOperationalCharacteristicCreateBulk is the builder for creating many MaterialOperationalCharacteristic entities in bulk.
type MaterialOperationalCharacteristicCreateBulk struct {
	config
	err      error
	builders []*MaterialOperationalCharacteristicCreate
}

// Save creates the MaterialOperationalCharacteristic entities in the database.
func (_c *MaterialOperationalCharacteristicCreateBulk) Save(ctx context.Context) ([]*MaterialOperationalCharacteristic, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MaterialOperationalCharacteristic, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MaterialOperationalCharacteristicMutation)
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
func (_c *MaterialOperationalCharacteristicCreateBulk) SaveX(ctx context.Context) []*MaterialOperationalCharacteristic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MaterialOperationalCharacteristicCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MaterialOperationalCharacteristicCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
