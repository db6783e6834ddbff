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
	"satfab.io/satfab/ent/materialfunctionalcharacteristic"
)

// MaterialFunctionalCharacteristicCreate is the builder for creating a MaterialFunctionalCharacteristic entity.
type MaterialFunctionalCharacteristicCreate struct {
	config
	mutation *MaterialFunctionalCharacteristicMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *MaterialFunctionalCharacteristicCreate) SetCreatedAt(v time.Time) *MaterialFunctionalCharacteristicCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MaterialFunctionalCharacteristicCreate) SetNillableCreatedAt(v *time.Time) *MaterialFunctionalCharacteristicCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MaterialFunctionalCharacteristicCreate) SetUpdatedAt(v time.Time) *MaterialFunctionalCharacteristicCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MaterialFunctionalCharacteristicCreate) SetNillableUpdatedAt(v *time.Time) *MaterialFunctionalCharacteristicCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUnit sets the "unit" field.
func (_c *MaterialFunctionalCharacteristicCreate) SetUnit(v string) *MaterialFunctionalCharacteristicCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *MaterialFunctionalCharacteristicCreate) SetValue(v float64) *MaterialFunctionalCharacteristicCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *MaterialFunctionalCharacteristicCreate) SetDescription(v string) *MaterialFunctionalCharacteristicCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetMaterialID sets the "material" edge to the Material entity by ID.
func (_c *MaterialFunctionalCharacteristicCreate) SetMaterialID(id int) *MaterialFunctionalCharacteristicCreate {
	_c.mutation.SetMaterialID(id)
	return _c
}

// SetMaterial sets the "material" edge to the Material entity.
func (_c *MaterialFunctionalCharacteristicCreate) SetMaterial(v *Material) *MaterialFunctionalCharacteristicCreate {
	return _c.SetMaterialID(v.ID)
}

// Mutation returns the MaterialFunctionalCharacteristicMutation object of the builder.
func (_c *MaterialFunctionalCharacteristicCreate) Mutation() *MaterialFunctionalCharacteristicMutation {
	return _c.mutation
}

// Save creates the MaterialFunctionalCharacteristic in the database.
func (_c *MaterialFunctionalCharacteristicCreate) Save(ctx context.Context) (*MaterialFunctionalCharacteristic, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MaterialFunctionalCharacteristicCreate) SaveX(ctx context.Context) *MaterialFunctionalCharacteristic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MaterialFunctionalCharacteristicCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MaterialFunctionalCharacteristicCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MaterialFunctionalCharacteristicCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := materialfunctionalcharacteristic.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := materialfunctionalcharacteristic.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MaterialFunctionalCharacteristicCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MaterialFunctionalCharacteristic.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MaterialFunctionalCharacteristic.updated_at"`)}
	}
	if _, ok := _c.mutation.Unit(); !ok {
		return &ValidationError{Name: "unit", err: errors.New(`ent: missing required field "MaterialFunctionalCharacteristic.unit"`)}
	}
	if v, ok := _c.mutation.Unit(); ok {
		if err := materialfunctionalcharacteristic.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "MaterialFunctionalCharacteristic.unit": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "MaterialFunctionalCharacteristic.value"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "MaterialFunctionalCharacteristic.description"`)}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := materialfunctionalcharacteristic.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "MaterialFunctionalCharacteristic.description": %w`, err)}
		}
	}
	if len(_c.mutation.MaterialIDs()) == 0 {
		return &ValidationError{Name: "material", err: errors.New(`ent: missing required edge "MaterialFunctionalCharacteristic.material"`)}
	}
	return nil
}

func (_c *MaterialFunctionalCharacteristicCreate) sqlSave(ctx context.Context) (*MaterialFunctionalCharacteristic, error) {
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

func (_c *MaterialFunctionalCharacteristicCreate) createSpec() (*MaterialFunctionalCharacteristic, *sqlgraph.CreateSpec) {
	var (
		_node = &MaterialFunctionalCharacteristic{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(materialfunctionalcharacteristic.Table, sqlgraph.NewFieldSpec(materialfunctionalcharacteristic.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(materialfunctionalcharacteristic.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(materialfunctionalcharacteristic.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(materialfunctionalcharacteristic.FieldUnit, field.TypeString, value)
		_node.Unit = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(materialfunctionalcharacteristic.FieldValue, field.TypeFloat64, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(materialfunctionalcharacteristic.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if nodes := _c.mutation.MaterialIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   materialfunctionalcharacteristic.MaterialTable,
			Columns: []string{materialfunctionalcharacteristic.MaterialColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(material.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.material_functional_characteristics = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MaterialFunctionalCharacteristicCreateBulk is the builder for creating many MaterialFunctionalCharacteristic entities in bulk.
type MaterialFunctionalCharacteristicCreateBulk struct {
	config
	err      error
	builders []*MaterialFunctionalCharacteristicCreate
}

// Save creates the MaterialFunctionalCharacteristic entities in the database.
func (_c *MaterialFunctionalCharacteristicCreateBulk) Save(ctx context.Context) ([]*MaterialFunctionalCharacteristic, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MaterialFunctionalCharacteristic, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MaterialFunctionalCharacteristicMutation)
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
func (_c *MaterialFunctionalCharacteristicCreateBulk) SaveX(ctx context.Context) []*MaterialFunctionalCharacteristic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MaterialFunctionalCharacteristicCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MaterialFunctionalCharacteristicCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
