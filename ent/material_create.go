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
	"satfab.io/satfab/ent/materialoperationalcharacteristic"
)

// MaterialCreate is the builder for creating a Material entity.
type MaterialCreate struct {
	config
	mutation *MaterialMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *MaterialCreate) SetCreatedAt(v time.Time) *MaterialCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MaterialCreate) SetNillableCreatedAt(v *time.Time) *MaterialCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MaterialCreate) SetUpdatedAt(v time.Time) *MaterialCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MaterialCreate) SetNillableUpdatedAt(v *time.Time) *MaterialCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTypeOfMaterial sets the "type_of_material" field.
func (_c *MaterialCreate) SetTypeOfMaterial(v string) *MaterialCreate {
	_c.mutation.SetTypeOfMaterial(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *MaterialCreate) SetAmount(v float64) *MaterialCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetUnit sets the "unit" field.
func (_c *MaterialCreate) SetUnit(v string) *MaterialCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// AddFunctionalCharacteristicIDs adds the "functional_characteristics" edge to the MaterialFunctionalCharacteristic entity by IDs.
func (_c *MaterialCreate) AddFunctionalCharacteristicIDs(ids ...int) *MaterialCreate {
	_c.mutation.AddFunctionalCharacteristicIDs(ids...)
	return _c
}

// AddFunctionalCharacteristics adds the "functional_characteristics" edges to the MaterialFunctionalCharacteristic entity.
func (_c *MaterialCreate) AddFunctionalCharacteristics(v ...*MaterialFunctionalCharacteristic) *MaterialCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFunctionalCharacteristicIDs(ids...)
}

// AddOperationalCharacteristicIDs adds the "operational_characteristics" edge to the MaterialOperationalCharacteristic entity by IDs.
func (_c *MaterialCreate) AddOperationalCharacteristicIDs(ids ...int) *MaterialCreate {
	_c.mutation.AddOperationalCharacteristicIDs(ids...)
	return _c
}

// AddOperationalCharacteristics adds the "operational_characteristics" edges to the MaterialOperationalCharacteristic entity.
func (_c *MaterialCreate) AddOperationalCharacteristics(v ...*MaterialOperationalCharacteristic) *MaterialCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOperationalCharacteristicIDs(ids...)
}

// Mutation returns the MaterialMutation object of the builder.
func (_c *MaterialCreate) Mutation() *MaterialMutation {
	return _c.mutation
}

// Save creates the Material in the database.
func (_c *MaterialCreate) Save(ctx context.Context) (*Material, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MaterialCreate) SaveX(ctx context.Context) *Material {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MaterialCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MaterialCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MaterialCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := material.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := material.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MaterialCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Material.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Material.updated_at"`)}
	}
	if _, ok := _c.mutation.TypeOfMaterial(); !ok {
		return &ValidationError{Name: "type_of_material", err: errors.New(`ent: missing required field "Material.type_of_material"`)}
	}
	if v, ok := _c.mutation.TypeOfMaterial(); ok {
		if err := material.TypeOfMaterialValidator(v); err != nil {
			return &ValidationError{Name: "type_of_material", err: fmt.Errorf(`ent: validator failed for field "Material.type_of_material": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "Material.amount"`)}
	}
	if _, ok := _c.mutation.Unit(); !ok {
		return &ValidationError{Name: "unit", err: errors.New(`ent: missing required field "Material.unit"`)}
	}
	if v, ok := _c.mutation.Unit(); ok {
		if err := material.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "Material.unit": %w`, err)}
		}
	}
	return nil
}

func (_c *MaterialCreate) sqlSave(ctx context.Context) (*Material, error) {
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

func (_c *MaterialCreate) createSpec() (*Material, *sqlgraph.CreateSpec) {
	var (
		_node = &Material{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(material.Table, sqlgraph.NewFieldSpec(material.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(material.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(material.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.TypeOfMaterial(); ok {
		_spec.SetField(material.FieldTypeOfMaterial, field.TypeString, value)
		_node.TypeOfMaterial = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(material.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(material.FieldUnit, field.TypeString, value)
		_node.Unit = value
	}
	if nodes := _c.mutation.FunctionalCharacteristicsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   material.FunctionalCharacteristicsTable,
			Columns: []string{material.FunctionalCharacteristicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(materialfunctionalcharacteristic.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OperationalCharacteristicsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   material.OperationalCharacteristicsTable,
			Columns: []string{material.OperationalCharacteristicsColumn},
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

// MaterialCreateBulk is the builder for creating many Material entities in bulk.
type MaterialCreateBulk struct {
	config
	err      error
	builders []*MaterialCreate
}

// Save creates the Material entities in the database.
func (_c *MaterialCreateBulk) Save(ctx context.Context) ([]*Material, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Material, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MaterialMutation)
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
func (_c *MaterialCreateBulk) SaveX(ctx context.Context) []*Material {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MaterialCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MaterialCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
