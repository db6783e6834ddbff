// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"satfab.io/satfab/ent/electronics"
	"satfab.io/satfab/ent/satellite"
)

// ElectronicsCreate is the builder for creating a Electronics entity.
type ElectronicsCreate struct {
	config
	mutation *ElectronicsMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ElectronicsCreate) SetCreatedAt(v time.Time) *ElectronicsCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ElectronicsCreate) SetNillableCreatedAt(v *time.Time) *ElectronicsCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ElectronicsCreate) SetUpdatedAt(v time.Time) *ElectronicsCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ElectronicsCreate) SetNillableUpdatedAt(v *time.Time) *ElectronicsCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *ElectronicsCreate) SetModel(v string) *ElectronicsCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetType sets the "type" field.
func (_c *ElectronicsCreate) SetType(v string) *ElectronicsCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetLocation sets the "location" field.
func (_c *ElectronicsCreate) SetLocation(v string) *ElectronicsCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetPrice sets the "price" field.
func (_c *ElectronicsCreate) SetPrice(v float64) *ElectronicsCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetSatelliteID sets the "satellite" edge to the Satellite entity by ID.
func (_c *ElectronicsCreate) SetSatelliteID(id int) *ElectronicsCreate {
	_c.mutation.SetSatelliteID(id)
	return _c
}

// SetSatellite sets the "satellite" edge to the Satellite entity.
func (_c *ElectronicsCreate) SetSatellite(v *Satellite) *ElectronicsCreate {
	return _c.SetSatelliteID(v.ID)
}

// Mutation returns the ElectronicsMutation object of the builder.
func (_c *ElectronicsCreate) Mutation() *ElectronicsMutation {
	return _c.mutation
}

// Save creates the Electronics in the database.
func (_c *ElectronicsCreate) Save(ctx context.Context) (*Electronics, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ElectronicsCreate) SaveX(ctx context.Context) *Electronics {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ElectronicsCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ElectronicsCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ElectronicsCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := electronics.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := electronics.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ElectronicsCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Electronics.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Electronics.updated_at"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "Electronics.model"`)}
	}
	if v, ok := _c.mutation.Model(); ok {
		if err := electronics.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "Electronics.model": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Electronics.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := electronics.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Electronics.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Location(); !ok {
		return &ValidationError{Name: "location", err: errors.New(`ent: missing required field "Electronics.location"`)}
	}
	if v, ok := _c.mutation.Location(); ok {
		if err := electronics.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`ent: validator failed for field "Electronics.location": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`ent: missing required field "Electronics.price"`)}
	}
	if v, ok := _c.mutation.Price(); ok {
		if err := electronics.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`ent: validator failed for field "Electronics.price": %w`, err)}
		}
	}
	if len(_c.mutation.SatelliteIDs()) == 0 {
		return &ValidationError{Name: "satellite", err: errors.New(`ent: missing required edge "Electronics.satellite"`)}
	}
	return nil
}

func (_c *ElectronicsCreate) sqlSave(ctx context.Context) (*Electronics, error) {
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

func (_c *ElectronicsCreate) createSpec() (*Electronics, *sqlgraph.CreateSpec) {
	var (
		_node = &Electronics{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(electronics.Table, sqlgraph.NewFieldSpec(electronics.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(electronics.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(electronics.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(electronics.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(electronics.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(electronics.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(electronics.FieldPrice, field.TypeFloat64, value)
		_node.Price = value
	}
	if nodes := _c.mutation.SatelliteIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   electronics.SatelliteTable,
			Columns: []string{electronics.SatelliteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(satellite.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.satellite_electronics = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ElectronicsCreateBulk is the builder for creating many Electronics entities in bulk.
type ElectronicsCreateBulk struct {
	config
	err      error
	builders []*ElectronicsCreate
}

// Save creates the Electronics entities in the database.
func (_c *ElectronicsCreateBulk) Save(ctx context.Context) ([]*Electronics, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Electronics, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ElectronicsMutation)
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
func (_c *ElectronicsCreateBulk) SaveX(ctx context.Context) []*Electronics {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ElectronicsCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ElectronicsCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
