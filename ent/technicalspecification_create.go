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
	"satfab.io/satfab/ent/satellite"
	"satfab.io/satfab/ent/stand"
	"satfab.io/satfab/ent/technicalspecification"
)

// TechnicalSpecificationCreate is the builder for creating a TechnicalSpecification entity.
type TechnicalSpecificationCreate struct {
	config
	mutation *TechnicalSpecificationMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *TechnicalSpecificationCreate) SetCreatedAt(v time.Time) *TechnicalSpecificationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TechnicalSpecificationCreate) SetNillableCreatedAt(v *time.Time) *TechnicalSpecificationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TechnicalSpecificationCreate) SetUpdatedAt(v time.Time) *TechnicalSpecificationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TechnicalSpecificationCreate) SetNillableUpdatedAt(v *time.Time) *TechnicalSpecificationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *TechnicalSpecificationCreate) SetDescription(v string) *TechnicalSpecificationCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *TechnicalSpecificationCreate) SetNillableDescription(v *string) *TechnicalSpecificationCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetSatelliteID sets the "satellite" edge to the Satellite entity by ID.
func (_c *TechnicalSpecificationCreate) SetSatelliteID(id int) *TechnicalSpecificationCreate {
	_c.mutation.SetSatelliteID(id)
	return _c
}

// SetSatellite sets the "satellite" edge to the Satellite entity.
func (_c *TechnicalSpecificationCreate) SetSatellite(v *Satellite) *TechnicalSpecificationCreate {
	return _c.SetSatelliteID(v.ID)
}

// AddStandIDs adds the "stands" edge to the Stand entity by IDs.
func (_c *TechnicalSpecificationCreate) AddStandIDs(ids ...int) *TechnicalSpecificationCreate {
	_c.mutation.AddStandIDs(ids...)
	return _c
}

// AddStands adds the "stands" edges to the Stand entity.
func (_c *TechnicalSpecificationCreate) AddStands(v ...*Stand) *TechnicalSpecificationCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStandIDs(ids...)
}

// AddCalendarStageIDs adds the "calendar_stages" edge to the CalendarStage entity by IDs.
func (_c *TechnicalSpecificationCreate) AddCalendarStageIDs(ids ...int) *TechnicalSpecificationCreate {
	_c.mutation.AddCalendarStageIDs(ids...)
	return _c
}

// AddCalendarStages adds the "calendar_stages" edges to the CalendarStage entity.
func (_c *TechnicalSpecificationCreate) AddCalendarStages(v ...*CalendarStage) *TechnicalSpecificationCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCalendarStageIDs(ids...)
}

// Mutation returns the TechnicalSpecificationMutation object of the builder.
func (_c *TechnicalSpecificationCreate) Mutation() *TechnicalSpecificationMutation {
	return _c.mutation
}

// Save creates the TechnicalSpecification in the database.
func (_c *TechnicalSpecificationCreate) Save(ctx context.Context) (*TechnicalSpecification, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TechnicalSpecificationCreate) SaveX(ctx context.Context) *TechnicalSpecification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TechnicalSpecificationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TechnicalSpecificationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TechnicalSpecificationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := technicalspecification.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := technicalspecification.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TechnicalSpecificationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TechnicalSpecification.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TechnicalSpecification.updated_at"`)}
	}
	if len(_c.mutation.SatelliteIDs()) == 0 {
		return &ValidationError{Name: "satellite", err: errors.New(`ent: missing required edge "TechnicalSpecification.satellite"`)}
	}
	return nil
}

func (_c *TechnicalSpecificationCreate) sqlSave(ctx context.Context) (*TechnicalSpecification, error) {
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

func (_c *TechnicalSpecificationCreate) createSpec() (*TechnicalSpecification, *sqlgraph.CreateSpec) {
	var (
		_node = &TechnicalSpecification{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(technicalspecification.Table, sqlgraph.NewFieldSpec(technicalspecification.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(technicalspecification.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(technicalspecification.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(technicalspecification.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if nodes := _c.mutation.SatelliteIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   technicalspecification.SatelliteTable,
			Columns: []string{technicalspecification.SatelliteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(satellite.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.satellite_technical_specifications = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StandsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   technicalspecification.StandsTable,
			Columns: []string{technicalspecification.StandsColumn},
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
	if nodes := _c.mutation.CalendarStagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   technicalspecification.CalendarStagesTable,
			Columns: []string{technicalspecification.CalendarStagesColumn},
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
	return _node, _spec
}

// TechnicalSpecificationCreateBulk is the builder for creating many TechnicalSpecification entities in bulk.
type TechnicalSpecificationCreateBulk struct {
	config
	err      error
	builders []*TechnicalSpecificationCreate
}

// Save creates the TechnicalSpecification entities in the database.
func (_c *TechnicalSpecificationCreateBulk) Save(ctx context.Context) ([]*TechnicalSpecification, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TechnicalSpecification, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TechnicalSpecificationMutation)
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
func (_c *TechnicalSpecificationCreateBulk) SaveX(ctx context.Context) []*TechnicalSpecification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TechnicalSpecificationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TechnicalSpecificationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
