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
	"satfab.io/satfab/ent/technicalspecification"
)

// CalendarStageCreate is the builder for creating a CalendarStage entity.
type CalendarStageCreate struct {
	config
	mutation *CalendarStageMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *CalendarStageCreate) SetCreatedAt(v time.Time) *CalendarStageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CalendarStageCreate) SetNillableCreatedAt(v *time.Time) *CalendarStageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CalendarStageCreate) SetUpdatedAt(v time.Time) *CalendarStageCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CalendarStageCreate) SetNillableUpdatedAt(v *time.Time) *CalendarStageCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetNameOfStage sets the "name_of_stage" field.
func (_c *CalendarStageCreate) SetNameOfStage(v string) *CalendarStageCreate {
	_c.mutation.SetNameOfStage(v)
	return _c
}

// SetTimeOfFrame sets the "time_of_frame" field.
func (_c *CalendarStageCreate) SetTimeOfFrame(v time.Time) *CalendarStageCreate {
	_c.mutation.SetTimeOfFrame(v)
	return _c
}

// SetDuration sets the "duration" field.
func (_c *CalendarStageCreate) SetDuration(v int) *CalendarStageCreate {
	_c.mutation.SetDuration(v)
	return _c
}

// SetSatelliteID sets the "satellite" edge to the Satellite entity by ID.
func (_c *CalendarStageCreate) SetSatelliteID(id int) *CalendarStageCreate {
	_c.mutation.SetSatelliteID(id)
	return _c
}

// SetSatellite sets the "satellite" edge to the Satellite entity.
func (_c *CalendarStageCreate) SetSatellite(v *Satellite) *CalendarStageCreate {
	return _c.SetSatelliteID(v.ID)
}

// SetTechnicalSpecificationID sets the "technical_specification" edge to the TechnicalSpecification entity by ID.
func (_c *CalendarStageCreate) SetTechnicalSpecificationID(id int) *CalendarStageCreate {
	_c.mutation.SetTechnicalSpecificationID(id)
	return _c
}

// SetTechnicalSpecification sets the "technical_specification" edge to the TechnicalSpecification entity.
func (_c *CalendarStageCreate) SetTechnicalSpecification(v *TechnicalSpecification) *CalendarStageCreate {
	return _c.SetTechnicalSpecificationID(v.ID)
}

// Mutation returns the CalendarStageMutation object of the builder.
func (_c *CalendarStageCreate) Mutation() *CalendarStageMutation {
	return _c.mutation
}

// Save creates the CalendarStage in the database.
func (_c *CalendarStageCreate) Save(ctx context.Context) (*CalendarStage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CalendarStageCreate) SaveX(ctx context.Context) *CalendarStage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CalendarStageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CalendarStageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CalendarStageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := calendarstage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := calendarstage.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CalendarStageCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CalendarStage.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CalendarStage.updated_at"`)}
	}
	if _, ok := _c.mutation.NameOfStage(); !ok {
		return &ValidationError{Name: "name_of_stage", err: errors.New(`ent: missing required field "CalendarStage.name_of_stage"`)}
	}
	if v, ok := _c.mutation.NameOfStage(); ok {
		if err := calendarstage.NameOfStageValidator(v); err != nil {
			return &ValidationError{Name: "name_of_stage", err: fmt.Errorf(`ent: validator failed for field "CalendarStage.name_of_stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TimeOfFrame(); !ok {
		return &ValidationError{Name: "time_of_frame", err: errors.New(`ent: missing required field "CalendarStage.time_of_frame"`)}
	}
	if _, ok := _c.mutation.Duration(); !ok {
		return &ValidationError{Name: "duration", err: errors.New(`ent: missing required field "CalendarStage.duration"`)}
	}
	if v, ok := _c.mutation.Duration(); ok {
		if err := calendarstage.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`ent: validator failed for field "CalendarStage.duration": %w`, err)}
		}
	}
	if len(_c.mutation.SatelliteIDs()) == 0 {
		return &ValidationError{Name: "satellite", err: errors.New(`ent: missing required edge "CalendarStage.satellite"`)}
	}
	if len(_c.mutation.TechnicalSpecificationIDs()) == 0 {
		return &ValidationError{Name: "technical_specification", err: errors.New(`ent: missing required edge "CalendarStage.technical_specification"`)}
	}
	return nil
}

func (_c *CalendarStageCreate) sqlSave(ctx context.Context) (*CalendarStage, error) {
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

func (_c *CalendarStageCreate) createSpec() (*CalendarStage, *sqlgraph.CreateSpec) {
	var (
		_node = &CalendarStage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(calendarstage.Table, sqlgraph.NewFieldSpec(calendarstage.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(calendarstage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(calendarstage.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.NameOfStage(); ok {
		_spec.SetField(calendarstage.FieldNameOfStage, field.TypeString, value)
		_node.NameOfStage = value
	}
	if value, ok := _c.mutation.TimeOfFrame(); ok {
		_spec.SetField(calendarstage.FieldTimeOfFrame, field.TypeTime, value)
		_node.TimeOfFrame = value
	}
	if value, ok := _c.mutation.Duration(); ok {
		_spec.SetField(calendarstage.FieldDuration, field.TypeInt, value)
		_node.Duration = value
	}
	if nodes := _c.mutation.SatelliteIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   calendarstage.SatelliteTable,
			Columns: []string{calendarstage.SatelliteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(satellite.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.satellite_calendar_stages = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TechnicalSpecificationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   calendarstage.TechnicalSpecificationTable,
			Columns: []string{calendarstage.TechnicalSpecificationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(technicalspecification.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.technical_specification_calendar_stages = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CalendarStageCreateBulk is the builder for creating many CalendarStage entities in bulk.
type CalendarStageCreateBulk struct {
	config
	err      error
	builders []*CalendarStageCreate
}

// Save creates the CalendarStage entities in the database.
func (_c *CalendarStageCreateBulk) Save(ctx context.Context) ([]*CalendarStage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CalendarStage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CalendarStageMutation)
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
func (_c *CalendarStageCreateBulk) SaveX(ctx context.Context) []*CalendarStage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CalendarStageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CalendarStageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
