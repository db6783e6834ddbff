// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"satfab.io/satfab/ent/hardwarerequirement"
	"satfab.io/satfab/ent/predicate"
	"satfab.io/satfab/ent/stand"
)

// HardwareRequirementUpdate is the builder for updating HardwareRequirement entities.
type HardwareRequirementUpdate struct {
	config
	hooks    []Hook
	mutation *HardwareRequirementMutation
}

// Where appends a list predicates to the HardwareRequirementUpdate builder.
func (_u *HardwareRequirementUpdate) Where(ps ...predicate.HardwareRequirement) *HardwareRequirementUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HardwareRequirementUpdate) SetUpdatedAt(v time.Time) *HardwareRequirementUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetValue sets the "value" field.
func (_u *HardwareRequirementUpdate) SetValue(v float64) *HardwareRequirementUpdate {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *HardwareRequirementUpdate) SetNillableValue(v *float64) *HardwareRequirementUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *HardwareRequirementUpdate) AddValue(v float64) *HardwareRequirementUpdate {
	_u.mutation.AddValue(v)
	return _u
}

// SetUnit sets the "unit" field.
func (_u *HardwareRequirementUpdate) SetUnit(v string) *HardwareRequirementUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *HardwareRequirementUpdate) SetNillableUnit(v *string) *HardwareRequirementUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetStandID sets the "stand" edge to the Stand entity by ID.
func (_u *HardwareRequirementUpdate) SetStandID(id int) *HardwareRequirementUpdate {
	_u.mutation.SetStandID(id)
	return _u
}

// SetStand sets the "stand" edge to the Stand entity.
func (_u *HardwareRequirementUpdate) SetStand(v *Stand) *HardwareRequirementUpdate {
	return _u.SetStandID(v.ID)
}

// Mutation returns the HardwareRequirementMutation object of the builder.
func (_u *HardwareRequirementUpdate) Mutation() *HardwareRequirementMutation {
	return _u.mutation
}

// ClearStand clears the "stand" edge to the Stand entity.
func (_u *HardwareRequirementUpdate) ClearStand() *HardwareRequirementUpdate {
	_u.mutation.ClearStand()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HardwareRequirementUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HardwareRequirementUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HardwareRequirementUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HardwareRequirementUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HardwareRequirementUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := hardwarerequirement.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HardwareRequirementUpdate) check() error {
	if v, ok := _u.mutation.Unit(); ok {
		if err := hardwarerequirement.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "HardwareRequirement.unit": %w`, err)}
		}
	}
	if _u.mutation.StandCleared() && len(_u.mutation.StandIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HardwareRequirement.stand"`)
	}
	return nil
}

func (_u *HardwareRequirementUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hardwarerequirement.Table, hardwarerequirement.Columns, sqlgraph.NewFieldSpec(hardwarerequirement.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(hardwarerequirement.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(hardwarerequirement.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(hardwarerequirement.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(hardwarerequirement.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.StandCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StandIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hardwarerequirement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HardwareRequirementUpdateOne is the builder for updating a single HardwareRequirement entity.
type HardwareRequirementUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HardwareRequirementMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HardwareRequirementUpdateOne) SetUpdatedAt(v time.Time) *HardwareRequirementUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetValue sets the "value" field.
func (_u *HardwareRequirementUpdateOne) SetValue(v float64) *HardwareRequirementUpdateOne {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *HardwareRequirementUpdateOne) SetNillableValue(v *float64) *HardwareRequirementUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *HardwareRequirementUpdateOne) AddValue(v float64) *HardwareRequirementUpdateOne {
	_u.mutation.AddValue(v)
	return _u
}

// SetUnit sets the "unit" field.
func (_u *HardwareRequirementUpdateOne) SetUnit(v string) *HardwareRequirementUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *HardwareRequirementUpdateOne) SetNillableUnit(v *string) *HardwareRequirementUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetStandID sets the "stand" edge to the Stand entity by ID.
func (_u *HardwareRequirementUpdateOne) SetStandID(id int) *HardwareRequirementUpdateOne {
	_u.mutation.SetStandID(id)
	return _u
}

// SetStand sets the "stand" edge to the Stand entity.
func (_u *HardwareRequirementUpdateOne) SetStand(v *Stand) *HardwareRequirementUpdateOne {
	return _u.SetStandID(v.ID)
}

// Mutation returns the HardwareRequirementMutation object of the builder.
func (_u *HardwareRequirementUpdateOne) Mutation() *HardwareRequirementMutation {
	return _u.mutation
}

// ClearStand clears the "stand" edge to the Stand entity.
func (_u *HardwareRequirementUpdateOne) ClearStand() *HardwareRequirementUpdateOne {
	_u.mutation.ClearStand()
	return _u
}

// Where appends a list predicates to the HardwareRequirementUpdate builder.
func (_u *HardwareRequirementUpdateOne) Where(ps ...predicate.HardwareRequirement) *HardwareRequirementUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HardwareRequirementUpdateOne) Select(field string, fields ...string) *HardwareRequirementUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HardwareRequirement entity.
func (_u *HardwareRequirementUpdateOne) Save(ctx context.Context) (*HardwareRequirement, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HardwareRequirementUpdateOne) SaveX(ctx context.Context) *HardwareRequirement {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HardwareRequirementUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HardwareRequirementUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HardwareRequirementUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := hardwarerequirement.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HardwareRequirementUpdateOne) check() error {
	if v, ok := _u.mutation.Unit(); ok {
		if err := hardwarerequirement.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "HardwareRequirement.unit": %w`, err)}
		}
	}
	if _u.mutation.StandCleared() && len(_u.mutation.StandIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HardwareRequirement.stand"`)
	}
	return nil
}

func (_u *HardwareRequirementUpdateOne) sqlSave(ctx context.Context) (_node *HardwareRequirement, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hardwarerequirement.Table, hardwarerequirement.Columns, sqlgraph.NewFieldSpec(hardwarerequirement.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HardwareRequirement.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, hardwarerequirement.FieldID)
		for _, f := range fields {
			if !hardwarerequirement.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != hardwarerequirement.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(hardwarerequirement.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(hardwarerequirement.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(hardwarerequirement.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(hardwarerequirement.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.StandCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StandIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &HardwareRequirement{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hardwarerequirement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
