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
	"satfab.io/satfab/ent/physicaltestdata"
	"satfab.io/satfab/ent/predicate"
	"satfab.io/satfab/ent/stand"
)

// PhysicalTestDataUpdate is the builder for updating PhysicalTestData entities.
type PhysicalTestDataUpdate struct {
	config
	hooks    []Hook
	mutation *PhysicalTestDataMutation
}

// Where appends a list predicates to the PhysicalTestDataUpdate builder.
func (_u *PhysicalTestDataUpdate) Where(ps ...predicate.PhysicalTestData) *PhysicalTestDataUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PhysicalTestDataUpdate) SetUpdatedAt(v time.Time) *PhysicalTestDataUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetValue sets the "value" field.
func (_u *PhysicalTestDataUpdate) SetValue(v float64) *PhysicalTestDataUpdate {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *PhysicalTestDataUpdate) SetNillableValue(v *float64) *PhysicalTestDataUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *PhysicalTestDataUpdate) AddValue(v float64) *PhysicalTestDataUpdate {
	_u.mutation.AddValue(v)
	return _u
}

// SetUnit sets the "unit" field.
func (_u *PhysicalTestDataUpdate) SetUnit(v string) *PhysicalTestDataUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *PhysicalTestDataUpdate) SetNillableUnit(v *string) *PhysicalTestDataUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PhysicalTestDataUpdate) SetDescription(v string) *PhysicalTestDataUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PhysicalTestDataUpdate) SetNillableDescription(v *string) *PhysicalTestDataUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetStandID sets the "stand" edge to the Stand entity by ID.
func (_u *PhysicalTestDataUpdate) SetStandID(id int) *PhysicalTestDataUpdate {
	_u.mutation.SetStandID(id)
	return _u
}

// SetStand sets the "stand" edge to the Stand entity.
func (_u *PhysicalTestDataUpdate) SetStand(v *Stand) *PhysicalTestDataUpdate {
	return _u.SetStandID(v.ID)
}

// Mutation returns the PhysicalTestDataMutation object of the builder.
func (_u *PhysicalTestDataUpdate) Mutation() *PhysicalTestDataMutation {
	return _u.mutation
}

// ClearStand clears the "stand" edge to the Stand entity.
func (_u *PhysicalTestDataUpdate) ClearStand() *PhysicalTestDataUpdate {
	_u.mutation.ClearStand()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PhysicalTestDataUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PhysicalTestDataUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PhysicalTestDataUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PhysicalTestDataUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PhysicalTestDataUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := physicaltestdata.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PhysicalTestDataUpdate) check() error {
	if v, ok := _u.mutation.Unit(); ok {
		if err := physicaltestdata.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "PhysicalTestData.unit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := physicaltestdata.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "PhysicalTestData.description": %w`, err)}
		}
	}
	if _u.mutation.StandCleared() && len(_u.mutation.StandIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PhysicalTestData.stand"`)
	}
	return nil
}

func (_u *PhysicalTestDataUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(physicaltestdata.Table, physicaltestdata.Columns, sqlgraph.NewFieldSpec(physicaltestdata.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(physicaltestdata.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(physicaltestdata.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(physicaltestdata.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(physicaltestdata.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(physicaltestdata.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.StandCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StandIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{physicaltestdata.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PhysicalTestDataUpdateOne is the builder for updating a single PhysicalTestData entity.
type PhysicalTestDataUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PhysicalTestDataMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PhysicalTestDataUpdateOne) SetUpdatedAt(v time.Time) *PhysicalTestDataUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetValue sets the "value" field.
func (_u *PhysicalTestDataUpdateOne) SetValue(v float64) *PhysicalTestDataUpdateOne {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *PhysicalTestDataUpdateOne) SetNillableValue(v *float64) *PhysicalTestDataUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *PhysicalTestDataUpdateOne) AddValue(v float64) *PhysicalTestDataUpdateOne {
	_u.mutation.AddValue(v)
	return _u
}

// SetUnit sets the "unit" field.
func (_u *PhysicalTestDataUpdateOne) SetUnit(v string) *PhysicalTestDataUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *PhysicalTestDataUpdateOne) SetNillableUnit(v *string) *PhysicalTestDataUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PhysicalTestDataUpdateOne) SetDescription(v string) *PhysicalTestDataUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PhysicalTestDataUpdateOne) SetNillableDescription(v *string) *PhysicalTestDataUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetStandID sets the "stand" edge to the Stand entity by ID.
func (_u *PhysicalTestDataUpdateOne) SetStandID(id int) *PhysicalTestDataUpdateOne {
	_u.mutation.SetStandID(id)
	return _u
}

// SetStand sets the "stand" edge to the Stand entity.
func (_u *PhysicalTestDataUpdateOne) SetStand(v *Stand) *PhysicalTestDataUpdateOne {
	return _u.SetStandID(v.ID)
}

// Mutation returns the PhysicalTestDataMutation object of the builder.
func (_u *PhysicalTestDataUpdateOne) Mutation() *PhysicalTestDataMutation {
	return _u.mutation
}

// ClearStand clears the "stand" edge to the Stand entity.
func (_u *PhysicalTestDataUpdateOne) ClearStand() *PhysicalTestDataUpdateOne {
	_u.mutation.ClearStand()
	return _u
}

// Where appends a list predicates to the PhysicalTestDataUpdate builder.
func (_u *PhysicalTestDataUpdateOne) Where(ps ...predicate.PhysicalTestData) *PhysicalTestDataUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PhysicalTestDataUpdateOne) Select(field string, fields ...string) *PhysicalTestDataUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PhysicalTestData entity.
func (_u *PhysicalTestDataUpdateOne) Save(ctx context.Context) (*PhysicalTestData, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PhysicalTestDataUpdateOne) SaveX(ctx context.Context) *PhysicalTestData {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PhysicalTestDataUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PhysicalTestDataUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PhysicalTestDataUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := physicaltestdata.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PhysicalTestDataUpdateOne) check() error {
	if v, ok := _u.mutation.Unit(); ok {
		if err := physicaltestdata.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "PhysicalTestData.unit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := physicaltestdata.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "PhysicalTestData.description": %w`, err)}
		}
	}
	if _u.mutation.StandCleared() && len(_u.mutation.StandIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PhysicalTestData.stand"`)
	}
	return nil
}

func (_u *PhysicalTestDataUpdateOne) sqlSave(ctx context.Context) (_node *PhysicalTestData, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(physicaltestdata.Table, physicaltestdata.Columns, sqlgraph.NewFieldSpec(physicaltestdata.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PhysicalTestData.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, physicaltestdata.FieldID)
		for _, f := range fields {
			if !physicaltestdata.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != physicaltestdata.FieldID {
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
		_spec.SetField(physicaltestdata.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(physicaltestdata.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(physicaltestdata.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(physicaltestdata.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(physicaltestdata.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.StandCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StandIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PhysicalTestData{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{physicaltestdata.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
