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
	"satfab.io/satfab/ent/predicate"
	"satfab.io/satfab/ent/sensor"
	"satfab.io/satfab/ent/stand"
)

// SensorUpdate is the builder for updating Sensor entities.
type SensorUpdate struct {
	config
	hooks    []Hook
	mutation *SensorMutation
}

// Where appends a list predicates to the SensorUpdate builder.
func (_u *SensorUpdate) Where(ps ...predicate.Sensor) *SensorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SensorUpdate) SetUpdatedAt(v time.Time) *SensorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLocation sets the "location" field.
func (_u *SensorUpdate) SetLocation(v string) *SensorUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *SensorUpdate) SetNillableLocation(v *string) *SensorUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *SensorUpdate) SetValue(v float64) *SensorUpdate {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *SensorUpdate) SetNillableValue(v *float64) *SensorUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *SensorUpdate) AddValue(v float64) *SensorUpdate {
	_u.mutation.AddValue(v)
	return _u
}

// ClearValue clears the value of the "value" field.
func (_u *SensorUpdate) ClearValue() *SensorUpdate {
	_u.mutation.ClearValue()
	return _u
}

// SetUnit sets the "unit" field.
func (_u *SensorUpdate) SetUnit(v string) *SensorUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *SensorUpdate) SetNillableUnit(v *string) *SensorUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *SensorUpdate) ClearUnit() *SensorUpdate {
	_u.mutation.ClearUnit()
	return _u
}

// SetDescription sets the "description" field.
func (_u *SensorUpdate) SetDescription(v string) *SensorUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SensorUpdate) SetNillableDescription(v *string) *SensorUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetStandID sets the "stand" edge to the Stand entity by ID.
func (_u *SensorUpdate) SetStandID(id int) *SensorUpdate {
	_u.mutation.SetStandID(id)
	return _u
}

// SetStand sets the "stand" edge to the Stand entity.
func (_u *SensorUpdate) SetStand(v *Stand) *SensorUpdate {
	return _u.SetStandID(v.ID)
}

// Mutation returns the SensorMutation object of the builder.
func (_u *SensorUpdate) Mutation() *SensorMutation {
	return _u.mutation
}

// ClearStand clears the "stand" edge to the Stand entity.
func (_u *SensorUpdate) ClearStand() *SensorUpdate {
	_u.mutation.ClearStand()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SensorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SensorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SensorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SensorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SensorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sensor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SensorUpdate) check() error {
	if v, ok := _u.mutation.Location(); ok {
		if err := sensor.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`ent: validator failed for field "Sensor.location": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := sensor.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Sensor.description": %w`, err)}
		}
	}
	if _u.mutation.StandCleared() && len(_u.mutation.StandIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Sensor.stand"`)
	}
	return nil
}

func (_u *SensorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sensor.Table, sensor.Columns, sqlgraph.NewFieldSpec(sensor.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sensor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(sensor.FieldLocation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(sensor.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(sensor.FieldValue, field.TypeFloat64, value)
	}
	if _u.mutation.ValueCleared() {
		_spec.ClearField(sensor.FieldValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(sensor.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(sensor.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(sensor.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.StandCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sensor.StandTable,
			Columns: []string{sensor.StandColumn},
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
			Table:   sensor.StandTable,
			Columns: []string{sensor.StandColumn},
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
			err = &NotFoundError{sensor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SensorUpdateOne is the builder for updating a single Sensor entity.
type SensorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SensorMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SensorUpdateOne) SetUpdatedAt(v time.Time) *SensorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLocation sets the "location" field.
func (_u *SensorUpdateOne) SetLocation(v string) *SensorUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *SensorUpdateOne) SetNillableLocation(v *string) *SensorUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *SensorUpdateOne) SetValue(v float64) *SensorUpdateOne {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *SensorUpdateOne) SetNillableValue(v *float64) *SensorUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *SensorUpdateOne) AddValue(v float64) *SensorUpdateOne {
	_u.mutation.AddValue(v)
	return _u
}

// ClearValue clears the value of the "value" field.
func (_u *SensorUpdateOne) ClearValue() *SensorUpdateOne {
	_u.mutation.ClearValue()
	return _u
}

// SetUnit sets the "unit" field.
func (_u *SensorUpdateOne) SetUnit(v string) *SensorUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *SensorUpdateOne) SetNillableUnit(v *string) *SensorUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *SensorUpdateOne) ClearUnit() *SensorUpdateOne {
	_u.mutation.ClearUnit()
	return _u
}

// SetDescription sets the "description" field.
func (_u *SensorUpdateOne) SetDescription(v string) *SensorUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SensorUpdateOne) SetNillableDescription(v *string) *SensorUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetStandID sets the "stand" edge to the Stand entity by ID.
func (_u *SensorUpdateOne) SetStandID(id int) *SensorUpdateOne {
	_u.mutation.SetStandID(id)
	return _u
}

// SetStand sets the "stand" edge to the Stand entity.
func (_u *SensorUpdateOne) SetStand(v *Stand) *SensorUpdateOne {
	return _u.SetStandID(v.ID)
}

// Mutation returns the SensorMutation object of the builder.
func (_u *SensorUpdateOne) Mutation() *SensorMutation {
	return _u.mutation
}

// ClearStand clears the "stand" edge to the Stand entity.
func (_u *SensorUpdateOne) ClearStand() *SensorUpdateOne {
	_u.mutation.ClearStand()
	return _u
}

// Where appends a list predicates to the SensorUpdate builder.
func (_u *SensorUpdateOne) Where(ps ...predicate.Sensor) *SensorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SensorUpdateOne) Select(field string, fields ...string) *SensorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Sensor entity.
func (_u *SensorUpdateOne) Save(ctx context.Context) (*Sensor, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SensorUpdateOne) SaveX(ctx context.Context) *Sensor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SensorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SensorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SensorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sensor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SensorUpdateOne) check() error {
	if v, ok := _u.mutation.Location(); ok {
		if err := sensor.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`ent: validator failed for field "Sensor.location": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := sensor.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Sensor.description": %w`, err)}
		}
	}
	if _u.mutation.StandCleared() && len(_u.mutation.StandIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Sensor.stand"`)
	}
	return nil
}

func (_u *SensorUpdateOne) sqlSave(ctx context.Context) (_node *Sensor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sensor.Table, sensor.Columns, sqlgraph.NewFieldSpec(sensor.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Sensor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sensor.FieldID)
		for _, f := range fields {
			if !sensor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sensor.FieldID {
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
		_spec.SetField(sensor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(sensor.FieldLocation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(sensor.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(sensor.FieldValue, field.TypeFloat64, value)
	}
	if _u.mutation.ValueCleared() {
		_spec.ClearField(sensor.FieldValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(sensor.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(sensor.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(sensor.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.StandCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sensor.StandTable,
			Columns: []string{sensor.StandColumn},
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
			Table:   sensor.StandTable,
			Columns: []string{sensor.StandColumn},
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
	_node = &Sensor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sensor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
