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
	"satfab.io/satfab/ent/satellite"
	"satfab.io/satfab/ent/satelliteopcharacteristic"
)

// SatelliteOpCharacteristicUpdate is the builder for updating SatelliteOpCharacteristic entities.
type SatelliteOpCharacteristicUpdate struct {
	config
	hooks    []Hook
	mutation *SatelliteOpCharacteristicMutation
}

// Where appends a list predicates to the SatelliteOpCharacteristicUpdate builder.
func (_u *SatelliteOpCharacteristicUpdate) Where(ps ...predicate.SatelliteOpCharacteristic) *SatelliteOpCharacteristicUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SatelliteOpCharacteristicUpdate) SetUpdatedAt(v time.Time) *SatelliteOpCharacteristicUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetParameterName sets the "parameter_name" field.
func (_u *SatelliteOpCharacteristicUpdate) SetParameterName(v string) *SatelliteOpCharacteristicUpdate {
	_u.mutation.SetParameterName(v)
	return _u
}

// SetNillableParameterName sets the "parameter_name" field if the given value is not nil.
func (_u *SatelliteOpCharacteristicUpdate) SetNillableParameterName(v *string) *SatelliteOpCharacteristicUpdate {
	if v != nil {
		_u.SetParameterName(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *SatelliteOpCharacteristicUpdate) SetValue(v float64) *SatelliteOpCharacteristicUpdate {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *SatelliteOpCharacteristicUpdate) SetNillableValue(v *float64) *SatelliteOpCharacteristicUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *SatelliteOpCharacteristicUpdate) AddValue(v float64) *SatelliteOpCharacteristicUpdate {
	_u.mutation.AddValue(v)
	return _u
}

// SetUnit sets the "unit" field.
func (_u *SatelliteOpCharacteristicUpdate) SetUnit(v string) *SatelliteOpCharacteristicUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *SatelliteOpCharacteristicUpdate) SetNillableUnit(v *string) *SatelliteOpCharacteristicUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetSatelliteID sets the "satellite" edge to the Satellite entity by ID.
func (_u *SatelliteOpCharacteristicUpdate) SetSatelliteID(id int) *SatelliteOpCharacteristicUpdate {
	_u.mutation.SetSatelliteID(id)
	return _u
}

// SetSatellite sets the "satellite" edge to the Satellite entity.
func (_u *SatelliteOpCharacteristicUpdate) SetSatellite(v *Satellite) *SatelliteOpCharacteristicUpdate {
	return _u.SetSatelliteID(v.ID)
}

// Mutation returns the SatelliteOpCharacteristicMutation object of the builder.
func (_u *SatelliteOpCharacteristicUpdate) Mutation() *SatelliteOpCharacteristicMutation {
	return _u.mutation
}

// ClearSatellite clears the "satellite" edge to the Satellite entity.
func (_u *SatelliteOpCharacteristicUpdate) ClearSatellite() *SatelliteOpCharacteristicUpdate {
	_u.mutation.ClearSatellite()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SatelliteOpCharacteristicUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SatelliteOpCharacteristicUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SatelliteOpCharacteristicUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SatelliteOpCharacteristicUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SatelliteOpCharacteristicUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := satelliteopcharacteristic.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SatelliteOpCharacteristicUpdate) check() error {
	if v, ok := _u.mutation.ParameterName(); ok {
		if err := satelliteopcharacteristic.ParameterNameValidator(v); err != nil {
			return &ValidationError{Name: "parameter_name", err: fmt.Errorf(`ent: validator failed for field "SatelliteOpCharacteristic.parameter_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Unit(); ok {
		if err := satelliteopcharacteristic.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "SatelliteOpCharacteristic.unit": %w`, err)}
		}
	}
	if _u.mutation.SatelliteCleared() && len(_u.mutation.SatelliteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SatelliteOpCharacteristic.satellite"`)
	}
	return nil
}

func (_u *SatelliteOpCharacteristicUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(satelliteopcharacteristic.Table, satelliteopcharacteristic.Columns, sqlgraph.NewFieldSpec(satelliteopcharacteristic.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(satelliteopcharacteristic.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ParameterName(); ok {
		_spec.SetField(satelliteopcharacteristic.FieldParameterName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(satelliteopcharacteristic.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(satelliteopcharacteristic.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(satelliteopcharacteristic.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.SatelliteCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   satelliteopcharacteristic.SatelliteTable,
			Columns: []string{satelliteopcharacteristic.SatelliteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(satellite.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SatelliteIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   satelliteopcharacteristic.SatelliteTable,
			Columns: []string{satelliteopcharacteristic.SatelliteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(satellite.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{satelliteopcharacteristic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SatelliteOpCharacteristicUpdateOne is the builder for updating a single SatelliteOpCharacteristic entity.
type SatelliteOpCharacteristicUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SatelliteOpCharacteristicMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SatelliteOpCharacteristicUpdateOne) SetUpdatedAt(v time.Time) *SatelliteOpCharacteristicUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetParameterName sets the "parameter_name" field.
func (_u *SatelliteOpCharacteristicUpdateOne) SetParameterName(v string) *SatelliteOpCharacteristicUpdateOne {
	_u.mutation.SetParameterName(v)
	return _u
}

// SetNillableParameterName sets the "parameter_name" field if the given value is not nil.
func (_u *SatelliteOpCharacteristicUpdateOne) SetNillableParameterName(v *string) *SatelliteOpCharacteristicUpdateOne {
	if v != nil {
		_u.SetParameterName(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *SatelliteOpCharacteristicUpdateOne) SetValue(v float64) *SatelliteOpCharacteristicUpdateOne {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *SatelliteOpCharacteristicUpdateOne) SetNillableValue(v *float64) *SatelliteOpCharacteristicUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *SatelliteOpCharacteristicUpdateOne) AddValue(v float64) *SatelliteOpCharacteristicUpdateOne {
	_u.mutation.AddValue(v)
	return _u
}

// SetUnit sets the "unit" field.
func (_u *SatelliteOpCharacteristicUpdateOne) SetUnit(v string) *SatelliteOpCharacteristicUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *SatelliteOpCharacteristicUpdateOne) SetNillableUnit(v *string) *SatelliteOpCharacteristicUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetSatelliteID sets the "satellite" edge to the Satellite entity by ID.
func (_u *SatelliteOpCharacteristicUpdateOne) SetSatelliteID(id int) *SatelliteOpCharacteristicUpdateOne {
	_u.mutation.SetSatelliteID(id)
	return _u
}

// SetSatellite sets the "satellite" edge to the Satellite entity.
func (_u *SatelliteOpCharacteristicUpdateOne) SetSatellite(v *Satellite) *SatelliteOpCharacteristicUpdateOne {
	return _u.SetSatelliteID(v.ID)
}

// Mutation returns the SatelliteOpCharacteristicMutation object of the builder.
func (_u *SatelliteOpCharacteristicUpdateOne) Mutation() *SatelliteOpCharacteristicMutation {
	return _u.mutation
}

// ClearSatellite clears the "satellite" edge to the Satellite entity.
func (_u *SatelliteOpCharacteristicUpdateOne) ClearSatellite() *SatelliteOpCharacteristicUpdateOne {
	_u.mutation.ClearSatellite()
	return _u
}

// Where appends a list predicates to the SatelliteOpCharacteristicUpdate builder.
func (_u *SatelliteOpCharacteristicUpdateOne) Where(ps ...predicate.SatelliteOpCharacteristic) *SatelliteOpCharacteristicUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SatelliteOpCharacteristicUpdateOne) Select(field string, fields ...string) *SatelliteOpCharacteristicUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SatelliteOpCharacteristic entity.
func (_u *SatelliteOpCharacteristicUpdateOne) Save(ctx context.Context) (*SatelliteOpCharacteristic, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SatelliteOpCharacteristicUpdateOne) SaveX(ctx context.Context) *SatelliteOpCharacteristic {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SatelliteOpCharacteristicUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SatelliteOpCharacteristicUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SatelliteOpCharacteristicUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := satelliteopcharacteristic.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SatelliteOpCharacteristicUpdateOne) check() error {
	if v, ok := _u.mutation.ParameterName(); ok {
		if err := satelliteopcharacteristic.ParameterNameValidator(v); err != nil {
			return &ValidationError{Name: "parameter_name", err: fmt.Errorf(`ent: validator failed for field "SatelliteOpCharacteristic.parameter_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Unit(); ok {
		if err := satelliteopcharacteristic.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "SatelliteOpCharacteristic.unit": %w`, err)}
		}
	}
	if _u.mutation.SatelliteCleared() && len(_u.mutation.SatelliteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SatelliteOpCharacteristic.satellite"`)
	}
	return nil
}

func (_u *SatelliteOpCharacteristicUpdateOne) sqlSave(ctx context.Context) (_node *SatelliteOpCharacteristic, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(satelliteopcharacteristic.Table, satelliteopcharacteristic.Columns, sqlgraph.NewFieldSpec(satelliteopcharacteristic.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SatelliteOpCharacteristic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, satelliteopcharacteristic.FieldID)
		for _, f := range fields {
			if !satelliteopcharacteristic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != satelliteopcharacteristic.FieldID {
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
		_spec.SetField(satelliteopcharacteristic.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ParameterName(); ok {
		_spec.SetField(satelliteopcharacteristic.FieldParameterName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(satelliteopcharacteristic.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(satelliteopcharacteristic.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(satelliteopcharacteristic.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.SatelliteCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   satelliteopcharacteristic.SatelliteTable,
			Columns: []string{satelliteopcharacteristic.SatelliteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(satellite.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SatelliteIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   satelliteopcharacteristic.SatelliteTable,
			Columns: []string{satelliteopcharacteristic.SatelliteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(satellite.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SatelliteOpCharacteristic{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{satelliteopcharacteristic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
