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
	"satfab.io/satfab/ent/material"
	"satfab.io/satfab/ent/materialfunctionalcharacteristic"
	"satfab.io/satfab/ent/predicate"
)

// MaterialFunctionalCharacteristicUpdate is the builder for updating MaterialFunctionalCharacteristic entities.
type MaterialFunctionalCharacteristicUpdate struct {
	config
	hooks    []Hook
	mutation *MaterialFunctionalCharacteristicMutation
}

// Where appends a list predicates to the MaterialFunctionalCharacteristicUpdate builder.
func (_u *MaterialFunctionalCharacteristicUpdate) Where(ps ...predicate.MaterialFunctionalCharacteristic) *MaterialFunctionalCharacteristicUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MaterialFunctionalCharacteristicUpdate) SetUpdatedAt(v time.Time) *MaterialFunctionalCharacteristicUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUnit sets the "unit" field.
func (_u *MaterialFunctionalCharacteristicUpdate) SetUnit(v string) *MaterialFunctionalCharacteristicUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *MaterialFunctionalCharacteristicUpdate) SetNillableUnit(v *string) *MaterialFunctionalCharacteristicUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *MaterialFunctionalCharacteristicUpdate) SetValue(v float64) *MaterialFunctionalCharacteristicUpdate {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *MaterialFunctionalCharacteristicUpdate) SetNillableValue(v *float64) *MaterialFunctionalCharacteristicUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *MaterialFunctionalCharacteristicUpdate) AddValue(v float64) *MaterialFunctionalCharacteristicUpdate {
	_u.mutation.AddValue(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *MaterialFunctionalCharacteristicUpdate) SetDescription(v string) *MaterialFunctionalCharacteristicUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MaterialFunctionalCharacteristicUpdate) SetNillableDescription(v *string) *MaterialFunctionalCharacteristicUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetMaterialID sets the "material" edge to the Material entity by ID.
func (_u *MaterialFunctionalCharacteristicUpdate) SetMaterialID(id int) *MaterialFunctionalCharacteristicUpdate {
	_u.mutation.SetMaterialID(id)
	return _u
}

// SetMaterial sets the "material" edge to the Material entity.
func (_u *MaterialFunctionalCharacteristicUpdate) SetMaterial(v *Material) *MaterialFunctionalCharacteristicUpdate {
	return _u.SetMaterialID(v.ID)
}

// Mutation returns the MaterialFunctionalCharacteristicMutation object of the builder.
func (_u *MaterialFunctionalCharacteristicUpdate) Mutation() *MaterialFunctionalCharacteristicMutation {
	return _u.mutation
}

// ClearMaterial clears the "material" edge to the Material entity.
func (_u *MaterialFunctionalCharacteristicUpdate) ClearMaterial() *MaterialFunctionalCharacteristicUpdate {
	_u.mutation.ClearMaterial()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MaterialFunctionalCharacteristicUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MaterialFunctionalCharacteristicUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MaterialFunctionalCharacteristicUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MaterialFunctionalCharacteristicUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MaterialFunctionalCharacteristicUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := materialfunctionalcharacteristic.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MaterialFunctionalCharacteristicUpdate) check() error {
	if v, ok := _u.mutation.Unit(); ok {
		if err := materialfunctionalcharacteristic.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "MaterialFunctionalCharacteristic.unit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := materialfunctionalcharacteristic.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "MaterialFunctionalCharacteristic.description": %w`, err)}
		}
	}
	if _u.mutation.MaterialCleared() && len(_u.mutation.MaterialIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MaterialFunctionalCharacteristic.material"`)
	}
	return nil
}

func (_u *MaterialFunctionalCharacteristicUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(materialfunctionalcharacteristic.Table, materialfunctionalcharacteristic.Columns, sqlgraph.NewFieldSpec(materialfunctionalcharacteristic.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(materialfunctionalcharacteristic.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(materialfunctionalcharacteristic.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(materialfunctionalcharacteristic.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(materialfunctionalcharacteristic.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(materialfunctionalcharacteristic.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.MaterialCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MaterialIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{materialfunctionalcharacteristic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MaterialFunctionalCharacteristicUpdateOne is the builder for updating a single MaterialFunctionalCharacteristic entity.
type MaterialFunctionalCharacteristicUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MaterialFunctionalCharacteristicMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MaterialFunctionalCharacteristicUpdateOne) SetUpdatedAt(v time.Time) *MaterialFunctionalCharacteristicUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUnit sets the "unit" field.
func (_u *MaterialFunctionalCharacteristicUpdateOne) SetUnit(v string) *MaterialFunctionalCharacteristicUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *MaterialFunctionalCharacteristicUpdateOne) SetNillableUnit(v *string) *MaterialFunctionalCharacteristicUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *MaterialFunctionalCharacteristicUpdateOne) SetValue(v float64) *MaterialFunctionalCharacteristicUpdateOne {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *MaterialFunctionalCharacteristicUpdateOne) SetNillableValue(v *float64) *MaterialFunctionalCharacteristicUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *MaterialFunctionalCharacteristicUpdateOne) AddValue(v float64) *MaterialFunctionalCharacteristicUpdateOne {
	_u.mutation.AddValue(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *MaterialFunctionalCharacteristicUpdateOne) SetDescription(v string) *MaterialFunctionalCharacteristicUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MaterialFunctionalCharacteristicUpdateOne) SetNillableDescription(v *string) *MaterialFunctionalCharacteristicUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetMaterialID sets the "material" edge to the Material entity by ID.
func (_u *MaterialFunctionalCharacteristicUpdateOne) SetMaterialID(id int) *MaterialFunctionalCharacteristicUpdateOne {
	_u.mutation.SetMaterialID(id)
	return _u
}

// SetMaterial sets the "material" edge to the Material entity.
func (_u *MaterialFunctionalCharacteristicUpdateOne) SetMaterial(v *Material) *MaterialFunctionalCharacteristicUpdateOne {
	return _u.SetMaterialID(v.ID)
}

// Mutation returns the MaterialFunctionalCharacteristicMutation object of the builder.
func (_u *MaterialFunctionalCharacteristicUpdateOne) Mutation() *MaterialFunctionalCharacteristicMutation {
	return _u.mutation
}

// ClearMaterial clears the "material" edge to the Material entity.
func (_u *MaterialFunctionalCharacteristicUpdateOne) ClearMaterial() *MaterialFunctionalCharacteristicUpdateOne {
	_u.mutation.ClearMaterial()
	return _u
}

// Where appends a list predicates to the MaterialFunctionalCharacteristicUpdate builder.
func (_u *MaterialFunctionalCharacteristicUpdateOne) Where(ps ...predicate.MaterialFunctionalCharacteristic) *MaterialFunctionalCharacteristicUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MaterialFunctionalCharacteristicUpdateOne) Select(field string, fields ...string) *MaterialFunctionalCharacteristicUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MaterialFunctionalCharacteristic entity.
func (_u *MaterialFunctionalCharacteristicUpdateOne) Save(ctx context.Context) (*MaterialFunctionalCharacteristic, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MaterialFunctionalCharacteristicUpdateOne) SaveX(ctx context.Context) *MaterialFunctionalCharacteristic {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MaterialFunctionalCharacteristicUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MaterialFunctionalCharacteristicUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MaterialFunctionalCharacteristicUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := materialfunctionalcharacteristic.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MaterialFunctionalCharacteristicUpdateOne) check() error {
	if v, ok := _u.mutation.Unit(); ok {
		if err := materialfunctionalcharacteristic.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "MaterialFunctionalCharacteristic.unit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := materialfunctionalcharacteristic.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "MaterialFunctionalCharacteristic.description": %w`, err)}
		}
	}
	if _u.mutation.MaterialCleared() && len(_u.mutation.MaterialIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MaterialFunctionalCharacteristic.material"`)
	}
	return nil
}

func (_u *MaterialFunctionalCharacteristicUpdateOne) sqlSave(ctx context.Context) (_node *MaterialFunctionalCharacteristic, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(materialfunctionalcharacteristic.Table, materialfunctionalcharacteristic.Columns, sqlgraph.NewFieldSpec(materialfunctionalcharacteristic.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MaterialFunctionalCharacteristic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, materialfunctionalcharacteristic.FieldID)
		for _, f := range fields {
			if !materialfunctionalcharacteristic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != materialfunctionalcharacteristic.FieldID {
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
		_spec.SetField(materialfunctionalcharacteristic.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(materialfunctionalcharacteristic.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(materialfunctionalcharacteristic.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(materialfunctionalcharacteristic.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(materialfunctionalcharacteristic.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.MaterialCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MaterialIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &MaterialFunctionalCharacteristic{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{materialfunctionalcharacteristic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
