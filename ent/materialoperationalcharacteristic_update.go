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
	"satfab.io/satfab/ent/materialoperationalcharacteristic"
	"satfab.io/satfab/ent/predicate"
	"satfab.io/satfab/ent/stand"
)

// MaterialOperationalCharacteristicUpdate is the builder for updating MaterialOperationalCharacteristic entities.
type MaterialOperationalCharacteristicUpdate struct {
	config
	hooks    []Hook
	mutation *MaterialOperationalCharacteristicMutation
}

// Where appends a list predicates to the MaterialOperationalCharacteristicUpdate builder.
func (_u *MaterialOperationalCharacteristicUpdate) Where(ps ...predicate.MaterialOperationalCharacteristic) *MaterialOperationalCharacteristicUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MaterialOperationalCharacteristicUpdate) SetUpdatedAt(v time.Time) *MaterialOperationalCharacteristicUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUnit sets the "unit" field.
func (_u *MaterialOperationalCharacteristicUpdate) SetUnit(v string) *MaterialOperationalCharacteristicUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *MaterialOperationalCharacteristicUpdate) SetNillableUnit(v *string) *MaterialOperationalCharacteristicUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *MaterialOperationalCharacteristicUpdate) SetValue(v float64) *MaterialOperationalCharacteristicUpdate {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *MaterialOperationalCharacteristicUpdate) SetNillableValue(v *float64) *MaterialOperationalCharacteristicUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *MaterialOperationalCharacteristicUpdate) AddValue(v float64) *MaterialOperationalCharacteristicUpdate {
	_u.mutation.AddValue(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *MaterialOperationalCharacteristicUpdate) SetDescription(v string) *MaterialOperationalCharacteristicUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MaterialOperationalCharacteristicUpdate) SetNillableDescription(v *string) *MaterialOperationalCharacteristicUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *MaterialOperationalCharacteristicUpdate) ClearDescription() *MaterialOperationalCharacteristicUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetMaterialID sets the "material" edge to the Material entity by ID.
func (_u *MaterialOperationalCharacteristicUpdate) SetMaterialID(id int) *MaterialOperationalCharacteristicUpdate {
	_u.mutation.SetMaterialID(id)
	return _u
}

// SetMaterial sets the "material" edge to the Material entity.
func (_u *MaterialOperationalCharacteristicUpdate) SetMaterial(v *Material) *MaterialOperationalCharacteristicUpdate {
	return _u.SetMaterialID(v.ID)
}

// SetStandID sets the "stand" edge to the Stand entity by ID.
func (_u *MaterialOperationalCharacteristicUpdate) SetStandID(id int) *MaterialOperationalCharacteristicUpdate {
	_u.mutation.SetStandID(id)
	return _u
}

// SetStand sets the "stand" edge to the Stand entity.
func (_u *MaterialOperationalCharacteristicUpdate) SetStand(v *Stand) *MaterialOperationalCharacteristicUpdate {
	return _u.SetStandID(v.ID)
}

// Mutation returns the MaterialOperationalCharacteristicMutation object of the builder.
func (_u *MaterialOperationalCharacteristicUpdate) Mutation() *MaterialOperationalCharacteristicMutation {
	return _u.mutation
}

// ClearMaterial clears the "material" edge to the Material entity.
func (_u *MaterialOperationalCharacteristicUpdate) ClearMaterial() *MaterialOperationalCharacteristicUpdate {
	_u.mutation.ClearMaterial()
	return _u
}

// ClearStand clears the "stand" edge to the Stand entity.
func (_u *MaterialOperationalCharacteristicUpdate) ClearStand() *MaterialOperationalCharacteristicUpdate {
	_u.mutation.ClearStand()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MaterialOperationalCharacteristicUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MaterialOperationalCharacteristicUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MaterialOperationalCharacteristicUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MaterialOperationalCharacteristicUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MaterialOperationalCharacteristicUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := materialoperationalcharacteristic.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MaterialOperationalCharacteristicUpdate) check() error {
	if v, ok := _u.mutation.Unit(); ok {
		if err := materialoperationalcharacteristic.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "MaterialOperationalCharacteristic.unit": %w`, err)}
		}
	}
	if _u.mutation.MaterialCleared() && len(_u.mutation.MaterialIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MaterialOperationalCharacteristic.material"`)
	}
	if _u.mutation.StandCleared() && len(_u.mutation.StandIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MaterialOperationalCharacteristic.stand"`)
	}
	return nil
}

func (_u *MaterialOperationalCharacteristicUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(materialoperationalcharacteristic.Table, materialoperationalcharacteristic.Columns, sqlgraph.NewFieldSpec(materialoperationalcharacteristic.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(materialoperationalcharacteristic.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(materialoperationalcharacteristic.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(materialoperationalcharacteristic.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(materialoperationalcharacteristic.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(materialoperationalcharacteristic.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(materialoperationalcharacteristic.FieldDescription, field.TypeString)
	}
	if _u.mutation.MaterialCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   materialoperationalcharacteristic.MaterialTable,
			Columns: []string{materialoperationalcharacteristic.MaterialColumn},
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
			Table:   materialoperationalcharacteristic.MaterialTable,
			Columns: []string{materialoperationalcharacteristic.MaterialColumn},
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
	if _u.mutation.StandCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   materialoperationalcharacteristic.StandTable,
			Columns: []string{materialoperationalcharacteristic.StandColumn},
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
			Table:   materialoperationalcharacteristic.StandTable,
			Columns: []string{materialoperationalcharacteristic.StandColumn},
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
			err = &NotFoundError{materialoperationalcharacteristic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MaterialOperationalCharacteristicUpdateOne is the builder for updating a single MaterialOperationalCharacteristic entity.
type MaterialOperationalCharacteristicUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MaterialOperationalCharacteristicMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MaterialOperationalCharacteristicUpdateOne) SetUpdatedAt(v time.Time) *MaterialOperationalCharacteristicUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUnit sets the "unit" field.
func (_u *MaterialOperationalCharacteristicUpdateOne) SetUnit(v string) *MaterialOperationalCharacteristicUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *MaterialOperationalCharacteristicUpdateOne) SetNillableUnit(v *string) *MaterialOperationalCharacteristicUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *MaterialOperationalCharacteristicUpdateOne) SetValue(v float64) *MaterialOperationalCharacteristicUpdateOne {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *MaterialOperationalCharacteristicUpdateOne) SetNillableValue(v *float64) *MaterialOperationalCharacteristicUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *MaterialOperationalCharacteristicUpdateOne) AddValue(v float64) *MaterialOperationalCharacteristicUpdateOne {
	_u.mutation.AddValue(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *MaterialOperationalCharacteristicUpdateOne) SetDescription(v string) *MaterialOperationalCharacteristicUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MaterialOperationalCharacteristicUpdateOne) SetNillableDescription(v *string) *MaterialOperationalCharacteristicUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *MaterialOperationalCharacteristicUpdateOne) ClearDescription() *MaterialOperationalCharacteristicUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetMaterialID sets the "material" edge to the Material entity by ID.
func (_u *MaterialOperationalCharacteristicUpdateOne) SetMaterialID(id int) *MaterialOperationalCharacteristicUpdateOne {
	_u.mutation.SetMaterialID(id)
	return _u
}

// SetMaterial sets the "material" edge to the Material entity.
func (_u *MaterialOperationalCharacteristicUpdateOne) SetMaterial(v *Material) *MaterialOperationalCharacteristicUpdateOne {
	return _u.SetMaterialID(v.ID)
}

// SetStandID sets the "stand" edge to the Stand entity by ID.
func (_u *MaterialOperationalCharacteristicUpdateOne) SetStandID(id int) *MaterialOperationalCharacteristicUpdateOne {
	_u.mutation.SetStandID(id)
	return _u
}

// SetStand sets the "stand" edge to the Stand entity.
func (_u *MaterialOperationalCharacteristicUpdateOne) SetStand(v *Stand) *MaterialOperationalCharacteristicUpdateOne {
	return _u.SetStandID(v.ID)
}

// Mutation returns the MaterialOperationalCharacteristicMutation object of the builder.
func (_u *MaterialOperationalCharacteristicUpdateOne) Mutation() *MaterialOperationalCharacteristicMutation {
	return _u.mutation
}

// ClearMaterial clears the "material" edge to the Material entity.
func (_u *MaterialOperationalCharacteristicUpdateOne) ClearMaterial() *MaterialOperationalCharacteristicUpdateOne {
	_u.mutation.ClearMaterial()
	return _u
}

// ClearStand clears the "stand" edge to the Stand entity.
func (_u *MaterialOperationalCharacteristicUpdateOne) ClearStand() *MaterialOperationalCharacteristicUpdateOne {
	_u.mutation.ClearStand()
	return _u
}

// Where appends a list predicates to the MaterialOperationalCharacteristicUpdate builder.
func (_u *MaterialOperationalCharacteristicUpdateOne) Where(ps ...predicate.MaterialOperationalCharacteristic) *MaterialOperationalCharacteristicUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MaterialOperationalCharacteristicUpdateOne) Select(field string, fields ...string) *MaterialOperationalCharacteristicUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MaterialOperationalCharacteristic entity.
func (_u *MaterialOperationalCharacteristicUpdateOne) Save(ctx context.Context) (*MaterialOperationalCharacteristic, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MaterialOperationalCharacteristicUpdateOne) SaveX(ctx context.Context) *MaterialOperationalCharacteristic {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MaterialOperationalCharacteristicUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MaterialOperationalCharacteristicUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MaterialOperationalCharacteristicUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := materialoperationalcharacteristic.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MaterialOperationalCharacteristicUpdateOne) check() error {
	if v, ok := _u.mutation.Unit(); ok {
		if err := materialoperationalcharacteristic.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "MaterialOperationalCharacteristic.unit": %w`, err)}
		}
	}
	if _u.mutation.MaterialCleared() && len(_u.mutation.MaterialIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MaterialOperationalCharacteristic.material"`)
	}
	if _u.mutation.StandCleared() && len(_u.mutation.StandIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MaterialOperationalCharacteristic.stand"`)
	}
	return nil
}

func (_u *MaterialOperationalCharacteristicUpdateOne) sqlSave(ctx context.Context) (_node *MaterialOperationalCharacteristic, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(materialoperationalcharacteristic.Table, materialoperationalcharacteristic.Columns, sqlgraph.NewFieldSpec(materialoperationalcharacteristic.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MaterialOperationalCharacteristic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, materialoperationalcharacteristic.FieldID)
		for _, f := range fields {
			if !materialoperationalcharacteristic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != materialoperationalcharacteristic.FieldID {
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
		_spec.SetField(materialoperationalcharacteristic.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(materialoperationalcharacteristic.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(materialoperationalcharacteristic.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(materialoperationalcharacteristic.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(materialoperationalcharacteristic.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(materialoperationalcharacteristic.FieldDescription, field.TypeString)
	}
	if _u.mutation.MaterialCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   materialoperationalcharacteristic.MaterialTable,
			Columns: []string{materialoperationalcharacteristic.MaterialColumn},
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
			Table:   materialoperationalcharacteristic.MaterialTable,
			Columns: []string{materialoperationalcharacteristic.MaterialColumn},
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
	if _u.mutation.StandCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   materialoperationalcharacteristic.StandTable,
			Columns: []string{materialoperationalcharacteristic.StandColumn},
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
			Table:   materialoperationalcharacteristic.StandTable,
			Columns: []string{materialoperationalcharacteristic.StandColumn},
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
	_node = &MaterialOperationalCharacteristic{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{materialoperationalcharacteristic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
