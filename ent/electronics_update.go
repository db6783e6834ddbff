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
	"satfab.io/satfab/ent/electronics"
	"satfab.io/satfab/ent/predicate"
	"satfab.io/satfab/ent/satellite"
)

// ElectronicsUpdate is the builder for updating Electronics entities.
type ElectronicsUpdate struct {
	config
	hooks    []Hook
	mutation *ElectronicsMutation
}

// Where appends a list predicates to the ElectronicsUpdate builder.
func (_u *ElectronicsUpdate) Where(ps ...predicate.Electronics) *ElectronicsUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ElectronicsUpdate) SetUpdatedAt(v time.Time) *ElectronicsUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *ElectronicsUpdate) SetModel(v string) *ElectronicsUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ElectronicsUpdate) SetNillableModel(v *string) *ElectronicsUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *ElectronicsUpdate) SetType(v string) *ElectronicsUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ElectronicsUpdate) SetNillableType(v *string) *ElectronicsUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *ElectronicsUpdate) SetLocation(v string) *ElectronicsUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *ElectronicsUpdate) SetNillableLocation(v *string) *ElectronicsUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *ElectronicsUpdate) SetPrice(v float64) *ElectronicsUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *ElectronicsUpdate) SetNillablePrice(v *float64) *ElectronicsUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *ElectronicsUpdate) AddPrice(v float64) *ElectronicsUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetSatelliteID sets the "satellite" edge to the Satellite entity by ID.
func (_u *ElectronicsUpdate) SetSatelliteID(id int) *ElectronicsUpdate {
	_u.mutation.SetSatelliteID(id)
	return _u
}

// SetSatellite sets the "satellite" edge to the Satellite entity.
func (_u *ElectronicsUpdate) SetSatellite(v *Satellite) *ElectronicsUpdate {
	return _u.SetSatelliteID(v.ID)
}

// Mutation returns the ElectronicsMutation object of the builder.
func (_u *ElectronicsUpdate) Mutation() *ElectronicsMutation {
	return _u.mutation
}

// ClearSatellite clears the "satellite" edge to the Satellite entity.
func (_u *ElectronicsUpdate) ClearSatellite() *ElectronicsUpdate {
	_u.mutation.ClearSatellite()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ElectronicsUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ElectronicsUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ElectronicsUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ElectronicsUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ElectronicsUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := electronics.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ElectronicsUpdate) check() error {
	if v, ok := _u.mutation.Model(); ok {
		if err := electronics.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "Electronics.model": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := electronics.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Electronics.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Location(); ok {
		if err := electronics.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`ent: validator failed for field "Electronics.location": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Price(); ok {
		if err := electronics.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`ent: validator failed for field "Electronics.price": %w`, err)}
		}
	}
	if _u.mutation.SatelliteCleared() && len(_u.mutation.SatelliteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Electronics.satellite"`)
	}
	return nil
}

func (_u *ElectronicsUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(electronics.Table, electronics.Columns, sqlgraph.NewFieldSpec(electronics.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(electronics.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(electronics.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(electronics.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(electronics.FieldLocation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(electronics.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(electronics.FieldPrice, field.TypeFloat64, value)
	}
	if _u.mutation.SatelliteCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SatelliteIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{electronics.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ElectronicsUpdateOne is the builder for updating a single Electronics entity.
type ElectronicsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ElectronicsMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ElectronicsUpdateOne) SetUpdatedAt(v time.Time) *ElectronicsUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *ElectronicsUpdateOne) SetModel(v string) *ElectronicsUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ElectronicsUpdateOne) SetNillableModel(v *string) *ElectronicsUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *ElectronicsUpdateOne) SetType(v string) *ElectronicsUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ElectronicsUpdateOne) SetNillableType(v *string) *ElectronicsUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *ElectronicsUpdateOne) SetLocation(v string) *ElectronicsUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *ElectronicsUpdateOne) SetNillableLocation(v *string) *ElectronicsUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *ElectronicsUpdateOne) SetPrice(v float64) *ElectronicsUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *ElectronicsUpdateOne) SetNillablePrice(v *float64) *ElectronicsUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *ElectronicsUpdateOne) AddPrice(v float64) *ElectronicsUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetSatelliteID sets the "satellite" edge to the Satellite entity by ID.
func (_u *ElectronicsUpdateOne) SetSatelliteID(id int) *ElectronicsUpdateOne {
	_u.mutation.SetSatelliteID(id)
	return _u
}

// SetSatellite sets the "satellite" edge to the Satellite entity.
func (_u *ElectronicsUpdateOne) SetSatellite(v *Satellite) *ElectronicsUpdateOne {
	return _u.SetSatelliteID(v.ID)
}

// Mutation returns the ElectronicsMutation object of the builder.
func (_u *ElectronicsUpdateOne) Mutation() *ElectronicsMutation {
	return _u.mutation
}

// ClearSatellite clears the "satellite" edge to the Satellite entity.
func (_u *ElectronicsUpdateOne) ClearSatellite() *ElectronicsUpdateOne {
	_u.mutation.ClearSatellite()
	return _u
}

// Where appends a list predicates to the ElectronicsUpdate builder.
func (_u *ElectronicsUpdateOne) Where(ps ...predicate.Electronics) *ElectronicsUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ElectronicsUpdateOne) Select(field string, fields ...string) *ElectronicsUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Electronics entity.
func (_u *ElectronicsUpdateOne) Save(ctx context.Context) (*Electronics, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ElectronicsUpdateOne) SaveX(ctx context.Context) *Electronics {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ElectronicsUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ElectronicsUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ElectronicsUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := electronics.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ElectronicsUpdateOne) check() error {
	if v, ok := _u.mutation.Model(); ok {
		if err := electronics.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "Electronics.model": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := electronics.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Electronics.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Location(); ok {
		if err := electronics.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`ent: validator failed for field "Electronics.location": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Price(); ok {
		if err := electronics.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`ent: validator failed for field "Electronics.price": %w`, err)}
		}
	}
	if _u.mutation.SatelliteCleared() && len(_u.mutation.SatelliteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Electronics.satellite"`)
	}
	return nil
}

func (_u *ElectronicsUpdateOne) sqlSave(ctx context.Context) (_node *Electronics, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(electronics.Table, electronics.Columns, sqlgraph.NewFieldSpec(electronics.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Electronics.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, electronics.FieldID)
		for _, f := range fields {
			if !electronics.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != electronics.FieldID {
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
		_spec.SetField(electronics.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(electronics.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(electronics.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(electronics.FieldLocation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(electronics.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(electronics.FieldPrice, field.TypeFloat64, value)
	}
	if _u.mutation.SatelliteCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SatelliteIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Electronics{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{electronics.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
