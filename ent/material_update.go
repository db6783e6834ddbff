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
	"satfab.io/satfab/ent/materialoperationalcharacteristic"
	"satfab.io/satfab/ent/predicate"
)

// MaterialUpdate is the builder for updating Material entities.
type MaterialUpdate struct {
	config
	hooks    []Hook
	mutation *MaterialMutation
}

// Where appends a list predicates to the MaterialUpdate builder.
func (_u *MaterialUpdate) Where(ps ...predicate.Material) *MaterialUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MaterialUpdate) SetUpdatedAt(v time.Time) *MaterialUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTypeOfMaterial sets the "type_of_material" field.
func (_u *MaterialUpdate) SetTypeOfMaterial(v string) *MaterialUpdate {
	_u.mutation.SetTypeOfMaterial(v)
	return _u
}

// SetNillableTypeOfMaterial sets the "type_of_material" field if the given value is not nil.
func (_u *MaterialUpdate) SetNillableTypeOfMaterial(v *string) *MaterialUpdate {
	if v != nil {
		_u.SetTypeOfMaterial(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *MaterialUpdate) SetAmount(v float64) *MaterialUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *MaterialUpdate) SetNillableAmount(v *float64) *MaterialUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *MaterialUpdate) AddAmount(v float64) *MaterialUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetUnit sets the "unit" field.
func (_u *MaterialUpdate) SetUnit(v string) *MaterialUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *MaterialUpdate) SetNillableUnit(v *string) *MaterialUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// AddFunctionalCharacteristicIDs adds the "functional_characteristics" edge to the MaterialFunctionalCharacteristic entity by IDs.
func (_u *MaterialUpdate) AddFunctionalCharacteristicIDs(ids ...int) *MaterialUpdate {
	_u.mutation.AddFunctionalCharacteristicIDs(ids...)
	return _u
}

// AddFunctionalCharacteristics adds the "functional_characteristics" edges to the MaterialFunctionalCharacteristic entity.
func (_u *MaterialUpdate) AddFunctionalCharacteristics(v ...*MaterialFunctionalCharacteristic) *MaterialUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFunctionalCharacteristicIDs(ids...)
}

// AddOperationalCharacteristicIDs adds the "operational_characteristics" edge to the MaterialOperationalCharacteristic entity by IDs.
func (_u *MaterialUpdate) AddOperationalCharacteristicIDs(ids ...int) *MaterialUpdate {
	_u.mutation.AddOperationalCharacteristicIDs(ids...)
	return _u
}

// AddOperationalCharacteristics adds the "operational_characteristics" edges to the MaterialOperationalCharacteristic entity.
func (_u *MaterialUpdate) AddOperationalCharacteristics(v ...*MaterialOperationalCharacteristic) *MaterialUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOperationalCharacteristicIDs(ids...)
}

// Mutation returns the MaterialMutation object of the builder.
func (_u *MaterialUpdate) Mutation() *MaterialMutation {
	return _u.mutation
}

// ClearFunctionalCharacteristics clears all "functional_characteristics" edges to the MaterialFunctionalCharacteristic entity.
func (_u *MaterialUpdate) ClearFunctionalCharacteristics() *MaterialUpdate {
	_u.mutation.ClearFunctionalCharacteristics()
	return _u
}

// RemoveFunctionalCharacteristicIDs removes the "functional_characteristics" edge to MaterialFunctionalCharacteristic entities by IDs.
func (_u *MaterialUpdate) RemoveFunctionalCharacteristicIDs(ids ...int) *MaterialUpdate {
	_u.mutation.RemoveFunctionalCharacteristicIDs(ids...)
	return _u
}

// RemoveFunctionalCharacteristics removes "functional_characteristics" edges to MaterialFunctionalCharacteristic entities.
func (_u *MaterialUpdate) RemoveFunctionalCharacteristics(v ...*MaterialFunctionalCharacteristic) *MaterialUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFunctionalCharacteristicIDs(ids...)
}

// ClearOperationalCharacteristics clears all "operational_characteristics" edges to the MaterialOperationalCharacteristic entity.
func (_u *MaterialUpdate) ClearOperationalCharacteristics() *MaterialUpdate {
	_u.mutation.ClearOperationalCharacteristics()
	return _u
}

// RemoveOperationalCharacteristicIDs removes the "operational_characteristics" edge to MaterialOperationalCharacteristic entities by IDs.
func (_u *MaterialUpdate) RemoveOperationalCharacteristicIDs(ids ...int) *MaterialUpdate {
	_u.mutation.RemoveOperationalCharacteristicIDs(ids...)
	return _u
}

// RemoveOperationalCharacteristics removes "operational_characteristics" edges to MaterialOperationalCharacteristic entities.
func (_u *MaterialUpdate) RemoveOperationalCharacteristics(v ...*MaterialOperationalCharacteristic) *MaterialUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOperationalCharacteristicIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MaterialUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MaterialUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MaterialUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MaterialUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MaterialUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := material.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MaterialUpdate) check() error {
	if v, ok := _u.mutation.TypeOfMaterial(); ok {
		if err := material.TypeOfMaterialValidator(v); err != nil {
			return &ValidationError{Name: "type_of_material", err: fmt.Errorf(`ent: validator failed for field "Material.type_of_material": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Unit(); ok {
		if err := material.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "Material.unit": %w`, err)}
		}
	}
	return nil
}

func (_u *MaterialUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(material.Table, material.Columns, sqlgraph.NewFieldSpec(material.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(material.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TypeOfMaterial(); ok {
		_spec.SetField(material.FieldTypeOfMaterial, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(material.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(material.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(material.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.FunctionalCharacteristicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   material.FunctionalCharacteristicsTable,
			Columns: []string{material.FunctionalCharacteristicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(materialfunctionalcharacteristic.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFunctionalCharacteristicsIDs(); len(nodes) > 0 && !_u.mutation.FunctionalCharacteristicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   material.FunctionalCharacteristicsTable,
			Columns: []string{material.FunctionalCharacteristicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(materialfunctionalcharacteristic.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FunctionalCharacteristicsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   material.FunctionalCharacteristicsTable,
			Columns: []string{material.FunctionalCharacteristicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(materialfunctionalcharacteristic.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OperationalCharacteristicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   material.OperationalCharacteristicsTable,
			Columns: []string{material.OperationalCharacteristicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(materialoperationalcharacteristic.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOperationalCharacteristicsIDs(); len(nodes) > 0 && !_u.mutation.OperationalCharacteristicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   material.OperationalCharacteristicsTable,
			Columns: []string{material.OperationalCharacteristicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(materialoperationalcharacteristic.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OperationalCharacteristicsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   material.OperationalCharacteristicsTable,
			Columns: []string{material.OperationalCharacteristicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(materialoperationalcharacteristic.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{material.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MaterialUpdateOne is the builder for updating a single Material entity.
type MaterialUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MaterialMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MaterialUpdateOne) SetUpdatedAt(v time.Time) *MaterialUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTypeOfMaterial sets the "type_of_material" field.
func (_u *MaterialUpdateOne) SetTypeOfMaterial(v string) *MaterialUpdateOne {
	_u.mutation.SetTypeOfMaterial(v)
	return _u
}

// SetNillableTypeOfMaterial sets the "type_of_material" field if the given value is not nil.
func (_u *MaterialUpdateOne) SetNillableTypeOfMaterial(v *string) *MaterialUpdateOne {
	if v != nil {
		_u.SetTypeOfMaterial(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *MaterialUpdateOne) SetAmount(v float64) *MaterialUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *MaterialUpdateOne) SetNillableAmount(v *float64) *MaterialUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *MaterialUpdateOne) AddAmount(v float64) *MaterialUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetUnit sets the "unit" field.
func (_u *MaterialUpdateOne) SetUnit(v string) *MaterialUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *MaterialUpdateOne) SetNillableUnit(v *string) *MaterialUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// AddFunctionalCharacteristicIDs adds the "functional_characteristics" edge to the MaterialFunctionalCharacteristic entity by IDs.
func (_u *MaterialUpdateOne) AddFunctionalCharacteristicIDs(ids ...int) *MaterialUpdateOne {
	_u.mutation.AddFunctionalCharacteristicIDs(ids...)
	return _u
}

// AddFunctionalCharacteristics adds the "functional_characteristics" edges to the MaterialFunctionalCharacteristic entity.
func (_u *MaterialUpdateOne) AddFunctionalCharacteristics(v ...*MaterialFunctionalCharacteristic) *MaterialUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFunctionalCharacteristicIDs(ids...)
}

// AddOperationalCharacteristicIDs adds the "operational_characteristics" edge to the MaterialOperationalCharacteristic entity by IDs.
func (_u *MaterialUpdateOne) AddOperationalCharacteristicIDs(ids ...int) *MaterialUpdateOne {
	_u.mutation.AddOperationalCharacteristicIDs(ids...)
	return _u
}

// AddOperationalCharacteristics adds the "operational_characteristics" edges to the MaterialOperationalCharacteristic entity.
func (_u *MaterialUpdateOne) AddOperationalCharacteristics(v ...*MaterialOperationalCharacteristic) *MaterialUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOperationalCharacteristicIDs(ids...)
}

// Mutation returns the MaterialMutation object of the builder.
func (_u *MaterialUpdateOne) Mutation() *MaterialMutation {
	return _u.mutation
}

// ClearFunctionalCharacteristics clears all "functional_characteristics" edges to the MaterialFunctionalCharacteristic entity.
func (_u *MaterialUpdateOne) ClearFunctionalCharacteristics() *MaterialUpdateOne {
	_u.mutation.ClearFunctionalCharacteristics()
	return _u
}

// RemoveFunctionalCharacteristicIDs removes the "functional_characteristics" edge to MaterialFunctionalCharacteristic entities by IDs.
func (_u *MaterialUpdateOne) RemoveFunctionalCharacteristicIDs(ids ...int) *MaterialUpdateOne {
	_u.mutation.RemoveFunctionalCharacteristicIDs(ids...)
	return _u
}

// RemoveFunctionalCharacteristics removes "functional_characteristics" edges to MaterialFunctionalCharacteristic entities.
func (_u *MaterialUpdateOne) RemoveFunctionalCharacteristics(v ...*MaterialFunctionalCharacteristic) *MaterialUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFunctionalCharacteristicIDs(ids...)
}

// ClearOperationalCharacteristics clears all "operational_characteristics" edges to the MaterialOperationalCharacteristic entity.
func (_u *MaterialUpdateOne) ClearOperationalCharacteristics() *MaterialUpdateOne {
	_u.mutation.ClearOperationalCharacteristics()
	return _u
}

// RemoveOperationalCharacteristicIDs removes the "operational_characteristics" edge to MaterialOperationalCharacteristic entities by IDs.
func (_u *MaterialUpdateOne) RemoveOperationalCharacteristicIDs(ids ...int) *MaterialUpdateOne {
	_u.mutation.RemoveOperationalCharacteristicIDs(ids...)
	return _u
}

// RemoveOperationalCharacteristics removes "operational_characteristics" edges to MaterialOperationalCharacteristic entities.
func (_u *MaterialUpdateOne) RemoveOperationalCharacteristics(v ...*MaterialOperationalCharacteristic) *MaterialUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOperationalCharacteristicIDs(ids...)
}

// Where appends a list predicates to the MaterialUpdate builder.
func (_u *MaterialUpdateOne) Where(ps ...predicate.Material) *MaterialUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MaterialUpdateOne) Select(field string, fields ...string) *MaterialUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Material entity.
func (_u *MaterialUpdateOne) Save(ctx context.Context) (*Material, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MaterialUpdateOne) SaveX(ctx context.Context) *Material {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MaterialUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MaterialUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MaterialUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := material.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MaterialUpdateOne) check() error {
	if v, ok := _u.mutation.TypeOfMaterial(); ok {
		if err := material.TypeOfMaterialValidator(v); err != nil {
			return &ValidationError{Name: "type_of_material", err: fmt.Errorf(`ent: validator failed for field "Material.type_of_material": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Unit(); ok {
		if err := material.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "Material.unit": %w`, err)}
		}
	}
	return nil
}

func (_u *MaterialUpdateOne) sqlSave(ctx context.Context) (_node *Material, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(material.Table, material.Columns, sqlgraph.NewFieldSpec(material.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Material.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, material.FieldID)
		for _, f := range fields {
			if !material.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != material.FieldID {
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
		_spec.SetField(material.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TypeOfMaterial(); ok {
		_spec.SetField(material.FieldTypeOfMaterial, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(material.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(material.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(material.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.FunctionalCharacteristicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   material.FunctionalCharacteristicsTable,
			Columns: []string{material.FunctionalCharacteristicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(materialfunctionalcharacteristic.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFunctionalCharacteristicsIDs(); len(nodes) > 0 && !_u.mutation.FunctionalCharacteristicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   material.FunctionalCharacteristicsTable,
			Columns: []string{material.FunctionalCharacteristicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(materialfunctionalcharacteristic.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FunctionalCharacteristicsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   material.FunctionalCharacteristicsTable,
			Columns: []string{material.FunctionalCharacteristicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(materialfunctionalcharacteristic.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OperationalCharacteristicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   material.OperationalCharacteristicsTable,
			Columns: []string{material.OperationalCharacteristicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(materialoperationalcharacteristic.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOperationalCharacteristicsIDs(); len(nodes) > 0 && !_u.mutation.OperationalCharacteristicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   material.OperationalCharacteristicsTable,
			Columns: []string{material.OperationalCharacteristicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(materialoperationalcharacteristic.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OperationalCharacteristicsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   material.OperationalCharacteristicsTable,
			Columns: []string{material.OperationalCharacteristicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(materialoperationalcharacteristic.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Material{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{material.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
