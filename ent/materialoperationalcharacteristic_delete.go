// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"satfab.io/satfab/ent/materialoperationalcharacteristic"
	"satfab.io/satfab/ent/predicate"
)

// MaterialOperationalCharacteristicDelete is the builder for deleting a MaterialOperationalCharacteristic entity.
type MaterialOperationalCharacteristicDelete struct {
	config
	hooks    []Hook
	mutation *MaterialOperationalCharacteristicMutation
}

// Where appends a list predicates to the MaterialOperationalCharacteristicDelete builder.
func (_d *MaterialOperationalCharacteristicDelete) Where(ps ...predicate.MaterialOperationalCharacteristic) *MaterialOperationalCharacteristicDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MaterialOperationalCharacteristicDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MaterialOperationalCharacteristicDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MaterialOperationalCharacteristicDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(materialoperationalcharacteristic.Table, sqlgraph.NewFieldSpec(materialoperationalcharacteristic.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// MaterialOperationalCharacteristicDeleteOne is the builder for deleting a single MaterialOperationalCharacteristic entity.
type MaterialOperationalCharacteristicDeleteOne struct {
	_d *MaterialOperationalCharacteristicDelete
}

// Where appends a list predicates to the MaterialOperationalCharacteristicDelete builder.
func (_d *MaterialOperationalCharacteristicDeleteOne) Where(ps ...predicate.MaterialOperationalCharacteristic) *MaterialOperationalCharacteristicDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MaterialOperationalCharacteristicDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{materialoperationalcharacteristic.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MaterialOperationalCharacteristicDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
