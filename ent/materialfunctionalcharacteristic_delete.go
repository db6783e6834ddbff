// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"satfab.io/satfab/ent/materialfunctionalcharacteristic"
	"satfab.io/satfab/ent/predicate"
)

// MaterialFunctionalCharacteristicDelete is the builder for deleting a MaterialFunctionalCharacteristic entity.
type MaterialFunctionalCharacteristicDelete struct {
	config
	hooks    []Hook
	mutation *MaterialFunctionalCharacteristicMutation
}

// Where appends a list predicates to the MaterialFunctionalCharacteristicDelete builder.
func (_d *MaterialFunctionalCharacteristicDelete) Where(ps ...predicate.MaterialFunctionalCharacteristic) *MaterialFunctionalCharacteristicDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MaterialFunctionalCharacteristicDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MaterialFunctionalCharacteristicDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MaterialFunctionalCharacteristicDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(materialfunctionalcharacteristic.Table, sqlgraph.NewFieldSpec(materialfunctionalcharacteristic.FieldID, field.TypeInt))
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

// MaterialFunctionalCharacteristicDeleteOne is the builder for deleting a single MaterialFunctionalCharacteristic entity.
type MaterialFunctionalCharacteristicDeleteOne struct {
	_d *MaterialFunctionalCharacteristicDelete
}

// Where appends a list predicates to the MaterialFunctionalCharacteristicDelete builder.
func (_d *MaterialFunctionalCharacteristicDeleteOne) Where(ps ...predicate.MaterialFunctionalCharacteristic) *MaterialFunctionalCharacteristicDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MaterialFunctionalCharacteristicDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{materialfunctionalcharacteristic.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MaterialFunctionalCharacteristicDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
