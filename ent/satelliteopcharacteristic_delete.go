// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"satfab.io/satfab/ent/predicate"
	"satfab.io/satfab/ent/satelliteopcharacteristic"
)

// SatelliteOpCharacteristicDelete is the builder for deleting a SatelliteOpCharacteristic entity.
type SatelliteOpCharacteristicDelete struct {
	config
	hooks    []Hook
	mutation *SatelliteOpCharacteristicMutation
}

// Where appends a list predicates to the SatelliteOpCharacteristicDelete builder.
func (_d *SatelliteOpCharacteristicDelete) Where(ps ...predicate.SatelliteOpCharacteristic) *SatelliteOpCharacteristicDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SatelliteOpCharacteristicDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SatelliteOpCharacteristicDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SatelliteOpCharacteristicDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(satelliteopcharacteristic.Table, sqlgraph.NewFieldSpec(satelliteopcharacteristic.FieldID, field.TypeInt))
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

// SatelliteOpCharacteristicDeleteOne is the builder for deleting a single SatelliteOpCharacteristic entity.
type SatelliteOpCharacteristicDeleteOne struct {
	_d *SatelliteOpCharacteristicDelete
}

// Where appends a list predicates to the SatelliteOpCharacteristicDelete builder.
func (_d *SatelliteOpCharacteristicDeleteOne) Where(ps ...predicate.SatelliteOpCharacteristic) *SatelliteOpCharacteristicDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SatelliteOpCharacteristicDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{satelliteopcharacteristic.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SatelliteOpCharacteristicDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
