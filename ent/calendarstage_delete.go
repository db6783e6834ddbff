// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"satfab.io/satfab/ent/calendarstage"
	"satfab.io/satfab/ent/predicate"
)

// CalendarStageDelete is the builder for deleting a CalendarStage entity.
type CalendarStageDelete struct {
	config
	hooks    []Hook
	mutation *CalendarStageMutation
}

// Where appends a list predicates to the CalendarStageDelete builder.
func (_d *CalendarStageDelete) Where(ps ...predicate.CalendarStage) *CalendarStageDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CalendarStageDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CalendarStageDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CalendarStageDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(calendarstage.Table, sqlgraph.NewFieldSpec(calendarstage.FieldID, field.TypeInt))
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

// CalendarStageDeleteOne is the builder for deleting a single CalendarStage entity.
type CalendarStageDeleteOne struct {
	_d *CalendarStageDelete
}

// Where appends a list predicates to the CalendarStageDelete builder.
func (_d *CalendarStageDeleteOne) Where(ps ...predicate.CalendarStage) *CalendarStageDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CalendarStageDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{calendarstage.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CalendarStageDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
