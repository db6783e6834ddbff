// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"satfab.io/satfab/ent/physicaltestdata"
	"satfab.io/satfab/ent/predicate"
)

// PhysicalTestDataDelete is the builder for deleting a PhysicalTestData entity.
type PhysicalTestDataDelete struct {
	config
	hooks    []Hook
	mutation *PhysicalTestDataMutation
}

// Where appends a list predicates to the PhysicalTestDataDelete builder.
func (_d *PhysicalTestDataDelete) Where(ps ...predicate.PhysicalTestData) *PhysicalTestDataDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PhysicalTestDataDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PhysicalTestDataDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PhysicalTestDataDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(physicaltestdata.Table, sqlgraph.NewFieldSpec(physicaltestdata.FieldID, field.TypeInt))
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

// PhysicalTestDataDeleteOne is the builder for deleting a single PhysicalTestData entity.
type PhysicalTestDataDeleteOne struct {
	_d *PhysicalTestDataDelete
}

// Where appends a list predicates to the PhysicalTestDataDelete builder.
func (_d *PhysicalTestDataDeleteOne) Where(ps ...predicate.PhysicalTestData) *PhysicalTestDataDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PhysicalTestDataDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{physicaltestdata.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PhysicalTestDataDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
