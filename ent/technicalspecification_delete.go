// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"satfab.io/satfab/ent/predicate"
	"satfab.io/satfab/ent/technicalspecification"
)

// TechnicalSpecificationDelete is the builder for deleting a TechnicalSpecification entity.
type TechnicalSpecificationDelete struct {
	config
	hooks    []Hook
	mutation *TechnicalSpecificationMutation
}

// Where appends a list predicates to the TechnicalSpecificationDelete builder.
func (_d *TechnicalSpecificationDelete) Where(ps ...predicate.TechnicalSpecification) *TechnicalSpecificationDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *TechnicalSpecificationDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TechnicalSpecificationDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *TechnicalSpecificationDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(technicalspecification.Table, sqlgraph.NewFieldSpec(technicalspecification.FieldID, field.TypeInt))
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

// TechnicalSpecificationDeleteOne is the builder for deleting a single TechnicalSpecification entity.
type TechnicalSpecificationDeleteOne struct {
	_d *TechnicalSpecificationDelete
}

// Where appends a list predicates to the TechnicalSpecificationDelete builder.
func (_d *TechnicalSpecificationDeleteOne) Where(ps ...predicate.TechnicalSpecification) *TechnicalSpecificationDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *TechnicalSpecificationDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{technicalspecification.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TechnicalSpecificationDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
