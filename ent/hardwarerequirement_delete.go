// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"satfab.io/satfab/ent/hardwarerequirement"
	"satfab.io/satfab/ent/predicate"
)

// HardwareRequirementDelete is the builder for deleting a HardwareRequirement entity.
type HardwareRequirementDelete struct {
	config
	hooks    []Hook
	mutation *HardwareRequirementMutation
}

// Where appends a list predicates to the HardwareRequirementDelete builder.
func (_d *HardwareRequirementDelete) Where(ps ...predicate.HardwareRequirement) *HardwareRequirementDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *HardwareRequirementDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *HardwareRequirementDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *HardwareRequirementDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(hardwarerequirement.Table, sqlgraph.NewFieldSpec(hardwarerequirement.FieldID, field.TypeInt))
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

// HardwareRequirementDeleteOne is the builder for deleting a single HardwareRequirement entity.
type HardwareRequirementDeleteOne struct {
	_d *HardwareRequirementDelete
}

// Where appends a list predicates to the HardwareRequirementDelete builder.
func (_d *HardwareRequirementDeleteOne) Where(ps ...predicate.HardwareRequirement) *HardwareRequirementDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *HardwareRequirementDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{hardwarerequirement.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *HardwareRequirementDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
