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
	"satfab.io/satfab/ent/calendarstage"
	"satfab.io/satfab/ent/predicate"
	"satfab.io/satfab/ent/satellite"
	"satfab.io/satfab/ent/technicalspecification"
)

// CalendarStageUpdate is the builder for updating CalendarStage entities.
type CalendarStageUpdate struct {
	config
	hooks    []Hook
	mutation *CalendarStageMutation
}

// Where appends a list predicates to the CalendarStageUpdate builder.
func (_u *CalendarStageUpdate) Where(ps ...predicate.CalendarStage) *CalendarStageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CalendarStageUpdate) SetUpdatedAt(v time.Time) *CalendarStageUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNameOfStage sets the "name_of_stage" field.
func (_u *CalendarStageUpdate) SetNameOfStage(v string) *CalendarStageUpdate {
	_u.mutation.SetNameOfStage(v)
	return _u
}

// SetNillableNameOfStage sets the "name_of_stage" field if the given value is not nil.
func (_u *CalendarStageUpdate) SetNillableNameOfStage(v *string) *CalendarStageUpdate {
	if v != nil {
		_u.SetNameOfStage(*v)
	}
	return _u
}

// SetTimeOfFrame sets the "time_of_frame" field.
func (_u *CalendarStageUpdate) SetTimeOfFrame(v time.Time) *CalendarStageUpdate {
	_u.mutation.SetTimeOfFrame(v)
	return _u
}

// SetNillableTimeOfFrame sets the "time_of_frame" field if the given value is not nil.
func (_u *CalendarStageUpdate) SetNillableTimeOfFrame(v *time.Time) *CalendarStageUpdate {
	if v != nil {
		_u.SetTimeOfFrame(*v)
	}
	return _u
}

// SetDuration sets the "duration" field.
func (_u *CalendarStageUpdate) SetDuration(v int) *CalendarStageUpdate {
	_u.mutation.ResetDuration()
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *CalendarStageUpdate) SetNillableDuration(v *int) *CalendarStageUpdate {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// AddDuration adds value to the "duration" field.
func (_u *CalendarStageUpdate) AddDuration(v int) *CalendarStageUpdate {
	_u.mutation.AddDuration(v)
	return _u
}

// SetSatelliteID sets the "satellite" edge to the Satellite entity by ID.
func (_u *CalendarStageUpdate) SetSatelliteID(id int) *CalendarStageUpdate {
	_u.mutation.SetSatelliteID(id)
	return _u
}

// SetSatellite sets the "satellite" edge to the Satellite entity.
func (_u *CalendarStageUpdate) SetSatellite(v *Satellite) *CalendarStageUpdate {
	return _u.SetSatelliteID(v.ID)
}

// SetTechnicalSpecificationID sets the "technical_specification" edge to the TechnicalSpecification entity by ID.
func (_u *CalendarStageUpdate) SetTechnicalSpecificationID(id int) *CalendarStageUpdate {
	_u.mutation.SetTechnicalSpecificationID(id)
	return _u
}

// SetTechnicalSpecification sets the "technical_specification" edge to the TechnicalSpecification entity.
func (_u *CalendarStageUpdate) SetTechnicalSpecification(v *TechnicalSpecification) *CalendarStageUpdate {
	return _u.SetTechnicalSpecificationID(v.ID)
}

// Mutation returns the CalendarStageMutation object of the builder.
func (_u *CalendarStageUpdate) Mutation() *CalendarStageMutation {
	return _u.mutation
}

// ClearSatellite clears the "satellite" edge to the Satellite entity.
func (_u *CalendarStageUpdate) ClearSatellite() *CalendarStageUpdate {
	_u.mutation.ClearSatellite()
	return _u
}

// ClearTechnicalSpecification clears the "technical_specification" edge to the TechnicalSpecification entity.
func (_u *CalendarStageUpdate) ClearTechnicalSpecification() *CalendarStageUpdate {
	_u.mutation.ClearTechnicalSpecification()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CalendarStageUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalendarStageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CalendarStageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalendarStageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CalendarStageUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := calendarstage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CalendarStageUpdate) check() error {
	if v, ok := _u.mutation.NameOfStage(); ok {
		if err := calendarstage.NameOfStageValidator(v); err != nil {
			return &ValidationError{Name: "name_of_stage", err: fmt.Errorf(`ent: validator failed for field "CalendarStage.name_of_stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Duration(); ok {
		if err := calendarstage.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`ent: validator failed for field "CalendarStage.duration": %w`, err)}
		}
	}
	if _u.mutation.SatelliteCleared() && len(_u.mutation.SatelliteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CalendarStage.satellite"`)
	}
	if _u.mutation.TechnicalSpecificationCleared() && len(_u.mutation.TechnicalSpecificationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CalendarStage.technical_specification"`)
	}
	return nil
}

func (_u *CalendarStageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(calendarstage.Table, calendarstage.Columns, sqlgraph.NewFieldSpec(calendarstage.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(calendarstage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.NameOfStage(); ok {
		_spec.SetField(calendarstage.FieldNameOfStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeOfFrame(); ok {
		_spec.SetField(calendarstage.FieldTimeOfFrame, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(calendarstage.FieldDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDuration(); ok {
		_spec.AddField(calendarstage.FieldDuration, field.TypeInt, value)
	}
	if _u.mutation.SatelliteCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   calendarstage.SatelliteTable,
			Columns: []string{calendarstage.SatelliteColumn},
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
			Table:   calendarstage.SatelliteTable,
			Columns: []string{calendarstage.SatelliteColumn},
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
	if _u.mutation.TechnicalSpecificationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   calendarstage.TechnicalSpecificationTable,
			Columns: []string{calendarstage.TechnicalSpecificationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(technicalspecification.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TechnicalSpecificationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   calendarstage.TechnicalSpecificationTable,
			Columns: []string{calendarstage.TechnicalSpecificationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(technicalspecification.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calendarstage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CalendarStageUpdateOne is the builder for updating a single CalendarStage entity.
type CalendarStageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CalendarStageMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CalendarStageUpdateOne) SetUpdatedAt(v time.Time) *CalendarStageUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNameOfStage sets the "name_of_stage" field.
func (_u *CalendarStageUpdateOne) SetNameOfStage(v string) *CalendarStageUpdateOne {
	_u.mutation.SetNameOfStage(v)
	return _u
}

// SetNillableNameOfStage sets the "name_of_stage" field if the given value is not nil.
func (_u *CalendarStageUpdateOne) SetNillableNameOfStage(v *string) *CalendarStageUpdateOne {
	if v != nil {
		_u.SetNameOfStage(*v)
	}
	return _u
}

// SetTimeOfFrame sets the "time_of_frame" field.
func (_u *CalendarStageUpdateOne) SetTimeOfFrame(v time.Time) *CalendarStageUpdateOne {
	_u.mutation.SetTimeOfFrame(v)
	return _u
}

// SetNillableTimeOfFrame sets the "time_of_frame" field if the given value is not nil.
func (_u *CalendarStageUpdateOne) SetNillableTimeOfFrame(v *time.Time) *CalendarStageUpdateOne {
	if v != nil {
		_u.SetTimeOfFrame(*v)
	}
	return _u
}

// SetDuration sets the "duration" field.
func (_u *CalendarStageUpdateOne) SetDuration(v int) *CalendarStageUpdateOne {
	_u.mutation.ResetDuration()
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *CalendarStageUpdateOne) SetNillableDuration(v *int) *CalendarStageUpdateOne {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// AddDuration adds value to the "duration" field.
func (_u *CalendarStageUpdateOne) AddDuration(v int) *CalendarStageUpdateOne {
	_u.mutation.AddDuration(v)
	return _u
}

// SetSatelliteID sets the "satellite" edge to the Satellite entity by ID.
func (_u *CalendarStageUpdateOne) SetSatelliteID(id int) *CalendarStageUpdateOne {
	_u.mutation.SetSatelliteID(id)
	return _u
}

// SetSatellite sets the "satellite" edge to the Satellite entity.
func (_u *CalendarStageUpdateOne) SetSatellite(v *Satellite) *CalendarStageUpdateOne {
	return _u.SetSatelliteID(v.ID)
}

// SetTechnicalSpecificationID sets the "technical_specification" edge to the TechnicalSpecification entity by ID.
func (_u *CalendarStageUpdateOne) SetTechnicalSpecificationID(id int) *CalendarStageUpdateOne {
	_u.mutation.SetTechnicalSpecificationID(id)
	return _u
}

// SetTechnicalSpecification sets the "technical_specification" edge to the TechnicalSpecification entity.
func (_u *CalendarStageUpdateOne) SetTechnicalSpecification(v *TechnicalSpecification) *CalendarStageUpdateOne {
	return _u.SetTechnicalSpecificationID(v.ID)
}

// Mutation returns the CalendarStageMutation object of the builder.
func (_u *CalendarStageUpdateOne) Mutation() *CalendarStageMutation {
	return _u.mutation
}

// ClearSatellite clears the "satellite" edge to the Satellite entity.
func (_u *CalendarStageUpdateOne) ClearSatellite() *CalendarStageUpdateOne {
	_u.mutation.ClearSatellite()
	return _u
}

// ClearTechnicalSpecification clears the "technical_specification" edge to the TechnicalSpecification entity.
func (_u *CalendarStageUpdateOne) ClearTechnicalSpecification() *CalendarStageUpdateOne {
	_u.mutation.ClearTechnicalSpecification()
	return _u
}

// Where appends a list predicates to the CalendarStageUpdate builder.
func (_u *CalendarStageUpdateOne) Where(ps ...predicate.CalendarStage) *CalendarStageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CalendarStageUpdateOne) Select(field string, fields ...string) *CalendarStageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CalendarStage entity.
func (_u *CalendarStageUpdateOne) Save(ctx context.Context) (*CalendarStage, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalendarStageUpdateOne) SaveX(ctx context.Context) *CalendarStage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CalendarStageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalendarStageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CalendarStageUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := calendarstage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CalendarStageUpdateOne) check() error {
	if v, ok := _u.mutation.NameOfStage(); ok {
		if err := calendarstage.NameOfStageValidator(v); err != nil {
			return &ValidationError{Name: "name_of_stage", err: fmt.Errorf(`ent: validator failed for field "CalendarStage.name_of_stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Duration(); ok {
		if err := calendarstage.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`ent: validator failed for field "CalendarStage.duration": %w`, err)}
		}
	}
	if _u.mutation.SatelliteCleared() && len(_u.mutation.SatelliteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CalendarStage.satellite"`)
	}
	if _u.mutation.TechnicalSpecificationCleared() && len(_u.mutation.TechnicalSpecificationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CalendarStage.technical_specification"`)
	}
	return nil
}

func (_u *CalendarStageUpdateOne) sqlSave(ctx context.Context) (_node *CalendarStage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(calendarstage.Table, calendarstage.Columns, sqlgraph.NewFieldSpec(calendarstage.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CalendarStage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, calendarstage.FieldID)
		for _, f := range fields {
			if !calendarstage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != calendarstage.FieldID {
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
		_spec.SetField(calendarstage.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.NameOfStage(); ok {
		_spec.SetField(calendarstage.FieldNameOfStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeOfFrame(); ok {
		_spec.SetField(calendarstage.FieldTimeOfFrame, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(calendarstage.FieldDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDuration(); ok {
		_spec.AddField(calendarstage.FieldDuration, field.TypeInt, value)
	}
	if _u.mutation.SatelliteCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   calendarstage.SatelliteTable,
			Columns: []string{calendarstage.SatelliteColumn},
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
			Table:   calendarstage.SatelliteTable,
			Columns: []string{calendarstage.SatelliteColumn},
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
	if _u.mutation.TechnicalSpecificationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   calendarstage.TechnicalSpecificationTable,
			Columns: []string{calendarstage.TechnicalSpecificationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(technicalspecification.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TechnicalSpecificationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   calendarstage.TechnicalSpecificationTable,
			Columns: []string{calendarstage.TechnicalSpecificationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(technicalspecification.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CalendarStage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calendarstage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
