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
	"satfab.io/satfab/ent/stand"
	"satfab.io/satfab/ent/technicalspecification"
)

// TechnicalSpecificationUpdate is the builder for updating TechnicalSpecification entities.
type TechnicalSpecificationUpdate struct {
	config
	hooks    []Hook
	mutation *TechnicalSpecificationMutation
}

// Where appends a list predicates to the TechnicalSpecificationUpdate builder.
func (_u *TechnicalSpecificationUpdate) Where(ps ...predicate.TechnicalSpecification) *TechnicalSpecificationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TechnicalSpecificationUpdate) SetUpdatedAt(v time.Time) *TechnicalSpecificationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *TechnicalSpecificationUpdate) SetDescription(v string) *TechnicalSpecificationUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TechnicalSpecificationUpdate) SetNillableDescription(v *string) *TechnicalSpecificationUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TechnicalSpecificationUpdate) ClearDescription() *TechnicalSpecificationUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetSatelliteID sets the "satellite" edge to the Satellite entity by ID.
func (_u *TechnicalSpecificationUpdate) SetSatelliteID(id int) *TechnicalSpecificationUpdate {
	_u.mutation.SetSatelliteID(id)
	return _u
}

// SetSatellite sets the "satellite" edge to the Satellite entity.
func (_u *TechnicalSpecificationUpdate) SetSatellite(v *Satellite) *TechnicalSpecificationUpdate {
	return _u.SetSatelliteID(v.ID)
}

// AddStandIDs adds the "stands" edge to the Stand entity by IDs.
func (_u *TechnicalSpecificationUpdate) AddStandIDs(ids ...int) *TechnicalSpecificationUpdate {
	_u.mutation.AddStandIDs(ids...)
	return _u
}

// AddStands adds the "stands" edges to the Stand entity.
func (_u *TechnicalSpecificationUpdate) AddStands(v ...*Stand) *TechnicalSpecificationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStandIDs(ids...)
}

// AddCalendarStageIDs adds the "calendar_stages" edge to the CalendarStage entity by IDs.
func (_u *TechnicalSpecificationUpdate) AddCalendarStageIDs(ids ...int) *TechnicalSpecificationUpdate {
	_u.mutation.AddCalendarStageIDs(ids...)
	return _u
}

// AddCalendarStages adds the "calendar_stages" edges to the CalendarStage entity.
func (_u *TechnicalSpecificationUpdate) AddCalendarStages(v ...*CalendarStage) *TechnicalSpecificationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCalendarStageIDs(ids...)
}

// Mutation returns the TechnicalSpecificationMutation object of the builder.
func (_u *TechnicalSpecificationUpdate) Mutation() *TechnicalSpecificationMutation {
	return _u.mutation
}

// ClearSatellite clears the "satellite" edge to the Satellite entity.
func (_u *TechnicalSpecificationUpdate) ClearSatellite() *TechnicalSpecificationUpdate {
	_u.mutation.ClearSatellite()
	return _u
}

// ClearStands clears all "stands" edges to the Stand entity.
func (_u *TechnicalSpecificationUpdate) ClearStands() *TechnicalSpecificationUpdate {
	_u.mutation.ClearStands()
	return _u
}

// RemoveStandIDs removes the "stands" edge to Stand entities by IDs.
func (_u *TechnicalSpecificationUpdate) RemoveStandIDs(ids ...int) *TechnicalSpecificationUpdate {
	_u.mutation.RemoveStandIDs(ids...)
	return _u
}

// RemoveStands removes "stands" edges to Stand entities.
func (_u *TechnicalSpecificationUpdate) RemoveStands(v ...*Stand) *TechnicalSpecificationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStandIDs(ids...)
}

// ClearCalendarStages clears all "calendar_stages" edges to the CalendarStage entity.
func (_u *TechnicalSpecificationUpdate) ClearCalendarStages() *TechnicalSpecificationUpdate {
	_u.mutation.ClearCalendarStages()
	return _u
}

// RemoveCalendarStageIDs removes the "calendar_stages" edge to CalendarStage entities by IDs.
func (_u *TechnicalSpecificationUpdate) RemoveCalendarStageIDs(ids ...int) *TechnicalSpecificationUpdate {
	_u.mutation.RemoveCalendarStageIDs(ids...)
	return _u
}

// RemoveCalendarStages removes "calendar_stages" edges to CalendarStage entities.
func (_u *TechnicalSpecificationUpdate) RemoveCalendarStages(v ...*CalendarStage) *TechnicalSpecificationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCalendarStageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TechnicalSpecificationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TechnicalSpecificationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TechnicalSpecificationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TechnicalSpecificationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TechnicalSpecificationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := technicalspecification.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TechnicalSpecificationUpdate) check() error {
	if _u.mutation.SatelliteCleared() && len(_u.mutation.SatelliteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TechnicalSpecification.satellite"`)
	}
	return nil
}

func (_u *TechnicalSpecificationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(technicalspecification.Table, technicalspecification.Columns, sqlgraph.NewFieldSpec(technicalspecification.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(technicalspecification.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(technicalspecification.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(technicalspecification.FieldDescription, field.TypeString)
	}
	if _u.mutation.SatelliteCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   technicalspecification.SatelliteTable,
			Columns: []string{technicalspecification.SatelliteColumn},
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
			Table:   technicalspecification.SatelliteTable,
			Columns: []string{technicalspecification.SatelliteColumn},
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
	if _u.mutation.StandsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   technicalspecification.StandsTable,
			Columns: []string{technicalspecification.StandsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stand.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStandsIDs(); len(nodes) > 0 && !_u.mutation.StandsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   technicalspecification.StandsTable,
			Columns: []string{technicalspecification.StandsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stand.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StandsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   technicalspecification.StandsTable,
			Columns: []string{technicalspecification.StandsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stand.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CalendarStagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   technicalspecification.CalendarStagesTable,
			Columns: []string{technicalspecification.CalendarStagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(calendarstage.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCalendarStagesIDs(); len(nodes) > 0 && !_u.mutation.CalendarStagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   technicalspecification.CalendarStagesTable,
			Columns: []string{technicalspecification.CalendarStagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(calendarstage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CalendarStagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   technicalspecification.CalendarStagesTable,
			Columns: []string{technicalspecification.CalendarStagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(calendarstage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{technicalspecification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TechnicalSpecificationUpdateOne is the builder for updating a single TechnicalSpecification entity.
type TechnicalSpecificationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TechnicalSpecificationMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TechnicalSpecificationUpdateOne) SetUpdatedAt(v time.Time) *TechnicalSpecificationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *TechnicalSpecificationUpdateOne) SetDescription(v string) *TechnicalSpecificationUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TechnicalSpecificationUpdateOne) SetNillableDescription(v *string) *TechnicalSpecificationUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TechnicalSpecificationUpdateOne) ClearDescription() *TechnicalSpecificationUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetSatelliteID sets the "satellite" edge to the Satellite entity by ID.
func (_u *TechnicalSpecificationUpdateOne) SetSatelliteID(id int) *TechnicalSpecificationUpdateOne {
	_u.mutation.SetSatelliteID(id)
	return _u
}

// SetSatellite sets the "satellite" edge to the Satellite entity.
func (_u *TechnicalSpecificationUpdateOne) SetSatellite(v *Satellite) *TechnicalSpecificationUpdateOne {
	return _u.SetSatelliteID(v.ID)
}

// AddStandIDs adds the "stands" edge to the Stand entity by IDs.
func (_u *TechnicalSpecificationUpdateOne) AddStandIDs(ids ...int) *TechnicalSpecificationUpdateOne {
	_u.mutation.AddStandIDs(ids...)
	return _u
}

// AddStands adds the "stands" edges to the Stand entity.
func (_u *TechnicalSpecificationUpdateOne) AddStands(v ...*Stand) *TechnicalSpecificationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStandIDs(ids...)
}

// AddCalendarStageIDs adds the "calendar_stages" edge to the CalendarStage entity by IDs.
func (_u *TechnicalSpecificationUpdateOne) AddCalendarStageIDs(ids ...int) *TechnicalSpecificationUpdateOne {
	_u.mutation.AddCalendarStageIDs(ids...)
	return _u
}

// AddCalendarStages adds the "calendar_stages" edges to the CalendarStage entity.
func (_u *TechnicalSpecificationUpdateOne) AddCalendarStages(v ...*CalendarStage) *TechnicalSpecificationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCalendarStageIDs(ids...)
}

// Mutation returns the TechnicalSpecificationMutation object of the builder.
func (_u *TechnicalSpecificationUpdateOne) Mutation() *TechnicalSpecificationMutation {
	return _u.mutation
}

// ClearSatellite clears the "satellite" edge to the Satellite entity.
func (_u *TechnicalSpecificationUpdateOne) ClearSatellite() *TechnicalSpecificationUpdateOne {
	_u.mutation.ClearSatellite()
	return _u
}

// ClearStands clears all "stands" edges to the Stand entity.
func (_u *TechnicalSpecificationUpdateOne) ClearStands() *TechnicalSpecificationUpdateOne {
	_u.mutation.ClearStands()
	return _u
}

// RemoveStandIDs removes the "stands" edge to Stand entities by IDs.
func (_u *TechnicalSpecificationUpdateOne) RemoveStandIDs(ids ...int) *TechnicalSpecificationUpdateOne {
	_u.mutation.RemoveStandIDs(ids...)
	return _u
}

// RemoveStands removes "stands" edges to Stand entities.
func (_u *TechnicalSpecificationUpdateOne) RemoveStands(v ...*Stand) *TechnicalSpecificationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStandIDs(ids...)
}

// ClearCalendarStages clears all "calendar_stages" edges to the CalendarStage entity.
func (_u *TechnicalSpecificationUpdateOne) ClearCalendarStages() *TechnicalSpecificationUpdateOne {
	_u.mutation.ClearCalendarStages()
	return _u
}

// RemoveCalendarStageIDs removes the "calendar_stages" edge to CalendarStage entities by IDs.
func (_u *TechnicalSpecificationUpdateOne) RemoveCalendarStageIDs(ids ...int) *TechnicalSpecificationUpdateOne {
	_u.mutation.RemoveCalendarStageIDs(ids...)
	return _u
}

// RemoveCalendarStages removes "calendar_stages" edges to CalendarStage entities.
func (_u *TechnicalSpecificationUpdateOne) RemoveCalendarStages(v ...*CalendarStage) *TechnicalSpecificationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCalendarStageIDs(ids...)
}

// Where appends a list predicates to the TechnicalSpecificationUpdate builder.
func (_u *TechnicalSpecificationUpdateOne) Where(ps ...predicate.TechnicalSpecification) *TechnicalSpecificationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TechnicalSpecificationUpdateOne) Select(field string, fields ...string) *TechnicalSpecificationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TechnicalSpecification entity.
func (_u *TechnicalSpecificationUpdateOne) Save(ctx context.Context) (*TechnicalSpecification, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TechnicalSpecificationUpdateOne) SaveX(ctx context.Context) *TechnicalSpecification {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TechnicalSpecificationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TechnicalSpecificationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TechnicalSpecificationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := technicalspecification.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TechnicalSpecificationUpdateOne) check() error {
	if _u.mutation.SatelliteCleared() && len(_u.mutation.SatelliteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TechnicalSpecification.satellite"`)
	}
	return nil
}

func (_u *TechnicalSpecificationUpdateOne) sqlSave(ctx context.Context) (_node *TechnicalSpecification, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(technicalspecification.Table, technicalspecification.Columns, sqlgraph.NewFieldSpec(technicalspecification.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TechnicalSpecification.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, technicalspecification.FieldID)
		for _, f := range fields {
			if !technicalspecification.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != technicalspecification.FieldID {
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
		_spec.SetField(technicalspecification.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(technicalspecification.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(technicalspecification.FieldDescription, field.TypeString)
	}
	if _u.mutation.SatelliteCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   technicalspecification.SatelliteTable,
			Columns: []string{technicalspecification.SatelliteColumn},
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
			Table:   technicalspecification.SatelliteTable,
			Columns: []string{technicalspecification.SatelliteColumn},
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
	if _u.mutation.StandsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   technicalspecification.StandsTable,
			Columns: []string{technicalspecification.StandsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stand.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStandsIDs(); len(nodes) > 0 && !_u.mutation.StandsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   technicalspecification.StandsTable,
			Columns: []string{technicalspecification.StandsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stand.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StandsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   technicalspecification.StandsTable,
			Columns: []string{technicalspecification.StandsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stand.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CalendarStagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   technicalspecification.CalendarStagesTable,
			Columns: []string{technicalspecification.CalendarStagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(calendarstage.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCalendarStagesIDs(); len(nodes) > 0 && !_u.mutation.CalendarStagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   technicalspecification.CalendarStagesTable,
			Columns: []string{technicalspecification.CalendarStagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(calendarstage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CalendarStagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   technicalspecification.CalendarStagesTable,
			Columns: []string{technicalspecification.CalendarStagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(calendarstage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TechnicalSpecification{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{technicalspecification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
