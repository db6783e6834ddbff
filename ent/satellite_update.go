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
	"satfab.io/satfab/ent/electronics"
	"satfab.io/satfab/ent/predicate"
	"satfab.io/satfab/ent/satellite"
	"satfab.io/satfab/ent/satelliteopcharacteristic"
	"satfab.io/satfab/ent/stand"
	"satfab.io/satfab/ent/technicalspecification"
)

// SatelliteUpdate is the builder for updating Satellite entities.
type SatelliteUpdate struct {
	config
	hooks    []Hook
	mutation *SatelliteMutation
}

// Where appends a list predicates to the SatelliteUpdate builder.
func (_u *SatelliteUpdate) Where(ps ...predicate.Satellite) *SatelliteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SatelliteUpdate) SetUpdatedAt(v time.Time) *SatelliteUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *SatelliteUpdate) SetName(v string) *SatelliteUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SatelliteUpdate) SetNillableName(v *string) *SatelliteUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *SatelliteUpdate) SetType(v string) *SatelliteUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *SatelliteUpdate) SetNillableType(v *string) *SatelliteUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// AddElectronicIDs adds the "electronics" edge to the Electronics entity by IDs.
func (_u *SatelliteUpdate) AddElectronicIDs(ids ...int) *SatelliteUpdate {
	_u.mutation.AddElectronicIDs(ids...)
	return _u
}

// AddElectronics adds the "electronics" edges to the Electronics entity.
func (_u *SatelliteUpdate) AddElectronics(v ...*Electronics) *SatelliteUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddElectronicIDs(ids...)
}

// AddCalendarStageIDs adds the "calendar_stages" edge to the CalendarStage entity by IDs.
func (_u *SatelliteUpdate) AddCalendarStageIDs(ids ...int) *SatelliteUpdate {
	_u.mutation.AddCalendarStageIDs(ids...)
	return _u
}

// AddCalendarStages adds the "calendar_stages" edges to the CalendarStage entity.
func (_u *SatelliteUpdate) AddCalendarStages(v ...*CalendarStage) *SatelliteUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCalendarStageIDs(ids...)
}

// AddTechnicalSpecificationIDs adds the "technical_specifications" edge to the TechnicalSpecification entity by IDs.
func (_u *SatelliteUpdate) AddTechnicalSpecificationIDs(ids ...int) *SatelliteUpdate {
	_u.mutation.AddTechnicalSpecificationIDs(ids...)
	return _u
}

// AddTechnicalSpecifications adds the "technical_specifications" edges to the TechnicalSpecification entity.
func (_u *SatelliteUpdate) AddTechnicalSpecifications(v ...*TechnicalSpecification) *SatelliteUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTechnicalSpecificationIDs(ids...)
}

// AddOpCharacteristicIDs adds the "op_characteristics" edge to the SatelliteOpCharacteristic entity by IDs.
func (_u *SatelliteUpdate) AddOpCharacteristicIDs(ids ...int) *SatelliteUpdate {
	_u.mutation.AddOpCharacteristicIDs(ids...)
	return _u
}

// AddOpCharacteristics adds the "op_characteristics" edges to the SatelliteOpCharacteristic entity.
func (_u *SatelliteUpdate) AddOpCharacteristics(v ...*SatelliteOpCharacteristic) *SatelliteUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOpCharacteristicIDs(ids...)
}

// AddStandIDs adds the "stands" edge to the Stand entity by IDs.
func (_u *SatelliteUpdate) AddStandIDs(ids ...int) *SatelliteUpdate {
	_u.mutation.AddStandIDs(ids...)
	return _u
}

// AddStands adds the "stands" edges to the Stand entity.
func (_u *SatelliteUpdate) AddStands(v ...*Stand) *SatelliteUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStandIDs(ids...)
}

// Mutation returns the SatelliteMutation object of the builder.
func (_u *SatelliteUpdate) Mutation() *SatelliteMutation {
	return _u.mutation
}

// ClearElectronics clears all "electronics" edges to the Electronics entity.
func (_u *SatelliteUpdate) ClearElectronics() *SatelliteUpdate {
	_u.mutation.ClearElectronics()
	return _u
}

// RemoveElectronicIDs removes the "electronics" edge to Electronics entities by IDs.
func (_u *SatelliteUpdate) RemoveElectronicIDs(ids ...int) *SatelliteUpdate {
	_u.mutation.RemoveElectronicIDs(ids...)
	return _u
}

// RemoveElectronics removes "electronics" edges to Electronics entities.
func (_u *SatelliteUpdate) RemoveElectronics(v ...*Electronics) *SatelliteUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveElectronicIDs(ids...)
}

// ClearCalendarStages clears all "calendar_stages" edges to the CalendarStage entity.
func (_u *SatelliteUpdate) ClearCalendarStages() *SatelliteUpdate {
	_u.mutation.ClearCalendarStages()
	return _u
}

// RemoveCalendarStageIDs removes the "calendar_stages" edge to CalendarStage entities by IDs.
func (_u *SatelliteUpdate) RemoveCalendarStageIDs(ids ...int) *SatelliteUpdate {
	_u.mutation.RemoveCalendarStageIDs(ids...)
	return _u
}

// RemoveCalendarStages removes "calendar_stages" edges to CalendarStage entities.
func (_u *SatelliteUpdate) RemoveCalendarStages(v ...*CalendarStage) *SatelliteUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCalendarStageIDs(ids...)
}

// ClearTechnicalSpecifications clears all "technical_specifications" edges to the TechnicalSpecification entity.
func (_u *SatelliteUpdate) ClearTechnicalSpecifications() *SatelliteUpdate {
	_u.mutation.ClearTechnicalSpecifications()
	return _u
}

// RemoveTechnicalSpecificationIDs removes the "technical_specifications" edge to TechnicalSpecification entities by IDs.
func (_u *SatelliteUpdate) RemoveTechnicalSpecificationIDs(ids ...int) *SatelliteUpdate {
	_u.mutation.RemoveTechnicalSpecificationIDs(ids...)
	return _u
}

// RemoveTechnicalSpecifications removes "technical_specifications" edges to TechnicalSpecification entities.
func (_u *SatelliteUpdate) RemoveTechnicalSpecifications(v ...*TechnicalSpecification) *SatelliteUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTechnicalSpecificationIDs(ids...)
}

// ClearOpCharacteristics clears all "op_characteristics" edges to the SatelliteOpCharacteristic entity.
func (_u *SatelliteUpdate) ClearOpCharacteristics() *SatelliteUpdate {
	_u.mutation.ClearOpCharacteristics()
	return _u
}

// RemoveOpCharacteristicIDs removes the "op_characteristics" edge to SatelliteOpCharacteristic entities by IDs.
func (_u *SatelliteUpdate) RemoveOpCharacteristicIDs(ids ...int) *SatelliteUpdate {
	_u.mutation.RemoveOpCharacteristicIDs(ids...)
	return _u
}

// RemoveOpCharacteristics removes "op_characteristics" edges to SatelliteOpCharacteristic entities.
func (_u *SatelliteUpdate) RemoveOpCharacteristics(v ...*SatelliteOpCharacteristic) *SatelliteUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOpCharacteristicIDs(ids...)
}

// ClearStands clears all "stands" edges to the Stand entity.
func (_u *SatelliteUpdate) ClearStands() *SatelliteUpdate {
	_u.mutation.ClearStands()
	return _u
}

// RemoveStandIDs removes the "stands" edge to Stand entities by IDs.
func (_u *SatelliteUpdate) RemoveStandIDs(ids ...int) *SatelliteUpdate {
	_u.mutation.RemoveStandIDs(ids...)
	return _u
}

// RemoveStands removes "stands" edges to Stand entities.
func (_u *SatelliteUpdate) RemoveStands(v ...*Stand) *SatelliteUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStandIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SatelliteUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SatelliteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SatelliteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SatelliteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SatelliteUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := satellite.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SatelliteUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := satellite.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Satellite.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := satellite.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Satellite.type": %w`, err)}
		}
	}
	return nil
}

func (_u *SatelliteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(satellite.Table, satellite.Columns, sqlgraph.NewFieldSpec(satellite.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(satellite.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(satellite.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(satellite.FieldType, field.TypeString, value)
	}
	if _u.mutation.ElectronicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   satellite.ElectronicsTable,
			Columns: []string{satellite.ElectronicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(electronics.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedElectronicsIDs(); len(nodes) > 0 && !_u.mutation.ElectronicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   satellite.ElectronicsTable,
			Columns: []string{satellite.ElectronicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(electronics.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ElectronicsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   satellite.ElectronicsTable,
			Columns: []string{satellite.ElectronicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(electronics.FieldID, field.TypeInt),
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
			Table:   satellite.CalendarStagesTable,
			Columns: []string{satellite.CalendarStagesColumn},
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
			Table:   satellite.CalendarStagesTable,
			Columns: []string{satellite.CalendarStagesColumn},
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
			Table:   satellite.CalendarStagesTable,
			Columns: []string{satellite.CalendarStagesColumn},
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
	if _u.mutation.TechnicalSpecificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   satellite.TechnicalSpecificationsTable,
			Columns: []string{satellite.TechnicalSpecificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(technicalspecification.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTechnicalSpecificationsIDs(); len(nodes) > 0 && !_u.mutation.TechnicalSpecificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   satellite.TechnicalSpecificationsTable,
			Columns: []string{satellite.TechnicalSpecificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(technicalspecification.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TechnicalSpecificationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   satellite.TechnicalSpecificationsTable,
			Columns: []string{satellite.TechnicalSpecificationsColumn},
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
	if _u.mutation.OpCharacteristicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   satellite.OpCharacteristicsTable,
			Columns: []string{satellite.OpCharacteristicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(satelliteopcharacteristic.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOpCharacteristicsIDs(); len(nodes) > 0 && !_u.mutation.OpCharacteristicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   satellite.OpCharacteristicsTable,
			Columns: []string{satellite.OpCharacteristicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(satelliteopcharacteristic.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OpCharacteristicsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   satellite.OpCharacteristicsTable,
			Columns: []string{satellite.OpCharacteristicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(satelliteopcharacteristic.FieldID, field.TypeInt),
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
			Table:   satellite.StandsTable,
			Columns: []string{satellite.StandsColumn},
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
			Table:   satellite.StandsTable,
			Columns: []string{satellite.StandsColumn},
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
			Table:   satellite.StandsTable,
			Columns: []string{satellite.StandsColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{satellite.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SatelliteUpdateOne is the builder for updating a single Satellite entity.
type SatelliteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SatelliteMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SatelliteUpdateOne) SetUpdatedAt(v time.Time) *SatelliteUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *SatelliteUpdateOne) SetName(v string) *SatelliteUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SatelliteUpdateOne) SetNillableName(v *string) *SatelliteUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *SatelliteUpdateOne) SetType(v string) *SatelliteUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *SatelliteUpdateOne) SetNillableType(v *string) *SatelliteUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// AddElectronicIDs adds the "electronics" edge to the Electronics entity by IDs.
func (_u *SatelliteUpdateOne) AddElectronicIDs(ids ...int) *SatelliteUpdateOne {
	_u.mutation.AddElectronicIDs(ids...)
	return _u
}

// AddElectronics adds the "electronics" edges to the Electronics entity.
func (_u *SatelliteUpdateOne) AddElectronics(v ...*Electronics) *SatelliteUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddElectronicIDs(ids...)
}

// AddCalendarStageIDs adds the "calendar_stages" edge to the CalendarStage entity by IDs.
func (_u *SatelliteUpdateOne) AddCalendarStageIDs(ids ...int) *SatelliteUpdateOne {
	_u.mutation.AddCalendarStageIDs(ids...)
	return _u
}

// AddCalendarStages adds the "calendar_stages" edges to the CalendarStage entity.
func (_u *SatelliteUpdateOne) AddCalendarStages(v ...*CalendarStage) *SatelliteUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCalendarStageIDs(ids...)
}

// AddTechnicalSpecificationIDs adds the "technical_specifications" edge to the TechnicalSpecification entity by IDs.
func (_u *SatelliteUpdateOne) AddTechnicalSpecificationIDs(ids ...int) *SatelliteUpdateOne {
	_u.mutation.AddTechnicalSpecificationIDs(ids...)
	return _u
}

// AddTechnicalSpecifications adds the "technical_specifications" edges to the TechnicalSpecification entity.
func (_u *SatelliteUpdateOne) AddTechnicalSpecifications(v ...*TechnicalSpecification) *SatelliteUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTechnicalSpecificationIDs(ids...)
}

// AddOpCharacteristicIDs adds the "op_characteristics" edge to the SatelliteOpCharacteristic entity by IDs.
func (_u *SatelliteUpdateOne) AddOpCharacteristicIDs(ids ...int) *SatelliteUpdateOne {
	_u.mutation.AddOpCharacteristicIDs(ids...)
	return _u
}

// AddOpCharacteristics adds the "op_characteristics" edges to the SatelliteOpCharacteristic entity.
func (_u *SatelliteUpdateOne) AddOpCharacteristics(v ...*SatelliteOpCharacteristic) *SatelliteUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOpCharacteristicIDs(ids...)
}

// AddStandIDs adds the "stands" edge to the Stand entity by IDs.
func (_u *SatelliteUpdateOne) AddStandIDs(ids ...int) *SatelliteUpdateOne {
	_u.mutation.AddStandIDs(ids...)
	return _u
}

// AddStands adds the "stands" edges to the Stand entity.
func (_u *SatelliteUpdateOne) AddStands(v ...*Stand) *SatelliteUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStandIDs(ids...)
}

// Mutation returns the SatelliteMutation object of the builder.
func (_u *SatelliteUpdateOne) Mutation() *SatelliteMutation {
	return _u.mutation
}

// ClearElectronics clears all "electronics" edges to the Electronics entity.
func (_u *SatelliteUpdateOne) ClearElectronics() *SatelliteUpdateOne {
	_u.mutation.ClearElectronics()
	return _u
}

// RemoveElectronicIDs removes the "electronics" edge to Electronics entities by IDs.
func (_u *SatelliteUpdateOne) RemoveElectronicIDs(ids ...int) *SatelliteUpdateOne {
	_u.mutation.RemoveElectronicIDs(ids...)
	return _u
}

// RemoveElectronics removes "electronics" edges to Electronics entities.
func (_u *SatelliteUpdateOne) RemoveElectronics(v ...*Electronics) *SatelliteUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveElectronicIDs(ids...)
}

// ClearCalendarStages clears all "calendar_stages" edges to the CalendarStage entity.
func (_u *SatelliteUpdateOne) ClearCalendarStages() *SatelliteUpdateOne {
	_u.mutation.ClearCalendarStages()
	return _u
}

// RemoveCalendarStageIDs removes the "calendar_stages" edge to CalendarStage entities by IDs.
func (_u *SatelliteUpdateOne) RemoveCalendarStageIDs(ids ...int) *SatelliteUpdateOne {
	_u.mutation.RemoveCalendarStageIDs(ids...)
	return _u
}

// RemoveCalendarStages removes "calendar_stages" edges to CalendarStage entities.
func (_u *SatelliteUpdateOne) RemoveCalendarStages(v ...*CalendarStage) *SatelliteUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCalendarStageIDs(ids...)
}

// ClearTechnicalSpecifications clears all "technical_specifications" edges to the TechnicalSpecification entity.
func (_u *SatelliteUpdateOne) ClearTechnicalSpecifications() *SatelliteUpdateOne {
	_u.mutation.ClearTechnicalSpecifications()
	return _u
}

// RemoveTechnicalSpecificationIDs removes the "technical_specifications" edge to TechnicalSpecification entities by IDs.
func (_u *SatelliteUpdateOne) RemoveTechnicalSpecificationIDs(ids ...int) *SatelliteUpdateOne {
	_u.mutation.RemoveTechnicalSpecificationIDs(ids...)
	return _u
}

// RemoveTechnicalSpecifications removes "technical_specifications" edges to TechnicalSpecification entities.
func (_u *SatelliteUpdateOne) RemoveTechnicalSpecifications(v ...*TechnicalSpecification) *SatelliteUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTechnicalSpecificationIDs(ids...)
}

// ClearOpCharacteristics clears all "op_characteristics" edges to the SatelliteOpCharacteristic entity.
func (_u *SatelliteUpdateOne) ClearOpCharacteristics() *SatelliteUpdateOne {
	_u.mutation.ClearOpCharacteristics()
	return _u
}

// RemoveOpCharacteristicIDs removes the "op_characteristics" edge to SatelliteOpCharacteristic entities by IDs.
func (_u *SatelliteUpdateOne) RemoveOpCharacteristicIDs(ids ...int) *SatelliteUpdateOne {
	_u.mutation.RemoveOpCharacteristicIDs(ids...)
	return _u
}

// RemoveOpCharacteristics removes "op_characteristics" edges to SatelliteOpCharacteristic entities.
func (_u *SatelliteUpdateOne) RemoveOpCharacteristics(v ...*SatelliteOpCharacteristic) *SatelliteUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOpCharacteristicIDs(ids...)
}

// ClearStands clears all "stands" edges to the Stand entity.
func (_u *SatelliteUpdateOne) ClearStands() *SatelliteUpdateOne {
	_u.mutation.ClearStands()
	return _u
}

// RemoveStandIDs removes the "stands" edge to Stand entities by IDs.
func (_u *SatelliteUpdateOne) RemoveStandIDs(ids ...int) *SatelliteUpdateOne {
	_u.mutation.RemoveStandIDs(ids...)
	return _u
}

// RemoveStands removes "stands" edges to Stand entities.
func (_u *SatelliteUpdateOne) RemoveStands(v ...*Stand) *SatelliteUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStandIDs(ids...)
}

// Where appends a list predicates to the SatelliteUpdate builder.
func (_u *SatelliteUpdateOne) Where(ps ...predicate.Satellite) *SatelliteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SatelliteUpdateOne) Select(field string, fields ...string) *SatelliteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Satellite entity.
func (_u *SatelliteUpdateOne) Save(ctx context.Context) (*Satellite, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SatelliteUpdateOne) SaveX(ctx context.Context) *Satellite {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SatelliteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SatelliteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SatelliteUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := satellite.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SatelliteUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := satellite.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Satellite.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := satellite.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Satellite.type": %w`, err)}
		}
	}
	return nil
}

func (_u *SatelliteUpdateOne) sqlSave(ctx context.Context) (_node *Satellite, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(satellite.Table, satellite.Columns, sqlgraph.NewFieldSpec(satellite.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Satellite.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, satellite.FieldID)
		for _, f := range fields {
			if !satellite.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != satellite.FieldID {
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
		_spec.SetField(satellite.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(satellite.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(satellite.FieldType, field.TypeString, value)
	}
	if _u.mutation.ElectronicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   satellite.ElectronicsTable,
			Columns: []string{satellite.ElectronicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(electronics.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedElectronicsIDs(); len(nodes) > 0 && !_u.mutation.ElectronicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   satellite.ElectronicsTable,
			Columns: []string{satellite.ElectronicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(electronics.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ElectronicsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   satellite.ElectronicsTable,
			Columns: []string{satellite.ElectronicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(electronics.FieldID, field.TypeInt),
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
			Table:   satellite.CalendarStagesTable,
			Columns: []string{satellite.CalendarStagesColumn},
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
			Table:   satellite.CalendarStagesTable,
			Columns: []string{satellite.CalendarStagesColumn},
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
			Table:   satellite.CalendarStagesTable,
			Columns: []string{satellite.CalendarStagesColumn},
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
	if _u.mutation.TechnicalSpecificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   satellite.TechnicalSpecificationsTable,
			Columns: []string{satellite.TechnicalSpecificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(technicalspecification.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTechnicalSpecificationsIDs(); len(nodes) > 0 && !_u.mutation.TechnicalSpecificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   satellite.TechnicalSpecificationsTable,
			Columns: []string{satellite.TechnicalSpecificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(technicalspecification.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TechnicalSpecificationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   satellite.TechnicalSpecificationsTable,
			Columns: []string{satellite.TechnicalSpecificationsColumn},
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
	if _u.mutation.OpCharacteristicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   satellite.OpCharacteristicsTable,
			Columns: []string{satellite.OpCharacteristicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(satelliteopcharacteristic.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOpCharacteristicsIDs(); len(nodes) > 0 && !_u.mutation.OpCharacteristicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   satellite.OpCharacteristicsTable,
			Columns: []string{satellite.OpCharacteristicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(satelliteopcharacteristic.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OpCharacteristicsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   satellite.OpCharacteristicsTable,
			Columns: []string{satellite.OpCharacteristicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(satelliteopcharacteristic.FieldID, field.TypeInt),
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
			Table:   satellite.StandsTable,
			Columns: []string{satellite.StandsColumn},
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
			Table:   satellite.StandsTable,
			Columns: []string{satellite.StandsColumn},
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
			Table:   satellite.StandsTable,
			Columns: []string{satellite.StandsColumn},
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
	_node = &Satellite{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{satellite.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
