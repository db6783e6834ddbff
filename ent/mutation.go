// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"satfab.io/satfab/ent/calendarstage"
	"satfab.io/satfab/ent/electronics"
	"satfab.io/satfab/ent/hardwarerequirement"
	"satfab.io/satfab/ent/material"
	"satfab.io/satfab/ent/materialfunctionalcharacteristic"
	"satfab.io/satfab/ent/materialoperationalcharacteristic"
	"satfab.io/satfab/ent/physicaltestdata"
	"satfab.io/satfab/ent/predicate"
	"satfab.io/satfab/ent/satellite"
	"satfab.io/satfab/ent/satelliteopcharacteristic"
	"satfab.io/satfab/ent/sensor"
	"satfab.io/satfab/ent/stand"
	"satfab.io/satfab/ent/technicalspecification"
	"satfab.io/satfab/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCalendarStage                     = "CalendarStage"
	TypeElectronics                       = "Electronics"
	TypeHardwareRequirement               = "HardwareRequirement"
	TypeMaterial                          = "Material"
	TypeMaterialFunctionalCharacteristic  = "MaterialFunctionalCharacteristic"
	TypeMaterialOperationalCharacteristic = "MaterialOperationalCharacteristic"
	TypePhysicalTestData                  = "PhysicalTestData"
	TypeSatellite                         = "Satellite"
	TypeSatelliteOpCharacteristic         = "SatelliteOpCharacteristic"
	TypeSensor                            = "Sensor"
	TypeStand                             = "Stand"
	TypeTechnicalSpecification            = "TechnicalSpecification"
	TypeUser                              = "User"
)

// CalendarStageMutation represents an operation that mutates the CalendarStage nodes in the graph.
type CalendarStageMutation struct {
	config
	op                             Op
	typ                            string
	id                             *int
	created_at                     *time.Time
	updated_at                     *time.Time
	name_of_stage                  *string
	time_of_frame                  *time.Time
	duration                       *int
	addduration                    *int
	clearedFields                  map[string]struct{}
	satellite                      *int
	clearedsatellite               bool
	technical_specification        *int
	clearedtechnical_specification bool
	done                           bool
	oldValue                       func(context.Context) (*CalendarStage, error)
	predicates                     []predicate.CalendarStage
}

var _ ent.Mutation = (*CalendarStageMutation)(nil)

// calendarstageOption allows management of the mutation configuration using functional options.
type calendarstageOption func(*CalendarStageMutation)

// newCalendarStageMutation creates new mutation for the CalendarStage entity.
func newCalendarStageMutation(c config, op Op, opts ...calendarstageOption) *CalendarStageMutation {
	m := &CalendarStageMutation{
		config:        c,
		op:            op,
		typ:           TypeCalendarStage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCalendarStageID sets the ID field of the mutation.
func withCalendarStageID(id int) calendarstageOption {
	return func(m *CalendarStageMutation) {
		var (
			err   error
			once  sync.Once
			value *CalendarStage
		)
		m.oldValue = func(ctx context.Context) (*CalendarStage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CalendarStage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCalendarStage sets the old CalendarStage of the mutation.
func withCalendarStage(node *CalendarStage) calendarstageOption {
	return func(m *CalendarStageMutation) {
		m.oldValue = func(context.Context) (*CalendarStage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CalendarStageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CalendarStageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CalendarStageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CalendarStageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CalendarStage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CalendarStageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CalendarStageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CalendarStage entity.
// If the CalendarStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarStageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CalendarStageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CalendarStageMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CalendarStageMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CalendarStage entity.
// If the CalendarStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarStageMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CalendarStageMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetNameOfStage sets the "name_of_stage" field.
func (m *CalendarStageMutation) SetNameOfStage(s string) {
	m.name_of_stage = &s
}

// NameOfStage returns the value of the "name_of_stage" field in the mutation.
func (m *CalendarStageMutation) NameOfStage() (r string, exists bool) {
	v := m.name_of_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldNameOfStage returns the old "name_of_stage" field's value of the CalendarStage entity.
// If the CalendarStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarStageMutation) OldNameOfStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNameOfStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNameOfStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNameOfStage: %w", err)
	}
	return oldValue.NameOfStage, nil
}

// ResetNameOfStage resets all changes to the "name_of_stage" field.
func (m *CalendarStageMutation) ResetNameOfStage() {
	m.name_of_stage = nil
}

// SetTimeOfFrame sets the "time_of_frame" field.
func (m *CalendarStageMutation) SetTimeOfFrame(t time.Time) {
	m.time_of_frame = &t
}

// TimeOfFrame returns the value of the "time_of_frame" field in the mutation.
func (m *CalendarStageMutation) TimeOfFrame() (r time.Time, exists bool) {
	v := m.time_of_frame
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeOfFrame returns the old "time_of_frame" field's value of the CalendarStage entity.
// If the CalendarStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarStageMutation) OldTimeOfFrame(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeOfFrame is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeOfFrame requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeOfFrame: %w", err)
	}
	return oldValue.TimeOfFrame, nil
}

// ResetTimeOfFrame resets all changes to the "time_of_frame" field.
func (m *CalendarStageMutation) ResetTimeOfFrame() {
	m.time_of_frame = nil
}

// SetDuration sets the "duration" field.
func (m *CalendarStageMutation) SetDuration(i int) {
	m.duration = &i
	m.addduration = nil
}

// Duration returns the value of the "duration" field in the mutation.
func (m *CalendarStageMutation) Duration() (r int, exists bool) {
	v := m.duration
	if v == nil {
		return
	}
	return *v, true
}

// OldDuration returns the old "duration" field's value of the CalendarStage entity.
// If the CalendarStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarStageMutation) OldDuration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuration: %w", err)
	}
	return oldValue.Duration, nil
}

// AddDuration adds i to the "duration" field.
func (m *CalendarStageMutation) AddDuration(i int) {
	if m.addduration != nil {
		*m.addduration += i
	} else {
		m.addduration = &i
	}
}

// AddedDuration returns the value that was added to the "duration" field in this mutation.
func (m *CalendarStageMutation) AddedDuration() (r int, exists bool) {
	v := m.addduration
	if v == nil {
		return
	}
	return *v, true
}

// ResetDuration resets all changes to the "duration" field.
func (m *CalendarStageMutation) ResetDuration() {
	m.duration = nil
	m.addduration = nil
}

// SetSatelliteID sets the "satellite" edge to the Satellite entity by id.
func (m *CalendarStageMutation) SetSatelliteID(id int) {
	m.satellite = &id
}

// ClearSatellite clears the "satellite" edge to the Satellite entity.
func (m *CalendarStageMutation) ClearSatellite() {
	m.clearedsatellite = true
}

// SatelliteCleared reports if the "satellite" edge to the Satellite entity was cleared.
func (m *CalendarStageMutation) SatelliteCleared() bool {
	return m.clearedsatellite
}

// SatelliteID returns the "satellite" edge ID in the mutation.
func (m *CalendarStageMutation) SatelliteID() (id int, exists bool) {
	if m.satellite != nil {
		return *m.satellite, true
	}
	return
}

// SatelliteIDs returns the "satellite" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SatelliteID instead. It exists only for internal usage by the builders.
func (m *CalendarStageMutation) SatelliteIDs() (ids []int) {
	if id := m.satellite; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSatellite resets all changes to the "satellite" edge.
func (m *CalendarStageMutation) ResetSatellite() {
	m.satellite = nil
	m.clearedsatellite = false
}

// SetTechnicalSpecificationID sets the "technical_specification" edge to the TechnicalSpecification entity by id.
func (m *CalendarStageMutation) SetTechnicalSpecificationID(id int) {
	m.technical_specification = &id
}

// ClearTechnicalSpecification clears the "technical_specification" edge to the TechnicalSpecification entity.
func (m *CalendarStageMutation) ClearTechnicalSpecification() {
	m.clearedtechnical_specification = true
}

// TechnicalSpecificationCleared reports if the "technical_specification" edge to the TechnicalSpecification entity was cleared.
func (m *CalendarStageMutation) TechnicalSpecificationCleared() bool {
	return m.clearedtechnical_specification
}

// TechnicalSpecificationID returns the "technical_specification" edge ID in the mutation.
func (m *CalendarStageMutation) TechnicalSpecificationID() (id int, exists bool) {
	if m.technical_specification != nil {
		return *m.technical_specification, true
	}
	return
}

// TechnicalSpecificationIDs returns the "technical_specification" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TechnicalSpecificationID instead. It exists only for internal usage by the builders.
func (m *CalendarStageMutation) TechnicalSpecificationIDs() (ids []int) {
	if id := m.technical_specification; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTechnicalSpecification resets all changes to the "technical_specification" edge.
func (m *CalendarStageMutation) ResetTechnicalSpecification() {
	m.technical_specification = nil
	m.clearedtechnical_specification = false
}

// Where appends a list predicates to the CalendarStageMutation builder.
func (m *CalendarStageMutation) Where(ps ...predicate.CalendarStage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CalendarStageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CalendarStageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CalendarStage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CalendarStageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CalendarStageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CalendarStage).
func (m *CalendarStageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CalendarStageMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, calendarstage.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, calendarstage.FieldUpdatedAt)
	}
	if m.name_of_stage != nil {
		fields = append(fields, calendarstage.FieldNameOfStage)
	}
	if m.time_of_frame != nil {
		fields = append(fields, calendarstage.FieldTimeOfFrame)
	}
	if m.duration != nil {
		fields = append(fields, calendarstage.FieldDuration)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CalendarStageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case calendarstage.FieldCreatedAt:
		return m.CreatedAt()
	case calendarstage.FieldUpdatedAt:
		return m.UpdatedAt()
	case calendarstage.FieldNameOfStage:
		return m.NameOfStage()
	case calendarstage.FieldTimeOfFrame:
		return m.TimeOfFrame()
	case calendarstage.FieldDuration:
		return m.Duration()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CalendarStageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case calendarstage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case calendarstage.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case calendarstage.FieldNameOfStage:
		return m.OldNameOfStage(ctx)
	case calendarstage.FieldTimeOfFrame:
		return m.OldTimeOfFrame(ctx)
	case calendarstage.FieldDuration:
		return m.OldDuration(ctx)
	}
	return nil, fmt.Errorf("unknown CalendarStage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CalendarStageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case calendarstage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case calendarstage.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case calendarstage.FieldNameOfStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNameOfStage(v)
		return nil
	case calendarstage.FieldTimeOfFrame:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeOfFrame(v)
		return nil
	case calendarstage.FieldDuration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuration(v)
		return nil
	}
	return fmt.Errorf("unknown CalendarStage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CalendarStageMutation) AddedFields() []string {
	var fields []string
	if m.addduration != nil {
		fields = append(fields, calendarstage.FieldDuration)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CalendarStageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case calendarstage.FieldDuration:
		return m.AddedDuration()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CalendarStageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case calendarstage.FieldDuration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDuration(v)
		return nil
	}
	return fmt.Errorf("unknown CalendarStage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CalendarStageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CalendarStageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CalendarStageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CalendarStage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CalendarStageMutation) ResetField(name string) error {
	switch name {
	case calendarstage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case calendarstage.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case calendarstage.FieldNameOfStage:
		m.ResetNameOfStage()
		return nil
	case calendarstage.FieldTimeOfFrame:
		m.ResetTimeOfFrame()
		return nil
	case calendarstage.FieldDuration:
		m.ResetDuration()
		return nil
	}
	return fmt.Errorf("unknown CalendarStage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CalendarStageMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.satellite != nil {
		edges = append(edges, calendarstage.EdgeSatellite)
	}
	if m.technical_specification != nil {
		edges = append(edges, calendarstage.EdgeTechnicalSpecification)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CalendarStageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case calendarstage.EdgeSatellite:
		if id := m.satellite; id != nil {
			return []ent.Value{*id}
		}
	case calendarstage.EdgeTechnicalSpecification:
		if id := m.technical_specification; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CalendarStageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CalendarStageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CalendarStageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsatellite {
		edges = append(edges, calendarstage.EdgeSatellite)
	}
	if m.clearedtechnical_specification {
		edges = append(edges, calendarstage.EdgeTechnicalSpecification)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CalendarStageMutation) EdgeCleared(name string) bool {
	switch name {
	case calendarstage.EdgeSatellite:
		return m.clearedsatellite
	case calendarstage.EdgeTechnicalSpecification:
		return m.clearedtechnical_specification
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CalendarStageMutation) ClearEdge(name string) error {
	switch name {
	case calendarstage.EdgeSatellite:
		m.ClearSatellite()
		return nil
	case calendarstage.EdgeTechnicalSpecification:
		m.ClearTechnicalSpecification()
		return nil
	}
	return fmt.Errorf("unknown CalendarStage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CalendarStageMutation) ResetEdge(name string) error {
	switch name {
	case calendarstage.EdgeSatellite:
		m.ResetSatellite()
		return nil
	case calendarstage.EdgeTechnicalSpecification:
		m.ResetTechnicalSpecification()
		return nil
	}
	return fmt.Errorf("unknown CalendarStage edge %s", name)
}

// ElectronicsMutation represents an operation that mutates the Electronics nodes in the graph.
type ElectronicsMutation struct {
	config
	op               Op
	typ              string
	id               *int
	created_at       *time.Time
	updated_at       *time.Time
	model            *string
	_type            *string
	location         *string
	price            *float64
	addprice         *float64
	clearedFields    map[string]struct{}
	satellite        *int
	clearedsatellite bool
	done             bool
	oldValue         func(context.Context) (*Electronics, error)
	predicates       []predicate.Electronics
}

var _ ent.Mutation = (*ElectronicsMutation)(nil)

// electronicsOption allows management of the mutation configuration using functional options.
type electronicsOption func(*ElectronicsMutation)

// newElectronicsMutation creates new mutation for the Electronics entity.
func newElectronicsMutation(c config, op Op, opts ...electronicsOption) *ElectronicsMutation {
	m := &ElectronicsMutation{
		config:        c,
		op:            op,
		typ:           TypeElectronics,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withElectronicsID sets the ID field of the mutation.
func withElectronicsID(id int) electronicsOption {
	return func(m *ElectronicsMutation) {
		var (
			err   error
			once  sync.Once
			value *Electronics
		)
		m.oldValue = func(ctx context.Context) (*Electronics, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Electronics.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withElectronics sets the old Electronics of the mutation.
func withElectronics(node *Electronics) electronicsOption {
	return func(m *ElectronicsMutation) {
		m.oldValue = func(context.Context) (*Electronics, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ElectronicsMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ElectronicsMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ElectronicsMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ElectronicsMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Electronics.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ElectronicsMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ElectronicsMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Electronics entity.
// If the Electronics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ElectronicsMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ElectronicsMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ElectronicsMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ElectronicsMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Electronics entity.
// If the Electronics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ElectronicsMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ElectronicsMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetModel sets the "model" field.
func (m *ElectronicsMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *ElectronicsMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Electronics entity.
// If the Electronics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ElectronicsMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *ElectronicsMutation) ResetModel() {
	m.model = nil
}

// SetType sets the "type" field.
func (m *ElectronicsMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *ElectronicsMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Electronics entity.
// If the Electronics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ElectronicsMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *ElectronicsMutation) ResetType() {
	m._type = nil
}

// SetLocation sets the "location" field.
func (m *ElectronicsMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *ElectronicsMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the Electronics entity.
// If the Electronics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ElectronicsMutation) OldLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ResetLocation resets all changes to the "location" field.
func (m *ElectronicsMutation) ResetLocation() {
	m.location = nil
}

// SetPrice sets the "price" field.
func (m *ElectronicsMutation) SetPrice(f float64) {
	m.price = &f
	m.addprice = nil
}

// Price returns the value of the "price" field in the mutation.
func (m *ElectronicsMutation) Price() (r float64, exists bool) {
	v := m.price
	if v == nil {
		return
	}
	return *v, true
}

// OldPrice returns the old "price" field's value of the Electronics entity.
// If the Electronics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ElectronicsMutation) OldPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrice: %w", err)
	}
	return oldValue.Price, nil
}

// AddPrice adds f to the "price" field.
func (m *ElectronicsMutation) AddPrice(f float64) {
	if m.addprice != nil {
		*m.addprice += f
	} else {
		m.addprice = &f
	}
}

// AddedPrice returns the value that was added to the "price" field in this mutation.
func (m *ElectronicsMutation) AddedPrice() (r float64, exists bool) {
	v := m.addprice
	if v == nil {
		return
	}
	return *v, true
}

// ResetPrice resets all changes to the "price" field.
func (m *ElectronicsMutation) ResetPrice() {
	m.price = nil
	m.addprice = nil
}

// SetSatelliteID sets the "satellite" edge to the Satellite entity by id.
func (m *ElectronicsMutation) SetSatelliteID(id int) {
	m.satellite = &id
}

// ClearSatellite clears the "satellite" edge to the Satellite entity.
func (m *ElectronicsMutation) ClearSatellite() {
	m.clearedsatellite = true
}

// SatelliteCleared reports if the "satellite" edge to the Satellite entity was cleared.
func (m *ElectronicsMutation) SatelliteCleared() bool {
	return m.clearedsatellite
}

// SatelliteID returns the "satellite" edge ID in the mutation.
func (m *ElectronicsMutation) SatelliteID() (id int, exists bool) {
	if m.satellite != nil {
		return *m.satellite, true
	}
	return
}

// SatelliteIDs returns the "satellite" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SatelliteID instead. It exists only for internal usage by the builders.
func (m *ElectronicsMutation) SatelliteIDs() (ids []int) {
	if id := m.satellite; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSatellite resets all changes to the "satellite" edge.
func (m *ElectronicsMutation) ResetSatellite() {
	m.satellite = nil
	m.clearedsatellite = false
}

// Where appends a list predicates to the ElectronicsMutation builder.
func (m *ElectronicsMutation) Where(ps ...predicate.Electronics) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ElectronicsMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ElectronicsMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Electronics, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ElectronicsMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ElectronicsMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Electronics).
func (m *ElectronicsMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ElectronicsMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, electronics.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, electronics.FieldUpdatedAt)
	}
	if m.model != nil {
		fields = append(fields, electronics.FieldModel)
	}
	if m._type != nil {
		fields = append(fields, electronics.FieldType)
	}
	if m.location != nil {
		fields = append(fields, electronics.FieldLocation)
	}
	if m.price != nil {
		fields = append(fields, electronics.FieldPrice)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ElectronicsMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case electronics.FieldCreatedAt:
		return m.CreatedAt()
	case electronics.FieldUpdatedAt:
		return m.UpdatedAt()
	case electronics.FieldModel:
		return m.Model()
	case electronics.FieldType:
		return m.GetType()
	case electronics.FieldLocation:
		return m.Location()
	case electronics.FieldPrice:
		return m.Price()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ElectronicsMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case electronics.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case electronics.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case electronics.FieldModel:
		return m.OldModel(ctx)
	case electronics.FieldType:
		return m.OldType(ctx)
	case electronics.FieldLocation:
		return m.OldLocation(ctx)
	case electronics.FieldPrice:
		return m.OldPrice(ctx)
	}
	return nil, fmt.Errorf("unknown Electronics field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ElectronicsMutation) SetField(name string, value ent.Value) error {
	switch name {
	case electronics.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case electronics.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case electronics.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case electronics.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case electronics.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case electronics.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrice(v)
		return nil
	}
	return fmt.Errorf("unknown Electronics field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ElectronicsMutation) AddedFields() []string {
	var fields []string
	if m.addprice != nil {
		fields = append(fields, electronics.FieldPrice)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ElectronicsMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case electronics.FieldPrice:
		return m.AddedPrice()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ElectronicsMutation) AddField(name string, value ent.Value) error {
	switch name {
	case electronics.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrice(v)
		return nil
	}
	return fmt.Errorf("unknown Electronics numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ElectronicsMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ElectronicsMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ElectronicsMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Electronics nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ElectronicsMutation) ResetField(name string) error {
	switch name {
	case electronics.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case electronics.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case electronics.FieldModel:
		m.ResetModel()
		return nil
	case electronics.FieldType:
		m.ResetType()
		return nil
	case electronics.FieldLocation:
		m.ResetLocation()
		return nil
	case electronics.FieldPrice:
		m.ResetPrice()
		return nil
	}
	return fmt.Errorf("unknown Electronics field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ElectronicsMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.satellite != nil {
		edges = append(edges, electronics.EdgeSatellite)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ElectronicsMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case electronics.EdgeSatellite:
		if id := m.satellite; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ElectronicsMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ElectronicsMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ElectronicsMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsatellite {
		edges = append(edges, electronics.EdgeSatellite)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ElectronicsMutation) EdgeCleared(name string) bool {
	switch name {
	case electronics.EdgeSatellite:
		return m.clearedsatellite
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ElectronicsMutation) ClearEdge(name string) error {
	switch name {
	case electronics.EdgeSatellite:
		m.ClearSatellite()
		return nil
	}
	return fmt.Errorf("unknown Electronics unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ElectronicsMutation) ResetEdge(name string) error {
	switch name {
	case electronics.EdgeSatellite:
		m.ResetSatellite()
		return nil
	}
	return fmt.Errorf("unknown Electronics edge %s", name)
}

// HardwareRequirementMutation represents an operation that mutates the HardwareRequirement nodes in the graph.
type HardwareRequirementMutation struct {
	config
	op            Op
	typ           string
	id            *int
	created_at    *time.Time
	updated_at    *time.Time
	value         *float64
	addvalue      *float64
	unit          *string
	clearedFields map[string]struct{}
	stand         *int
	clearedstand  bool
	done          bool
	oldValue      func(context.Context) (*HardwareRequirement, error)
	predicates    []predicate.HardwareRequirement
}

var _ ent.Mutation = (*HardwareRequirementMutation)(nil)

// hardwarerequirementOption allows management of the mutation configuration using functional options.
type hardwarerequirementOption func(*HardwareRequirementMutation)

// newHardwareRequirementMutation creates new mutation for the HardwareRequirement entity.
func newHardwareRequirementMutation(c config, op Op, opts ...hardwarerequirementOption) *HardwareRequirementMutation {
	m := &HardwareRequirementMutation{
		config:        c,
		op:            op,
		typ:           TypeHardwareRequirement,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHardwareRequirementID sets the ID field of the mutation.
func withHardwareRequirementID(id int) hardwarerequirementOption {
	return func(m *HardwareRequirementMutation) {
		var (
			err   error
			once  sync.Once
			value *HardwareRequirement
		)
		m.oldValue = func(ctx context.Context) (*HardwareRequirement, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().HardwareRequirement.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHardwareRequirement sets the old HardwareRequirement of the mutation.
func withHardwareRequirement(node *HardwareRequirement) hardwarerequirementOption {
	return func(m *HardwareRequirementMutation) {
		m.oldValue = func(context.Context) (*HardwareRequirement, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HardwareRequirementMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HardwareRequirementMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HardwareRequirementMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HardwareRequirementMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().HardwareRequirement.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *HardwareRequirementMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *HardwareRequirementMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the HardwareRequirement entity.
// If the HardwareRequirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HardwareRequirementMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *HardwareRequirementMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *HardwareRequirementMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *HardwareRequirementMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the HardwareRequirement entity.
// If the HardwareRequirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HardwareRequirementMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *HardwareRequirementMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetValue sets the "value" field.
func (m *HardwareRequirementMutation) SetValue(f float64) {
	m.value = &f
	m.addvalue = nil
}

// Value returns the value of the "value" field in the mutation.
func (m *HardwareRequirementMutation) Value() (r float64, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the HardwareRequirement entity.
// If the HardwareRequirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HardwareRequirementMutation) OldValue(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// AddValue adds f to the "value" field.
func (m *HardwareRequirementMutation) AddValue(f float64) {
	if m.addvalue != nil {
		*m.addvalue += f
	} else {
		m.addvalue = &f
	}
}

// AddedValue returns the value that was added to the "value" field in this mutation.
func (m *HardwareRequirementMutation) AddedValue() (r float64, exists bool) {
	v := m.addvalue
	if v == nil {
		return
	}
	return *v, true
}

// ResetValue resets all changes to the "value" field.
func (m *HardwareRequirementMutation) ResetValue() {
	m.value = nil
	m.addvalue = nil
}

// SetUnit sets the "unit" field.
func (m *HardwareRequirementMutation) SetUnit(s string) {
	m.unit = &s
}

// Unit returns the value of the "unit" field in the mutation.
func (m *HardwareRequirementMutation) Unit() (r string, exists bool) {
	v := m.unit
	if v == nil {
		return
	}
	return *v, true
}

// OldUnit returns the old "unit" field's value of the HardwareRequirement entity.
// If the HardwareRequirement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HardwareRequirementMutation) OldUnit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnit: %w", err)
	}
	return oldValue.Unit, nil
}

// ResetUnit resets all changes to the "unit" field.
func (m *HardwareRequirementMutation) ResetUnit() {
	m.unit = nil
}

// SetStandID sets the "stand" edge to the Stand entity by id.
func (m *HardwareRequirementMutation) SetStandID(id int) {
	m.stand = &id
}

// ClearStand clears the "stand" edge to the Stand entity.
func (m *HardwareRequirementMutation) ClearStand() {
	m.clearedstand = true
}

// StandCleared reports if the "stand" edge to the Stand entity was cleared.
func (m *HardwareRequirementMutation) StandCleared() bool {
	return m.clearedstand
}

// StandID returns the "stand" edge ID in the mutation.
func (m *HardwareRequirementMutation) StandID() (id int, exists bool) {
	if m.stand != nil {
		return *m.stand, true
	}
	return
}

// StandIDs returns the "stand" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StandID instead. It exists only for internal usage by the builders.
func (m *HardwareRequirementMutation) StandIDs() (ids []int) {
	if id := m.stand; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStand resets all changes to the "stand" edge.
func (m *HardwareRequirementMutation) ResetStand() {
	m.stand = nil
	m.clearedstand = false
}

// Where appends a list predicates to the HardwareRequirementMutation builder.
func (m *HardwareRequirementMutation) Where(ps ...predicate.HardwareRequirement) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HardwareRequirementMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HardwareRequirementMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.HardwareRequirement, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HardwareRequirementMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HardwareRequirementMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (HardwareRequirement).
func (m *HardwareRequirementMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HardwareRequirementMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, hardwarerequirement.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, hardwarerequirement.FieldUpdatedAt)
	}
	if m.value != nil {
		fields = append(fields, hardwarerequirement.FieldValue)
	}
	if m.unit != nil {
		fields = append(fields, hardwarerequirement.FieldUnit)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HardwareRequirementMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case hardwarerequirement.FieldCreatedAt:
		return m.CreatedAt()
	case hardwarerequirement.FieldUpdatedAt:
		return m.UpdatedAt()
	case hardwarerequirement.FieldValue:
		return m.Value()
	case hardwarerequirement.FieldUnit:
		return m.Unit()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HardwareRequirementMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case hardwarerequirement.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case hardwarerequirement.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case hardwarerequirement.FieldValue:
		return m.OldValue(ctx)
	case hardwarerequirement.FieldUnit:
		return m.OldUnit(ctx)
	}
	return nil, fmt.Errorf("unknown HardwareRequirement field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HardwareRequirementMutation) SetField(name string, value ent.Value) error {
	switch name {
	case hardwarerequirement.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case hardwarerequirement.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case hardwarerequirement.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case hardwarerequirement.FieldUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnit(v)
		return nil
	}
	return fmt.Errorf("unknown HardwareRequirement field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HardwareRequirementMutation) AddedFields() []string {
	var fields []string
	if m.addvalue != nil {
		fields = append(fields, hardwarerequirement.FieldValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HardwareRequirementMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case hardwarerequirement.FieldValue:
		return m.AddedValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HardwareRequirementMutation) AddField(name string, value ent.Value) error {
	switch name {
	case hardwarerequirement.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValue(v)
		return nil
	}
	return fmt.Errorf("unknown HardwareRequirement numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HardwareRequirementMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HardwareRequirementMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HardwareRequirementMutation) ClearField(name string) error {
	return fmt.Errorf("unknown HardwareRequirement nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HardwareRequirementMutation) ResetField(name string) error {
	switch name {
	case hardwarerequirement.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case hardwarerequirement.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case hardwarerequirement.FieldValue:
		m.ResetValue()
		return nil
	case hardwarerequirement.FieldUnit:
		m.ResetUnit()
		return nil
	}
	return fmt.Errorf("unknown HardwareRequirement field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HardwareRequirementMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.stand != nil {
		edges = append(edges, hardwarerequirement.EdgeStand)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HardwareRequirementMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case hardwarerequirement.EdgeStand:
		if id := m.stand; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HardwareRequirementMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HardwareRequirementMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HardwareRequirementMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstand {
		edges = append(edges, hardwarerequirement.EdgeStand)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HardwareRequirementMutation) EdgeCleared(name string) bool {
	switch name {
	case hardwarerequirement.EdgeStand:
		return m.clearedstand
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HardwareRequirementMutation) ClearEdge(name string) error {
	switch name {
	case hardwarerequirement.EdgeStand:
		m.ClearStand()
		return nil
	}
	return fmt.Errorf("unknown HardwareRequirement unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HardwareRequirementMutation) ResetEdge(name string) error {
	switch name {
	case hardwarerequirement.EdgeStand:
		m.ResetStand()
		return nil
	}
	return fmt.Errorf("unknown HardwareRequirement edge %s", name)
}

// MaterialMutation represents an operation that mutates the Material nodes in the graph.
type MaterialMutation struct {
	config
	op                                 Op
	typ                                string
	id                                 *int
	created_at                         *time.Time
	updated_at                         *time.Time
	type_of_material                   *string
	amount                             *float64
	addamount                          *float64
	unit                               *string
	clearedFields                      map[string]struct{}
	functional_characteristics         map[int]struct{}
	removedfunctional_characteristics  map[int]struct{}
	clearedfunctional_characteristics  bool
	operational_characteristics        map[int]struct{}
	removedoperational_characteristics map[int]struct{}
	clearedoperational_characteristics bool
	done                               bool
	oldValue                           func(context.Context) (*Material, error)
	predicates                         []predicate.Material
}

var _ ent.Mutation = (*MaterialMutation)(nil)

// materialOption allows management of the mutation configuration using functional options.
type materialOption func(*MaterialMutation)

// newMaterialMutation creates new mutation for the Material entity.
func newMaterialMutation(c config, op Op, opts ...materialOption) *MaterialMutation {
	m := &MaterialMutation{
		config:        c,
		op:            op,
		typ:           TypeMaterial,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMaterialID sets the ID field of the mutation.
func withMaterialID(id int) materialOption {
	return func(m *MaterialMutation) {
		var (
			err   error
			once  sync.Once
			value *Material
		)
		m.oldValue = func(ctx context.Context) (*Material, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Material.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMaterial sets the old Material of the mutation.
func withMaterial(node *Material) materialOption {
	return func(m *MaterialMutation) {
		m.oldValue = func(context.Context) (*Material, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MaterialMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MaterialMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MaterialMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MaterialMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Material.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *MaterialMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MaterialMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Material entity.
// If the Material object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MaterialMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MaterialMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MaterialMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Material entity.
// If the Material object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MaterialMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTypeOfMaterial sets the "type_of_material" field.
func (m *MaterialMutation) SetTypeOfMaterial(s string) {
	m.type_of_material = &s
}

// TypeOfMaterial returns the value of the "type_of_material" field in the mutation.
func (m *MaterialMutation) TypeOfMaterial() (r string, exists bool) {
	v := m.type_of_material
	if v == nil {
		return
	}
	return *v, true
}

// OldTypeOfMaterial returns the old "type_of_material" field's value of the Material entity.
// If the Material object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialMutation) OldTypeOfMaterial(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTypeOfMaterial is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTypeOfMaterial requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTypeOfMaterial: %w", err)
	}
	return oldValue.TypeOfMaterial, nil
}

// ResetTypeOfMaterial resets all changes to the "type_of_material" field.
func (m *MaterialMutation) ResetTypeOfMaterial() {
	m.type_of_material = nil
}

// SetAmount sets the "amount" field.
func (m *MaterialMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *MaterialMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the Material entity.
// If the Material object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialMutation) OldAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *MaterialMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *MaterialMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *MaterialMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetUnit sets the "unit" field.
func (m *MaterialMutation) SetUnit(s string) {
	m.unit = &s
}

// Unit returns the value of the "unit" field in the mutation.
func (m *MaterialMutation) Unit() (r string, exists bool) {
	v := m.unit
	if v == nil {
		return
	}
	return *v, true
}

// OldUnit returns the old "unit" field's value of the Material entity.
// If the Material object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialMutation) OldUnit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnit: %w", err)
	}
	return oldValue.Unit, nil
}

// ResetUnit resets all changes to the "unit" field.
func (m *MaterialMutation) ResetUnit() {
	m.unit = nil
}

// AddFunctionalCharacteristicIDs adds the "functional_characteristics" edge to the MaterialFunctionalCharacteristic entity by ids.
func (m *MaterialMutation) AddFunctionalCharacteristicIDs(ids ...int) {
	if m.functional_characteristics == nil {
		m.functional_characteristics = make(map[int]struct{})
	}
	for i := range ids {
		m.functional_characteristics[ids[i]] = struct{}{}
	}
}

// ClearFunctionalCharacteristics clears the "functional_characteristics" edge to the MaterialFunctionalCharacteristic entity.
func (m *MaterialMutation) ClearFunctionalCharacteristics() {
	m.clearedfunctional_characteristics = true
}

// FunctionalCharacteristicsCleared reports if the "functional_characteristics" edge to the MaterialFunctionalCharacteristic entity was cleared.
func (m *MaterialMutation) FunctionalCharacteristicsCleared() bool {
	return m.clearedfunctional_characteristics
}

// RemoveFunctionalCharacteristicIDs removes the "functional_characteristics" edge to the MaterialFunctionalCharacteristic entity by IDs.
func (m *MaterialMutation) RemoveFunctionalCharacteristicIDs(ids ...int) {
	if m.removedfunctional_characteristics == nil {
		m.removedfunctional_characteristics = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.functional_characteristics, ids[i])
		m.removedfunctional_characteristics[ids[i]] = struct{}{}
	}
}

// RemovedFunctionalCharacteristics returns the removed IDs of the "functional_characteristics" edge to the MaterialFunctionalCharacteristic entity.
func (m *MaterialMutation) RemovedFunctionalCharacteristicsIDs() (ids []int) {
	for id := range m.removedfunctional_characteristics {
		ids = append(ids, id)
	}
	return
}

// FunctionalCharacteristicsIDs returns the "functional_characteristics" edge IDs in the mutation.
func (m *MaterialMutation) FunctionalCharacteristicsIDs() (ids []int) {
	for id := range m.functional_characteristics {
		ids = append(ids, id)
	}
	return
}

// ResetFunctionalCharacteristics resets all changes to the "functional_characteristics" edge.
func (m *MaterialMutation) ResetFunctionalCharacteristics() {
	m.functional_characteristics = nil
	m.clearedfunctional_characteristics = false
	m.removedfunctional_characteristics = nil
}

// AddOperationalCharacteristicIDs adds the "operational_characteristics" edge to the MaterialOperationalCharacteristic entity by ids.
func (m *MaterialMutation) AddOperationalCharacteristicIDs(ids ...int) {
	if m.operational_characteristics == nil {
		m.operational_characteristics = make(map[int]struct{})
	}
	for i := range ids {
		m.operational_characteristics[ids[i]] = struct{}{}
	}
}

// ClearOperationalCharacteristics clears the "operational_characteristics" edge to the MaterialOperationalCharacteristic entity.
func (m *MaterialMutation) ClearOperationalCharacteristics() {
	m.clearedoperational_characteristics = true
}

// OperationalCharacteristicsCleared reports if the "operational_characteristics" edge to the MaterialOperationalCharacteristic entity was cleared.
func (m *MaterialMutation) OperationalCharacteristicsCleared() bool {
	return m.clearedoperational_characteristics
}

// RemoveOperationalCharacteristicIDs removes the "operational_characteristics" edge to the MaterialOperationalCharacteristic entity by IDs.
func (m *MaterialMutation) RemoveOperationalCharacteristicIDs(ids ...int) {
	if m.removedoperational_characteristics == nil {
		m.removedoperational_characteristics = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.operational_characteristics, ids[i])
		m.removedoperational_characteristics[ids[i]] = struct{}{}
	}
}

// RemovedOperationalCharacteristics returns the removed IDs of the "operational_characteristics" edge to the MaterialOperationalCharacteristic entity.
func (m *MaterialMutation) RemovedOperationalCharacteristicsIDs() (ids []int) {
	for id := range m.removedoperational_characteristics {
		ids = append(ids, id)
	}
	return
}

// OperationalCharacteristicsIDs returns the "operational_characteristics" edge IDs in the mutation.
func (m *MaterialMutation) OperationalCharacteristicsIDs() (ids []int) {
	for id := range m.operational_characteristics {
		ids = append(ids, id)
	}
	return
}

// ResetOperationalCharacteristics resets all changes to the "operational_characteristics" edge.
func (m *MaterialMutation) ResetOperationalCharacteristics() {
	m.operational_characteristics = nil
	m.clearedoperational_characteristics = false
	m.removedoperational_characteristics = nil
}

// Where appends a list predicates to the MaterialMutation builder.
func (m *MaterialMutation) Where(ps ...predicate.Material) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MaterialMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MaterialMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Material, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MaterialMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MaterialMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Material).
func (m *MaterialMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MaterialMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, material.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, material.FieldUpdatedAt)
	}
	if m.type_of_material != nil {
		fields = append(fields, material.FieldTypeOfMaterial)
	}
	if m.amount != nil {
		fields = append(fields, material.FieldAmount)
	}
	if m.unit != nil {
		fields = append(fields, material.FieldUnit)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MaterialMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case material.FieldCreatedAt:
		return m.CreatedAt()
	case material.FieldUpdatedAt:
		return m.UpdatedAt()
	case material.FieldTypeOfMaterial:
		return m.TypeOfMaterial()
	case material.FieldAmount:
		return m.Amount()
	case material.FieldUnit:
		return m.Unit()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MaterialMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case material.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case material.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case material.FieldTypeOfMaterial:
		return m.OldTypeOfMaterial(ctx)
	case material.FieldAmount:
		return m.OldAmount(ctx)
	case material.FieldUnit:
		return m.OldUnit(ctx)
	}
	return nil, fmt.Errorf("unknown Material field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MaterialMutation) SetField(name string, value ent.Value) error {
	switch name {
	case material.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case material.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case material.FieldTypeOfMaterial:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTypeOfMaterial(v)
		return nil
	case material.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case material.FieldUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnit(v)
		return nil
	}
	return fmt.Errorf("unknown Material field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MaterialMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, material.FieldAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MaterialMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case material.FieldAmount:
		return m.AddedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MaterialMutation) AddField(name string, value ent.Value) error {
	switch name {
	case material.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Material numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MaterialMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MaterialMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MaterialMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Material nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MaterialMutation) ResetField(name string) error {
	switch name {
	case material.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case material.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case material.FieldTypeOfMaterial:
		m.ResetTypeOfMaterial()
		return nil
	case material.FieldAmount:
		m.ResetAmount()
		return nil
	case material.FieldUnit:
		m.ResetUnit()
		return nil
	}
	return fmt.Errorf("unknown Material field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MaterialMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.functional_characteristics != nil {
		edges = append(edges, material.EdgeFunctionalCharacteristics)
	}
	if m.operational_characteristics != nil {
		edges = append(edges, material.EdgeOperationalCharacteristics)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MaterialMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case material.EdgeFunctionalCharacteristics:
		ids := make([]ent.Value, 0, len(m.functional_characteristics))
		for id := range m.functional_characteristics {
			ids = append(ids, id)
		}
		return ids
	case material.EdgeOperationalCharacteristics:
		ids := make([]ent.Value, 0, len(m.operational_characteristics))
		for id := range m.operational_characteristics {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MaterialMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedfunctional_characteristics != nil {
		edges = append(edges, material.EdgeFunctionalCharacteristics)
	}
	if m.removedoperational_characteristics != nil {
		edges = append(edges, material.EdgeOperationalCharacteristics)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MaterialMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case material.EdgeFunctionalCharacteristics:
		ids := make([]ent.Value, 0, len(m.removedfunctional_characteristics))
		for id := range m.removedfunctional_characteristics {
			ids = append(ids, id)
		}
		return ids
	case material.EdgeOperationalCharacteristics:
		ids := make([]ent.Value, 0, len(m.removedoperational_characteristics))
		for id := range m.removedoperational_characteristics {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MaterialMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfunctional_characteristics {
		edges = append(edges, material.EdgeFunctionalCharacteristics)
	}
	if m.clearedoperational_characteristics {
		edges = append(edges, material.EdgeOperationalCharacteristics)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MaterialMutation) EdgeCleared(name string) bool {
	switch name {
	case material.EdgeFunctionalCharacteristics:
		return m.clearedfunctional_characteristics
	case material.EdgeOperationalCharacteristics:
		return m.clearedoperational_characteristics
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MaterialMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Material unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MaterialMutation) ResetEdge(name string) error {
	switch name {
	case material.EdgeFunctionalCharacteristics:
		m.ResetFunctionalCharacteristics()
		return nil
	case material.EdgeOperationalCharacteristics:
		m.ResetOperationalCharacteristics()
		return nil
	}
	return fmt.Errorf("unknown Material edge %s", name)
}

// MaterialFunctionalCharacteristicMutation represents an operation that mutates the MaterialFunctionalCharacteristic nodes in the graph.
type MaterialFunctionalCharacteristicMutation struct {
	config
	op              Op
	typ             string
	id              *int
	created_at      *time.Time
	updated_at      *time.Time
	unit            *string
	value           *float64
	addvalue        *float64
	description     *string
	clearedFields   map[string]struct{}
	material        *int
	clearedmaterial bool
	done            bool
	oldValue        func(context.Context) (*MaterialFunctionalCharacteristic, error)
	predicates      []predicate.MaterialFunctionalCharacteristic
}

var _ ent.Mutation = (*MaterialFunctionalCharacteristicMutation)(nil)

// materialfunctionalcharacteristicOption allows management of the mutation configuration using functional options.
type materialfunctionalcharacteristicOption func(*MaterialFunctionalCharacteristicMutation)

// newMaterialFunctionalCharacteristicMutation creates new mutation for the MaterialFunctionalCharacteristic entity.
func newMaterialFunctionalCharacteristicMutation(c config, op Op, opts ...materialfunctionalcharacteristicOption) *MaterialFunctionalCharacteristicMutation {
	m := &MaterialFunctionalCharacteristicMutation{
		config:        c,
		op:            op,
		typ:           TypeMaterialFunctionalCharacteristic,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMaterialFunctionalCharacteristicID sets the ID field of the mutation.
func withMaterialFunctionalCharacteristicID(id int) materialfunctionalcharacteristicOption {
	return func(m *MaterialFunctionalCharacteristicMutation) {
		var (
			err   error
			once  sync.Once
			value *MaterialFunctionalCharacteristic
		)
		m.oldValue = func(ctx context.Context) (*MaterialFunctionalCharacteristic, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MaterialFunctionalCharacteristic.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMaterialFunctionalCharacteristic sets the old MaterialFunctionalCharacteristic of the mutation.
func withMaterialFunctionalCharacteristic(node *MaterialFunctionalCharacteristic) materialfunctionalcharacteristicOption {
	return func(m *MaterialFunctionalCharacteristicMutation) {
		m.oldValue = func(context.Context) (*MaterialFunctionalCharacteristic, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MaterialFunctionalCharacteristicMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MaterialFunctionalCharacteristicMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MaterialFunctionalCharacteristicMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MaterialFunctionalCharacteristicMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MaterialFunctionalCharacteristic.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *MaterialFunctionalCharacteristicMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MaterialFunctionalCharacteristicMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MaterialFunctionalCharacteristic entity.
// If the MaterialFunctionalCharacteristic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialFunctionalCharacteristicMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MaterialFunctionalCharacteristicMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MaterialFunctionalCharacteristicMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MaterialFunctionalCharacteristicMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MaterialFunctionalCharacteristic entity.
// If the MaterialFunctionalCharacteristic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialFunctionalCharacteristicMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MaterialFunctionalCharacteristicMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUnit sets the "unit" field.
func (m *MaterialFunctionalCharacteristicMutation) SetUnit(s string) {
	m.unit = &s
}

// Unit returns the value of the "unit" field in the mutation.
func (m *MaterialFunctionalCharacteristicMutation) Unit() (r string, exists bool) {
	v := m.unit
	if v == nil {
		return
	}
	return *v, true
}

// OldUnit returns the old "unit" field's value of the MaterialFunctionalCharacteristic entity.
// If the MaterialFunctionalCharacteristic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialFunctionalCharacteristicMutation) OldUnit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnit: %w", err)
	}
	return oldValue.Unit, nil
}

// ResetUnit resets all changes to the "unit" field.
func (m *MaterialFunctionalCharacteristicMutation) ResetUnit() {
	m.unit = nil
}

// SetValue sets the "value" field.
func (m *MaterialFunctionalCharacteristicMutation) SetValue(f float64) {
	m.value = &f
	m.addvalue = nil
}

// Value returns the value of the "value" field in the mutation.
func (m *MaterialFunctionalCharacteristicMutation) Value() (r float64, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the MaterialFunctionalCharacteristic entity.
// If the MaterialFunctionalCharacteristic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialFunctionalCharacteristicMutation) OldValue(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// AddValue adds f to the "value" field.
func (m *MaterialFunctionalCharacteristicMutation) AddValue(f float64) {
	if m.addvalue != nil {
		*m.addvalue += f
	} else {
		m.addvalue = &f
	}
}

// AddedValue returns the value that was added to the "value" field in this mutation.
func (m *MaterialFunctionalCharacteristicMutation) AddedValue() (r float64, exists bool) {
	v := m.addvalue
	if v == nil {
		return
	}
	return *v, true
}

// ResetValue resets all changes to the "value" field.
func (m *MaterialFunctionalCharacteristicMutation) ResetValue() {
	m.value = nil
	m.addvalue = nil
}

// SetDescription sets the "description" field.
func (m *MaterialFunctionalCharacteristicMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *MaterialFunctionalCharacteristicMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the MaterialFunctionalCharacteristic entity.
// If the MaterialFunctionalCharacteristic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialFunctionalCharacteristicMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *MaterialFunctionalCharacteristicMutation) ResetDescription() {
	m.description = nil
}

// SetMaterialID sets the "material" edge to the Material entity by id.
func (m *MaterialFunctionalCharacteristicMutation) SetMaterialID(id int) {
	m.material = &id
}

// ClearMaterial clears the "material" edge to the Material entity.
func (m *MaterialFunctionalCharacteristicMutation) ClearMaterial() {
	m.clearedmaterial = true
}

// MaterialCleared reports if the "material" edge to the Material entity was cleared.
func (m *MaterialFunctionalCharacteristicMutation) MaterialCleared() bool {
	return m.clearedmaterial
}

// MaterialID returns the "material" edge ID in the mutation.
func (m *MaterialFunctionalCharacteristicMutation) MaterialID() (id int, exists bool) {
	if m.material != nil {
		return *m.material, true
	}
	return
}

// MaterialIDs returns the "material" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MaterialID instead. It exists only for internal usage by the builders.
func (m *MaterialFunctionalCharacteristicMutation) MaterialIDs() (ids []int) {
	if id := m.material; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMaterial resets all changes to the "material" edge.
func (m *MaterialFunctionalCharacteristicMutation) ResetMaterial() {
	m.material = nil
	m.clearedmaterial = false
}

// Where appends a list predicates to the MaterialFunctionalCharacteristicMutation builder.
func (m *MaterialFunctionalCharacteristicMutation) Where(ps ...predicate.MaterialFunctionalCharacteristic) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MaterialFunctionalCharacteristicMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MaterialFunctionalCharacteristicMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MaterialFunctionalCharacteristic, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MaterialFunctionalCharacteristicMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MaterialFunctionalCharacteristicMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MaterialFunctionalCharacteristic).
func (m *MaterialFunctionalCharacteristicMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MaterialFunctionalCharacteristicMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, materialfunctionalcharacteristic.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, materialfunctionalcharacteristic.FieldUpdatedAt)
	}
	if m.unit != nil {
		fields = append(fields, materialfunctionalcharacteristic.FieldUnit)
	}
	if m.value != nil {
		fields = append(fields, materialfunctionalcharacteristic.FieldValue)
	}
	if m.description != nil {
		fields = append(fields, materialfunctionalcharacteristic.FieldDescription)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MaterialFunctionalCharacteristicMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case materialfunctionalcharacteristic.FieldCreatedAt:
		return m.CreatedAt()
	case materialfunctionalcharacteristic.FieldUpdatedAt:
		return m.UpdatedAt()
	case materialfunctionalcharacteristic.FieldUnit:
		return m.Unit()
	case materialfunctionalcharacteristic.FieldValue:
		return m.Value()
	case materialfunctionalcharacteristic.FieldDescription:
		return m.Description()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MaterialFunctionalCharacteristicMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case materialfunctionalcharacteristic.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case materialfunctionalcharacteristic.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case materialfunctionalcharacteristic.FieldUnit:
		return m.OldUnit(ctx)
	case materialfunctionalcharacteristic.FieldValue:
		return m.OldValue(ctx)
	case materialfunctionalcharacteristic.FieldDescription:
		return m.OldDescription(ctx)
	}
	return nil, fmt.Errorf("unknown MaterialFunctionalCharacteristic field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MaterialFunctionalCharacteristicMutation) SetField(name string, value ent.Value) error {
	switch name {
	case materialfunctionalcharacteristic.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case materialfunctionalcharacteristic.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case materialfunctionalcharacteristic.FieldUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnit(v)
		return nil
	case materialfunctionalcharacteristic.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case materialfunctionalcharacteristic.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	}
	return fmt.Errorf("unknown MaterialFunctionalCharacteristic field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MaterialFunctionalCharacteristicMutation) AddedFields() []string {
	var fields []string
	if m.addvalue != nil {
		fields = append(fields, materialfunctionalcharacteristic.FieldValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MaterialFunctionalCharacteristicMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case materialfunctionalcharacteristic.FieldValue:
		return m.AddedValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MaterialFunctionalCharacteristicMutation) AddField(name string, value ent.Value) error {
	switch name {
	case materialfunctionalcharacteristic.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValue(v)
		return nil
	}
	return fmt.Errorf("unknown MaterialFunctionalCharacteristic numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MaterialFunctionalCharacteristicMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MaterialFunctionalCharacteristicMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MaterialFunctionalCharacteristicMutation) ClearField(name string) error {
	return fmt.Errorf("unknown MaterialFunctionalCharacteristic nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MaterialFunctionalCharacteristicMutation) ResetField(name string) error {
	switch name {
	case materialfunctionalcharacteristic.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case materialfunctionalcharacteristic.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case materialfunctionalcharacteristic.FieldUnit:
		m.ResetUnit()
		return nil
	case materialfunctionalcharacteristic.FieldValue:
		m.ResetValue()
		return nil
	case materialfunctionalcharacteristic.FieldDescription:
		m.ResetDescription()
		return nil
	}
	return fmt.Errorf("unknown MaterialFunctionalCharacteristic field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MaterialFunctionalCharacteristicMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.material != nil {
		edges = append(edges, materialfunctionalcharacteristic.EdgeMaterial)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MaterialFunctionalCharacteristicMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case materialfunctionalcharacteristic.EdgeMaterial:
		if id := m.material; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MaterialFunctionalCharacteristicMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MaterialFunctionalCharacteristicMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MaterialFunctionalCharacteristicMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmaterial {
		edges = append(edges, materialfunctionalcharacteristic.EdgeMaterial)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MaterialFunctionalCharacteristicMutation) EdgeCleared(name string) bool {
	switch name {
	case materialfunctionalcharacteristic.EdgeMaterial:
		return m.clearedmaterial
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MaterialFunctionalCharacteristicMutation) ClearEdge(name string) error {
	switch name {
	case materialfunctionalcharacteristic.EdgeMaterial:
		m.ClearMaterial()
		return nil
	}
	return fmt.Errorf("unknown MaterialFunctionalCharacteristic unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MaterialFunctionalCharacteristicMutation) ResetEdge(name string) error {
	switch name {
	case materialfunctionalcharacteristic.EdgeMaterial:
		m.ResetMaterial()
		return nil
	}
	return fmt.Errorf("unknown MaterialFunctionalCharacteristic edge %s", name)
}

// MaterialOperationalCharacteristicMutation represents an operation that mutates the MaterialOperationalCharacteristic nodes in the graph.
type MaterialOperationalCharacteristicMutation struct {
	config
	op              Op
	typ             string
	id              *int
	created_at      *time.Time
	updated_at      *time.Time
	unit            *string
	value           *float64
	addvalue        *float64
	description     *string
	clearedFields   map[string]struct{}
	material        *int
	clearedmaterial bool
	stand           *int
	clearedstand    bool
	done            bool
	oldValue        func(context.Context) (*MaterialOperationalCharacteristic, error)
	predicates      []predicate.MaterialOperationalCharacteristic
}

var _ ent.Mutation = (*MaterialOperationalCharacteristicMutation)(nil)

// materialoperationalcharacteristicOption allows management of the mutation configuration using functional options.
type materialoperationalcharacteristicOption func(*MaterialOperationalCharacteristicMutation)

// newMaterialOperationalCharacteristicMutation creates new mutation for the MaterialOperationalCharacteristic entity.
func newMaterialOperationalCharacteristicMutation(c config, op Op, opts ...materialoperationalcharacteristicOption) *MaterialOperationalCharacteristicMutation {
	m := &MaterialOperationalCharacteristicMutation{
		config:        c,
		op:            op,
		typ:           TypeMaterialOperationalCharacteristic,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMaterialOperationalCharacteristicID sets the ID field of the mutation.
func withMaterialOperationalCharacteristicID(id int) materialoperationalcharacteristicOption {
	return func(m *MaterialOperationalCharacteristicMutation) {
		var (
			err   error
			once  sync.Once
			value *MaterialOperationalCharacteristic
		)
		m.oldValue = func(ctx context.Context) (*MaterialOperationalCharacteristic, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MaterialOperationalCharacteristic.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMaterialOperationalCharacteristic sets the old MaterialOperationalCharacteristic of the mutation.
func withMaterialOperationalCharacteristic(node *MaterialOperationalCharacteristic) materialoperationalcharacteristicOption {
	return func(m *MaterialOperationalCharacteristicMutation) {
		m.oldValue = func(context.Context) (*MaterialOperationalCharacteristic, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MaterialOperationalCharacteristicMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MaterialOperationalCharacteristicMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MaterialOperationalCharacteristicMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MaterialOperationalCharacteristicMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MaterialOperationalCharacteristic.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *MaterialOperationalCharacteristicMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MaterialOperationalCharacteristicMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MaterialOperationalCharacteristic entity.
// If the MaterialOperationalCharacteristic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialOperationalCharacteristicMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MaterialOperationalCharacteristicMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MaterialOperationalCharacteristicMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MaterialOperationalCharacteristicMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MaterialOperationalCharacteristic entity.
// If the MaterialOperationalCharacteristic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialOperationalCharacteristicMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MaterialOperationalCharacteristicMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUnit sets the "unit" field.
func (m *MaterialOperationalCharacteristicMutation) SetUnit(s string) {
	m.unit = &s
}

// Unit returns the value of the "unit" field in the mutation.
func (m *MaterialOperationalCharacteristicMutation) Unit() (r string, exists bool) {
	v := m.unit
	if v == nil {
		return
	}
	return *v, true
}

// OldUnit returns the old "unit" field's value of the MaterialOperationalCharacteristic entity.
// If the MaterialOperationalCharacteristic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialOperationalCharacteristicMutation) OldUnit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnit: %w", err)
	}
	return oldValue.Unit, nil
}

// ResetUnit resets all changes to the "unit" field.
func (m *MaterialOperationalCharacteristicMutation) ResetUnit() {
	m.unit = nil
}

// SetValue sets the "value" field.
func (m *MaterialOperationalCharacteristicMutation) SetValue(f float64) {
	m.value = &f
	m.addvalue = nil
}

// Value returns the value of the "value" field in the mutation.
func (m *MaterialOperationalCharacteristicMutation) Value() (r float64, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the MaterialOperationalCharacteristic entity.
// If the MaterialOperationalCharacteristic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialOperationalCharacteristicMutation) OldValue(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// AddValue adds f to the "value" field.
func (m *MaterialOperationalCharacteristicMutation) AddValue(f float64) {
	if m.addvalue != nil {
		*m.addvalue += f
	} else {
		m.addvalue = &f
	}
}

// AddedValue returns the value that was added to the "value" field in this mutation.
func (m *MaterialOperationalCharacteristicMutation) AddedValue() (r float64, exists bool) {
	v := m.addvalue
	if v == nil {
		return
	}
	return *v, true
}

// ResetValue resets all changes to the "value" field.
func (m *MaterialOperationalCharacteristicMutation) ResetValue() {
	m.value = nil
	m.addvalue = nil
}

// SetDescription sets the "description" field.
func (m *MaterialOperationalCharacteristicMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *MaterialOperationalCharacteristicMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the MaterialOperationalCharacteristic entity.
// If the MaterialOperationalCharacteristic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialOperationalCharacteristicMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *MaterialOperationalCharacteristicMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[materialoperationalcharacteristic.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *MaterialOperationalCharacteristicMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[materialoperationalcharacteristic.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *MaterialOperationalCharacteristicMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, materialoperationalcharacteristic.FieldDescription)
}

// SetMaterialID sets the "material" edge to the Material entity by id.
func (m *MaterialOperationalCharacteristicMutation) SetMaterialID(id int) {
	m.material = &id
}

// ClearMaterial clears the "material" edge to the Material entity.
func (m *MaterialOperationalCharacteristicMutation) ClearMaterial() {
	m.clearedmaterial = true
}

// MaterialCleared reports if the "material" edge to the Material entity was cleared.
func (m *MaterialOperationalCharacteristicMutation) MaterialCleared() bool {
	return m.clearedmaterial
}

// MaterialID returns the "material" edge ID in the mutation.
func (m *MaterialOperationalCharacteristicMutation) MaterialID() (id int, exists bool) {
	if m.material != nil {
		return *m.material, true
	}
	return
}

// MaterialIDs returns the "material" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MaterialID instead. It exists only for internal usage by the builders.
func (m *MaterialOperationalCharacteristicMutation) MaterialIDs() (ids []int) {
	if id := m.material; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMaterial resets all changes to the "material" edge.
func (m *MaterialOperationalCharacteristicMutation) ResetMaterial() {
	m.material = nil
	m.clearedmaterial = false
}

// SetStandID sets the "stand" edge to the Stand entity by id.
func (m *MaterialOperationalCharacteristicMutation) SetStandID(id int) {
	m.stand = &id
}

// ClearStand clears the "stand" edge to the Stand entity.
func (m *MaterialOperationalCharacteristicMutation) ClearStand() {
	m.clearedstand = true
}

// StandCleared reports if the "stand" edge to the Stand entity was cleared.
func (m *MaterialOperationalCharacteristicMutation) StandCleared() bool {
	return m.clearedstand
}

// StandID returns the "stand" edge ID in the mutation.
func (m *MaterialOperationalCharacteristicMutation) StandID() (id int, exists bool) {
	if m.stand != nil {
		return *m.stand, true
	}
	return
}

// StandIDs returns the "stand" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StandID instead. It exists only for internal usage by the builders.
func (m *MaterialOperationalCharacteristicMutation) StandIDs() (ids []int) {
	if id := m.stand; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStand resets all changes to the "stand" edge.
func (m *MaterialOperationalCharacteristicMutation) ResetStand() {
	m.stand = nil
	m.clearedstand = false
}

// Where appends a list predicates to the MaterialOperationalCharacteristicMutation builder.
func (m *MaterialOperationalCharacteristicMutation) Where(ps ...predicate.MaterialOperationalCharacteristic) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MaterialOperationalCharacteristicMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MaterialOperationalCharacteristicMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MaterialOperationalCharacteristic, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MaterialOperationalCharacteristicMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MaterialOperationalCharacteristicMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MaterialOperationalCharacteristic).
func (m *MaterialOperationalCharacteristicMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MaterialOperationalCharacteristicMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, materialoperationalcharacteristic.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, materialoperationalcharacteristic.FieldUpdatedAt)
	}
	if m.unit != nil {
		fields = append(fields, materialoperationalcharacteristic.FieldUnit)
	}
	if m.value != nil {
		fields = append(fields, materialoperationalcharacteristic.FieldValue)
	}
	if m.description != nil {
		fields = append(fields, materialoperationalcharacteristic.FieldDescription)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MaterialOperationalCharacteristicMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case materialoperationalcharacteristic.FieldCreatedAt:
		return m.CreatedAt()
	case materialoperationalcharacteristic.FieldUpdatedAt:
		return m.UpdatedAt()
	case materialoperationalcharacteristic.FieldUnit:
		return m.Unit()
	case materialoperationalcharacteristic.FieldValue:
		return m.Value()
	case materialoperationalcharacteristic.FieldDescription:
		return m.Description()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MaterialOperationalCharacteristicMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case materialoperationalcharacteristic.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case materialoperationalcharacteristic.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case materialoperationalcharacteristic.FieldUnit:
		return m.OldUnit(ctx)
	case materialoperationalcharacteristic.FieldValue:
		return m.OldValue(ctx)
	case materialoperationalcharacteristic.FieldDescription:
		return m.OldDescription(ctx)
	}
	return nil, fmt.Errorf("unknown MaterialOperationalCharacteristic field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MaterialOperationalCharacteristicMutation) SetField(name string, value ent.Value) error {
	switch name {
	case materialoperationalcharacteristic.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case materialoperationalcharacteristic.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case materialoperationalcharacteristic.FieldUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnit(v)
		return nil
	case materialoperationalcharacteristic.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case materialoperationalcharacteristic.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	}
	return fmt.Errorf("unknown MaterialOperationalCharacteristic field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MaterialOperationalCharacteristicMutation) AddedFields() []string {
	var fields []string
	if m.addvalue != nil {
		fields = append(fields, materialoperationalcharacteristic.FieldValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MaterialOperationalCharacteristicMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case materialoperationalcharacteristic.FieldValue:
		return m.AddedValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MaterialOperationalCharacteristicMutation) AddField(name string, value ent.Value) error {
	switch name {
	case materialoperationalcharacteristic.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValue(v)
		return nil
	}
	return fmt.Errorf("unknown MaterialOperationalCharacteristic numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MaterialOperationalCharacteristicMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(materialoperationalcharacteristic.FieldDescription) {
		fields = append(fields, materialoperationalcharacteristic.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MaterialOperationalCharacteristicMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MaterialOperationalCharacteristicMutation) ClearField(name string) error {
	switch name {
	case materialoperationalcharacteristic.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown MaterialOperationalCharacteristic nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MaterialOperationalCharacteristicMutation) ResetField(name string) error {
	switch name {
	case materialoperationalcharacteristic.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case materialoperationalcharacteristic.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case materialoperationalcharacteristic.FieldUnit:
		m.ResetUnit()
		return nil
	case materialoperationalcharacteristic.FieldValue:
		m.ResetValue()
		return nil
	case materialoperationalcharacteristic.FieldDescription:
		m.ResetDescription()
		return nil
	}
	return fmt.Errorf("unknown MaterialOperationalCharacteristic field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MaterialOperationalCharacteristicMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.material != nil {
		edges = append(edges, materialoperationalcharacteristic.EdgeMaterial)
	}
	if m.stand != nil {
		edges = append(edges, materialoperationalcharacteristic.EdgeStand)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MaterialOperationalCharacteristicMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case materialoperationalcharacteristic.EdgeMaterial:
		if id := m.material; id != nil {
			return []ent.Value{*id}
		}
	case materialoperationalcharacteristic.EdgeStand:
		if id := m.stand; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MaterialOperationalCharacteristicMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MaterialOperationalCharacteristicMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MaterialOperationalCharacteristicMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedmaterial {
		edges = append(edges, materialoperationalcharacteristic.EdgeMaterial)
	}
	if m.clearedstand {
		edges = append(edges, materialoperationalcharacteristic.EdgeStand)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MaterialOperationalCharacteristicMutation) EdgeCleared(name string) bool {
	switch name {
	case materialoperationalcharacteristic.EdgeMaterial:
		return m.clearedmaterial
	case materialoperationalcharacteristic.EdgeStand:
		return m.clearedstand
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MaterialOperationalCharacteristicMutation) ClearEdge(name string) error {
	switch name {
	case materialoperationalcharacteristic.EdgeMaterial:
		m.ClearMaterial()
		return nil
	case materialoperationalcharacteristic.EdgeStand:
		m.ClearStand()
		return nil
	}
	return fmt.Errorf("unknown MaterialOperationalCharacteristic unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MaterialOperationalCharacteristicMutation) ResetEdge(name string) error {
	switch name {
	case materialoperationalcharacteristic.EdgeMaterial:
		m.ResetMaterial()
		return nil
	case materialoperationalcharacteristic.EdgeStand:
		m.ResetStand()
		return nil
	}
	return fmt.Errorf("unknown MaterialOperationalCharacteristic edge %s", name)
}

// PhysicalTestDataMutation represents an operation that mutates the PhysicalTestData nodes in the graph.
type PhysicalTestDataMutation struct {
	config
	op            Op
	typ           string
	id            *int
	created_at    *time.Time
	updated_at    *time.Time
	value         *float64
	addvalue      *float64
	unit          *string
	description   *string
	clearedFields map[string]struct{}
	stand         *int
	clearedstand  bool
	done          bool
	oldValue      func(context.Context) (*PhysicalTestData, error)
	predicates    []predicate.PhysicalTestData
}

var _ ent.Mutation = (*PhysicalTestDataMutation)(nil)

// physicaltestdataOption allows management of the mutation configuration using functional options.
type physicaltestdataOption func(*PhysicalTestDataMutation)

// newPhysicalTestDataMutation creates new mutation for the PhysicalTestData entity.
func newPhysicalTestDataMutation(c config, op Op, opts ...physicaltestdataOption) *PhysicalTestDataMutation {
	m := &PhysicalTestDataMutation{
		config:        c,
		op:            op,
		typ:           TypePhysicalTestData,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPhysicalTestDataID sets the ID field of the mutation.
func withPhysicalTestDataID(id int) physicaltestdataOption {
	return func(m *PhysicalTestDataMutation) {
		var (
			err   error
			once  sync.Once
			value *PhysicalTestData
		)
		m.oldValue = func(ctx context.Context) (*PhysicalTestData, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PhysicalTestData.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPhysicalTestData sets the old PhysicalTestData of the mutation.
func withPhysicalTestData(node *PhysicalTestData) physicaltestdataOption {
	return func(m *PhysicalTestDataMutation) {
		m.oldValue = func(context.Context) (*PhysicalTestData, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PhysicalTestDataMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PhysicalTestDataMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PhysicalTestDataMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PhysicalTestDataMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PhysicalTestData.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PhysicalTestDataMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PhysicalTestDataMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PhysicalTestData entity.
// If the PhysicalTestData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhysicalTestDataMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PhysicalTestDataMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PhysicalTestDataMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PhysicalTestDataMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PhysicalTestData entity.
// If the PhysicalTestData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhysicalTestDataMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PhysicalTestDataMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetValue sets the "value" field.
func (m *PhysicalTestDataMutation) SetValue(f float64) {
	m.value = &f
	m.addvalue = nil
}

// Value returns the value of the "value" field in the mutation.
func (m *PhysicalTestDataMutation) Value() (r float64, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the PhysicalTestData entity.
// If the PhysicalTestData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhysicalTestDataMutation) OldValue(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// AddValue adds f to the "value" field.
func (m *PhysicalTestDataMutation) AddValue(f float64) {
	if m.addvalue != nil {
		*m.addvalue += f
	} else {
		m.addvalue = &f
	}
}

// AddedValue returns the value that was added to the "value" field in this mutation.
func (m *PhysicalTestDataMutation) AddedValue() (r float64, exists bool) {
	v := m.addvalue
	if v == nil {
		return
	}
	return *v, true
}

// ResetValue resets all changes to the "value" field.
func (m *PhysicalTestDataMutation) ResetValue() {
	m.value = nil
	m.addvalue = nil
}

// SetUnit sets the "unit" field.
func (m *PhysicalTestDataMutation) SetUnit(s string) {
	m.unit = &s
}

// Unit returns the value of the "unit" field in the mutation.
func (m *PhysicalTestDataMutation) Unit() (r string, exists bool) {
	v := m.unit
	if v == nil {
		return
	}
	return *v, true
}

// OldUnit returns the old "unit" field's value of the PhysicalTestData entity.
// If the PhysicalTestData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhysicalTestDataMutation) OldUnit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnit: %w", err)
	}
	return oldValue.Unit, nil
}

// ResetUnit resets all changes to the "unit" field.
func (m *PhysicalTestDataMutation) ResetUnit() {
	m.unit = nil
}

// SetDescription sets the "description" field.
func (m *PhysicalTestDataMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *PhysicalTestDataMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the PhysicalTestData entity.
// If the PhysicalTestData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhysicalTestDataMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *PhysicalTestDataMutation) ResetDescription() {
	m.description = nil
}

// SetStandID sets the "stand" edge to the Stand entity by id.
func (m *PhysicalTestDataMutation) SetStandID(id int) {
	m.stand = &id
}

// ClearStand clears the "stand" edge to the Stand entity.
func (m *PhysicalTestDataMutation) ClearStand() {
	m.clearedstand = true
}

// StandCleared reports if the "stand" edge to the Stand entity was cleared.
func (m *PhysicalTestDataMutation) StandCleared() bool {
	return m.clearedstand
}

// StandID returns the "stand" edge ID in the mutation.
func (m *PhysicalTestDataMutation) StandID() (id int, exists bool) {
	if m.stand != nil {
		return *m.stand, true
	}
	return
}

// StandIDs returns the "stand" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StandID instead. It exists only for internal usage by the builders.
func (m *PhysicalTestDataMutation) StandIDs() (ids []int) {
	if id := m.stand; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStand resets all changes to the "stand" edge.
func (m *PhysicalTestDataMutation) ResetStand() {
	m.stand = nil
	m.clearedstand = false
}

// Where appends a list predicates to the PhysicalTestDataMutation builder.
func (m *PhysicalTestDataMutation) Where(ps ...predicate.PhysicalTestData) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PhysicalTestDataMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PhysicalTestDataMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PhysicalTestData, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PhysicalTestDataMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PhysicalTestDataMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PhysicalTestData).
func (m *PhysicalTestDataMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PhysicalTestDataMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, physicaltestdata.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, physicaltestdata.FieldUpdatedAt)
	}
	if m.value != nil {
		fields = append(fields, physicaltestdata.FieldValue)
	}
	if m.unit != nil {
		fields = append(fields, physicaltestdata.FieldUnit)
	}
	if m.description != nil {
		fields = append(fields, physicaltestdata.FieldDescription)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PhysicalTestDataMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case physicaltestdata.FieldCreatedAt:
		return m.CreatedAt()
	case physicaltestdata.FieldUpdatedAt:
		return m.UpdatedAt()
	case physicaltestdata.FieldValue:
		return m.Value()
	case physicaltestdata.FieldUnit:
		return m.Unit()
	case physicaltestdata.FieldDescription:
		return m.Description()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PhysicalTestDataMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case physicaltestdata.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case physicaltestdata.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case physicaltestdata.FieldValue:
		return m.OldValue(ctx)
	case physicaltestdata.FieldUnit:
		return m.OldUnit(ctx)
	case physicaltestdata.FieldDescription:
		return m.OldDescription(ctx)
	}
	return nil, fmt.Errorf("unknown PhysicalTestData field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PhysicalTestDataMutation) SetField(name string, value ent.Value) error {
	switch name {
	case physicaltestdata.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case physicaltestdata.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case physicaltestdata.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case physicaltestdata.FieldUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnit(v)
		return nil
	case physicaltestdata.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	}
	return fmt.Errorf("unknown PhysicalTestData field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PhysicalTestDataMutation) AddedFields() []string {
	var fields []string
	if m.addvalue != nil {
		fields = append(fields, physicaltestdata.FieldValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PhysicalTestDataMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case physicaltestdata.FieldValue:
		return m.AddedValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PhysicalTestDataMutation) AddField(name string, value ent.Value) error {
	switch name {
	case physicaltestdata.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValue(v)
		return nil
	}
	return fmt.Errorf("unknown PhysicalTestData numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PhysicalTestDataMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PhysicalTestDataMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PhysicalTestDataMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PhysicalTestData nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PhysicalTestDataMutation) ResetField(name string) error {
	switch name {
	case physicaltestdata.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case physicaltestdata.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case physicaltestdata.FieldValue:
		m.ResetValue()
		return nil
	case physicaltestdata.FieldUnit:
		m.ResetUnit()
		return nil
	case physicaltestdata.FieldDescription:
		m.ResetDescription()
		return nil
	}
	return fmt.Errorf("unknown PhysicalTestData field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PhysicalTestDataMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.stand != nil {
		edges = append(edges, physicaltestdata.EdgeStand)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PhysicalTestDataMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case physicaltestdata.EdgeStand:
		if id := m.stand; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PhysicalTestDataMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PhysicalTestDataMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PhysicalTestDataMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstand {
		edges = append(edges, physicaltestdata.EdgeStand)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PhysicalTestDataMutation) EdgeCleared(name string) bool {
	switch name {
	case physicaltestdata.EdgeStand:
		return m.clearedstand
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PhysicalTestDataMutation) ClearEdge(name string) error {
	switch name {
	case physicaltestdata.EdgeStand:
		m.ClearStand()
		return nil
	}
	return fmt.Errorf("unknown PhysicalTestData unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PhysicalTestDataMutation) ResetEdge(name string) error {
	switch name {
	case physicaltestdata.EdgeStand:
		m.ResetStand()
		return nil
	}
	return fmt.Errorf("unknown PhysicalTestData edge %s", name)
}

// SatelliteMutation represents an operation that mutates the Satellite nodes in the graph.
type SatelliteMutation struct {
	config
	op                              Op
	typ                             string
	id                              *int
	created_at                      *time.Time
	updated_at                      *time.Time
	name                            *string
	_type                           *string
	clearedFields                   map[string]struct{}
	electronics                     map[int]struct{}
	removedelectronics              map[int]struct{}
	clearedelectronics              bool
	calendar_stages                 map[int]struct{}
	removedcalendar_stages          map[int]struct{}
	clearedcalendar_stages          bool
	technical_specifications        map[int]struct{}
	removedtechnical_specifications map[int]struct{}
	clearedtechnical_specifications bool
	op_characteristics              map[int]struct{}
	removedop_characteristics       map[int]struct{}
	clearedop_characteristics       bool
	stands                          map[int]struct{}
	removedstands                   map[int]struct{}
	clearedstands                   bool
	done                            bool
	oldValue                        func(context.Context) (*Satellite, error)
	predicates                      []predicate.Satellite
}

var _ ent.Mutation = (*SatelliteMutation)(nil)

// satelliteOption allows management of the mutation configuration using functional options.
type satelliteOption func(*SatelliteMutation)

// newSatelliteMutation creates new mutation for the Satellite entity.
func newSatelliteMutation(c config, op Op, opts ...satelliteOption) *SatelliteMutation {
	m := &SatelliteMutation{
		config:        c,
		op:            op,
		typ:           TypeSatellite,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSatelliteID sets the ID field of the mutation.
func withSatelliteID(id int) satelliteOption {
	return func(m *SatelliteMutation) {
		var (
			err   error
			once  sync.Once
			value *Satellite
		)
		m.oldValue = func(ctx context.Context) (*Satellite, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Satellite.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSatellite sets the old Satellite of the mutation.
func withSatellite(node *Satellite) satelliteOption {
	return func(m *SatelliteMutation) {
		m.oldValue = func(context.Context) (*Satellite, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SatelliteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SatelliteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SatelliteMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SatelliteMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Satellite.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SatelliteMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SatelliteMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Satellite entity.
// If the Satellite object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SatelliteMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SatelliteMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SatelliteMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SatelliteMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Satellite entity.
// If the Satellite object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SatelliteMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SatelliteMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *SatelliteMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SatelliteMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Satellite entity.
// If the Satellite object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SatelliteMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SatelliteMutation) ResetName() {
	m.name = nil
}

// SetType sets the "type" field.
func (m *SatelliteMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *SatelliteMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Satellite entity.
// If the Satellite object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SatelliteMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *SatelliteMutation) ResetType() {
	m._type = nil
}

// AddElectronicIDs adds the "electronics" edge to the Electronics entity by ids.
func (m *SatelliteMutation) AddElectronicIDs(ids ...int) {
	if m.electronics == nil {
		m.electronics = make(map[int]struct{})
	}
	for i := range ids {
		m.electronics[ids[i]] = struct{}{}
	}
}

// ClearElectronics clears the "electronics" edge to the Electronics entity.
func (m *SatelliteMutation) ClearElectronics() {
	m.clearedelectronics = true
}

// ElectronicsCleared reports if the "electronics" edge to the Electronics entity was cleared.
func (m *SatelliteMutation) ElectronicsCleared() bool {
	return m.clearedelectronics
}

// RemoveElectronicIDs removes the "electronics" edge to the Electronics entity by IDs.
func (m *SatelliteMutation) RemoveElectronicIDs(ids ...int) {
	if m.removedelectronics == nil {
		m.removedelectronics = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.electronics, ids[i])
		m.removedelectronics[ids[i]] = struct{}{}
	}
}

// RemovedElectronics returns the removed IDs of the "electronics" edge to the Electronics entity.
func (m *SatelliteMutation) RemovedElectronicsIDs() (ids []int) {
	for id := range m.removedelectronics {
		ids = append(ids, id)
	}
	return
}

// ElectronicsIDs returns the "electronics" edge IDs in the mutation.
func (m *SatelliteMutation) ElectronicsIDs() (ids []int) {
	for id := range m.electronics {
		ids = append(ids, id)
	}
	return
}

// ResetElectronics resets all changes to the "electronics" edge.
func (m *SatelliteMutation) ResetElectronics() {
	m.electronics = nil
	m.clearedelectronics = false
	m.removedelectronics = nil
}

// AddCalendarStageIDs adds the "calendar_stages" edge to the CalendarStage entity by ids.
func (m *SatelliteMutation) AddCalendarStageIDs(ids ...int) {
	if m.calendar_stages == nil {
		m.calendar_stages = make(map[int]struct{})
	}
	for i := range ids {
		m.calendar_stages[ids[i]] = struct{}{}
	}
}

// ClearCalendarStages clears the "calendar_stages" edge to the CalendarStage entity.
func (m *SatelliteMutation) ClearCalendarStages() {
	m.clearedcalendar_stages = true
}

// CalendarStagesCleared reports if the "calendar_stages" edge to the CalendarStage entity was cleared.
func (m *SatelliteMutation) CalendarStagesCleared() bool {
	return m.clearedcalendar_stages
}

// RemoveCalendarStageIDs removes the "calendar_stages" edge to the CalendarStage entity by IDs.
func (m *SatelliteMutation) RemoveCalendarStageIDs(ids ...int) {
	if m.removedcalendar_stages == nil {
		m.removedcalendar_stages = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.calendar_stages, ids[i])
		m.removedcalendar_stages[ids[i]] = struct{}{}
	}
}

// RemovedCalendarStages returns the removed IDs of the "calendar_stages" edge to the CalendarStage entity.
func (m *SatelliteMutation) RemovedCalendarStagesIDs() (ids []int) {
	for id := range m.removedcalendar_stages {
		ids = append(ids, id)
	}
	return
}

// CalendarStagesIDs returns the "calendar_stages" edge IDs in the mutation.
func (m *SatelliteMutation) CalendarStagesIDs() (ids []int) {
	for id := range m.calendar_stages {
		ids = append(ids, id)
	}
	return
}

// ResetCalendarStages resets all changes to the "calendar_stages" edge.
func (m *SatelliteMutation) ResetCalendarStages() {
	m.calendar_stages = nil
	m.clearedcalendar_stages = false
	m.removedcalendar_stages = nil
}

// AddTechnicalSpecificationIDs adds the "technical_specifications" edge to the TechnicalSpecification entity by ids.
func (m *SatelliteMutation) AddTechnicalSpecificationIDs(ids ...int) {
	if m.technical_specifications == nil {
		m.technical_specifications = make(map[int]struct{})
	}
	for i := range ids {
		m.technical_specifications[ids[i]] = struct{}{}
	}
}

// ClearTechnicalSpecifications clears the "technical_specifications" edge to the TechnicalSpecification entity.
func (m *SatelliteMutation) ClearTechnicalSpecifications() {
	m.clearedtechnical_specifications = true
}

// TechnicalSpecificationsCleared reports if the "technical_specifications" edge to the TechnicalSpecification entity was cleared.
func (m *SatelliteMutation) TechnicalSpecificationsCleared() bool {
	return m.clearedtechnical_specifications
}

// RemoveTechnicalSpecificationIDs removes the "technical_specifications" edge to the TechnicalSpecification entity by IDs.
func (m *SatelliteMutation) RemoveTechnicalSpecificationIDs(ids ...int) {
	if m.removedtechnical_specifications == nil {
		m.removedtechnical_specifications = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.technical_specifications, ids[i])
		m.removedtechnical_specifications[ids[i]] = struct{}{}
	}
}

// RemovedTechnicalSpecifications returns the removed IDs of the "technical_specifications" edge to the TechnicalSpecification entity.
func (m *SatelliteMutation) RemovedTechnicalSpecificationsIDs() (ids []int) {
	for id := range m.removedtechnical_specifications {
		ids = append(ids, id)
	}
	return
}

// TechnicalSpecificationsIDs returns the "technical_specifications" edge IDs in the mutation.
func (m *SatelliteMutation) TechnicalSpecificationsIDs() (ids []int) {
	for id := range m.technical_specifications {
		ids = append(ids, id)
	}
	return
}

// ResetTechnicalSpecifications resets all changes to the "technical_specifications" edge.
func (m *SatelliteMutation) ResetTechnicalSpecifications() {
	m.technical_specifications = nil
	m.clearedtechnical_specifications = false
	m.removedtechnical_specifications = nil
}

// AddOpCharacteristicIDs adds the "op_characteristics" edge to the SatelliteOpCharacteristic entity by ids.
func (m *SatelliteMutation) AddOpCharacteristicIDs(ids ...int) {
	if m.op_characteristics == nil {
		m.op_characteristics = make(map[int]struct{})
	}
	for i := range ids {
		m.op_characteristics[ids[i]] = struct{}{}
	}
}

// ClearOpCharacteristics clears the "op_characteristics" edge to the SatelliteOpCharacteristic entity.
func (m *SatelliteMutation) ClearOpCharacteristics() {
	m.clearedop_characteristics = true
}

// OpCharacteristicsCleared reports if the "op_characteristics" edge to the SatelliteOpCharacteristic entity was cleared.
func (m *SatelliteMutation) OpCharacteristicsCleared() bool {
	return m.clearedop_characteristics
}

// RemoveOpCharacteristicIDs removes the "op_characteristics" edge to the SatelliteOpCharacteristic entity by IDs.
func (m *SatelliteMutation) RemoveOpCharacteristicIDs(ids ...int) {
	if m.removedop_characteristics == nil {
		m.removedop_characteristics = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.op_characteristics, ids[i])
		m.removedop_characteristics[ids[i]] = struct{}{}
	}
}

// RemovedOpCharacteristics returns the removed IDs of the "op_characteristics" edge to the SatelliteOpCharacteristic entity.
func (m *SatelliteMutation) RemovedOpCharacteristicsIDs() (ids []int) {
	for id := range m.removedop_characteristics {
		ids = append(ids, id)
	}
	return
}

// OpCharacteristicsIDs returns the "op_characteristics" edge IDs in the mutation.
func (m *SatelliteMutation) OpCharacteristicsIDs() (ids []int) {
	for id := range m.op_characteristics {
		ids = append(ids, id)
	}
	return
}

// ResetOpCharacteristics resets all changes to the "op_characteristics" edge.
func (m *SatelliteMutation) ResetOpCharacteristics() {
	m.op_characteristics = nil
	m.clearedop_characteristics = false
	m.removedop_characteristics = nil
}

// AddStandIDs adds the "stands" edge to the Stand entity by ids.
func (m *SatelliteMutation) AddStandIDs(ids ...int) {
	if m.stands == nil {
		m.stands = make(map[int]struct{})
	}
	for i := range ids {
		m.stands[ids[i]] = struct{}{}
	}
}

// ClearStands clears the "stands" edge to the Stand entity.
func (m *SatelliteMutation) ClearStands() {
	m.clearedstands = true
}

// StandsCleared reports if the "stands" edge to the Stand entity was cleared.
func (m *SatelliteMutation) StandsCleared() bool {
	return m.clearedstands
}

// RemoveStandIDs removes the "stands" edge to the Stand entity by IDs.
func (m *SatelliteMutation) RemoveStandIDs(ids ...int) {
	if m.removedstands == nil {
		m.removedstands = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.stands, ids[i])
		m.removedstands[ids[i]] = struct{}{}
	}
}

// RemovedStands returns the removed IDs of the "stands" edge to the Stand entity.
func (m *SatelliteMutation) RemovedStandsIDs() (ids []int) {
	for id := range m.removedstands {
		ids = append(ids, id)
	}
	return
}

// StandsIDs returns the "stands" edge IDs in the mutation.
func (m *SatelliteMutation) StandsIDs() (ids []int) {
	for id := range m.stands {
		ids = append(ids, id)
	}
	return
}

// ResetStands resets all changes to the "stands" edge.
func (m *SatelliteMutation) ResetStands() {
	m.stands = nil
	m.clearedstands = false
	m.removedstands = nil
}

// Where appends a list predicates to the SatelliteMutation builder.
func (m *SatelliteMutation) Where(ps ...predicate.Satellite) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SatelliteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SatelliteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Satellite, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SatelliteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SatelliteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Satellite).
func (m *SatelliteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SatelliteMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, satellite.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, satellite.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, satellite.FieldName)
	}
	if m._type != nil {
		fields = append(fields, satellite.FieldType)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SatelliteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case satellite.FieldCreatedAt:
		return m.CreatedAt()
	case satellite.FieldUpdatedAt:
		return m.UpdatedAt()
	case satellite.FieldName:
		return m.Name()
	case satellite.FieldType:
		return m.GetType()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SatelliteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case satellite.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case satellite.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case satellite.FieldName:
		return m.OldName(ctx)
	case satellite.FieldType:
		return m.OldType(ctx)
	}
	return nil, fmt.Errorf("unknown Satellite field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SatelliteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case satellite.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case satellite.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case satellite.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case satellite.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	}
	return fmt.Errorf("unknown Satellite field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SatelliteMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SatelliteMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SatelliteMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Satellite numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SatelliteMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SatelliteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SatelliteMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Satellite nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SatelliteMutation) ResetField(name string) error {
	switch name {
	case satellite.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case satellite.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case satellite.FieldName:
		m.ResetName()
		return nil
	case satellite.FieldType:
		m.ResetType()
		return nil
	}
	return fmt.Errorf("unknown Satellite field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SatelliteMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.electronics != nil {
		edges = append(edges, satellite.EdgeElectronics)
	}
	if m.calendar_stages != nil {
		edges = append(edges, satellite.EdgeCalendarStages)
	}
	if m.technical_specifications != nil {
		edges = append(edges, satellite.EdgeTechnicalSpecifications)
	}
	if m.op_characteristics != nil {
		edges = append(edges, satellite.EdgeOpCharacteristics)
	}
	if m.stands != nil {
		edges = append(edges, satellite.EdgeStands)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SatelliteMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case satellite.EdgeElectronics:
		ids := make([]ent.Value, 0, len(m.electronics))
		for id := range m.electronics {
			ids = append(ids, id)
		}
		return ids
	case satellite.EdgeCalendarStages:
		ids := make([]ent.Value, 0, len(m.calendar_stages))
		for id := range m.calendar_stages {
			ids = append(ids, id)
		}
		return ids
	case satellite.EdgeTechnicalSpecifications:
		ids := make([]ent.Value, 0, len(m.technical_specifications))
		for id := range m.technical_specifications {
			ids = append(ids, id)
		}
		return ids
	case satellite.EdgeOpCharacteristics:
		ids := make([]ent.Value, 0, len(m.op_characteristics))
		for id := range m.op_characteristics {
			ids = append(ids, id)
		}
		return ids
	case satellite.EdgeStands:
		ids := make([]ent.Value, 0, len(m.stands))
		for id := range m.stands {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SatelliteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedelectronics != nil {
		edges = append(edges, satellite.EdgeElectronics)
	}
	if m.removedcalendar_stages != nil {
		edges = append(edges, satellite.EdgeCalendarStages)
	}
	if m.removedtechnical_specifications != nil {
		edges = append(edges, satellite.EdgeTechnicalSpecifications)
	}
	if m.removedop_characteristics != nil {
		edges = append(edges, satellite.EdgeOpCharacteristics)
	}
	if m.removedstands != nil {
		edges = append(edges, satellite.EdgeStands)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SatelliteMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case satellite.EdgeElectronics:
		ids := make([]ent.Value, 0, len(m.removedelectronics))
		for id := range m.removedelectronics {
			ids = append(ids, id)
		}
		return ids
	case satellite.EdgeCalendarStages:
		ids := make([]ent.Value, 0, len(m.removedcalendar_stages))
		for id := range m.removedcalendar_stages {
			ids = append(ids, id)
		}
		return ids
	case satellite.EdgeTechnicalSpecifications:
		ids := make([]ent.Value, 0, len(m.removedtechnical_specifications))
		for id := range m.removedtechnical_specifications {
			ids = append(ids, id)
		}
		return ids
	case satellite.EdgeOpCharacteristics:
		ids := make([]ent.Value, 0, len(m.removedop_characteristics))
		for id := range m.removedop_characteristics {
			ids = append(ids, id)
		}
		return ids
	case satellite.EdgeStands:
		ids := make([]ent.Value, 0, len(m.removedstands))
		for id := range m.removedstands {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SatelliteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedelectronics {
		edges = append(edges, satellite.EdgeElectronics)
	}
	if m.clearedcalendar_stages {
		edges = append(edges, satellite.EdgeCalendarStages)
	}
	if m.clearedtechnical_specifications {
		edges = append(edges, satellite.EdgeTechnicalSpecifications)
	}
	if m.clearedop_characteristics {
		edges = append(edges, satellite.EdgeOpCharacteristics)
	}
	if m.clearedstands {
		edges = append(edges, satellite.EdgeStands)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SatelliteMutation) EdgeCleared(name string) bool {
	switch name {
	case satellite.EdgeElectronics:
		return m.clearedelectronics
	case satellite.EdgeCalendarStages:
		return m.clearedcalendar_stages
	case satellite.EdgeTechnicalSpecifications:
		return m.clearedtechnical_specifications
	case satellite.EdgeOpCharacteristics:
		return m.clearedop_characteristics
	case satellite.EdgeStands:
		return m.clearedstands
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SatelliteMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Satellite unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SatelliteMutation) ResetEdge(name string) error {
	switch name {
	case satellite.EdgeElectronics:
		m.ResetElectronics()
		return nil
	case satellite.EdgeCalendarStages:
		m.ResetCalendarStages()
		return nil
	case satellite.EdgeTechnicalSpecifications:
		m.ResetTechnicalSpecifications()
		return nil
	case satellite.EdgeOpCharacteristics:
		m.ResetOpCharacteristics()
		return nil
	case satellite.EdgeStands:
		m.ResetStands()
		return nil
	}
	return fmt.Errorf("unknown Satellite edge %s", name)
}

// SatelliteOpCharacteristicMutation represents an operation that mutates the SatelliteOpCharacteristic nodes in the graph.
type SatelliteOpCharacteristicMutation struct {
	config
	op               Op
	typ              string
	id               *int
	created_at       *time.Time
	updated_at       *time.Time
	parameter_name   *string
	value            *float64
	addvalue         *float64
	unit             *string
	clearedFields    map[string]struct{}
	satellite        *int
	clearedsatellite bool
	done             bool
	oldValue         func(context.Context) (*SatelliteOpCharacteristic, error)
	predicates       []predicate.SatelliteOpCharacteristic
}

var _ ent.Mutation = (*SatelliteOpCharacteristicMutation)(nil)

// satelliteopcharacteristicOption allows management of the mutation configuration using functional options.
type satelliteopcharacteristicOption func(*SatelliteOpCharacteristicMutation)

// newSatelliteOpCharacteristicMutation creates new mutation for the SatelliteOpCharacteristic entity.
func newSatelliteOpCharacteristicMutation(c config, op Op, opts ...satelliteopcharacteristicOption) *SatelliteOpCharacteristicMutation {
	m := &SatelliteOpCharacteristicMutation{
		config:        c,
		op:            op,
		typ:           TypeSatelliteOpCharacteristic,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSatelliteOpCharacteristicID sets the ID field of the mutation.
func withSatelliteOpCharacteristicID(id int) satelliteopcharacteristicOption {
	return func(m *SatelliteOpCharacteristicMutation) {
		var (
			err   error
			once  sync.Once
			value *SatelliteOpCharacteristic
		)
		m.oldValue = func(ctx context.Context) (*SatelliteOpCharacteristic, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SatelliteOpCharacteristic.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSatelliteOpCharacteristic sets the old SatelliteOpCharacteristic of the mutation.
func withSatelliteOpCharacteristic(node *SatelliteOpCharacteristic) satelliteopcharacteristicOption {
	return func(m *SatelliteOpCharacteristicMutation) {
		m.oldValue = func(context.Context) (*SatelliteOpCharacteristic, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SatelliteOpCharacteristicMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SatelliteOpCharacteristicMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SatelliteOpCharacteristicMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SatelliteOpCharacteristicMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SatelliteOpCharacteristic.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SatelliteOpCharacteristicMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SatelliteOpCharacteristicMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SatelliteOpCharacteristic entity.
// If the SatelliteOpCharacteristic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SatelliteOpCharacteristicMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SatelliteOpCharacteristicMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SatelliteOpCharacteristicMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SatelliteOpCharacteristicMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SatelliteOpCharacteristic entity.
// If the SatelliteOpCharacteristic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SatelliteOpCharacteristicMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SatelliteOpCharacteristicMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetParameterName sets the "parameter_name" field.
func (m *SatelliteOpCharacteristicMutation) SetParameterName(s string) {
	m.parameter_name = &s
}

// ParameterName returns the value of the "parameter_name" field in the mutation.
func (m *SatelliteOpCharacteristicMutation) ParameterName() (r string, exists bool) {
	v := m.parameter_name
	if v == nil {
		return
	}
	return *v, true
}

// OldParameterName returns the old "parameter_name" field's value of the SatelliteOpCharacteristic entity.
// If the SatelliteOpCharacteristic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SatelliteOpCharacteristicMutation) OldParameterName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParameterName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParameterName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParameterName: %w", err)
	}
	return oldValue.ParameterName, nil
}

// ResetParameterName resets all changes to the "parameter_name" field.
func (m *SatelliteOpCharacteristicMutation) ResetParameterName() {
	m.parameter_name = nil
}

// SetValue sets the "value" field.
func (m *SatelliteOpCharacteristicMutation) SetValue(f float64) {
	m.value = &f
	m.addvalue = nil
}

// Value returns the value of the "value" field in the mutation.
func (m *SatelliteOpCharacteristicMutation) Value() (r float64, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the SatelliteOpCharacteristic entity.
// If the SatelliteOpCharacteristic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SatelliteOpCharacteristicMutation) OldValue(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// AddValue adds f to the "value" field.
func (m *SatelliteOpCharacteristicMutation) AddValue(f float64) {
	if m.addvalue != nil {
		*m.addvalue += f
	} else {
		m.addvalue = &f
	}
}

// AddedValue returns the value that was added to the "value" field in this mutation.
func (m *SatelliteOpCharacteristicMutation) AddedValue() (r float64, exists bool) {
	v := m.addvalue
	if v == nil {
		return
	}
	return *v, true
}

// ResetValue resets all changes to the "value" field.
func (m *SatelliteOpCharacteristicMutation) ResetValue() {
	m.value = nil
	m.addvalue = nil
}

// SetUnit sets the "unit" field.
func (m *SatelliteOpCharacteristicMutation) SetUnit(s string) {
	m.unit = &s
}

// Unit returns the value of the "unit" field in the mutation.
func (m *SatelliteOpCharacteristicMutation) Unit() (r string, exists bool) {
	v := m.unit
	if v == nil {
		return
	}
	return *v, true
}

// OldUnit returns the old "unit" field's value of the SatelliteOpCharacteristic entity.
// If the SatelliteOpCharacteristic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SatelliteOpCharacteristicMutation) OldUnit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnit: %w", err)
	}
	return oldValue.Unit, nil
}

// ResetUnit resets all changes to the "unit" field.
func (m *SatelliteOpCharacteristicMutation) ResetUnit() {
	m.unit = nil
}

// SetSatelliteID sets the "satellite" edge to the Satellite entity by id.
func (m *SatelliteOpCharacteristicMutation) SetSatelliteID(id int) {
	m.satellite = &id
}

// ClearSatellite clears the "satellite" edge to the Satellite entity.
func (m *SatelliteOpCharacteristicMutation) ClearSatellite() {
	m.clearedsatellite = true
}

// SatelliteCleared reports if the "satellite" edge to the Satellite entity was cleared.
func (m *SatelliteOpCharacteristicMutation) SatelliteCleared() bool {
	return m.clearedsatellite
}

// SatelliteID returns the "satellite" edge ID in the mutation.
func (m *SatelliteOpCharacteristicMutation) SatelliteID() (id int, exists bool) {
	if m.satellite != nil {
		return *m.satellite, true
	}
	return
}

// SatelliteIDs returns the "satellite" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SatelliteID instead. It exists only for internal usage by the builders.
func (m *SatelliteOpCharacteristicMutation) SatelliteIDs() (ids []int) {
	if id := m.satellite; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSatellite resets all changes to the "satellite" edge.
func (m *SatelliteOpCharacteristicMutation) ResetSatellite() {
	m.satellite = nil
	m.clearedsatellite = false
}

// Where appends a list predicates to the SatelliteOpCharacteristicMutation builder.
func (m *SatelliteOpCharacteristicMutation) Where(ps ...predicate.SatelliteOpCharacteristic) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SatelliteOpCharacteristicMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SatelliteOpCharacteristicMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SatelliteOpCharacteristic, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SatelliteOpCharacteristicMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SatelliteOpCharacteristicMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SatelliteOpCharacteristic).
func (m *SatelliteOpCharacteristicMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SatelliteOpCharacteristicMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, satelliteopcharacteristic.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, satelliteopcharacteristic.FieldUpdatedAt)
	}
	if m.parameter_name != nil {
		fields = append(fields, satelliteopcharacteristic.FieldParameterName)
	}
	if m.value != nil {
		fields = append(fields, satelliteopcharacteristic.FieldValue)
	}
	if m.unit != nil {
		fields = append(fields, satelliteopcharacteristic.FieldUnit)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SatelliteOpCharacteristicMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case satelliteopcharacteristic.FieldCreatedAt:
		return m.CreatedAt()
	case satelliteopcharacteristic.FieldUpdatedAt:
		return m.UpdatedAt()
	case satelliteopcharacteristic.FieldParameterName:
		return m.ParameterName()
	case satelliteopcharacteristic.FieldValue:
		return m.Value()
	case satelliteopcharacteristic.FieldUnit:
		return m.Unit()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SatelliteOpCharacteristicMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case satelliteopcharacteristic.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case satelliteopcharacteristic.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case satelliteopcharacteristic.FieldParameterName:
		return m.OldParameterName(ctx)
	case satelliteopcharacteristic.FieldValue:
		return m.OldValue(ctx)
	case satelliteopcharacteristic.FieldUnit:
		return m.OldUnit(ctx)
	}
	return nil, fmt.Errorf("unknown SatelliteOpCharacteristic field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SatelliteOpCharacteristicMutation) SetField(name string, value ent.Value) error {
	switch name {
	case satelliteopcharacteristic.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case satelliteopcharacteristic.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case satelliteopcharacteristic.FieldParameterName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParameterName(v)
		return nil
	case satelliteopcharacteristic.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case satelliteopcharacteristic.FieldUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnit(v)
		return nil
	}
	return fmt.Errorf("unknown SatelliteOpCharacteristic field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SatelliteOpCharacteristicMutation) AddedFields() []string {
	var fields []string
	if m.addvalue != nil {
		fields = append(fields, satelliteopcharacteristic.FieldValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SatelliteOpCharacteristicMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case satelliteopcharacteristic.FieldValue:
		return m.AddedValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SatelliteOpCharacteristicMutation) AddField(name string, value ent.Value) error {
	switch name {
	case satelliteopcharacteristic.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValue(v)
		return nil
	}
	return fmt.Errorf("unknown SatelliteOpCharacteristic numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SatelliteOpCharacteristicMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SatelliteOpCharacteristicMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SatelliteOpCharacteristicMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SatelliteOpCharacteristic nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SatelliteOpCharacteristicMutation) ResetField(name string) error {
	switch name {
	case satelliteopcharacteristic.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case satelliteopcharacteristic.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case satelliteopcharacteristic.FieldParameterName:
		m.ResetParameterName()
		return nil
	case satelliteopcharacteristic.FieldValue:
		m.ResetValue()
		return nil
	case satelliteopcharacteristic.FieldUnit:
		m.ResetUnit()
		return nil
	}
	return fmt.Errorf("unknown SatelliteOpCharacteristic field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SatelliteOpCharacteristicMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.satellite != nil {
		edges = append(edges, satelliteopcharacteristic.EdgeSatellite)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SatelliteOpCharacteristicMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case satelliteopcharacteristic.EdgeSatellite:
		if id := m.satellite; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SatelliteOpCharacteristicMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SatelliteOpCharacteristicMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SatelliteOpCharacteristicMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsatellite {
		edges = append(edges, satelliteopcharacteristic.EdgeSatellite)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SatelliteOpCharacteristicMutation) EdgeCleared(name string) bool {
	switch name {
	case satelliteopcharacteristic.EdgeSatellite:
		return m.clearedsatellite
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SatelliteOpCharacteristicMutation) ClearEdge(name string) error {
	switch name {
	case satelliteopcharacteristic.EdgeSatellite:
		m.ClearSatellite()
		return nil
	}
	return fmt.Errorf("unknown SatelliteOpCharacteristic unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SatelliteOpCharacteristicMutation) ResetEdge(name string) error {
	switch name {
	case satelliteopcharacteristic.EdgeSatellite:
		m.ResetSatellite()
		return nil
	}
	return fmt.Errorf("unknown SatelliteOpCharacteristic edge %s", name)
}

// SensorMutation represents an operation that mutates the Sensor nodes in the graph.
type SensorMutation struct {
	config
	op            Op
	typ           string
	id            *int
	created_at    *time.Time
	updated_at    *time.Time
	location      *string
	value         *float64
	addvalue      *float64
	unit          *string
	description   *string
	clearedFields map[string]struct{}
	stand         *int
	clearedstand  bool
	done          bool
	oldValue      func(context.Context) (*Sensor, error)
	predicates    []predicate.Sensor
}

var _ ent.Mutation = (*SensorMutation)(nil)

// sensorOption allows management of the mutation configuration using functional options.
type sensorOption func(*SensorMutation)

// newSensorMutation creates new mutation for the Sensor entity.
func newSensorMutation(c config, op Op, opts ...sensorOption) *SensorMutation {
	m := &SensorMutation{
		config:        c,
		op:            op,
		typ:           TypeSensor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSensorID sets the ID field of the mutation.
func withSensorID(id int) sensorOption {
	return func(m *SensorMutation) {
		var (
			err   error
			once  sync.Once
			value *Sensor
		)
		m.oldValue = func(ctx context.Context) (*Sensor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Sensor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSensor sets the old Sensor of the mutation.
func withSensor(node *Sensor) sensorOption {
	return func(m *SensorMutation) {
		m.oldValue = func(context.Context) (*Sensor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SensorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SensorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SensorMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SensorMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Sensor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SensorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SensorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Sensor entity.
// If the Sensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SensorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SensorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SensorMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SensorMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Sensor entity.
// If the Sensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SensorMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SensorMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetLocation sets the "location" field.
func (m *SensorMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *SensorMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the Sensor entity.
// If the Sensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SensorMutation) OldLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ResetLocation resets all changes to the "location" field.
func (m *SensorMutation) ResetLocation() {
	m.location = nil
}

// SetValue sets the "value" field.
func (m *SensorMutation) SetValue(f float64) {
	m.value = &f
	m.addvalue = nil
}

// Value returns the value of the "value" field in the mutation.
func (m *SensorMutation) Value() (r float64, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the Sensor entity.
// If the Sensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SensorMutation) OldValue(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// AddValue adds f to the "value" field.
func (m *SensorMutation) AddValue(f float64) {
	if m.addvalue != nil {
		*m.addvalue += f
	} else {
		m.addvalue = &f
	}
}

// AddedValue returns the value that was added to the "value" field in this mutation.
func (m *SensorMutation) AddedValue() (r float64, exists bool) {
	v := m.addvalue
	if v == nil {
		return
	}
	return *v, true
}

// ClearValue clears the value of the "value" field.
func (m *SensorMutation) ClearValue() {
	m.value = nil
	m.addvalue = nil
	m.clearedFields[sensor.FieldValue] = struct{}{}
}

// ValueCleared returns if the "value" field was cleared in this mutation.
func (m *SensorMutation) ValueCleared() bool {
	_, ok := m.clearedFields[sensor.FieldValue]
	return ok
}

// ResetValue resets all changes to the "value" field.
func (m *SensorMutation) ResetValue() {
	m.value = nil
	m.addvalue = nil
	delete(m.clearedFields, sensor.FieldValue)
}

// SetUnit sets the "unit" field.
func (m *SensorMutation) SetUnit(s string) {
	m.unit = &s
}

// Unit returns the value of the "unit" field in the mutation.
func (m *SensorMutation) Unit() (r string, exists bool) {
	v := m.unit
	if v == nil {
		return
	}
	return *v, true
}

// OldUnit returns the old "unit" field's value of the Sensor entity.
// If the Sensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SensorMutation) OldUnit(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnit: %w", err)
	}
	return oldValue.Unit, nil
}

// ClearUnit clears the value of the "unit" field.
func (m *SensorMutation) ClearUnit() {
	m.unit = nil
	m.clearedFields[sensor.FieldUnit] = struct{}{}
}

// UnitCleared returns if the "unit" field was cleared in this mutation.
func (m *SensorMutation) UnitCleared() bool {
	_, ok := m.clearedFields[sensor.FieldUnit]
	return ok
}

// ResetUnit resets all changes to the "unit" field.
func (m *SensorMutation) ResetUnit() {
	m.unit = nil
	delete(m.clearedFields, sensor.FieldUnit)
}

// SetDescription sets the "description" field.
func (m *SensorMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SensorMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Sensor entity.
// If the Sensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SensorMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *SensorMutation) ResetDescription() {
	m.description = nil
}

// SetStandID sets the "stand" edge to the Stand entity by id.
func (m *SensorMutation) SetStandID(id int) {
	m.stand = &id
}

// ClearStand clears the "stand" edge to the Stand entity.
func (m *SensorMutation) ClearStand() {
	m.clearedstand = true
}

// StandCleared reports if the "stand" edge to the Stand entity was cleared.
func (m *SensorMutation) StandCleared() bool {
	return m.clearedstand
}

// StandID returns the "stand" edge ID in the mutation.
func (m *SensorMutation) StandID() (id int, exists bool) {
	if m.stand != nil {
		return *m.stand, true
	}
	return
}

// StandIDs returns the "stand" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StandID instead. It exists only for internal usage by the builders.
func (m *SensorMutation) StandIDs() (ids []int) {
	if id := m.stand; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStand resets all changes to the "stand" edge.
func (m *SensorMutation) ResetStand() {
	m.stand = nil
	m.clearedstand = false
}

// Where appends a list predicates to the SensorMutation builder.
func (m *SensorMutation) Where(ps ...predicate.Sensor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SensorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SensorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Sensor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SensorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SensorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Sensor).
func (m *SensorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SensorMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, sensor.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, sensor.FieldUpdatedAt)
	}
	if m.location != nil {
		fields = append(fields, sensor.FieldLocation)
	}
	if m.value != nil {
		fields = append(fields, sensor.FieldValue)
	}
	if m.unit != nil {
		fields = append(fields, sensor.FieldUnit)
	}
	if m.description != nil {
		fields = append(fields, sensor.FieldDescription)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SensorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sensor.FieldCreatedAt:
		return m.CreatedAt()
	case sensor.FieldUpdatedAt:
		return m.UpdatedAt()
	case sensor.FieldLocation:
		return m.Location()
	case sensor.FieldValue:
		return m.Value()
	case sensor.FieldUnit:
		return m.Unit()
	case sensor.FieldDescription:
		return m.Description()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SensorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sensor.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case sensor.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case sensor.FieldLocation:
		return m.OldLocation(ctx)
	case sensor.FieldValue:
		return m.OldValue(ctx)
	case sensor.FieldUnit:
		return m.OldUnit(ctx)
	case sensor.FieldDescription:
		return m.OldDescription(ctx)
	}
	return nil, fmt.Errorf("unknown Sensor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SensorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sensor.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case sensor.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case sensor.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case sensor.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case sensor.FieldUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnit(v)
		return nil
	case sensor.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	}
	return fmt.Errorf("unknown Sensor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SensorMutation) AddedFields() []string {
	var fields []string
	if m.addvalue != nil {
		fields = append(fields, sensor.FieldValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SensorMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sensor.FieldValue:
		return m.AddedValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SensorMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sensor.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValue(v)
		return nil
	}
	return fmt.Errorf("unknown Sensor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SensorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sensor.FieldValue) {
		fields = append(fields, sensor.FieldValue)
	}
	if m.FieldCleared(sensor.FieldUnit) {
		fields = append(fields, sensor.FieldUnit)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SensorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SensorMutation) ClearField(name string) error {
	switch name {
	case sensor.FieldValue:
		m.ClearValue()
		return nil
	case sensor.FieldUnit:
		m.ClearUnit()
		return nil
	}
	return fmt.Errorf("unknown Sensor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SensorMutation) ResetField(name string) error {
	switch name {
	case sensor.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case sensor.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case sensor.FieldLocation:
		m.ResetLocation()
		return nil
	case sensor.FieldValue:
		m.ResetValue()
		return nil
	case sensor.FieldUnit:
		m.ResetUnit()
		return nil
	case sensor.FieldDescription:
		m.ResetDescription()
		return nil
	}
	return fmt.Errorf("unknown Sensor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SensorMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.stand != nil {
		edges = append(edges, sensor.EdgeStand)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SensorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sensor.EdgeStand:
		if id := m.stand; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SensorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SensorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SensorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstand {
		edges = append(edges, sensor.EdgeStand)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SensorMutation) EdgeCleared(name string) bool {
	switch name {
	case sensor.EdgeStand:
		return m.clearedstand
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SensorMutation) ClearEdge(name string) error {
	switch name {
	case sensor.EdgeStand:
		m.ClearStand()
		return nil
	}
	return fmt.Errorf("unknown Sensor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SensorMutation) ResetEdge(name string) error {
	switch name {
	case sensor.EdgeStand:
		m.ResetStand()
		return nil
	}
	return fmt.Errorf("unknown Sensor edge %s", name)
}

// StandMutation represents an operation that mutates the Stand nodes in the graph.
type StandMutation struct {
	config
	op                                 Op
	typ                                string
	id                                 *int
	created_at                         *time.Time
	updated_at                         *time.Time
	name_of_stand                      *string
	type_of_stand                      *string
	clearedFields                      map[string]struct{}
	satellite                          *int
	clearedsatellite                   bool
	technical_specification            *int
	clearedtechnical_specification     bool
	sensors                            map[int]struct{}
	removedsensors                     map[int]struct{}
	clearedsensors                     bool
	hardware_requirements              map[int]struct{}
	removedhardware_requirements       map[int]struct{}
	clearedhardware_requirements       bool
	physical_test_data                 map[int]struct{}
	removedphysical_test_data          map[int]struct{}
	clearedphysical_test_data          bool
	material_op_characteristics        map[int]struct{}
	removedmaterial_op_characteristics map[int]struct{}
	clearedmaterial_op_characteristics bool
	done                               bool
	oldValue                           func(context.Context) (*Stand, error)
	predicates                         []predicate.Stand
}

var _ ent.Mutation = (*StandMutation)(nil)

// standOption allows management of the mutation configuration using functional options.
type standOption func(*StandMutation)

// newStandMutation creates new mutation for the Stand entity.
func newStandMutation(c config, op Op, opts ...standOption) *StandMutation {
	m := &StandMutation{
		config:        c,
		op:            op,
		typ:           TypeStand,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStandID sets the ID field of the mutation.
func withStandID(id int) standOption {
	return func(m *StandMutation) {
		var (
			err   error
			once  sync.Once
			value *Stand
		)
		m.oldValue = func(ctx context.Context) (*Stand, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Stand.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStand sets the old Stand of the mutation.
func withStand(node *Stand) standOption {
	return func(m *StandMutation) {
		m.oldValue = func(context.Context) (*Stand, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StandMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StandMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StandMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StandMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Stand.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *StandMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StandMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Stand entity.
// If the Stand object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StandMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StandMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StandMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Stand entity.
// If the Stand object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StandMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetNameOfStand sets the "name_of_stand" field.
func (m *StandMutation) SetNameOfStand(s string) {
	m.name_of_stand = &s
}

// NameOfStand returns the value of the "name_of_stand" field in the mutation.
func (m *StandMutation) NameOfStand() (r string, exists bool) {
	v := m.name_of_stand
	if v == nil {
		return
	}
	return *v, true
}

// OldNameOfStand returns the old "name_of_stand" field's value of the Stand entity.
// If the Stand object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandMutation) OldNameOfStand(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNameOfStand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNameOfStand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNameOfStand: %w", err)
	}
	return oldValue.NameOfStand, nil
}

// ResetNameOfStand resets all changes to the "name_of_stand" field.
func (m *StandMutation) ResetNameOfStand() {
	m.name_of_stand = nil
}

// SetTypeOfStand sets the "type_of_stand" field.
func (m *StandMutation) SetTypeOfStand(s string) {
	m.type_of_stand = &s
}

// TypeOfStand returns the value of the "type_of_stand" field in the mutation.
func (m *StandMutation) TypeOfStand() (r string, exists bool) {
	v := m.type_of_stand
	if v == nil {
		return
	}
	return *v, true
}

// OldTypeOfStand returns the old "type_of_stand" field's value of the Stand entity.
// If the Stand object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandMutation) OldTypeOfStand(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTypeOfStand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTypeOfStand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTypeOfStand: %w", err)
	}
	return oldValue.TypeOfStand, nil
}

// ResetTypeOfStand resets all changes to the "type_of_stand" field.
func (m *StandMutation) ResetTypeOfStand() {
	m.type_of_stand = nil
}

// SetSatelliteID sets the "satellite" edge to the Satellite entity by id.
func (m *StandMutation) SetSatelliteID(id int) {
	m.satellite = &id
}

// ClearSatellite clears the "satellite" edge to the Satellite entity.
func (m *StandMutation) ClearSatellite() {
	m.clearedsatellite = true
}

// SatelliteCleared reports if the "satellite" edge to the Satellite entity was cleared.
func (m *StandMutation) SatelliteCleared() bool {
	return m.clearedsatellite
}

// SatelliteID returns the "satellite" edge ID in the mutation.
func (m *StandMutation) SatelliteID() (id int, exists bool) {
	if m.satellite != nil {
		return *m.satellite, true
	}
	return
}

// SatelliteIDs returns the "satellite" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SatelliteID instead. It exists only for internal usage by the builders.
func (m *StandMutation) SatelliteIDs() (ids []int) {
	if id := m.satellite; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSatellite resets all changes to the "satellite" edge.
func (m *StandMutation) ResetSatellite() {
	m.satellite = nil
	m.clearedsatellite = false
}

// SetTechnicalSpecificationID sets the "technical_specification" edge to the TechnicalSpecification entity by id.
func (m *StandMutation) SetTechnicalSpecificationID(id int) {
	m.technical_specification = &id
}

// ClearTechnicalSpecification clears the "technical_specification" edge to the TechnicalSpecification entity.
func (m *StandMutation) ClearTechnicalSpecification() {
	m.clearedtechnical_specification = true
}

// TechnicalSpecificationCleared reports if the "technical_specification" edge to the TechnicalSpecification entity was cleared.
func (m *StandMutation) TechnicalSpecificationCleared() bool {
	return m.clearedtechnical_specification
}

// TechnicalSpecificationID returns the "technical_specification" edge ID in the mutation.
func (m *StandMutation) TechnicalSpecificationID() (id int, exists bool) {
	if m.technical_specification != nil {
		return *m.technical_specification, true
	}
	return
}

// TechnicalSpecificationIDs returns the "technical_specification" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TechnicalSpecificationID instead. It exists only for internal usage by the builders.
func (m *StandMutation) TechnicalSpecificationIDs() (ids []int) {
	if id := m.technical_specification; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTechnicalSpecification resets all changes to the "technical_specification" edge.
func (m *StandMutation) ResetTechnicalSpecification() {
	m.technical_specification = nil
	m.clearedtechnical_specification = false
}

// AddSensorIDs adds the "sensors" edge to the Sensor entity by ids.
func (m *StandMutation) AddSensorIDs(ids ...int) {
	if m.sensors == nil {
		m.sensors = make(map[int]struct{})
	}
	for i := range ids {
		m.sensors[ids[i]] = struct{}{}
	}
}

// ClearSensors clears the "sensors" edge to the Sensor entity.
func (m *StandMutation) ClearSensors() {
	m.clearedsensors = true
}

// SensorsCleared reports if the "sensors" edge to the Sensor entity was cleared.
func (m *StandMutation) SensorsCleared() bool {
	return m.clearedsensors
}

// RemoveSensorIDs removes the "sensors" edge to the Sensor entity by IDs.
func (m *StandMutation) RemoveSensorIDs(ids ...int) {
	if m.removedsensors == nil {
		m.removedsensors = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.sensors, ids[i])
		m.removedsensors[ids[i]] = struct{}{}
	}
}

// RemovedSensors returns the removed IDs of the "sensors" edge to the Sensor entity.
func (m *StandMutation) RemovedSensorsIDs() (ids []int) {
	for id := range m.removedsensors {
		ids = append(ids, id)
	}
	return
}

// SensorsIDs returns the "sensors" edge IDs in the mutation.
func (m *StandMutation) SensorsIDs() (ids []int) {
	for id := range m.sensors {
		ids = append(ids, id)
	}
	return
}

// ResetSensors resets all changes to the "sensors" edge.
func (m *StandMutation) ResetSensors() {
	m.sensors = nil
	m.clearedsensors = false
	m.removedsensors = nil
}

// AddHardwareRequirementIDs adds the "hardware_requirements" edge to the HardwareRequirement entity by ids.
func (m *StandMutation) AddHardwareRequirementIDs(ids ...int) {
	if m.hardware_requirements == nil {
		m.hardware_requirements = make(map[int]struct{})
	}
	for i := range ids {
		m.hardware_requirements[ids[i]] = struct{}{}
	}
}

// ClearHardwareRequirements clears the "hardware_requirements" edge to the HardwareRequirement entity.
func (m *StandMutation) ClearHardwareRequirements() {
	m.clearedhardware_requirements = true
}

// HardwareRequirementsCleared reports if the "hardware_requirements" edge to the HardwareRequirement entity was cleared.
func (m *StandMutation) HardwareRequirementsCleared() bool {
	return m.clearedhardware_requirements
}

// RemoveHardwareRequirementIDs removes the "hardware_requirements" edge to the HardwareRequirement entity by IDs.
func (m *StandMutation) RemoveHardwareRequirementIDs(ids ...int) {
	if m.removedhardware_requirements == nil {
		m.removedhardware_requirements = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.hardware_requirements, ids[i])
		m.removedhardware_requirements[ids[i]] = struct{}{}
	}
}

// RemovedHardwareRequirements returns the removed IDs of the "hardware_requirements" edge to the HardwareRequirement entity.
func (m *StandMutation) RemovedHardwareRequirementsIDs() (ids []int) {
	for id := range m.removedhardware_requirements {
		ids = append(ids, id)
	}
	return
}

// HardwareRequirementsIDs returns the "hardware_requirements" edge IDs in the mutation.
func (m *StandMutation) HardwareRequirementsIDs() (ids []int) {
	for id := range m.hardware_requirements {
		ids = append(ids, id)
	}
	return
}

// ResetHardwareRequirements resets all changes to the "hardware_requirements" edge.
func (m *StandMutation) ResetHardwareRequirements() {
	m.hardware_requirements = nil
	m.clearedhardware_requirements = false
	m.removedhardware_requirements = nil
}

// AddPhysicalTestDatumIDs adds the "physical_test_data" edge to the PhysicalTestData entity by ids.
func (m *StandMutation) AddPhysicalTestDatumIDs(ids ...int) {
	if m.physical_test_data == nil {
		m.physical_test_data = make(map[int]struct{})
	}
	for i := range ids {
		m.physical_test_data[ids[i]] = struct{}{}
	}
}

// ClearPhysicalTestData clears the "physical_test_data" edge to the PhysicalTestData entity.
func (m *StandMutation) ClearPhysicalTestData() {
	m.clearedphysical_test_data = true
}

// PhysicalTestDataCleared reports if the "physical_test_data" edge to the PhysicalTestData entity was cleared.
func (m *StandMutation) PhysicalTestDataCleared() bool {
	return m.clearedphysical_test_data
}

// RemovePhysicalTestDatumIDs removes the "physical_test_data" edge to the PhysicalTestData entity by IDs.
func (m *StandMutation) RemovePhysicalTestDatumIDs(ids ...int) {
	if m.removedphysical_test_data == nil {
		m.removedphysical_test_data = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.physical_test_data, ids[i])
		m.removedphysical_test_data[ids[i]] = struct{}{}
	}
}

// RemovedPhysicalTestData returns the removed IDs of the "physical_test_data" edge to the PhysicalTestData entity.
func (m *StandMutation) RemovedPhysicalTestDataIDs() (ids []int) {
	for id := range m.removedphysical_test_data {
		ids = append(ids, id)
	}
	return
}

// PhysicalTestDataIDs returns the "physical_test_data" edge IDs in the mutation.
func (m *StandMutation) PhysicalTestDataIDs() (ids []int) {
	for id := range m.physical_test_data {
		ids = append(ids, id)
	}
	return
}

// ResetPhysicalTestData resets all changes to the "physical_test_data" edge.
func (m *StandMutation) ResetPhysicalTestData() {
	m.physical_test_data = nil
	m.clearedphysical_test_data = false
	m.removedphysical_test_data = nil
}

// AddMaterialOpCharacteristicIDs adds the "material_op_characteristics" edge to the MaterialOperationalCharacteristic entity by ids.
func (m *StandMutation) AddMaterialOpCharacteristicIDs(ids ...int) {
	if m.material_op_characteristics == nil {
		m.material_op_characteristics = make(map[int]struct{})
	}
	for i := range ids {
		m.material_op_characteristics[ids[i]] = struct{}{}
	}
}

// ClearMaterialOpCharacteristics clears the "material_op_characteristics" edge to the MaterialOperationalCharacteristic entity.
func (m *StandMutation) ClearMaterialOpCharacteristics() {
	m.clearedmaterial_op_characteristics = true
}

// MaterialOpCharacteristicsCleared reports if the "material_op_characteristics" edge to the MaterialOperationalCharacteristic entity was cleared.
func (m *StandMutation) MaterialOpCharacteristicsCleared() bool {
	return m.clearedmaterial_op_characteristics
}

// RemoveMaterialOpCharacteristicIDs removes the "material_op_characteristics" edge to the MaterialOperationalCharacteristic entity by IDs.
func (m *StandMutation) RemoveMaterialOpCharacteristicIDs(ids ...int) {
	if m.removedmaterial_op_characteristics == nil {
		m.removedmaterial_op_characteristics = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.material_op_characteristics, ids[i])
		m.removedmaterial_op_characteristics[ids[i]] = struct{}{}
	}
}

// RemovedMaterialOpCharacteristics returns the removed IDs of the "material_op_characteristics" edge to the MaterialOperationalCharacteristic entity.
func (m *StandMutation) RemovedMaterialOpCharacteristicsIDs() (ids []int) {
	for id := range m.removedmaterial_op_characteristics {
		ids = append(ids, id)
	}
	return
}

// MaterialOpCharacteristicsIDs returns the "material_op_characteristics" edge IDs in the mutation.
func (m *StandMutation) MaterialOpCharacteristicsIDs() (ids []int) {
	for id := range m.material_op_characteristics {
		ids = append(ids, id)
	}
	return
}

// ResetMaterialOpCharacteristics resets all changes to the "material_op_characteristics" edge.
func (m *StandMutation) ResetMaterialOpCharacteristics() {
	m.material_op_characteristics = nil
	m.clearedmaterial_op_characteristics = false
	m.removedmaterial_op_characteristics = nil
}

// Where appends a list predicates to the StandMutation builder.
func (m *StandMutation) Where(ps ...predicate.Stand) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StandMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StandMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Stand, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StandMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StandMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Stand).
func (m *StandMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StandMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, stand.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, stand.FieldUpdatedAt)
	}
	if m.name_of_stand != nil {
		fields = append(fields, stand.FieldNameOfStand)
	}
	if m.type_of_stand != nil {
		fields = append(fields, stand.FieldTypeOfStand)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StandMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stand.FieldCreatedAt:
		return m.CreatedAt()
	case stand.FieldUpdatedAt:
		return m.UpdatedAt()
	case stand.FieldNameOfStand:
		return m.NameOfStand()
	case stand.FieldTypeOfStand:
		return m.TypeOfStand()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StandMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stand.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case stand.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case stand.FieldNameOfStand:
		return m.OldNameOfStand(ctx)
	case stand.FieldTypeOfStand:
		return m.OldTypeOfStand(ctx)
	}
	return nil, fmt.Errorf("unknown Stand field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StandMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stand.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case stand.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case stand.FieldNameOfStand:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNameOfStand(v)
		return nil
	case stand.FieldTypeOfStand:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTypeOfStand(v)
		return nil
	}
	return fmt.Errorf("unknown Stand field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StandMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StandMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StandMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Stand numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StandMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StandMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StandMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Stand nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StandMutation) ResetField(name string) error {
	switch name {
	case stand.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case stand.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case stand.FieldNameOfStand:
		m.ResetNameOfStand()
		return nil
	case stand.FieldTypeOfStand:
		m.ResetTypeOfStand()
		return nil
	}
	return fmt.Errorf("unknown Stand field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StandMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.satellite != nil {
		edges = append(edges, stand.EdgeSatellite)
	}
	if m.technical_specification != nil {
		edges = append(edges, stand.EdgeTechnicalSpecification)
	}
	if m.sensors != nil {
		edges = append(edges, stand.EdgeSensors)
	}
	if m.hardware_requirements != nil {
		edges = append(edges, stand.EdgeHardwareRequirements)
	}
	if m.physical_test_data != nil {
		edges = append(edges, stand.EdgePhysicalTestData)
	}
	if m.material_op_characteristics != nil {
		edges = append(edges, stand.EdgeMaterialOpCharacteristics)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StandMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case stand.EdgeSatellite:
		if id := m.satellite; id != nil {
			return []ent.Value{*id}
		}
	case stand.EdgeTechnicalSpecification:
		if id := m.technical_specification; id != nil {
			return []ent.Value{*id}
		}
	case stand.EdgeSensors:
		ids := make([]ent.Value, 0, len(m.sensors))
		for id := range m.sensors {
			ids = append(ids, id)
		}
		return ids
	case stand.EdgeHardwareRequirements:
		ids := make([]ent.Value, 0, len(m.hardware_requirements))
		for id := range m.hardware_requirements {
			ids = append(ids, id)
		}
		return ids
	case stand.EdgePhysicalTestData:
		ids := make([]ent.Value, 0, len(m.physical_test_data))
		for id := range m.physical_test_data {
			ids = append(ids, id)
		}
		return ids
	case stand.EdgeMaterialOpCharacteristics:
		ids := make([]ent.Value, 0, len(m.material_op_characteristics))
		for id := range m.material_op_characteristics {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StandMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedsensors != nil {
		edges = append(edges, stand.EdgeSensors)
	}
	if m.removedhardware_requirements != nil {
		edges = append(edges, stand.EdgeHardwareRequirements)
	}
	if m.removedphysical_test_data != nil {
		edges = append(edges, stand.EdgePhysicalTestData)
	}
	if m.removedmaterial_op_characteristics != nil {
		edges = append(edges, stand.EdgeMaterialOpCharacteristics)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StandMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case stand.EdgeSensors:
		ids := make([]ent.Value, 0, len(m.removedsensors))
		for id := range m.removedsensors {
			ids = append(ids, id)
		}
		return ids
	case stand.EdgeHardwareRequirements:
		ids := make([]ent.Value, 0, len(m.removedhardware_requirements))
		for id := range m.removedhardware_requirements {
			ids = append(ids, id)
		}
		return ids
	case stand.EdgePhysicalTestData:
		ids := make([]ent.Value, 0, len(m.removedphysical_test_data))
		for id := range m.removedphysical_test_data {
			ids = append(ids, id)
		}
		return ids
	case stand.EdgeMaterialOpCharacteristics:
		ids := make([]ent.Value, 0, len(m.removedmaterial_op_characteristics))
		for id := range m.removedmaterial_op_characteristics {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StandMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedsatellite {
		edges = append(edges, stand.EdgeSatellite)
	}
	if m.clearedtechnical_specification {
		edges = append(edges, stand.EdgeTechnicalSpecification)
	}
	if m.clearedsensors {
		edges = append(edges, stand.EdgeSensors)
	}
	if m.clearedhardware_requirements {
		edges = append(edges, stand.EdgeHardwareRequirements)
	}
	if m.clearedphysical_test_data {
		edges = append(edges, stand.EdgePhysicalTestData)
	}
	if m.clearedmaterial_op_characteristics {
		edges = append(edges, stand.EdgeMaterialOpCharacteristics)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StandMutation) EdgeCleared(name string) bool {
	switch name {
	case stand.EdgeSatellite:
		return m.clearedsatellite
	case stand.EdgeTechnicalSpecification:
		return m.clearedtechnical_specification
	case stand.EdgeSensors:
		return m.clearedsensors
	case stand.EdgeHardwareRequirements:
		return m.clearedhardware_requirements
	case stand.EdgePhysicalTestData:
		return m.clearedphysical_test_data
	case stand.EdgeMaterialOpCharacteristics:
		return m.clearedmaterial_op_characteristics
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StandMutation) ClearEdge(name string) error {
	switch name {
	case stand.EdgeSatellite:
		m.ClearSatellite()
		return nil
	case stand.EdgeTechnicalSpecification:
		m.ClearTechnicalSpecification()
		return nil
	}
	return fmt.Errorf("unknown Stand unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StandMutation) ResetEdge(name string) error {
	switch name {
	case stand.EdgeSatellite:
		m.ResetSatellite()
		return nil
	case stand.EdgeTechnicalSpecification:
		m.ResetTechnicalSpecification()
		return nil
	case stand.EdgeSensors:
		m.ResetSensors()
		return nil
	case stand.EdgeHardwareRequirements:
		m.ResetHardwareRequirements()
		return nil
	case stand.EdgePhysicalTestData:
		m.ResetPhysicalTestData()
		return nil
	case stand.EdgeMaterialOpCharacteristics:
		m.ResetMaterialOpCharacteristics()
		return nil
	}
	return fmt.Errorf("unknown Stand edge %s", name)
}

// TechnicalSpecificationMutation represents an operation that mutates the TechnicalSpecification nodes in the graph.
type TechnicalSpecificationMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	created_at             *time.Time
	updated_at             *time.Time
	description            *string
	clearedFields          map[string]struct{}
	satellite              *int
	clearedsatellite       bool
	stands                 map[int]struct{}
	removedstands          map[int]struct{}
	clearedstands          bool
	calendar_stages        map[int]struct{}
	removedcalendar_stages map[int]struct{}
	clearedcalendar_stages bool
	done                   bool
	oldValue               func(context.Context) (*TechnicalSpecification, error)
	predicates             []predicate.TechnicalSpecification
}

var _ ent.Mutation = (*TechnicalSpecificationMutation)(nil)

// technicalspecificationOption allows management of the mutation configuration using functional options.
type technicalspecificationOption func(*TechnicalSpecificationMutation)

// newTechnicalSpecificationMutation creates new mutation for the TechnicalSpecification entity.
func newTechnicalSpecificationMutation(c config, op Op, opts ...technicalspecificationOption) *TechnicalSpecificationMutation {
	m := &TechnicalSpecificationMutation{
		config:        c,
		op:            op,
		typ:           TypeTechnicalSpecification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTechnicalSpecificationID sets the ID field of the mutation.
func withTechnicalSpecificationID(id int) technicalspecificationOption {
	return func(m *TechnicalSpecificationMutation) {
		var (
			err   error
			once  sync.Once
			value *TechnicalSpecification
		)
		m.oldValue = func(ctx context.Context) (*TechnicalSpecification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TechnicalSpecification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTechnicalSpecification sets the old TechnicalSpecification of the mutation.
func withTechnicalSpecification(node *TechnicalSpecification) technicalspecificationOption {
	return func(m *TechnicalSpecificationMutation) {
		m.oldValue = func(context.Context) (*TechnicalSpecification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TechnicalSpecificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TechnicalSpecificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TechnicalSpecificationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TechnicalSpecificationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TechnicalSpecification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TechnicalSpecificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TechnicalSpecificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TechnicalSpecification entity.
// If the TechnicalSpecification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TechnicalSpecificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TechnicalSpecificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TechnicalSpecificationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TechnicalSpecificationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TechnicalSpecification entity.
// If the TechnicalSpecification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TechnicalSpecificationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TechnicalSpecificationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDescription sets the "description" field.
func (m *TechnicalSpecificationMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TechnicalSpecificationMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the TechnicalSpecification entity.
// If the TechnicalSpecification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TechnicalSpecificationMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TechnicalSpecificationMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[technicalspecification.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TechnicalSpecificationMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[technicalspecification.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TechnicalSpecificationMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, technicalspecification.FieldDescription)
}

// SetSatelliteID sets the "satellite" edge to the Satellite entity by id.
func (m *TechnicalSpecificationMutation) SetSatelliteID(id int) {
	m.satellite = &id
}

// ClearSatellite clears the "satellite" edge to the Satellite entity.
func (m *TechnicalSpecificationMutation) ClearSatellite() {
	m.clearedsatellite = true
}

// SatelliteCleared reports if the "satellite" edge to the Satellite entity was cleared.
func (m *TechnicalSpecificationMutation) SatelliteCleared() bool {
	return m.clearedsatellite
}

// SatelliteID returns the "satellite" edge ID in the mutation.
func (m *TechnicalSpecificationMutation) SatelliteID() (id int, exists bool) {
	if m.satellite != nil {
		return *m.satellite, true
	}
	return
}

// SatelliteIDs returns the "satellite" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SatelliteID instead. It exists only for internal usage by the builders.
func (m *TechnicalSpecificationMutation) SatelliteIDs() (ids []int) {
	if id := m.satellite; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSatellite resets all changes to the "satellite" edge.
func (m *TechnicalSpecificationMutation) ResetSatellite() {
	m.satellite = nil
	m.clearedsatellite = false
}

// AddStandIDs adds the "stands" edge to the Stand entity by ids.
func (m *TechnicalSpecificationMutation) AddStandIDs(ids ...int) {
	if m.stands == nil {
		m.stands = make(map[int]struct{})
	}
	for i := range ids {
		m.stands[ids[i]] = struct{}{}
	}
}

// ClearStands clears the "stands" edge to the Stand entity.
func (m *TechnicalSpecificationMutation) ClearStands() {
	m.clearedstands = true
}

// StandsCleared reports if the "stands" edge to the Stand entity was cleared.
func (m *TechnicalSpecificationMutation) StandsCleared() bool {
	return m.clearedstands
}

// RemoveStandIDs removes the "stands" edge to the Stand entity by IDs.
func (m *TechnicalSpecificationMutation) RemoveStandIDs(ids ...int) {
	if m.removedstands == nil {
		m.removedstands = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.stands, ids[i])
		m.removedstands[ids[i]] = struct{}{}
	}
}

// RemovedStands returns the removed IDs of the "stands" edge to the Stand entity.
func (m *TechnicalSpecificationMutation) RemovedStandsIDs() (ids []int) {
	for id := range m.removedstands {
		ids = append(ids, id)
	}
	return
}

// StandsIDs returns the "stands" edge IDs in the mutation.
func (m *TechnicalSpecificationMutation) StandsIDs() (ids []int) {
	for id := range m.stands {
		ids = append(ids, id)
	}
	return
}

// ResetStands resets all changes to the "stands" edge.
func (m *TechnicalSpecificationMutation) ResetStands() {
	m.stands = nil
	m.clearedstands = false
	m.removedstands = nil
}

// AddCalendarStageIDs adds the "calendar_stages" edge to the CalendarStage entity by ids.
func (m *TechnicalSpecificationMutation) AddCalendarStageIDs(ids ...int) {
	if m.calendar_stages == nil {
		m.calendar_stages = make(map[int]struct{})
	}
	for i := range ids {
		m.calendar_stages[ids[i]] = struct{}{}
	}
}

// ClearCalendarStages clears the "calendar_stages" edge to the CalendarStage entity.
func (m *TechnicalSpecificationMutation) ClearCalendarStages() {
	m.clearedcalendar_stages = true
}

// CalendarStagesCleared reports if the "calendar_stages" edge to the CalendarStage entity was cleared.
func (m *TechnicalSpecificationMutation) CalendarStagesCleared() bool {
	return m.clearedcalendar_stages
}

// RemoveCalendarStageIDs removes the "calendar_stages" edge to the CalendarStage entity by IDs.
func (m *TechnicalSpecificationMutation) RemoveCalendarStageIDs(ids ...int) {
	if m.removedcalendar_stages == nil {
		m.removedcalendar_stages = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.calendar_stages, ids[i])
		m.removedcalendar_stages[ids[i]] = struct{}{}
	}
}

// RemovedCalendarStages returns the removed IDs of the "calendar_stages" edge to the CalendarStage entity.
func (m *TechnicalSpecificationMutation) RemovedCalendarStagesIDs() (ids []int) {
	for id := range m.removedcalendar_stages {
		ids = append(ids, id)
	}
	return
}

// CalendarStagesIDs returns the "calendar_stages" edge IDs in the mutation.
func (m *TechnicalSpecificationMutation) CalendarStagesIDs() (ids []int) {
	for id := range m.calendar_stages {
		ids = append(ids, id)
	}
	return
}

// ResetCalendarStages resets all changes to the "calendar_stages" edge.
func (m *TechnicalSpecificationMutation) ResetCalendarStages() {
	m.calendar_stages = nil
	m.clearedcalendar_stages = false
	m.removedcalendar_stages = nil
}

// Where appends a list predicates to the TechnicalSpecificationMutation builder.
func (m *TechnicalSpecificationMutation) Where(ps ...predicate.TechnicalSpecification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TechnicalSpecificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TechnicalSpecificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TechnicalSpecification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TechnicalSpecificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TechnicalSpecificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TechnicalSpecification).
func (m *TechnicalSpecificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TechnicalSpecificationMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.created_at != nil {
		fields = append(fields, technicalspecification.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, technicalspecification.FieldUpdatedAt)
	}
	if m.description != nil {
		fields = append(fields, technicalspecification.FieldDescription)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TechnicalSpecificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case technicalspecification.FieldCreatedAt:
		return m.CreatedAt()
	case technicalspecification.FieldUpdatedAt:
		return m.UpdatedAt()
	case technicalspecification.FieldDescription:
		return m.Description()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TechnicalSpecificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case technicalspecification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case technicalspecification.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case technicalspecification.FieldDescription:
		return m.OldDescription(ctx)
	}
	return nil, fmt.Errorf("unknown TechnicalSpecification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TechnicalSpecificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case technicalspecification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case technicalspecification.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case technicalspecification.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	}
	return fmt.Errorf("unknown TechnicalSpecification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TechnicalSpecificationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TechnicalSpecificationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TechnicalSpecificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TechnicalSpecification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TechnicalSpecificationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(technicalspecification.FieldDescription) {
		fields = append(fields, technicalspecification.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TechnicalSpecificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TechnicalSpecificationMutation) ClearField(name string) error {
	switch name {
	case technicalspecification.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown TechnicalSpecification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TechnicalSpecificationMutation) ResetField(name string) error {
	switch name {
	case technicalspecification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case technicalspecification.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case technicalspecification.FieldDescription:
		m.ResetDescription()
		return nil
	}
	return fmt.Errorf("unknown TechnicalSpecification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TechnicalSpecificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.satellite != nil {
		edges = append(edges, technicalspecification.EdgeSatellite)
	}
	if m.stands != nil {
		edges = append(edges, technicalspecification.EdgeStands)
	}
	if m.calendar_stages != nil {
		edges = append(edges, technicalspecification.EdgeCalendarStages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TechnicalSpecificationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case technicalspecification.EdgeSatellite:
		if id := m.satellite; id != nil {
			return []ent.Value{*id}
		}
	case technicalspecification.EdgeStands:
		ids := make([]ent.Value, 0, len(m.stands))
		for id := range m.stands {
			ids = append(ids, id)
		}
		return ids
	case technicalspecification.EdgeCalendarStages:
		ids := make([]ent.Value, 0, len(m.calendar_stages))
		for id := range m.calendar_stages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TechnicalSpecificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedstands != nil {
		edges = append(edges, technicalspecification.EdgeStands)
	}
	if m.removedcalendar_stages != nil {
		edges = append(edges, technicalspecification.EdgeCalendarStages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TechnicalSpecificationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case technicalspecification.EdgeStands:
		ids := make([]ent.Value, 0, len(m.removedstands))
		for id := range m.removedstands {
			ids = append(ids, id)
		}
		return ids
	case technicalspecification.EdgeCalendarStages:
		ids := make([]ent.Value, 0, len(m.removedcalendar_stages))
		for id := range m.removedcalendar_stages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TechnicalSpecificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedsatellite {
		edges = append(edges, technicalspecification.EdgeSatellite)
	}
	if m.clearedstands {
		edges = append(edges, technicalspecification.EdgeStands)
	}
	if m.clearedcalendar_stages {
		edges = append(edges, technicalspecification.EdgeCalendarStages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TechnicalSpecificationMutation) EdgeCleared(name string) bool {
	switch name {
	case technicalspecification.EdgeSatellite:
		return m.clearedsatellite
	case technicalspecification.EdgeStands:
		return m.clearedstands
	case technicalspecification.EdgeCalendarStages:
		return m.clearedcalendar_stages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TechnicalSpecificationMutation) ClearEdge(name string) error {
	switch name {
	case technicalspecification.EdgeSatellite:
		m.ClearSatellite()
		return nil
	}
	return fmt.Errorf("unknown TechnicalSpecification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TechnicalSpecificationMutation) ResetEdge(name string) error {
	switch name {
	case technicalspecification.EdgeSatellite:
		m.ResetSatellite()
		return nil
	case technicalspecification.EdgeStands:
		m.ResetStands()
		return nil
	case technicalspecification.EdgeCalendarStages:
		m.ResetCalendarStages()
		return nil
	}
	return fmt.Errorf("unknown TechnicalSpecification edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op            Op
	typ           string
	id            *int
	created_at    *time.Time
	updated_at    *time.Time
	username      *string
	password_hash *string
	role          *user.Role
	enabled       *bool
	last_login_at *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*User, error)
	predicates    []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id int) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUsername sets the "username" field.
func (m *UserMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *UserMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *UserMutation) ResetUsername() {
	m.username = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetEnabled sets the "enabled" field.
func (m *UserMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *UserMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *UserMutation) ResetEnabled() {
	m.enabled = nil
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *UserMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *UserMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *UserMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[user.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *UserMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[user.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *UserMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, user.FieldLastLoginAt)
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.username != nil {
		fields = append(fields, user.FieldUsername)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.enabled != nil {
		fields = append(fields, user.FieldEnabled)
	}
	if m.last_login_at != nil {
		fields = append(fields, user.FieldLastLoginAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldUsername:
		return m.Username()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldRole:
		return m.Role()
	case user.FieldEnabled:
		return m.Enabled()
	case user.FieldLastLoginAt:
		return m.LastLoginAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldUsername:
		return m.OldUsername(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldEnabled:
		return m.OldEnabled(ctx)
	case user.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case user.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldLastLoginAt) {
		fields = append(fields, user.FieldLastLoginAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldUsername:
		m.ResetUsername()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldEnabled:
		m.ResetEnabled()
		return nil
	case user.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}
