// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"satfab.io/satfab/ent/hardwarerequirement"
	"satfab.io/satfab/ent/materialoperationalcharacteristic"
	"satfab.io/satfab/ent/physicaltestdata"
	"satfab.io/satfab/ent/predicate"
	"satfab.io/satfab/ent/satellite"
	"satfab.io/satfab/ent/sensor"
	"satfab.io/satfab/ent/stand"
	"satfab.io/satfab/ent/technicalspecification"
)

// StandQuery is the builder for querying Stand entities.
type StandQuery struct {
	config
	ctx                           *QueryContext
	order                         []stand.OrderOption
	inters                        []Interceptor
	predicates                    []predicate.Stand
	withSatellite                 *SatelliteQuery
	withTechnicalSpecification    *TechnicalSpecificationQuery
	withSensors                   *SensorQuery
	withHardwareRequirements      *HardwareRequirementQuery
	withPhysicalTestData          *PhysicalTestDataQuery
	withMaterialOpCharacteristics *MaterialOperationalCharacteristicQuery
	withFKs                       bool
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the StandQuery builder.
func (_q *StandQuery) Where(ps ...predicate.Stand) *StandQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *StandQuery) Limit(limit int) *StandQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *StandQuery) Offset(offset int) *StandQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *StandQuery) Unique(unique bool) *StandQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *StandQuery) Order(o ...stand.OrderOption) *StandQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QuerySatellite chains the current query on the "satellite" edge.
func (_q *StandQuery) QuerySatellite() *SatelliteQuery {
	query := (&SatelliteClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(stand.Table, stand.FieldID, selector),
			sqlgraph.To(satellite.Table, satellite.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, stand.SatelliteTable, stand.SatelliteColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTechnicalSpecification chains the current query on the "technical_specification" edge.
func (_q *StandQuery) QueryTechnicalSpecification() *TechnicalSpecificationQuery {
	query := (&TechnicalSpecificationClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(stand.Table, stand.FieldID, selector),
			sqlgraph.To(technicalspecification.Table, technicalspecification.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, stand.TechnicalSpecificationTable, stand.TechnicalSpecificationColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySensors chains the current query on the "sensors" edge.
func (_q *StandQuery) QuerySensors() *SensorQuery {
	query := (&SensorClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(stand.Table, stand.FieldID, selector),
			sqlgraph.To(sensor.Table, sensor.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, stand.SensorsTable, stand.SensorsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryHardwareRequirements chains the current query on the "hardware_requirements" edge.
func (_q *StandQuery) QueryHardwareRequirements() *HardwareRequirementQuery {
	query := (&HardwareRequirementClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(stand.Table, stand.FieldID, selector),
			sqlgraph.To(hardwarerequirement.Table, hardwarerequirement.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, stand.HardwareRequirementsTable, stand.HardwareRequirementsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryPhysicalTestData chains the current query on the "physical_test_data" edge.
func (_q *StandQuery) QueryPhysicalTestData() *PhysicalTestDataQuery {
	query := (&PhysicalTestDataClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(stand.Table, stand.FieldID, selector),
			sqlgraph.To(physicaltestdata.Table, physicaltestdata.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, stand.PhysicalTestDataTable, stand.PhysicalTestDataColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMaterialOpCharacteristics chains the current query on the "material_op_characteristics" edge.
func (_q *StandQuery) QueryMaterialOpCharacteristics() *MaterialOperationalCharacteristicQuery {
	query := (&MaterialOperationalCharacteristicClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(stand.Table, stand.FieldID, selector),
			sqlgraph.To(materialoperationalcharacteristic.Table, materialoperationalcharacteristic.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, stand.MaterialOpCharacteristicsTable, stand.MaterialOpCharacteristicsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Stand entity from the query.
// Returns a *NotFoundError when no Stand was found.
func (_q *StandQuery) First(ctx context.Context) (*Stand, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{stand.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *StandQuery) FirstX(ctx context.Context) *Stand {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Stand ID from the query.
// Returns a *NotFoundError when no Stand ID was found.
func (_q *StandQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{stand.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *StandQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Stand entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Stand entity is found.
// Returns a *NotFoundError when no Stand entities are found.
func (_q *StandQuery) Only(ctx context.Context) (*Stand, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{stand.Label}
	default:
		return nil, &NotSingularError{stand.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *StandQuery) OnlyX(ctx context.Context) *Stand {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Stand ID in the query.
// Returns a *NotSingularError when more than one Stand ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *StandQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{stand.Label}
	default:
		err = &NotSingularError{stand.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *StandQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Stands.
func (_q *StandQuery) All(ctx context.Context) ([]*Stand, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Stand, *StandQuery]()
	return withInterceptors[[]*Stand](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *StandQuery) AllX(ctx context.Context) []*Stand {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Stand IDs.
func (_q *StandQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(stand.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *StandQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *StandQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*StandQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *StandQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *StandQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *StandQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the StandQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *StandQuery) Clone() *StandQuery {
	if _q == nil {
		return nil
	}
	return &StandQuery{
		config:                        _q.config,
		ctx:                           _q.ctx.Clone(),
		order:                         append([]stand.OrderOption{}, _q.order...),
		inters:                        append([]Interceptor{}, _q.inters...),
		predicates:                    append([]predicate.Stand{}, _q.predicates...),
		withSatellite:                 _q.withSatellite.Clone(),
		withTechnicalSpecification:    _q.withTechnicalSpecification.Clone(),
		withSensors:                   _q.withSensors.Clone(),
		withHardwareRequirements:      _q.withHardwareRequirements.Clone(),
		withPhysicalTestData:          _q.withPhysicalTestData.Clone(),
		withMaterialOpCharacteristics: _q.withMaterialOpCharacteristics.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithSatellite tells the query-builder to eager-load the nodes that are connected to
// the "satellite" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *StandQuery) WithSatellite(opts ...func(*SatelliteQuery)) *StandQuery {
	query := (&SatelliteClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSatellite = query
	return _q
}

// WithTechnicalSpecification tells the query-builder to eager-load the nodes that are connected to
// the "technical_specification" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *StandQuery) WithTechnicalSpecification(opts ...func(*TechnicalSpecificationQuery)) *StandQuery {
	query := (&TechnicalSpecificationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTechnicalSpecification = query
	return _q
}

// WithSensors tells the query-builder to eager-load the nodes that are connected to
// the "sensors" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *StandQuery) WithSensors(opts ...func(*SensorQuery)) *StandQuery {
	query := (&SensorClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSensors = query
	return _q
}

// WithHardwareRequirements tells the query-builder to eager-load the nodes that are connected to
// the "hardware_requirements" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *StandQuery) WithHardwareRequirements(opts ...func(*HardwareRequirementQuery)) *StandQuery {
	query := (&HardwareRequirementClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withHardwareRequirements = query
	return _q
}

// WithPhysicalTestData tells the query-builder to eager-load the nodes that are connected to
// the "physical_test_data" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *StandQuery) WithPhysicalTestData(opts ...func(*PhysicalTestDataQuery)) *StandQuery {
	query := (&PhysicalTestDataClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPhysicalTestData = query
	return _q
}

// WithMaterialOpCharacteristics tells the query-builder to eager-load the nodes that are connected to
// the "material_op_characteristics" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *StandQuery) WithMaterialOpCharacteristics(opts ...func(*MaterialOperationalCharacteristicQuery)) *StandQuery {
	query := (&MaterialOperationalCharacteristicClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMaterialOpCharacteristics = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Stand.Query().
//		GroupBy(stand.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *StandQuery) GroupBy(field string, fields ...string) *StandGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &StandGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = stand.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.Stand.Query().
//		Select(stand.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *StandQuery) Select(fields ...string) *StandSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &StandSelect{StandQuery: _q}
	sbuild.label = stand.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a StandSelect configured with the given aggregations.
func (_q *StandQuery) Aggregate(fns ...AggregateFunc) *StandSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *StandQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !stand.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *StandQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Stand, error) {
	var (
		nodes       = []*Stand{}
		withFKs     = _q.withFKs
		_spec       = _q.querySpec()
		loadedTypes = [6]bool{
			_q.withSatellite != nil,
			_q.withTechnicalSpecification != nil,
			_q.withSensors != nil,
			_q.withHardwareRequirements != nil,
			_q.withPhysicalTestData != nil,
			_q.withMaterialOpCharacteristics != nil,
		}
	)
	if _q.withSatellite != nil || _q.withTechnicalSpecification != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, stand.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Stand).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Stand{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withSatellite; query != nil {
		if err := _q.loadSatellite(ctx, query, nodes, nil,
			func(n *Stand, e *Satellite) { n.Edges.Satellite = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTechnicalSpecification; query != nil {
		if err := _q.loadTechnicalSpecification(ctx, query, nodes, nil,
			func(n *Stand, e *TechnicalSpecification) { n.Edges.TechnicalSpecification = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSensors; query != nil {
		if err := _q.loadSensors(ctx, query, nodes,
			func(n *Stand) { n.Edges.Sensors = []*Sensor{} },
			func(n *Stand, e *Sensor) { n.Edges.Sensors = append(n.Edges.Sensors, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withHardwareRequirements; query != nil {
		if err := _q.loadHardwareRequirements(ctx, query, nodes,
			func(n *Stand) { n.Edges.HardwareRequirements = []*HardwareRequirement{} },
			func(n *Stand, e *HardwareRequirement) {
				n.Edges.HardwareRequirements = append(n.Edges.HardwareRequirements, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withPhysicalTestData; query != nil {
		if err := _q.loadPhysicalTestData(ctx, query, nodes,
			func(n *Stand) { n.Edges.PhysicalTestData = []*PhysicalTestData{} },
			func(n *Stand, e *PhysicalTestData) { n.Edges.PhysicalTestData = append(n.Edges.PhysicalTestData, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withMaterialOpCharacteristics; query != nil {
		if err := _q.loadMaterialOpCharacteristics(ctx, query, nodes,
			func(n *Stand) { n.Edges.MaterialOpCharacteristics = []*MaterialOperationalCharacteristic{} },
			func(n *Stand, e *MaterialOperationalCharacteristic) {
				n.Edges.MaterialOpCharacteristics = append(n.Edges.MaterialOpCharacteristics, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *StandQuery) loadSatellite(ctx context.Context, query *SatelliteQuery, nodes []*Stand, init func(*Stand), assign func(*Stand, *Satellite)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*Stand)
	for i := range nodes {
		if nodes[i].satellite_stands == nil {
			continue
		}
		fk := *nodes[i].satellite_stands
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(satellite.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "satellite_stands" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *StandQuery) loadTechnicalSpecification(ctx context.Context, query *TechnicalSpecificationQuery, nodes []*Stand, init func(*Stand), assign func(*Stand, *TechnicalSpecification)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*Stand)
	for i := range nodes {
		if nodes[i].technical_specification_stands == nil {
			continue
		}
		fk := *nodes[i].technical_specification_stands
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(technicalspecification.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "technical_specification_stands" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *StandQuery) loadSensors(ctx context.Context, query *SensorQuery, nodes []*Stand, init func(*Stand), assign func(*Stand, *Sensor)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Stand)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.Sensor(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(stand.SensorsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.stand_sensors
		if fk == nil {
			return fmt.Errorf(`foreign-key "stand_sensors" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "stand_sensors" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *StandQuery) loadHardwareRequirements(ctx context.Context, query *HardwareRequirementQuery, nodes []*Stand, init func(*Stand), assign func(*Stand, *HardwareRequirement)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Stand)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.HardwareRequirement(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(stand.HardwareRequirementsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.stand_hardware_requirements
		if fk == nil {
			return fmt.Errorf(`foreign-key "stand_hardware_requirements" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "stand_hardware_requirements" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *StandQuery) loadPhysicalTestData(ctx context.Context, query *PhysicalTestDataQuery, nodes []*Stand, init func(*Stand), assign func(*Stand, *PhysicalTestData)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Stand)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.PhysicalTestData(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(stand.PhysicalTestDataColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.stand_physical_test_data
		if fk == nil {
			return fmt.Errorf(`foreign-key "stand_physical_test_data" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "stand_physical_test_data" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *StandQuery) loadMaterialOpCharacteristics(ctx context.Context, query *MaterialOperationalCharacteristicQuery, nodes []*Stand, init func(*Stand), assign func(*Stand, *MaterialOperationalCharacteristic)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Stand)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.MaterialOperationalCharacteristic(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(stand.MaterialOpCharacteristicsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.stand_material_op_characteristics
		if fk == nil {
			return fmt.Errorf(`foreign-key "stand_material_op_characteristics" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "stand_material_op_characteristics" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *StandQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *StandQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(stand.Table, stand.Columns, sqlgraph.NewFieldSpec(stand.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stand.FieldID)
		for i := range fields {
			if fields[i] != stand.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *StandQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(stand.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = stand.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// StandGroupBy is the group-by builder for Stand entities.
type StandGroupBy struct {
	selector
	build *StandQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *StandGroupBy) Aggregate(fns ...AggregateFunc) *StandGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *StandGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*StandQuery, *StandGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *StandGroupBy) sqlScan(ctx context.Context, root *StandQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// StandSelect is the builder for selecting fields of Stand entities.
type StandSelect struct {
	*StandQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *StandSelect) Aggregate(fns ...AggregateFunc) *StandSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *StandSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*StandQuery, *StandSelect](ctx, _s.StandQuery, _s, _s.inters, v)
}

func (_s *StandSelect) sqlScan(ctx context.Context, root *StandQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
