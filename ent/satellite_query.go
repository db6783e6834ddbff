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
	"satfab.io/satfab/ent/calendarstage"
	"satfab.io/satfab/ent/electronics"
	"satfab.io/satfab/ent/predicate"
	"satfab.io/satfab/ent/satellite"
	"satfab.io/satfab/ent/satelliteopcharacteristic"
	"satfab.io/satfab/ent/stand"
	"satfab.io/satfab/ent/technicalspecification"
)

// SatelliteQuery is the builder for querying Satellite entities.
type SatelliteQuery struct {
	config
	ctx                         *QueryContext
	order                       []satellite.OrderOption
	inters                      []Interceptor
	predicates                  []predicate.Satellite
	withElectronics             *ElectronicsQuery
	withCalendarStages          *CalendarStageQuery
	withTechnicalSpecifications *TechnicalSpecificationQuery
	withOpCharacteristics       *SatelliteOpCharacteristicQuery
	withStands                  *StandQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SatelliteQuery builder.
func (_q *SatelliteQuery) Where(ps ...predicate.Satellite) *SatelliteQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *SatelliteQuery) Limit(limit int) *SatelliteQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *SatelliteQuery) Offset(offset int) *SatelliteQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *SatelliteQuery) Unique(unique bool) *SatelliteQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *SatelliteQuery) Order(o ...satellite.OrderOption) *SatelliteQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryElectronics chains the current query on the "electronics" edge.
func (_q *SatelliteQuery) QueryElectronics() *ElectronicsQuery {
	query := (&ElectronicsClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(satellite.Table, satellite.FieldID, selector),
			sqlgraph.To(electronics.Table, electronics.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, satellite.ElectronicsTable, satellite.ElectronicsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCalendarStages chains the current query on the "calendar_stages" edge.
func (_q *SatelliteQuery) QueryCalendarStages() *CalendarStageQuery {
	query := (&CalendarStageClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(satellite.Table, satellite.FieldID, selector),
			sqlgraph.To(calendarstage.Table, calendarstage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, satellite.CalendarStagesTable, satellite.CalendarStagesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTechnicalSpecifications chains the current query on the "technical_specifications" edge.
func (_q *SatelliteQuery) QueryTechnicalSpecifications() *TechnicalSpecificationQuery {
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
			sqlgraph.From(satellite.Table, satellite.FieldID, selector),
			sqlgraph.To(technicalspecification.Table, technicalspecification.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, satellite.TechnicalSpecificationsTable, satellite.TechnicalSpecificationsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryOpCharacteristics chains the current query on the "op_characteristics" edge.
func (_q *SatelliteQuery) QueryOpCharacteristics() *SatelliteOpCharacteristicQuery {
	query := (&SatelliteOpCharacteristicClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(satellite.Table, satellite.FieldID, selector),
			sqlgraph.To(satelliteopcharacteristic.Table, satelliteopcharacteristic.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, satellite.OpCharacteristicsTable, satellite.OpCharacteristicsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryStands chains the current query on the "stands" edge.
func (_q *SatelliteQuery) QueryStands() *StandQuery {
	query := (&StandClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(satellite.Table, satellite.FieldID, selector),
			sqlgraph.To(stand.Table, stand.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, satellite.StandsTable, satellite.StandsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Satellite entity from the query.
// Returns a *NotFoundError when no Satellite was found.
func (_q *SatelliteQuery) First(ctx context.Context) (*Satellite, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{satellite.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *SatelliteQuery) FirstX(ctx context.Context) *Satellite {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Satellite ID from the query.
// Returns a *NotFoundError when no Satellite ID was found.
func (_q *SatelliteQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{satellite.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *SatelliteQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Satellite entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Satellite entity is found.
// Returns a *NotFoundError when no Satellite entities are found.
func (_q *SatelliteQuery) Only(ctx context.Context) (*Satellite, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{satellite.Label}
	default:
		return nil, &NotSingularError{satellite.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *SatelliteQuery) OnlyX(ctx context.Context) *Satellite {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Satellite ID in the query.
// Returns a *NotSingularError when more than one Satellite ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *SatelliteQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{satellite.Label}
	default:
		err = &NotSingularError{satellite.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *SatelliteQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Satellites.
func (_q *SatelliteQuery) All(ctx context.Context) ([]*Satellite, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Satellite, *SatelliteQuery]()
	return withInterceptors[[]*Satellite](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *SatelliteQuery) AllX(ctx context.Context) []*Satellite {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Satellite IDs.
func (_q *SatelliteQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(satellite.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *SatelliteQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *SatelliteQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*SatelliteQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *SatelliteQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *SatelliteQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *SatelliteQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SatelliteQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *SatelliteQuery) Clone() *SatelliteQuery {
	if _q == nil {
		return nil
	}
	return &SatelliteQuery{
		config:                      _q.config,
		ctx:                         _q.ctx.Clone(),
		order:                       append([]satellite.OrderOption{}, _q.order...),
		inters:                      append([]Interceptor{}, _q.inters...),
		predicates:                  append([]predicate.Satellite{}, _q.predicates...),
		withElectronics:             _q.withElectronics.Clone(),
		withCalendarStages:          _q.withCalendarStages.Clone(),
		withTechnicalSpecifications: _q.withTechnicalSpecifications.Clone(),
		withOpCharacteristics:       _q.withOpCharacteristics.Clone(),
		withStands:                  _q.withStands.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithElectronics tells the query-builder to eager-load the nodes that are connected to
// the "electronics" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SatelliteQuery) WithElectronics(opts ...func(*ElectronicsQuery)) *SatelliteQuery {
	query := (&ElectronicsClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withElectronics = query
	return _q
}

// WithCalendarStages tells the query-builder to eager-load the nodes that are connected to
// the "calendar_stages" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SatelliteQuery) WithCalendarStages(opts ...func(*CalendarStageQuery)) *SatelliteQuery {
	query := (&CalendarStageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCalendarStages = query
	return _q
}

// WithTechnicalSpecifications tells the query-builder to eager-load the nodes that are connected to
// the "technical_specifications" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SatelliteQuery) WithTechnicalSpecifications(opts ...func(*TechnicalSpecificationQuery)) *SatelliteQuery {
	query := (&TechnicalSpecificationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTechnicalSpecifications = query
	return _q
}

// WithOpCharacteristics tells the query-builder to eager-load the nodes that are connected to
// the "op_characteristics" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SatelliteQuery) WithOpCharacteristics(opts ...func(*SatelliteOpCharacteristicQuery)) *SatelliteQuery {
	query := (&SatelliteOpCharacteristicClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOpCharacteristics = query
	return _q
}

// WithStands tells the query-builder to eager-load the nodes that are connected to
// the "stands" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SatelliteQuery) WithStands(opts ...func(*StandQuery)) *SatelliteQuery {
	query := (&StandClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStands = query
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
//	client.Satellite.Query().
//		GroupBy(satellite.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *SatelliteQuery) GroupBy(field string, fields ...string) *SatelliteGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SatelliteGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = satellite.Label
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
//	client.Satellite.Query().
//		Select(satellite.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *SatelliteQuery) Select(fields ...string) *SatelliteSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &SatelliteSelect{SatelliteQuery: _q}
	sbuild.label = satellite.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SatelliteSelect configured with the given aggregations.
func (_q *SatelliteQuery) Aggregate(fns ...AggregateFunc) *SatelliteSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *SatelliteQuery) prepareQuery(ctx context.Context) error {
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
		if !satellite.ValidColumn(f) {
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

func (_q *SatelliteQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Satellite, error) {
	var (
		nodes       = []*Satellite{}
		_spec       = _q.querySpec()
		loadedTypes = [5]bool{
			_q.withElectronics != nil,
			_q.withCalendarStages != nil,
			_q.withTechnicalSpecifications != nil,
			_q.withOpCharacteristics != nil,
			_q.withStands != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Satellite).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Satellite{config: _q.config}
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
	if query := _q.withElectronics; query != nil {
		if err := _q.loadElectronics(ctx, query, nodes,
			func(n *Satellite) { n.Edges.Electronics = []*Electronics{} },
			func(n *Satellite, e *Electronics) { n.Edges.Electronics = append(n.Edges.Electronics, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withCalendarStages; query != nil {
		if err := _q.loadCalendarStages(ctx, query, nodes,
			func(n *Satellite) { n.Edges.CalendarStages = []*CalendarStage{} },
			func(n *Satellite, e *CalendarStage) { n.Edges.CalendarStages = append(n.Edges.CalendarStages, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTechnicalSpecifications; query != nil {
		if err := _q.loadTechnicalSpecifications(ctx, query, nodes,
			func(n *Satellite) { n.Edges.TechnicalSpecifications = []*TechnicalSpecification{} },
			func(n *Satellite, e *TechnicalSpecification) {
				n.Edges.TechnicalSpecifications = append(n.Edges.TechnicalSpecifications, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withOpCharacteristics; query != nil {
		if err := _q.loadOpCharacteristics(ctx, query, nodes,
			func(n *Satellite) { n.Edges.OpCharacteristics = []*SatelliteOpCharacteristic{} },
			func(n *Satellite, e *SatelliteOpCharacteristic) {
				n.Edges.OpCharacteristics = append(n.Edges.OpCharacteristics, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withStands; query != nil {
		if err := _q.loadStands(ctx, query, nodes,
			func(n *Satellite) { n.Edges.Stands = []*Stand{} },
			func(n *Satellite, e *Stand) { n.Edges.Stands = append(n.Edges.Stands, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *SatelliteQuery) loadElectronics(ctx context.Context, query *ElectronicsQuery, nodes []*Satellite, init func(*Satellite), assign func(*Satellite, *Electronics)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Satellite)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.Electronics(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(satellite.ElectronicsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.satellite_electronics
		if fk == nil {
			return fmt.Errorf(`foreign-key "satellite_electronics" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "satellite_electronics" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *SatelliteQuery) loadCalendarStages(ctx context.Context, query *CalendarStageQuery, nodes []*Satellite, init func(*Satellite), assign func(*Satellite, *CalendarStage)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Satellite)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.CalendarStage(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(satellite.CalendarStagesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.satellite_calendar_stages
		if fk == nil {
			return fmt.Errorf(`foreign-key "satellite_calendar_stages" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "satellite_calendar_stages" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *SatelliteQuery) loadTechnicalSpecifications(ctx context.Context, query *TechnicalSpecificationQuery, nodes []*Satellite, init func(*Satellite), assign func(*Satellite, *TechnicalSpecification)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Satellite)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.TechnicalSpecification(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(satellite.TechnicalSpecificationsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.satellite_technical_specifications
		if fk == nil {
			return fmt.Errorf(`foreign-key "satellite_technical_specifications" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "satellite_technical_specifications" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *SatelliteQuery) loadOpCharacteristics(ctx context.Context, query *SatelliteOpCharacteristicQuery, nodes []*Satellite, init func(*Satellite), assign func(*Satellite, *SatelliteOpCharacteristic)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Satellite)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.SatelliteOpCharacteristic(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(satellite.OpCharacteristicsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.satellite_op_characteristics
		if fk == nil {
			return fmt.Errorf(`foreign-key "satellite_op_characteristics" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "satellite_op_characteristics" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *SatelliteQuery) loadStands(ctx context.Context, query *StandQuery, nodes []*Satellite, init func(*Satellite), assign func(*Satellite, *Stand)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Satellite)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.Stand(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(satellite.StandsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.satellite_stands
		if fk == nil {
			return fmt.Errorf(`foreign-key "satellite_stands" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "satellite_stands" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *SatelliteQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *SatelliteQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(satellite.Table, satellite.Columns, sqlgraph.NewFieldSpec(satellite.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, satellite.FieldID)
		for i := range fields {
			if fields[i] != satellite.FieldID {
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

func (_q *SatelliteQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(satellite.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = satellite.Columns
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

// SatelliteGroupBy is the group-by builder for Satellite entities.
type SatelliteGroupBy struct {
	selector
	build *SatelliteQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *SatelliteGroupBy) Aggregate(fns ...AggregateFunc) *SatelliteGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *SatelliteGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SatelliteQuery, *SatelliteGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *SatelliteGroupBy) sqlScan(ctx context.Context, root *SatelliteQuery, v any) error {
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

// SatelliteSelect is the builder for selecting fields of Satellite entities.
type SatelliteSelect struct {
	*SatelliteQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *SatelliteSelect) Aggregate(fns ...AggregateFunc) *SatelliteSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *SatelliteSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SatelliteQuery, *SatelliteSelect](ctx, _s.SatelliteQuery, _s, _s.inters, v)
}

func (_s *SatelliteSelect) sqlScan(ctx context.Context, root *SatelliteQuery, v any) error {
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
