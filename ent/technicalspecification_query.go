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
	"satfab.io/satfab/ent/predicate"
	"satfab.io/satfab/ent/satellite"
	"satfab.io/satfab/ent/stand"
	"satfab.io/satfab/ent/technicalspecification"
)

// TechnicalSpecificationQuery is the builder for querying TechnicalSpecification entities.
type TechnicalSpecificationQuery struct {
	config
	ctx                *QueryContext
	order              []technicalspecification.OrderOption
	inters             []Interceptor
	predicates         []predicate.TechnicalSpecification
	withSatellite      *SatelliteQuery
	withStands         *StandQuery
	withCalendarStages *CalendarStageQuery
	withFKs            bool
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TechnicalSpecificationQuery builder.
func (_q *TechnicalSpecificationQuery) Where(ps ...predicate.TechnicalSpecification) *TechnicalSpecificationQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *TechnicalSpecificationQuery) Limit(limit int) *TechnicalSpecificationQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *TechnicalSpecificationQuery) Offset(offset int) *TechnicalSpecificationQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *TechnicalSpecificationQuery) Unique(unique bool) *TechnicalSpecificationQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *TechnicalSpecificationQuery) Order(o ...technicalspecification.OrderOption) *TechnicalSpecificationQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QuerySatellite chains the current query on the "satellite" edge.
func (_q *TechnicalSpecificationQuery) QuerySatellite() *SatelliteQuery {
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
			sqlgraph.From(technicalspecification.Table, technicalspecification.FieldID, selector),
			sqlgraph.To(satellite.Table, satellite.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, technicalspecification.SatelliteTable, technicalspecification.SatelliteColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryStands chains the current query on the "stands" edge.
func (_q *TechnicalSpecificationQuery) QueryStands() *StandQuery {
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
			sqlgraph.From(technicalspecification.Table, technicalspecification.FieldID, selector),
			sqlgraph.To(stand.Table, stand.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, technicalspecification.StandsTable, technicalspecification.StandsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCalendarStages chains the current query on the "calendar_stages" edge.
func (_q *TechnicalSpecificationQuery) QueryCalendarStages() *CalendarStageQuery {
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
			sqlgraph.From(technicalspecification.Table, technicalspecification.FieldID, selector),
			sqlgraph.To(calendarstage.Table, calendarstage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, technicalspecification.CalendarStagesTable, technicalspecification.CalendarStagesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first TechnicalSpecification entity from the query.
// Returns a *NotFoundError when no TechnicalSpecification was found.
func (_q *TechnicalSpecificationQuery) First(ctx context.Context) (*TechnicalSpecification, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{technicalspecification.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *TechnicalSpecificationQuery) FirstX(ctx context.Context) *TechnicalSpecification {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first TechnicalSpecification ID from the query.
// Returns a *NotFoundError when no TechnicalSpecification ID was found.
func (_q *TechnicalSpecificationQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{technicalspecification.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *TechnicalSpecificationQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single TechnicalSpecification entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one TechnicalSpecification entity is found.
// Returns a *NotFoundError when no TechnicalSpecification entities are found.
func (_q *TechnicalSpecificationQuery) Only(ctx context.Context) (*TechnicalSpecification, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{technicalspecification.Label}
	default:
		return nil, &NotSingularError{technicalspecification.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *TechnicalSpecificationQuery) OnlyX(ctx context.Context) *TechnicalSpecification {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only TechnicalSpecification ID in the query.
// Returns a *NotSingularError when more than one TechnicalSpecification ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *TechnicalSpecificationQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{technicalspecification.Label}
	default:
		err = &NotSingularError{technicalspecification.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *TechnicalSpecificationQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of TechnicalSpecifications.
func (_q *TechnicalSpecificationQuery) All(ctx context.Context) ([]*TechnicalSpecification, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*TechnicalSpecification, *TechnicalSpecificationQuery]()
	return withInterceptors[[]*TechnicalSpecification](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *TechnicalSpecificationQuery) AllX(ctx context.Context) []*TechnicalSpecification {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of TechnicalSpecification IDs.
func (_q *TechnicalSpecificationQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(technicalspecification.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *TechnicalSpecificationQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *TechnicalSpecificationQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*TechnicalSpecificationQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *TechnicalSpecificationQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *TechnicalSpecificationQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *TechnicalSpecificationQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TechnicalSpecificationQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *TechnicalSpecificationQuery) Clone() *TechnicalSpecificationQuery {
	if _q == nil {
		return nil
	}
	return &TechnicalSpecificationQuery{
		config:             _q.config,
		ctx:                _q.ctx.Clone(),
		order:              append([]technicalspecification.OrderOption{}, _q.order...),
		inters:             append([]Interceptor{}, _q.inters...),
		predicates:         append([]predicate.TechnicalSpecification{}, _q.predicates...),
		withSatellite:      _q.withSatellite.Clone(),
		withStands:         _q.withStands.Clone(),
		withCalendarStages: _q.withCalendarStages.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithSatellite tells the query-builder to eager-load the nodes that are connected to
// the "satellite" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TechnicalSpecificationQuery) WithSatellite(opts ...func(*SatelliteQuery)) *TechnicalSpecificationQuery {
	query := (&SatelliteClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSatellite = query
	return _q
}

// WithStands tells the query-builder to eager-load the nodes that are connected to
// the "stands" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TechnicalSpecificationQuery) WithStands(opts ...func(*StandQuery)) *TechnicalSpecificationQuery {
	query := (&StandClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStands = query
	return _q
}

// WithCalendarStages tells the query-builder to eager-load the nodes that are connected to
// the "calendar_stages" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TechnicalSpecificationQuery) WithCalendarStages(opts ...func(*CalendarStageQuery)) *TechnicalSpecificationQuery {
	query := (&CalendarStageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCalendarStages = query
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
//	client.TechnicalSpecification.Query().
//		GroupBy(technicalspecification.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *TechnicalSpecificationQuery) GroupBy(field string, fields ...string) *TechnicalSpecificationGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TechnicalSpecificationGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = technicalspecification.Label
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
//	client.TechnicalSpecification.Query().
//		Select(technicalspecification.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *TechnicalSpecificationQuery) Select(fields ...string) *TechnicalSpecificationSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &TechnicalSpecificationSelect{TechnicalSpecificationQuery: _q}
	sbuild.label = technicalspecification.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TechnicalSpecificationSelect configured with the given aggregations.
func (_q *TechnicalSpecificationQuery) Aggregate(fns ...AggregateFunc) *TechnicalSpecificationSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *TechnicalSpecificationQuery) prepareQuery(ctx context.Context) error {
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
		if !technicalspecification.ValidColumn(f) {
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

func (_q *TechnicalSpecificationQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*TechnicalSpecification, error) {
	var (
		nodes       = []*TechnicalSpecification{}
		withFKs     = _q.withFKs
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withSatellite != nil,
			_q.withStands != nil,
			_q.withCalendarStages != nil,
		}
	)
	if _q.withSatellite != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, technicalspecification.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*TechnicalSpecification).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &TechnicalSpecification{config: _q.config}
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
			func(n *TechnicalSpecification, e *Satellite) { n.Edges.Satellite = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withStands; query != nil {
		if err := _q.loadStands(ctx, query, nodes,
			func(n *TechnicalSpecification) { n.Edges.Stands = []*Stand{} },
			func(n *TechnicalSpecification, e *Stand) { n.Edges.Stands = append(n.Edges.Stands, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withCalendarStages; query != nil {
		if err := _q.loadCalendarStages(ctx, query, nodes,
			func(n *TechnicalSpecification) { n.Edges.CalendarStages = []*CalendarStage{} },
			func(n *TechnicalSpecification, e *CalendarStage) {
				n.Edges.CalendarStages = append(n.Edges.CalendarStages, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *TechnicalSpecificationQuery) loadSatellite(ctx context.Context, query *SatelliteQuery, nodes []*TechnicalSpecification, init func(*TechnicalSpecification), assign func(*TechnicalSpecification, *Satellite)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*TechnicalSpecification)
	for i := range nodes {
		if nodes[i].satellite_technical_specifications == nil {
			continue
		}
		fk := *nodes[i].satellite_technical_specifications
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
			return fmt.Errorf(`unexpected foreign-key "satellite_technical_specifications" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *TechnicalSpecificationQuery) loadStands(ctx context.Context, query *StandQuery, nodes []*TechnicalSpecification, init func(*TechnicalSpecification), assign func(*TechnicalSpecification, *Stand)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*TechnicalSpecification)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.Stand(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(technicalspecification.StandsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.technical_specification_stands
		if fk == nil {
			return fmt.Errorf(`foreign-key "technical_specification_stands" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "technical_specification_stands" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *TechnicalSpecificationQuery) loadCalendarStages(ctx context.Context, query *CalendarStageQuery, nodes []*TechnicalSpecification, init func(*TechnicalSpecification), assign func(*TechnicalSpecification, *CalendarStage)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*TechnicalSpecification)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.CalendarStage(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(technicalspecification.CalendarStagesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.technical_specification_calendar_stages
		if fk == nil {
			return fmt.Errorf(`foreign-key "technical_specification_calendar_stages" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "technical_specification_calendar_stages" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *TechnicalSpecificationQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *TechnicalSpecificationQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(technicalspecification.Table, technicalspecification.Columns, sqlgraph.NewFieldSpec(technicalspecification.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, technicalspecification.FieldID)
		for i := range fields {
			if fields[i] != technicalspecification.FieldID {
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

func (_q *TechnicalSpecificationQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(technicalspecification.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = technicalspecification.Columns
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

// TechnicalSpecificationGroupBy is the group-by builder for TechnicalSpecification entities.
type TechnicalSpecificationGroupBy struct {
	selector
	build *TechnicalSpecificationQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *TechnicalSpecificationGroupBy) Aggregate(fns ...AggregateFunc) *TechnicalSpecificationGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *TechnicalSpecificationGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TechnicalSpecificationQuery, *TechnicalSpecificationGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *TechnicalSpecificationGroupBy) sqlScan(ctx context.Context, root *TechnicalSpecificationQuery, v any) error {
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

// TechnicalSpecificationSelect is the builder for selecting fields of TechnicalSpecification entities.
type TechnicalSpecificationSelect struct {
	*TechnicalSpecificationQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *TechnicalSpecificationSelect) Aggregate(fns ...AggregateFunc) *TechnicalSpecificationSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *TechnicalSpecificationSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TechnicalSpecificationQuery, *TechnicalSpecificationSelect](ctx, _s.TechnicalSpecificationQuery, _s, _s.inters, v)
}

func (_s *TechnicalSpecificationSelect) sqlScan(ctx context.Context, root *TechnicalSpecificationQuery, v any) error {
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
