// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"satfab.io/satfab/ent/material"
	"satfab.io/satfab/ent/materialoperationalcharacteristic"
	"satfab.io/satfab/ent/predicate"
	"satfab.io/satfab/ent/stand"
)

// MaterialOperationalCharacteristicQuery is the builder for querying MaterialOperationalCharacteristic entities.
type MaterialOperationalCharacteristicQuery struct {
	config
	ctx          *QueryContext
	order        []materialoperationalcharacteristic.OrderOption
	inters       []Interceptor
	predicates   []predicate.MaterialOperationalCharacteristic
	withMaterial *MaterialQuery
	withStand    *StandQuery
	withFKs      bool
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the MaterialOperationalCharacteristicQuery builder.
func (_q *MaterialOperationalCharacteristicQuery) Where(ps ...predicate.MaterialOperationalCharacteristic) *MaterialOperationalCharacteristicQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *MaterialOperationalCharacteristicQuery) Limit(limit int) *MaterialOperationalCharacteristicQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *MaterialOperationalCharacteristicQuery) Offset(offset int) *MaterialOperationalCharacteristicQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *MaterialOperationalCharacteristicQuery) Unique(unique bool) *MaterialOperationalCharacteristicQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *MaterialOperationalCharacteristicQuery) Order(o ...materialoperationalcharacteristic.OrderOption) *MaterialOperationalCharacteristicQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryMaterial chains the current query on the "material" edge.
func (_q *MaterialOperationalCharacteristicQuery) QueryMaterial() *MaterialQuery {
	query := (&MaterialClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(materialoperationalcharacteristic.Table, materialoperationalcharacteristic.FieldID, selector),
			sqlgraph.To(material.Table, material.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, materialoperationalcharacteristic.MaterialTable, materialoperationalcharacteristic.MaterialColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryStand chains the current query on the "stand" edge.
func (_q *MaterialOperationalCharacteristicQuery) QueryStand() *StandQuery {
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
			sqlgraph.From(materialoperationalcharacteristic.Table, materialoperationalcharacteristic.FieldID, selector),
			sqlgraph.To(stand.Table, stand.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, materialoperationalcharacteristic.StandTable, materialoperationalcharacteristic.StandColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first MaterialOperationalCharacteristic entity from the query.
// Returns a *NotFoundError when no MaterialOperationalCharacteristic was found.
func (_q *MaterialOperationalCharacteristicQuery) First(ctx context.Context) (*MaterialOperationalCharacteristic, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{materialoperationalcharacteristic.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *MaterialOperationalCharacteristicQuery) FirstX(ctx context.Context) *MaterialOperationalCharacteristic {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first MaterialOperationalCharacteristic ID from the query.
// Returns a *NotFoundError when no MaterialOperationalCharacteristic ID was found.
func (_q *MaterialOperationalCharacteristicQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{materialoperationalcharacteristic.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *MaterialOperationalCharacteristicQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single MaterialOperationalCharacteristic entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one MaterialOperationalCharacteristic entity is found.
// Returns a *NotFoundError when no MaterialOperationalCharacteristic entities are found.
func (_q *MaterialOperationalCharacteristicQuery) Only(ctx context.Context) (*MaterialOperationalCharacteristic, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{materialoperationalcharacteristic.Label}
	default:
		return nil, &NotSingularError{materialoperationalcharacteristic.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *MaterialOperationalCharacteristicQuery) OnlyX(ctx context.Context) *MaterialOperationalCharacteristic {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only MaterialOperationalCharacteristic ID in the query.
// Returns a *NotSingularError when more than one MaterialOperationalCharacteristic ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *MaterialOperationalCharacteristicQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{materialoperationalcharacteristic.Label}
	default:
		err = &NotSingularError{materialoperationalcharacteristic.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *MaterialOperationalCharacteristicQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of MaterialOperationalCharacteristics.
func (_q *MaterialOperationalCharacteristicQuery) All(ctx context.Context) ([]*MaterialOperationalCharacteristic, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*MaterialOperationalCharacteristic, *MaterialOperationalCharacteristicQuery]()
	return withInterceptors[[]*MaterialOperationalCharacteristic](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *MaterialOperationalCharacteristicQuery) AllX(ctx context.Context) []*MaterialOperationalCharacteristic {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of MaterialOperationalCharacteristic IDs.
func (_q *MaterialOperationalCharacteristicQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(materialoperationalcharacteristic.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *MaterialOperationalCharacteristicQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *MaterialOperationalCharacteristicQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*MaterialOperationalCharacteristicQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *MaterialOperationalCharacteristicQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *MaterialOperationalCharacteristicQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *MaterialOperationalCharacteristicQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the MaterialOperationalCharacteristicQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *MaterialOperationalCharacteristicQuery) Clone() *MaterialOperationalCharacteristicQuery {
	if _q == nil {
		return nil
	}
	return &MaterialOperationalCharacteristicQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]materialoperationalcharacteristic.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.MaterialOperationalCharacteristic{}, _q.predicates...),
		withMaterial: _q.withMaterial.Clone(),
		withStand:    _q.withStand.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithMaterial tells the query-builder to eager-load the nodes that are connected to
// the "material" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MaterialOperationalCharacteristicQuery) WithMaterial(opts ...func(*MaterialQuery)) *MaterialOperationalCharacteristicQuery {
	query := (&MaterialClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMaterial = query
	return _q
}

// WithStand tells the query-builder to eager-load the nodes that are connected to
// the "stand" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MaterialOperationalCharacteristicQuery) WithStand(opts ...func(*StandQuery)) *MaterialOperationalCharacteristicQuery {
	query := (&StandClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStand = query
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
//	client.MaterialOperationalCharacteristic.Query().
//		GroupBy(materialoperationalcharacteristic.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *MaterialOperationalCharacteristicQuery) GroupBy(field string, fields ...string) *MaterialOperationalCharacteristicGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &MaterialOperationalCharacteristicGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = materialoperationalcharacteristic.Label
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
//	client.MaterialOperationalCharacteristic.Query().
//		Select(materialoperationalcharacteristic.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *MaterialOperationalCharacteristicQuery) Select(fields ...string) *MaterialOperationalCharacteristicSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &MaterialOperationalCharacteristicSelect{MaterialOperationalCharacteristicQuery: _q}
	sbuild.label = materialoperationalcharacteristic.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a MaterialOperationalCharacteristicSelect configured with the given aggregations.
func (_q *MaterialOperationalCharacteristicQuery) Aggregate(fns ...AggregateFunc) *MaterialOperationalCharacteristicSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *MaterialOperationalCharacteristicQuery) prepareQuery(ctx context.Context) error {
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
		if !materialoperationalcharacteristic.ValidColumn(f) {
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

func (_q *MaterialOperationalCharacteristicQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*MaterialOperationalCharacteristic, error) {
	var (
		nodes       = []*MaterialOperationalCharacteristic{}
		withFKs     = _q.withFKs
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withMaterial != nil,
			_q.withStand != nil,
		}
	)
	if _q.withMaterial != nil || _q.withStand != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, materialoperationalcharacteristic.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*MaterialOperationalCharacteristic).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &MaterialOperationalCharacteristic{config: _q.config}
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
	if query := _q.withMaterial; query != nil {
		if err := _q.loadMaterial(ctx, query, nodes, nil,
			func(n *MaterialOperationalCharacteristic, e *Material) { n.Edges.Material = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withStand; query != nil {
		if err := _q.loadStand(ctx, query, nodes, nil,
			func(n *MaterialOperationalCharacteristic, e *Stand) { n.Edges.Stand = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *MaterialOperationalCharacteristicQuery) loadMaterial(ctx context.Context, query *MaterialQuery, nodes []*MaterialOperationalCharacteristic, init func(*MaterialOperationalCharacteristic), assign func(*MaterialOperationalCharacteristic, *Material)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*MaterialOperationalCharacteristic)
	for i := range nodes {
		if nodes[i].material_operational_characteristics == nil {
			continue
		}
		fk := *nodes[i].material_operational_characteristics
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(material.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "material_operational_characteristics" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *MaterialOperationalCharacteristicQuery) loadStand(ctx context.Context, query *StandQuery, nodes []*MaterialOperationalCharacteristic, init func(*MaterialOperationalCharacteristic), assign func(*MaterialOperationalCharacteristic, *Stand)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*MaterialOperationalCharacteristic)
	for i := range nodes {
		if nodes[i].stand_material_op_characteristics == nil {
			continue
		}
		fk := *nodes[i].stand_material_op_characteristics
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(stand.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "stand_material_op_characteristics" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *MaterialOperationalCharacteristicQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *MaterialOperationalCharacteristicQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(materialoperationalcharacteristic.Table, materialoperationalcharacteristic.Columns, sqlgraph.NewFieldSpec(materialoperationalcharacteristic.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, materialoperationalcharacteristic.FieldID)
		for i := range fields {
			if fields[i] != materialoperationalcharacteristic.FieldID {
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

func (_q *MaterialOperationalCharacteristicQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(materialoperationalcharacteristic.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = materialoperationalcharacteristic.Columns
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

// MaterialOperationalCharacteristicGroupBy is the group-by builder for MaterialOperationalCharacteristic entities.
type MaterialOperationalCharacteristicGroupBy struct {
	selector
	build *MaterialOperationalCharacteristicQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *MaterialOperationalCharacteristicGroupBy) Aggregate(fns ...AggregateFunc) *MaterialOperationalCharacteristicGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *MaterialOperationalCharacteristicGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MaterialOperationalCharacteristicQuery, *MaterialOperationalCharacteristicGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *MaterialOperationalCharacteristicGroupBy) sqlScan(ctx context.Context, root *MaterialOperationalCharacteristicQuery, v any) error {
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

// MaterialOperationalCharacteristicSelect is the builder for selecting fields of MaterialOperationalCharacteristic entities.
type MaterialOperationalCharacteristicSelect struct {
	*MaterialOperationalCharacteristicQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *MaterialOperationalCharacteristicSelect) Aggregate(fns ...AggregateFunc) *MaterialOperationalCharacteristicSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *MaterialOperationalCharacteristicSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MaterialOperationalCharacteristicQuery, *MaterialOperationalCharacteristicSelect](ctx, _s.MaterialOperationalCharacteristicQuery, _s, _s.inters, v)
}

func (_s *MaterialOperationalCharacteristicSelect) sqlScan(ctx context.Context, root *MaterialOperationalCharacteristicQuery, v any) error {
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
