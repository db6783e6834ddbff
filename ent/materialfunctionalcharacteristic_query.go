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
	"satfab.io/satfab/ent/materialfunctionalcharacteristic"
	"satfab.io/satfab/ent/predicate"
)

// MaterialFunctionalCharacteristicQuery is the builder for querying MaterialFunctionalCharacteristic entities.
type MaterialFunctionalCharacteristicQuery struct {
	config
	ctx          *QueryContext
	order        []materialfunctionalcharacteristic.OrderOption
	inters       []Interceptor
	predicates   []predicate.MaterialFunctionalCharacteristic
	withMaterial *MaterialQuery
	withFKs      bool
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the MaterialFunctionalCharacteristicQuery builder.
func (_q *MaterialFunctionalCharacteristicQuery) Where(ps ...predicate.MaterialFunctionalCharacteristic) *MaterialFunctionalCharacteristicQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *MaterialFunctionalCharacteristicQuery) Limit(limit int) *MaterialFunctionalCharacteristicQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *MaterialFunctionalCharacteristicQuery) Offset(offset int) *MaterialFunctionalCharacteristicQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *MaterialFunctionalCharacteristicQuery) Unique(unique bool) *MaterialFunctionalCharacteristicQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *MaterialFunctionalCharacteristicQuery) Order(o ...materialfunctionalcharacteristic.OrderOption) *MaterialFunctionalCharacteristicQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryMaterial chains the current query on the "material" edge.
func (_q *MaterialFunctionalCharacteristicQuery) QueryMaterial() *MaterialQuery {
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
			sqlgraph.From(materialfunctionalcharacteristic.Table, materialfunctionalcharacteristic.FieldID, selector),
			sqlgraph.To(material.Table, material.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, materialfunctionalcharacteristic.MaterialTable, materialfunctionalcharacteristic.MaterialColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first MaterialFunctionalCharacteristic entity from the query.
// Returns a *NotFoundError when no MaterialFunctionalCharacteristic was found.
func (_q *MaterialFunctionalCharacteristicQuery) First(ctx context.Context) (*MaterialFunctionalCharacteristic, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{materialfunctionalcharacteristic.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *MaterialFunctionalCharacteristicQuery) FirstX(ctx context.Context) *MaterialFunctionalCharacteristic {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first MaterialFunctionalCharacteristic ID from the query.
// Returns a *NotFoundError when no MaterialFunctionalCharacteristic ID was found.
func (_q *MaterialFunctionalCharacteristicQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{materialfunctionalcharacteristic.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *MaterialFunctionalCharacteristicQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single MaterialFunctionalCharacteristic entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one MaterialFunctionalCharacteristic entity is found.
// Returns a *NotFoundError when no MaterialFunctionalCharacteristic entities are found.
func (_q *MaterialFunctionalCharacteristicQuery) Only(ctx context.Context) (*MaterialFunctionalCharacteristic, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{materialfunctionalcharacteristic.Label}
	default:
		return nil, &NotSingularError{materialfunctionalcharacteristic.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *MaterialFunctionalCharacteristicQuery) OnlyX(ctx context.Context) *MaterialFunctionalCharacteristic {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only MaterialFunctionalCharacteristic ID in the query.
// Returns a *NotSingularError when more than one MaterialFunctionalCharacteristic ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *MaterialFunctionalCharacteristicQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{materialfunctionalcharacteristic.Label}
	default:
		err = &NotSingularError{materialfunctionalcharacteristic.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *MaterialFunctionalCharacteristicQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of MaterialFunctionalCharacteristics.
func (_q *MaterialFunctionalCharacteristicQuery) All(ctx context.Context) ([]*MaterialFunctionalCharacteristic, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*MaterialFunctionalCharacteristic, *MaterialFunctionalCharacteristicQuery]()
	return withInterceptors[[]*MaterialFunctionalCharacteristic](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *MaterialFunctionalCharacteristicQuery) AllX(ctx context.Context) []*MaterialFunctionalCharacteristic {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of MaterialFunctionalCharacteristic IDs.
func (_q *MaterialFunctionalCharacteristicQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(materialfunctionalcharacteristic.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *MaterialFunctionalCharacteristicQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *MaterialFunctionalCharacteristicQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*MaterialFunctionalCharacteristicQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *MaterialFunctionalCharacteristicQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *MaterialFunctionalCharacteristicQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *MaterialFunctionalCharacteristicQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the MaterialFunctionalCharacteristicQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *MaterialFunctionalCharacteristicQuery) Clone() *MaterialFunctionalCharacteristicQuery {
	if _q == nil {
		return nil
	}
	return &MaterialFunctionalCharacteristicQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]materialfunctionalcharacteristic.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.MaterialFunctionalCharacteristic{}, _q.predicates...),
		withMaterial: _q.withMaterial.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithMaterial tells the query-builder to eager-load the nodes that are connected to
// the "material" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MaterialFunctionalCharacteristicQuery) WithMaterial(opts ...func(*MaterialQuery)) *MaterialFunctionalCharacteristicQuery {
	query := (&MaterialClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMaterial = query
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
//	client.MaterialFunctionalCharacteristic.Query().
//		GroupBy(materialfunctionalcharacteristic.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *MaterialFunctionalCharacteristicQuery) GroupBy(field string, fields ...string) *MaterialFunctionalCharacteristicGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &MaterialFunctionalCharacteristicGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = materialfunctionalcharacteristic.Label
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
//	client.MaterialFunctionalCharacteristic.Query().
//		Select(materialfunctionalcharacteristic.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *MaterialFunctionalCharacteristicQuery) Select(fields ...string) *MaterialFunctionalCharacteristicSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &MaterialFunctionalCharacteristicSelect{MaterialFunctionalCharacteristicQuery: _q}
	sbuild.label = materialfunctionalcharacteristic.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a MaterialFunctionalCharacteristicSelect configured with the given aggregations.
func (_q *MaterialFunctionalCharacteristicQuery) Aggregate(fns ...AggregateFunc) *MaterialFunctionalCharacteristicSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *MaterialFunctionalCharacteristicQuery) prepareQuery(ctx context.Context) error {
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
		if !materialfunctionalcharacteristic.ValidColumn(f) {
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

func (_q *MaterialFunctionalCharacteristicQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*MaterialFunctionalCharacteristic, error) {
	var (
		nodes       = []*MaterialFunctionalCharacteristic{}
		withFKs     = _q.withFKs
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withMaterial != nil,
		}
	)
	if _q.withMaterial != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, materialfunctionalcharacteristic.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*MaterialFunctionalCharacteristic).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &MaterialFunctionalCharacteristic{config: _q.config}
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
			func(n *MaterialFunctionalCharacteristic, e *Material) { n.Edges.Material = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *MaterialFunctionalCharacteristicQuery) loadMaterial(ctx context.Context, query *MaterialQuery, nodes []*MaterialFunctionalCharacteristic, init func(*MaterialFunctionalCharacteristic), assign func(*MaterialFunctionalCharacteristic, *Material)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*MaterialFunctionalCharacteristic)
	for i := range nodes {
		if nodes[i].material_functional_characteristics == nil {
			continue
		}
		fk := *nodes[i].material_functional_characteristics
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
			return fmt.Errorf(`unexpected foreign-key "material_functional_characteristics" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *MaterialFunctionalCharacteristicQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *MaterialFunctionalCharacteristicQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(materialfunctionalcharacteristic.Table, materialfunctionalcharacteristic.Columns, sqlgraph.NewFieldSpec(materialfunctionalcharacteristic.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, materialfunctionalcharacteristic.FieldID)
		for i := range fields {
			if fields[i] != materialfunctionalcharacteristic.FieldID {
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

func (_q *MaterialFunctionalCharacteristicQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(materialfunctionalcharacteristic.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = materialfunctionalcharacteristic.Columns
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

// MaterialFunctionalCharacteristicGroupBy is the group-by builder for MaterialFunctionalCharacteristic entities.
type MaterialFunctionalCharacteristicGroupBy struct {
	selector
	build *MaterialFunctionalCharacteristicQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *MaterialFunctionalCharacteristicGroupBy) Aggregate(fns ...AggregateFunc) *MaterialFunctionalCharacteristicGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *MaterialFunctionalCharacteristicGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MaterialFunctionalCharacteristicQuery, *MaterialFunctionalCharacteristicGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *MaterialFunctionalCharacteristicGroupBy) sqlScan(ctx context.Context, root *MaterialFunctionalCharacteristicQuery, v any) error {
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

// MaterialFunctionalCharacteristicSelect is the builder for selecting fields of MaterialFunctionalCharacteristic entities.
type MaterialFunctionalCharacteristicSelect struct {
	*MaterialFunctionalCharacteristicQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *MaterialFunctionalCharacteristicSelect) Aggregate(fns ...AggregateFunc) *MaterialFunctionalCharacteristicSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *MaterialFunctionalCharacteristicSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MaterialFunctionalCharacteristicQuery, *MaterialFunctionalCharacteristicSelect](ctx, _s.MaterialFunctionalCharacteristicQuery, _s, _s.inters, v)
}

func (_s *MaterialFunctionalCharacteristicSelect) sqlScan(ctx context.Context, root *MaterialFunctionalCharacteristicQuery, v any) error {
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
