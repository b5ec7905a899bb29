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
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/event"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/predicate"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchlog"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchrecord"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchresource"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchstrategy"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/tokenusage"
)

// ResearchRecordQuery is the builder for querying ResearchRecord entities.
type ResearchRecordQuery struct {
	config
	ctx             *QueryContext
	order           []researchrecord.OrderOption
	inters          []Interceptor
	predicates      []predicate.ResearchRecord
	withLogs        *ResearchLogQuery
	withResources   *ResearchResourceQuery
	withStrategy    *ResearchStrategyQuery
	withTokenUsages *TokenUsageQuery
	withEvents      *EventQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ResearchRecordQuery builder.
func (_q *ResearchRecordQuery) Where(ps ...predicate.ResearchRecord) *ResearchRecordQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ResearchRecordQuery) Limit(limit int) *ResearchRecordQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ResearchRecordQuery) Offset(offset int) *ResearchRecordQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ResearchRecordQuery) Unique(unique bool) *ResearchRecordQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ResearchRecordQuery) Order(o ...researchrecord.OrderOption) *ResearchRecordQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryLogs chains the current query on the "logs" edge.
func (_q *ResearchRecordQuery) QueryLogs() *ResearchLogQuery {
	query := (&ResearchLogClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(researchrecord.Table, researchrecord.FieldID, selector),
			sqlgraph.To(researchlog.Table, researchlog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchrecord.LogsTable, researchrecord.LogsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryResources chains the current query on the "resources" edge.
func (_q *ResearchRecordQuery) QueryResources() *ResearchResourceQuery {
	query := (&ResearchResourceClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(researchrecord.Table, researchrecord.FieldID, selector),
			sqlgraph.To(researchresource.Table, researchresource.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchrecord.ResourcesTable, researchrecord.ResourcesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryStrategy chains the current query on the "strategy" edge.
func (_q *ResearchRecordQuery) QueryStrategy() *ResearchStrategyQuery {
	query := (&ResearchStrategyClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(researchrecord.Table, researchrecord.FieldID, selector),
			sqlgraph.To(researchstrategy.Table, researchstrategy.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, researchrecord.StrategyTable, researchrecord.StrategyColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTokenUsages chains the current query on the "token_usages" edge.
func (_q *ResearchRecordQuery) QueryTokenUsages() *TokenUsageQuery {
	query := (&TokenUsageClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(researchrecord.Table, researchrecord.FieldID, selector),
			sqlgraph.To(tokenusage.Table, tokenusage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchrecord.TokenUsagesTable, researchrecord.TokenUsagesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEvents chains the current query on the "events" edge.
func (_q *ResearchRecordQuery) QueryEvents() *EventQuery {
	query := (&EventClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(researchrecord.Table, researchrecord.FieldID, selector),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchrecord.EventsTable, researchrecord.EventsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ResearchRecord entity from the query.
// Returns a *NotFoundError when no ResearchRecord was found.
func (_q *ResearchRecordQuery) First(ctx context.Context) (*ResearchRecord, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{researchrecord.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ResearchRecordQuery) FirstX(ctx context.Context) *ResearchRecord {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ResearchRecord ID from the query.
// Returns a *NotFoundError when no ResearchRecord ID was found.
func (_q *ResearchRecordQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{researchrecord.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ResearchRecordQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ResearchRecord entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ResearchRecord entity is found.
// Returns a *NotFoundError when no ResearchRecord entities are found.
func (_q *ResearchRecordQuery) Only(ctx context.Context) (*ResearchRecord, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{researchrecord.Label}
	default:
		return nil, &NotSingularError{researchrecord.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ResearchRecordQuery) OnlyX(ctx context.Context) *ResearchRecord {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ResearchRecord ID in the query.
// Returns a *NotSingularError when more than one ResearchRecord ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ResearchRecordQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{researchrecord.Label}
	default:
		err = &NotSingularError{researchrecord.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ResearchRecordQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ResearchRecords.
func (_q *ResearchRecordQuery) All(ctx context.Context) ([]*ResearchRecord, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ResearchRecord, *ResearchRecordQuery]()
	return withInterceptors[[]*ResearchRecord](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ResearchRecordQuery) AllX(ctx context.Context) []*ResearchRecord {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ResearchRecord IDs.
func (_q *ResearchRecordQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(researchrecord.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ResearchRecordQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ResearchRecordQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ResearchRecordQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ResearchRecordQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ResearchRecordQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ResearchRecordQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ResearchRecordQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ResearchRecordQuery) Clone() *ResearchRecordQuery {
	if _q == nil {
		return nil
	}
	return &ResearchRecordQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]researchrecord.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.ResearchRecord{}, _q.predicates...),
		withLogs:        _q.withLogs.Clone(),
		withResources:   _q.withResources.Clone(),
		withStrategy:    _q.withStrategy.Clone(),
		withTokenUsages: _q.withTokenUsages.Clone(),
		withEvents:      _q.withEvents.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithLogs tells the query-builder to eager-load the nodes that are connected to
// the "logs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ResearchRecordQuery) WithLogs(opts ...func(*ResearchLogQuery)) *ResearchRecordQuery {
	query := (&ResearchLogClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLogs = query
	return _q
}

// WithResources tells the query-builder to eager-load the nodes that are connected to
// the "resources" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ResearchRecordQuery) WithResources(opts ...func(*ResearchResourceQuery)) *ResearchRecordQuery {
	query := (&ResearchResourceClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withResources = query
	return _q
}

// WithStrategy tells the query-builder to eager-load the nodes that are connected to
// the "strategy" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ResearchRecordQuery) WithStrategy(opts ...func(*ResearchStrategyQuery)) *ResearchRecordQuery {
	query := (&ResearchStrategyClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStrategy = query
	return _q
}

// WithTokenUsages tells the query-builder to eager-load the nodes that are connected to
// the "token_usages" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ResearchRecordQuery) WithTokenUsages(opts ...func(*TokenUsageQuery)) *ResearchRecordQuery {
	query := (&TokenUsageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTokenUsages = query
	return _q
}

// WithEvents tells the query-builder to eager-load the nodes that are connected to
// the "events" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ResearchRecordQuery) WithEvents(opts ...func(*EventQuery)) *ResearchRecordQuery {
	query := (&EventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEvents = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Query string `json:"query,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ResearchRecord.Query().
//		GroupBy(researchrecord.FieldQuery).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ResearchRecordQuery) GroupBy(field string, fields ...string) *ResearchRecordGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ResearchRecordGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = researchrecord.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Query string `json:"query,omitempty"`
//	}
//
//	client.ResearchRecord.Query().
//		Select(researchrecord.FieldQuery).
//		Scan(ctx, &v)
func (_q *ResearchRecordQuery) Select(fields ...string) *ResearchRecordSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ResearchRecordSelect{ResearchRecordQuery: _q}
	sbuild.label = researchrecord.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ResearchRecordSelect configured with the given aggregations.
func (_q *ResearchRecordQuery) Aggregate(fns ...AggregateFunc) *ResearchRecordSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ResearchRecordQuery) prepareQuery(ctx context.Context) error {
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
		if !researchrecord.ValidColumn(f) {
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

func (_q *ResearchRecordQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ResearchRecord, error) {
	var (
		nodes       = []*ResearchRecord{}
		_spec       = _q.querySpec()
		loadedTypes = [5]bool{
			_q.withLogs != nil,
			_q.withResources != nil,
			_q.withStrategy != nil,
			_q.withTokenUsages != nil,
			_q.withEvents != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ResearchRecord).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ResearchRecord{config: _q.config}
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
	if query := _q.withLogs; query != nil {
		if err := _q.loadLogs(ctx, query, nodes,
			func(n *ResearchRecord) { n.Edges.Logs = []*ResearchLog{} },
			func(n *ResearchRecord, e *ResearchLog) { n.Edges.Logs = append(n.Edges.Logs, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withResources; query != nil {
		if err := _q.loadResources(ctx, query, nodes,
			func(n *ResearchRecord) { n.Edges.Resources = []*ResearchResource{} },
			func(n *ResearchRecord, e *ResearchResource) { n.Edges.Resources = append(n.Edges.Resources, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withStrategy; query != nil {
		if err := _q.loadStrategy(ctx, query, nodes, nil,
			func(n *ResearchRecord, e *ResearchStrategy) { n.Edges.Strategy = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTokenUsages; query != nil {
		if err := _q.loadTokenUsages(ctx, query, nodes,
			func(n *ResearchRecord) { n.Edges.TokenUsages = []*TokenUsage{} },
			func(n *ResearchRecord, e *TokenUsage) { n.Edges.TokenUsages = append(n.Edges.TokenUsages, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withEvents; query != nil {
		if err := _q.loadEvents(ctx, query, nodes,
			func(n *ResearchRecord) { n.Edges.Events = []*Event{} },
			func(n *ResearchRecord, e *Event) { n.Edges.Events = append(n.Edges.Events, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ResearchRecordQuery) loadLogs(ctx context.Context, query *ResearchLogQuery, nodes []*ResearchRecord, init func(*ResearchRecord), assign func(*ResearchRecord, *ResearchLog)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*ResearchRecord)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(researchlog.FieldResearchID)
	}
	query.Where(predicate.ResearchLog(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(researchrecord.LogsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ResearchID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "research_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ResearchRecordQuery) loadResources(ctx context.Context, query *ResearchResourceQuery, nodes []*ResearchRecord, init func(*ResearchRecord), assign func(*ResearchRecord, *ResearchResource)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*ResearchRecord)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(researchresource.FieldResearchID)
	}
	query.Where(predicate.ResearchResource(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(researchrecord.ResourcesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ResearchID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "research_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ResearchRecordQuery) loadStrategy(ctx context.Context, query *ResearchStrategyQuery, nodes []*ResearchRecord, init func(*ResearchRecord), assign func(*ResearchRecord, *ResearchStrategy)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*ResearchRecord)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(researchstrategy.FieldResearchID)
	}
	query.Where(predicate.ResearchStrategy(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(researchrecord.StrategyColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ResearchID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "research_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ResearchRecordQuery) loadTokenUsages(ctx context.Context, query *TokenUsageQuery, nodes []*ResearchRecord, init func(*ResearchRecord), assign func(*ResearchRecord, *TokenUsage)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*ResearchRecord)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(tokenusage.FieldResearchID)
	}
	query.Where(predicate.TokenUsage(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(researchrecord.TokenUsagesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ResearchID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "research_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ResearchRecordQuery) loadEvents(ctx context.Context, query *EventQuery, nodes []*ResearchRecord, init func(*ResearchRecord), assign func(*ResearchRecord, *Event)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*ResearchRecord)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(event.FieldResearchID)
	}
	query.Where(predicate.Event(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(researchrecord.EventsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ResearchID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "research_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ResearchRecordQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ResearchRecordQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(researchrecord.Table, researchrecord.Columns, sqlgraph.NewFieldSpec(researchrecord.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, researchrecord.FieldID)
		for i := range fields {
			if fields[i] != researchrecord.FieldID {
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

func (_q *ResearchRecordQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(researchrecord.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = researchrecord.Columns
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

// ResearchRecordGroupBy is the group-by builder for ResearchRecord entities.
type ResearchRecordGroupBy struct {
	selector
	build *ResearchRecordQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ResearchRecordGroupBy) Aggregate(fns ...AggregateFunc) *ResearchRecordGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ResearchRecordGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ResearchRecordQuery, *ResearchRecordGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ResearchRecordGroupBy) sqlScan(ctx context.Context, root *ResearchRecordQuery, v any) error {
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

// ResearchRecordSelect is the builder for selecting fields of ResearchRecord entities.
type ResearchRecordSelect struct {
	*ResearchRecordQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ResearchRecordSelect) Aggregate(fns ...AggregateFunc) *ResearchRecordSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ResearchRecordSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ResearchRecordQuery, *ResearchRecordSelect](ctx, _s.ResearchRecordQuery, _s, _s.inters, v)
}

func (_s *ResearchRecordSelect) sqlScan(ctx context.Context, root *ResearchRecordQuery, v any) error {
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
