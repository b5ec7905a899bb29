// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/event"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchlog"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchrecord"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchresource"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchstrategy"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/setting"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/tokenusage"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// ResearchLog is the client for interacting with the ResearchLog builders.
	ResearchLog *ResearchLogClient
	// ResearchRecord is the client for interacting with the ResearchRecord builders.
	ResearchRecord *ResearchRecordClient
	// ResearchResource is the client for interacting with the ResearchResource builders.
	ResearchResource *ResearchResourceClient
	// ResearchStrategy is the client for interacting with the ResearchStrategy builders.
	ResearchStrategy *ResearchStrategyClient
	// Setting is the client for interacting with the Setting builders.
	Setting *SettingClient
	// TokenUsage is the client for interacting with the TokenUsage builders.
	TokenUsage *TokenUsageClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Event = NewEventClient(c.config)
	c.ResearchLog = NewResearchLogClient(c.config)
	c.ResearchRecord = NewResearchRecordClient(c.config)
	c.ResearchResource = NewResearchResourceClient(c.config)
	c.ResearchStrategy = NewResearchStrategyClient(c.config)
	c.Setting = NewSettingClient(c.config)
	c.TokenUsage = NewTokenUsageClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		Event:            NewEventClient(cfg),
		ResearchLog:      NewResearchLogClient(cfg),
		ResearchRecord:   NewResearchRecordClient(cfg),
		ResearchResource: NewResearchResourceClient(cfg),
		ResearchStrategy: NewResearchStrategyClient(cfg),
		Setting:          NewSettingClient(cfg),
		TokenUsage:       NewTokenUsageClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		Event:            NewEventClient(cfg),
		ResearchLog:      NewResearchLogClient(cfg),
		ResearchRecord:   NewResearchRecordClient(cfg),
		ResearchResource: NewResearchResourceClient(cfg),
		ResearchStrategy: NewResearchStrategyClient(cfg),
		Setting:          NewSettingClient(cfg),
		TokenUsage:       NewTokenUsageClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Event.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Event, c.ResearchLog, c.ResearchRecord, c.ResearchResource,
		c.ResearchStrategy, c.Setting, c.TokenUsage,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Event, c.ResearchLog, c.ResearchRecord, c.ResearchResource,
		c.ResearchStrategy, c.Setting, c.TokenUsage,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *ResearchLogMutation:
		return c.ResearchLog.mutate(ctx, m)
	case *ResearchRecordMutation:
		return c.ResearchRecord.mutate(ctx, m)
	case *ResearchResourceMutation:
		return c.ResearchResource.mutate(ctx, m)
	case *ResearchStrategyMutation:
		return c.ResearchStrategy.mutate(ctx, m)
	case *SettingMutation:
		return c.Setting.mutate(ctx, m)
	case *TokenUsageMutation:
		return c.TokenUsage.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryResearch queries the research edge of a Event.
func (c *EventClient) QueryResearch(_m *Event) *ResearchRecordQuery {
	query := (&ResearchRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(researchrecord.Table, researchrecord.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, event.ResearchTable, event.ResearchColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// ResearchLogClient is a client for the ResearchLog schema.
type ResearchLogClient struct {
	config
}

// NewResearchLogClient returns a client for the ResearchLog from the given config.
func NewResearchLogClient(c config) *ResearchLogClient {
	return &ResearchLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `researchlog.Hooks(f(g(h())))`.
func (c *ResearchLogClient) Use(hooks ...Hook) {
	c.hooks.ResearchLog = append(c.hooks.ResearchLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `researchlog.Intercept(f(g(h())))`.
func (c *ResearchLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.ResearchLog = append(c.inters.ResearchLog, interceptors...)
}

// Create returns a builder for creating a ResearchLog entity.
func (c *ResearchLogClient) Create() *ResearchLogCreate {
	mutation := newResearchLogMutation(c.config, OpCreate)
	return &ResearchLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ResearchLog entities.
func (c *ResearchLogClient) CreateBulk(builders ...*ResearchLogCreate) *ResearchLogCreateBulk {
	return &ResearchLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ResearchLogClient) MapCreateBulk(slice any, setFunc func(*ResearchLogCreate, int)) *ResearchLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ResearchLogCreateBulk{err: fmt.Errorf("calling to ResearchLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ResearchLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ResearchLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ResearchLog.
func (c *ResearchLogClient) Update() *ResearchLogUpdate {
	mutation := newResearchLogMutation(c.config, OpUpdate)
	return &ResearchLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ResearchLogClient) UpdateOne(_m *ResearchLog) *ResearchLogUpdateOne {
	mutation := newResearchLogMutation(c.config, OpUpdateOne, withResearchLog(_m))
	return &ResearchLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ResearchLogClient) UpdateOneID(id int) *ResearchLogUpdateOne {
	mutation := newResearchLogMutation(c.config, OpUpdateOne, withResearchLogID(id))
	return &ResearchLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ResearchLog.
func (c *ResearchLogClient) Delete() *ResearchLogDelete {
	mutation := newResearchLogMutation(c.config, OpDelete)
	return &ResearchLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ResearchLogClient) DeleteOne(_m *ResearchLog) *ResearchLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ResearchLogClient) DeleteOneID(id int) *ResearchLogDeleteOne {
	builder := c.Delete().Where(researchlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ResearchLogDeleteOne{builder}
}

// Query returns a query builder for ResearchLog.
func (c *ResearchLogClient) Query() *ResearchLogQuery {
	return &ResearchLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeResearchLog},
		inters: c.Interceptors(),
	}
}

// Get returns a ResearchLog entity by its id.
func (c *ResearchLogClient) Get(ctx context.Context, id int) (*ResearchLog, error) {
	return c.Query().Where(researchlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ResearchLogClient) GetX(ctx context.Context, id int) *ResearchLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryResearch queries the research edge of a ResearchLog.
func (c *ResearchLogClient) QueryResearch(_m *ResearchLog) *ResearchRecordQuery {
	query := (&ResearchRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(researchlog.Table, researchlog.FieldID, id),
			sqlgraph.To(researchrecord.Table, researchrecord.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, researchlog.ResearchTable, researchlog.ResearchColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ResearchLogClient) Hooks() []Hook {
	return c.hooks.ResearchLog
}

// Interceptors returns the client interceptors.
func (c *ResearchLogClient) Interceptors() []Interceptor {
	return c.inters.ResearchLog
}

func (c *ResearchLogClient) mutate(ctx context.Context, m *ResearchLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ResearchLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ResearchLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ResearchLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ResearchLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ResearchLog mutation op: %q", m.Op())
	}
}

// ResearchRecordClient is a client for the ResearchRecord schema.
type ResearchRecordClient struct {
	config
}

// NewResearchRecordClient returns a client for the ResearchRecord from the given config.
func NewResearchRecordClient(c config) *ResearchRecordClient {
	return &ResearchRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `researchrecord.Hooks(f(g(h())))`.
func (c *ResearchRecordClient) Use(hooks ...Hook) {
	c.hooks.ResearchRecord = append(c.hooks.ResearchRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `researchrecord.Intercept(f(g(h())))`.
func (c *ResearchRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.ResearchRecord = append(c.inters.ResearchRecord, interceptors...)
}

// Create returns a builder for creating a ResearchRecord entity.
func (c *ResearchRecordClient) Create() *ResearchRecordCreate {
	mutation := newResearchRecordMutation(c.config, OpCreate)
	return &ResearchRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ResearchRecord entities.
func (c *ResearchRecordClient) CreateBulk(builders ...*ResearchRecordCreate) *ResearchRecordCreateBulk {
	return &ResearchRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ResearchRecordClient) MapCreateBulk(slice any, setFunc func(*ResearchRecordCreate, int)) *ResearchRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ResearchRecordCreateBulk{err: fmt.Errorf("calling to ResearchRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ResearchRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ResearchRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ResearchRecord.
func (c *ResearchRecordClient) Update() *ResearchRecordUpdate {
	mutation := newResearchRecordMutation(c.config, OpUpdate)
	return &ResearchRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ResearchRecordClient) UpdateOne(_m *ResearchRecord) *ResearchRecordUpdateOne {
	mutation := newResearchRecordMutation(c.config, OpUpdateOne, withResearchRecord(_m))
	return &ResearchRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ResearchRecordClient) UpdateOneID(id int) *ResearchRecordUpdateOne {
	mutation := newResearchRecordMutation(c.config, OpUpdateOne, withResearchRecordID(id))
	return &ResearchRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ResearchRecord.
func (c *ResearchRecordClient) Delete() *ResearchRecordDelete {
	mutation := newResearchRecordMutation(c.config, OpDelete)
	return &ResearchRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ResearchRecordClient) DeleteOne(_m *ResearchRecord) *ResearchRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ResearchRecordClient) DeleteOneID(id int) *ResearchRecordDeleteOne {
	builder := c.Delete().Where(researchrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ResearchRecordDeleteOne{builder}
}

// Query returns a query builder for ResearchRecord.
func (c *ResearchRecordClient) Query() *ResearchRecordQuery {
	return &ResearchRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeResearchRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a ResearchRecord entity by its id.
func (c *ResearchRecordClient) Get(ctx context.Context, id int) (*ResearchRecord, error) {
	return c.Query().Where(researchrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ResearchRecordClient) GetX(ctx context.Context, id int) *ResearchRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLogs queries the logs edge of a ResearchRecord.
func (c *ResearchRecordClient) QueryLogs(_m *ResearchRecord) *ResearchLogQuery {
	query := (&ResearchLogClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(researchrecord.Table, researchrecord.FieldID, id),
			sqlgraph.To(researchlog.Table, researchlog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchrecord.LogsTable, researchrecord.LogsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryResources queries the resources edge of a ResearchRecord.
func (c *ResearchRecordClient) QueryResources(_m *ResearchRecord) *ResearchResourceQuery {
	query := (&ResearchResourceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(researchrecord.Table, researchrecord.FieldID, id),
			sqlgraph.To(researchresource.Table, researchresource.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchrecord.ResourcesTable, researchrecord.ResourcesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStrategy queries the strategy edge of a ResearchRecord.
func (c *ResearchRecordClient) QueryStrategy(_m *ResearchRecord) *ResearchStrategyQuery {
	query := (&ResearchStrategyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(researchrecord.Table, researchrecord.FieldID, id),
			sqlgraph.To(researchstrategy.Table, researchstrategy.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, researchrecord.StrategyTable, researchrecord.StrategyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTokenUsages queries the token_usages edge of a ResearchRecord.
func (c *ResearchRecordClient) QueryTokenUsages(_m *ResearchRecord) *TokenUsageQuery {
	query := (&TokenUsageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(researchrecord.Table, researchrecord.FieldID, id),
			sqlgraph.To(tokenusage.Table, tokenusage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchrecord.TokenUsagesTable, researchrecord.TokenUsagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a ResearchRecord.
func (c *ResearchRecordClient) QueryEvents(_m *ResearchRecord) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(researchrecord.Table, researchrecord.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchrecord.EventsTable, researchrecord.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ResearchRecordClient) Hooks() []Hook {
	return c.hooks.ResearchRecord
}

// Interceptors returns the client interceptors.
func (c *ResearchRecordClient) Interceptors() []Interceptor {
	return c.inters.ResearchRecord
}

func (c *ResearchRecordClient) mutate(ctx context.Context, m *ResearchRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ResearchRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ResearchRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ResearchRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ResearchRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ResearchRecord mutation op: %q", m.Op())
	}
}

// ResearchResourceClient is a client for the ResearchResource schema.
type ResearchResourceClient struct {
	config
}

// NewResearchResourceClient returns a client for the ResearchResource from the given config.
func NewResearchResourceClient(c config) *ResearchResourceClient {
	return &ResearchResourceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `researchresource.Hooks(f(g(h())))`.
func (c *ResearchResourceClient) Use(hooks ...Hook) {
	c.hooks.ResearchResource = append(c.hooks.ResearchResource, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `researchresource.Intercept(f(g(h())))`.
func (c *ResearchResourceClient) Intercept(interceptors ...Interceptor) {
	c.inters.ResearchResource = append(c.inters.ResearchResource, interceptors...)
}

// Create returns a builder for creating a ResearchResource entity.
func (c *ResearchResourceClient) Create() *ResearchResourceCreate {
	mutation := newResearchResourceMutation(c.config, OpCreate)
	return &ResearchResourceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ResearchResource entities.
func (c *ResearchResourceClient) CreateBulk(builders ...*ResearchResourceCreate) *ResearchResourceCreateBulk {
	return &ResearchResourceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ResearchResourceClient) MapCreateBulk(slice any, setFunc func(*ResearchResourceCreate, int)) *ResearchResourceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ResearchResourceCreateBulk{err: fmt.Errorf("calling to ResearchResourceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ResearchResourceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ResearchResourceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ResearchResource.
func (c *ResearchResourceClient) Update() *ResearchResourceUpdate {
	mutation := newResearchResourceMutation(c.config, OpUpdate)
	return &ResearchResourceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ResearchResourceClient) UpdateOne(_m *ResearchResource) *ResearchResourceUpdateOne {
	mutation := newResearchResourceMutation(c.config, OpUpdateOne, withResearchResource(_m))
	return &ResearchResourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ResearchResourceClient) UpdateOneID(id int) *ResearchResourceUpdateOne {
	mutation := newResearchResourceMutation(c.config, OpUpdateOne, withResearchResourceID(id))
	return &ResearchResourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ResearchResource.
func (c *ResearchResourceClient) Delete() *ResearchResourceDelete {
	mutation := newResearchResourceMutation(c.config, OpDelete)
	return &ResearchResourceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ResearchResourceClient) DeleteOne(_m *ResearchResource) *ResearchResourceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ResearchResourceClient) DeleteOneID(id int) *ResearchResourceDeleteOne {
	builder := c.Delete().Where(researchresource.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ResearchResourceDeleteOne{builder}
}

// Query returns a query builder for ResearchResource.
func (c *ResearchResourceClient) Query() *ResearchResourceQuery {
	return &ResearchResourceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeResearchResource},
		inters: c.Interceptors(),
	}
}

// Get returns a ResearchResource entity by its id.
func (c *ResearchResourceClient) Get(ctx context.Context, id int) (*ResearchResource, error) {
	return c.Query().Where(researchresource.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ResearchResourceClient) GetX(ctx context.Context, id int) *ResearchResource {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryResearch queries the research edge of a ResearchResource.
func (c *ResearchResourceClient) QueryResearch(_m *ResearchResource) *ResearchRecordQuery {
	query := (&ResearchRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(researchresource.Table, researchresource.FieldID, id),
			sqlgraph.To(researchrecord.Table, researchrecord.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, researchresource.ResearchTable, researchresource.ResearchColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ResearchResourceClient) Hooks() []Hook {
	return c.hooks.ResearchResource
}

// Interceptors returns the client interceptors.
func (c *ResearchResourceClient) Interceptors() []Interceptor {
	return c.inters.ResearchResource
}

func (c *ResearchResourceClient) mutate(ctx context.Context, m *ResearchResourceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ResearchResourceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ResearchResourceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ResearchResourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ResearchResourceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ResearchResource mutation op: %q", m.Op())
	}
}

// ResearchStrategyClient is a client for the ResearchStrategy schema.
type ResearchStrategyClient struct {
	config
}

// NewResearchStrategyClient returns a client for the ResearchStrategy from the given config.
func NewResearchStrategyClient(c config) *ResearchStrategyClient {
	return &ResearchStrategyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `researchstrategy.Hooks(f(g(h())))`.
func (c *ResearchStrategyClient) Use(hooks ...Hook) {
	c.hooks.ResearchStrategy = append(c.hooks.ResearchStrategy, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `researchstrategy.Intercept(f(g(h())))`.
func (c *ResearchStrategyClient) Intercept(interceptors ...Interceptor) {
	c.inters.ResearchStrategy = append(c.inters.ResearchStrategy, interceptors...)
}

// Create returns a builder for creating a ResearchStrategy entity.
func (c *ResearchStrategyClient) Create() *ResearchStrategyCreate {
	mutation := newResearchStrategyMutation(c.config, OpCreate)
	return &ResearchStrategyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ResearchStrategy entities.
func (c *ResearchStrategyClient) CreateBulk(builders ...*ResearchStrategyCreate) *ResearchStrategyCreateBulk {
	return &ResearchStrategyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ResearchStrategyClient) MapCreateBulk(slice any, setFunc func(*ResearchStrategyCreate, int)) *ResearchStrategyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ResearchStrategyCreateBulk{err: fmt.Errorf("calling to ResearchStrategyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ResearchStrategyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ResearchStrategyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ResearchStrategy.
func (c *ResearchStrategyClient) Update() *ResearchStrategyUpdate {
	mutation := newResearchStrategyMutation(c.config, OpUpdate)
	return &ResearchStrategyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ResearchStrategyClient) UpdateOne(_m *ResearchStrategy) *ResearchStrategyUpdateOne {
	mutation := newResearchStrategyMutation(c.config, OpUpdateOne, withResearchStrategy(_m))
	return &ResearchStrategyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ResearchStrategyClient) UpdateOneID(id int) *ResearchStrategyUpdateOne {
	mutation := newResearchStrategyMutation(c.config, OpUpdateOne, withResearchStrategyID(id))
	return &ResearchStrategyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ResearchStrategy.
func (c *ResearchStrategyClient) Delete() *ResearchStrategyDelete {
	mutation := newResearchStrategyMutation(c.config, OpDelete)
	return &ResearchStrategyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ResearchStrategyClient) DeleteOne(_m *ResearchStrategy) *ResearchStrategyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ResearchStrategyClient) DeleteOneID(id int) *ResearchStrategyDeleteOne {
	builder := c.Delete().Where(researchstrategy.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ResearchStrategyDeleteOne{builder}
}

// Query returns a query builder for ResearchStrategy.
func (c *ResearchStrategyClient) Query() *ResearchStrategyQuery {
	return &ResearchStrategyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeResearchStrategy},
		inters: c.Interceptors(),
	}
}

// Get returns a ResearchStrategy entity by its id.
func (c *ResearchStrategyClient) Get(ctx context.Context, id int) (*ResearchStrategy, error) {
	return c.Query().Where(researchstrategy.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ResearchStrategyClient) GetX(ctx context.Context, id int) *ResearchStrategy {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryResearch queries the research edge of a ResearchStrategy.
func (c *ResearchStrategyClient) QueryResearch(_m *ResearchStrategy) *ResearchRecordQuery {
	query := (&ResearchRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(researchstrategy.Table, researchstrategy.FieldID, id),
			sqlgraph.To(researchrecord.Table, researchrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, researchstrategy.ResearchTable, researchstrategy.ResearchColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ResearchStrategyClient) Hooks() []Hook {
	return c.hooks.ResearchStrategy
}

// Interceptors returns the client interceptors.
func (c *ResearchStrategyClient) Interceptors() []Interceptor {
	return c.inters.ResearchStrategy
}

func (c *ResearchStrategyClient) mutate(ctx context.Context, m *ResearchStrategyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ResearchStrategyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ResearchStrategyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ResearchStrategyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ResearchStrategyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ResearchStrategy mutation op: %q", m.Op())
	}
}

// SettingClient is a client for the Setting schema.
type SettingClient struct {
	config
}

// NewSettingClient returns a client for the Setting from the given config.
func NewSettingClient(c config) *SettingClient {
	return &SettingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `setting.Hooks(f(g(h())))`.
func (c *SettingClient) Use(hooks ...Hook) {
	c.hooks.Setting = append(c.hooks.Setting, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `setting.Intercept(f(g(h())))`.
func (c *SettingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Setting = append(c.inters.Setting, interceptors...)
}

// Create returns a builder for creating a Setting entity.
func (c *SettingClient) Create() *SettingCreate {
	mutation := newSettingMutation(c.config, OpCreate)
	return &SettingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Setting entities.
func (c *SettingClient) CreateBulk(builders ...*SettingCreate) *SettingCreateBulk {
	return &SettingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SettingClient) MapCreateBulk(slice any, setFunc func(*SettingCreate, int)) *SettingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SettingCreateBulk{err: fmt.Errorf("calling to SettingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SettingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SettingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Setting.
func (c *SettingClient) Update() *SettingUpdate {
	mutation := newSettingMutation(c.config, OpUpdate)
	return &SettingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SettingClient) UpdateOne(_m *Setting) *SettingUpdateOne {
	mutation := newSettingMutation(c.config, OpUpdateOne, withSetting(_m))
	return &SettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SettingClient) UpdateOneID(id int) *SettingUpdateOne {
	mutation := newSettingMutation(c.config, OpUpdateOne, withSettingID(id))
	return &SettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Setting.
func (c *SettingClient) Delete() *SettingDelete {
	mutation := newSettingMutation(c.config, OpDelete)
	return &SettingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SettingClient) DeleteOne(_m *Setting) *SettingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SettingClient) DeleteOneID(id int) *SettingDeleteOne {
	builder := c.Delete().Where(setting.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SettingDeleteOne{builder}
}

// Query returns a query builder for Setting.
func (c *SettingClient) Query() *SettingQuery {
	return &SettingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSetting},
		inters: c.Interceptors(),
	}
}

// Get returns a Setting entity by its id.
func (c *SettingClient) Get(ctx context.Context, id int) (*Setting, error) {
	return c.Query().Where(setting.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SettingClient) GetX(ctx context.Context, id int) *Setting {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SettingClient) Hooks() []Hook {
	return c.hooks.Setting
}

// Interceptors returns the client interceptors.
func (c *SettingClient) Interceptors() []Interceptor {
	return c.inters.Setting
}

func (c *SettingClient) mutate(ctx context.Context, m *SettingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SettingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SettingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SettingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Setting mutation op: %q", m.Op())
	}
}

// TokenUsageClient is a client for the TokenUsage schema.
type TokenUsageClient struct {
	config
}

// NewTokenUsageClient returns a client for the TokenUsage from the given config.
func NewTokenUsageClient(c config) *TokenUsageClient {
	return &TokenUsageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tokenusage.Hooks(f(g(h())))`.
func (c *TokenUsageClient) Use(hooks ...Hook) {
	c.hooks.TokenUsage = append(c.hooks.TokenUsage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tokenusage.Intercept(f(g(h())))`.
func (c *TokenUsageClient) Intercept(interceptors ...Interceptor) {
	c.inters.TokenUsage = append(c.inters.TokenUsage, interceptors...)
}

// Create returns a builder for creating a TokenUsage entity.
func (c *TokenUsageClient) Create() *TokenUsageCreate {
	mutation := newTokenUsageMutation(c.config, OpCreate)
	return &TokenUsageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TokenUsage entities.
func (c *TokenUsageClient) CreateBulk(builders ...*TokenUsageCreate) *TokenUsageCreateBulk {
	return &TokenUsageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TokenUsageClient) MapCreateBulk(slice any, setFunc func(*TokenUsageCreate, int)) *TokenUsageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TokenUsageCreateBulk{err: fmt.Errorf("calling to TokenUsageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TokenUsageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TokenUsageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TokenUsage.
func (c *TokenUsageClient) Update() *TokenUsageUpdate {
	mutation := newTokenUsageMutation(c.config, OpUpdate)
	return &TokenUsageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TokenUsageClient) UpdateOne(_m *TokenUsage) *TokenUsageUpdateOne {
	mutation := newTokenUsageMutation(c.config, OpUpdateOne, withTokenUsage(_m))
	return &TokenUsageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TokenUsageClient) UpdateOneID(id int) *TokenUsageUpdateOne {
	mutation := newTokenUsageMutation(c.config, OpUpdateOne, withTokenUsageID(id))
	return &TokenUsageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TokenUsage.
func (c *TokenUsageClient) Delete() *TokenUsageDelete {
	mutation := newTokenUsageMutation(c.config, OpDelete)
	return &TokenUsageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TokenUsageClient) DeleteOne(_m *TokenUsage) *TokenUsageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TokenUsageClient) DeleteOneID(id int) *TokenUsageDeleteOne {
	builder := c.Delete().Where(tokenusage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TokenUsageDeleteOne{builder}
}

// Query returns a query builder for TokenUsage.
func (c *TokenUsageClient) Query() *TokenUsageQuery {
	return &TokenUsageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTokenUsage},
		inters: c.Interceptors(),
	}
}

// Get returns a TokenUsage entity by its id.
func (c *TokenUsageClient) Get(ctx context.Context, id int) (*TokenUsage, error) {
	return c.Query().Where(tokenusage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TokenUsageClient) GetX(ctx context.Context, id int) *TokenUsage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryResearch queries the research edge of a TokenUsage.
func (c *TokenUsageClient) QueryResearch(_m *TokenUsage) *ResearchRecordQuery {
	query := (&ResearchRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tokenusage.Table, tokenusage.FieldID, id),
			sqlgraph.To(researchrecord.Table, researchrecord.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, tokenusage.ResearchTable, tokenusage.ResearchColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TokenUsageClient) Hooks() []Hook {
	return c.hooks.TokenUsage
}

// Interceptors returns the client interceptors.
func (c *TokenUsageClient) Interceptors() []Interceptor {
	return c.inters.TokenUsage
}

func (c *TokenUsageClient) mutate(ctx context.Context, m *TokenUsageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TokenUsageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TokenUsageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TokenUsageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TokenUsageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TokenUsage mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Event, ResearchLog, ResearchRecord, ResearchResource, ResearchStrategy, Setting,
		TokenUsage []ent.Hook
	}
	inters struct {
		Event, ResearchLog, ResearchRecord, ResearchResource, ResearchStrategy, Setting,
		TokenUsage []ent.Interceptor
	}
)
