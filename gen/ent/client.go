// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/adeola-m/calendar-tracker/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/adeola-m/calendar-tracker/gen/ent/calendarevent"
	"github.com/adeola-m/calendar-tracker/gen/ent/calendarpage"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CalendarEvent is the client for interacting with the CalendarEvent builders.
	CalendarEvent *CalendarEventClient
	// CalendarPage is the client for interacting with the CalendarPage builders.
	CalendarPage *CalendarPageClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CalendarEvent = NewCalendarEventClient(c.config)
	c.CalendarPage = NewCalendarPageClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		CalendarEvent: NewCalendarEventClient(cfg),
		CalendarPage:  NewCalendarPageClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		CalendarEvent: NewCalendarEventClient(cfg),
		CalendarPage:  NewCalendarPageClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CalendarEvent.
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
	c.CalendarEvent.Use(hooks...)
	c.CalendarPage.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.CalendarEvent.Intercept(interceptors...)
	c.CalendarPage.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CalendarEventMutation:
		return c.CalendarEvent.mutate(ctx, m)
	case *CalendarPageMutation:
		return c.CalendarPage.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CalendarEventClient is a client for the CalendarEvent schema.
type CalendarEventClient struct {
	config
}

// NewCalendarEventClient returns a client for the CalendarEvent from the given config.
func NewCalendarEventClient(c config) *CalendarEventClient {
	return &CalendarEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `calendarevent.Hooks(f(g(h())))`.
func (c *CalendarEventClient) Use(hooks ...Hook) {
	c.hooks.CalendarEvent = append(c.hooks.CalendarEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `calendarevent.Intercept(f(g(h())))`.
func (c *CalendarEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.CalendarEvent = append(c.inters.CalendarEvent, interceptors...)
}

// Create returns a builder for creating a CalendarEvent entity.
func (c *CalendarEventClient) Create() *CalendarEventCreate {
	mutation := newCalendarEventMutation(c.config, OpCreate)
	return &CalendarEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CalendarEvent entities.
func (c *CalendarEventClient) CreateBulk(builders ...*CalendarEventCreate) *CalendarEventCreateBulk {
	return &CalendarEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CalendarEventClient) MapCreateBulk(slice any, setFunc func(*CalendarEventCreate, int)) *CalendarEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CalendarEventCreateBulk{err: fmt.Errorf("calling to CalendarEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CalendarEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CalendarEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CalendarEvent.
func (c *CalendarEventClient) Update() *CalendarEventUpdate {
	mutation := newCalendarEventMutation(c.config, OpUpdate)
	return &CalendarEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CalendarEventClient) UpdateOne(_m *CalendarEvent) *CalendarEventUpdateOne {
	mutation := newCalendarEventMutation(c.config, OpUpdateOne, withCalendarEvent(_m))
	return &CalendarEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CalendarEventClient) UpdateOneID(id uuid.UUID) *CalendarEventUpdateOne {
	mutation := newCalendarEventMutation(c.config, OpUpdateOne, withCalendarEventID(id))
	return &CalendarEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CalendarEvent.
func (c *CalendarEventClient) Delete() *CalendarEventDelete {
	mutation := newCalendarEventMutation(c.config, OpDelete)
	return &CalendarEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CalendarEventClient) DeleteOne(_m *CalendarEvent) *CalendarEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CalendarEventClient) DeleteOneID(id uuid.UUID) *CalendarEventDeleteOne {
	builder := c.Delete().Where(calendarevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CalendarEventDeleteOne{builder}
}

// Query returns a query builder for CalendarEvent.
func (c *CalendarEventClient) Query() *CalendarEventQuery {
	return &CalendarEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCalendarEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a CalendarEvent entity by its id.
func (c *CalendarEventClient) Get(ctx context.Context, id uuid.UUID) (*CalendarEvent, error) {
	return c.Query().Where(calendarevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CalendarEventClient) GetX(ctx context.Context, id uuid.UUID) *CalendarEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPage queries the page edge of a CalendarEvent.
func (c *CalendarEventClient) QueryPage(_m *CalendarEvent) *CalendarPageQuery {
	query := (&CalendarPageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(calendarevent.Table, calendarevent.FieldID, id),
			sqlgraph.To(calendarpage.Table, calendarpage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, calendarevent.PageTable, calendarevent.PageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CalendarEventClient) Hooks() []Hook {
	return c.hooks.CalendarEvent
}

// Interceptors returns the client interceptors.
func (c *CalendarEventClient) Interceptors() []Interceptor {
	return c.inters.CalendarEvent
}

func (c *CalendarEventClient) mutate(ctx context.Context, m *CalendarEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CalendarEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CalendarEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CalendarEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CalendarEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CalendarEvent mutation op: %q", m.Op())
	}
}

// CalendarPageClient is a client for the CalendarPage schema.
type CalendarPageClient struct {
	config
}

// NewCalendarPageClient returns a client for the CalendarPage from the given config.
func NewCalendarPageClient(c config) *CalendarPageClient {
	return &CalendarPageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `calendarpage.Hooks(f(g(h())))`.
func (c *CalendarPageClient) Use(hooks ...Hook) {
	c.hooks.CalendarPage = append(c.hooks.CalendarPage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `calendarpage.Intercept(f(g(h())))`.
func (c *CalendarPageClient) Intercept(interceptors ...Interceptor) {
	c.inters.CalendarPage = append(c.inters.CalendarPage, interceptors...)
}

// Create returns a builder for creating a CalendarPage entity.
func (c *CalendarPageClient) Create() *CalendarPageCreate {
	mutation := newCalendarPageMutation(c.config, OpCreate)
	return &CalendarPageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CalendarPage entities.
func (c *CalendarPageClient) CreateBulk(builders ...*CalendarPageCreate) *CalendarPageCreateBulk {
	return &CalendarPageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CalendarPageClient) MapCreateBulk(slice any, setFunc func(*CalendarPageCreate, int)) *CalendarPageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CalendarPageCreateBulk{err: fmt.Errorf("calling to CalendarPageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CalendarPageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CalendarPageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CalendarPage.
func (c *CalendarPageClient) Update() *CalendarPageUpdate {
	mutation := newCalendarPageMutation(c.config, OpUpdate)
	return &CalendarPageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CalendarPageClient) UpdateOne(_m *CalendarPage) *CalendarPageUpdateOne {
	mutation := newCalendarPageMutation(c.config, OpUpdateOne, withCalendarPage(_m))
	return &CalendarPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CalendarPageClient) UpdateOneID(id uuid.UUID) *CalendarPageUpdateOne {
	mutation := newCalendarPageMutation(c.config, OpUpdateOne, withCalendarPageID(id))
	return &CalendarPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CalendarPage.
func (c *CalendarPageClient) Delete() *CalendarPageDelete {
	mutation := newCalendarPageMutation(c.config, OpDelete)
	return &CalendarPageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CalendarPageClient) DeleteOne(_m *CalendarPage) *CalendarPageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CalendarPageClient) DeleteOneID(id uuid.UUID) *CalendarPageDeleteOne {
	builder := c.Delete().Where(calendarpage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CalendarPageDeleteOne{builder}
}

// Query returns a query builder for CalendarPage.
func (c *CalendarPageClient) Query() *CalendarPageQuery {
	return &CalendarPageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCalendarPage},
		inters: c.Interceptors(),
	}
}

// Get returns a CalendarPage entity by its id.
func (c *CalendarPageClient) Get(ctx context.Context, id uuid.UUID) (*CalendarPage, error) {
	return c.Query().Where(calendarpage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CalendarPageClient) GetX(ctx context.Context, id uuid.UUID) *CalendarPage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEvents queries the events edge of a CalendarPage.
func (c *CalendarPageClient) QueryEvents(_m *CalendarPage) *CalendarEventQuery {
	query := (&CalendarEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(calendarpage.Table, calendarpage.FieldID, id),
			sqlgraph.To(calendarevent.Table, calendarevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, calendarpage.EventsTable, calendarpage.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CalendarPageClient) Hooks() []Hook {
	return c.hooks.CalendarPage
}

// Interceptors returns the client interceptors.
func (c *CalendarPageClient) Interceptors() []Interceptor {
	return c.inters.CalendarPage
}

func (c *CalendarPageClient) mutate(ctx context.Context, m *CalendarPageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CalendarPageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CalendarPageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CalendarPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CalendarPageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CalendarPage mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CalendarEvent, CalendarPage []ent.Hook
	}
	inters struct {
		CalendarEvent, CalendarPage []ent.Interceptor
	}
)
