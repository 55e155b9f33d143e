// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"wheeltrack/ent/migrate"

	"wheeltrack/ent/attemptsession"
	"wheeltrack/ent/errorevent"
	"wheeltrack/ent/stepevent"
	"wheeltrack/ent/telemetryevent"
	"wheeltrack/ent/user"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AttemptSession is the client for interacting with the AttemptSession builders.
	AttemptSession *AttemptSessionClient
	// ErrorEvent is the client for interacting with the ErrorEvent builders.
	ErrorEvent *ErrorEventClient
	// StepEvent is the client for interacting with the StepEvent builders.
	StepEvent *StepEventClient
	// TelemetryEvent is the client for interacting with the TelemetryEvent builders.
	TelemetryEvent *TelemetryEventClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AttemptSession = NewAttemptSessionClient(c.config)
	c.ErrorEvent = NewErrorEventClient(c.config)
	c.StepEvent = NewStepEventClient(c.config)
	c.TelemetryEvent = NewTelemetryEventClient(c.config)
	c.User = NewUserClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		AttemptSession: NewAttemptSessionClient(cfg),
		ErrorEvent:     NewErrorEventClient(cfg),
		StepEvent:      NewStepEventClient(cfg),
		TelemetryEvent: NewTelemetryEventClient(cfg),
		User:           NewUserClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		AttemptSession: NewAttemptSessionClient(cfg),
		ErrorEvent:     NewErrorEventClient(cfg),
		StepEvent:      NewStepEventClient(cfg),
		TelemetryEvent: NewTelemetryEventClient(cfg),
		User:           NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AttemptSession.
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
	c.AttemptSession.Use(hooks...)
	c.ErrorEvent.Use(hooks...)
	c.StepEvent.Use(hooks...)
	c.TelemetryEvent.Use(hooks...)
	c.User.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AttemptSession.Intercept(interceptors...)
	c.ErrorEvent.Intercept(interceptors...)
	c.StepEvent.Intercept(interceptors...)
	c.TelemetryEvent.Intercept(interceptors...)
	c.User.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AttemptSessionMutation:
		return c.AttemptSession.mutate(ctx, m)
	case *ErrorEventMutation:
		return c.ErrorEvent.mutate(ctx, m)
	case *StepEventMutation:
		return c.StepEvent.mutate(ctx, m)
	case *TelemetryEventMutation:
		return c.TelemetryEvent.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AttemptSessionClient is a client for the AttemptSession schema.
type AttemptSessionClient struct {
	config
}

// NewAttemptSessionClient returns a client for the AttemptSession from the given config.
func NewAttemptSessionClient(c config) *AttemptSessionClient {
	return &AttemptSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attemptsession.Hooks(f(g(h())))`.
func (c *AttemptSessionClient) Use(hooks ...Hook) {
	c.hooks.AttemptSession = append(c.hooks.AttemptSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attemptsession.Intercept(f(g(h())))`.
func (c *AttemptSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AttemptSession = append(c.inters.AttemptSession, interceptors...)
}

// Create returns a builder for creating a AttemptSession entity.
func (c *AttemptSessionClient) Create() *AttemptSessionCreate {
	mutation := newAttemptSessionMutation(c.config, OpCreate)
	return &AttemptSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AttemptSession entities.
func (c *AttemptSessionClient) CreateBulk(builders ...*AttemptSessionCreate) *AttemptSessionCreateBulk {
	return &AttemptSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttemptSessionClient) MapCreateBulk(slice any, setFunc func(*AttemptSessionCreate, int)) *AttemptSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttemptSessionCreateBulk{err: fmt.Errorf("calling to AttemptSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttemptSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttemptSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AttemptSession.
func (c *AttemptSessionClient) Update() *AttemptSessionUpdate {
	mutation := newAttemptSessionMutation(c.config, OpUpdate)
	return &AttemptSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttemptSessionClient) UpdateOne(_m *AttemptSession) *AttemptSessionUpdateOne {
	mutation := newAttemptSessionMutation(c.config, OpUpdateOne, withAttemptSession(_m))
	return &AttemptSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttemptSessionClient) UpdateOneID(id int) *AttemptSessionUpdateOne {
	mutation := newAttemptSessionMutation(c.config, OpUpdateOne, withAttemptSessionID(id))
	return &AttemptSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AttemptSession.
func (c *AttemptSessionClient) Delete() *AttemptSessionDelete {
	mutation := newAttemptSessionMutation(c.config, OpDelete)
	return &AttemptSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttemptSessionClient) DeleteOne(_m *AttemptSession) *AttemptSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttemptSessionClient) DeleteOneID(id int) *AttemptSessionDeleteOne {
	builder := c.Delete().Where(attemptsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttemptSessionDeleteOne{builder}
}

// Query returns a query builder for AttemptSession.
func (c *AttemptSessionClient) Query() *AttemptSessionQuery {
	return &AttemptSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttemptSession},
		inters: c.Interceptors(),
	}
}

// Get returns a AttemptSession entity by its id.
func (c *AttemptSessionClient) Get(ctx context.Context, id int) (*AttemptSession, error) {
	return c.Query().Where(attemptsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttemptSessionClient) GetX(ctx context.Context, id int) *AttemptSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AttemptSessionClient) Hooks() []Hook {
	return c.hooks.AttemptSession
}

// Interceptors returns the client interceptors.
func (c *AttemptSessionClient) Interceptors() []Interceptor {
	return c.inters.AttemptSession
}

func (c *AttemptSessionClient) mutate(ctx context.Context, m *AttemptSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttemptSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttemptSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttemptSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttemptSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AttemptSession mutation op: %q", m.Op())
	}
}

// ErrorEventClient is a client for the ErrorEvent schema.
type ErrorEventClient struct {
	config
}

// NewErrorEventClient returns a client for the ErrorEvent from the given config.
func NewErrorEventClient(c config) *ErrorEventClient {
	return &ErrorEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `errorevent.Hooks(f(g(h())))`.
func (c *ErrorEventClient) Use(hooks ...Hook) {
	c.hooks.ErrorEvent = append(c.hooks.ErrorEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `errorevent.Intercept(f(g(h())))`.
func (c *ErrorEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ErrorEvent = append(c.inters.ErrorEvent, interceptors...)
}

// Create returns a builder for creating a ErrorEvent entity.
func (c *ErrorEventClient) Create() *ErrorEventCreate {
	mutation := newErrorEventMutation(c.config, OpCreate)
	return &ErrorEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ErrorEvent entities.
func (c *ErrorEventClient) CreateBulk(builders ...*ErrorEventCreate) *ErrorEventCreateBulk {
	return &ErrorEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ErrorEventClient) MapCreateBulk(slice any, setFunc func(*ErrorEventCreate, int)) *ErrorEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ErrorEventCreateBulk{err: fmt.Errorf("calling to ErrorEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ErrorEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ErrorEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ErrorEvent.
func (c *ErrorEventClient) Update() *ErrorEventUpdate {
	mutation := newErrorEventMutation(c.config, OpUpdate)
	return &ErrorEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ErrorEventClient) UpdateOne(_m *ErrorEvent) *ErrorEventUpdateOne {
	mutation := newErrorEventMutation(c.config, OpUpdateOne, withErrorEvent(_m))
	return &ErrorEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ErrorEventClient) UpdateOneID(id int) *ErrorEventUpdateOne {
	mutation := newErrorEventMutation(c.config, OpUpdateOne, withErrorEventID(id))
	return &ErrorEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ErrorEvent.
func (c *ErrorEventClient) Delete() *ErrorEventDelete {
	mutation := newErrorEventMutation(c.config, OpDelete)
	return &ErrorEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ErrorEventClient) DeleteOne(_m *ErrorEvent) *ErrorEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ErrorEventClient) DeleteOneID(id int) *ErrorEventDeleteOne {
	builder := c.Delete().Where(errorevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ErrorEventDeleteOne{builder}
}

// Query returns a query builder for ErrorEvent.
func (c *ErrorEventClient) Query() *ErrorEventQuery {
	return &ErrorEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeErrorEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ErrorEvent entity by its id.
func (c *ErrorEventClient) Get(ctx context.Context, id int) (*ErrorEvent, error) {
	return c.Query().Where(errorevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ErrorEventClient) GetX(ctx context.Context, id int) *ErrorEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ErrorEventClient) Hooks() []Hook {
	return c.hooks.ErrorEvent
}

// Interceptors returns the client interceptors.
func (c *ErrorEventClient) Interceptors() []Interceptor {
	return c.inters.ErrorEvent
}

func (c *ErrorEventClient) mutate(ctx context.Context, m *ErrorEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ErrorEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ErrorEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ErrorEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ErrorEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ErrorEvent mutation op: %q", m.Op())
	}
}

// StepEventClient is a client for the StepEvent schema.
type StepEventClient struct {
	config
}

// NewStepEventClient returns a client for the StepEvent from the given config.
func NewStepEventClient(c config) *StepEventClient {
	return &StepEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stepevent.Hooks(f(g(h())))`.
func (c *StepEventClient) Use(hooks ...Hook) {
	c.hooks.StepEvent = append(c.hooks.StepEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stepevent.Intercept(f(g(h())))`.
func (c *StepEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.StepEvent = append(c.inters.StepEvent, interceptors...)
}

// Create returns a builder for creating a StepEvent entity.
func (c *StepEventClient) Create() *StepEventCreate {
	mutation := newStepEventMutation(c.config, OpCreate)
	return &StepEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StepEvent entities.
func (c *StepEventClient) CreateBulk(builders ...*StepEventCreate) *StepEventCreateBulk {
	return &StepEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StepEventClient) MapCreateBulk(slice any, setFunc func(*StepEventCreate, int)) *StepEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StepEventCreateBulk{err: fmt.Errorf("calling to StepEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StepEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StepEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StepEvent.
func (c *StepEventClient) Update() *StepEventUpdate {
	mutation := newStepEventMutation(c.config, OpUpdate)
	return &StepEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StepEventClient) UpdateOne(_m *StepEvent) *StepEventUpdateOne {
	mutation := newStepEventMutation(c.config, OpUpdateOne, withStepEvent(_m))
	return &StepEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StepEventClient) UpdateOneID(id int) *StepEventUpdateOne {
	mutation := newStepEventMutation(c.config, OpUpdateOne, withStepEventID(id))
	return &StepEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StepEvent.
func (c *StepEventClient) Delete() *StepEventDelete {
	mutation := newStepEventMutation(c.config, OpDelete)
	return &StepEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StepEventClient) DeleteOne(_m *StepEvent) *StepEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StepEventClient) DeleteOneID(id int) *StepEventDeleteOne {
	builder := c.Delete().Where(stepevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StepEventDeleteOne{builder}
}

// Query returns a query builder for StepEvent.
func (c *StepEventClient) Query() *StepEventQuery {
	return &StepEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStepEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a StepEvent entity by its id.
func (c *StepEventClient) Get(ctx context.Context, id int) (*StepEvent, error) {
	return c.Query().Where(stepevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StepEventClient) GetX(ctx context.Context, id int) *StepEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StepEventClient) Hooks() []Hook {
	return c.hooks.StepEvent
}

// Interceptors returns the client interceptors.
func (c *StepEventClient) Interceptors() []Interceptor {
	return c.inters.StepEvent
}

func (c *StepEventClient) mutate(ctx context.Context, m *StepEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StepEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StepEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StepEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StepEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StepEvent mutation op: %q", m.Op())
	}
}

// TelemetryEventClient is a client for the TelemetryEvent schema.
type TelemetryEventClient struct {
	config
}

// NewTelemetryEventClient returns a client for the TelemetryEvent from the given config.
func NewTelemetryEventClient(c config) *TelemetryEventClient {
	return &TelemetryEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `telemetryevent.Hooks(f(g(h())))`.
func (c *TelemetryEventClient) Use(hooks ...Hook) {
	c.hooks.TelemetryEvent = append(c.hooks.TelemetryEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `telemetryevent.Intercept(f(g(h())))`.
func (c *TelemetryEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.TelemetryEvent = append(c.inters.TelemetryEvent, interceptors...)
}

// Create returns a builder for creating a TelemetryEvent entity.
func (c *TelemetryEventClient) Create() *TelemetryEventCreate {
	mutation := newTelemetryEventMutation(c.config, OpCreate)
	return &TelemetryEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TelemetryEvent entities.
func (c *TelemetryEventClient) CreateBulk(builders ...*TelemetryEventCreate) *TelemetryEventCreateBulk {
	return &TelemetryEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TelemetryEventClient) MapCreateBulk(slice any, setFunc func(*TelemetryEventCreate, int)) *TelemetryEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TelemetryEventCreateBulk{err: fmt.Errorf("calling to TelemetryEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TelemetryEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TelemetryEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TelemetryEvent.
func (c *TelemetryEventClient) Update() *TelemetryEventUpdate {
	mutation := newTelemetryEventMutation(c.config, OpUpdate)
	return &TelemetryEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TelemetryEventClient) UpdateOne(_m *TelemetryEvent) *TelemetryEventUpdateOne {
	mutation := newTelemetryEventMutation(c.config, OpUpdateOne, withTelemetryEvent(_m))
	return &TelemetryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TelemetryEventClient) UpdateOneID(id int) *TelemetryEventUpdateOne {
	mutation := newTelemetryEventMutation(c.config, OpUpdateOne, withTelemetryEventID(id))
	return &TelemetryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TelemetryEvent.
func (c *TelemetryEventClient) Delete() *TelemetryEventDelete {
	mutation := newTelemetryEventMutation(c.config, OpDelete)
	return &TelemetryEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TelemetryEventClient) DeleteOne(_m *TelemetryEvent) *TelemetryEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TelemetryEventClient) DeleteOneID(id int) *TelemetryEventDeleteOne {
	builder := c.Delete().Where(telemetryevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TelemetryEventDeleteOne{builder}
}

// Query returns a query builder for TelemetryEvent.
func (c *TelemetryEventClient) Query() *TelemetryEventQuery {
	return &TelemetryEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTelemetryEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a TelemetryEvent entity by its id.
func (c *TelemetryEventClient) Get(ctx context.Context, id int) (*TelemetryEvent, error) {
	return c.Query().Where(telemetryevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TelemetryEventClient) GetX(ctx context.Context, id int) *TelemetryEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TelemetryEventClient) Hooks() []Hook {
	return c.hooks.TelemetryEvent
}

// Interceptors returns the client interceptors.
func (c *TelemetryEventClient) Interceptors() []Interceptor {
	return c.inters.TelemetryEvent
}

func (c *TelemetryEventClient) mutate(ctx context.Context, m *TelemetryEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TelemetryEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TelemetryEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TelemetryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TelemetryEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TelemetryEvent mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id int) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id int) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id int) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id int) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AttemptSession, ErrorEvent, StepEvent, TelemetryEvent, User []ent.Hook
	}
	inters struct {
		AttemptSession, ErrorEvent, StepEvent, TelemetryEvent, User []ent.Interceptor
	}
)
