// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"satfab.io/satfab/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"satfab.io/satfab/ent/calendarstage"
	"satfab.io/satfab/ent/electronics"
	"satfab.io/satfab/ent/hardwarerequirement"
	"satfab.io/satfab/ent/material"
	"satfab.io/satfab/ent/materialfunctionalcharacteristic"
	"satfab.io/satfab/ent/materialoperationalcharacteristic"
	"satfab.io/satfab/ent/physicaltestdata"
	"satfab.io/satfab/ent/satellite"
	"satfab.io/satfab/ent/satelliteopcharacteristic"
	"satfab.io/satfab/ent/sensor"
	"satfab.io/satfab/ent/stand"
	"satfab.io/satfab/ent/technicalspecification"
	"satfab.io/satfab/ent/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CalendarStage is the client for interacting with the CalendarStage builders.
	CalendarStage *CalendarStageClient
	// Electronics is the client for interacting with the Electronics builders.
	Electronics *ElectronicsClient
	// HardwareRequirement is the client for interacting with the HardwareRequirement builders.
	HardwareRequirement *HardwareRequirementClient
	// Material is the client for interacting with the Material builders.
	Material *MaterialClient
	// MaterialFunctionalCharacteristic is the client for interacting with the MaterialFunctionalCharacteristic builders.
	MaterialFunctionalCharacteristic *MaterialFunctionalCharacteristicClient
	// MaterialOperationalCharacteristic is the client for interacting with the MaterialOperationalCharacteristic builders.
	MaterialOperationalCharacteristic *MaterialOperationalCharacteristicClient
	// PhysicalTestData is the client for interacting with the PhysicalTestData builders.
	PhysicalTestData *PhysicalTestDataClient
	// Satellite is the client for interacting with the Satellite builders.
	Satellite *SatelliteClient
	// SatelliteOpCharacteristic is the client for interacting with the SatelliteOpCharacteristic builders.
	SatelliteOpCharacteristic *SatelliteOpCharacteristicClient
	// Sensor is the client for interacting with the Sensor builders.
	Sensor *SensorClient
	// Stand is the client for interacting with the Stand builders.
	Stand *StandClient
	// TechnicalSpecification is the client for interacting with the TechnicalSpecification builders.
	TechnicalSpecification *TechnicalSpecificationClient
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
	c.CalendarStage = NewCalendarStageClient(c.config)
	c.Electronics = NewElectronicsClient(c.config)
	c.HardwareRequirement = NewHardwareRequirementClient(c.config)
	c.Material = NewMaterialClient(c.config)
	c.MaterialFunctionalCharacteristic = NewMaterialFunctionalCharacteristicClient(c.config)
	c.MaterialOperationalCharacteristic = NewMaterialOperationalCharacteristicClient(c.config)
	c.PhysicalTestData = NewPhysicalTestDataClient(c.config)
	c.Satellite = NewSatelliteClient(c.config)
	c.SatelliteOpCharacteristic = NewSatelliteOpCharacteristicClient(c.config)
	c.Sensor = NewSensorClient(c.config)
	c.Stand = NewStandClient(c.config)
	c.TechnicalSpecification = NewTechnicalSpecificationClient(c.config)
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
		ctx:                               ctx,
		config:                            cfg,
		CalendarStage:                     NewCalendarStageClient(cfg),
		Electronics:                       NewElectronicsClient(cfg),
		HardwareRequirement:               NewHardwareRequirementClient(cfg),
		Material:                          NewMaterialClient(cfg),
		MaterialFunctionalCharacteristic:  NewMaterialFunctionalCharacteristicClient(cfg),
		MaterialOperationalCharacteristic: NewMaterialOperationalCharacteristicClient(cfg),
		PhysicalTestData:                  NewPhysicalTestDataClient(cfg),
		Satellite:                         NewSatelliteClient(cfg),
		SatelliteOpCharacteristic:         NewSatelliteOpCharacteristicClient(cfg),
		Sensor:                            NewSensorClient(cfg),
		Stand:                             NewStandClient(cfg),
		TechnicalSpecification:            NewTechnicalSpecificationClient(cfg),
		User:                              NewUserClient(cfg),
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
		ctx:                               ctx,
		config:                            cfg,
		CalendarStage:                     NewCalendarStageClient(cfg),
		Electronics:                       NewElectronicsClient(cfg),
		HardwareRequirement:               NewHardwareRequirementClient(cfg),
		Material:                          NewMaterialClient(cfg),
		MaterialFunctionalCharacteristic:  NewMaterialFunctionalCharacteristicClient(cfg),
		MaterialOperationalCharacteristic: NewMaterialOperationalCharacteristicClient(cfg),
		PhysicalTestData:                  NewPhysicalTestDataClient(cfg),
		Satellite:                         NewSatelliteClient(cfg),
		SatelliteOpCharacteristic:         NewSatelliteOpCharacteristicClient(cfg),
		Sensor:                            NewSensorClient(cfg),
		Stand:                             NewStandClient(cfg),
		TechnicalSpecification:            NewTechnicalSpecificationClient(cfg),
		User:                              NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CalendarStage.
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
		c.CalendarStage, c.Electronics, c.HardwareRequirement, c.Material,
		c.MaterialFunctionalCharacteristic, c.MaterialOperationalCharacteristic,
		c.PhysicalTestData, c.Satellite, c.SatelliteOpCharacteristic, c.Sensor,
		c.Stand, c.TechnicalSpecification, c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.CalendarStage, c.Electronics, c.HardwareRequirement, c.Material,
		c.MaterialFunctionalCharacteristic, c.MaterialOperationalCharacteristic,
		c.PhysicalTestData, c.Satellite, c.SatelliteOpCharacteristic, c.Sensor,
		c.Stand, c.TechnicalSpecification, c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CalendarStageMutation:
		return c.CalendarStage.mutate(ctx, m)
	case *ElectronicsMutation:
		return c.Electronics.mutate(ctx, m)
	case *HardwareRequirementMutation:
		return c.HardwareRequirement.mutate(ctx, m)
	case *MaterialMutation:
		return c.Material.mutate(ctx, m)
	case *MaterialFunctionalCharacteristicMutation:
		return c.MaterialFunctionalCharacteristic.mutate(ctx, m)
	case *MaterialOperationalCharacteristicMutation:
		return c.MaterialOperationalCharacteristic.mutate(ctx, m)
	case *PhysicalTestDataMutation:
		return c.PhysicalTestData.mutate(ctx, m)
	case *SatelliteMutation:
		return c.Satellite.mutate(ctx, m)
	case *SatelliteOpCharacteristicMutation:
		return c.SatelliteOpCharacteristic.mutate(ctx, m)
	case *SensorMutation:
		return c.Sensor.mutate(ctx, m)
	case *StandMutation:
		return c.Stand.mutate(ctx, m)
	case *TechnicalSpecificationMutation:
		return c.TechnicalSpecification.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CalendarStageClient is a client for the CalendarStage schema.
type CalendarStageClient struct {
	config
}

// NewCalendarStageClient returns a client for the CalendarStage from the given config.
func NewCalendarStageClient(c config) *CalendarStageClient {
	return &CalendarStageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `calendarstage.Hooks(f(g(h())))`.
func (c *CalendarStageClient) Use(hooks ...Hook) {
	c.hooks.CalendarStage = append(c.hooks.CalendarStage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `calendarstage.Intercept(f(g(h())))`.
func (c *CalendarStageClient) Intercept(interceptors ...Interceptor) {
	c.inters.CalendarStage = append(c.inters.CalendarStage, interceptors...)
}

// Create returns a builder for creating a CalendarStage entity.
func (c *CalendarStageClient) Create() *CalendarStageCreate {
	mutation := newCalendarStageMutation(c.config, OpCreate)
	return &CalendarStageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CalendarStage entities.
func (c *CalendarStageClient) CreateBulk(builders ...*CalendarStageCreate) *CalendarStageCreateBulk {
	return &CalendarStageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CalendarStageClient) MapCreateBulk(slice any, setFunc func(*CalendarStageCreate, int)) *CalendarStageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CalendarStageCreateBulk{err: fmt.Errorf("calling to CalendarStageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CalendarStageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CalendarStageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CalendarStage.
func (c *CalendarStageClient) Update() *CalendarStageUpdate {
	mutation := newCalendarStageMutation(c.config, OpUpdate)
	return &CalendarStageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CalendarStageClient) UpdateOne(_m *CalendarStage) *CalendarStageUpdateOne {
	mutation := newCalendarStageMutation(c.config, OpUpdateOne, withCalendarStage(_m))
	return &CalendarStageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CalendarStageClient) UpdateOneID(id int) *CalendarStageUpdateOne {
	mutation := newCalendarStageMutation(c.config, OpUpdateOne, withCalendarStageID(id))
	return &CalendarStageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CalendarStage.
func (c *CalendarStageClient) Delete() *CalendarStageDelete {
	mutation := newCalendarStageMutation(c.config, OpDelete)
	return &CalendarStageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CalendarStageClient) DeleteOne(_m *CalendarStage) *CalendarStageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CalendarStageClient) DeleteOneID(id int) *CalendarStageDeleteOne {
	builder := c.Delete().Where(calendarstage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CalendarStageDeleteOne{builder}
}

// Query returns a query builder for CalendarStage.
func (c *CalendarStageClient) Query() *CalendarStageQuery {
	return &CalendarStageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCalendarStage},
		inters: c.Interceptors(),
	}
}

// Get returns a CalendarStage entity by its id.
func (c *CalendarStageClient) Get(ctx context.Context, id int) (*CalendarStage, error) {
	return c.Query().Where(calendarstage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CalendarStageClient) GetX(ctx context.Context, id int) *CalendarStage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySatellite queries the satellite edge of a CalendarStage.
func (c *CalendarStageClient) QuerySatellite(_m *CalendarStage) *SatelliteQuery {
	query := (&SatelliteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(calendarstage.Table, calendarstage.FieldID, id),
			sqlgraph.To(satellite.Table, satellite.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, calendarstage.SatelliteTable, calendarstage.SatelliteColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTechnicalSpecification queries the technical_specification edge of a CalendarStage.
func (c *CalendarStageClient) QueryTechnicalSpecification(_m *CalendarStage) *TechnicalSpecificationQuery {
	query := (&TechnicalSpecificationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(calendarstage.Table, calendarstage.FieldID, id),
			sqlgraph.To(technicalspecification.Table, technicalspecification.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, calendarstage.TechnicalSpecificationTable, calendarstage.TechnicalSpecificationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CalendarStageClient) Hooks() []Hook {
	return c.hooks.CalendarStage
}

// Interceptors returns the client interceptors.
func (c *CalendarStageClient) Interceptors() []Interceptor {
	return c.inters.CalendarStage
}

func (c *CalendarStageClient) mutate(ctx context.Context, m *CalendarStageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CalendarStageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CalendarStageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CalendarStageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CalendarStageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CalendarStage mutation op: %q", m.Op())
	}
}

// ElectronicsClient is a client for the Electronics schema.
type ElectronicsClient struct {
	config
}

// NewElectronicsClient returns a client for the Electronics from the given config.
func NewElectronicsClient(c config) *ElectronicsClient {
	return &ElectronicsClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `electronics.Hooks(f(g(h())))`.
func (c *ElectronicsClient) Use(hooks ...Hook) {
	c.hooks.Electronics = append(c.hooks.Electronics, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `electronics.Intercept(f(g(h())))`.
func (c *ElectronicsClient) Intercept(interceptors ...Interceptor) {
	c.inters.Electronics = append(c.inters.Electronics, interceptors...)
}

// Create returns a builder for creating a Electronics entity.
func (c *ElectronicsClient) Create() *ElectronicsCreate {
	mutation := newElectronicsMutation(c.config, OpCreate)
	return &ElectronicsCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Electronics entities.
func (c *ElectronicsClient) CreateBulk(builders ...*ElectronicsCreate) *ElectronicsCreateBulk {
	return &ElectronicsCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ElectronicsClient) MapCreateBulk(slice any, setFunc func(*ElectronicsCreate, int)) *ElectronicsCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ElectronicsCreateBulk{err: fmt.Errorf("calling to ElectronicsClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ElectronicsCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ElectronicsCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Electronics.
func (c *ElectronicsClient) Update() *ElectronicsUpdate {
	mutation := newElectronicsMutation(c.config, OpUpdate)
	return &ElectronicsUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ElectronicsClient) UpdateOne(_m *Electronics) *ElectronicsUpdateOne {
	mutation := newElectronicsMutation(c.config, OpUpdateOne, withElectronics(_m))
	return &ElectronicsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ElectronicsClient) UpdateOneID(id int) *ElectronicsUpdateOne {
	mutation := newElectronicsMutation(c.config, OpUpdateOne, withElectronicsID(id))
	return &ElectronicsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Electronics.
func (c *ElectronicsClient) Delete() *ElectronicsDelete {
	mutation := newElectronicsMutation(c.config, OpDelete)
	return &ElectronicsDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ElectronicsClient) DeleteOne(_m *Electronics) *ElectronicsDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ElectronicsClient) DeleteOneID(id int) *ElectronicsDeleteOne {
	builder := c.Delete().Where(electronics.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ElectronicsDeleteOne{builder}
}

// Query returns a query builder for Electronics.
func (c *ElectronicsClient) Query() *ElectronicsQuery {
	return &ElectronicsQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeElectronics},
		inters: c.Interceptors(),
	}
}

// Get returns a Electronics entity by its id.
func (c *ElectronicsClient) Get(ctx context.Context, id int) (*Electronics, error) {
	return c.Query().Where(electronics.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ElectronicsClient) GetX(ctx context.Context, id int) *Electronics {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySatellite queries the satellite edge of a Electronics.
func (c *ElectronicsClient) QuerySatellite(_m *Electronics) *SatelliteQuery {
	query := (&SatelliteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(electronics.Table, electronics.FieldID, id),
			sqlgraph.To(satellite.Table, satellite.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, electronics.SatelliteTable, electronics.SatelliteColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ElectronicsClient) Hooks() []Hook {
	return c.hooks.Electronics
}

// Interceptors returns the client interceptors.
func (c *ElectronicsClient) Interceptors() []Interceptor {
	return c.inters.Electronics
}

func (c *ElectronicsClient) mutate(ctx context.Context, m *ElectronicsMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ElectronicsCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ElectronicsUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ElectronicsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ElectronicsDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Electronics mutation op: %q", m.Op())
	}
}

// HardwareRequirementClient is a client for the HardwareRequirement schema.
type HardwareRequirementClient struct {
	config
}

// NewHardwareRequirementClient returns a client for the HardwareRequirement from the given config.
func NewHardwareRequirementClient(c config) *HardwareRequirementClient {
	return &HardwareRequirementClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `hardwarerequirement.Hooks(f(g(h())))`.
func (c *HardwareRequirementClient) Use(hooks ...Hook) {
	c.hooks.HardwareRequirement = append(c.hooks.HardwareRequirement, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `hardwarerequirement.Intercept(f(g(h())))`.
func (c *HardwareRequirementClient) Intercept(interceptors ...Interceptor) {
	c.inters.HardwareRequirement = append(c.inters.HardwareRequirement, interceptors...)
}

// Create returns a builder for creating a HardwareRequirement entity.
func (c *HardwareRequirementClient) Create() *HardwareRequirementCreate {
	mutation := newHardwareRequirementMutation(c.config, OpCreate)
	return &HardwareRequirementCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of HardwareRequirement entities.
func (c *HardwareRequirementClient) CreateBulk(builders ...*HardwareRequirementCreate) *HardwareRequirementCreateBulk {
	return &HardwareRequirementCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HardwareRequirementClient) MapCreateBulk(slice any, setFunc func(*HardwareRequirementCreate, int)) *HardwareRequirementCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HardwareRequirementCreateBulk{err: fmt.Errorf("calling to HardwareRequirementClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HardwareRequirementCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HardwareRequirementCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for HardwareRequirement.
func (c *HardwareRequirementClient) Update() *HardwareRequirementUpdate {
	mutation := newHardwareRequirementMutation(c.config, OpUpdate)
	return &HardwareRequirementUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HardwareRequirementClient) UpdateOne(_m *HardwareRequirement) *HardwareRequirementUpdateOne {
	mutation := newHardwareRequirementMutation(c.config, OpUpdateOne, withHardwareRequirement(_m))
	return &HardwareRequirementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HardwareRequirementClient) UpdateOneID(id int) *HardwareRequirementUpdateOne {
	mutation := newHardwareRequirementMutation(c.config, OpUpdateOne, withHardwareRequirementID(id))
	return &HardwareRequirementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for HardwareRequirement.
func (c *HardwareRequirementClient) Delete() *HardwareRequirementDelete {
	mutation := newHardwareRequirementMutation(c.config, OpDelete)
	return &HardwareRequirementDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HardwareRequirementClient) DeleteOne(_m *HardwareRequirement) *HardwareRequirementDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HardwareRequirementClient) DeleteOneID(id int) *HardwareRequirementDeleteOne {
	builder := c.Delete().Where(hardwarerequirement.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HardwareRequirementDeleteOne{builder}
}

// Query returns a query builder for HardwareRequirement.
func (c *HardwareRequirementClient) Query() *HardwareRequirementQuery {
	return &HardwareRequirementQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHardwareRequirement},
		inters: c.Interceptors(),
	}
}

// Get returns a HardwareRequirement entity by its id.
func (c *HardwareRequirementClient) Get(ctx context.Context, id int) (*HardwareRequirement, error) {
	return c.Query().Where(hardwarerequirement.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HardwareRequirementClient) GetX(ctx context.Context, id int) *HardwareRequirement {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStand queries the stand edge of a HardwareRequirement.
func (c *HardwareRequirementClient) QueryStand(_m *HardwareRequirement) *StandQuery {
	query := (&StandClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(hardwarerequirement.Table, hardwarerequirement.FieldID, id),
			sqlgraph.To(stand.Table, stand.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, hardwarerequirement.StandTable, hardwarerequirement.StandColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *HardwareRequirementClient) Hooks() []Hook {
	return c.hooks.HardwareRequirement
}

// Interceptors returns the client interceptors.
func (c *HardwareRequirementClient) Interceptors() []Interceptor {
	return c.inters.HardwareRequirement
}

func (c *HardwareRequirementClient) mutate(ctx context.Context, m *HardwareRequirementMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HardwareRequirementCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HardwareRequirementUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HardwareRequirementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HardwareRequirementDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown HardwareRequirement mutation op: %q", m.Op())
	}
}

// MaterialClient is a client for the Material schema.
type MaterialClient struct {
	config
}

// NewMaterialClient returns a client for the Material from the given config.
func NewMaterialClient(c config) *MaterialClient {
	return &MaterialClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `material.Hooks(f(g(h())))`.
func (c *MaterialClient) Use(hooks ...Hook) {
	c.hooks.Material = append(c.hooks.Material, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `material.Intercept(f(g(h())))`.
func (c *MaterialClient) Intercept(interceptors ...Interceptor) {
	c.inters.Material = append(c.inters.Material, interceptors...)
}

// Create returns a builder for creating a Material entity.
func (c *MaterialClient) Create() *MaterialCreate {
	mutation := newMaterialMutation(c.config, OpCreate)
	return &MaterialCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Material entities.
func (c *MaterialClient) CreateBulk(builders ...*MaterialCreate) *MaterialCreateBulk {
	return &MaterialCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MaterialClient) MapCreateBulk(slice any, setFunc func(*MaterialCreate, int)) *MaterialCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MaterialCreateBulk{err: fmt.Errorf("calling to MaterialClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MaterialCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MaterialCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Material.
func (c *MaterialClient) Update() *MaterialUpdate {
	mutation := newMaterialMutation(c.config, OpUpdate)
	return &MaterialUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MaterialClient) UpdateOne(_m *Material) *MaterialUpdateOne {
	mutation := newMaterialMutation(c.config, OpUpdateOne, withMaterial(_m))
	return &MaterialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MaterialClient) UpdateOneID(id int) *MaterialUpdateOne {
	mutation := newMaterialMutation(c.config, OpUpdateOne, withMaterialID(id))
	return &MaterialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Material.
func (c *MaterialClient) Delete() *MaterialDelete {
	mutation := newMaterialMutation(c.config, OpDelete)
	return &MaterialDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MaterialClient) DeleteOne(_m *Material) *MaterialDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MaterialClient) DeleteOneID(id int) *MaterialDeleteOne {
	builder := c.Delete().Where(material.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MaterialDeleteOne{builder}
}

// Query returns a query builder for Material.
func (c *MaterialClient) Query() *MaterialQuery {
	return &MaterialQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMaterial},
		inters: c.Interceptors(),
	}
}

// Get returns a Material entity by its id.
func (c *MaterialClient) Get(ctx context.Context, id int) (*Material, error) {
	return c.Query().Where(material.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MaterialClient) GetX(ctx context.Context, id int) *Material {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFunctionalCharacteristics queries the functional_characteristics edge of a Material.
func (c *MaterialClient) QueryFunctionalCharacteristics(_m *Material) *MaterialFunctionalCharacteristicQuery {
	query := (&MaterialFunctionalCharacteristicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(material.Table, material.FieldID, id),
			sqlgraph.To(materialfunctionalcharacteristic.Table, materialfunctionalcharacteristic.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, material.FunctionalCharacteristicsTable, material.FunctionalCharacteristicsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOperationalCharacteristics queries the operational_characteristics edge of a Material.
func (c *MaterialClient) QueryOperationalCharacteristics(_m *Material) *MaterialOperationalCharacteristicQuery {
	query := (&MaterialOperationalCharacteristicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(material.Table, material.FieldID, id),
			sqlgraph.To(materialoperationalcharacteristic.Table, materialoperationalcharacteristic.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, material.OperationalCharacteristicsTable, material.OperationalCharacteristicsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MaterialClient) Hooks() []Hook {
	return c.hooks.Material
}

// Interceptors returns the client interceptors.
func (c *MaterialClient) Interceptors() []Interceptor {
	return c.inters.Material
}

func (c *MaterialClient) mutate(ctx context.Context, m *MaterialMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MaterialCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MaterialUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MaterialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MaterialDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Material mutation op: %q", m.Op())
	}
}

// MaterialFunctionalCharacteristicClient is a client for the MaterialFunctionalCharacteristic schema.
type MaterialFunctionalCharacteristicClient struct {
	config
}

// NewMaterialFunctionalCharacteristicClient returns a client for the MaterialFunctionalCharacteristic from the given config.
func NewMaterialFunctionalCharacteristicClient(c config) *MaterialFunctionalCharacteristicClient {
	return &MaterialFunctionalCharacteristicClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `materialfunctionalcharacteristic.Hooks(f(g(h())))`.
func (c *MaterialFunctionalCharacteristicClient) Use(hooks ...Hook) {
	c.hooks.MaterialFunctionalCharacteristic = append(c.hooks.MaterialFunctionalCharacteristic, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `materialfunctionalcharacteristic.Intercept(f(g(h())))`.
func (c *MaterialFunctionalCharacteristicClient) Intercept(interceptors ...Interceptor) {
	c.inters.MaterialFunctionalCharacteristic = append(c.inters.MaterialFunctionalCharacteristic, interceptors...)
}

// Create returns a builder for creating a MaterialFunctionalCharacteristic entity.
func (c *MaterialFunctionalCharacteristicClient) Create() *MaterialFunctionalCharacteristicCreate {
	mutation := newMaterialFunctionalCharacteristicMutation(c.config, OpCreate)
	return &MaterialFunctionalCharacteristicCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MaterialFunctionalCharacteristic entities.
func (c *MaterialFunctionalCharacteristicClient) CreateBulk(builders ...*MaterialFunctionalCharacteristicCreate) *MaterialFunctionalCharacteristicCreateBulk {
	return &MaterialFunctionalCharacteristicCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MaterialFunctionalCharacteristicClient) MapCreateBulk(slice any, setFunc func(*MaterialFunctionalCharacteristicCreate, int)) *MaterialFunctionalCharacteristicCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MaterialFunctionalCharacteristicCreateBulk{err: fmt.Errorf("calling to MaterialFunctionalCharacteristicClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MaterialFunctionalCharacteristicCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MaterialFunctionalCharacteristicCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MaterialFunctionalCharacteristic.
func (c *MaterialFunctionalCharacteristicClient) Update() *MaterialFunctionalCharacteristicUpdate {
	mutation := newMaterialFunctionalCharacteristicMutation(c.config, OpUpdate)
	return &MaterialFunctionalCharacteristicUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MaterialFunctionalCharacteristicClient) UpdateOne(_m *MaterialFunctionalCharacteristic) *MaterialFunctionalCharacteristicUpdateOne {
	mutation := newMaterialFunctionalCharacteristicMutation(c.config, OpUpdateOne, withMaterialFunctionalCharacteristic(_m))
	return &MaterialFunctionalCharacteristicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MaterialFunctionalCharacteristicClient) UpdateOneID(id int) *MaterialFunctionalCharacteristicUpdateOne {
	mutation := newMaterialFunctionalCharacteristicMutation(c.config, OpUpdateOne, withMaterialFunctionalCharacteristicID(id))
	return &MaterialFunctionalCharacteristicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MaterialFunctionalCharacteristic.
func (c *MaterialFunctionalCharacteristicClient) Delete() *MaterialFunctionalCharacteristicDelete {
	mutation := newMaterialFunctionalCharacteristicMutation(c.config, OpDelete)
	return &MaterialFunctionalCharacteristicDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MaterialFunctionalCharacteristicClient) DeleteOne(_m *MaterialFunctionalCharacteristic) *MaterialFunctionalCharacteristicDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MaterialFunctionalCharacteristicClient) DeleteOneID(id int) *MaterialFunctionalCharacteristicDeleteOne {
	builder := c.Delete().Where(materialfunctionalcharacteristic.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MaterialFunctionalCharacteristicDeleteOne{builder}
}

// Query returns a query builder for MaterialFunctionalCharacteristic.
func (c *MaterialFunctionalCharacteristicClient) Query() *MaterialFunctionalCharacteristicQuery {
	return &MaterialFunctionalCharacteristicQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMaterialFunctionalCharacteristic},
		inters: c.Interceptors(),
	}
}

// Get returns a MaterialFunctionalCharacteristic entity by its id.
func (c *MaterialFunctionalCharacteristicClient) Get(ctx context.Context, id int) (*MaterialFunctionalCharacteristic, error) {
	return c.Query().Where(materialfunctionalcharacteristic.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MaterialFunctionalCharacteristicClient) GetX(ctx context.Context, id int) *MaterialFunctionalCharacteristic {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMaterial queries the material edge of a MaterialFunctionalCharacteristic.
func (c *MaterialFunctionalCharacteristicClient) QueryMaterial(_m *MaterialFunctionalCharacteristic) *MaterialQuery {
	query := (&MaterialClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(materialfunctionalcharacteristic.Table, materialfunctionalcharacteristic.FieldID, id),
			sqlgraph.To(material.Table, material.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, materialfunctionalcharacteristic.MaterialTable, materialfunctionalcharacteristic.MaterialColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MaterialFunctionalCharacteristicClient) Hooks() []Hook {
	return c.hooks.MaterialFunctionalCharacteristic
}

// Interceptors returns the client interceptors.
func (c *MaterialFunctionalCharacteristicClient) Interceptors() []Interceptor {
	return c.inters.MaterialFunctionalCharacteristic
}

func (c *MaterialFunctionalCharacteristicClient) mutate(ctx context.Context, m *MaterialFunctionalCharacteristicMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MaterialFunctionalCharacteristicCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MaterialFunctionalCharacteristicUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MaterialFunctionalCharacteristicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MaterialFunctionalCharacteristicDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MaterialFunctionalCharacteristic mutation op: %q", m.Op())
	}
}

// MaterialOperationalCharacteristicClient is a client for the MaterialOperationalCharacteristic schema.
type MaterialOperationalCharacteristicClient struct {
	config
}

// NewMaterialOperationalCharacteristicClient returns a client for the MaterialOperationalCharacteristic from the given config.
func NewMaterialOperationalCharacteristicClient(c config) *MaterialOperationalCharacteristicClient {
	return &MaterialOperationalCharacteristicClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `materialoperationalcharacteristic.Hooks(f(g(h())))`.
func (c *MaterialOperationalCharacteristicClient) Use(hooks ...Hook) {
	c.hooks.MaterialOperationalCharacteristic = append(c.hooks.MaterialOperationalCharacteristic, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `materialoperationalcharacteristic.Intercept(f(g(h())))`.
func (c *MaterialOperationalCharacteristicClient) Intercept(interceptors ...Interceptor) {
	c.inters.MaterialOperationalCharacteristic = append(c.inters.MaterialOperationalCharacteristic, interceptors...)
}

// Create returns a builder for creating a MaterialOperationalCharacteristic entity.
func (c *MaterialOperationalCharacteristicClient) Create() *MaterialOperationalCharacteristicCreate {
	mutation := newMaterialOperationalCharacteristicMutation(c.config, OpCreate)
	return &MaterialOperationalCharacteristicCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MaterialOperationalCharacteristic entities.
func (c *MaterialOperationalCharacteristicClient) CreateBulk(builders ...*MaterialOperationalCharacteristicCreate) *MaterialOperationalCharacteristicCreateBulk {
	return &MaterialOperationalCharacteristicCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MaterialOperationalCharacteristicClient) MapCreateBulk(slice any, setFunc func(*MaterialOperationalCharacteristicCreate, int)) *MaterialOperationalCharacteristicCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MaterialOperationalCharacteristicCreateBulk{err: fmt.Errorf("calling to MaterialOperationalCharacteristicClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MaterialOperationalCharacteristicCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MaterialOperationalCharacteristicCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MaterialOperationalCharacteristic.
func (c *MaterialOperationalCharacteristicClient) Update() *MaterialOperationalCharacteristicUpdate {
	mutation := newMaterialOperationalCharacteristicMutation(c.config, OpUpdate)
	return &MaterialOperationalCharacteristicUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MaterialOperationalCharacteristicClient) UpdateOne(_m *MaterialOperationalCharacteristic) *MaterialOperationalCharacteristicUpdateOne {
	mutation := newMaterialOperationalCharacteristicMutation(c.config, OpUpdateOne, withMaterialOperationalCharacteristic(_m))
	return &MaterialOperationalCharacteristicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MaterialOperationalCharacteristicClient) UpdateOneID(id int) *MaterialOperationalCharacteristicUpdateOne {
	mutation := newMaterialOperationalCharacteristicMutation(c.config, OpUpdateOne, withMaterialOperationalCharacteristicID(id))
	return &MaterialOperationalCharacteristicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MaterialOperationalCharacteristic.
func (c *MaterialOperationalCharacteristicClient) Delete() *MaterialOperationalCharacteristicDelete {
	mutation := newMaterialOperationalCharacteristicMutation(c.config, OpDelete)
	return &MaterialOperationalCharacteristicDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MaterialOperationalCharacteristicClient) DeleteOne(_m *MaterialOperationalCharacteristic) *MaterialOperationalCharacteristicDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MaterialOperationalCharacteristicClient) DeleteOneID(id int) *MaterialOperationalCharacteristicDeleteOne {
	builder := c.Delete().Where(materialoperationalcharacteristic.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MaterialOperationalCharacteristicDeleteOne{builder}
}

// Query returns a query builder for MaterialOperationalCharacteristic.
func (c *MaterialOperationalCharacteristicClient) Query() *MaterialOperationalCharacteristicQuery {
	return &MaterialOperationalCharacteristicQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMaterialOperationalCharacteristic},
		inters: c.Interceptors(),
	}
}

// Get returns a MaterialOperationalCharacteristic entity by its id.
func (c *MaterialOperationalCharacteristicClient) Get(ctx context.Context, id int) (*MaterialOperationalCharacteristic, error) {
	return c.Query().Where(materialoperationalcharacteristic.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MaterialOperationalCharacteristicClient) GetX(ctx context.Context, id int) *MaterialOperationalCharacteristic {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMaterial queries the material edge of a MaterialOperationalCharacteristic.
func (c *MaterialOperationalCharacteristicClient) QueryMaterial(_m *MaterialOperationalCharacteristic) *MaterialQuery {
	query := (&MaterialClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(materialoperationalcharacteristic.Table, materialoperationalcharacteristic.FieldID, id),
			sqlgraph.To(material.Table, material.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, materialoperationalcharacteristic.MaterialTable, materialoperationalcharacteristic.MaterialColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStand queries the stand edge of a MaterialOperationalCharacteristic.
func (c *MaterialOperationalCharacteristicClient) QueryStand(_m *MaterialOperationalCharacteristic) *StandQuery {
	query := (&StandClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(materialoperationalcharacteristic.Table, materialoperationalcharacteristic.FieldID, id),
			sqlgraph.To(stand.Table, stand.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, materialoperationalcharacteristic.StandTable, materialoperationalcharacteristic.StandColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MaterialOperationalCharacteristicClient) Hooks() []Hook {
	return c.hooks.MaterialOperationalCharacteristic
}

// Interceptors returns the client interceptors.
func (c *MaterialOperationalCharacteristicClient) Interceptors() []Interceptor {
	return c.inters.MaterialOperationalCharacteristic
}

func (c *MaterialOperationalCharacteristicClient) mutate(ctx context.Context, m *MaterialOperationalCharacteristicMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MaterialOperationalCharacteristicCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MaterialOperationalCharacteristicUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MaterialOperationalCharacteristicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MaterialOperationalCharacteristicDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MaterialOperationalCharacteristic mutation op: %q", m.Op())
	}
}

// PhysicalTestDataClient is a client for the PhysicalTestData schema.
type PhysicalTestDataClient struct {
	config
}

// NewPhysicalTestDataClient returns a client for the PhysicalTestData from the given config.
func NewPhysicalTestDataClient(c config) *PhysicalTestDataClient {
	return &PhysicalTestDataClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `physicaltestdata.Hooks(f(g(h())))`.
func (c *PhysicalTestDataClient) Use(hooks ...Hook) {
	c.hooks.PhysicalTestData = append(c.hooks.PhysicalTestData, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `physicaltestdata.Intercept(f(g(h())))`.
func (c *PhysicalTestDataClient) Intercept(interceptors ...Interceptor) {
	c.inters.PhysicalTestData = append(c.inters.PhysicalTestData, interceptors...)
}

// Create returns a builder for creating a PhysicalTestData entity.
func (c *PhysicalTestDataClient) Create() *PhysicalTestDataCreate {
	mutation := newPhysicalTestDataMutation(c.config, OpCreate)
	return &PhysicalTestDataCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PhysicalTestData entities.
func (c *PhysicalTestDataClient) CreateBulk(builders ...*PhysicalTestDataCreate) *PhysicalTestDataCreateBulk {
	return &PhysicalTestDataCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PhysicalTestDataClient) MapCreateBulk(slice any, setFunc func(*PhysicalTestDataCreate, int)) *PhysicalTestDataCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PhysicalTestDataCreateBulk{err: fmt.Errorf("calling to PhysicalTestDataClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PhysicalTestDataCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PhysicalTestDataCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PhysicalTestData.
func (c *PhysicalTestDataClient) Update() *PhysicalTestDataUpdate {
	mutation := newPhysicalTestDataMutation(c.config, OpUpdate)
	return &PhysicalTestDataUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PhysicalTestDataClient) UpdateOne(_m *PhysicalTestData) *PhysicalTestDataUpdateOne {
	mutation := newPhysicalTestDataMutation(c.config, OpUpdateOne, withPhysicalTestData(_m))
	return &PhysicalTestDataUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PhysicalTestDataClient) UpdateOneID(id int) *PhysicalTestDataUpdateOne {
	mutation := newPhysicalTestDataMutation(c.config, OpUpdateOne, withPhysicalTestDataID(id))
	return &PhysicalTestDataUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PhysicalTestData.
func (c *PhysicalTestDataClient) Delete() *PhysicalTestDataDelete {
	mutation := newPhysicalTestDataMutation(c.config, OpDelete)
	return &PhysicalTestDataDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PhysicalTestDataClient) DeleteOne(_m *PhysicalTestData) *PhysicalTestDataDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PhysicalTestDataClient) DeleteOneID(id int) *PhysicalTestDataDeleteOne {
	builder := c.Delete().Where(physicaltestdata.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PhysicalTestDataDeleteOne{builder}
}

// Query returns a query builder for PhysicalTestData.
func (c *PhysicalTestDataClient) Query() *PhysicalTestDataQuery {
	return &PhysicalTestDataQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePhysicalTestData},
		inters: c.Interceptors(),
	}
}

// Get returns a PhysicalTestData entity by its id.
func (c *PhysicalTestDataClient) Get(ctx context.Context, id int) (*PhysicalTestData, error) {
	return c.Query().Where(physicaltestdata.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PhysicalTestDataClient) GetX(ctx context.Context, id int) *PhysicalTestData {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStand queries the stand edge of a PhysicalTestData.
func (c *PhysicalTestDataClient) QueryStand(_m *PhysicalTestData) *StandQuery {
	query := (&StandClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(physicaltestdata.Table, physicaltestdata.FieldID, id),
			sqlgraph.To(stand.Table, stand.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, physicaltestdata.StandTable, physicaltestdata.StandColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PhysicalTestDataClient) Hooks() []Hook {
	return c.hooks.PhysicalTestData
}

// Interceptors returns the client interceptors.
func (c *PhysicalTestDataClient) Interceptors() []Interceptor {
	return c.inters.PhysicalTestData
}

func (c *PhysicalTestDataClient) mutate(ctx context.Context, m *PhysicalTestDataMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PhysicalTestDataCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PhysicalTestDataUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PhysicalTestDataUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PhysicalTestDataDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PhysicalTestData mutation op: %q", m.Op())
	}
}

// SatelliteClient is a client for the Satellite schema.
type SatelliteClient struct {
	config
}

// NewSatelliteClient returns a client for the Satellite from the given config.
func NewSatelliteClient(c config) *SatelliteClient {
	return &SatelliteClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `satellite.Hooks(f(g(h())))`.
func (c *SatelliteClient) Use(hooks ...Hook) {
	c.hooks.Satellite = append(c.hooks.Satellite, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `satellite.Intercept(f(g(h())))`.
func (c *SatelliteClient) Intercept(interceptors ...Interceptor) {
	c.inters.Satellite = append(c.inters.Satellite, interceptors...)
}

// Create returns a builder for creating a Satellite entity.
func (c *SatelliteClient) Create() *SatelliteCreate {
	mutation := newSatelliteMutation(c.config, OpCreate)
	return &SatelliteCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Satellite entities.
func (c *SatelliteClient) CreateBulk(builders ...*SatelliteCreate) *SatelliteCreateBulk {
	return &SatelliteCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SatelliteClient) MapCreateBulk(slice any, setFunc func(*SatelliteCreate, int)) *SatelliteCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SatelliteCreateBulk{err: fmt.Errorf("calling to SatelliteClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SatelliteCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SatelliteCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Satellite.
func (c *SatelliteClient) Update() *SatelliteUpdate {
	mutation := newSatelliteMutation(c.config, OpUpdate)
	return &SatelliteUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SatelliteClient) UpdateOne(_m *Satellite) *SatelliteUpdateOne {
	mutation := newSatelliteMutation(c.config, OpUpdateOne, withSatellite(_m))
	return &SatelliteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SatelliteClient) UpdateOneID(id int) *SatelliteUpdateOne {
	mutation := newSatelliteMutation(c.config, OpUpdateOne, withSatelliteID(id))
	return &SatelliteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Satellite.
func (c *SatelliteClient) Delete() *SatelliteDelete {
	mutation := newSatelliteMutation(c.config, OpDelete)
	return &SatelliteDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SatelliteClient) DeleteOne(_m *Satellite) *SatelliteDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SatelliteClient) DeleteOneID(id int) *SatelliteDeleteOne {
	builder := c.Delete().Where(satellite.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SatelliteDeleteOne{builder}
}

// Query returns a query builder for Satellite.
func (c *SatelliteClient) Query() *SatelliteQuery {
	return &SatelliteQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSatellite},
		inters: c.Interceptors(),
	}
}

// Get returns a Satellite entity by its id.
func (c *SatelliteClient) Get(ctx context.Context, id int) (*Satellite, error) {
	return c.Query().Where(satellite.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SatelliteClient) GetX(ctx context.Context, id int) *Satellite {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryElectronics queries the electronics edge of a Satellite.
func (c *SatelliteClient) QueryElectronics(_m *Satellite) *ElectronicsQuery {
	query := (&ElectronicsClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(satellite.Table, satellite.FieldID, id),
			sqlgraph.To(electronics.Table, electronics.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, satellite.ElectronicsTable, satellite.ElectronicsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCalendarStages queries the calendar_stages edge of a Satellite.
func (c *SatelliteClient) QueryCalendarStages(_m *Satellite) *CalendarStageQuery {
	query := (&CalendarStageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(satellite.Table, satellite.FieldID, id),
			sqlgraph.To(calendarstage.Table, calendarstage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, satellite.CalendarStagesTable, satellite.CalendarStagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTechnicalSpecifications queries the technical_specifications edge of a Satellite.
func (c *SatelliteClient) QueryTechnicalSpecifications(_m *Satellite) *TechnicalSpecificationQuery {
	query := (&TechnicalSpecificationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(satellite.Table, satellite.FieldID, id),
			sqlgraph.To(technicalspecification.Table, technicalspecification.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, satellite.TechnicalSpecificationsTable, satellite.TechnicalSpecificationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOpCharacteristics queries the op_characteristics edge of a Satellite.
func (c *SatelliteClient) QueryOpCharacteristics(_m *Satellite) *SatelliteOpCharacteristicQuery {
	query := (&SatelliteOpCharacteristicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(satellite.Table, satellite.FieldID, id),
			sqlgraph.To(satelliteopcharacteristic.Table, satelliteopcharacteristic.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, satellite.OpCharacteristicsTable, satellite.OpCharacteristicsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStands queries the stands edge of a Satellite.
func (c *SatelliteClient) QueryStands(_m *Satellite) *StandQuery {
	query := (&StandClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(satellite.Table, satellite.FieldID, id),
			sqlgraph.To(stand.Table, stand.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, satellite.StandsTable, satellite.StandsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SatelliteClient) Hooks() []Hook {
	return c.hooks.Satellite
}

// Interceptors returns the client interceptors.
func (c *SatelliteClient) Interceptors() []Interceptor {
	return c.inters.Satellite
}

func (c *SatelliteClient) mutate(ctx context.Context, m *SatelliteMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SatelliteCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SatelliteUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SatelliteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SatelliteDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Satellite mutation op: %q", m.Op())
	}
}

// SatelliteOpCharacteristicClient is a client for the SatelliteOpCharacteristic schema.
type SatelliteOpCharacteristicClient struct {
	config
}

// NewSatelliteOpCharacteristicClient returns a client for the SatelliteOpCharacteristic from the given config.
func NewSatelliteOpCharacteristicClient(c config) *SatelliteOpCharacteristicClient {
	return &SatelliteOpCharacteristicClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `satelliteopcharacteristic.Hooks(f(g(h())))`.
func (c *SatelliteOpCharacteristicClient) Use(hooks ...Hook) {
	c.hooks.SatelliteOpCharacteristic = append(c.hooks.SatelliteOpCharacteristic, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `satelliteopcharacteristic.Intercept(f(g(h())))`.
func (c *SatelliteOpCharacteristicClient) Intercept(interceptors ...Interceptor) {
	c.inters.SatelliteOpCharacteristic = append(c.inters.SatelliteOpCharacteristic, interceptors...)
}

// Create returns a builder for creating a SatelliteOpCharacteristic entity.
func (c *SatelliteOpCharacteristicClient) Create() *SatelliteOpCharacteristicCreate {
	mutation := newSatelliteOpCharacteristicMutation(c.config, OpCreate)
	return &SatelliteOpCharacteristicCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SatelliteOpCharacteristic entities.
func (c *SatelliteOpCharacteristicClient) CreateBulk(builders ...*SatelliteOpCharacteristicCreate) *SatelliteOpCharacteristicCreateBulk {
	return &SatelliteOpCharacteristicCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SatelliteOpCharacteristicClient) MapCreateBulk(slice any, setFunc func(*SatelliteOpCharacteristicCreate, int)) *SatelliteOpCharacteristicCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SatelliteOpCharacteristicCreateBulk{err: fmt.Errorf("calling to SatelliteOpCharacteristicClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SatelliteOpCharacteristicCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SatelliteOpCharacteristicCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SatelliteOpCharacteristic.
func (c *SatelliteOpCharacteristicClient) Update() *SatelliteOpCharacteristicUpdate {
	mutation := newSatelliteOpCharacteristicMutation(c.config, OpUpdate)
	return &SatelliteOpCharacteristicUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SatelliteOpCharacteristicClient) UpdateOne(_m *SatelliteOpCharacteristic) *SatelliteOpCharacteristicUpdateOne {
	mutation := newSatelliteOpCharacteristicMutation(c.config, OpUpdateOne, withSatelliteOpCharacteristic(_m))
	return &SatelliteOpCharacteristicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SatelliteOpCharacteristicClient) UpdateOneID(id int) *SatelliteOpCharacteristicUpdateOne {
	mutation := newSatelliteOpCharacteristicMutation(c.config, OpUpdateOne, withSatelliteOpCharacteristicID(id))
	return &SatelliteOpCharacteristicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SatelliteOpCharacteristic.
func (c *SatelliteOpCharacteristicClient) Delete() *SatelliteOpCharacteristicDelete {
	mutation := newSatelliteOpCharacteristicMutation(c.config, OpDelete)
	return &SatelliteOpCharacteristicDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SatelliteOpCharacteristicClient) DeleteOne(_m *SatelliteOpCharacteristic) *SatelliteOpCharacteristicDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SatelliteOpCharacteristicClient) DeleteOneID(id int) *SatelliteOpCharacteristicDeleteOne {
	builder := c.Delete().Where(satelliteopcharacteristic.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SatelliteOpCharacteristicDeleteOne{builder}
}

// Query returns a query builder for SatelliteOpCharacteristic.
func (c *SatelliteOpCharacteristicClient) Query() *SatelliteOpCharacteristicQuery {
	return &SatelliteOpCharacteristicQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSatelliteOpCharacteristic},
		inters: c.Interceptors(),
	}
}

// Get returns a SatelliteOpCharacteristic entity by its id.
func (c *SatelliteOpCharacteristicClient) Get(ctx context.Context, id int) (*SatelliteOpCharacteristic, error) {
	return c.Query().Where(satelliteopcharacteristic.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SatelliteOpCharacteristicClient) GetX(ctx context.Context, id int) *SatelliteOpCharacteristic {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySatellite queries the satellite edge of a SatelliteOpCharacteristic.
func (c *SatelliteOpCharacteristicClient) QuerySatellite(_m *SatelliteOpCharacteristic) *SatelliteQuery {
	query := (&SatelliteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(satelliteopcharacteristic.Table, satelliteopcharacteristic.FieldID, id),
			sqlgraph.To(satellite.Table, satellite.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, satelliteopcharacteristic.SatelliteTable, satelliteopcharacteristic.SatelliteColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SatelliteOpCharacteristicClient) Hooks() []Hook {
	return c.hooks.SatelliteOpCharacteristic
}

// Interceptors returns the client interceptors.
func (c *SatelliteOpCharacteristicClient) Interceptors() []Interceptor {
	return c.inters.SatelliteOpCharacteristic
}

func (c *SatelliteOpCharacteristicClient) mutate(ctx context.Context, m *SatelliteOpCharacteristicMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SatelliteOpCharacteristicCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SatelliteOpCharacteristicUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SatelliteOpCharacteristicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SatelliteOpCharacteristicDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SatelliteOpCharacteristic mutation op: %q", m.Op())
	}
}

// SensorClient is a client for the Sensor schema.
type SensorClient struct {
	config
}

// NewSensorClient returns a client for the Sensor from the given config.
func NewSensorClient(c config) *SensorClient {
	return &SensorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sensor.Hooks(f(g(h())))`.
func (c *SensorClient) Use(hooks ...Hook) {
	c.hooks.Sensor = append(c.hooks.Sensor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sensor.Intercept(f(g(h())))`.
func (c *SensorClient) Intercept(interceptors ...Interceptor) {
	c.inters.Sensor = append(c.inters.Sensor, interceptors...)
}

// Create returns a builder for creating a Sensor entity.
func (c *SensorClient) Create() *SensorCreate {
	mutation := newSensorMutation(c.config, OpCreate)
	return &SensorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Sensor entities.
func (c *SensorClient) CreateBulk(builders ...*SensorCreate) *SensorCreateBulk {
	return &SensorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SensorClient) MapCreateBulk(slice any, setFunc func(*SensorCreate, int)) *SensorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SensorCreateBulk{err: fmt.Errorf("calling to SensorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SensorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SensorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Sensor.
func (c *SensorClient) Update() *SensorUpdate {
	mutation := newSensorMutation(c.config, OpUpdate)
	return &SensorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SensorClient) UpdateOne(_m *Sensor) *SensorUpdateOne {
	mutation := newSensorMutation(c.config, OpUpdateOne, withSensor(_m))
	return &SensorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SensorClient) UpdateOneID(id int) *SensorUpdateOne {
	mutation := newSensorMutation(c.config, OpUpdateOne, withSensorID(id))
	return &SensorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Sensor.
func (c *SensorClient) Delete() *SensorDelete {
	mutation := newSensorMutation(c.config, OpDelete)
	return &SensorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SensorClient) DeleteOne(_m *Sensor) *SensorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SensorClient) DeleteOneID(id int) *SensorDeleteOne {
	builder := c.Delete().Where(sensor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SensorDeleteOne{builder}
}

// Query returns a query builder for Sensor.
func (c *SensorClient) Query() *SensorQuery {
	return &SensorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSensor},
		inters: c.Interceptors(),
	}
}

// Get returns a Sensor entity by its id.
func (c *SensorClient) Get(ctx context.Context, id int) (*Sensor, error) {
	return c.Query().Where(sensor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SensorClient) GetX(ctx context.Context, id int) *Sensor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStand queries the stand edge of a Sensor.
func (c *SensorClient) QueryStand(_m *Sensor) *StandQuery {
	query := (&StandClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sensor.Table, sensor.FieldID, id),
			sqlgraph.To(stand.Table, stand.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sensor.StandTable, sensor.StandColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SensorClient) Hooks() []Hook {
	return c.hooks.Sensor
}

// Interceptors returns the client interceptors.
func (c *SensorClient) Interceptors() []Interceptor {
	return c.inters.Sensor
}

func (c *SensorClient) mutate(ctx context.Context, m *SensorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SensorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SensorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SensorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SensorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Sensor mutation op: %q", m.Op())
	}
}

// StandClient is a client for the Stand schema.
type StandClient struct {
	config
}

// NewStandClient returns a client for the Stand from the given config.
func NewStandClient(c config) *StandClient {
	return &StandClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stand.Hooks(f(g(h())))`.
func (c *StandClient) Use(hooks ...Hook) {
	c.hooks.Stand = append(c.hooks.Stand, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stand.Intercept(f(g(h())))`.
func (c *StandClient) Intercept(interceptors ...Interceptor) {
	c.inters.Stand = append(c.inters.Stand, interceptors...)
}

// Create returns a builder for creating a Stand entity.
func (c *StandClient) Create() *StandCreate {
	mutation := newStandMutation(c.config, OpCreate)
	return &StandCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Stand entities.
func (c *StandClient) CreateBulk(builders ...*StandCreate) *StandCreateBulk {
	return &StandCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StandClient) MapCreateBulk(slice any, setFunc func(*StandCreate, int)) *StandCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StandCreateBulk{err: fmt.Errorf("calling to StandClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StandCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StandCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Stand.
func (c *StandClient) Update() *StandUpdate {
	mutation := newStandMutation(c.config, OpUpdate)
	return &StandUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StandClient) UpdateOne(_m *Stand) *StandUpdateOne {
	mutation := newStandMutation(c.config, OpUpdateOne, withStand(_m))
	return &StandUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StandClient) UpdateOneID(id int) *StandUpdateOne {
	mutation := newStandMutation(c.config, OpUpdateOne, withStandID(id))
	return &StandUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Stand.
func (c *StandClient) Delete() *StandDelete {
	mutation := newStandMutation(c.config, OpDelete)
	return &StandDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StandClient) DeleteOne(_m *Stand) *StandDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StandClient) DeleteOneID(id int) *StandDeleteOne {
	builder := c.Delete().Where(stand.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StandDeleteOne{builder}
}

// Query returns a query builder for Stand.
func (c *StandClient) Query() *StandQuery {
	return &StandQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStand},
		inters: c.Interceptors(),
	}
}

// Get returns a Stand entity by its id.
func (c *StandClient) Get(ctx context.Context, id int) (*Stand, error) {
	return c.Query().Where(stand.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StandClient) GetX(ctx context.Context, id int) *Stand {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySatellite queries the satellite edge of a Stand.
func (c *StandClient) QuerySatellite(_m *Stand) *SatelliteQuery {
	query := (&SatelliteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stand.Table, stand.FieldID, id),
			sqlgraph.To(satellite.Table, satellite.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, stand.SatelliteTable, stand.SatelliteColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTechnicalSpecification queries the technical_specification edge of a Stand.
func (c *StandClient) QueryTechnicalSpecification(_m *Stand) *TechnicalSpecificationQuery {
	query := (&TechnicalSpecificationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stand.Table, stand.FieldID, id),
			sqlgraph.To(technicalspecification.Table, technicalspecification.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, stand.TechnicalSpecificationTable, stand.TechnicalSpecificationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySensors queries the sensors edge of a Stand.
func (c *StandClient) QuerySensors(_m *Stand) *SensorQuery {
	query := (&SensorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stand.Table, stand.FieldID, id),
			sqlgraph.To(sensor.Table, sensor.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, stand.SensorsTable, stand.SensorsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryHardwareRequirements queries the hardware_requirements edge of a Stand.
func (c *StandClient) QueryHardwareRequirements(_m *Stand) *HardwareRequirementQuery {
	query := (&HardwareRequirementClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stand.Table, stand.FieldID, id),
			sqlgraph.To(hardwarerequirement.Table, hardwarerequirement.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, stand.HardwareRequirementsTable, stand.HardwareRequirementsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPhysicalTestData queries the physical_test_data edge of a Stand.
func (c *StandClient) QueryPhysicalTestData(_m *Stand) *PhysicalTestDataQuery {
	query := (&PhysicalTestDataClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stand.Table, stand.FieldID, id),
			sqlgraph.To(physicaltestdata.Table, physicaltestdata.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, stand.PhysicalTestDataTable, stand.PhysicalTestDataColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMaterialOpCharacteristics queries the material_op_characteristics edge of a Stand.
func (c *StandClient) QueryMaterialOpCharacteristics(_m *Stand) *MaterialOperationalCharacteristicQuery {
	query := (&MaterialOperationalCharacteristicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stand.Table, stand.FieldID, id),
			sqlgraph.To(materialoperationalcharacteristic.Table, materialoperationalcharacteristic.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, stand.MaterialOpCharacteristicsTable, stand.MaterialOpCharacteristicsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StandClient) Hooks() []Hook {
	return c.hooks.Stand
}

// Interceptors returns the client interceptors.
func (c *StandClient) Interceptors() []Interceptor {
	return c.inters.Stand
}

func (c *StandClient) mutate(ctx context.Context, m *StandMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StandCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StandUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StandUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StandDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Stand mutation op: %q", m.Op())
	}
}

// TechnicalSpecificationClient is a client for the TechnicalSpecification schema.
type TechnicalSpecificationClient struct {
	config
}

// NewTechnicalSpecificationClient returns a client for the TechnicalSpecification from the given config.
func NewTechnicalSpecificationClient(c config) *TechnicalSpecificationClient {
	return &TechnicalSpecificationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `technicalspecification.Hooks(f(g(h())))`.
func (c *TechnicalSpecificationClient) Use(hooks ...Hook) {
	c.hooks.TechnicalSpecification = append(c.hooks.TechnicalSpecification, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `technicalspecification.Intercept(f(g(h())))`.
func (c *TechnicalSpecificationClient) Intercept(interceptors ...Interceptor) {
	c.inters.TechnicalSpecification = append(c.inters.TechnicalSpecification, interceptors...)
}

// Create returns a builder for creating a TechnicalSpecification entity.
func (c *TechnicalSpecificationClient) Create() *TechnicalSpecificationCreate {
	mutation := newTechnicalSpecificationMutation(c.config, OpCreate)
	return &TechnicalSpecificationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TechnicalSpecification entities.
func (c *TechnicalSpecificationClient) CreateBulk(builders ...*TechnicalSpecificationCreate) *TechnicalSpecificationCreateBulk {
	return &TechnicalSpecificationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TechnicalSpecificationClient) MapCreateBulk(slice any, setFunc func(*TechnicalSpecificationCreate, int)) *TechnicalSpecificationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TechnicalSpecificationCreateBulk{err: fmt.Errorf("calling to TechnicalSpecificationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TechnicalSpecificationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TechnicalSpecificationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TechnicalSpecification.
func (c *TechnicalSpecificationClient) Update() *TechnicalSpecificationUpdate {
	mutation := newTechnicalSpecificationMutation(c.config, OpUpdate)
	return &TechnicalSpecificationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TechnicalSpecificationClient) UpdateOne(_m *TechnicalSpecification) *TechnicalSpecificationUpdateOne {
	mutation := newTechnicalSpecificationMutation(c.config, OpUpdateOne, withTechnicalSpecification(_m))
	return &TechnicalSpecificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TechnicalSpecificationClient) UpdateOneID(id int) *TechnicalSpecificationUpdateOne {
	mutation := newTechnicalSpecificationMutation(c.config, OpUpdateOne, withTechnicalSpecificationID(id))
	return &TechnicalSpecificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TechnicalSpecification.
func (c *TechnicalSpecificationClient) Delete() *TechnicalSpecificationDelete {
	mutation := newTechnicalSpecificationMutation(c.config, OpDelete)
	return &TechnicalSpecificationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TechnicalSpecificationClient) DeleteOne(_m *TechnicalSpecification) *TechnicalSpecificationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TechnicalSpecificationClient) DeleteOneID(id int) *TechnicalSpecificationDeleteOne {
	builder := c.Delete().Where(technicalspecification.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TechnicalSpecificationDeleteOne{builder}
}

// Query returns a query builder for TechnicalSpecification.
func (c *TechnicalSpecificationClient) Query() *TechnicalSpecificationQuery {
	return &TechnicalSpecificationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTechnicalSpecification},
		inters: c.Interceptors(),
	}
}

// Get returns a TechnicalSpecification entity by its id.
func (c *TechnicalSpecificationClient) Get(ctx context.Context, id int) (*TechnicalSpecification, error) {
	return c.Query().Where(technicalspecification.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TechnicalSpecificationClient) GetX(ctx context.Context, id int) *TechnicalSpecification {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySatellite queries the satellite edge of a TechnicalSpecification.
func (c *TechnicalSpecificationClient) QuerySatellite(_m *TechnicalSpecification) *SatelliteQuery {
	query := (&SatelliteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(technicalspecification.Table, technicalspecification.FieldID, id),
			sqlgraph.To(satellite.Table, satellite.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, technicalspecification.SatelliteTable, technicalspecification.SatelliteColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStands queries the stands edge of a TechnicalSpecification.
func (c *TechnicalSpecificationClient) QueryStands(_m *TechnicalSpecification) *StandQuery {
	query := (&StandClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(technicalspecification.Table, technicalspecification.FieldID, id),
			sqlgraph.To(stand.Table, stand.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, technicalspecification.StandsTable, technicalspecification.StandsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCalendarStages queries the calendar_stages edge of a TechnicalSpecification.
func (c *TechnicalSpecificationClient) QueryCalendarStages(_m *TechnicalSpecification) *CalendarStageQuery {
	query := (&CalendarStageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(technicalspecification.Table, technicalspecification.FieldID, id),
			sqlgraph.To(calendarstage.Table, calendarstage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, technicalspecification.CalendarStagesTable, technicalspecification.CalendarStagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TechnicalSpecificationClient) Hooks() []Hook {
	return c.hooks.TechnicalSpecification
}

// Interceptors returns the client interceptors.
func (c *TechnicalSpecificationClient) Interceptors() []Interceptor {
	return c.inters.TechnicalSpecification
}

func (c *TechnicalSpecificationClient) mutate(ctx context.Context, m *TechnicalSpecificationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TechnicalSpecificationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TechnicalSpecificationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TechnicalSpecificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TechnicalSpecificationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TechnicalSpecification mutation op: %q", m.Op())
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
		CalendarStage, Electronics, HardwareRequirement, Material,
		MaterialFunctionalCharacteristic, MaterialOperationalCharacteristic,
		PhysicalTestData, Satellite, SatelliteOpCharacteristic, Sensor, Stand,
		TechnicalSpecification, User []ent.Hook
	}
	inters struct {
		CalendarStage, Electronics, HardwareRequirement, Material,
		MaterialFunctionalCharacteristic, MaterialOperationalCharacteristic,
		PhysicalTestData, Satellite, SatelliteOpCharacteristic, Sensor, Stand,
		TechnicalSpecification, User []ent.Interceptor
	}
)
