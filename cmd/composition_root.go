package cmd

import (
	"context"
	"errors"
	"log/slog"

	"bakery/api"
	httpin "bakery/internal/adapters/in/http"
	"bakery/internal/adapters/out/kafka"
	"bakery/internal/adapters/out/postgres"
	"bakery/internal/adapters/out/postgres/settingsrepo"
	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/jobs"
	"bakery/internal/pkg/auth"
	"bakery/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	metrics    *metrics.Metrics
	tokens     *auth.TokenIssuer
	logger     *slog.Logger

	closers []func() error
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		metrics:    metrics.New(),
		tokens:     auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL),
		logger:     logger,
	}
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

func (c *CompositionRoot) TokenIssuer() *auth.TokenIssuer {
	return c.tokens
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.PlacementUoWFactory = FuncPlacementUoWFactory(func() commands.PlacementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateUPISettingsCommandHandler() commands.UpdateUPISettingsCommandHandler {
	var f commands.SettingsUoWFactory = FuncSettingsUoWFactory(func() commands.SettingsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateUPISettingsCommandHandler(f)
}

// CreateRelayOutboxCommandHandler returns false when Kafka is not configured.
// The publisher is closed by Close.
func (c *CompositionRoot) CreateRelayOutboxCommandHandler() (commands.RelayOutboxCommandHandler, bool) {
	if c.cfg.KafkaHost == "" {
		return commands.RelayOutboxCommandHandler{}, false
	}

	publisher := kafka.NewPublisher(
		kafka.NewWriter(c.cfg.KafkaHost, c.cfg.KafkaOrderChangedTopic),
		kafka.DefaultBreakerSettings(),
		c.metrics,
		c.logger,
	)
	c.closers = append(c.closers, publisher.Close)

	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelayOutboxCommandHandler(f, publisher), true
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMyOrdersQueryHandler() queries.ListMyOrdersQueryHandler {
	return queries.NewListMyOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCategoriesQueryHandler() queries.ListCategoriesQueryHandler {
	return queries.NewListCategoriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSettingsQueryHandler() queries.GetSettingsQueryHandler {
	return queries.NewGetSettingsQueryHandler(settingsrepo.NewGormSettingsRepository(c.gormDB))
}

func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		UpdateOrder:       c.CreateUpdateOrderCommandHandler(),
		CreateProduct:     c.CreateCreateProductCommandHandler(),
		UpdateProduct:     c.CreateUpdateProductCommandHandler(),
		UpdateUPISettings: c.CreateUpdateUPISettingsCommandHandler(),

		GetOrder:       c.CreateGetOrderQueryHandler(),
		ListMyOrders:   c.CreateListMyOrdersQueryHandler(),
		ListOrders:     c.CreateListOrdersQueryHandler(),
		ListProducts:   c.CreateListProductsQueryHandler(),
		ListCategories: c.CreateListCategoriesQueryHandler(),
		GetProduct:     c.CreateGetProductQueryHandler(),
		GetSettings:    c.CreateGetSettingsQueryHandler(),
	}
}

// CreateRouter assembles the echo instance serving the API, /metrics and /swagger.
func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	doc, err := api.Load(ctx)
	if err != nil {
		return nil, err
	}

	server := httpin.NewServer(c.CreateHTTPHandlers(), c.metrics, c.logger)
	return httpin.NewRouter(server, httpin.RouterConfig{
		Doc:            doc,
		Verifier:       c.tokens,
		Metrics:        c.metrics,
		Logger:         c.logger,
		RequestTimeout: c.cfg.RequestTimeout,
		CORSOrigins:    c.cfg.CORSOrigins,
	})
}

// CreateJobManager returns nil when there is nothing to schedule.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	relay, ok := c.CreateRelayOutboxCommandHandler()
	if !ok {
		c.logger.Warn("KAFKA_HOST is not set, outbox relay disabled")
		return nil
	}
	return jobs.NewJobManager(relay, c.cfg.OutboxRelaySchedule, c.cfg.OutboxBatchSize, c.logger)
}

// Close releases resources created by the factories.
func (c *CompositionRoot) Close() error {
	var err error
	for _, closeFn := range c.closers {
		err = errors.Join(err, closeFn())
	}
	c.closers = nil
	return err
}

type FuncPlacementUoWFactory func() commands.PlacementUoW

func (f FuncPlacementUoWFactory) Create() commands.PlacementUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncSettingsUoWFactory func() commands.SettingsUoW

func (f FuncSettingsUoWFactory) Create() commands.SettingsUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
