package cmd

import (
	"log/slog"

	storehttp "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/kafka"
	"storefront/internal/adapters/out/metrics"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/services"
	"storefront/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	serverMetrics *metrics.ServerMetrics
	transitions   *metrics.TransitionCounter
	outboxMetrics *metrics.OutboxMetrics

	publisher *kafka.Publisher
}

// NewCompositionRoot wires adapters and use cases. Collectors are registered
// on reg. The kafka publisher is only created when the relay is enabled.
func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	reg prometheus.Registerer,
	logger *slog.Logger,
) (*CompositionRoot, error) {
	root := &CompositionRoot{
		cfg:           cfg,
		gormDB:        gormDB,
		uowFactory:    postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:        logger,
		serverMetrics: metrics.NewServerMetrics(reg),
		transitions:   metrics.NewTransitionCounter(reg),
		outboxMetrics: metrics.NewOutboxMetrics(reg),
	}

	if cfg.RelayEnabled() {
		publisher, err := kafka.NewPublisher(kafka.ParseBrokers(cfg.KafkaHost))
		if err != nil {
			return nil, err
		}
		root.publisher = publisher
	}

	return root, nil
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddCartItemCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateTransitionOrderStatusCommandHandler() commands.TransitionOrderStatusCommandHandler {
	var f commands.TransitionUoWFactory = FuncTransitionUoWFactory(func() commands.TransitionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderStatusCommandHandler(
		f,
		services.NewLifecycleEngine(nil, 0),
		c.transitions,
		c.cfg.KafkaOrderStatusChangedTopic,
		c.logger,
	)
}

func (c *CompositionRoot) CreateRequestReturnCommandHandler() commands.RequestReturnCommandHandler {
	var f commands.ReturnUoWFactory = FuncReturnUoWFactory(func() commands.ReturnUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestReturnCommandHandler(f, services.NewReturnPolicy(), c.logger)
}

func (c *CompositionRoot) CreateRateProductCommandHandler() commands.RateProductCommandHandler {
	var f commands.RatingUoWFactory = FuncRatingUoWFactory(func() commands.RatingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRateProductCommandHandler(f, services.NewRatingAggregator(), c.logger)
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() commands.RelayOutboxCommandHandler {
	var f commands.RelayUoWFactory = FuncRelayUoWFactory(func() commands.RelayUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelayOutboxCommandHandler(f, c.publisher, c.outboxMetrics, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductRatingQueryHandler() queries.GetProductRatingQueryHandler {
	return queries.NewGetProductRatingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *storehttp.Server {
	return storehttp.NewServer(storehttp.Handlers{
		AddCartItem:      c.CreateAddCartItemCommandHandler(),
		CreateOrder:      c.CreateCreateOrderCommandHandler(),
		TransitionOrder:  c.CreateTransitionOrderStatusCommandHandler(),
		RequestReturn:    c.CreateRequestReturnCommandHandler(),
		RateProduct:      c.CreateRateProductCommandHandler(),
		GetOrder:         c.CreateGetOrderQueryHandler(),
		GetProductRating: c.CreateGetProductRatingQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) ServerMetrics() *metrics.ServerMetrics {
	return c.serverMetrics
}

// CreateJobManager returns the scheduled jobs. Without brokers there is
// nothing to relay to and the manager is empty.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	if !c.cfg.RelayEnabled() {
		c.logger.Warn("KAFKA_HOST is empty, outbox relay disabled")
		return jobs.NewJobManager(), nil
	}

	relay, err := jobs.NewOutboxRelayJob(
		c.CreateRelayOutboxCommandHandler(),
		c.cfg.OutboxRelaySchedule,
		c.cfg.OutboxRelayBatch,
		c.logger,
	)
	if err != nil {
		return nil, err
	}
	return jobs.NewJobManager(relay), nil
}

// Close releases the broker connection.
func (c *CompositionRoot) Close() error {
	if c.publisher == nil {
		return nil
	}
	return c.publisher.Close()
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncTransitionUoWFactory func() commands.TransitionUoW

func (f FuncTransitionUoWFactory) Create() commands.TransitionUoW {
	return f()
}

type FuncReturnUoWFactory func() commands.ReturnUoW

func (f FuncReturnUoWFactory) Create() commands.ReturnUoW {
	return f()
}

type FuncRatingUoWFactory func() commands.RatingUoW

func (f FuncRatingUoWFactory) Create() commands.RatingUoW {
	return f()
}

type FuncRelayUoWFactory func() commands.RelayUoW

func (f FuncRelayUoWFactory) Create() commands.RelayUoW {
	return f()
}
