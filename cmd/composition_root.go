package cmd

import (
	"context"
	"log/slog"
	"net/http"

	httpin "deliverytracking/internal/adapters/in/http"
	"deliverytracking/internal/adapters/out/memory/deliveryrepo"
	"deliverytracking/internal/adapters/out/memory/partydirectory"
	"deliverytracking/internal/adapters/out/metrics"
	"deliverytracking/internal/adapters/out/postgres/snapshotrepo"
	"deliverytracking/internal/adapters/out/rabbitmq"
	redisout "deliverytracking/internal/adapters/out/redis"
	"deliverytracking/internal/core/application/usecases/commands"
	"deliverytracking/internal/core/application/usecases/queries"
	"deliverytracking/internal/core/domain/model/analytics"
	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/core/domain/services"
	"deliverytracking/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot owns every long-lived dependency. gormDB, redisClient and
// amqpClient may be nil; the features they back are then left out.
type CompositionRoot struct {
	config      Config
	logger      *slog.Logger
	clock       kernel.Clock
	gormDB      *gorm.DB
	redisClient *redis.Client
	amqpClient  *rabbitmq.Client

	registry      *prometheus.Registry
	sink          metrics.Sink
	deliveries    *deliveryrepo.Repository
	parties       *partydirectory.Directory
	analytics     *analytics.Registry
	statusCounter *redisout.StatusCounter
	observers     *services.ChannelFactory
	failures      delivery.FailureListener
}

func NewCompositionRoot(
	config Config,
	logger *slog.Logger,
	gormDB *gorm.DB,
	redisClient *redis.Client,
	amqpClient *rabbitmq.Client,
) (CompositionRoot, error) {
	c := CompositionRoot{
		config:      config,
		logger:      logger,
		clock:       kernel.SystemClock(),
		gormDB:      gormDB,
		redisClient: redisClient,
		amqpClient:  amqpClient,
		registry:    prometheus.NewRegistry(),
		deliveries:  deliveryrepo.NewRepository(),
		parties:     partydirectory.NewDirectory(),
	}
	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	c.sink = metrics.NewPrometheusSink(c.registry, logger)

	var store analytics.SnapshotStore
	if gormDB != nil {
		store = snapshotrepo.NewGormSnapshotRepository(gormDB)
	}
	c.analytics = analytics.NewRegistry(c.clock, store, logger.With("component", "Analytics"))

	recorder, err := services.NewAnalyticsRecorder(c.analytics, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	metricsObserver := metrics.NewDeliveryObserver(c.sink)
	c.failures = metricsObserver
	shared := []delivery.Observer{metricsObserver}
	if redisClient != nil {
		c.statusCounter = redisout.NewStatusCounter(redisClient, redisout.DefaultRetention)
		shared = append(shared, c.statusCounter)
	}
	if amqpClient != nil {
		shared = append(shared, rabbitmq.NewPublisher(amqpClient, amqpClient.Exchange(), logger))
	}
	c.observers = services.NewChannelFactory(services.NewLogSender(logger), recorder, logger, shared...)

	return c, nil
}

// Migrate prepares the analytics schema when a database is configured.
func (c *CompositionRoot) Migrate(ctx context.Context) error {
	if c.gormDB == nil {
		return nil
	}
	return snapshotrepo.NewGormSnapshotRepository(c.gormDB).Migrate(ctx)
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(c.deliveries, c.parties, c.observers, commands.DeliveryRuntime{
		Clock:           c.clock,
		Random:          kernel.NewSystemRandom(),
		Logger:          c.logger,
		FailureListener: c.failures,
	})
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	return commands.NewUpdateDeliveryStatusCommandHandler(c.deliveries)
}

func (c *CompositionRoot) CreateAssignDeliveryPersonCommandHandler() commands.AssignDeliveryPersonCommandHandler {
	return commands.NewAssignDeliveryPersonCommandHandler(c.deliveries)
}

func (c *CompositionRoot) CreateUpdateDeliveryLocationCommandHandler() commands.UpdateDeliveryLocationCommandHandler {
	return commands.NewUpdateDeliveryLocationCommandHandler(c.deliveries)
}

func (c *CompositionRoot) CreateUpdateEstimatedTimeCommandHandler() commands.UpdateEstimatedTimeCommandHandler {
	return commands.NewUpdateEstimatedTimeCommandHandler(c.deliveries)
}

func (c *CompositionRoot) CreateAddDeliveryNoteCommandHandler() commands.AddDeliveryNoteCommandHandler {
	return commands.NewAddDeliveryNoteCommandHandler(c.deliveries)
}

func (c *CompositionRoot) CreateAdvanceDeliveriesCommandHandler() commands.AdvanceDeliveriesCommandHandler {
	return commands.NewAdvanceDeliveriesCommandHandler(c.deliveries)
}

func (c *CompositionRoot) CreateGetDeliveryStatusViewQueryHandler() queries.GetDeliveryStatusViewQueryHandler {
	return queries.NewGetDeliveryStatusViewQueryHandler(c.deliveries)
}

func (c *CompositionRoot) CreateGetActiveDeliveriesQueryHandler() queries.GetActiveDeliveriesQueryHandler {
	return queries.NewGetActiveDeliveriesQueryHandler(c.deliveries)
}

func (c *CompositionRoot) CreateGetAnalyticsSummaryQueryHandler() queries.GetAnalyticsSummaryQueryHandler {
	return queries.NewGetAnalyticsSummaryQueryHandler(c.parties, c.analytics)
}

// CreateGetRestaurantStatusCountsQueryHandler returns nil without a database.
func (c *CompositionRoot) CreateGetRestaurantStatusCountsQueryHandler() *queries.GetRestaurantStatusCountsQueryHandler {
	if c.gormDB == nil {
		return nil
	}
	h := queries.NewGetRestaurantStatusCountsQueryHandler(c.gormDB)
	return &h
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	handlers := httpin.Handlers{
		CreateDelivery:       c.CreateCreateDeliveryCommandHandler(),
		UpdateDeliveryStatus: c.CreateUpdateDeliveryStatusCommandHandler(),
		AssignDeliveryPerson: c.CreateAssignDeliveryPersonCommandHandler(),
		UpdateLocation:       c.CreateUpdateDeliveryLocationCommandHandler(),
		UpdateEstimatedTime:  c.CreateUpdateEstimatedTimeCommandHandler(),
		AddDeliveryNote:      c.CreateAddDeliveryNoteCommandHandler(),
		AdvanceDeliveries:    c.CreateAdvanceDeliveriesCommandHandler(),
		GetStatusView:        c.CreateGetDeliveryStatusViewQueryHandler(),
		GetActive:            c.CreateGetActiveDeliveriesQueryHandler(),
		GetAnalytics:         c.CreateGetAnalyticsSummaryQueryHandler(),
		GetStatusCounts:      c.CreateGetRestaurantStatusCountsQueryHandler(),
		Parties:              c.parties,
	}
	if c.statusCounter != nil {
		handlers.HourlyCounter = c.statusCounter
	}
	return httpin.NewServer(handlers, c.MetricsHandler(), c.clock, c.logger)
}

func (c *CompositionRoot) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateAdvanceDeliveriesCommandHandler(),
		c.CreateGetActiveDeliveriesQueryHandler(),
		c.config.SimulationSchedule,
		c.sink,
		c.logger,
	)
}
