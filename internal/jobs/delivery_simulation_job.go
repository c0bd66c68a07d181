package jobs

import (
	"context"
	"log/slog"
	"time"

	"deliverytracking/internal/adapters/out/metrics"
	"deliverytracking/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliverySimulationJob advances all active deliveries on a cron schedule.
type DeliverySimulationJob struct {
	handler  commands.AdvanceDeliveriesCommandHandler
	schedule string
	sink     metrics.Sink
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewDeliverySimulationJob(
	handler commands.AdvanceDeliveriesCommandHandler,
	schedule string,
	sink metrics.Sink,
	logger *slog.Logger,
) *DeliverySimulationJob {
	return &DeliverySimulationJob{
		handler:  handler,
		schedule: schedule,
		sink:     sink,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "delivery_simulation_job"),
	}
}

// Start registers the step and starts the scheduler.
func (j *DeliverySimulationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery simulation job started", "schedule", j.schedule)
	return nil
}

// Run performs a single simulation step over every active delivery.
func (j *DeliverySimulationJob) Run(ctx context.Context) {
	start := time.Now()
	advanced, err := j.handler.Handle(ctx, commands.NewAdvanceActiveDeliveriesCommand())
	j.sink.SimulationStepCompleted(time.Since(start), advanced, err)

	if err != nil {
		j.logger.ErrorContext(ctx, "Delivery simulation step failed", "advanced", advanced, "error", err)
		return
	}
	if advanced > 0 {
		j.logger.DebugContext(ctx, "Delivery simulation step completed", "advanced", advanced)
	}
}

// Stop stops the scheduler and waits for a running step to finish.
func (j *DeliverySimulationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Delivery simulation job stopped")
}
