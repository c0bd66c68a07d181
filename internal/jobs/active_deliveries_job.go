package jobs

import (
	"context"
	"log/slog"

	"deliverytracking/internal/adapters/out/metrics"
	"deliverytracking/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

const activeDeliveriesSchedule = "*/10 * * * * *"

// ActiveDeliveriesJob keeps the active deliveries gauge current.
type ActiveDeliveriesJob struct {
	handler queries.GetActiveDeliveriesQueryHandler
	sink    metrics.Sink
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewActiveDeliveriesJob(
	handler queries.GetActiveDeliveriesQueryHandler,
	sink metrics.Sink,
	logger *slog.Logger,
) *ActiveDeliveriesJob {
	return &ActiveDeliveriesJob{
		handler: handler,
		sink:    sink,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "active_deliveries_job"),
	}
}

func (j *ActiveDeliveriesJob) Start() error {
	_, err := j.cron.AddFunc(activeDeliveriesSchedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Active deliveries job started (running every 10 seconds)")
	return nil
}

// Run counts the active deliveries once.
func (j *ActiveDeliveriesJob) Run(ctx context.Context) {
	rows, err := j.handler.Handle(ctx, queries.NewGetActiveDeliveriesQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Active deliveries job failed", "error", err)
		return
	}
	j.sink.ActiveDeliveriesUpdate(len(rows))
}

func (j *ActiveDeliveriesJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Active deliveries job stopped")
}
