package jobs

import (
	"fmt"
	"log/slog"

	"deliverytracking/internal/adapters/out/metrics"
	"deliverytracking/internal/core/application/usecases/commands"
	"deliverytracking/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	activeDeliveriesJob *ActiveDeliveriesJob
	simulationJob       *DeliverySimulationJob
}

// NewJobManager creates the jobs. An empty simulationSchedule disables the
// simulation job.
func NewJobManager(
	advanceHandler commands.AdvanceDeliveriesCommandHandler,
	activeHandler queries.GetActiveDeliveriesQueryHandler,
	simulationSchedule string,
	sink metrics.Sink,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{
		activeDeliveriesJob: NewActiveDeliveriesJob(activeHandler, sink, logger),
	}
	if simulationSchedule != "" {
		jm.simulationJob = NewDeliverySimulationJob(advanceHandler, simulationSchedule, sink, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.activeDeliveriesJob.Start(); err != nil {
		return fmt.Errorf("failed to start active deliveries job: %w", err)
	}

	if jm.simulationJob == nil {
		return nil
	}
	if err := jm.simulationJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.activeDeliveriesJob.Stop()
		return fmt.Errorf("failed to start delivery simulation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.simulationJob != nil {
		jm.simulationJob.Stop()
	}
	jm.activeDeliveriesJob.Stop()
}
