// Package metrics records delivery tracking metrics. Sink methods are
// fire-and-forget: implementations must not block or return errors.
package metrics

import "time"

// Sink receives metric events from the delivery core, the simulation job and
// the HTTP edge.
type Sink interface {
	// StatusChanged counts a recorded transition into the status with this code.
	StatusChanged(status string)
	// DeliveredAgainstEstimate observes actual minus estimated delivery time;
	// negative values mean early.
	DeliveredAgainstEstimate(diff time.Duration)
	// ObserverFailed counts a failing observer during fan-out.
	ObserverFailed(observer string)
	// ActiveDeliveriesUpdate sets the number of non-terminal deliveries.
	ActiveDeliveriesUpdate(count int)
	// SimulationStepCompleted records one run of the simulation job.
	SimulationStepCompleted(duration time.Duration, advanced int, err error)
}
