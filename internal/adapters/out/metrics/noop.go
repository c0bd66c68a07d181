package metrics

import "time"

// NoopSink is used when metrics are disabled to avoid nil checks.
type NoopSink struct{}

func NewNoopSink() *NoopSink {
	return &NoopSink{}
}

func (n *NoopSink) StatusChanged(string)                              {}
func (n *NoopSink) DeliveredAgainstEstimate(time.Duration)            {}
func (n *NoopSink) ObserverFailed(string)                             {}
func (n *NoopSink) ActiveDeliveriesUpdate(int)                        {}
func (n *NoopSink) SimulationStepCompleted(time.Duration, int, error) {}
