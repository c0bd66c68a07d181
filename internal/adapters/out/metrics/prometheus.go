package metrics

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusSink implements Sink with the Prometheus client. Registration
// errors are logged and never propagated.
type PrometheusSink struct {
	statusChangesTotal   *prometheus.CounterVec
	observerFailures     *prometheus.CounterVec
	deliveryLateness     prometheus.Histogram
	activeDeliveries     prometheus.Gauge
	simulationRunsTotal  prometheus.Counter
	simulationErrors     prometheus.Counter
	simulationAdvanced   prometheus.Counter
	simulationRunSeconds prometheus.Histogram

	logger *slog.Logger
}

// NewPrometheusSink creates the collectors and registers them on reg.
func NewPrometheusSink(reg prometheus.Registerer, logger *slog.Logger) *PrometheusSink {
	s := &PrometheusSink{logger: logger}
	s.initDeliveryMetrics(reg)
	s.initSimulationMetrics(reg)
	return s
}

func (s *PrometheusSink) initDeliveryMetrics(reg prometheus.Registerer) {
	s.statusChangesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "deliverytracking_status_changes_total",
		Help: "Total number of recorded delivery status transitions.",
	}, []string{"status"})
	s.observerFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "deliverytracking_observer_failures_total",
		Help: "Total number of observers that failed during fan-out.",
	}, []string{"observer"})
	s.deliveryLateness = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "deliverytracking_delivery_lateness_seconds",
		Help:    "Actual minus estimated delivery time in seconds.",
		Buckets: []float64{-1200, -600, -300, 0, 300, 600, 1200, 1800, 3600},
	})
	s.activeDeliveries = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "deliverytracking_active_deliveries",
		Help: "Number of deliveries not yet delivered or cancelled.",
	})

	s.register(reg, s.statusChangesTotal, "deliverytracking_status_changes_total")
	s.register(reg, s.observerFailures, "deliverytracking_observer_failures_total")
	s.register(reg, s.deliveryLateness, "deliverytracking_delivery_lateness_seconds")
	s.register(reg, s.activeDeliveries, "deliverytracking_active_deliveries")
}

func (s *PrometheusSink) initSimulationMetrics(reg prometheus.Registerer) {
	s.simulationRunsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "deliverytracking_simulation_runs_total",
		Help: "Total number of simulation job runs.",
	})
	s.simulationErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "deliverytracking_simulation_errors_total",
		Help: "Total number of simulation job runs that returned an error.",
	})
	s.simulationAdvanced = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "deliverytracking_simulation_advanced_total",
		Help: "Total number of deliveries advanced by the simulation job.",
	})
	s.simulationRunSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "deliverytracking_simulation_run_duration_seconds",
		Help:    "Duration of each simulation job run in seconds.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	})

	s.register(reg, s.simulationRunsTotal, "deliverytracking_simulation_runs_total")
	s.register(reg, s.simulationErrors, "deliverytracking_simulation_errors_total")
	s.register(reg, s.simulationAdvanced, "deliverytracking_simulation_advanced_total")
	s.register(reg, s.simulationRunSeconds, "deliverytracking_simulation_run_duration_seconds")
}

func (s *PrometheusSink) register(reg prometheus.Registerer, c prometheus.Collector, name string) {
	if err := reg.Register(c); err != nil && s.logger != nil {
		s.logger.Warn("metrics: failed to register collector", "name", name, "error", err)
	}
}

func (s *PrometheusSink) StatusChanged(status string) {
	s.statusChangesTotal.WithLabelValues(status).Inc()
}

func (s *PrometheusSink) DeliveredAgainstEstimate(diff time.Duration) {
	s.deliveryLateness.Observe(diff.Seconds())
}

func (s *PrometheusSink) ObserverFailed(observer string) {
	s.observerFailures.WithLabelValues(observer).Inc()
}

func (s *PrometheusSink) ActiveDeliveriesUpdate(count int) {
	s.activeDeliveries.Set(float64(count))
}

func (s *PrometheusSink) SimulationStepCompleted(duration time.Duration, advanced int, err error) {
	s.simulationRunsTotal.Inc()
	s.simulationRunSeconds.Observe(duration.Seconds())
	s.simulationAdvanced.Add(float64(advanced))
	if err != nil {
		s.simulationErrors.Inc()
	}
}
