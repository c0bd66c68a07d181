package metrics_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"deliverytracking/internal/adapters/out/metrics"
	"deliverytracking/internal/core/domain/model/delivery"

	"github.com/stretchr/testify/assert"
)

type recordingSink struct {
	metrics.NoopSink
	mu       sync.Mutex
	statuses []string
	lateness []time.Duration
	failures []string
}

func (s *recordingSink) StatusChanged(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses = append(s.statuses, status)
}

func (s *recordingSink) DeliveredAgainstEstimate(diff time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lateness = append(s.lateness, diff)
}

func (s *recordingSink) ObserverFailed(observer string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, observer)
}

func TestDeliveryObserver(t *testing.T) {
	at := time.Date(2024, 5, 10, 20, 40, 0, 0, time.UTC)
	eta := at.Add(-5 * time.Minute)

	t.Run("should count the status and observe lateness once", func(t *testing.T) {
		sink := &recordingSink{}
		observer := metrics.NewDeliveryObserver(sink)
		first := delivery.Snapshot{
			Status:      delivery.Delivered,
			EstimatedAt: &eta,
			DeliveredAt: &at,
			LastUpdate:  delivery.StatusUpdate{Status: delivery.Delivered, Timestamp: at},
		}
		again := first
		again.LastUpdate.Timestamp = at.Add(time.Minute)

		assert.NoError(t, observer.Notify(t.Context(), first))
		assert.NoError(t, observer.Notify(t.Context(), again))

		assert.Equal(t, []string{"delivered", "delivered"}, sink.statuses)
		assert.Equal(t, []time.Duration{5 * time.Minute}, sink.lateness)
	})

	t.Run("should count failures by observer", func(t *testing.T) {
		sink := &recordingSink{}
		observer := metrics.NewDeliveryObserver(sink)

		observer.ObserverFailed(t.Context(), delivery.Snapshot{}, "*redis.StatusCounter", errors.New("down"))

		assert.Equal(t, []string{"*redis.StatusCounter"}, sink.failures)
	})
}
