package services

import (
	"context"
	"errors"
	"log/slog"

	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/ports"
)

// ErrCollectorsAreRequired is returned when NewAnalyticsRecorder gets no provider.
var ErrCollectorsAreRequired = errors.New("analytics collector provider is required")

// AnalyticsRecorder forwards the order and its delivery snapshot to the
// collector of the order's restaurant.
type AnalyticsRecorder struct {
	collectors ports.AnalyticsCollectorProvider
	logger     *slog.Logger
}

func NewAnalyticsRecorder(collectors ports.AnalyticsCollectorProvider, logger *slog.Logger) (*AnalyticsRecorder, error) {
	if collectors == nil {
		return nil, ErrCollectorsAreRequired
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AnalyticsRecorder{
		collectors: collectors,
		logger:     logger.With("component", "AnalyticsRecorder"),
	}, nil
}

func (r *AnalyticsRecorder) Notify(ctx context.Context, snapshot delivery.Snapshot) error {
	o := snapshot.Order
	collector := r.collectors.CollectorFor(o.Restaurant().ID())
	if err := collector.AddOrderData(ctx, o, &snapshot); err != nil {
		return err
	}
	r.logger.InfoContext(ctx, "[Analytics] order data recorded",
		"order_id", o.ID().String(),
		"status", snapshot.Status.Label(),
	)
	return nil
}
