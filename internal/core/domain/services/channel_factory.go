package services

import (
	"log/slog"

	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/order"
	"deliverytracking/internal/core/ports"
)

// ChannelFactory implements ports.ObserverFactory. Every delivery gets a
// customer notifier, a restaurant notifier and the shared analytics recorder,
// followed by the shared infrastructure observers in the order given.
type ChannelFactory struct {
	sender   ports.MessageSender
	recorder *AnalyticsRecorder
	shared   []delivery.Observer
	logger   *slog.Logger
}

func NewChannelFactory(
	sender ports.MessageSender,
	recorder *AnalyticsRecorder,
	logger *slog.Logger,
	shared ...delivery.Observer,
) *ChannelFactory {
	return &ChannelFactory{
		sender:   sender,
		recorder: recorder,
		shared:   shared,
		logger:   logger.With("component", "ChannelFactory"),
	}
}

func (f *ChannelFactory) ObserversFor(o *order.Order) []delivery.Observer {
	observers := make([]delivery.Observer, 0, 3+len(f.shared))

	if customer, err := NewCustomerNotifier(o.Customer(), f.sender); err == nil {
		observers = append(observers, customer)
	} else {
		f.logger.Error("customer notifier skipped", "order_id", o.ID().String(), "error", err)
	}
	if restaurant, err := NewRestaurantNotifier(o.Restaurant(), f.sender); err == nil {
		observers = append(observers, restaurant)
	} else {
		f.logger.Error("restaurant notifier skipped", "order_id", o.ID().String(), "error", err)
	}
	if f.recorder != nil {
		observers = append(observers, f.recorder)
	}

	return append(observers, f.shared...)
}
