package ports

import (
	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/order"
)

// ObserverFactory builds the observers attached to every new delivery.
type ObserverFactory interface {
	ObserversFor(o *order.Order) []delivery.Observer
}
