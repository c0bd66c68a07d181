package services

import (
	"context"
	"fmt"

	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/order"
	"deliverytracking/internal/core/ports"
)

// RestaurantNotifier tells the restaurant about every status change. Nothing
// is persisted.
type RestaurantNotifier struct {
	restaurant *order.Restaurant
	sender     ports.MessageSender
}

func NewRestaurantNotifier(restaurant *order.Restaurant, sender ports.MessageSender) (*RestaurantNotifier, error) {
	if err := restaurant.Validate(); err != nil {
		return nil, err
	}
	if sender == nil {
		return nil, ErrSenderIsRequired
	}
	return &RestaurantNotifier{restaurant: restaurant, sender: sender}, nil
}

// RestaurantMessage is the text sent to the restaurant.
func RestaurantMessage(o *order.Order, status delivery.Status) string {
	return fmt.Sprintf("Status do pedido #%s atualizado para: %s.", o.ID(), status.Label())
}

func (n *RestaurantNotifier) Notify(ctx context.Context, snapshot delivery.Snapshot) error {
	message := RestaurantMessage(snapshot.Order, snapshot.Status)
	if err := n.sender.Send(ctx, ports.ChannelRestaurant, n.restaurant.Name(), message); err != nil {
		return fmt.Errorf("notify restaurant %s: %w", n.restaurant.Name(), err)
	}
	return nil
}
