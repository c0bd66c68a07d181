package services

import (
	"context"
	"errors"
	"fmt"

	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/order"
	"deliverytracking/internal/core/ports"
)

// ErrSenderIsRequired is returned by notifier constructors given no sender.
var ErrSenderIsRequired = errors.New("message sender is required")

// CustomerNotifier sends the customer a message on every status change and
// appends it, stamped with the transition time, to the customer's log.
type CustomerNotifier struct {
	customer *order.Customer
	sender   ports.MessageSender
}

// NewCustomerNotifier binds a notifier to one customer.
func NewCustomerNotifier(customer *order.Customer, sender ports.MessageSender) (*CustomerNotifier, error) {
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if sender == nil {
		return nil, ErrSenderIsRequired
	}
	return &CustomerNotifier{customer: customer, sender: sender}, nil
}

// CustomerMessage is the text sent to the customer.
func CustomerMessage(customerName string, status delivery.Status) string {
	return fmt.Sprintf("Olá %s, seu pedido está agora em status: %s.", customerName, status.Label())
}

func (n *CustomerNotifier) Notify(ctx context.Context, snapshot delivery.Snapshot) error {
	message := CustomerMessage(n.customer.Name(), snapshot.Status)
	if err := n.sender.Send(ctx, ports.ChannelSMS, n.customer.Name(), message); err != nil {
		return fmt.Errorf("notify customer %s: %w", n.customer.Name(), err)
	}
	n.customer.Notifications().Append(order.Notification{
		Timestamp: snapshot.LastUpdate.Timestamp,
		Message:   message,
	})
	return nil
}
