package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"deliverytracking/internal/core/domain/model/delivery"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// Channel is the publishing half of an AMQP channel.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// StatusChangedMessage is the JSON body published after every transition.
type StatusChangedMessage struct {
	DeliveryID     string     `json:"delivery_id"`
	OrderID        string     `json:"order_id"`
	RestaurantID   string     `json:"restaurant_id"`
	Status         string     `json:"status"`
	StatusLabel    string     `json:"status_label"`
	Notes          string     `json:"notes,omitempty"`
	DeliveryPerson string     `json:"delivery_person,omitempty"`
	Latitude       float64    `json:"latitude"`
	Longitude      float64    `json:"longitude"`
	Timestamp      time.Time  `json:"timestamp"`
	EstimatedAt    *time.Time `json:"estimated_at,omitempty"`
	DeliveredAt    *time.Time `json:"delivered_at,omitempty"`
}

// NewStatusChangedMessage flattens a snapshot into the wire contract.
func NewStatusChangedMessage(snapshot delivery.Snapshot) StatusChangedMessage {
	msg := StatusChangedMessage{
		DeliveryID:     snapshot.DeliveryID.String(),
		Status:         snapshot.Status.Code(),
		StatusLabel:    snapshot.Status.Label(),
		Notes:          snapshot.LastUpdate.Notes,
		DeliveryPerson: snapshot.DeliveryPerson,
		Latitude:       snapshot.Location.Latitude,
		Longitude:      snapshot.Location.Longitude,
		Timestamp:      snapshot.LastUpdate.Timestamp.UTC(),
		EstimatedAt:    utc(snapshot.EstimatedAt),
		DeliveredAt:    utc(snapshot.DeliveredAt),
	}
	if snapshot.Order != nil {
		msg.OrderID = snapshot.Order.ID().String()
		if r := snapshot.Order.Restaurant(); r != nil {
			msg.RestaurantID = r.ID().String()
		}
	}
	return msg
}

// RoutingKey is "delivery.<status code>", e.g. "delivery.on_the_way".
func RoutingKey(status delivery.Status) string {
	return "delivery." + status.Code()
}

// Publisher is a delivery observer that forwards every status change to a
// topic exchange as a persistent JSON message.
type Publisher struct {
	channel  Channel
	exchange string
	logger   *slog.Logger
}

func NewPublisher(channel Channel, exchange string, logger *slog.Logger) *Publisher {
	return &Publisher{
		channel:  channel,
		exchange: exchange,
		logger:   logger.With("component", "rabbitmq_publisher"),
	}
}

func (p *Publisher) Notify(ctx context.Context, snapshot delivery.Snapshot) error {
	body, err := json.Marshal(NewStatusChangedMessage(snapshot))
	if err != nil {
		return fmt.Errorf("marshal status changed message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	key := RoutingKey(snapshot.Status)
	err = p.channel.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Timestamp:    snapshot.LastUpdate.Timestamp,
		MessageId:    snapshot.DeliveryID.String(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", key, err)
	}

	p.logger.DebugContext(ctx, "status change published",
		"delivery_id", snapshot.DeliveryID.String(), "routing_key", key)
	return nil
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
