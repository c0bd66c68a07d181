package rabbitmq_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"deliverytracking/internal/adapters/out/rabbitmq"
	"deliverytracking/internal/core/domain/model/delivery"
	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/core/domain/model/order"
	"deliverytracking/internal/testutil"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type channelMock struct {
	mock.Mock
}

func (m *channelMock) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool,
	msg amqp.Publishing) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func newSnapshot(t *testing.T) delivery.Snapshot {
	t.Helper()
	customer, err := order.NewCustomer(kernel.NewUUID(), "Ana")
	require.NoError(t, err)
	restaurant, err := order.NewRestaurant(kernel.NewUUID(), "Sabor do Mar")
	require.NoError(t, err)
	item, err := order.NewLineItem("Moqueca", 1, decimal.NewFromInt(55))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), customer, restaurant, []order.LineItem{item})
	require.NoError(t, err)

	at := time.Date(2024, 5, 10, 20, 0, 0, 0, time.UTC)
	eta := at.Add(30 * time.Minute)
	return delivery.Snapshot{
		DeliveryID:     kernel.NewUUID(),
		Order:          o,
		Status:         delivery.OnTheWay,
		DeliveryPerson: "Entregador #1234",
		EstimatedAt:    &eta,
		LastUpdate:     delivery.StatusUpdate{Status: delivery.OnTheWay, Timestamp: at, Notes: "Saiu para entrega"},
		Location:       delivery.LocationInfo{Latitude: -9.65, Longitude: -35.71, Timestamp: at},
	}
}

func TestNewStatusChangedMessage(t *testing.T) {
	t.Run("should flatten the snapshot", func(t *testing.T) {
		snap := newSnapshot(t)

		msg := rabbitmq.NewStatusChangedMessage(snap)

		assert.Equal(t, snap.DeliveryID.String(), msg.DeliveryID)
		assert.Equal(t, snap.Order.ID().String(), msg.OrderID)
		assert.Equal(t, snap.Order.Restaurant().ID().String(), msg.RestaurantID)
		assert.Equal(t, "on_the_way", msg.Status)
		assert.Equal(t, "A caminho", msg.StatusLabel)
		assert.Equal(t, "Saiu para entrega", msg.Notes)
		assert.Equal(t, "Entregador #1234", msg.DeliveryPerson)
		assert.InDelta(t, -9.65, msg.Latitude, 1e-9)
		require.NotNil(t, msg.EstimatedAt)
		assert.True(t, snap.EstimatedAt.Equal(*msg.EstimatedAt))
		assert.Nil(t, msg.DeliveredAt)
	})

	t.Run("should tolerate a snapshot without order", func(t *testing.T) {
		msg := rabbitmq.NewStatusChangedMessage(delivery.Snapshot{Status: delivery.Ready})

		assert.Empty(t, msg.OrderID)
		assert.Empty(t, msg.RestaurantID)
		assert.Equal(t, "ready", msg.Status)
	})
}

func TestRoutingKey(t *testing.T) {
	t.Run("should prefix the status code", func(t *testing.T) {
		assert.Equal(t, "delivery.picked_up", rabbitmq.RoutingKey(delivery.PickedUp))
		assert.Equal(t, "delivery.delivered", rabbitmq.RoutingKey(delivery.Delivered))
	})
}

func TestPublisher_Notify(t *testing.T) {
	t.Run("should publish a persistent JSON message", func(t *testing.T) {
		snap := newSnapshot(t)
		ch := &channelMock{}
		var published amqp.Publishing
		ch.On("PublishWithContext", mock.Anything, "delivery.events", "delivery.on_the_way", false, false, mock.Anything).
			Run(func(args mock.Arguments) { published = args.Get(5).(amqp.Publishing) }).
			Return(nil).Once()
		publisher := rabbitmq.NewPublisher(ch, "delivery.events", testutil.DiscardLogger())

		err := publisher.Notify(t.Context(), snap)

		require.NoError(t, err)
		ch.AssertExpectations(t)
		assert.Equal(t, amqp.Persistent, published.DeliveryMode)
		assert.Equal(t, "application/json", published.ContentType)
		assert.Equal(t, snap.DeliveryID.String(), published.MessageId)

		var body map[string]any
		require.NoError(t, json.Unmarshal(published.Body, &body))
		assert.Equal(t, "on_the_way", body["status"])
		assert.Equal(t, snap.DeliveryID.String(), body["delivery_id"])
		assert.NotContains(t, body, "delivered_at")
	})

	t.Run("should wrap publish failures", func(t *testing.T) {
		boom := errors.New("channel closed")
		ch := &channelMock{}
		ch.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(boom)
		publisher := rabbitmq.NewPublisher(ch, "delivery.events", testutil.DiscardLogger())

		err := publisher.Notify(t.Context(), newSnapshot(t))

		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "delivery.on_the_way")
	})
}
