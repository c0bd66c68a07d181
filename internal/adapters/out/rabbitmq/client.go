package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ExchangeKind is the AMQP exchange type declared for delivery events.
const ExchangeKind = "topic"

// Client owns one AMQP connection and the channel used for publishing.
type Client struct {
	logger   *slog.Logger
	exchange string

	mu      sync.RWMutex
	conn    *amqp.Connection
	pubChan *amqp.Channel
}

// Connect dials the broker and declares the durable events exchange.
func Connect(ctx context.Context, url, exchange string, logger *slog.Logger) (*Client, error) {
	if exchange == "" {
		return nil, errors.New("rabbitmq: exchange is required")
	}

	start := time.Now()
	conn, err := amqp.DialConfig(url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(10 * time.Second),
	})
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq: open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, ExchangeKind, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq: declare exchange %q: %w", exchange, err)
	}

	client := &Client{
		logger:   logger.With("component", "rabbitmq"),
		exchange: exchange,
		conn:     conn,
		pubChan:  ch,
	}
	client.logger.InfoContext(ctx, "connected to RabbitMQ",
		"exchange", exchange, "duration_ms", time.Since(start).Milliseconds())

	return client, nil
}

func (c *Client) Exchange() string {
	return c.exchange
}

// PublishWithContext publishes on the shared channel. It fails fast when the
// connection or channel was closed by the broker.
func (c *Client) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool,
	msg amqp.Publishing) error {
	c.mu.RLock()
	ch := c.pubChan
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil || conn.IsClosed() {
		return errors.New("rabbitmq: connection is not open")
	}
	if ch == nil || ch.IsClosed() {
		return errors.New("rabbitmq: publish channel is not open")
	}

	return ch.PublishWithContext(ctx, exchange, key, mandatory, immediate, msg)
}

// Close releases the channel and the connection. It is safe to call twice.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pubChan != nil {
		_ = c.pubChan.Close()
		c.pubChan = nil
	}
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
}
