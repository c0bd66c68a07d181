package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"deliverytracking/internal/core/domain/model/delivery"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "deliverytracking"

// DefaultRetention keeps hourly buckets for a week.
const DefaultRetention = 7 * 24 * time.Hour

// StatusCounter is a delivery observer that counts transitions per status in
// hourly buckets, keyed by the time of the transition.
type StatusCounter struct {
	client    *redis.Client
	retention time.Duration
}

func NewStatusCounter(client *redis.Client, retention time.Duration) *StatusCounter {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &StatusCounter{client: client, retention: retention}
}

func (c *StatusCounter) Notify(ctx context.Context, snapshot delivery.Snapshot) error {
	key := bucketKey(snapshot.Status, snapshot.LastUpdate.Timestamp)

	pipe := c.client.Pipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, c.retention)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis pipeline: %w", err)
	}
	return nil
}

// Count returns how many transitions into status happened during the hour
// containing at.
func (c *StatusCounter) Count(ctx context.Context, status delivery.Status, at time.Time) (int64, error) {
	v, err := c.client.Get(ctx, bucketKey(status, at)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get: %w", err)
	}
	return strconv.ParseInt(v, 10, 64)
}

// HourlyCounts returns the count of every valid status for the hour
// containing at, keyed by status code.
func (c *StatusCounter) HourlyCounts(ctx context.Context, at time.Time) (map[string]int64, error) {
	statuses := delivery.AllStatuses()
	keys := make([]string, 0, len(statuses))
	for _, s := range statuses {
		keys = append(keys, bucketKey(s, at))
	}

	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis mget: %w", err)
	}

	counts := make(map[string]int64, len(statuses))
	for i, s := range statuses {
		raw, ok := values[i].(string)
		if !ok {
			counts[s.Code()] = 0
			continue
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse counter %s: %w", keys[i], err)
		}
		counts[s.Code()] = n
	}
	return counts, nil
}

func bucketKey(status delivery.Status, at time.Time) string {
	return fmt.Sprintf("%s:status:%s:%s", keyPrefix, status.Code(), at.UTC().Format("2006010215"))
}
