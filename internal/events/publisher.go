// Package events publishes service events on Redis pub/sub.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Client is the subset of redis.Cmdable used here.
type Client interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisPublisher JSON-encodes payloads and publishes them on Redis channels.
type RedisPublisher struct {
	rdb Client
}

// NewRedisPublisher wraps a Redis client (or any redis.Cmdable).
func NewRedisPublisher(rdb Client) *RedisPublisher {
	return &RedisPublisher{rdb: rdb}
}

// Publish implements jobs.EventPublisher.
func (p *RedisPublisher) Publish(ctx context.Context, channel string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", channel, err)
	}
	if err := p.rdb.Publish(ctx, channel, body).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", channel, err)
	}
	return nil
}
