// Package notify publishes boost lifecycle events for the notification
// service to fan out. Delivery is fire-and-forget: the engine's
// correctness never depends on it.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// Event channel names.
const (
	EventBoostCreated  = "EVENT_BOOST_CREATED"
	EventBoostApproved = "EVENT_BOOST_APPROVED"
	EventBoostRejected = "EVENT_BOOST_REJECTED"
	EventBoostRefunded = "EVENT_BOOST_REFUNDED"
)

type Publisher interface {
	Publish(ctx context.Context, event string, payload any)
}

// New returns a Redis-backed publisher, or a no-op one when no address
// is configured.
func New(redisAddr string) Publisher {
	if redisAddr == "" {
		slog.Info("REDIS_ADDR not set, notifications disabled")
		return NopPublisher{}
	}
	return &RedisPublisher{rdb: redis.NewClient(&redis.Options{Addr: redisAddr})}
}

type RedisPublisher struct {
	rdb *redis.Client
}

func (p *RedisPublisher) Publish(ctx context.Context, event string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		slog.Warn("notification payload marshal failed", "event", event, "err", err)
		return
	}
	if err := p.rdb.Publish(ctx, event, body).Err(); err != nil {
		slog.Warn("notification publish failed", "event", event, "err", err)
	}
}

type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, event string, payload any) {}
