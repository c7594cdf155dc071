package order

import (
	"encoding/json"
	"time"

	"github.com/HackerKing5128/voicecart/internal/domains/order"
	"github.com/HackerKing5128/voicecart/pkg/Logger"
	"github.com/go-redis/redis"
)

const (
	statusChannel  = "voicecart:orders:status"
	latestOrderKey = "voicecart:orders:latest"
	latestOrderTTL = 24 * time.Hour
)

// statusEvent is the payload published on every status transition.
type statusEvent struct {
	OrderID    string `json:"order_id"`
	Status     string `json:"status"`
	OccurredAt string `json:"occurred_at"`
}

// RedisPublisher broadcasts order status changes over a redis channel.
// A nil client disables publishing entirely.
type RedisPublisher struct {
	rc     *redis.Client
	logger *Logger.Logger
}

// NewRedisPublisher creates a publisher; rc may be nil when redis is not configured.
func NewRedisPublisher(rc *redis.Client, logger *Logger.Logger) *RedisPublisher {
	return &RedisPublisher{rc: rc, logger: logger}
}

// PublishStatusChange is best effort, failures are logged and swallowed.
func (p *RedisPublisher) PublishStatusChange(orderID string, status order.Status) {
	if p == nil || p.rc == nil {
		return
	}

	payload, err := json.Marshal(statusEvent{
		OrderID:    orderID,
		Status:     string(status),
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		p.logger.Warnf("failed to encode status event for %s: %v", orderID, err)
		return
	}

	if err := p.rc.Publish(statusChannel, payload).Err(); err != nil {
		p.logger.Warnf("failed to publish status event for %s: %v", orderID, err)
	}

	if status == order.StatusReceived {
		if err := p.rc.Set(latestOrderKey, orderID, latestOrderTTL).Err(); err != nil {
			p.logger.Warnf("failed to cache latest order id %s: %v", orderID, err)
		}
	}
}
