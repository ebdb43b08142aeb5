// Package events carries catalog change events from writers to websocket
// listeners, either in-process or across instances through Redis pub/sub.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// DefaultChannel is the Redis channel catalog events are published on
const DefaultChannel = "trivia:questions"

// Broadcaster receives events for local delivery
type Broadcaster interface {
	Broadcast(event domain.Event)
}

// LocalPublisher hands events straight to an in-process broadcaster
type LocalPublisher struct {
	target Broadcaster
}

// NewLocalPublisher creates a publisher for single-instance deployments
func NewLocalPublisher(target Broadcaster) *LocalPublisher {
	return &LocalPublisher{target: target}
}

// Publish delivers the event locally
func (p *LocalPublisher) Publish(_ context.Context, event domain.Event) error {
	p.target.Broadcast(event)
	return nil
}

// RedisPublisher publishes events on a Redis channel
type RedisPublisher struct {
	redis   *redis.Client
	channel string
}

// NewRedisPublisher creates a new Redis publisher
func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisPublisher{redis: client, channel: channel}
}

// Publish publishes a catalog event to all subscribed instances
func (p *RedisPublisher) Publish(ctx context.Context, event domain.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.redis.Publish(ctx, p.channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

// Relay forwards events from a Redis channel to a local broadcaster
type Relay struct {
	redis   *redis.Client
	channel string
	target  Broadcaster
	logger  *zap.Logger
}

// NewRelay creates a new relay
func NewRelay(client *redis.Client, channel string, target Broadcaster, logger *zap.Logger) *Relay {
	if channel == "" {
		channel = DefaultChannel
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Relay{redis: client, channel: channel, target: target, logger: logger}
}

// Run subscribes to the channel and relays events until ctx is done
func (r *Relay) Run(ctx context.Context) error {
	sub := r.redis.Subscribe(ctx, r.channel)
	defer sub.Close()

	// Wait for the subscription to be confirmed
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", r.channel, err)
	}

	messages := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}

			var event domain.Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				r.logger.Warn("dropping malformed event", zap.String("channel", msg.Channel), zap.Error(err))
				continue
			}
			r.target.Broadcast(event)
		}
	}
}
