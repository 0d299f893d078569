package redis

import (
	"context"
	"encoding/json"
	"time"

	"faden/internal/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// EventRelay fans domain events out to every instance subscribed to the same
// channel. Events received from the channel, including this instance's own,
// land on the local bus.
type EventRelay struct {
	provider *RedisProvider
	channel  string
	local    *utils.EventBus
	timeout  time.Duration
	logger   *zap.SugaredLogger

	minBackoff time.Duration
	maxBackoff time.Duration
}

func NewEventRelay(provider *RedisProvider, channel string, local *utils.EventBus, logger *zap.Logger) *EventRelay {
	return &EventRelay{
		provider: provider,
		channel:  channel,
		local:    local,
		timeout:  2 * time.Second,
		logger:   logger.Sugar(),

		minBackoff: 500 * time.Millisecond,
		maxBackoff: 30 * time.Second,
	}
}

// Publish sends the event through redis. When redis is unreachable the event
// is still delivered to this instance's subscribers.
func (r *EventRelay) Publish(event utils.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		r.logger.Errorw("Failed to encode event", "event", event.Event, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	if err := r.provider.Publish(ctx, r.channel, payload); err != nil {
		r.logger.Warnw("Redis publish failed, delivering locally", "event", event.Event, "error", err)
		r.local.Publish(event)
	}
}

// Run forwards channel messages to the local bus until ctx is cancelled. The
// subscription is retried with backoff until redis accepts it; after that
// go-redis reconnects it on its own.
func (r *EventRelay) Run(ctx context.Context) error {
	backoff := r.minBackoff
	for {
		sub := r.provider.Subscribe(ctx, r.channel)
		if _, err := sub.Receive(ctx); err != nil {
			sub.Close()
			if ctx.Err() != nil {
				return nil
			}
			r.logger.Warnw("Event relay subscribe failed, retrying", "channel", r.channel, "retry_in", backoff.String(), "error", err)

			select {
			case <-ctx.Done():
				return nil
			case <-time.After(backoff):
			}
			backoff = min(backoff*2, r.maxBackoff)
			continue
		}

		r.logger.Infow("Event relay subscribed", "channel", r.channel)
		r.forward(ctx, sub)
		sub.Close()
		return nil
	}
}

func (r *EventRelay) forward(ctx context.Context, sub *redis.PubSub) {
	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var event utils.Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				r.logger.Warnw("Dropping malformed event", "channel", msg.Channel, "error", err)
				continue
			}
			r.local.Publish(event)
		}
	}
}
