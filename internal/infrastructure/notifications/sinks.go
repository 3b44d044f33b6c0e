package notifications

import (
	"context"
	"encoding/json"
	"fmt"

	"lavanderia_rfid/internal/domain/entities"
	"lavanderia_rfid/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RedisSink publishes events as JSON on a Redis channel. Delivery to the
// client (WhatsApp, SMS, e-mail) is done by whoever subscribes.
type RedisSink struct {
	rdb     redis.Cmdable
	channel string
}

var _ interfaces.INotificationSink = (*RedisSink)(nil)

func NewRedisSink(rdb redis.Cmdable, channel string) *RedisSink {
	return &RedisSink{rdb: rdb, channel: channel}
}

func (s *RedisSink) Notify(ctx context.Context, event entities.NotificationEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if err := s.rdb.Publish(ctx, s.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", event.Kind, err)
	}
	log.Debug().Str("channel", s.channel).Str("batch_id", event.BatchID).Msg("[notifications][redis] event published")
	return nil
}

// LogSink only logs the event. Used when no broker is configured.
type LogSink struct{}

var _ interfaces.INotificationSink = LogSink{}

func (LogSink) Notify(_ context.Context, event entities.NotificationEvent) error {
	log.Info().
		Str("kind", string(event.Kind)).
		Str("client_id", event.ClientID).
		Str("batch_id", event.BatchID).
		Msg("[notifications][log] client notification")
	return nil
}
