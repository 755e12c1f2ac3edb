// Package events publishes layout change events to Redis Streams.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	infraevents "github.com/punnatorn6420/Nokair-Platform/infrastructure/events"
	infralogger "github.com/punnatorn6420/Nokair-Platform/infrastructure/logger"
)

const (
	// asyncPublishTimeout bounds a publish started after the HTTP response.
	asyncPublishTimeout = 5 * time.Second
	// DefaultMaxLen caps the stream; older entries are trimmed on write.
	DefaultMaxLen int64 = 1000
)

// Publisher appends layout events to the Redis stream.
type Publisher struct {
	client *redis.Client
	log    infralogger.Logger
	maxLen int64
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithMaxLen overrides DefaultMaxLen. Zero or less disables trimming.
func WithMaxLen(n int64) Option {
	return func(p *Publisher) { p.maxLen = n }
}

// NewPublisher returns nil when client is nil; a nil *Publisher drops
// every event.
func NewPublisher(client *redis.Client, log infralogger.Logger, opts ...Option) *Publisher {
	if client == nil {
		return nil
	}
	p := &Publisher{
		client: client,
		log:    log,
		maxLen: DefaultMaxLen,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// LayoutUpdated returns the event for a replaced document, stamped with a
// fresh id and the time of the write.
func LayoutUpdated(slug string) infraevents.LayoutEvent {
	return infraevents.LayoutEvent{
		EventID:   uuid.New(),
		EventType: infraevents.LayoutUpdated,
		Slug:      slug,
		Timestamp: time.Now().UTC(),
	}
}

// Publish appends event to the stream. Events built by hand get an id and
// timestamp here. Failures are logged with the event id and returned.
func (p *Publisher) Publish(ctx context.Context, event infraevents.LayoutEvent) error {
	if p == nil {
		return nil
	}

	if event.EventID == uuid.Nil {
		event.EventID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.EventID, err)
	}

	args := &redis.XAddArgs{
		Stream: infraevents.StreamName,
		Values: map[string]any{"event": string(payload)},
	}
	if p.maxLen > 0 {
		args.MaxLen = p.maxLen
	}

	streamID, err := p.client.XAdd(ctx, args).Result()
	if err != nil {
		p.logEvent(event).Warn("Failed to publish layout event", infralogger.Error(err))
		return fmt.Errorf("publish to stream: %w", err)
	}

	p.logEvent(event).Info("Published layout event", infralogger.String("stream_id", streamID))
	return nil
}

// PublishAsync publishes after the caller returns. Failures are only
// logged.
func (p *Publisher) PublishAsync(event infraevents.LayoutEvent) {
	if p == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), asyncPublishTimeout)
		defer cancel()
		_ = p.Publish(ctx, event)
	}()
}

func (p *Publisher) logEvent(event infraevents.LayoutEvent) infralogger.Logger {
	log := p.log
	if log == nil {
		log = infralogger.NewNop()
	}
	return log.With(
		infralogger.String("event_id", event.EventID.String()),
		infralogger.String("event_type", string(event.EventType)),
		infralogger.String("slug", event.Slug),
	)
}

// Recent returns up to count events, newest first. Entries that do not
// decode are skipped.
func Recent(ctx context.Context, client *redis.Client, count int64) ([]infraevents.LayoutEvent, error) {
	msgs, err := client.XRevRangeN(ctx, infraevents.StreamName, "+", "-", count).Result()
	if err != nil {
		return nil, fmt.Errorf("read stream: %w", err)
	}

	out := make([]infraevents.LayoutEvent, 0, len(msgs))
	for _, msg := range msgs {
		raw, ok := msg.Values["event"].(string)
		if !ok {
			continue
		}
		var event infraevents.LayoutEvent
		if json.Unmarshal([]byte(raw), &event) != nil {
			continue
		}
		out = append(out, event)
	}
	return out, nil
}
