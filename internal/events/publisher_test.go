package events_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infraevents "github.com/punnatorn6420/Nokair-Platform/infrastructure/events"
	"github.com/punnatorn6420/Nokair-Platform/infrastructure/logger"
	"github.com/punnatorn6420/Nokair-Platform/internal/events"
)

func newRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

// recordingLogger keeps the message and fields of each Warn and Info entry.
type recordingLogger struct {
	logger.NoOpLogger
	mu      *sync.Mutex
	entries *[]logEntry
	fields  []logger.Field
}

type logEntry struct {
	msg    string
	fields map[string]string
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{mu: &sync.Mutex{}, entries: &[]logEntry{}}
}

func (l *recordingLogger) record(msg string, fields []logger.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e := logEntry{msg: msg, fields: map[string]string{}}
	for _, f := range append(append([]logger.Field{}, l.fields...), fields...) {
		e.fields[f.Key] = f.String
	}
	*l.entries = append(*l.entries, e)
}

func (l *recordingLogger) Info(msg string, fields ...logger.Field) { l.record(msg, fields) }
func (l *recordingLogger) Warn(msg string, fields ...logger.Field) { l.record(msg, fields) }

func (l *recordingLogger) With(fields ...logger.Field) logger.Logger {
	return &recordingLogger{mu: l.mu, entries: l.entries, fields: append(append([]logger.Field{}, l.fields...), fields...)}
}

func (l *recordingLogger) all() []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]logEntry(nil), *l.entries...)
}

func TestLayoutUpdated_StampedAtWrite(t *testing.T) {
	t.Parallel()

	before := time.Now().UTC()
	a := events.LayoutUpdated("nokair")
	b := events.LayoutUpdated("nokair")

	assert.Equal(t, infraevents.LayoutUpdated, a.EventType)
	assert.Equal(t, "nokair", a.Slug)
	assert.NotEqual(t, uuid.Nil, a.EventID)
	assert.NotEqual(t, a.EventID, b.EventID)
	assert.False(t, a.Timestamp.Before(before))
}

func TestPublisher_NewPublisher_RequiresClient(t *testing.T) {
	t.Parallel()

	assert.Nil(t, events.NewPublisher(nil, logger.NewNop()))
}

func TestPublisher_NilReceiverIsNoOp(t *testing.T) {
	t.Parallel()

	var pub *events.Publisher
	require.NoError(t, pub.Publish(context.Background(), events.LayoutUpdated("nokair")))
	pub.PublishAsync(events.LayoutUpdated("nokair"))
}

func TestPublisher_Publish(t *testing.T) {
	t.Parallel()

	client, _ := newRedis(t)
	pub := events.NewPublisher(client, logger.NewNop())
	ctx := context.Background()

	require.NoError(t, pub.Publish(ctx, events.LayoutUpdated("nokair")))
	require.NoError(t, pub.Publish(ctx, events.LayoutUpdated("promo")))

	got, err := events.Recent(ctx, client, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "promo", got[0].Slug)
	assert.Equal(t, "nokair", got[1].Slug)
	for _, e := range got {
		assert.Equal(t, infraevents.LayoutUpdated, e.EventType)
		assert.NotEqual(t, uuid.Nil, e.EventID)
		assert.False(t, e.Timestamp.IsZero())
	}
}

func TestPublisher_PublishAsync(t *testing.T) {
	t.Parallel()

	client, _ := newRedis(t)
	pub := events.NewPublisher(client, logger.NewNop())

	pub.PublishAsync(events.LayoutUpdated("nokair"))

	require.Eventually(t, func() bool {
		n, err := client.XLen(context.Background(), infraevents.StreamName).Result()
		return err == nil && n == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestPublisher_PublishFailure(t *testing.T) {
	t.Parallel()

	client, mr := newRedis(t)
	log := newRecordingLogger()
	pub := events.NewPublisher(client, log)
	mr.Close()

	event := events.LayoutUpdated("nokair")
	err := pub.Publish(context.Background(), event)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publish to stream")

	entries := log.all()
	require.Len(t, entries, 1)
	assert.Equal(t, "Failed to publish layout event", entries[0].msg)
	assert.Equal(t, event.EventID.String(), entries[0].fields["event_id"])
	assert.Equal(t, "nokair", entries[0].fields["slug"])
}

func TestPublisher_LogsEventID(t *testing.T) {
	t.Parallel()

	client, _ := newRedis(t)
	log := newRecordingLogger()
	event := events.LayoutUpdated("promo")

	require.NoError(t, events.NewPublisher(client, log).Publish(context.Background(), event))

	entries := log.all()
	require.Len(t, entries, 1)
	assert.Equal(t, event.EventID.String(), entries[0].fields["event_id"])
	assert.NotEmpty(t, entries[0].fields["stream_id"])
}

func TestPublisher_TrimsStream(t *testing.T) {
	t.Parallel()

	client, _ := newRedis(t)
	pub := events.NewPublisher(client, logger.NewNop(), events.WithMaxLen(3))
	ctx := context.Background()

	for _, slug := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, pub.Publish(ctx, events.LayoutUpdated(slug)))
	}

	n, err := client.XLen(ctx, infraevents.StreamName).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	got, err := events.Recent(ctx, client, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "e", got[0].Slug)
	assert.Equal(t, "c", got[2].Slug)
}

func TestRecent_SkipsUndecodableEntries(t *testing.T) {
	t.Parallel()

	client, _ := newRedis(t)
	ctx := context.Background()

	require.NoError(t, client.XAdd(ctx, &redis.XAddArgs{
		Stream: infraevents.StreamName,
		Values: map[string]any{"event": "not json"},
	}).Err())
	require.NoError(t, events.NewPublisher(client, nil).Publish(ctx, events.LayoutUpdated("nokair")))

	got, err := events.Recent(ctx, client, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "nokair", got[0].Slug)
}
