package feed

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"guardian/config"
	"guardian/internal/domain/entity"

	"github.com/lib/pq"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

const fallRow = `{
	"id": "a-1",
	"alert_type": "fall_detected",
	"severity": "critical",
	"title": "Fall",
	"description": "Fall detected in bathroom",
	"status": "active",
	"created_at": "2024-05-01T10:00:00.123+00:00",
	"elderly_person_id": "p-1",
	"elderly_person_name": "Ada"
}`

type collector struct {
	mu     sync.Mutex
	alerts []*entity.AlertEvent
}

func (c *collector) handle(alert *entity.AlertEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.alerts = append(c.alerts, alert)
}

func (c *collector) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.alerts)
}

func TestDecodeAlert(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantID  string
		wantErr error
	}{
		{name: "bare row", data: fallRow, wantID: "a-1"},
		{name: "insert envelope", data: `{"type":"INSERT","table":"alerts","record":` + fallRow + `}`, wantID: "a-1"},
		{name: "numeric id", data: `{"id": 42, "alert_type": "inactivity", "severity": "low"}`, wantID: "42"},
		{name: "update envelope", data: `{"type":"UPDATE","record":` + fallRow + `}`, wantErr: ErrNotInsert},
		{name: "missing id", data: `{"alert_type": "panic_sos"}`, wantErr: ErrMissingID},
		{name: "blank id", data: `{"id": "  "}`, wantErr: ErrMissingID},
		{name: "null id", data: `{"id": null}`, wantErr: ErrMissingID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alert, err := decodeAlert([]byte(tt.data))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, alert.ID)
		})
	}
}

func TestDecodeAlert_Fields(t *testing.T) {
	alert, err := decodeAlert([]byte(fallRow))
	require.NoError(t, err)

	assert.Equal(t, &entity.AlertEvent{
		ID:          "a-1",
		AlertType:   entity.AlertTypeFallDetected,
		Severity:    "critical",
		Title:       "Fall",
		Description: "Fall detected in bathroom",
		Status:      "active",
		CreatedAt:   time.Date(2024, 5, 1, 10, 0, 0, 123_000_000, time.UTC),
		SubjectID:   "p-1",
		SubjectName: "Ada",
	}, alert)
}

func TestDecodeAlert_Malformed(t *testing.T) {
	_, err := decodeAlert([]byte(`not json`))
	assert.Error(t, err)
}

func TestParseCreatedAt(t *testing.T) {
	want := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, want, parseCreatedAt("2024-05-01T10:00:00Z"))
	assert.Equal(t, want, parseCreatedAt("2024-05-01 10:00:00+00"))
	assert.Equal(t, want, parseCreatedAt("2024-05-01 10:00:00"))
	assert.True(t, parseCreatedAt("yesterday").IsZero())
}

func TestPostgresFeed_Consume(t *testing.T) {
	f := &PostgresFeed{cfg: config.PostgresFeedConfig{Channel: "alert_inserts"}, logger: testLogger}
	notifications := make(chan *pq.Notification, 4)
	c := &collector{}

	notifications <- &pq.Notification{Channel: "alert_inserts", Extra: fallRow}
	notifications <- nil
	notifications <- &pq.Notification{Channel: "alert_inserts", Extra: `{"alert_type":"x"}`}
	notifications <- &pq.Notification{Channel: "alert_inserts", Extra: `{"id":"a-2"}`}
	close(notifications)

	f.consume(context.Background(), notifications, func() error { return nil }, c.handle)

	require.Equal(t, 2, c.len())
	assert.Equal(t, "a-1", c.alerts[0].ID)
	assert.Equal(t, "a-2", c.alerts[1].ID)
}

func TestPostgresFeed_ConsumeStopsOnCancel(t *testing.T) {
	f := &PostgresFeed{logger: testLogger}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		defer close(done)
		f.consume(ctx, make(chan *pq.Notification), func() error { return nil }, func(*entity.AlertEvent) {})
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consume did not stop")
	}
}

func TestNewPostgresFeed_RequiresDSN(t *testing.T) {
	_, err := NewPostgresFeed(config.PostgresFeedConfig{}, testLogger)
	assert.Error(t, err)
}

type fakeReader struct {
	mu        sync.Mutex
	messages  chan kafka.Message
	committed []int64
	closed    bool
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	select {
	case <-ctx.Done():
		return kafka.Message{}, ctx.Err()
	case msg := <-r.messages:
		return msg, nil
	}
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, msg := range msgs {
		r.committed = append(r.committed, msg.Offset)
	}

	return nil
}

func (r *fakeReader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true

	return nil
}

func (r *fakeReader) commits() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]int64(nil), r.committed...)
}

func TestKafkaFeed_CommitsEveryMessage(t *testing.T) {
	reader := &fakeReader{messages: make(chan kafka.Message, 2)}
	f, err := NewKafkaFeed(config.KafkaFeedConfig{Brokers: []string{"localhost:9092"}, Topic: "alerts", GroupID: "guardian"}, testLogger)
	require.NoError(t, err)
	f.newReader = func() messageReader { return reader }

	c := &collector{}
	sub, err := f.Subscribe(context.Background(), c.handle)
	require.NoError(t, err)

	reader.messages <- kafka.Message{Offset: 10, Value: []byte(fallRow)}
	reader.messages <- kafka.Message{Offset: 11, Value: []byte(`garbage`)}

	require.Eventually(t, func() bool { return len(reader.commits()) == 2 }, time.Second, 10*time.Millisecond)
	require.NoError(t, sub.Close())

	assert.Equal(t, 1, c.len())
	assert.Equal(t, []int64{10, 11}, reader.commits())
	assert.True(t, reader.closed)
}

func TestNewKafkaFeed_Validation(t *testing.T) {
	_, err := NewKafkaFeed(config.KafkaFeedConfig{Topic: "alerts", GroupID: "g"}, testLogger)
	assert.Error(t, err)
	_, err = NewKafkaFeed(config.KafkaFeedConfig{Brokers: []string{"b"}, GroupID: "g"}, testLogger)
	assert.Error(t, err)
	_, err = NewKafkaFeed(config.KafkaFeedConfig{Brokers: []string{"b"}, Topic: "alerts"}, testLogger)
	assert.Error(t, err)
}

func TestPushFeed_Accept(t *testing.T) {
	f := NewPushFeed(testLogger)
	c := &collector{}

	assert.ErrorIs(t, f.Accept([]byte(fallRow)), ErrNoSubscriber)

	sub, err := f.Subscribe(context.Background(), c.handle)
	require.NoError(t, err)

	require.NoError(t, f.Accept([]byte(fallRow)))
	assert.ErrorIs(t, f.Accept([]byte(`{}`)), ErrMissingID)
	assert.Equal(t, 1, c.len())

	require.NoError(t, sub.Close())
	require.NoError(t, sub.Close())
	assert.ErrorIs(t, f.Accept([]byte(fallRow)), ErrNoSubscriber)
}

func TestNew_SelectsProvider(t *testing.T) {
	newCfg := func(provider string) *config.Config {
		return &config.Config{Feed: &config.FeedConfig{
			Provider: provider,
			Postgres: config.PostgresFeedConfig{DSN: "postgres://localhost/guardian", Channel: "alert_inserts"},
			Google:   config.GoogleFeedConfig{ProjectID: "p", SubscriptionID: "s"},
			Kafka:    config.KafkaFeedConfig{Brokers: []string{"b"}, Topic: "t", GroupID: "g"},
		}}
	}

	tests := []struct {
		provider string
		want     any
	}{
		{provider: "postgres", want: &PostgresFeed{}},
		{provider: "google", want: &GoogleFeed{}},
		{provider: "kafka", want: &KafkaFeed{}},
		{provider: "push", want: &PushFeed{}},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			res, err := New(Params{Config: newCfg(tt.provider), Logger: testLogger})
			require.NoError(t, err)
			assert.IsType(t, tt.want, res.Feed)
			assert.NotNil(t, res.Push)
		})
	}

	res, err := New(Params{Config: newCfg("push"), Logger: testLogger})
	require.NoError(t, err)
	assert.Same(t, res.Push, res.Feed)

	_, err = New(Params{Config: newCfg("nats"), Logger: testLogger})
	assert.Error(t, err)
}
