package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.DomainEvent {
	return &service.DomainEvent{
		RequestID:   "req-1",
		EventID:     "evt-1",
		Type:        service.EventOrderCreated,
		AggregateID: "3f1c3c9e-5c1b-4c57-9d55-0c1f0b9f0c11",
		OccurredAt:  time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Attributes:  map[string]string{"total": "42.50"},
	}
}

func newParams(t *testing.T, cfg *config.PubSubConfig) (PublisherParams, *fxtest.Lifecycle) {
	lc := fxtest.NewLifecycle(t)

	return PublisherParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: cfg},
		Logger: discardLogger(),
	}, lc
}

func TestNewEventPublisher_Noop(t *testing.T) {
	for _, cfg := range []*config.PubSubConfig{nil, {}, {Provider: ProviderNoop}} {
		params, _ := newParams(t, cfg)

		publisher, err := NewEventPublisher(params)

		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, publisher)
		assert.NoError(t, publisher.Publish(context.Background(), testEvent()))
		assert.NoError(t, publisher.Close())
	}
}

func TestNewEventPublisher_ConfigErrors(t *testing.T) {
	testCases := []struct {
		name string
		cfg  *config.PubSubConfig
		want string
	}{
		{"local without endpoint", &config.PubSubConfig{Provider: ProviderLocal}, "local endpoint is required"},
		{"google without project", &config.PubSubConfig{Provider: ProviderGoogle, TopicID: "t"}, "project ID is required"},
		{"google without topic", &config.PubSubConfig{Provider: ProviderGoogle, ProjectID: "p"}, "topic ID is required"},
		{"rabbitmq without url", &config.PubSubConfig{Provider: ProviderRabbitMQ}, "amqp url is required"},
		{"unknown", &config.PubSubConfig{Provider: "kafka"}, "unknown pubsub provider: kafka"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			params, _ := newParams(t, tc.cfg)

			publisher, err := NewEventPublisher(params)

			assert.Nil(t, publisher)
			assert.ErrorContains(t, err, tc.want)
		})
	}
}

func TestNewEventPublisher_LocalRegistersStopHook(t *testing.T) {
	params, lc := newParams(t, &config.PubSubConfig{Provider: ProviderLocal, LocalEndpoint: "http://localhost:0/events"})

	publisher, err := NewEventPublisher(params)

	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)
	lc.RequireStart().RequireStop()
}

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var got PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.Publish(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", got.Message.MessageID)
	assert.Equal(t, service.EventOrderCreated, got.Message.Attributes["type"])
	assert.Equal(t, "req-1", got.Message.Attributes["request_id"])

	data, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)
	var event service.DomainEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "42.50", event.Attributes["total"])
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	err := NewLocalHTTPPublisher(server.URL, discardLogger()).Publish(context.Background(), testEvent())

	assert.ErrorContains(t, err, "non-success status: 502")
}

type recordingChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
	closed   bool
}

func (c *recordingChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	c.exchange, c.key, c.msg = exchange, key, msg

	return c.err
}

func (c *recordingChannel) Close() error {
	c.closed = true

	return nil
}

func TestRabbitMQPublisher_Publish(t *testing.T) {
	ch := &recordingChannel{}
	publisher := &rabbitMQPublisher{ch: ch, exchange: defaultExchange, logger: discardLogger()}

	require.NoError(t, publisher.Publish(context.Background(), testEvent()))

	assert.Equal(t, defaultExchange, ch.exchange)
	assert.Equal(t, service.EventOrderCreated, ch.key)
	assert.Equal(t, "application/json", ch.msg.ContentType)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)
	assert.Equal(t, "evt-1", ch.msg.MessageId)
	assert.Equal(t, "req-1", ch.msg.CorrelationId)
	assert.Equal(t, "order.created", ch.msg.Headers["type"])

	var event service.DomainEvent
	require.NoError(t, json.Unmarshal(ch.msg.Body, &event))
	assert.Equal(t, "3f1c3c9e-5c1b-4c57-9d55-0c1f0b9f0c11", event.AggregateID)
}

func TestRabbitMQPublisher_PublishError(t *testing.T) {
	ch := &recordingChannel{err: errors.New("channel closed")}
	publisher := &rabbitMQPublisher{ch: ch, exchange: defaultExchange, logger: discardLogger()}

	err := publisher.Publish(context.Background(), testEvent())

	assert.ErrorContains(t, err, "publish order.created: channel closed")
}

func TestRabbitMQPublisher_Close(t *testing.T) {
	ch := &recordingChannel{}
	publisher := &rabbitMQPublisher{ch: ch, exchange: defaultExchange, logger: discardLogger()}

	assert.NoError(t, publisher.Close())
	assert.True(t, ch.closed)
}
