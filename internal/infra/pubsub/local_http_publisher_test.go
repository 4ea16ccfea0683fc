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

	"catalog/internal/domain/constants"
	"catalog/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEvent() *service.SkuEvent {
	return &service.SkuEvent{
		EventID:    "evt-1",
		RequestID:  "req-1",
		Type:       constants.SkuEventCreated,
		SkuID:      7,
		SkuCode:    "TS-001",
		OccurredAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishSkuEvent(t *testing.T) {
	var (
		received  PubSubPushMessage
		requestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get(headerXRequestID)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := newTestEvent()

	require.NoError(t, publisher.PublishSkuEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, constants.SkuEventCreated, received.Message.Attributes["type"])
	assert.Equal(t, "TS-001", received.Message.Attributes["sku_code"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.SkuEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, int64(7), decoded.SkuID)
	assert.Equal(t, constants.SkuEventCreated, decoded.Type)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	err := publisher.PublishSkuEvent(context.Background(), newTestEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestLocalHTTPPublisher_OmitsEmptyRequestID(t *testing.T) {
	var attributes map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg PubSubPushMessage
		_ = json.NewDecoder(r.Body).Decode(&msg)
		attributes = msg.Message.Attributes
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	event := newTestEvent()
	event.RequestID = ""

	require.NoError(t, newLocalHTTPPublisher(server.URL, newDiscardLogger()).PublishSkuEvent(context.Background(), event))
	assert.NotContains(t, attributes, "request_id")
}
