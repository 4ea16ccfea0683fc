package pubsub

import (
	"context"
	"testing"

	"catalog/config"
	"catalog/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newPublisherParams(t *testing.T, cfg *config.PubSubConfig) PublisherParams {
	t.Helper()

	return PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: cfg},
		Logger: newDiscardLogger(),
	}
}

func TestNewEventPublisher_NoopWhenUnconfigured(t *testing.T) {
	publisher, err := NewEventPublisher(newPublisherParams(t, nil))
	require.NoError(t, err)

	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.PublishSkuEvent(context.Background(), newTestEvent()))
	assert.NoError(t, publisher.Close())
}

func TestNewEventPublisher_Local(t *testing.T) {
	params := newPublisherParams(t, &config.PubSubConfig{
		Provider:      constants.PubSubProviderLocal,
		LocalEndpoint: "http://localhost:8081/push",
	})

	publisher, err := NewEventPublisher(params)
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)
}

func TestNewEventPublisher_ConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{
			name:    "local without endpoint",
			cfg:     &config.PubSubConfig{Provider: constants.PubSubProviderLocal},
			wantErr: "local endpoint is required",
		},
		{
			name:    "google without project",
			cfg:     &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "sku-events"},
			wantErr: "project ID is required",
		},
		{
			name:    "google without topic",
			cfg:     &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "catalog"},
			wantErr: "topic ID is required",
		},
		{
			name:    "unknown provider",
			cfg:     &config.PubSubConfig{Provider: "kafka"},
			wantErr: "unknown pubsub provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(newPublisherParams(t, tt.cfg))

			assert.Nil(t, publisher)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEventAttributes(t *testing.T) {
	attrs := eventAttributes(newTestEvent())

	assert.Equal(t, map[string]string{
		"event_id":   "evt-1",
		"type":       constants.SkuEventCreated,
		"sku_code":   "TS-001",
		"request_id": "req-1",
	}, attrs)
}
