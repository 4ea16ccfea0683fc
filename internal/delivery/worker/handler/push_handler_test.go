package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"catalog/config"
	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/constants"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/service"
	mockUsecase "catalog/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockAuditUsecase) {
	auditUC := mockUsecase.NewMockAuditUsecase(t)
	if cfg == nil {
		cfg = &config.Config{}
	}

	return NewPushHandler(PushHandlerParams{
		Config:  cfg,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		AuditUC: auditUC,
	}), auditUC
}

func newPushBody(t *testing.T, event *service.SkuEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/local/subscriptions/sku-events-push"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func newPushContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func testEvent() *service.SkuEvent {
	return &service.SkuEvent{
		EventID:    "5b1c2e2a-2f9b-4a1e-9a7e-0c7d9b1d4f10",
		RequestID:  "req-from-event",
		Type:       constants.SkuEventCreated,
		SkuID:      7,
		SkuCode:    "TS-001",
		OccurredAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestPushHandler_HandlePush_Success(t *testing.T) {
	h, auditUC := newTestPushHandler(t, nil)
	c, rec := newPushContext(newPushBody(t, testEvent(), map[string]string{"request_id": "req-from-attr"}))

	auditUC.EXPECT().
		RecordSkuEvent(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "req-from-attr"
		}), mock.MatchedBy(func(e *service.SkuEvent) bool {
			return e.EventID == testEvent().EventID && e.SkuID == 7 && e.Type == constants.SkuEventCreated
		})).
		Return(nil).Once()

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_RequestIDFromEvent(t *testing.T) {
	h, auditUC := newTestPushHandler(t, nil)
	c, rec := newPushContext(newPushBody(t, testEvent(), nil))

	auditUC.EXPECT().
		RecordSkuEvent(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "req-from-event"
		}), mock.Anything).
		Return(nil).Once()

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_UnusableAttributeRequestID(t *testing.T) {
	h, auditUC := newTestPushHandler(t, nil)
	c, rec := newPushContext(newPushBody(t, testEvent(), map[string]string{"request_id": strings.Repeat("x", 200)}))

	auditUC.EXPECT().
		RecordSkuEvent(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "req-from-event"
		}), mock.Anything).
		Return(nil).Once()

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_BadEnvelope(t *testing.T) {
	h, _ := newTestPushHandler(t, nil)
	c, rec := newPushContext("{")

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// Data that can never be processed is acknowledged so Pub/Sub stops redelivering it.
func TestPushHandler_HandlePush_UndecodableDataIsAcknowledged(t *testing.T) {
	encode := func(raw string) string {
		return `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte(raw)) + `","messageId":"m-1"}}`
	}

	tests := []struct {
		name string
		body string
	}{
		{name: "data not base64", body: `{"message":{"data":"%%%"}}`},
		{name: "data not json", body: encode("not json")},
		{name: "data truncated json", body: encode(`{"event_id":"e-1"`)},
		{name: "data not an event", body: encode("[1,2]")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, auditUC := newTestPushHandler(t, nil)
			c, rec := newPushContext(tt.body)

			require.NoError(t, h.HandlePush(c))
			assert.Equal(t, http.StatusOK, rec.Code)
			auditUC.AssertNotCalled(t, "RecordSkuEvent", mock.Anything, mock.Anything)
		})
	}
}

func TestPushHandler_HandlePush_InvalidEventIsAcknowledged(t *testing.T) {
	h, auditUC := newTestPushHandler(t, nil)
	c, rec := newPushContext(newPushBody(t, testEvent(), nil))

	auditUC.EXPECT().RecordSkuEvent(mock.Anything, mock.Anything).
		Return(domainerrors.ErrValidationFailed.WithDetails("unknown event type")).Once()

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_StorageFailureRequestsRetry(t *testing.T) {
	h, auditUC := newTestPushHandler(t, nil)
	c, rec := newPushContext(newPushBody(t, testEvent(), nil))

	auditUC.EXPECT().RecordSkuEvent(mock.Anything, mock.Anything).
		Return(errors.New("connection refused")).Once()

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestNewPushHandler_VerifyPushAuth(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		provider string
		expected bool
	}{
		{name: "google in production", env: "production", provider: constants.PubSubProviderGoogle, expected: true},
		{name: "google in develop", env: constants.EnvDevelop, provider: constants.PubSubProviderGoogle, expected: false},
		{name: "google locally", env: constants.EnvLocal, provider: constants.PubSubProviderGoogle, expected: false},
		{name: "local provider", env: "production", provider: constants.PubSubProviderLocal, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: tt.provider}}
			cfg.Env.Env = tt.env

			h, _ := newTestPushHandler(t, cfg)

			assert.Equal(t, tt.expected, h.verifyPushAuth)
		})
	}
}

func TestPushHandler_HandlePush_RejectsMissingToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = "production"
	h, _ := newTestPushHandler(t, cfg)
	c, rec := newPushContext(newPushBody(t, testEvent(), nil))

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyPubSubToken(t *testing.T) {
	original := tokenValidator
	t.Cleanup(func() { tokenValidator = original })

	tests := []struct {
		name      string
		header    string
		payload   *idtoken.Payload
		err       error
		expectErr string
	}{
		{name: "missing header", expectErr: "missing authorization header"},
		{name: "not bearer", header: "Basic abc", expectErr: "invalid authorization header format"},
		{name: "invalid token", header: "Bearer abc", err: errors.New("bad signature"), expectErr: "failed to validate token"},
		{name: "wrong issuer", header: "Bearer abc", payload: &idtoken.Payload{Issuer: "evil.example.com"}, expectErr: "invalid issuer"},
		{
			name:      "unverified email",
			header:    "Bearer abc",
			payload:   &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": false}},
			expectErr: "email not verified",
		},
		{name: "valid", header: "Bearer abc", payload: &idtoken.Payload{Issuer: "accounts.google.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotAudience string
			tokenValidator = func(_ context.Context, _ string, audience string) (*idtoken.Payload, error) {
				gotAudience = audience

				return tt.payload, tt.err
			}

			req := httptest.NewRequest(http.MethodPost, "http://worker.local/push", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			err := verifyPubSubToken(req)
			if tt.expectErr != "" {
				assert.ErrorContains(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "http://worker.local/push", gotAudience)
		})
	}
}
