package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"firelink/config"
	deliverycontext "firelink/internal/delivery/context"
	"firelink/internal/domain/entity"
	"firelink/internal/domain/repository"
	"firelink/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// TokenVerifier validates the OIDC token Pub/Sub attaches to push requests.
type TokenVerifier func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler records link events delivered by Pub/Sub push into the audit trail.
type PushHandler struct {
	audience  string
	verify    TokenVerifier
	auditRepo repository.LinkAuditRepository
	logger    *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	AuditRepo repository.LinkAuditRepository
	Logger    *slog.Logger
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	audience := ""
	if params.Config.Worker != nil {
		audience = params.Config.Worker.Audience
	}

	return &PushHandler{
		audience:  audience,
		verify:    idtoken.Validate,
		auditRepo: params.AuditRepo,
		logger:    params.Logger,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// Malformed messages are acknowledged so Pub/Sub does not redeliver them forever.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.audience != "" {
		if err := verifyGoogleToken(c.Request(), h.verify, h.audience); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.LinkEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse link event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("correlation_id", event.CorrelationID),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.record(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to record link event",
			slog.String("type", string(event.Type)),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Link event recorded", slog.String("type", string(event.Type)))

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event, then the request, then a fresh UUID.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.LinkEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

func (h *PushHandler) record(ctx context.Context, event *service.LinkEvent) error {
	if event.CorrelationID == "" || event.Type == "" {
		return errors.New("link event without correlation id or type")
	}

	if err := h.auditRepo.Record(ctx, auditEntryFromEvent(event)); err != nil {
		return newRetryableError(errors.Wrap(err, "failed to store audit entry"))
	}

	return nil
}

func auditEntryFromEvent(event *service.LinkEvent) *entity.LinkAuditEntry {
	detail := event.Detail
	if event.Attempt > 0 {
		attempt := fmt.Sprintf("attempt %d", event.Attempt)
		if detail == "" {
			detail = attempt
		} else {
			detail = attempt + ": " + detail
		}
	}

	occurredAt := event.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	return &entity.LinkAuditEntry{
		ID:            uuid.New(),
		CorrelationID: event.CorrelationID,
		SessionID:     event.SessionID,
		Email:         event.Email,
		Type:          string(event.Type),
		Provider:      event.Provider,
		Detail:        detail,
		OccurredAt:    occurredAt,
	}
}

// verifyGoogleToken verifies the Google-signed JWT carried as a bearer token, as attached by Pub/Sub push.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyGoogleToken(req *http.Request, verify TokenVerifier, audience string) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	payload, err := verify(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
