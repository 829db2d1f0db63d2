package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"firelink/config"
	"firelink/internal/domain/entity"
	"firelink/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// AuditEntryResponse is one recorded step of a linking flow.
type AuditEntryResponse struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	SessionID  string    `json:"sessionId"`
	Email      string    `json:"email,omitempty"`
	Provider   string    `json:"provider,omitempty"`
	Detail     string    `json:"detail,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// AuditTrailResponse is the audit trail of one linking flow.
type AuditTrailResponse struct {
	CorrelationID string               `json:"correlationId"`
	Entries       []AuditEntryResponse `json:"entries"`
}

// AuditHandler serves the recorded audit trail of linking flows to operators.
type AuditHandler struct {
	audience  string
	verify    TokenVerifier
	auditRepo repository.LinkAuditRepository
	logger    *slog.Logger
}

// AuditHandlerParams holds dependencies for the AuditHandler
type AuditHandlerParams struct {
	fx.In

	Config    *config.Config
	AuditRepo repository.LinkAuditRepository
	Logger    *slog.Logger
}

// NewAuditHandler creates the audit lookup handler. It accepts the same Google-signed tokens as the push endpoint.
func NewAuditHandler(params AuditHandlerParams) *AuditHandler {
	audience := ""
	if params.Config.Worker != nil {
		audience = params.Config.Worker.Audience
	}

	return &AuditHandler{
		audience:  audience,
		verify:    idtoken.Validate,
		auditRepo: params.AuditRepo,
		logger:    params.Logger,
	}
}

// GetTrail returns every recorded step of the flow named by the correlation_id path parameter, oldest first.
func (h *AuditHandler) GetTrail(c echo.Context) error {
	if h.audience != "" {
		if err := verifyGoogleToken(c.Request(), h.verify, h.audience); err != nil {
			h.logger.Warn("[Worker] Invalid audit lookup token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	correlationID := strings.TrimSpace(c.Param("correlation_id"))
	if correlationID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "correlation id is required"})
	}

	entries, err := h.auditRepo.FindByCorrelationID(c.Request().Context(), correlationID)
	if err != nil {
		h.logger.Error("[Worker] Failed to load audit trail",
			slog.String("correlation_id", correlationID),
			slog.Any("error", err),
		)

		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load audit trail"})
	}
	if len(entries) == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no audit trail for correlation id"})
	}

	return c.JSON(http.StatusOK, toAuditTrailResponse(correlationID, entries))
}

func toAuditTrailResponse(correlationID string, entries []*entity.LinkAuditEntry) *AuditTrailResponse {
	resp := &AuditTrailResponse{
		CorrelationID: correlationID,
		Entries:       make([]AuditEntryResponse, 0, len(entries)),
	}
	for _, entry := range entries {
		resp.Entries = append(resp.Entries, AuditEntryResponse{
			ID:         entry.ID.String(),
			Type:       entry.Type,
			SessionID:  entry.SessionID,
			Email:      entry.Email,
			Provider:   entry.Provider,
			Detail:     entry.Detail,
			OccurredAt: entry.OccurredAt,
		})
	}

	return resp
}
