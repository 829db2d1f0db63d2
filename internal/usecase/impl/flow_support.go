package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "firelink/internal/delivery/context"
	domainerrors "firelink/internal/domain/errors"
	"firelink/internal/domain/service"
)

// flowSupport bundles the side channels every auth flow reports through.
type flowSupport struct {
	notifier  service.Notifier
	publisher service.LinkEventPublisher
	metrics   service.FlowMetrics
	logger    *slog.Logger
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (f *flowSupport) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, f.logger)
}

// report normalizes err and pushes it to the session's notices.
func (f *flowSupport) report(ctx context.Context, sessionID string, err error) {
	normalized := domainerrors.Normalize(err)
	if normalized == nil {
		return
	}

	level := slog.LevelWarn
	if normalized.Severity == domainerrors.SeverityFatal {
		level = slog.LevelError
	}
	f.log(ctx).Log(ctx, level, "Auth flow failed",
		slog.String("code", normalized.Code),
		slog.String("severity", string(normalized.Severity)),
		slog.Any("error", err),
	)

	if pushErr := f.notifier.PushErrors(ctx, sessionID, normalized); pushErr != nil {
		f.log(ctx).Error("Failed to push error notice", slog.Any("error", pushErr))
	}
}

// info pushes an informational notice.
func (f *flowSupport) info(ctx context.Context, sessionID, message string) {
	if err := f.notifier.PushInfos(ctx, sessionID, message); err != nil {
		f.log(ctx).Error("Failed to push info notice", slog.Any("error", err))
	}
}

// clearErrors drops error notices that a retry made stale.
func (f *flowSupport) clearErrors(ctx context.Context, sessionID string) {
	if err := f.notifier.ClearErrors(ctx, sessionID); err != nil {
		f.log(ctx).Error("Failed to clear error notices", slog.Any("error", err))
	}
}

// emit publishes a link event. Publishing never fails the flow.
func (f *flowSupport) emit(ctx context.Context, event *service.LinkEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = time.Now().UTC()

	f.log(ctx).Info("Link event",
		slog.String("correlation_id", event.CorrelationID),
		slog.String("type", string(event.Type)),
		slog.String("provider", event.Provider),
		slog.Int("attempt", event.Attempt),
	)

	if err := f.publisher.PublishLinkEvent(ctx, event); err != nil {
		f.log(ctx).Warn("Failed to publish link event",
			slog.String("correlation_id", event.CorrelationID),
			slog.Any("error", err),
		)
	}
}

// forceSignOut raises the force-sign-out flag, revokes the session and drops all redirect state.
func forceSignOut(ctx context.Context, gateway service.IdentityGateway, state *RedirectState, sessionID string) error {
	if err := state.MarkForceSignOut(ctx, sessionID); err != nil {
		return err
	}

	session, err := state.Session(ctx, sessionID)
	if err != nil {
		return err
	}
	if session != nil {
		if err := gateway.SignOut(ctx, session); err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, slog.Default()).Warn("Failed to revoke session during forced sign-out",
				slog.String("uid", session.UID),
				slog.Any("error", err),
			)
		}
	}

	return state.ClearSession(ctx, sessionID)
}

// settle waits for the identity platform to converge after a mutation.
func settle(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func sameEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
