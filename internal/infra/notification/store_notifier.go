// Package notification implements the per-session notification channel.
package notification

import (
	"context"
	"encoding/json"
	"log/slog"

	"firelink/internal/domain/entity"
	domainerrors "firelink/internal/domain/errors"
	"firelink/internal/domain/repository"
	"firelink/internal/domain/service"

	"github.com/pkg/errors"
)

type storeNotifier struct {
	store  repository.RedirectStateStore
	logger *slog.Logger
}

// NewStoreNotifier keeps notices in the session's state so they survive a provider redirect.
func NewStoreNotifier(store repository.RedirectStateStore, logger *slog.Logger) service.Notifier {
	return &storeNotifier{store: store, logger: logger}
}

func (n *storeNotifier) PushErrors(ctx context.Context, sessionID string, errs ...*domainerrors.Normalized) error {
	for _, normalized := range errs {
		if normalized == nil {
			continue
		}
		notice := entity.Notice{
			Kind:     entity.NoticeKindError,
			Code:     normalized.Code,
			Message:  normalized.Message,
			Severity: string(normalized.Severity),
		}
		if err := n.push(ctx, sessionID, notice); err != nil {
			return err
		}
	}

	return nil
}

func (n *storeNotifier) PushInfos(ctx context.Context, sessionID string, messages ...string) error {
	for _, message := range messages {
		if err := n.push(ctx, sessionID, entity.Notice{Kind: entity.NoticeKindInfo, Message: message}); err != nil {
			return err
		}
	}

	return nil
}

// ClearErrors drops pending error notices and keeps the infos.
func (n *storeNotifier) ClearErrors(ctx context.Context, sessionID string) error {
	notices, err := n.Drain(ctx, sessionID)
	if err != nil {
		return err
	}

	for _, notice := range notices {
		if notice.Kind == entity.NoticeKindError {
			continue
		}
		if err := n.push(ctx, sessionID, notice); err != nil {
			return err
		}
	}

	return nil
}

func (n *storeNotifier) Drain(ctx context.Context, sessionID string) ([]entity.Notice, error) {
	values, err := n.store.Drain(ctx, sessionID, repository.StateKeyNotices)
	if err != nil {
		return nil, errors.Wrap(err, "failed to drain notices")
	}

	notices := make([]entity.Notice, 0, len(values))
	for _, value := range values {
		var notice entity.Notice
		if err := json.Unmarshal(value, &notice); err != nil {
			n.logger.WarnContext(ctx, "Dropping unreadable notice", slog.Any("error", err))

			continue
		}
		notices = append(notices, notice)
	}

	return notices, nil
}

func (n *storeNotifier) push(ctx context.Context, sessionID string, notice entity.Notice) error {
	value, err := json.Marshal(notice)
	if err != nil {
		return errors.Wrap(err, "failed to encode notice")
	}

	return errors.Wrap(n.store.Append(ctx, sessionID, repository.StateKeyNotices, value), "failed to push notice")
}
