package service

import (
	"context"

	"firelink/internal/domain/entity"
	domainerrors "firelink/internal/domain/errors"
)

// Notifier is the user-visible notification channel of a session.
type Notifier interface {
	PushErrors(ctx context.Context, sessionID string, errs ...*domainerrors.Normalized) error
	PushInfos(ctx context.Context, sessionID string, messages ...string) error
	ClearErrors(ctx context.Context, sessionID string) error
	Drain(ctx context.Context, sessionID string) ([]entity.Notice, error)
}
