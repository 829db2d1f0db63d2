package impl

import (
	"context"
	"log/slog"

	"firelink/config"
	deliverycontext "firelink/internal/delivery/context"
	"firelink/internal/domain/entity"
	domainerrors "firelink/internal/domain/errors"
	"firelink/internal/domain/service"
	"firelink/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Gateway  service.IdentityGateway
	State    *RedirectState
	Notifier service.Notifier
	Config   *config.Config
	Logger   *slog.Logger
}

type sessionService struct {
	gateway              service.IdentityGateway
	state                *RedirectState
	notifier             service.Notifier
	verificationRequired bool
	logger               *slog.Logger
}

// NewSessionService creates a new session service.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	verificationRequired := false
	if params.Config != nil && params.Config.Link != nil {
		verificationRequired = params.Config.Link.EmailVerificationRequired
	}

	return &sessionService{
		gateway:              params.Gateway,
		state:                params.State,
		notifier:             params.Notifier,
		verificationRequired: verificationRequired,
		logger:               params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// SyncState reloads the account and applies the guard flags to it.
func (s *sessionService) SyncState(ctx context.Context, sessionID string) (*usecase.AuthState, error) {
	flags, err := s.state.Flags(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	hasPending, err := s.state.HasPending(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	user, err := s.currentUser(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	authState, next := EvaluateAuthState(user, flags, hasPending, s.verificationRequired)
	if next != flags {
		if err := s.state.SaveFlags(ctx, sessionID, next); err != nil {
			return nil, err
		}
	}

	if authState.Decision == usecase.AuthDecisionForcedSignOut {
		if err := s.state.ClearSession(ctx, sessionID); err != nil {
			return nil, err
		}
	}

	s.log(ctx).Debug("Session state synced",
		slog.String("decision", string(authState.Decision)),
		slog.Bool("force_sign_out", flags.ForceSignOut),
		slog.Bool("ongoing_sign_in", flags.OngoingSignIn),
	)

	return authState, nil
}

func (s *sessionService) currentUser(ctx context.Context, sessionID string) (*entity.AuthenticatedUser, error) {
	session, err := s.state.Session(ctx, sessionID)
	if err != nil || session == nil {
		return nil, err
	}

	user, err := s.gateway.CurrentUser(ctx, session)
	switch {
	case errors.Is(err, domainerrors.ErrUserNotFound), errors.Is(err, domainerrors.ErrUserTokenExpired),
		errors.Is(err, domainerrors.ErrUserDisabled):
		s.log(ctx).Info("Stored session is no longer valid", slog.Any("error", err))
		if clearErr := s.state.ClearSession(ctx, sessionID); clearErr != nil {
			return nil, clearErr
		}

		return nil, nil
	case err != nil:
		return nil, errors.Wrap(err, "failed to reload current user")
	}

	return user, nil
}

// Notices drains the session's notification channel.
func (s *sessionService) Notices(ctx context.Context, sessionID string) ([]entity.Notice, error) {
	notices, err := s.notifier.Drain(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to drain notices")
	}

	return notices, nil
}
