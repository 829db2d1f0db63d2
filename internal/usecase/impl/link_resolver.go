package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"firelink/config"
	"firelink/internal/domain/constants"
	"firelink/internal/domain/entity"
	domainerrors "firelink/internal/domain/errors"
	"firelink/internal/domain/service"
	"firelink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// linkState is one step of the linking state machine.
type linkState int

const (
	linkStatePrompting linkState = iota
	linkStatePasswordAttempt
	linkStateAttaching
	linkStateProviderRedirect
	linkStateLinked
	linkStateRedirected
	linkStateCancelled
	linkStateRetryExhausted
)

func (s linkState) String() string {
	switch s {
	case linkStatePrompting:
		return "prompting"
	case linkStatePasswordAttempt:
		return "password_attempt"
	case linkStateAttaching:
		return "attaching"
	case linkStateProviderRedirect:
		return "provider_redirect"
	case linkStateLinked:
		return "linked"
	case linkStateRedirected:
		return "redirected"
	case linkStateCancelled:
		return "cancelled"
	case linkStateRetryExhausted:
		return "retry_exhausted"
	default:
		return "unknown"
	}
}

// linkAttempt is the mutable context of one ResolveLink call.
type linkAttempt struct {
	correlationID string
	sessionID     string
	linkErr       *domainerrors.LinkingError
	methods       entity.Providers
	selection     *entity.ProviderSelection
	session       *entity.AuthSession
	user          *entity.AuthenticatedUser
	attempts      int
	maxAttempts   int
}

func (a *linkAttempt) event(eventType service.LinkEventType) *service.LinkEvent {
	return &service.LinkEvent{
		CorrelationID: a.correlationID,
		SessionID:     a.sessionID,
		Type:          eventType,
		Email:         a.linkErr.Email,
		Provider:      a.linkErr.PendingProvider().String(),
		Attempt:       a.attempts,
	}
}

// LinkResolverParams holds dependencies for the link resolver, injected by Fx.
type LinkResolverParams struct {
	fx.In

	Gateway   service.IdentityGateway
	State     *RedirectState
	Selector  usecase.ProviderSelector
	Navigator service.Navigator
	Notifier  service.Notifier
	Publisher service.LinkEventPublisher
	Metrics   service.FlowMetrics
	Config    *config.Config
	Logger    *slog.Logger
}

type linkResolver struct {
	flowSupport

	gateway         service.IdentityGateway
	state           *RedirectState
	selector        usecase.ProviderSelector
	navigator       service.Navigator
	maxAttempts     int
	trustedProvider entity.Provider
}

// NewLinkResolver is the constructor for the link resolver.
func NewLinkResolver(params LinkResolverParams) usecase.LinkResolver {
	maxAttempts := constants.DefaultMaxPasswordRetryCount
	trusted := entity.Provider("")
	if params.Config != nil && params.Config.Link != nil {
		if params.Config.Link.MaxPasswordRetryCount > 0 {
			maxAttempts = params.Config.Link.MaxPasswordRetryCount
		}
		trusted = entity.Provider(params.Config.Link.TrustedProvider)
	}

	return &linkResolver{
		flowSupport: flowSupport{
			notifier:  params.Notifier,
			publisher: params.Publisher,
			metrics:   params.Metrics,
			logger:    params.Logger,
		},
		gateway:         params.Gateway,
		state:           params.State,
		selector:        params.Selector,
		navigator:       params.Navigator,
		maxAttempts:     maxAttempts,
		trustedProvider: trusted,
	}
}

// ResolveLink proves ownership of the colliding account, then attaches the pending credential.
func (r *linkResolver) ResolveLink(ctx context.Context, sessionID string, linkErr *domainerrors.LinkingError) (*usecase.LinkOutcome, error) {
	if linkErr == nil || linkErr.Credential == nil {
		return nil, errors.New("linking error carries no pending credential")
	}

	attempt := &linkAttempt{
		correlationID: uuid.NewString(),
		sessionID:     sessionID,
		linkErr:       linkErr,
		maxAttempts:   r.maxAttempts,
	}
	r.emit(ctx, attempt.event(service.LinkEventAttemptStarted))

	methods, err := r.gateway.FetchSignInMethods(ctx, linkErr.Email)
	if err != nil {
		return nil, r.fail(ctx, attempt, errors.Wrap(err, "failed to fetch sign-in methods"))
	}

	// The pending method is already registered, so another account owns the credential.
	if slices.Contains(methods, linkErr.Credential.Method()) {
		r.emit(ctx, attempt.event(service.LinkEventAlreadyInUse))
		r.metrics.LinkOutcome("already_in_use")

		return nil, errors.WithStack(domainerrors.ErrCredentialAlreadyInUse)
	}
	attempt.methods = entity.ProvidersFromIDs(methods)

	state := linkStatePrompting
	for {
		r.log(ctx).Debug("Link state",
			slog.String("correlation_id", attempt.correlationID),
			slog.String("state", state.String()),
		)

		switch state {
		case linkStatePrompting:
			state, err = r.prompt(ctx, attempt)
		case linkStatePasswordAttempt:
			state, err = r.signInWithPassword(ctx, attempt)
		case linkStateAttaching:
			state, err = r.attach(ctx, attempt)
		case linkStateProviderRedirect:
			state, err = r.redirect(ctx, attempt)
		case linkStateLinked:
			r.finish(ctx, attempt, service.LinkEventLinked, "linked")

			return &usecase.LinkOutcome{
				Kind:             usecase.LinkOutcomeLinked,
				CorrelationID:    attempt.correlationID,
				PasswordAttempts: attempt.attempts,
				User:             attempt.user,
			}, nil
		case linkStateRedirected:
			r.finish(ctx, attempt, service.LinkEventRedirectStarted, "redirected")

			return &usecase.LinkOutcome{
				Kind:             usecase.LinkOutcomeRedirecting,
				CorrelationID:    attempt.correlationID,
				PasswordAttempts: attempt.attempts,
			}, nil
		case linkStateCancelled:
			r.finish(ctx, attempt, service.LinkEventCancelled, "cancelled")

			return nil, linkErr
		case linkStateRetryExhausted:
			r.finish(ctx, attempt, service.LinkEventRetryExhausted, "retry_exhausted")

			return nil, errors.WithStack(domainerrors.ErrExistingProviderSignInFailed)
		default:
			return nil, errors.Errorf("unexpected link state %d", state)
		}

		if err != nil {
			return nil, r.fail(ctx, attempt, err)
		}
	}
}

func (r *linkResolver) prompt(ctx context.Context, attempt *linkAttempt) (linkState, error) {
	r.emit(ctx, attempt.event(service.LinkEventPromptShown))

	selection, err := r.selector.SelectProvider(ctx, attempt.methods, attempt.linkErr.Email,
		attempt.linkErr.PendingProvider(), r.trustedProvider)
	r.clearErrors(ctx, attempt.sessionID)
	if err != nil {
		return linkStatePrompting, err
	}
	if selection == nil {
		return linkStateCancelled, nil
	}
	attempt.selection = selection

	switch {
	case selection.LinkProvider == entity.ProviderUnknown:
		return linkStatePrompting, errors.WithStack(domainerrors.ErrUnknownProvider)
	case selection.LinkProvider == entity.ProviderPassword:
		return linkStatePasswordAttempt, nil
	default:
		return linkStateProviderRedirect, nil
	}
}

func (r *linkResolver) signInWithPassword(ctx context.Context, attempt *linkAttempt) (linkState, error) {
	result, err := r.gateway.SignInWithPassword(ctx, attempt.linkErr.Email, attempt.selection.Password)
	if errors.Is(err, domainerrors.ErrWrongPassword) {
		attempt.attempts++
		r.emit(ctx, attempt.event(service.LinkEventPasswordFailed))
		if attempt.attempts >= attempt.maxAttempts {
			return linkStateRetryExhausted, nil
		}
		r.log(ctx).Info("Wrong password during re-authentication",
			slog.String("correlation_id", attempt.correlationID),
			slog.Int("attempt", attempt.attempts),
			slog.Int("max_attempts", attempt.maxAttempts),
		)
		r.report(ctx, attempt.sessionID, err)

		return linkStatePrompting, nil
	}
	if err != nil {
		return linkStatePasswordAttempt, err
	}
	attempt.session = result.Session

	return linkStateAttaching, nil
}

// attach links the pending credential with the re-authenticated session. The session is stored
// only once the link succeeded, so a failed attach leaves the user signed out.
func (r *linkResolver) attach(ctx context.Context, attempt *linkAttempt) (linkState, error) {
	result, err := r.gateway.LinkCredentialDirect(ctx, attempt.session, attempt.linkErr.Credential)
	if err != nil {
		return linkStateAttaching, errors.Wrap(err, "failed to link pending credential")
	}

	session := attempt.session
	if result.Session != nil {
		session = result.Session
	}
	if err := r.state.SaveSession(ctx, attempt.sessionID, session); err != nil {
		return linkStateAttaching, err
	}
	attempt.user = result.User

	r.info(ctx, attempt.sessionID, fmt.Sprintf("%s is now linked to your account.", attempt.linkErr.PendingProvider()))

	return linkStateLinked, nil
}

func (r *linkResolver) redirect(ctx context.Context, attempt *linkAttempt) (linkState, error) {
	provider := attempt.selection.LinkProvider

	var opts entity.RedirectOptions
	if provider == entity.ProviderGoogle {
		opts.LoginHint = attempt.linkErr.Email
	}

	handshake, err := r.gateway.SignInWithRedirect(ctx, provider, opts)
	if err != nil {
		return linkStateProviderRedirect, err
	}

	pending := &entity.PendingCredential{
		Email:         attempt.linkErr.Email,
		Password:      attempt.linkErr.Password,
		Credential:    attempt.linkErr.Credential,
		CorrelationID: attempt.correlationID,
	}
	if err := r.state.WritePending(ctx, attempt.sessionID, pending); err != nil {
		return linkStateProviderRedirect, err
	}
	if err := r.state.WriteHandshake(ctx, attempt.sessionID, handshake); err != nil {
		if clearErr := r.state.ClearPending(ctx, attempt.sessionID); clearErr != nil {
			r.log(ctx).Error("Failed to drop pending credential", slog.Any("error", clearErr))
		}

		return linkStateProviderRedirect, err
	}

	if err := r.navigator.Navigate(ctx, handshake.AuthURL); err != nil {
		return linkStateProviderRedirect, errors.Wrap(err, "failed to navigate to provider")
	}

	return linkStateRedirected, nil
}

func (r *linkResolver) finish(ctx context.Context, attempt *linkAttempt, eventType service.LinkEventType, outcome string) {
	r.emit(ctx, attempt.event(eventType))
	r.metrics.LinkOutcome(outcome)
	r.metrics.PasswordAttempts(attempt.attempts)
}

func (r *linkResolver) fail(ctx context.Context, attempt *linkAttempt, err error) error {
	event := attempt.event(service.LinkEventFailed)
	event.Detail = err.Error()
	r.emit(ctx, event)
	r.metrics.LinkOutcome("failed")
	r.metrics.PasswordAttempts(attempt.attempts)

	return err
}
