package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"firelink/config"
	"firelink/internal/domain/constants"
	"firelink/internal/domain/entity"
	domainerrors "firelink/internal/domain/errors"
	"firelink/internal/domain/service"
	"firelink/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Gateway   service.IdentityGateway
	State     *RedirectState
	Resolver  usecase.LinkResolver
	Navigator service.Navigator
	Policy    service.EmailDomainPolicy
	Notifier  service.Notifier
	Publisher service.LinkEventPublisher
	Metrics   service.FlowMetrics
	Config    *config.Config
	Logger    *slog.Logger
}

type authService struct {
	flowSupport

	gateway              service.IdentityGateway
	state                *RedirectState
	resolver             usecase.LinkResolver
	navigator            service.Navigator
	policy               service.EmailDomainPolicy
	settleDelay          time.Duration
	enforceDomains       bool
	verificationRequired bool
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	enforceDomains := true
	verificationRequired := false
	settleDelay := constants.DefaultSettleDelayMillis * time.Millisecond
	if params.Config != nil && params.Config.Link != nil {
		enforceDomains = params.Config.Link.EnforceReservedDomains
		verificationRequired = params.Config.Link.EmailVerificationRequired
		settleDelay = params.Config.Link.SettleDelay
	}

	return &authService{
		flowSupport: flowSupport{
			notifier:  params.Notifier,
			publisher: params.Publisher,
			metrics:   params.Metrics,
			logger:    params.Logger,
		},
		gateway:              params.Gateway,
		state:                params.State,
		resolver:             params.Resolver,
		navigator:            params.Navigator,
		policy:               params.Policy,
		settleDelay:          settleDelay,
		enforceDomains:       enforceDomains,
		verificationRequired: verificationRequired,
	}
}

// SignUp creates an account. An email already registered with another provider enters the linking flow.
func (s *authService) SignUp(ctx context.Context, input usecase.SignUpInput) (output *usecase.AuthOutput, err error) {
	defer func() {
		if err != nil {
			s.report(ctx, input.SessionID, err)
		}
	}()

	if err := validateProvider(input.Provider); err != nil {
		return nil, err
	}
	if input.Provider.IsFederated() {
		return s.startRedirect(ctx, input.SessionID, entity.AuthActionSignUp, input.Provider)
	}

	if reserved, ok := s.reservedProvider(input.Email); ok && reserved != entity.ProviderPassword {
		return nil, errors.WithStack(domainerrors.ErrReservedEmailDomain.WithDetails(
			fmt.Sprintf("%s addresses must sign up with %s", input.Email, reserved)))
	}

	result, err := s.gateway.CreateAccountWithPassword(ctx, input.Email, input.Password)
	if errors.Is(err, domainerrors.ErrEmailAlreadyInUse) {
		linkErr := domainerrors.NewLinkingError(input.Email, entity.NewPasswordCredential(input.Email, input.Password))
		linkErr.Password = input.Password

		return s.resolve(ctx, input.SessionID, linkErr)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create account")
	}

	if err := s.signedIn(ctx, input.SessionID, result.Session); err != nil {
		return nil, err
	}
	if s.verificationRequired {
		if err := s.gateway.SendEmailVerification(ctx, result.Session); err != nil {
			s.log(ctx).Warn("Failed to send verification email", slog.Any("error", err))
		} else {
			s.info(ctx, input.SessionID, fmt.Sprintf("A verification email was sent to %s.", input.Email))
		}
	}

	user := result.User
	if name := strings.TrimSpace(input.DisplayName); name != "" {
		if user, err = s.applyDisplayName(ctx, result.Session, name); err != nil {
			return nil, err
		}
	}

	s.log(ctx).Info("Account created", slog.String("uid", user.UID))

	return &usecase.AuthOutput{Outcome: usecase.AuthOutcomeSignedIn, User: user}, nil
}

// applyDisplayName sets the display name of a fresh account and returns the reloaded account.
func (s *authService) applyDisplayName(ctx context.Context, session *entity.AuthSession, name string) (*entity.AuthenticatedUser, error) {
	if err := s.gateway.UpdateProfile(ctx, session, entity.ProfileUpdate{DisplayName: &name}); err != nil {
		return nil, errors.Wrap(err, "failed to set display name")
	}
	if err := settle(ctx, s.settleDelay); err != nil {
		return nil, err
	}
	user, err := s.gateway.CurrentUser(ctx, session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload current user")
	}

	return user, nil
}

// SignIn signs in with a password directly, or redirects to a federated provider.
func (s *authService) SignIn(ctx context.Context, input usecase.SignInInput) (output *usecase.AuthOutput, err error) {
	defer func() {
		if err != nil {
			s.report(ctx, input.SessionID, err)
		}
	}()

	if err := validateProvider(input.Provider); err != nil {
		return nil, err
	}
	if input.Provider.IsFederated() {
		return s.startRedirect(ctx, input.SessionID, entity.AuthActionSignIn, input.Provider)
	}

	result, err := s.gateway.SignInWithPassword(ctx, input.Email, input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign in")
	}
	if err := s.signedIn(ctx, input.SessionID, result.Session); err != nil {
		return nil, err
	}

	return &usecase.AuthOutput{Outcome: usecase.AuthOutcomeSignedIn, User: result.User}, nil
}

// SignOut revokes the session and drops every piece of its state.
func (s *authService) SignOut(ctx context.Context, sessionID string) error {
	session, err := s.state.Session(ctx, sessionID)
	if err != nil {
		return err
	}
	if session != nil {
		if err := s.gateway.SignOut(ctx, session); err != nil {
			s.log(ctx).Warn("Failed to revoke session", slog.String("uid", session.UID), slog.Any("error", err))
		}
	}

	return s.state.Purge(ctx, sessionID)
}

func (s *authService) resolve(ctx context.Context, sessionID string, linkErr *domainerrors.LinkingError) (*usecase.AuthOutput, error) {
	outcome, err := s.resolver.ResolveLink(ctx, sessionID, linkErr)
	if err != nil {
		if signOutErr := forceSignOut(ctx, s.gateway, s.state, sessionID); signOutErr != nil {
			s.log(ctx).Error("Failed to force sign-out", slog.Any("error", signOutErr))
		}

		return nil, err
	}

	if outcome.Kind == usecase.LinkOutcomeRedirecting {
		return &usecase.AuthOutput{Outcome: usecase.AuthOutcomeRedirecting}, nil
	}

	return &usecase.AuthOutput{Outcome: usecase.AuthOutcomeLinked, User: outcome.User}, nil
}

// startRedirect records the intent and handshake, then navigates to the provider.
func (s *authService) startRedirect(ctx context.Context, sessionID string, action entity.AuthAction, provider entity.Provider) (*usecase.AuthOutput, error) {
	handshake, err := s.gateway.SignInWithRedirect(ctx, provider, entity.RedirectOptions{})
	if err != nil {
		return nil, err
	}

	if err := s.state.SaveFlags(ctx, sessionID, entity.SessionFlags{OngoingSignIn: true}); err != nil {
		return nil, err
	}
	if err := s.state.WriteIntent(ctx, sessionID, &entity.RedirectIntent{Action: action, Provider: provider}); err != nil {
		return nil, err
	}
	if err := s.state.WriteHandshake(ctx, sessionID, handshake); err != nil {
		return nil, err
	}

	if err := s.navigator.Navigate(ctx, handshake.AuthURL); err != nil {
		return nil, errors.Wrap(err, "failed to navigate to provider")
	}

	return &usecase.AuthOutput{Outcome: usecase.AuthOutcomeRedirecting}, nil
}

func (s *authService) signedIn(ctx context.Context, sessionID string, session *entity.AuthSession) error {
	if session.SignedInAt.IsZero() {
		session.SignedInAt = time.Now().UTC()
	}
	if err := s.state.SaveSession(ctx, sessionID, session); err != nil {
		return err
	}

	return s.state.SaveFlags(ctx, sessionID, entity.SessionFlags{})
}

func (s *authService) reservedProvider(email string) (entity.Provider, bool) {
	if !s.enforceDomains || s.policy == nil {
		return "", false
	}

	return s.policy.ReservedProvider(email)
}

func validateProvider(provider entity.Provider) error {
	if provider == entity.ProviderUnknown {
		return errors.WithStack(domainerrors.ErrUnknownProvider)
	}
	if !provider.IsValid() {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unsupported provider %q", provider)))
	}

	return nil
}
