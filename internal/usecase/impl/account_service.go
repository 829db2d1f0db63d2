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

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	Gateway   service.IdentityGateway
	State     *RedirectState
	Navigator service.Navigator
	Policy    service.EmailDomainPolicy
	Notifier  service.Notifier
	Publisher service.LinkEventPublisher
	Metrics   service.FlowMetrics
	Config    *config.Config
	Logger    *slog.Logger
}

type accountService struct {
	flowSupport

	gateway              service.IdentityGateway
	state                *RedirectState
	navigator            service.Navigator
	policy               service.EmailDomainPolicy
	settleDelay          time.Duration
	discloseUserNotFound bool
	enforceDomains       bool
	sendVerification     bool
	verifyBeforeUpdate   bool
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	svc := &accountService{
		flowSupport: flowSupport{
			notifier:  params.Notifier,
			publisher: params.Publisher,
			metrics:   params.Metrics,
			logger:    params.Logger,
		},
		gateway:              params.Gateway,
		state:                params.State,
		navigator:            params.Navigator,
		policy:               params.Policy,
		settleDelay:          constants.DefaultSettleDelayMillis * time.Millisecond,
		discloseUserNotFound: true,
		enforceDomains:       true,
		sendVerification:     true,
	}

	if params.Config != nil && params.Config.Link != nil {
		link := params.Config.Link
		svc.settleDelay = link.SettleDelay
		svc.discloseUserNotFound = link.DiscloseUserNotFound
		svc.enforceDomains = link.EnforceReservedDomains
		svc.sendVerification = link.SendVerificationOnEmailUpdate
		svc.verifyBeforeUpdate = link.VerifyBeforeEmailUpdate
	}

	return svc
}

// AddLink attaches another provider to the signed-in account.
func (s *accountService) AddLink(ctx context.Context, input usecase.AddLinkInput) (output *usecase.AuthOutput, err error) {
	defer s.reportOnError(ctx, input.SessionID, &err)

	if err := validateProvider(input.Provider); err != nil {
		return nil, err
	}
	session, user, err := s.currentAccount(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if user.Providers().Contains(input.Provider) {
		return nil, errors.WithStack(domainerrors.ErrProviderAlreadyLinked.WithDetails(input.Provider.String()))
	}

	if input.Provider.IsFederated() {
		handshake, err := s.gateway.LinkCredentialWithRedirect(ctx, session, input.Provider)
		if err != nil {
			return nil, err
		}
		if err := s.state.SetOngoingSignIn(ctx, input.SessionID, true); err != nil {
			return nil, err
		}
		if err := s.state.WriteIntent(ctx, input.SessionID, &entity.RedirectIntent{Action: entity.AuthActionAddLink, Provider: input.Provider}); err != nil {
			return nil, err
		}
		if err := s.state.WriteHandshake(ctx, input.SessionID, handshake); err != nil {
			return nil, err
		}
		if err := s.navigator.Navigate(ctx, handshake.AuthURL); err != nil {
			return nil, errors.Wrap(err, "failed to navigate to provider")
		}

		return &usecase.AuthOutput{Outcome: usecase.AuthOutcomeRedirecting}, nil
	}

	email := input.Email
	if email == "" {
		email = user.Email
	}
	result, err := s.gateway.LinkCredentialDirect(ctx, session, entity.NewPasswordCredential(email, input.Password))
	if err != nil {
		return nil, errors.Wrap(err, "failed to link password")
	}
	s.info(ctx, input.SessionID, "Password sign-in is now enabled for your account.")

	return &usecase.AuthOutput{Outcome: usecase.AuthOutcomeLinked, User: result.User}, nil
}

// RemoveLink detaches a provider. The last provider and the provider reserved for the
// account's email domain cannot be removed.
func (s *accountService) RemoveLink(ctx context.Context, sessionID string, provider entity.Provider) (user *entity.AuthenticatedUser, err error) {
	defer s.reportOnError(ctx, sessionID, &err)

	session, current, err := s.currentAccount(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	providers := current.Providers()
	if !providers.Contains(provider) {
		return nil, errors.WithStack(domainerrors.ErrNoSuchProvider.WithDetails(provider.String()))
	}
	if len(providers) <= 1 {
		return nil, errors.WithStack(domainerrors.ErrRemoveLinkBanned.WithDetails("the last sign-in method cannot be removed"))
	}
	if reserved, ok := s.reservedProvider(current.Email); ok && reserved == provider {
		return nil, errors.WithStack(domainerrors.ErrRemoveLinkBanned.WithDetails(
			fmt.Sprintf("%s is required for %s", provider, current.Email)))
	}

	updated, err := s.gateway.Unlink(ctx, session, provider)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unlink provider")
	}
	s.info(ctx, sessionID, fmt.Sprintf("%s was removed from your account.", provider))

	return updated, nil
}

// UpdateEmail changes the account email, or sends a verification mail first when configured to.
func (s *accountService) UpdateEmail(ctx context.Context, sessionID, email string) (user *entity.AuthenticatedUser, err error) {
	defer s.reportOnError(ctx, sessionID, &err)

	email = strings.TrimSpace(email)
	if email == "" {
		return nil, errors.WithStack(domainerrors.ErrInvalidEmail)
	}

	session, current, err := s.currentAccount(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if reserved, ok := s.reservedProvider(email); ok && !current.Providers().Contains(reserved) {
		return nil, errors.WithStack(domainerrors.ErrReservedEmailDomain.WithDetails(
			fmt.Sprintf("link %s before using %s", reserved, email)))
	}

	if s.verifyBeforeUpdate {
		if err := s.gateway.VerifyBeforeUpdateEmail(ctx, session, email); err != nil {
			return nil, errors.Wrap(err, "failed to send email change verification")
		}
		s.info(ctx, sessionID, fmt.Sprintf("Confirm the change from the email sent to %s.", email))

		return current, nil
	}

	if err := s.gateway.UpdateEmail(ctx, session, email); err != nil {
		return nil, errors.Wrap(err, "failed to update email")
	}
	session.Email = email
	if err := s.state.SaveSession(ctx, sessionID, session); err != nil {
		return nil, err
	}
	if s.sendVerification {
		if err := s.gateway.SendEmailVerification(ctx, session); err != nil {
			s.log(ctx).Warn("Failed to send verification email", slog.Any("error", err))
		}
	}

	return s.reload(ctx, session)
}

// UpdateProfile changes display name and photo.
func (s *accountService) UpdateProfile(ctx context.Context, sessionID string, update entity.ProfileUpdate) (user *entity.AuthenticatedUser, err error) {
	defer s.reportOnError(ctx, sessionID, &err)

	session, err := s.requireSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.gateway.UpdateProfile(ctx, session, update); err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return s.reload(ctx, session)
}

// UpdatePassword sets a new password on the signed-in account.
func (s *accountService) UpdatePassword(ctx context.Context, sessionID, password string) (err error) {
	defer s.reportOnError(ctx, sessionID, &err)

	if password == "" {
		return errors.WithStack(domainerrors.ErrWeakPassword)
	}
	session, err := s.requireSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := s.gateway.UpdatePassword(ctx, session, password); err != nil {
		return errors.Wrap(err, "failed to update password")
	}
	s.info(ctx, sessionID, "Your password was updated.")

	return settle(ctx, s.settleDelay)
}

// SendPasswordResetEmail sends a reset mail. Unknown addresses are reported only when disclosure is enabled.
func (s *accountService) SendPasswordResetEmail(ctx context.Context, sessionID, email string) (err error) {
	defer s.reportOnError(ctx, sessionID, &err)

	err = s.gateway.SendPasswordResetEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, domainerrors.ErrUserNotFound) && !s.discloseUserNotFound {
		s.log(ctx).Info("Password reset requested for unknown email")
		err = nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to send password reset email")
	}
	s.info(ctx, sessionID, fmt.Sprintf("A password reset email was sent to %s.", email))

	return nil
}

// Withdraw deletes the signed-in account and all of the session's state.
func (s *accountService) Withdraw(ctx context.Context, sessionID string) (err error) {
	defer s.reportOnError(ctx, sessionID, &err)

	session, err := s.requireSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := s.gateway.DeleteUser(ctx, session.UID); err != nil {
		return errors.Wrap(err, "failed to delete account")
	}
	s.log(ctx).Info("Account withdrawn", slog.String("uid", session.UID))

	return s.state.Purge(ctx, sessionID)
}

func (s *accountService) reportOnError(ctx context.Context, sessionID string, err *error) {
	if *err != nil {
		s.report(ctx, sessionID, *err)
	}
}

func (s *accountService) requireSession(ctx context.Context, sessionID string) (*entity.AuthSession, error) {
	session, err := s.state.Session(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, errors.WithStack(domainerrors.ErrSessionRequired)
	}

	return session, nil
}

func (s *accountService) currentAccount(ctx context.Context, sessionID string) (*entity.AuthSession, *entity.AuthenticatedUser, error) {
	session, err := s.requireSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	user, err := s.gateway.CurrentUser(ctx, session)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load current user")
	}

	return session, user, nil
}

// reload waits for the platform to settle and returns the updated account.
func (s *accountService) reload(ctx context.Context, session *entity.AuthSession) (*entity.AuthenticatedUser, error) {
	if err := settle(ctx, s.settleDelay); err != nil {
		return nil, err
	}
	user, err := s.gateway.CurrentUser(ctx, session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload current user")
	}

	return user, nil
}

func (s *accountService) reservedProvider(email string) (entity.Provider, bool) {
	if !s.enforceDomains || s.policy == nil {
		return "", false
	}

	return s.policy.ReservedProvider(email)
}
