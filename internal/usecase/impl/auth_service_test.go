package impl

import (
	"context"
	"testing"

	"firelink/config"
	"firelink/internal/domain/entity"
	domainerrors "firelink/internal/domain/errors"
	mockSvc "firelink/internal/mocks/service"
	mockUsecase "firelink/internal/mocks/usecase"
	"firelink/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const authSID = "sid-auth"

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service   usecase.AuthUsecase
	gateway   *mockSvc.MockIdentityGateway
	resolver  *mockUsecase.MockLinkResolver
	navigator *mockSvc.MockNavigator
	notifier  *mockSvc.MockNotifier
	policy    *mockSvc.MockEmailDomainPolicy
	state     *RedirectState
}

func createTestAuthService(t *testing.T, link *config.LinkConfig) authServiceFixtures {
	gateway := mockSvc.NewMockIdentityGateway(t)
	resolver := mockUsecase.NewMockLinkResolver(t)
	navigator := mockSvc.NewMockNavigator(t)
	notifier := mockSvc.NewMockNotifier(t)
	notifier.EXPECT().PushInfos(mock.Anything, authSID, mock.Anything).Return(nil).Maybe()
	policy := mockSvc.NewMockEmailDomainPolicy(t)
	state := createTestRedirectState(t)

	if link == nil {
		link = &config.LinkConfig{EnforceReservedDomains: true}
	}

	svc := NewAuthService(AuthServiceParams{
		Gateway:   gateway,
		State:     state,
		Resolver:  resolver,
		Navigator: navigator,
		Policy:    policy,
		Notifier:  notifier,
		Publisher: &recordingPublisher{},
		Metrics:   &recordingMetrics{},
		Config:    &config.Config{Link: link},
		Logger:    discardLogger(),
	})

	return authServiceFixtures{
		service:   svc,
		gateway:   gateway,
		resolver:  resolver,
		navigator: navigator,
		notifier:  notifier,
		policy:    policy,
		state:     state,
	}
}

func TestAuthService_SignIn_Password(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()
	session := testSession("uid-1", "a@example.com")
	user := testUser("uid-1", "a@example.com", "password")

	fx.gateway.EXPECT().SignInWithPassword(ctx, "a@example.com", "secret1").
		Return(&entity.AuthResult{User: user, Session: session}, nil).Once()

	output, err := fx.service.SignIn(ctx, usecase.SignInInput{
		SessionID: authSID, Provider: entity.ProviderPassword, Email: "a@example.com", Password: "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.AuthOutcomeSignedIn, output.Outcome)
	assert.Equal(t, user, output.User)

	stored, err := fx.state.Session(ctx, authSID)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", stored.UID)
	assert.False(t, stored.SignedInAt.IsZero())
}

func TestAuthService_SignIn_WrongPasswordIsReported(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()

	fx.gateway.EXPECT().SignInWithPassword(ctx, "a@example.com", "bad").
		Return(nil, errors.WithStack(domainerrors.ErrWrongPassword)).Once()
	fx.notifier.EXPECT().PushErrors(ctx, authSID, mock.MatchedBy(func(n *domainerrors.Normalized) bool {
		return n.Code == domainerrors.CodeWrongPassword && n.Severity == domainerrors.SeverityWarning
	})).Return(nil).Once()

	_, err := fx.service.SignIn(ctx, usecase.SignInInput{
		SessionID: authSID, Provider: entity.ProviderPassword, Email: "a@example.com", Password: "bad",
	})

	assert.ErrorIs(t, err, domainerrors.ErrWrongPassword)
}

func TestAuthService_SignIn_FederatedRedirect(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()
	handshake := &entity.ProviderHandshake{State: "s1", Provider: entity.ProviderGitHub, AuthURL: "https://github.com/login/oauth/authorize?state=s1"}

	fx.gateway.EXPECT().SignInWithRedirect(ctx, entity.ProviderGitHub, entity.RedirectOptions{}).Return(handshake, nil).Once()
	// Redirect state must be durable before the page leaves.
	var (
		flagsAtNavigate     entity.SessionFlags
		intentAtNavigate    *entity.RedirectIntent
		handshakeAtNavigate *entity.ProviderHandshake
	)
	fx.navigator.EXPECT().Navigate(ctx, handshake.AuthURL).
		RunAndReturn(func(ctx context.Context, _ string) error {
			var err error
			if flagsAtNavigate, err = fx.state.Flags(ctx, authSID); err != nil {
				return err
			}
			if intentAtNavigate, err = fx.state.TakeIntent(ctx, authSID); err != nil {
				return err
			}
			handshakeAtNavigate, err = fx.state.TakeHandshake(ctx, authSID)

			return err
		}).Once()

	output, err := fx.service.SignIn(ctx, usecase.SignInInput{SessionID: authSID, Provider: entity.ProviderGitHub})

	require.NoError(t, err)
	assert.Equal(t, usecase.AuthOutcomeRedirecting, output.Outcome)
	assert.True(t, flagsAtNavigate.OngoingSignIn)
	assert.Equal(t, &entity.RedirectIntent{Action: entity.AuthActionSignIn, Provider: entity.ProviderGitHub}, intentAtNavigate)
	assert.Equal(t, handshake, handshakeAtNavigate)
}

func TestAuthService_SignIn_InvalidProvider(t *testing.T) {
	tests := []struct {
		name     string
		provider entity.Provider
		wantErr  error
	}{
		{name: "unknown", provider: entity.ProviderUnknown, wantErr: domainerrors.ErrUnknownProvider},
		{name: "unsupported", provider: entity.Provider("Myspace"), wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t, nil)
			fx.notifier.EXPECT().PushErrors(mock.Anything, authSID, mock.Anything).Return(nil).Once()

			_, err := fx.service.SignIn(context.Background(), usecase.SignInInput{SessionID: authSID, Provider: tt.provider})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_SignUp_Password(t *testing.T) {
	fx := createTestAuthService(t, &config.LinkConfig{EnforceReservedDomains: true, EmailVerificationRequired: true})
	ctx := context.Background()
	session := testSession("uid-new", "new@example.com")

	fx.policy.EXPECT().ReservedProvider("new@example.com").Return(entity.Provider(""), false).Once()
	fx.gateway.EXPECT().CreateAccountWithPassword(ctx, "new@example.com", "secret1").
		Return(&entity.AuthResult{User: testUser("uid-new", "new@example.com", "password"), Session: session, IsNewUser: true}, nil).Once()
	fx.gateway.EXPECT().SendEmailVerification(ctx, session).Return(nil).Once()

	output, err := fx.service.SignUp(ctx, usecase.SignUpInput{
		SessionID: authSID, Provider: entity.ProviderPassword, Email: "new@example.com", Password: "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.AuthOutcomeSignedIn, output.Outcome)
}

func TestAuthService_SignUp_SetsDisplayName(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()
	session := testSession("uid-new", "new@example.com")
	reloaded := testUser("uid-new", "new@example.com", "password")
	reloaded.DisplayName = "New User"

	fx.policy.EXPECT().ReservedProvider("new@example.com").Return(entity.Provider(""), false).Once()
	fx.gateway.EXPECT().CreateAccountWithPassword(ctx, "new@example.com", "secret1").
		Return(&entity.AuthResult{User: testUser("uid-new", "new@example.com", "password"), Session: session, IsNewUser: true}, nil).Once()
	fx.gateway.EXPECT().UpdateProfile(ctx, session, mock.MatchedBy(func(update entity.ProfileUpdate) bool {
		return update.DisplayName != nil && *update.DisplayName == "New User" && update.PhotoURL == nil
	})).Return(nil).Once()
	fx.gateway.EXPECT().CurrentUser(ctx, session).Return(reloaded, nil).Once()

	output, err := fx.service.SignUp(ctx, usecase.SignUpInput{
		SessionID: authSID, Provider: entity.ProviderPassword, Email: "new@example.com", Password: "secret1", DisplayName: " New User ",
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.AuthOutcomeSignedIn, output.Outcome)
	assert.Equal(t, "New User", output.User.DisplayName)
}

func TestAuthService_SignUp_DisplayNameFailure(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()
	session := testSession("uid-new", "new@example.com")

	fx.policy.EXPECT().ReservedProvider("new@example.com").Return(entity.Provider(""), false).Once()
	fx.gateway.EXPECT().CreateAccountWithPassword(ctx, "new@example.com", "secret1").
		Return(&entity.AuthResult{User: testUser("uid-new", "new@example.com", "password"), Session: session, IsNewUser: true}, nil).Once()
	fx.gateway.EXPECT().UpdateProfile(ctx, session, mock.Anything).
		Return(errors.WithStack(domainerrors.ErrTooManyRequests)).Once()
	fx.notifier.EXPECT().PushErrors(ctx, authSID, mock.Anything).Return(nil).Once()

	_, err := fx.service.SignUp(ctx, usecase.SignUpInput{
		SessionID: authSID, Provider: entity.ProviderPassword, Email: "new@example.com", Password: "secret1", DisplayName: "New User",
	})

	assert.ErrorIs(t, err, domainerrors.ErrTooManyRequests)
}

func TestAuthService_SignUp_ReservedDomain(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()

	fx.policy.EXPECT().ReservedProvider("someone@gmail.com").Return(entity.ProviderGoogle, true).Once()
	fx.notifier.EXPECT().PushErrors(ctx, authSID, mock.Anything).Return(nil).Once()

	_, err := fx.service.SignUp(ctx, usecase.SignUpInput{
		SessionID: authSID, Provider: entity.ProviderPassword, Email: "someone@gmail.com", Password: "secret1",
	})

	assert.ErrorIs(t, err, domainerrors.ErrReservedEmailDomain)
}

func TestAuthService_SignUp_ExistingEmailStartsLinking(t *testing.T) {
	fx := createTestAuthService(t, &config.LinkConfig{})
	ctx := context.Background()
	linked := testUser("uid-1", linkEmail, "google.com", "password")

	fx.gateway.EXPECT().CreateAccountWithPassword(ctx, linkEmail, "secret1").
		Return(nil, errors.WithStack(domainerrors.ErrEmailAlreadyInUse)).Once()
	fx.resolver.EXPECT().ResolveLink(ctx, authSID, mock.MatchedBy(func(linkErr *domainerrors.LinkingError) bool {
		return linkErr.Email == linkEmail &&
			linkErr.Password == "secret1" &&
			linkErr.PendingProvider() == entity.ProviderPassword
	})).Return(&usecase.LinkOutcome{Kind: usecase.LinkOutcomeLinked, User: linked}, nil).Once()

	output, err := fx.service.SignUp(ctx, usecase.SignUpInput{
		SessionID: authSID, Provider: entity.ProviderPassword, Email: linkEmail, Password: "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.AuthOutcomeLinked, output.Outcome)
	assert.Equal(t, linked, output.User)
}

func TestAuthService_SignUp_LinkingCancelled(t *testing.T) {
	fx := createTestAuthService(t, &config.LinkConfig{})
	ctx := context.Background()

	fx.gateway.EXPECT().CreateAccountWithPassword(ctx, linkEmail, "secret1").
		Return(nil, errors.WithStack(domainerrors.ErrEmailAlreadyInUse)).Once()
	fx.resolver.EXPECT().ResolveLink(ctx, authSID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, linkErr *domainerrors.LinkingError) (*usecase.LinkOutcome, error) {
			return nil, linkErr
		}).Once()
	fx.notifier.EXPECT().PushErrors(ctx, authSID, mock.MatchedBy(func(n *domainerrors.Normalized) bool {
		return n.Code == domainerrors.CodeAccountExistsWithDifferentCredential
	})).Return(nil).Once()

	_, err := fx.service.SignUp(ctx, usecase.SignUpInput{
		SessionID: authSID, Provider: entity.ProviderPassword, Email: linkEmail, Password: "secret1",
	})

	assert.ErrorIs(t, err, domainerrors.ErrAccountExistsWithDifferentCredential)

	flags, err := fx.state.Flags(ctx, authSID)
	require.NoError(t, err)
	assert.True(t, flags.ForceSignOut)
}

func TestAuthService_SignUp_LinkFailureForcesSignOut(t *testing.T) {
	fx := createTestAuthService(t, &config.LinkConfig{})
	ctx := context.Background()
	reauthenticated := testSession("uid-1", linkEmail)

	fx.gateway.EXPECT().CreateAccountWithPassword(ctx, linkEmail, "secret1").
		Return(nil, errors.WithStack(domainerrors.ErrEmailAlreadyInUse)).Once()
	fx.resolver.EXPECT().ResolveLink(ctx, authSID, mock.Anything).
		RunAndReturn(func(ctx context.Context, sessionID string, _ *domainerrors.LinkingError) (*usecase.LinkOutcome, error) {
			if err := fx.state.SaveSession(ctx, sessionID, reauthenticated); err != nil {
				return nil, err
			}

			return nil, errors.WithStack(domainerrors.ErrCredentialAlreadyInUse)
		}).Once()
	fx.gateway.EXPECT().SignOut(ctx, mock.MatchedBy(func(session *entity.AuthSession) bool {
		return session.UID == "uid-1"
	})).Return(nil).Once()
	fx.notifier.EXPECT().PushErrors(ctx, authSID, mock.Anything).Return(nil).Once()

	_, err := fx.service.SignUp(ctx, usecase.SignUpInput{
		SessionID: authSID, Provider: entity.ProviderPassword, Email: linkEmail, Password: "secret1",
	})

	assert.ErrorIs(t, err, domainerrors.ErrCredentialAlreadyInUse)

	stored, err := fx.state.Session(ctx, authSID)
	require.NoError(t, err)
	assert.Nil(t, stored)

	flags, err := fx.state.Flags(ctx, authSID)
	require.NoError(t, err)
	assert.True(t, flags.ForceSignOut)
	assert.False(t, flags.OngoingSignIn)
}

func TestAuthService_SignOut(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()
	session := testSession("uid-1", "a@example.com")
	require.NoError(t, fx.state.SaveSession(ctx, authSID, session))
	require.NoError(t, fx.state.SetOngoingSignIn(ctx, authSID, true))

	fx.gateway.EXPECT().SignOut(ctx, session).Return(errors.New("revoke failed")).Once()

	require.NoError(t, fx.service.SignOut(ctx, authSID))

	stored, err := fx.state.Session(ctx, authSID)
	require.NoError(t, err)
	assert.Nil(t, stored)

	flags, err := fx.state.Flags(ctx, authSID)
	require.NoError(t, err)
	assert.Equal(t, entity.SessionFlags{}, flags)
}
