package impl

import (
	"context"
	"testing"

	"firelink/config"
	"firelink/internal/domain/entity"
	domainerrors "firelink/internal/domain/errors"
	"firelink/internal/domain/service"
	mockSvc "firelink/internal/mocks/service"
	mockUsecase "firelink/internal/mocks/usecase"
	"firelink/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const linkEmail = "owner@example.com"

// linkResolverFixtures holds all test dependencies for link resolver tests.
type linkResolverFixtures struct {
	resolver  usecase.LinkResolver
	gateway   *mockSvc.MockIdentityGateway
	selector  *mockUsecase.MockProviderSelector
	navigator *mockSvc.MockNavigator
	notifier  *mockSvc.MockNotifier
	publisher *recordingPublisher
	metrics   *recordingMetrics
	state     *RedirectState
}

func createTestLinkResolver(t *testing.T, trusted entity.Provider) linkResolverFixtures {
	gateway := mockSvc.NewMockIdentityGateway(t)
	selector := mockUsecase.NewMockProviderSelector(t)
	navigator := mockSvc.NewMockNavigator(t)
	notifier := mockSvc.NewMockNotifier(t)
	notifier.EXPECT().ClearErrors(mock.Anything, mock.Anything).Return(nil).Maybe()
	publisher := &recordingPublisher{}
	metrics := &recordingMetrics{}
	state := createTestRedirectState(t)

	cfg := &config.Config{Link: &config.LinkConfig{MaxPasswordRetryCount: 3, TrustedProvider: string(trusted)}}

	resolver := NewLinkResolver(LinkResolverParams{
		Gateway:   gateway,
		State:     state,
		Selector:  selector,
		Navigator: navigator,
		Notifier:  notifier,
		Publisher: publisher,
		Metrics:   metrics,
		Config:    cfg,
		Logger:    discardLogger(),
	})

	return linkResolverFixtures{
		resolver:  resolver,
		gateway:   gateway,
		selector:  selector,
		navigator: navigator,
		notifier:  notifier,
		publisher: publisher,
		metrics:   metrics,
		state:     state,
	}
}

func githubLinkError() *domainerrors.LinkingError {
	return domainerrors.NewLinkingError(linkEmail, githubCredential(linkEmail))
}

func TestLinkResolver_ResolveLink_PasswordSuccess(t *testing.T) {
	fx := createTestLinkResolver(t, "")
	ctx := context.Background()
	linkErr := githubLinkError()
	session := testSession("uid-1", linkEmail)
	linked := testUser("uid-1", linkEmail, "password", "github.com")

	fx.gateway.EXPECT().FetchSignInMethods(ctx, linkEmail).Return([]string{"password"}, nil).Once()
	fx.selector.EXPECT().
		SelectProvider(ctx, entity.Providers{entity.ProviderPassword}, linkEmail, entity.ProviderGitHub, entity.Provider("")).
		Return(&entity.ProviderSelection{LinkProvider: entity.ProviderPassword, Password: "secret1"}, nil).Once()
	fx.gateway.EXPECT().SignInWithPassword(ctx, linkEmail, "secret1").
		Return(&entity.AuthResult{User: testUser("uid-1", linkEmail, "password"), Session: session}, nil).Once()
	fx.gateway.EXPECT().LinkCredentialDirect(ctx, session, linkErr.Credential).
		Return(&entity.AuthResult{User: linked, Session: session}, nil).Once()
	fx.notifier.EXPECT().PushInfos(ctx, "sid", "GitHub is now linked to your account.").Return(nil).Once()

	outcome, err := fx.resolver.ResolveLink(ctx, "sid", linkErr)

	require.NoError(t, err)
	assert.Equal(t, usecase.LinkOutcomeLinked, outcome.Kind)
	assert.Equal(t, linked, outcome.User)
	assert.Zero(t, outcome.PasswordAttempts)
	assert.NotEmpty(t, outcome.CorrelationID)

	stored, err := fx.state.Session(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, session, stored)
	assert.Equal(t, []string{"linked"}, fx.metrics.outcomes)
	assert.Equal(t, []service.LinkEventType{
		service.LinkEventAttemptStarted,
		service.LinkEventPromptShown,
		service.LinkEventLinked,
	}, fx.publisher.types())
}

func TestLinkResolver_ResolveLink_RetryExhausted(t *testing.T) {
	fx := createTestLinkResolver(t, "")
	ctx := context.Background()

	fx.gateway.EXPECT().FetchSignInMethods(ctx, linkEmail).Return([]string{"password"}, nil).Once()
	fx.selector.EXPECT().
		SelectProvider(ctx, mock.Anything, linkEmail, entity.ProviderGitHub, entity.Provider("")).
		Return(&entity.ProviderSelection{LinkProvider: entity.ProviderPassword, Password: "wrong"}, nil).Times(3)
	fx.gateway.EXPECT().SignInWithPassword(ctx, linkEmail, "wrong").
		Return(nil, errors.WithStack(domainerrors.ErrWrongPassword)).Times(3)
	fx.notifier.EXPECT().PushErrors(ctx, "sid", mock.MatchedBy(func(n *domainerrors.Normalized) bool {
		return n.Code == domainerrors.CodeWrongPassword
	})).Return(nil).Times(2)

	outcome, err := fx.resolver.ResolveLink(ctx, "sid", githubLinkError())

	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, domainerrors.ErrExistingProviderSignInFailed)
	assert.Equal(t, []string{"retry_exhausted"}, fx.metrics.outcomes)
	assert.Equal(t, []int{3}, fx.metrics.attempts)

	hasPending, err := fx.state.HasPending(ctx, "sid")
	require.NoError(t, err)
	assert.False(t, hasPending)
}

func TestLinkResolver_ResolveLink_WrongPasswordThenSuccess(t *testing.T) {
	fx := createTestLinkResolver(t, "")
	ctx := context.Background()
	linkErr := githubLinkError()
	session := testSession("uid-1", linkEmail)

	fx.gateway.EXPECT().FetchSignInMethods(ctx, linkEmail).Return([]string{"password"}, nil).Once()
	fx.selector.EXPECT().SelectProvider(ctx, mock.Anything, linkEmail, mock.Anything, mock.Anything).
		Return(&entity.ProviderSelection{LinkProvider: entity.ProviderPassword, Password: "wrong"}, nil).Once()
	fx.selector.EXPECT().SelectProvider(ctx, mock.Anything, linkEmail, mock.Anything, mock.Anything).
		Return(&entity.ProviderSelection{LinkProvider: entity.ProviderPassword, Password: "right1"}, nil).Once()
	fx.gateway.EXPECT().SignInWithPassword(ctx, linkEmail, "wrong").
		Return(nil, errors.WithStack(domainerrors.ErrWrongPassword)).Once()
	fx.gateway.EXPECT().SignInWithPassword(ctx, linkEmail, "right1").
		Return(&entity.AuthResult{Session: session}, nil).Once()
	fx.gateway.EXPECT().LinkCredentialDirect(ctx, session, linkErr.Credential).
		Return(&entity.AuthResult{User: testUser("uid-1", linkEmail, "password", "github.com")}, nil).Once()
	fx.notifier.EXPECT().PushErrors(ctx, "sid", mock.Anything).Return(nil).Once()
	fx.notifier.EXPECT().PushInfos(ctx, "sid", mock.Anything).Return(nil).Once()

	outcome, err := fx.resolver.ResolveLink(ctx, "sid", linkErr)

	require.NoError(t, err)
	assert.Equal(t, 1, outcome.PasswordAttempts)
	assert.Contains(t, fx.publisher.types(), service.LinkEventPasswordFailed)

	stored, err := fx.state.Session(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, session, stored)
}

func TestLinkResolver_ResolveLink_WrongPasswordWarnsBeforeNextPrompt(t *testing.T) {
	fx := createTestLinkResolver(t, "")
	ctx := context.Background()
	var warned *domainerrors.Normalized

	fx.gateway.EXPECT().FetchSignInMethods(ctx, linkEmail).Return([]string{"password"}, nil).Once()
	fx.selector.EXPECT().SelectProvider(ctx, mock.Anything, linkEmail, mock.Anything, mock.Anything).
		Return(&entity.ProviderSelection{LinkProvider: entity.ProviderPassword, Password: "wrong"}, nil).Once()
	fx.gateway.EXPECT().SignInWithPassword(ctx, linkEmail, "wrong").
		Return(nil, errors.WithStack(domainerrors.ErrWrongPassword)).Once()
	fx.notifier.EXPECT().PushErrors(ctx, "sid", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, n ...*domainerrors.Normalized) error {
			warned = n[0]
			return nil
		}).Once()
	fx.selector.EXPECT().SelectProvider(ctx, mock.Anything, linkEmail, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, entity.Providers, string, entity.Provider, entity.Provider) (*entity.ProviderSelection, error) {
			require.NotNil(t, warned, "the warning must be visible when the prompt reopens")
			return nil, nil
		}).Once()

	outcome, err := fx.resolver.ResolveLink(ctx, "sid", githubLinkError())

	assert.Nil(t, outcome)
	_, ok := domainerrors.AsLinkingError(err)
	assert.True(t, ok)
	require.NotNil(t, warned)
	assert.Equal(t, domainerrors.CodeWrongPassword, warned.Code)
	assert.Equal(t, domainerrors.SeverityWarning, warned.Severity)
}

func TestLinkResolver_ResolveLink_FailedAttachLeavesNoSession(t *testing.T) {
	fx := createTestLinkResolver(t, "")
	ctx := context.Background()
	linkErr := githubLinkError()
	session := testSession("uid-1", linkEmail)

	fx.gateway.EXPECT().FetchSignInMethods(ctx, linkEmail).Return([]string{"password"}, nil).Once()
	fx.selector.EXPECT().SelectProvider(ctx, mock.Anything, linkEmail, mock.Anything, mock.Anything).
		Return(&entity.ProviderSelection{LinkProvider: entity.ProviderPassword, Password: "secret1"}, nil).Once()
	fx.gateway.EXPECT().SignInWithPassword(ctx, linkEmail, "secret1").
		Return(&entity.AuthResult{User: testUser("uid-1", linkEmail, "password"), Session: session}, nil).Once()
	fx.gateway.EXPECT().LinkCredentialDirect(ctx, session, linkErr.Credential).
		Return(nil, errors.WithStack(domainerrors.ErrCredentialAlreadyInUse)).Once()

	outcome, err := fx.resolver.ResolveLink(ctx, "sid", linkErr)

	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, domainerrors.ErrCredentialAlreadyInUse)

	stored, err := fx.state.Session(ctx, "sid")
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestLinkResolver_ResolveLink_StoresRefreshedSession(t *testing.T) {
	fx := createTestLinkResolver(t, "")
	ctx := context.Background()
	linkErr := githubLinkError()
	session := testSession("uid-1", linkEmail)
	refreshed := testSession("uid-1", linkEmail)
	refreshed.IDToken = "id-uid-1-linked"

	fx.gateway.EXPECT().FetchSignInMethods(ctx, linkEmail).Return([]string{"password"}, nil).Once()
	fx.selector.EXPECT().SelectProvider(ctx, mock.Anything, linkEmail, mock.Anything, mock.Anything).
		Return(&entity.ProviderSelection{LinkProvider: entity.ProviderPassword, Password: "secret1"}, nil).Once()
	fx.gateway.EXPECT().SignInWithPassword(ctx, linkEmail, "secret1").
		Return(&entity.AuthResult{Session: session}, nil).Once()
	fx.gateway.EXPECT().LinkCredentialDirect(ctx, session, linkErr.Credential).
		Return(&entity.AuthResult{User: testUser("uid-1", linkEmail, "password", "github.com"), Session: refreshed}, nil).Once()
	fx.notifier.EXPECT().PushInfos(ctx, "sid", mock.Anything).Return(nil).Once()

	_, err := fx.resolver.ResolveLink(ctx, "sid", linkErr)
	require.NoError(t, err)

	stored, err := fx.state.Session(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, "id-uid-1-linked", stored.IDToken)
}

func TestLinkResolver_ResolveLink_CredentialAlreadyRegistered(t *testing.T) {
	fx := createTestLinkResolver(t, "")
	ctx := context.Background()

	fx.gateway.EXPECT().FetchSignInMethods(ctx, linkEmail).Return([]string{"password", "github.com"}, nil).Once()

	outcome, err := fx.resolver.ResolveLink(ctx, "sid", githubLinkError())

	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, domainerrors.ErrCredentialAlreadyInUse)
	assert.Equal(t, []string{"already_in_use"}, fx.metrics.outcomes)
}

func TestLinkResolver_ResolveLink_Cancelled(t *testing.T) {
	fx := createTestLinkResolver(t, "")
	ctx := context.Background()
	linkErr := githubLinkError()

	fx.gateway.EXPECT().FetchSignInMethods(ctx, linkEmail).Return([]string{"password"}, nil).Once()
	fx.selector.EXPECT().SelectProvider(ctx, mock.Anything, linkEmail, mock.Anything, mock.Anything).Return(nil, nil).Once()

	outcome, err := fx.resolver.ResolveLink(ctx, "sid", linkErr)

	assert.Nil(t, outcome)
	got, ok := domainerrors.AsLinkingError(err)
	require.True(t, ok)
	assert.Same(t, linkErr, got)
	assert.Equal(t, []string{"cancelled"}, fx.metrics.outcomes)
}

func TestLinkResolver_ResolveLink_ProviderRedirect(t *testing.T) {
	tests := []struct {
		name     string
		provider entity.Provider
		methods  []string
		wantOpts entity.RedirectOptions
	}{
		{
			name:     "google gets a login hint",
			provider: entity.ProviderGoogle,
			methods:  []string{"google.com"},
			wantOpts: entity.RedirectOptions{LoginHint: linkEmail},
		},
		{
			name:     "facebook gets no hint",
			provider: entity.ProviderFacebook,
			methods:  []string{"facebook.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestLinkResolver(t, "")
			ctx := context.Background()
			linkErr := githubLinkError()
			handshake := &entity.ProviderHandshake{State: "state-1", Provider: tt.provider, Mode: entity.HandshakeModeSignIn, AuthURL: "https://provider.example.com/auth"}

			fx.gateway.EXPECT().FetchSignInMethods(ctx, linkEmail).Return(tt.methods, nil).Once()
			fx.selector.EXPECT().SelectProvider(ctx, mock.Anything, linkEmail, mock.Anything, mock.Anything).
				Return(&entity.ProviderSelection{LinkProvider: tt.provider}, nil).Once()
			fx.gateway.EXPECT().SignInWithRedirect(ctx, tt.provider, tt.wantOpts).Return(handshake, nil).Once()
			var (
				pendingAtNavigate   bool
				handshakeAtNavigate *entity.ProviderHandshake
			)
			fx.navigator.EXPECT().Navigate(ctx, handshake.AuthURL).
				RunAndReturn(func(ctx context.Context, _ string) error {
					var err error
					if pendingAtNavigate, err = fx.state.HasPending(ctx, "sid"); err != nil {
						return err
					}
					handshakeAtNavigate, err = fx.state.TakeHandshake(ctx, "sid")

					return err
				}).Once()

			outcome, err := fx.resolver.ResolveLink(ctx, "sid", linkErr)

			require.NoError(t, err)
			assert.Equal(t, usecase.LinkOutcomeRedirecting, outcome.Kind)
			assert.True(t, pendingAtNavigate)
			assert.Equal(t, handshake, handshakeAtNavigate)

			pending, err := fx.state.TakePending(ctx, "sid")
			require.NoError(t, err)
			require.NotNil(t, pending)
			assert.Equal(t, linkEmail, pending.Email)
			assert.Equal(t, linkErr.Credential, pending.Credential)
			assert.Equal(t, outcome.CorrelationID, pending.CorrelationID)
		})
	}
}

func TestLinkResolver_ResolveLink_PasswordSurvivesRedirect(t *testing.T) {
	fx := createTestLinkResolver(t, "")
	ctx := context.Background()
	linkErr := domainerrors.NewLinkingError(linkEmail, entity.NewPasswordCredential(linkEmail, "new-secret"))
	linkErr.Password = "new-secret"
	handshake := &entity.ProviderHandshake{State: "s", Provider: entity.ProviderGoogle, AuthURL: "https://accounts.google.com/o/oauth2/auth"}

	fx.gateway.EXPECT().FetchSignInMethods(ctx, linkEmail).Return([]string{"google.com"}, nil).Once()
	fx.selector.EXPECT().SelectProvider(ctx, entity.Providers{entity.ProviderGoogle}, linkEmail, entity.ProviderPassword, mock.Anything).
		Return(&entity.ProviderSelection{LinkProvider: entity.ProviderGoogle}, nil).Once()
	fx.gateway.EXPECT().SignInWithRedirect(ctx, entity.ProviderGoogle, mock.Anything).Return(handshake, nil).Once()
	fx.navigator.EXPECT().Navigate(ctx, handshake.AuthURL).
		RunAndReturn(func(ctx context.Context, _ string) error {
			hasPending, err := fx.state.HasPending(ctx, "sid")
			require.NoError(t, err)
			assert.True(t, hasPending, "pending credential must be stored before navigation")

			return nil
		}).Once()

	_, err := fx.resolver.ResolveLink(ctx, "sid", linkErr)
	require.NoError(t, err)

	pending, err := fx.state.TakePending(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, "new-secret", pending.Password)
	assert.Equal(t, entity.ProviderPassword, pending.Credential.Provider())
}

func TestLinkResolver_ResolveLink_OtherSignInErrorIsRethrown(t *testing.T) {
	fx := createTestLinkResolver(t, "")
	ctx := context.Background()

	fx.gateway.EXPECT().FetchSignInMethods(ctx, linkEmail).Return([]string{"password"}, nil).Once()
	fx.selector.EXPECT().SelectProvider(ctx, mock.Anything, linkEmail, mock.Anything, mock.Anything).
		Return(&entity.ProviderSelection{LinkProvider: entity.ProviderPassword, Password: "secret1"}, nil).Once()
	fx.gateway.EXPECT().SignInWithPassword(ctx, linkEmail, "secret1").
		Return(nil, errors.WithStack(domainerrors.ErrUserDisabled)).Once()

	_, err := fx.resolver.ResolveLink(ctx, "sid", githubLinkError())

	assert.ErrorIs(t, err, domainerrors.ErrUserDisabled)
	assert.Equal(t, []string{"failed"}, fx.metrics.outcomes)
	assert.Contains(t, fx.publisher.types(), service.LinkEventFailed)
}

func TestLinkResolver_ResolveLink_UnknownProvider(t *testing.T) {
	fx := createTestLinkResolver(t, "")
	ctx := context.Background()

	fx.gateway.EXPECT().FetchSignInMethods(ctx, linkEmail).Return([]string{"saml.corp"}, nil).Once()
	fx.selector.EXPECT().SelectProvider(ctx, entity.Providers{entity.ProviderUnknown}, linkEmail, mock.Anything, mock.Anything).
		Return(&entity.ProviderSelection{LinkProvider: entity.ProviderUnknown}, nil).Once()

	_, err := fx.resolver.ResolveLink(ctx, "sid", githubLinkError())

	assert.ErrorIs(t, err, domainerrors.ErrUnknownProvider)
}

func TestLinkResolver_ResolveLink_PassesTrustedProvider(t *testing.T) {
	fx := createTestLinkResolver(t, entity.ProviderGoogle)
	ctx := context.Background()

	fx.gateway.EXPECT().FetchSignInMethods(ctx, linkEmail).Return([]string{"password", "google.com"}, nil).Once()
	fx.selector.EXPECT().
		SelectProvider(ctx, entity.Providers{entity.ProviderPassword, entity.ProviderGoogle}, linkEmail, entity.ProviderGitHub, entity.ProviderGoogle).
		Return(nil, nil).Once()

	_, err := fx.resolver.ResolveLink(ctx, "sid", githubLinkError())

	assert.ErrorIs(t, err, domainerrors.ErrAccountExistsWithDifferentCredential)
}

func TestLinkResolver_ResolveLink_FetchMethodsFails(t *testing.T) {
	fx := createTestLinkResolver(t, "")
	ctx := context.Background()

	fx.gateway.EXPECT().FetchSignInMethods(ctx, linkEmail).Return(nil, errors.WithStack(domainerrors.ErrTooManyRequests)).Once()

	_, err := fx.resolver.ResolveLink(ctx, "sid", githubLinkError())

	assert.ErrorIs(t, err, domainerrors.ErrTooManyRequests)
}
