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

const completionSID = "sid-completion"

// completionFixtures holds all test dependencies for redirect completion tests.
type completionFixtures struct {
	completion usecase.RedirectCompletion
	gateway    *mockSvc.MockIdentityGateway
	resolver   *mockUsecase.MockLinkResolver
	navigator  *mockSvc.MockNavigator
	notifier   *mockSvc.MockNotifier
	policy     *mockSvc.MockEmailDomainPolicy
	publisher  *recordingPublisher
	metrics    *recordingMetrics
	state      *RedirectState
}

func createTestRedirectCompletion(t *testing.T) completionFixtures {
	gateway := mockSvc.NewMockIdentityGateway(t)
	resolver := mockUsecase.NewMockLinkResolver(t)
	navigator := mockSvc.NewMockNavigator(t)
	notifier := mockSvc.NewMockNotifier(t)
	notifier.EXPECT().PushInfos(mock.Anything, completionSID, mock.Anything).Return(nil).Maybe()
	policy := mockSvc.NewMockEmailDomainPolicy(t)
	publisher := &recordingPublisher{}
	metrics := &recordingMetrics{}
	state := createTestRedirectState(t)

	completion := NewRedirectCompletion(RedirectCompletionParams{
		Gateway:   gateway,
		State:     state,
		Resolver:  resolver,
		Navigator: navigator,
		Policy:    policy,
		Notifier:  notifier,
		Publisher: publisher,
		Metrics:   metrics,
		Config:    &config.Config{Link: &config.LinkConfig{EnforceReservedDomains: true}},
		Logger:    discardLogger(),
	})

	return completionFixtures{
		completion: completion,
		gateway:    gateway,
		resolver:   resolver,
		navigator:  navigator,
		notifier:   notifier,
		policy:     policy,
		publisher:  publisher,
		metrics:    metrics,
		state:      state,
	}
}

func (fx completionFixtures) seedHandshake(t *testing.T, provider entity.Provider) *entity.ProviderHandshake {
	t.Helper()

	handshake := &entity.ProviderHandshake{State: "state-" + string(provider), Provider: provider, Mode: entity.HandshakeModeSignIn}
	require.NoError(t, fx.state.WriteHandshake(context.Background(), completionSID, handshake))
	require.NoError(t, fx.state.SetOngoingSignIn(context.Background(), completionSID, true))

	return handshake
}

func (fx completionFixtures) seedIntent(t *testing.T, action entity.AuthAction, provider entity.Provider) {
	t.Helper()

	require.NoError(t, fx.state.WriteIntent(context.Background(), completionSID, &entity.RedirectIntent{Action: action, Provider: provider}))
}

func (fx completionFixtures) seedPending(t *testing.T, pending *entity.PendingCredential) {
	t.Helper()

	require.NoError(t, fx.state.WritePending(context.Background(), completionSID, pending))
}

// expectReport asserts one error notice with the given code.
func (fx completionFixtures) expectReport(code string) {
	fx.notifier.EXPECT().PushErrors(mock.Anything, completionSID, mock.MatchedBy(func(n *domainerrors.Normalized) bool {
		return n.Code == code
	})).Return(nil).Once()
}

func (fx completionFixtures) flags(t *testing.T) entity.SessionFlags {
	t.Helper()

	flags, err := fx.state.Flags(context.Background(), completionSID)
	require.NoError(t, err)

	return flags
}

func (fx completionFixtures) session(t *testing.T) *entity.AuthSession {
	t.Helper()

	session, err := fx.state.Session(context.Background(), completionSID)
	require.NoError(t, err)

	return session
}

func callbackInput() usecase.CompletionInput {
	return usecase.CompletionInput{SessionID: completionSID, Callback: entity.RedirectCallback{Code: "code", State: "state"}}
}

func TestRedirectCompletion_Complete_NoRedirectIsNoOp(t *testing.T) {
	fx := createTestRedirectCompletion(t)

	output, err := fx.completion.Complete(context.Background(), callbackInput())

	require.NoError(t, err)
	assert.Equal(t, usecase.CompletionNoOp, output.Kind)
	assert.Equal(t, []string{"noop"}, fx.metrics.completions)
}

func TestRedirectCompletion_Complete_SecondCallIsNoOp(t *testing.T) {
	fx := createTestRedirectCompletion(t)
	ctx := context.Background()
	fx.seedHandshake(t, entity.ProviderGoogle)
	fx.seedIntent(t, entity.AuthActionSignIn, entity.ProviderGoogle)
	session := testSession("uid-1", "a@example.com")

	fx.gateway.EXPECT().GetRedirectResult(ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(&entity.AuthResult{User: testUser("uid-1", "a@example.com", "google.com"), Session: session, ProviderID: entity.ProviderIDGoogle}, nil).Once()

	first, err := fx.completion.Complete(ctx, callbackInput())
	require.NoError(t, err)
	assert.Equal(t, usecase.CompletionSignedIn, first.Kind)

	second, err := fx.completion.Complete(ctx, callbackInput())
	require.NoError(t, err)
	assert.Equal(t, usecase.CompletionNoOp, second.Kind)

	assert.Equal(t, session, fx.session(t))
	assert.Equal(t, entity.SessionFlags{}, fx.flags(t))
}

func TestRedirectCompletion_Complete_OrphanIntentIsDiscarded(t *testing.T) {
	fx := createTestRedirectCompletion(t)
	fx.seedIntent(t, entity.AuthActionSignIn, entity.ProviderGoogle)
	require.NoError(t, fx.state.SetOngoingSignIn(context.Background(), completionSID, true))

	output, err := fx.completion.Complete(context.Background(), callbackInput())

	require.NoError(t, err)
	assert.Equal(t, usecase.CompletionNoOp, output.Kind)
	assert.False(t, fx.flags(t).OngoingSignIn)

	intent, err := fx.state.TakeIntent(context.Background(), completionSID)
	require.NoError(t, err)
	assert.Nil(t, intent)
}

func TestRedirectCompletion_Complete_PendingEmailMismatch(t *testing.T) {
	fx := createTestRedirectCompletion(t)
	ctx := context.Background()
	fx.seedHandshake(t, entity.ProviderGoogle)
	fx.seedPending(t, &entity.PendingCredential{Email: linkEmail, Credential: githubCredential(linkEmail), CorrelationID: "corr-1"})
	stranger := testSession("uid-new", "other@example.com")

	fx.gateway.EXPECT().GetRedirectResult(ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(&entity.AuthResult{User: testUser("uid-new", "other@example.com", "google.com"), Session: stranger, IsNewUser: true}, nil).Once()
	fx.gateway.EXPECT().DeleteUser(ctx, "uid-new").Return(nil).Once()
	fx.expectReport(domainerrors.CodeAccountEmailMismatch)

	output, err := fx.completion.Complete(ctx, callbackInput())

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountEmailMismatch)
	assert.Equal(t, []string{"email_mismatch"}, fx.metrics.rollbacks)
	assert.Equal(t, []string{"failed"}, fx.metrics.completions)
	assert.True(t, fx.flags(t).ForceSignOut)
	assert.Nil(t, fx.session(t))
	assert.Contains(t, fx.publisher.types(), service.LinkEventRolledBack)

	for _, event := range fx.publisher.events {
		assert.Equal(t, "corr-1", event.CorrelationID)
	}
}

func TestRedirectCompletion_Complete_PendingEmailMismatchKeepsExistingAccount(t *testing.T) {
	fx := createTestRedirectCompletion(t)
	ctx := context.Background()
	fx.seedHandshake(t, entity.ProviderGoogle)
	fx.seedPending(t, &entity.PendingCredential{Email: linkEmail, Credential: githubCredential(linkEmail)})

	fx.gateway.EXPECT().GetRedirectResult(ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(&entity.AuthResult{User: testUser("uid-2", "other@example.com", "google.com"), Session: testSession("uid-2", "other@example.com")}, nil).Once()
	fx.expectReport(domainerrors.CodeAccountEmailMismatch)

	_, err := fx.completion.Complete(ctx, callbackInput())

	assert.ErrorIs(t, err, domainerrors.ErrAccountEmailMismatch)
	assert.Empty(t, fx.metrics.rollbacks)
}

func TestRedirectCompletion_Complete_PendingFederatedLink(t *testing.T) {
	fx := createTestRedirectCompletion(t)
	ctx := context.Background()
	fx.seedHandshake(t, entity.ProviderGoogle)
	pendingCredential := githubCredential(linkEmail)
	fx.seedPending(t, &entity.PendingCredential{Email: linkEmail, Credential: pendingCredential, CorrelationID: "corr-2"})
	session := testSession("uid-1", linkEmail)
	linked := testUser("uid-1", linkEmail, "google.com", "github.com")

	fx.gateway.EXPECT().GetRedirectResult(ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(&entity.AuthResult{User: testUser("uid-1", "Owner@Example.com ", "google.com"), Session: session}, nil).Once()
	fx.gateway.EXPECT().LinkCredentialDirect(ctx, session, pendingCredential).
		Return(&entity.AuthResult{User: linked, Session: session}, nil).Once()

	output, err := fx.completion.Complete(ctx, callbackInput())

	require.NoError(t, err)
	assert.Equal(t, usecase.CompletionLinked, output.Kind)
	assert.Equal(t, linked, output.User)
	assert.Equal(t, session, fx.session(t))
	assert.False(t, fx.flags(t).OngoingSignIn)
	assert.Equal(t, []service.LinkEventType{service.LinkEventLinked, service.LinkEventRedirectComplete}, fx.publisher.types())
}

func TestRedirectCompletion_Complete_PendingPasswordSetsPassword(t *testing.T) {
	fx := createTestRedirectCompletion(t)
	ctx := context.Background()
	fx.seedHandshake(t, entity.ProviderGoogle)
	fx.seedPending(t, &entity.PendingCredential{
		Email:      linkEmail,
		Password:   "new-secret",
		Credential: entity.NewPasswordCredential(linkEmail, "new-secret"),
	})
	session := testSession("uid-1", linkEmail)
	user := testUser("uid-1", linkEmail, "google.com")

	fx.gateway.EXPECT().GetRedirectResult(ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(&entity.AuthResult{User: user, Session: session}, nil).Once()
	fx.gateway.EXPECT().UpdatePassword(ctx, session, "new-secret").Return(nil).Once()

	output, err := fx.completion.Complete(ctx, callbackInput())

	require.NoError(t, err)
	assert.Equal(t, usecase.CompletionLinked, output.Kind)
	assert.Equal(t, user, output.User)
}

func TestRedirectCompletion_Complete_ExpiredPendingFallsBackToRedirect(t *testing.T) {
	fx := createTestRedirectCompletion(t)
	ctx := context.Background()
	fx.seedHandshake(t, entity.ProviderGoogle)
	pendingCredential := githubCredential(linkEmail)
	fx.seedPending(t, &entity.PendingCredential{Email: linkEmail, Credential: pendingCredential})
	session := testSession("uid-1", linkEmail)
	relink := &entity.ProviderHandshake{State: "relink", Provider: entity.ProviderGitHub, Mode: entity.HandshakeModeLink, AuthURL: "https://github.com/login/oauth/authorize"}

	fx.gateway.EXPECT().GetRedirectResult(ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(&entity.AuthResult{User: testUser("uid-1", linkEmail, "google.com"), Session: session}, nil).Once()
	fx.gateway.EXPECT().LinkCredentialDirect(ctx, session, pendingCredential).
		Return(nil, errors.WithStack(domainerrors.ErrInvalidIDPResponse)).Once()
	fx.gateway.EXPECT().LinkCredentialWithRedirect(ctx, session, entity.ProviderGitHub).Return(relink, nil).Once()
	var (
		ongoingAtNavigate   bool
		intentAtNavigate    *entity.RedirectIntent
		handshakeAtNavigate *entity.ProviderHandshake
	)
	fx.navigator.EXPECT().Navigate(ctx, relink.AuthURL).
		RunAndReturn(func(ctx context.Context, _ string) error {
			ongoingAtNavigate = fx.flags(t).OngoingSignIn

			var err error
			if intentAtNavigate, err = fx.state.TakeIntent(ctx, completionSID); err != nil {
				return err
			}
			handshakeAtNavigate, err = fx.state.TakeHandshake(ctx, completionSID)

			return err
		}).Once()

	output, err := fx.completion.Complete(ctx, callbackInput())

	require.NoError(t, err)
	assert.Equal(t, usecase.CompletionRedirecting, output.Kind)
	assert.True(t, ongoingAtNavigate)
	assert.Equal(t, &entity.RedirectIntent{Action: entity.AuthActionAddLink, Provider: entity.ProviderGitHub}, intentAtNavigate)
	assert.Equal(t, relink, handshakeAtNavigate)
}

func TestRedirectCompletion_Complete_SignInCreatedAccountIsRolledBack(t *testing.T) {
	fx := createTestRedirectCompletion(t)
	ctx := context.Background()
	fx.seedHandshake(t, entity.ProviderGoogle)
	fx.seedIntent(t, entity.AuthActionSignIn, entity.ProviderGoogle)
	session := testSession("uid-new", "new@example.com")

	fx.gateway.EXPECT().GetRedirectResult(ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(&entity.AuthResult{User: testUser("uid-new", "new@example.com", "google.com"), Session: session, IsNewUser: true}, nil).Once()
	fx.gateway.EXPECT().DeleteUser(ctx, "uid-new").Return(nil).Once()
	fx.expectReport(domainerrors.CodeUserNotFound)

	output, err := fx.completion.Complete(ctx, callbackInput())

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Equal(t, []string{"unintended_sign_up"}, fx.metrics.rollbacks)
	assert.Nil(t, fx.session(t))
	assert.Equal(t, entity.SessionFlags{ForceSignOut: true}, fx.flags(t))
}

func TestRedirectCompletion_Complete_SignUpWithExistingAccount(t *testing.T) {
	fx := createTestRedirectCompletion(t)
	ctx := context.Background()
	fx.seedHandshake(t, entity.ProviderGitHub)
	fx.seedIntent(t, entity.AuthActionSignUp, entity.ProviderGitHub)

	fx.gateway.EXPECT().GetRedirectResult(ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(&entity.AuthResult{User: testUser("uid-1", "a@example.com", "github.com"), Session: testSession("uid-1", "a@example.com")}, nil).Once()
	fx.expectReport(domainerrors.CodeEmailAlreadyInUse)

	_, err := fx.completion.Complete(ctx, callbackInput())

	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyInUse)
	assert.Empty(t, fx.metrics.rollbacks)
	assert.True(t, fx.flags(t).ForceSignOut)
}

func TestRedirectCompletion_Complete_SignUpReservedDomain(t *testing.T) {
	fx := createTestRedirectCompletion(t)
	ctx := context.Background()
	fx.seedHandshake(t, entity.ProviderGitHub)
	fx.seedIntent(t, entity.AuthActionSignUp, entity.ProviderGitHub)

	fx.gateway.EXPECT().GetRedirectResult(ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(&entity.AuthResult{
			User:       testUser("uid-new", "someone@gmail.com", "github.com"),
			Session:    testSession("uid-new", "someone@gmail.com"),
			IsNewUser:  true,
			ProviderID: entity.ProviderIDGitHub,
		}, nil).Once()
	fx.policy.EXPECT().ReservedProvider("someone@gmail.com").Return(entity.ProviderGoogle, true).Once()
	fx.gateway.EXPECT().DeleteUser(ctx, "uid-new").Return(nil).Once()
	fx.expectReport(domainerrors.CodeReservedEmailDomain)

	_, err := fx.completion.Complete(ctx, callbackInput())

	assert.ErrorIs(t, err, domainerrors.ErrReservedEmailDomain)
	assert.Equal(t, []string{"reserved_domain"}, fx.metrics.rollbacks)
}

func TestRedirectCompletion_Complete_SignUpNewAccount(t *testing.T) {
	fx := createTestRedirectCompletion(t)
	ctx := context.Background()
	fx.seedHandshake(t, entity.ProviderGoogle)
	fx.seedIntent(t, entity.AuthActionSignUp, entity.ProviderGoogle)
	session := testSession("uid-new", "someone@gmail.com")

	fx.gateway.EXPECT().GetRedirectResult(ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(&entity.AuthResult{
			User:       testUser("uid-new", "someone@gmail.com", "google.com"),
			Session:    session,
			IsNewUser:  true,
			ProviderID: entity.ProviderIDGoogle,
		}, nil).Once()
	fx.policy.EXPECT().ReservedProvider("someone@gmail.com").Return(entity.ProviderGoogle, true).Once()

	output, err := fx.completion.Complete(ctx, callbackInput())

	require.NoError(t, err)
	assert.Equal(t, usecase.CompletionSignedIn, output.Kind)
	assert.True(t, output.IsNewUser)
	assert.Equal(t, session, fx.session(t))
}

func TestRedirectCompletion_Complete_AddLink(t *testing.T) {
	fx := createTestRedirectCompletion(t)
	ctx := context.Background()
	fx.seedHandshake(t, entity.ProviderGitHub)
	fx.seedIntent(t, entity.AuthActionAddLink, entity.ProviderGitHub)
	user := testUser("uid-1", "a@example.com", "password", "github.com")

	fx.gateway.EXPECT().GetRedirectResult(ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(&entity.AuthResult{User: user, Session: testSession("uid-1", "a@example.com")}, nil).Once()

	output, err := fx.completion.Complete(ctx, callbackInput())

	require.NoError(t, err)
	assert.Equal(t, usecase.CompletionLinked, output.Kind)
	assert.Equal(t, user, output.User)
	assert.Equal(t, []string{"linked"}, fx.metrics.completions)
}

func TestRedirectCompletion_Complete_LinkingErrorWithDifferentEmail(t *testing.T) {
	fx := createTestRedirectCompletion(t)
	ctx := context.Background()
	fx.seedHandshake(t, entity.ProviderGoogle)
	fx.seedPending(t, &entity.PendingCredential{Email: linkEmail, Credential: githubCredential(linkEmail)})

	fx.gateway.EXPECT().GetRedirectResult(ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewLinkingError("other@example.com", &entity.Credential{ProviderID: entity.ProviderIDGoogle})).Once()
	fx.expectReport(domainerrors.CodeAccountEmailMismatch)

	_, err := fx.completion.Complete(ctx, callbackInput())

	assert.ErrorIs(t, err, domainerrors.ErrAccountEmailMismatch)
	assert.True(t, fx.flags(t).ForceSignOut)
}

func TestRedirectCompletion_Complete_LinkingErrorStartsResolver(t *testing.T) {
	fx := createTestRedirectCompletion(t)
	ctx := context.Background()
	fx.seedHandshake(t, entity.ProviderGitHub)
	fx.seedIntent(t, entity.AuthActionSignIn, entity.ProviderGitHub)
	linkErr := githubLinkError()
	linked := testUser("uid-1", linkEmail, "password", "github.com")

	fx.gateway.EXPECT().GetRedirectResult(ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil, linkErr).Once()
	fx.resolver.EXPECT().ResolveLink(ctx, completionSID, linkErr).
		Return(&usecase.LinkOutcome{Kind: usecase.LinkOutcomeLinked, User: linked}, nil).Once()

	output, err := fx.completion.Complete(ctx, callbackInput())

	require.NoError(t, err)
	assert.Equal(t, usecase.CompletionLinked, output.Kind)
	assert.Equal(t, linked, output.User)
	assert.False(t, fx.flags(t).OngoingSignIn)
}

func TestRedirectCompletion_Complete_ResolverRedirects(t *testing.T) {
	fx := createTestRedirectCompletion(t)
	ctx := context.Background()
	fx.seedHandshake(t, entity.ProviderGitHub)
	linkErr := githubLinkError()

	fx.gateway.EXPECT().GetRedirectResult(ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil, linkErr).Once()
	fx.resolver.EXPECT().ResolveLink(ctx, completionSID, linkErr).
		Return(&usecase.LinkOutcome{Kind: usecase.LinkOutcomeRedirecting}, nil).Once()

	output, err := fx.completion.Complete(ctx, callbackInput())

	require.NoError(t, err)
	assert.Equal(t, usecase.CompletionRedirecting, output.Kind)
}

func TestRedirectCompletion_Complete_ResolverFailureForcesSignOut(t *testing.T) {
	fx := createTestRedirectCompletion(t)
	ctx := context.Background()
	fx.seedHandshake(t, entity.ProviderGitHub)
	linkErr := githubLinkError()

	fx.gateway.EXPECT().GetRedirectResult(ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil, linkErr).Once()
	fx.resolver.EXPECT().ResolveLink(ctx, completionSID, linkErr).
		Return(nil, errors.WithStack(domainerrors.ErrExistingProviderSignInFailed)).Once()
	fx.expectReport(domainerrors.CodeExistingProviderSignInFailed)

	_, err := fx.completion.Complete(ctx, callbackInput())

	assert.ErrorIs(t, err, domainerrors.ErrExistingProviderSignInFailed)
	assert.True(t, fx.flags(t).ForceSignOut)
}

func TestRedirectCompletion_Complete_OtherErrorForcesSignOut(t *testing.T) {
	fx := createTestRedirectCompletion(t)
	ctx := context.Background()
	fx.seedHandshake(t, entity.ProviderGoogle)
	fx.seedIntent(t, entity.AuthActionAddLink, entity.ProviderGoogle)
	session := testSession("uid-1", "a@example.com")
	require.NoError(t, fx.state.SaveSession(ctx, completionSID, session))

	fx.gateway.EXPECT().GetRedirectResult(ctx, session, mock.Anything, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrRedirectCancelledByUser)).Once()
	fx.gateway.EXPECT().SignOut(ctx, session).Return(nil).Once()
	fx.expectReport(domainerrors.CodeRedirectCancelledByUser)

	_, err := fx.completion.Complete(ctx, callbackInput())

	assert.ErrorIs(t, err, domainerrors.ErrRedirectCancelledByUser)
	assert.Nil(t, fx.session(t))
	assert.Equal(t, entity.SessionFlags{ForceSignOut: true}, fx.flags(t))
	assert.Equal(t, []string{"failed"}, fx.metrics.completions)
}
