package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"firelink/internal/domain/entity"
	domainerrors "firelink/internal/domain/errors"
	"firelink/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_SignIn_Password(t *testing.T) {
	f := createTestHandlers(t)

	f.authUC.EXPECT().SignIn(mock.Anything, usecase.SignInInput{
		SessionID: testSessionID,
		Provider:  entity.ProviderPassword,
		Email:     "user@example.com",
		Password:  "secret",
	}).Return(&usecase.AuthOutput{
		Outcome: usecase.AuthOutcomeSignedIn,
		User:    &entity.AuthenticatedUser{UID: "uid-1", Email: "user@example.com"},
	}, nil)

	rec := f.do(t, http.MethodPost, "/auth/signin", map[string]string{
		"provider": "Password",
		"email":    "user@example.com",
		"password": "secret",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	flow := decodeFlow(t, rec)
	assert.Equal(t, FlowStatusDone, flow.Status)
	assert.Equal(t, string(usecase.AuthOutcomeSignedIn), resultOutcome(t, flow))
}

func TestAuthHandler_SignIn_ProviderRedirect(t *testing.T) {
	f := createTestHandlers(t)
	const authURL = "https://accounts.google.com/o/oauth2/auth?state=s1"

	f.authUC.EXPECT().SignIn(mock.Anything, mock.MatchedBy(func(input usecase.SignInInput) bool {
		return input.Provider == entity.ProviderGoogle
	})).RunAndReturn(func(ctx context.Context, _ usecase.SignInInput) (*usecase.AuthOutput, error) {
		if err := f.broker.Navigate(ctx, authURL); err != nil {
			return nil, err
		}

		return &usecase.AuthOutput{Outcome: usecase.AuthOutcomeRedirecting}, nil
	})

	// Wire identifiers are accepted as well as provider names.
	rec := f.do(t, http.MethodPost, "/auth/signin", map[string]string{"provider": "google.com"})

	require.Equal(t, http.StatusOK, rec.Code)
	flow := decodeFlow(t, rec)
	assert.Equal(t, FlowStatusRedirect, flow.Status)
	assert.Equal(t, authURL, flow.URL)
}

func TestAuthHandler_SignIn_ErrorEnvelope(t *testing.T) {
	f := createTestHandlers(t)

	f.authUC.EXPECT().SignIn(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrWrongPassword, "failed to sign in"))

	rec := f.do(t, http.MethodPost, "/auth/signin", map[string]string{
		"provider": "Password",
		"email":    "user@example.com",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, domainerrors.CodeWrongPassword, env.Error.Code)
}

func TestAuthHandler_SignIn_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    map[string]string
		details string
	}{
		{
			name:    "missing provider",
			body:    map[string]string{"email": "user@example.com"},
			details: "Provider required",
		},
		{
			name:    "malformed email",
			body:    map[string]string{"provider": "Password", "email": "not-an-email"},
			details: "Email email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestHandlers(t)

			rec := f.do(t, http.MethodPost, "/auth/signin", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			env := decodeEnvelope(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), env.Error.Code)
			assert.Equal(t, tt.details, env.Error.Details)
		})
	}
}

func TestAuthHandler_SignUp_PassesDisplayName(t *testing.T) {
	f := createTestHandlers(t)

	f.authUC.EXPECT().SignUp(mock.Anything, usecase.SignUpInput{
		SessionID:   testSessionID,
		Provider:    entity.ProviderPassword,
		Email:       "new@example.com",
		Password:    "secret1",
		DisplayName: "New User",
	}).Return(&usecase.AuthOutput{
		Outcome: usecase.AuthOutcomeSignedIn,
		User:    &entity.AuthenticatedUser{UID: "uid-new", Email: "new@example.com", DisplayName: "New User"},
	}, nil)

	rec := f.do(t, http.MethodPost, "/auth/signup", map[string]string{
		"provider":    "Password",
		"email":       "new@example.com",
		"password":    "secret1",
		"displayName": "New User",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, string(usecase.AuthOutcomeSignedIn), resultOutcome(t, decodeFlow(t, rec)))
}

func TestAuthHandler_SignUp_PromptAnswered(t *testing.T) {
	f := createTestHandlers(t)
	choice := &entity.ProviderChoice{
		Email:           "owner@example.com",
		Methods:         entity.Providers{entity.ProviderPassword},
		PendingProvider: entity.ProviderGitHub,
	}
	var answered *entity.ProviderSelection

	f.authUC.EXPECT().SignUp(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ usecase.SignUpInput) (*usecase.AuthOutput, error) {
			selection, err := f.broker.Prompt(ctx, choice, nil)
			if err != nil {
				return nil, err
			}
			answered = selection

			return &usecase.AuthOutput{Outcome: usecase.AuthOutcomeLinked}, nil
		})

	rec := f.do(t, http.MethodPost, "/auth/signup", map[string]string{"provider": "GitHub"})
	require.Equal(t, http.StatusOK, rec.Code)
	flow := decodeFlow(t, rec)
	assert.Equal(t, FlowStatusPrompt, flow.Status)
	require.NotNil(t, flow.Prompt)
	assert.Equal(t, "owner@example.com", flow.Prompt.Email)

	rec = f.do(t, http.MethodGet, "/auth/link/prompt", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, FlowStatusPrompt, decodeFlow(t, rec).Status)

	rec = f.do(t, http.MethodPost, "/auth/link/prompt", map[string]string{
		"linkProvider": "Password",
		"password":     "secret",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	flow = decodeFlow(t, rec)
	assert.Equal(t, FlowStatusDone, flow.Status)
	assert.Equal(t, string(usecase.AuthOutcomeLinked), resultOutcome(t, flow))

	require.NotNil(t, answered)
	assert.Equal(t, entity.ProviderPassword, answered.LinkProvider)
	assert.Equal(t, "secret", answered.Password)
}

func TestAuthHandler_SignUp_PromptCancelled(t *testing.T) {
	f := createTestHandlers(t)

	f.authUC.EXPECT().SignUp(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ usecase.SignUpInput) (*usecase.AuthOutput, error) {
			selection, err := f.broker.Prompt(ctx, &entity.ProviderChoice{Email: "owner@example.com"}, nil)
			if err != nil {
				return nil, err
			}
			if selection == nil {
				return nil, errors.WithStack(domainerrors.ErrAccountExistsWithDifferentCredential)
			}

			return &usecase.AuthOutput{Outcome: usecase.AuthOutcomeLinked}, nil
		})

	rec := f.do(t, http.MethodPost, "/auth/signup", map[string]string{"provider": "GitHub"})
	require.Equal(t, FlowStatusPrompt, decodeFlow(t, rec).Status)

	rec = f.do(t, http.MethodDelete, "/auth/link/prompt", nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, domainerrors.CodeAccountExistsWithDifferentCredential, env.Error.Code)
}

func TestAuthHandler_PromptWithoutFlow(t *testing.T) {
	f := createTestHandlers(t)

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		rec := f.do(t, method, "/auth/link/prompt", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code, method)
		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, domainerrors.ErrNoActiveFlow.ErrorCode(), env.Error.Code)
	}
}

func TestAuthHandler_SignOut(t *testing.T) {
	f := createTestHandlers(t)

	f.authUC.EXPECT().SignOut(mock.Anything, testSessionID).Return(nil)

	rec := f.do(t, http.MethodPost, "/auth/signout", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_State(t *testing.T) {
	f := createTestHandlers(t)

	f.sessionUC.EXPECT().SyncState(mock.Anything, testSessionID).Return(&usecase.AuthState{
		Decision: usecase.AuthDecisionSignedIn,
		User:     &entity.AuthenticatedUser{UID: "uid-1", Email: "user@example.com"},
	}, nil)

	rec := f.do(t, http.MethodGet, "/auth/state", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var state StateResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &state))
	assert.Equal(t, usecase.AuthDecisionSignedIn, state.Decision)
	require.NotNil(t, state.User)
	assert.Equal(t, "uid-1", state.User.UID)
}

func TestAuthHandler_Notices(t *testing.T) {
	t.Run("empty channel renders an empty list", func(t *testing.T) {
		f := createTestHandlers(t)
		f.sessionUC.EXPECT().Notices(mock.Anything, testSessionID).Return(nil, nil)

		rec := f.do(t, http.MethodGet, "/auth/notices", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, string(decodeEnvelope(t, rec).Data))
	})

	t.Run("drained notices", func(t *testing.T) {
		f := createTestHandlers(t)
		f.sessionUC.EXPECT().Notices(mock.Anything, testSessionID).Return([]entity.Notice{
			{Kind: entity.NoticeKindError, Code: domainerrors.CodeWrongPassword, Message: "The password is invalid.", Severity: "warning"},
		}, nil)

		rec := f.do(t, http.MethodGet, "/auth/notices", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var notices []entity.Notice
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &notices))
		require.Len(t, notices, 1)
		assert.Equal(t, domainerrors.CodeWrongPassword, notices[0].Code)
	})
}

func TestAuthHandler_PasswordReset(t *testing.T) {
	t.Run("sends the reset email", func(t *testing.T) {
		f := createTestHandlers(t)
		f.accountUC.EXPECT().SendPasswordResetEmail(mock.Anything, testSessionID, "user@example.com").Return(nil)

		rec := f.do(t, http.MethodPost, "/auth/password-reset", map[string]string{"email": "user@example.com"})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects a missing email", func(t *testing.T) {
		f := createTestHandlers(t)

		rec := f.do(t, http.MethodPost, "/auth/password-reset", map[string]string{})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
