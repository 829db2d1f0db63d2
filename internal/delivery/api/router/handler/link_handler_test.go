package handler

import (
	"context"
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

func TestLinkHandler_Callback(t *testing.T) {
	const providerURL = "https://github.com/login/oauth/authorize?state=relink"

	tests := []struct {
		name     string
		complete func(f *handlerFixtures) func(ctx context.Context, input usecase.CompletionInput) (*usecase.CompletionOutput, error)
		location string
	}{
		{
			name: "finished flow returns home",
			complete: func(*handlerFixtures) func(context.Context, usecase.CompletionInput) (*usecase.CompletionOutput, error) {
				return func(context.Context, usecase.CompletionInput) (*usecase.CompletionOutput, error) {
					return &usecase.CompletionOutput{Kind: usecase.CompletionSignedIn}, nil
				}
			},
			location: testHomePage,
		},
		{
			name: "failed flow returns home",
			complete: func(*handlerFixtures) func(context.Context, usecase.CompletionInput) (*usecase.CompletionOutput, error) {
				return func(context.Context, usecase.CompletionInput) (*usecase.CompletionOutput, error) {
					return nil, errors.WithStack(domainerrors.ErrAccountEmailMismatch)
				}
			},
			location: testHomePage,
		},
		{
			name: "relink goes back to the provider",
			complete: func(f *handlerFixtures) func(context.Context, usecase.CompletionInput) (*usecase.CompletionOutput, error) {
				return func(ctx context.Context, _ usecase.CompletionInput) (*usecase.CompletionOutput, error) {
					if err := f.broker.Navigate(ctx, providerURL); err != nil {
						return nil, err
					}

					return &usecase.CompletionOutput{Kind: usecase.CompletionRedirecting}, nil
				}
			},
			location: providerURL,
		},
		{
			name: "linking prompt opens the link page",
			complete: func(f *handlerFixtures) func(context.Context, usecase.CompletionInput) (*usecase.CompletionOutput, error) {
				return func(ctx context.Context, _ usecase.CompletionInput) (*usecase.CompletionOutput, error) {
					if _, err := f.broker.Prompt(ctx, &entity.ProviderChoice{Email: "owner@example.com"}, nil); err != nil {
						return nil, err
					}

					return &usecase.CompletionOutput{Kind: usecase.CompletionLinked}, nil
				}
			},
			location: testLinkPage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestHandlers(t)
			f.completion.EXPECT().Complete(mock.Anything, usecase.CompletionInput{
				SessionID: testSessionID,
				Callback:  entity.RedirectCallback{Code: "code-1", State: "state-1"},
			}).RunAndReturn(tt.complete(f))

			rec := f.do(t, http.MethodGet, "/auth/callback?code=code-1&state=state-1", nil)

			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, tt.location, rec.Header().Get("Location"))
		})
	}
}

func TestLinkHandler_Callback_ProviderError(t *testing.T) {
	f := createTestHandlers(t)

	f.completion.EXPECT().Complete(mock.Anything, usecase.CompletionInput{
		SessionID: testSessionID,
		Callback: entity.RedirectCallback{
			State:            "state-1",
			Error:            "access_denied",
			ErrorDescription: "The user denied access",
		},
	}).Return(nil, errors.WithStack(domainerrors.ErrRedirectCancelledByUser))

	rec := f.do(t, http.MethodGet, "/auth/callback?state=state-1&error=access_denied&error_description=The+user+denied+access", nil)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, testHomePage, rec.Header().Get("Location"))
}

func TestLinkHandler_PromptAfterCallback(t *testing.T) {
	f := createTestHandlers(t)
	choice := &entity.ProviderChoice{
		Email:           "owner@example.com",
		Methods:         entity.Providers{entity.ProviderGoogle},
		TrustedProvider: entity.ProviderGoogle,
		Locked:          true,
	}

	f.completion.EXPECT().Complete(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ usecase.CompletionInput) (*usecase.CompletionOutput, error) {
			_, err := f.broker.Prompt(ctx, choice, func(selection *entity.ProviderSelection) error {
				if selection.LinkProvider != entity.ProviderGoogle {
					return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("only Google can be used for this account"))
				}

				return nil
			})
			if err != nil {
				return nil, err
			}
			if err := f.broker.Navigate(ctx, "https://accounts.google.com/o/oauth2/auth?login_hint=owner"); err != nil {
				return nil, err
			}

			return &usecase.CompletionOutput{Kind: usecase.CompletionRedirecting}, nil
		})

	rec := f.do(t, http.MethodGet, "/auth/callback?code=c&state=s", nil)
	require.Equal(t, testLinkPage, rec.Header().Get("Location"))

	// A rejected answer re-prompts with the validation message.
	rec = f.do(t, http.MethodPost, "/auth/link/prompt", map[string]string{"linkProvider": "Password", "password": "pw"})
	require.Equal(t, http.StatusOK, rec.Code)
	flow := decodeFlow(t, rec)
	assert.Equal(t, FlowStatusPrompt, flow.Status)
	assert.Equal(t, "only Google can be used for this account", flow.Message)
	require.NotNil(t, flow.Prompt)
	assert.True(t, flow.Prompt.Locked)

	rec = f.do(t, http.MethodPost, "/auth/link/prompt", map[string]string{"linkProvider": "Google"})
	require.Equal(t, http.StatusOK, rec.Code)
	flow = decodeFlow(t, rec)
	assert.Equal(t, FlowStatusRedirect, flow.Status)
	assert.Contains(t, flow.URL, "login_hint=owner")
}
