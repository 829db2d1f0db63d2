package impl

import (
	"context"
	"testing"

	"firelink/internal/domain/entity"
	domainerrors "firelink/internal/domain/errors"
	"firelink/internal/domain/service"
	mockSvc "firelink/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBuildProviderChoice(t *testing.T) {
	t.Run("unlocked keeps every method selectable", func(t *testing.T) {
		choice := BuildProviderChoice(entity.Providers{entity.ProviderPassword, entity.ProviderGoogle},
			linkEmail, entity.ProviderGitHub, "")

		assert.False(t, choice.Locked)
		assert.Empty(t, choice.Message)
		assert.Equal(t, []entity.ProviderOption{
			{Provider: entity.ProviderPassword},
			{Provider: entity.ProviderGoogle},
		}, choice.Options)
	})

	t.Run("trusted provider locks the other options", func(t *testing.T) {
		choice := BuildProviderChoice(entity.Providers{entity.ProviderPassword, entity.ProviderGoogle},
			linkEmail, entity.ProviderGitHub, entity.ProviderGoogle)

		assert.True(t, choice.Locked)
		assert.Equal(t, []entity.ProviderOption{
			{Provider: entity.ProviderPassword, Disabled: true},
			{Provider: entity.ProviderGoogle},
		}, choice.Options)
		assert.Contains(t, choice.Message, "Sign in with Google to link GitHub")
	})

	t.Run("trusted provider not registered leaves the prompt open", func(t *testing.T) {
		choice := BuildProviderChoice(entity.Providers{entity.ProviderPassword}, linkEmail, entity.ProviderGitHub, entity.ProviderGoogle)

		assert.False(t, choice.Locked)
		assert.False(t, choice.Options[0].Disabled)
	})

	t.Run("duplicate methods are listed once", func(t *testing.T) {
		choice := BuildProviderChoice(entity.Providers{entity.ProviderUnknown, entity.ProviderPassword, entity.ProviderUnknown},
			linkEmail, entity.ProviderGitHub, "")

		assert.Equal(t, entity.Providers{entity.ProviderUnknown, entity.ProviderPassword}, choice.Methods)
		assert.Len(t, choice.Options, 2)
	})
}

// capturePrompt records the validator the selector hands to the prompter and answers with answer.
func capturePrompt(prompter *mockSvc.MockPrompter, answer *entity.ProviderSelection, validate *service.SelectionValidator, choice **entity.ProviderChoice) {
	prompter.EXPECT().Prompt(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, c *entity.ProviderChoice, v service.SelectionValidator) (*entity.ProviderSelection, error) {
			*validate = v
			*choice = c

			return answer, nil
		}).Once()
}

func TestProviderSelector_SelectProvider_Validation(t *testing.T) {
	tests := []struct {
		name      string
		trusted   entity.Provider
		selection *entity.ProviderSelection
		wantErr   string
	}{
		{
			name:      "valid password selection",
			selection: &entity.ProviderSelection{LinkProvider: entity.ProviderPassword, Password: "secret1"},
		},
		{
			name:      "valid federated selection",
			selection: &entity.ProviderSelection{LinkProvider: entity.ProviderGoogle},
		},
		{
			name:    "nothing selected",
			wantErr: "a provider must be selected",
		},
		{
			name:      "empty provider",
			selection: &entity.ProviderSelection{},
			wantErr:   "a provider must be selected",
		},
		{
			name:      "password without a password",
			selection: &entity.ProviderSelection{LinkProvider: entity.ProviderPassword},
			wantErr:   "a password is required",
		},
		{
			name:      "provider not registered",
			selection: &entity.ProviderSelection{LinkProvider: entity.ProviderFacebook},
			wantErr:   "Facebook is not registered for this account",
		},
		{
			name:      "locked to the trusted provider",
			trusted:   entity.ProviderGoogle,
			selection: &entity.ProviderSelection{LinkProvider: entity.ProviderPassword, Password: "secret1"},
			wantErr:   "only Google can be used for this account",
		},
		{
			name:      "trusted provider accepted when locked",
			trusted:   entity.ProviderGoogle,
			selection: &entity.ProviderSelection{LinkProvider: entity.ProviderGoogle},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompter := mockSvc.NewMockPrompter(t)
			selector := NewProviderSelector(ProviderSelectorParams{Prompter: prompter, Logger: discardLogger()})

			var (
				validate service.SelectionValidator
				choice   *entity.ProviderChoice
			)
			capturePrompt(prompter, nil, &validate, &choice)

			_, err := selector.SelectProvider(context.Background(),
				entity.Providers{entity.ProviderPassword, entity.ProviderGoogle}, linkEmail, entity.ProviderGitHub, tt.trusted)
			require.NoError(t, err)
			require.NotNil(t, validate)

			err = validate(tt.selection)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantErr, appErr.Details())
		})
	}
}

func TestProviderSelector_SelectProvider_PassesAnswerThrough(t *testing.T) {
	prompter := mockSvc.NewMockPrompter(t)
	selector := NewProviderSelector(ProviderSelectorParams{Prompter: prompter, Logger: discardLogger()})
	answer := &entity.ProviderSelection{LinkProvider: entity.ProviderGoogle}

	var (
		validate service.SelectionValidator
		choice   *entity.ProviderChoice
	)
	capturePrompt(prompter, answer, &validate, &choice)

	got, err := selector.SelectProvider(context.Background(), entity.Providers{entity.ProviderGoogle}, linkEmail, entity.ProviderGitHub, "")

	require.NoError(t, err)
	assert.Same(t, answer, got)
	assert.Equal(t, linkEmail, choice.Email)
	assert.Equal(t, entity.ProviderGitHub, choice.PendingProvider)
}

func TestProviderSelector_SelectProvider_Cancelled(t *testing.T) {
	prompter := mockSvc.NewMockPrompter(t)
	selector := NewProviderSelector(ProviderSelectorParams{Prompter: prompter, Logger: discardLogger()})

	prompter.EXPECT().Prompt(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Once()

	got, err := selector.SelectProvider(context.Background(), entity.Providers{entity.ProviderPassword}, linkEmail, entity.ProviderGitHub, "")

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestProviderSelector_SelectProvider_PromptFails(t *testing.T) {
	prompter := mockSvc.NewMockPrompter(t)
	selector := NewProviderSelector(ProviderSelectorParams{Prompter: prompter, Logger: discardLogger()})

	prompter.EXPECT().Prompt(mock.Anything, mock.Anything, mock.Anything).Return(nil, domainerrors.ErrNoActiveFlow).Once()

	got, err := selector.SelectProvider(context.Background(), entity.Providers{entity.ProviderPassword}, linkEmail, entity.ProviderGitHub, "")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrNoActiveFlow)
	assert.Contains(t, err.Error(), "provider prompt failed")
}
