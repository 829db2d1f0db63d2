package errors

import (
	"fmt"
	"testing"

	"firelink/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantCode     string
		wantName     string
		wantSeverity Severity
	}{
		{
			name:         "auth error is a warning",
			err:          errors.WithStack(ErrWrongPassword),
			wantCode:     CodeWrongPassword,
			wantName:     "AuthError",
			wantSeverity: SeverityWarning,
		},
		{
			name:         "resolver code is an auth error",
			err:          errors.Wrap(ErrExistingProviderSignInFailed, "linking"),
			wantCode:     CodeExistingProviderSignInFailed,
			wantName:     "AuthError",
			wantSeverity: SeverityWarning,
		},
		{
			name:         "email mismatch pins fatal",
			err:          errors.WithStack(ErrAccountEmailMismatch.WithDetails("expected a, got b")),
			wantCode:     CodeAccountEmailMismatch,
			wantName:     "AuthError",
			wantSeverity: SeverityFatal,
		},
		{
			name:         "application error is fatal",
			err:          ErrInternalError,
			wantCode:     ErrInternalError.ErrorCode(),
			wantName:     "AppError",
			wantSeverity: SeverityFatal,
		},
		{
			name:         "plain error is unexpected",
			err:          errors.Wrap(fmt.Errorf("boom"), "flow"),
			wantCode:     codeUnexpected,
			wantName:     "*errors.errorString",
			wantSeverity: SeverityFatal,
		},
		{
			name:         "linking error",
			err:          NewLinkingError("a@example.com", &entity.Credential{ProviderID: entity.ProviderIDGitHub}),
			wantCode:     CodeAccountExistsWithDifferentCredential,
			wantName:     "AuthError",
			wantSeverity: SeverityWarning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Normalize(tt.err)

			require.NotNil(t, n)
			assert.Equal(t, tt.wantCode, n.Code)
			assert.Equal(t, tt.wantName, n.Name)
			assert.Equal(t, tt.wantSeverity, n.Severity)
			assert.NotEmpty(t, n.Message)
		})
	}

	assert.Nil(t, Normalize(nil))
}

func TestBaseError_IsMatchesByCode(t *testing.T) {
	detailed := ErrNoSuchProvider.WithDetails("GitHub")

	assert.ErrorIs(t, errors.WithStack(detailed), ErrNoSuchProvider)
	assert.NotErrorIs(t, detailed, ErrProviderAlreadyLinked)
	assert.Equal(t, "GitHub", detailed.Details())
	assert.Empty(t, ErrNoSuchProvider.Details())
}

func TestAsLinkingError(t *testing.T) {
	linkErr := NewLinkingError("a@example.com", &entity.Credential{ProviderID: entity.ProviderIDGitHub})

	got, ok := AsLinkingError(errors.Wrap(linkErr, "redirect"))
	require.True(t, ok)
	assert.Same(t, linkErr, got)
	assert.Equal(t, entity.ProviderGitHub, got.PendingProvider())
	assert.ErrorIs(t, linkErr, ErrAccountExistsWithDifferentCredential)

	_, ok = AsLinkingError(ErrAccountExistsWithDifferentCredential)
	assert.False(t, ok)
}

func TestIsAuthError(t *testing.T) {
	assert.True(t, IsAuthError(errors.WithStack(ErrUserDisabled)))
	assert.True(t, IsAuthError(ErrUnknownProvider))
	assert.False(t, IsAuthError(ErrInternalError))
	assert.False(t, IsAuthError(errors.New("plain")))
}
