// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"context"

	"firelink/internal/domain/entity"
)

// IdentityGateway is the only boundary that talks to the identity platform. Every provider
// identity crossing it is expressed through entity.Provider.
type IdentityGateway interface {
	// SignInWithPassword signs in an existing email/password account.
	SignInWithPassword(ctx context.Context, email, password string) (*entity.AuthResult, error)

	// CreateAccountWithPassword creates and signs in a new email/password account.
	CreateAccountWithPassword(ctx context.Context, email, password string) (*entity.AuthResult, error)

	// SignInWithRedirect prepares a redirect to the provider's consent screen.
	// The caller persists the returned handshake before navigating to its AuthURL.
	SignInWithRedirect(ctx context.Context, provider entity.Provider, opts entity.RedirectOptions) (*entity.ProviderHandshake, error)

	// LinkCredentialWithRedirect prepares a redirect whose result is attached to the session's account.
	LinkCredentialWithRedirect(ctx context.Context, session *entity.AuthSession, provider entity.Provider) (*entity.ProviderHandshake, error)

	// GetRedirectResult completes a redirect. An account collision is returned as *errors.LinkingError.
	GetRedirectResult(ctx context.Context, session *entity.AuthSession, handshake *entity.ProviderHandshake, callback entity.RedirectCallback) (*entity.AuthResult, error)

	// LinkCredentialDirect attaches credential to the session's account without a redirect.
	LinkCredentialDirect(ctx context.Context, session *entity.AuthSession, credential *entity.Credential) (*entity.AuthResult, error)

	// Unlink detaches provider from the session's account.
	Unlink(ctx context.Context, session *entity.AuthSession, provider entity.Provider) (*entity.AuthenticatedUser, error)

	// FetchSignInMethods returns the wire identifiers of the methods registered for email.
	FetchSignInMethods(ctx context.Context, email string) ([]string, error)

	// CurrentUser reloads the session's account.
	CurrentUser(ctx context.Context, session *entity.AuthSession) (*entity.AuthenticatedUser, error)

	// SignOut revokes the session's refresh tokens.
	SignOut(ctx context.Context, session *entity.AuthSession) error

	// DeleteUser removes the account with the given uid.
	DeleteUser(ctx context.Context, uid string) error

	// UpdateProfile changes display name and photo.
	UpdateProfile(ctx context.Context, session *entity.AuthSession, update entity.ProfileUpdate) error

	// UpdateEmail changes the account email immediately and marks it unverified.
	UpdateEmail(ctx context.Context, session *entity.AuthSession, email string) error

	// VerifyBeforeUpdateEmail sends a verification mail; the email changes once it is confirmed.
	VerifyBeforeUpdateEmail(ctx context.Context, session *entity.AuthSession, email string) error

	// UpdatePassword sets a new password on the session's account.
	UpdatePassword(ctx context.Context, session *entity.AuthSession, password string) error

	// SendPasswordResetEmail sends a password reset mail to email.
	SendPasswordResetEmail(ctx context.Context, email string) error

	// SendEmailVerification sends a verification mail for the session's account.
	SendEmailVerification(ctx context.Context, session *entity.AuthSession) error
}
