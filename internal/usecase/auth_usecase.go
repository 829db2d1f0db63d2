package usecase

import (
	"context"

	"firelink/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to create an account.
type SignUpInput struct {
	SessionID   string
	Provider    entity.Provider
	Email       string
	Password    string
	DisplayName string
}

// SignInInput defines the data required to sign in.
type SignInInput struct {
	SessionID string
	Provider  entity.Provider
	Email     string
	Password  string
}

// AddLinkInput defines the data required to attach a provider to the current account.
type AddLinkInput struct {
	SessionID string
	Provider  entity.Provider
	Email     string
	Password  string
}

// --- Output DTOs ---

// AuthOutcome tells how an auth operation ended.
type AuthOutcome string

const (
	AuthOutcomeSignedIn    AuthOutcome = "signed_in"
	AuthOutcomeLinked      AuthOutcome = "linked"
	AuthOutcomeRedirecting AuthOutcome = "redirecting"
)

// AuthOutput is returned by operations that may sign in, link or redirect.
type AuthOutput struct {
	Outcome AuthOutcome
	User    *entity.AuthenticatedUser
}

// AuthUsecase defines sign-up, sign-in and sign-out.
type AuthUsecase interface {
	SignUp(ctx context.Context, input SignUpInput) (*AuthOutput, error)
	SignIn(ctx context.Context, input SignInInput) (*AuthOutput, error)
	SignOut(ctx context.Context, sessionID string) error
}

// AccountUsecase defines operations on the signed-in account.
type AccountUsecase interface {
	AddLink(ctx context.Context, input AddLinkInput) (*AuthOutput, error)
	RemoveLink(ctx context.Context, sessionID string, provider entity.Provider) (*entity.AuthenticatedUser, error)
	UpdateEmail(ctx context.Context, sessionID, email string) (*entity.AuthenticatedUser, error)
	UpdateProfile(ctx context.Context, sessionID string, update entity.ProfileUpdate) (*entity.AuthenticatedUser, error)
	UpdatePassword(ctx context.Context, sessionID, password string) error
	SendPasswordResetEmail(ctx context.Context, sessionID, email string) error
	Withdraw(ctx context.Context, sessionID string) error
}
