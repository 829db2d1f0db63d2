// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"firelink/internal/domain/entity"
	domainerrors "firelink/internal/domain/errors"
)

// --- Linking DTOs ---

// LinkOutcomeKind tells how a linking attempt ended without error.
type LinkOutcomeKind string

const (
	// LinkOutcomeLinked means the pending credential is attached to the existing account.
	LinkOutcomeLinked LinkOutcomeKind = "linked"
	// LinkOutcomeRedirecting means the user was sent to a provider; the callback finishes the link.
	LinkOutcomeRedirecting LinkOutcomeKind = "redirecting"
)

// LinkOutcome is the result of a linking attempt that did not fail.
type LinkOutcome struct {
	Kind          LinkOutcomeKind
	CorrelationID string
	// PasswordAttempts counts wrong passwords entered during the attempt.
	PasswordAttempts int
	User             *entity.AuthenticatedUser
}

// CompletionInput carries the provider callback of one page load.
type CompletionInput struct {
	SessionID string
	Callback  entity.RedirectCallback
}

// CompletionKind tells what a redirect completion did.
type CompletionKind string

const (
	CompletionNoOp        CompletionKind = "noop"
	CompletionSignedIn    CompletionKind = "signed_in"
	CompletionLinked      CompletionKind = "linked"
	CompletionRedirecting CompletionKind = "redirecting"
)

// CompletionOutput is the result of a successful redirect completion.
type CompletionOutput struct {
	Kind      CompletionKind
	User      *entity.AuthenticatedUser
	IsNewUser bool
}

// LinkResolver drives the user through re-authentication with an existing provider before
// attaching the credential of a LinkingError.
type LinkResolver interface {
	// ResolveLink returns the original LinkingError when the user cancels.
	ResolveLink(ctx context.Context, sessionID string, linkErr *domainerrors.LinkingError) (*LinkOutcome, error)
}

// ProviderSelector asks which registered provider the user re-authenticates with.
type ProviderSelector interface {
	// SelectProvider returns nil, nil when the user cancels.
	SelectProvider(ctx context.Context, methods entity.Providers, email string, pendingProvider, trustedProvider entity.Provider) (*entity.ProviderSelection, error)
}

// RedirectCompletion processes the provider callback once per redirect round trip.
type RedirectCompletion interface {
	Complete(ctx context.Context, input CompletionInput) (*CompletionOutput, error)
}
