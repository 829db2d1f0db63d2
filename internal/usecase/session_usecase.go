package usecase

import (
	"context"

	"firelink/internal/domain/entity"
)

// AuthDecision is what the session layer may surface to the UI.
type AuthDecision string

const (
	// AuthDecisionSignedIn surfaces the user.
	AuthDecisionSignedIn AuthDecision = "signed_in"
	// AuthDecisionSignedOut means there is no user.
	AuthDecisionSignedOut AuthDecision = "signed_out"
	// AuthDecisionForcedSignOut means a flow invalidated the session; it is being torn down.
	AuthDecisionForcedSignOut AuthDecision = "forced_sign_out"
	// AuthDecisionDeferred means a redirect flow is in progress and the user must not be surfaced yet.
	AuthDecisionDeferred AuthDecision = "deferred"
	// AuthDecisionUnverified means the user exists but its email must be verified first.
	AuthDecisionUnverified AuthDecision = "unverified"
)

// AuthState is the session as the UI should see it.
type AuthState struct {
	Decision AuthDecision
	User     *entity.AuthenticatedUser
	Flags    entity.SessionFlags
}

// SessionUsecase reconciles the stored session with the guard flags.
type SessionUsecase interface {
	SyncState(ctx context.Context, sessionID string) (*AuthState, error)
	Notices(ctx context.Context, sessionID string) ([]entity.Notice, error)
}
