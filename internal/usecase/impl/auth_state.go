package impl

import (
	"firelink/internal/domain/entity"
	"firelink/internal/usecase"
)

// EvaluateAuthState decides what a session may surface given the reloaded user and the guard
// flags. It returns the decision and the flags to persist.
func EvaluateAuthState(user *entity.AuthenticatedUser, flags entity.SessionFlags, hasPending, verificationRequired bool) (*usecase.AuthState, entity.SessionFlags) {
	switch {
	case flags.ForceSignOut:
		next := entity.SessionFlags{}

		return &usecase.AuthState{Decision: usecase.AuthDecisionForcedSignOut, Flags: next}, next
	case hasPending || flags.OngoingSignIn:
		// The redirect flow is still running; the next completion decides who is signed in.
		next := entity.SessionFlags{}

		return &usecase.AuthState{Decision: usecase.AuthDecisionDeferred, Flags: next}, next
	case user == nil:
		return &usecase.AuthState{Decision: usecase.AuthDecisionSignedOut, Flags: flags}, flags
	case verificationRequired && !user.EmailVerified:
		return &usecase.AuthState{Decision: usecase.AuthDecisionUnverified, User: user, Flags: flags}, flags
	default:
		return &usecase.AuthState{Decision: usecase.AuthDecisionSignedIn, User: user, Flags: flags}, flags
	}
}
