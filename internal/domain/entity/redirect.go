package entity

import "time"

// AuthAction is the user action that started a provider redirect.
type AuthAction string

const (
	// AuthActionSignUp marks a redirect started to create an account.
	AuthActionSignUp AuthAction = "SignUp"
	// AuthActionSignIn marks a redirect started to sign in to an existing account.
	AuthActionSignIn AuthAction = "SignIn"
	// AuthActionAddLink marks a redirect started to link a provider to the current account.
	AuthActionAddLink AuthAction = "AddLink"
)

// IsValid checks if the AuthAction is a valid value.
func (a AuthAction) IsValid() bool {
	switch a {
	case AuthActionSignUp, AuthActionSignIn, AuthActionAddLink:
		return true
	default:
		return false
	}
}

// RedirectIntent is written right before a provider redirect and consumed once on return.
type RedirectIntent struct {
	Action   AuthAction `json:"action"`
	Provider Provider   `json:"provider"`
}

// HandshakeMode tells the gateway how to treat the provider response.
type HandshakeMode string

const (
	// HandshakeModeSignIn signs in (or creates) the account owning the provider identity.
	HandshakeModeSignIn HandshakeMode = "signIn"
	// HandshakeModeLink attaches the provider identity to the signed-in account.
	HandshakeModeLink HandshakeMode = "link"
)

// ProviderHandshake is the OAuth state of one outbound redirect.
type ProviderHandshake struct {
	State     string        `json:"state"`
	Verifier  string        `json:"verifier"`
	Nonce     string        `json:"nonce,omitempty"`
	Provider  Provider      `json:"provider"`
	Mode      HandshakeMode `json:"mode"`
	AuthURL   string        `json:"authUrl"`
	CreatedAt time.Time     `json:"createdAt"`
}

// RedirectCallback carries the query parameters the provider sent back.
type RedirectCallback struct {
	Code             string
	State            string
	Error            string
	ErrorDescription string
}

// RedirectOptions customise an outbound provider redirect.
type RedirectOptions struct {
	// LoginHint pre-fills the account chooser where the provider supports it.
	LoginHint string
}

// SessionFlags guard the session while a redirect flow is in progress.
// ForceSignOut implies OngoingSignIn is false.
type SessionFlags struct {
	ForceSignOut  bool `json:"forceSignOut"`
	OngoingSignIn bool `json:"ongoingSignIn"`
}
