package entity

import "time"

// ProviderInfo is one provider record linked to an account.
type ProviderInfo struct {
	ProviderID  string `json:"providerId"`
	UID         string `json:"uid"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	PhotoURL    string `json:"photoUrl,omitempty"`
}

// AuthenticatedUser is the identity platform's view of the signed-in account.
type AuthenticatedUser struct {
	UID           string         `json:"uid"`
	Email         string         `json:"email"`
	DisplayName   string         `json:"displayName,omitempty"`
	PhotoURL      string         `json:"photoUrl,omitempty"`
	EmailVerified bool           `json:"emailVerified"`
	ProviderData  []ProviderInfo `json:"providerData"`
}

// Providers returns the linked providers in the order the platform reported them.
func (u *AuthenticatedUser) Providers() Providers {
	if u == nil {
		return nil
	}
	result := make(Providers, 0, len(u.ProviderData))
	for _, info := range u.ProviderData {
		result = append(result, ToProvider(info.ProviderID))
	}

	return result
}

// AuthSession is the server-side session bound to a browser cookie.
type AuthSession struct {
	UID          string    `json:"uid"`
	Email        string    `json:"email"`
	IDToken      string    `json:"idToken"`
	RefreshToken string    `json:"refreshToken"`
	SignedInAt   time.Time `json:"signedInAt"`
}

// AuthResult is the outcome of any gateway sign-in.
type AuthResult struct {
	User       *AuthenticatedUser
	IsNewUser  bool
	ProviderID string
	Credential *Credential
	Session    *AuthSession
}

// ProfileUpdate holds the optional profile fields to change.
type ProfileUpdate struct {
	DisplayName *string
	PhotoURL    *string
}
