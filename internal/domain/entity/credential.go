package entity

// Credential is proof of a successful authentication with one provider that may not be attached
// to any account yet. Only the identity gateway interprets its token fields.
type Credential struct {
	ProviderID   string `json:"providerId"`
	SignInMethod string `json:"signInMethod"`
	IDToken      string `json:"idToken,omitempty"`
	AccessToken  string `json:"accessToken,omitempty"`
	Secret       string `json:"secret,omitempty"`
	Email        string `json:"email,omitempty"`
	Password     string `json:"password,omitempty"`
}

// NewPasswordCredential builds the credential for an email/password pair.
func NewPasswordCredential(email, password string) *Credential {
	return &Credential{
		ProviderID:   ProviderIDPassword,
		SignInMethod: ProviderIDPassword,
		Email:        email,
		Password:     password,
	}
}

// Provider returns the enumerated provider of the credential.
func (c *Credential) Provider() Provider {
	if c == nil {
		return ProviderUnknown
	}

	return ToProvider(c.ProviderID)
}

// Method returns the sign-in method the credential represents.
func (c *Credential) Method() string {
	if c == nil {
		return ""
	}
	if c.SignInMethod != "" {
		return c.SignInMethod
	}

	return c.ProviderID
}

// PendingCredential is a credential discovered mid-flow that waits until the user proves
// ownership of the colliding account. At most one exists per session.
type PendingCredential struct {
	Email         string      `json:"email"`
	Password      string      `json:"password,omitempty"`
	Credential    *Credential `json:"credential"`
	CorrelationID string      `json:"correlationId,omitempty"`
}
