package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToProvider(t *testing.T) {
	tests := []struct {
		id   string
		want Provider
	}{
		{id: "password", want: ProviderPassword},
		{id: "google.com", want: ProviderGoogle},
		{id: "github.com", want: ProviderGitHub},
		{id: "facebook.com", want: ProviderFacebook},
		{id: "twitter.com", want: ProviderTwitter},
		{id: "saml.corp", want: ProviderUnknown},
		{id: "", want: ProviderUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, ToProvider(tt.id))
		})
	}
}

func TestToProviderID_RoundTrip(t *testing.T) {
	for _, p := range KnownProviders() {
		assert.Equal(t, p, ToProvider(ToProviderID(p)), p.String())
	}

	assert.Equal(t, ProviderIDUnknown, ToProviderID(ProviderUnknown))
}

func TestProvider_IsFederated(t *testing.T) {
	assert.False(t, ProviderPassword.IsFederated())
	assert.False(t, ProviderUnknown.IsFederated())
	assert.False(t, Provider("Myspace").IsFederated())
	assert.True(t, ProviderGoogle.IsFederated())
	assert.True(t, ProviderGitHub.IsFederated())
}

func TestProvidersFromIDs_KeepsUnknown(t *testing.T) {
	got := ProvidersFromIDs([]string{"password", "oidc.corp", "google.com"})

	assert.Equal(t, Providers{ProviderPassword, ProviderUnknown, ProviderGoogle}, got)
	assert.Equal(t, []string{"password", "unknown", "google.com"}, got.ToProviderIDs())
}

func TestCredential_Method(t *testing.T) {
	var nilCredential *Credential
	assert.Empty(t, nilCredential.Method())
	assert.Equal(t, ProviderUnknown, nilCredential.Provider())

	assert.Equal(t, "password", NewPasswordCredential("a@example.com", "x").Method())
	assert.Equal(t, "github.com", (&Credential{ProviderID: "github.com"}).Method())
}

func TestAuthenticatedUser_Providers(t *testing.T) {
	user := &AuthenticatedUser{ProviderData: []ProviderInfo{{ProviderID: "github.com"}, {ProviderID: "password"}}}

	assert.Equal(t, Providers{ProviderGitHub, ProviderPassword}, user.Providers())
	assert.True(t, user.Providers().Contains(ProviderPassword))

	var nilUser *AuthenticatedUser
	assert.Nil(t, nilUser.Providers())
}
