// Package entity contains the core business objects of the project.
package entity

import "slices"

// Provider is an identity mechanism a user can authenticate with.
type Provider string

const (
	// ProviderPassword is the email/password provider.
	ProviderPassword Provider = "Password"
	// ProviderGoogle is Google sign-in.
	ProviderGoogle Provider = "Google"
	// ProviderGitHub is GitHub sign-in.
	ProviderGitHub Provider = "GitHub"
	// ProviderFacebook is Facebook login.
	ProviderFacebook Provider = "Facebook"
	// ProviderTwitter is Twitter sign-in.
	ProviderTwitter Provider = "Twitter"
	// ProviderUnknown stands for any identifier the platform reports that is not mapped above.
	ProviderUnknown Provider = "Unknown"
)

// Wire identifiers used by the identity platform.
const (
	ProviderIDPassword = "password"
	ProviderIDGoogle   = "google.com"
	ProviderIDGitHub   = "github.com"
	ProviderIDFacebook = "facebook.com"
	ProviderIDTwitter  = "twitter.com"
	ProviderIDUnknown  = "unknown"
)

//nolint:gochecknoglobals
var providerIDs = map[Provider]string{
	ProviderPassword: ProviderIDPassword,
	ProviderGoogle:   ProviderIDGoogle,
	ProviderGitHub:   ProviderIDGitHub,
	ProviderFacebook: ProviderIDFacebook,
	ProviderTwitter:  ProviderIDTwitter,
}

// KnownProviders lists every mapped provider in display order.
func KnownProviders() []Provider {
	return []Provider{ProviderPassword, ProviderGoogle, ProviderGitHub, ProviderFacebook, ProviderTwitter}
}

// String returns the string representation of the Provider.
func (p Provider) String() string {
	return string(p)
}

// IsValid reports whether p is one of the enumerated providers, Unknown included.
func (p Provider) IsValid() bool {
	if p == ProviderUnknown {
		return true
	}
	_, ok := providerIDs[p]

	return ok
}

// IsFederated reports whether p signs in through an external identity service.
func (p Provider) IsFederated() bool {
	return p != ProviderPassword && p != ProviderUnknown && p.IsValid()
}

// ToProvider maps a wire identifier to a Provider. Unmapped identifiers become ProviderUnknown.
func ToProvider(providerID string) Provider {
	for p, id := range providerIDs {
		if id == providerID {
			return p
		}
	}

	return ProviderUnknown
}

// ToProviderID maps a Provider to its wire identifier.
func ToProviderID(p Provider) string {
	if id, ok := providerIDs[p]; ok {
		return id
	}

	return ProviderIDUnknown
}

// Providers is a slice of Provider for convenience.
type Providers []Provider

// Contains checks if the slice contains a specific provider.
func (ps Providers) Contains(p Provider) bool {
	return slices.Contains(ps, p)
}

// ToProviderIDs converts the providers to their wire identifiers.
func (ps Providers) ToProviderIDs() []string {
	result := make([]string, len(ps))
	for i, p := range ps {
		result[i] = ToProviderID(p)
	}

	return result
}

// ProvidersFromIDs maps every wire identifier, keeping unmapped ones as ProviderUnknown.
func ProvidersFromIDs(ids []string) Providers {
	result := make(Providers, 0, len(ids))
	for _, id := range ids {
		result = append(result, ToProvider(id))
	}

	return result
}
