// Package policy holds the email domain rules.
package policy

import (
	"strings"

	"firelink/internal/domain/entity"
	"firelink/internal/domain/service"
)

// DomainPolicy reserves whole email domains for one provider.
type DomainPolicy struct {
	reserved map[string]entity.Provider
}

var _ service.EmailDomainPolicy = (*DomainPolicy)(nil)

// NewDomainPolicy builds a policy from domain to provider pairs.
func NewDomainPolicy(reserved map[string]entity.Provider) *DomainPolicy {
	normalized := make(map[string]entity.Provider, len(reserved))
	for domain, provider := range reserved {
		normalized[strings.ToLower(strings.TrimPrefix(domain, "@"))] = provider
	}

	return &DomainPolicy{reserved: normalized}
}

// NewGmailPolicy reserves gmail.com addresses for Google sign-in.
func NewGmailPolicy() service.EmailDomainPolicy {
	return NewDomainPolicy(map[string]entity.Provider{"gmail.com": entity.ProviderGoogle})
}

func (p *DomainPolicy) ReservedProvider(email string) (entity.Provider, bool) {
	at := strings.LastIndexByte(email, '@')
	if at < 0 || at == len(email)-1 {
		return "", false
	}
	provider, ok := p.reserved[strings.ToLower(strings.TrimSpace(email[at+1:]))]

	return provider, ok
}
