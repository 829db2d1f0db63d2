package service

import "firelink/internal/domain/entity"

// EmailDomainPolicy decides which provider, if any, owns an email address's domain.
type EmailDomainPolicy interface {
	// ReservedProvider returns the provider an address must be registered with, and whether one is reserved.
	ReservedProvider(email string) (entity.Provider, bool)
}
