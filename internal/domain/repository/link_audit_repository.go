package repository

import (
	"context"

	"firelink/internal/domain/entity"
)

// LinkAuditRepository persists the steps of linking flows for later inspection.
type LinkAuditRepository interface {
	// Record stores one audit entry.
	Record(ctx context.Context, entry *entity.LinkAuditEntry) error

	// FindByCorrelationID returns every entry of one flow, oldest first.
	FindByCorrelationID(ctx context.Context, correlationID string) ([]*entity.LinkAuditEntry, error)
}
