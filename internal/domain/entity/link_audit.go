package entity

import (
	"time"

	"github.com/google/uuid"
)

// LinkAuditEntry is one persisted step of a linking flow.
type LinkAuditEntry struct {
	ID            uuid.UUID
	CorrelationID string
	SessionID     string
	Email         string
	Type          string
	Provider      string
	Detail        string
	OccurredAt    time.Time
}
