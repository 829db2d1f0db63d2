package model

import (
	"time"

	"github.com/google/uuid"
)

// LinkAuditModel is the GORM-specific struct for the 'link_audit_entries' table.
// One row is one step of a linking flow.
type LinkAuditModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	CorrelationID string    `gorm:"type:varchar(64);not null;index"`
	SessionID     string    `gorm:"type:varchar(64);not null"`
	Email         string    `gorm:"type:varchar(320)"`
	Type          string    `gorm:"type:varchar(50);not null"`
	Provider      string    `gorm:"type:varchar(50)"`
	Detail        string    `gorm:"type:text"`
	OccurredAt    time.Time `gorm:"not null;index"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (LinkAuditModel) TableName() string {
	return "link_audit_entries"
}
