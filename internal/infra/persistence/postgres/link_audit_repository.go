// Package postgres contains the link audit persistence using GORM and PostgreSQL.
package postgres

import (
	"context"

	"firelink/internal/domain/entity"
	domainerrors "firelink/internal/domain/errors"
	"firelink/internal/domain/repository"
	"firelink/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// linkAuditRepository implements the repository.LinkAuditRepository interface.
type linkAuditRepository struct {
	db *gorm.DB
}

// NewLinkAuditRepository is the constructor for linkAuditRepository.
func NewLinkAuditRepository(db *gorm.DB) repository.LinkAuditRepository {
	return &linkAuditRepository{
		db: db,
	}
}

// Record inserts the entry. A redelivered entry with a known ID is ignored.
func (repo *linkAuditRepository) Record(ctx context.Context, entry *entity.LinkAuditEntry) error {
	auditM := fromLinkAuditDomain(entry)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(auditM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required audit information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record link audit entry")
	}

	return nil
}

// FindByCorrelationID returns every entry of one flow, oldest first.
func (repo *linkAuditRepository) FindByCorrelationID(ctx context.Context, correlationID string) ([]*entity.LinkAuditEntry, error) {
	var auditMs []*model.LinkAuditModel

	err := repo.db.WithContext(ctx).
		Where("correlation_id = ?", correlationID).
		Order("occurred_at ASC").
		Find(&auditMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find link audit entries")
	}

	entries := make([]*entity.LinkAuditEntry, 0, len(auditMs))
	for _, auditM := range auditMs {
		entries = append(entries, toLinkAuditDomain(auditM))
	}

	return entries, nil
}

// --- Mapper functions ---

func fromLinkAuditDomain(entry *entity.LinkAuditEntry) *model.LinkAuditModel {
	return &model.LinkAuditModel{
		ID:            entry.ID,
		CorrelationID: entry.CorrelationID,
		SessionID:     entry.SessionID,
		Email:         entry.Email,
		Type:          entry.Type,
		Provider:      entry.Provider,
		Detail:        entry.Detail,
		OccurredAt:    entry.OccurredAt,
	}
}

func toLinkAuditDomain(auditM *model.LinkAuditModel) *entity.LinkAuditEntry {
	return &entity.LinkAuditEntry{
		ID:            auditM.ID,
		CorrelationID: auditM.CorrelationID,
		SessionID:     auditM.SessionID,
		Email:         auditM.Email,
		Type:          auditM.Type,
		Provider:      auditM.Provider,
		Detail:        auditM.Detail,
		OccurredAt:    auditM.OccurredAt,
	}
}
