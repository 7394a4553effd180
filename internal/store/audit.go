package store

import (
	"shiptrack/internal/models"

	"gorm.io/gorm"
)

// AuditStore is the append-only history of record mutations. There is no
// update or delete surface on purpose.
type AuditStore struct {
	db *gorm.DB
}

func NewAuditStore(db *gorm.DB) *AuditStore {
	return &AuditStore{db: db}
}

func (s *AuditStore) WithTx(tx *gorm.DB) *AuditStore {
	return &AuditStore{db: tx}
}

// Append writes one entry with a server-assigned timestamp.
func (s *AuditStore) Append(actor string, action models.AuditAction, recordID uint) error {
	entry := models.AuditEntry{
		ActorUsername: actor,
		Action:        action,
		RecordID:      recordID,
	}
	return s.db.Create(&entry).Error
}

// List returns entries newest first. Timestamps from the same second keep
// insertion order reversed, so id breaks the tie.
func (s *AuditStore) List() ([]models.AuditEntry, error) {
	var entries []models.AuditEntry
	if err := s.db.Order("created_at desc, id desc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
