package service

import (
	"errors"

	"shiptrack/internal/authz"
	"shiptrack/internal/models"
	"shiptrack/internal/store"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RecordService ties authorization, record mutations and the audit trail
// together. Every mutation runs as authorize -> mutate -> audit-append, with
// the last two inside one transaction so the stores cannot drift apart: a
// failed append rolls the mutation back.
type RecordService struct {
	db      *gorm.DB
	records *store.RecordStore
	audit   *store.AuditStore
}

func NewRecordService(db *gorm.DB) *RecordService {
	return &RecordService{
		db:      db,
		records: store.NewRecordStore(db),
		audit:   store.NewAuditStore(db),
	}
}

// List returns all records in insertion order. Reads skip the audit log.
func (s *RecordService) List() ([]models.Record, error) {
	return s.records.List()
}

func (s *RecordService) Get(id uint) (models.Record, error) {
	return s.records.Get(id)
}

// History returns audit entries newest first.
func (s *RecordService) History() ([]models.AuditEntry, error) {
	return s.audit.List()
}

// Create inserts a record on behalf of the principal. Any authenticated role
// may create.
func (s *RecordService) Create(p authz.Principal, fields store.RecordFields) (uint, error) {
	if err := authz.Authorize(p, authz.ActionCreateRecord); err != nil {
		return 0, err
	}

	var id uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		id, err = s.records.WithTx(tx).Create(fields)
		if err != nil {
			return err
		}
		return s.audit.WithTx(tx).Append(p.Username, models.ActionCreate, id)
	})
	if err != nil {
		log.WithError(err).WithField("actor", p.Username).Error("create record failed")
		return 0, err
	}
	return id, nil
}

// Update replaces all fields of an existing record. Admin only. A missing id
// is surfaced as store.ErrNotFound and leaves the audit trail untouched.
func (s *RecordService) Update(p authz.Principal, id uint, fields store.RecordFields) error {
	if err := authz.Authorize(p, authz.ActionEditRecord); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.records.WithTx(tx).Update(id, fields); err != nil {
			return err
		}
		return s.audit.WithTx(tx).Append(p.Username, models.ActionEdit, id)
	})
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		log.WithError(err).WithFields(log.Fields{"actor": p.Username, "record": id}).
			Error("update record failed")
	}
	return err
}

// Delete removes a record for good. Admin only. Audit entries pointing at
// the id stay behind.
func (s *RecordService) Delete(p authz.Principal, id uint) error {
	if err := authz.Authorize(p, authz.ActionDeleteRecord); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.records.WithTx(tx).Delete(id); err != nil {
			return err
		}
		return s.audit.WithTx(tx).Append(p.Username, models.ActionDelete, id)
	})
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		log.WithError(err).WithFields(log.Fields{"actor": p.Username, "record": id}).
			Error("delete record failed")
	}
	return err
}
