package models

import "time"

type AuditAction string

const (
	ActionCreate AuditAction = "create"
	ActionEdit   AuditAction = "edit"
	ActionDelete AuditAction = "delete"
)

// AuditEntry is append-only: rows are created on every successful record
// mutation and never updated or deleted. RecordID is informational — the
// record it points at may have been deleted since.
type AuditEntry struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	ActorUsername string      `gorm:"size:50;not null"`
	Action        AuditAction `gorm:"size:20;not null"`
	RecordID      uint        `gorm:"not null"`
}
