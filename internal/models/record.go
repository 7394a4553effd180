package models

import "time"

// Record is one shipment entry. Date is kept as the raw text the user
// entered; parsing/formatting happens at the boundaries (handlers, export).
// There is no soft-delete column: deletion removes the row for good.
type Record struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Date             string  `gorm:"size:20;not null"`
	DeliveryNote     string  `gorm:"size:100"`
	InvoiceReference string  `gorm:"size:100"`
	Supplier         string  `gorm:"size:255"`
	Quantity         float64 `gorm:"not null;default:0"`
}
