package store

import (
	"errors"

	"shiptrack/internal/models"

	"gorm.io/gorm"
)

// RecordFields carries the mutable fields of a record. Update replaces all
// of them, so callers must send the full set.
type RecordFields struct {
	Date             string
	DeliveryNote     string
	InvoiceReference string
	Supplier         string
	Quantity         float64
}

// RecordStore is the CRUD surface for shipment records. It does no
// validation and no authorization; those live at the boundaries above it.
type RecordStore struct {
	db *gorm.DB
}

func NewRecordStore(db *gorm.DB) *RecordStore {
	return &RecordStore{db: db}
}

// WithTx returns a store bound to the given transaction handle.
func (s *RecordStore) WithTx(tx *gorm.DB) *RecordStore {
	return &RecordStore{db: tx}
}

// List returns all records in insertion order.
func (s *RecordStore) List() ([]models.Record, error) {
	var records []models.Record
	if err := s.db.Order("id asc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *RecordStore) Get(id uint) (models.Record, error) {
	var record models.Record
	if err := s.db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Record{}, ErrNotFound
		}
		return models.Record{}, err
	}
	return record, nil
}

// Create inserts a new record and returns its DB-assigned id. Ids are
// monotonically increasing and never reused for the life of the row.
func (s *RecordStore) Create(fields RecordFields) (uint, error) {
	record := models.Record{
		Date:             fields.Date,
		DeliveryNote:     fields.DeliveryNote,
		InvoiceReference: fields.InvoiceReference,
		Supplier:         fields.Supplier,
		Quantity:         fields.Quantity,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return 0, err
	}
	return record.ID, nil
}

// Update replaces all mutable fields of the record. Returns ErrNotFound when
// no row has that id.
func (s *RecordStore) Update(id uint, fields RecordFields) error {
	res := s.db.Model(&models.Record{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"date":              fields.Date,
			"delivery_note":     fields.DeliveryNote,
			"invoice_reference": fields.InvoiceReference,
			"supplier":          fields.Supplier,
			"quantity":          fields.Quantity,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the row physically. Audit entries referencing the id are
// left in place.
func (s *RecordStore) Delete(id uint) error {
	res := s.db.Delete(&models.Record{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
