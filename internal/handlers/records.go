package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"shiptrack/internal/authz"
	"shiptrack/internal/middleware"
	"shiptrack/internal/store"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// recordDateLayouts are the date shapes the form accepts: the HTML date
// input's value and the hand-typed day/month/year variant.
var recordDateLayouts = []string{"2006-01-02", "02/01/2006"}

// parseRecordForm validates the boundary input. Malformed dates and
// quantities are rejected here instead of being persisted as-is.
func parseRecordForm(c *gin.Context) (store.RecordFields, string) {
	date := strings.TrimSpace(c.PostForm("date"))
	deliveryNote := strings.TrimSpace(c.PostForm("delivery_note"))
	invoice := strings.TrimSpace(c.PostForm("invoice_reference"))
	supplier := strings.TrimSpace(c.PostForm("supplier"))
	quantityStr := strings.TrimSpace(c.PostForm("quantity"))

	if date == "" {
		return store.RecordFields{}, "Date is required"
	}
	valid := false
	for _, layout := range recordDateLayouts {
		if _, err := time.Parse(layout, date); err == nil {
			valid = true
			break
		}
	}
	if !valid {
		return store.RecordFields{}, "Date must be YYYY-MM-DD or DD/MM/YYYY"
	}

	quantity, err := strconv.ParseFloat(quantityStr, 64)
	if err != nil {
		return store.RecordFields{}, "Quantity must be a number"
	}

	return store.RecordFields{
		Date:             date,
		DeliveryNote:     deliveryNote,
		InvoiceReference: invoice,
		Supplier:         supplier,
		Quantity:         quantity,
	}, ""
}

func (h *Handlers) ListRecords(c *gin.Context) {
	records, err := h.Records.List()
	if err != nil {
		log.WithError(err).Error("list records failed")
		c.String(http.StatusInternalServerError, "storage error")
		return
	}

	render(c, http.StatusOK, "records_list.html", gin.H{
		"records": records,
		"error":   "",
	})
}

func (h *Handlers) CreateRecord(c *gin.Context) {
	p, _ := middleware.CurrentPrincipal(c)

	fields, msg := parseRecordForm(c)
	if msg != "" {
		records, _ := h.Records.List()
		render(c, http.StatusBadRequest, "records_list.html", gin.H{
			"records": records,
			"error":   msg,
		})
		return
	}

	if _, err := h.Records.Create(p, fields); err != nil {
		if errors.Is(err, authz.ErrUnauthorized) {
			c.String(http.StatusForbidden, "access denied")
			return
		}
		c.String(http.StatusInternalServerError, "storage error")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *Handlers) ShowEditRecord(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	record, err := h.Records.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.String(http.StatusNotFound, "record not found")
			return
		}
		c.String(http.StatusInternalServerError, "storage error")
		return
	}

	render(c, http.StatusOK, "records_edit.html", gin.H{
		"record": record,
		"error":  "",
	})
}

func (h *Handlers) UpdateRecord(c *gin.Context) {
	p, _ := middleware.CurrentPrincipal(c)

	id, ok := recordID(c)
	if !ok {
		return
	}

	fields, msg := parseRecordForm(c)
	if msg != "" {
		record, err := h.Records.Get(id)
		if err != nil {
			c.String(http.StatusNotFound, "record not found")
			return
		}
		render(c, http.StatusBadRequest, "records_edit.html", gin.H{
			"record": record,
			"error":  msg,
		})
		return
	}

	if err := h.Records.Update(p, id, fields); err != nil {
		switch {
		case errors.Is(err, authz.ErrUnauthorized):
			c.String(http.StatusForbidden, "access denied")
		case errors.Is(err, store.ErrNotFound):
			c.String(http.StatusNotFound, "record not found")
		default:
			c.String(http.StatusInternalServerError, "storage error")
		}
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *Handlers) DeleteRecord(c *gin.Context) {
	p, _ := middleware.CurrentPrincipal(c)

	id, ok := recordID(c)
	if !ok {
		return
	}

	if err := h.Records.Delete(p, id); err != nil {
		switch {
		case errors.Is(err, authz.ErrUnauthorized):
			c.String(http.StatusForbidden, "access denied")
		case errors.Is(err, store.ErrNotFound):
			c.String(http.StatusNotFound, "record not found")
		default:
			c.String(http.StatusInternalServerError, "storage error")
		}
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func recordID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "invalid record id")
		return 0, false
	}
	return uint(id), true
}
