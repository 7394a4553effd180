package handlers

import (
	"net/http"

	"shiptrack/internal/export"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Export writes the full record snapshot to the configured xlsx file,
// replacing the previous export, and answers with a confirmation.
func (h *Handlers) Export(c *gin.Context) {
	records, err := h.Records.List()
	if err != nil {
		log.WithError(err).Error("export: list records failed")
		c.String(http.StatusInternalServerError, "storage error")
		return
	}

	if err := export.Write(records, h.ExportPath); err != nil {
		log.WithError(err).WithField("path", h.ExportPath).Error("export failed")
		c.String(http.StatusInternalServerError, "export failed")
		return
	}

	c.String(http.StatusOK, "spreadsheet updated: %s", h.ExportPath)
}
