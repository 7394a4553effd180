package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handlers) History(c *gin.Context) {
	entries, err := h.Records.History()
	if err != nil {
		log.WithError(err).Error("list audit entries failed")
		c.String(http.StatusInternalServerError, "storage error")
		return
	}

	render(c, http.StatusOK, "history.html", gin.H{
		"entries": entries,
	})
}
