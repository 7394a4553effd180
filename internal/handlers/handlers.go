package handlers

import (
	"shiptrack/internal/middleware"
	"shiptrack/internal/models"
	"shiptrack/internal/service"
	"shiptrack/internal/store"

	"github.com/gin-gonic/gin"
)

// Handlers bundles the collaborators the HTTP layer needs. Everything is
// injected; there are no package globals.
type Handlers struct {
	Users      *store.UserStore
	Records    *service.RecordService
	ExportPath string
}

func New(users *store.UserStore, records *service.RecordService, exportPath string) *Handlers {
	return &Handlers{
		Users:      users,
		Records:    records,
		ExportPath: exportPath,
	}
}

// render wraps c.HTML and threads the current principal into every template.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if p, ok := middleware.CurrentPrincipal(c); ok {
		data["CurrentUsername"] = p.Username
		data["IsAdmin"] = p.Role == models.RoleAdmin
	}

	c.HTML(status, tmpl, data)
}
