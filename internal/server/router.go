package server

import (
	"net/http"

	"shiptrack/internal/authz"
	"shiptrack/internal/config"
	"shiptrack/internal/handlers"
	"shiptrack/internal/middleware"
	"shiptrack/internal/service"
	"shiptrack/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func NewRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Static("/static", "./web/static")
	r.LoadHTMLGlob("web/templates/*.html")

	cookieStore := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("shiptrack_session", cookieStore))
	r.Use(middleware.InjectUser())

	h := handlers.New(
		store.NewUserStore(db),
		service.NewRecordService(db),
		cfg.ExportPath,
	)

	// AUTH
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	// RECORDS
	auth.GET("/", h.ListRecords)
	auth.POST("/new", h.CreateRecord)

	// editing and deleting records is admin only
	auth.GET("/edit/:id",
		middleware.RequirePermission(authz.ActionEditRecord),
		h.ShowEditRecord,
	)
	auth.POST("/edit/:id",
		middleware.RequirePermission(authz.ActionEditRecord),
		h.UpdateRecord,
	)
	auth.GET("/delete/:id",
		middleware.RequirePermission(authz.ActionDeleteRecord),
		h.DeleteRecord,
	)

	// HISTORY / EXPORT
	auth.GET("/history", h.History)
	auth.GET("/export", h.Export)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
