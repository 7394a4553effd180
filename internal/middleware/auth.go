package middleware

import (
	"net/http"

	"shiptrack/internal/authz"

	"github.com/gin-gonic/gin"
)

// RequireAuth redirects anonymous visitors to the login page.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentPrincipal(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequirePermission gates a route on the authorization policy. A logged-in
// user with the wrong role gets a plain 403, not a redirect.
func RequirePermission(action authz.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := CurrentPrincipal(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		if !authz.Allowed(p.Role, action) {
			c.String(http.StatusForbidden, "access denied")
			c.Abort()
			return
		}
		c.Next()
	}
}
