package middleware

import (
	"shiptrack/internal/authz"
	"shiptrack/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const principalKey = "Principal"

// InjectUser rebuilds the principal from the session and puts it on the gin
// context for handlers downstream.
func InjectUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		uid, okID := sess.Get("user_id").(uint)
		username, okName := sess.Get("username").(string)
		role, okRole := sess.Get("role").(string)
		if okID && okName && okRole && uid > 0 {
			c.Set(principalKey, authz.Principal{
				ID:       uid,
				Username: username,
				Role:     models.UserRole(role),
			})
		}

		c.Next()
	}
}

// CurrentPrincipal returns the principal set by InjectUser, if any.
func CurrentPrincipal(c *gin.Context) (authz.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return authz.Principal{}, false
	}
	p, ok := v.(authz.Principal)
	return p, ok
}
