package handlers

import (
	"errors"
	"net/http"

	"shiptrack/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handlers) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"error": ""})
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (h *Handlers) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Invalid form data"})
		return
	}

	principal, err := h.Users.Authenticate(form.Username, form.Password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Invalid username or password"})
			return
		}
		log.WithError(err).Error("login lookup failed")
		render(c, http.StatusInternalServerError, "login.html", gin.H{"error": "Something went wrong, try again"})
		return
	}

	sess := sessions.Default(c)
	sess.Set("user_id", principal.ID)
	sess.Set("username", principal.Username)
	sess.Set("role", string(principal.Role))
	_ = sess.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *Handlers) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/login")
}
