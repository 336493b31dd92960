package handlers

import (
	"net/http"

	"roastery/internal/models"
	"roastery/internal/session"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const loginErrMsg = "Benutzername oder Passwort ist falsch."

func (h *Handler) ShowLogin(c *gin.Context) {
	if _, ok := h.sessions.Get(c); ok {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	h.render(c, http.StatusOK, "login.html", gin.H{"title": "Login"})
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// Login verifies credentials and establishes the session. Unknown
// username and wrong password produce byte-identical responses.
func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusBadRequest, "login.html", gin.H{
			"title": "Login",
			"error": loginErrMsg,
		})
		return
	}

	var user models.User
	if err := h.db.Where("username = ?", form.Username).First(&user).Error; err != nil {
		h.render(c, http.StatusBadRequest, "login.html", gin.H{
			"title": "Login",
			"error": loginErrMsg,
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		h.render(c, http.StatusBadRequest, "login.html", gin.H{
			"title": "Login",
			"error": loginErrMsg,
		})
		return
	}

	err := h.sessions.Set(c, session.User{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
		Label:    user.DisplayLabel(),
	})
	if err != nil {
		c.String(http.StatusInternalServerError, "Sitzung konnte nicht gespeichert werden")
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *Handler) Logout(c *gin.Context) {
	_ = h.sessions.Destroy(c)
	c.Redirect(http.StatusFound, "/login")
}
