package handlers

import (
	"net/http"

	"roastery/internal/middleware"
	"roastery/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Index(c *gin.Context) {
	if _, ok := h.sessions.Get(c); ok {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

func (h *Handler) Dashboard(c *gin.Context) {
	user, _ := middleware.UserFrom(c)

	data := gin.H{
		"title":   "Dashboard",
		"role":    string(user.Role),
		"isAdmin": user.Role == models.RoleAdmin,
	}

	if user.Role.Can(models.PermPlaceOrders) {
		var open int64
		if err := h.db.Model(&models.Order{}).
			Where("user_id = ? AND status = ?", user.ID, models.StatusOffen).
			Count(&open).Error; err != nil {
			c.String(http.StatusInternalServerError, "Fehler beim Laden des Dashboards")
			return
		}
		data["openOrders"] = open
	}

	h.render(c, http.StatusOK, "dashboard.html", data)
}

// Placeholder serves the menu entries that have no workflow behind
// them yet, so none of the links 404.
func (h *Handler) Placeholder(title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.render(c, http.StatusOK, "placeholder.html", gin.H{"title": title})
	}
}
