package handlers

import (
	"roastery/internal/middleware"
	"roastery/internal/nav"

	"github.com/gin-gonic/gin"
)

// render wraps c.HTML and fills in the shared view model: navigation,
// user label and the page subtitle. Handlers only supply what differs.
func (h *Handler) render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if _, ok := data["subtitle"]; !ok {
		data["subtitle"] = "Bestellsystem"
	}
	if _, ok := data["error"]; !ok {
		data["error"] = ""
	}

	if user, ok := middleware.UserFrom(c); ok {
		data["nav"] = nav.Build(&user, c.Request.URL.Path)
		data["userLabel"] = user.Label
	} else {
		data["nav"] = nav.Build(nil, c.Request.URL.Path)
		data["userLabel"] = ""
	}

	c.HTML(status, tmpl, data)
}
