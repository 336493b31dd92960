package handlers

import (
	"net/http"

	"roastery/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	latestOrdersLimit = 20
	allOrdersLimit    = 200
)

// AdminDashboard shows order volume: three scalar aggregates plus the
// most recent orders across all customers.
func (h *Handler) AdminDashboard(c *gin.Context) {
	var total, open, inWork int64

	if err := h.db.Model(&models.Order{}).Count(&total).Error; err != nil {
		c.String(http.StatusInternalServerError, "Fehler beim Laden der Statistik")
		return
	}
	if err := h.db.Model(&models.Order{}).
		Where("status = ?", models.StatusOffen).Count(&open).Error; err != nil {
		c.String(http.StatusInternalServerError, "Fehler beim Laden der Statistik")
		return
	}
	if err := h.db.Model(&models.Order{}).
		Where("status = ?", models.StatusInArbeit).Count(&inWork).Error; err != nil {
		c.String(http.StatusInternalServerError, "Fehler beim Laden der Statistik")
		return
	}

	var latest []models.Order
	if err := h.db.Order("id desc").Limit(latestOrdersLimit).Find(&latest).Error; err != nil {
		c.String(http.StatusInternalServerError, "Fehler beim Laden der Bestellungen")
		return
	}

	h.render(c, http.StatusOK, "admin_dashboard.html", gin.H{
		"title":    "Admin Dashboard",
		"subtitle": "Rösterei",
		"stats": gin.H{
			"totalOrders":  total,
			"openOrders":   open,
			"inWorkOrders": inWork,
		},
		"latest": latest,
	})
}

// AdminListOrders lists orders of every customer, capped to keep the
// response bounded.
func (h *Handler) AdminListOrders(c *gin.Context) {
	var orders []models.Order
	err := h.db.Preload("Items").
		Order("id desc").
		Limit(allOrdersLimit).
		Find(&orders).Error
	if err != nil {
		c.String(http.StatusInternalServerError, "Fehler beim Laden der Bestellungen")
		return
	}

	h.render(c, http.StatusOK, "admin_orders.html", gin.H{
		"title":    "Alle Bestellungen",
		"subtitle": "Rösterei",
		"orders":   orders,
	})
}
