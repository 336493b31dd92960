package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"roastery/internal/middleware"
	"roastery/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const ownOrdersLimit = 50

// ListOrders shows the session user's own orders, newest first.
func (h *Handler) ListOrders(c *gin.Context) {
	user, _ := middleware.UserFrom(c)

	var orders []models.Order
	err := h.db.Preload("Items").
		Where("user_id = ?", user.ID).
		Order("id desc").
		Limit(ownOrdersLimit).
		Find(&orders).Error
	if err != nil {
		c.String(http.StatusInternalServerError, "Fehler beim Laden der Bestellungen")
		return
	}

	h.render(c, http.StatusOK, "orders_list.html", gin.H{
		"title":  "Meine Bestellungen",
		"orders": orders,
	})
}

func (h *Handler) ShowNewOrder(c *gin.Context) {
	h.render(c, http.StatusOK, "orders_new.html", gin.H{
		"title": "Neue Bestellung",
	})
}

func (h *Handler) renderOrderError(c *gin.Context, msg string) {
	h.render(c, http.StatusBadRequest, "orders_new.html", gin.H{
		"title": "Neue Bestellung",
		"error": msg,
	})
}

// CreateOrder validates the form and writes order plus line item in one
// transaction; customer type and label are snapshots of the session
// user at this instant.
func (h *Handler) CreateOrder(c *gin.Context) {
	user, _ := middleware.UserFrom(c)

	product := strings.TrimSpace(c.PostForm("product"))
	size := strings.TrimSpace(c.PostForm("size"))
	qtyStr := strings.TrimSpace(c.PostForm("qty"))
	notes := strings.TrimSpace(c.PostForm("notes"))

	if product == "" {
		h.renderOrderError(c, "Bitte gib ein Produkt an.")
		return
	}
	if size == "" {
		h.renderOrderError(c, "Bitte gib eine Größe an (z.B. 1kg, 5kg, 11kg).")
		return
	}

	qty := 1
	if qtyStr != "" {
		n, err := strconv.Atoi(qtyStr)
		if err != nil || n < 1 {
			h.renderOrderError(c, "Die Menge muss eine positive Zahl sein.")
			return
		}
		qty = n
	}

	if len(notes) < 3 {
		h.renderOrderError(c, "Bitte gib eine kurze Notiz zur Bestellung ein (mindestens 3 Zeichen).")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		order := models.Order{
			UserID:        user.ID,
			CustomerType:  user.Role.CustomerType(),
			CustomerLabel: user.Label,
			Status:        models.StatusOffen,
			Notes:         notes,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		item := models.OrderItem{
			OrderID: order.ID,
			Product: product,
			Size:    size,
			Qty:     qty,
		}
		return tx.Create(&item).Error
	})
	if err != nil {
		c.String(http.StatusInternalServerError, "Bestellung konnte nicht gespeichert werden")
		return
	}

	c.Redirect(http.StatusFound, "/orders")
}
