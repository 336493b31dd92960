package server

import (
	"net/http"

	"roastery/internal/config"
	"roastery/internal/handlers"
	"roastery/internal/middleware"
	"roastery/internal/models"
	"roastery/internal/session"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func NewRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Static("/static", cfg.StaticDir)
	r.LoadHTMLGlob(cfg.TemplateGlob)

	cookies := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("roastery_session", cookies))

	store := session.NewCookieStore()
	r.Use(middleware.InjectUser(store))

	h := handlers.New(db, store)

	r.GET("/", h.Index)

	// AUTH
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth(store))

	auth.GET("/dashboard", h.Dashboard)
	auth.GET("/stock", h.Placeholder("Lagerbestand"))

	// BESTELLUNGEN (Filialen und B2B-Kunden)
	orders := auth.Group("/")
	orders.Use(middleware.RequirePermission(store, models.PermPlaceOrders))

	orders.GET("/orders", h.ListOrders)
	orders.GET("/orders/new", h.ShowNewOrder)
	orders.POST("/orders/new", h.CreateOrder)

	// ADMIN
	admin := r.Group("/admin")
	admin.Use(middleware.RequireRole(store, models.RoleAdmin))

	admin.GET("", h.AdminDashboard)
	admin.GET("/orders", h.AdminListOrders)
	admin.GET("/production", h.Placeholder("Produktion"))
	admin.GET("/coffees", h.Placeholder("Kaffeesorten"))
	admin.GET("/inventory", h.Placeholder("Lagerverwaltung"))
	admin.GET("/users", h.Placeholder("Benutzer"))

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
