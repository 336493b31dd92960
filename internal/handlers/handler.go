package handlers

import (
	"roastery/internal/session"

	"gorm.io/gorm"
)

// Handler bundles the dependencies every route needs. Both are
// injected so tests can run against an in-memory database.
type Handler struct {
	db       *gorm.DB
	sessions session.Store
}

func New(db *gorm.DB, sessions session.Store) *Handler {
	return &Handler{db: db, sessions: sessions}
}
