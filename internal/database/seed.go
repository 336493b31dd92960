package database

import (
	"fmt"
	"log"

	"roastery/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed creates the default admin plus two demo customer accounts.
// Skipped entirely once any user exists, so it is safe on every start.
func Seed(db *gorm.DB, adminUsername, adminPassword string) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("database: count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	type seedUser struct {
		Username string
		Password string
		Role     models.Role
		Label    string
	}

	users := []seedUser{
		{Username: adminUsername, Password: adminPassword, Role: models.RoleAdmin, Label: "Rösterei Admin"},
		{Username: "filiale1", Password: "branch123", Role: models.RoleBranch, Label: "Filiale 1"},
		{Username: "b2b1", Password: "b2b123", Role: models.RoleB2B, Label: "B2B Kunde 1"},
	}

	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("database: hash password for %s: %w", u.Username, err)
		}

		user := models.User{
			Username:     u.Username,
			PasswordHash: string(hash),
			Role:         u.Role,
			Label:        u.Label,
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("database: create seed user %s: %w", u.Username, err)
		}

		log.Printf("created seed user: %s (role=%s)", u.Username, u.Role)
	}

	return nil
}
