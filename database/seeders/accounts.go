package seeders

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/bookmart/app/models"
	"github.com/shashiranjanraj/bookmart/config"
	"github.com/shashiranjanraj/bookmart/pkg/hash"
)

func init() {
	Register("accounts", SeedAccounts)
}

// SeedAccounts inserts the two bootstrap accounts: one administrator and one
// staff member, both active. Passwords come from config so deployments can
// override the development defaults.
func SeedAccounts(db *gorm.DB) error {
	accounts := []struct {
		username string
		email    string
		passKey  string
		fallback string
		role     string
	}{
		{"admin", "admin@bookmart.local", "ADMIN_PASSWORD", "admin123", models.RoleAdmin},
		{"staff", "staff@bookmart.local", "STAFF_PASSWORD", "staff123", models.RoleStaff},
	}

	for _, a := range accounts {
		hashed, err := hash.Make(config.Get(a.passKey, a.fallback))
		if err != nil {
			return err
		}

		user := models.User{
			Username: a.username,
			Email:    a.email,
			Password: hashed,
			Role:     a.role,
			Status:   models.StatusActive,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}

	return nil
}
