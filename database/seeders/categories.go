package seeders

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/bookmart/app/models"
)

func init() {
	Register("categories", SeedCategories)
}

// DefaultCategories is the fixed bootstrap category list. Order matters:
// each category's sort_order is its position here.
var DefaultCategories = []string{
	"Fiction",
	"Non-Fiction",
	"Science & Technology",
	"Business & Economics",
	"Children",
	"Comics & Graphic Novels",
	"Education",
	"Lifestyle",
}

// SeedCategories inserts the default category list with sort_order equal to
// list position, all active.
func SeedCategories(db *gorm.DB) error {
	for i, name := range DefaultCategories {
		category := models.Category{
			Name:      name,
			SortOrder: i,
			Status:    models.StatusActive,
		}
		if err := db.Create(&category).Error; err != nil {
			return err
		}
	}
	return nil
}
