package repositories

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/bookmart/app/models"
	"github.com/shashiranjanraj/bookmart/pkg/dberr"
	"github.com/shashiranjanraj/bookmart/pkg/validate"
)

// CategoryRepository handles database operations for Category.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create persists a new category; a duplicate name is a constraint violation.
func (r *CategoryRepository) Create(category *models.Category) error {
	if errs := validate.Struct(category); validate.HasErrors(errs) {
		return validationError(errs)
	}
	return dberr.Translate(r.db.Create(category).Error)
}

// FindByID looks up a category by primary key.
func (r *CategoryRepository) FindByID(id uint) (models.Category, error) {
	var category models.Category
	err := r.db.First(&category, id).Error
	return category, dberr.Translate(err)
}

// All returns every category in display order.
func (r *CategoryRepository) All() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("sort_order, id").Find(&categories).Error
	return categories, dberr.Translate(err)
}

// Update persists changes to an existing category.
func (r *CategoryRepository) Update(category *models.Category) error {
	if errs := validate.Struct(category); validate.HasErrors(errs) {
		return validationError(errs)
	}
	return dberr.Translate(r.db.Save(category).Error)
}

// Delete removes a category. Deleting one that still has books fails with a
// constraint violation; books do not cascade.
func (r *CategoryRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Category{}, id)
	if result.Error != nil {
		return dberr.Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
