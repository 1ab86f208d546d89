package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/bookmart/app/models"
	"github.com/shashiranjanraj/bookmart/pkg/dberr"
	"github.com/shashiranjanraj/bookmart/pkg/validate"
)

// UserRepository handles database operations for User.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create persists a new user. Duplicate username/email surfaces as a
// constraint violation.
func (r *UserRepository) Create(user *models.User) error {
	if errs := validate.Struct(user); validate.HasErrors(errs) {
		return validationError(errs)
	}
	return dberr.Translate(r.db.Create(user).Error)
}

// FindByID looks up a user by primary key.
func (r *UserRepository) FindByID(id uint) (models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	return user, dberr.Translate(err)
}

// FindByEmail looks up a user by their email address.
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	return user, dberr.Translate(err)
}

// FindByUsername looks up a user by username.
func (r *UserRepository) FindByUsername(username string) (models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	return user, dberr.Translate(err)
}

// Update persists changes to an existing user.
func (r *UserRepository) Update(user *models.User) error {
	if errs := validate.Struct(user); validate.HasErrors(errs) {
		return validationError(errs)
	}
	return dberr.Translate(r.db.Save(user).Error)
}

// Delete removes a user permanently. Dependent cart rows, reviews, and
// notifications go with it through the cascade constraints; orders stay for
// the audit trail.
func (r *UserRepository) Delete(id uint) error {
	result := r.db.Delete(&models.User{}, id)
	if result.Error != nil {
		return dberr.Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// Exists reports whether a user row with the given id is present.
func (r *UserRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// All returns every user, optionally filtered by role.
func (r *UserRepository) All(role string) ([]models.User, error) {
	var users []models.User
	q := r.db.Order("id")
	if role != "" {
		q = q.Where("role = ?", role)
	}
	err := q.Find(&users).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, dberr.Translate(err)
	}
	return users, nil
}
