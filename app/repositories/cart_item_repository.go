package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/bookmart/app/models"
	"github.com/shashiranjanraj/bookmart/pkg/dberr"
)

// CartItemRepository handles the persisted cart rows. The (user, book)
// uniqueness makes Add an upsert: an existing row gets its quantity
// incremented, never a second row.
type CartItemRepository struct {
	db *gorm.DB
}

func NewCartItemRepository(db *gorm.DB) *CartItemRepository {
	return &CartItemRepository{db: db}
}

// Add puts qty of a book into the user's persisted cart, incrementing the
// existing row when one is present.
func (r *CartItemRepository) Add(userID, bookID uint, qty int) error {
	if qty < 1 {
		return fmt.Errorf("%w: cart quantity must be positive", dberr.ErrConstraint)
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		var row models.CartItem
		err := tx.Where("user_id = ? AND book_id = ?", userID, bookID).First(&row).Error

		switch {
		case err == nil:
			row.Quantity += qty
			return dberr.Translate(tx.Save(&row).Error)
		case errors.Is(err, gorm.ErrRecordNotFound):
			row = models.CartItem{UserID: userID, BookID: bookID, Quantity: qty, IsSelected: true}
			return dberr.Translate(tx.Create(&row).Error)
		default:
			return dberr.Translate(err)
		}
	})
}

// SetQuantity overwrites the row's quantity; qty <= 0 removes the row.
func (r *CartItemRepository) SetQuantity(userID, bookID uint, qty int) error {
	if qty <= 0 {
		return r.Remove(userID, bookID)
	}

	result := r.db.Model(&models.CartItem{}).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Update("quantity", qty)
	if result.Error != nil {
		return dberr.Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// SetSelected toggles whether a row takes part in checkout.
func (r *CartItemRepository) SetSelected(userID, bookID uint, selected bool) error {
	result := r.db.Model(&models.CartItem{}).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Update("is_selected", selected)
	if result.Error != nil {
		return dberr.Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// ByUser returns the user's cart rows with their books, oldest first.
func (r *CartItemRepository) ByUser(userID uint) ([]models.CartItem, error) {
	var rows []models.CartItem
	err := r.db.Preload("Book").
		Where("user_id = ?", userID).
		Order("id").
		Find(&rows).Error
	return rows, dberr.Translate(err)
}

// Remove deletes one row from the user's cart.
func (r *CartItemRepository) Remove(userID, bookID uint) error {
	result := r.db.Where("user_id = ? AND book_id = ?", userID, bookID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return dberr.Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// Clear empties the user's persisted cart.
func (r *CartItemRepository) Clear(userID uint) error {
	return dberr.Translate(
		r.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error)
}
