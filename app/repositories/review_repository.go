package repositories

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/bookmart/app/models"
	"github.com/shashiranjanraj/bookmart/pkg/cache"
	"github.com/shashiranjanraj/bookmart/pkg/dberr"
	"github.com/shashiranjanraj/bookmart/pkg/validate"
)

// ReviewRepository handles database operations for Review.
type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create persists a review and refreshes the book's denormalised rating in
// the same transaction. A rating outside [1.0, 5.0] is rejected before the
// store is touched; the check constraint backs this up.
func (r *ReviewRepository) Create(review *models.Review) error {
	if errs := validate.Struct(review); validate.HasErrors(errs) {
		return validationError(errs)
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return dberr.Translate(err)
		}
		return r.refreshBookRating(tx, review.BookID)
	})
}

// ByBook returns a book's reviews, newest first.
func (r *ReviewRepository) ByBook(bookID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("book_id = ?", bookID).Order("id DESC").Find(&reviews).Error
	return reviews, dberr.Translate(err)
}

// ByUser returns a user's reviews, newest first.
func (r *ReviewRepository) ByUser(userID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("user_id = ?", userID).Order("id DESC").Find(&reviews).Error
	return reviews, dberr.Translate(err)
}

// Delete removes a review and refreshes the book's rating.
func (r *ReviewRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var review models.Review
		if err := tx.First(&review, id).Error; err != nil {
			return dberr.Translate(err)
		}
		if err := tx.Delete(&models.Review{}, id).Error; err != nil {
			return dberr.Translate(err)
		}
		return r.refreshBookRating(tx, review.BookID)
	})
}

// refreshBookRating recomputes the book's average rating from its reviews.
// A book with no reviews goes back to 0.
func (r *ReviewRepository) refreshBookRating(tx *gorm.DB, bookID uint) error {
	var avg float64
	err := tx.Model(&models.Review{}).
		Where("book_id = ?", bookID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	if err != nil {
		return dberr.Translate(err)
	}

	if err := tx.Model(&models.Book{}).Where("id = ?", bookID).
		Update("rating", avg).Error; err != nil {
		return dberr.Translate(err)
	}
	return cache.Forget(bookCacheKey(bookID))
}
