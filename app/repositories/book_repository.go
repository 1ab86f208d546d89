package repositories

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/bookmart/app/models"
	"github.com/shashiranjanraj/bookmart/pkg/cache"
	"github.com/shashiranjanraj/bookmart/pkg/dberr"
	"github.com/shashiranjanraj/bookmart/pkg/validate"
)

// bookCacheTTL bounds staleness of cached catalogue reads.
const bookCacheTTL = 5 * time.Minute

// BookRepository handles database operations for Book. Point lookups are
// read-through cached; every write invalidates the book's cache entry.
type BookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) *BookRepository {
	return &BookRepository{db: db}
}

func bookCacheKey(id uint) string {
	return fmt.Sprintf("book:%d", id)
}

// Create persists a new book. The category must exist.
func (r *BookRepository) Create(book *models.Book) error {
	if errs := validate.Struct(book); validate.HasErrors(errs) {
		return validationError(errs)
	}
	return dberr.Translate(r.db.Create(book).Error)
}

// FindByID looks up a book by primary key, serving from cache when possible.
func (r *BookRepository) FindByID(id uint) (models.Book, error) {
	var book models.Book
	if cache.Get(bookCacheKey(id), &book) {
		return book, nil
	}

	if err := r.db.First(&book, id).Error; err != nil {
		return book, dberr.Translate(err)
	}

	_ = cache.Set(bookCacheKey(id), book, bookCacheTTL)
	return book, nil
}

// ByCategory returns active books in a category, best-rated first.
func (r *BookRepository) ByCategory(categoryID uint) ([]models.Book, error) {
	var books []models.Book
	err := r.db.Where("category_id = ? AND status = ?", categoryID, models.StatusActive).
		Order("rating DESC, id").
		Find(&books).Error
	return books, dberr.Translate(err)
}

// Search matches title or author against the given term.
func (r *BookRepository) Search(term string) ([]models.Book, error) {
	var books []models.Book
	pattern := "%" + term + "%"
	err := r.db.Where("title LIKE ? OR author LIKE ?", pattern, pattern).
		Order("sold_count DESC, id").
		Find(&books).Error
	return books, dberr.Translate(err)
}

// Update persists changes to an existing book and drops its cache entry.
func (r *BookRepository) Update(book *models.Book) error {
	if errs := validate.Struct(book); validate.HasErrors(errs) {
		return validationError(errs)
	}
	if err := dberr.Translate(r.db.Save(book).Error); err != nil {
		return err
	}
	return cache.Forget(bookCacheKey(book.ID))
}

// RecordSale moves qty units from stock to sold_count. Fulfilment callers
// use it when an order ships; the update refuses to overdraw stock.
func (r *BookRepository) RecordSale(id uint, qty int) error {
	if qty < 1 {
		return fmt.Errorf("%w: sale quantity must be positive", dberr.ErrConstraint)
	}

	result := r.db.Model(&models.Book{}).
		Where("id = ? AND stock >= ?", id, qty).
		Updates(map[string]interface{}{
			"stock":      gorm.Expr("stock - ?", qty),
			"sold_count": gorm.Expr("sold_count + ?", qty),
		})
	if result.Error != nil {
		return dberr.Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		// Either the book is gone or stock would go negative.
		var count int64
		if err := r.db.Model(&models.Book{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return dberr.Translate(err)
		}
		if count == 0 {
			return dberr.ErrNotFound
		}
		return fmt.Errorf("%w: insufficient stock for book %d", dberr.ErrConstraint, id)
	}
	return cache.Forget(bookCacheKey(id))
}

// Delete removes a book permanently; cart rows and reviews cascade with it,
// order items keep their snapshot.
func (r *BookRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Book{}, id)
	if result.Error != nil {
		return dberr.Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return cache.Forget(bookCacheKey(id))
}

// Exists reports whether a book row with the given id is present.
func (r *BookRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Book{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
