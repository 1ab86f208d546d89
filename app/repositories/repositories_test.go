package repositories_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/bookmart/app/models"
	"github.com/shashiranjanraj/bookmart/app/repositories"
	"github.com/shashiranjanraj/bookmart/database/schema"
	"github.com/shashiranjanraj/bookmart/pkg/database"
)

// setupDB opens a throwaway sqlite store with the full schema and seed data.
// Seeded fixtures: users 1 (admin) and 2 (staff), categories 1..N.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open("sqlite", filepath.Join(t.TempDir(), "bookmart.db"))
	require.NoError(t, err)
	require.NoError(t, schema.New(db).Open(schema.Version))
	return db
}

func newCustomer(t *testing.T, db *gorm.DB, name string) models.User {
	t.Helper()
	user := models.User{
		Username: name,
		Email:    name + "@example.com",
		Password: "secret",
		Role:     models.RoleCustomer,
		Status:   models.StatusActive,
	}
	require.NoError(t, repositories.NewUserRepository(db).Create(&user))
	return user
}

func newBook(t *testing.T, db *gorm.DB, title string, price float64, stock int) models.Book {
	t.Helper()
	book := models.Book{
		Title:      title,
		Author:     "Test Author",
		CategoryID: 1,
		Price:      price,
		Stock:      stock,
		Status:     models.StatusActive,
	}
	require.NoError(t, repositories.NewBookRepository(db).Create(&book))
	return book
}
