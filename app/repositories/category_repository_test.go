package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/bookmart/app/models"
	"github.com/shashiranjanraj/bookmart/app/repositories"
	"github.com/shashiranjanraj/bookmart/database/seeders"
	"github.com/shashiranjanraj/bookmart/pkg/dberr"
)

func TestCategoryAllReturnsSeedOrder(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewCategoryRepository(db)

	all, err := repo.All()
	require.NoError(t, err)
	require.Len(t, all, len(seeders.DefaultCategories))
	for i, c := range all {
		assert.Equal(t, seeders.DefaultCategories[i], c.Name)
	}
}

func TestCategoryDuplicateNameIsConstraint(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewCategoryRepository(db)

	dup := models.Category{Name: seeders.DefaultCategories[0], Status: models.StatusActive}
	err := repo.Create(&dup)
	require.Error(t, err)
	assert.True(t, dberr.IsConstraint(err))
}

func TestCategoryDeleteWithBooksIsConstraint(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewCategoryRepository(db)

	newBook(t, db, "Dune", 9.99, 5)

	err := repo.Delete(1)
	require.Error(t, err)
	assert.True(t, dberr.IsConstraint(err), "books do not cascade with their category")
}

func TestCategoryDeleteEmpty(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewCategoryRepository(db)

	fresh := models.Category{Name: "Ephemera", SortOrder: 99, Status: models.StatusActive}
	require.NoError(t, repo.Create(&fresh))
	require.NoError(t, repo.Delete(fresh.ID))

	_, err := repo.FindByID(fresh.ID)
	assert.True(t, dberr.IsNotFound(err))
}
