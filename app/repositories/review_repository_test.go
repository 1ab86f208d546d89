package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/bookmart/app/models"
	"github.com/shashiranjanraj/bookmart/app/repositories"
	"github.com/shashiranjanraj/bookmart/pkg/dberr"
)

func TestReviewCreateRefreshesBookRating(t *testing.T) {
	db := setupDB(t)
	reviews := repositories.NewReviewRepository(db)
	books := repositories.NewBookRepository(db)

	user := newCustomer(t, db, "critic")
	other := newCustomer(t, db, "fan")
	book := newBook(t, db, "Dune", 9.99, 5)

	require.NoError(t, reviews.Create(&models.Review{
		BookID: book.ID, UserID: user.ID, Rating: 3, Comment: "fine",
	}))
	require.NoError(t, reviews.Create(&models.Review{
		BookID: book.ID, UserID: other.ID, Rating: 5, Comment: "superb",
	}))

	found, err := books.FindByID(book.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, found.Rating, 0.001)
}

func TestReviewRatingOutOfRangeIsConstraint(t *testing.T) {
	db := setupDB(t)
	reviews := repositories.NewReviewRepository(db)

	user := newCustomer(t, db, "critic")
	book := newBook(t, db, "Dune", 9.99, 5)

	for _, rating := range []float64{0.5, 5.5} {
		err := reviews.Create(&models.Review{
			BookID: book.ID, UserID: user.ID, Rating: rating,
		})
		require.Error(t, err, "rating %v", rating)
		assert.True(t, dberr.IsConstraint(err), "rating %v", rating)
	}

	all, err := reviews.ByBook(book.ID)
	require.NoError(t, err)
	assert.Empty(t, all, "rejected reviews never reach the store")
}

func TestReviewDeleteRefreshesBookRating(t *testing.T) {
	db := setupDB(t)
	reviews := repositories.NewReviewRepository(db)
	books := repositories.NewBookRepository(db)

	user := newCustomer(t, db, "critic")
	book := newBook(t, db, "Dune", 9.99, 5)

	review := models.Review{BookID: book.ID, UserID: user.ID, Rating: 2}
	require.NoError(t, reviews.Create(&review))
	require.NoError(t, reviews.Delete(review.ID))

	found, err := books.FindByID(book.ID)
	require.NoError(t, err)
	assert.Zero(t, found.Rating, "no reviews means rating 0")
}

func TestReviewByUser(t *testing.T) {
	db := setupDB(t)
	reviews := repositories.NewReviewRepository(db)

	user := newCustomer(t, db, "critic")
	first := newBook(t, db, "Dune", 9.99, 5)
	second := newBook(t, db, "Foundation", 7.50, 5)

	require.NoError(t, reviews.Create(&models.Review{BookID: first.ID, UserID: user.ID, Rating: 4}))
	require.NoError(t, reviews.Create(&models.Review{BookID: second.ID, UserID: user.ID, Rating: 5}))

	mine, err := reviews.ByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, second.ID, mine[0].BookID, "newest first")
}
