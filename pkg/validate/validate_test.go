package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/bookmart/pkg/validate"
)

type account struct {
	Username string  `json:"username" validate:"required,alpha_dash,min=2,max=100"`
	Email    string  `json:"email"    validate:"required,email"`
	Role     string  `json:"role"     validate:"required,in=admin,staff,customer"`
	Rating   float64 `json:"rating"   validate:"required,between=1,5"`
}

func TestStructPassesValidInput(t *testing.T) {
	errs := validate.Struct(&account{
		Username: "book_worm",
		Email:    "worm@example.com",
		Role:     "customer",
		Rating:   4.5,
	})
	assert.False(t, validate.HasErrors(errs), "got: %v", errs)
}

func TestStructRequired(t *testing.T) {
	errs := validate.Struct(&account{Role: "admin", Rating: 3})
	assert.Contains(t, errs, "username")
	assert.Contains(t, errs, "email")
}

func TestStructEmail(t *testing.T) {
	errs := validate.Struct(&account{
		Username: "worm", Email: "not-an-email", Role: "admin", Rating: 3,
	})
	assert.Contains(t, errs, "email")
}

func TestStructInWithMultiValueParam(t *testing.T) {
	// "in=admin,staff,customer" must not be split apart at its commas.
	good := validate.Struct(&account{
		Username: "worm", Email: "worm@example.com", Role: "staff", Rating: 3,
	})
	assert.NotContains(t, good, "role")

	bad := validate.Struct(&account{
		Username: "worm", Email: "worm@example.com", Role: "root", Rating: 3,
	})
	assert.Contains(t, bad, "role")
}

func TestStructBetween(t *testing.T) {
	for _, rating := range []float64{0.5, 5.5} {
		errs := validate.Struct(&account{
			Username: "worm", Email: "worm@example.com", Role: "admin", Rating: rating,
		})
		assert.Contains(t, errs, "rating", "rating %v", rating)
	}

	ok := validate.Struct(&account{
		Username: "worm", Email: "worm@example.com", Role: "admin", Rating: 1,
	})
	assert.NotContains(t, ok, "rating")
}

func TestStructAlphaDash(t *testing.T) {
	errs := validate.Struct(&account{
		Username: "no spaces!", Email: "worm@example.com", Role: "admin", Rating: 3,
	})
	assert.Contains(t, errs, "username")
}

func TestStructNumericBounds(t *testing.T) {
	type stocked struct {
		Price float64 `json:"price" validate:"gte=0"`
		Stock int     `json:"stock" validate:"gte=0,lte=10000"`
	}

	errs := validate.Struct(&stocked{Price: -0.01, Stock: 20000})
	assert.Contains(t, errs, "price")
	assert.Contains(t, errs, "stock")

	assert.False(t, validate.HasErrors(validate.Struct(&stocked{Price: 0, Stock: 0})))
}

func TestStructIgnoresUntaggedFields(t *testing.T) {
	type loose struct {
		Anything string
	}
	assert.False(t, validate.HasErrors(validate.Struct(&loose{})))
}
