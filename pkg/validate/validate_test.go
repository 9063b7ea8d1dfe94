package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type productPayload struct {
	Name        string  `json:"name"        validate:"required"`
	Price       float64 `json:"price"       validate:"numeric,min=1"`
	Description string  `json:"description" validate:"required"`
	Stock       int     `json:"stock"       validate:"integer,min=1"`
	Category    string  `json:"category"    validate:"required"`
}

func TestStructValidPayload(t *testing.T) {
	errs := Struct(productPayload{
		Name:        "Desk Lamp",
		Price:       29.9,
		Description: "LED desk lamp",
		Stock:       12,
		Category:    "Home",
	})

	assert.False(t, HasErrors(errs))
}

func TestStructCollectsAllFieldErrors(t *testing.T) {
	errs := Struct(productPayload{
		Name:  "",
		Price: 0,
		Stock: 0,
	})

	// Every failing field is reported, not just the first.
	assert.Len(t, errs, 5)
	assert.Equal(t, "The name field is required.", errs["name"])
	assert.Equal(t, "The price must be at least 1.", errs["price"])
	assert.Equal(t, "The description field is required.", errs["description"])
	assert.Equal(t, "The stock must be at least 1.", errs["stock"])
	assert.Equal(t, "The category field is required.", errs["category"])
}

func TestStructMinBoundary(t *testing.T) {
	errs := Struct(productPayload{
		Name:        "Pen",
		Price:       1, // exactly at the boundary
		Description: "Ballpoint pen",
		Stock:       1,
		Category:    "Office",
	})

	assert.False(t, HasErrors(errs))
}

func TestJoinIsDeterministic(t *testing.T) {
	errs := map[string]string{
		"stock": "The stock must be at least 1.",
		"name":  "The name field is required.",
	}

	joined := Join(errs)
	assert.Equal(t, "The name field is required., The stock must be at least 1.", joined)
}

func TestJoinMentionsFailingField(t *testing.T) {
	errs := Struct(productPayload{
		Price:       10,
		Description: "d",
		Stock:       5,
		Category:    "c",
	})

	assert.True(t, HasErrors(errs))
	assert.True(t, strings.Contains(Join(errs), "name"))
}

func TestNullableSkipsEmptyField(t *testing.T) {
	type payload struct {
		Website string `json:"website" validate:"nullable,min=5"`
	}

	assert.False(t, HasErrors(Struct(payload{})))
	assert.True(t, HasErrors(Struct(payload{Website: "abc"})))
}

func TestInRule(t *testing.T) {
	type payload struct {
		Field string `json:"field" validate:"required,in=name|description"`
	}

	assert.False(t, HasErrors(Struct(payload{Field: "name"})))
	assert.False(t, HasErrors(Struct(payload{Field: "description"})))

	errs := Struct(payload{Field: "price"})
	assert.Equal(t, "The selected field is invalid.", errs["field"])
}

func TestEmailRule(t *testing.T) {
	type payload struct {
		Email string `json:"email" validate:"required,email"`
	}

	assert.False(t, HasErrors(Struct(payload{Email: "admin@example.com"})))
	assert.True(t, HasErrors(Struct(payload{Email: "not-an-email"})))
}
