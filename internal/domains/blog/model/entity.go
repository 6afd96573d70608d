package model

import (
	"time"

	"github.com/google/uuid"
)

// Category is the fixed set of recipe categories
type Category string

const (
	CategoryBreakfast Category = "Breakfast"
	CategoryLunch     Category = "Lunch"
	CategoryDinner    Category = "Dinner"
	CategoryDessert   Category = "Dessert"
	CategorySnack     Category = "Snack"
	CategoryBeverage  Category = "Beverage"
)

// DefaultCategory applies when a post is created without one
const DefaultCategory = CategoryDinner

// Defaults for optional recipe attributes
const (
	DefaultCookingTime = 30 // minutes
	DefaultServings    = 4
)

// Categories lists every valid category, for validation
func Categories() []interface{} {
	return []interface{}{
		CategoryBreakfast,
		CategoryLunch,
		CategoryDinner,
		CategoryDessert,
		CategorySnack,
		CategoryBeverage,
	}
}

// Blog represents a recipe post.
// AuthorID is set from the authenticated caller at creation and is
// immutable afterwards - nothing in the codebase writes it again.
type Blog struct {
	ID       uuid.UUID `json:"id"`
	AuthorID uuid.UUID `json:"author_id"`

	Title   string `json:"title"`   // max 200 chars
	Content string `json:"content"` // opaque rich text, stored verbatim
	Summary string `json:"summary"` // max 500 chars

	Category    Category `json:"category"`
	CookingTime int      `json:"cooking_time"` // minutes
	Servings    int      `json:"servings"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsOwnedBy reports whether the given user may mutate this post
func (b *Blog) IsOwnedBy(userID uuid.UUID) bool {
	return b.AuthorID == userID
}
