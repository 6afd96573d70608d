package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"recipeblog-backend/internal/domains/user"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// CreateBlogRequest creates a new post.
// No author field on purpose - the author is always the authenticated
// caller, never client-supplied.
type CreateBlogRequest struct {
	Title       string   `json:"title" binding:"required"`
	Content     string   `json:"content" binding:"required"`
	Summary     string   `json:"summary" binding:"required"`
	Category    Category `json:"category,omitempty"`
	CookingTime *int     `json:"cooking_time,omitempty"`
	Servings    *int     `json:"servings,omitempty"`
}

func (r CreateBlogRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 200).Error("title cannot be more than 200 characters"),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
		),
		validation.Field(&r.Summary,
			validation.Required.Error("summary is required"),
			validation.Length(1, 500).Error("summary cannot be more than 500 characters"),
		),
		validation.Field(&r.Category,
			validation.When(r.Category != "", validation.In(Categories()...).Error("invalid category")),
		),
		validation.Field(&r.CookingTime,
			validation.When(r.CookingTime != nil, validation.Min(1).Error("cooking time must be at least 1 minute")),
		),
		validation.Field(&r.Servings,
			validation.When(r.Servings != nil, validation.Min(1).Error("servings must be at least 1")),
		),
	)
}

// UpdateBlogRequest is a partial update: only fields present in the
// request are validated and applied, absent fields keep prior values.
type UpdateBlogRequest struct {
	Title       *string   `json:"title,omitempty"`
	Content     *string   `json:"content,omitempty"`
	Summary     *string   `json:"summary,omitempty"`
	Category    *Category `json:"category,omitempty"`
	CookingTime *int      `json:"cooking_time,omitempty"`
	Servings    *int      `json:"servings,omitempty"`
}

func (r UpdateBlogRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.When(r.Title != nil, validation.Length(1, 200).Error("title cannot be more than 200 characters")),
		),
		validation.Field(&r.Content,
			validation.When(r.Content != nil, validation.Length(1, 0).Error("content cannot be empty")),
		),
		validation.Field(&r.Summary,
			validation.When(r.Summary != nil, validation.Length(1, 500).Error("summary cannot be more than 500 characters")),
		),
		validation.Field(&r.Category,
			validation.When(r.Category != nil, validation.In(Categories()...).Error("invalid category")),
		),
		validation.Field(&r.CookingTime,
			validation.When(r.CookingTime != nil, validation.Min(1).Error("cooking time must be at least 1 minute")),
		),
		validation.Field(&r.Servings,
			validation.When(r.Servings != nil, validation.Min(1).Error("servings must be at least 1")),
		),
	)
}

// ListBlogsRequest filters the public listing.
// The author filter is a convenience, not a security boundary.
type ListBlogsRequest struct {
	Author *uuid.UUID `form:"author"`
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// BlogResponse is a post with its author joined in.
// The author lookup happens explicitly in the service after store
// retrieval - the ownership check operates on the plain AuthorID.
type BlogResponse struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Summary string    `json:"summary"`

	Category    Category `json:"category"`
	CookingTime int      `json:"cooking_time"`
	Servings    int      `json:"servings"`

	Author user.AuthorInfo `json:"author"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListBlogsResponse wraps a listing with its count
type ListBlogsResponse struct {
	Count int            `json:"count"`
	Blogs []BlogResponse `json:"blogs"`
}
