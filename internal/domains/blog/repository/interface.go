package repository

import (
	"context"

	"github.com/google/uuid"

	"recipeblog-backend/internal/domains/blog/model"
)

// BlogRepository is the persistence contract for posts.
// No optimistic-concurrency token: concurrent updates to the same post
// are last-write-wins.
type BlogRepository interface {
	// Create inserts a new post
	Create(ctx context.Context, blog *model.Blog) error

	// GetByID returns a post by ID.
	// Returns model.ErrBlogNotFound when missing.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Blog, error)

	// List returns posts ordered by creation time, newest first.
	// authorID, when non-nil, narrows the listing to one author.
	List(ctx context.Context, authorID *uuid.UUID) ([]*model.Blog, error)

	// Update persists title/content/summary/category/cooking_time/servings.
	// The author column is never written here.
	Update(ctx context.Context, blog *model.Blog) error

	// Delete removes a post.
	// Returns model.ErrBlogNotFound when missing.
	Delete(ctx context.Context, id uuid.UUID) error
}
