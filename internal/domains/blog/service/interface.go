package service

import (
	"context"

	"github.com/google/uuid"

	"recipeblog-backend/internal/domains/blog/model"
)

// BlogService is the application-level contract for posts.
// Mutating operations take the authenticated caller's ID and enforce
// ownership: only the author of a post may update or delete it.
type BlogService interface {
	// CreateBlog creates a post owned by authorID
	CreateBlog(ctx context.Context, authorID uuid.UUID, req *model.CreateBlogRequest) (*model.BlogResponse, error)

	// GetBlog returns one post with its author joined in
	GetBlog(ctx context.Context, id uuid.UUID) (*model.BlogResponse, error)

	// ListBlogs returns all posts, newest first, optionally filtered
	// by author
	ListBlogs(ctx context.Context, req *model.ListBlogsRequest) (*model.ListBlogsResponse, error)

	// ListMyBlogs returns the caller's own posts, newest first
	ListMyBlogs(ctx context.Context, userID uuid.UUID) (*model.ListBlogsResponse, error)

	// UpdateBlog applies a partial update.
	// Returns model.ErrBlogNotFound before any ownership verdict when
	// the post does not exist, and model.ErrNotOwner when the caller
	// is not its author.
	UpdateBlog(ctx context.Context, id, userID uuid.UUID, req *model.UpdateBlogRequest) (*model.BlogResponse, error)

	// DeleteBlog removes a post under the same ownership rules as
	// UpdateBlog
	DeleteBlog(ctx context.Context, id, userID uuid.UUID) error
}
