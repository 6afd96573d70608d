package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"recipeblog-backend/internal/domains/blog/model"
	"recipeblog-backend/pkg/cache"
	"recipeblog-backend/pkg/logger"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

// blogCacheTTL keeps single-post reads hot without letting stale data
// linger long after an update slips past invalidation.
const blogCacheTTL = 5 * time.Minute

type postgresBlogRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresBlogRepository(pool *pgxpool.Pool, c cache.Cache) BlogRepository {
	return &postgresBlogRepository{pool: pool, cache: c}
}

func blogCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("blog:%s", id)
}

const blogColumns = `
	id, author_id, title, content, summary,
	category, cooking_time, servings,
	created_at, updated_at
`

func scanBlog(row pgx.Row) (*model.Blog, error) {
	b := &model.Blog{}
	err := row.Scan(
		&b.ID,
		&b.AuthorID,
		&b.Title,
		&b.Content,
		&b.Summary,
		&b.Category,
		&b.CookingTime,
		&b.Servings,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// =====================================================
// CREATE
// =====================================================

func (r *postgresBlogRepository) Create(ctx context.Context, blog *model.Blog) error {
	query := `
		INSERT INTO blogs (
			id, author_id, title, content, summary,
			category, cooking_time, servings,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		blog.ID,
		blog.AuthorID,
		blog.Title,
		blog.Content,
		blog.Summary,
		blog.Category,
		blog.CookingTime,
		blog.Servings,
		blog.CreatedAt,
		blog.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create blog: %w", err)
	}

	return nil
}

// =====================================================
// GET BY ID
// =====================================================

func (r *postgresBlogRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Blog, error) {
	// Try cache first. Cache failures degrade silently to the database.
	if r.cache != nil {
		cached := &model.Blog{}
		found, err := r.cache.Get(ctx, blogCacheKey(id), cached)
		if err != nil {
			logger.Error("blog cache read failed", err)
		} else if found {
			return cached, nil
		}
	}

	query := `SELECT ` + blogColumns + ` FROM blogs WHERE id = $1`

	blog, err := scanBlog(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBlogNotFound
		}
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, blogCacheKey(id), blog, blogCacheTTL); err != nil {
			logger.Error("blog cache write failed", err)
		}
	}

	return blog, nil
}

// =====================================================
// LIST
// =====================================================

func (r *postgresBlogRepository) List(ctx context.Context, authorID *uuid.UUID) ([]*model.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs`

	args := []interface{}{}
	if authorID != nil {
		query += ` WHERE author_id = $1`
		args = append(args, *authorID)
	}

	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	defer rows.Close()

	var blogs []*model.Blog
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan blog: %w", err)
		}
		blogs = append(blogs, blog)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read blogs: %w", err)
	}

	return blogs, nil
}

// =====================================================
// UPDATE
// =====================================================

func (r *postgresBlogRepository) Update(ctx context.Context, blog *model.Blog) error {
	// author_id is deliberately absent from the SET list - ownership
	// never changes after creation
	query := `
		UPDATE blogs
		SET
			title = $2,
			content = $3,
			summary = $4,
			category = $5,
			cooking_time = $6,
			servings = $7,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		blog.ID,
		blog.Title,
		blog.Content,
		blog.Summary,
		blog.Category,
		blog.CookingTime,
		blog.Servings,
	)

	if err != nil {
		return fmt.Errorf("failed to update blog: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrBlogNotFound
	}

	r.invalidate(ctx, blog.ID)

	return nil
}

// =====================================================
// DELETE
// =====================================================

func (r *postgresBlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM blogs WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrBlogNotFound
	}

	r.invalidate(ctx, id)

	return nil
}

// invalidate drops the cached entry after a mutation
func (r *postgresBlogRepository) invalidate(ctx context.Context, id uuid.UUID) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Delete(ctx, blogCacheKey(id)); err != nil {
		logger.Error("blog cache invalidation failed", err)
	}
}
