package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"recipeblog-backend/internal/domains/blog/model"
	"recipeblog-backend/internal/domains/blog/repository"
	"recipeblog-backend/internal/domains/user"
	"recipeblog-backend/pkg/logger"
)

// =====================================================
// BLOG SERVICE IMPLEMENTATION
// =====================================================

type blogService struct {
	repo     repository.BlogRepository
	userRepo user.Repository
}

func NewBlogService(repo repository.BlogRepository, userRepo user.Repository) BlogService {
	return &blogService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// =====================================================
// CREATE
// =====================================================

func (s *blogService) CreateBlog(ctx context.Context, authorID uuid.UUID, req *model.CreateBlogRequest) (*model.BlogResponse, error) {
	// 1. Validate request
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. Apply recipe defaults
	category := req.Category
	if category == "" {
		category = model.DefaultCategory
	}

	cookingTime := model.DefaultCookingTime
	if req.CookingTime != nil {
		cookingTime = *req.CookingTime
	}

	servings := model.DefaultServings
	if req.Servings != nil {
		servings = *req.Servings
	}

	// 3. Build entity, author taken from the authenticated caller
	now := time.Now()
	blog := &model.Blog{
		ID:          uuid.New(),
		AuthorID:    authorID,
		Title:       req.Title,
		Content:     req.Content,
		Summary:     req.Summary,
		Category:    category,
		CookingTime: cookingTime,
		Servings:    servings,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// 4. Persist
	if err := s.repo.Create(ctx, blog); err != nil {
		return nil, err
	}

	return s.toResponse(ctx, blog), nil
}

// =====================================================
// READ
// =====================================================

func (s *blogService) GetBlog(ctx context.Context, id uuid.UUID) (*model.BlogResponse, error) {
	blog, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.toResponse(ctx, blog), nil
}

func (s *blogService) ListBlogs(ctx context.Context, req *model.ListBlogsRequest) (*model.ListBlogsResponse, error) {
	blogs, err := s.repo.List(ctx, req.Author)
	if err != nil {
		return nil, err
	}

	return s.toListResponse(ctx, blogs), nil
}

func (s *blogService) ListMyBlogs(ctx context.Context, userID uuid.UUID) (*model.ListBlogsResponse, error) {
	blogs, err := s.repo.List(ctx, &userID)
	if err != nil {
		return nil, err
	}

	return s.toListResponse(ctx, blogs), nil
}

// =====================================================
// UPDATE
// =====================================================

func (s *blogService) UpdateBlog(ctx context.Context, id, userID uuid.UUID, req *model.UpdateBlogRequest) (*model.BlogResponse, error) {
	// 1. Validate request
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. Load current state. Missing posts report not-found before
	// any ownership verdict.
	blog, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 3. Ownership check
	if !blog.IsOwnedBy(userID) {
		return nil, model.ErrNotOwner
	}

	// 4. Merge: absent fields keep their prior values
	if req.Title != nil {
		blog.Title = *req.Title
	}
	if req.Content != nil {
		blog.Content = *req.Content
	}
	if req.Summary != nil {
		blog.Summary = *req.Summary
	}
	if req.Category != nil {
		blog.Category = *req.Category
	}
	if req.CookingTime != nil {
		blog.CookingTime = *req.CookingTime
	}
	if req.Servings != nil {
		blog.Servings = *req.Servings
	}
	blog.UpdatedAt = time.Now()

	// 5. Persist
	if err := s.repo.Update(ctx, blog); err != nil {
		return nil, err
	}

	return s.toResponse(ctx, blog), nil
}

// =====================================================
// DELETE
// =====================================================

func (s *blogService) DeleteBlog(ctx context.Context, id, userID uuid.UUID) error {
	// Same decision order as UpdateBlog: existence first, then ownership
	blog, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !blog.IsOwnedBy(userID) {
		return model.ErrNotOwner
	}

	return s.repo.Delete(ctx, id)
}

// =====================================================
// AUTHOR JOIN
// =====================================================

// authorInfo resolves a post's author for display. A missing account
// (deleted after posting) yields a bare entry carrying just the ID.
func (s *blogService) authorInfo(ctx context.Context, authorID uuid.UUID) user.AuthorInfo {
	author, err := s.userRepo.FindByID(ctx, authorID)
	if err != nil {
		if !errors.Is(err, user.ErrUserNotFound) {
			logger.Error("failed to resolve blog author", err)
		}
		return user.AuthorInfo{ID: authorID}
	}
	return author.ToAuthorInfo()
}

func (s *blogService) toResponse(ctx context.Context, blog *model.Blog) *model.BlogResponse {
	return &model.BlogResponse{
		ID:          blog.ID,
		Title:       blog.Title,
		Content:     blog.Content,
		Summary:     blog.Summary,
		Category:    blog.Category,
		CookingTime: blog.CookingTime,
		Servings:    blog.Servings,
		Author:      s.authorInfo(ctx, blog.AuthorID),
		CreatedAt:   blog.CreatedAt,
		UpdatedAt:   blog.UpdatedAt,
	}
}

func (s *blogService) toListResponse(ctx context.Context, blogs []*model.Blog) *model.ListBlogsResponse {
	// Authors repeat across a listing, resolve each one once
	authors := make(map[uuid.UUID]user.AuthorInfo)

	responses := make([]model.BlogResponse, 0, len(blogs))
	for _, blog := range blogs {
		info, ok := authors[blog.AuthorID]
		if !ok {
			info = s.authorInfo(ctx, blog.AuthorID)
			authors[blog.AuthorID] = info
		}

		responses = append(responses, model.BlogResponse{
			ID:          blog.ID,
			Title:       blog.Title,
			Content:     blog.Content,
			Summary:     blog.Summary,
			Category:    blog.Category,
			CookingTime: blog.CookingTime,
			Servings:    blog.Servings,
			Author:      info,
			CreatedAt:   blog.CreatedAt,
			UpdatedAt:   blog.UpdatedAt,
		})
	}

	return &model.ListBlogsResponse{
		Count: len(responses),
		Blogs: responses,
	}
}
