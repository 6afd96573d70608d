package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"recipeblog-backend/internal/domains/blog/model"
	"recipeblog-backend/internal/domains/blog/service"
	"recipeblog-backend/internal/shared/middleware"
	"recipeblog-backend/internal/shared/response"
	"recipeblog-backend/pkg/logger"
)

// =====================================================
// BLOG HANDLER
// =====================================================

type BlogHandler struct {
	blogService service.BlogService
}

func NewBlogHandler(blogService service.BlogService) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
	}
}

// ListBlogs returns all posts, optionally filtered by author
// GET /api/v1/blogs?author=<uuid>
func (h *BlogHandler) ListBlogs(c *gin.Context) {
	var req model.ListBlogsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid author filter")
		return
	}

	resp, err := h.blogService.ListBlogs(c.Request.Context(), &req)
	if err != nil {
		h.mapBlogError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ListMyBlogs returns the authenticated caller's posts
// GET /api/v1/blogs/my-blogs
func (h *BlogHandler) ListMyBlogs(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}

	resp, err := h.blogService.ListMyBlogs(c.Request.Context(), userID)
	if err != nil {
		h.mapBlogError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// GetBlog returns a single post
// GET /api/v1/blogs/:id
func (h *BlogHandler) GetBlog(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid blog id")
		return
	}

	resp, err := h.blogService.GetBlog(c.Request.Context(), id)
	if err != nil {
		h.mapBlogError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// CreateBlog creates a post owned by the authenticated caller
// POST /api/v1/blogs
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	// Step 1: Resolve caller
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}

	// Step 2: Bind request body
	var req model.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Step 3: Validate request
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid blog data", err)
		return
	}

	// Step 4: Call service
	resp, err := h.blogService.CreateBlog(c.Request.Context(), userID, &req)
	if err != nil {
		h.mapBlogError(c, err)
		return
	}

	// Step 5: Return created post
	response.Success(c, http.StatusCreated, resp)
}

// UpdateBlog applies a partial update to an owned post
// PUT /api/v1/blogs/:id
func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid blog id")
		return
	}

	var req model.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid blog data", err)
		return
	}

	resp, err := h.blogService.UpdateBlog(c.Request.Context(), id, userID, &req)
	if err != nil {
		h.mapBlogError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// DeleteBlog removes an owned post
// DELETE /api/v1/blogs/:id
func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid blog id")
		return
	}

	if err := h.blogService.DeleteBlog(c.Request.Context(), id, userID); err != nil {
		h.mapBlogError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "blog deleted"})
}

// =====================================================
// ERROR MAPPING
// =====================================================

// mapBlogError converts domain errors into the response envelope.
// Not-found and not-owner are distinct verdicts: a missing post is 404
// for everyone, 403 is reserved for posts that exist but belong to
// someone else.
func (h *BlogHandler) mapBlogError(c *gin.Context, err error) {
	var vErrs validation.Errors

	switch {
	case errors.As(err, &vErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid blog data", err)
	case errors.Is(err, model.ErrBlogNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrNotOwner):
		response.Forbidden(c, err.Error())
	default:
		logger.Error("blog handler error", err)
		response.InternalServerError(c, "something went wrong")
	}
}
