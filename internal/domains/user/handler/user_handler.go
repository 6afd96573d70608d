package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipeblog-backend/internal/domains/user"
	"recipeblog-backend/internal/shared/middleware"
	"recipeblog-backend/internal/shared/response"
	"recipeblog-backend/pkg/logger"
)

// =====================================================
// USER HANDLER
// =====================================================

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Register creates a new account
// POST /api/v1/users/register
func (h *UserHandler) Register(c *gin.Context) {
	// Step 1: Bind request body
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Step 2: Validate request
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid registration data", err)
		return
	}

	// Step 3: Call service
	resp, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		h.mapUserError(c, err)
		return
	}

	// Step 4: Return created user + token
	response.Success(c, http.StatusCreated, resp)
}

// Login authenticates and returns a token
// POST /api/v1/users/login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid login data", err)
		return
	}

	resp, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		h.mapUserError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// GetProfile returns the authenticated user
// GET /api/v1/users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}

	dto, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.mapUserError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// UpdateProfile updates the authenticated user's profile fields
// PUT /api/v1/users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}

	var req user.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid profile data", err)
		return
	}

	dto, err := h.userService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		h.mapUserError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// =====================================================
// ERROR MAPPING
// =====================================================

// mapUserError converts domain errors into the response envelope.
// Unexpected errors are logged and surfaced as a generic 500 so
// internals never leak to clients.
func (h *UserHandler) mapUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrEmailAlreadyExists),
		errors.Is(err, user.ErrUsernameAlreadyExists):
		// Duplicates report as 400 like any other bad registration input
		response.ErrorResponse(c, http.StatusBadRequest, "DUPLICATE", err.Error())
	case errors.Is(err, user.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("user handler error", err)
		response.InternalServerError(c, "something went wrong")
	}
}
