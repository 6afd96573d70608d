package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"recipeblog-backend/internal/domains/user"
)

// stubUserService returns a canned error so the test controls exactly
// which domain error the handler has to translate
type stubUserService struct {
	err error
}

func (s *stubUserService) Register(_ context.Context, _ user.RegisterRequest) (*user.AuthResponse, error) {
	return &user.AuthResponse{}, s.err
}

func (s *stubUserService) Login(_ context.Context, _ user.LoginRequest) (*user.AuthResponse, error) {
	return &user.AuthResponse{}, s.err
}

func (s *stubUserService) GetProfile(_ context.Context, _ uuid.UUID) (*user.UserDTO, error) {
	return &user.UserDTO{}, s.err
}

func (s *stubUserService) UpdateProfile(_ context.Context, _ uuid.UUID, _ user.UpdateProfileRequest) (*user.UserDTO, error) {
	return &user.UserDTO{}, s.err
}

func postJSON(h *UserHandler, path, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/v1/users/register", h.Register)
	router.POST("/api/v1/users/login", h.Login)

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const registerBody = `{"username":"chef1","email":"a@x.com","password":"secret1"}`

func TestRegister_DuplicateEmailIs400(t *testing.T) {
	h := NewUserHandler(&stubUserService{err: user.ErrEmailAlreadyExists})

	w := postJSON(h, "/api/v1/users/register", registerBody)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "DUPLICATE")
	assert.Contains(t, w.Body.String(), "email already exists")
}

func TestRegister_DuplicateUsernameIs400(t *testing.T) {
	h := NewUserHandler(&stubUserService{err: user.ErrUsernameAlreadyExists})

	w := postJSON(h, "/api/v1/users/register", registerBody)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "DUPLICATE")
}

func TestRegister_SuccessIs201(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	w := postJSON(h, "/api/v1/users/register", registerBody)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestLogin_InvalidCredentialsIs401(t *testing.T) {
	h := NewUserHandler(&stubUserService{err: user.ErrInvalidCredentials})

	w := postJSON(h, "/api/v1/users/login", `{"email":"a@x.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
