package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"recipeblog-backend/internal/domains/user"
	"recipeblog-backend/pkg/jwt"
)

// userService implements user.Service
type userService struct {
	repo       user.Repository
	jwtManager *jwt.Manager
}

// NewUserService creates the service instance.
// Dependencies are injected through the constructor.
func NewUserService(repo user.Repository, jwtManager *jwt.Manager) user.Service {
	return &userService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

// ========================================
// AUTHENTICATION
// ========================================

// Register creates a new user and signs them in
func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.AuthResponse, error) {
	// 1. VALIDATE INPUT
	// Handler validates too, but double-checking here keeps the service safe
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. BUSINESS RULE: email and username must be unique
	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email exists: %w", err)
	}
	if exists {
		return nil, user.ErrEmailAlreadyExists
	}

	exists, err = s.repo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username exists: %w", err)
	}
	if exists {
		return nil, user.ErrUsernameAlreadyExists
	}

	// 3. HASH PASSWORD
	// bcrypt cost 12: balance between security and latency
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 4. CREATE USER ENTITY
	// Display name falls back to the username when not provided
	displayName := req.DisplayName
	if displayName == "" {
		displayName = req.Username
	}

	now := time.Now()
	newUser := &user.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		DisplayName:  displayName,
		Bio:          req.Bio,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// 5. PERSIST TO DATABASE
	// The unique indexes are the source of truth - a concurrent duplicate
	// registration still surfaces as a conflict error here
	if err := s.repo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	// 6. ISSUE TOKEN
	token, err := s.jwtManager.Generate(newUser.ID.String())
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &user.AuthResponse{
		Token: token,
		User:  newUser.ToDTO(),
	}, nil
}

// Login authenticates a user and returns a signed token
func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.AuthResponse, error) {
	// 1. VALIDATE INPUT
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. FIND USER BY EMAIL
	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		// Do not expose whether the email exists
		return nil, user.ErrInvalidCredentials
	}

	// 3. VERIFY PASSWORD
	// bcrypt.CompareHashAndPassword is a constant-time comparison
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	// 4. ISSUE TOKEN
	token, err := s.jwtManager.Generate(u.ID.String())
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &user.AuthResponse{
		Token: token,
		User:  u.ToDTO(),
	}, nil
}

// ========================================
// PROFILE
// ========================================

// GetProfile returns the current user
func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*user.UserDTO, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	dto := u.ToDTO()
	return &dto, nil
}

// UpdateProfile mutates only the profile sub-structure of the caller.
// Absent fields retain their prior values.
func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req user.UpdateProfileRequest) (*user.UserDTO, error) {
	// 1. VALIDATE INPUT
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. LOAD CURRENT USER
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 3. APPLY ONLY PROVIDED FIELDS
	if req.DisplayName != nil {
		u.DisplayName = *req.DisplayName
	}
	if req.Bio != nil {
		u.Bio = *req.Bio
	}
	if req.Avatar != nil {
		u.Avatar = req.Avatar
	}
	u.UpdatedAt = time.Now()

	// 4. PERSIST
	if err := s.repo.UpdateProfile(ctx, u); err != nil {
		return nil, err
	}

	dto := u.ToDTO()
	return &dto, nil
}
