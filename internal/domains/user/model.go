package user

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account.
// PasswordHash is never serialized - the secret exists only as a bcrypt hash.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`

	// Profile sub-structure, mutable only by the owning user
	DisplayName string  `json:"display_name"`
	Bio         string  `json:"bio"`
	Avatar      *string `json:"avatar,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserDTO is the public representation, safe to expose
type UserDTO struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio"`
	Avatar      *string   `json:"avatar,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// AuthorInfo is the subset of a user attached to blog responses.
// No email here - privacy.
type AuthorInfo struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Avatar      *string   `json:"avatar,omitempty"`
}

// ToDTO converts User entity to UserDTO
func (u *User) ToDTO() UserDTO {
	return UserDTO{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Bio:         u.Bio,
		Avatar:      u.Avatar,
		CreatedAt:   u.CreatedAt,
	}
}

// ToAuthorInfo converts User entity to the author view embedded in blogs
func (u *User) ToAuthorInfo() AuthorInfo {
	return AuthorInfo{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Avatar:      u.Avatar,
	}
}
