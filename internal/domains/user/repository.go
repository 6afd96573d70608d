package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the contract for the credential store.
// Interface allows mocking in unit tests and swapping implementations.
type Repository interface {
	// Create inserts a new user.
	// Returns ErrEmailAlreadyExists / ErrUsernameAlreadyExists on conflict.
	Create(ctx context.Context, user *User) error

	// FindByID looks a user up by ID.
	// Returns ErrUserNotFound when missing.
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail looks a user up by email (used for login).
	// Returns ErrUserNotFound when missing.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// UpdateProfile persists only the profile sub-structure
	// (display name, bio, avatar) plus updated_at.
	UpdateProfile(ctx context.Context, user *User) error

	// ExistsByEmail checks if an email is already taken
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByUsername checks if a username is already taken
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
