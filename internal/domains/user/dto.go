package user

import (
	"errors"
	"net/mail"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// emailRule accepts any RFC 5322 address, including short domains
// like a@x.com that stricter pattern checks reject
var emailRule = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return errors.New("invalid email format")
	}
	return nil
})

// ========================================
// AUTH DTOs
// ========================================

// RegisterRequest creates a new account
type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"display_name,omitempty"`
	Bio         string `json:"bio,omitempty"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(3, 30).Error("username must be 3-30 characters"),
			is.Alphanumeric.Error("username must contain only letters and numbers"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			emailRule,
			validation.Length(0, 255),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(0, 128).Error("password cannot be more than 128 characters"),
		),
		validation.Field(&r.DisplayName,
			validation.When(r.DisplayName != "", validation.Length(1, 100)),
		),
		validation.Field(&r.Bio,
			validation.Length(0, 500).Error("bio cannot be more than 500 characters"),
		),
	)
}

// LoginRequest authenticates by email + password
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, emailRule),
		validation.Field(&r.Password, validation.Required),
	)
}

// AuthResponse returns the signed token together with the user
type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// ========================================
// PROFILE DTOs
// ========================================

// UpdateProfileRequest mutates only the profile sub-structure.
// Pointer fields: absent fields retain their prior values.
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	Avatar      *string `json:"avatar,omitempty"`
}

func (r UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DisplayName,
			validation.When(r.DisplayName != nil, validation.Length(1, 100)),
		),
		validation.Field(&r.Bio,
			validation.When(r.Bio != nil, validation.Length(0, 500).Error("bio cannot be more than 500 characters")),
		),
		validation.Field(&r.Avatar,
			validation.When(r.Avatar != nil && *r.Avatar != "", is.URL.Error("avatar must be a valid URL")),
		),
	)
}
