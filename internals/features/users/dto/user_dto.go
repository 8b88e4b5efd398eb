package dto

import (
	"time"

	"github.com/google/uuid"

	model "classhub_backend/internals/features/users/model"
)

/* =========================================================
   REQUESTS
   ========================================================= */

// Register bootstraps a brand-new organization together with its first admin
// account, in one transaction.
type RegisterRequest struct {
	OrganizationName string `json:"organization_name" validate:"required,min=2,max=160"`

	UserName     string `json:"user_name"     validate:"required,min=2,max=120"`
	UserEmail    string `json:"user_email"    validate:"required,email,max=160"`
	UserPassword string `json:"user_password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	UserEmail    string `json:"user_email"    validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

// Admin-created account inside the caller's organization.
type CreateUserRequest struct {
	UserName     string `json:"user_name"     validate:"required,min=2,max=120"`
	UserEmail    string `json:"user_email"    validate:"required,email,max=160"`
	UserPassword string `json:"user_password" validate:"required,min=8,max=72"`
	UserRole     string `json:"user_role"     validate:"required,oneof=admin teacher student"`
}

/* =========================================================
   RESPONSES
   ========================================================= */

type UserResponse struct {
	UserID             uuid.UUID      `json:"user_id"`
	UserOrganizationID uuid.UUID      `json:"user_organization_id"`
	UserName           string         `json:"user_name"`
	UserEmail          string         `json:"user_email"`
	UserRole           model.UserRole `json:"user_role"`
	UserIsActive       bool           `json:"user_is_active"`
	UserCreatedAt      time.Time      `json:"user_created_at"`
}

func FromModel(m *model.UserModel) UserResponse {
	return UserResponse{
		UserID:             m.UserID,
		UserOrganizationID: m.UserOrganizationID,
		UserName:           m.UserName,
		UserEmail:          m.UserEmail,
		UserRole:           m.UserRole,
		UserIsActive:       m.UserIsActive,
		UserCreatedAt:      m.UserCreatedAt,
	}
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}
