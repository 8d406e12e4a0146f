package dto

import (
	"github.com/google/uuid"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=100"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
	Role     string `json:"role"      validate:"required,oneof=ADMIN TEACHER PARENT"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"` // username atau email
	Password   string `json:"password"   validate:"required"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type AuthUserResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	UserName string    `json:"user_name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
}

type LoginResponse struct {
	AccessToken string           `json:"access_token"`
	User        AuthUserResponse `json:"user"`
}
