package auth

import (
	"time"

	"techrent/internal/domain"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResult struct {
	User      *domain.User `json:"user"`
	Roles     []string     `json:"roles"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

type MeResponse struct {
	User  *domain.User `json:"user"`
	Roles []string     `json:"roles"`
}
