package api

import (
	"time"

	"github.com/wanderbook/travel-booking-backend/internal/postauth"
	"github.com/wanderbook/travel-booking-backend/internal/user"
)

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role" binding:"omitempty,oneof=partner client"`

	// Navigation carries the transient resume flags, same as login: a user may
	// start a reservation and only then create an account.
	Navigation postauth.NavigationState `json:"navigation"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`

	Navigation postauth.NavigationState `json:"navigation"`
}

// UserResponse is the shape of user data returned in API responses.
type UserResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	DisplayName *string    `json:"display_name"`
	Role        string     `json:"role"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at"`
	IsActive    bool       `json:"is_active"`
}

// NewUserResponse converts domain user.User to UserResponse used by the API.
func NewUserResponse(u *user.User) UserResponse {
	var lastLoginAt *time.Time
	if u.LastLoginAt != nil {
		ll := *u.LastLoginAt
		lastLoginAt = &ll
	}

	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: lastLoginAt,
		IsActive:    u.IsActive,
	}
}

// AuthResponse is returned by both register and login: the token, the account,
// and where the client should navigate next.
type AuthResponse struct {
	AccessToken string               `json:"access_token"`
	User        UserResponse         `json:"user"`
	Destination postauth.Destination `json:"destination"`
}

type MeResponse struct {
	User UserResponse `json:"user"`
}
