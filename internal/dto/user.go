package dto

import (
	"time"

	"github.com/SscSPs/taxbooks_app/internal/core/domain"
)

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the body of POST /api/auth/register. Role defaults to client;
// admins cannot self-register.
type RegisterRequest struct {
	Email     string           `json:"email" binding:"required,email"`
	Password  string           `json:"password" binding:"required,min=8,max=72"`
	FirstName string           `json:"firstName" binding:"required"`
	LastName  string           `json:"lastName" binding:"required"`
	Phone     *string          `json:"phone"`
	Role      *domain.UserRole `json:"role" binding:"omitempty,oneof=client accountant"`
}

// UpdateProfileRequest uses pointers to distinguish omitted fields from zero values.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName" binding:"omitempty,min=1"`
	LastName  *string `json:"lastName" binding:"omitempty,min=1"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	Postcode  *string `json:"postcode"`
	Password  *string `json:"password" binding:"omitempty,min=8,max=72"`
	Version   *int    `json:"version"`
}

type UserResponse struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Phone     *string         `json:"phone,omitempty"`
	Role      domain.UserRole `json:"role"`
	Address   *string         `json:"address,omitempty"`
	City      *string         `json:"city,omitempty"`
	Postcode  *string         `json:"postcode,omitempty"`
	IsActive  bool            `json:"isActive"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	Version   int             `json:"version"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// ToUserResponse converts a domain.User to UserResponse. The password hash never leaves the service.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Role:      u.Role,
		Address:   u.Address,
		City:      u.City,
		Postcode:  u.Postcode,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		Version:   u.Version,
	}
}

func ToUserResponses(users []domain.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return out
}
