package dto

import (
	"time"

	"github.com/SscSPs/cashflow_app/internal/core/domain"
)

// CreateUserRequest defines the data needed to create a user.
type CreateUserRequest struct {
	Username string      `json:"username" binding:"required,min=3,max=50"`
	Password string      `json:"password" binding:"required,min=8,max=72"`
	Name     string      `json:"name" binding:"required,max=100"`
	Role     domain.Role `json:"role" binding:"required,oneof=ADMIN STANDARD"`
}

// UpdateUserRequest defines the user fields an administrator may change.
// Deactivated users can no longer log in or use existing tokens.
type UpdateUserRequest struct {
	Name     *string      `json:"name" binding:"omitempty,min=1,max=100"`
	Role     *domain.Role `json:"role" binding:"omitempty,oneof=ADMIN STANDARD"`
	IsActive *bool        `json:"isActive"`
	Password *string      `json:"password" binding:"omitempty,min=8,max=72"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// UserResponse defines the data returned for a user. The password hash never leaves the service.
type UserResponse struct {
	UserID   string      `json:"userID"`
	Username string      `json:"username"`
	Name     string      `json:"name"`
	Role     domain.Role `json:"role"`
	IsActive bool        `json:"isActive"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// LoginRequest carries username/password credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:   user.UserID,
		Username: user.Username,
		Name:     user.Name,
		Role:     user.Role,
		IsActive: user.IsActive,
	}
}

// ToListUserResponse converts a slice of domain.User to ListUsersResponse DTO
func ToListUserResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: userResponses}
}
