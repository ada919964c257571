package services

import (
	"context"
	"time"

	"github.com/SscSPs/cashflow_app/internal/core/domain"
	"github.com/SscSPs/cashflow_app/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a specific user by their ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves a paginated list of users.
	ListUsers(ctx context.Context, cap domain.Capability, limit int, offset int) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser persists a new user with a hashed password.
	CreateUser(ctx context.Context, cap domain.Capability, req dto.CreateUserRequest) (*domain.User, error)

	// UpdateUser changes a user's profile, role, active flag or password. Administrators cannot demote or deactivate themselves.
	UpdateUser(ctx context.Context, cap domain.Capability, userID string, req dto.UpdateUserRequest) (*domain.User, error)
}

// UserAuthSvc defines credential checks
type UserAuthSvc interface {
	// Authenticate returns the active user matching the credentials, or apperrors.ErrUnauthorized.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
