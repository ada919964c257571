package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/cashflow_app/internal/apperrors"
	"github.com/SscSPs/cashflow_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashflow_app/internal/core/ports/services"
	"github.com/SscSPs/cashflow_app/internal/dto"
	"github.com/SscSPs/cashflow_app/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, options ...ServiceOption) portssvc.UserSvcFacade {
	svc := &userService{BaseService: newBaseService(), userRepo: userRepo}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, cap domain.Capability, req dto.CreateUserRequest) (*domain.User, error) {
	if err := s.RequireAdmin(ctx, cap, "user creation"); err != nil {
		return nil, err
	}
	if !req.Role.IsValid() {
		return nil, fmt.Errorf("%w: role must be ADMIN or STANDARD", apperrors.ErrValidation)
	}
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		Name:         req.Name,
		PasswordHash: hash,
		Role:         req.Role,
		IsActive:     true,
		AuditFields:  auditFields(cap.UserID, s.Now()),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "User created",
		slog.String("user_id", user.UserID),
		slog.String("role", string(user.Role)),
		slog.String("created_by", cap.UserID))
	return &user, nil
}

func (s *userService) UpdateUser(ctx context.Context, cap domain.Capability, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	if err := s.RequireAdmin(ctx, cap, "user update"); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if userID == cap.UserID {
		if req.Role != nil && *req.Role != domain.RoleAdmin {
			return nil, fmt.Errorf("%w: administrators cannot remove their own role", apperrors.ErrValidation)
		}
		if req.IsActive != nil && !*req.IsActive {
			return nil, fmt.Errorf("%w: administrators cannot deactivate themselves", apperrors.ErrValidation)
		}
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Role != nil {
		if !req.Role.IsValid() {
			return nil, fmt.Errorf("%w: role must be ADMIN or STANDARD", apperrors.ErrValidation)
		}
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		user.PasswordHash = hash
	}

	user.LastUpdatedAt = s.Now()
	user.LastUpdatedBy = cap.UserID
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "User updated",
		slog.String("user_id", userID),
		slog.String("role", string(user.Role)),
		slog.Bool("is_active", user.IsActive),
		slog.String("updated_by", cap.UserID))
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) ListUsers(ctx context.Context, cap domain.Capability, limit int, offset int) ([]domain.User, error) {
	if err := s.RequireAdmin(ctx, cap, "user listing"); err != nil {
		return nil, err
	}
	return s.userRepo.FindUsers(ctx, limit, offset)
}

// Authenticate never reveals whether the username exists.
func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		return nil, err
	}
	if !user.IsActive || !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogInfo(ctx, "Login rejected", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}
	return user, nil
}
