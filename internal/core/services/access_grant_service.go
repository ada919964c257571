package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/cashflow_app/internal/apperrors"
	"github.com/SscSPs/cashflow_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashflow_app/internal/core/ports/services"
	"github.com/SscSPs/cashflow_app/internal/dto"
)

// accessGrantService manages which safes standard users may work with.
type accessGrantService struct {
	BaseService
	grantRepo portsrepo.AccessGrantRepositoryFacade
	userRepo  portsrepo.UserReader
	safeRepo  portsrepo.SafeReader
}

// NewAccessGrantService creates a new AccessGrantService.
func NewAccessGrantService(grantRepo portsrepo.AccessGrantRepositoryFacade, userRepo portsrepo.UserReader, safeRepo portsrepo.SafeReader, options ...ServiceOption) portssvc.AccessGrantSvcFacade {
	svc := &accessGrantService{
		BaseService: newBaseService(),
		grantRepo:   grantRepo,
		userRepo:    userRepo,
		safeRepo:    safeRepo,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.AccessGrantSvcFacade = (*accessGrantService)(nil)

// GetCapability loads the role and granted safes of an active user.
// Inactive users get apperrors.ErrUnauthorized.
func (s *accessGrantService) GetCapability(ctx context.Context, userID string) (domain.Capability, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return domain.Capability{}, err
	}
	if !user.IsActive {
		return domain.Capability{}, fmt.Errorf("%w: user %s is inactive", apperrors.ErrUnauthorized, userID)
	}
	if user.Role == domain.RoleAdmin {
		return domain.NewCapability(user.UserID, domain.RoleAdmin), nil
	}

	grants, err := s.grantRepo.ListGrantsByUser(ctx, userID)
	if err != nil {
		return domain.Capability{}, fmt.Errorf("failed to load grants of user %s: %w", userID, err)
	}
	safeIDs := make([]string, len(grants))
	for i, g := range grants {
		safeIDs[i] = g.SafeID
	}
	return domain.NewCapability(user.UserID, user.Role, safeIDs...), nil
}

func (s *accessGrantService) AssignSafe(ctx context.Context, cap domain.Capability, req dto.AssignSafeRequest) (*domain.AccessGrant, error) {
	if err := s.RequireAdmin(ctx, cap, "safe assignment"); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.FindUserByID(ctx, req.UserID); err != nil {
		return nil, err
	}
	if _, err := s.safeRepo.FindSafeByID(ctx, req.SafeID); err != nil {
		return nil, err
	}

	grant := domain.AccessGrant{
		UserID:     req.UserID,
		SafeID:     req.SafeID,
		AssignedAt: s.Now(),
		AssignedBy: cap.UserID,
	}
	if err := s.grantRepo.SaveGrant(ctx, grant); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Safe assigned",
		slog.String("user_id", req.UserID),
		slog.String("safe_id", req.SafeID),
		slog.String("assigned_by", cap.UserID))
	return &grant, nil
}

func (s *accessGrantService) RevokeGrant(ctx context.Context, cap domain.Capability, userID, safeID string) error {
	if err := s.RequireAdmin(ctx, cap, "grant revocation"); err != nil {
		return err
	}
	if err := s.grantRepo.DeleteGrant(ctx, userID, safeID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Safe grant revoked", slog.String("user_id", userID), slog.String("safe_id", safeID))
	return nil
}

func (s *accessGrantService) ListGrants(ctx context.Context, cap domain.Capability, userID *string) ([]domain.AccessGrant, error) {
	if err := s.RequireAdmin(ctx, cap, "grant listing"); err != nil {
		return nil, err
	}
	if userID != nil && *userID != "" {
		return s.grantRepo.ListGrantsByUser(ctx, *userID)
	}
	return s.grantRepo.ListGrants(ctx)
}
