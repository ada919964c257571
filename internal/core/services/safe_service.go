package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/cashflow_app/internal/apperrors"
	"github.com/SscSPs/cashflow_app/internal/core/access"
	"github.com/SscSPs/cashflow_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashflow_app/internal/core/ports/services"
	"github.com/SscSPs/cashflow_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// safeService manages the account directory. Balances are never written here.
type safeService struct {
	BaseService
	safeRepo portsrepo.SafeRepositoryWithTx
	txnRepo  portsrepo.TransactionReader
}

// NewSafeService creates a new SafeService.
func NewSafeService(safeRepo portsrepo.SafeRepositoryWithTx, txnRepo portsrepo.TransactionReader, options ...ServiceOption) portssvc.SafeSvcFacade {
	svc := &safeService{
		BaseService: newBaseService(),
		safeRepo:    safeRepo,
		txnRepo:     txnRepo,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.SafeSvcFacade = (*safeService)(nil)

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}
	return name, nil
}

// CreateSafe registers a new safe with a zero balance.
func (s *safeService) CreateSafe(ctx context.Context, cap domain.Capability, req dto.CreateSafeRequest) (*domain.Safe, error) {
	if err := s.RequireAdmin(ctx, cap, "safe creation"); err != nil {
		return nil, err
	}
	name, err := normalizeName(req.Name)
	if err != nil {
		return nil, err
	}

	safe := domain.Safe{
		SafeID:      uuid.NewString(),
		Name:        name,
		Balance:     decimal.Zero,
		AuditFields: auditFields(cap.UserID, s.Now()),
	}
	if err := s.safeRepo.SaveSafe(ctx, safe); err != nil {
		s.LogError(ctx, err, "Failed to create safe", slog.String("name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Safe created", slog.String("safe_id", safe.SafeID), slog.String("name", name))
	return &safe, nil
}

// UpdateSafe renames a safe.
func (s *safeService) UpdateSafe(ctx context.Context, cap domain.Capability, safeID string, req dto.UpdateSafeRequest) (*domain.Safe, error) {
	if err := s.RequireAdmin(ctx, cap, "safe update"); err != nil {
		return nil, err
	}
	name, err := normalizeName(req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.safeRepo.UpdateSafeName(ctx, safeID, name, cap.UserID, s.Now()); err != nil {
		return nil, err
	}
	return s.safeRepo.FindSafeByID(ctx, safeID)
}

// DeleteSafe removes a safe that has no movements.
func (s *safeService) DeleteSafe(ctx context.Context, cap domain.Capability, safeID string) error {
	if err := s.RequireAdmin(ctx, cap, "safe deletion"); err != nil {
		return err
	}

	count, err := s.txnRepo.CountTransactionsBySafe(ctx, safeID)
	if err != nil {
		return fmt.Errorf("failed to count transactions of safe %s: %w", safeID, err)
	}
	if count > 0 {
		return fmt.Errorf("%w: safe %s still has %d transactions", apperrors.ErrConflict, safeID, count)
	}

	if err := s.safeRepo.DeleteSafe(ctx, safeID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Safe deleted", slog.String("safe_id", safeID), slog.String("user_id", cap.UserID))
	return nil
}

func (s *safeService) GetSafeByID(ctx context.Context, cap domain.Capability, safeID string) (*domain.Safe, error) {
	if !access.CanView(cap, safeID) {
		return nil, fmt.Errorf("%w: no access to safe %s", apperrors.ErrForbidden, safeID)
	}
	return s.safeRepo.FindSafeByID(ctx, safeID)
}

func (s *safeService) ListSafes(ctx context.Context, cap domain.Capability) ([]domain.Safe, error) {
	ids, restricted := access.VisibleSafeIDs(cap)
	if !restricted {
		return s.safeRepo.ListSafes(ctx)
	}
	if len(ids) == 0 {
		return []domain.Safe{}, nil
	}
	return s.safeRepo.ListSafesByIDs(ctx, ids)
}
