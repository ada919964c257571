package services

import (
	"context"

	"github.com/SscSPs/cashflow_app/internal/core/domain"
	"github.com/SscSPs/cashflow_app/internal/dto"
)

// SafeReaderSvc defines read operations for safes
type SafeReaderSvc interface {
	// GetSafeByID retrieves a safe the caller can see.
	GetSafeByID(ctx context.Context, cap domain.Capability, safeID string) (*domain.Safe, error)

	// ListSafes retrieves the safes visible to the caller, ordered by name.
	ListSafes(ctx context.Context, cap domain.Capability) ([]domain.Safe, error)
}

// SafeWriterSvc defines administrative write operations for safes
type SafeWriterSvc interface {
	CreateSafe(ctx context.Context, cap domain.Capability, req dto.CreateSafeRequest) (*domain.Safe, error)
	UpdateSafe(ctx context.Context, cap domain.Capability, safeID string, req dto.UpdateSafeRequest) (*domain.Safe, error)

	// DeleteSafe removes a safe. A safe still referenced by movements yields apperrors.ErrConflict.
	DeleteSafe(ctx context.Context, cap domain.Capability, safeID string) error
}

// SafeSvcFacade combines all safe-related service interfaces
type SafeSvcFacade interface {
	SafeReaderSvc
	SafeWriterSvc
}
