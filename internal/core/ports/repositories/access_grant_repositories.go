package repositories

import (
	"context"

	"github.com/SscSPs/cashflow_app/internal/core/domain"
)

// AccessGrantReader defines read operations for user-to-safe grants
type AccessGrantReader interface {
	// ListGrantsByUser retrieves the grants of one user.
	ListGrantsByUser(ctx context.Context, userID string) ([]domain.AccessGrant, error)

	// ListGrants retrieves every grant ordered by user and safe.
	ListGrants(ctx context.Context) ([]domain.AccessGrant, error)
}

// AccessGrantWriter defines write operations for user-to-safe grants
type AccessGrantWriter interface {
	// SaveGrant persists a new grant. Granting the same safe twice yields apperrors.ErrDuplicate.
	SaveGrant(ctx context.Context, grant domain.AccessGrant) error

	// DeleteGrant removes a grant.
	DeleteGrant(ctx context.Context, userID, safeID string) error
}

// AccessGrantRepositoryFacade combines all grant-related repository interfaces
type AccessGrantRepositoryFacade interface {
	AccessGrantReader
	AccessGrantWriter
}
