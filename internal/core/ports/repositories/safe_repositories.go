package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/cashflow_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// SafeReader defines read operations for safe data
type SafeReader interface {
	// FindSafeByID retrieves a specific safe by its unique identifier.
	FindSafeByID(ctx context.Context, safeID string) (*domain.Safe, error)

	// ListSafes retrieves every safe ordered by name.
	ListSafes(ctx context.Context) ([]domain.Safe, error)

	// ListSafesByIDs retrieves the safes with the given IDs ordered by name. Unknown IDs are skipped.
	ListSafesByIDs(ctx context.Context, safeIDs []string) ([]domain.Safe, error)
}

// SafeWriter defines write operations for safe data
type SafeWriter interface {
	// SaveSafe persists a new safe.
	SaveSafe(ctx context.Context, safe domain.Safe) error

	// UpdateSafeName renames a safe. The balance is never touched.
	UpdateSafeName(ctx context.Context, safeID, name, userID string, now time.Time) error

	// DeleteSafe removes a safe.
	DeleteSafe(ctx context.Context, safeID string) error
}

// SafeTransactionSupport defines the operations balance recomputation runs inside a database transaction
type SafeTransactionSupport interface {
	// LockSafeForUpdate selects a safe and locks its row until tx ends.
	LockSafeForUpdate(ctx context.Context, tx pgx.Tx, safeID string) (*domain.Safe, error)

	// SaveSafeBalanceInTx overwrites the cached balance of a safe. No other column is written.
	SaveSafeBalanceInTx(ctx context.Context, tx pgx.Tx, safeID string, balance decimal.Decimal) error
}

// SafeRepositoryFacade combines all safe-related repository interfaces
type SafeRepositoryFacade interface {
	SafeReader
	SafeWriter
	SafeTransactionSupport
}

// SafeRepositoryWithTx extends SafeRepositoryFacade with transaction capabilities
type SafeRepositoryWithTx interface {
	SafeRepositoryFacade
	TransactionManager
}
