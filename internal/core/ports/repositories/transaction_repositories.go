package repositories

import (
	"context"

	"github.com/SscSPs/cashflow_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionReader defines read operations for transaction data.
// Every returned transaction carries the CategoryType of its category.
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsBySafes retrieves the transactions of the given safes,
	// optionally restricted to an inclusive date range.
	ListTransactionsBySafes(ctx context.Context, safeIDs []string, dateRange *domain.DateRange) ([]domain.Transaction, error)

	// CountTransactionsBySafe counts the transactions referencing a safe.
	CountTransactionsBySafe(ctx context.Context, safeID string) (int, error)

	// CountTransactionsByCategory counts the transactions referencing a category.
	CountTransactionsByCategory(ctx context.Context, categoryID string) (int, error)
}

// TransactionWriter defines write operations for transaction data.
// Writes always happen inside the caller's database transaction so the owning
// safe's balance can be recomputed before commit.
type TransactionWriter interface {
	// SaveTransactionInTx persists a new transaction.
	SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error

	// UpdateTransactionInTx updates an existing transaction.
	UpdateTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error

	// DeleteTransactionInTx removes a transaction.
	DeleteTransactionInTx(ctx context.Context, tx pgx.Tx, transactionID string) error
}

// TransactionLedgerSupport defines the reads balance recomputation needs inside a database transaction
type TransactionLedgerSupport interface {
	// FindTransactionsBySafeInTx retrieves every transaction of a safe as seen by tx.
	FindTransactionsBySafeInTx(ctx context.Context, tx pgx.Tx, safeID string) ([]domain.Transaction, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
	TransactionLedgerSupport
}
