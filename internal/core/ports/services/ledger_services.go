package services

import (
	"context"

	"github.com/SscSPs/cashflow_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// LedgerReaderSvc defines the read side of the ledger: what a user is shown.
type LedgerReaderSvc interface {
	// GetLedgerView returns the annotated history of every safe visible to cap,
	// optionally restricted to a date range. Running balances always start at zero
	// over the selected movements.
	GetLedgerView(ctx context.Context, cap domain.Capability, dateRange *domain.DateRange) (*domain.LedgerView, error)

	// GetTodayView returns today's movements per visible safe with income/expense totals.
	GetTodayView(ctx context.Context, cap domain.Capability) (*domain.LedgerView, error)

	// ListSafeTransactions returns one page of a safe's annotated statement, newest first.
	ListSafeTransactions(ctx context.Context, cap domain.Capability, safeID string, limit int, nextToken *string) (*domain.TransactionPage, error)
}

// BalanceRecomputerSvc defines the balance recomputation operations.
type BalanceRecomputerSvc interface {
	// RecomputeBalanceInTx recomputes and persists a safe's cached balance inside tx.
	// The caller owns tx and must already hold the safe's row lock.
	RecomputeBalanceInTx(ctx context.Context, tx pgx.Tx, safeID string) (decimal.Decimal, error)

	// RecomputeBalance recomputes a safe's cached balance in its own database transaction.
	RecomputeBalance(ctx context.Context, cap domain.Capability, safeID string) (decimal.Decimal, error)

	// RecomputeAllBalances recomputes every safe's cached balance. Administrators only.
	RecomputeAllBalances(ctx context.Context, cap domain.Capability) (map[string]decimal.Decimal, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	BalanceRecomputerSvc
}
