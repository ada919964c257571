package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/cashflow_app/internal/apperrors"
	"github.com/SscSPs/cashflow_app/internal/core/access"
	"github.com/SscSPs/cashflow_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashflow_app/internal/core/ports/services"
	"github.com/SscSPs/cashflow_app/internal/utils/accounting"
	"github.com/SscSPs/cashflow_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ledgerService owns cached safe balances and the annotated views built on top of them.
type ledgerService struct {
	BaseService
	safeRepo portsrepo.SafeRepositoryWithTx
	txnRepo  portsrepo.TransactionRepositoryFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(safeRepo portsrepo.SafeRepositoryWithTx, txnRepo portsrepo.TransactionRepositoryFacade, options ...ServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		BaseService: newBaseService(),
		safeRepo:    safeRepo,
		txnRepo:     txnRepo,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// RecomputeBalanceInTx folds every movement of the safe, as seen by tx, into its cached balance.
func (s *ledgerService) RecomputeBalanceInTx(ctx context.Context, tx pgx.Tx, safeID string) (decimal.Decimal, error) {
	txns, err := s.txnRepo.FindTransactionsBySafeInTx(ctx, tx, safeID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load transactions of safe %s: %w", safeID, err)
	}

	balance, err := accounting.ComputeBalance(txns)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute balance of safe %s: %w", safeID, err)
	}

	if err := s.safeRepo.SaveSafeBalanceInTx(ctx, tx, safeID, balance); err != nil {
		return decimal.Zero, fmt.Errorf("failed to save balance of safe %s: %w", safeID, err)
	}

	s.LogDebug(ctx, "Safe balance recomputed",
		slog.String("safe_id", safeID),
		slog.Int("transaction_count", len(txns)),
		slog.String("balance", balance.String()))
	return balance, nil
}

func (s *ledgerService) recompute(ctx context.Context, safeID string) (decimal.Decimal, error) {
	tx, err := s.safeRepo.Begin(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	defer func() { _ = s.safeRepo.Rollback(ctx, tx) }()

	if _, err := s.safeRepo.LockSafeForUpdate(ctx, tx, safeID); err != nil {
		return decimal.Zero, err
	}

	balance, err := s.RecomputeBalanceInTx(ctx, tx, safeID)
	if err != nil {
		return decimal.Zero, err
	}

	if err := s.safeRepo.Commit(ctx, tx); err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

// RecomputeBalance recomputes one safe's balance in its own database transaction.
// Running it twice in a row yields the same balance.
func (s *ledgerService) RecomputeBalance(ctx context.Context, cap domain.Capability, safeID string) (decimal.Decimal, error) {
	if err := s.RequireAdmin(ctx, cap, "balance recompute"); err != nil {
		return decimal.Zero, err
	}

	balance, err := s.recompute(ctx, safeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to recompute safe balance", slog.String("safe_id", safeID))
		}
		return decimal.Zero, err
	}

	s.LogInfo(ctx, "Safe balance recomputed on request",
		slog.String("safe_id", safeID),
		slog.String("user_id", cap.UserID),
		slog.String("balance", balance.String()))
	return balance, nil
}

// RecomputeAllBalances repairs every safe. It stops at the first failure.
func (s *ledgerService) RecomputeAllBalances(ctx context.Context, cap domain.Capability) (map[string]decimal.Decimal, error) {
	if err := s.RequireAdmin(ctx, cap, "balance recompute"); err != nil {
		return nil, err
	}

	safes, err := s.safeRepo.ListSafes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list safes: %w", err)
	}

	balances := make(map[string]decimal.Decimal, len(safes))
	for _, safe := range safes {
		balance, err := s.recompute(ctx, safe.SafeID)
		if err != nil {
			s.LogError(ctx, err, "Failed to recompute safe balance", slog.String("safe_id", safe.SafeID))
			return balances, err
		}
		balances[safe.SafeID] = balance
	}

	s.LogInfo(ctx, "All safe balances recomputed", slog.Int("safe_count", len(safes)))
	return balances, nil
}

// visibleSafes loads the safes cap may see, ordered by name.
func (s *ledgerService) visibleSafes(ctx context.Context, cap domain.Capability) ([]domain.Safe, error) {
	ids, restricted := access.VisibleSafeIDs(cap)
	if !restricted {
		return s.safeRepo.ListSafes(ctx)
	}
	if len(ids) == 0 {
		return []domain.Safe{}, nil
	}
	safes, err := s.safeRepo.ListSafesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return access.VisibleSafes(cap, safes), nil
}

func (s *ledgerService) buildView(ctx context.Context, cap domain.Capability, dateRange *domain.DateRange, withFlow bool) (*domain.LedgerView, error) {
	view := &domain.LedgerView{
		Safes:        []domain.SafeLedger{},
		Combined:     []domain.AnnotatedTransaction{},
		TotalBalance: decimal.Zero,
		CurrentDate:  s.Now(),
	}

	safes, err := s.visibleSafes(ctx, cap)
	if err != nil {
		return nil, fmt.Errorf("failed to list visible safes: %w", err)
	}

	safeIDs := make([]string, len(safes))
	for i, safe := range safes {
		safeIDs[i] = safe.SafeID
		view.TotalBalance = view.TotalBalance.Add(safe.Balance)
	}

	var txns []domain.Transaction
	if len(safeIDs) > 0 {
		txns, err = s.txnRepo.ListTransactionsBySafes(ctx, safeIDs, dateRange)
		if err != nil {
			return nil, fmt.Errorf("failed to list transactions: %w", err)
		}
	}

	bySafe := make(map[string][]domain.Transaction, len(safes))
	for _, txn := range txns {
		bySafe[txn.SafeID] = append(bySafe[txn.SafeID], txn)
	}

	for _, safe := range safes {
		annotated, err := accounting.AnnotateRunningBalance(bySafe[safe.SafeID])
		if err != nil {
			return nil, err
		}
		ledger := domain.SafeLedger{
			SafeID:       safe.SafeID,
			SafeName:     safe.Name,
			SafeBalance:  safe.Balance,
			Transactions: annotated,
		}
		if withFlow {
			flow, err := accounting.SummarizeFlow(bySafe[safe.SafeID])
			if err != nil {
				return nil, err
			}
			ledger.Flow = &flow
		}
		view.Safes = append(view.Safes, ledger)
	}

	// One cumulative total across all visible safes.
	view.Combined, err = accounting.AnnotateRunningBalance(txns)
	if err != nil {
		return nil, err
	}
	if withFlow {
		flow, err := accounting.SummarizeFlow(txns)
		if err != nil {
			return nil, err
		}
		view.Flow = &flow
	}
	return view, nil
}

// GetLedgerView builds the per-safe and combined annotated histories visible to cap.
func (s *ledgerService) GetLedgerView(ctx context.Context, cap domain.Capability, dateRange *domain.DateRange) (*domain.LedgerView, error) {
	if dateRange != nil && !dateRange.From.IsZero() && !dateRange.To.IsZero() && dateRange.From.After(dateRange.To) {
		return nil, fmt.Errorf("%w: 'from' must not be after 'to'", apperrors.ErrValidation)
	}

	view, err := s.buildView(ctx, cap, dateRange, false)
	if err != nil {
		s.LogError(ctx, err, "Failed to build ledger view", slog.String("user_id", cap.UserID))
		return nil, err
	}
	return view, nil
}

// GetTodayView restricts the ledger to the current calendar day and adds income/expense totals.
// Annotations restart at zero for the day; callers report the flow totals and cached safe balances instead.
func (s *ledgerService) GetTodayView(ctx context.Context, cap domain.Capability) (*domain.LedgerView, error) {
	today := domain.DayRange(s.Now())
	view, err := s.buildView(ctx, cap, &today, true)
	if err != nil {
		s.LogError(ctx, err, "Failed to build today view", slog.String("user_id", cap.UserID))
		return nil, err
	}
	return view, nil
}

func transactionCursor(txn domain.AnnotatedTransaction) pagination.Cursor {
	return pagination.Cursor{
		TransactionDate: txn.TransactionDate,
		CreatedAt:       txn.CreatedAt,
		TransactionID:   txn.TransactionID,
	}
}

// ListSafeTransactions pages through one safe's statement, newest first.
// Balances are annotated over the full history so every page shows the true running balance.
func (s *ledgerService) ListSafeTransactions(ctx context.Context, cap domain.Capability, safeID string, limit int, nextToken *string) (*domain.TransactionPage, error) {
	if !access.CanView(cap, safeID) {
		return nil, fmt.Errorf("%w: safe %s is not visible", apperrors.ErrForbidden, safeID)
	}
	if _, err := s.safeRepo.FindSafeByID(ctx, safeID); err != nil {
		return nil, err
	}

	txns, err := s.txnRepo.ListTransactionsBySafes(ctx, []string{safeID}, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to list safe transactions", slog.String("safe_id", safeID))
		return nil, fmt.Errorf("failed to list transactions of safe %s: %w", safeID, err)
	}

	annotated, err := accounting.AnnotateRunningBalance(txns)
	if err != nil {
		return nil, err
	}

	page, next, err := pagination.PageNewestFirst(annotated, transactionCursor, limit, nextToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	return &domain.TransactionPage{SafeID: safeID, Transactions: page, NextToken: next}, nil
}
