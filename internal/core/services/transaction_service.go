package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/SscSPs/cashflow_app/internal/apperrors"
	"github.com/SscSPs/cashflow_app/internal/core/access"
	"github.com/SscSPs/cashflow_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashflow_app/internal/core/ports/services"
	"github.com/SscSPs/cashflow_app/internal/dto"
	"github.com/SscSPs/cashflow_app/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// transactionService records, edits and deletes cash movements.
// Every write runs as one unit of work: lock the affected safes, write the
// movement, recompute the affected balances, commit.
type transactionService struct {
	BaseService
	safeRepo     portsrepo.SafeRepositoryWithTx
	txnRepo      portsrepo.TransactionRepositoryFacade
	categoryRepo portsrepo.CategoryReader
	contactRepo  portsrepo.ContactReader
	recomputer   portssvc.BalanceRecomputerSvc
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	safeRepo portsrepo.SafeRepositoryWithTx,
	txnRepo portsrepo.TransactionRepositoryFacade,
	categoryRepo portsrepo.CategoryReader,
	contactRepo portsrepo.ContactReader,
	recomputer portssvc.BalanceRecomputerSvc,
	options ...ServiceOption,
) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		BaseService:  newBaseService(),
		safeRepo:     safeRepo,
		txnRepo:      txnRepo,
		categoryRepo: categoryRepo,
		contactRepo:  contactRepo,
		recomputer:   recomputer,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// withSafesLocked runs write inside a database transaction holding the row locks
// of safeIDs, then recomputes each of those balances before committing.
// Locks are taken in ID order so two writers touching the same pair of safes cannot deadlock.
func (s *transactionService) withSafesLocked(ctx context.Context, safeIDs []string, write func(tx pgx.Tx) error) error {
	ids := uniqueSorted(safeIDs)

	tx, err := s.safeRepo.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = s.safeRepo.Rollback(ctx, tx) }()

	for _, id := range ids {
		if _, err := s.safeRepo.LockSafeForUpdate(ctx, tx, id); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: safe %s", apperrors.ErrNotFound, id)
			}
			return err
		}
	}

	if err := write(tx); err != nil {
		return err
	}

	for _, id := range ids {
		if _, err := s.recomputer.RecomputeBalanceInTx(ctx, tx, id); err != nil {
			s.LogError(ctx, err, "Balance recompute failed, rolling back", slog.String("safe_id", id))
			return fmt.Errorf("%w: safe %s: %v", apperrors.ErrConsistency, id, err)
		}
	}

	return s.safeRepo.Commit(ctx, tx)
}

func uniqueSorted(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (s *transactionService) resolveCategory(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: category %s does not exist", apperrors.ErrValidation, categoryID)
		}
		return nil, err
	}
	return category, nil
}

func (s *transactionService) resolveSubCategory(ctx context.Context, subCategoryID, categoryID string) error {
	sub, err := s.categoryRepo.FindSubCategoryByID(ctx, subCategoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: sub-category %s does not exist", apperrors.ErrValidation, subCategoryID)
		}
		return err
	}
	if sub.CategoryID != categoryID {
		return fmt.Errorf("%w: sub-category %s does not belong to category %s", apperrors.ErrValidation, subCategoryID, categoryID)
	}
	return nil
}

func (s *transactionService) resolveContact(ctx context.Context, contactID string) error {
	if _, err := s.contactRepo.FindContactByID(ctx, contactID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: contact %s does not exist", apperrors.ErrValidation, contactID)
		}
		return err
	}
	return nil
}

// optionalID treats a nil or empty reference as absent.
func optionalID(id *string) *string {
	if id == nil || *id == "" {
		return nil
	}
	v := *id
	return &v
}

// CreateTransaction records a new movement dated now.
func (s *transactionService) CreateTransaction(ctx context.Context, cap domain.Capability, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if !access.CanCreate(cap, req.SafeID) {
		s.LogInfo(ctx, "Transaction creation refused",
			slog.String("user_id", cap.UserID),
			slog.String("safe_id", req.SafeID))
		return nil, fmt.Errorf("%w: no access to safe %s", apperrors.ErrForbidden, req.SafeID)
	}

	category, err := s.resolveCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	subCategoryID := optionalID(req.SubCategoryID)
	if subCategoryID != nil {
		if err := s.resolveSubCategory(ctx, *subCategoryID, category.CategoryID); err != nil {
			return nil, err
		}
	}

	contactID := optionalID(req.ContactID)
	if contactID != nil {
		if err := s.resolveContact(ctx, *contactID); err != nil {
			return nil, err
		}
	}

	now := s.Now()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		SafeID:          req.SafeID,
		CategoryID:      category.CategoryID,
		CategoryType:    category.Type,
		SubCategoryID:   subCategoryID,
		Amount:          req.Amount,
		PaymentMethod:   req.PaymentMethod,
		TransactionDate: now,
		Notes:           req.Notes,
		ContactID:       contactID,
		AuditFields:     auditFields(cap.UserID, now),
	}
	if err := accounting.ValidateTransaction(txn); err != nil {
		return nil, err
	}

	err = s.withSafesLocked(ctx, []string{txn.SafeID}, func(tx pgx.Tx) error {
		return s.txnRepo.SaveTransactionInTx(ctx, tx, txn)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create transaction",
			slog.String("safe_id", txn.SafeID),
			slog.String("user_id", cap.UserID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("safe_id", txn.SafeID),
		slog.String("amount", txn.Amount.String()),
		slog.String("category_type", string(txn.CategoryType)))
	return &txn, nil
}

func (s *transactionService) findMutable(ctx context.Context, cap domain.Capability, transactionID string) (*domain.Transaction, error) {
	existing, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if !access.CanMutate(cap, *existing, s.Now()) {
		s.LogInfo(ctx, "Transaction change refused",
			slog.String("user_id", cap.UserID),
			slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("%w: transaction %s can no longer be changed by this user", apperrors.ErrForbidden, transactionID)
	}
	return existing, nil
}

// UpdateTransaction applies the provided fields. Moving a movement to another
// safe recomputes both safes.
func (s *transactionService) UpdateTransaction(ctx context.Context, cap domain.Capability, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	existing, err := s.findMutable(ctx, cap, transactionID)
	if err != nil {
		return nil, err
	}

	updated := *existing

	if req.SafeID != nil && *req.SafeID != existing.SafeID {
		if !access.CanCreate(cap, *req.SafeID) {
			return nil, fmt.Errorf("%w: no access to safe %s", apperrors.ErrForbidden, *req.SafeID)
		}
		updated.SafeID = *req.SafeID
	}

	if req.CategoryID != nil && *req.CategoryID != existing.CategoryID {
		category, err := s.resolveCategory(ctx, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		updated.CategoryID = category.CategoryID
		updated.CategoryType = category.Type
		// The old sub-category belongs to the old category.
		updated.SubCategoryID = nil
	}

	if req.SubCategoryID != nil {
		updated.SubCategoryID = optionalID(req.SubCategoryID)
	}
	if updated.SubCategoryID != nil {
		if err := s.resolveSubCategory(ctx, *updated.SubCategoryID, updated.CategoryID); err != nil {
			return nil, err
		}
	}

	if req.ContactID != nil {
		updated.ContactID = optionalID(req.ContactID)
		if updated.ContactID != nil {
			if err := s.resolveContact(ctx, *updated.ContactID); err != nil {
				return nil, err
			}
		}
	}

	if req.Amount != nil {
		updated.Amount = *req.Amount
	}
	if req.PaymentMethod != nil {
		updated.PaymentMethod = *req.PaymentMethod
	}
	if req.Notes != nil {
		updated.Notes = *req.Notes
	}
	if req.TransactionDate != nil && !req.TransactionDate.Equal(existing.TransactionDate) {
		if !cap.IsAdmin() {
			return nil, fmt.Errorf("%w: only administrators can change the transaction date", apperrors.ErrForbidden)
		}
		updated.TransactionDate = *req.TransactionDate
	}

	if err := accounting.ValidateTransaction(updated); err != nil {
		return nil, err
	}

	updated.LastUpdatedAt = s.Now()
	updated.LastUpdatedBy = cap.UserID

	err = s.withSafesLocked(ctx, []string{existing.SafeID, updated.SafeID}, func(tx pgx.Tx) error {
		return s.txnRepo.UpdateTransactionInTx(ctx, tx, updated)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update transaction",
			slog.String("transaction_id", transactionID),
			slog.String("user_id", cap.UserID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated",
		slog.String("transaction_id", transactionID),
		slog.String("safe_id", updated.SafeID))
	return &updated, nil
}

// DeleteTransaction removes a movement and recomputes its safe.
func (s *transactionService) DeleteTransaction(ctx context.Context, cap domain.Capability, transactionID string) error {
	existing, err := s.findMutable(ctx, cap, transactionID)
	if err != nil {
		return err
	}

	err = s.withSafesLocked(ctx, []string{existing.SafeID}, func(tx pgx.Tx) error {
		return s.txnRepo.DeleteTransactionInTx(ctx, tx, transactionID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete transaction",
			slog.String("transaction_id", transactionID),
			slog.String("user_id", cap.UserID))
		return err
	}

	s.LogInfo(ctx, "Transaction deleted",
		slog.String("transaction_id", transactionID),
		slog.String("safe_id", existing.SafeID))
	return nil
}

// GetTransactionByID retrieves a movement of a safe the caller can see.
func (s *transactionService) GetTransactionByID(ctx context.Context, cap domain.Capability, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if !access.CanView(cap, txn.SafeID) {
		return nil, fmt.Errorf("%w: no access to safe %s", apperrors.ErrForbidden, txn.SafeID)
	}
	return txn, nil
}
