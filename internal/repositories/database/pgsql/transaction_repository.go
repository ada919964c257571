package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/cashflow_app/internal/apperrors"
	"github.com/SscSPs/cashflow_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_app/internal/core/ports/repositories"
	"github.com/SscSPs/cashflow_app/internal/models"
	"github.com/SscSPs/cashflow_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// The category type is never stored on a transaction; it is always read through the category.
const transactionSelect = `
	SELECT t.transaction_id, t.safe_id, t.category_id, c.category_type, t.sub_category_id,
	       t.amount, t.payment_method, t.transaction_date, t.notes, t.contact_id,
	       t.created_at, t.created_by, t.last_updated_at, t.last_updated_by
	FROM transactions t
	JOIN categories c ON c.category_id = t.category_id`

const transactionOrder = ` ORDER BY t.transaction_date, t.created_at, t.transaction_id`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (domain.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.SafeID,
		&m.CategoryID,
		&m.CategoryType,
		&m.SubCategoryID,
		&m.Amount,
		&m.PaymentMethod,
		&m.TransactionDate,
		&m.Notes,
		&m.ContactID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return domain.Transaction{}, err
	}
	return mapping.ToDomainTransaction(m), nil
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	defer rows.Close()
	txns := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}

// translateWriteError maps constraint violations of a transaction write to domain errors.
func translateWriteError(err error, transactionID string) error {
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: transaction %s references an unknown safe, category, sub-category or contact", apperrors.ErrValidation, transactionID)
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: transaction %s already exists", apperrors.ErrDuplicate, transactionID)
	}
	if isCheckViolation(err) {
		return fmt.Errorf("%w: transaction %s has an amount the ledger cannot store", apperrors.ErrValidation, transactionID)
	}
	return fmt.Errorf("failed to write transaction %s: %w", transactionID, err)
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := transactionSelect + ` WHERE t.transaction_id = $1;`

	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	return &txn, nil
}

// ListTransactionsBySafes retrieves the transactions of the given safes in chronological order.
func (r *PgxTransactionRepository) ListTransactionsBySafes(ctx context.Context, safeIDs []string, dateRange *domain.DateRange) ([]domain.Transaction, error) {
	if len(safeIDs) == 0 {
		return []domain.Transaction{}, nil
	}

	var sb strings.Builder
	sb.WriteString(transactionSelect)
	sb.WriteString(` WHERE t.safe_id = ANY($1)`)
	args := []any{safeIDs}

	if dateRange != nil {
		if !dateRange.From.IsZero() {
			args = append(args, dateRange.From)
			sb.WriteString(` AND t.transaction_date >= $` + strconv.Itoa(len(args)))
		}
		if !dateRange.To.IsZero() {
			args = append(args, dateRange.To)
			sb.WriteString(` AND t.transaction_date <= $` + strconv.Itoa(len(args)))
		}
	}
	sb.WriteString(transactionOrder)

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions by safes: %w", err)
	}
	return collectTransactions(rows)
}

// CountTransactionsBySafe counts the transactions referencing a safe.
func (r *PgxTransactionRepository) CountTransactionsBySafe(ctx context.Context, safeID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE safe_id = $1;`, safeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions for safe %s: %w", safeID, err)
	}
	return count, nil
}

// CountTransactionsByCategory counts the transactions referencing a category.
func (r *PgxTransactionRepository) CountTransactionsByCategory(ctx context.Context, categoryID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE category_id = $1;`, categoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions for category %s: %w", categoryID, err)
	}
	return count, nil
}

// FindTransactionsBySafeInTx retrieves every transaction of a safe as seen by tx.
func (r *PgxTransactionRepository) FindTransactionsBySafeInTx(ctx context.Context, tx pgx.Tx, safeID string) ([]domain.Transaction, error) {
	query := transactionSelect + ` WHERE t.safe_id = $1` + transactionOrder + `;`

	rows, err := tx.Query(ctx, query, safeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for safe %s: %w", safeID, err)
	}
	return collectTransactions(rows)
}

// SaveTransactionInTx inserts a new transaction.
func (r *PgxTransactionRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (
			transaction_id, safe_id, category_id, sub_category_id, amount, payment_method,
			transaction_date, notes, contact_id, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.SafeID,
		m.CategoryID,
		m.SubCategoryID,
		m.Amount,
		m.PaymentMethod,
		m.TransactionDate,
		m.Notes,
		m.ContactID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, m.TransactionID)
	}
	return nil
}

// UpdateTransactionInTx updates an existing transaction. Creation audit fields are left untouched.
func (r *PgxTransactionRepository) UpdateTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions
		SET safe_id = $2, category_id = $3, sub_category_id = $4, amount = $5, payment_method = $6,
		    transaction_date = $7, notes = $8, contact_id = $9, last_updated_at = $10, last_updated_by = $11
		WHERE transaction_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.SafeID,
		m.CategoryID,
		m.SubCategoryID,
		m.Amount,
		m.PaymentMethod,
		m.TransactionDate,
		m.Notes,
		m.ContactID,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, m.TransactionID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransactionInTx removes a transaction.
func (r *PgxTransactionRepository) DeleteTransactionInTx(ctx context.Context, tx pgx.Tx, transactionID string) error {
	cmdTag, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
