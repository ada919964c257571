package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/cashflow_app/internal/apperrors"
	"github.com/SscSPs/cashflow_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_app/internal/core/ports/repositories"
	"github.com/SscSPs/cashflow_app/internal/models"
	"github.com/SscSPs/cashflow_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const safeColumns = `safe_id, name, balance, created_at, created_by, last_updated_at, last_updated_by`

type PgxSafeRepository struct {
	BaseRepository
}

// newPgxSafeRepository creates a new repository for safe data.
func newPgxSafeRepository(pool *pgxpool.Pool) portsrepo.SafeRepositoryWithTx {
	return &PgxSafeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxSafeRepository implements portsrepo.SafeRepositoryWithTx
var _ portsrepo.SafeRepositoryWithTx = (*PgxSafeRepository)(nil)

func scanSafe(row pgx.Row) (domain.Safe, error) {
	var m models.Safe
	err := row.Scan(
		&m.SafeID,
		&m.Name,
		&m.Balance,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return domain.Safe{}, err
	}
	return mapping.ToDomainSafe(m), nil
}

func collectSafes(rows pgx.Rows) ([]domain.Safe, error) {
	defer rows.Close()
	safes := []domain.Safe{}
	for rows.Next() {
		safe, err := scanSafe(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan safe row: %w", err)
		}
		safes = append(safes, safe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating safe rows: %w", err)
	}
	return safes, nil
}

// SaveSafe inserts a new safe.
func (r *PgxSafeRepository) SaveSafe(ctx context.Context, safe domain.Safe) error {
	m := mapping.ToModelSafe(safe)
	query := `
		INSERT INTO safes (` + safeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.SafeID,
		m.Name,
		m.Balance,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: safe named '%s' already exists", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to save safe %s: %w", m.SafeID, err)
	}
	return nil
}

// FindSafeByID retrieves a safe by its ID.
func (r *PgxSafeRepository) FindSafeByID(ctx context.Context, safeID string) (*domain.Safe, error) {
	query := `SELECT ` + safeColumns + ` FROM safes WHERE safe_id = $1;`

	safe, err := scanSafe(r.Pool.QueryRow(ctx, query, safeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find safe by ID %s: %w", safeID, err)
	}
	return &safe, nil
}

// ListSafes retrieves all safes ordered by name.
func (r *PgxSafeRepository) ListSafes(ctx context.Context) ([]domain.Safe, error) {
	query := `SELECT ` + safeColumns + ` FROM safes ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query safes: %w", err)
	}
	return collectSafes(rows)
}

// ListSafesByIDs retrieves the requested safes ordered by name.
func (r *PgxSafeRepository) ListSafesByIDs(ctx context.Context, safeIDs []string) ([]domain.Safe, error) {
	if len(safeIDs) == 0 {
		return []domain.Safe{}, nil
	}
	query := `SELECT ` + safeColumns + ` FROM safes WHERE safe_id = ANY($1) ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, safeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query safes by IDs: %w", err)
	}
	return collectSafes(rows)
}

// UpdateSafeName renames a safe.
func (r *PgxSafeRepository) UpdateSafeName(ctx context.Context, safeID, name, userID string, now time.Time) error {
	query := `
		UPDATE safes
		SET name = $2, last_updated_at = $3, last_updated_by = $4
		WHERE safe_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, safeID, name, now, userID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: safe named '%s' already exists", apperrors.ErrDuplicate, name)
		}
		return fmt.Errorf("failed to rename safe %s: %w", safeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteSafe removes a safe. Transactions reference safes with ON DELETE RESTRICT,
// so a safe that still has transactions is reported as a conflict.
func (r *PgxSafeRepository) DeleteSafe(ctx context.Context, safeID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM safes WHERE safe_id = $1;`, safeID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: safe %s still has transactions", apperrors.ErrConflict, safeID)
		}
		return fmt.Errorf("failed to delete safe %s: %w", safeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// LockSafeForUpdate retrieves a safe and locks its row for the rest of tx.
func (r *PgxSafeRepository) LockSafeForUpdate(ctx context.Context, tx pgx.Tx, safeID string) (*domain.Safe, error) {
	query := `SELECT ` + safeColumns + ` FROM safes WHERE safe_id = $1 FOR UPDATE;`

	safe, err := scanSafe(tx.QueryRow(ctx, query, safeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: safe %s", apperrors.ErrNotFound, safeID)
		}
		return nil, fmt.Errorf("failed to lock safe %s: %w", safeID, err)
	}
	return &safe, nil
}

// SaveSafeBalanceInTx overwrites the cached balance. Only the balance column is written.
func (r *PgxSafeRepository) SaveSafeBalanceInTx(ctx context.Context, tx pgx.Tx, safeID string, balance decimal.Decimal) error {
	cmdTag, err := tx.Exec(ctx, `UPDATE safes SET balance = $2 WHERE safe_id = $1;`, safeID, balance)
	if err != nil {
		return fmt.Errorf("failed to save balance for safe %s: %w", safeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: safe %s not found during balance update", apperrors.ErrNotFound, safeID)
	}
	return nil
}
