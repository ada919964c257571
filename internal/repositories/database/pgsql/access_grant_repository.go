package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/cashflow_app/internal/apperrors"
	"github.com/SscSPs/cashflow_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_app/internal/core/ports/repositories"
	"github.com/SscSPs/cashflow_app/internal/models"
	"github.com/SscSPs/cashflow_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccessGrantRepository struct {
	BaseRepository
}

func newPgxAccessGrantRepository(pool *pgxpool.Pool) portsrepo.AccessGrantRepositoryFacade {
	return &PgxAccessGrantRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccessGrantRepositoryFacade = (*PgxAccessGrantRepository)(nil)

func collectGrants(rows pgx.Rows) ([]domain.AccessGrant, error) {
	defer rows.Close()
	grants := []domain.AccessGrant{}
	for rows.Next() {
		var m models.AccessGrant
		if err := rows.Scan(&m.UserID, &m.SafeID, &m.AssignedAt, &m.AssignedBy); err != nil {
			return nil, fmt.Errorf("failed to scan grant row: %w", err)
		}
		grants = append(grants, mapping.ToDomainAccessGrant(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating grant rows: %w", err)
	}
	return grants, nil
}

// ListGrantsByUser retrieves the safes granted to one user.
func (r *PgxAccessGrantRepository) ListGrantsByUser(ctx context.Context, userID string) ([]domain.AccessGrant, error) {
	query := `
		SELECT user_id, safe_id, assigned_at, assigned_by
		FROM user_safe_grants
		WHERE user_id = $1
		ORDER BY safe_id;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query grants for user %s: %w", userID, err)
	}
	return collectGrants(rows)
}

// ListGrants retrieves all grants.
func (r *PgxAccessGrantRepository) ListGrants(ctx context.Context) ([]domain.AccessGrant, error) {
	query := `
		SELECT user_id, safe_id, assigned_at, assigned_by
		FROM user_safe_grants
		ORDER BY user_id, safe_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query grants: %w", err)
	}
	return collectGrants(rows)
}

// SaveGrant inserts a new grant.
func (r *PgxAccessGrantRepository) SaveGrant(ctx context.Context, grant domain.AccessGrant) error {
	query := `
		INSERT INTO user_safe_grants (user_id, safe_id, assigned_at, assigned_by)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query, grant.UserID, grant.SafeID, grant.AssignedAt, grant.AssignedBy)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return fmt.Errorf("%w: user %s already has safe %s", apperrors.ErrDuplicate, grant.UserID, grant.SafeID)
		case isForeignKeyViolation(err):
			return fmt.Errorf("%w: unknown user or safe", apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to save grant: %w", err)
	}
	return nil
}

// DeleteGrant removes a grant.
func (r *PgxAccessGrantRepository) DeleteGrant(ctx context.Context, userID, safeID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM user_safe_grants WHERE user_id = $1 AND safe_id = $2;`, userID, safeID)
	if err != nil {
		return fmt.Errorf("failed to delete grant: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
