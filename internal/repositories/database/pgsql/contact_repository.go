package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/cashflow_app/internal/apperrors"
	"github.com/SscSPs/cashflow_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_app/internal/core/ports/repositories"
	"github.com/SscSPs/cashflow_app/internal/models"
	"github.com/SscSPs/cashflow_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const contactColumns = `contact_id, name, phone, is_customer, is_vendor`

type PgxContactRepository struct {
	BaseRepository
}

func newPgxContactRepository(pool *pgxpool.Pool) portsrepo.ContactReader {
	return &PgxContactRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ContactReader = (*PgxContactRepository)(nil)

func scanContact(row pgx.Row) (domain.Contact, error) {
	var m models.Contact
	if err := row.Scan(&m.ContactID, &m.Name, &m.Phone, &m.IsCustomer, &m.IsVendor); err != nil {
		return domain.Contact{}, err
	}
	return mapping.ToDomainContact(m), nil
}

func (r *PgxContactRepository) FindContactByID(ctx context.Context, contactID string) (*domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE contact_id = $1;`
	contact, err := scanContact(r.Pool.QueryRow(ctx, query, contactID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find contact by ID %s: %w", contactID, err)
	}
	return &contact, nil
}

func (r *PgxContactRepository) ListCustomers(ctx context.Context) ([]domain.Contact, error) {
	return r.listWhere(ctx, `is_customer = TRUE`)
}

func (r *PgxContactRepository) ListVendors(ctx context.Context) ([]domain.Contact, error) {
	return r.listWhere(ctx, `is_vendor = TRUE`)
}

func (r *PgxContactRepository) listWhere(ctx context.Context, predicate string) ([]domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE ` + predicate + ` ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	contacts := []domain.Contact{}
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact row: %w", err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact rows: %w", err)
	}
	return contacts, nil
}
