package repositories

import (
	"context"

	"github.com/SscSPs/cashflow_app/internal/core/domain"
)

// ContactReader defines the read-only lookups of the counterparty directory
type ContactReader interface {
	// FindContactByID retrieves a specific contact.
	FindContactByID(ctx context.Context, contactID string) (*domain.Contact, error)

	// ListCustomers retrieves contacts flagged as customers ordered by name.
	ListCustomers(ctx context.Context) ([]domain.Contact, error)

	// ListVendors retrieves contacts flagged as vendors ordered by name.
	ListVendors(ctx context.Context) ([]domain.Contact, error)
}
