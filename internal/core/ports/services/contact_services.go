package services

import (
	"context"

	"github.com/SscSPs/cashflow_app/internal/core/domain"
)

// ContactSvc serves the counterparty picker
type ContactSvc interface {
	// ListContactsForType returns customers for INCOME and vendors for EXPENSE.
	ListContactsForType(ctx context.Context, categoryType domain.CategoryType) (*domain.ContactLookup, error)
}
