package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/cashflow_app/internal/apperrors"
	"github.com/SscSPs/cashflow_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashflow_app/internal/core/ports/services"
)

type contactService struct {
	contactRepo portsrepo.ContactReader
}

// NewContactService creates a new ContactSvc.
func NewContactService(contactRepo portsrepo.ContactReader) portssvc.ContactSvc {
	return &contactService{contactRepo: contactRepo}
}

// ListContactsForType returns customers for income and vendors for expense.
func (s *contactService) ListContactsForType(ctx context.Context, categoryType domain.CategoryType) (*domain.ContactLookup, error) {
	var (
		contacts []domain.Contact
		label    string
		err      error
	)
	switch categoryType {
	case domain.Income:
		label = "Customer"
		contacts, err = s.contactRepo.ListCustomers(ctx)
	case domain.Expense:
		label = "Vendor"
		contacts, err = s.contactRepo.ListVendors(ctx)
	default:
		return nil, fmt.Errorf("%w: unknown category type '%s'", apperrors.ErrValidation, categoryType)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return &domain.ContactLookup{Label: label, Contacts: contacts}, nil
}
