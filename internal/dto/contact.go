package dto

import "github.com/SscSPs/cashflow_app/internal/core/domain"

// ListContactsParams selects which side of the directory to list.
type ListContactsParams struct {
	Type string `form:"type" binding:"required,oneof=INCOME EXPENSE"`
}

// ContactResponse defines the data returned for a contact.
type ContactResponse struct {
	ContactID string `json:"contactID"`
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
}

// ContactLookupResponse is the picker payload: a label plus the eligible contacts.
type ContactLookupResponse struct {
	Label    string            `json:"label"`
	Contacts []ContactResponse `json:"contacts"`
}

func ToContactLookupResponse(lookup *domain.ContactLookup) ContactLookupResponse {
	contacts := make([]ContactResponse, len(lookup.Contacts))
	for i, c := range lookup.Contacts {
		contacts[i] = ContactResponse{ContactID: c.ContactID, Name: c.Name, Phone: c.Phone}
	}
	return ContactLookupResponse{Label: lookup.Label, Contacts: contacts}
}
