package domain

// Contact is a counterparty (customer and/or vendor) a transaction may reference.
type Contact struct {
	ContactID  string `json:"contactID"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	IsCustomer bool   `json:"isCustomer"`
	IsVendor   bool   `json:"isVendor"`
}

// ContactLookup is the list of counterparties eligible for a category type,
// with the label the picker shows ("Customer" or "Vendor").
type ContactLookup struct {
	Label    string    `json:"label"`
	Contacts []Contact `json:"contacts"`
}
