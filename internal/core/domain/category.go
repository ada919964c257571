package domain

// CategoryType classifies a category and decides the sign of a transaction's contribution.
type CategoryType string

const (
	Income  CategoryType = "INCOME"
	Expense CategoryType = "EXPENSE"
)

// IsValid reports whether t is a known classification.
func (t CategoryType) IsValid() bool {
	return t == Income || t == Expense
}

// Category groups transactions under a classification. (Name, Type) is unique.
type Category struct {
	CategoryID string       `json:"categoryID"`
	Name       string       `json:"name"`
	Type       CategoryType `json:"type"`
	AuditFields
}

// SubCategory refines a Category. (Name, CategoryID) is unique.
type SubCategory struct {
	SubCategoryID string `json:"subCategoryID"`
	CategoryID    string `json:"categoryID"`
	Name          string `json:"name"`
	AuditFields
}
