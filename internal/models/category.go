package models

// CategoryType is stored as text: INCOME or EXPENSE.
type CategoryType string

// Category is the row stored in the categories table.
type Category struct {
	CategoryID string       `db:"category_id"`
	Name       string       `db:"name"`
	Type       CategoryType `db:"category_type"`
	AuditFields
}

// SubCategory is the row stored in the sub_categories table.
type SubCategory struct {
	SubCategoryID string `db:"sub_category_id"`
	CategoryID    string `db:"category_id"`
	Name          string `db:"name"`
	AuditFields
}
