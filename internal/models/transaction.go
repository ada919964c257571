package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table joined with its category's type.
// category_type lives on categories only.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	SafeID          string          `db:"safe_id"`
	CategoryID      string          `db:"category_id"`
	CategoryType    CategoryType    `db:"category_type"` // From the categories join
	SubCategoryID   sql.NullString  `db:"sub_category_id"`
	Amount          decimal.Decimal `db:"amount"` // Positive magnitude
	PaymentMethod   string          `db:"payment_method"`
	TransactionDate time.Time       `db:"transaction_date"`
	Notes           string          `db:"notes"`
	ContactID       sql.NullString  `db:"contact_id"`
	AuditFields
}
