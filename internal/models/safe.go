package models

import "github.com/shopspring/decimal"

// Safe is the row stored in the safes table.
type Safe struct {
	SafeID  string          `db:"safe_id"`
	Name    string          `db:"name"`
	Balance decimal.Decimal `db:"balance"` // Cached; written only by balance recomputation
	AuditFields
}
