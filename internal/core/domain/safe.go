package domain

import "github.com/shopspring/decimal"

// Safe is a named cash or bank balance bucket.
//
// Balance is a cached value: it always equals the signed sum of the safe's
// transactions and is only ever written by balance recomputation.
type Safe struct {
	SafeID      string          `json:"safeID"`
	Name        string          `json:"name"`
	Balance     decimal.Decimal `json:"balance"`
	AuditFields                 // Embed CreatedAt, CreatedBy, etc.
}
