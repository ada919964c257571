package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod tags how money moved in or out of a safe.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentCheck        PaymentMethod = "check"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
)

// IsValid reports whether m is a supported payment method.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentCheck, PaymentBankTransfer:
		return true
	}
	return false
}

// Transaction is one dated cash movement in a safe.
//
// Amount is always a positive magnitude. The sign comes from CategoryType,
// which is resolved from the owning category when the row is read and is never
// stored on the transaction itself.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	SafeID          string          `json:"safeID"`
	CategoryID      string          `json:"categoryID"`
	CategoryType    CategoryType    `json:"categoryType"`
	SubCategoryID   *string         `json:"subCategoryID,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	TransactionDate time.Time       `json:"transactionDate"`
	Notes           string          `json:"notes"`
	ContactID       *string         `json:"contactID,omitempty"`
	AuditFields
}

// AnnotatedTransaction is a transaction carrying the cumulative balance
// as of and including itself.
type AnnotatedTransaction struct {
	Transaction
	RunningBalance decimal.Decimal `json:"runningBalance"`
}
