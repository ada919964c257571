package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FlowSummary totals the income and expense of a set of transactions.
type FlowSummary struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// SafeLedger is one safe's annotated history, newest first.
type SafeLedger struct {
	SafeID       string                 `json:"safeID"`
	SafeName     string                 `json:"safeName"`
	SafeBalance  decimal.Decimal        `json:"safeBalance"`
	Transactions []AnnotatedTransaction `json:"transactions"`
	Flow         *FlowSummary           `json:"flow,omitempty"`
}

// LedgerView is what the display layer renders for a user: per-safe histories,
// the merged cross-safe history and the total cached balance of visible safes.
type LedgerView struct {
	Safes        []SafeLedger           `json:"safes"`
	Combined     []AnnotatedTransaction `json:"combined"`
	TotalBalance decimal.Decimal        `json:"totalBalance"`
	Flow         *FlowSummary           `json:"flow,omitempty"`
	CurrentDate  time.Time              `json:"currentDate"`
}

// TransactionPage is one page of a safe's annotated history, newest first.
// Running balances are computed over the full history before paging.
type TransactionPage struct {
	SafeID       string                 `json:"safeID"`
	Transactions []AnnotatedTransaction `json:"transactions"`
	NextToken    *string                `json:"nextToken,omitempty"`
}
