package dto

import (
	"time"

	"github.com/SscSPs/cashflow_app/internal/core/domain"
	"github.com/SscSPs/cashflow_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a cash movement.
// The transaction date is always the moment of creation.
type CreateTransactionRequest struct {
	SafeID        string               `json:"safeID" binding:"required"`
	CategoryID    string               `json:"categoryID" binding:"required"`
	SubCategoryID *string              `json:"subCategoryID"`
	Amount        decimal.Decimal      `json:"amount" binding:"decimal_gt0,decimal_2dp"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"required,payment_method"`
	Notes         string               `json:"notes" binding:"max=1000"`
	ContactID     *string              `json:"contactID"`
}

// UpdateTransactionRequest defines the fields of a transaction that may change.
// Use pointers to distinguish between zero-value updates and fields not provided.
// An empty SubCategoryID or ContactID clears the reference.
type UpdateTransactionRequest struct {
	SafeID          *string               `json:"safeID" binding:"omitempty,min=1"`
	CategoryID      *string               `json:"categoryID" binding:"omitempty,min=1"`
	SubCategoryID   *string               `json:"subCategoryID"`
	Amount          *decimal.Decimal      `json:"amount" binding:"omitempty,decimal_gt0,decimal_2dp"`
	PaymentMethod   *domain.PaymentMethod `json:"paymentMethod" binding:"omitempty,payment_method"`
	TransactionDate *time.Time            `json:"transactionDate"` // Administrators only
	Notes           *string               `json:"notes" binding:"omitempty,max=1000"`
	ContactID       *string               `json:"contactID"`
}

// ListTransactionsParams defines the optional date filter of the ledger view.
type ListTransactionsParams struct {
	From *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To   *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string               `json:"transactionID"`
	SafeID          string               `json:"safeID"`
	CategoryID      string               `json:"categoryID"`
	CategoryType    domain.CategoryType  `json:"categoryType"`
	SubCategoryID   *string              `json:"subCategoryID,omitempty"`
	Amount          decimal.Decimal      `json:"amount"`
	SignedAmount    *decimal.Decimal     `json:"signedAmount,omitempty"`
	PaymentMethod   domain.PaymentMethod `json:"paymentMethod"`
	TransactionDate time.Time            `json:"transactionDate"`
	Notes           string               `json:"notes"`
	ContactID       *string              `json:"contactID,omitempty"`
	RunningBalance  *decimal.Decimal     `json:"runningBalance,omitempty"`
	CreatedAt       time.Time            `json:"createdAt"`
	CreatedBy       string               `json:"createdBy"`
	LastUpdatedAt   time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy   string               `json:"lastUpdatedBy"`
}

// FlowSummaryResponse totals income and expense.
type FlowSummaryResponse struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// SafeLedgerResponse is one safe's annotated history.
type SafeLedgerResponse struct {
	SafeID       string                `json:"safeID"`
	SafeName     string                `json:"safeName"`
	SafeBalance  decimal.Decimal       `json:"safeBalance"`
	Transactions []TransactionResponse `json:"transactions"`
	Flow         *FlowSummaryResponse  `json:"flow,omitempty"`
}

// LedgerResponse is the payload of the ledger and today views.
type LedgerResponse struct {
	Safes        []SafeLedgerResponse  `json:"safes"`
	Combined     []TransactionResponse `json:"combined"`
	TotalBalance decimal.Decimal       `json:"totalBalance"`
	Flow         *FlowSummaryResponse  `json:"flow,omitempty"`
	CurrentDate  time.Time             `json:"currentDate"`
}

// TransactionPageResponse is one page of a safe's statement.
type TransactionPageResponse struct {
	SafeID       string                `json:"safeID"`
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// signedAmount is nil when the category classification is unknown.
func signedAmount(txn *domain.Transaction) *decimal.Decimal {
	signed, err := accounting.SignedAmount(*txn)
	if err != nil {
		return nil
	}
	return &signed
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		SafeID:          txn.SafeID,
		CategoryID:      txn.CategoryID,
		CategoryType:    txn.CategoryType,
		SubCategoryID:   txn.SubCategoryID,
		Amount:          txn.Amount,
		SignedAmount:    signedAmount(txn),
		PaymentMethod:   txn.PaymentMethod,
		TransactionDate: txn.TransactionDate,
		Notes:           txn.Notes,
		ContactID:       txn.ContactID,
		CreatedAt:       txn.CreatedAt,
		CreatedBy:       txn.CreatedBy,
		LastUpdatedAt:   txn.LastUpdatedAt,
		LastUpdatedBy:   txn.LastUpdatedBy,
	}
}

// ToAnnotatedTransactionResponses converts annotated transactions, keeping their order.
func ToAnnotatedTransactionResponses(annotated []domain.AnnotatedTransaction) []TransactionResponse {
	res := make([]TransactionResponse, len(annotated))
	for i := range annotated {
		res[i] = ToTransactionResponse(&annotated[i].Transaction)
		rb := annotated[i].RunningBalance
		res[i].RunningBalance = &rb
	}
	return res
}

func toFlowSummaryResponse(flow *domain.FlowSummary) *FlowSummaryResponse {
	if flow == nil {
		return nil
	}
	return &FlowSummaryResponse{Income: flow.Income, Expense: flow.Expense, Net: flow.Net}
}

// ToLedgerResponse converts a domain.LedgerView to LedgerResponse DTO
func ToLedgerResponse(view *domain.LedgerView) LedgerResponse {
	safes := make([]SafeLedgerResponse, len(view.Safes))
	for i, s := range view.Safes {
		safes[i] = SafeLedgerResponse{
			SafeID:       s.SafeID,
			SafeName:     s.SafeName,
			SafeBalance:  s.SafeBalance,
			Transactions: ToAnnotatedTransactionResponses(s.Transactions),
			Flow:         toFlowSummaryResponse(s.Flow),
		}
	}
	return LedgerResponse{
		Safes:        safes,
		Combined:     ToAnnotatedTransactionResponses(view.Combined),
		TotalBalance: view.TotalBalance,
		Flow:         toFlowSummaryResponse(view.Flow),
		CurrentDate:  view.CurrentDate,
	}
}

// ToTodayResponse converts the today view. Running balances restart at zero over
// a single day, so they are left out and only the flow totals are reported.
func ToTodayResponse(view *domain.LedgerView) LedgerResponse {
	res := ToLedgerResponse(view)
	for i := range res.Safes {
		clearRunningBalances(res.Safes[i].Transactions)
	}
	clearRunningBalances(res.Combined)
	return res
}

func clearRunningBalances(txns []TransactionResponse) {
	for i := range txns {
		txns[i].RunningBalance = nil
	}
}

// ToTransactionPageResponse converts a domain.TransactionPage to its DTO
func ToTransactionPageResponse(page *domain.TransactionPage) TransactionPageResponse {
	return TransactionPageResponse{
		SafeID:       page.SafeID,
		Transactions: ToAnnotatedTransactionResponses(page.Transactions),
		NextToken:    page.NextToken,
	}
}
