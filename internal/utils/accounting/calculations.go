package accounting

import (
	"fmt"
	"sort"

	"github.com/SscSPs/cashflow_app/internal/apperrors"
	"github.com/SscSPs/cashflow_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount applies the sign of the transaction's category classification to its amount.
// INCOME -> +amount, EXPENSE -> -amount.
func SignedAmount(txn domain.Transaction) (decimal.Decimal, error) {
	switch txn.CategoryType {
	case domain.Income:
		return txn.Amount, nil
	case domain.Expense:
		return txn.Amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: unknown category type '%s' encountered for transaction %s", apperrors.ErrValidation, txn.CategoryType, txn.TransactionID)
	}
}

// ComputeBalance folds the signed amounts of txns starting from zero.
// The result does not depend on the order of txns.
func ComputeBalance(txns []domain.Transaction) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, txn := range txns {
		signedAmount, err := SignedAmount(txn)
		if err != nil {
			return decimal.Zero, err
		}
		sum = sum.Add(signedAmount)
	}
	return sum, nil
}

// chronologicalLess orders by effective date, then creation time, then ID.
func chronologicalLess(a, b domain.Transaction) bool {
	if !a.TransactionDate.Equal(b.TransactionDate) {
		return a.TransactionDate.Before(b.TransactionDate)
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.TransactionID < b.TransactionID
}

// SortAscending sorts annotated transactions oldest first.
func SortAscending(txns []domain.AnnotatedTransaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		return chronologicalLess(txns[i].Transaction, txns[j].Transaction)
	})
}

// SortDescending sorts annotated transactions newest first. Running balances travel
// with their transactions and are not recomputed.
func SortDescending(txns []domain.AnnotatedTransaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		return chronologicalLess(txns[j].Transaction, txns[i].Transaction)
	})
}

// AnnotateRunningBalance attaches to every transaction the cumulative balance as of
// and including it, walking the transactions in chronological order, and returns
// them newest first for display.
//
// Transactions from several safes are accumulated into one cumulative total.
// The input slice is left untouched.
func AnnotateRunningBalance(txns []domain.Transaction) ([]domain.AnnotatedTransaction, error) {
	annotated := make([]domain.AnnotatedTransaction, len(txns))
	for i, txn := range txns {
		annotated[i] = domain.AnnotatedTransaction{Transaction: txn}
	}
	SortAscending(annotated)

	running := decimal.Zero
	for i := range annotated {
		signedAmount, err := SignedAmount(annotated[i].Transaction)
		if err != nil {
			return nil, err
		}
		running = running.Add(signedAmount)
		annotated[i].RunningBalance = running
	}

	SortDescending(annotated)
	return annotated, nil
}

// SummarizeFlow totals income and expense of txns.
func SummarizeFlow(txns []domain.Transaction) (domain.FlowSummary, error) {
	summary := domain.FlowSummary{Income: decimal.Zero, Expense: decimal.Zero}
	for _, txn := range txns {
		switch txn.CategoryType {
		case domain.Income:
			summary.Income = summary.Income.Add(txn.Amount)
		case domain.Expense:
			summary.Expense = summary.Expense.Add(txn.Amount)
		default:
			return domain.FlowSummary{}, fmt.Errorf("%w: unknown category type '%s' encountered for transaction %s", apperrors.ErrValidation, txn.CategoryType, txn.TransactionID)
		}
	}
	summary.Net = summary.Income.Sub(summary.Expense)
	return summary, nil
}

// AmountDecimalPlaces is the precision amounts and balances are stored with.
const AmountDecimalPlaces = 2

// HasAmountPrecision reports whether d can be stored without rounding.
func HasAmountPrecision(d decimal.Decimal) bool {
	return d.Equal(d.Round(AmountDecimalPlaces))
}

// ValidateTransaction checks the fields a transaction needs before it is persisted.
func ValidateTransaction(txn domain.Transaction) error {
	if !txn.Amount.IsPositive() {
		return fmt.Errorf("%w: transaction amount must be positive, got %s", apperrors.ErrValidation, txn.Amount.String())
	}
	if !HasAmountPrecision(txn.Amount) {
		return fmt.Errorf("%w: transaction amount allows at most %d decimal places, got %s", apperrors.ErrValidation, AmountDecimalPlaces, txn.Amount.String())
	}
	if txn.SafeID == "" {
		return fmt.Errorf("%w: safe is required", apperrors.ErrValidation)
	}
	if txn.CategoryID == "" {
		return fmt.Errorf("%w: category is required", apperrors.ErrValidation)
	}
	if !txn.CategoryType.IsValid() {
		return fmt.Errorf("%w: category must be classified as INCOME or EXPENSE", apperrors.ErrValidation)
	}
	if !txn.PaymentMethod.IsValid() {
		return fmt.Errorf("%w: unsupported payment method '%s'", apperrors.ErrValidation, txn.PaymentMethod)
	}
	return nil
}
