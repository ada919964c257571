package dto

import (
	"testing"
	"time"

	"github.com/SscSPs/cashflow_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToLedgerResponse_KeepsOrderAndRunningBalances(t *testing.T) {
	day := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	expense := domain.Transaction{TransactionID: "t2", CategoryType: domain.Expense, Amount: decimal.NewFromInt(50), TransactionDate: day.AddDate(0, 0, 1)}
	income := domain.Transaction{TransactionID: "t1", CategoryType: domain.Income, Amount: decimal.NewFromInt(500), TransactionDate: day}

	view := &domain.LedgerView{
		Safes: []domain.SafeLedger{{
			SafeID:      "s1",
			SafeName:    "Main",
			SafeBalance: decimal.NewFromInt(450),
			Transactions: []domain.AnnotatedTransaction{
				{Transaction: expense, RunningBalance: decimal.NewFromInt(450)},
				{Transaction: income, RunningBalance: decimal.NewFromInt(500)},
			},
		}},
		TotalBalance: decimal.NewFromInt(450),
	}

	res := ToLedgerResponse(view)
	require.Len(t, res.Safes, 1)
	txns := res.Safes[0].Transactions
	require.Len(t, txns, 2)
	assert.Equal(t, "t2", txns[0].TransactionID)
	require.NotNil(t, txns[0].SignedAmount)
	assert.Equal(t, "-50", txns[0].SignedAmount.String())
	require.NotNil(t, txns[0].RunningBalance)
	assert.Equal(t, "450", txns[0].RunningBalance.String())
	assert.Equal(t, "500", txns[1].RunningBalance.String())
	assert.Empty(t, res.Combined)
	assert.NotNil(t, res.Combined)
	assert.Nil(t, res.Flow)
}

func TestToTransactionResponse_UnknownClassificationHasNoSign(t *testing.T) {
	res := ToTransactionResponse(&domain.Transaction{TransactionID: "t1", CategoryType: domain.CategoryType("TRANSFER"), Amount: decimal.NewFromInt(30)})
	assert.Nil(t, res.SignedAmount)
	assert.Equal(t, "30", res.Amount.String())
}

func TestToTodayResponse_OmitsRunningBalances(t *testing.T) {
	income := domain.Transaction{TransactionID: "t1", SafeID: "s1", CategoryType: domain.Income, Amount: decimal.NewFromInt(200)}
	annotated := []domain.AnnotatedTransaction{{Transaction: income, RunningBalance: decimal.NewFromInt(200)}}
	flow := domain.FlowSummary{Income: decimal.NewFromInt(200), Expense: decimal.Zero, Net: decimal.NewFromInt(200)}
	view := &domain.LedgerView{
		Safes:        []domain.SafeLedger{{SafeID: "s1", SafeBalance: decimal.NewFromInt(650), Transactions: annotated, Flow: &flow}},
		Combined:     annotated,
		TotalBalance: decimal.NewFromInt(650),
		Flow:         &flow,
	}

	res := ToTodayResponse(view)
	require.Len(t, res.Safes, 1)
	require.Len(t, res.Safes[0].Transactions, 1)
	assert.Nil(t, res.Safes[0].Transactions[0].RunningBalance)
	require.Len(t, res.Combined, 1)
	assert.Nil(t, res.Combined[0].RunningBalance)
	assert.Equal(t, "650", res.Safes[0].SafeBalance.String())
	require.NotNil(t, res.Flow)
	assert.Equal(t, "200", res.Flow.Net.String())

	// the full ledger view still carries them
	require.NotNil(t, ToLedgerResponse(view).Combined[0].RunningBalance)
}

func TestToUserResponse_OmitsPasswordHash(t *testing.T) {
	res := ToUserResponse(&domain.User{UserID: "u1", Username: "clerk", PasswordHash: "secret-hash", Role: domain.RoleStandard, IsActive: true})
	assert.Equal(t, "clerk", res.Username)
	assert.Equal(t, domain.RoleStandard, res.Role)
	assert.NotContains(t, res.Name, "secret-hash")
}
