package services

import (
	"context"

	"github.com/SscSPs/cashflow_app/internal/core/domain"
	"github.com/SscSPs/cashflow_app/internal/dto"
)

// TransactionReaderSvc defines read operations for single movements
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a movement the caller can see.
	GetTransactionByID(ctx context.Context, cap domain.Capability, transactionID string) (*domain.Transaction, error)
}

// TransactionWriterSvc defines the movement writes. Each write recomputes the
// affected safe balances in the same database transaction.
type TransactionWriterSvc interface {
	CreateTransaction(ctx context.Context, cap domain.Capability, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, cap domain.Capability, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, cap domain.Capability, transactionID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
