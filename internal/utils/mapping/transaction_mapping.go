package mapping

import (
	"database/sql"

	"github.com/SscSPs/cashflow_app/internal/core/domain"
	"github.com/SscSPs/cashflow_app/internal/models"
)

func toNullString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		SafeID:          d.SafeID,
		CategoryID:      d.CategoryID,
		CategoryType:    models.CategoryType(d.CategoryType),
		SubCategoryID:   toNullString(d.SubCategoryID),
		Amount:          d.Amount,
		PaymentMethod:   string(d.PaymentMethod),
		TransactionDate: d.TransactionDate,
		Notes:           d.Notes,
		ContactID:       toNullString(d.ContactID),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		SafeID:          m.SafeID,
		CategoryID:      m.CategoryID,
		CategoryType:    domain.CategoryType(m.CategoryType),
		SubCategoryID:   fromNullString(m.SubCategoryID),
		Amount:          m.Amount,
		PaymentMethod:   domain.PaymentMethod(m.PaymentMethod),
		TransactionDate: m.TransactionDate,
		Notes:           m.Notes,
		ContactID:       fromNullString(m.ContactID),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
