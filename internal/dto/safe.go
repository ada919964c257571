package dto

import (
	"sort"
	"time"

	"github.com/SscSPs/cashflow_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSafeRequest defines the data needed to create a new safe.
// A new safe always starts with a zero balance.
type CreateSafeRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// UpdateSafeRequest renames a safe. The balance is not editable.
type UpdateSafeRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// SafeResponse defines the data returned for a safe.
type SafeResponse struct {
	SafeID        string          `json:"safeID"`
	Name          string          `json:"name"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// RecomputeBalanceResponse reports a freshly recomputed balance.
type RecomputeBalanceResponse struct {
	SafeID  string          `json:"safeID"`
	Balance decimal.Decimal `json:"balance"`
}

// ListSafeTransactionsParams defines query parameters for a safe's paged statement.
type ListSafeTransactionsParams struct {
	Limit     int     `form:"limit,default=50" binding:"min=0,max=500"`
	NextToken *string `form:"nextToken"`
}

// ToSafeResponse converts a domain.Safe to SafeResponse DTO
func ToSafeResponse(safe *domain.Safe) SafeResponse {
	return SafeResponse{
		SafeID:        safe.SafeID,
		Name:          safe.Name,
		Balance:       safe.Balance,
		CreatedAt:     safe.CreatedAt,
		CreatedBy:     safe.CreatedBy,
		LastUpdatedAt: safe.LastUpdatedAt,
		LastUpdatedBy: safe.LastUpdatedBy,
	}
}

// ToListSafeResponse converts a slice of domain.Safe to a slice of SafeResponse DTOs
func ToListSafeResponse(safes []domain.Safe) []SafeResponse {
	res := make([]SafeResponse, len(safes))
	for i := range safes {
		res[i] = ToSafeResponse(&safes[i])
	}
	return res
}

// ToRecomputeBalanceResponses converts recomputed balances keyed by safe ID, ordered by safe ID.
func ToRecomputeBalanceResponses(balances map[string]decimal.Decimal) []RecomputeBalanceResponse {
	res := make([]RecomputeBalanceResponse, 0, len(balances))
	for safeID, balance := range balances {
		res = append(res, RecomputeBalanceResponse{SafeID: safeID, Balance: balance})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].SafeID < res[j].SafeID })
	return res
}
