package dto

import (
	"time"

	"github.com/SscSPs/cashflow_app/internal/core/domain"
)

// AssignSafeRequest grants a user access to a safe.
type AssignSafeRequest struct {
	UserID string `json:"userID" binding:"required"`
	SafeID string `json:"safeID" binding:"required"`
}

// GrantResponse defines the data returned for a grant.
type GrantResponse struct {
	UserID     string    `json:"userID"`
	SafeID     string    `json:"safeID"`
	AssignedAt time.Time `json:"assignedAt"`
	AssignedBy string    `json:"assignedBy"`
}

func ToGrantResponse(g *domain.AccessGrant) GrantResponse {
	return GrantResponse{UserID: g.UserID, SafeID: g.SafeID, AssignedAt: g.AssignedAt, AssignedBy: g.AssignedBy}
}

func ToListGrantResponse(grants []domain.AccessGrant) []GrantResponse {
	res := make([]GrantResponse, len(grants))
	for i := range grants {
		res[i] = ToGrantResponse(&grants[i])
	}
	return res
}
