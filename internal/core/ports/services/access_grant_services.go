package services

import (
	"context"

	"github.com/SscSPs/cashflow_app/internal/core/domain"
	"github.com/SscSPs/cashflow_app/internal/dto"
)

// CapabilitySvc builds the permission set a user presents to the ledger.
type CapabilitySvc interface {
	// GetCapability loads the role and granted safes of an active user.
	GetCapability(ctx context.Context, userID string) (domain.Capability, error)
}

// AccessGrantSvcFacade defines the grant administration operations
type AccessGrantSvcFacade interface {
	CapabilitySvc

	AssignSafe(ctx context.Context, cap domain.Capability, req dto.AssignSafeRequest) (*domain.AccessGrant, error)
	RevokeGrant(ctx context.Context, cap domain.Capability, userID, safeID string) error
	ListGrants(ctx context.Context, cap domain.Capability, userID *string) ([]domain.AccessGrant, error)
}
