package domain

import "time"

// AccessGrant gives a user read/write visibility on one safe.
// A user can be granted a given safe only once.
type AccessGrant struct {
	UserID     string    `json:"userID"`
	SafeID     string    `json:"safeID"`
	AssignedAt time.Time `json:"assignedAt"`
	AssignedBy string    `json:"assignedBy"`
}

// Capability is the explicit permission set a caller presents to the ledger:
// a role plus the safes granted to it. Administrators ignore the grant set.
type Capability struct {
	UserID         string
	Role           Role
	GrantedSafeIDs map[string]struct{}
}

// NewCapability builds a Capability from a role and a list of granted safe IDs.
func NewCapability(userID string, role Role, grantedSafeIDs ...string) Capability {
	granted := make(map[string]struct{}, len(grantedSafeIDs))
	for _, id := range grantedSafeIDs {
		granted[id] = struct{}{}
	}
	return Capability{UserID: userID, Role: role, GrantedSafeIDs: granted}
}

// IsAdmin reports whether the capability carries the administrator role.
func (c Capability) IsAdmin() bool {
	return c.Role == RoleAdmin
}
