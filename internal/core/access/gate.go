// Package access decides which safes a caller may see and which transactions
// a caller may create, edit or delete.
package access

import (
	"time"

	"github.com/SscSPs/cashflow_app/internal/core/domain"
)

// VisibleSafes filters allSafes down to what cap may see.
// Administrators see every safe; everyone else sees exactly their granted safes.
func VisibleSafes(cap domain.Capability, allSafes []domain.Safe) []domain.Safe {
	if cap.IsAdmin() {
		return allSafes
	}
	visible := make([]domain.Safe, 0, len(cap.GrantedSafeIDs))
	for _, safe := range allSafes {
		if _, ok := cap.GrantedSafeIDs[safe.SafeID]; ok {
			visible = append(visible, safe)
		}
	}
	return visible
}

// VisibleSafeIDs returns the granted safe IDs of a non-admin capability.
// The second return value is false for administrators, who are not restricted.
func VisibleSafeIDs(cap domain.Capability) ([]string, bool) {
	if cap.IsAdmin() {
		return nil, false
	}
	ids := make([]string, 0, len(cap.GrantedSafeIDs))
	for id := range cap.GrantedSafeIDs {
		ids = append(ids, id)
	}
	return ids, true
}

// CanView reports whether cap may see safeID and its transactions.
func CanView(cap domain.Capability, safeID string) bool {
	if cap.IsAdmin() {
		return true
	}
	_, ok := cap.GrantedSafeIDs[safeID]
	return ok
}

// CanCreate reports whether cap may record a new transaction in safeID.
func CanCreate(cap domain.Capability, safeID string) bool {
	return CanView(cap, safeID)
}

// CanMutate reports whether cap may edit or delete txn at instant now.
//
// Administrators may always mutate. Other users need a grant on the owning safe
// and the transaction must fall on the same calendar day as now, compared in
// now's location.
func CanMutate(cap domain.Capability, txn domain.Transaction, now time.Time) bool {
	if cap.IsAdmin() {
		return true
	}
	if !CanView(cap, txn.SafeID) {
		return false
	}
	return SameDay(txn.TransactionDate, now)
}

// SameDay compares the calendar dates of a and b in b's location.
func SameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
