package models

import "time"

// User is the row stored in the users table.
type User struct {
	UserID       string `db:"user_id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	Name         string `db:"name"`
	Role         string `db:"role"`
	IsActive     bool   `db:"is_active"`
	AuditFields
}

// AccessGrant is the row stored in the user_safe_grants table.
type AccessGrant struct {
	UserID     string    `db:"user_id"`
	SafeID     string    `db:"safe_id"`
	AssignedAt time.Time `db:"assigned_at"`
	AssignedBy string    `db:"assigned_by"`
}
