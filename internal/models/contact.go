package models

import "database/sql"

// Contact is the row stored in the contacts table.
type Contact struct {
	ContactID  string         `db:"contact_id"`
	Name       string         `db:"name"`
	Phone      sql.NullString `db:"phone"`
	IsCustomer bool           `db:"is_customer"`
	IsVendor   bool           `db:"is_vendor"`
}
