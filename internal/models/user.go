package models

// User represents an operator account row.
type User struct {
	UserID       string `db:"user_id"`
	Username     string `db:"username"`
	Name         string `db:"name"`
	PasswordHash string `db:"password_hash"`
	IsAdmin      bool   `db:"is_admin"`
	IsActive     bool   `db:"is_active"`
	AuditFields
}
