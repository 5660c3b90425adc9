package domain

// User represents an operator of the system (cashier, admin).
type User struct {
	UserID       string `json:"userID"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"` // bcrypt hash, never serialized
	IsAdmin      bool   `json:"isAdmin"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}
