package domain

import "time"

// User is an authenticated owner of the ledger. Authentication exists to
// guard the API surface; the ledger itself is single-tenant.
type User struct {
	UserID       string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
