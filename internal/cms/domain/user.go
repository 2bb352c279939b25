package domain

import "time"

// User is an admin account. Users are created by the seed process and are
// read-only at runtime - there is no signup flow.
type User struct {
	ID           string
	Email        string // unique login identifier
	Name         string
	PasswordHash string // bcrypt encoded
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
