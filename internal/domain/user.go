package domain

import "time"

// User is the domain entity for a user account. Email is unique,
// enforced by the database. PasswordHash is a bcrypt hash; the
// plaintext is discarded right after hashing.
type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
