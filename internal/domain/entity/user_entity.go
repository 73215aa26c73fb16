package entity

import (
	"time"
)

// User is the aggregate root for the user domain
// Passwords are stored as bcrypt hashes in HashedPassword, never plaintext.
type User struct {
	ID             int64
	Email          string
	HashedPassword string
	IsActive       bool
	CreatedAt      time.Time
}
