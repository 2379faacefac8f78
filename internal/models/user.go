package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user account.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Username is the login name, stored trimmed and lowercased (unique).
	Username string

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string

	// Email is an optional contact address set from the profile page.
	Email string

	// Avatar is an optional image reference (URL or data URI).
	Avatar string

	// Bio is an optional free-form profile text.
	Bio string

	// CreatedAt is the Unix timestamp when the user account was created.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last profile or password change.
	UpdatedAt int64
}

// NewUser creates a new user with a fresh ID and timestamps.
func NewUser(username, passwordHash string) *User {
	now := time.Now().Unix()
	return &User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
