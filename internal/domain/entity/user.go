package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a staff account. Every transaction record references the
// user who recorded it; the role is assigned at registration and never
// mutated afterwards.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Name         string    // The user's display name.
	Email        string    // The user's email, used as the login identifier. Unique.
	PasswordHash string    // The bcrypt hash of the user's password.
	Role         Role      // Manager or SalesAgent.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// RecordedBy is the minimal projection of a User attached to transaction
// records at read time.
type RecordedBy struct {
	Name  string
	Email string
}
