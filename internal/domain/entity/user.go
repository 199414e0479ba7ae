// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. It carries the account role that
// gates what the user may do (customers place orders and write reviews,
// businesses publish offers) and an optional public profile.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username     string    // Unique login name, shown publicly on offers.
	Email        string    // The user's primary contact email. Unique across all users.
	PasswordHash string    // Salted hash of the login password. Never exposed outward.
	Role         Role      // Account type: customer or business.
	Staff        bool      // Staff accounts may hard-delete orders. Not a registration role.
	Profile      *Profile  // Optional public profile. Nil until the user fills it in.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// Profile holds the optional public-facing attributes of a user.
// All fields may be blank.
type Profile struct {
	UserID       uuid.UUID // Foreign Key that links this profile to a core User entity.
	FirstName    string
	LastName     string
	File         string // Reference to the uploaded profile picture.
	Location     string
	Tel          string
	Description  string
	WorkingHours string
	UpdatedAt    time.Time // Timestamp of the last modification to this profile.
}
