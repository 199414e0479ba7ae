// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned when a create or update collides with the
// unique email constraint.
var ErrDuplicateEmail = errors.New("email already registered")

// ErrDuplicateUsername is returned when a create collides with the unique
// username constraint.
var ErrDuplicateUsername = errors.New("username already registered")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by their unique username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity, including its profile.
	Update(ctx context.Context, user *entity.User) error

	// ListByRole retrieves all users with the given role, with profiles.
	ListByRole(ctx context.Context, role entity.Role) ([]*entity.User, error)

	// CountByRole returns the number of users with the given role.
	CountByRole(ctx context.Context, role entity.Role) (int64, error)
}
