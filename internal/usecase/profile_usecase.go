package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/policy"

	"github.com/google/uuid"
)

// UpdateProfileInput defines the data required to update a user's public
// profile. Nil fields are left untouched.
type UpdateProfileInput struct {
	FirstName    *string
	LastName     *string
	File         *string
	Location     *string
	Tel          *string
	Description  *string
	WorkingHours *string
	Email        *string
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// GetProfile returns a user with their profile by ID.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile applies the input to the user's profile. Only the
	// profile's own user may update it.
	UpdateProfile(ctx context.Context, actor policy.Actor, userID uuid.UUID, input UpdateProfileInput) (*entity.User, error)

	// ListBusinessProfiles returns every business account with its profile.
	ListBusinessProfiles(ctx context.Context) ([]*entity.User, error)

	// ListCustomerProfiles returns every customer account with its profile.
	ListCustomerProfiles(ctx context.Context) ([]*entity.User, error)
}
