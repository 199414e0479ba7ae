package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rating bounds for reviews, inclusive.
const (
	RatingMin = 0
	RatingMax = 5
)

// ValidRating reports whether a rating falls within the allowed scale.
func ValidRating(rating int) bool {
	return rating >= RatingMin && rating <= RatingMax
}

// Review is a customer's rating of a business user. At most one review may
// exist per (reviewer, business) pair, and only the authoring reviewer may
// change or remove it.
type Review struct {
	ID             uuid.UUID // The Global Unique Identifier (GUID) for the review.
	BusinessUserID uuid.UUID // The business user being reviewed. Fixed at creation.
	ReviewerID     uuid.UUID // The customer who wrote the review. Fixed at creation.
	Rating         int       // Integer rating within [RatingMin, RatingMax].
	Description    string    // Optional free-text details.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
