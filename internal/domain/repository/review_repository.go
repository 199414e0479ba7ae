package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReviewNotFound is returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ErrDuplicateReview is returned when an insert collides with the unique
// (reviewer, business) constraint. It is the commit-time counterpart of the
// usecase's pre-check and lets the two paths stay distinguishable.
var ErrDuplicateReview = errors.New("review already exists for this reviewer and business")

// ReviewOrdering names the sort orders the review listing supports.
type ReviewOrdering string

const (
	OrderReviewsByUpdatedAtAsc  ReviewOrdering = "updated_at"
	OrderReviewsByUpdatedAtDesc ReviewOrdering = "-updated_at"
	OrderReviewsByRatingAsc     ReviewOrdering = "rating"
	OrderReviewsByRatingDesc    ReviewOrdering = "-rating"
)

// ListReviewsParams carries the filter and sort inputs of the review listing.
type ListReviewsParams struct {
	BusinessUserID *uuid.UUID
	ReviewerID     *uuid.UUID
	Ordering       ReviewOrdering
}

// ReviewRepository defines persistence operations for reviews, plus the
// read-only aggregates the dashboard derives from them.
type ReviewRepository interface {
	// Create persists a new review. The storage enforces the
	// (reviewer, business) pair uniqueness; a violation surfaces as
	// ErrDuplicateReview.
	Create(ctx context.Context, review *entity.Review) error

	// FindByID retrieves a single review.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// ExistsForPair reports whether the reviewer already rated the business.
	ExistsForPair(ctx context.Context, reviewerID, businessUserID uuid.UUID) (bool, error)

	// Update persists rating/description changes and the refreshed
	// updated timestamp.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes a review.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns reviews matching the filters.
	List(ctx context.Context, params ListReviewsParams) ([]*entity.Review, error)

	// Count returns the total number of reviews.
	Count(ctx context.Context) (int64, error)

	// AverageRating returns the mean rating over all reviews, and 0 with
	// no error when none exist.
	AverageRating(ctx context.Context) (float64, error)
}
