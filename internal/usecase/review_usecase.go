package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/policy"
	"bazaar/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateReviewInput defines the data required to rate a business user.
type CreateReviewInput struct {
	BusinessUserID uuid.UUID
	Rating         int
	Description    string
}

// UpdateReviewInput defines a partial update of a review. Nil fields are
// left untouched; the reviewed business can never change.
type UpdateReviewInput struct {
	Rating      *int
	Description *string
}

// ListReviewsInput defines the filter and sort inputs of the review listing.
type ListReviewsInput struct {
	BusinessUserID *uuid.UUID
	ReviewerID     *uuid.UUID
	Ordering       repository.ReviewOrdering
}

// ReviewUsecase defines the interface for review-related business operations.
type ReviewUsecase interface {
	// CreateReview records the acting customer's rating of a business.
	// A second review of the same business by the same reviewer is
	// rejected, including under concurrent submission.
	CreateReview(ctx context.Context, actor policy.Actor, input CreateReviewInput) (*entity.Review, error)

	// GetReview returns a single review.
	GetReview(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// ListReviews returns reviews matching the filters.
	ListReviews(ctx context.Context, input ListReviewsInput) ([]*entity.Review, error)

	// UpdateReview applies a partial update to a review the actor wrote.
	UpdateReview(ctx context.Context, actor policy.Actor, id uuid.UUID, input UpdateReviewInput) (*entity.Review, error)

	// DeleteReview removes a review the actor wrote.
	DeleteReview(ctx context.Context, actor policy.Actor, id uuid.UUID) error
}
