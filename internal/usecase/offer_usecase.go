package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/policy"
	"bazaar/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// OfferDetailInput defines one tier of an offer as submitted by the client.
type OfferDetailInput struct {
	Title              string
	Revisions          int
	DeliveryTimeInDays int
	Price              int
	Features           []string
	OfferType          entity.OfferTier
}

// CreateOfferInput defines the data required to publish a new offer. The
// details must be exactly one basic, one standard and one premium tier.
type CreateOfferInput struct {
	Title       string
	Description string
	Image       *string
	Details     []OfferDetailInput
}

// UpdateOfferDetailInput defines a partial update of one tier, addressed by
// its tier tag. Nil fields are left untouched.
type UpdateOfferDetailInput struct {
	OfferType          entity.OfferTier
	Title              *string
	Revisions          *int
	DeliveryTimeInDays *int
	Price              *int
	Features           []string
}

// UpdateOfferInput defines a partial update of an offer. Nil fields are left
// untouched; the derived minimums are recomputed from the final tier set.
type UpdateOfferInput struct {
	Title       *string
	Description *string
	Image       *string
	Details     []UpdateOfferDetailInput
}

// ListOffersInput defines the filter, sort and pagination inputs of the
// offer listing as they arrive from the client.
type ListOffersInput struct {
	CreatorID       *uuid.UUID
	MinPrice        *int
	MaxDeliveryTime *int
	Search          string
	Ordering        repository.OfferOrdering
	Page            int
	PageSize        int
}

// --- Output DTOs ---

// OfferPage is one page of the offer listing plus the total match count.
type OfferPage struct {
	Offers   []*entity.Offer
	Total    int64
	Page     int
	PageSize int
}

// OfferUsecase defines the interface for offer-related business operations.
type OfferUsecase interface {
	// CreateOffer publishes a new offer for the acting business user.
	CreateOffer(ctx context.Context, actor policy.Actor, input CreateOfferInput) (*entity.Offer, error)

	// GetOffer returns an offer with its details.
	GetOffer(ctx context.Context, id uuid.UUID) (*entity.Offer, error)

	// GetOfferDetail returns a single tier by its own ID.
	GetOfferDetail(ctx context.Context, id uuid.UUID) (*entity.OfferDetail, error)

	// UpdateOffer applies a partial update to an offer the actor owns.
	UpdateOffer(ctx context.Context, actor policy.Actor, id uuid.UUID, input UpdateOfferInput) (*entity.Offer, error)

	// DeleteOffer removes an offer the actor owns, details included.
	DeleteOffer(ctx context.Context, actor policy.Actor, id uuid.UUID) error

	// ListOffers returns one page of offers matching the filters.
	ListOffers(ctx context.Context, input ListOffersInput) (*OfferPage, error)
}
