package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOfferNotFound is returned when an offer is not found.
var ErrOfferNotFound = errors.New("offer not found")

// ErrOfferDetailNotFound is returned when a single offer tier is not found.
var ErrOfferDetailNotFound = errors.New("offer detail not found")

// OfferOrdering names the sort orders the offer listing supports.
type OfferOrdering string

const (
	OrderOffersByUpdatedAtAsc  OfferOrdering = "updated_at"
	OrderOffersByUpdatedAtDesc OfferOrdering = "-updated_at"
	OrderOffersByMinPriceAsc   OfferOrdering = "min_price"
	OrderOffersByMinPriceDesc  OfferOrdering = "-min_price"
)

// ListOffersParams carries the filter, sort and pagination inputs of the
// offer listing. Nil pointer filters are not applied.
type ListOffersParams struct {
	CreatorID       *uuid.UUID    // only offers owned by this business user
	MinPrice        *int          // only offers with min_price >= this value
	MaxDeliveryTime *int          // only offers with min_delivery_time <= this value
	Search          string        // case-insensitive substring match on title or description
	Ordering        OfferOrdering // empty means newest updated first
	Page            int           // 1-based page number
	PageSize        int           // rows per page
}

// OfferRepository defines persistence operations for the offer aggregate.
// Create and Update persist the offer and its three details as one unit;
// callers run them inside a transaction when atomicity matters.
type OfferRepository interface {
	// Create persists a new offer together with its details.
	Create(ctx context.Context, offer *entity.Offer) error

	// FindByID retrieves an offer with its details.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error)

	// FindDetailByID retrieves a single tier.
	FindDetailByID(ctx context.Context, id uuid.UUID) (*entity.OfferDetail, error)

	// Update persists scalar changes and replaces changed details.
	Update(ctx context.Context, offer *entity.Offer) error

	// Delete removes the offer; its details go with it.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns the matching offers and the total match count
	// before pagination.
	List(ctx context.Context, params ListOffersParams) ([]*entity.Offer, int64, error)

	// Count returns the total number of offers.
	Count(ctx context.Context) (int64, error)
}
