package entity

import (
	"time"

	"bazaar/internal/errors"

	"github.com/google/uuid"
)

// OfferTier is the tag of one priced service level within an offer.
type OfferTier string

const (
	// TierBasic is the entry-level tier of an offer.
	TierBasic OfferTier = "basic"
	// TierStandard is the mid tier of an offer.
	TierStandard OfferTier = "standard"
	// TierPremium is the top tier of an offer.
	TierPremium OfferTier = "premium"
)

// String returns the string representation of the OfferTier.
func (t OfferTier) String() string {
	return string(t)
}

// IsValid checks if the OfferTier is a valid value.
func (t OfferTier) IsValid() bool {
	switch t {
	case TierBasic, TierStandard, TierPremium:
		return true
	default:
		return false
	}
}

// Offer is a service offering published by a business user. It owns exactly
// three OfferDetail tiers, one per tier tag, and caches the minimum price and
// minimum delivery time across them. The cached minimums are derived state:
// they are recomputed from the tier set on every mutation and never accepted
// from caller input.
type Offer struct {
	ID              uuid.UUID     // The Global Unique Identifier (GUID) for the offer.
	OwnerID         uuid.UUID     // The business user who published the offer. Immutable.
	Title           string        // Short, required title for the offer.
	Description     string        // Optional longer description.
	Image           *string       // Optional reference to an uploaded offer image.
	MinPrice        int           // Minimum price across the three tiers. Derived.
	MinDeliveryTime int           // Minimum delivery time in days across the three tiers. Derived.
	Details         []OfferDetail // The three owned tiers. Deleted with the offer.
	CreatedAt       time.Time     // Timestamp of when this offer was created.
	UpdatedAt       time.Time     // Timestamp of the last modification.
}

// OfferDetail is one priced tier (basic, standard or premium) of an Offer.
type OfferDetail struct {
	ID                 uuid.UUID // The Global Unique Identifier (GUID) for the tier.
	OfferID            uuid.UUID // The parent offer. A tier never moves between offers.
	Title              string    // Short human-readable title for the tier.
	Revisions          int       // Number of revisions included.
	DeliveryTimeInDays int       // Expected delivery time in whole days.
	Price              int       // Price in whole currency units.
	Features           []string  // Ordered list of feature descriptions.
	Type               OfferTier // Tier tag, unique within the parent offer.
}

// requiredTiers is the exact tag set every offer must carry.
var requiredTiers = []OfferTier{TierBasic, TierStandard, TierPremium}

// ValidateTierSet checks the tier-set invariant for an offer's details:
// exactly three tiers whose tags are exactly {basic, standard, premium},
// and each tier individually well formed. It returns a descriptive error
// naming the violated rule, or nil when the set is valid.
func ValidateTierSet(details []OfferDetail) error {
	if len(details) != len(requiredTiers) {
		return errors.Errorf("an offer must contain exactly %d details, got %d", len(requiredTiers), len(details))
	}

	seen := make(map[OfferTier]bool, len(requiredTiers))
	for _, d := range details {
		if !d.Type.IsValid() {
			return errors.Errorf("unknown offer tier type %q", d.Type)
		}
		if seen[d.Type] {
			return errors.Errorf("duplicate offer tier type %q", d.Type)
		}
		seen[d.Type] = true

		if err := validateTierFields(d); err != nil {
			return err
		}
	}

	for _, tier := range requiredTiers {
		if !seen[tier] {
			return errors.Errorf("missing offer tier type %q", tier)
		}
	}

	return nil
}

// validateTierFields checks the field-level rules of a single tier.
func validateTierFields(d OfferDetail) error {
	if d.Price < 0 {
		return errors.Errorf("%s tier: price must not be negative", d.Type)
	}
	if d.DeliveryTimeInDays < 1 {
		return errors.Errorf("%s tier: delivery time must be at least one day", d.Type)
	}
	if d.Revisions < 0 {
		return errors.Errorf("%s tier: revisions must not be negative", d.Type)
	}

	return nil
}

// TierMinimums computes the minimum price and minimum delivery time across a
// tier set. It is a pure function of the details; both values are 0 for an
// empty set.
func TierMinimums(details []OfferDetail) (minPrice, minDeliveryTime int) {
	for i, d := range details {
		if i == 0 || d.Price < minPrice {
			minPrice = d.Price
		}
		if i == 0 || d.DeliveryTimeInDays < minDeliveryTime {
			minDeliveryTime = d.DeliveryTimeInDays
		}
	}

	return minPrice, minDeliveryTime
}

// RecalculateMinimums refreshes the cached MinPrice and MinDeliveryTime from
// the offer's current tier set. Call after any tier mutation.
func (o *Offer) RecalculateMinimums() {
	o.MinPrice, o.MinDeliveryTime = TierMinimums(o.Details)
}

// DetailByType returns the tier with the given tag, or nil if absent.
func (o *Offer) DetailByType(tier OfferTier) *OfferDetail {
	for i := range o.Details {
		if o.Details[i].Type == tier {
			return &o.Details[i]
		}
	}

	return nil
}
