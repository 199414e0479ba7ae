package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails() []OfferDetail {
	return []OfferDetail{
		{Title: "Basic", Revisions: 1, DeliveryTimeInDays: 7, Price: 900, Type: TierBasic},
		{Title: "Standard", Revisions: 3, DeliveryTimeInDays: 10, Price: 1500, Type: TierStandard},
		{Title: "Premium", Revisions: 5, DeliveryTimeInDays: 14, Price: 2200, Type: TierPremium},
	}
}

func TestValidateTierSet_Valid(t *testing.T) {
	require.NoError(t, ValidateTierSet(validDetails()))
}

func TestValidateTierSet_WrongCount(t *testing.T) {
	assert.Error(t, ValidateTierSet(validDetails()[:2]))
	assert.Error(t, ValidateTierSet(nil))
	assert.Error(t, ValidateTierSet(append(validDetails(), OfferDetail{Type: TierBasic, DeliveryTimeInDays: 1})))
}

func TestValidateTierSet_DuplicateTag(t *testing.T) {
	details := validDetails()
	details[2].Type = TierBasic

	assert.Error(t, ValidateTierSet(details))
}

func TestValidateTierSet_UnknownTag(t *testing.T) {
	details := validDetails()
	details[1].Type = OfferTier("deluxe")

	assert.Error(t, ValidateTierSet(details))
}

func TestValidateTierSet_FieldRules(t *testing.T) {
	negativePrice := validDetails()
	negativePrice[0].Price = -1
	assert.Error(t, ValidateTierSet(negativePrice))

	zeroPrice := validDetails()
	zeroPrice[0].Price = 0
	assert.NoError(t, ValidateTierSet(zeroPrice))

	zeroDelivery := validDetails()
	zeroDelivery[1].DeliveryTimeInDays = 0
	assert.Error(t, ValidateTierSet(zeroDelivery))

	negativeRevisions := validDetails()
	negativeRevisions[2].Revisions = -1
	assert.Error(t, ValidateTierSet(negativeRevisions))

	zeroRevisions := validDetails()
	zeroRevisions[2].Revisions = 0
	assert.NoError(t, ValidateTierSet(zeroRevisions))
}

func TestTierMinimums(t *testing.T) {
	minPrice, minDelivery := TierMinimums(validDetails())

	assert.Equal(t, 900, minPrice)
	assert.Equal(t, 7, minDelivery)
}

func TestTierMinimums_Empty(t *testing.T) {
	minPrice, minDelivery := TierMinimums(nil)

	assert.Zero(t, minPrice)
	assert.Zero(t, minDelivery)
}

func TestTierMinimums_ComeFromDifferentTiers(t *testing.T) {
	// The cheapest tier and the fastest tier need not be the same one.
	details := validDetails()
	details[2].DeliveryTimeInDays = 3

	minPrice, minDelivery := TierMinimums(details)

	assert.Equal(t, 900, minPrice)
	assert.Equal(t, 3, minDelivery)
}

func TestRecalculateMinimums(t *testing.T) {
	offer := &Offer{Details: validDetails()}
	offer.RecalculateMinimums()

	assert.Equal(t, 900, offer.MinPrice)
	assert.Equal(t, 7, offer.MinDeliveryTime)

	offer.Details[2].Price = 700
	offer.RecalculateMinimums()

	assert.Equal(t, 700, offer.MinPrice)
}

func TestDetailByType(t *testing.T) {
	offer := &Offer{Details: validDetails()}

	standard := offer.DetailByType(TierStandard)
	require.NotNil(t, standard)
	assert.Equal(t, 1500, standard.Price)

	// Returned pointer aliases the slice so callers can mutate in place.
	standard.Price = 1600
	assert.Equal(t, 1600, offer.Details[1].Price)

	assert.Nil(t, offer.DetailByType(OfferTier("deluxe")))
}
