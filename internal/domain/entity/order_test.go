package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSnapshotOf_CopiesAllContentFields(t *testing.T) {
	detail := OfferDetail{
		ID:                 uuid.New(),
		OfferID:            uuid.New(),
		Title:              "Standard",
		Revisions:          3,
		DeliveryTimeInDays: 10,
		Price:              1500,
		Features:           []string{"Logo", "Flyer"},
		Type:               TierStandard,
	}

	snap := SnapshotOf(detail)

	assert.Equal(t, "Standard", snap.Title)
	assert.Equal(t, 3, snap.Revisions)
	assert.Equal(t, 10, snap.DeliveryTimeInDays)
	assert.Equal(t, 1500, snap.Price)
	assert.Equal(t, []string{"Logo", "Flyer"}, snap.Features)
	assert.Equal(t, TierStandard, snap.OfferType)
}

func TestSnapshotOf_DoesNotAliasSource(t *testing.T) {
	detail := OfferDetail{
		Title:              "Basic",
		DeliveryTimeInDays: 7,
		Price:              900,
		Features:           []string{"Logo"},
		Type:               TierBasic,
	}

	snap := SnapshotOf(detail)

	detail.Features[0] = "changed"
	detail.Price = 1

	assert.Equal(t, []string{"Logo"}, snap.Features)
	assert.Equal(t, 900, snap.Price)
}

func TestOrderStatus_IsValid(t *testing.T) {
	assert.True(t, StatusInProgress.IsValid())
	assert.True(t, StatusCompleted.IsValid())
	assert.True(t, StatusCanceled.IsValid())
	assert.False(t, OrderStatus("shipped").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}
