package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the workflow state of an order.
type OrderStatus string

const (
	// StatusInProgress is the initial state of every order.
	StatusInProgress OrderStatus = "in_progress"
	// StatusCompleted marks an order the business has fulfilled.
	StatusCompleted OrderStatus = "completed"
	// StatusCanceled marks an order the business has called off.
	StatusCanceled OrderStatus = "canceled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusInProgress, StatusCompleted, StatusCanceled:
		return true
	default:
		return false
	}
}

// TierSnapshot is a by-value copy of an offer tier's content, captured when
// an order is created. It holds no reference back to the source tier, so
// later edits or deletion of the offer never change an existing order.
type TierSnapshot struct {
	Title              string
	Revisions          int
	DeliveryTimeInDays int
	Price              int
	Features           []string
	OfferType          OfferTier
}

// SnapshotOf copies every content field of a tier into a new snapshot.
// The features list is cloned so the snapshot does not alias the source.
func SnapshotOf(d OfferDetail) TierSnapshot {
	return TierSnapshot{
		Title:              d.Title,
		Revisions:          d.Revisions,
		DeliveryTimeInDays: d.DeliveryTimeInDays,
		Price:              d.Price,
		Features:           slices.Clone(d.Features),
		OfferType:          d.Type,
	}
}

// Order is a purchase of one offer tier by a customer. The customer and
// business references are fixed at creation; only the status may change
// afterwards, and only by the business user it is addressed to.
type Order struct {
	ID             uuid.UUID // The Global Unique Identifier (GUID) for the order.
	CustomerUserID uuid.UUID // The customer who placed the order. Immutable.
	BusinessUserID uuid.UUID // The owner of the ordered tier's offer at creation time. Immutable.
	TierSnapshot             // The ordered tier's content, copied by value at creation.
	Status         OrderStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
