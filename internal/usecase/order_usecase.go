package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/policy"

	"github.com/google/uuid"
)

// CreateOrderInput names the tier a customer is purchasing. Everything else
// on the order is derived server-side: the snapshot from the tier's current
// content, the business reference from the parent offer's owner.
type CreateOrderInput struct {
	OfferDetailID uuid.UUID
}

// OrderUsecase defines the interface for order-related business operations.
type OrderUsecase interface {
	// CreateOrder purchases one offer tier for the acting customer.
	CreateOrder(ctx context.Context, actor policy.Actor, input CreateOrderInput) (*entity.Order, error)

	// GetOrder returns a single order the actor participates in.
	GetOrder(ctx context.Context, actor policy.Actor, id uuid.UUID) (*entity.Order, error)

	// ListOrders returns the actor's orders: placed orders for a
	// customer, received orders for a business.
	ListOrders(ctx context.Context, actor policy.Actor) ([]*entity.Order, error)

	// UpdateOrderStatus moves an order to the given status. Only the
	// business user the order is addressed to may do this.
	UpdateOrderStatus(ctx context.Context, actor policy.Actor, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error)

	// DeleteOrder removes an order. Staff accounts only.
	DeleteOrder(ctx context.Context, actor policy.Actor, id uuid.UUID) error

	// CountInProgressOrders counts a business user's in-progress orders.
	// The target must be a business account.
	CountInProgressOrders(ctx context.Context, businessUserID uuid.UUID) (int64, error)

	// CountCompletedOrders counts a business user's completed orders.
	// The target must be a business account.
	CountCompletedOrders(ctx context.Context, businessUserID uuid.UUID) (int64, error)
}
