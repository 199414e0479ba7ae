package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	// Create persists a new order.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// UpdateStatus sets the order's status and refreshes its updated
	// timestamp. No other field is touched.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// Delete removes an order unconditionally.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByCustomer returns the orders a customer placed, newest first.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)

	// ListByBusiness returns the orders addressed to a business, newest first.
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Order, error)

	// CountByBusinessAndStatus counts a business user's orders in one status.
	CountByBusinessAndStatus(ctx context.Context, businessID uuid.UUID, status entity.OrderStatus) (int64, error)
}
