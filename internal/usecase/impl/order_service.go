package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/policy"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder purchases one offer tier for the acting customer. The tier is
// read and the order written in one transaction, so the snapshot captures
// the tier exactly as it existed at purchase time.
func (srv *orderService) CreateOrder(ctx context.Context, actor policy.Actor, input usecase.CreateOrderInput) (*entity.Order, error) {
	srv.log(ctx).Info("Creating order",
		slog.String("customerID", actor.ID.String()),
		slog.String("offerDetailID", input.OfferDetailID.String()),
	)

	if !policy.Decide(actor, policy.ActionCreateOrder, policy.Resource{}) {
		return nil, domainerrors.ErrForbidden.WrapMessage("only customer accounts may place orders")
	}

	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.OfferRepo()

		detail, err := offerRepo.FindDetailByID(ctx, input.OfferDetailID)
		if err != nil {
			if errors.Is(err, repository.ErrOfferDetailNotFound) {
				return domainerrors.ErrOfferDetailNotFound
			}

			return errors.Wrap(err, "failed to find offer detail")
		}

		offer, err := offerRepo.FindByID(ctx, detail.OfferID)
		if err != nil {
			if errors.Is(err, repository.ErrOfferNotFound) {
				return domainerrors.ErrOfferNotFound
			}

			return errors.Wrap(err, "failed to find parent offer")
		}

		order = &entity.Order{
			CustomerUserID: actor.ID,
			BusinessUserID: offer.OwnerID,
			TierSnapshot:   entity.SnapshotOf(*detail),
			Status:         entity.StatusInProgress,
		}

		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// GetOrder returns a single order. Only the two participants and staff may
// see it.
func (srv *orderService) GetOrder(ctx context.Context, actor policy.Actor, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if actor.ID != order.CustomerUserID && actor.ID != order.BusinessUserID && !actor.Staff {
		return nil, domainerrors.ErrForbidden.WrapMessage("order is only visible to its participants")
	}

	return order, nil
}

// ListOrders returns the actor's orders: placed orders for a customer,
// received orders for a business.
func (srv *orderService) ListOrders(ctx context.Context, actor policy.Actor) ([]*entity.Order, error) {
	var (
		orders []*entity.Order
		err    error
	)

	switch actor.Role {
	case entity.RoleCustomer:
		orders, err = srv.orderRepo.ListByCustomer(ctx, actor.ID)
	case entity.RoleBusiness:
		orders, err = srv.orderRepo.ListByBusiness(ctx, actor.ID)
	default:
		return nil, domainerrors.ErrForbidden.WrapMessage("unknown account role")
	}

	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// UpdateOrderStatus moves an order to the given status. Only the business
// user the order is addressed to may do this; every transition between
// valid statuses is allowed, including leaving a terminal one.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, actor policy.Actor, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	srv.log(ctx).Info("Updating order status",
		slog.String("orderID", id.String()),
		slog.String("status", status.String()),
	)

	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus.WithDetails(status.String())
	}

	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if !policy.Decide(actor, policy.ActionUpdateOrderStatus, policy.Resource{Owner: order.BusinessUserID}) {
		return nil, domainerrors.ErrForbidden.WrapMessage("only the order's business user may change its status")
	}

	if err := srv.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to update order status")
	}

	// Reload so the caller sees the stored row, updated_at included.
	updated, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload order")
	}

	return updated, nil
}

// DeleteOrder removes an order. Staff accounts only; the order's own
// participants cannot delete it.
func (srv *orderService) DeleteOrder(ctx context.Context, actor policy.Actor, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting order", slog.String("orderID", id.String()))

	if !policy.Decide(actor, policy.ActionDeleteOrder, policy.Resource{}) {
		return domainerrors.ErrForbidden.WrapMessage("only staff may delete orders")
	}

	if err := srv.orderRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to delete order")
	}

	return nil
}

// CountInProgressOrders counts a business user's in-progress orders.
func (srv *orderService) CountInProgressOrders(ctx context.Context, businessUserID uuid.UUID) (int64, error) {
	return srv.countForBusiness(ctx, businessUserID, entity.StatusInProgress)
}

// CountCompletedOrders counts a business user's completed orders.
func (srv *orderService) CountCompletedOrders(ctx context.Context, businessUserID uuid.UUID) (int64, error) {
	return srv.countForBusiness(ctx, businessUserID, entity.StatusCompleted)
}

// countForBusiness verifies the target is a business account before counting,
// so a count request for a missing or non-business user reports not-found
// rather than zero.
func (srv *orderService) countForBusiness(ctx context.Context, businessUserID uuid.UUID, status entity.OrderStatus) (int64, error) {
	user, err := srv.userRepo.FindByID(ctx, businessUserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return 0, domainerrors.ErrUserNotFound
		}

		return 0, errors.Wrap(err, "failed to find business user")
	}
	if user.Role != entity.RoleBusiness {
		return 0, domainerrors.ErrUserNotFound.WrapMessage("target user is not a business account")
	}

	count, err := srv.orderRepo.CountByBusinessAndStatus(ctx, businessUserID, status)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}
