package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/policy"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	userRepo  *mockRepo.MockUserRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		UserRepo:  userRepo,
		Logger:    logger,
	})

	return orderServiceFixtures{
		service:   svc,
		txManager: txManager,
		orderRepo: orderRepo,
		userRepo:  userRepo,
	}
}

func TestOrderService_CreateOrder_SnapshotsTier(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	actor := customerActor()
	ownerID := uuid.New()
	offerID := uuid.New()
	detailID := uuid.New()

	detail := &entity.OfferDetail{
		ID:                 detailID,
		OfferID:            offerID,
		Title:              "Standard",
		Revisions:          3,
		DeliveryTimeInDays: 10,
		Price:              1500,
		Features:           []string{"Logo", "Flyer"},
		Type:               entity.TierStandard,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			offerRepo := mockRepo.NewMockOfferRepository(t)
			orderRepo := mockRepo.NewMockOrderRepository(t)

			factory.EXPECT().OfferRepo().Return(offerRepo)
			factory.EXPECT().OrderRepo().Return(orderRepo)
			offerRepo.EXPECT().FindDetailByID(ctx, detailID).Return(detail, nil)
			offerRepo.EXPECT().FindByID(ctx, offerID).Return(&entity.Offer{ID: offerID, OwnerID: ownerID}, nil)
			orderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Return(nil)

			return fn(factory)
		})

	order, err := fx.service.CreateOrder(ctx, actor, usecase.CreateOrderInput{OfferDetailID: detailID})

	require.NoError(t, err)
	assert.Equal(t, actor.ID, order.CustomerUserID)
	assert.Equal(t, ownerID, order.BusinessUserID)
	assert.Equal(t, entity.StatusInProgress, order.Status)
	assert.Equal(t, "Standard", order.Title)
	assert.Equal(t, 1500, order.Price)
	assert.Equal(t, []string{"Logo", "Flyer"}, order.Features)
	assert.Equal(t, entity.TierStandard, order.OfferType)
}

func TestOrderService_CreateOrder_ForbiddenForBusiness(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.CreateOrder(context.Background(), businessActor(), usecase.CreateOrderInput{
		OfferDetailID: uuid.New(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_CreateOrder_DetailNotFound(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	detailID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			offerRepo := mockRepo.NewMockOfferRepository(t)

			factory.EXPECT().OfferRepo().Return(offerRepo)
			offerRepo.EXPECT().FindDetailByID(ctx, detailID).Return(nil, repository.ErrOfferDetailNotFound)

			return fn(factory)
		})

	_, err := fx.service.CreateOrder(ctx, customerActor(), usecase.CreateOrderInput{OfferDetailID: detailID})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOfferDetailNotFound)
}

func TestOrderService_UpdateOrderStatus_ByBusiness(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	actor := businessActor()
	orderID := uuid.New()

	placedAt := time.Now().Add(-time.Hour)
	updatedAt := time.Now()

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, BusinessUserID: actor.ID, Status: entity.StatusInProgress, UpdatedAt: placedAt}, nil).
		Once()
	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.StatusCompleted).
		Return(nil)
	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, BusinessUserID: actor.ID, Status: entity.StatusCompleted, UpdatedAt: updatedAt}, nil).
		Once()

	order, err := fx.service.UpdateOrderStatus(ctx, actor, orderID, entity.StatusCompleted)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, order.Status)
	assert.Equal(t, updatedAt, order.UpdatedAt)
	assert.True(t, order.UpdatedAt.After(placedAt))
}

func TestOrderService_UpdateOrderStatus_ByCustomerForbidden(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	actor := customerActor()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, CustomerUserID: actor.ID, BusinessUserID: uuid.New()}, nil)

	_, err := fx.service.UpdateOrderStatus(ctx, actor, orderID, entity.StatusCanceled)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_UpdateOrderStatus_InvalidStatus(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.UpdateOrderStatus(context.Background(), businessActor(), uuid.New(), entity.OrderStatus("shipped"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
}

func TestOrderService_DeleteOrder_StaffOnly(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	orderID := uuid.New()

	staff := policy.Actor{ID: uuid.New(), Role: entity.RoleCustomer, Staff: true}
	fx.orderRepo.EXPECT().Delete(ctx, orderID).Return(nil)

	require.NoError(t, fx.service.DeleteOrder(ctx, staff, orderID))
}

func TestOrderService_DeleteOrder_ParticipantForbidden(t *testing.T) {
	fx := createTestOrderService(t)

	err := fx.service.DeleteOrder(context.Background(), businessActor(), uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_ListOrders_ByRole(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	customer := customerActor()
	fx.orderRepo.EXPECT().
		ListByCustomer(ctx, customer.ID).
		Return([]*entity.Order{{ID: uuid.New()}}, nil)

	orders, err := fx.service.ListOrders(ctx, customer)
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	business := businessActor()
	fx.orderRepo.EXPECT().
		ListByBusiness(ctx, business.ID).
		Return([]*entity.Order{}, nil)

	orders, err = fx.service.ListOrders(ctx, business)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_CountInProgressOrders_Success(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	businessID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, businessID).
		Return(&entity.User{ID: businessID, Role: entity.RoleBusiness}, nil)
	fx.orderRepo.EXPECT().
		CountByBusinessAndStatus(ctx, businessID, entity.StatusInProgress).
		Return(int64(4), nil)

	count, err := fx.service.CountInProgressOrders(ctx, businessID)

	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestOrderService_CountCompletedOrders_TargetNotBusiness(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	customerID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, customerID).
		Return(&entity.User{ID: customerID, Role: entity.RoleCustomer}, nil)

	_, err := fx.service.CountCompletedOrders(ctx, customerID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestOrderService_GetOrder_ParticipantsOnly(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, CustomerUserID: uuid.New(), BusinessUserID: uuid.New()}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	_, err := fx.service.GetOrder(ctx, customerActor(), orderID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
