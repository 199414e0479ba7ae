package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/internal/domain/entity"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dashboardServiceFixtures struct {
	service    usecase.DashboardUsecase
	reviewRepo *mockRepo.MockReviewRepository
	offerRepo  *mockRepo.MockOfferRepository
	userRepo   *mockRepo.MockUserRepository
}

func createTestDashboardService(t *testing.T) dashboardServiceFixtures {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	offerRepo := mockRepo.NewMockOfferRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewDashboardService(DashboardServiceParams{
		ReviewRepo: reviewRepo,
		OfferRepo:  offerRepo,
		UserRepo:   userRepo,
		Logger:     logger,
	})

	return dashboardServiceFixtures{
		service:    svc,
		reviewRepo: reviewRepo,
		offerRepo:  offerRepo,
		userRepo:   userRepo,
	}
}

func TestDashboardService_BaseInfo_RoundsAverage(t *testing.T) {
	fx := createTestDashboardService(t)
	ctx := context.Background()

	fx.reviewRepo.EXPECT().Count(ctx).Return(int64(15), nil)
	fx.reviewRepo.EXPECT().AverageRating(ctx).Return(4.266666, nil)
	fx.userRepo.EXPECT().CountByRole(ctx, entity.RoleBusiness).Return(int64(7), nil)
	fx.offerRepo.EXPECT().Count(ctx).Return(int64(21), nil)

	info, err := fx.service.BaseInfo(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(15), info.ReviewCount)
	assert.InDelta(t, 4.3, info.AverageRating, 0.0001)
	assert.Equal(t, int64(7), info.BusinessProfileCount)
	assert.Equal(t, int64(21), info.OfferCount)
}

func TestDashboardService_BaseInfo_EmptyMarketplace(t *testing.T) {
	fx := createTestDashboardService(t)
	ctx := context.Background()

	fx.reviewRepo.EXPECT().Count(ctx).Return(int64(0), nil)
	fx.reviewRepo.EXPECT().AverageRating(ctx).Return(0.0, nil)
	fx.userRepo.EXPECT().CountByRole(ctx, entity.RoleBusiness).Return(int64(0), nil)
	fx.offerRepo.EXPECT().Count(ctx).Return(int64(0), nil)

	info, err := fx.service.BaseInfo(ctx)

	require.NoError(t, err)
	assert.Zero(t, info.ReviewCount)
	assert.Zero(t, info.AverageRating)
}
