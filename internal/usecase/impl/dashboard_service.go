package impl

import (
	"context"
	"log/slog"
	"math"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	reviewRepo repository.ReviewRepository
	offerRepo  repository.OfferRepository
	userRepo   repository.UserRepository
	logger     *slog.Logger
}

// DashboardServiceParams holds dependencies for dashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	ReviewRepo repository.ReviewRepository
	OfferRepo  repository.OfferRepository
	UserRepo   repository.UserRepository
	Logger     *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		reviewRepo: params.ReviewRepo,
		offerRepo:  params.OfferRepo,
		userRepo:   params.UserRepo,
		logger:     params.Logger,
	}
}

// BaseInfo aggregates the marketplace-wide numbers for the public landing
// page. The average rating is rounded to one decimal place and reported as
// 0.0 when no reviews exist.
func (srv *dashboardService) BaseInfo(ctx context.Context) (*usecase.BaseInfoOutput, error) {
	reviewCount, err := srv.reviewRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count reviews")
	}

	average, err := srv.reviewRepo.AverageRating(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute average rating")
	}

	businessCount, err := srv.userRepo.CountByRole(ctx, entity.RoleBusiness)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count business profiles")
	}

	offerCount, err := srv.offerRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count offers")
	}

	return &usecase.BaseInfoOutput{
		ReviewCount:          reviewCount,
		AverageRating:        math.Round(average*10) / 10,
		BusinessProfileCount: businessCount,
		OfferCount:           offerCount,
	}, nil
}
