package usecase

import "context"

// BaseInfoOutput aggregates the marketplace-wide numbers shown on the public
// landing page. AverageRating is 0 when no reviews exist.
type BaseInfoOutput struct {
	ReviewCount          int64
	AverageRating        float64
	BusinessProfileCount int64
	OfferCount           int64
}

// DashboardUsecase defines the interface for the public aggregate figures.
type DashboardUsecase interface {
	BaseInfo(ctx context.Context) (*BaseInfoOutput, error)
}
