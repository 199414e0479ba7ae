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

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager  repository.TransactionManager
	reviewRepo repository.ReviewRepository
	userRepo   repository.UserRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReviewRepo repository.ReviewRepository
	UserRepo   repository.UserRepository
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:  params.TxManager,
		reviewRepo: params.ReviewRepo,
		userRepo:   params.UserRepo,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReview records the acting customer's rating of a business. The
// pre-check catches most duplicates early; the unique index on the reviews
// table catches the rest when two submissions race, and both paths surface
// the same error to the caller.
func (srv *reviewService) CreateReview(ctx context.Context, actor policy.Actor, input usecase.CreateReviewInput) (*entity.Review, error) {
	srv.log(ctx).Info("Creating review",
		slog.String("reviewerID", actor.ID.String()),
		slog.String("businessUserID", input.BusinessUserID.String()),
	)

	if !policy.Decide(actor, policy.ActionCreateReview, policy.Resource{}) {
		return nil, domainerrors.ErrForbidden.WrapMessage("only customer accounts may write reviews")
	}
	if !entity.ValidRating(input.Rating) {
		return nil, domainerrors.ErrInvalidRating
	}

	target, err := srv.userRepo.FindByID(ctx, input.BusinessUserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find business user")
	}
	if target.Role != entity.RoleBusiness {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("reviews may only target business accounts")
	}

	review := &entity.Review{
		BusinessUserID: input.BusinessUserID,
		ReviewerID:     actor.ID,
		Rating:         input.Rating,
		Description:    input.Description,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		exists, err := reviewRepo.ExistsForPair(ctx, actor.ID, input.BusinessUserID)
		if err != nil {
			return errors.Wrap(err, "failed to check for existing review")
		}
		if exists {
			return domainerrors.ErrReviewAlreadyExists
		}

		if err := reviewRepo.Create(ctx, review); err != nil {
			if errors.Is(err, repository.ErrDuplicateReview) {
				return domainerrors.ErrReviewAlreadyExists
			}

			return errors.Wrap(err, "failed to create review")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}

// GetReview returns a single review.
func (srv *reviewService) GetReview(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	return review, nil
}

// ListReviews returns reviews matching the filters.
func (srv *reviewService) ListReviews(ctx context.Context, input usecase.ListReviewsInput) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.List(ctx, repository.ListReviewsParams{
		BusinessUserID: input.BusinessUserID,
		ReviewerID:     input.ReviewerID,
		Ordering:       input.Ordering,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// UpdateReview applies a partial update to a review the actor wrote. The
// reviewed business never changes.
func (srv *reviewService) UpdateReview(ctx context.Context, actor policy.Actor, id uuid.UUID, input usecase.UpdateReviewInput) (*entity.Review, error) {
	srv.log(ctx).Info("Updating review", slog.String("reviewID", id.String()))

	review, err := srv.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	if !policy.Decide(actor, policy.ActionUpdateReview, policy.Resource{Owner: review.ReviewerID}) {
		return nil, domainerrors.ErrForbidden.WrapMessage("only the review's author may update it")
	}

	if input.Rating != nil {
		if !entity.ValidRating(*input.Rating) {
			return nil, domainerrors.ErrInvalidRating
		}
		review.Rating = *input.Rating
	}
	if input.Description != nil {
		review.Description = *input.Description
	}

	if err := srv.reviewRepo.Update(ctx, review); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to update review")
	}

	return review, nil
}

// DeleteReview removes a review the actor wrote.
func (srv *reviewService) DeleteReview(ctx context.Context, actor policy.Actor, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting review", slog.String("reviewID", id.String()))

	review, err := srv.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound
		}

		return errors.Wrap(err, "failed to find review")
	}

	if !policy.Decide(actor, policy.ActionDeleteReview, policy.Resource{Owner: review.ReviewerID}) {
		return domainerrors.ErrForbidden.WrapMessage("only the review's author may delete it")
	}

	if err := srv.reviewRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound
		}

		return errors.Wrap(err, "failed to delete review")
	}

	return nil
}
