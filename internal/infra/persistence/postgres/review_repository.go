package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// Create persists a new review. A collision on the (reviewer, business)
// unique index surfaces as ErrDuplicateReview, which also covers the race
// where two inserts pass the use case's pre-check at the same time.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReview
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("review references a missing user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// FindByID retrieves a single review.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return toReviewDomain(&reviewM), nil
}

// ExistsForPair reports whether the reviewer already rated the business.
func (repo *reviewRepository) ExistsForPair(ctx context.Context, reviewerID, businessUserID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("reviewer_id = ? AND business_user_id = ?", reviewerID, businessUserID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check for existing review")
	}

	return count > 0, nil
}

// Update persists rating and description changes.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", review.ID).
		Updates(map[string]any{
			"rating":      review.Rating,
			"description": review.Description,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// Delete removes a review.
func (repo *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ReviewModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// List returns reviews matching the filters.
func (repo *reviewRepository) List(ctx context.Context, params repository.ListReviewsParams) ([]*entity.Review, error) {
	query := repo.db.WithContext(ctx).Model(&model.ReviewModel{})

	if params.BusinessUserID != nil {
		query = query.Where("business_user_id = ?", *params.BusinessUserID)
	}
	if params.ReviewerID != nil {
		query = query.Where("reviewer_id = ?", *params.ReviewerID)
	}

	var reviewModels []*model.ReviewModel
	if err := query.
		Order(reviewOrderClause(params.Ordering)).
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// Count returns the total number of reviews.
func (repo *reviewRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count reviews")
	}

	return count, nil
}

// AverageRating returns the mean rating over all reviews. COALESCE keeps the
// scan valid when no reviews exist, yielding 0.
func (repo *reviewRepository) AverageRating(ctx context.Context) (float64, error) {
	var average float64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&average).Error; err != nil {
		return 0, errors.Wrap(err, "failed to compute average rating")
	}

	return average, nil
}

// reviewOrderClause maps an ordering name to a SQL ORDER BY clause. Unknown
// values fall back to newest updated first.
func reviewOrderClause(ordering repository.ReviewOrdering) string {
	switch ordering {
	case repository.OrderReviewsByUpdatedAtAsc:
		return "updated_at ASC"
	case repository.OrderReviewsByRatingAsc:
		return "rating ASC"
	case repository.OrderReviewsByRatingDesc:
		return "rating DESC"
	case repository.OrderReviewsByUpdatedAtDesc:
		return "updated_at DESC"
	default:
		return "updated_at DESC"
	}
}

// fromReviewDomain maps a pure domain entity to a GORM persistence model.
func fromReviewDomain(review *entity.Review) *model.ReviewModel {
	return &model.ReviewModel{
		ID:             review.ID,
		BusinessUserID: review.BusinessUserID,
		ReviewerID:     review.ReviewerID,
		Rating:         review.Rating,
		Description:    review.Description,
		CreatedAt:      review.CreatedAt,
		UpdatedAt:      review.UpdatedAt,
	}
}

// toReviewDomain maps a persistence model back to a pure domain entity.
func toReviewDomain(reviewM *model.ReviewModel) *entity.Review {
	return &entity.Review{
		ID:             reviewM.ID,
		BusinessUserID: reviewM.BusinessUserID,
		ReviewerID:     reviewM.ReviewerID,
		Rating:         reviewM.Rating,
		Description:    reviewM.Description,
		CreatedAt:      reviewM.CreatedAt,
		UpdatedAt:      reviewM.UpdatedAt,
	}
}
