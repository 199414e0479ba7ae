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

// offerRepository implements the repository.OfferRepository interface using GORM.
type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{
		db: db,
	}
}

// Create persists a new offer together with its details in one insert with
// associations.
func (repo *offerRepository) Create(ctx context.Context, offer *entity.Offer) error {
	offerM := fromOfferDomain(offer)

	if err := repo.db.WithContext(ctx).Create(offerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrInvalidTierSet.WrapMessage("duplicate tier type within offer")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("offer owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create offer")
	}

	offer.ID = offerM.ID
	offer.CreatedAt = offerM.CreatedAt
	offer.UpdatedAt = offerM.UpdatedAt
	for i := range offerM.Details {
		offer.Details[i].ID = offerM.Details[i].ID
		offer.Details[i].OfferID = offerM.ID
	}

	return nil
}

// FindByID retrieves an offer with its details.
func (repo *offerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	var offerM model.OfferModel

	if err := repo.db.WithContext(ctx).
		Preload("Details").
		Where("id = ?", id).
		First(&offerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer by id")
	}

	return toOfferDomain(&offerM), nil
}

// FindDetailByID retrieves a single tier.
func (repo *offerRepository) FindDetailByID(ctx context.Context, id uuid.UUID) (*entity.OfferDetail, error) {
	var detailM model.OfferDetailModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&detailM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferDetailNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer detail by id")
	}

	detail := toOfferDetailDomain(&detailM)

	return &detail, nil
}

// Update persists the offer's scalar fields and the content of each tier.
// Tier rows are matched by ID, so tags never move between rows.
func (repo *offerRepository) Update(ctx context.Context, offer *entity.Offer) error {
	offerM := fromOfferDomain(offer)

	result := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("id = ?", offer.ID).
		Updates(map[string]any{
			"title":             offerM.Title,
			"description":       offerM.Description,
			"image":             offerM.Image,
			"min_price":         offerM.MinPrice,
			"min_delivery_time": offerM.MinDeliveryTime,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update offer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	for i := range offerM.Details {
		detailM := &offerM.Details[i]

		if err := repo.db.WithContext(ctx).
			Model(&model.OfferDetailModel{}).
			Where("id = ? AND offer_id = ?", detailM.ID, offer.ID).
			Updates(map[string]any{
				"title":                 detailM.Title,
				"revisions":             detailM.Revisions,
				"delivery_time_in_days": detailM.DeliveryTimeInDays,
				"price":                 detailM.Price,
				"features":              detailM.Features,
			}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to update offer detail")
		}
	}

	return nil
}

// Delete removes the offer; the details go with it through the cascade.
func (repo *offerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OfferModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete offer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

// List returns one page of offers matching the filters, with details
// preloaded, plus the total match count before pagination.
func (repo *offerRepository) List(ctx context.Context, params repository.ListOffersParams) ([]*entity.Offer, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.OfferModel{})

	if params.CreatorID != nil {
		query = query.Where("owner_id = ?", *params.CreatorID)
	}
	if params.MinPrice != nil {
		query = query.Where("min_price >= ?", *params.MinPrice)
	}
	if params.MaxDeliveryTime != nil {
		query = query.Where("min_delivery_time <= ?", *params.MaxDeliveryTime)
	}
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count offers")
	}

	var offerModels []*model.OfferModel
	if err := query.
		Preload("Details").
		Order(offerOrderClause(params.Ordering)).
		Offset((params.Page - 1) * params.PageSize).
		Limit(params.PageSize).
		Find(&offerModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list offers")
	}

	offers := make([]*entity.Offer, 0, len(offerModels))
	for _, offerM := range offerModels {
		offers = append(offers, toOfferDomain(offerM))
	}

	return offers, total, nil
}

// Count returns the total number of offers.
func (repo *offerRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count offers")
	}

	return count, nil
}

// offerOrderClause maps an ordering name to a SQL ORDER BY clause. Unknown
// values fall back to newest updated first.
func offerOrderClause(ordering repository.OfferOrdering) string {
	switch ordering {
	case repository.OrderOffersByUpdatedAtAsc:
		return "updated_at ASC"
	case repository.OrderOffersByMinPriceAsc:
		return "min_price ASC"
	case repository.OrderOffersByMinPriceDesc:
		return "min_price DESC"
	case repository.OrderOffersByUpdatedAtDesc:
		return "updated_at DESC"
	default:
		return "updated_at DESC"
	}
}

// fromOfferDomain maps a pure domain entity to a GORM persistence model.
func fromOfferDomain(offer *entity.Offer) *model.OfferModel {
	offerM := &model.OfferModel{
		ID:              offer.ID,
		OwnerID:         offer.OwnerID,
		Title:           offer.Title,
		Description:     offer.Description,
		Image:           offer.Image,
		MinPrice:        offer.MinPrice,
		MinDeliveryTime: offer.MinDeliveryTime,
		CreatedAt:       offer.CreatedAt,
		UpdatedAt:       offer.UpdatedAt,
		Details:         make([]model.OfferDetailModel, 0, len(offer.Details)),
	}

	for _, d := range offer.Details {
		offerM.Details = append(offerM.Details, model.OfferDetailModel{
			ID:                 d.ID,
			OfferID:            d.OfferID,
			Title:              d.Title,
			Revisions:          d.Revisions,
			DeliveryTimeInDays: d.DeliveryTimeInDays,
			Price:              d.Price,
			Features:           featuresToJSON(d.Features),
			OfferType:          d.Type.String(),
		})
	}

	return offerM
}

// toOfferDomain maps a persistence model back to a pure domain entity.
func toOfferDomain(offerM *model.OfferModel) *entity.Offer {
	offer := &entity.Offer{
		ID:              offerM.ID,
		OwnerID:         offerM.OwnerID,
		Title:           offerM.Title,
		Description:     offerM.Description,
		Image:           offerM.Image,
		MinPrice:        offerM.MinPrice,
		MinDeliveryTime: offerM.MinDeliveryTime,
		CreatedAt:       offerM.CreatedAt,
		UpdatedAt:       offerM.UpdatedAt,
		Details:         make([]entity.OfferDetail, 0, len(offerM.Details)),
	}

	for i := range offerM.Details {
		offer.Details = append(offer.Details, toOfferDetailDomain(&offerM.Details[i]))
	}

	return offer
}

func toOfferDetailDomain(detailM *model.OfferDetailModel) entity.OfferDetail {
	return entity.OfferDetail{
		ID:                 detailM.ID,
		OfferID:            detailM.OfferID,
		Title:              detailM.Title,
		Revisions:          detailM.Revisions,
		DeliveryTimeInDays: detailM.DeliveryTimeInDays,
		Price:              detailM.Price,
		Features:           featuresFromJSON(detailM.Features),
		Type:               entity.OfferTier(detailM.OfferType),
	}
}
