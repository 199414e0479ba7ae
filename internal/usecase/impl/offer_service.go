package impl

import (
	"context"
	"log/slog"

	"bazaar/config"
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

// offerService implements the OfferUsecase interface.
type offerService struct {
	txManager repository.TransactionManager
	offerRepo repository.OfferRepository
	logger    *slog.Logger
}

// OfferServiceParams holds dependencies for offerService, injected by Fx.
type OfferServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OfferRepo repository.OfferRepository
	Logger    *slog.Logger
}

// NewOfferService is the constructor for offerService.
func NewOfferService(params OfferServiceParams) usecase.OfferUsecase {
	return &offerService{
		txManager: params.TxManager,
		offerRepo: params.OfferRepo,
		logger:    params.Logger,
	}
}

func (srv *offerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOffer publishes a new offer for the acting business user. The offer
// and its three tiers are written in one transaction so no partially-tiered
// offer is ever observable.
func (srv *offerService) CreateOffer(ctx context.Context, actor policy.Actor, input usecase.CreateOfferInput) (*entity.Offer, error) {
	srv.log(ctx).Info("Creating offer", slog.String("ownerID", actor.ID.String()))

	if !policy.Decide(actor, policy.ActionCreateOffer, policy.Resource{}) {
		return nil, domainerrors.ErrForbidden.WrapMessage("only business accounts may publish offers")
	}
	if input.Title == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("offer title must not be empty")
	}

	offer := &entity.Offer{
		OwnerID:     actor.ID,
		Title:       input.Title,
		Description: input.Description,
		Image:       input.Image,
		Details:     make([]entity.OfferDetail, 0, len(input.Details)),
	}
	for _, d := range input.Details {
		offer.Details = append(offer.Details, entity.OfferDetail{
			Title:              d.Title,
			Revisions:          d.Revisions,
			DeliveryTimeInDays: d.DeliveryTimeInDays,
			Price:              d.Price,
			Features:           d.Features,
			Type:               d.OfferType,
		})
	}

	if err := entity.ValidateTierSet(offer.Details); err != nil {
		return nil, domainerrors.ErrInvalidTierSet.WithDetails(err.Error())
	}
	offer.RecalculateMinimums()

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.OfferRepo().Create(ctx, offer)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create offer")
	}

	return offer, nil
}

// GetOffer returns an offer with its details.
func (srv *offerService) GetOffer(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	offer, err := srv.offerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, domainerrors.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer")
	}

	return offer, nil
}

// GetOfferDetail returns a single tier by its own ID.
func (srv *offerService) GetOfferDetail(ctx context.Context, id uuid.UUID) (*entity.OfferDetail, error) {
	detail, err := srv.offerRepo.FindDetailByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOfferDetailNotFound) {
			return nil, domainerrors.ErrOfferDetailNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer detail")
	}

	return detail, nil
}

// UpdateOffer applies a partial update to an offer the actor owns. Detail
// updates are addressed by tier tag; the tag set itself never changes, and
// the cached minimums are recomputed from the final tier content inside the
// same transaction as the write.
func (srv *offerService) UpdateOffer(ctx context.Context, actor policy.Actor, id uuid.UUID, input usecase.UpdateOfferInput) (*entity.Offer, error) {
	srv.log(ctx).Info("Updating offer", slog.String("offerID", id.String()))

	var offer *entity.Offer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.OfferRepo()

		found, err := offerRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrOfferNotFound) {
				return domainerrors.ErrOfferNotFound
			}

			return errors.Wrap(err, "failed to find offer")
		}

		if !policy.Decide(actor, policy.ActionUpdateOffer, policy.Resource{Owner: found.OwnerID}) {
			return domainerrors.ErrForbidden.WrapMessage("only the offer's owner may update it")
		}

		if input.Title != nil {
			found.Title = *input.Title
		}
		if input.Description != nil {
			found.Description = *input.Description
		}
		if input.Image != nil {
			found.Image = input.Image
		}

		for _, d := range input.Details {
			detail := found.DetailByType(d.OfferType)
			if detail == nil {
				return domainerrors.ErrUnknownTierType.WithDetails(string(d.OfferType))
			}

			if d.Title != nil {
				detail.Title = *d.Title
			}
			if d.Revisions != nil {
				detail.Revisions = *d.Revisions
			}
			if d.DeliveryTimeInDays != nil {
				detail.DeliveryTimeInDays = *d.DeliveryTimeInDays
			}
			if d.Price != nil {
				detail.Price = *d.Price
			}
			if d.Features != nil {
				detail.Features = d.Features
			}
		}

		if err := entity.ValidateTierSet(found.Details); err != nil {
			return domainerrors.ErrInvalidTierSet.WithDetails(err.Error())
		}
		found.RecalculateMinimums()

		if err := offerRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update offer")
		}

		offer = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return offer, nil
}

// DeleteOffer removes an offer the actor owns, details included.
func (srv *offerService) DeleteOffer(ctx context.Context, actor policy.Actor, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting offer", slog.String("offerID", id.String()))

	offer, err := srv.offerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return domainerrors.ErrOfferNotFound
		}

		return errors.Wrap(err, "failed to find offer")
	}

	if !policy.Decide(actor, policy.ActionDeleteOffer, policy.Resource{Owner: offer.OwnerID}) {
		return domainerrors.ErrForbidden.WrapMessage("only the offer's owner may delete it")
	}

	if err := srv.offerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return domainerrors.ErrOfferNotFound
		}

		return errors.Wrap(err, "failed to delete offer")
	}

	return nil
}

// ListOffers returns one page of offers matching the filters. The page size
// is clamped to the configured maximum and defaults when unset.
func (srv *offerService) ListOffers(ctx context.Context, input usecase.ListOffersInput) (*usecase.OfferPage, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}

	pageSize := input.PageSize
	if pageSize < 1 {
		pageSize = config.DefaultOfferPageSize
	}
	if pageSize > config.MaxOfferPageSize {
		pageSize = config.MaxOfferPageSize
	}

	offers, total, err := srv.offerRepo.List(ctx, repository.ListOffersParams{
		CreatorID:       input.CreatorID,
		MinPrice:        input.MinPrice,
		MaxDeliveryTime: input.MaxDeliveryTime,
		Search:          input.Search,
		Ordering:        input.Ordering,
		Page:            page,
		PageSize:        pageSize,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers")
	}

	return &usecase.OfferPage{
		Offers:   offers,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
