package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/config"
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

type offerServiceFixtures struct {
	service   usecase.OfferUsecase
	txManager *mockRepo.MockTransactionManager
	offerRepo *mockRepo.MockOfferRepository
}

func createTestOfferService(t *testing.T) offerServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	offerRepo := mockRepo.NewMockOfferRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewOfferService(OfferServiceParams{
		TxManager: txManager,
		OfferRepo: offerRepo,
		Logger:    logger,
	})

	return offerServiceFixtures{
		service:   svc,
		txManager: txManager,
		offerRepo: offerRepo,
	}
}

func businessActor() policy.Actor {
	return policy.Actor{ID: uuid.New(), Role: entity.RoleBusiness}
}

func customerActor() policy.Actor {
	return policy.Actor{ID: uuid.New(), Role: entity.RoleCustomer}
}

func validTierInputs() []usecase.OfferDetailInput {
	return []usecase.OfferDetailInput{
		{Title: "Basic", Revisions: 1, DeliveryTimeInDays: 7, Price: 900, Features: []string{"Logo"}, OfferType: entity.TierBasic},
		{Title: "Standard", Revisions: 3, DeliveryTimeInDays: 10, Price: 1500, Features: []string{"Logo", "Flyer"}, OfferType: entity.TierStandard},
		{Title: "Premium", Revisions: 5, DeliveryTimeInDays: 14, Price: 2200, Features: []string{"Logo", "Flyer", "Site"}, OfferType: entity.TierPremium},
	}
}

func TestOfferService_CreateOffer_Success(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()
	actor := businessActor()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			offerRepo := mockRepo.NewMockOfferRepository(t)

			factory.EXPECT().OfferRepo().Return(offerRepo)
			offerRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Offer")).
				Return(nil)

			return fn(factory)
		})

	offer, err := fx.service.CreateOffer(ctx, actor, usecase.CreateOfferInput{
		Title:   "Graphic design bundle",
		Details: validTierInputs(),
	})

	require.NoError(t, err)
	assert.Equal(t, actor.ID, offer.OwnerID)
	// Derived minimums come from the cheapest and fastest tier.
	assert.Equal(t, 900, offer.MinPrice)
	assert.Equal(t, 7, offer.MinDeliveryTime)
	assert.Len(t, offer.Details, 3)
}

func TestOfferService_CreateOffer_ForbiddenForCustomer(t *testing.T) {
	fx := createTestOfferService(t)

	_, err := fx.service.CreateOffer(context.Background(), customerActor(), usecase.CreateOfferInput{
		Title:   "Graphic design bundle",
		Details: validTierInputs(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOfferService_CreateOffer_MissingTier(t *testing.T) {
	fx := createTestOfferService(t)

	_, err := fx.service.CreateOffer(context.Background(), businessActor(), usecase.CreateOfferInput{
		Title:   "Graphic design bundle",
		Details: validTierInputs()[:2],
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTierSet)
}

func TestOfferService_CreateOffer_DuplicateTier(t *testing.T) {
	fx := createTestOfferService(t)

	details := validTierInputs()
	details[2].OfferType = entity.TierBasic

	_, err := fx.service.CreateOffer(context.Background(), businessActor(), usecase.CreateOfferInput{
		Title:   "Graphic design bundle",
		Details: details,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTierSet)
}

func TestOfferService_CreateOffer_EmptyTitle(t *testing.T) {
	fx := createTestOfferService(t)

	_, err := fx.service.CreateOffer(context.Background(), businessActor(), usecase.CreateOfferInput{
		Details: validTierInputs(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func storedOffer(ownerID uuid.UUID) *entity.Offer {
	offerID := uuid.New()
	offer := &entity.Offer{
		ID:      offerID,
		OwnerID: ownerID,
		Title:   "Graphic design bundle",
		Details: []entity.OfferDetail{
			{ID: uuid.New(), OfferID: offerID, Title: "Basic", Revisions: 1, DeliveryTimeInDays: 7, Price: 900, Features: []string{"Logo"}, Type: entity.TierBasic},
			{ID: uuid.New(), OfferID: offerID, Title: "Standard", Revisions: 3, DeliveryTimeInDays: 10, Price: 1500, Features: []string{"Logo", "Flyer"}, Type: entity.TierStandard},
			{ID: uuid.New(), OfferID: offerID, Title: "Premium", Revisions: 5, DeliveryTimeInDays: 14, Price: 2200, Features: []string{"Logo", "Flyer", "Site"}, Type: entity.TierPremium},
		},
	}
	offer.RecalculateMinimums()

	return offer
}

func TestOfferService_UpdateOffer_RecomputesMinimums(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()
	actor := businessActor()
	existing := storedOffer(actor.ID)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			offerRepo := mockRepo.NewMockOfferRepository(t)

			factory.EXPECT().OfferRepo().Return(offerRepo)
			offerRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
			offerRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Offer")).
				Return(nil)

			return fn(factory)
		})

	newPrice := 700
	updated, err := fx.service.UpdateOffer(ctx, actor, existing.ID, usecase.UpdateOfferInput{
		Details: []usecase.UpdateOfferDetailInput{
			{OfferType: entity.TierPremium, Price: &newPrice},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 700, updated.MinPrice)
	assert.Equal(t, 7, updated.MinDeliveryTime)
}

func TestOfferService_UpdateOffer_NotOwner(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()
	existing := storedOffer(uuid.New())
	actor := businessActor() // different business user

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			offerRepo := mockRepo.NewMockOfferRepository(t)

			factory.EXPECT().OfferRepo().Return(offerRepo)
			offerRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)

			return fn(factory)
		})

	newTitle := "Hijacked"
	_, err := fx.service.UpdateOffer(ctx, actor, existing.ID, usecase.UpdateOfferInput{
		Title: &newTitle,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOfferService_UpdateOffer_UnknownTierTag(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()
	actor := businessActor()
	existing := storedOffer(actor.ID)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			offerRepo := mockRepo.NewMockOfferRepository(t)

			factory.EXPECT().OfferRepo().Return(offerRepo)
			offerRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)

			return fn(factory)
		})

	price := 100
	_, err := fx.service.UpdateOffer(ctx, actor, existing.ID, usecase.UpdateOfferInput{
		Details: []usecase.UpdateOfferDetailInput{
			{OfferType: entity.OfferTier("deluxe"), Price: &price},
		},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownTierType)
}

func TestOfferService_DeleteOffer_Success(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()
	actor := businessActor()
	existing := storedOffer(actor.ID)

	fx.offerRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.offerRepo.EXPECT().Delete(ctx, existing.ID).Return(nil)

	err := fx.service.DeleteOffer(ctx, actor, existing.ID)

	require.NoError(t, err)
}

func TestOfferService_DeleteOffer_NotOwner(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()
	existing := storedOffer(uuid.New())

	fx.offerRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)

	err := fx.service.DeleteOffer(ctx, businessActor(), existing.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOfferService_GetOffer_NotFound(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.offerRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrOfferNotFound)

	_, err := fx.service.GetOffer(ctx, id)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOfferNotFound)
}

func TestOfferService_ListOffers_ClampsPageSize(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()

	fx.offerRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.ListOffersParams")).
		Run(func(_ context.Context, params repository.ListOffersParams) {
			assert.Equal(t, config.MaxOfferPageSize, params.PageSize)
			assert.Equal(t, 1, params.Page)
		}).
		Return([]*entity.Offer{}, int64(0), nil)

	page, err := fx.service.ListOffers(ctx, usecase.ListOffersInput{
		Page:     0,
		PageSize: 100,
	})

	require.NoError(t, err)
	assert.Equal(t, config.MaxOfferPageSize, page.PageSize)
}

func TestOfferService_ListOffers_DefaultPageSize(t *testing.T) {
	fx := createTestOfferService(t)
	ctx := context.Background()

	fx.offerRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.ListOffersParams")).
		Run(func(_ context.Context, params repository.ListOffersParams) {
			assert.Equal(t, config.DefaultOfferPageSize, params.PageSize)
		}).
		Return([]*entity.Offer{}, int64(0), nil)

	_, err := fx.service.ListOffers(ctx, usecase.ListOffersInput{})

	require.NoError(t, err)
}
