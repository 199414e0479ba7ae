package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/validator"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/policy"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubOfferUsecase scripts listing results and captures the parsed inputs.
type stubOfferUsecase struct {
	page        *usecase.OfferPage
	offer       *entity.Offer
	err         error
	listInput   usecase.ListOffersInput
	createInput usecase.CreateOfferInput
	createActor policy.Actor
}

func (s *stubOfferUsecase) CreateOffer(_ context.Context, actor policy.Actor, input usecase.CreateOfferInput) (*entity.Offer, error) {
	s.createActor = actor
	s.createInput = input

	return s.offer, s.err
}

func (s *stubOfferUsecase) GetOffer(context.Context, uuid.UUID) (*entity.Offer, error) {
	return s.offer, s.err
}

func (s *stubOfferUsecase) GetOfferDetail(context.Context, uuid.UUID) (*entity.OfferDetail, error) {
	return nil, s.err
}

func (s *stubOfferUsecase) UpdateOffer(_ context.Context, _ policy.Actor, _ uuid.UUID, _ usecase.UpdateOfferInput) (*entity.Offer, error) {
	return s.offer, s.err
}

func (s *stubOfferUsecase) DeleteOffer(context.Context, policy.Actor, uuid.UUID) error {
	return s.err
}

func (s *stubOfferUsecase) ListOffers(_ context.Context, input usecase.ListOffersInput) (*usecase.OfferPage, error) {
	s.listInput = input

	return s.page, s.err
}

func TestOfferHandler_ListOffers_ParsesQuery(t *testing.T) {
	creatorID := uuid.New()
	stub := &stubOfferUsecase{page: &usecase.OfferPage{Page: 2, PageSize: 6}}
	h := NewOfferHandler(stub, slog.Default())

	e := echo.New()
	e.Validator = validator.New()
	target := "/api/offers?creator=" + creatorID.String() +
		"&min_price=100&max_delivery_time=7&search=logo&ordering=-min_price&page=2&page_size=6"
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListOffers(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.listInput.CreatorID)
	assert.Equal(t, creatorID, *stub.listInput.CreatorID)
	require.NotNil(t, stub.listInput.MinPrice)
	assert.Equal(t, 100, *stub.listInput.MinPrice)
	require.NotNil(t, stub.listInput.MaxDeliveryTime)
	assert.Equal(t, 7, *stub.listInput.MaxDeliveryTime)
	assert.Equal(t, "logo", stub.listInput.Search)
	assert.Equal(t, repository.OrderOffersByMinPriceDesc, stub.listInput.Ordering)
	assert.Equal(t, 2, stub.listInput.Page)
	assert.Equal(t, 6, stub.listInput.PageSize)
}

func TestOfferHandler_ListOffers_RejectsBadPage(t *testing.T) {
	stub := &stubOfferUsecase{page: &usecase.OfferPage{}}
	h := NewOfferHandler(stub, slog.Default())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/offers?page=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListOffers(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOfferHandler_CreateOffer_PassesActor(t *testing.T) {
	actorID := uuid.New()
	stub := &stubOfferUsecase{offer: &entity.Offer{ID: uuid.New(), OwnerID: actorID, Title: "Logo design"}}
	h := NewOfferHandler(stub, slog.Default())

	body := `{
		"title": "Logo design",
		"description": "Three concepts",
		"details": [
			{"title": "Basic", "revisions": 1, "delivery_time_in_days": 7, "price": 900, "features": ["1 concept"], "offer_type": "basic"},
			{"title": "Standard", "revisions": 3, "delivery_time_in_days": 10, "price": 1500, "features": ["3 concepts"], "offer_type": "standard"},
			{"title": "Premium", "revisions": 10, "delivery_time_in_days": 14, "price": 2200, "features": ["5 concepts"], "offer_type": "premium"}
		]
	}`
	c, rec := newTestContext(t, http.MethodPost, "/api/offers", body)
	c.Set("userID", actorID)
	c.Set("role", entity.RoleBusiness)
	c.Set("staff", false)

	require.NoError(t, h.CreateOffer(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, actorID, stub.createActor.ID)
	assert.Equal(t, entity.RoleBusiness, stub.createActor.Role)
	require.Len(t, stub.createInput.Details, 3)
	assert.Equal(t, entity.TierPremium, stub.createInput.Details[2].OfferType)
}

func TestOfferHandler_CreateOffer_RequiresAuth(t *testing.T) {
	h := NewOfferHandler(&stubOfferUsecase{}, slog.Default())

	c, rec := newTestContext(t, http.MethodPost, "/api/offers", `{"title": "Logo design"}`)

	require.NoError(t, h.CreateOffer(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOfferHandler_CreateOffer_RejectsTwoTiers(t *testing.T) {
	h := NewOfferHandler(&stubOfferUsecase{}, slog.Default())

	body := `{
		"title": "Logo design",
		"details": [
			{"title": "Basic", "revisions": 1, "delivery_time_in_days": 7, "price": 900, "offer_type": "basic"},
			{"title": "Premium", "revisions": 10, "delivery_time_in_days": 14, "price": 2200, "offer_type": "premium"}
		]
	}`
	c, _ := newTestContext(t, http.MethodPost, "/api/offers", body)
	c.Set("userID", uuid.New())
	c.Set("role", entity.RoleBusiness)
	c.Set("staff", false)

	err := h.CreateOffer(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

// Setting identity keys directly must round-trip through ActorFromContext
// the same way the auth middleware does it.
func TestActorFromContext_RoundTrip(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	_, ok := middleware.ActorFromContext(c)
	assert.False(t, ok)

	id := uuid.New()
	c.Set("userID", id)
	c.Set("role", entity.RoleCustomer)
	c.Set("staff", true)

	actor, ok := middleware.ActorFromContext(c)
	require.True(t, ok)
	assert.Equal(t, policy.Actor{ID: id, Role: entity.RoleCustomer, Staff: true}, actor)
}
