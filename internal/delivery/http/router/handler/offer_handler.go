package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OfferHandler holds dependencies for offer-related handlers.
type OfferHandler struct {
	uc     usecase.OfferUsecase
	logger *slog.Logger
}

// NewOfferHandler is the constructor for OfferHandler, injected by Fx.
func NewOfferHandler(uc usecase.OfferUsecase, logger *slog.Logger) *OfferHandler {
	return &OfferHandler{uc: uc, logger: logger}
}

type offerDetailRequest struct {
	Title              string   `json:"title" validate:"required"`
	Revisions          int      `json:"revisions" validate:"min=0"`
	DeliveryTimeInDays int      `json:"delivery_time_in_days" validate:"min=1"`
	Price              int      `json:"price" validate:"min=0"`
	Features           []string `json:"features"`
	OfferType          string   `json:"offer_type" validate:"required,oneof=basic standard premium"`
}

type createOfferRequest struct {
	Title       string               `json:"title" validate:"required"`
	Description string               `json:"description"`
	Image       *string              `json:"image"`
	Details     []offerDetailRequest `json:"details" validate:"required,len=3,dive"`
}

type updateOfferDetailRequest struct {
	OfferType          string   `json:"offer_type" validate:"required,oneof=basic standard premium"`
	Title              *string  `json:"title"`
	Revisions          *int     `json:"revisions"`
	DeliveryTimeInDays *int     `json:"delivery_time_in_days"`
	Price              *int     `json:"price"`
	Features           []string `json:"features"`
}

type updateOfferRequest struct {
	Title       *string                    `json:"title"`
	Description *string                    `json:"description"`
	Image       *string                    `json:"image"`
	Details     []updateOfferDetailRequest `json:"details" validate:"omitempty,dive"`
}

type offerPageResponse struct {
	Offers   []*offerResponse `json:"offers"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// CreateOffer publishes a new offer for the authenticated business user.
func (h *OfferHandler) CreateOffer(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req createOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := usecase.CreateOfferInput{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
	}
	for _, detail := range req.Details {
		input.Details = append(input.Details, usecase.OfferDetailInput{
			Title:              detail.Title,
			Revisions:          detail.Revisions,
			DeliveryTimeInDays: detail.DeliveryTimeInDays,
			Price:              detail.Price,
			Features:           detail.Features,
			OfferType:          entity.OfferTier(detail.OfferType),
		})
	}

	offer, err := h.uc.CreateOffer(c.Request().Context(), actor, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOfferResponse(offer), "Offer created successfully")
}

// GetOffer returns one offer with its three tiers.
func (h *OfferHandler) GetOffer(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid offer ID")
	}

	offer, err := h.uc.GetOffer(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOfferResponse(offer), "")
}

// GetOfferDetail returns a single tier by its own ID.
func (h *OfferHandler) GetOfferDetail(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid offer detail ID")
	}

	detail, err := h.uc.GetOfferDetail(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOfferDetailResponse(detail), "")
}

// UpdateOffer applies a partial update to an offer the caller owns.
func (h *OfferHandler) UpdateOffer(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid offer ID")
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req updateOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := usecase.UpdateOfferInput{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
	}
	for _, detail := range req.Details {
		input.Details = append(input.Details, usecase.UpdateOfferDetailInput{
			OfferType:          entity.OfferTier(detail.OfferType),
			Title:              detail.Title,
			Revisions:          detail.Revisions,
			DeliveryTimeInDays: detail.DeliveryTimeInDays,
			Price:              detail.Price,
			Features:           detail.Features,
		})
	}

	offer, err := h.uc.UpdateOffer(c.Request().Context(), actor, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOfferResponse(offer), "Offer updated successfully")
}

// DeleteOffer removes an offer the caller owns, tiers included.
func (h *OfferHandler) DeleteOffer(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid offer ID")
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	if err := h.uc.DeleteOffer(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Offer deleted successfully")
}

// ListOffers returns one page of offers matching the query filters.
func (h *OfferHandler) ListOffers(c echo.Context) error {
	input := usecase.ListOffersInput{
		Search:   c.QueryParam("search"),
		Ordering: repository.OfferOrdering(c.QueryParam("ordering")),
	}

	if raw := c.QueryParam("creator"); raw != "" {
		creatorID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid creator ID")
		}
		input.CreatorID = &creatorID
	}
	if raw := c.QueryParam("min_price"); raw != "" {
		minPrice, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid min_price")
		}
		input.MinPrice = &minPrice
	}
	if raw := c.QueryParam("max_delivery_time"); raw != "" {
		maxDelivery, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid max_delivery_time")
		}
		input.MaxDeliveryTime = &maxDelivery
	}
	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid page")
		}
		input.Page = page
	}
	if raw := c.QueryParam("page_size"); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid page_size")
		}
		input.PageSize = pageSize
	}

	page, err := h.uc.ListOffers(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offerPageResponse{
		Offers:   toOfferResponses(page.Offers),
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}, "")
}
