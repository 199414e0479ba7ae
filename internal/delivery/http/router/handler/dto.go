package handler

import (
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// Response models returned inside the API envelope. Domain entities are
// mapped here instead of being serialized directly, so wire names stay
// stable and password hashes never leave the server.

type userResponse struct {
	ID        uuid.UUID        `json:"id"`
	Username  string           `json:"username"`
	Email     string           `json:"email"`
	Role      entity.Role      `json:"role"`
	Staff     bool             `json:"staff"`
	Profile   *profileResponse `json:"profile,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type profileResponse struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	File         string `json:"file"`
	Location     string `json:"location"`
	Tel          string `json:"tel"`
	Description  string `json:"description"`
	WorkingHours string `json:"working_hours"`
}

type offerResponse struct {
	ID              uuid.UUID             `json:"id"`
	OwnerID         uuid.UUID             `json:"owner_id"`
	Title           string                `json:"title"`
	Description     string                `json:"description"`
	Image           *string               `json:"image"`
	MinPrice        int                   `json:"min_price"`
	MinDeliveryTime int                   `json:"min_delivery_time"`
	Details         []offerDetailResponse `json:"details"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

type offerDetailResponse struct {
	ID                 uuid.UUID        `json:"id"`
	OfferID            uuid.UUID        `json:"offer_id"`
	Title              string           `json:"title"`
	Revisions          int              `json:"revisions"`
	DeliveryTimeInDays int              `json:"delivery_time_in_days"`
	Price              int              `json:"price"`
	Features           []string         `json:"features"`
	OfferType          entity.OfferTier `json:"offer_type"`
}

type orderResponse struct {
	ID                 uuid.UUID          `json:"id"`
	CustomerUserID     uuid.UUID          `json:"customer_user"`
	BusinessUserID     uuid.UUID          `json:"business_user"`
	Title              string             `json:"title"`
	Revisions          int                `json:"revisions"`
	DeliveryTimeInDays int                `json:"delivery_time_in_days"`
	Price              int                `json:"price"`
	Features           []string           `json:"features"`
	OfferType          entity.OfferTier   `json:"offer_type"`
	Status             entity.OrderStatus `json:"status"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

type reviewResponse struct {
	ID             uuid.UUID `json:"id"`
	BusinessUserID uuid.UUID `json:"business_user"`
	ReviewerID     uuid.UUID `json:"reviewer"`
	Rating         int       `json:"rating"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toUserResponse(user *entity.User) *userResponse {
	if user == nil {
		return nil
	}

	resp := &userResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		Staff:     user.Staff,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	if user.Profile != nil {
		resp.Profile = &profileResponse{
			FirstName:    user.Profile.FirstName,
			LastName:     user.Profile.LastName,
			File:         user.Profile.File,
			Location:     user.Profile.Location,
			Tel:          user.Profile.Tel,
			Description:  user.Profile.Description,
			WorkingHours: user.Profile.WorkingHours,
		}
	}

	return resp
}

func toUserResponses(users []*entity.User) []*userResponse {
	out := make([]*userResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}

	return out
}

func toOfferDetailResponse(detail *entity.OfferDetail) *offerDetailResponse {
	if detail == nil {
		return nil
	}

	return &offerDetailResponse{
		ID:                 detail.ID,
		OfferID:            detail.OfferID,
		Title:              detail.Title,
		Revisions:          detail.Revisions,
		DeliveryTimeInDays: detail.DeliveryTimeInDays,
		Price:              detail.Price,
		Features:           detail.Features,
		OfferType:          detail.Type,
	}
}

func toOfferResponse(offer *entity.Offer) *offerResponse {
	if offer == nil {
		return nil
	}

	details := make([]offerDetailResponse, 0, len(offer.Details))
	for i := range offer.Details {
		details = append(details, *toOfferDetailResponse(&offer.Details[i]))
	}

	return &offerResponse{
		ID:              offer.ID,
		OwnerID:         offer.OwnerID,
		Title:           offer.Title,
		Description:     offer.Description,
		Image:           offer.Image,
		MinPrice:        offer.MinPrice,
		MinDeliveryTime: offer.MinDeliveryTime,
		Details:         details,
		CreatedAt:       offer.CreatedAt,
		UpdatedAt:       offer.UpdatedAt,
	}
}

func toOfferResponses(offers []*entity.Offer) []*offerResponse {
	out := make([]*offerResponse, 0, len(offers))
	for _, offer := range offers {
		out = append(out, toOfferResponse(offer))
	}

	return out
}

func toOrderResponse(order *entity.Order) *orderResponse {
	if order == nil {
		return nil
	}

	return &orderResponse{
		ID:                 order.ID,
		CustomerUserID:     order.CustomerUserID,
		BusinessUserID:     order.BusinessUserID,
		Title:              order.Title,
		Revisions:          order.Revisions,
		DeliveryTimeInDays: order.DeliveryTimeInDays,
		Price:              order.Price,
		Features:           order.Features,
		OfferType:          order.OfferType,
		Status:             order.Status,
		CreatedAt:          order.CreatedAt,
		UpdatedAt:          order.UpdatedAt,
	}
}

func toOrderResponses(orders []*entity.Order) []*orderResponse {
	out := make([]*orderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, toOrderResponse(order))
	}

	return out
}

func toReviewResponse(review *entity.Review) *reviewResponse {
	if review == nil {
		return nil
	}

	return &reviewResponse{
		ID:             review.ID,
		BusinessUserID: review.BusinessUserID,
		ReviewerID:     review.ReviewerID,
		Rating:         review.Rating,
		Description:    review.Description,
		CreatedAt:      review.CreatedAt,
		UpdatedAt:      review.UpdatedAt,
	}
}

func toReviewResponses(reviews []*entity.Review) []*reviewResponse {
	out := make([]*reviewResponse, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, toReviewResponse(review))
	}

	return out
}
