package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OfferModel mirrors the 'offers' table. MinPrice and MinDeliveryTime are derived
// from the cheapest and fastest tier and kept in sync on every write.
type OfferModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Title           string    `gorm:"type:varchar(255);not null"`
	Description     string    `gorm:"type:text"`
	Image           *string   `gorm:"type:varchar(255)"`
	MinPrice        int       `gorm:"not null"`
	MinDeliveryTime int       `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Owner   *UserModel         `gorm:"foreignKey:OwnerID"`
	Details []OfferDetailModel `gorm:"foreignKey:OfferID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "offers"
}

// OfferDetailModel mirrors the 'offer_details' table. The composite unique index on
// (offer_id, offer_type) guarantees at most one detail per pricing tier.
type OfferDetailModel struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OfferID            uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_offer_details_offer_type"`
	Title              string         `gorm:"type:varchar(255);not null"`
	Revisions          int            `gorm:"not null"`
	DeliveryTimeInDays int            `gorm:"not null"`
	Price              int            `gorm:"not null"`
	Features           datatypes.JSON `gorm:"type:jsonb;not null"`
	OfferType          string         `gorm:"type:varchar(16);not null;uniqueIndex:idx_offer_details_offer_type"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (OfferDetailModel) TableName() string {
	return "offer_details"
}
