package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderModel mirrors the 'orders' table. The tier columns are a frozen copy of the
// purchased offer detail, so later offer edits never change existing orders.
type OrderModel struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerUserID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	BusinessUserID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title              string         `gorm:"type:varchar(255);not null"`
	Revisions          int            `gorm:"not null"`
	DeliveryTimeInDays int            `gorm:"not null"`
	Price              int            `gorm:"not null"`
	Features           datatypes.JSON `gorm:"type:jsonb;not null"`
	OfferType          string         `gorm:"type:varchar(16);not null"`
	Status             string         `gorm:"type:varchar(16);not null;default:in_progress"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Customer *UserModel `gorm:"foreignKey:CustomerUserID"`
	Business *UserModel `gorm:"foreignKey:BusinessUserID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
