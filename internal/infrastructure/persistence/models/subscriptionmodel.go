package models

import (
	"time"

	"github.com/estately/estately/internal/shared/constants"
)

// SubscriptionModel keeps the subscription history of a user. CurrentUserID
// equals UserID on the current row and is NULL otherwise, so its unique
// index allows one current row per user.
type SubscriptionModel struct {
	ID             uint   `gorm:"primarykey"`
	UserID         uint   `gorm:"not null;index"`
	CustomerID     string `gorm:"not null;size:255;index"`
	SubscriptionID string `gorm:"size:255;index"`
	ItemID         string `gorm:"size:255"`
	PriceID        string `gorm:"size:255"`
	DesiredPriceID string `gorm:"size:255"`
	Status         string `gorm:"not null;size:20"`
	Type           string `gorm:"size:20"`
	StartAt        time.Time
	EndAt          time.Time
	IsCurrent      bool  `gorm:"not null;default:false"`
	CurrentUserID  *uint `gorm:"uniqueIndex"`
	Version        int   `gorm:"not null;default:1"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}

type ProductModel struct {
	ID                uint   `gorm:"primarykey"`
	Name              string `gorm:"not null;size:100"`
	Tier              string `gorm:"not null;size:20"`
	ExternalProductID string `gorm:"size:255"`
	ExternalPriceID   string `gorm:"uniqueIndex;not null;size:255"`
	Amount            int64  `gorm:"not null"`
	Currency          string `gorm:"not null;size:3"`
	Interval          string `gorm:"column:billing_interval;not null;size:10"`
	Active            bool   `gorm:"not null;default:true"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (ProductModel) TableName() string {
	return constants.TableProducts
}
