package models

import (
	"time"

	"github.com/estately/estately/internal/shared/constants"
)

type ContactRequestModel struct {
	ID        uint   `gorm:"primarykey"`
	StoreID   uint   `gorm:"not null;index"`
	ItemID    *uint
	Name      string `gorm:"not null;size:120"`
	Email     string `gorm:"not null;size:255"`
	Phone     string `gorm:"size:50"`
	Message   string `gorm:"type:text"`
	Status    string `gorm:"not null;default:created;size:20"`
	IsDeleted bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ContactRequestModel) TableName() string {
	return constants.TableContactRequests
}

type AdminContactRequestModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null;size:120"`
	Email     string `gorm:"not null;size:255"`
	Phone     string `gorm:"size:50"`
	Company   string `gorm:"size:120"`
	Message   string `gorm:"type:text"`
	Status    string `gorm:"not null;default:created;size:20"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AdminContactRequestModel) TableName() string {
	return constants.TableAdminContactRequests
}
