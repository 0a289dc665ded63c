package models

import (
	"time"

	"github.com/estately/estately/internal/shared/constants"
)

// StoreModel is a tenant row; hostname and owner are both unique.
type StoreModel struct {
	ID           uint   `gorm:"primarykey"`
	Hostname     string `gorm:"uniqueIndex;not null;size:253"`
	OwnerID      uint   `gorm:"uniqueIndex;not null"`
	Name         string `gorm:"not null;size:120"`
	Description  string `gorm:"type:text"`
	ContactEmail string `gorm:"size:255"`
	ContactPhone string `gorm:"size:50"`
	Address      string `gorm:"size:255"`
	LogoFileID   *uint
	CoverFileID  *uint
	PrimaryColor string `gorm:"size:7"`
	Status       string `gorm:"not null;default:inactive;size:20;index"`
	Protected    bool   `gorm:"not null;default:false"`
	Version      int    `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (StoreModel) TableName() string {
	return constants.TableStores
}
