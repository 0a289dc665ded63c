package models

import (
	"time"

	"github.com/estately/estately/internal/shared/constants"
)

type ItemModel struct {
	ID              uint   `gorm:"primarykey"`
	StoreID         uint   `gorm:"not null;index"`
	MemberID        *uint
	Title           string `gorm:"not null;size:200"`
	Description     string `gorm:"type:text"`
	DescriptionHTML string `gorm:"column:description_html;type:text"`
	Stage           string `gorm:"not null;default:draft;size:20;index"`
	PropertyType    string `gorm:"size:50"`
	ListingType     string `gorm:"not null;default:sale;size:10"`
	Address         string `gorm:"size:255"`
	CityID          *uint
	Latitude        *float64
	Longitude       *float64
	Bedrooms        int
	Bathrooms       int
	Area            float64
	IsDeleted       bool `gorm:"not null;default:false;index"`
	Version         int  `gorm:"not null;default:1"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (ItemModel) TableName() string {
	return constants.TableItems
}

type ItemAmenityModel struct {
	ItemID    uint `gorm:"primaryKey;autoIncrement:false"`
	AmenityID uint `gorm:"primaryKey;autoIncrement:false"`
}

func (ItemAmenityModel) TableName() string {
	return constants.TableItemAmenities
}

// ItemFileModel orders the media of an item.
type ItemFileModel struct {
	ItemID   uint `gorm:"primaryKey;autoIncrement:false"`
	FileID   uint `gorm:"primaryKey;autoIncrement:false;index"`
	Position int  `gorm:"not null;default:0"`
}

func (ItemFileModel) TableName() string {
	return constants.TableItemFiles
}
