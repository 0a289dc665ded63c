package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/estately/estately/internal/shared/constants"
)

type RateModel struct {
	ID        uint   `gorm:"primarykey"`
	ItemID    uint   `gorm:"not null;index"`
	Name      string `gorm:"not null;size:100"`
	Amount    int64  `gorm:"not null"`
	Currency  string `gorm:"not null;size:3"`
	Period    string `gorm:"not null;size:10"`
	IsDeleted bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (RateModel) TableName() string { return constants.TableRates }

type FeeModel struct {
	ID        uint   `gorm:"primarykey"`
	ItemID    uint   `gorm:"not null;index"`
	Name      string `gorm:"not null;size:100"`
	Amount    int64  `gorm:"not null"`
	Kind      string `gorm:"not null;size:10"`
	Required  bool   `gorm:"not null;default:false"`
	IsDeleted bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (FeeModel) TableName() string { return constants.TableFees }

type FloorPlanModel struct {
	ID          uint   `gorm:"primarykey"`
	ItemID      uint   `gorm:"not null;index"`
	Name        string `gorm:"not null;size:100"`
	ImageFileID *uint
	Bedrooms    int
	Bathrooms   int
	Area        float64
	Position    int
	IsDeleted   bool `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (FloorPlanModel) TableName() string { return constants.TableFloorPlans }

type PlanMarkerModel struct {
	ID          uint   `gorm:"primarykey"`
	FloorPlanID uint   `gorm:"not null;index"`
	Label       string `gorm:"not null;size:100"`
	X           float64
	Y           float64
	FileID      *uint
	IsDeleted   bool `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (PlanMarkerModel) TableName() string { return constants.TablePlanMarkers }

type BookedDateModel struct {
	ID        uint      `gorm:"primarykey"`
	ItemID    uint      `gorm:"not null;index"`
	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null"`
	Note      string    `gorm:"size:255"`
	IsDeleted bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (BookedDateModel) TableName() string { return constants.TableBookedDates }

type AmenityModel struct {
	ID        uint   `gorm:"primarykey"`
	StoreID   uint   `gorm:"not null;index"`
	Name      string `gorm:"not null;size:100"`
	Icon      string `gorm:"size:100"`
	IsDeleted bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AmenityModel) TableName() string { return constants.TableAmenities }

type MemberModel struct {
	ID          uint   `gorm:"primarykey"`
	StoreID     uint   `gorm:"not null;uniqueIndex:idx_members_store_email"`
	Name        string `gorm:"not null;size:120"`
	Email       string `gorm:"not null;size:255;uniqueIndex:idx_members_store_email"`
	Phone       string `gorm:"size:50"`
	Title       string `gorm:"size:100"`
	PhotoFileID *uint
	IsDeleted   bool `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (MemberModel) TableName() string { return constants.TableMembers }

type LinkModel struct {
	ID        uint   `gorm:"primarykey"`
	ItemID    uint   `gorm:"not null;index"`
	Title     string `gorm:"not null;size:200"`
	URL       string `gorm:"column:url;not null;size:2048"`
	Kind      string `gorm:"size:30"`
	IsDeleted bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LinkModel) TableName() string { return constants.TableLinks }

type MetadataModel struct {
	ID        uint           `gorm:"primarykey"`
	StoreID   uint           `gorm:"not null;uniqueIndex:idx_metadatas_store_key"`
	Key       string         `gorm:"column:meta_key;not null;size:100;uniqueIndex:idx_metadatas_store_key"`
	Value     datatypes.JSON `gorm:"column:meta_value"`
	IsDeleted bool           `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (MetadataModel) TableName() string { return constants.TableMetadatas }
