package models

import (
	"time"

	"github.com/estately/estately/internal/shared/constants"
)

type FileModel struct {
	ID          uint   `gorm:"primarykey"`
	StoreID     uint   `gorm:"not null;index"`
	UploaderID  uint   `gorm:"not null"`
	Key         string `gorm:"column:object_key;uniqueIndex;not null;size:512"`
	URL         string `gorm:"column:url;not null;size:1024"`
	Name        string `gorm:"size:255"`
	ContentType string `gorm:"size:100"`
	Kind        string `gorm:"not null;size:20"`
	Size        int64
	IsDeleted   bool `gorm:"not null;default:false"`
	CreatedAt   time.Time
}

func (FileModel) TableName() string {
	return constants.TableFiles
}
