package models

import (
	"time"

	"github.com/estately/estately/internal/shared/constants"
)

// UserModel represents the database persistence model for users
type UserModel struct {
	ID                    uint    `gorm:"primarykey"`
	UUID                  string  `gorm:"column:uuid;uniqueIndex;not null;size:36"`
	Email                 string  `gorm:"uniqueIndex;not null;size:255"`
	Name                  string  `gorm:"not null;size:100"`
	PasswordHash          string  `gorm:"not null;size:255"`
	Role                  string  `gorm:"not null;default:user;size:20"`
	Blocked               bool    `gorm:"not null;default:false"`
	EmailVerified         bool    `gorm:"not null;default:false"`
	VerificationTokenHash *string `gorm:"size:64;index"`
	VerificationExpiresAt *time.Time
	ResetTokenHash        *string `gorm:"size:64;index"`
	ResetExpiresAt        *time.Time
	Version               int `gorm:"not null;default:1"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
