package dto

import (
	"time"

	"github.com/estately/estately/internal/domain/user"
)

type UserDTO struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Role          string    `json:"role"`
	Blocked       bool      `json:"blocked"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AdminUserDTO adds the numeric id admin endpoints address users by.
type AdminUserDTO struct {
	UserDTO
	InternalID uint `json:"internal_id"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:            u.UUID(),
		Email:         u.Email(),
		Name:          u.Name(),
		Role:          u.Role().String(),
		Blocked:       u.IsBlocked(),
		EmailVerified: u.IsEmailVerified(),
		CreatedAt:     u.CreatedAt(),
		UpdatedAt:     u.UpdatedAt(),
	}
}

func ToAdminUserDTOs(users []*user.User) []*AdminUserDTO {
	out := make([]*AdminUserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, &AdminUserDTO{UserDTO: *ToUserDTO(u), InternalID: u.ID()})
	}
	return out
}

type AuthTokensDTO struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	TokenType    string   `json:"token_type"`
	ExpiresIn    int64    `json:"expires_in"`
	User         *UserDTO `json:"user,omitempty"`
}
