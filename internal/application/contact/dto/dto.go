package dto

import (
	"time"

	"github.com/estately/estately/internal/domain/contact"
)

type ContactRequestDTO struct {
	ID        uint      `json:"id"`
	StoreID   uint      `json:"store_id"`
	ItemID    *uint     `json:"item_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToContactRequestDTO(r *contact.Request) *ContactRequestDTO {
	in := r.Inquiry()
	return &ContactRequestDTO{
		ID:        r.ID(),
		StoreID:   r.StoreID(),
		ItemID:    r.ItemID(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Message:   in.Message,
		Status:    string(r.Status()),
		CreatedAt: r.CreatedAt(),
		UpdatedAt: r.UpdatedAt(),
	}
}

type AdminContactRequestDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToAdminContactRequestDTO(r *contact.AdminRequest) *AdminContactRequestDTO {
	in := r.Inquiry()
	return &AdminContactRequestDTO{
		ID:        r.ID(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Company:   r.Company(),
		Message:   in.Message,
		Status:    string(r.Status()),
		CreatedAt: r.CreatedAt(),
		UpdatedAt: r.UpdatedAt(),
	}
}
