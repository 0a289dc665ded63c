package dto

import (
	"time"

	"github.com/estately/estately/internal/domain/store"
)

type StoreDTO struct {
	ID           uint      `json:"id"`
	Hostname     string    `json:"hostname"`
	OwnerID      uint      `json:"owner_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ContactEmail string    `json:"contact_email"`
	ContactPhone string    `json:"contact_phone"`
	Address      string    `json:"address"`
	LogoFileID   *uint     `json:"logo_file_id"`
	CoverFileID  *uint     `json:"cover_file_id"`
	PrimaryColor string    `json:"primary_color"`
	Status       string    `json:"status"`
	Protected    bool      `json:"protected"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicStoreDTO omits owner and admin fields.
type PublicStoreDTO struct {
	Hostname     string `json:"hostname"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Address      string `json:"address"`
	LogoFileID   *uint  `json:"logo_file_id"`
	CoverFileID  *uint  `json:"cover_file_id"`
	PrimaryColor string `json:"primary_color"`
}

func ToStoreDTO(s *store.Store) *StoreDTO {
	if s == nil {
		return nil
	}
	b := s.Branding()
	return &StoreDTO{
		ID:           s.ID(),
		Hostname:     s.Hostname(),
		OwnerID:      s.OwnerID(),
		Name:         b.Name,
		Description:  b.Description,
		ContactEmail: b.ContactEmail,
		ContactPhone: b.ContactPhone,
		Address:      b.Address,
		LogoFileID:   b.LogoFileID,
		CoverFileID:  b.CoverFileID,
		PrimaryColor: b.PrimaryColor,
		Status:       s.Status().String(),
		Protected:    s.IsProtected(),
		CreatedAt:    s.CreatedAt(),
		UpdatedAt:    s.UpdatedAt(),
	}
}

func ToStoreDTOs(stores []*store.Store) []*StoreDTO {
	out := make([]*StoreDTO, 0, len(stores))
	for _, s := range stores {
		out = append(out, ToStoreDTO(s))
	}
	return out
}

func ToPublicStoreDTO(s *store.Store) *PublicStoreDTO {
	b := s.Branding()
	return &PublicStoreDTO{
		Hostname:     s.Hostname(),
		Name:         b.Name,
		Description:  b.Description,
		ContactEmail: b.ContactEmail,
		ContactPhone: b.ContactPhone,
		Address:      b.Address,
		LogoFileID:   b.LogoFileID,
		CoverFileID:  b.CoverFileID,
		PrimaryColor: b.PrimaryColor,
	}
}

type DNSCheckDTO struct {
	Hostname string `json:"hostname"`
	Exists   bool   `json:"exists"`
	Repaired bool   `json:"repaired"`
}
