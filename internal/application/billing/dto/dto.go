package dto

import (
	"time"

	"github.com/estately/estately/internal/domain/subscription"
	"github.com/estately/estately/internal/shared/biztime"
)

type ProductDTO struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Tier     string `json:"tier"`
	PriceID  string `json:"price_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Interval string `json:"interval"`
	Active   bool   `json:"active"`
}

func ToProductDTO(p *subscription.Product) *ProductDTO {
	return &ProductDTO{
		ID:       p.ID(),
		Name:     p.Name(),
		Tier:     p.Tier().String(),
		PriceID:  p.ExternalPriceID(),
		Amount:   p.Amount(),
		Currency: p.Currency(),
		Interval: p.Interval().String(),
		Active:   p.IsActive(),
	}
}

func ToProductDTOs(products []*subscription.Product) []*ProductDTO {
	out := make([]*ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductDTO(p))
	}
	return out
}

type SubscriptionDTO struct {
	ID             uint       `json:"id"`
	Status         string     `json:"status"`
	Tier           string     `json:"tier"`
	PriceID        string     `json:"price_id"`
	DesiredPriceID string     `json:"desired_price_id,omitempty"`
	Attached       bool       `json:"attached"`
	StartAt        *time.Time `json:"start_at"`
	EndAt          *time.Time `json:"end_at"`
	Current        bool       `json:"current"`
	CreatedAt      time.Time  `json:"created_at"`
}

// ToSubscriptionDTO renders epoch period bounds as null.
func ToSubscriptionDTO(s *subscription.Subscription) *SubscriptionDTO {
	if s == nil {
		return nil
	}
	out := &SubscriptionDTO{
		ID:             s.ID(),
		Status:         s.Status().String(),
		Tier:           s.Tier().String(),
		PriceID:        s.PriceID(),
		DesiredPriceID: s.DesiredPriceID(),
		Attached:       s.IsAttached(),
		Current:        s.IsCurrent(),
		CreatedAt:      s.CreatedAt(),
	}
	if t := s.StartAt(); !biztime.IsEpoch(t) {
		out.StartAt = &t
	}
	if t := s.EndAt(); !biztime.IsEpoch(t) {
		out.EndAt = &t
	}
	return out
}

type MySubscriptionDTO struct {
	Current *SubscriptionDTO   `json:"current"`
	History []*SubscriptionDTO `json:"history"`
}

func ToMySubscriptionDTO(current *subscription.Subscription, history []*subscription.Subscription) *MySubscriptionDTO {
	out := &MySubscriptionDTO{
		Current: ToSubscriptionDTO(current),
		History: make([]*SubscriptionDTO, 0, len(history)),
	}
	for _, s := range history {
		out.History = append(out.History, ToSubscriptionDTO(s))
	}
	return out
}

type SessionURLDTO struct {
	URL string `json:"url"`
}
