package subscription

import "context"

type Repository interface {
	Create(ctx context.Context, s *Subscription) error
	Update(ctx context.Context, s *Subscription) error
	GetCurrentByUserID(ctx context.Context, userID uint) (*Subscription, error)
	GetCurrentByCustomerID(ctx context.Context, customerID string) (*Subscription, error)
	// GetCustomerIDByUserID returns the processor customer from any of the
	// user's rows, or an empty string.
	GetCustomerIDByUserID(ctx context.Context, userID uint) (string, error)
	ListByUserID(ctx context.Context, userID uint) ([]*Subscription, error)
}

type ProductRepository interface {
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id uint) (*Product, error)
	GetByPriceID(ctx context.Context, priceID string) (*Product, error)
	List(ctx context.Context, activeOnly bool) ([]*Product, error)
}
