package store

import "context"

type ListFilter struct {
	Search   string
	Status   *Status
	Page     int
	PageSize int
}

type Repository interface {
	Create(ctx context.Context, s *Store) error
	Update(ctx context.Context, s *Store) error
	GetByID(ctx context.Context, id uint) (*Store, error)
	GetByHostname(ctx context.Context, hostname string) (*Store, error)
	GetByOwnerID(ctx context.Context, ownerID uint) (*Store, error)
	List(ctx context.Context, filter ListFilter) ([]*Store, int64, error)
	// ListIDs pages through all store ids in ascending order.
	ListIDs(ctx context.Context, afterID uint, limit int) ([]uint, error)
}
