package contact

import "context"

type ListFilter struct {
	StoreID  uint
	Status   *Status
	Page     int
	PageSize int
}

type Repository interface {
	Create(ctx context.Context, r *Request) error
	Update(ctx context.Context, r *Request) error
	GetByID(ctx context.Context, id uint) (*Request, error)
	List(ctx context.Context, filter ListFilter) ([]*Request, int64, error)
}

type AdminRepository interface {
	Create(ctx context.Context, r *AdminRequest) error
	Update(ctx context.Context, r *AdminRequest) error
	GetByID(ctx context.Context, id uint) (*AdminRequest, error)
	List(ctx context.Context, status *Status, page, pageSize int) ([]*AdminRequest, int64, error)
}
