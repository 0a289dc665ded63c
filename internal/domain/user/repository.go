package user

import "context"

type ListFilter struct {
	Search   string
	Blocked  *bool
	Page     int
	PageSize int
}

// Repository returns (nil, nil) from lookups when no row matches.
type Repository interface {
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByUUID(ctx context.Context, uuid string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByVerificationTokenHash(ctx context.Context, hash string) (*User, error)
	GetByResetTokenHash(ctx context.Context, hash string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)
}
