package media

import "context"

type Repository interface {
	Create(ctx context.Context, f *File) error
	GetByID(ctx context.Context, id uint) (*File, error)
	// GetByIDs returns the requested files including soft-deleted ones.
	GetByIDs(ctx context.Context, ids []uint) ([]*File, error)
	List(ctx context.Context, storeID uint, kind *Kind, page, pageSize int) ([]*File, int64, error)
	// Delete removes the row and its item associations, and clears the
	// store, member, floor plan and plan marker columns pointing at it.
	Delete(ctx context.Context, id uint) error
	// AttachToItem appends the file to the end of the item's media list.
	AttachToItem(ctx context.Context, itemID, fileID uint) error
}
