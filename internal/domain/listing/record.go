package listing

import "time"

// Record carries the bookkeeping columns shared by item sub-resources.
type Record struct {
	ID        uint
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Base exposes the embedded record to code that handles sub-resources
// generically.
func (r *Record) Base() *Record { return r }
