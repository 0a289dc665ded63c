package listing

import (
	"fmt"
	"time"
)

// BookedDate blocks an inclusive date range of an item.
type BookedDate struct {
	Record
	ItemID    uint
	StartDate time.Time
	EndDate   time.Time
	Note      string
}

func (b *BookedDate) Validate() error {
	if b.StartDate.IsZero() || b.EndDate.IsZero() {
		return fmt.Errorf("start and end dates are required")
	}
	if b.EndDate.Before(b.StartDate) {
		return fmt.Errorf("end date must not be before start date")
	}
	return nil
}

func (b *BookedDate) Overlaps(other *BookedDate) bool {
	return !b.StartDate.After(other.EndDate) && !other.StartDate.After(b.EndDate)
}

// CheckOverlap fails when b intersects any visible booking other than itself.
func CheckOverlap(b *BookedDate, existing []*BookedDate) error {
	for _, e := range existing {
		if e.ID == b.ID || e.IsDeleted {
			continue
		}
		if b.Overlaps(e) {
			return ErrBookingOverlap
		}
	}
	return nil
}
