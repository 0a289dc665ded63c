// Package biztime centralises time handling. Storage and transport are UTC;
// the business location is only used to interpret calendar dates and for
// scheduler cron expressions.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	DefaultTimezone = "UTC"
	DateLayout      = "2006-01-02"
)

// Epoch is the sentinel written to subscription timestamps once the external
// subscription is gone.
var Epoch = time.Unix(0, 0).UTC()

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init sets the business timezone. Only the first call has an effect.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

func Location() *time.Location {
	if err := Init(""); err != nil {
		panic(fmt.Sprintf("biztime: failed to load default timezone: %v", err))
	}
	if bizLocation == nil {
		return time.UTC
	}
	return bizLocation
}

func NowUTC() time.Time {
	return time.Now().UTC()
}

// IsEpoch reports whether t is the zero sentinel (or the Go zero time).
func IsEpoch(t time.Time) bool {
	return t.IsZero() || t.Equal(Epoch)
}

// ParseDate parses YYYY-MM-DD as a calendar date at UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// FromUnix converts a unix timestamp to UTC, mapping 0 to Epoch.
func FromUnix(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}
