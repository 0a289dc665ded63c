package listing

import (
	"fmt"
	"strings"
)

type RatePeriod string

const (
	PeriodNight RatePeriod = "night"
	PeriodWeek  RatePeriod = "week"
	PeriodMonth RatePeriod = "month"
	PeriodOnce  RatePeriod = "once"
)

func (p RatePeriod) IsValid() bool {
	switch p {
	case PeriodNight, PeriodWeek, PeriodMonth, PeriodOnce:
		return true
	}
	return false
}

// Rate is a price of an item; Amount is in minor currency units.
type Rate struct {
	Record
	ItemID   uint
	Name     string
	Amount   int64
	Currency string
	Period   RatePeriod
}

func (r *Rate) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return fmt.Errorf("rate name is required")
	}
	if r.Amount < 0 {
		return fmt.Errorf("rate amount cannot be negative")
	}
	r.Currency = strings.ToLower(strings.TrimSpace(r.Currency))
	if len(r.Currency) != 3 {
		return fmt.Errorf("currency must be a 3-letter ISO code")
	}
	if !r.Period.IsValid() {
		return fmt.Errorf("invalid rate period: %s", r.Period)
	}
	return nil
}

type FeeKind string

const (
	FeeFixed   FeeKind = "fixed"
	FeePercent FeeKind = "percent"
)

type Fee struct {
	Record
	ItemID   uint
	Name     string
	Amount   int64
	Kind     FeeKind
	Required bool
}

func (f *Fee) Validate() error {
	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		return fmt.Errorf("fee name is required")
	}
	switch f.Kind {
	case FeeFixed:
		if f.Amount < 0 {
			return fmt.Errorf("fee amount cannot be negative")
		}
	case FeePercent:
		// basis points
		if f.Amount < 0 || f.Amount > 10000 {
			return fmt.Errorf("percent fee must be between 0 and 10000 basis points")
		}
	default:
		return fmt.Errorf("invalid fee kind: %s", f.Kind)
	}
	return nil
}
