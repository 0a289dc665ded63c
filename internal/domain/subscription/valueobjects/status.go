package valueobjects

// SubscriptionStatus mirrors the payment processor's subscription status.
type SubscriptionStatus string

const (
	StatusIncomplete SubscriptionStatus = "incomplete"
	StatusTrialing   SubscriptionStatus = "trialing"
	StatusActive     SubscriptionStatus = "active"
	StatusPastDue    SubscriptionStatus = "past_due"
	StatusCanceled   SubscriptionStatus = "canceled"
	StatusUnpaid     SubscriptionStatus = "unpaid"
	StatusPaused     SubscriptionStatus = "paused"
)

var transitions = map[SubscriptionStatus][]SubscriptionStatus{
	StatusIncomplete: {StatusActive},
	StatusTrialing:   {StatusActive},
	StatusActive:     {StatusPastDue, StatusCanceled, StatusPaused},
	StatusPaused:     {StatusActive},
	StatusPastDue:    {StatusActive, StatusCanceled, StatusUnpaid},
	StatusCanceled:   {},
	StatusUnpaid:     {},
}

func (s SubscriptionStatus) String() string {
	return string(s)
}

func (s SubscriptionStatus) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// GrantsAccess reports whether the status keeps the store open.
func (s SubscriptionStatus) GrantsAccess() bool {
	return s == StatusActive || s == StatusTrialing
}

func (s SubscriptionStatus) IsTerminal() bool {
	return s == StatusCanceled || s == StatusUnpaid
}

func (s SubscriptionStatus) CanTransitionTo(target SubscriptionStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// ParseStatus maps a processor status string, falling back to incomplete for
// values this system does not track (incomplete_expired and the like).
func ParseStatus(s string) SubscriptionStatus {
	status := SubscriptionStatus(s)
	if status.IsValid() {
		return status
	}
	if s == "incomplete_expired" {
		return StatusCanceled
	}
	return StatusIncomplete
}
