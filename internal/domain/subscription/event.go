package subscription

type EventType string

const (
	EventSubscriptionCreated EventType = "customer.subscription.created"
	EventSubscriptionUpdated EventType = "customer.subscription.updated"
	EventSubscriptionDeleted EventType = "customer.subscription.deleted"
)

// ProcessorEvent is a verified webhook delivery. State is zero for event
// types that do not carry a subscription.
type ProcessorEvent struct {
	ID         string
	Type       EventType
	CustomerID string
	State      ProcessorState
}
