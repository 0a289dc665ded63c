package usecases

// StoreNotification tells a store owner about a new inquiry.
type StoreNotification struct {
	StoreName string
	ItemTitle string
	Name      string
	Email     string
	Phone     string
	Message   string
}

type AdminNotification struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Message string
}

type Notifier interface {
	NotifyStoreOwner(to string, n StoreNotification) error
	NotifyAdmin(n AdminNotification) error
}
