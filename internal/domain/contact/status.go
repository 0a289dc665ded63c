package contact

type Status string

const (
	StatusCreated   Status = "created"
	StatusPending   Status = "pending"
	StatusProcessed Status = "processed"
	StatusRejected  Status = "rejected"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusCreated, StatusPending, StatusProcessed, StatusRejected:
		return true
	}
	return false
}

// checkTransition allows any move except returning to created once left.
func checkTransition(from, to Status) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	if to == StatusCreated && from != StatusCreated {
		return ErrCannotReturnToCreated
	}
	return nil
}
