package booking

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusCancelled, StatusExpired:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status permits no further transition.
func (s Status) IsTerminal() bool {
	return s.IsValid() && s != StatusActive
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
