package recharge

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Method is the mobile-payment channel the user claims to have paid through.
type Method string

const (
	MethodBkash  Method = "bkash"
	MethodNagad  Method = "nagad"
	MethodRocket Method = "rocket"
	MethodCard   Method = "card"
)

func (m Method) String() string {
	return string(m)
}

func (m Method) IsValid() bool {
	switch m {
	case MethodBkash, MethodNagad, MethodRocket, MethodCard:
		return true
	default:
		return false
	}
}

func NewMethod(s string) (Method, error) {
	method := Method(s)
	if !method.IsValid() {
		return "", ErrInvalidMethod
	}
	return method, nil
}
