package order

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

// CanTransitionTo allows only pending -> approved and pending -> rejected.
func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusPending && (next == StatusApproved || next == StatusRejected)
}
