package swap

import "errors"

const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

var (
	ErrNotFound          = errors.New("swap request not found")
	ErrMalformedRecord   = errors.New("malformed swap request record")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidTransition = errors.New("request is not pending")
)

// Request is a directed proposal stored at requests/{id}: trade one of the
// sender's offered skills for one of the recipient's wanted skills.
// Timestamp is the creation instant in epoch milliseconds.
type Request struct {
	ID           string `json:"-"`
	FromUserID   string `json:"fromUserId"`
	ToUserID     string `json:"toUserId"`
	OfferedSkill string `json:"offeredSkill"`
	WantedSkill  string `json:"wantedSkill"`
	Message      string `json:"message"`
	Status       string `json:"status"`
	Timestamp    int64  `json:"timestamp"`
}

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether the status admits no further transition.
func Terminal(s string) bool {
	return s == StatusAccepted || s == StatusRejected
}

// Transition validates a status change: only pending requests move, and only
// to accepted or rejected.
func (r *Request) Transition(newStatus string) error {
	if newStatus != StatusAccepted && newStatus != StatusRejected {
		return ErrInvalidStatus
	}
	if r.Status != StatusPending {
		return ErrInvalidTransition
	}
	r.Status = newStatus
	return nil
}
