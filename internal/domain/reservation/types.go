package reservation

import (
	"errors"
	"strings"
)

var ErrInvalidStatus = errors.New("status must be CONFIRMED, CANCELLED or EXPIRED")

type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusExpired   Status = "EXPIRED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusExpired:
		return true
	default:
		return false
	}
}

// ParseStatus maps blank input to CONFIRMED.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if st == "" {
		return StatusConfirmed, nil
	}
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
