// Package session keeps the console's view of its active session: whether a
// cached login is still usable, and for how long.
package session

import (
	"context"
	"time"

	"delivery-admin/internal/pkg/errs"
)

// DefaultRevalidateInterval is how often a live session is checked remotely.
const DefaultRevalidateInterval = 10 * time.Second

var (
	ErrInvalidCustomer = errs.New("customer is required")
	ErrMalformedRecord = errs.New("cached session record is malformed")
)

type State int

const (
	StateChecking State = iota
	StateAuthenticated
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

type Customer struct {
	ID       int64  `json:"id" yaml:"id"`
	FullName string `json:"fullName" yaml:"fullName"`
	Email    string `json:"email" yaml:"email"`
}

// Record is what survives between console invocations.
type Record struct {
	Customer  Customer  `json:"customer" yaml:"customer"`
	SessionID int64     `json:"sessionId" yaml:"sessionId"`
	Token     string    `json:"token" yaml:"token"`
	ExpiresAt time.Time `json:"expiresAt" yaml:"expiresAt"`
}

// Usable reports whether r is complete and has not expired at now.
func (r *Record) Usable(now time.Time) bool {
	if r == nil || r.Customer.ID <= 0 || r.SessionID <= 0 || r.ExpiresAt.IsZero() {
		return false
	}
	return r.ExpiresAt.After(now)
}

// Store persists the record. Load returns (nil, nil) when nothing is cached and
// ErrMalformedRecord when the cached bytes cannot be decoded.
type Store interface {
	Load(ctx context.Context) (*Record, error)
	Save(ctx context.Context, rec Record) error
	Clear(ctx context.Context) error
}

// Remote is the backend side of the session protocol.
type Remote interface {
	Login(ctx context.Context, customerID int64) (*Record, error)
	Validate(ctx context.Context, sessionID int64) error
	Close(ctx context.Context, sessionID int64) error
}

// Change is one state transition. Customer is set while authenticated.
type Change struct {
	From     State
	To       State
	Customer *Customer
	At       time.Time
}
