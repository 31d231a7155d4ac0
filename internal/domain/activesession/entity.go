package activesession

import (
	"errors"
	"time"
)

const DefaultDuration = 5 * time.Minute

var (
	ErrAlreadyActive   = errors.New("customer already has an active session")
	ErrSessionInactive = errors.New("session has ended or expired")
	ErrInvalidDuration = errors.New("session duration must be positive")
)

// Session is a fixed-lifetime login. It is never renewed; a new login is
// required once it expires or is ended.
type Session struct {
	id         int64
	customerID int64
	startedAt  time.Time
	expiresAt  time.Time
	endedAt    *time.Time
}

func Start(customerID int64, now time.Time, lifetime time.Duration) (*Session, error) {
	if lifetime <= 0 {
		return nil, ErrInvalidDuration
	}
	return &Session{
		customerID: customerID,
		startedAt:  now,
		expiresAt:  now.Add(lifetime),
	}, nil
}

func Reconstruct(id, customerID int64, startedAt, expiresAt time.Time, endedAt *time.Time) *Session {
	return &Session{
		id:         id,
		customerID: customerID,
		startedAt:  startedAt,
		expiresAt:  expiresAt,
		endedAt:    endedAt,
	}
}

func (s *Session) IsActive(now time.Time) bool {
	return s.endedAt == nil && s.expiresAt.After(now)
}

// CloseIfExpired stamps endedAt with expiresAt when the session ran out while
// still open. It reports whether anything changed.
func (s *Session) CloseIfExpired(now time.Time) bool {
	if s.endedAt != nil || s.expiresAt.After(now) {
		return false
	}
	t := s.expiresAt
	s.endedAt = &t
	return true
}

// End closes an open session at now. Ending twice keeps the first timestamp.
func (s *Session) End(now time.Time) bool {
	if s.endedAt != nil {
		return false
	}
	t := now
	s.endedAt = &t
	return true
}

func (s *Session) ID() int64            { return s.id }
func (s *Session) CustomerID() int64    { return s.customerID }
func (s *Session) StartedAt() time.Time { return s.startedAt }
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }
func (s *Session) EndedAt() *time.Time  { return s.endedAt }
