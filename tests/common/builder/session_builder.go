//go:build unit || e2e

package builder

import (
	"time"

	"delivery-admin/internal/domain/activesession"
	"delivery-admin/internal/usecase/queries"
)

type SessionBuilder struct {
	ID         int64
	CustomerID int64
	StartedAt  time.Time
	Lifetime   time.Duration
	EndedAt    *time.Time
}

func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{
		ID:         42,
		CustomerID: 1,
		StartedAt:  time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		Lifetime:   activesession.DefaultDuration,
	}
}

func (b *SessionBuilder) With(mutate func(*SessionBuilder)) *SessionBuilder {
	mutate(b)
	return b
}

func (b *SessionBuilder) ExpiresAt() time.Time {
	return b.StartedAt.Add(b.Lifetime)
}

func (b *SessionBuilder) BuildStored() *activesession.Session {
	return activesession.Reconstruct(b.ID, b.CustomerID, b.StartedAt, b.ExpiresAt(), b.EndedAt)
}

func (b *SessionBuilder) BuildView(now time.Time) *queries.SessionView {
	return &queries.SessionView{
		ID:         b.ID,
		CustomerID: b.CustomerID,
		StartedAt:  b.StartedAt,
		ExpiresAt:  b.ExpiresAt(),
		EndedAt:    b.EndedAt,
		Active:     b.EndedAt == nil && b.ExpiresAt().After(now),
	}
}

func (b *SessionBuilder) BuildResult(c *queries.SessionCustomer, token string) *queries.SessionResult {
	res := &queries.SessionResult{
		Session: *b.BuildView(b.StartedAt),
		Token:   token,
	}
	if c != nil {
		res.Customer = *c
	}
	return res
}
