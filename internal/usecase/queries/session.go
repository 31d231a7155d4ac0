package queries

import (
	"context"
	"time"

	"delivery-admin/internal/pkg/clock"
)

type SessionReadStore interface {
	FindByID(ctx context.Context, id int64, now time.Time) (*SessionView, error)
	ListActive(ctx context.Context, now time.Time) ([]*SessionView, error)
}

type SessionQueries interface {
	GetByID(ctx context.Context, id int64) (*SessionView, error)
	ListActive(ctx context.Context) ([]*SessionView, error)
}

type sessionQueriesImpl struct {
	repo  SessionReadStore
	clock clock.Clock
}

func NewSessionQueries(repo SessionReadStore, clk clock.Clock) SessionQueries {
	return &sessionQueriesImpl{repo: repo, clock: clk}
}

func (q *sessionQueriesImpl) GetByID(ctx context.Context, id int64) (*SessionView, error) {
	v, err := q.repo.FindByID(ctx, id, q.clock.Now())
	if err != nil {
		return nil, notFound(err, ErrSessionNotFound)
	}
	return v, nil
}

func (q *sessionQueriesImpl) ListActive(ctx context.Context) ([]*SessionView, error) {
	return q.repo.ListActive(ctx, q.clock.Now())
}
