package readstore

import (
	"context"
	"time"

	"delivery-admin/internal/infra"
	"delivery-admin/internal/infra/pgsql"
	"delivery-admin/internal/usecase/queries"
)

type SessionReadQueries interface {
	GetActiveSession(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.ActiveSession, error)
	ListActiveSessions(ctx context.Context, db pgsql.DBTX, now time.Time) ([]pgsql.ActiveSession, error)
}

type SessionReadStore struct {
	queries SessionReadQueries
	db      pgsql.DBTX
}

func NewSessionReadStore(queries SessionReadQueries, db pgsql.DBTX) *SessionReadStore {
	return &SessionReadStore{queries: queries, db: db}
}

func (r *SessionReadStore) FindByID(ctx context.Context, id int64, now time.Time) (*queries.SessionView, error) {
	row, err := r.queries.GetActiveSession(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get active session", err)
	}
	return sessionView(row, now), nil
}

func (r *SessionReadStore) ListActive(ctx context.Context, now time.Time) ([]*queries.SessionView, error) {
	rows, err := r.queries.ListActiveSessions(ctx, r.db, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active sessions", err)
	}
	views := make([]*queries.SessionView, 0, len(rows))
	for _, row := range rows {
		views = append(views, sessionView(row, now))
	}
	return views, nil
}

func sessionView(row pgsql.ActiveSession, now time.Time) *queries.SessionView {
	return &queries.SessionView{
		ID:         row.ID,
		CustomerID: row.CustomerID,
		StartedAt:  row.StartedAt,
		ExpiresAt:  row.ExpiresAt,
		EndedAt:    row.EndedAt,
		Active:     row.EndedAt == nil && row.ExpiresAt.After(now),
	}
}
