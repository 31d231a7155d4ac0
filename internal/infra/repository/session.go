package repository

import (
	"context"
	"time"

	"delivery-admin/internal/domain/activesession"
	"delivery-admin/internal/infra"
	"delivery-admin/internal/infra/pgsql"
	"delivery-admin/internal/infra/repository/converter"
)

type SessionWriteQueries interface {
	CreateActiveSession(ctx context.Context, db pgsql.DBTX, customerID int64, startedAt, expiresAt time.Time) (int64, error)
	EndActiveSession(ctx context.Context, db pgsql.DBTX, id int64, endedAt time.Time) error
	CloseExpiredSessions(ctx context.Context, db pgsql.DBTX, customerID int64, now time.Time) (int64, error)
	GetActiveSession(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.ActiveSession, error)
	GetOpenSessionForUpdate(ctx context.Context, db pgsql.DBTX, customerID int64) (pgsql.ActiveSession, error)
}

type SessionRepository struct {
	queries SessionWriteQueries
	db      pgsql.DBTX
}

func NewSessionRepository(queries SessionWriteQueries, db pgsql.DBTX) *SessionRepository {
	return &SessionRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SessionRepository) Create(ctx context.Context, s *activesession.Session) (int64, error) {
	id, err := r.queries.CreateActiveSession(ctx, r.db, s.CustomerID(), s.StartedAt(), s.ExpiresAt())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create active session", err)
	}
	return id, nil
}

func (r *SessionRepository) FindByID(ctx context.Context, id int64) (*activesession.Session, error) {
	row, err := r.queries.GetActiveSession(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get active session", err)
	}
	return converter.SessionFromRow(row), nil
}

// FindOpenForUpdate returns the customer's open session, locked, or a
// NOT_FOUND error when there is none.
func (r *SessionRepository) FindOpenForUpdate(ctx context.Context, customerID int64) (*activesession.Session, error) {
	row, err := r.queries.GetOpenSessionForUpdate(ctx, r.db, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get open session", err)
	}
	return converter.SessionFromRow(row), nil
}

func (r *SessionRepository) CloseExpired(ctx context.Context, customerID int64, now time.Time) error {
	if _, err := r.queries.CloseExpiredSessions(ctx, r.db, customerID, now); err != nil {
		return infra.WrapRepoErr("failed to close expired sessions", err)
	}
	return nil
}

// SaveEnd persists s.EndedAt(). Sessions without an end are left as they are.
func (r *SessionRepository) SaveEnd(ctx context.Context, s *activesession.Session) error {
	if s.EndedAt() == nil {
		return nil
	}
	if err := r.queries.EndActiveSession(ctx, r.db, s.ID(), *s.EndedAt()); err != nil {
		return infra.WrapRepoErr("failed to end active session", err)
	}
	return nil
}
