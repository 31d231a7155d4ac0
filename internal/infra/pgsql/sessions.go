package pgsql

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
)

var sessionColumns = []string{"id", "customer_id", "started_at", "expires_at", "ended_at"}

func (q *Queries) CreateActiveSession(ctx context.Context, db DBTX, customerID int64, startedAt, expiresAt time.Time) (int64, error) {
	return insertReturningID(ctx, db, psql.Insert("active_sessions").
		Columns("customer_id", "started_at", "expires_at").
		Values(customerID, startedAt, expiresAt))
}

func (q *Queries) EndActiveSession(ctx context.Context, db DBTX, id int64, endedAt time.Time) error {
	return execAffecting(ctx, db, psql.Update("active_sessions").
		Set("ended_at", endedAt).
		Where(squirrel.Eq{"id": id}))
}

// CloseExpiredSessions stamps ended_at = expires_at on the customer's open
// sessions that ran out before now.
func (q *Queries) CloseExpiredSessions(ctx context.Context, db DBTX, customerID int64, now time.Time) (int64, error) {
	return exec(ctx, db, psql.Update("active_sessions").
		Set("ended_at", squirrel.Expr("expires_at")).
		Where(squirrel.Eq{"customer_id": customerID, "ended_at": nil}).
		Where(squirrel.LtOrEq{"expires_at": now}))
}

func (q *Queries) GetActiveSession(ctx context.Context, db DBTX, id int64) (ActiveSession, error) {
	return selectOne[ActiveSession](ctx, db, psql.Select(sessionColumns...).
		From("active_sessions").
		Where(squirrel.Eq{"id": id}))
}

// GetOpenSessionForUpdate locks the customer's open session, if any.
func (q *Queries) GetOpenSessionForUpdate(ctx context.Context, db DBTX, customerID int64) (ActiveSession, error) {
	return selectOne[ActiveSession](ctx, db, psql.Select(sessionColumns...).
		From("active_sessions").
		Where(squirrel.Eq{"customer_id": customerID, "ended_at": nil}).
		OrderBy("started_at DESC").
		Limit(1).
		Suffix("FOR UPDATE"))
}

func (q *Queries) ListActiveSessions(ctx context.Context, db DBTX, now time.Time) ([]ActiveSession, error) {
	return selectAll[ActiveSession](ctx, db, psql.Select(sessionColumns...).
		From("active_sessions").
		Where(squirrel.Eq{"ended_at": nil}).
		Where(squirrel.Gt{"expires_at": now}).
		OrderBy("started_at DESC", "id DESC"))
}
