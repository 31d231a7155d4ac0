package readstore

import (
	"context"
	"time"

	"delivery-admin/internal/infra"
	"delivery-admin/internal/infra/pgsql"
	"delivery-admin/internal/usecase/queries"
)

type ReservationReadQueries interface {
	GetReservationView(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.ReservationView, error)
	ListReservationViews(ctx context.Context, db pgsql.DBTX, arg pgsql.ListReservationsParams) ([]pgsql.ReservationView, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      pgsql.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db pgsql.DBTX) *ReservationReadStore {
	return &ReservationReadStore{queries: queries, db: db}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id int64) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationView(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reservation", err)
	}
	return reservationView(row), nil
}

func (r *ReservationReadStore) FindFirstPage(ctx context.Context, customerID *int64, limit int32) ([]*queries.ReservationView, error) {
	return r.list(ctx, pgsql.ListReservationsParams{CustomerID: customerID, Limit: uint64(limit)})
}

func (r *ReservationReadStore) FindKeyset(ctx context.Context, customerID *int64, lastReservedAt time.Time, lastID int64, limit int32) ([]*queries.ReservationView, error) {
	return r.list(ctx, pgsql.ListReservationsParams{
		CustomerID:      customerID,
		AfterReservedAt: &lastReservedAt,
		AfterID:         lastID,
		Limit:           uint64(limit),
	})
}

func (r *ReservationReadStore) list(ctx context.Context, params pgsql.ListReservationsParams) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationViews(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	views := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		views = append(views, reservationView(row))
	}
	return views, nil
}
