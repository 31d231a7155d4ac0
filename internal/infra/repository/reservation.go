package repository

import (
	"context"

	"delivery-admin/internal/domain/reservation"
	"delivery-admin/internal/infra"
	"delivery-admin/internal/infra/pgsql"
	"delivery-admin/internal/infra/repository/converter"
	"delivery-admin/internal/pkg/pgconv"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db pgsql.DBTX, arg pgsql.ReservationParams) (int64, error)
	UpdateReservation(ctx context.Context, db pgsql.DBTX, id, expectedVersion int64, arg pgsql.ReservationParams) error
	DeleteReservation(ctx context.Context, db pgsql.DBTX, id int64) error
	GetReservation(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.Reservation, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      pgsql.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db pgsql.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) FindByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservation(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reservation", err)
	}
	return converter.ReservationFromRow(row), nil
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (int64, error) {
	id, err := r.queries.CreateReservation(ctx, r.db, converter.ReservationToParams(res))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

// Update writes res when the stored version still matches res.Version().
// A lost race is reported as KindConflict.
func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	err := r.queries.UpdateReservation(ctx, r.db, res.ID(), res.Version(), converter.ReservationToParams(res))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("reservation was modified concurrently", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id int64) error {
	if err := r.queries.DeleteReservation(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	return nil
}
