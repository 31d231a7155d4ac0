package repository

import (
	"context"

	"delivery-admin/internal/domain/deliveryslot"
	"delivery-admin/internal/infra"
	"delivery-admin/internal/infra/pgsql"
	"delivery-admin/internal/infra/repository/converter"
)

type SlotWriteQueries interface {
	CreateDeliverySlot(ctx context.Context, db pgsql.DBTX, arg pgsql.DeliverySlotParams) (int64, error)
	UpdateDeliverySlot(ctx context.Context, db pgsql.DBTX, id int64, arg pgsql.DeliverySlotParams) error
	DeleteDeliverySlot(ctx context.Context, db pgsql.DBTX, id int64) error
	GetDeliverySlot(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.DeliverySlot, error)
	LockDeliverySlot(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.DeliverySlot, error)
	CountConfirmedReservations(ctx context.Context, db pgsql.DBTX, slotID, excludeID int64) (int, error)
	SyncReservedCount(ctx context.Context, db pgsql.DBTX, slotID int64) error
}

type SlotRepository struct {
	queries SlotWriteQueries
	db      pgsql.DBTX
}

func NewSlotRepository(queries SlotWriteQueries, db pgsql.DBTX) *SlotRepository {
	return &SlotRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SlotRepository) FindByID(ctx context.Context, id int64) (*deliveryslot.Slot, error) {
	row, err := r.queries.GetDeliverySlot(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get delivery slot", err)
	}
	return r.toDomain(row)
}

// LockByID loads the slot and holds its row lock until the transaction ends.
func (r *SlotRepository) LockByID(ctx context.Context, id int64) (*deliveryslot.Slot, error) {
	row, err := r.queries.LockDeliverySlot(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock delivery slot", err)
	}
	return r.toDomain(row)
}

func (r *SlotRepository) Create(ctx context.Context, s *deliveryslot.Slot) (int64, error) {
	id, err := r.queries.CreateDeliverySlot(ctx, r.db, converter.SlotToParams(s))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create delivery slot", err)
	}
	return id, nil
}

func (r *SlotRepository) Update(ctx context.Context, s *deliveryslot.Slot) error {
	if err := r.queries.UpdateDeliverySlot(ctx, r.db, s.ID(), converter.SlotToParams(s)); err != nil {
		return infra.WrapRepoErr("failed to update delivery slot", err)
	}
	return nil
}

func (r *SlotRepository) Delete(ctx context.Context, id int64) error {
	if err := r.queries.DeleteDeliverySlot(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to delete delivery slot", err)
	}
	return nil
}

func (r *SlotRepository) CountConfirmed(ctx context.Context, slotID, excludeReservationID int64) (int, error) {
	n, err := r.queries.CountConfirmedReservations(ctx, r.db, slotID, excludeReservationID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count confirmed reservations", err)
	}
	return n, nil
}

func (r *SlotRepository) SyncReservedCount(ctx context.Context, slotID int64) error {
	if err := r.queries.SyncReservedCount(ctx, r.db, slotID); err != nil {
		return infra.WrapRepoErr("failed to sync reserved count", err)
	}
	return nil
}

func (r *SlotRepository) toDomain(row pgsql.DeliverySlot) (*deliveryslot.Slot, error) {
	s, err := converter.SlotFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid delivery slot row", err, infra.KindDBFailure)
	}
	return s, nil
}
