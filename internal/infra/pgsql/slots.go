package pgsql

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
)

var slotColumns = []string{
	"s.id", "s.time_slot_template_id", "s.delivery_date", "s.delivery_cost_cents",
	"s.max_capacity", "s.reserved_count", "s.is_active",
}

type DeliverySlotParams struct {
	TimeSlotTemplateID int64
	DeliveryDate       time.Time
	DeliveryCostCents  int64
	MaxCapacity        int
	ReservedCount      int
	IsActive           bool
}

func (q *Queries) CreateDeliverySlot(ctx context.Context, db DBTX, arg DeliverySlotParams) (int64, error) {
	return insertReturningID(ctx, db, psql.Insert("delivery_slots").
		Columns("time_slot_template_id", "delivery_date", "delivery_cost_cents", "max_capacity", "reserved_count", "is_active").
		Values(arg.TimeSlotTemplateID, arg.DeliveryDate, arg.DeliveryCostCents, arg.MaxCapacity, arg.ReservedCount, arg.IsActive))
}

func (q *Queries) UpdateDeliverySlot(ctx context.Context, db DBTX, id int64, arg DeliverySlotParams) error {
	return execAffecting(ctx, db, psql.Update("delivery_slots").
		SetMap(map[string]any{
			"time_slot_template_id": arg.TimeSlotTemplateID,
			"delivery_date":         arg.DeliveryDate,
			"delivery_cost_cents":   arg.DeliveryCostCents,
			"max_capacity":          arg.MaxCapacity,
			"reserved_count":        arg.ReservedCount,
			"is_active":             arg.IsActive,
		}).
		Where(squirrel.Eq{"id": id}))
}

func (q *Queries) DeleteDeliverySlot(ctx context.Context, db DBTX, id int64) error {
	return execAffecting(ctx, db, psql.Delete("delivery_slots").Where(squirrel.Eq{"id": id}))
}

func (q *Queries) GetDeliverySlot(ctx context.Context, db DBTX, id int64) (DeliverySlot, error) {
	return selectOne[DeliverySlot](ctx, db, psql.Select(slotColumns...).
		From("delivery_slots s").
		Where(squirrel.Eq{"s.id": id}))
}

// LockDeliverySlot reads the slot row with FOR UPDATE; it must run inside a transaction.
func (q *Queries) LockDeliverySlot(ctx context.Context, db DBTX, id int64) (DeliverySlot, error) {
	return selectOne[DeliverySlot](ctx, db, psql.Select(slotColumns...).
		From("delivery_slots s").
		Where(squirrel.Eq{"s.id": id}).
		Suffix("FOR UPDATE"))
}

// CountConfirmedReservations counts CONFIRMED reservations of the slot,
// leaving out excludeID (0 excludes nothing).
func (q *Queries) CountConfirmedReservations(ctx context.Context, db DBTX, slotID, excludeID int64) (int, error) {
	query, args, err := psql.Select("count(*)").
		From("reservations").
		Where(squirrel.Eq{"delivery_slot_id": slotID, "status": "CONFIRMED"}).
		Where(squirrel.NotEq{"id": excludeID}).
		ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	if err := db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// SyncReservedCount sets reserved_count to the number of CONFIRMED reservations.
func (q *Queries) SyncReservedCount(ctx context.Context, db DBTX, slotID int64) error {
	_, err := exec(ctx, db, psql.Update("delivery_slots").
		Set("reserved_count", squirrel.Expr(
			"(SELECT count(*) FROM reservations r WHERE r.delivery_slot_id = ? AND r.status = 'CONFIRMED')", slotID)).
		Where(squirrel.Eq{"id": slotID}))
	return err
}

func slotViewQuery() squirrel.SelectBuilder {
	return psql.Select(append(slotColumns, "t.start_time", "t.end_time")...).
		From("delivery_slots s").
		Join("time_slot_templates t ON t.id = s.time_slot_template_id")
}

func (q *Queries) GetDeliverySlotView(ctx context.Context, db DBTX, id int64) (DeliverySlotView, error) {
	return selectOne[DeliverySlotView](ctx, db, slotViewQuery().Where(squirrel.Eq{"s.id": id}))
}

func (q *Queries) ListDeliverySlotViews(ctx context.Context, db DBTX) ([]DeliverySlotView, error) {
	return selectAll[DeliverySlotView](ctx, db, slotViewQuery().OrderBy("s.delivery_date", "s.time_slot_template_id", "s.id"))
}

func (q *Queries) ListDeliverySlots(ctx context.Context, db DBTX) ([]DeliverySlot, error) {
	return selectAll[DeliverySlot](ctx, db, psql.Select(slotColumns...).
		From("delivery_slots s").
		OrderBy("s.delivery_date", "s.time_slot_template_id", "s.id"))
}
