package pgsql

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
)

var reservationColumns = []string{
	"r.id", "r.customer_id", "r.delivery_address_id", "r.delivery_slot_id",
	"r.reserved_at", "r.status", "r.cancelled_at", "r.version",
}

type ReservationParams struct {
	CustomerID        int64
	DeliveryAddressID int64
	DeliverySlotID    int64
	ReservedAt        time.Time
	Status            string
	CancelledAt       *time.Time
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg ReservationParams) (int64, error) {
	return insertReturningID(ctx, db, psql.Insert("reservations").
		Columns("customer_id", "delivery_address_id", "delivery_slot_id", "reserved_at", "status", "cancelled_at").
		Values(arg.CustomerID, arg.DeliveryAddressID, arg.DeliverySlotID, arg.ReservedAt, arg.Status, arg.CancelledAt))
}

// UpdateReservation bumps version and only matches the row at expectedVersion.
func (q *Queries) UpdateReservation(ctx context.Context, db DBTX, id, expectedVersion int64, arg ReservationParams) error {
	return execAffecting(ctx, db, psql.Update("reservations").
		SetMap(map[string]any{
			"customer_id":         arg.CustomerID,
			"delivery_address_id": arg.DeliveryAddressID,
			"delivery_slot_id":    arg.DeliverySlotID,
			"reserved_at":         arg.ReservedAt,
			"status":              arg.Status,
			"cancelled_at":        arg.CancelledAt,
			"version":             squirrel.Expr("version + 1"),
		}).
		Where(squirrel.Eq{"id": id, "version": expectedVersion}))
}

func (q *Queries) DeleteReservation(ctx context.Context, db DBTX, id int64) error {
	return execAffecting(ctx, db, psql.Delete("reservations").Where(squirrel.Eq{"id": id}))
}

func (q *Queries) GetReservation(ctx context.Context, db DBTX, id int64) (Reservation, error) {
	return selectOne[Reservation](ctx, db, psql.Select(reservationColumns...).
		From("reservations r").
		Where(squirrel.Eq{"r.id": id}))
}

type ListReservationsParams struct {
	CustomerID *int64
	// Keyset: rows strictly after (AfterReservedAt, AfterID) in descending order.
	AfterReservedAt *time.Time
	AfterID         int64
	Limit           uint64
}

func reservationViewQuery() squirrel.SelectBuilder {
	return psql.Select(append(reservationColumns,
		"c.full_name AS customer_name", "a.street", "s.delivery_date", "t.start_time", "t.end_time")...).
		From("reservations r").
		Join("customers c ON c.id = r.customer_id").
		Join("delivery_addresses a ON a.id = r.delivery_address_id").
		Join("delivery_slots s ON s.id = r.delivery_slot_id").
		Join("time_slot_templates t ON t.id = s.time_slot_template_id")
}

func (q *Queries) GetReservationView(ctx context.Context, db DBTX, id int64) (ReservationView, error) {
	return selectOne[ReservationView](ctx, db, reservationViewQuery().Where(squirrel.Eq{"r.id": id}))
}

func (q *Queries) ListReservationViews(ctx context.Context, db DBTX, arg ListReservationsParams) ([]ReservationView, error) {
	sb := reservationViewQuery().OrderBy("r.reserved_at DESC", "r.id DESC")
	if arg.CustomerID != nil {
		sb = sb.Where(squirrel.Eq{"r.customer_id": *arg.CustomerID})
	}
	if arg.AfterReservedAt != nil {
		sb = sb.Where("(r.reserved_at, r.id) < (?, ?)", *arg.AfterReservedAt, arg.AfterID)
	}
	if arg.Limit > 0 {
		sb = sb.Limit(arg.Limit)
	}
	return selectAll[ReservationView](ctx, db, sb)
}
