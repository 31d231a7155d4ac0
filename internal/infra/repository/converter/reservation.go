package converter

import (
	"delivery-admin/internal/domain/activesession"
	"delivery-admin/internal/domain/reservation"
	"delivery-admin/internal/infra/pgsql"
)

func ReservationToParams(r *reservation.Reservation) pgsql.ReservationParams {
	return pgsql.ReservationParams{
		CustomerID:        r.CustomerID(),
		DeliveryAddressID: r.DeliveryAddressID(),
		DeliverySlotID:    r.DeliverySlotID(),
		ReservedAt:        r.ReservedAt(),
		Status:            r.Status().String(),
		CancelledAt:       r.CancelledAt(),
	}
}

func ReservationFromRow(row pgsql.Reservation) *reservation.Reservation {
	return reservation.ReconstructReservation(
		row.ID, row.CustomerID, row.DeliveryAddressID, row.DeliverySlotID,
		row.ReservedAt.UTC(),
		reservation.Status(row.Status),
		row.CancelledAt,
		row.Version,
	)
}

func SessionFromRow(row pgsql.ActiveSession) *activesession.Session {
	return activesession.Reconstruct(row.ID, row.CustomerID, row.StartedAt, row.ExpiresAt, row.EndedAt)
}
