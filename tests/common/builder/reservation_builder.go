//go:build unit || e2e

package builder

import (
	"time"

	"delivery-admin/internal/domain/availability"
	"delivery-admin/internal/domain/reservation"
	reqdto "delivery-admin/internal/handler/dto/request"
	"delivery-admin/internal/usecase/queries"
)

type ReservationBuilder struct {
	ID                int64
	CustomerID        int64
	DeliveryAddressID int64
	DeliverySlotID    int64
	ReservationDate   string
	ReservationTime   string
	Status            reservation.Status
	CancelledAt       *time.Time
	Version           int64
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:                11,
		CustomerID:        1,
		DeliveryAddressID: 5,
		DeliverySlotID:    7,
		ReservationDate:   "2025-03-11",
		ReservationTime:   "10:30",
		Status:            reservation.StatusConfirmed,
		Version:           1,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithStatus(s reservation.Status) *ReservationBuilder {
	b.Status = s
	return b
}

func (b *ReservationBuilder) reservedAt() time.Time {
	d, _ := time.Parse(time.DateOnly, b.ReservationDate)
	c := availability.MustParseClock(b.ReservationTime)
	return d.Add(time.Duration(c.Minutes()) * time.Minute)
}

// BuildRequest is the domain request for Factory.Place and Reschedule.
func (b *ReservationBuilder) BuildRequest() reservation.Request {
	d, _ := time.Parse(time.DateOnly, b.ReservationDate)
	return reservation.Request{
		Date:   d,
		Time:   availability.MustParseClock(b.ReservationTime),
		Status: b.Status,
	}
}

func (b *ReservationBuilder) BuildStored() *reservation.Reservation {
	return reservation.ReconstructReservation(b.ID, b.CustomerID, b.DeliveryAddressID, b.DeliverySlotID,
		b.reservedAt(), b.Status, b.CancelledAt, b.Version)
}

func (b *ReservationBuilder) BuildRequestDTO() reqdto.ReservationRequest {
	return reqdto.ReservationRequest{
		CustomerID:        b.CustomerID,
		DeliveryAddressID: b.DeliveryAddressID,
		DeliverySlotID:    b.DeliverySlotID,
		ReservationDate:   b.ReservationDate,
		ReservationTime:   b.ReservationTime,
		Status:            b.Status.String(),
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:                b.ID,
		CustomerID:        b.CustomerID,
		CustomerName:      "Ana Pérez",
		DeliveryAddressID: b.DeliveryAddressID,
		Street:            "Av. Providencia 1234",
		DeliverySlotID:    b.DeliverySlotID,
		ReservationDate:   b.ReservationDate,
		ReservationTime:   b.ReservationTime,
		WindowStart:       "09:00",
		WindowEnd:         "13:00",
		Status:            b.Status.String(),
		ReservedAt:        b.reservedAt(),
		CancelledAt:       b.CancelledAt,
		Version:           b.Version,
	}
}
