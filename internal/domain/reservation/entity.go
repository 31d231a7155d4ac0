package reservation

import (
	"errors"
	"time"

	"delivery-admin/internal/domain/availability"
)

var (
	ErrAddressNotOwned   = errors.New("delivery address does not belong to the customer")
	ErrZoneWithoutSlot   = errors.New("the address is not served by any active delivery slot")
	ErrSlotOutsideZone   = errors.New("delivery slot does not serve the address coverage zone")
	ErrDateMismatch      = errors.New("reservation date must match the delivery slot date")
	ErrTimeOutsideWindow = errors.New("reservation time must fall inside the delivery slot window")
	ErrNoCapacity        = errors.New("no capacity left in the selected delivery slot")
)

// Placement is everything a reservation is checked against, loaded under the
// slot lock.
type Placement struct {
	CustomerID      int64
	Address         availability.Address
	Slot            availability.Slot
	Template        availability.Template
	Allowed         availability.Resolution
	ConfirmedOthers int
}

type Request struct {
	Date   time.Time
	Time   availability.Clock
	Status Status
}

type Reservation struct {
	id                int64
	customerID        int64
	deliveryAddressID int64
	deliverySlotID    int64
	reservedAt        time.Time
	status            Status
	cancelledAt       *time.Time
	version           int64
}

func ReconstructReservation(
	id, customerID, deliveryAddressID, deliverySlotID int64,
	reservedAt time.Time,
	status Status,
	cancelledAt *time.Time,
	version int64,
) *Reservation {
	return &Reservation{
		id:                id,
		customerID:        customerID,
		deliveryAddressID: deliveryAddressID,
		deliverySlotID:    deliverySlotID,
		reservedAt:        reservedAt,
		status:            status,
		cancelledAt:       cancelledAt,
		version:           version,
	}
}

func (r *Reservation) apply(p Placement, req Request, now time.Time) error {
	if p.Address.CustomerID != p.CustomerID {
		return ErrAddressNotOwned
	}
	if p.Allowed.RequiredSlotID == nil {
		return ErrZoneWithoutSlot
	}
	if *p.Allowed.RequiredSlotID != p.Slot.ID {
		return ErrSlotOutsideZone
	}

	date := dateOnly(req.Date)
	if !date.Equal(dateOnly(p.Slot.DeliveryDate)) {
		return ErrDateMismatch
	}
	if !p.Template.Covers(req.Time) {
		return ErrTimeOutsideWindow
	}

	status := req.Status
	if status == "" {
		status = StatusConfirmed
	}
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	if status == StatusConfirmed && p.ConfirmedOthers+1 > p.Slot.MaxCapacity {
		return ErrNoCapacity
	}

	r.customerID = p.CustomerID
	r.deliveryAddressID = p.Address.ID
	r.deliverySlotID = p.Slot.ID
	r.reservedAt = date.Add(time.Duration(req.Time.Minutes()) * time.Minute)
	r.status = status
	if status == StatusCancelled {
		if r.cancelledAt == nil {
			t := now
			r.cancelledAt = &t
		}
	} else {
		r.cancelledAt = nil
	}
	return nil
}

func (r *Reservation) IsConfirmed() bool {
	return r.status == StatusConfirmed
}

// ReservationDate and ReservationTime split reservedAt back into the request shape.
func (r *Reservation) ReservationDate() time.Time {
	return dateOnly(r.reservedAt)
}

func (r *Reservation) ReservationTime() availability.Clock {
	t := r.reservedAt.UTC()
	return availability.Clock(t.Hour()*60 + t.Minute())
}

func (r *Reservation) ID() int64                { return r.id }
func (r *Reservation) CustomerID() int64        { return r.customerID }
func (r *Reservation) DeliveryAddressID() int64 { return r.deliveryAddressID }
func (r *Reservation) DeliverySlotID() int64    { return r.deliverySlotID }
func (r *Reservation) ReservedAt() time.Time    { return r.reservedAt }
func (r *Reservation) Status() Status           { return r.status }
func (r *Reservation) CancelledAt() *time.Time  { return r.cancelledAt }
func (r *Reservation) Version() int64           { return r.version }

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
