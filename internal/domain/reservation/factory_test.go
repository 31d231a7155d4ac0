//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"delivery-admin/internal/domain/availability"
	"delivery-admin/internal/domain/reservation"
	"delivery-admin/internal/pkg/clock"
	"delivery-admin/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

// placement is a customer placing into slot 7 through zone 3.
func placement() reservation.Placement {
	addr := builder.NewAddressBuilder().WithZone(3).BuildSnapshot()
	slot := builder.NewSlotBuilder().BuildSnapshot()
	zone := builder.NewZoneBuilder().BuildSnapshot()
	return reservation.Placement{
		CustomerID: addr.CustomerID,
		Address:    *addr,
		Slot:       *slot,
		Template:   *builder.NewTemplateBuilder().BuildSnapshot(),
		Allowed: availability.Resolve(availability.Input{
			Address: addr,
			Zones:   []availability.Zone{*zone},
			Slots:   []availability.Slot{*slot},
		}, availability.Policy{}),
	}
}

func TestFactory_Place(t *testing.T) {
	factory := reservation.NewFactory(clock.NewMockClock(now))

	t.Run("basic success case", func(t *testing.T) {
		r, err := factory.Place(placement(), builder.NewReservationBuilder().BuildRequest())

		require.NoError(t, err)
		assert.Equal(t, reservation.StatusConfirmed, r.Status())
		assert.Equal(t, time.Date(2025, 3, 11, 10, 30, 0, 0, time.UTC), r.ReservedAt())
		assert.Equal(t, "10:30", r.ReservationTime().String())
		assert.Nil(t, r.CancelledAt())
	})

	tests := []struct {
		name   string
		place  func(*reservation.Placement)
		mutate func(*builder.ReservationBuilder)
		errIs  error
	}{
		{
			name:  "address of another customer",
			place: func(p *reservation.Placement) { p.CustomerID = 99 },
			errIs: reservation.ErrAddressNotOwned,
		},
		{
			name: "zone without slot",
			place: func(p *reservation.Placement) {
				p.Allowed = availability.Resolution{Slots: []availability.Slot{}}
			},
			errIs: reservation.ErrZoneWithoutSlot,
		},
		{
			name: "slot other than the zone's",
			place: func(p *reservation.Placement) {
				p.Slot.ID = 8
			},
			errIs: reservation.ErrSlotOutsideZone,
		},
		{
			name:   "date differs from the slot",
			mutate: func(b *builder.ReservationBuilder) { b.ReservationDate = "2025-03-12" },
			errIs:  reservation.ErrDateMismatch,
		},
		{
			name:   "time before the window",
			mutate: func(b *builder.ReservationBuilder) { b.ReservationTime = "08:59" },
			errIs:  reservation.ErrTimeOutsideWindow,
		},
		{
			name:   "window end is inclusive",
			mutate: func(b *builder.ReservationBuilder) { b.ReservationTime = "13:00" },
		},
		{
			name:  "slot is full",
			place: func(p *reservation.Placement) { p.ConfirmedOthers = p.Slot.MaxCapacity },
			errIs: reservation.ErrNoCapacity,
		},
		{
			name:   "cancelled reservations ignore capacity",
			place:  func(p *reservation.Placement) { p.ConfirmedOthers = p.Slot.MaxCapacity },
			mutate: func(b *builder.ReservationBuilder) { b.WithStatus(reservation.StatusCancelled) },
		},
		{
			name:   "unknown status",
			mutate: func(b *builder.ReservationBuilder) { b.WithStatus("PENDING") },
			errIs:  reservation.ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := placement()
			if tt.place != nil {
				tt.place(&p)
			}
			b := builder.NewReservationBuilder()
			if tt.mutate != nil {
				b.With(tt.mutate)
			}

			r, err := factory.Place(p, b.BuildRequest())

			if tt.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, r)
				return
			}
			require.Nil(t, r)
			require.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestFactory_Reschedule(t *testing.T) {
	clk := clock.NewMockClock(now)
	factory := reservation.NewFactory(clk)

	t.Run("cancelling stamps cancelledAt once", func(t *testing.T) {
		r := builder.NewReservationBuilder().BuildStored()
		req := builder.NewReservationBuilder().WithStatus(reservation.StatusCancelled).BuildRequest()

		require.NoError(t, factory.Reschedule(r, placement(), req))
		require.NotNil(t, r.CancelledAt())
		assert.Equal(t, now, *r.CancelledAt())

		clk.Add(time.Hour)
		require.NoError(t, factory.Reschedule(r, placement(), req))
		assert.Equal(t, now, *r.CancelledAt())
	})

	t.Run("confirming again clears cancelledAt", func(t *testing.T) {
		cancelled := now
		r := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.Status = reservation.StatusCancelled
			b.CancelledAt = &cancelled
		}).BuildStored()

		require.NoError(t, factory.Reschedule(r, placement(), builder.NewReservationBuilder().BuildRequest()))
		assert.Nil(t, r.CancelledAt())
		assert.True(t, r.IsConfirmed())
	})

	t.Run("failure leaves the reservation unchanged", func(t *testing.T) {
		r := builder.NewReservationBuilder().BuildStored()
		before := r.ReservedAt()
		req := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.ReservationTime = "20:00" }).BuildRequest()

		err := factory.Reschedule(r, placement(), req)

		require.ErrorIs(t, err, reservation.ErrTimeOutsideWindow)
		assert.Equal(t, before, r.ReservedAt())
		assert.Equal(t, int64(1), r.Version())
	})

	t.Run("held slot outside the zone is rejected even when preserved", func(t *testing.T) {
		p := placement()
		p.Slot.ID = 8
		p.Allowed = availability.Resolve(availability.Input{
			Address:  &p.Address,
			Zones:    []availability.Zone{*builder.NewZoneBuilder().BuildSnapshot()},
			Slots:    []availability.Slot{*builder.NewSlotBuilder().BuildSnapshot(), p.Slot},
			Selected: &p.Slot.ID,
		}, availability.Policy{PreserveStale: true})
		require.True(t, p.Allowed.Allows(8))
		r := builder.NewReservationBuilder().BuildStored()

		err := factory.Reschedule(r, p, builder.NewReservationBuilder().BuildRequest())

		require.ErrorIs(t, err, reservation.ErrSlotOutsideZone)
		assert.Equal(t, int64(7), r.DeliverySlotID())
	})
}

func TestParseStatus(t *testing.T) {
	s, err := reservation.ParseStatus(" cancelled ")
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusCancelled, s)

	s, err = reservation.ParseStatus("")
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusConfirmed, s)

	_, err = reservation.ParseStatus("pending")
	require.ErrorIs(t, err, reservation.ErrInvalidStatus)
}
