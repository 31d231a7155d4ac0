//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"delivery-admin/internal/domain/availability"
	"delivery-admin/internal/domain/reservation"
	"delivery-admin/internal/infra"
	"delivery-admin/internal/pkg/clock"
	"delivery-admin/internal/usecase/commands"
	"delivery-admin/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func reservationInput() commands.ReservationInput {
	b := builder.NewReservationBuilder()
	return commands.ReservationInput{
		CustomerID:        b.CustomerID,
		DeliveryAddressID: b.DeliveryAddressID,
		DeliverySlotID:    b.DeliverySlotID,
		ReservationDate:   b.ReservationDate,
		ReservationTime:   b.ReservationTime,
	}
}

// expectPlacementReads stubs the reads a placement makes for address 5 in
// zone 3, with the zone linked to zoneSlot.
func (f *fixture) expectPlacementReads(zoneSlot int64) {
	f.reads.EXPECT().CustomerByID(gomock.Any(), int64(1)).Return(builder.NewCustomerBuilder().BuildSnapshot(), nil)
	f.reads.EXPECT().AddressByID(gomock.Any(), int64(5)).Return(builder.NewAddressBuilder().WithZone(3).BuildSnapshot(), nil)
	f.reads.EXPECT().TemplateByID(gomock.Any(), int64(1)).Return(builder.NewTemplateBuilder().BuildSnapshot(), nil)
	f.reads.EXPECT().ZoneByID(gomock.Any(), int64(3)).Return(builder.NewZoneBuilder().WithSlot(&zoneSlot).BuildSnapshot(), nil)
}

func slotWithID(id int64) *builder.SlotBuilder {
	return builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) { b.ID = id })
}

func TestReservationCommands_Create(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC))

	t.Run("success locks, inserts and resyncs the slot", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithin()
		gomock.InOrder(
			f.slots.EXPECT().LockByID(gomock.Any(), int64(7)).Return(slotWithID(7).BuildStored(), nil),
			f.slots.EXPECT().CountConfirmed(gomock.Any(), int64(7), int64(0)).Return(3, nil),
			f.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, r *reservation.Reservation) (int64, error) {
					assert.Equal(t, time.Date(2025, 3, 11, 10, 30, 0, 0, time.UTC), r.ReservedAt())
					assert.Equal(t, reservation.StatusConfirmed, r.Status())
					return 11, nil
				}),
			f.slots.EXPECT().SyncReservedCount(gomock.Any(), int64(7)).Return(nil),
		)
		f.expectPlacementReads(7)

		id, err := commands.NewReservationCommands(f.uow, clk, nil).Create(ctx, reservationInput())

		require.NoError(t, err)
		assert.Equal(t, int64(11), id)
	})

	t.Run("full slot is a capacity conflict", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithin()
		f.slots.EXPECT().LockByID(gomock.Any(), int64(7)).Return(slotWithID(7).WithCapacity(2, 2).BuildStored(), nil)
		f.expectPlacementReads(7)
		f.slots.EXPECT().CountConfirmed(gomock.Any(), int64(7), int64(0)).Return(2, nil)

		_, err := commands.NewReservationCommands(f.uow, clk, nil).Create(ctx, reservationInput())

		require.ErrorIs(t, err, reservation.ErrNoCapacity)
		var verr *commands.ValidationError
		assert.False(t, errors.As(err, &verr), "capacity is not a validation failure")
	})

	t.Run("slot not linked to the zone is a validation error", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithin()
		f.slots.EXPECT().LockByID(gomock.Any(), int64(7)).Return(slotWithID(7).BuildStored(), nil)
		f.expectPlacementReads(8)
		f.slots.EXPECT().CountConfirmed(gomock.Any(), int64(7), int64(0)).Return(0, nil)

		_, err := commands.NewReservationCommands(f.uow, clk, nil).Create(ctx, reservationInput())

		var verr *commands.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.ErrorIs(t, err, reservation.ErrSlotOutsideZone)
	})

	t.Run("zone without boundary serves no slot", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithin()
		f.slots.EXPECT().LockByID(gomock.Any(), int64(7)).Return(slotWithID(7).BuildStored(), nil)
		f.reads.EXPECT().CustomerByID(gomock.Any(), int64(1)).Return(builder.NewCustomerBuilder().BuildSnapshot(), nil)
		f.reads.EXPECT().AddressByID(gomock.Any(), int64(5)).Return(builder.NewAddressBuilder().WithZone(3).BuildSnapshot(), nil)
		f.reads.EXPECT().TemplateByID(gomock.Any(), int64(1)).Return(builder.NewTemplateBuilder().BuildSnapshot(), nil)
		f.reads.EXPECT().ZoneByID(gomock.Any(), int64(3)).Return(
			builder.NewZoneBuilder().With(func(b *builder.ZoneBuilder) { b.Boundary = nil }).BuildSnapshot(), nil)
		f.slots.EXPECT().CountConfirmed(gomock.Any(), int64(7), int64(0)).Return(0, nil)

		_, err := commands.NewReservationCommands(f.uow, clk, nil).Create(ctx, reservationInput())

		require.ErrorIs(t, err, reservation.ErrZoneWithoutSlot)
	})

	t.Run("unknown slot", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithin()
		f.slots.EXPECT().LockByID(gomock.Any(), int64(7)).Return(nil, notFound())

		_, err := commands.NewReservationCommands(f.uow, clk, nil).Create(ctx, reservationInput())

		require.ErrorIs(t, err, commands.ErrSlotNotFound)
	})

	t.Run("malformed input never opens a transaction", func(t *testing.T) {
		tests := []struct {
			name  string
			edit  func(*commands.ReservationInput)
			errIs error
		}{
			{name: "date", edit: func(in *commands.ReservationInput) { in.ReservationDate = "11/03/2025" }, errIs: commands.ErrInvalidDate},
			{name: "time", edit: func(in *commands.ReservationInput) { in.ReservationTime = "25:00" }, errIs: availability.ErrInvalidClock},
			{name: "status", edit: func(in *commands.ReservationInput) { in.Status = "PENDING" }, errIs: reservation.ErrInvalidStatus},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newFixture(t)
				in := reservationInput()
				tt.edit(&in)

				_, err := commands.NewReservationCommands(f.uow, clk, nil).Create(ctx, in)

				var verr *commands.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.ErrorIs(t, err, tt.errIs)
			})
		}
	})
}

func TestReservationCommands_Update(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC))

	t.Run("stale version is rejected before any lock", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithin()
		f.reservations.EXPECT().FindByID(gomock.Any(), int64(11)).Return(builder.NewReservationBuilder().BuildStored(), nil)
		in := reservationInput()
		v := int64(0)
		in.Version = &v

		err := commands.NewReservationCommands(f.uow, clk, nil).Update(ctx, 11, in)

		require.ErrorIs(t, err, commands.ErrReservationConflict)
	})

	t.Run("moving between slots locks both in id order and resyncs both", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithin()
		stored := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.DeliverySlotID = 9 }).BuildStored()
		f.reservations.EXPECT().FindByID(gomock.Any(), int64(11)).Return(stored, nil)
		gomock.InOrder(
			f.slots.EXPECT().LockByID(gomock.Any(), int64(7)).Return(slotWithID(7).BuildStored(), nil),
			f.slots.EXPECT().LockByID(gomock.Any(), int64(9)).Return(slotWithID(9).BuildStored(), nil),
		)
		f.expectPlacementReads(7)
		f.slots.EXPECT().CountConfirmed(gomock.Any(), int64(7), int64(11)).Return(0, nil)
		f.reservations.EXPECT().Update(gomock.Any(), stored).Return(nil)
		gomock.InOrder(
			f.slots.EXPECT().SyncReservedCount(gomock.Any(), int64(7)).Return(nil),
			f.slots.EXPECT().SyncReservedCount(gomock.Any(), int64(9)).Return(nil),
		)

		err := commands.NewReservationCommands(f.uow, clk, nil).Update(ctx, 11, reservationInput())

		require.NoError(t, err)
		assert.Equal(t, int64(7), stored.DeliverySlotID())
	})

	t.Run("held slot is rejected once the zone links another slot", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithin()
		stored := builder.NewReservationBuilder().BuildStored()
		f.reservations.EXPECT().FindByID(gomock.Any(), int64(11)).Return(stored, nil)
		f.slots.EXPECT().LockByID(gomock.Any(), int64(7)).Return(slotWithID(7).BuildStored(), nil)
		f.expectPlacementReads(8)
		f.slots.EXPECT().CountConfirmed(gomock.Any(), int64(7), int64(11)).Return(0, nil)

		in := reservationInput()
		in.ReservationTime = "12:15"
		err := commands.NewReservationCommands(f.uow, clk, nil).Update(ctx, 11, in)

		var verr *commands.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.ErrorIs(t, err, reservation.ErrSlotOutsideZone)
		assert.Equal(t, "10:30", stored.ReservationTime().String())
	})

	t.Run("optimistic lock lost on write", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithin()
		stored := builder.NewReservationBuilder().BuildStored()
		f.reservations.EXPECT().FindByID(gomock.Any(), int64(11)).Return(stored, nil)
		f.slots.EXPECT().LockByID(gomock.Any(), int64(7)).Return(slotWithID(7).BuildStored(), nil)
		f.expectPlacementReads(7)
		f.slots.EXPECT().CountConfirmed(gomock.Any(), int64(7), int64(11)).Return(0, nil)
		f.reservations.EXPECT().Update(gomock.Any(), stored).Return(repoErr(infra.KindConflict))

		err := commands.NewReservationCommands(f.uow, clk, nil).Update(ctx, 11, reservationInput())

		require.ErrorIs(t, err, commands.ErrReservationConflict)
	})
}

func TestReservationCommands_Delete(t *testing.T) {
	f := newFixture(t)
	f.expectWithin()
	f.reservations.EXPECT().FindByID(gomock.Any(), int64(11)).Return(builder.NewReservationBuilder().BuildStored(), nil)
	gomock.InOrder(
		f.slots.EXPECT().LockByID(gomock.Any(), int64(7)).Return(slotWithID(7).BuildStored(), nil),
		f.reservations.EXPECT().Delete(gomock.Any(), int64(11)).Return(nil),
		f.slots.EXPECT().SyncReservedCount(gomock.Any(), int64(7)).Return(nil),
	)

	err := commands.NewReservationCommands(f.uow, clock.NewRealClock(), nil).Delete(context.Background(), 11)

	require.NoError(t, err)
}
