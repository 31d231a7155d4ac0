package commands

import (
	"context"
	"errors"
	"sort"
	"time"

	"delivery-admin/internal/domain/availability"
	"delivery-admin/internal/domain/deliveryslot"
	"delivery-admin/internal/domain/reservation"
	"delivery-admin/internal/infra"
	"delivery-admin/internal/pkg/clock"
	"delivery-admin/internal/pkg/errs"
	"delivery-admin/internal/pkg/metrics"
	"delivery-admin/internal/usecase/queries"
	"delivery-admin/internal/usecase/shared"
)

type ReservationInput struct {
	CustomerID        int64
	DeliveryAddressID int64
	DeliverySlotID    int64
	ReservationDate   string
	ReservationTime   string
	Status            string
	// Version, when set, must match the stored version on update.
	Version *int64
}

func (in ReservationInput) request() (reservation.Request, error) {
	date, err := time.Parse(queries.DateLayout, in.ReservationDate)
	if err != nil {
		return reservation.Request{}, ErrInvalidDate
	}
	at, err := availability.ParseClock(in.ReservationTime)
	if err != nil {
		return reservation.Request{}, err
	}
	status, err := reservation.ParseStatus(in.Status)
	if err != nil {
		return reservation.Request{}, err
	}
	return reservation.Request{Date: date, Time: at, Status: status}, nil
}

type ReservationCommands interface {
	Create(ctx context.Context, in ReservationInput) (int64, error)
	Update(ctx context.Context, id int64, in ReservationInput) error
	Delete(ctx context.Context, id int64) error
}

type reservationUseCaseImpl struct {
	uow     shared.UnitOfWork
	factory *reservation.Factory
	metrics *metrics.Metrics
}

func NewReservationCommands(uow shared.UnitOfWork, clk clock.Clock, m *metrics.Metrics) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:     uow,
		factory: reservation.NewFactory(clk),
		metrics: m,
	}
}

func (uc *reservationUseCaseImpl) Create(ctx context.Context, in ReservationInput) (int64, error) {
	req, err := in.request()
	if err != nil {
		return 0, invalid(uc.metrics, err)
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		slots, err := lockSlots(ctx, tx, in.DeliverySlotID)
		if err != nil {
			return err
		}
		p, err := uc.placement(ctx, tx, in, slots, 0)
		if err != nil {
			return err
		}
		r, err := uc.factory.Place(p, req)
		if err != nil {
			return uc.rejected(err)
		}
		newID, err := tx.Reservations().Create(ctx, r)
		if err != nil {
			return reservationWriteErr(err)
		}
		id = newID
		return syncSlots(ctx, tx, in.DeliverySlotID)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (uc *reservationUseCaseImpl) Update(ctx context.Context, id int64, in ReservationInput) error {
	req, err := in.request()
	if err != nil {
		return invalid(uc.metrics, err)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Reservations().FindByID(ctx, id)
		if err != nil {
			return lookupErr(err, ErrReservationNotFound)
		}
		if in.Version != nil && *in.Version != r.Version() {
			return ErrReservationConflict
		}

		previous := r.DeliverySlotID()
		slots, err := lockSlots(ctx, tx, in.DeliverySlotID, previous)
		if err != nil {
			return err
		}
		p, err := uc.placement(ctx, tx, in, slots, r.ID())
		if err != nil {
			return err
		}
		if err := uc.factory.Reschedule(r, p, req); err != nil {
			return uc.rejected(err)
		}
		if err := tx.Reservations().Update(ctx, r); err != nil {
			return reservationWriteErr(err)
		}
		return syncSlots(ctx, tx, in.DeliverySlotID, previous)
	})
}

func (uc *reservationUseCaseImpl) Delete(ctx context.Context, id int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Reservations().FindByID(ctx, id)
		if err != nil {
			return lookupErr(err, ErrReservationNotFound)
		}
		if _, err := lockSlots(ctx, tx, r.DeliverySlotID()); err != nil {
			return err
		}
		if err := tx.Reservations().Delete(ctx, id); err != nil {
			return lookupErr(err, ErrReservationNotFound)
		}
		return syncSlots(ctx, tx, r.DeliverySlotID())
	})
}

// placement loads what the reservation is validated against. The zone rules
// are evaluated as they stand now: a slot the reservation already holds gets
// no allowance once its zone links another slot.
func (uc *reservationUseCaseImpl) placement(
	ctx context.Context,
	tx shared.Tx,
	in ReservationInput,
	slots map[int64]*deliveryslot.Slot,
	excludeID int64,
) (reservation.Placement, error) {
	reads := tx.Reads()

	if _, err := reads.CustomerByID(ctx, in.CustomerID); err != nil {
		return reservation.Placement{}, lookupErr(err, ErrCustomerNotFound)
	}
	addr, err := reads.AddressByID(ctx, in.DeliveryAddressID)
	if err != nil {
		return reservation.Placement{}, lookupErr(err, ErrAddressNotFound)
	}

	chosen := slots[in.DeliverySlotID]
	tmpl, err := reads.TemplateByID(ctx, chosen.TemplateID())
	if err != nil {
		return reservation.Placement{}, lookupErr(err, ErrTemplateNotFound)
	}

	var zones []availability.Zone
	if addr.ZoneID != nil {
		z, err := reads.ZoneByID(ctx, *addr.ZoneID)
		switch {
		case err == nil:
			zones = append(zones, *z)
		case !infra.IsKind(err, infra.KindNotFound):
			return reservation.Placement{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	candidates := make([]availability.Slot, 0, len(slots))
	for _, id := range sortedIDs(slots) {
		candidates = append(candidates, slots[id].Snapshot())
	}
	allowed := availability.Resolve(availability.Input{
		Address: addr,
		Zones:   zones,
		Slots:   candidates,
	}, availability.Policy{})

	confirmed, err := tx.Slots().CountConfirmed(ctx, chosen.ID(), excludeID)
	if err != nil {
		return reservation.Placement{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return reservation.Placement{
		CustomerID:      in.CustomerID,
		Address:         *addr,
		Slot:            chosen.Snapshot(),
		Template:        *tmpl,
		Allowed:         allowed,
		ConfirmedOthers: confirmed,
	}, nil
}

// rejected classifies a placement failure. Capacity exhaustion is a conflict
// with other reservations; everything else is a validation failure.
func (uc *reservationUseCaseImpl) rejected(err error) error {
	if errors.Is(err, reservation.ErrNoCapacity) {
		uc.metrics.ObserveValidationFailure("capacity")
		return err
	}
	return invalid(uc.metrics, err)
}

// lockSlots locks each distinct slot in ascending id order so concurrent
// reservations moving between two slots cannot deadlock.
func lockSlots(ctx context.Context, tx shared.Tx, ids ...int64) (map[int64]*deliveryslot.Slot, error) {
	out := make(map[int64]*deliveryslot.Slot, len(ids))
	for _, id := range distinctSorted(ids) {
		s, err := tx.Slots().LockByID(ctx, id)
		if err != nil {
			return nil, lookupErr(err, ErrSlotNotFound)
		}
		out[id] = s
	}
	return out, nil
}

func syncSlots(ctx context.Context, tx shared.Tx, ids ...int64) error {
	for _, id := range distinctSorted(ids) {
		if err := tx.Slots().SyncReservedCount(ctx, id); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return nil
}

func distinctSorted(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedIDs(slots map[int64]*deliveryslot.Slot) []int64 {
	ids := make([]int64, 0, len(slots))
	for id := range slots {
		ids = append(ids, id)
	}
	return distinctSorted(ids)
}

func reservationWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, ErrReservationConflict)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrReservationNotFound)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, ErrAddressNotFound)
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}
