package commands

import (
	"context"
	"time"

	"delivery-admin/internal/domain/deliveryslot"
	"delivery-admin/internal/infra"
	"delivery-admin/internal/pkg/errs"
	"delivery-admin/internal/pkg/metrics"
	"delivery-admin/internal/usecase/queries"
	"delivery-admin/internal/usecase/shared"
)

type SlotInput struct {
	TimeSlotTemplateID int64
	DeliveryDate       string
	DeliveryCost       float64
	MaxCapacity        *int
	ReservedCount      *int
	IsActive           *bool
}

func (in SlotInput) fields() (deliveryslot.Fields, error) {
	f := deliveryslot.Fields{
		TemplateID:    in.TimeSlotTemplateID,
		DeliveryCost:  in.DeliveryCost,
		MaxCapacity:   in.MaxCapacity,
		ReservedCount: in.ReservedCount,
		IsActive:      in.IsActive,
	}
	if in.DeliveryDate == "" {
		return f, nil
	}
	date, err := time.Parse(queries.DateLayout, in.DeliveryDate)
	if err != nil {
		return f, ErrInvalidDate
	}
	f.DeliveryDate = date
	return f, nil
}

type SlotCommands interface {
	Create(ctx context.Context, in SlotInput) (int64, error)
	Update(ctx context.Context, id int64, in SlotInput) error
	Delete(ctx context.Context, id int64) error
}

type slotUseCaseImpl struct {
	uow     shared.UnitOfWork
	metrics *metrics.Metrics
}

func NewSlotCommands(uow shared.UnitOfWork, m *metrics.Metrics) SlotCommands {
	return &slotUseCaseImpl{uow: uow, metrics: m}
}

func (uc *slotUseCaseImpl) Create(ctx context.Context, in SlotInput) (int64, error) {
	f, err := in.fields()
	if err != nil {
		return 0, invalid(uc.metrics, err)
	}
	s, err := deliveryslot.NewSlot(f)
	if err != nil {
		return 0, invalid(uc.metrics, err)
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().TemplateByID(ctx, s.TemplateID()); err != nil {
			return lookupErr(err, ErrTemplateNotFound)
		}
		newID, err := tx.Slots().Create(ctx, s)
		if err != nil {
			return slotWriteErr(err)
		}
		id = newID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (uc *slotUseCaseImpl) Update(ctx context.Context, id int64, in SlotInput) error {
	f, err := in.fields()
	if err != nil {
		return invalid(uc.metrics, err)
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Slots().LockByID(ctx, id)
		if err != nil {
			return lookupErr(err, ErrSlotNotFound)
		}
		if err := s.Update(f); err != nil {
			return invalid(uc.metrics, err)
		}
		if _, err := tx.Reads().TemplateByID(ctx, s.TemplateID()); err != nil {
			return lookupErr(err, ErrTemplateNotFound)
		}
		if err := tx.Slots().Update(ctx, s); err != nil {
			return slotWriteErr(err)
		}
		return nil
	})
}

func (uc *slotUseCaseImpl) Delete(ctx context.Context, id int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Slots().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, ErrSlotInUse)
			}
			return lookupErr(err, ErrSlotNotFound)
		}
		return nil
	})
}

func slotWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, ErrDuplicateSlot)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, ErrTemplateNotFound)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrSlotNotFound)
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}
