package commands

import (
	"context"

	"delivery-admin/internal/domain/timeslot"
	"delivery-admin/internal/infra"
	"delivery-admin/internal/pkg/errs"
	"delivery-admin/internal/pkg/metrics"
	"delivery-admin/internal/usecase/shared"
)

type TemplateInput struct {
	StartTime string
	EndTime   string
	IsActive  *bool
}

type TemplateCommands interface {
	Create(ctx context.Context, in TemplateInput) (int64, error)
	Update(ctx context.Context, id int64, in TemplateInput) error
	Delete(ctx context.Context, id int64) error
}

type templateUseCaseImpl struct {
	uow     shared.UnitOfWork
	metrics *metrics.Metrics
}

func NewTemplateCommands(uow shared.UnitOfWork, m *metrics.Metrics) TemplateCommands {
	return &templateUseCaseImpl{uow: uow, metrics: m}
}

func (uc *templateUseCaseImpl) Create(ctx context.Context, in TemplateInput) (int64, error) {
	t, err := timeslot.NewTemplate(in.StartTime, in.EndTime, in.IsActive)
	if err != nil {
		return 0, invalid(uc.metrics, err)
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		newID, err := tx.Templates().Create(ctx, t)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		id = newID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (uc *templateUseCaseImpl) Update(ctx context.Context, id int64, in TemplateInput) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Templates().FindByID(ctx, id)
		if err != nil {
			return lookupErr(err, ErrTemplateNotFound)
		}
		if err := t.Update(in.StartTime, in.EndTime, in.IsActive); err != nil {
			return invalid(uc.metrics, err)
		}
		if err := tx.Templates().Update(ctx, t); err != nil {
			return lookupErr(err, ErrTemplateNotFound)
		}
		return nil
	})
}

func (uc *templateUseCaseImpl) Delete(ctx context.Context, id int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Templates().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, ErrTemplateInUse)
			}
			return lookupErr(err, ErrTemplateNotFound)
		}
		return nil
	})
}
