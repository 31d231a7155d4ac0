package commands

import (
	"context"
	"errors"

	"delivery-admin/internal/domain/customer"
	"delivery-admin/internal/infra"
	"delivery-admin/internal/pkg/clock"
	"delivery-admin/internal/pkg/errs"
	"delivery-admin/internal/pkg/metrics"
	"delivery-admin/internal/usecase/shared"
)

type CustomerInput struct {
	FullName     string
	Email        string
	Phone        *string
	CustomerType string
}

type CustomerCommands interface {
	Create(ctx context.Context, in CustomerInput) (int64, error)
	Update(ctx context.Context, id int64, in CustomerInput) error
	Delete(ctx context.Context, id int64) error
}

type customerUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics *metrics.Metrics
}

func NewCustomerCommands(uow shared.UnitOfWork, clk clock.Clock, m *metrics.Metrics) CustomerCommands {
	return &customerUseCaseImpl{uow: uow, clock: clk, metrics: m}
}

func (uc *customerUseCaseImpl) Create(ctx context.Context, in CustomerInput) (int64, error) {
	c, err := customer.NewCustomer(in.FullName, in.Email, in.Phone, in.CustomerType, uc.clock.Now())
	if err != nil {
		return 0, invalid(uc.metrics, err)
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := uc.ensureEmailFree(ctx, tx, c.Email(), 0); err != nil {
			return err
		}
		newID, err := tx.Customers().Create(ctx, c)
		if err != nil {
			return customerWriteErr(err)
		}
		id = newID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (uc *customerUseCaseImpl) Update(ctx context.Context, id int64, in CustomerInput) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Customers().FindByID(ctx, id)
		if err != nil {
			return lookupErr(err, ErrCustomerNotFound)
		}
		if err := c.Update(in.FullName, in.Email, in.Phone, in.CustomerType); err != nil {
			return invalid(uc.metrics, err)
		}
		if err := uc.ensureEmailFree(ctx, tx, c.Email(), c.ID()); err != nil {
			return err
		}
		if err := tx.Customers().Update(ctx, c); err != nil {
			return customerWriteErr(err)
		}
		return nil
	})
}

func (uc *customerUseCaseImpl) Delete(ctx context.Context, id int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Customers().Delete(ctx, id); err != nil {
			return lookupErr(err, ErrCustomerNotFound)
		}
		return nil
	})
}

// ensureEmailFree rejects an email held by a customer other than selfID.
func (uc *customerUseCaseImpl) ensureEmailFree(ctx context.Context, tx shared.Tx, email string, selfID int64) error {
	existing, err := tx.Reads().CustomerByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if existing.ID != selfID {
		return ErrEmailTaken
	}
	return nil
}

func customerWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, ErrEmailTaken)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrCustomerNotFound)
	case errors.Is(err, ErrEmailTaken):
		return err
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}
