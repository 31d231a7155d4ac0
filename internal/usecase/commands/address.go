package commands

import (
	"context"

	"delivery-admin/internal/domain/address"
	"delivery-admin/internal/domain/availability"
	"delivery-admin/internal/infra"
	"delivery-admin/internal/pkg/clock"
	"delivery-admin/internal/pkg/errs"
	"delivery-admin/internal/pkg/metrics"
	"delivery-admin/internal/usecase/shared"
)

type AddressInput struct {
	CustomerID int64
	ComunaID   *int64
	Street     string
	Locality   string
	Commune    string
	Region     string
	PostalCode *string
	Latitude   *float64
	Longitude  *float64
	IsDefault  *bool
}

func (in AddressInput) fields() address.Fields {
	return address.Fields{
		CustomerID: in.CustomerID,
		ComunaID:   in.ComunaID,
		Street:     in.Street,
		Locality:   in.Locality,
		Commune:    in.Commune,
		Region:     in.Region,
		PostalCode: in.PostalCode,
		Latitude:   in.Latitude,
		Longitude:  in.Longitude,
		IsDefault:  in.IsDefault,
	}
}

type AddressCommands interface {
	Create(ctx context.Context, in AddressInput) (int64, error)
	Update(ctx context.Context, id int64, in AddressInput) error
	Delete(ctx context.Context, id int64) error
}

type addressUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics *metrics.Metrics
}

func NewAddressCommands(uow shared.UnitOfWork, clk clock.Clock, m *metrics.Metrics) AddressCommands {
	return &addressUseCaseImpl{uow: uow, clock: clk, metrics: m}
}

func (uc *addressUseCaseImpl) Create(ctx context.Context, in AddressInput) (int64, error) {
	a, err := address.NewAddress(in.fields(), uc.clock.Now())
	if err != nil {
		return 0, invalid(uc.metrics, err)
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().CustomerByID(ctx, a.CustomerID()); err != nil {
			return lookupErr(err, ErrCustomerNotFound)
		}
		if err := ensureCommuneExists(ctx, tx, a.ComunaID()); err != nil {
			return err
		}
		if err := uc.placeInZone(ctx, tx, a); err != nil {
			return err
		}
		newID, err := tx.Addresses().Create(ctx, a)
		if err != nil {
			return addressWriteErr(err)
		}
		id = newID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (uc *addressUseCaseImpl) Update(ctx context.Context, id int64, in AddressInput) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := tx.Addresses().FindByID(ctx, id)
		if err != nil {
			return lookupErr(err, ErrAddressNotFound)
		}
		if err := a.Update(in.fields()); err != nil {
			return invalid(uc.metrics, err)
		}
		if _, err := tx.Reads().CustomerByID(ctx, a.CustomerID()); err != nil {
			return lookupErr(err, ErrCustomerNotFound)
		}
		if err := ensureCommuneExists(ctx, tx, a.ComunaID()); err != nil {
			return err
		}
		if err := uc.placeInZone(ctx, tx, a); err != nil {
			return err
		}
		if err := tx.Addresses().Update(ctx, a); err != nil {
			return addressWriteErr(err)
		}
		return nil
	})
}

func (uc *addressUseCaseImpl) Delete(ctx context.Context, id int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Addresses().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, ErrAddressInUse)
			}
			return lookupErr(err, ErrAddressNotFound)
		}
		return nil
	})
}

// placeInZone assigns the first active zone whose boundary contains the
// address location. Addresses without coordinates carry no zone.
func (uc *addressUseCaseImpl) placeInZone(ctx context.Context, tx shared.Tx, a *address.Address) error {
	loc := a.Location()
	if loc == nil {
		a.AssignZone(nil)
		return nil
	}
	zones, err := tx.Reads().ActiveZoneBoundaries(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if id, ok := zoneContaining(zones, *loc); ok {
		a.AssignZone(&id)
		return nil
	}
	uc.metrics.ObserveValidationFailure("coverage")
	return ErrOutsideCoverage
}

func zoneContaining(zones []shared.ZoneBoundary, p availability.Point) (int64, bool) {
	for _, z := range zones {
		if availability.Contains(z.Boundary, p) {
			return z.ID, true
		}
	}
	return 0, false
}

func addressWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrAddressNotFound)
	case infra.IsKind(err, infra.KindForeignKeyViolated) && infra.Constraint(err) == fkAddressCommune:
		return errs.Mark(err, ErrCommuneNotFound)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, ErrCustomerNotFound)
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}
