package commands

import (
	"context"

	"delivery-admin/internal/domain/zone"
	"delivery-admin/internal/infra"
	"delivery-admin/internal/pkg/errs"
	"delivery-admin/internal/pkg/metrics"
	"delivery-admin/internal/usecase/shared"
)

type ZoneInput struct {
	Name           string
	ComunaID       *int64
	Commune        string
	Region         string
	Locality       *string
	PostalCode     *string
	DeliverySlotID *int64
	MaxCapacity    *int
	Boundary       *zone.GeoJSONPolygon
	IsActive       *bool
}

func (in ZoneInput) fields() (zone.Fields, error) {
	f := zone.Fields{
		Name:           in.Name,
		ComunaID:       in.ComunaID,
		Commune:        in.Commune,
		Region:         in.Region,
		Locality:       in.Locality,
		PostalCode:     in.PostalCode,
		DeliverySlotID: in.DeliverySlotID,
		MaxCapacity:    in.MaxCapacity,
		IsActive:       in.IsActive,
	}
	if in.Boundary == nil {
		return f, nil
	}
	pts, err := zone.PointsFromGeoJSON(*in.Boundary)
	if err != nil {
		return f, err
	}
	f.Boundary = pts
	return f, nil
}

type ZoneCommands interface {
	Create(ctx context.Context, in ZoneInput) (int64, error)
	Update(ctx context.Context, id int64, in ZoneInput) error
	Delete(ctx context.Context, id int64) error
}

type zoneUseCaseImpl struct {
	uow     shared.UnitOfWork
	metrics *metrics.Metrics
}

func NewZoneCommands(uow shared.UnitOfWork, m *metrics.Metrics) ZoneCommands {
	return &zoneUseCaseImpl{uow: uow, metrics: m}
}

func (uc *zoneUseCaseImpl) Create(ctx context.Context, in ZoneInput) (int64, error) {
	f, err := in.fields()
	if err != nil {
		return 0, invalid(uc.metrics, err)
	}
	z, err := zone.NewZone(f)
	if err != nil {
		return 0, invalid(uc.metrics, err)
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := ensureSlotExists(ctx, tx, z.DeliverySlotID()); err != nil {
			return err
		}
		if err := ensureCommuneExists(ctx, tx, z.ComunaID()); err != nil {
			return err
		}
		newID, err := tx.Zones().Create(ctx, z)
		if err != nil {
			return zoneWriteErr(err)
		}
		id = newID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (uc *zoneUseCaseImpl) Update(ctx context.Context, id int64, in ZoneInput) error {
	f, err := in.fields()
	if err != nil {
		return invalid(uc.metrics, err)
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		z, err := tx.Zones().FindByID(ctx, id)
		if err != nil {
			return lookupErr(err, ErrZoneNotFound)
		}
		if err := z.Update(f); err != nil {
			return invalid(uc.metrics, err)
		}
		if err := ensureSlotExists(ctx, tx, z.DeliverySlotID()); err != nil {
			return err
		}
		if err := ensureCommuneExists(ctx, tx, z.ComunaID()); err != nil {
			return err
		}
		if err := tx.Zones().Update(ctx, z); err != nil {
			return zoneWriteErr(err)
		}
		return nil
	})
}

func (uc *zoneUseCaseImpl) Delete(ctx context.Context, id int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Zones().Delete(ctx, id); err != nil {
			return lookupErr(err, ErrZoneNotFound)
		}
		return nil
	})
}

func ensureSlotExists(ctx context.Context, tx shared.Tx, slotID *int64) error {
	if slotID == nil {
		return nil
	}
	if _, err := tx.Reads().SlotByID(ctx, *slotID); err != nil {
		return lookupErr(err, ErrSlotNotFound)
	}
	return nil
}

func zoneWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindForeignKeyViolated) && infra.Constraint(err) == fkZoneCommune:
		return errs.Mark(err, ErrCommuneNotFound)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, ErrSlotNotFound)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrZoneNotFound)
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}
