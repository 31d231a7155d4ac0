package readstore

import (
	"context"

	"delivery-admin/internal/domain/availability"
	"delivery-admin/internal/infra"
	"delivery-admin/internal/infra/pgsql"
	"delivery-admin/internal/infra/repository/converter"
	"delivery-admin/internal/usecase/queries"
)

type AvailabilityReadQueries interface {
	GetDeliveryAddress(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.DeliveryAddress, error)
	ListCoverageZones(ctx context.Context, db pgsql.DBTX) ([]pgsql.CoverageZone, error)
	ListDeliverySlots(ctx context.Context, db pgsql.DBTX) ([]pgsql.DeliverySlot, error)
	ListTimeSlotTemplates(ctx context.Context, db pgsql.DBTX) ([]pgsql.TimeSlotTemplate, error)
}

// AvailabilityReadStore loads whole-collection snapshots for the resolver.
// The caller supplies db so all four reads can share one read-only transaction.
type AvailabilityReadStore struct {
	queries AvailabilityReadQueries
}

func NewAvailabilityReadStore(queries AvailabilityReadQueries) *AvailabilityReadStore {
	return &AvailabilityReadStore{queries: queries}
}

func (r *AvailabilityReadStore) Load(ctx context.Context, db pgsql.DBTX, addressID *int64) (*queries.AvailabilitySnapshot, error) {
	snap := &queries.AvailabilitySnapshot{}

	if addressID != nil {
		row, err := r.queries.GetDeliveryAddress(ctx, db, *addressID)
		if err != nil {
			return nil, infra.WrapRepoErr("delivery address not found", err)
		}
		a := converter.AddressSnapshotFromRow(row)
		snap.Address = &a
	}

	zones, err := r.queries.ListCoverageZones(ctx, db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coverage zones", err)
	}
	snap.Zones = make([]availability.Zone, 0, len(zones))
	for _, z := range zones {
		zs, err := converter.ZoneSnapshotFromRow(z)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid coverage zone boundary", err, infra.KindDBFailure)
		}
		snap.Zones = append(snap.Zones, zs)
	}

	slots, err := r.queries.ListDeliverySlots(ctx, db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list delivery slots", err)
	}
	snap.Slots = make([]availability.Slot, 0, len(slots))
	for _, s := range slots {
		snap.Slots = append(snap.Slots, converter.SlotSnapshotFromRow(s))
	}

	templates, err := r.queries.ListTimeSlotTemplates(ctx, db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list time slot templates", err)
	}
	snap.Templates = make([]availability.Template, 0, len(templates))
	for _, t := range templates {
		snap.Templates = append(snap.Templates, converter.TemplateSnapshotFromRow(t))
	}

	return snap, nil
}
