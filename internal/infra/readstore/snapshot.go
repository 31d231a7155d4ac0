package readstore

import (
	"context"

	"delivery-admin/internal/domain/availability"
	"delivery-admin/internal/infra"
	"delivery-admin/internal/infra/pgsql"
	"delivery-admin/internal/infra/repository/converter"
	"delivery-admin/internal/usecase/shared"
)

type SnapshotQueries interface {
	GetCustomer(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.Customer, error)
	GetCustomerByEmail(ctx context.Context, db pgsql.DBTX, email string) (pgsql.Customer, error)
	GetDeliveryAddress(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.DeliveryAddress, error)
	GetTimeSlotTemplate(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.TimeSlotTemplate, error)
	GetDeliverySlot(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.DeliverySlot, error)
	GetCoverageZone(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.CoverageZone, error)
	ListActiveCoverageZones(ctx context.Context, db pgsql.DBTX) ([]pgsql.CoverageZone, error)
	GetCommune(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.Commune, error)
}

// SnapshotReadStore serves the command-side reads. Bound to a transaction it
// sees that transaction's writes.
type SnapshotReadStore struct {
	queries SnapshotQueries
	db      pgsql.DBTX
}

var _ shared.CommandReads = (*SnapshotReadStore)(nil)

func NewSnapshotReadStore(queries SnapshotQueries, db pgsql.DBTX) *SnapshotReadStore {
	return &SnapshotReadStore{queries: queries, db: db}
}

func (r *SnapshotReadStore) CustomerByID(ctx context.Context, id int64) (*shared.CustomerSnapshot, error) {
	row, err := r.queries.GetCustomer(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("customer not found", err)
	}
	return customerSnapshot(row), nil
}

func (r *SnapshotReadStore) CustomerByEmail(ctx context.Context, email string) (*shared.CustomerSnapshot, error) {
	row, err := r.queries.GetCustomerByEmail(ctx, r.db, email)
	if err != nil {
		return nil, infra.WrapRepoErr("customer not found", err)
	}
	return customerSnapshot(row), nil
}

func (r *SnapshotReadStore) AddressByID(ctx context.Context, id int64) (*availability.Address, error) {
	row, err := r.queries.GetDeliveryAddress(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("delivery address not found", err)
	}
	snap := converter.AddressSnapshotFromRow(row)
	return &snap, nil
}

func (r *SnapshotReadStore) TemplateByID(ctx context.Context, id int64) (*availability.Template, error) {
	row, err := r.queries.GetTimeSlotTemplate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("time slot template not found", err)
	}
	snap := converter.TemplateSnapshotFromRow(row)
	return &snap, nil
}

func (r *SnapshotReadStore) SlotByID(ctx context.Context, id int64) (*availability.Slot, error) {
	row, err := r.queries.GetDeliverySlot(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("delivery slot not found", err)
	}
	snap := converter.SlotSnapshotFromRow(row)
	return &snap, nil
}

func (r *SnapshotReadStore) ZoneByID(ctx context.Context, id int64) (*availability.Zone, error) {
	row, err := r.queries.GetCoverageZone(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("coverage zone not found", err)
	}
	snap, err := converter.ZoneSnapshotFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid coverage zone boundary", err, infra.KindDBFailure)
	}
	return &snap, nil
}

// ActiveZoneBoundaries lists active zones in id order.
func (r *SnapshotReadStore) ActiveZoneBoundaries(ctx context.Context) ([]shared.ZoneBoundary, error) {
	rows, err := r.queries.ListActiveCoverageZones(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active coverage zones", err)
	}
	out := make([]shared.ZoneBoundary, 0, len(rows))
	for _, row := range rows {
		boundary, err := converter.BoundaryFromRow(row.Boundary)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid coverage zone boundary", err, infra.KindDBFailure)
		}
		out = append(out, shared.ZoneBoundary{ID: row.ID, Boundary: boundary})
	}
	return out, nil
}

func (r *SnapshotReadStore) CommuneByID(ctx context.Context, id int64) (*shared.CommuneSnapshot, error) {
	row, err := r.queries.GetCommune(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("commune not found", err)
	}
	return &shared.CommuneSnapshot{ID: row.ID, CityID: row.CityID, Name: row.Name}, nil
}

func customerSnapshot(row pgsql.Customer) *shared.CustomerSnapshot {
	return &shared.CustomerSnapshot{
		ID:       row.ID,
		FullName: row.FullName,
		Email:    row.Email,
		Type:     row.CustomerType,
	}
}
