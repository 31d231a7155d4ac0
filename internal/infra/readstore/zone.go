package readstore

import (
	"context"

	"delivery-admin/internal/infra"
	"delivery-admin/internal/infra/pgsql"
	"delivery-admin/internal/usecase/queries"
)

type ZoneReadQueries interface {
	GetCoverageZone(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.CoverageZone, error)
	ListCoverageZones(ctx context.Context, db pgsql.DBTX) ([]pgsql.CoverageZone, error)
}

type ZoneReadStore struct {
	queries ZoneReadQueries
	db      pgsql.DBTX
}

func NewZoneReadStore(queries ZoneReadQueries, db pgsql.DBTX) *ZoneReadStore {
	return &ZoneReadStore{queries: queries, db: db}
}

func (r *ZoneReadStore) FindByID(ctx context.Context, id int64) (*queries.ZoneView, error) {
	row, err := r.queries.GetCoverageZone(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get coverage zone", err)
	}
	v, err := zoneView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid coverage zone boundary", err, infra.KindDBFailure)
	}
	return v, nil
}

func (r *ZoneReadStore) List(ctx context.Context) ([]*queries.ZoneView, error) {
	rows, err := r.queries.ListCoverageZones(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coverage zones", err)
	}
	views := make([]*queries.ZoneView, 0, len(rows))
	for _, row := range rows {
		v, err := zoneView(row)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid coverage zone boundary", err, infra.KindDBFailure)
		}
		views = append(views, v)
	}
	return views, nil
}
