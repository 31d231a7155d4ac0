package readstore

import (
	"context"

	"delivery-admin/internal/infra"
	"delivery-admin/internal/infra/pgsql"
	"delivery-admin/internal/usecase/queries"
)

type LocationReadQueries interface {
	ListRegions(ctx context.Context, db pgsql.DBTX) ([]pgsql.Region, error)
	GetRegion(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.Region, error)
	ListCitiesByRegion(ctx context.Context, db pgsql.DBTX, regionID int64) ([]pgsql.City, error)
	GetCity(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.City, error)
	ListCommunesByCity(ctx context.Context, db pgsql.DBTX, cityID int64) ([]pgsql.Commune, error)
	GetCommune(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.Commune, error)
}

type LocationReadStore struct {
	queries LocationReadQueries
	db      pgsql.DBTX
}

func NewLocationReadStore(queries LocationReadQueries, db pgsql.DBTX) *LocationReadStore {
	return &LocationReadStore{queries: queries, db: db}
}

func (r *LocationReadStore) ListRegions(ctx context.Context) ([]*queries.RegionView, error) {
	rows, err := r.queries.ListRegions(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list regions", err)
	}
	return mapRows(rows, regionView), nil
}

func (r *LocationReadStore) FindRegion(ctx context.Context, id int64) (*queries.RegionView, error) {
	row, err := r.queries.GetRegion(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get region", err)
	}
	return regionView(row), nil
}

func (r *LocationReadStore) ListCities(ctx context.Context, regionID int64) ([]*queries.CityView, error) {
	rows, err := r.queries.ListCitiesByRegion(ctx, r.db, regionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cities", err)
	}
	return mapRows(rows, cityView), nil
}

func (r *LocationReadStore) FindCity(ctx context.Context, id int64) (*queries.CityView, error) {
	row, err := r.queries.GetCity(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get city", err)
	}
	return cityView(row), nil
}

func (r *LocationReadStore) ListCommunes(ctx context.Context, cityID int64) ([]*queries.CommuneView, error) {
	rows, err := r.queries.ListCommunesByCity(ctx, r.db, cityID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list communes", err)
	}
	return mapRows(rows, communeView), nil
}

func (r *LocationReadStore) FindCommune(ctx context.Context, id int64) (*queries.CommuneView, error) {
	row, err := r.queries.GetCommune(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get commune", err)
	}
	return communeView(row), nil
}

func mapRows[R, V any](rows []R, view func(R) *V) []*V {
	out := make([]*V, 0, len(rows))
	for _, row := range rows {
		out = append(out, view(row))
	}
	return out
}

func regionView(row pgsql.Region) *queries.RegionView {
	return &queries.RegionView{ID: row.ID, Name: row.Name, Ordinal: row.Ordinal, Abbreviation: row.Abbreviation}
}

func cityView(row pgsql.City) *queries.CityView {
	return &queries.CityView{ID: row.ID, Name: row.Name, RegionID: row.RegionID}
}

func communeView(row pgsql.Commune) *queries.CommuneView {
	return &queries.CommuneView{ID: row.ID, Name: row.Name, CityID: row.CityID}
}
