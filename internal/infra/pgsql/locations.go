package pgsql

import (
	"context"

	"github.com/Masterminds/squirrel"
)

var (
	regionColumns  = []string{"id", "name", "ordinal", "abbreviation"}
	cityColumns    = []string{"id", "region_id", "name"}
	communeColumns = []string{"id", "city_id", "name"}
)

func (q *Queries) ListRegions(ctx context.Context, db DBTX) ([]Region, error) {
	return selectAll[Region](ctx, db, psql.Select(regionColumns...).
		From("regions").
		OrderBy("ordinal", "id"))
}

func (q *Queries) GetRegion(ctx context.Context, db DBTX, id int64) (Region, error) {
	return selectOne[Region](ctx, db, psql.Select(regionColumns...).
		From("regions").
		Where(squirrel.Eq{"id": id}))
}

func (q *Queries) ListCitiesByRegion(ctx context.Context, db DBTX, regionID int64) ([]City, error) {
	return selectAll[City](ctx, db, psql.Select(cityColumns...).
		From("cities").
		Where(squirrel.Eq{"region_id": regionID}).
		OrderBy("name", "id"))
}

func (q *Queries) GetCity(ctx context.Context, db DBTX, id int64) (City, error) {
	return selectOne[City](ctx, db, psql.Select(cityColumns...).
		From("cities").
		Where(squirrel.Eq{"id": id}))
}

func (q *Queries) ListCommunesByCity(ctx context.Context, db DBTX, cityID int64) ([]Commune, error) {
	return selectAll[Commune](ctx, db, psql.Select(communeColumns...).
		From("communes").
		Where(squirrel.Eq{"city_id": cityID}).
		OrderBy("name", "id"))
}

func (q *Queries) GetCommune(ctx context.Context, db DBTX, id int64) (Commune, error) {
	return selectOne[Commune](ctx, db, psql.Select(communeColumns...).
		From("communes").
		Where(squirrel.Eq{"id": id}))
}
