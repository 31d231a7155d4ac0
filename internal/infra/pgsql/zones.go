package pgsql

import (
	"context"

	"github.com/Masterminds/squirrel"
)

var zoneColumns = []string{
	"id", "name", "comuna_id", "commune", "region", "locality", "postal_code",
	"delivery_slot_id", "max_capacity", "boundary", "center_lat", "center_lng", "is_active",
}

type CoverageZoneParams struct {
	Name           string
	ComunaID       *int64
	Commune        string
	Region         string
	Locality       *string
	PostalCode     *string
	DeliverySlotID *int64
	MaxCapacity    int
	Boundary       []byte
	CenterLat      *float64
	CenterLng      *float64
	IsActive       bool
}

func (p CoverageZoneParams) values() map[string]any {
	return map[string]any{
		"name":             p.Name,
		"comuna_id":        p.ComunaID,
		"commune":          p.Commune,
		"region":           p.Region,
		"locality":         p.Locality,
		"postal_code":      p.PostalCode,
		"delivery_slot_id": p.DeliverySlotID,
		"max_capacity":     p.MaxCapacity,
		"boundary":         p.Boundary,
		"center_lat":       p.CenterLat,
		"center_lng":       p.CenterLng,
		"is_active":        p.IsActive,
	}
}

func (q *Queries) CreateCoverageZone(ctx context.Context, db DBTX, arg CoverageZoneParams) (int64, error) {
	return insertReturningID(ctx, db, psql.Insert("coverage_zones").SetMap(arg.values()))
}

func (q *Queries) UpdateCoverageZone(ctx context.Context, db DBTX, id int64, arg CoverageZoneParams) error {
	return execAffecting(ctx, db, psql.Update("coverage_zones").
		SetMap(arg.values()).
		Where(squirrel.Eq{"id": id}))
}

func (q *Queries) DeleteCoverageZone(ctx context.Context, db DBTX, id int64) error {
	return execAffecting(ctx, db, psql.Delete("coverage_zones").Where(squirrel.Eq{"id": id}))
}

func (q *Queries) GetCoverageZone(ctx context.Context, db DBTX, id int64) (CoverageZone, error) {
	return selectOne[CoverageZone](ctx, db, psql.Select(zoneColumns...).
		From("coverage_zones").
		Where(squirrel.Eq{"id": id}))
}

func (q *Queries) ListCoverageZones(ctx context.Context, db DBTX) ([]CoverageZone, error) {
	return selectAll[CoverageZone](ctx, db, psql.Select(zoneColumns...).
		From("coverage_zones").
		OrderBy("id"))
}

func (q *Queries) ListActiveCoverageZones(ctx context.Context, db DBTX) ([]CoverageZone, error) {
	return selectAll[CoverageZone](ctx, db, psql.Select(zoneColumns...).
		From("coverage_zones").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("id"))
}
