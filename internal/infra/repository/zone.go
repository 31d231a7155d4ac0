package repository

import (
	"context"

	"delivery-admin/internal/domain/zone"
	"delivery-admin/internal/infra"
	"delivery-admin/internal/infra/pgsql"
	"delivery-admin/internal/infra/repository/converter"
)

type ZoneWriteQueries interface {
	CreateCoverageZone(ctx context.Context, db pgsql.DBTX, arg pgsql.CoverageZoneParams) (int64, error)
	UpdateCoverageZone(ctx context.Context, db pgsql.DBTX, id int64, arg pgsql.CoverageZoneParams) error
	DeleteCoverageZone(ctx context.Context, db pgsql.DBTX, id int64) error
	GetCoverageZone(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.CoverageZone, error)
}

type ZoneRepository struct {
	queries ZoneWriteQueries
	db      pgsql.DBTX
}

func NewZoneRepository(queries ZoneWriteQueries, db pgsql.DBTX) *ZoneRepository {
	return &ZoneRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ZoneRepository) FindByID(ctx context.Context, id int64) (*zone.Zone, error) {
	row, err := r.queries.GetCoverageZone(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get coverage zone", err)
	}
	z, err := converter.ZoneFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid coverage zone boundary", err, infra.KindDBFailure)
	}
	return z, nil
}

func (r *ZoneRepository) Create(ctx context.Context, z *zone.Zone) (int64, error) {
	params, err := converter.ZoneToParams(z)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to encode coverage zone", err, infra.KindDBFailure)
	}
	id, err := r.queries.CreateCoverageZone(ctx, r.db, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create coverage zone", err)
	}
	return id, nil
}

func (r *ZoneRepository) Update(ctx context.Context, z *zone.Zone) error {
	params, err := converter.ZoneToParams(z)
	if err != nil {
		return infra.WrapRepoErr("failed to encode coverage zone", err, infra.KindDBFailure)
	}
	if err := r.queries.UpdateCoverageZone(ctx, r.db, z.ID(), params); err != nil {
		return infra.WrapRepoErr("failed to update coverage zone", err)
	}
	return nil
}

func (r *ZoneRepository) Delete(ctx context.Context, id int64) error {
	if err := r.queries.DeleteCoverageZone(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to delete coverage zone", err)
	}
	return nil
}
