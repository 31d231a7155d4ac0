package repository

import (
	"context"

	"delivery-admin/internal/domain/timeslot"
	"delivery-admin/internal/infra"
	"delivery-admin/internal/infra/pgsql"
	"delivery-admin/internal/infra/repository/converter"
)

type TemplateWriteQueries interface {
	CreateTimeSlotTemplate(ctx context.Context, db pgsql.DBTX, arg pgsql.TimeSlotTemplateParams) (int64, error)
	UpdateTimeSlotTemplate(ctx context.Context, db pgsql.DBTX, id int64, arg pgsql.TimeSlotTemplateParams) error
	DeleteTimeSlotTemplate(ctx context.Context, db pgsql.DBTX, id int64) error
	GetTimeSlotTemplate(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.TimeSlotTemplate, error)
}

type TemplateRepository struct {
	queries TemplateWriteQueries
	db      pgsql.DBTX
}

func NewTemplateRepository(queries TemplateWriteQueries, db pgsql.DBTX) *TemplateRepository {
	return &TemplateRepository{
		queries: queries,
		db:      db,
	}
}

func (r *TemplateRepository) FindByID(ctx context.Context, id int64) (*timeslot.Template, error) {
	row, err := r.queries.GetTimeSlotTemplate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get time slot template", err)
	}
	return converter.TemplateFromRow(row), nil
}

func (r *TemplateRepository) Create(ctx context.Context, t *timeslot.Template) (int64, error) {
	id, err := r.queries.CreateTimeSlotTemplate(ctx, r.db, converter.TemplateToParams(t))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create time slot template", err)
	}
	return id, nil
}

func (r *TemplateRepository) Update(ctx context.Context, t *timeslot.Template) error {
	if err := r.queries.UpdateTimeSlotTemplate(ctx, r.db, t.ID(), converter.TemplateToParams(t)); err != nil {
		return infra.WrapRepoErr("failed to update time slot template", err)
	}
	return nil
}

func (r *TemplateRepository) Delete(ctx context.Context, id int64) error {
	if err := r.queries.DeleteTimeSlotTemplate(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to delete time slot template", err)
	}
	return nil
}
