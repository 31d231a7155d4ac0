package readstore

import (
	"context"

	"delivery-admin/internal/infra"
	"delivery-admin/internal/infra/pgsql"
	"delivery-admin/internal/usecase/queries"
)

type TemplateReadQueries interface {
	GetTimeSlotTemplate(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.TimeSlotTemplate, error)
	ListTimeSlotTemplates(ctx context.Context, db pgsql.DBTX) ([]pgsql.TimeSlotTemplate, error)
}

type TemplateReadStore struct {
	queries TemplateReadQueries
	db      pgsql.DBTX
}

func NewTemplateReadStore(queries TemplateReadQueries, db pgsql.DBTX) *TemplateReadStore {
	return &TemplateReadStore{queries: queries, db: db}
}

func (r *TemplateReadStore) FindByID(ctx context.Context, id int64) (*queries.TemplateView, error) {
	row, err := r.queries.GetTimeSlotTemplate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get time slot template", err)
	}
	return templateView(row), nil
}

func (r *TemplateReadStore) List(ctx context.Context) ([]*queries.TemplateView, error) {
	rows, err := r.queries.ListTimeSlotTemplates(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list time slot templates", err)
	}
	views := make([]*queries.TemplateView, 0, len(rows))
	for _, row := range rows {
		views = append(views, templateView(row))
	}
	return views, nil
}

type SlotReadQueries interface {
	GetDeliverySlotView(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.DeliverySlotView, error)
	ListDeliverySlotViews(ctx context.Context, db pgsql.DBTX) ([]pgsql.DeliverySlotView, error)
}

type SlotReadStore struct {
	queries SlotReadQueries
	db      pgsql.DBTX
}

func NewSlotReadStore(queries SlotReadQueries, db pgsql.DBTX) *SlotReadStore {
	return &SlotReadStore{queries: queries, db: db}
}

func (r *SlotReadStore) FindByID(ctx context.Context, id int64) (*queries.SlotView, error) {
	row, err := r.queries.GetDeliverySlotView(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get delivery slot", err)
	}
	return slotView(row), nil
}

// List orders by delivery date, then template.
func (r *SlotReadStore) List(ctx context.Context) ([]*queries.SlotView, error) {
	rows, err := r.queries.ListDeliverySlotViews(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list delivery slots", err)
	}
	views := make([]*queries.SlotView, 0, len(rows))
	for _, row := range rows {
		views = append(views, slotView(row))
	}
	return views, nil
}
