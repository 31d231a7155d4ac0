package pgsql

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgtype"
)

var templateColumns = []string{"id", "start_time", "end_time", "is_active"}

type TimeSlotTemplateParams struct {
	StartTime pgtype.Time
	EndTime   pgtype.Time
	IsActive  bool
}

func (q *Queries) CreateTimeSlotTemplate(ctx context.Context, db DBTX, arg TimeSlotTemplateParams) (int64, error) {
	return insertReturningID(ctx, db, psql.Insert("time_slot_templates").
		Columns("start_time", "end_time", "is_active").
		Values(arg.StartTime, arg.EndTime, arg.IsActive))
}

func (q *Queries) UpdateTimeSlotTemplate(ctx context.Context, db DBTX, id int64, arg TimeSlotTemplateParams) error {
	return execAffecting(ctx, db, psql.Update("time_slot_templates").
		Set("start_time", arg.StartTime).
		Set("end_time", arg.EndTime).
		Set("is_active", arg.IsActive).
		Where(squirrel.Eq{"id": id}))
}

func (q *Queries) DeleteTimeSlotTemplate(ctx context.Context, db DBTX, id int64) error {
	return execAffecting(ctx, db, psql.Delete("time_slot_templates").Where(squirrel.Eq{"id": id}))
}

func (q *Queries) GetTimeSlotTemplate(ctx context.Context, db DBTX, id int64) (TimeSlotTemplate, error) {
	return selectOne[TimeSlotTemplate](ctx, db, psql.Select(templateColumns...).
		From("time_slot_templates").
		Where(squirrel.Eq{"id": id}))
}

func (q *Queries) ListTimeSlotTemplates(ctx context.Context, db DBTX) ([]TimeSlotTemplate, error) {
	return selectAll[TimeSlotTemplate](ctx, db, psql.Select(templateColumns...).
		From("time_slot_templates").
		OrderBy("start_time", "id"))
}
