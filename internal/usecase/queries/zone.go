package queries

import (
	"context"
)

type ZoneReadStore interface {
	FindByID(ctx context.Context, id int64) (*ZoneView, error)
	List(ctx context.Context) ([]*ZoneView, error)
}

type ZoneQueries interface {
	GetByID(ctx context.Context, id int64) (*ZoneView, error)
	List(ctx context.Context) ([]*ZoneView, error)
}

type zoneQueriesImpl struct {
	repo ZoneReadStore
}

func NewZoneQueries(repo ZoneReadStore) ZoneQueries {
	return &zoneQueriesImpl{repo: repo}
}

func (q *zoneQueriesImpl) GetByID(ctx context.Context, id int64) (*ZoneView, error) {
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrZoneNotFound)
	}
	return v, nil
}

func (q *zoneQueriesImpl) List(ctx context.Context) ([]*ZoneView, error) {
	return q.repo.List(ctx)
}
