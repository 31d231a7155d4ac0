package queries

import (
	"context"
)

type TemplateReadStore interface {
	FindByID(ctx context.Context, id int64) (*TemplateView, error)
	List(ctx context.Context) ([]*TemplateView, error)
}

type SlotReadStore interface {
	FindByID(ctx context.Context, id int64) (*SlotView, error)
	List(ctx context.Context) ([]*SlotView, error)
}

type TemplateQueries interface {
	GetByID(ctx context.Context, id int64) (*TemplateView, error)
	List(ctx context.Context) ([]*TemplateView, error)
}

type SlotQueries interface {
	GetByID(ctx context.Context, id int64) (*SlotView, error)
	List(ctx context.Context) ([]*SlotView, error)
}

type templateQueriesImpl struct {
	repo TemplateReadStore
}

func NewTemplateQueries(repo TemplateReadStore) TemplateQueries {
	return &templateQueriesImpl{repo: repo}
}

func (q *templateQueriesImpl) GetByID(ctx context.Context, id int64) (*TemplateView, error) {
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrTemplateNotFound)
	}
	return v, nil
}

func (q *templateQueriesImpl) List(ctx context.Context) ([]*TemplateView, error) {
	return q.repo.List(ctx)
}

type slotQueriesImpl struct {
	repo SlotReadStore
}

func NewSlotQueries(repo SlotReadStore) SlotQueries {
	return &slotQueriesImpl{repo: repo}
}

func (q *slotQueriesImpl) GetByID(ctx context.Context, id int64) (*SlotView, error) {
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrSlotNotFound)
	}
	return v, nil
}

func (q *slotQueriesImpl) List(ctx context.Context) ([]*SlotView, error) {
	return q.repo.List(ctx)
}
