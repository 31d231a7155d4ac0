package queries

import (
	"context"
)

type CustomerReadStore interface {
	FindByID(ctx context.Context, id int64) (*CustomerView, error)
	FindByEmail(ctx context.Context, email string) (*CustomerView, error)
	List(ctx context.Context) ([]*CustomerView, error)
}

type CustomerQueries interface {
	GetByID(ctx context.Context, id int64) (*CustomerView, error)
	GetByEmail(ctx context.Context, email string) (*CustomerView, error)
	List(ctx context.Context) ([]*CustomerView, error)
}

type customerQueriesImpl struct {
	repo CustomerReadStore
}

func NewCustomerQueries(repo CustomerReadStore) CustomerQueries {
	return &customerQueriesImpl{repo: repo}
}

func (q *customerQueriesImpl) GetByID(ctx context.Context, id int64) (*CustomerView, error) {
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrCustomerNotFound)
	}
	return v, nil
}

func (q *customerQueriesImpl) GetByEmail(ctx context.Context, email string) (*CustomerView, error) {
	v, err := q.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, notFound(err, ErrCustomerNotFound)
	}
	return v, nil
}

func (q *customerQueriesImpl) List(ctx context.Context) ([]*CustomerView, error) {
	return q.repo.List(ctx)
}
