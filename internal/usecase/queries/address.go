package queries

import (
	"context"
)

type AddressReadStore interface {
	FindByID(ctx context.Context, id int64) (*AddressView, error)
	List(ctx context.Context, customerID *int64) ([]*AddressView, error)
}

type AddressQueries interface {
	GetByID(ctx context.Context, id int64) (*AddressView, error)
	// List returns every address, or only the customer's when customerID is set.
	List(ctx context.Context, customerID *int64) ([]*AddressView, error)
}

type addressQueriesImpl struct {
	repo AddressReadStore
}

func NewAddressQueries(repo AddressReadStore) AddressQueries {
	return &addressQueriesImpl{repo: repo}
}

func (q *addressQueriesImpl) GetByID(ctx context.Context, id int64) (*AddressView, error) {
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrAddressNotFound)
	}
	return v, nil
}

func (q *addressQueriesImpl) List(ctx context.Context, customerID *int64) ([]*AddressView, error) {
	return q.repo.List(ctx, customerID)
}
