package readstore

import (
	"context"

	"delivery-admin/internal/infra"
	"delivery-admin/internal/infra/pgsql"
	"delivery-admin/internal/usecase/queries"
)

type AddressReadQueries interface {
	GetDeliveryAddressView(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.DeliveryAddressView, error)
	ListDeliveryAddressViews(ctx context.Context, db pgsql.DBTX, customerID *int64) ([]pgsql.DeliveryAddressView, error)
}

type AddressReadStore struct {
	queries AddressReadQueries
	db      pgsql.DBTX
}

func NewAddressReadStore(queries AddressReadQueries, db pgsql.DBTX) *AddressReadStore {
	return &AddressReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AddressReadStore) FindByID(ctx context.Context, id int64) (*queries.AddressView, error) {
	row, err := r.queries.GetDeliveryAddressView(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get delivery address", err)
	}
	return addressView(row), nil
}

func (r *AddressReadStore) List(ctx context.Context, customerID *int64) ([]*queries.AddressView, error) {
	rows, err := r.queries.ListDeliveryAddressViews(ctx, r.db, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list delivery addresses", err)
	}
	views := make([]*queries.AddressView, 0, len(rows))
	for _, row := range rows {
		views = append(views, addressView(row))
	}
	return views, nil
}
