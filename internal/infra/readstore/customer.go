package readstore

import (
	"context"

	"delivery-admin/internal/infra"
	"delivery-admin/internal/infra/pgsql"
	"delivery-admin/internal/usecase/queries"
)

type CustomerReadQueries interface {
	GetCustomer(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.Customer, error)
	GetCustomerByEmail(ctx context.Context, db pgsql.DBTX, email string) (pgsql.Customer, error)
	ListCustomers(ctx context.Context, db pgsql.DBTX) ([]pgsql.Customer, error)
}

type CustomerReadStore struct {
	queries CustomerReadQueries
	db      pgsql.DBTX
}

func NewCustomerReadStore(queries CustomerReadQueries, db pgsql.DBTX) *CustomerReadStore {
	return &CustomerReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CustomerReadStore) FindByID(ctx context.Context, id int64) (*queries.CustomerView, error) {
	row, err := r.queries.GetCustomer(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get customer", err)
	}
	return customerView(row), nil
}

func (r *CustomerReadStore) FindByEmail(ctx context.Context, email string) (*queries.CustomerView, error) {
	row, err := r.queries.GetCustomerByEmail(ctx, r.db, email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get customer by email", err)
	}
	return customerView(row), nil
}

func (r *CustomerReadStore) List(ctx context.Context) ([]*queries.CustomerView, error) {
	rows, err := r.queries.ListCustomers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}
	views := make([]*queries.CustomerView, 0, len(rows))
	for _, row := range rows {
		views = append(views, customerView(row))
	}
	return views, nil
}
