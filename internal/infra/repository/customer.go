package repository

import (
	"context"

	"delivery-admin/internal/domain/customer"
	"delivery-admin/internal/infra"
	"delivery-admin/internal/infra/pgsql"
	"delivery-admin/internal/infra/repository/converter"
)

type CustomerWriteQueries interface {
	CreateCustomer(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateCustomerParams) (int64, error)
	UpdateCustomer(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateCustomerParams) error
	DeleteCustomer(ctx context.Context, db pgsql.DBTX, id int64) error
	GetCustomer(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.Customer, error)
}

type CustomerRepository struct {
	queries CustomerWriteQueries
	db      pgsql.DBTX
}

func NewCustomerRepository(queries CustomerWriteQueries, db pgsql.DBTX) *CustomerRepository {
	return &CustomerRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (*customer.Customer, error) {
	row, err := r.queries.GetCustomer(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get customer", err)
	}
	return converter.CustomerFromRow(row), nil
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) (int64, error) {
	id, err := r.queries.CreateCustomer(ctx, r.db, converter.CustomerToCreateParams(c))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create customer", err)
	}
	return id, nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	if err := r.queries.UpdateCustomer(ctx, r.db, converter.CustomerToUpdateParams(c)); err != nil {
		return infra.WrapRepoErr("failed to update customer", err)
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	if err := r.queries.DeleteCustomer(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to delete customer", err)
	}
	return nil
}
