package pgsql

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
)

var customerColumns = []string{"id", "full_name", "email", "phone", "customer_type", "created_at"}

type CreateCustomerParams struct {
	FullName     string
	Email        string
	Phone        *string
	CustomerType string
	CreatedAt    time.Time
}

type UpdateCustomerParams struct {
	ID           int64
	FullName     string
	Email        string
	Phone        *string
	CustomerType string
}

func (q *Queries) CreateCustomer(ctx context.Context, db DBTX, arg CreateCustomerParams) (int64, error) {
	return insertReturningID(ctx, db, psql.Insert("customers").
		Columns("full_name", "email", "phone", "customer_type", "created_at").
		Values(arg.FullName, arg.Email, arg.Phone, arg.CustomerType, arg.CreatedAt))
}

func (q *Queries) UpdateCustomer(ctx context.Context, db DBTX, arg UpdateCustomerParams) error {
	return execAffecting(ctx, db, psql.Update("customers").
		Set("full_name", arg.FullName).
		Set("email", arg.Email).
		Set("phone", arg.Phone).
		Set("customer_type", arg.CustomerType).
		Where(squirrel.Eq{"id": arg.ID}))
}

func (q *Queries) DeleteCustomer(ctx context.Context, db DBTX, id int64) error {
	return execAffecting(ctx, db, psql.Delete("customers").Where(squirrel.Eq{"id": id}))
}

func (q *Queries) GetCustomer(ctx context.Context, db DBTX, id int64) (Customer, error) {
	return selectOne[Customer](ctx, db, psql.Select(customerColumns...).
		From("customers").
		Where(squirrel.Eq{"id": id}))
}

func (q *Queries) GetCustomerByEmail(ctx context.Context, db DBTX, email string) (Customer, error) {
	return selectOne[Customer](ctx, db, psql.Select(customerColumns...).
		From("customers").
		Where("lower(email) = lower(?)", email))
}

func (q *Queries) ListCustomers(ctx context.Context, db DBTX) ([]Customer, error) {
	return selectAll[Customer](ctx, db, psql.Select(customerColumns...).
		From("customers").
		OrderBy("id"))
}
