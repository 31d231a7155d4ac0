package converter

import (
	"delivery-admin/internal/domain/customer"
	"delivery-admin/internal/infra/pgsql"
)

func CustomerToCreateParams(c *customer.Customer) pgsql.CreateCustomerParams {
	return pgsql.CreateCustomerParams{
		FullName:     c.FullName(),
		Email:        c.Email(),
		Phone:        c.Phone(),
		CustomerType: c.Type().String(),
		CreatedAt:    c.CreatedAt(),
	}
}

func CustomerToUpdateParams(c *customer.Customer) pgsql.UpdateCustomerParams {
	return pgsql.UpdateCustomerParams{
		ID:           c.ID(),
		FullName:     c.FullName(),
		Email:        c.Email(),
		Phone:        c.Phone(),
		CustomerType: c.Type().String(),
	}
}

func CustomerFromRow(row pgsql.Customer) *customer.Customer {
	return customer.ReconstructCustomer(row.ID, row.FullName, row.Email, row.Phone, customer.Type(row.CustomerType), row.CreatedAt)
}
