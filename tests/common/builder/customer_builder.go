//go:build unit || e2e

package builder

import (
	"time"

	"delivery-admin/internal/domain/customer"
	reqdto "delivery-admin/internal/handler/dto/request"
	"delivery-admin/internal/pkg/ptr"
	"delivery-admin/internal/usecase/queries"
	"delivery-admin/internal/usecase/shared"
)

type CustomerBuilder struct {
	ID           int64
	FullName     string
	Email        string
	Phone        *string
	CustomerType string
	CreatedAt    time.Time
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		ID:           1,
		FullName:     "Ana Pérez",
		Email:        "ana@example.com",
		Phone:        ptr.Of("+56 9 1234 5678"),
		CustomerType: string(customer.TypeBuyer),
		CreatedAt:    time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(b)
	return b
}

func (b *CustomerBuilder) WithFullName(name string) *CustomerBuilder {
	b.FullName = name
	return b
}

func (b *CustomerBuilder) WithEmail(email string) *CustomerBuilder {
	b.Email = email
	return b
}

func (b *CustomerBuilder) WithType(t string) *CustomerBuilder {
	b.CustomerType = t
	return b
}

// Build methods
func (b *CustomerBuilder) BuildDomain() (*customer.Customer, error) {
	return customer.NewCustomer(b.FullName, b.Email, b.Phone, b.CustomerType, b.CreatedAt)
}

// BuildStored returns the customer as loaded from the database.
func (b *CustomerBuilder) BuildStored() *customer.Customer {
	t, _ := customer.ParseType(b.CustomerType)
	return customer.ReconstructCustomer(b.ID, b.FullName, b.Email, b.Phone, t, b.CreatedAt)
}

func (b *CustomerBuilder) BuildRequestDTO() reqdto.CustomerRequest {
	return reqdto.CustomerRequest{
		FullName:     b.FullName,
		Email:        b.Email,
		Phone:        b.Phone,
		CustomerType: b.CustomerType,
	}
}

func (b *CustomerBuilder) BuildView() *queries.CustomerView {
	return &queries.CustomerView{
		ID:        b.ID,
		FullName:  b.FullName,
		Email:     b.Email,
		Phone:     b.Phone,
		Type:      b.CustomerType,
		CreatedAt: b.CreatedAt,
	}
}

func (b *CustomerBuilder) BuildSnapshot() *shared.CustomerSnapshot {
	return &shared.CustomerSnapshot{
		ID:       b.ID,
		FullName: b.FullName,
		Email:    b.Email,
		Type:     b.CustomerType,
	}
}
