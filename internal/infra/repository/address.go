package repository

import (
	"context"
	"time"

	"delivery-admin/internal/domain/address"
	"delivery-admin/internal/infra"
	"delivery-admin/internal/infra/pgsql"
	"delivery-admin/internal/infra/repository/converter"
)

type AddressWriteQueries interface {
	CreateDeliveryAddress(ctx context.Context, db pgsql.DBTX, arg pgsql.DeliveryAddressParams, createdAt time.Time) (int64, error)
	UpdateDeliveryAddress(ctx context.Context, db pgsql.DBTX, id int64, arg pgsql.DeliveryAddressParams) error
	ClearDefaultAddresses(ctx context.Context, db pgsql.DBTX, customerID, keepID int64) error
	DeleteDeliveryAddress(ctx context.Context, db pgsql.DBTX, id int64) error
	GetDeliveryAddress(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.DeliveryAddress, error)
}

type AddressRepository struct {
	queries AddressWriteQueries
	db      pgsql.DBTX
}

func NewAddressRepository(queries AddressWriteQueries, db pgsql.DBTX) *AddressRepository {
	return &AddressRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AddressRepository) FindByID(ctx context.Context, id int64) (*address.Address, error) {
	row, err := r.queries.GetDeliveryAddress(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get delivery address", err)
	}
	return converter.AddressFromRow(row), nil
}

// Create stores a and, when it is the default, clears the flag on the
// customer's other addresses.
func (r *AddressRepository) Create(ctx context.Context, a *address.Address) (int64, error) {
	id, err := r.queries.CreateDeliveryAddress(ctx, r.db, converter.AddressToParams(a), a.CreatedAt())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create delivery address", err)
	}
	if a.IsDefault() {
		if err := r.queries.ClearDefaultAddresses(ctx, r.db, a.CustomerID(), id); err != nil {
			return 0, infra.WrapRepoErr("failed to clear default addresses", err)
		}
	}
	return id, nil
}

func (r *AddressRepository) Update(ctx context.Context, a *address.Address) error {
	if err := r.queries.UpdateDeliveryAddress(ctx, r.db, a.ID(), converter.AddressToParams(a)); err != nil {
		return infra.WrapRepoErr("failed to update delivery address", err)
	}
	if a.IsDefault() {
		if err := r.queries.ClearDefaultAddresses(ctx, r.db, a.CustomerID(), a.ID()); err != nil {
			return infra.WrapRepoErr("failed to clear default addresses", err)
		}
	}
	return nil
}

func (r *AddressRepository) Delete(ctx context.Context, id int64) error {
	if err := r.queries.DeleteDeliveryAddress(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to delete delivery address", err)
	}
	return nil
}
