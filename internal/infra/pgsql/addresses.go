package pgsql

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
)

var addressColumns = []string{
	"a.id", "a.customer_id", "a.zone_coverage_id", "a.comuna_id", "a.street", "a.locality",
	"a.commune", "a.region", "a.postal_code", "a.latitude", "a.longitude", "a.is_default", "a.created_at",
}

type DeliveryAddressParams struct {
	CustomerID     int64
	ZoneCoverageID *int64
	ComunaID       *int64
	Street         string
	Locality       string
	Commune        string
	Region         string
	PostalCode     *string
	Latitude       *float64
	Longitude      *float64
	IsDefault      bool
}

func (q *Queries) CreateDeliveryAddress(ctx context.Context, db DBTX, arg DeliveryAddressParams, createdAt time.Time) (int64, error) {
	return insertReturningID(ctx, db, psql.Insert("delivery_addresses").
		Columns("customer_id", "zone_coverage_id", "comuna_id", "street", "locality", "commune",
			"region", "postal_code", "latitude", "longitude", "is_default", "created_at").
		Values(arg.CustomerID, arg.ZoneCoverageID, arg.ComunaID, arg.Street, arg.Locality, arg.Commune,
			arg.Region, arg.PostalCode, arg.Latitude, arg.Longitude, arg.IsDefault, createdAt))
}

func (q *Queries) UpdateDeliveryAddress(ctx context.Context, db DBTX, id int64, arg DeliveryAddressParams) error {
	return execAffecting(ctx, db, psql.Update("delivery_addresses").
		SetMap(map[string]any{
			"customer_id":      arg.CustomerID,
			"zone_coverage_id": arg.ZoneCoverageID,
			"comuna_id":        arg.ComunaID,
			"street":           arg.Street,
			"locality":         arg.Locality,
			"commune":          arg.Commune,
			"region":           arg.Region,
			"postal_code":      arg.PostalCode,
			"latitude":         arg.Latitude,
			"longitude":        arg.Longitude,
			"is_default":       arg.IsDefault,
		}).
		Where(squirrel.Eq{"id": id}))
}

// ClearDefaultAddresses unsets is_default on every other address of the customer.
func (q *Queries) ClearDefaultAddresses(ctx context.Context, db DBTX, customerID, keepID int64) error {
	_, err := exec(ctx, db, psql.Update("delivery_addresses").
		Set("is_default", false).
		Where(squirrel.Eq{"customer_id": customerID, "is_default": true}).
		Where(squirrel.NotEq{"id": keepID}))
	return err
}

func (q *Queries) DeleteDeliveryAddress(ctx context.Context, db DBTX, id int64) error {
	return execAffecting(ctx, db, psql.Delete("delivery_addresses").Where(squirrel.Eq{"id": id}))
}

func (q *Queries) GetDeliveryAddress(ctx context.Context, db DBTX, id int64) (DeliveryAddress, error) {
	return selectOne[DeliveryAddress](ctx, db, psql.Select(addressColumns...).
		From("delivery_addresses a").
		Where(squirrel.Eq{"a.id": id}))
}

func addressViewQuery() squirrel.SelectBuilder {
	return psql.Select(append(addressColumns, "z.name AS zone_name")...).
		From("delivery_addresses a").
		LeftJoin("coverage_zones z ON z.id = a.zone_coverage_id")
}

func (q *Queries) GetDeliveryAddressView(ctx context.Context, db DBTX, id int64) (DeliveryAddressView, error) {
	return selectOne[DeliveryAddressView](ctx, db, addressViewQuery().Where(squirrel.Eq{"a.id": id}))
}

// ListDeliveryAddressViews lists every address, or only those of customerID when it is set.
func (q *Queries) ListDeliveryAddressViews(ctx context.Context, db DBTX, customerID *int64) ([]DeliveryAddressView, error) {
	sb := addressViewQuery().OrderBy("a.id")
	if customerID != nil {
		sb = sb.Where(squirrel.Eq{"a.customer_id": *customerID})
	}
	return selectAll[DeliveryAddressView](ctx, db, sb)
}
