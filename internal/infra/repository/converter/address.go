package converter

import (
	"delivery-admin/internal/domain/address"
	"delivery-admin/internal/domain/availability"
	"delivery-admin/internal/infra/pgsql"
)

func AddressToParams(a *address.Address) pgsql.DeliveryAddressParams {
	params := pgsql.DeliveryAddressParams{
		CustomerID:     a.CustomerID(),
		ZoneCoverageID: a.ZoneID(),
		ComunaID:       a.ComunaID(),
		Street:         a.Street(),
		Locality:       a.Locality(),
		Commune:        a.Commune(),
		Region:         a.Region(),
		PostalCode:     a.PostalCode(),
		IsDefault:      a.IsDefault(),
	}
	if loc := a.Location(); loc != nil {
		lat, lng := loc.Lat, loc.Lng
		params.Latitude = &lat
		params.Longitude = &lng
	}
	return params
}

func AddressFromRow(row pgsql.DeliveryAddress) *address.Address {
	var loc *availability.Point
	if row.Latitude != nil && row.Longitude != nil {
		loc = &availability.Point{Lat: *row.Latitude, Lng: *row.Longitude}
	}
	return address.ReconstructAddress(
		row.ID, row.CustomerID,
		row.ZoneCoverageID, row.ComunaID,
		row.Street, row.Locality, row.Commune, row.Region,
		row.PostalCode,
		loc,
		row.IsDefault,
		row.CreatedAt,
	)
}

func AddressSnapshotFromRow(row pgsql.DeliveryAddress) availability.Address {
	return availability.Address{ID: row.ID, CustomerID: row.CustomerID, ZoneID: row.ZoneCoverageID}
}
