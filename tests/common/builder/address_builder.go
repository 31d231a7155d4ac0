//go:build unit || e2e

package builder

import (
	"time"

	"delivery-admin/internal/domain/address"
	"delivery-admin/internal/domain/availability"
	reqdto "delivery-admin/internal/handler/dto/request"
	"delivery-admin/internal/usecase/queries"
)

type AddressBuilder struct {
	ID         int64
	CustomerID int64
	ZoneID     *int64
	Street     string
	Locality   string
	Commune    string
	Region     string
	PostalCode *string
	Latitude   *float64
	Longitude  *float64
	IsDefault  bool
	CreatedAt  time.Time
}

func NewAddressBuilder() *AddressBuilder {
	lat, lng := -33.45, -70.65
	return &AddressBuilder{
		ID:         5,
		CustomerID: 1,
		Street:     "Av. Providencia 1234",
		Locality:   "Providencia",
		Commune:    "Providencia",
		Region:     "Región Metropolitana",
		Latitude:   &lat,
		Longitude:  &lng,
		CreatedAt:  time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *AddressBuilder) With(mutate func(*AddressBuilder)) *AddressBuilder {
	mutate(b)
	return b
}

func (b *AddressBuilder) WithZone(zoneID int64) *AddressBuilder {
	b.ZoneID = &zoneID
	return b
}

func (b *AddressBuilder) WithoutLocation() *AddressBuilder {
	b.Latitude = nil
	b.Longitude = nil
	return b
}

func (b *AddressBuilder) Fields() address.Fields {
	isDefault := b.IsDefault
	return address.Fields{
		CustomerID: b.CustomerID,
		Street:     b.Street,
		Locality:   b.Locality,
		Commune:    b.Commune,
		Region:     b.Region,
		PostalCode: b.PostalCode,
		Latitude:   b.Latitude,
		Longitude:  b.Longitude,
		IsDefault:  &isDefault,
	}
}

// Build methods
func (b *AddressBuilder) BuildDomain() (*address.Address, error) {
	return address.NewAddress(b.Fields(), b.CreatedAt)
}

func (b *AddressBuilder) BuildStored() *address.Address {
	var loc *availability.Point
	if b.Latitude != nil && b.Longitude != nil {
		loc = &availability.Point{Lat: *b.Latitude, Lng: *b.Longitude}
	}
	return address.ReconstructAddress(b.ID, b.CustomerID, b.ZoneID, nil,
		b.Street, b.Locality, b.Commune, b.Region, b.PostalCode, loc, b.IsDefault, b.CreatedAt)
}

func (b *AddressBuilder) BuildRequestDTO() reqdto.AddressRequest {
	isDefault := b.IsDefault
	return reqdto.AddressRequest{
		CustomerID: b.CustomerID,
		Street:     b.Street,
		Locality:   b.Locality,
		Commune:    b.Commune,
		Region:     b.Region,
		PostalCode: b.PostalCode,
		Latitude:   b.Latitude,
		Longitude:  b.Longitude,
		IsDefault:  &isDefault,
	}
}

func (b *AddressBuilder) BuildView() *queries.AddressView {
	return &queries.AddressView{
		ID:             b.ID,
		CustomerID:     b.CustomerID,
		ZoneCoverageID: b.ZoneID,
		Street:         b.Street,
		Locality:       b.Locality,
		Commune:        b.Commune,
		Region:         b.Region,
		PostalCode:     b.PostalCode,
		Latitude:       b.Latitude,
		Longitude:      b.Longitude,
		IsDefault:      b.IsDefault,
		CreatedAt:      b.CreatedAt,
	}
}

func (b *AddressBuilder) BuildSnapshot() *availability.Address {
	return &availability.Address{ID: b.ID, CustomerID: b.CustomerID, ZoneID: b.ZoneID}
}
