//go:build unit || e2e

package builder

import (
	"delivery-admin/internal/domain/availability"
	"delivery-admin/internal/domain/zone"
	reqdto "delivery-admin/internal/handler/dto/request"
	"delivery-admin/internal/pkg/ptr"
	"delivery-admin/internal/usecase/queries"
)

type ZoneBuilder struct {
	ID             int64
	Name           string
	Commune        string
	Region         string
	DeliverySlotID *int64
	MaxCapacity    int
	Boundary       []availability.Point
	IsActive       bool
}

// NewZoneBuilder covers a square around central Santiago that contains the
// default AddressBuilder location.
func NewZoneBuilder() *ZoneBuilder {
	return &ZoneBuilder{
		ID:             3,
		Name:           "Santiago Centro",
		Commune:        "Santiago",
		Region:         "Región Metropolitana",
		DeliverySlotID: ptr.Of(int64(7)),
		MaxCapacity:    50,
		Boundary: []availability.Point{
			{Lat: -33.40, Lng: -70.70},
			{Lat: -33.40, Lng: -70.60},
			{Lat: -33.50, Lng: -70.60},
			{Lat: -33.50, Lng: -70.70},
		},
		IsActive: true,
	}
}

func (b *ZoneBuilder) With(mutate func(*ZoneBuilder)) *ZoneBuilder {
	mutate(b)
	return b
}

func (b *ZoneBuilder) WithSlot(slotID *int64) *ZoneBuilder {
	b.DeliverySlotID = slotID
	return b
}

func (b *ZoneBuilder) Fields() zone.Fields {
	maxCapacity, active := b.MaxCapacity, b.IsActive
	return zone.Fields{
		Name:           b.Name,
		Commune:        b.Commune,
		Region:         b.Region,
		DeliverySlotID: b.DeliverySlotID,
		MaxCapacity:    &maxCapacity,
		Boundary:       b.Boundary,
		IsActive:       &active,
	}
}

func (b *ZoneBuilder) BuildDomain() (*zone.Zone, error) {
	return zone.NewZone(b.Fields())
}

func (b *ZoneBuilder) BuildStored() *zone.Zone {
	return zone.ReconstructZone(b.ID, b.Name, nil, b.Commune, b.Region, nil, nil,
		b.DeliverySlotID, b.MaxCapacity, b.Boundary, b.IsActive)
}

func (b *ZoneBuilder) BuildRequestDTO() reqdto.ZoneRequest {
	maxCapacity, active := b.MaxCapacity, b.IsActive
	boundary := zone.GeoJSONFromPoints(b.Boundary)
	return reqdto.ZoneRequest{
		Name:           b.Name,
		Commune:        b.Commune,
		Region:         b.Region,
		DeliverySlotID: b.DeliverySlotID,
		MaxCapacity:    &maxCapacity,
		Boundary:       &boundary,
		IsActive:       &active,
	}
}

func (b *ZoneBuilder) BuildView() *queries.ZoneView {
	loc := availability.Centroid(b.Boundary)
	return &queries.ZoneView{
		ID:             b.ID,
		Name:           b.Name,
		Commune:        b.Commune,
		Region:         b.Region,
		DeliverySlotID: b.DeliverySlotID,
		MaxCapacity:    b.MaxCapacity,
		Boundary:       zone.GeoJSONFromPoints(b.Boundary),
		Vertices:       availability.OpenRing(b.Boundary),
		Location:       &loc,
		IsActive:       b.IsActive,
	}
}

func (b *ZoneBuilder) BuildSnapshot() *availability.Zone {
	return &availability.Zone{ID: b.ID, Active: b.IsActive, SlotID: b.DeliverySlotID, Boundary: b.Boundary}
}
