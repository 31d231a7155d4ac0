package converter

import (
	"encoding/json"

	"delivery-admin/internal/domain/availability"
	"delivery-admin/internal/domain/zone"
	"delivery-admin/internal/infra/pgsql"
)

func ZoneToParams(z *zone.Zone) (pgsql.CoverageZoneParams, error) {
	boundary, err := json.Marshal(zone.GeoJSONFromPoints(z.Boundary()))
	if err != nil {
		return pgsql.CoverageZoneParams{}, err
	}
	center := z.Location()
	return pgsql.CoverageZoneParams{
		Name:           z.Name(),
		ComunaID:       z.ComunaID(),
		Commune:        z.Commune(),
		Region:         z.Region(),
		Locality:       z.Locality(),
		PostalCode:     z.PostalCode(),
		DeliverySlotID: z.DeliverySlotID(),
		MaxCapacity:    z.MaxCapacity(),
		Boundary:       boundary,
		CenterLat:      &center.Lat,
		CenterLng:      &center.Lng,
		IsActive:       z.IsActive(),
	}, nil
}

func BoundaryFromRow(raw []byte) ([]availability.Point, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var g zone.GeoJSONPolygon
	if err := json.Unmarshal(raw, &g); err != nil {
		return nil, err
	}
	return zone.PointsFromGeoJSON(g)
}

func ZoneFromRow(row pgsql.CoverageZone) (*zone.Zone, error) {
	boundary, err := BoundaryFromRow(row.Boundary)
	if err != nil {
		return nil, err
	}
	return zone.ReconstructZone(
		row.ID, row.Name, row.ComunaID, row.Commune, row.Region,
		row.Locality, row.PostalCode, row.DeliverySlotID, row.MaxCapacity,
		boundary, row.IsActive,
	), nil
}

func ZoneSnapshotFromRow(row pgsql.CoverageZone) (availability.Zone, error) {
	boundary, err := BoundaryFromRow(row.Boundary)
	if err != nil {
		return availability.Zone{}, err
	}
	return availability.Zone{ID: row.ID, Active: row.IsActive, SlotID: row.DeliverySlotID, Boundary: boundary}, nil
}
