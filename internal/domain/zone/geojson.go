package zone

import (
	"errors"

	"delivery-admin/internal/domain/availability"
)

var ErrInvalidGeoJSON = errors.New("boundary must be a GeoJSON Polygon")

// GeoJSONPolygon is the wire and storage shape of a boundary. Positions are
// [lng, lat] and only the exterior ring is kept.
type GeoJSONPolygon struct {
	Type        string         `json:"type"`
	Coordinates [][][2]float64 `json:"coordinates"`
}

func PointsFromGeoJSON(g GeoJSONPolygon) ([]availability.Point, error) {
	if g.Type != "Polygon" || len(g.Coordinates) == 0 {
		return nil, ErrInvalidGeoJSON
	}
	ring := g.Coordinates[0]
	pts := make([]availability.Point, 0, len(ring))
	for _, pos := range ring {
		pts = append(pts, availability.Point{Lat: pos[1], Lng: pos[0]})
	}
	return pts, nil
}

func GeoJSONFromPoints(pts []availability.Point) GeoJSONPolygon {
	closed := availability.CloseRing(pts)
	ring := make([][2]float64, 0, len(closed))
	for _, p := range closed {
		ring = append(ring, [2]float64{p.Lng, p.Lat})
	}
	return GeoJSONPolygon{Type: "Polygon", Coordinates: [][][2]float64{ring}}
}
