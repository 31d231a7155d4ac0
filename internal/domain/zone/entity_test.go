//go:build unit

package zone_test

import (
	"testing"

	"delivery-admin/internal/domain/availability"
	"delivery-admin/internal/domain/zone"
	"delivery-admin/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZone(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewZoneBuilder().BuildDomain()
		require.NoError(t, err)

		assert.True(t, actual.IsActive())
		assert.Len(t, actual.Boundary(), 5, "boundary is stored closed")
		assert.InDelta(t, -33.45, actual.Location().Lat, 1e-9)
		assert.InDelta(t, -70.65, actual.Location().Lng, 1e-9)
		assert.True(t, actual.Covers(availability.Point{Lat: -33.45, Lng: -70.65}))
		assert.False(t, actual.Covers(availability.Point{Lat: -33.0, Lng: -70.65}))
	})

	tests := []struct {
		name   string
		mutate func(*builder.ZoneBuilder)
		errIs  error
	}{
		{name: "blank name", mutate: func(b *builder.ZoneBuilder) { b.Name = "" }, errIs: zone.ErrInvalidName},
		{name: "blank commune", mutate: func(b *builder.ZoneBuilder) { b.Commune = "" }, errIs: zone.ErrInvalidCommune},
		{name: "negative capacity", mutate: func(b *builder.ZoneBuilder) { b.MaxCapacity = -1 }, errIs: zone.ErrNegativeCapacity},
		{name: "no boundary", mutate: func(b *builder.ZoneBuilder) { b.Boundary = nil }, errIs: zone.ErrBoundaryIsRequired},
		{name: "two distinct points", mutate: func(b *builder.ZoneBuilder) {
			b.Boundary = []availability.Point{{Lat: 1, Lng: 1}, {Lat: 2, Lng: 2}, {Lat: 1, Lng: 1}}
		}, errIs: availability.ErrInvalidPolygon},
		{name: "triangle", mutate: func(b *builder.ZoneBuilder) {
			b.Boundary = []availability.Point{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 1}, {Lat: 1, Lng: 0}}
		}},
		{name: "no slot link", mutate: func(b *builder.ZoneBuilder) { b.WithSlot(nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := builder.NewZoneBuilder().With(tt.mutate).BuildDomain()
			if tt.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
				return
			}
			require.Nil(t, actual)
			require.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestGeoJSON(t *testing.T) {
	t.Run("positions are lng, lat", func(t *testing.T) {
		g := zone.GeoJSONPolygon{
			Type:        "Polygon",
			Coordinates: [][][2]float64{{{-70.7, -33.4}, {-70.6, -33.4}, {-70.6, -33.5}, {-70.7, -33.4}}},
		}

		pts, err := zone.PointsFromGeoJSON(g)

		require.NoError(t, err)
		assert.Equal(t, availability.Point{Lat: -33.4, Lng: -70.7}, pts[0])
	})

	t.Run("round trip closes the ring", func(t *testing.T) {
		open := builder.NewZoneBuilder().Boundary
		g := zone.GeoJSONFromPoints(open)

		require.Len(t, g.Coordinates, 1)
		ring := g.Coordinates[0]
		assert.Len(t, ring, len(open)+1)
		assert.Equal(t, ring[0], ring[len(ring)-1])
	})

	t.Run("rejects other geometry types", func(t *testing.T) {
		_, err := zone.PointsFromGeoJSON(zone.GeoJSONPolygon{Type: "Point"})
		require.ErrorIs(t, err, zone.ErrInvalidGeoJSON)
	})
}
