package availability

import (
	"errors"
	"math"
)

var ErrInvalidPolygon = errors.New("a valid polygon needs at least 3 points")

type Point struct {
	Lat float64
	Lng float64
}

// DistinctCount counts unique vertices, ignoring order and repetition.
func DistinctCount(ring []Point) int {
	seen := make(map[Point]struct{}, len(ring))
	for _, p := range ring {
		seen[p] = struct{}{}
	}
	return len(seen)
}

func ValidPolygon(ring []Point) bool {
	return DistinctCount(ring) >= 3
}

func CheckPolygon(ring []Point) error {
	if !ValidPolygon(ring) {
		return ErrInvalidPolygon
	}
	return nil
}

// CloseRing returns a copy of ring whose last point equals its first.
func CloseRing(ring []Point) []Point {
	out := make([]Point, len(ring), len(ring)+1)
	copy(out, ring)
	if len(out) == 0 {
		return out
	}
	if out[len(out)-1] != out[0] {
		out = append(out, out[0])
	}
	return out
}

// OpenRing returns a copy of ring without the single closing point, if present.
func OpenRing(ring []Point) []Point {
	n := len(ring)
	if n >= 2 && ring[n-1] == ring[0] {
		n--
	}
	out := make([]Point, n)
	copy(out, ring[:n])
	return out
}

// Contains reports whether p lies inside ring using the even-odd rule.
// Points exactly on an edge may fall either way.
func Contains(ring []Point, p Point) bool {
	pts := OpenRing(ring)
	if len(pts) < 3 {
		return false
	}
	inside := false
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		a, b := pts[i], pts[j]
		if (a.Lat > p.Lat) != (b.Lat > p.Lat) {
			x := (b.Lng-a.Lng)*(p.Lat-a.Lat)/(b.Lat-a.Lat) + a.Lng
			if p.Lng < x {
				inside = !inside
			}
		}
	}
	return inside
}

// Centroid returns the area centroid of the ring, or the vertex mean when the
// ring is degenerate.
func Centroid(ring []Point) Point {
	pts := OpenRing(ring)
	if len(pts) == 0 {
		return Point{}
	}

	var area, cx, cy float64
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		cross := a.Lng*b.Lat - b.Lng*a.Lat
		area += cross
		cx += (a.Lng + b.Lng) * cross
		cy += (a.Lat + b.Lat) * cross
	}
	if math.Abs(area) < 1e-12 {
		var sumLat, sumLng float64
		for _, p := range pts {
			sumLat += p.Lat
			sumLng += p.Lng
		}
		n := float64(len(pts))
		return Point{Lat: sumLat / n, Lng: sumLng / n}
	}
	area /= 2
	return Point{Lat: cy / (6 * area), Lng: cx / (6 * area)}
}
