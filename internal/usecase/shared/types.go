package shared

import (
	"delivery-admin/internal/domain/availability"
)

type CustomerSnapshot struct {
	ID       int64
	FullName string
	Email    string
	Type     string
}

type CommuneSnapshot struct {
	ID     int64
	CityID int64
	Name   string
}

// ZoneBoundary is an active zone with its closed boundary ring, used to place
// an address by coordinates.
type ZoneBoundary struct {
	ID       int64
	Boundary []availability.Point
}
