package address

import (
	"errors"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"delivery-admin/internal/domain/availability"
)

var (
	ErrCustomerRequired   = errors.New("customer is required")
	ErrInvalidStreet      = errors.New("street is required and must be at most 200 characters")
	ErrInvalidLocality    = errors.New("locality is required and must be at most 150 characters")
	ErrInvalidCommune     = errors.New("commune is required and must be at most 100 characters")
	ErrInvalidRegion      = errors.New("region is required and must be at most 100 characters")
	ErrInvalidPostalCode  = errors.New("postal code must be at most 20 characters")
	ErrIncompleteLocation = errors.New("latitude and longitude must be given together")
	ErrInvalidLocation    = errors.New("latitude must be within [-90, 90] and longitude within [-180, 180]")
)

type Fields struct {
	CustomerID int64
	ComunaID   *int64
	Street     string
	Locality   string
	Commune    string
	Region     string
	PostalCode *string
	Latitude   *float64
	Longitude  *float64
	IsDefault  *bool
}

type Address struct {
	id         int64
	customerID int64
	zoneID     *int64
	comunaID   *int64
	street     string
	locality   string
	commune    string
	region     string
	postalCode *string
	location   *availability.Point
	isDefault  bool
	createdAt  time.Time
}

func NewAddress(f Fields, now time.Time) (*Address, error) {
	a := &Address{createdAt: now}
	if err := a.Update(f); err != nil {
		return nil, err
	}
	return a, nil
}

func ReconstructAddress(
	id, customerID int64,
	zoneID, comunaID *int64,
	street, locality, commune, region string,
	postalCode *string,
	location *availability.Point,
	isDefault bool,
	createdAt time.Time,
) *Address {
	return &Address{
		id:         id,
		customerID: customerID,
		zoneID:     zoneID,
		comunaID:   comunaID,
		street:     street,
		locality:   locality,
		commune:    commune,
		region:     region,
		postalCode: postalCode,
		location:   location,
		isDefault:  isDefault,
		createdAt:  createdAt,
	}
}

// Update applies f. The zone is left untouched; callers reassign it from the
// new location with AssignZone.
func (a *Address) Update(f Fields) error {
	if f.CustomerID <= 0 {
		return ErrCustomerRequired
	}
	street, err := required(f.Street, 200, ErrInvalidStreet)
	if err != nil {
		return err
	}
	locality, err := required(f.Locality, 150, ErrInvalidLocality)
	if err != nil {
		return err
	}
	commune, err := required(f.Commune, 100, ErrInvalidCommune)
	if err != nil {
		return err
	}
	region, err := required(f.Region, 100, ErrInvalidRegion)
	if err != nil {
		return err
	}
	postal, err := optional(f.PostalCode, 20, ErrInvalidPostalCode)
	if err != nil {
		return err
	}
	loc, err := location(f.Latitude, f.Longitude)
	if err != nil {
		return err
	}

	a.customerID = f.CustomerID
	a.comunaID = f.ComunaID
	a.street = street
	a.locality = locality
	a.commune = commune
	a.region = region
	a.postalCode = postal
	a.location = loc
	if f.IsDefault != nil {
		a.isDefault = *f.IsDefault
	}
	return nil
}

func (a *Address) AssignZone(zoneID *int64) {
	a.zoneID = zoneID
}

func (a *Address) ID() int64                     { return a.id }
func (a *Address) CustomerID() int64             { return a.customerID }
func (a *Address) ZoneID() *int64                { return a.zoneID }
func (a *Address) ComunaID() *int64              { return a.comunaID }
func (a *Address) Street() string                { return a.street }
func (a *Address) Locality() string              { return a.locality }
func (a *Address) Commune() string               { return a.commune }
func (a *Address) Region() string                { return a.region }
func (a *Address) PostalCode() *string           { return a.postalCode }
func (a *Address) Location() *availability.Point { return a.location }
func (a *Address) IsDefault() bool               { return a.isDefault }
func (a *Address) CreatedAt() time.Time          { return a.createdAt }

func (a *Address) Snapshot() availability.Address {
	return availability.Address{ID: a.id, CustomerID: a.customerID, ZoneID: a.zoneID}
}

func location(lat, lng *float64) (*availability.Point, error) {
	if lat == nil && lng == nil {
		return nil, nil
	}
	if lat == nil || lng == nil {
		return nil, ErrIncompleteLocation
	}
	if math.IsNaN(*lat) || math.IsNaN(*lng) ||
		*lat < -90 || *lat > 90 || *lng < -180 || *lng > 180 {
		return nil, ErrInvalidLocation
	}
	return &availability.Point{Lat: *lat, Lng: *lng}, nil
}

func required(v string, limit int, errInvalid error) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" || utf8.RuneCountInString(v) > limit {
		return "", errInvalid
	}
	return v, nil
}

func optional(v *string, limit int, errInvalid error) (*string, error) {
	if v == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(trimmed) > limit {
		return nil, errInvalid
	}
	return &trimmed, nil
}
