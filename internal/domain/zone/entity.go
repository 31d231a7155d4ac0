package zone

import (
	"errors"
	"strings"
	"unicode/utf8"

	"delivery-admin/internal/domain/availability"
)

var (
	ErrInvalidName        = errors.New("name is required and must be at most 100 characters")
	ErrInvalidCommune     = errors.New("commune is required and must be at most 100 characters")
	ErrInvalidRegion      = errors.New("region is required and must be at most 100 characters")
	ErrInvalidLocality    = errors.New("locality must be at most 150 characters")
	ErrInvalidPostalCode  = errors.New("postal code must be at most 20 characters")
	ErrNegativeCapacity   = errors.New("maximum capacity cannot be negative")
	ErrBoundaryIsRequired = errors.New("boundary is required")
)

type Fields struct {
	Name           string
	ComunaID       *int64
	Commune        string
	Region         string
	Locality       *string
	PostalCode     *string
	DeliverySlotID *int64
	MaxCapacity    *int
	Boundary       []availability.Point
	IsActive       *bool
}

// Zone is a coverage polygon optionally linked to the delivery slot that
// serves addresses inside it.
type Zone struct {
	id             int64
	name           string
	comunaID       *int64
	commune        string
	region         string
	locality       *string
	postalCode     *string
	deliverySlotID *int64
	maxCapacity    int
	boundary       []availability.Point
	location       availability.Point
	isActive       bool
}

func NewZone(f Fields) (*Zone, error) {
	z := &Zone{isActive: true}
	if err := z.Update(f); err != nil {
		return nil, err
	}
	return z, nil
}

func ReconstructZone(
	id int64,
	name string,
	comunaID *int64,
	commune, region string,
	locality, postalCode *string,
	deliverySlotID *int64,
	maxCapacity int,
	boundary []availability.Point,
	isActive bool,
) *Zone {
	return &Zone{
		id:             id,
		name:           name,
		comunaID:       comunaID,
		commune:        commune,
		region:         region,
		locality:       locality,
		postalCode:     postalCode,
		deliverySlotID: deliverySlotID,
		maxCapacity:    maxCapacity,
		boundary:       availability.CloseRing(boundary),
		location:       availability.Centroid(boundary),
		isActive:       isActive,
	}
}

func (z *Zone) Update(f Fields) error {
	name, err := required(f.Name, 100, ErrInvalidName)
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
	locality, err := optional(f.Locality, 150, ErrInvalidLocality)
	if err != nil {
		return err
	}
	postal, err := optional(f.PostalCode, 20, ErrInvalidPostalCode)
	if err != nil {
		return err
	}

	maxCapacity := z.maxCapacity
	if f.MaxCapacity != nil {
		maxCapacity = *f.MaxCapacity
	}
	if maxCapacity < 0 {
		return ErrNegativeCapacity
	}

	if len(f.Boundary) == 0 {
		return ErrBoundaryIsRequired
	}
	if err := availability.CheckPolygon(f.Boundary); err != nil {
		return err
	}

	z.name = name
	z.comunaID = f.ComunaID
	z.commune = commune
	z.region = region
	z.locality = locality
	z.postalCode = postal
	z.deliverySlotID = f.DeliverySlotID
	z.maxCapacity = maxCapacity
	z.boundary = availability.CloseRing(f.Boundary)
	z.location = availability.Centroid(f.Boundary)
	if f.IsActive != nil {
		z.isActive = *f.IsActive
	}
	return nil
}

// Covers reports whether p is inside the boundary.
func (z *Zone) Covers(p availability.Point) bool {
	return availability.Contains(z.boundary, p)
}

func (z *Zone) ID() int64                      { return z.id }
func (z *Zone) Name() string                   { return z.name }
func (z *Zone) ComunaID() *int64               { return z.comunaID }
func (z *Zone) Commune() string                { return z.commune }
func (z *Zone) Region() string                 { return z.region }
func (z *Zone) Locality() *string              { return z.locality }
func (z *Zone) PostalCode() *string            { return z.postalCode }
func (z *Zone) DeliverySlotID() *int64         { return z.deliverySlotID }
func (z *Zone) MaxCapacity() int               { return z.maxCapacity }
func (z *Zone) Boundary() []availability.Point { return z.boundary }
func (z *Zone) Location() availability.Point   { return z.location }
func (z *Zone) IsActive() bool                 { return z.isActive }

func (z *Zone) Snapshot() availability.Zone {
	return availability.Zone{ID: z.id, Active: z.isActive, SlotID: z.deliverySlotID, Boundary: z.boundary}
}

func required(v string, limit int, errInvalid error) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" || utf8.RuneCountInString(v) > limit {
		return "", errInvalid
	}
	return v, nil
}

// optional trims v and maps blank input to nil.
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
