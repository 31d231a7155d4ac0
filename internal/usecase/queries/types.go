package queries

import (
	"time"

	"delivery-admin/internal/domain/availability"
	"delivery-admin/internal/domain/zone"
)

const (
	DateLayout = "2006-01-02"
)

type CustomerView struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

type AddressView struct {
	ID             int64     `json:"id"`
	CustomerID     int64     `json:"customerId"`
	ZoneCoverageID *int64    `json:"zoneCoverageId"`
	ZoneName       *string   `json:"zoneName,omitempty"`
	ComunaID       *int64    `json:"comunaId,omitempty"`
	Street         string    `json:"street"`
	Locality       string    `json:"locality"`
	Commune        string    `json:"commune"`
	Region         string    `json:"region"`
	PostalCode     *string   `json:"postalCode,omitempty"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	IsDefault      bool      `json:"isDefault"`
	CreatedAt      time.Time `json:"createdAt"`
}

type TemplateView struct {
	ID        int64  `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsActive  bool   `json:"isActive"`
}

type SlotView struct {
	ID                 int64   `json:"id"`
	TimeSlotTemplateID int64   `json:"timeSlotTemplateId"`
	DeliveryDate       string  `json:"deliveryDate"`
	DeliveryCost       float64 `json:"deliveryCost"`
	MaxCapacity        int     `json:"maxCapacity"`
	ReservedCount      int     `json:"reservedCount"`
	IsActive           bool    `json:"isActive"`
	StartTime          string  `json:"startTime"`
	EndTime            string  `json:"endTime"`
}

type ZoneView struct {
	ID             int64                `json:"id"`
	Name           string               `json:"name"`
	ComunaID       *int64               `json:"comunaId,omitempty"`
	Commune        string               `json:"commune"`
	Region         string               `json:"region"`
	Locality       *string              `json:"locality,omitempty"`
	PostalCode     *string              `json:"postalCode,omitempty"`
	DeliverySlotID *int64               `json:"deliverySlotId"`
	MaxCapacity    int                  `json:"maxCapacity"`
	Boundary       zone.GeoJSONPolygon  `json:"boundary"`
	Vertices       []availability.Point `json:"vertices"`
	Location       *availability.Point  `json:"location,omitempty"`
	IsActive       bool                 `json:"isActive"`
}

type RegionView struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Ordinal      int    `json:"ordinal"`
	Abbreviation string `json:"abbreviation"`
}

type CityView struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	RegionID int64  `json:"regionId"`
}

type CommuneView struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	CityID int64  `json:"cityId"`
}

type ReservationView struct {
	ID                int64      `json:"id"`
	CustomerID        int64      `json:"customerId"`
	CustomerName      string     `json:"customerName"`
	DeliveryAddressID int64      `json:"deliveryAddressId"`
	Street            string     `json:"street"`
	DeliverySlotID    int64      `json:"deliverySlotId"`
	ReservationDate   string     `json:"reservationDate"`
	ReservationTime   string     `json:"reservationTime"`
	WindowStart       string     `json:"windowStart"`
	WindowEnd         string     `json:"windowEnd"`
	Status            string     `json:"status"`
	ReservedAt        time.Time  `json:"reservedAt"`
	CancelledAt       *time.Time `json:"cancelledAt,omitempty"`
	Version           int64      `json:"version"`
}

type SessionView struct {
	ID         int64      `json:"id"`
	CustomerID int64      `json:"customerId"`
	StartedAt  time.Time  `json:"startedAt"`
	ExpiresAt  time.Time  `json:"expiresAt"`
	EndedAt    *time.Time `json:"endedAt,omitempty"`
	Active     bool       `json:"active"`
}

// AvailabilitySnapshot is everything the resolver reads for one evaluation.
type AvailabilitySnapshot struct {
	Address   *availability.Address
	Zones     []availability.Zone
	Slots     []availability.Slot
	Templates []availability.Template
}

type AvailabilityView struct {
	AddressID      *int64     `json:"addressId,omitempty"`
	RequiredSlotID *int64     `json:"requiredSlotId"`
	Preserved      bool       `json:"preserved"`
	Slots          []SlotView `json:"slots"`
}

type SuggestionView struct {
	DeliveryAddressID int64  `json:"deliveryAddressId"`
	DeliverySlotID    int64  `json:"deliverySlotId"`
	ReservationDate   string `json:"reservationDate"`
	ReservationTime   string `json:"reservationTime"`
}

type SessionCustomer struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Type     string `json:"type"`
}

// SessionResult describes a live session and who owns it. Token is only set
// right after login.
type SessionResult struct {
	Session  SessionView     `json:"session"`
	Customer SessionCustomer `json:"customer"`
	Token    string          `json:"token,omitempty"`
}
