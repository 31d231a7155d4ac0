package pgsql

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

type Customer struct {
	ID           int64     `db:"id"`
	FullName     string    `db:"full_name"`
	Email        string    `db:"email"`
	Phone        *string   `db:"phone"`
	CustomerType string    `db:"customer_type"`
	CreatedAt    time.Time `db:"created_at"`
}

type DeliveryAddress struct {
	ID             int64     `db:"id"`
	CustomerID     int64     `db:"customer_id"`
	ZoneCoverageID *int64    `db:"zone_coverage_id"`
	ComunaID       *int64    `db:"comuna_id"`
	Street         string    `db:"street"`
	Locality       string    `db:"locality"`
	Commune        string    `db:"commune"`
	Region         string    `db:"region"`
	PostalCode     *string   `db:"postal_code"`
	Latitude       *float64  `db:"latitude"`
	Longitude      *float64  `db:"longitude"`
	IsDefault      bool      `db:"is_default"`
	CreatedAt      time.Time `db:"created_at"`
}

type DeliveryAddressView struct {
	DeliveryAddress
	ZoneName *string `db:"zone_name"`
}

type TimeSlotTemplate struct {
	ID        int64       `db:"id"`
	StartTime pgtype.Time `db:"start_time"`
	EndTime   pgtype.Time `db:"end_time"`
	IsActive  bool        `db:"is_active"`
}

type DeliverySlot struct {
	ID                 int64     `db:"id"`
	TimeSlotTemplateID int64     `db:"time_slot_template_id"`
	DeliveryDate       time.Time `db:"delivery_date"`
	DeliveryCostCents  int64     `db:"delivery_cost_cents"`
	MaxCapacity        int       `db:"max_capacity"`
	ReservedCount      int       `db:"reserved_count"`
	IsActive           bool      `db:"is_active"`
}

type DeliverySlotView struct {
	DeliverySlot
	StartTime pgtype.Time `db:"start_time"`
	EndTime   pgtype.Time `db:"end_time"`
}

type CoverageZone struct {
	ID             int64    `db:"id"`
	Name           string   `db:"name"`
	ComunaID       *int64   `db:"comuna_id"`
	Commune        string   `db:"commune"`
	Region         string   `db:"region"`
	Locality       *string  `db:"locality"`
	PostalCode     *string  `db:"postal_code"`
	DeliverySlotID *int64   `db:"delivery_slot_id"`
	MaxCapacity    int      `db:"max_capacity"`
	Boundary       []byte   `db:"boundary"`
	CenterLat      *float64 `db:"center_lat"`
	CenterLng      *float64 `db:"center_lng"`
	IsActive       bool     `db:"is_active"`
}

type Reservation struct {
	ID                int64      `db:"id"`
	CustomerID        int64      `db:"customer_id"`
	DeliveryAddressID int64      `db:"delivery_address_id"`
	DeliverySlotID    int64      `db:"delivery_slot_id"`
	ReservedAt        time.Time  `db:"reserved_at"`
	Status            string     `db:"status"`
	CancelledAt       *time.Time `db:"cancelled_at"`
	Version           int64      `db:"version"`
}

type ReservationView struct {
	Reservation
	CustomerName string      `db:"customer_name"`
	Street       string      `db:"street"`
	DeliveryDate time.Time   `db:"delivery_date"`
	StartTime    pgtype.Time `db:"start_time"`
	EndTime      pgtype.Time `db:"end_time"`
}

type ActiveSession struct {
	ID         int64      `db:"id"`
	CustomerID int64      `db:"customer_id"`
	StartedAt  time.Time  `db:"started_at"`
	ExpiresAt  time.Time  `db:"expires_at"`
	EndedAt    *time.Time `db:"ended_at"`
}

type Region struct {
	ID           int64  `db:"id"`
	Name         string `db:"name"`
	Ordinal      int    `db:"ordinal"`
	Abbreviation string `db:"abbreviation"`
}

type City struct {
	ID       int64  `db:"id"`
	RegionID int64  `db:"region_id"`
	Name     string `db:"name"`
}

type Commune struct {
	ID     int64  `db:"id"`
	CityID int64  `db:"city_id"`
	Name   string `db:"name"`
}
