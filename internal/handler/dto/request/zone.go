package request

import (
	"delivery-admin/internal/domain/zone"
)

type ZoneRequest struct {
	Name           string               `json:"name" binding:"required"`
	ComunaID       *int64               `json:"comunaId,omitempty"`
	Commune        string               `json:"commune" binding:"required"`
	Region         string               `json:"region" binding:"required"`
	Locality       *string              `json:"locality,omitempty"`
	PostalCode     *string              `json:"postalCode,omitempty"`
	DeliverySlotID *int64               `json:"deliverySlotId,omitempty"`
	MaxCapacity    *int                 `json:"maxCapacity,omitempty"`
	Boundary       *zone.GeoJSONPolygon `json:"boundary" binding:"required"`
	IsActive       *bool                `json:"isActive,omitempty"`
}
