package readstore

import (
	"delivery-admin/internal/domain/availability"
	"delivery-admin/internal/domain/zone"
	"delivery-admin/internal/infra/pgsql"
	"delivery-admin/internal/infra/repository/converter"
	"delivery-admin/internal/usecase/queries"
)

func customerView(row pgsql.Customer) *queries.CustomerView {
	return &queries.CustomerView{
		ID:        row.ID,
		FullName:  row.FullName,
		Email:     row.Email,
		Phone:     row.Phone,
		Type:      row.CustomerType,
		CreatedAt: row.CreatedAt,
	}
}

func addressView(row pgsql.DeliveryAddressView) *queries.AddressView {
	return &queries.AddressView{
		ID:             row.ID,
		CustomerID:     row.CustomerID,
		ZoneCoverageID: row.ZoneCoverageID,
		ZoneName:       row.ZoneName,
		ComunaID:       row.ComunaID,
		Street:         row.Street,
		Locality:       row.Locality,
		Commune:        row.Commune,
		Region:         row.Region,
		PostalCode:     row.PostalCode,
		Latitude:       row.Latitude,
		Longitude:      row.Longitude,
		IsDefault:      row.IsDefault,
		CreatedAt:      row.CreatedAt,
	}
}

func templateView(row pgsql.TimeSlotTemplate) *queries.TemplateView {
	return &queries.TemplateView{
		ID:        row.ID,
		StartTime: converter.ClockFromPgtype(row.StartTime).String(),
		EndTime:   converter.ClockFromPgtype(row.EndTime).String(),
		IsActive:  row.IsActive,
	}
}

func slotView(row pgsql.DeliverySlotView) *queries.SlotView {
	return &queries.SlotView{
		ID:                 row.ID,
		TimeSlotTemplateID: row.TimeSlotTemplateID,
		DeliveryDate:       row.DeliveryDate.Format(queries.DateLayout),
		DeliveryCost:       float64(row.DeliveryCostCents) / 100.0,
		MaxCapacity:        row.MaxCapacity,
		ReservedCount:      row.ReservedCount,
		IsActive:           row.IsActive,
		StartTime:          converter.ClockFromPgtype(row.StartTime).String(),
		EndTime:            converter.ClockFromPgtype(row.EndTime).String(),
	}
}

func zoneView(row pgsql.CoverageZone) (*queries.ZoneView, error) {
	boundary, err := converter.BoundaryFromRow(row.Boundary)
	if err != nil {
		return nil, err
	}
	v := &queries.ZoneView{
		ID:             row.ID,
		Name:           row.Name,
		ComunaID:       row.ComunaID,
		Commune:        row.Commune,
		Region:         row.Region,
		Locality:       row.Locality,
		PostalCode:     row.PostalCode,
		DeliverySlotID: row.DeliverySlotID,
		MaxCapacity:    row.MaxCapacity,
		Boundary:       zone.GeoJSONFromPoints(boundary),
		Vertices:       availability.OpenRing(boundary),
		IsActive:       row.IsActive,
	}
	if row.CenterLat != nil && row.CenterLng != nil {
		v.Location = &availability.Point{Lat: *row.CenterLat, Lng: *row.CenterLng}
	}
	return v, nil
}

func reservationView(row pgsql.ReservationView) *queries.ReservationView {
	reservedAt := row.ReservedAt.UTC()
	return &queries.ReservationView{
		ID:                row.ID,
		CustomerID:        row.CustomerID,
		CustomerName:      row.CustomerName,
		DeliveryAddressID: row.DeliveryAddressID,
		Street:            row.Street,
		DeliverySlotID:    row.DeliverySlotID,
		ReservationDate:   reservedAt.Format(queries.DateLayout),
		ReservationTime:   reservedAt.Format("15:04"),
		WindowStart:       converter.ClockFromPgtype(row.StartTime).String(),
		WindowEnd:         converter.ClockFromPgtype(row.EndTime).String(),
		Status:            row.Status,
		ReservedAt:        reservedAt,
		CancelledAt:       row.CancelledAt,
		Version:           row.Version,
	}
}
