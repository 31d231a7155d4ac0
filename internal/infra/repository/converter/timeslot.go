package converter

import (
	"delivery-admin/internal/domain/availability"
	"delivery-admin/internal/domain/deliveryslot"
	"delivery-admin/internal/domain/timeslot"
	"delivery-admin/internal/infra/pgsql"
)

func TemplateToParams(t *timeslot.Template) pgsql.TimeSlotTemplateParams {
	return pgsql.TimeSlotTemplateParams{
		StartTime: ClockToPgtype(t.Start()),
		EndTime:   ClockToPgtype(t.End()),
		IsActive:  t.IsActive(),
	}
}

func TemplateFromRow(row pgsql.TimeSlotTemplate) *timeslot.Template {
	return timeslot.ReconstructTemplate(row.ID, ClockFromPgtype(row.StartTime), ClockFromPgtype(row.EndTime), row.IsActive)
}

func TemplateSnapshotFromRow(row pgsql.TimeSlotTemplate) availability.Template {
	return availability.Template{
		ID:     row.ID,
		Start:  ClockFromPgtype(row.StartTime),
		End:    ClockFromPgtype(row.EndTime),
		Active: row.IsActive,
	}
}

func SlotToParams(s *deliveryslot.Slot) pgsql.DeliverySlotParams {
	return pgsql.DeliverySlotParams{
		TimeSlotTemplateID: s.TemplateID(),
		DeliveryDate:       s.DeliveryDate(),
		DeliveryCostCents:  s.Cost().Cents(),
		MaxCapacity:        s.MaxCapacity(),
		ReservedCount:      s.ReservedCount(),
		IsActive:           s.IsActive(),
	}
}

func SlotFromRow(row pgsql.DeliverySlot) (*deliveryslot.Slot, error) {
	cost, err := deliveryslot.NewMoney(row.DeliveryCostCents)
	if err != nil {
		return nil, err
	}
	return deliveryslot.ReconstructSlot(
		row.ID, row.TimeSlotTemplateID, row.DeliveryDate, cost,
		row.MaxCapacity, row.ReservedCount, row.IsActive,
	), nil
}

func SlotSnapshotFromRow(row pgsql.DeliverySlot) availability.Slot {
	return availability.Slot{
		ID:            row.ID,
		TemplateID:    row.TimeSlotTemplateID,
		DeliveryDate:  deliveryslot.DateOnly(row.DeliveryDate),
		CostCents:     row.DeliveryCostCents,
		MaxCapacity:   row.MaxCapacity,
		ReservedCount: row.ReservedCount,
		Active:        row.IsActive,
	}
}
