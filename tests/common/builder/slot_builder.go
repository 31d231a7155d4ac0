//go:build unit || e2e

package builder

import (
	"time"

	"delivery-admin/internal/domain/availability"
	"delivery-admin/internal/domain/deliveryslot"
	"delivery-admin/internal/domain/timeslot"
	reqdto "delivery-admin/internal/handler/dto/request"
	"delivery-admin/internal/usecase/queries"
)

type TemplateBuilder struct {
	ID        int64
	StartTime string
	EndTime   string
	IsActive  bool
}

func NewTemplateBuilder() *TemplateBuilder {
	return &TemplateBuilder{ID: 1, StartTime: "09:00", EndTime: "13:00", IsActive: true}
}

func (b *TemplateBuilder) With(mutate func(*TemplateBuilder)) *TemplateBuilder {
	mutate(b)
	return b
}

func (b *TemplateBuilder) WithWindow(start, end string) *TemplateBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *TemplateBuilder) BuildDomain() (*timeslot.Template, error) {
	active := b.IsActive
	return timeslot.NewTemplate(b.StartTime, b.EndTime, &active)
}

func (b *TemplateBuilder) BuildStored() *timeslot.Template {
	return timeslot.ReconstructTemplate(b.ID,
		availability.MustParseClock(b.StartTime), availability.MustParseClock(b.EndTime), b.IsActive)
}

func (b *TemplateBuilder) BuildRequestDTO() reqdto.TemplateRequest {
	active := b.IsActive
	return reqdto.TemplateRequest{StartTime: b.StartTime, EndTime: b.EndTime, IsActive: &active}
}

func (b *TemplateBuilder) BuildView() *queries.TemplateView {
	return &queries.TemplateView{ID: b.ID, StartTime: b.StartTime, EndTime: b.EndTime, IsActive: b.IsActive}
}

func (b *TemplateBuilder) BuildSnapshot() *availability.Template {
	return &availability.Template{
		ID:     b.ID,
		Start:  availability.MustParseClock(b.StartTime),
		End:    availability.MustParseClock(b.EndTime),
		Active: b.IsActive,
	}
}

type SlotBuilder struct {
	ID            int64
	TemplateID    int64
	DeliveryDate  time.Time
	DeliveryCost  float64
	MaxCapacity   int
	ReservedCount int
	IsActive      bool
}

func NewSlotBuilder() *SlotBuilder {
	return &SlotBuilder{
		ID:           7,
		TemplateID:   1,
		DeliveryDate: time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		DeliveryCost: 2990,
		MaxCapacity:  10,
		IsActive:     true,
	}
}

func (b *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(b)
	return b
}

func (b *SlotBuilder) WithCapacity(maxCapacity, reserved int) *SlotBuilder {
	b.MaxCapacity = maxCapacity
	b.ReservedCount = reserved
	return b
}

func (b *SlotBuilder) Fields() deliveryslot.Fields {
	maxCapacity, reserved, active := b.MaxCapacity, b.ReservedCount, b.IsActive
	return deliveryslot.Fields{
		TemplateID:    b.TemplateID,
		DeliveryDate:  b.DeliveryDate,
		DeliveryCost:  b.DeliveryCost,
		MaxCapacity:   &maxCapacity,
		ReservedCount: &reserved,
		IsActive:      &active,
	}
}

func (b *SlotBuilder) BuildDomain() (*deliveryslot.Slot, error) {
	return deliveryslot.NewSlot(b.Fields())
}

func (b *SlotBuilder) BuildStored() *deliveryslot.Slot {
	cost, _ := deliveryslot.NewMoneyFromAmount(b.DeliveryCost)
	return deliveryslot.ReconstructSlot(b.ID, b.TemplateID, b.DeliveryDate, cost, b.MaxCapacity, b.ReservedCount, b.IsActive)
}

func (b *SlotBuilder) BuildRequestDTO() reqdto.SlotRequest {
	maxCapacity, reserved, active := b.MaxCapacity, b.ReservedCount, b.IsActive
	return reqdto.SlotRequest{
		TimeSlotTemplateID: b.TemplateID,
		DeliveryDate:       b.DeliveryDate.Format(time.DateOnly),
		DeliveryCost:       b.DeliveryCost,
		MaxCapacity:        &maxCapacity,
		ReservedCount:      &reserved,
		IsActive:           &active,
	}
}

func (b *SlotBuilder) BuildView() *queries.SlotView {
	return &queries.SlotView{
		ID:                 b.ID,
		TimeSlotTemplateID: b.TemplateID,
		DeliveryDate:       b.DeliveryDate.Format(time.DateOnly),
		DeliveryCost:       b.DeliveryCost,
		MaxCapacity:        b.MaxCapacity,
		ReservedCount:      b.ReservedCount,
		IsActive:           b.IsActive,
		StartTime:          "09:00",
		EndTime:            "13:00",
	}
}

func (b *SlotBuilder) BuildSnapshot() *availability.Slot {
	s := b.BuildStored().Snapshot()
	return &s
}
