package deliveryslot

import (
	"errors"
	"time"

	"delivery-admin/internal/domain/availability"
)

var (
	ErrTemplateRequired     = errors.New("time slot template is required")
	ErrDeliveryDateRequired = errors.New("delivery date is required")
)

type Fields struct {
	TemplateID    int64
	DeliveryDate  time.Time
	DeliveryCost  float64
	MaxCapacity   *int
	ReservedCount *int
	IsActive      *bool
}

// Slot is a dated instance of a template with a capacity and a delivery cost.
type Slot struct {
	id            int64
	templateID    int64
	deliveryDate  time.Time
	cost          Money
	maxCapacity   int
	reservedCount int
	isActive      bool
}

func NewSlot(f Fields) (*Slot, error) {
	s := &Slot{isActive: true}
	if err := s.Update(f); err != nil {
		return nil, err
	}
	return s, nil
}

func ReconstructSlot(id, templateID int64, deliveryDate time.Time, cost Money, maxCapacity, reservedCount int, isActive bool) *Slot {
	return &Slot{
		id:            id,
		templateID:    templateID,
		deliveryDate:  DateOnly(deliveryDate),
		cost:          cost,
		maxCapacity:   maxCapacity,
		reservedCount: reservedCount,
		isActive:      isActive,
	}
}

// Update applies f. Nil pointers keep the current value.
func (s *Slot) Update(f Fields) error {
	if f.TemplateID <= 0 {
		return ErrTemplateRequired
	}
	if f.DeliveryDate.IsZero() {
		return ErrDeliveryDateRequired
	}

	maxCapacity := s.maxCapacity
	if f.MaxCapacity != nil {
		maxCapacity = *f.MaxCapacity
	}
	reserved := s.reservedCount
	if f.ReservedCount != nil {
		reserved = *f.ReservedCount
	}

	report := availability.CheckCapacity(float64(maxCapacity), float64(reserved), f.DeliveryCost)
	if !report.Valid() {
		return report.Err()
	}
	cost, err := NewMoneyFromAmount(f.DeliveryCost)
	if err != nil {
		return err
	}

	s.templateID = f.TemplateID
	s.deliveryDate = DateOnly(f.DeliveryDate)
	s.cost = cost
	s.maxCapacity = maxCapacity
	s.reservedCount = reserved
	if f.IsActive != nil {
		s.isActive = *f.IsActive
	}
	return nil
}

// HasRoomFor reports whether one more confirmed reservation fits next to
// confirmedOthers existing ones.
func (s *Slot) HasRoomFor(confirmedOthers int) bool {
	return confirmedOthers+1 <= s.maxCapacity
}

func (s *Slot) ID() int64               { return s.id }
func (s *Slot) TemplateID() int64       { return s.templateID }
func (s *Slot) DeliveryDate() time.Time { return s.deliveryDate }
func (s *Slot) Cost() Money             { return s.cost }
func (s *Slot) MaxCapacity() int        { return s.maxCapacity }
func (s *Slot) ReservedCount() int      { return s.reservedCount }
func (s *Slot) IsActive() bool          { return s.isActive }

func (s *Slot) Snapshot() availability.Slot {
	return availability.Slot{
		ID:            s.id,
		TemplateID:    s.templateID,
		DeliveryDate:  s.deliveryDate,
		CostCents:     s.cost.Cents(),
		MaxCapacity:   s.maxCapacity,
		ReservedCount: s.reservedCount,
		Active:        s.isActive,
	}
}

// DateOnly truncates t to its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
