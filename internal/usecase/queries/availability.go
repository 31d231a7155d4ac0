package queries

import (
	"context"

	"delivery-admin/internal/domain/availability"
	"delivery-admin/internal/infra/pgsql"
	"delivery-admin/internal/pkg/metrics"
	"delivery-admin/internal/usecase/shared"
)

// AvailabilityLoader reads one consistent snapshot through db.
type AvailabilityLoader interface {
	Load(ctx context.Context, db pgsql.DBTX, addressID *int64) (*AvailabilitySnapshot, error)
}

type AvailabilityRequest struct {
	AddressID *int64
	// SelectedSlotID is the slot the caller already holds, if any.
	SelectedSlotID *int64
	// PreserveStale keeps SelectedSlotID selectable when the rules would drop it.
	PreserveStale bool
}

type AvailabilityQueries interface {
	Resolve(ctx context.Context, req AvailabilityRequest) (*AvailabilityView, error)
	Suggest(ctx context.Context, addressID int64) (*SuggestionView, error)
}

type availabilityQueriesImpl struct {
	uow     shared.UnitOfWork
	loader  AvailabilityLoader
	metrics *metrics.Metrics
}

func NewAvailabilityQueries(uow shared.UnitOfWork, loader AvailabilityLoader, m *metrics.Metrics) AvailabilityQueries {
	return &availabilityQueriesImpl{uow: uow, loader: loader, metrics: m}
}

func (q *availabilityQueriesImpl) Resolve(ctx context.Context, req AvailabilityRequest) (*AvailabilityView, error) {
	snap, err := q.load(ctx, req.AddressID)
	if err != nil {
		return nil, err
	}

	res := availability.Resolve(availability.Input{
		Address:  snap.Address,
		Zones:    snap.Zones,
		Slots:    snap.Slots,
		Selected: req.SelectedSlotID,
	}, availability.Policy{PreserveStale: req.PreserveStale})
	q.metrics.ObserveResolution(outcomeOf(snap.Address, res))

	templates := templatesByID(snap.Templates)
	view := &AvailabilityView{
		AddressID:      req.AddressID,
		RequiredSlotID: res.RequiredSlotID,
		Preserved:      res.Preserved,
		Slots:          make([]SlotView, 0, len(res.Slots)),
	}
	for _, s := range res.Slots {
		view.Slots = append(view.Slots, slotSnapshotView(s, templates[s.TemplateID]))
	}
	return view, nil
}

func (q *availabilityQueriesImpl) Suggest(ctx context.Context, addressID int64) (*SuggestionView, error) {
	snap, err := q.load(ctx, &addressID)
	if err != nil {
		return nil, err
	}

	res := availability.Resolve(availability.Input{
		Address: snap.Address,
		Zones:   snap.Zones,
		Slots:   snap.Slots,
	}, availability.Policy{})
	q.metrics.ObserveResolution(outcomeOf(snap.Address, res))

	s, ok := availability.SuggestFor(res, snap.Slots, snap.Templates)
	if !ok {
		return nil, ErrNoSuggestion
	}
	return &SuggestionView{
		DeliveryAddressID: addressID,
		DeliverySlotID:    s.SlotID,
		ReservationDate:   s.Date.Format(DateLayout),
		ReservationTime:   s.Time.String(),
	}, nil
}

func (q *availabilityQueriesImpl) load(ctx context.Context, addressID *int64) (*AvailabilitySnapshot, error) {
	var snap *AvailabilitySnapshot
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db pgsql.DBTX) error {
		var err error
		snap, err = q.loader.Load(ctx, db, addressID)
		return err
	})
	if err != nil {
		return nil, notFound(err, ErrAddressNotFound)
	}
	return snap, nil
}

func outcomeOf(addr *availability.Address, res availability.Resolution) string {
	switch {
	case addr == nil:
		return metrics.OutcomeUnfiltered
	case res.Preserved:
		return metrics.OutcomePreserved
	case len(res.Slots) == 0:
		return metrics.OutcomeEmpty
	default:
		return metrics.OutcomeResolved
	}
}

func templatesByID(templates []availability.Template) map[int64]availability.Template {
	out := make(map[int64]availability.Template, len(templates))
	for _, t := range templates {
		out[t.ID] = t
	}
	return out
}

func slotSnapshotView(s availability.Slot, t availability.Template) SlotView {
	v := SlotView{
		ID:                 s.ID,
		TimeSlotTemplateID: s.TemplateID,
		DeliveryDate:       s.DeliveryDate.Format(DateLayout),
		DeliveryCost:       float64(s.CostCents) / 100.0,
		MaxCapacity:        s.MaxCapacity,
		ReservedCount:      s.ReservedCount,
		IsActive:           s.Active,
	}
	if t.ID != 0 {
		v.StartTime = t.Start.String()
		v.EndTime = t.End.String()
	}
	return v
}
