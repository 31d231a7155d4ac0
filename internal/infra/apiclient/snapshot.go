package apiclient

import (
	"context"
	"math"
	"time"

	"delivery-admin/internal/domain/availability"
	"delivery-admin/internal/pkg/errs"
	"delivery-admin/internal/usecase/queries"

	"golang.org/x/sync/errgroup"
)

// Snapshot fetches everything the resolver reads, in parallel. The address is
// only fetched when addressID is set.
func (c *Client) Snapshot(ctx context.Context, addressID *int64) (*queries.AvailabilitySnapshot, error) {
	var (
		address   *queries.AddressView
		zones     []queries.ZoneView
		slots     []queries.SlotView
		templates []queries.TemplateView
	)

	eg, egCtx := errgroup.WithContext(ctx)
	if addressID != nil {
		eg.Go(func() error {
			var err error
			address, err = c.Address(egCtx, *addressID)
			return err
		})
	}
	eg.Go(func() error {
		var err error
		zones, err = c.Zones(egCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		slots, err = c.Slots(egCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		templates, err = c.Templates(egCtx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return buildSnapshot(address, zones, slots, templates)
}

func buildSnapshot(address *queries.AddressView, zones []queries.ZoneView, slots []queries.SlotView, templates []queries.TemplateView) (*queries.AvailabilitySnapshot, error) {
	snap := &queries.AvailabilitySnapshot{
		Zones:     make([]availability.Zone, 0, len(zones)),
		Slots:     make([]availability.Slot, 0, len(slots)),
		Templates: make([]availability.Template, 0, len(templates)),
	}
	if address != nil {
		snap.Address = &availability.Address{
			ID:         address.ID,
			CustomerID: address.CustomerID,
			ZoneID:     address.ZoneCoverageID,
		}
	}
	for _, z := range zones {
		snap.Zones = append(snap.Zones, availability.Zone{
			ID:       z.ID,
			Active:   z.IsActive,
			SlotID:   z.DeliverySlotID,
			Boundary: z.Vertices,
		})
	}
	for _, s := range slots {
		date, err := time.Parse(queries.DateLayout, s.DeliveryDate)
		if err != nil {
			return nil, errs.Wrap(err, "unexpected delivery date in slot listing")
		}
		snap.Slots = append(snap.Slots, availability.Slot{
			ID:            s.ID,
			TemplateID:    s.TimeSlotTemplateID,
			DeliveryDate:  date,
			CostCents:     int64(math.Round(s.DeliveryCost * 100)),
			MaxCapacity:   s.MaxCapacity,
			ReservedCount: s.ReservedCount,
			Active:        s.IsActive,
		})
	}
	for _, t := range templates {
		start, err := availability.ParseClock(t.StartTime)
		if err != nil {
			return nil, errs.Wrap(err, "unexpected start time in template listing")
		}
		end, err := availability.ParseClock(t.EndTime)
		if err != nil {
			return nil, errs.Wrap(err, "unexpected end time in template listing")
		}
		snap.Templates = append(snap.Templates, availability.Template{ID: t.ID, Start: start, End: end, Active: t.IsActive})
	}
	return snap, nil
}
