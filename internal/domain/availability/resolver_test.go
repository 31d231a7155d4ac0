//go:build unit

package availability_test

import (
	"testing"
	"time"

	"delivery-admin/internal/domain/availability"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func id(v int64) *int64 { return &v }

var square = []availability.Point{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 1}, {Lat: 1, Lng: 1}, {Lat: 1, Lng: 0}}

func slot(slotID int64, active bool) availability.Slot {
	return availability.Slot{
		ID:           slotID,
		TemplateID:   1,
		DeliveryDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		MaxCapacity:  10,
		Active:       active,
	}
}

func slotIDs(slots []availability.Slot) []int64 {
	out := make([]int64, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.ID)
	}
	return out
}

func TestResolve(t *testing.T) {
	slots := []availability.Slot{slot(7, true), slot(9, true), slot(11, false), slot(13, true)}
	zones := []availability.Zone{
		{ID: 1, Active: true, SlotID: id(7), Boundary: square},
		{ID: 2, Active: false, SlotID: id(7), Boundary: square},
		{ID: 3, Active: true, SlotID: nil, Boundary: square},
		{ID: 4, Active: true, SlotID: id(11), Boundary: square},
		{ID: 5, Active: true, SlotID: id(99), Boundary: square},
		{ID: 6, Active: true, SlotID: id(7)},
	}
	address := func(zoneID *int64) *availability.Address {
		return &availability.Address{ID: 100, CustomerID: 5, ZoneID: zoneID}
	}

	testCases := []struct {
		name         string
		in           availability.Input
		policy       availability.Policy
		wantIDs      []int64
		wantRequired *int64
		wantPreserve bool
	}{
		{
			name:    "no address: every active slot in source order",
			in:      availability.Input{Zones: zones, Slots: slots},
			wantIDs: []int64{7, 9, 13},
		},
		{
			name:    "no address ignores selection",
			in:      availability.Input{Zones: zones, Slots: slots, Selected: id(11)},
			policy:  availability.Policy{PreserveStale: true},
			wantIDs: []int64{7, 9, 13},
		},
		{
			name:         "zone links active slot",
			in:           availability.Input{Address: address(id(1)), Zones: zones, Slots: slots},
			wantIDs:      []int64{7},
			wantRequired: id(7),
		},
		{
			name:    "zone inactive",
			in:      availability.Input{Address: address(id(2)), Zones: zones, Slots: slots},
			wantIDs: []int64{},
		},
		{
			name:    "zone without boundary is treated as inactive",
			in:      availability.Input{Address: address(id(6)), Zones: zones, Slots: slots},
			wantIDs: []int64{},
		},
		{
			name:         "zone without boundary keeps an inactive selection",
			in:           availability.Input{Address: address(id(6)), Zones: zones, Slots: slots, Selected: id(11)},
			policy:       availability.Policy{PreserveStale: true},
			wantIDs:      []int64{11},
			wantPreserve: true,
		},
		{
			name:    "zone without slot",
			in:      availability.Input{Address: address(id(3)), Zones: zones, Slots: slots},
			wantIDs: []int64{},
		},
		{
			name:    "address without zone",
			in:      availability.Input{Address: address(nil), Zones: zones, Slots: slots},
			wantIDs: []int64{},
		},
		{
			name:    "zone missing from snapshot",
			in:      availability.Input{Address: address(id(42)), Zones: zones, Slots: slots},
			wantIDs: []int64{},
		},
		{
			name:         "zone links inactive slot",
			in:           availability.Input{Address: address(id(4)), Zones: zones, Slots: slots},
			wantIDs:      []int64{},
			wantRequired: id(11),
		},
		{
			name:         "zone links slot missing from snapshot",
			in:           availability.Input{Address: address(id(5)), Zones: zones, Slots: slots},
			wantIDs:      []int64{},
			wantRequired: id(99),
		},
		{
			name:         "zone slot with stale active selection appended last",
			in:           availability.Input{Address: address(id(1)), Zones: zones, Slots: slots, Selected: id(13)},
			policy:       availability.Policy{PreserveStale: true},
			wantIDs:      []int64{7, 13},
			wantRequired: id(7),
			wantPreserve: true,
		},
		{
			name:         "zone slot with stale inactive selection appended last",
			in:           availability.Input{Address: address(id(1)), Zones: zones, Slots: slots, Selected: id(11)},
			policy:       availability.Policy{PreserveStale: true},
			wantIDs:      []int64{7, 11},
			wantRequired: id(7),
			wantPreserve: true,
		},
		{
			name:         "selection equal to required slot is not duplicated",
			in:           availability.Input{Address: address(id(1)), Zones: zones, Slots: slots, Selected: id(7)},
			policy:       availability.Policy{PreserveStale: true},
			wantIDs:      []int64{7},
			wantRequired: id(7),
		},
		{
			name:         "stale selection dropped without preserve policy",
			in:           availability.Input{Address: address(id(1)), Zones: zones, Slots: slots, Selected: id(13)},
			wantIDs:      []int64{7},
			wantRequired: id(7),
		},
		{
			name:         "unknown selection is ignored",
			in:           availability.Input{Address: address(id(1)), Zones: zones, Slots: slots, Selected: id(1000)},
			policy:       availability.Policy{PreserveStale: true},
			wantIDs:      []int64{7},
			wantRequired: id(7),
		},
		{
			name:         "no zone slot: inactive selection kept as singleton",
			in:           availability.Input{Address: address(id(3)), Zones: zones, Slots: slots, Selected: id(11)},
			policy:       availability.Policy{PreserveStale: true},
			wantIDs:      []int64{11},
			wantPreserve: true,
		},
		{
			name:    "no zone slot: active selection is not kept",
			in:      availability.Input{Address: address(id(3)), Zones: zones, Slots: slots, Selected: id(9)},
			policy:  availability.Policy{PreserveStale: true},
			wantIDs: []int64{},
		},
		{
			name:    "no zone slot: inactive selection dropped without preserve policy",
			in:      availability.Input{Address: address(id(2)), Zones: zones, Slots: slots, Selected: id(11)},
			wantIDs: []int64{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := availability.Resolve(tc.in, tc.policy)

			if diff := cmp.Diff(tc.wantIDs, slotIDs(got.Slots)); diff != "" {
				t.Errorf("slot ids mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tc.wantRequired, got.RequiredSlotID)
			assert.Equal(t, tc.wantPreserve, got.Preserved)
			assert.NotNil(t, got.Slots)
		})
	}
}

func TestResolve_EndToEnd(t *testing.T) {
	t.Run("address in zone linked to 7 with slots 7 and 9 resolves to 7", func(t *testing.T) {
		got := availability.Resolve(availability.Input{
			Address: &availability.Address{ID: 1, ZoneID: id(20)},
			Zones:   []availability.Zone{{ID: 20, Active: true, SlotID: id(7), Boundary: square}},
			Slots:   []availability.Slot{slot(7, true), slot(9, true)},
		}, availability.Policy{PreserveStale: true})

		assert.Equal(t, []int64{7}, slotIDs(got.Slots))
	})

	t.Run("zone without slot keeps previously selected slot 9", func(t *testing.T) {
		got := availability.Resolve(availability.Input{
			Address:  &availability.Address{ID: 1, ZoneID: id(20)},
			Zones:    []availability.Zone{{ID: 20, Active: true, Boundary: square}},
			Slots:    []availability.Slot{slot(7, true), slot(9, false)},
			Selected: id(9),
		}, availability.Policy{PreserveStale: true})

		assert.Equal(t, []int64{9}, slotIDs(got.Slots))
		assert.True(t, got.Preserved)
	})
}

func TestResolve_Properties(t *testing.T) {
	slots := []availability.Slot{slot(1, true), slot(2, false), slot(3, true), slot(4, true)}
	zones := []availability.Zone{{ID: 1, Active: true, SlotID: id(3), Boundary: square}, {ID: 2, Active: true, Boundary: square}}

	t.Run("preserved selection appears exactly once", func(t *testing.T) {
		for _, zoneID := range []int64{1, 2} {
			for _, s := range slots {
				got := availability.Resolve(availability.Input{
					Address:  &availability.Address{ID: 1, ZoneID: id(zoneID)},
					Zones:    zones,
					Slots:    slots,
					Selected: id(s.ID),
				}, availability.Policy{PreserveStale: true})

				count := 0
				for _, g := range got.Slots {
					if g.ID == s.ID {
						count++
					}
				}
				if got.Preserved {
					require.Equal(t, 1, count, "zone=%d selected=%d", zoneID, s.ID)
					assert.Equal(t, s.ID, got.Slots[len(got.Slots)-1].ID)
				}
				assert.LessOrEqual(t, count, 1)
			}
		}
	})

	t.Run("input is not mutated", func(t *testing.T) {
		in := append([]availability.Slot(nil), slots...)
		_ = availability.Resolve(availability.Input{
			Address:  &availability.Address{ID: 1, ZoneID: id(1)},
			Zones:    zones,
			Slots:    in,
			Selected: id(2),
		}, availability.Policy{PreserveStale: true})

		if diff := cmp.Diff(slots, in); diff != "" {
			t.Errorf("input slots changed (-want +got):\n%s", diff)
		}
	})

	t.Run("allows reports allowed set membership", func(t *testing.T) {
		got := availability.Resolve(availability.Input{
			Address: &availability.Address{ID: 1, ZoneID: id(1)},
			Zones:   zones,
			Slots:   slots,
		}, availability.Policy{})

		assert.True(t, got.Allows(3))
		assert.False(t, got.Allows(1))
	})
}
