//go:build unit

package availability_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"delivery-admin/internal/domain/availability"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	testCases := []struct {
		in      string
		want    availability.Clock
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:30", want: 570},
		{in: "23:59", want: 1439},
		{in: "08:15:59", want: 495},
		{in: " 07:05 ", want: 425},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "9:00", wantErr: true},
		{in: "+9:+5", wantErr: true},
		{in: "-1:30", wantErr: true},
		{in: "09:-5", wantErr: true},
		{in: "12:00:+1", wantErr: true},
		{in: "12:00:61", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := availability.ParseClock(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, availability.ErrInvalidClock)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("string round trip", func(t *testing.T) {
		assert.Equal(t, "08:05", availability.MustParseClock("08:05:30").String())
	})
}

func TestValidTimeRange(t *testing.T) {
	testCases := []struct {
		name       string
		start, end string
		want       bool
	}{
		{name: "equal start and end", start: "09:00", end: "09:00", want: false},
		{name: "end before start", start: "09:00", end: "08:59", want: false},
		{name: "one minute window", start: "09:00", end: "09:01", want: true},
		{name: "overnight is not wrapped", start: "22:00", end: "02:00", want: false},
		{name: "seconds ignored", start: "09:00:59", end: "09:00:00", want: false},
		{name: "full day", start: "00:00", end: "23:59", want: true},
		{name: "unparseable start", start: "x", end: "10:00", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, availability.ValidTimeRange(tc.start, tc.end))
		})
	}

	t.Run("check returns sentinel", func(t *testing.T) {
		err := availability.CheckTimeRange(availability.MustParseClock("10:00"), availability.MustParseClock("10:00"))
		assert.ErrorIs(t, err, availability.ErrInvalidTimeRange)
	})
}

func TestTemplateCovers(t *testing.T) {
	tmpl := availability.Template{Start: availability.MustParseClock("09:00"), End: availability.MustParseClock("12:00")}

	assert.True(t, tmpl.Covers(availability.MustParseClock("09:00")))
	assert.True(t, tmpl.Covers(availability.MustParseClock("12:00")))
	assert.False(t, tmpl.Covers(availability.MustParseClock("08:59")))
	assert.False(t, tmpl.Covers(availability.MustParseClock("12:01")))
}

func TestCheckCapacity(t *testing.T) {
	testCases := []struct {
		name           string
		max, res, cost float64
		capErr         bool
		costErr        bool
	}{
		{name: "reserved above max", max: 10, res: 11, cost: 5, capErr: true},
		{name: "reserved equal max", max: 10, res: 10, cost: 0},
		{name: "negative cost", max: 10, res: 5, cost: -1, costErr: true},
		{name: "both invalid", max: -1, res: 0, cost: -0.01, capErr: true, costErr: true},
		{name: "zero everything", max: 0, res: 0, cost: 0},
		{name: "negative reserved", max: 5, res: -1, cost: 1, capErr: true},
		{name: "NaN max", max: math.NaN(), res: 0, cost: 1, capErr: true},
		{name: "infinite cost", max: 1, res: 0, cost: math.Inf(1), costErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := availability.CheckCapacity(tc.max, tc.res, tc.cost)

			assert.Equal(t, tc.capErr, errors.Is(r.Capacity, availability.ErrInvalidCapacity))
			assert.Equal(t, tc.costErr, errors.Is(r.Cost, availability.ErrInvalidCost))
			assert.Equal(t, !tc.capErr && !tc.costErr, r.Valid())
			assert.Equal(t, r.Valid(), availability.ValidCapacity(tc.max, tc.res, tc.cost))
			if !r.Valid() {
				assert.Error(t, r.Err())
			}
		})
	}
}

func TestPolygon(t *testing.T) {
	a := availability.Point{Lat: -33.40, Lng: -70.60}
	b := availability.Point{Lat: -33.40, Lng: -70.50}
	c := availability.Point{Lat: -33.50, Lng: -70.50}
	d := availability.Point{Lat: -33.50, Lng: -70.60}

	t.Run("validity counts distinct vertices", func(t *testing.T) {
		assert.False(t, availability.ValidPolygon(nil))
		assert.False(t, availability.ValidPolygon([]availability.Point{a, b}))
		assert.False(t, availability.ValidPolygon([]availability.Point{a, b, a, b}))
		assert.True(t, availability.ValidPolygon([]availability.Point{a, b, c}))
		assert.True(t, availability.ValidPolygon([]availability.Point{a, b, c, a}))
		assert.ErrorIs(t, availability.CheckPolygon([]availability.Point{a, a, a}), availability.ErrInvalidPolygon)
	})

	t.Run("close and open", func(t *testing.T) {
		open := []availability.Point{a, b, c, d}
		closed := availability.CloseRing(open)

		if diff := cmp.Diff([]availability.Point{a, b, c, d, a}, closed); diff != "" {
			t.Errorf("closed ring mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(open, availability.OpenRing(closed)); diff != "" {
			t.Errorf("opened ring mismatch (-want +got):\n%s", diff)
		}
		assert.Len(t, availability.CloseRing(closed), 5, "closing a closed ring is a no-op")
		assert.Len(t, open, 4, "input must not grow")
	})

	t.Run("close-open-close is idempotent", func(t *testing.T) {
		rings := [][]availability.Point{
			{a, b, c},
			{a, b, c, d},
			{a, b, c, a},
			{d, c, b, a, d},
		}
		for _, ring := range rings {
			once := availability.CloseRing(ring)
			again := availability.CloseRing(availability.OpenRing(once))
			if diff := cmp.Diff(once, again); diff != "" {
				t.Errorf("ring %v not idempotent (-want +got):\n%s", ring, diff)
			}
		}
	})

	t.Run("contains", func(t *testing.T) {
		square := []availability.Point{a, b, c, d, a}
		assert.True(t, availability.Contains(square, availability.Point{Lat: -33.45, Lng: -70.55}))
		assert.False(t, availability.Contains(square, availability.Point{Lat: -33.30, Lng: -70.55}))
		assert.False(t, availability.Contains([]availability.Point{a, b}, a))
	})

	t.Run("centroid", func(t *testing.T) {
		got := availability.Centroid([]availability.Point{a, b, c, d, a})
		assert.InDelta(t, -33.45, got.Lat, 1e-6)
		assert.InDelta(t, -70.55, got.Lng, 1e-6)

		line := availability.Centroid([]availability.Point{a, b})
		assert.InDelta(t, -33.40, line.Lat, 1e-6)
		assert.InDelta(t, -70.55, line.Lng, 1e-6)
	})
}

func TestSuggestFor(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	templates := []availability.Template{{ID: 1, Start: availability.MustParseClock("09:00"), End: availability.MustParseClock("13:00")}}
	s7 := availability.Slot{ID: 7, TemplateID: 1, DeliveryDate: date, Active: true}

	t.Run("required slot pre-fills date and start time", func(t *testing.T) {
		res := availability.Resolve(availability.Input{
			Address: &availability.Address{ID: 1, ZoneID: id(1)},
			Zones:   []availability.Zone{{ID: 1, Active: true, SlotID: id(7), Boundary: square}},
			Slots:   []availability.Slot{s7},
		}, availability.Policy{})

		got, ok := availability.SuggestFor(res, []availability.Slot{s7}, templates)
		require.True(t, ok)
		assert.Equal(t, availability.Suggestion{SlotID: 7, Date: date, Time: availability.MustParseClock("09:00")}, got)
	})

	t.Run("inactive required slot still pre-fills", func(t *testing.T) {
		inactive := s7
		inactive.Active = false
		slots := []availability.Slot{inactive}
		res := availability.Resolve(availability.Input{
			Address: &availability.Address{ID: 1, ZoneID: id(1)},
			Zones:   []availability.Zone{{ID: 1, Active: true, SlotID: id(7), Boundary: square}},
			Slots:   slots,
		}, availability.Policy{})
		require.Empty(t, res.Slots)

		got, ok := availability.SuggestFor(res, slots, templates)
		require.True(t, ok)
		assert.Equal(t, int64(7), got.SlotID)
		assert.Equal(t, date, got.Date)
	})

	t.Run("no required slot", func(t *testing.T) {
		_, ok := availability.SuggestFor(availability.Resolution{}, []availability.Slot{s7}, templates)
		assert.False(t, ok)
	})

	t.Run("required slot missing from the snapshot", func(t *testing.T) {
		res := availability.Resolution{RequiredSlotID: id(99), Slots: []availability.Slot{}}
		_, ok := availability.SuggestFor(res, []availability.Slot{s7}, templates)
		assert.False(t, ok)
	})

	t.Run("template missing", func(t *testing.T) {
		res := availability.Resolution{RequiredSlotID: id(7), Slots: []availability.Slot{s7}}
		_, ok := availability.SuggestFor(res, []availability.Slot{s7}, nil)
		assert.False(t, ok)
	})
}
