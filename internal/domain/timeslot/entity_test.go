//go:build unit

package timeslot_test

import (
	"testing"

	"delivery-admin/internal/domain/availability"
	"delivery-admin/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplate(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		errIs      error
	}{
		{name: "morning window", start: "09:00", end: "13:00"},
		{name: "seconds are dropped", start: "09:00:30", end: "13:00:00"},
		{name: "single digit hour", start: "9:00", end: "13:00", errIs: availability.ErrInvalidClock},
		{name: "end equals start", start: "09:00", end: "09:00", errIs: availability.ErrInvalidTimeRange},
		{name: "end before start", start: "14:00", end: "09:00", errIs: availability.ErrInvalidTimeRange},
		{name: "malformed start", start: "9h", end: "13:00", errIs: availability.ErrInvalidClock},
		{name: "out of range minute", start: "09:00", end: "13:60", errIs: availability.ErrInvalidClock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := builder.NewTemplateBuilder().WithWindow(tt.start, tt.end).BuildDomain()
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.True(t, actual.IsActive())
			assert.Less(t, actual.Start(), actual.End())
		})
	}

	t.Run("snapshot covers its window inclusively", func(t *testing.T) {
		snap := builder.NewTemplateBuilder().BuildStored().Snapshot()

		assert.True(t, snap.Covers(availability.MustParseClock("09:00")))
		assert.True(t, snap.Covers(availability.MustParseClock("13:00")))
		assert.False(t, snap.Covers(availability.MustParseClock("13:01")))
	})
}
