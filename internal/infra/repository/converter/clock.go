package converter

import (
	"time"

	"delivery-admin/internal/domain/availability"

	"github.com/jackc/pgx/v5/pgtype"
)

const microsPerMinute = int64(time.Minute / time.Microsecond)

func ClockToPgtype(c availability.Clock) pgtype.Time {
	return pgtype.Time{Microseconds: int64(c.Minutes()) * microsPerMinute, Valid: true}
}

// ClockFromPgtype drops seconds; templates have minute resolution.
func ClockFromPgtype(t pgtype.Time) availability.Clock {
	if !t.Valid {
		return 0
	}
	return availability.Clock(t.Microseconds / microsPerMinute)
}
