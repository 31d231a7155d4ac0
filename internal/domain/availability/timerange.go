package availability

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidClock     = errors.New("time of day must be HH:MM")
	ErrInvalidTimeRange = errors.New("end time must be after start time")
)

// Clock is a time of day with minute resolution, stored as minutes since midnight.
type Clock int

const minutesPerDay = 24 * 60

func NewClock(hour, minute int) (Clock, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, ErrInvalidClock
	}
	return Clock(hour*60 + minute), nil
}

// ParseClock accepts HH:MM and HH:MM:SS. Seconds are dropped.
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, ErrInvalidClock
	}

	vals := make([]int, len(parts))
	for i, p := range parts {
		if len(p) != 2 || !isDigit(p[0]) || !isDigit(p[1]) {
			return 0, ErrInvalidClock
		}
		vals[i] = int(p[0]-'0')*10 + int(p[1]-'0')
	}
	if len(vals) == 3 && (vals[2] < 0 || vals[2] > 59) {
		return 0, ErrInvalidClock
	}
	return NewClock(vals[0], vals[1])
}

func MustParseClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(fmt.Sprintf("availability: invalid clock %q", s))
	}
	return c
}

func (c Clock) Hour() int    { return int(c) / 60 }
func (c Clock) Minute() int  { return int(c) % 60 }
func (c Clock) Minutes() int { return int(c) }

func (c Clock) Valid() bool {
	return c >= 0 && c < minutesPerDay
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// CheckTimeRange requires end to be strictly after start. Ranges never wrap
// past midnight.
func CheckTimeRange(start, end Clock) error {
	if end <= start {
		return ErrInvalidTimeRange
	}
	return nil
}

// ValidTimeRange parses both values and reports whether they form a range.
// Unparseable input is invalid.
func ValidTimeRange(start, end string) bool {
	s, err := ParseClock(start)
	if err != nil {
		return false
	}
	e, err := ParseClock(end)
	if err != nil {
		return false
	}
	return CheckTimeRange(s, e) == nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
