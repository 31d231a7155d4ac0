package availability

import (
	"errors"
	"math"
)

var (
	ErrInvalidCapacity = errors.New("reserved count must be between zero and the maximum capacity")
	ErrInvalidCost     = errors.New("delivery cost must be zero or greater")
)

// CapacityReport keeps the capacity and cost violations apart so callers can
// attach each one to its own field.
type CapacityReport struct {
	Capacity error
	Cost     error
}

func (r CapacityReport) Valid() bool {
	return r.Capacity == nil && r.Cost == nil
}

func (r CapacityReport) Err() error {
	return errors.Join(r.Capacity, r.Cost)
}

func CheckCapacity(maxCapacity, reserved, cost float64) CapacityReport {
	var r CapacityReport
	if !finite(maxCapacity) || !finite(reserved) ||
		maxCapacity < 0 || reserved < 0 || reserved > maxCapacity {
		r.Capacity = ErrInvalidCapacity
	}
	if !finite(cost) || cost < 0 {
		r.Cost = ErrInvalidCost
	}
	return r
}

func ValidCapacity(maxCapacity, reserved, cost float64) bool {
	return CheckCapacity(maxCapacity, reserved, cost).Valid()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
