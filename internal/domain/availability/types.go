package availability

import "time"

// Snapshot records the engine evaluates. They carry only what resolution and
// validation need; persistence models live in their own aggregates.

type Zone struct {
	ID       int64
	Active   bool
	SlotID   *int64
	Boundary []Point
}

// Serves reports whether the zone takes part in resolution: it must be active
// and carry a boundary.
func (z Zone) Serves() bool {
	return z.Active && len(z.Boundary) > 0
}

type Slot struct {
	ID            int64
	TemplateID    int64
	DeliveryDate  time.Time
	CostCents     int64
	MaxCapacity   int
	ReservedCount int
	Active        bool
}

type Template struct {
	ID     int64
	Start  Clock
	End    Clock
	Active bool
}

// Covers reports whether t falls inside the template window, both ends included.
func (t Template) Covers(c Clock) bool {
	return c >= t.Start && c <= t.End
}

type Address struct {
	ID         int64
	CustomerID int64
	ZoneID     *int64
}
