package reservation

import (
	"delivery-admin/internal/pkg/clock"
)

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{Clock: clock}
}

func (f *Factory) Place(p Placement, req Request) (*Reservation, error) {
	r := &Reservation{}
	if err := r.apply(p, req, f.Clock.Now()); err != nil {
		return nil, err
	}
	return r, nil
}

// Reschedule re-validates an existing reservation against a new placement.
// On error r is left unchanged.
func (f *Factory) Reschedule(r *Reservation, p Placement, req Request) error {
	next := *r
	if err := next.apply(p, req, f.Clock.Now()); err != nil {
		return err
	}
	*r = next
	return nil
}
