package queries

import (
	"delivery-admin/internal/infra"
	"delivery-admin/internal/pkg/errs"
)

var (
	ErrCustomerNotFound    = errs.New("customer not found")
	ErrAddressNotFound     = errs.New("delivery address not found")
	ErrTemplateNotFound    = errs.New("time slot template not found")
	ErrSlotNotFound        = errs.New("delivery slot not found")
	ErrZoneNotFound        = errs.New("coverage zone not found")
	ErrRegionNotFound      = errs.New("region not found")
	ErrCityNotFound        = errs.New("city not found")
	ErrCommuneNotFound     = errs.New("commune not found")
	ErrReservationNotFound = errs.New("reservation not found")
	ErrSessionNotFound     = errs.New("active session not found")
	ErrNoSuggestion        = errs.New("no delivery slot can be suggested for this address")
	ErrInvalidCursor       = errs.New("invalid cursor")
)

func notFound(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
