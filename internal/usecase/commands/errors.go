package commands

import (
	"context"
	"errors"
	"strings"

	"delivery-admin/internal/domain/availability"
	"delivery-admin/internal/infra"
	"delivery-admin/internal/pkg/errs"
	"delivery-admin/internal/pkg/metrics"
	"delivery-admin/internal/usecase/shared"
)

var (
	ErrCustomerNotFound    = errs.New("customer not found")
	ErrEmailTaken          = errs.New("email is already registered")
	ErrAddressNotFound     = errs.New("delivery address not found")
	ErrOutsideCoverage     = errs.New("location is outside every active coverage zone")
	ErrAddressInUse        = errs.New("delivery address is still referenced by reservations")
	ErrTemplateNotFound    = errs.New("time slot template not found")
	ErrTemplateInUse       = errs.New("time slot template is still used by delivery slots")
	ErrSlotNotFound        = errs.New("delivery slot not found")
	ErrDuplicateSlot       = errs.New("a delivery slot already exists for this date and template")
	ErrSlotInUse           = errs.New("delivery slot is still referenced")
	ErrZoneNotFound        = errs.New("coverage zone not found")
	ErrCommuneNotFound     = errs.New("commune not found")
	ErrReservationNotFound = errs.New("reservation not found")
	ErrReservationConflict = errs.New("reservation was modified by another request")
	ErrSessionNotFound     = errs.New("active session not found")
	ErrInvalidDate         = errs.New("date must be YYYY-MM-DD")

	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// ValidationError collects the field rules a mutation broke. Nothing is
// written when one is returned.
type ValidationError struct {
	errs []error
}

func NewValidationError(errs ...error) *ValidationError {
	return &ValidationError{errs: errs}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages(), "; ")
}

func (e *ValidationError) Unwrap() []error {
	return e.errs
}

func (e *ValidationError) Messages() []string {
	msgs := make([]string, 0, len(e.errs))
	for _, err := range e.errs {
		msgs = append(msgs, err.Error())
	}
	return msgs
}

// invalid wraps a domain error as a ValidationError, flattening joined errors
// so each violated rule is reported on its own.
func invalid(m *metrics.Metrics, err error) error {
	var list []error
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		list = joined.Unwrap()
	} else {
		list = []error{err}
	}
	for _, e := range list {
		m.ObserveValidationFailure(ruleOf(e))
	}
	return NewValidationError(list...)
}

func ruleOf(err error) string {
	switch {
	case errors.Is(err, availability.ErrInvalidTimeRange), errors.Is(err, availability.ErrInvalidClock):
		return "time_range"
	case errors.Is(err, availability.ErrInvalidCapacity):
		return "capacity"
	case errors.Is(err, availability.ErrInvalidCost):
		return "cost"
	case errors.Is(err, availability.ErrInvalidPolygon):
		return "polygon"
	default:
		return "field"
	}
}

// Foreign keys on the commune catalog.
const (
	fkZoneCommune    = "fk_coverage_zones_commune"
	fkAddressCommune = "fk_delivery_addresses_commune"
)

// ensureCommuneExists checks an optional commune reference against the
// location catalog.
func ensureCommuneExists(ctx context.Context, tx shared.Tx, communeID *int64) error {
	if communeID == nil {
		return nil
	}
	if _, err := tx.Reads().CommuneByID(ctx, *communeID); err != nil {
		return lookupErr(err, ErrCommuneNotFound)
	}
	return nil
}

// lookupErr maps a repository NOT_FOUND to notFound and any other failure to
// ErrDatabaseOperationFailed.
func lookupErr(err, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}
