package shared

import (
	"context"
	"time"

	"delivery-admin/internal/domain/activesession"
	"delivery-admin/internal/domain/address"
	"delivery-admin/internal/domain/availability"
	"delivery-admin/internal/domain/customer"
	"delivery-admin/internal/domain/deliveryslot"
	"delivery-admin/internal/domain/reservation"
	"delivery-admin/internal/domain/timeslot"
	"delivery-admin/internal/domain/zone"
	"delivery-admin/internal/infra/pgsql"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db pgsql.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db pgsql.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Customers() CustomerRepository
	Addresses() AddressRepository
	Templates() TemplateRepository
	Slots() SlotRepository
	Zones() ZoneRepository
	Reservations() ReservationRepository
	Sessions() SessionRepository
	Reads() CommandReads
	DB() pgsql.DBTX
}

// CommandReads returns the engine snapshots commands validate against.
type CommandReads interface {
	CustomerByID(ctx context.Context, id int64) (*CustomerSnapshot, error)
	CustomerByEmail(ctx context.Context, email string) (*CustomerSnapshot, error)
	AddressByID(ctx context.Context, id int64) (*availability.Address, error)
	TemplateByID(ctx context.Context, id int64) (*availability.Template, error)
	SlotByID(ctx context.Context, id int64) (*availability.Slot, error)
	ZoneByID(ctx context.Context, id int64) (*availability.Zone, error)
	ActiveZoneBoundaries(ctx context.Context) ([]ZoneBoundary, error)
	CommuneByID(ctx context.Context, id int64) (*CommuneSnapshot, error)
}

type CustomerRepository interface {
	FindByID(ctx context.Context, id int64) (*customer.Customer, error)
	Create(ctx context.Context, c *customer.Customer) (int64, error)
	Update(ctx context.Context, c *customer.Customer) error
	Delete(ctx context.Context, id int64) error
}

type AddressRepository interface {
	FindByID(ctx context.Context, id int64) (*address.Address, error)
	Create(ctx context.Context, a *address.Address) (int64, error)
	Update(ctx context.Context, a *address.Address) error
	Delete(ctx context.Context, id int64) error
}

type TemplateRepository interface {
	FindByID(ctx context.Context, id int64) (*timeslot.Template, error)
	Create(ctx context.Context, t *timeslot.Template) (int64, error)
	Update(ctx context.Context, t *timeslot.Template) error
	Delete(ctx context.Context, id int64) error
}

type SlotRepository interface {
	FindByID(ctx context.Context, id int64) (*deliveryslot.Slot, error)
	LockByID(ctx context.Context, id int64) (*deliveryslot.Slot, error)
	Create(ctx context.Context, s *deliveryslot.Slot) (int64, error)
	Update(ctx context.Context, s *deliveryslot.Slot) error
	Delete(ctx context.Context, id int64) error
	CountConfirmed(ctx context.Context, slotID, excludeReservationID int64) (int, error)
	SyncReservedCount(ctx context.Context, slotID int64) error
}

type ZoneRepository interface {
	FindByID(ctx context.Context, id int64) (*zone.Zone, error)
	Create(ctx context.Context, z *zone.Zone) (int64, error)
	Update(ctx context.Context, z *zone.Zone) error
	Delete(ctx context.Context, id int64) error
}

type ReservationRepository interface {
	FindByID(ctx context.Context, id int64) (*reservation.Reservation, error)
	Create(ctx context.Context, r *reservation.Reservation) (int64, error)
	Update(ctx context.Context, r *reservation.Reservation) error
	Delete(ctx context.Context, id int64) error
}

type SessionRepository interface {
	Create(ctx context.Context, s *activesession.Session) (int64, error)
	FindByID(ctx context.Context, id int64) (*activesession.Session, error)
	FindOpenForUpdate(ctx context.Context, customerID int64) (*activesession.Session, error)
	CloseExpired(ctx context.Context, customerID int64, now time.Time) error
	SaveEnd(ctx context.Context, s *activesession.Session) error
}
