//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"delivery-admin/internal/infra"
	"delivery-admin/internal/usecase/shared"
	sharedmock "delivery-admin/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

type fixture struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reads        *sharedmock.MockCommandReads
	customers    *sharedmock.MockCustomerRepository
	addresses    *sharedmock.MockAddressRepository
	templates    *sharedmock.MockTemplateRepository
	slots        *sharedmock.MockSlotRepository
	zones        *sharedmock.MockZoneRepository
	reservations *sharedmock.MockReservationRepository
	sessions     *sharedmock.MockSessionRepository
}

// newFixture wires a UnitOfWork whose Within runs the callback against a
// mocked Tx. The callback's error is returned as is, as a rolled back
// transaction would.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		reads:        sharedmock.NewMockCommandReads(ctrl),
		customers:    sharedmock.NewMockCustomerRepository(ctrl),
		addresses:    sharedmock.NewMockAddressRepository(ctrl),
		templates:    sharedmock.NewMockTemplateRepository(ctrl),
		slots:        sharedmock.NewMockSlotRepository(ctrl),
		zones:        sharedmock.NewMockZoneRepository(ctrl),
		reservations: sharedmock.NewMockReservationRepository(ctrl),
		sessions:     sharedmock.NewMockSessionRepository(ctrl),
	}
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Customers().Return(f.customers).AnyTimes()
	f.tx.EXPECT().Addresses().Return(f.addresses).AnyTimes()
	f.tx.EXPECT().Templates().Return(f.templates).AnyTimes()
	f.tx.EXPECT().Slots().Return(f.slots).AnyTimes()
	f.tx.EXPECT().Zones().Return(f.zones).AnyTimes()
	f.tx.EXPECT().Reservations().Return(f.reservations).AnyTimes()
	f.tx.EXPECT().Sessions().Return(f.sessions).AnyTimes()
	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()
	return f
}

// expectWithin allows one transaction.
func (f *fixture) expectWithin() {
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		})
}

func notFound() error {
	return infra.WrapRepoErr("not found", errors.New("no rows in result set"), infra.KindNotFound)
}

func repoErr(kind infra.RepositoryErrorKind) error {
	return infra.WrapRepoErr("repository failure", errors.New("pg error"), kind)
}
