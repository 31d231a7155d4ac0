//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"delivery-admin/internal/domain/reservation"
	"delivery-admin/internal/infra"
	"delivery-admin/internal/infra/pgsql"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationWriteQueries struct {
	mock.Mock
}

func (m *MockReservationWriteQueries) CreateReservation(ctx context.Context, db pgsql.DBTX, arg pgsql.ReservationParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationWriteQueries) UpdateReservation(ctx context.Context, db pgsql.DBTX, id, expectedVersion int64, arg pgsql.ReservationParams) error {
	args := m.Called(ctx, db, id, expectedVersion, arg)
	return args.Error(0)
}

func (m *MockReservationWriteQueries) DeleteReservation(ctx context.Context, db pgsql.DBTX, id int64) error {
	args := m.Called(ctx, db, id)
	return args.Error(0)
}

func (m *MockReservationWriteQueries) GetReservation(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.Reservation, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(pgsql.Reservation), args.Error(1)
}

func storedReservation(version int64) *reservation.Reservation {
	return reservation.ReconstructReservation(11, 1, 5, 7,
		time.Date(2025, 3, 11, 10, 30, 0, 0, time.UTC), reservation.StatusConfirmed, nil, version)
}

func TestReservationRepository_Update(t *testing.T) {
	tests := []struct {
		name     string
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success", mockErr: nil},
		{name: "stale version is a conflict", mockErr: pgx.ErrNoRows, wantKind: infra.KindConflict},
		{name: "foreign key violation", mockErr: &pgconn.PgError{Code: "23503"}, wantKind: infra.KindForeignKeyViolated},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockReservationWriteQueries)
			mockQueries.On("UpdateReservation", mock.Anything, mock.Anything, int64(11), int64(3), mock.MatchedBy(func(p pgsql.ReservationParams) bool {
				return p.DeliverySlotID == 7 && p.Status == "CONFIRMED"
			})).Return(tt.mockErr)

			repo := NewReservationRepository(mockQueries, nil)

			err := repo.Update(context.Background(), storedReservation(3))

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestReservationRepository_FindByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockReservationWriteQueries)
		mockQueries.On("GetReservation", mock.Anything, mock.Anything, int64(11)).Return(pgsql.Reservation{
			ID:                11,
			CustomerID:        1,
			DeliveryAddressID: 5,
			DeliverySlotID:    7,
			ReservedAt:        time.Date(2025, 3, 11, 7, 30, 0, 0, time.FixedZone("CLT", -3*3600)),
			Status:            "CONFIRMED",
			Version:           4,
		}, nil)

		res, err := NewReservationRepository(mockQueries, nil).FindByID(context.Background(), 11)

		require.NoError(t, err)
		assert.Equal(t, int64(7), res.DeliverySlotID())
		assert.Equal(t, int64(4), res.Version())
		assert.Equal(t, time.UTC, res.ReservedAt().Location())
		assert.Equal(t, 10, res.ReservedAt().Hour())
	})

	t.Run("not found", func(t *testing.T) {
		mockQueries := new(MockReservationWriteQueries)
		mockQueries.On("GetReservation", mock.Anything, mock.Anything, int64(99)).Return(pgsql.Reservation{}, pgx.ErrNoRows)

		_, err := NewReservationRepository(mockQueries, nil).FindByID(context.Background(), 99)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestReservationRepository_Create(t *testing.T) {
	mockQueries := new(MockReservationWriteQueries)
	mockQueries.On("CreateReservation", mock.Anything, mock.Anything, mock.AnythingOfType("pgsql.ReservationParams")).
		Return(int64(0), &pgconn.PgError{Code: "23505"})

	_, err := NewReservationRepository(mockQueries, nil).Create(context.Background(), storedReservation(1))

	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	mockQueries.AssertExpectations(t)
}
