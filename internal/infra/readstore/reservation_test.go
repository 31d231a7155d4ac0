//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"delivery-admin/internal/infra"
	"delivery-admin/internal/infra/pgsql"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationReadQueries struct {
	mock.Mock
}

func (m *MockReservationReadQueries) GetReservationView(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.ReservationView, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(pgsql.ReservationView), args.Error(1)
}

func (m *MockReservationReadQueries) ListReservationViews(ctx context.Context, db pgsql.DBTX, arg pgsql.ListReservationsParams) ([]pgsql.ReservationView, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]pgsql.ReservationView), args.Error(1)
}

func reservationRow(id int64, reservedAt time.Time) pgsql.ReservationView {
	minutes := func(m int64) pgtype.Time {
		return pgtype.Time{Microseconds: m * int64(time.Minute/time.Microsecond), Valid: true}
	}
	return pgsql.ReservationView{
		Reservation: pgsql.Reservation{
			ID:                id,
			CustomerID:        1,
			DeliveryAddressID: 5,
			DeliverySlotID:    7,
			ReservedAt:        reservedAt,
			Status:            "CONFIRMED",
			Version:           1,
		},
		CustomerName: "Ana Pérez",
		Street:       "Av. Providencia 1234",
		DeliveryDate: time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		StartTime:    minutes(9 * 60),
		EndTime:      minutes(13 * 60),
	}
}

func TestReservationReadStore_FindByID(t *testing.T) {
	tests := []struct {
		name      string
		row       pgsql.ReservationView
		mockErr   error
		wantKind  infra.RepositoryErrorKind
		wantDate  string
		wantTime  string
		wantStart string
	}{
		{
			name:      "success - stored in another zone is rendered in UTC",
			row:       reservationRow(11, time.Date(2025, 3, 11, 7, 30, 0, 0, time.FixedZone("CLT", -3*3600))),
			wantDate:  "2025-03-11",
			wantTime:  "10:30",
			wantStart: "09:00",
		},
		{
			name:     "not found",
			mockErr:  pgx.ErrNoRows,
			wantKind: infra.KindNotFound,
		},
		{
			name:     "database error",
			mockErr:  assert.AnError,
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockReservationReadQueries)
			mockQueries.On("GetReservationView", mock.Anything, mock.Anything, int64(11)).Return(tt.row, tt.mockErr)

			view, err := NewReservationReadStore(mockQueries, nil).FindByID(context.Background(), 11)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
				assert.Nil(t, view)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantDate, view.ReservationDate)
				assert.Equal(t, tt.wantTime, view.ReservationTime)
				assert.Equal(t, tt.wantStart, view.WindowStart)
				assert.Equal(t, "13:00", view.WindowEnd)
				assert.Equal(t, time.UTC, view.ReservedAt.Location())
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestReservationReadStore_FindKeyset(t *testing.T) {
	customerID := int64(1)
	last := time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC)

	mockQueries := new(MockReservationReadQueries)
	mockQueries.On("ListReservationViews", mock.Anything, mock.Anything, mock.MatchedBy(func(p pgsql.ListReservationsParams) bool {
		return p.CustomerID != nil && *p.CustomerID == customerID &&
			p.AfterReservedAt != nil && p.AfterReservedAt.Equal(last) &&
			p.AfterID == 11 && p.Limit == 3
	})).Return([]pgsql.ReservationView{
		reservationRow(10, last.Add(-time.Hour)),
		reservationRow(9, last.Add(-2*time.Hour)),
	}, nil)

	views, err := NewReservationReadStore(mockQueries, nil).FindKeyset(context.Background(), &customerID, last, 11, 3)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, int64(10), views[0].ID)
	assert.Equal(t, int64(9), views[1].ID)
	mockQueries.AssertExpectations(t)
}

func TestReservationReadStore_FindFirstPage_Empty(t *testing.T) {
	mockQueries := new(MockReservationReadQueries)
	mockQueries.On("ListReservationViews", mock.Anything, mock.Anything, pgsql.ListReservationsParams{Limit: 20}).
		Return([]pgsql.ReservationView{}, nil)

	views, err := NewReservationReadStore(mockQueries, nil).FindFirstPage(context.Background(), nil, 20)

	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}
