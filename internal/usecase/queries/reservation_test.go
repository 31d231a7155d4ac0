//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"delivery-admin/internal/usecase/queries"
	"delivery-admin/tests/common/builder"
	queriesmock "delivery-admin/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func reservationPage(n int) []*queries.ReservationView {
	out := make([]*queries.ReservationView, 0, n)
	for i := 0; i < n; i++ {
		v := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.ID = int64(100 - i) }).BuildView()
		v.ReservedAt = v.ReservedAt.Add(-time.Duration(i) * time.Hour)
		out = append(out, v)
	}
	return out
}

func TestReservationQueries_List(t *testing.T) {
	ctx := context.Background()

	t.Run("first page fetches one extra row to detect more", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		rows := reservationPage(3)
		store.EXPECT().FindFirstPage(gomock.Any(), (*int64)(nil), int32(3)).Return(rows, nil)

		items, next, err := queries.NewReservationQueries(store).List(ctx, nil, nil, 2)

		require.NoError(t, err)
		assert.Len(t, items, 2)
		require.NotNil(t, next)

		at, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, id)
		assert.True(t, rows[1].ReservedAt.Equal(at))
	})

	t.Run("cursor continues with keyset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		customerID := int64(1)
		last := time.Date(2025, 3, 11, 10, 30, 0, 0, time.UTC)
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(last, 99)}
		store.EXPECT().FindKeyset(gomock.Any(), &customerID, last, int64(99), int32(21)).Return(reservationPage(1), nil)

		items, next, err := queries.NewReservationQueries(store).List(ctx, &customerID, cursor, 0)

		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Nil(t, next)
	})

	t.Run("garbage cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)

		_, _, err := queries.NewReservationQueries(store).List(ctx, nil, &queries.Cursor{After: "%%%"}, 10)

		require.ErrorIs(t, err, queries.ErrInvalidCursor)
	})
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, queries.ValidateLimit(0))
	assert.Equal(t, 5, queries.ValidateLimit(5))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(10_000))
}
