//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"delivery-admin/internal/infra"
	"delivery-admin/internal/usecase/queries"
	queriesmock "delivery-admin/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLocationQueries_Get(t *testing.T) {
	ctx := context.Background()
	missing := infra.WrapRepoErr("catalog row not found", errors.New("no rows in result set"), infra.KindNotFound)

	t.Run("missing rows map to their sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockLocationReadStore(ctrl)
		store.EXPECT().FindRegion(gomock.Any(), int64(9)).Return(nil, missing)
		store.EXPECT().FindCity(gomock.Any(), int64(9)).Return(nil, missing)
		store.EXPECT().FindCommune(gomock.Any(), int64(9)).Return(nil, missing)
		q := queries.NewLocationQueries(store)

		_, err := q.GetRegion(ctx, 9)
		assert.ErrorIs(t, err, queries.ErrRegionNotFound)
		_, err = q.GetCity(ctx, 9)
		assert.ErrorIs(t, err, queries.ErrCityNotFound)
		_, err = q.GetCommune(ctx, 9)
		assert.ErrorIs(t, err, queries.ErrCommuneNotFound)
	})

	t.Run("driver failures pass through unmarked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockLocationReadStore(ctrl)
		failure := infra.WrapRepoErr("catalog read failed", errors.New("conn reset"), infra.KindDBFailure)
		store.EXPECT().FindCommune(gomock.Any(), int64(2)).Return(nil, failure)

		_, err := queries.NewLocationQueries(store).GetCommune(ctx, 2)

		require.Error(t, err)
		assert.NotErrorIs(t, err, queries.ErrCommuneNotFound)
	})

	t.Run("children of an unknown parent are an empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockLocationReadStore(ctrl)
		store.EXPECT().ListCities(gomock.Any(), int64(99)).Return([]*queries.CityView{}, nil)

		cities, err := queries.NewLocationQueries(store).ListCities(ctx, 99)

		require.NoError(t, err)
		assert.Empty(t, cities)
	})
}
