//go:build unit

package commands_test

import (
	"context"
	"testing"

	"delivery-admin/internal/domain/availability"
	"delivery-admin/internal/domain/zone"
	"delivery-admin/internal/infra"
	"delivery-admin/internal/pkg/ptr"
	"delivery-admin/internal/usecase/commands"
	"delivery-admin/internal/usecase/shared"
	"delivery-admin/tests/common/builder"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func zoneInput(b *builder.ZoneBuilder) commands.ZoneInput {
	req := b.BuildRequestDTO()
	return commands.ZoneInput{
		Name:           req.Name,
		Commune:        req.Commune,
		Region:         req.Region,
		DeliverySlotID: req.DeliverySlotID,
		MaxCapacity:    req.MaxCapacity,
		Boundary:       req.Boundary,
		IsActive:       req.IsActive,
	}
}

func TestZoneCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("checks the linked slot", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithin()
		f.reads.EXPECT().SlotByID(gomock.Any(), int64(7)).Return(builder.NewSlotBuilder().BuildSnapshot(), nil)
		f.zones.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, z *zone.Zone) (int64, error) {
				assert.Len(t, z.Boundary(), 5)
				return 3, nil
			})

		id, err := commands.NewZoneCommands(f.uow, nil).Create(ctx, zoneInput(builder.NewZoneBuilder()))

		require.NoError(t, err)
		assert.Equal(t, int64(3), id)
	})

	t.Run("unknown slot", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithin()
		f.reads.EXPECT().SlotByID(gomock.Any(), int64(7)).Return(nil, notFound())

		_, err := commands.NewZoneCommands(f.uow, nil).Create(ctx, zoneInput(builder.NewZoneBuilder()))

		require.ErrorIs(t, err, commands.ErrSlotNotFound)
	})

	t.Run("unknown commune", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithin()
		f.reads.EXPECT().SlotByID(gomock.Any(), int64(7)).Return(builder.NewSlotBuilder().BuildSnapshot(), nil)
		f.reads.EXPECT().CommuneByID(gomock.Any(), int64(99)).Return(nil, notFound())
		in := zoneInput(builder.NewZoneBuilder())
		in.ComunaID = ptr.Of(int64(99))

		_, err := commands.NewZoneCommands(f.uow, nil).Create(ctx, in)

		require.ErrorIs(t, err, commands.ErrCommuneNotFound)
	})

	t.Run("commune removed before the insert", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithin()
		f.reads.EXPECT().SlotByID(gomock.Any(), int64(7)).Return(builder.NewSlotBuilder().BuildSnapshot(), nil)
		f.reads.EXPECT().CommuneByID(gomock.Any(), int64(2)).Return(&shared.CommuneSnapshot{ID: 2, CityID: 1, Name: "Providencia"}, nil)
		f.zones.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("create zone", &pgconn.PgError{Code: "23503", ConstraintName: "fk_coverage_zones_commune"}))
		in := zoneInput(builder.NewZoneBuilder())
		in.ComunaID = ptr.Of(int64(2))

		_, err := commands.NewZoneCommands(f.uow, nil).Create(ctx, in)

		require.ErrorIs(t, err, commands.ErrCommuneNotFound)
		assert.NotErrorIs(t, err, commands.ErrSlotNotFound)
	})

	t.Run("degenerate polygon", func(t *testing.T) {
		f := newFixture(t)
		in := zoneInput(builder.NewZoneBuilder().With(func(b *builder.ZoneBuilder) {
			b.Boundary = []availability.Point{{Lat: 1, Lng: 1}, {Lat: 1, Lng: 1}, {Lat: 2, Lng: 2}, {Lat: 1, Lng: 1}}
		}))

		_, err := commands.NewZoneCommands(f.uow, nil).Create(ctx, in)

		var verr *commands.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.ErrorIs(t, err, availability.ErrInvalidPolygon)
	})

	t.Run("not a polygon", func(t *testing.T) {
		f := newFixture(t)
		in := zoneInput(builder.NewZoneBuilder())
		in.Boundary = &zone.GeoJSONPolygon{Type: "LineString"}

		_, err := commands.NewZoneCommands(f.uow, nil).Create(ctx, in)

		require.ErrorIs(t, err, zone.ErrInvalidGeoJSON)
	})
}
