//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"delivery-admin/internal/domain/availability"
	"delivery-admin/internal/domain/timeslot"
	"delivery-admin/internal/infra"
	"delivery-admin/internal/usecase/commands"
	"delivery-admin/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTemplateCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the parsed window", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithin()
		f.templates.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tpl *timeslot.Template) (int64, error) {
				assert.Equal(t, "09:00", tpl.Start().String())
				assert.Equal(t, "13:00", tpl.End().String())
				assert.True(t, tpl.IsActive())
				return 4, nil
			})

		id, err := commands.NewTemplateCommands(f.uow, nil).Create(ctx, commands.TemplateInput{StartTime: "09:00", EndTime: "13:00"})

		require.NoError(t, err)
		assert.Equal(t, int64(4), id)
	})

	invalidWindows := []struct {
		name       string
		start, end string
		errIs      error
	}{
		{name: "end before start", start: "13:00", end: "09:00", errIs: availability.ErrInvalidTimeRange},
		{name: "empty window", start: "09:00", end: "09:00", errIs: availability.ErrInvalidTimeRange},
		{name: "malformed start", start: "9am", end: "13:00", errIs: availability.ErrInvalidClock},
		{name: "signed minutes", start: "09:+5", end: "13:00", errIs: availability.ErrInvalidClock},
	}
	for _, tt := range invalidWindows {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := commands.NewTemplateCommands(f.uow, nil).Create(ctx, commands.TemplateInput{StartTime: tt.start, EndTime: tt.end})

			var verr *commands.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}

	t.Run("driver failure", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithin()
		f.templates.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), repoErr(infra.KindDBFailure))

		_, err := commands.NewTemplateCommands(f.uow, nil).Create(ctx, commands.TemplateInput{StartTime: "09:00", EndTime: "13:00"})

		require.ErrorIs(t, err, commands.ErrDatabaseOperationFailed)
	})
}

func TestTemplateCommands_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps the active flag when omitted", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithin()
		stored := builder.NewTemplateBuilder().With(func(b *builder.TemplateBuilder) { b.IsActive = false }).BuildStored()
		f.templates.EXPECT().FindByID(gomock.Any(), int64(1)).Return(stored, nil)
		f.templates.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tpl *timeslot.Template) error {
				assert.Equal(t, "14:00", tpl.Start().String())
				assert.False(t, tpl.IsActive())
				return nil
			})

		err := commands.NewTemplateCommands(f.uow, nil).Update(ctx, 1, commands.TemplateInput{StartTime: "14:00", EndTime: "18:00"})

		require.NoError(t, err)
	})

	t.Run("missing", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithin()
		f.templates.EXPECT().FindByID(gomock.Any(), int64(9)).Return(nil, notFound())

		err := commands.NewTemplateCommands(f.uow, nil).Update(ctx, 9, commands.TemplateInput{StartTime: "09:00", EndTime: "13:00"})

		require.ErrorIs(t, err, commands.ErrTemplateNotFound)
	})

	t.Run("inverted window leaves the row untouched", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithin()
		f.templates.EXPECT().FindByID(gomock.Any(), int64(1)).Return(builder.NewTemplateBuilder().BuildStored(), nil)

		err := commands.NewTemplateCommands(f.uow, nil).Update(ctx, 1, commands.TemplateInput{StartTime: "18:00", EndTime: "14:00"})

		var verr *commands.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.ErrorIs(t, err, availability.ErrInvalidTimeRange)
	})
}

func TestTemplateCommands_Delete(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		errIs error
	}{
		{name: "used by delivery slots", err: repoErr(infra.KindForeignKeyViolated), errIs: commands.ErrTemplateInUse},
		{name: "missing", err: notFound(), errIs: commands.ErrTemplateNotFound},
		{name: "driver failure", err: errors.New("boom"), errIs: commands.ErrDatabaseOperationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.expectWithin()
			f.templates.EXPECT().Delete(gomock.Any(), int64(1)).Return(tt.err)

			err := commands.NewTemplateCommands(f.uow, nil).Delete(context.Background(), 1)

			require.ErrorIs(t, err, tt.errIs)
		})
	}

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithin()
		f.templates.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

		require.NoError(t, commands.NewTemplateCommands(f.uow, nil).Delete(context.Background(), 1))
	})
}
