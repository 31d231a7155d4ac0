//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"delivery-admin/internal/domain/activesession"
	"delivery-admin/internal/infra"
	"delivery-admin/internal/pkg/clock"
	"delivery-admin/internal/pkg/jwt"
	"delivery-admin/internal/usecase/commands"
	"delivery-admin/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "test-secret"

func TestSessionCommands_Login(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)
	tokens := jwt.NewService(testSecret)

	t.Run("success issues a token bound to the session", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithin()
		f.reads.EXPECT().CustomerByID(gomock.Any(), int64(1)).Return(builder.NewCustomerBuilder().BuildSnapshot(), nil)
		f.sessions.EXPECT().CloseExpired(gomock.Any(), int64(1), now).Return(nil)
		f.sessions.EXPECT().FindOpenForUpdate(gomock.Any(), int64(1)).Return(nil, notFound())
		f.sessions.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *activesession.Session) (int64, error) {
				assert.Equal(t, now.Add(activesession.DefaultDuration), s.ExpiresAt())
				return 42, nil
			})

		res, err := commands.NewSessionCommands(f.uow, clock.NewMockClock(now), tokens, 0).Login(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, int64(42), res.Session.ID)
		assert.True(t, res.Session.Active)
		assert.Equal(t, "ana@example.com", res.Customer.Email)

		claims, err := tokens.ValidateToken(res.Token)
		require.NoError(t, err)
		assert.Equal(t, int64(42), claims.SessionID)
		assert.Equal(t, int64(1), claims.CustomerID)
	})

	t.Run("second login while active", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithin()
		f.reads.EXPECT().CustomerByID(gomock.Any(), int64(1)).Return(builder.NewCustomerBuilder().BuildSnapshot(), nil)
		f.sessions.EXPECT().CloseExpired(gomock.Any(), int64(1), now).Return(nil)
		f.sessions.EXPECT().FindOpenForUpdate(gomock.Any(), int64(1)).
			Return(builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) { b.StartedAt = now.Add(-time.Minute) }).BuildStored(), nil)

		_, err := commands.NewSessionCommands(f.uow, clock.NewMockClock(now), tokens, time.Minute*5).Login(ctx, 1)

		require.ErrorIs(t, err, activesession.ErrAlreadyActive)
	})

	t.Run("concurrent login loses on the unique index", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithin()
		f.reads.EXPECT().CustomerByID(gomock.Any(), int64(1)).Return(builder.NewCustomerBuilder().BuildSnapshot(), nil)
		f.sessions.EXPECT().CloseExpired(gomock.Any(), int64(1), now).Return(nil)
		f.sessions.EXPECT().FindOpenForUpdate(gomock.Any(), int64(1)).Return(nil, notFound())
		f.sessions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), repoErr(infra.KindDuplicateKey))

		_, err := commands.NewSessionCommands(f.uow, clock.NewMockClock(now), tokens, 0).Login(ctx, 1)

		require.ErrorIs(t, err, activesession.ErrAlreadyActive)
	})

	t.Run("unknown customer", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithin()
		f.reads.EXPECT().CustomerByID(gomock.Any(), int64(404)).Return(nil, notFound())

		_, err := commands.NewSessionCommands(f.uow, clock.NewMockClock(now), tokens, 0).Login(ctx, 404)

		require.ErrorIs(t, err, commands.ErrCustomerNotFound)
	})
}

func TestSessionCommands_Validate(t *testing.T) {
	ctx := context.Background()
	b := builder.NewSessionBuilder()

	t.Run("live session", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithin()
		f.sessions.EXPECT().FindByID(gomock.Any(), int64(42)).Return(b.BuildStored(), nil)
		f.reads.EXPECT().CustomerByID(gomock.Any(), int64(1)).Return(builder.NewCustomerBuilder().BuildSnapshot(), nil)

		clk := clock.NewMockClock(b.StartedAt.Add(time.Minute))
		res, err := commands.NewSessionCommands(f.uow, clk, jwt.NewService(testSecret), 0).Validate(ctx, 42)

		require.NoError(t, err)
		assert.True(t, res.Session.Active)
		assert.Empty(t, res.Token)
	})

	t.Run("expired session is closed and reported missing", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithin()
		stored := b.BuildStored()
		f.sessions.EXPECT().FindByID(gomock.Any(), int64(42)).Return(stored, nil)
		f.sessions.EXPECT().SaveEnd(gomock.Any(), stored).Return(nil)

		clk := clock.NewMockClock(b.ExpiresAt().Add(time.Second))
		_, err := commands.NewSessionCommands(f.uow, clk, jwt.NewService(testSecret), 0).Validate(ctx, 42)

		require.ErrorIs(t, err, commands.ErrSessionNotFound)
		require.NotNil(t, stored.EndedAt())
		assert.Equal(t, b.ExpiresAt(), *stored.EndedAt())
	})

	t.Run("ended session needs no write", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithin()
		ended := b.StartedAt.Add(time.Minute)
		f.sessions.EXPECT().FindByID(gomock.Any(), int64(42)).
			Return(builder.NewSessionBuilder().With(func(sb *builder.SessionBuilder) { sb.EndedAt = &ended }).BuildStored(), nil)

		clk := clock.NewMockClock(b.StartedAt.Add(2 * time.Minute))
		_, err := commands.NewSessionCommands(f.uow, clk, jwt.NewService(testSecret), 0).Validate(ctx, 42)

		require.ErrorIs(t, err, commands.ErrSessionNotFound)
	})
}

func TestSessionCommands_Authenticate(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)
	tokens := jwt.NewService(testSecret)
	sb := builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) { b.StartedAt = now })

	t.Run("garbage token", func(t *testing.T) {
		f := newFixture(t)

		_, err := commands.NewSessionCommands(f.uow, clock.NewMockClock(now), tokens, 0).Authenticate(ctx, "garbage")

		require.ErrorIs(t, err, commands.ErrInvalidSessionToken)
		assert.True(t, commands.IsSessionRejection(err))
	})

	t.Run("token of another customer", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithin()
		f.sessions.EXPECT().FindByID(gomock.Any(), int64(42)).Return(sb.BuildStored(), nil)
		f.reads.EXPECT().CustomerByID(gomock.Any(), int64(1)).Return(builder.NewCustomerBuilder().BuildSnapshot(), nil)
		token, err := tokens.GenerateToken(42, 2, "BUYER", now, sb.ExpiresAt())
		require.NoError(t, err)

		_, err = commands.NewSessionCommands(f.uow, clock.NewMockClock(now), tokens, 0).Authenticate(ctx, token)

		require.ErrorIs(t, err, commands.ErrInvalidSessionToken)
	})

	t.Run("valid token", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithin()
		f.sessions.EXPECT().FindByID(gomock.Any(), int64(42)).Return(sb.BuildStored(), nil)
		f.reads.EXPECT().CustomerByID(gomock.Any(), int64(1)).Return(builder.NewCustomerBuilder().BuildSnapshot(), nil)
		token, err := tokens.GenerateToken(42, 1, "BUYER", now, sb.ExpiresAt())
		require.NoError(t, err)

		res, err := commands.NewSessionCommands(f.uow, clock.NewMockClock(now), tokens, 0).Authenticate(ctx, token)

		require.NoError(t, err)
		assert.Equal(t, int64(42), res.Session.ID)
	})
}

func TestSessionCommands_Logout(t *testing.T) {
	b := builder.NewSessionBuilder()

	t.Run("ends an open session", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithin()
		stored := b.BuildStored()
		f.sessions.EXPECT().FindByID(gomock.Any(), int64(42)).Return(stored, nil)
		f.sessions.EXPECT().SaveEnd(gomock.Any(), stored).Return(nil)

		err := commands.NewSessionCommands(f.uow, clock.NewMockClock(b.StartedAt.Add(time.Minute)), jwt.NewService(testSecret), 0).
			Logout(context.Background(), 42)

		require.NoError(t, err)
		assert.NotNil(t, stored.EndedAt())
	})

	t.Run("unknown session", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithin()
		f.sessions.EXPECT().FindByID(gomock.Any(), int64(7)).Return(nil, notFound())

		err := commands.NewSessionCommands(f.uow, clock.NewRealClock(), jwt.NewService(testSecret), 0).
			Logout(context.Background(), 7)

		require.ErrorIs(t, err, commands.ErrSessionNotFound)
	})
}
