//go:build unit

package session_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"delivery-admin/internal/pkg/clock"
	"delivery-admin/internal/session"
	sessionmock "delivery-admin/tests/mock/session"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var baseTime = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

type keeperFixture struct {
	store  *sessionmock.MockStore
	remote *sessionmock.MockRemote
	clk    *clock.MockClock
	keeper *session.Keeper
}

func newKeeperFixture(t *testing.T, interval time.Duration) *keeperFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &keeperFixture{
		store:  sessionmock.NewMockStore(ctrl),
		remote: sessionmock.NewMockRemote(ctrl),
		clk:    clock.NewMockClock(baseTime),
	}
	f.keeper = session.NewKeeper(f.store, f.remote,
		session.WithInterval(interval),
		session.WithClock(f.clk),
		session.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	t.Cleanup(f.keeper.Close)
	return f
}

func liveRecord() *session.Record {
	return &session.Record{
		Customer:  session.Customer{ID: 7, FullName: "Ana Pérez", Email: "ana@example.com"},
		SessionID: 42,
		Token:     "token",
		ExpiresAt: baseTime.Add(5 * time.Minute),
	}
}

func waitForState(t *testing.T, ch <-chan session.Change, want session.State) session.Change {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case c, ok := <-ch:
			require.True(t, ok, "changes closed before reaching %s", want)
			if c.To == want {
				return c
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %s", want)
		}
	}
}

func TestKeeper_Start(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(f *keeperFixture)
		want  session.State
	}{
		{
			name: "no cached record is anonymous",
			setup: func(f *keeperFixture) {
				f.store.EXPECT().Load(gomock.Any()).Return(nil, nil)
			},
			want: session.StateAnonymous,
		},
		{
			name: "malformed record is cleared",
			setup: func(f *keeperFixture) {
				f.store.EXPECT().Load(gomock.Any()).Return(nil, session.ErrMalformedRecord)
				f.store.EXPECT().Clear(gomock.Any()).Return(nil)
			},
			want: session.StateAnonymous,
		},
		{
			name: "expired record is cleared without asking the backend",
			setup: func(f *keeperFixture) {
				rec := liveRecord()
				rec.ExpiresAt = baseTime
				f.store.EXPECT().Load(gomock.Any()).Return(rec, nil)
				f.store.EXPECT().Clear(gomock.Any()).Return(nil)
			},
			want: session.StateAnonymous,
		},
		{
			name: "record without session id is cleared",
			setup: func(f *keeperFixture) {
				rec := liveRecord()
				rec.SessionID = 0
				f.store.EXPECT().Load(gomock.Any()).Return(rec, nil)
				f.store.EXPECT().Clear(gomock.Any()).Return(nil)
			},
			want: session.StateAnonymous,
		},
		{
			name: "record rejected by the backend is cleared",
			setup: func(f *keeperFixture) {
				f.store.EXPECT().Load(gomock.Any()).Return(liveRecord(), nil)
				f.remote.EXPECT().Validate(gomock.Any(), int64(42)).Return(errors.New("not found"))
				f.store.EXPECT().Clear(gomock.Any()).Return(nil)
			},
			want: session.StateAnonymous,
		},
		{
			name: "validated record is authenticated",
			setup: func(f *keeperFixture) {
				f.store.EXPECT().Load(gomock.Any()).Return(liveRecord(), nil)
				f.remote.EXPECT().Validate(gomock.Any(), int64(42)).Return(nil)
			},
			want: session.StateAuthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			// Long interval: only the initial check runs.
			f := newKeeperFixture(t, time.Hour)
			tt.setup(f)

			got := f.keeper.Start(context.Background())

			assert.Equal(t, tt.want, got)
			state, rec := f.keeper.Current()
			assert.Equal(t, tt.want, state)
			if tt.want == session.StateAuthenticated {
				if diff := cmp.Diff(liveRecord(), rec); diff != "" {
					t.Errorf("record mismatch (-want +got):\n%s", diff)
				}
			} else {
				assert.Nil(t, rec)
			}

			change := <-f.keeper.Changes()
			assert.Equal(t, session.StateChecking, change.From)
			assert.Equal(t, tt.want, change.To)
		})
	}
}

func TestKeeper_RevalidationFailureLogsOut(t *testing.T) {
	f := newKeeperFixture(t, 10*time.Millisecond)

	f.store.EXPECT().Load(gomock.Any()).Return(liveRecord(), nil)
	gomock.InOrder(
		f.remote.EXPECT().Validate(gomock.Any(), int64(42)).Return(nil),
		f.remote.EXPECT().Validate(gomock.Any(), int64(42)).Return(errors.New("session has ended or expired")),
	)
	f.store.EXPECT().Clear(gomock.Any()).Return(nil)

	require.Equal(t, session.StateAuthenticated, f.keeper.Start(context.Background()))

	change := waitForState(t, f.keeper.Changes(), session.StateAnonymous)
	assert.Equal(t, session.StateAuthenticated, change.From)
	assert.Nil(t, change.Customer)

	f.keeper.Close()
	state, rec := f.keeper.Current()
	assert.Equal(t, session.StateAnonymous, state)
	assert.Nil(t, rec)
}

func TestKeeper_LocalExpiryLogsOutWithoutRemoteCheck(t *testing.T) {
	f := newKeeperFixture(t, 50*time.Millisecond)

	f.store.EXPECT().Load(gomock.Any()).Return(liveRecord(), nil)
	f.remote.EXPECT().Validate(gomock.Any(), int64(42)).Return(nil).Times(1)
	f.store.EXPECT().Clear(gomock.Any()).Return(nil)

	require.Equal(t, session.StateAuthenticated, f.keeper.Start(context.Background()))
	f.clk.Add(5 * time.Minute)

	waitForState(t, f.keeper.Changes(), session.StateAnonymous)
}

func TestKeeper_Login(t *testing.T) {
	t.Parallel()

	t.Run("rejects a missing customer before any request", func(t *testing.T) {
		t.Parallel()
		f := newKeeperFixture(t, time.Hour)

		_, err := f.keeper.Login(context.Background(), 0)

		assert.ErrorIs(t, err, session.ErrInvalidCustomer)
	})

	t.Run("caches the session and authenticates", func(t *testing.T) {
		t.Parallel()
		f := newKeeperFixture(t, time.Hour)
		f.store.EXPECT().Load(gomock.Any()).Return(nil, nil)
		f.remote.EXPECT().Login(gomock.Any(), int64(7)).Return(liveRecord(), nil)
		f.store.EXPECT().Save(gomock.Any(), *liveRecord()).Return(nil)

		require.Equal(t, session.StateAnonymous, f.keeper.Start(context.Background()))
		rec, err := f.keeper.Login(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, int64(42), rec.SessionID)
		state, _ := f.keeper.Current()
		assert.Equal(t, session.StateAuthenticated, state)

		change := waitForState(t, f.keeper.Changes(), session.StateAuthenticated)
		require.NotNil(t, change.Customer)
		assert.Equal(t, "ana@example.com", change.Customer.Email)
	})

	t.Run("backend failure leaves the state untouched", func(t *testing.T) {
		t.Parallel()
		f := newKeeperFixture(t, time.Hour)
		f.store.EXPECT().Load(gomock.Any()).Return(nil, nil)
		f.remote.EXPECT().Login(gomock.Any(), int64(7)).Return(nil, errors.New("customer already has an active session"))

		f.keeper.Start(context.Background())
		_, err := f.keeper.Login(context.Background(), 7)

		require.Error(t, err)
		state, _ := f.keeper.Current()
		assert.Equal(t, session.StateAnonymous, state)
	})
}

func TestKeeper_Logout(t *testing.T) {
	t.Parallel()

	t.Run("clears locally before closing remotely and ignores remote errors", func(t *testing.T) {
		t.Parallel()
		f := newKeeperFixture(t, time.Hour)
		f.store.EXPECT().Load(gomock.Any()).Return(liveRecord(), nil)
		f.remote.EXPECT().Validate(gomock.Any(), int64(42)).Return(nil)
		gomock.InOrder(
			f.store.EXPECT().Clear(gomock.Any()).Return(nil),
			f.remote.EXPECT().Close(gomock.Any(), int64(42)).Return(errors.New("active session not found")),
		)

		require.Equal(t, session.StateAuthenticated, f.keeper.Start(context.Background()))
		err := f.keeper.Logout(context.Background())

		require.NoError(t, err)
		state, rec := f.keeper.Current()
		assert.Equal(t, session.StateAnonymous, state)
		assert.Nil(t, rec)
	})

	t.Run("anonymous logout only clears the cache", func(t *testing.T) {
		t.Parallel()
		f := newKeeperFixture(t, time.Hour)
		f.store.EXPECT().Load(gomock.Any()).Return(nil, nil)
		f.store.EXPECT().Clear(gomock.Any()).Return(nil)

		f.keeper.Start(context.Background())

		require.NoError(t, f.keeper.Logout(context.Background()))
	})
}

func TestKeeper_UpdateCustomer(t *testing.T) {
	t.Parallel()
	f := newKeeperFixture(t, time.Hour)
	f.store.EXPECT().Load(gomock.Any()).Return(liveRecord(), nil)
	f.remote.EXPECT().Validate(gomock.Any(), int64(42)).Return(nil)

	want := *liveRecord()
	want.Customer.FullName = "Ana María Pérez"
	f.store.EXPECT().Save(gomock.Any(), want).Return(nil)

	f.keeper.Start(context.Background())
	require.NoError(t, f.keeper.UpdateCustomer(context.Background(), want.Customer))
	// Another customer's details are ignored.
	require.NoError(t, f.keeper.UpdateCustomer(context.Background(), session.Customer{ID: 99}))

	_, rec := f.keeper.Current()
	assert.Equal(t, "Ana María Pérez", rec.Customer.FullName)
}

func TestKeeper_CloseSuppressesInFlightCheck(t *testing.T) {
	f := newKeeperFixture(t, 10*time.Millisecond)

	started := make(chan struct{})
	f.store.EXPECT().Load(gomock.Any()).Return(liveRecord(), nil)
	gomock.InOrder(
		f.remote.EXPECT().Validate(gomock.Any(), int64(42)).Return(nil),
		f.remote.EXPECT().Validate(gomock.Any(), int64(42)).DoAndReturn(func(ctx context.Context, _ int64) error {
			close(started)
			<-ctx.Done()
			return ctx.Err()
		}),
	)

	require.Equal(t, session.StateAuthenticated, f.keeper.Start(context.Background()))
	<-started

	f.keeper.Close()
	f.keeper.Close()

	state, rec := f.keeper.Current()
	assert.Equal(t, session.StateAuthenticated, state)
	assert.NotNil(t, rec)

	// Drain: the channel is closed once teardown finishes.
	for range f.keeper.Changes() {
	}
}

func TestRecord_Usable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(r *session.Record)
		want   bool
	}{
		{name: "complete and unexpired", mutate: func(*session.Record) {}, want: true},
		{name: "expires exactly now", mutate: func(r *session.Record) { r.ExpiresAt = baseTime }, want: false},
		{name: "missing customer", mutate: func(r *session.Record) { r.Customer.ID = 0 }, want: false},
		{name: "missing expiry", mutate: func(r *session.Record) { r.ExpiresAt = time.Time{} }, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := liveRecord()
			tt.mutate(r)
			assert.Equal(t, tt.want, r.Usable(baseTime))
		})
	}

	var nilRecord *session.Record
	assert.False(t, nilRecord.Usable(baseTime))
}
