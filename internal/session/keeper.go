package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"delivery-admin/internal/pkg/clock"
	"delivery-admin/internal/pkg/errs"
)

const changesBuffer = 16

type Option func(*Keeper)

func WithInterval(d time.Duration) Option {
	return func(k *Keeper) {
		if d > 0 {
			k.interval = d
		}
	}
}

func WithClock(c clock.Clock) Option {
	return func(k *Keeper) { k.clk = c }
}

func WithLogger(l *slog.Logger) Option {
	return func(k *Keeper) { k.logger = l }
}

// Keeper owns the process-wide session state. Start loads the cached record
// and begins periodic revalidation; Close stops it and waits for the
// revalidation goroutine to exit.
type Keeper struct {
	store    Store
	remote   Remote
	clk      clock.Clock
	interval time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	state   State
	record  *Record
	alive   bool
	changes chan Change

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	closeOnce sync.Once
}

func NewKeeper(store Store, remote Remote, opts ...Option) *Keeper {
	k := &Keeper{
		store:    store,
		remote:   remote,
		clk:      clock.NewRealClock(),
		interval: DefaultRevalidateInterval,
		logger:   slog.Default(),
		state:    StateChecking,
		alive:    true,
		changes:  make(chan Change, changesBuffer),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Start resolves the checking state and launches revalidation. It returns the
// state reached after the initial check.
func (k *Keeper) Start(ctx context.Context) State {
	rec := k.loadUsable(ctx)
	if rec != nil {
		if err := k.remote.Validate(ctx, rec.SessionID); err != nil {
			k.logger.Debug("cached session rejected", "session_id", rec.SessionID, "error", err)
			k.clearStore(ctx)
			rec = nil
		}
	}

	k.mu.Lock()
	if !k.alive {
		k.mu.Unlock()
		return StateAnonymous
	}
	if rec != nil {
		k.transition(StateAuthenticated, rec)
	} else {
		k.transition(StateAnonymous, nil)
	}
	state := k.state

	loopCtx, cancel := context.WithCancel(context.Background())
	k.cancel = cancel
	k.wg.Add(1)
	k.mu.Unlock()

	go k.run(loopCtx)
	return state
}

// loadUsable returns the cached record when it is complete and unexpired.
// Anything else is cleared from the store.
func (k *Keeper) loadUsable(ctx context.Context) *Record {
	rec, err := k.store.Load(ctx)
	if err != nil {
		k.logger.Warn("failed to load cached session", "error", err)
		k.clearStore(ctx)
		return nil
	}
	if rec == nil {
		return nil
	}
	if !rec.Usable(k.clk.Now()) {
		k.clearStore(ctx)
		return nil
	}
	return rec
}

func (k *Keeper) run(ctx context.Context) {
	defer k.wg.Done()

	ticker := time.NewTicker(k.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			k.revalidate(ctx)
		}
	}
}

func (k *Keeper) revalidate(ctx context.Context) {
	k.mu.Lock()
	rec := k.record
	k.mu.Unlock()
	if rec == nil {
		return
	}

	var err error
	if !rec.ExpiresAt.After(k.clk.Now()) {
		err = errs.New("session expired locally")
	} else {
		err = k.remote.Validate(ctx, rec.SessionID)
	}
	if err == nil {
		return
	}
	// A cancelled check is teardown, not a verdict on the session.
	if ctx.Err() != nil {
		return
	}

	k.mu.Lock()
	if !k.alive || k.record == nil || k.record.SessionID != rec.SessionID {
		k.mu.Unlock()
		return
	}
	k.transition(StateAnonymous, nil)
	k.mu.Unlock()

	k.logger.Info("session is no longer valid", "session_id", rec.SessionID, "error", err)
	k.clearStore(ctx)
}

// Login opens a remote session for customerID and caches it.
func (k *Keeper) Login(ctx context.Context, customerID int64) (*Record, error) {
	if customerID <= 0 {
		return nil, ErrInvalidCustomer
	}
	rec, err := k.remote.Login(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if err := k.store.Save(ctx, *rec); err != nil {
		return nil, errs.Wrap(err, "failed to cache session")
	}

	stored := *rec
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.alive {
		k.transition(StateAuthenticated, &stored)
	}
	return rec, nil
}

// Logout drops local state first, then ends the remote session. Remote
// failures are ignored; the session may already be gone.
func (k *Keeper) Logout(ctx context.Context) error {
	k.mu.Lock()
	rec := k.record
	if k.alive {
		k.transition(StateAnonymous, nil)
	}
	k.mu.Unlock()

	clearErr := k.store.Clear(ctx)

	if rec != nil {
		if err := k.remote.Close(ctx, rec.SessionID); err != nil {
			k.logger.Debug("remote logout failed", "session_id", rec.SessionID, "error", err)
		}
	}
	return clearErr
}

// UpdateCustomer refreshes the cached customer details of the live session.
func (k *Keeper) UpdateCustomer(ctx context.Context, c Customer) error {
	k.mu.Lock()
	if k.record == nil || k.record.Customer.ID != c.ID {
		k.mu.Unlock()
		return nil
	}
	updated := *k.record
	updated.Customer = c
	k.record = &updated
	k.mu.Unlock()

	return k.store.Save(ctx, updated)
}

// Current returns the state and a copy of the live record, if any.
func (k *Keeper) Current() (State, *Record) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.record == nil {
		return k.state, nil
	}
	copied := *k.record
	return k.state, &copied
}

// Changes delivers state transitions until Close. A reader that falls behind
// misses transitions; Current stays authoritative.
func (k *Keeper) Changes() <-chan Change {
	return k.changes
}

// Close stops revalidation and waits for it. Safe to call more than once.
func (k *Keeper) Close() {
	k.closeOnce.Do(func() {
		k.mu.Lock()
		k.alive = false
		cancel := k.cancel
		k.mu.Unlock()

		if cancel != nil {
			cancel()
		}
		k.wg.Wait()
		close(k.changes)
	})
}

// transition must be called with mu held.
func (k *Keeper) transition(to State, rec *Record) {
	from := k.state
	k.state = to
	k.record = rec

	if from == to && to != StateAuthenticated {
		return
	}
	change := Change{From: from, To: to, At: k.clk.Now()}
	if rec != nil {
		c := rec.Customer
		change.Customer = &c
	}
	select {
	case k.changes <- change:
	default:
	}
}

func (k *Keeper) clearStore(ctx context.Context) {
	if err := k.store.Clear(ctx); err != nil {
		k.logger.Warn("failed to clear cached session", "error", err)
	}
}
