package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"delivery-admin/internal/infra"
	"delivery-admin/internal/infra/pgsql"
	"delivery-admin/internal/infra/readstore"
	"delivery-admin/internal/infra/repository"
	"delivery-admin/internal/pkg/errs"
	"delivery-admin/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// retryPolicy governs how often a write transaction is replayed after a
// serialization failure or deadlock. Attempt n waits base*2^n plus up to 20%
// jitter.
type retryPolicy struct {
	attempts int
	base     time.Duration
}

var defaultRetry = retryPolicy{attempts: 4, base: 100 * time.Millisecond}

func (p retryPolicy) wait(attempt int) time.Duration {
	d := p.base << attempt
	return d + rand.N(d/5+1)
}

type PostgresUoW struct {
	pool  *pgxpool.Pool
	q     *pgsql.Queries
	retry retryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *pgsql.Queries) shared.UnitOfWork {
	return &PostgresUoW{pool: pool, q: q, retry: defaultRetry}
}

// Within runs fn in a READ COMMITTED transaction. Writers that touch slot
// capacity take row locks on the slots first. Deadlocks and serialization
// failures are replayed under the retry policy.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

	var err error
	for attempt := range u.retry.attempts {
		if attempt > 0 {
			wait := u.retry.wait(attempt - 1)
			slog.Warn("トランザクションを再試行します", "attempt", attempt+1, "wait_ms", wait.Milliseconds(), "error", err.Error())
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}

		err = u.attempt(ctx, opts, fn)
		if err == nil || !infra.IsRetryable(err) {
			return err
		}
	}

	slog.Error("transaction failed after max retries", "attempts", u.retry.attempts, "error", err.Error())
	return errs.Mark(err, errMaxRetriesExceeded)
}

// attempt owns exactly one pgx transaction so nothing is deferred across
// retries.
func (u *PostgresUoW) attempt(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer rollback(ctx, pgxTx)

	if err := fn(ctx, &pgTx{dbtx: pgxTx, uow: u}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

// WithinReadOnly gives fn one REPEATABLE READ snapshot, used when a read
// spans several tables that must agree (slots, zones and an address).
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db pgsql.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer rollback(ctx, pgxTx)

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}
	return pgxTx.Commit(ctx)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db pgsql.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return readstore.NewSnapshotReadStore(u.q, u.pool)
}

// rollback after Commit is a no-op that reports ErrTxClosed.
func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", "error", err.Error())
	}
}

type pgTx struct {
	dbtx pgsql.DBTX
	uow  *PostgresUoW

	customerRepo    shared.CustomerRepository
	addressRepo     shared.AddressRepository
	templateRepo    shared.TemplateRepository
	slotRepo        shared.SlotRepository
	zoneRepo        shared.ZoneRepository
	reservationRepo shared.ReservationRepository
	sessionRepo     shared.SessionRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() pgsql.DBTX {
	return t.dbtx
}

func (t *pgTx) Customers() shared.CustomerRepository {
	if t.customerRepo == nil {
		t.customerRepo = repository.NewCustomerRepository(t.uow.q, t.dbtx)
	}
	return t.customerRepo
}

func (t *pgTx) Addresses() shared.AddressRepository {
	if t.addressRepo == nil {
		t.addressRepo = repository.NewAddressRepository(t.uow.q, t.dbtx)
	}
	return t.addressRepo
}

func (t *pgTx) Templates() shared.TemplateRepository {
	if t.templateRepo == nil {
		t.templateRepo = repository.NewTemplateRepository(t.uow.q, t.dbtx)
	}
	return t.templateRepo
}

func (t *pgTx) Slots() shared.SlotRepository {
	if t.slotRepo == nil {
		t.slotRepo = repository.NewSlotRepository(t.uow.q, t.dbtx)
	}
	return t.slotRepo
}

func (t *pgTx) Zones() shared.ZoneRepository {
	if t.zoneRepo == nil {
		t.zoneRepo = repository.NewZoneRepository(t.uow.q, t.dbtx)
	}
	return t.zoneRepo
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q, t.dbtx)
	}
	return t.reservationRepo
}

func (t *pgTx) Sessions() shared.SessionRepository {
	if t.sessionRepo == nil {
		t.sessionRepo = repository.NewSessionRepository(t.uow.q, t.dbtx)
	}
	return t.sessionRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = readstore.NewSnapshotReadStore(t.uow.q, t.dbtx)
	}
	return t.commandReads
}
