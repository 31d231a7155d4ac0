//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Reference templates seeded by SeedReferenceData. Identities restart on
// every reset so the ids are stable.
const (
	MorningTemplateID   int64 = 1 // 09:00-13:00
	AfternoonTemplateID int64 = 2 // 14:00-18:00
)

// SquareBoundary is a GeoJSON polygon around central Santiago. Points with
// lat in (-33.50, -33.40) and lng in (-70.70, -70.60) fall inside.
const SquareBoundary = `{"type":"Polygon","coordinates":[[[-70.70,-33.40],[-70.60,-33.40],[-70.60,-33.50],[-70.70,-33.50],[-70.70,-33.40]]]}`

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestCustomer(t *testing.T, db Querier, email string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO customers (full_name, email, customer_type) VALUES ($1, $2, 'BUYER') RETURNING id",
		"Test "+email, email).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestSlot(t *testing.T, db Querier, templateID int64, date string, maxCapacity int) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO delivery_slots (time_slot_template_id, delivery_date, delivery_cost_cents, max_capacity)
		 VALUES ($1, $2::date, 2990, $3) RETURNING id`,
		templateID, date, maxCapacity).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestZone inserts an active zone with SquareBoundary linked to slotID
// (nil for none).
func CreateTestZone(t *testing.T, db Querier, name string, slotID *int64) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO coverage_zones (name, commune, region, delivery_slot_id, max_capacity, boundary)
		 VALUES ($1, 'Santiago', 'Metropolitana', $2, 100, $3::jsonb) RETURNING id`,
		name, slotID, SquareBoundary).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestAddress(t *testing.T, db Querier, customerID int64, zoneID *int64) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO delivery_addresses (customer_id, zone_coverage_id, street, locality, commune, region, latitude, longitude)
		 VALUES ($1, $2, 'Av. Providencia 1234', 'Providencia', 'Providencia', 'Metropolitana', -33.45, -70.65) RETURNING id`,
		customerID, zoneID).Scan(&id)
	require.NoError(t, err)
	return id
}

func ReservedCount(t *testing.T, db Querier, slotID int64) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT reserved_count FROM delivery_slots WHERE id = $1", slotID).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO time_slot_templates (start_time, end_time) VALUES
		    ('09:00', '13:00'),
		    ('14:00', '18:00');
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except the migration-seeded location catalog and
// reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions', 'regions', 'cities', 'communes')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
