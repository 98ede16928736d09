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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx, so fixtures can run inside a test transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CreateTestSport inserts a sport and returns its id.
func CreateTestSport(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	sportID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO sports (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING", sportID, name)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM sports WHERE name = $1", name).Scan(&sportID))
	}

	return sportID
}

func CreateTestVenue(t *testing.T, db DBLike, ownerID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	venueID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO venues (id, owner_id, name) VALUES ($1, $2, $3)", venueID, ownerID, name)
	require.NoError(t, err)

	return venueID
}

// BookingRow describes a booking inserted directly, bypassing creation rules,
// so tests can place bookings in the past.
type BookingRow struct {
	UserID  uuid.UUID
	VenueID uuid.UUID
	SportID uuid.UUID
	Court   string
	Date    time.Time
	Start   string
	End     string
	Status  string
}

func InsertBooking(t *testing.T, db DBLike, row BookingRow) uuid.UUID {
	t.Helper()

	if row.Court == "" {
		row.Court = "C1"
	}
	if row.Start == "" {
		row.Start, row.End = "10:00", "11:00"
	}
	if row.Status == "" {
		row.Status = "confirmed"
	}

	start, err := time.Parse("15:04", row.Start)
	require.NoError(t, err)
	end, err := time.Parse("15:04", row.End)
	require.NoError(t, err)

	id := uuid.New()
	_, err = db.Exec(context.Background(), `
		INSERT INTO bookings (id, user_id, venue_id, sport_id, court, date, start_time, end_time,
		                      duration_minutes, total_price, payment_status, status)
		VALUES ($1, $2, $3, $4, $5, $6::date, $7, $8, $9, 25.00, 'pending', $10)`,
		id, row.UserID, row.VenueID, row.SportID, row.Court, row.Date.Format(time.DateOnly),
		row.Start, row.End, int(end.Sub(start).Minutes()), row.Status)
	require.NoError(t, err)

	return id
}

// VenueAggregate reads the stored rating aggregate of a venue.
func VenueAggregate(t *testing.T, db DBLike, venueID uuid.UUID) (avg float64, total int, stale bool) {
	t.Helper()

	err := db.QueryRow(context.Background(),
		"SELECT average_rating::float8, total_ratings, rating_stale FROM venues WHERE id = $1", venueID).
		Scan(&avg, &total, &stale)
	require.NoError(t, err)
	return avg, total, stale
}

// SportBookingCount reads the best-effort booking counter of a sport.
func SportBookingCount(t *testing.T, db DBLike, sportID uuid.UUID) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.QueryRow(context.Background(),
		"SELECT booking_count FROM sports WHERE id = $1", sportID).Scan(&n))
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO sports (id, name) VALUES
		    (gen_random_uuid(), 'Padel'),
		    (gen_random_uuid(), 'Tennis')
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
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
