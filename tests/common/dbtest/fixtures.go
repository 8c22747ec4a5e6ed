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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// ReservationRow is inserted as-is, so tests can seed rows the booking flow would never write
// (overlaps, out-of-range stations).
type ReservationRow struct {
	Type     string
	Station  int
	Date     string
	Time     string
	Duration int
	Name     string
	Phone    string
	Email    string
	UserID   *string
}

func DefaultReservationRow(typ string, station int, date, clock string, duration int) ReservationRow {
	return ReservationRow{
		Type:     typ,
		Station:  station,
		Date:     date,
		Time:     clock,
		Duration: duration,
		Name:     "Seed Player",
		Phone:    "+40 700 000 000",
		Email:    "seed@example.com",
	}
}

func InsertReservation(t *testing.T, db DBLike, row ReservationRow) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO reservations (type, station, date, "time", duration, name, phone, email, user_id)
		VALUES ($1, $2, $3::date, $4::time, $5, $6, $7, $8, $9)
		RETURNING id`,
		row.Type, row.Station, row.Date, row.Time, row.Duration, row.Name, row.Phone, row.Email, row.UserID,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func CountReservations(t *testing.T, db DBLike, date string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM reservations WHERE date = $1::date", date).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
