//go:build unit || e2e

package dbtest

import (
	"context"
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

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx, so fixtures work inside
// and outside transactions.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestHotel(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	hotelID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO hotels (id, name, active) VALUES ($1, $2, true)",
		hotelID, name)
	require.NoError(t, err)
	return hotelID
}

func CreateTestRoom(t *testing.T, db DBLike, hotelID uuid.UUID, name string, baseOccupancy, maxChildren, totalRooms int) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO rooms (id, hotel_id, name, base_occupancy, max_children, total_rooms, active)
		 VALUES ($1, $2, $3, $4, $5, $6, true)`,
		roomID, hotelID, name, baseOccupancy, maxChildren, totalRooms)
	require.NoError(t, err)
	return roomID
}

// SetInventory upserts one per-night inventory row.
func SetInventory(t *testing.T, db DBLike, roomID uuid.UUID, day string, priceRoom, priceCombo *int64, stock int, status string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`INSERT INTO inventory_days (room_id, day, price_room, price_combo, stock, booked, status)
		 VALUES ($1, $2, $3, $4, $5, 0, $6)
		 ON CONFLICT (room_id, day) DO UPDATE
		 SET price_room = $3, price_combo = $4, stock = $5, status = $6`,
		roomID, day, priceRoom, priceCombo, stock, status)
	require.NoError(t, err)
}

func CreateSurchargeRule(t *testing.T, db DBLike, roomID uuid.UUID, ruleType, label string, amount int64, perNight, mandatory bool) uuid.UUID {
	t.Helper()

	ruleID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO surcharge_rules
		   (id, room_id, surcharge_type, label, min_age, max_age, amount,
		    is_per_night, applies_to_room, applies_to_combo, is_mandatory, sort_order, active)
		 VALUES ($1, $2, $3, $4, 0, 17, $5, $6, true, true, $7, 0, true)`,
		ruleID, roomID, ruleType, label, amount, perNight, mandatory)
	require.NoError(t, err)
	return ruleID
}

func GetRemainingStock(t *testing.T, db DBLike, roomID uuid.UUID, day string) int {
	t.Helper()

	var stock int
	err := db.QueryRow(context.Background(),
		"SELECT stock FROM inventory_days WHERE room_id = $1 AND day = $2",
		roomID, day).Scan(&stock)
	require.NoError(t, err)
	return stock
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all public tables between subtests.
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
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE")
	})

	sql, _ := truncateSQL.Load().(string)
	if sql == "" {
		return nil
	}
	_, err := pool.Exec(ctx, sql)
	return err
}
