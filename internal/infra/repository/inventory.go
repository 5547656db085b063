package repository

import (
	"context"
	"time"

	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/room"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/infra/db"
	"hotel-booking-core/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type InventoryRepository struct {
	db db.DBTX
}

func NewInventoryRepository(dbtx db.DBTX) *InventoryRepository {
	return &InventoryRepository{db: dbtx}
}

// RangeByRoom loads every inventory day of [from, to) in one range query;
// the per-night lookups of pricing and availability read from the returned
// map instead of issuing a query per night.
func (r *InventoryRepository) RangeByRoom(ctx context.Context, roomID uuid.UUID, from, to time.Time) (map[string]*inventory.Day, error) {
	const query = `
		SELECT room_id, day, price_room, price_combo, stock, booked, status
		FROM inventory_days
		WHERE room_id = $1 AND day >= $2 AND day < $3
		ORDER BY day`

	rows, err := r.db.Query(ctx, query, roomID, pgconv.DateToPgtype(from), pgconv.DateToPgtype(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query inventory range", err)
	}
	defer rows.Close()

	days := make(map[string]*inventory.Day)
	for rows.Next() {
		day, err := scanInventoryDay(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan inventory day", err)
		}
		days[stay.DateKey(day.Date)] = day
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate inventory days", err)
	}
	return days, nil
}

// RangeByHotel loads inventory days for all active rooms of a hotel within
// [from, to], for the calendar summary.
func (r *InventoryRepository) RangeByHotel(ctx context.Context, hotelID uuid.UUID, from, to time.Time) ([]*inventory.Day, error) {
	const query = `
		SELECT d.room_id, d.day, d.price_room, d.price_combo, d.stock, d.booked, d.status
		FROM inventory_days d
		JOIN rooms r ON r.id = d.room_id
		WHERE r.hotel_id = $1 AND r.active AND d.day >= $2 AND d.day <= $3
		ORDER BY d.day, d.room_id`

	rows, err := r.db.Query(ctx, query, hotelID, pgconv.DateToPgtype(from), pgconv.DateToPgtype(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query hotel inventory range", err)
	}
	defer rows.Close()

	var days []*inventory.Day
	for rows.Next() {
		day, err := scanInventoryDay(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan inventory day", err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate inventory days", err)
	}
	return days, nil
}

// ReserveNights decrements stock for every night of the stay inside the
// caller's transaction. The decrement is conditional (stock >= n and the day
// still sellable); zero rows affected means another booking got there first
// and the whole creation must fail, which is what closes the
// check-then-reserve race. Nights without a row are seeded at the room's
// total_rooms ceiling first.
func (r *InventoryRepository) ReserveNights(ctx context.Context, tx db.DBTX, rm *room.Room, dates []time.Time, numRooms int) error {
	const seed = `
		INSERT INTO inventory_days (room_id, day, stock, booked, status)
		VALUES ($1, $2, $3, 0,
			CASE WHEN $3 <= 0 THEN 'sold_out' WHEN $3 <= 2 THEN 'limited' ELSE 'available' END)
		ON CONFLICT (room_id, day) DO NOTHING`

	// GREATEST guards the stock floor even though the WHERE clause already
	// rejects shortages.
	const reserve = `
		UPDATE inventory_days
		SET stock = GREATEST(0, stock - $3),
		    booked = booked + $3,
		    status = CASE
		        WHEN status = 'stop_sell' THEN status
		        WHEN stock - $3 <= 0 THEN 'sold_out'
		        WHEN stock - $3 <= 2 THEN 'limited'
		        ELSE 'available'
		    END,
		    updated_at = now()
		WHERE room_id = $1 AND day = $2
		  AND status NOT IN ('stop_sell', 'sold_out')
		  AND stock >= $3`

	for _, date := range dates {
		day := pgconv.DateToPgtype(date)

		if _, err := tx.Exec(ctx, seed, rm.ID(), day, rm.TotalRooms()); err != nil {
			return infra.WrapRepoErr("failed to seed inventory day", err)
		}

		tag, err := tx.Exec(ctx, reserve, rm.ID(), day, numRooms)
		if err != nil {
			return infra.WrapRepoErr("failed to reserve inventory", err)
		}
		if tag.RowsAffected() == 0 {
			return infra.WrapRepoErr("insufficient stock for "+stay.DateKey(date), nil, infra.KindConflict)
		}
	}
	return nil
}

func scanInventoryDay(row rowScanner) (*inventory.Day, error) {
	var (
		day        inventory.Day
		date       pgtype.Date
		priceRoom  pgtype.Int8
		priceCombo pgtype.Int8
		status     string
	)
	if err := row.Scan(&day.RoomID, &date, &priceRoom, &priceCombo, &day.Stock, &day.Booked, &status); err != nil {
		return nil, err
	}
	day.Date = pgconv.DateFromPgtype(date)
	day.PriceRoom = pgconv.Int8PtrFromPgtype(priceRoom)
	day.PriceCombo = pgconv.Int8PtrFromPgtype(priceCombo)
	day.Status = inventory.Status(status)
	return &day, nil
}
