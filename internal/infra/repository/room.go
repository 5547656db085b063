package repository

import (
	"context"

	"hotel-booking-core/internal/domain/room"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/infra/db"
	"hotel-booking-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(dbtx db.DBTX) *RoomRepository {
	return &RoomRepository{db: dbtx}
}

const roomColumns = `id, hotel_id, name, base_occupancy, max_children, total_rooms, active`

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	rm, err := scanRoom(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return rm, nil
}

func (r *RoomRepository) ListActiveByHotel(ctx context.Context, hotelID uuid.UUID) ([]*room.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE hotel_id = $1 AND active ORDER BY name`

	rows, err := r.db.Query(ctx, query, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms by hotel", err)
	}
	defer rows.Close()

	var rooms []*room.Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		rooms = append(rooms, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}
	return rooms, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoom(row rowScanner) (*room.Room, error) {
	var (
		id            uuid.UUID
		hotelID       uuid.UUID
		name          string
		baseOccupancy int
		maxChildren   int
		totalRooms    int
		active        bool
	)
	if err := row.Scan(&id, &hotelID, &name, &baseOccupancy, &maxChildren, &totalRooms, &active); err != nil {
		return nil, err
	}
	return room.NewRoom(id, hotelID, name, baseOccupancy, maxChildren, totalRooms, active)
}
