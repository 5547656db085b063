package repository

import (
	"context"

	"hotel-booking-core/internal/domain/hotel"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/infra/db"
	"hotel-booking-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type HotelRepository struct {
	db db.DBTX
}

func NewHotelRepository(dbtx db.DBTX) *HotelRepository {
	return &HotelRepository{db: dbtx}
}

func (r *HotelRepository) FindByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error) {
	const query = `SELECT id, name, active FROM hotels WHERE id = $1`

	var (
		hotelID uuid.UUID
		name    string
		active  bool
	)
	err := r.db.QueryRow(ctx, query, id).Scan(&hotelID, &name, &active)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hotel by ID", err)
	}

	return hotel.Reconstruct(hotelID, name, active), nil
}
