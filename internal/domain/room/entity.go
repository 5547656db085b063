package room

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidOccupancy = errors.New("base occupancy must be at least 1")

// Room is a sellable room type. Admin-configured, read-only to the core.
type Room struct {
	id            uuid.UUID
	hotelID       uuid.UUID
	name          string
	baseOccupancy int
	maxChildren   int
	totalRooms    int
	active        bool
}

func NewRoom(id, hotelID uuid.UUID, name string, baseOccupancy, maxChildren, totalRooms int, active bool) (*Room, error) {
	if baseOccupancy < 1 {
		return nil, ErrInvalidOccupancy
	}
	if maxChildren < 0 {
		maxChildren = 0
	}
	return &Room{
		id:            id,
		hotelID:       hotelID,
		name:          name,
		baseOccupancy: baseOccupancy,
		maxChildren:   maxChildren,
		totalRooms:    totalRooms,
		active:        active,
	}, nil
}

func (r *Room) ID() uuid.UUID { return r.id }
func (r *Room) HotelID() uuid.UUID { return r.hotelID }
func (r *Room) Name() string { return r.name }
func (r *Room) BaseOccupancy() int { return r.baseOccupancy }
func (r *Room) MaxChildren() int { return r.maxChildren }
func (r *Room) TotalRooms() int { return r.totalRooms }
func (r *Room) IsActive() bool { return r.active }
