package request

import (
	"hotel-booking-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuoteRequest struct {
	RoomID       uuid.UUID `json:"room_id" binding:"required"`
	CheckIn      string    `json:"check_in" binding:"required"`
	CheckOut     string    `json:"check_out" binding:"required"`
	NumRooms     int       `json:"num_rooms"`
	NumAdults    int       `json:"num_adults" binding:"required,min=1"`
	NumChildren  int       `json:"num_children"`
	ChildrenAges []int     `json:"children_ages"`
	PriceType    string    `json:"price_type"`
}

func (r QuoteRequest) ToParams() queries.QuoteParams {
	numRooms := r.NumRooms
	if numRooms < 1 {
		numRooms = 1
	}
	priceType := r.PriceType
	if priceType == "" {
		priceType = "room"
	}
	return queries.QuoteParams{
		RoomID:       r.RoomID,
		CheckIn:      r.CheckIn,
		CheckOut:     r.CheckOut,
		NumRooms:     numRooms,
		NumAdults:    r.NumAdults,
		NumChildren:  r.NumChildren,
		ChildrenAges: r.ChildrenAges,
		PriceType:    priceType,
	}
}

type AvailabilityRequest struct {
	RoomID   uuid.UUID `form:"room_id" binding:"required"`
	CheckIn  string    `form:"check_in" binding:"required"`
	CheckOut string    `form:"check_out" binding:"required"`
	NumRooms int       `form:"num_rooms,default=1"`
}
