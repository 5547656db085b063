package queries

import (
	"context"
	"time"

	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/pricing"
	"hotel-booking-core/internal/domain/room"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/domain/surcharge"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound     = errs.New("room not found")
	ErrInvalidDates     = errs.New("invalid dates")
	ErrInvalidPriceType = errs.New("invalid price type")
	ErrInvalidParty     = errs.New("invalid party composition")
)

type RoomReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
	ListActiveByHotel(ctx context.Context, hotelID uuid.UUID) ([]*room.Room, error)
}

type InventoryReader interface {
	RangeByRoom(ctx context.Context, roomID uuid.UUID, from, to time.Time) (map[string]*inventory.Day, error)
	RangeByHotel(ctx context.Context, hotelID uuid.UUID, from, to time.Time) ([]*inventory.Day, error)
}

type SurchargeReader interface {
	ListActiveByRoom(ctx context.Context, roomID uuid.UUID) ([]*surcharge.Rule, error)
}

type QuoteParams struct {
	RoomID       uuid.UUID
	CheckIn      string
	CheckOut     string
	NumRooms     int
	NumAdults    int
	NumChildren  int
	ChildrenAges []int
	PriceType    string
}

type AvailabilityView struct {
	Available        bool               `json:"available"`
	BlockingReason   string             `json:"blocking_reason,omitempty"`
	UnavailableDates []UnavailableNight `json:"unavailable_dates,omitempty"`
}

type UnavailableNight struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
	Stock  int    `json:"stock,omitempty"`
}

type PricingQueries interface {
	Quote(ctx context.Context, params QuoteParams) (*pricing.Quote, error)
	Availability(ctx context.Context, roomID uuid.UUID, checkIn, checkOut string, numRooms int) (*AvailabilityView, error)
}

type pricingQueriesImpl struct {
	rooms      RoomReader
	inventory  InventoryReader
	surcharges SurchargeReader
	engine     *pricing.Engine
}

func NewPricingQueries(rooms RoomReader, inv InventoryReader, surcharges SurchargeReader, engine *pricing.Engine) PricingQueries {
	return &pricingQueriesImpl{
		rooms:      rooms,
		inventory:  inv,
		surcharges: surcharges,
		engine:     engine,
	}
}

func (q *pricingQueriesImpl) Quote(ctx context.Context, params QuoteParams) (*pricing.Quote, error) {
	priceType := pricing.PriceType(params.PriceType)
	if !priceType.IsValid() {
		return nil, ErrInvalidPriceType
	}

	rng, err := stay.ParseRange(params.CheckIn, params.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDates)
	}

	guests, err := stay.NewGuests(params.NumRooms, params.NumAdults, params.NumChildren, params.ChildrenAges)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidParty)
	}

	rm, err := q.findRoom(ctx, params.RoomID)
	if err != nil {
		return nil, err
	}

	days, err := q.inventory.RangeByRoom(ctx, rm.ID(), rng.CheckIn(), rng.CheckOut())
	if err != nil {
		return nil, err
	}
	rules, err := q.surcharges.ListActiveByRoom(ctx, rm.ID())
	if err != nil {
		return nil, err
	}

	return q.engine.Calculate(rm, days, rules, rng, guests, priceType), nil
}

func (q *pricingQueriesImpl) Availability(ctx context.Context, roomID uuid.UUID, checkIn, checkOut string, numRooms int) (*AvailabilityView, error) {
	rng, err := stay.ParseRange(checkIn, checkOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDates)
	}
	if numRooms < 1 {
		numRooms = 1
	}

	rm, err := q.findRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	days, err := q.inventory.RangeByRoom(ctx, rm.ID(), rng.CheckIn(), rng.CheckOut())
	if err != nil {
		return nil, err
	}

	result := inventory.CheckAvailability(rm, days, rng, numRooms)
	view := &AvailabilityView{
		Available:      result.Available,
		BlockingReason: string(result.BlockingReason),
	}
	for _, d := range result.UnavailableDates {
		view.UnavailableDates = append(view.UnavailableDates, UnavailableNight{
			Date:   stay.DateKey(d.Date),
			Reason: string(d.Reason),
			Stock:  d.Stock,
		})
	}
	return view, nil
}

func (q *pricingQueriesImpl) findRoom(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	rm, err := q.rooms.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return rm, nil
}
