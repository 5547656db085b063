package queries

import (
	"context"
	"time"

	"hotel-booking-core/internal/domain/hotel"
	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrHotelNotFound = errs.New("hotel not found")
	ErrInvalidMonth  = errs.New("invalid year or month")
)

// calendarOverlap widens the scanned range so calendar UIs can render the
// leading and trailing days of adjacent months.
const calendarOverlap = 7

type HotelReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error)
}

type CalendarDay struct {
	RoomMin  *int64 `json:"room_min"`
	ComboMin *int64 `json:"combo_min"`
	SoldOut  bool   `json:"sold_out"`
	Status   string `json:"status"`
}

type CalendarQueries interface {
	MonthlyPrices(ctx context.Context, hotelID uuid.UUID, year, month int) (map[string]*CalendarDay, error)
}

type calendarQueriesImpl struct {
	hotels    HotelReader
	rooms     RoomReader
	inventory InventoryReader
}

func NewCalendarQueries(hotels HotelReader, rooms RoomReader, inv InventoryReader) CalendarQueries {
	return &calendarQueriesImpl{
		hotels:    hotels,
		rooms:     rooms,
		inventory: inv,
	}
}

func (q *calendarQueriesImpl) MonthlyPrices(ctx context.Context, hotelID uuid.UUID, year, month int) (map[string]*CalendarDay, error) {
	if year < 1 || month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}

	if _, err := q.hotels.FindByID(ctx, hotelID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}

	rooms, err := q.rooms.ListActiveByHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	from := monthStart.AddDate(0, 0, -calendarOverlap)
	to := monthStart.AddDate(0, 1, -1).AddDate(0, 0, calendarOverlap)

	days, err := q.inventory.RangeByHotel(ctx, hotelID, from, to)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string][]*inventory.Day)
	for _, d := range days {
		key := stay.DateKey(d.Date)
		byDate[key] = append(byDate[key], d)
	}

	result := make(map[string]*CalendarDay)
	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		key := stay.DateKey(date)
		result[key] = summarizeDate(byDate[key], len(rooms))
	}
	return result, nil
}

// summarizeDate folds one date's rows across all active rooms. Rooms without
// a row count as available, so sold-out is an AND over the whole hotel, never
// an OR.
func summarizeDate(rows []*inventory.Day, numRooms int) *CalendarDay {
	day := &CalendarDay{Status: string(inventory.StatusAvailable)}

	anyStopSell := false
	unavailable := 0
	for _, row := range rows {
		if row.PriceRoom != nil && *row.PriceRoom > 0 {
			if day.RoomMin == nil || *row.PriceRoom < *day.RoomMin {
				day.RoomMin = row.PriceRoom
			}
		}
		if row.PriceCombo != nil && *row.PriceCombo > 0 {
			if day.ComboMin == nil || *row.PriceCombo < *day.ComboMin {
				day.ComboMin = row.PriceCombo
			}
		}
		if row.Status == inventory.StatusStopSell {
			anyStopSell = true
		}
		if !row.Sellable() {
			unavailable++
		}
	}

	day.SoldOut = numRooms > 0 && unavailable == numRooms
	switch {
	case anyStopSell:
		day.Status = string(inventory.StatusStopSell)
	case day.SoldOut:
		day.Status = string(inventory.StatusSoldOut)
	}
	return day
}
