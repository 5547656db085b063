package inventory

import (
	"time"

	"hotel-booking-core/internal/domain/room"
	"hotel-booking-core/internal/domain/stay"
)

type UnavailableReason string

const (
	ReasonStopSell          UnavailableReason = "stop_sell"
	ReasonSoldOut           UnavailableReason = "sold_out"
	ReasonInsufficientStock UnavailableReason = "insufficient_stock"
)

type UnavailableDate struct {
	Date   time.Time
	Reason UnavailableReason
	// Stock is the remaining count for insufficient_stock nights.
	Stock int
}

type AvailabilityResult struct {
	Available        bool
	BlockingReason   UnavailableReason
	UnavailableDates []UnavailableDate
}

// CheckAvailability walks every night of the stay and collects all
// unavailable nights; the first failing night's reason becomes the primary
// blocking reason. A night with no inventory row falls back to the room's
// total_rooms ceiling (note: pricing treats the same missing row as rate 0).
func CheckAvailability(rm *room.Room, days map[string]*Day, rng stay.Range, numRooms int) AvailabilityResult {
	var unavailable []UnavailableDate

	for _, date := range rng.Dates() {
		day, ok := days[stay.DateKey(date)]
		if !ok {
			if rm.TotalRooms() < numRooms {
				unavailable = append(unavailable, UnavailableDate{
					Date:   date,
					Reason: ReasonInsufficientStock,
					Stock:  rm.TotalRooms(),
				})
			}
			continue
		}

		switch {
		case day.Status == StatusStopSell:
			unavailable = append(unavailable, UnavailableDate{Date: date, Reason: ReasonStopSell})
		case day.Status == StatusSoldOut:
			unavailable = append(unavailable, UnavailableDate{Date: date, Reason: ReasonSoldOut})
		case day.Stock < numRooms:
			unavailable = append(unavailable, UnavailableDate{
				Date:   date,
				Reason: ReasonInsufficientStock,
				Stock:  day.Stock,
			})
		}
	}

	if len(unavailable) == 0 {
		return AvailabilityResult{Available: true}
	}
	return AvailabilityResult{
		Available:        false,
		BlockingReason:   unavailable[0].Reason,
		UnavailableDates: unavailable,
	}
}
