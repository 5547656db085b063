package inventory

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusLimited   Status = "limited"
	StatusSoldOut   Status = "sold_out"
	StatusStopSell  Status = "stop_sell"
)

// limitedThreshold is the remaining-stock level at which a day is flagged
// as running low.
const limitedThreshold = 2

// Day is one per-room, per-calendar-date inventory record: the two nightly
// rate tracks, remaining stock and the sales status.
type Day struct {
	RoomID     uuid.UUID
	Date       time.Time
	PriceRoom  *int64
	PriceCombo *int64
	Stock      int
	Booked     int
	Status     Status
}

// EscalatedStatus recomputes the sales status after a stock change.
// stop_sell is sticky: it is never auto-downgraded by stock movements.
func EscalatedStatus(current Status, stock int) Status {
	if current == StatusStopSell {
		return StatusStopSell
	}
	switch {
	case stock <= 0:
		return StatusSoldOut
	case stock <= limitedThreshold:
		return StatusLimited
	default:
		return StatusAvailable
	}
}

// Sellable reports whether the day can be sold at all, regardless of count.
func (d *Day) Sellable() bool {
	return d.Status != StatusStopSell && d.Status != StatusSoldOut
}
