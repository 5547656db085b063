package pricing

import (
	"sort"

	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/room"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/domain/surcharge"
)

type PriceType string

const (
	PriceTypeRoom  PriceType = "room"
	PriceTypeCombo PriceType = "combo"
)

func (p PriceType) IsValid() bool {
	return p == PriceTypeRoom || p == PriceTypeCombo
}

type NightPrice struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	Amount  int64  `json:"amount"`
}

type SurchargeLine struct {
	Type       string `json:"type"`
	Label      string `json:"label,omitempty"`
	Quantity   int    `json:"quantity"`
	UnitAmount int64  `json:"unit_amount"`
	PerNight   bool   `json:"per_night"`
	Amount     int64  `json:"amount"`
}

// Quote is the full pricing breakdown for a stay. Nights doubles as the
// per-night pricing snapshot callers persist as an immutable audit record.
type Quote struct {
	PriceType       PriceType       `json:"price_type"`
	Nights          []NightPrice    `json:"nights"`
	NightlyTotal    int64           `json:"nightly_total"`
	RoomsTotal      int64           `json:"rooms_total"`
	Surcharges      []SurchargeLine `json:"surcharges"`
	SurchargesTotal int64           `json:"surcharges_total"`
	GrandTotal      int64           `json:"grand_total"`
}

// Engine computes stay totals from inventory rates and surcharge rules.
// Pure: same inputs always produce the same quote, nothing is mutated.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Calculate prices every night of [check-in, check-out) and adds occupancy
// surcharges. A night without an inventory row (or without a positive rate
// on the requested track) contributes 0 rather than guessing a base price:
// undefined nights must never be sellable at an invented rate.
func (e *Engine) Calculate(
	rm *room.Room,
	days map[string]*inventory.Day,
	rules []*surcharge.Rule,
	rng stay.Range,
	guests stay.Guests,
	priceType PriceType,
) *Quote {
	nights := make([]NightPrice, 0, rng.Nights())
	var nightlyTotal int64

	for _, date := range rng.Dates() {
		amount := nightlyRate(days[stay.DateKey(date)], priceType)
		nights = append(nights, NightPrice{
			Date:    stay.DateKey(date),
			Weekday: date.Weekday().String(),
			Amount:  amount,
		})
		nightlyTotal += amount
	}

	roomsTotal := nightlyTotal * int64(guests.Rooms)
	lines := e.calculateSurcharges(rm, rules, rng, guests, priceType)

	var surchargesTotal int64
	for _, line := range lines {
		surchargesTotal += line.Amount
	}

	return &Quote{
		PriceType:       priceType,
		Nights:          nights,
		NightlyTotal:    nightlyTotal,
		RoomsTotal:      roomsTotal,
		Surcharges:      lines,
		SurchargesTotal: surchargesTotal,
		GrandTotal:      roomsTotal + surchargesTotal,
	}
}

func nightlyRate(day *inventory.Day, priceType PriceType) int64 {
	if day == nil {
		return 0
	}
	if priceType == PriceTypeCombo && day.PriceCombo != nil && *day.PriceCombo > 0 {
		return *day.PriceCombo
	}
	if day.PriceRoom != nil && *day.PriceRoom > 0 {
		return *day.PriceRoom
	}
	return 0
}

func (e *Engine) calculateSurcharges(
	rm *room.Room,
	rules []*surcharge.Rule,
	rng stay.Range,
	guests stay.Guests,
	priceType PriceType,
) []SurchargeLine {
	active := make([]*surcharge.Rule, 0, len(rules))
	for _, r := range rules {
		if r.Active && appliesTo(r, priceType) {
			active = append(active, r)
		}
	}
	sort.SliceStable(active, func(i, j int) bool { return active[i].SortOrder < active[j].SortOrder })

	extraAdults := guests.Adults - rm.BaseOccupancy()*guests.Rooms
	if extraAdults < 0 {
		extraAdults = 0
	}
	chargeableAges := chargeableChildren(guests, rm.MaxChildren())
	nights := rng.Nights()

	var lines []SurchargeLine
	for _, r := range active {
		var qty int
		switch r.Type {
		case surcharge.TypeExtraBed, surcharge.TypeAdult:
			qty = extraAdults
		case surcharge.TypeChild:
			for _, age := range chargeableAges {
				if r.MatchesAge(age) {
					qty++
				}
			}
		case surcharge.TypeBreakfast:
			if r.Mandatory || priceType == PriceTypeCombo {
				qty = guests.Total()
			}
		case surcharge.TypeOther:
			if r.Mandatory {
				qty = guests.Rooms
			}
		}

		amount := r.Amount * int64(qty)
		if r.PerNight {
			amount *= int64(nights)
		}
		if amount == 0 {
			continue
		}
		lines = append(lines, SurchargeLine{
			Type:       string(r.Type),
			Label:      r.Label,
			Quantity:   qty,
			UnitAmount: r.Amount,
			PerNight:   r.PerNight,
			Amount:     amount,
		})
	}
	return lines
}

func appliesTo(r *surcharge.Rule, priceType PriceType) bool {
	if priceType == PriceTypeCombo {
		return r.AppliesCombo
	}
	return r.AppliesRoom
}

// chargeableChildren applies the free-child allowance. The allowance is
// max_children per booked room, exempting the OLDEST children first (age-band
// rules typically charge more for older children, so the costliest are freed
// and the youngest remain chargeable).
func chargeableChildren(guests stay.Guests, maxChildrenPerRoom int) []int {
	freeSlots := maxChildrenPerRoom * guests.Rooms
	if freeSlots >= len(guests.ChildrenAges) {
		return nil
	}

	ages := make([]int, len(guests.ChildrenAges))
	copy(ages, guests.ChildrenAges)
	sort.Sort(sort.Reverse(sort.IntSlice(ages)))

	return ages[freeSlots:]
}
