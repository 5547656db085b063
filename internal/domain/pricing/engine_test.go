//go:build unit

package pricing_test

import (
	"testing"

	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/pricing"
	"hotel-booking-core/internal/domain/room"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/domain/surcharge"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoom(t *testing.T, baseOccupancy, maxChildren, totalRooms int) *room.Room {
	t.Helper()
	rm, err := room.NewRoom(uuid.New(), uuid.New(), "Standard Twin", baseOccupancy, maxChildren, totalRooms, true)
	require.NoError(t, err)
	return rm
}

func mustRange(t *testing.T, checkIn, checkOut string) stay.Range {
	t.Helper()
	rng, err := stay.ParseRange(checkIn, checkOut)
	require.NoError(t, err)
	return rng
}

func mustGuests(t *testing.T, rooms, adults, children int, ages []int) stay.Guests {
	t.Helper()
	g, err := stay.NewGuests(rooms, adults, children, ages)
	require.NoError(t, err)
	return g
}

func ptr(v int64) *int64 { return &v }

func dayWith(roomPrice, comboPrice *int64) *inventory.Day {
	return &inventory.Day{
		PriceRoom:  roomPrice,
		PriceCombo: comboPrice,
		Stock:      5,
		Status:     inventory.StatusAvailable,
	}
}

func TestEngineNightlyPricing(t *testing.T) {
	engine := pricing.NewEngine()
	rm := newTestRoom(t, 2, 1, 10)
	rng := mustRange(t, "2026-09-15", "2026-09-18")
	guests := mustGuests(t, 1, 2, 0, nil)

	t.Run("sums each night on the room track", func(t *testing.T) {
		days := map[string]*inventory.Day{
			"2026-09-15": dayWith(ptr(10000), nil),
			"2026-09-16": dayWith(ptr(12000), nil),
			"2026-09-17": dayWith(ptr(15000), nil),
		}

		q := engine.Calculate(rm, days, nil, rng, guests, pricing.PriceTypeRoom)

		require.Len(t, q.Nights, 3)
		assert.Equal(t, int64(10000), q.Nights[0].Amount)
		assert.Equal(t, "Tuesday", q.Nights[0].Weekday)
		assert.Equal(t, int64(37000), q.NightlyTotal)
		assert.Equal(t, int64(37000), q.RoomsTotal)
		assert.Equal(t, int64(37000), q.GrandTotal)
	})

	t.Run("missing night contributes zero", func(t *testing.T) {
		days := map[string]*inventory.Day{
			"2026-09-15": dayWith(ptr(10000), nil),
			"2026-09-17": dayWith(ptr(15000), nil),
		}

		q := engine.Calculate(rm, days, nil, rng, guests, pricing.PriceTypeRoom)

		assert.Equal(t, int64(0), q.Nights[1].Amount)
		assert.Equal(t, int64(25000), q.NightlyTotal)
	})

	t.Run("combo falls back to room rate when combo is unset", func(t *testing.T) {
		days := map[string]*inventory.Day{
			"2026-09-15": dayWith(ptr(10000), ptr(14000)),
			"2026-09-16": dayWith(ptr(12000), nil),
			"2026-09-17": dayWith(ptr(15000), ptr(0)),
		}

		q := engine.Calculate(rm, days, nil, rng, guests, pricing.PriceTypeCombo)

		assert.Equal(t, int64(14000), q.Nights[0].Amount)
		assert.Equal(t, int64(12000), q.Nights[1].Amount)
		assert.Equal(t, int64(15000), q.Nights[2].Amount)
	})

	t.Run("multiplies nightly total by booked rooms", func(t *testing.T) {
		days := map[string]*inventory.Day{
			"2026-09-15": dayWith(ptr(10000), nil),
			"2026-09-16": dayWith(ptr(10000), nil),
			"2026-09-17": dayWith(ptr(10000), nil),
		}
		twoRooms := mustGuests(t, 2, 4, 0, nil)

		q := engine.Calculate(rm, days, nil, rng, twoRooms, pricing.PriceTypeRoom)

		assert.Equal(t, int64(30000), q.NightlyTotal)
		assert.Equal(t, int64(60000), q.RoomsTotal)
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		days := map[string]*inventory.Day{
			"2026-09-15": dayWith(ptr(10000), ptr(13000)),
			"2026-09-16": dayWith(ptr(12000), ptr(15000)),
			"2026-09-17": dayWith(ptr(15000), ptr(18000)),
		}
		rules := []*surcharge.Rule{
			{Type: surcharge.TypeBreakfast, Amount: 1500, PerNight: true, AppliesRoom: true, AppliesCombo: true, Mandatory: true, Active: true},
		}
		party := mustGuests(t, 1, 3, 2, []int{4, 9})

		first := engine.Calculate(rm, days, rules, rng, party, pricing.PriceTypeCombo)
		second := engine.Calculate(rm, days, rules, rng, party, pricing.PriceTypeCombo)

		assert.Equal(t, first, second)
	})
}

func TestEngineSurcharges(t *testing.T) {
	engine := pricing.NewEngine()
	rng := mustRange(t, "2026-09-15", "2026-09-17")
	baseDays := map[string]*inventory.Day{
		"2026-09-15": dayWith(ptr(10000), nil),
		"2026-09-16": dayWith(ptr(10000), nil),
	}

	t.Run("extra adults above base occupancy", func(t *testing.T) {
		rm := newTestRoom(t, 2, 1, 10)
		rules := []*surcharge.Rule{
			{Type: surcharge.TypeAdult, Amount: 3000, PerNight: true, AppliesRoom: true, Active: true},
		}
		// 5 adults in 2 rooms with base occupancy 2 leaves one extra.
		guests := mustGuests(t, 2, 5, 0, nil)

		q := engine.Calculate(rm, baseDays, rules, rng, guests, pricing.PriceTypeRoom)

		require.Len(t, q.Surcharges, 1)
		assert.Equal(t, 1, q.Surcharges[0].Quantity)
		assert.Equal(t, int64(6000), q.Surcharges[0].Amount)
		assert.Equal(t, int64(6000), q.SurchargesTotal)
	})

	t.Run("oldest children are exempted first", func(t *testing.T) {
		rm := newTestRoom(t, 2, 1, 10)
		rules := []*surcharge.Rule{
			{Type: surcharge.TypeChild, MinAge: 0, MaxAge: 6, Amount: 1000, AppliesRoom: true, Active: true, SortOrder: 1},
			{Type: surcharge.TypeChild, MinAge: 7, MaxAge: 17, Amount: 2000, AppliesRoom: true, Active: true, SortOrder: 2},
		}
		// One free slot: the 15-year-old rides free, ages 4 and 9 are charged.
		guests := mustGuests(t, 1, 2, 3, []int{9, 4, 15})

		q := engine.Calculate(rm, baseDays, rules, rng, guests, pricing.PriceTypeRoom)

		require.Len(t, q.Surcharges, 2)
		assert.Equal(t, 1, q.Surcharges[0].Quantity)
		assert.Equal(t, int64(1000), q.Surcharges[0].Amount)
		assert.Equal(t, 1, q.Surcharges[1].Quantity)
		assert.Equal(t, int64(2000), q.Surcharges[1].Amount)
	})

	t.Run("free child allowance scales with rooms", func(t *testing.T) {
		rm := newTestRoom(t, 2, 1, 10)
		rules := []*surcharge.Rule{
			{Type: surcharge.TypeChild, MinAge: 0, MaxAge: 17, Amount: 1000, AppliesRoom: true, Active: true},
		}
		// Two rooms grant two free slots, so all children ride free.
		guests := mustGuests(t, 2, 4, 2, []int{5, 12})

		q := engine.Calculate(rm, baseDays, rules, rng, guests, pricing.PriceTypeRoom)

		assert.Empty(t, q.Surcharges)
		assert.Equal(t, int64(0), q.SurchargesTotal)
	})

	t.Run("breakfast charges every guest when mandatory", func(t *testing.T) {
		rm := newTestRoom(t, 2, 1, 10)
		rules := []*surcharge.Rule{
			{Type: surcharge.TypeBreakfast, Amount: 1500, PerNight: true, AppliesRoom: true, AppliesCombo: true, Mandatory: true, Active: true},
		}
		guests := mustGuests(t, 1, 2, 1, []int{8})

		q := engine.Calculate(rm, baseDays, rules, rng, guests, pricing.PriceTypeRoom)

		require.Len(t, q.Surcharges, 1)
		assert.Equal(t, 3, q.Surcharges[0].Quantity)
		assert.Equal(t, int64(9000), q.Surcharges[0].Amount)
	})

	t.Run("optional breakfast is included on the combo track only", func(t *testing.T) {
		rm := newTestRoom(t, 2, 1, 10)
		rules := []*surcharge.Rule{
			{Type: surcharge.TypeBreakfast, Amount: 1500, AppliesRoom: true, AppliesCombo: true, Active: true},
		}
		guests := mustGuests(t, 1, 2, 0, nil)

		roomQuote := engine.Calculate(rm, baseDays, rules, rng, guests, pricing.PriceTypeRoom)
		comboQuote := engine.Calculate(rm, baseDays, rules, rng, guests, pricing.PriceTypeCombo)

		assert.Empty(t, roomQuote.Surcharges)
		require.Len(t, comboQuote.Surcharges, 1)
		assert.Equal(t, 2, comboQuote.Surcharges[0].Quantity)
	})

	t.Run("other type charges per room only when mandatory", func(t *testing.T) {
		rm := newTestRoom(t, 2, 1, 10)
		rules := []*surcharge.Rule{
			{Type: surcharge.TypeOther, Label: "Resort fee", Amount: 2500, AppliesRoom: true, Mandatory: true, Active: true},
			{Type: surcharge.TypeOther, Label: "Late checkout", Amount: 4000, AppliesRoom: true, Active: true},
		}
		guests := mustGuests(t, 2, 4, 0, nil)

		q := engine.Calculate(rm, baseDays, rules, rng, guests, pricing.PriceTypeRoom)

		require.Len(t, q.Surcharges, 1)
		assert.Equal(t, "Resort fee", q.Surcharges[0].Label)
		assert.Equal(t, 2, q.Surcharges[0].Quantity)
		assert.Equal(t, int64(5000), q.Surcharges[0].Amount)
	})

	t.Run("inactive and non-applicable rules are skipped", func(t *testing.T) {
		rm := newTestRoom(t, 1, 1, 10)
		rules := []*surcharge.Rule{
			{Type: surcharge.TypeAdult, Amount: 3000, AppliesRoom: true, Active: false},
			{Type: surcharge.TypeAdult, Amount: 3000, AppliesCombo: true, Active: true},
		}
		guests := mustGuests(t, 1, 2, 0, nil)

		q := engine.Calculate(rm, baseDays, rules, rng, guests, pricing.PriceTypeRoom)

		assert.Empty(t, q.Surcharges)
	})

	t.Run("zero-amount lines are omitted", func(t *testing.T) {
		rm := newTestRoom(t, 2, 1, 10)
		rules := []*surcharge.Rule{
			{Type: surcharge.TypeAdult, Amount: 3000, AppliesRoom: true, Active: true},
		}
		guests := mustGuests(t, 1, 2, 0, nil)

		q := engine.Calculate(rm, baseDays, rules, rng, guests, pricing.PriceTypeRoom)

		assert.Empty(t, q.Surcharges)
		assert.Equal(t, q.RoomsTotal, q.GrandTotal)
	})
}
