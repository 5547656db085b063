//go:build unit

package stay_test

import (
	"testing"
	"time"

	"hotel-booking-core/internal/domain/stay"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("accepts ISO layout", func(t *testing.T) {
		d, err := stay.ParseDate("2026-09-15")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("accepts day-month-year layout", func(t *testing.T) {
		d, err := stay.ParseDate("15-09-2026")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := stay.ParseDate("september 15")
		assert.ErrorIs(t, err, stay.ErrInvalidDates)
	})

	t.Run("both layouts normalize to the same date key", func(t *testing.T) {
		iso, err := stay.ParseDate("2026-01-02")
		require.NoError(t, err)
		dmy, err := stay.ParseDate("02-01-2026")
		require.NoError(t, err)
		assert.Equal(t, stay.DateKey(iso), stay.DateKey(dmy))
	})
}

func TestParseRange(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		rng, err := stay.ParseRange("2026-09-15", "2026-09-18")
		require.NoError(t, err)
		assert.Equal(t, 3, rng.Nights())
	})

	t.Run("check-out equal to check-in is rejected", func(t *testing.T) {
		_, err := stay.ParseRange("2026-09-15", "2026-09-15")
		assert.ErrorIs(t, err, stay.ErrInvalidDates)
	})

	t.Run("check-out before check-in is rejected", func(t *testing.T) {
		_, err := stay.ParseRange("2026-09-18", "2026-09-15")
		assert.ErrorIs(t, err, stay.ErrInvalidDates)
	})

	t.Run("dates exclude the check-out night", func(t *testing.T) {
		rng, err := stay.ParseRange("2026-09-15", "2026-09-18")
		require.NoError(t, err)

		dates := rng.Dates()
		require.Len(t, dates, 3)
		assert.Equal(t, "2026-09-15", stay.DateKey(dates[0]))
		assert.Equal(t, "2026-09-17", stay.DateKey(dates[2]))
	})
}

func TestNewGuests(t *testing.T) {
	t.Run("valid party", func(t *testing.T) {
		g, err := stay.NewGuests(2, 3, 2, []int{5, 12})
		require.NoError(t, err)
		assert.Equal(t, 5, g.Total())
	})

	t.Run("requires at least one room and one adult", func(t *testing.T) {
		_, err := stay.NewGuests(0, 2, 0, nil)
		assert.ErrorIs(t, err, stay.ErrInvalidParty)

		_, err = stay.NewGuests(1, 0, 0, nil)
		assert.ErrorIs(t, err, stay.ErrInvalidParty)
	})

	t.Run("children ages must match the child count", func(t *testing.T) {
		_, err := stay.NewGuests(1, 2, 2, []int{5})
		assert.ErrorIs(t, err, stay.ErrInvalidParty)
	})
}
