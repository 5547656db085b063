//go:build unit

package booking_test

import (
	"regexp"
	"testing"
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/pricing"
	"hotel-booking-core/internal/domain/stay"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func newQuote(roomsTotal, surchargesTotal int64) *pricing.Quote {
	return &pricing.Quote{
		PriceType:       pricing.PriceTypeRoom,
		RoomsTotal:      roomsTotal,
		SurchargesTotal: surchargesTotal,
		GrandTotal:      roomsTotal + surchargesTotal,
	}
}

func newBooking(t *testing.T, quote *pricing.Quote, discount int64) *booking.Booking {
	t.Helper()
	rng, err := stay.ParseRange("2026-09-15", "2026-09-17")
	require.NoError(t, err)
	guests, err := stay.NewGuests(1, 2, 0, nil)
	require.NoError(t, err)

	b, err := booking.New(
		booking.NewCode(testNow), booking.NewHash(),
		uuid.New(), uuid.New(),
		rng, guests,
		booking.Customer{Name: "Taro Yamada", Phone: "09012345678"},
		quote, discount, "",
		nil, nil,
		booking.Audit{ClientIP: "203.0.113.9"},
		testNow,
	)
	require.NoError(t, err)
	return b
}

func TestNewBooking(t *testing.T) {
	t.Run("starts in pending_payment unpaid", func(t *testing.T) {
		b := newBooking(t, newQuote(30000, 4500), 0)

		assert.Equal(t, booking.StatusPendingPayment, b.Status())
		assert.Equal(t, booking.PaymentUnpaid, b.PaymentStatus())
		assert.Equal(t, int64(30000), b.BaseAmount())
		assert.Equal(t, int64(34500), b.TotalAmount())
	})

	t.Run("discount reduces the total", func(t *testing.T) {
		b := newBooking(t, newQuote(30000, 0), 5000)

		assert.Equal(t, int64(5000), b.DiscountAmount())
		assert.Equal(t, int64(25000), b.TotalAmount())
	})

	t.Run("total is floored at zero", func(t *testing.T) {
		b := newBooking(t, newQuote(10000, 0), 99999)

		assert.Equal(t, int64(0), b.TotalAmount())
	})

	t.Run("negative discount is ignored", func(t *testing.T) {
		b := newBooking(t, newQuote(10000, 0), -500)

		assert.Equal(t, int64(0), b.DiscountAmount())
		assert.Equal(t, int64(10000), b.TotalAmount())
	})

	t.Run("rejects a non-positive base amount", func(t *testing.T) {
		rng, err := stay.ParseRange("2026-09-15", "2026-09-17")
		require.NoError(t, err)
		guests, err := stay.NewGuests(1, 2, 0, nil)
		require.NoError(t, err)

		_, err = booking.New(
			"BK-20260901-AAAA", booking.NewHash(),
			uuid.New(), uuid.New(),
			rng, guests,
			booking.Customer{Name: "Taro Yamada", Phone: "09012345678"},
			newQuote(0, 3000), 0, "", nil, nil, booking.Audit{}, testNow,
		)
		assert.ErrorIs(t, err, booking.ErrInvalidBaseAmount)
	})
}

func TestApplyUpdate(t *testing.T) {
	t.Run("empty update is rejected", func(t *testing.T) {
		b := newBooking(t, newQuote(10000, 0), 0)

		err := b.ApplyUpdate(booking.UpdateFields{}, false, testNow)
		assert.ErrorIs(t, err, booking.ErrNoData)
	})

	t.Run("updates allow-listed fields", func(t *testing.T) {
		b := newBooking(t, newQuote(10000, 0), 0)
		status := booking.StatusConfirmed
		note := "late arrival expected"
		code := "4217"
		later := testNow.Add(time.Hour)

		err := b.ApplyUpdate(booking.UpdateFields{
			Status:    &status,
			AdminNote: &note,
			RoomCode:  &code,
		}, false, later)

		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, "late arrival expected", b.AdminNote())
		assert.Equal(t, "4217", b.RoomCode())
		assert.Equal(t, later, b.UpdatedAt())
	})

	t.Run("rejects unknown status values", func(t *testing.T) {
		b := newBooking(t, newQuote(10000, 0), 0)
		bad := booking.Status("shipped")

		err := b.ApplyUpdate(booking.UpdateFields{Status: &bad}, false, testNow)
		assert.ErrorIs(t, err, booking.ErrInvalidStatus)
	})

	t.Run("permissive mode allows any valid jump", func(t *testing.T) {
		b := newBooking(t, newQuote(10000, 0), 0)
		status := booking.StatusCompleted

		err := b.ApplyUpdate(booking.UpdateFields{Status: &status}, false, testNow)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCompleted, b.Status())
	})

	t.Run("strict mode enforces the lifecycle", func(t *testing.T) {
		b := newBooking(t, newQuote(10000, 0), 0)
		status := booking.StatusCompleted

		err := b.ApplyUpdate(booking.UpdateFields{Status: &status}, true, testNow)
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)

		next := booking.StatusProcessing
		require.NoError(t, b.ApplyUpdate(booking.UpdateFields{Status: &next}, true, testNow))
		assert.Equal(t, booking.StatusProcessing, b.Status())
	})

	t.Run("phone change is revalidated", func(t *testing.T) {
		b := newBooking(t, newQuote(10000, 0), 0)
		bad := "not-a-phone"

		err := b.ApplyUpdate(booking.UpdateFields{CustomerPhone: &bad}, false, testNow)
		assert.ErrorIs(t, err, booking.ErrInvalidPhone)
		assert.Equal(t, "09012345678", b.Customer().Phone)

		good := "08011112222"
		require.NoError(t, b.ApplyUpdate(booking.UpdateFields{CustomerPhone: &good}, false, testNow))
		assert.Equal(t, good, b.Customer().Phone)
	})
}

func TestMarkPaid(t *testing.T) {
	t.Run("takes the pending_payment edge", func(t *testing.T) {
		b := newBooking(t, newQuote(10000, 0), 0)

		b.MarkPaid(testNow)

		assert.Equal(t, booking.PaymentPaid, b.PaymentStatus())
		assert.Equal(t, booking.StatusProcessing, b.Status())
	})

	t.Run("leaves later statuses untouched", func(t *testing.T) {
		b := newBooking(t, newQuote(10000, 0), 0)
		status := booking.StatusConfirmed
		require.NoError(t, b.ApplyUpdate(booking.UpdateFields{Status: &status}, false, testNow))

		b.MarkPaid(testNow)

		assert.Equal(t, booking.PaymentPaid, b.PaymentStatus())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from booking.Status
		to   booking.Status
		want bool
	}{
		{booking.StatusPendingPayment, booking.StatusProcessing, true},
		{booking.StatusProcessing, booking.StatusConfirmed, true},
		{booking.StatusConfirmed, booking.StatusCompleted, true},
		{booking.StatusPendingPayment, booking.StatusConfirmed, false},
		{booking.StatusPendingPayment, booking.StatusCancelled, true},
		{booking.StatusConfirmed, booking.StatusNoShow, true},
		{booking.StatusCancelled, booking.StatusProcessing, false},
		{booking.StatusNoShow, booking.StatusCancelled, false},
		{booking.StatusProcessing, booking.StatusProcessing, true},
	}

	for _, tc := range cases {
		t.Run(string(tc.from)+"_to_"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.want, booking.CanTransition(tc.from, tc.to))
		})
	}
}

func TestValidatePhone(t *testing.T) {
	assert.NoError(t, booking.ValidatePhone("09012345678"))
	assert.NoError(t, booking.ValidatePhone("0312345678"))
	assert.ErrorIs(t, booking.ValidatePhone("090-1234-5678"), booking.ErrInvalidPhone)
	assert.ErrorIs(t, booking.ValidatePhone("123"), booking.ErrInvalidPhone)
	assert.ErrorIs(t, booking.ValidatePhone(""), booking.ErrInvalidPhone)
}

func TestNewCode(t *testing.T) {
	pattern := regexp.MustCompile(`^BK-20260901-[0-9A-F]{4}$`)

	code := booking.NewCode(testNow)
	assert.Regexp(t, pattern, code)
}

func TestNewHash(t *testing.T) {
	hash := booking.NewHash()

	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}$`), hash)
	assert.NotEqual(t, hash, booking.NewHash())
}
