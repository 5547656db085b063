package stay

import (
	"errors"
	"time"
)

var (
	ErrInvalidDates = errors.New("invalid dates")
	ErrInvalidParty = errors.New("invalid party composition")
)

// Accepted textual date formats: ISO and day-month-year.
var dateLayouts = []string{"2006-01-02", "02-01-2006"}

const DateKeyLayout = "2006-01-02"

// ParseDate accepts either layout and normalizes to UTC midnight.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, ErrInvalidDates
}

func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// Range is a half-open [check-in, check-out) stay. The check-out date is
// never priced or reserved.
type Range struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewRange(checkIn, checkOut time.Time) (Range, error) {
	if checkIn.IsZero() || checkOut.IsZero() || !checkOut.After(checkIn) {
		return Range{}, ErrInvalidDates
	}
	return Range{checkIn: checkIn, checkOut: checkOut}, nil
}

func ParseRange(checkIn, checkOut string) (Range, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return Range{}, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return Range{}, err
	}
	return NewRange(in, out)
}

func (r Range) CheckIn() time.Time { return r.checkIn }
func (r Range) CheckOut() time.Time { return r.checkOut }

func (r Range) Nights() int {
	return int(r.checkOut.Sub(r.checkIn).Hours() / 24)
}

// Dates returns every night of the stay, check-out excluded.
func (r Range) Dates() []time.Time {
	dates := make([]time.Time, 0, r.Nights())
	for d := r.checkIn; d.Before(r.checkOut); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// Guests is the party composition of a stay.
type Guests struct {
	Rooms        int
	Adults       int
	Children     int
	ChildrenAges []int
}

func NewGuests(rooms, adults, children int, ages []int) (Guests, error) {
	if rooms < 1 || adults < 1 || children < 0 {
		return Guests{}, ErrInvalidParty
	}
	if len(ages) != children {
		return Guests{}, ErrInvalidParty
	}
	return Guests{Rooms: rooms, Adults: adults, Children: children, ChildrenAges: ages}, nil
}

func (g Guests) Total() int {
	return g.Adults + g.Children
}
