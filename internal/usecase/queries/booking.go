package queries

import (
	"context"
	"strings"
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/pricing"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

// BookingView is the full read model, including the immutable pricing
// snapshot captured at creation.
type BookingView struct {
	ID               uuid.UUID      `json:"id"`
	Code             string         `json:"code"`
	Hash             string         `json:"hash"`
	HotelID          uuid.UUID      `json:"hotel_id"`
	HotelName        string         `json:"hotel_name"`
	RoomID           uuid.UUID      `json:"room_id"`
	RoomName         string         `json:"room_name"`
	CheckIn          string         `json:"check_in"`
	CheckOut         string         `json:"check_out"`
	NumRooms         int            `json:"num_rooms"`
	NumAdults        int            `json:"num_adults"`
	NumChildren      int            `json:"num_children"`
	ChildrenAges     []int          `json:"children_ages"`
	PriceType        string         `json:"price_type"`
	CustomerName     string         `json:"customer_name"`
	CustomerPhone    string         `json:"customer_phone"`
	CustomerEmail    string         `json:"customer_email,omitempty"`
	PriceSnapshot    *pricing.Quote `json:"price_snapshot"`
	BaseAmount       int64          `json:"base_amount"`
	SurchargesAmount int64          `json:"surcharges_amount"`
	DiscountAmount   int64          `json:"discount_amount"`
	CouponCode       string         `json:"coupon_code,omitempty"`
	TotalAmount      int64          `json:"total_amount"`
	Status           string         `json:"status"`
	PaymentStatus    string         `json:"payment_status"`
	PaymentMethod    string         `json:"payment_method,omitempty"`
	AdminNote        string         `json:"admin_note,omitempty"`
	RoomCode         string         `json:"room_code,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

type BookingListItem struct {
	ID            uuid.UUID `json:"id"`
	Code          string    `json:"code"`
	HotelID       uuid.UUID `json:"hotel_id"`
	RoomName      string    `json:"room_name"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	CheckIn       string    `json:"check_in"`
	CheckOut      string    `json:"check_out"`
	NumRooms      int       `json:"num_rooms"`
	TotalAmount   int64     `json:"total_amount"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
}

type BookingListFilter struct {
	Status   *booking.Status
	HotelID  *uuid.UUID
	From     *time.Time
	To       *time.Time
	Search   string // matches code, customer name or phone
	Page     int
	PerPage  int
	SortDesc bool
}

type BookingList struct {
	Items      []*BookingListItem `json:"items"`
	Total      int64              `json:"total"`
	TotalPages int                `json:"total_pages"`
}

type BookingViewRepo interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindViewByHash(ctx context.Context, hash string) (*BookingView, error)
	FindViewByCode(ctx context.Context, code string) (*BookingView, error)
	ListViews(ctx context.Context, filter BookingListFilter) ([]*BookingListItem, int64, error)
}

type BookingQueries interface {
	// GetByRef resolves id, hash or code, the three external references a
	// collaborator may hold.
	GetByRef(ctx context.Context, ref string) (*BookingView, error)
	List(ctx context.Context, filter BookingListFilter) (*BookingList, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

const defaultPerPage = 20

func (q *bookingQueriesImpl) GetByRef(ctx context.Context, ref string) (*BookingView, error) {
	var view *BookingView
	var err error

	switch {
	case strings.HasPrefix(ref, "BK-"):
		view, err = q.repo.FindViewByCode(ctx, ref)
	case isHashRef(ref):
		view, err = q.repo.FindViewByHash(ctx, ref)
	default:
		id, parseErr := uuid.Parse(ref)
		if parseErr != nil {
			return nil, ErrBookingNotFound
		}
		view, err = q.repo.FindViewByID(ctx, id)
	}

	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

// isHashRef matches the 32-char lowercase hex lookup token. uuid.Parse also
// accepts dashless hex, so this check must run before the id branch.
func isHashRef(ref string) bool {
	if len(ref) != 32 {
		return false
	}
	for _, c := range ref {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		default:
			return false
		}
	}
	return true
}

func (q *bookingQueriesImpl) List(ctx context.Context, filter BookingListFilter) (*BookingList, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 {
		filter.PerPage = defaultPerPage
	}

	items, total, err := q.repo.ListViews(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filter.PerPage) - 1) / int64(filter.PerPage))
	return &BookingList{
		Items:      items,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}
