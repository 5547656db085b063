package readstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"hotel-booking-core/internal/domain/pricing"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/infra/db"
	"hotel-booking-core/internal/pkg/pgconv"
	"hotel-booking-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// BookingReadStore serves the query side: denormalized views joined with
// room and hotel names, separate from the write-side aggregate repository.
type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const viewColumns = `
	b.id, b.code, b.hash, b.hotel_id, h.name, b.room_id, r.name,
	b.check_in, b.check_out, b.num_rooms, b.num_adults, b.num_children,
	b.children_ages, b.price_type, b.customer_name, b.customer_phone,
	b.customer_email, b.price_snapshot, b.base_amount, b.surcharges_amount,
	b.discount_amount, b.coupon_code, b.total_amount, b.status,
	b.payment_status, b.payment_method, b.admin_note, b.room_code,
	b.created_at, b.updated_at`

const viewFrom = `
	FROM bookings b
	JOIN rooms r ON r.id = b.room_id
	JOIN hotels h ON h.id = b.hotel_id`

func (s *BookingReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	return s.findViewBy(ctx, "b.id = $1", id)
}

func (s *BookingReadStore) FindViewByHash(ctx context.Context, hash string) (*queries.BookingView, error) {
	return s.findViewBy(ctx, "b.hash = $1", hash)
}

func (s *BookingReadStore) FindViewByCode(ctx context.Context, code string) (*queries.BookingView, error) {
	return s.findViewBy(ctx, "b.code = $1", code)
}

func (s *BookingReadStore) findViewBy(ctx context.Context, where string, arg any) (*queries.BookingView, error) {
	query := `SELECT ` + viewColumns + viewFrom + ` WHERE ` + where

	var (
		view              queries.BookingView
		checkIn, checkOut pgtype.Date
		agesJSON          []byte
		snapshotJSON      []byte
		createdAt         pgtype.Timestamptz
		updatedAt         pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, query, arg).Scan(
		&view.ID, &view.Code, &view.Hash, &view.HotelID, &view.HotelName,
		&view.RoomID, &view.RoomName,
		&checkIn, &checkOut, &view.NumRooms, &view.NumAdults, &view.NumChildren,
		&agesJSON, &view.PriceType, &view.CustomerName, &view.CustomerPhone,
		&view.CustomerEmail, &snapshotJSON, &view.BaseAmount, &view.SurchargesAmount,
		&view.DiscountAmount, &view.CouponCode, &view.TotalAmount, &view.Status,
		&view.PaymentStatus, &view.PaymentMethod, &view.AdminNote, &view.RoomCode,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking view", err)
	}

	view.CheckIn = stay.DateKey(pgconv.DateFromPgtype(checkIn))
	view.CheckOut = stay.DateKey(pgconv.DateFromPgtype(checkOut))
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	if len(agesJSON) > 0 {
		if err := json.Unmarshal(agesJSON, &view.ChildrenAges); err != nil {
			return nil, infra.WrapRepoErr("failed to decode children ages", err)
		}
	}
	if len(snapshotJSON) > 0 {
		var snapshot pricing.Quote
		if err := json.Unmarshal(snapshotJSON, &snapshot); err != nil {
			return nil, infra.WrapRepoErr("failed to decode price snapshot", err)
		}
		view.PriceSnapshot = &snapshot
	}
	return &view, nil
}

func (s *BookingReadStore) ListViews(ctx context.Context, filter queries.BookingListFilter) ([]*queries.BookingListItem, int64, error) {
	conditions := []string{"TRUE"}
	args := []any{}

	addArg := func(cond string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if filter.Status != nil {
		addArg("b.status = $%d", filter.Status.String())
	}
	if filter.HotelID != nil {
		addArg("b.hotel_id = $%d", *filter.HotelID)
	}
	if filter.From != nil {
		addArg("b.check_in >= $%d", pgconv.DateToPgtype(*filter.From))
	}
	if filter.To != nil {
		addArg("b.check_in <= $%d", pgconv.DateToPgtype(*filter.To))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(b.code ILIKE $%d OR b.customer_name ILIKE $%d OR b.customer_phone ILIKE $%d)", n, n, n))
	}

	where := " WHERE " + strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT count(*)` + viewFrom + where
	if err := s.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count bookings", err)
	}

	order := " ORDER BY b.created_at"
	if filter.SortDesc {
		order += " DESC"
	}
	args = append(args, filter.PerPage, (filter.Page-1)*filter.PerPage)
	page := fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	listQuery := `
		SELECT b.id, b.code, b.hotel_id, r.name, b.customer_name, b.customer_phone,
		       b.check_in, b.check_out, b.num_rooms, b.total_amount,
		       b.status, b.payment_status, b.created_at` +
		viewFrom + where + order + page

	rows, err := s.db.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var (
			item              queries.BookingListItem
			checkIn, checkOut pgtype.Date
			createdAt         pgtype.Timestamptz
		)
		if err := rows.Scan(
			&item.ID, &item.Code, &item.HotelID, &item.RoomName,
			&item.CustomerName, &item.CustomerPhone,
			&checkIn, &checkOut, &item.NumRooms, &item.TotalAmount,
			&item.Status, &item.PaymentStatus, &createdAt,
		); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan booking row", err)
		}
		item.CheckIn = stay.DateKey(pgconv.DateFromPgtype(checkIn))
		item.CheckOut = stay.DateKey(pgconv.DateFromPgtype(checkOut))
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return items, total, nil
}
