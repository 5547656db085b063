package repository

import (
	"context"
	"encoding/json"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/pricing"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/infra/db"
	"hotel-booking-core/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

const bookingColumns = `
	id, code, hash, hotel_id, room_id, check_in, check_out,
	num_rooms, num_adults, num_children, children_ages, price_type,
	customer_name, customer_phone, customer_email,
	price_snapshot, base_amount, surcharges_amount, discount_amount,
	coupon_code, total_amount, status, payment_status, payment_method,
	admin_note, room_code, transport_meta, invoice_meta,
	client_ip, user_agent, created_at, updated_at`

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	const query = `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		        $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28,
		        $29, $30, $31, $32)`

	agesJSON, err := json.Marshal(b.Guests().ChildrenAges)
	if err != nil {
		return infra.WrapRepoErr("failed to encode children ages", err)
	}
	snapshotJSON, err := json.Marshal(b.Snapshot())
	if err != nil {
		return infra.WrapRepoErr("failed to encode price snapshot", err)
	}

	_, err = tx.Exec(ctx, query,
		b.ID(), b.Code(), b.Hash(), b.HotelID(), b.RoomID(),
		pgconv.DateToPgtype(b.StayRange().CheckIn()), pgconv.DateToPgtype(b.StayRange().CheckOut()),
		b.Guests().Rooms, b.Guests().Adults, b.Guests().Children, agesJSON, string(b.PriceType()),
		b.Customer().Name, b.Customer().Phone, b.Customer().Email,
		snapshotJSON, b.BaseAmount(), b.SurchargesAmount(), b.DiscountAmount(),
		b.CouponCode(), b.TotalAmount(), b.Status().String(), b.PaymentStatus().String(), b.PaymentMethod(),
		b.AdminNote(), b.RoomCode(), []byte(b.TransportMeta()), []byte(b.InvoiceMeta()),
		b.Audit().ClientIP, b.Audit().UserAgent,
		pgconv.TimeToPgtype(b.CreatedAt()), pgconv.TimeToPgtype(b.UpdatedAt()),
	)
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return infra.WrapRepoErr("booking code or hash already exists", err, infra.KindDuplicateKey)
		}
		if infra.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("unknown hotel or room reference", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to insert booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.findBy(ctx, "id = $1", id)
}

func (r *BookingRepository) FindByHash(ctx context.Context, hash string) (*booking.Booking, error) {
	return r.findBy(ctx, "hash = $1", hash)
}

func (r *BookingRepository) FindByCode(ctx context.Context, code string) (*booking.Booking, error) {
	return r.findBy(ctx, "code = $1", code)
}

func (r *BookingRepository) findBy(ctx context.Context, where string, arg any) (*booking.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE ` + where

	b, err := scanBooking(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return b, nil
}

// Update persists the mutable (allow-listed) columns only; pricing snapshot
// and stay parameters are immutable after creation.
func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	const query = `
		UPDATE bookings
		SET customer_name = $2, customer_phone = $3, customer_email = $4,
		    status = $5, payment_status = $6, payment_method = $7,
		    admin_note = $8, room_code = $9, updated_at = $10
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		b.ID(), b.Customer().Name, b.Customer().Phone, b.Customer().Email,
		b.Status().String(), b.PaymentStatus().String(), b.PaymentMethod(),
		b.AdminNote(), b.RoomCode(), pgconv.TimeToPgtype(b.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete removes the booking row. Reserved stock is NOT restored; that
// recovery is the operator's responsibility.
func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanBooking(row rowScanner) (*booking.Booking, error) {
	var (
		id, hotelID, roomID        uuid.UUID
		code, hash                 string
		checkIn, checkOut          pgtype.Date
		numRooms, numAdults        int
		numChildren                int
		agesJSON                   []byte
		priceType                  string
		custName, custPhone        string
		custEmail                  string
		snapshotJSON               []byte
		baseAmt, surchAmt          int64
		discountAmt, totalAmt      int64
		couponCode                 string
		status, payStatus          string
		payMethod, adminNote       string
		roomCode                   string
		transportMeta, invoiceMeta []byte
		clientIP, userAgent        string
		createdAt, updatedAt       pgtype.Timestamptz
	)

	err := row.Scan(
		&id, &code, &hash, &hotelID, &roomID, &checkIn, &checkOut,
		&numRooms, &numAdults, &numChildren, &agesJSON, &priceType,
		&custName, &custPhone, &custEmail,
		&snapshotJSON, &baseAmt, &surchAmt, &discountAmt,
		&couponCode, &totalAmt, &status, &payStatus, &payMethod,
		&adminNote, &roomCode, &transportMeta, &invoiceMeta,
		&clientIP, &userAgent, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rng, err := stay.NewRange(pgconv.DateFromPgtype(checkIn), pgconv.DateFromPgtype(checkOut))
	if err != nil {
		return nil, err
	}
	var ages []int
	if len(agesJSON) > 0 {
		if err := json.Unmarshal(agesJSON, &ages); err != nil {
			return nil, err
		}
	}
	guests, err := stay.NewGuests(numRooms, numAdults, numChildren, ages)
	if err != nil {
		return nil, err
	}
	var snapshot pricing.Quote
	if len(snapshotJSON) > 0 {
		if err := json.Unmarshal(snapshotJSON, &snapshot); err != nil {
			return nil, err
		}
	}

	return booking.Reconstruct(
		id, code, hash, hotelID, roomID, rng, guests,
		pricing.PriceType(priceType),
		booking.Customer{Name: custName, Phone: custPhone, Email: custEmail},
		&snapshot,
		baseAmt, surchAmt, discountAmt, totalAmt,
		couponCode,
		booking.Status(status), booking.PaymentStatus(payStatus),
		payMethod, adminNote, roomCode,
		transportMeta, invoiceMeta,
		booking.Audit{ClientIP: clientIP, UserAgent: userAgent},
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}
