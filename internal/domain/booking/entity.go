package booking

import (
	"encoding/json"
	"errors"
	"regexp"
	"time"

	"hotel-booking-core/internal/domain/pricing"
	"hotel-booking-core/internal/domain/stay"

	"github.com/google/uuid"
)

var (
	ErrInvalidPhone      = errors.New("invalid phone number")
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrNoData            = errors.New("no updatable fields supplied")
	ErrInvalidBaseAmount = errors.New("base amount must be positive")
)

var phonePattern = regexp.MustCompile(`^\d{10,11}$`)

func ValidatePhone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return ErrInvalidPhone
	}
	return nil
}

type Customer struct {
	Name  string
	Phone string
	Email string
}

// Audit captures request provenance at creation time.
type Audit struct {
	ClientIP  string
	UserAgent string
}

// Booking is one reservation. Created once, then mutated only through the
// allow-listed ApplyUpdate.
type Booking struct {
	id            uuid.UUID
	code          string
	hash          string
	hotelID       uuid.UUID
	roomID        uuid.UUID
	stayRange     stay.Range
	guests        stay.Guests
	priceType     pricing.PriceType
	customer      Customer
	snapshot      *pricing.Quote
	baseAmount    int64
	surchargesAmt int64
	discountAmt   int64
	couponCode    string
	totalAmount   int64
	status        Status
	paymentStatus PaymentStatus
	paymentMethod string
	adminNote     string
	roomCode      string
	transportMeta json.RawMessage
	invoiceMeta   json.RawMessage
	audit         Audit
	createdAt     time.Time
	updatedAt     time.Time
}

// New assembles a booking from a freshly computed quote. The quote must come
// from the pricing engine, never from caller-supplied figures; the discount
// is the only external amount and the total is floored at 0.
func New(
	code, hash string,
	hotelID, roomID uuid.UUID,
	rng stay.Range,
	guests stay.Guests,
	customer Customer,
	quote *pricing.Quote,
	discount int64,
	couponCode string,
	transportMeta, invoiceMeta json.RawMessage,
	audit Audit,
	now time.Time,
) (*Booking, error) {
	if quote.RoomsTotal <= 0 {
		return nil, ErrInvalidBaseAmount
	}
	if discount < 0 {
		discount = 0
	}
	total := quote.RoomsTotal + quote.SurchargesTotal - discount
	if total < 0 {
		total = 0
	}

	return &Booking{
		id:            uuid.New(),
		code:          code,
		hash:          hash,
		hotelID:       hotelID,
		roomID:        roomID,
		stayRange:     rng,
		guests:        guests,
		priceType:     quote.PriceType,
		customer:      customer,
		snapshot:      quote,
		baseAmount:    quote.RoomsTotal,
		surchargesAmt: quote.SurchargesTotal,
		discountAmt:   discount,
		couponCode:    couponCode,
		totalAmount:   total,
		status:        StatusPendingPayment,
		paymentStatus: PaymentUnpaid,
		transportMeta: transportMeta,
		invoiceMeta:   invoiceMeta,
		audit:         audit,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// UpdateFields is the allow-list for post-creation mutation. Anything not
// representable here is silently out of reach for callers.
type UpdateFields struct {
	Status        *Status
	PaymentStatus *PaymentStatus
	PaymentMethod *string
	CustomerName  *string
	CustomerPhone *string
	CustomerEmail *string
	AdminNote     *string
	RoomCode      *string
}

func (u UpdateFields) IsEmpty() bool {
	return u.Status == nil && u.PaymentStatus == nil && u.PaymentMethod == nil &&
		u.CustomerName == nil && u.CustomerPhone == nil && u.CustomerEmail == nil &&
		u.AdminNote == nil && u.RoomCode == nil
}

// ApplyUpdate mutates the allow-listed fields and stamps updated_at. When
// strict is set, status changes must follow the lifecycle diagram.
func (b *Booking) ApplyUpdate(u UpdateFields, strict bool, now time.Time) error {
	if u.IsEmpty() {
		return ErrNoData
	}
	if u.Status != nil {
		if !u.Status.IsValid() {
			return ErrInvalidStatus
		}
		if strict && !CanTransition(b.status, *u.Status) {
			return ErrInvalidTransition
		}
		b.status = *u.Status
	}
	if u.PaymentStatus != nil {
		if !u.PaymentStatus.IsValid() {
			return ErrInvalidStatus
		}
		b.paymentStatus = *u.PaymentStatus
	}
	if u.PaymentMethod != nil {
		b.paymentMethod = *u.PaymentMethod
	}
	if u.CustomerName != nil {
		b.customer.Name = *u.CustomerName
	}
	if u.CustomerPhone != nil {
		if err := ValidatePhone(*u.CustomerPhone); err != nil {
			return err
		}
		b.customer.Phone = *u.CustomerPhone
	}
	if u.CustomerEmail != nil {
		b.customer.Email = *u.CustomerEmail
	}
	if u.AdminNote != nil {
		b.adminNote = *u.AdminNote
	}
	if u.RoomCode != nil {
		b.roomCode = *u.RoomCode
	}
	b.updatedAt = now
	return nil
}

// MarkPaid is the payment-received convenience: payment goes to paid and the
// booking takes the pending_payment → processing edge. Idempotent for
// bookings already past that edge.
func (b *Booking) MarkPaid(now time.Time) {
	b.paymentStatus = PaymentPaid
	if b.status == StatusPendingPayment {
		b.status = StatusProcessing
	}
	b.updatedAt = now
}

func Reconstruct(
	id uuid.UUID,
	code, hash string,
	hotelID, roomID uuid.UUID,
	rng stay.Range,
	guests stay.Guests,
	priceType pricing.PriceType,
	customer Customer,
	snapshot *pricing.Quote,
	baseAmount, surchargesAmt, discountAmt, totalAmount int64,
	couponCode string,
	status Status,
	paymentStatus PaymentStatus,
	paymentMethod, adminNote, roomCode string,
	transportMeta, invoiceMeta json.RawMessage,
	audit Audit,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		code:          code,
		hash:          hash,
		hotelID:       hotelID,
		roomID:        roomID,
		stayRange:     rng,
		guests:        guests,
		priceType:     priceType,
		customer:      customer,
		snapshot:      snapshot,
		baseAmount:    baseAmount,
		surchargesAmt: surchargesAmt,
		discountAmt:   discountAmt,
		couponCode:    couponCode,
		totalAmount:   totalAmount,
		status:        status,
		paymentStatus: paymentStatus,
		paymentMethod: paymentMethod,
		adminNote:     adminNote,
		roomCode:      roomCode,
		transportMeta: transportMeta,
		invoiceMeta:   invoiceMeta,
		audit:         audit,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID { return b.id }
func (b *Booking) Code() string { return b.code }
func (b *Booking) Hash() string { return b.hash }
func (b *Booking) HotelID() uuid.UUID { return b.hotelID }
func (b *Booking) RoomID() uuid.UUID { return b.roomID }
func (b *Booking) StayRange() stay.Range { return b.stayRange }
func (b *Booking) Guests() stay.Guests { return b.guests }
func (b *Booking) PriceType() pricing.PriceType { return b.priceType }
func (b *Booking) Customer() Customer { return b.customer }
func (b *Booking) Snapshot() *pricing.Quote { return b.snapshot }
func (b *Booking) BaseAmount() int64 { return b.baseAmount }
func (b *Booking) SurchargesAmount() int64 { return b.surchargesAmt }
func (b *Booking) DiscountAmount() int64 { return b.discountAmt }
func (b *Booking) CouponCode() string { return b.couponCode }
func (b *Booking) TotalAmount() int64 { return b.totalAmount }
func (b *Booking) Status() Status { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) PaymentMethod() string { return b.paymentMethod }
func (b *Booking) AdminNote() string { return b.adminNote }
func (b *Booking) RoomCode() string { return b.roomCode }
func (b *Booking) TransportMeta() json.RawMessage { return b.transportMeta }
func (b *Booking) InvoiceMeta() json.RawMessage { return b.invoiceMeta }
func (b *Booking) Audit() Audit { return b.audit }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
