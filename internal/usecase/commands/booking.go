package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/hotel"
	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/pricing"
	"hotel-booking-core/internal/domain/room"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/domain/surcharge"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/infra/db"
	"hotel-booking-core/internal/pkg/clock"
	"hotel-booking-core/internal/pkg/config"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/pkg/metrics"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrMissingField    = errs.New("required field missing")
	ErrHotelNotFound   = errs.New("hotel not found")
	ErrRoomNotFound    = errs.New("room not found")
	ErrBookingNotFound = errs.New("booking not found")
	ErrRoomUnavailable = errs.New("room unavailable")
	ErrCodeCollision   = errs.New("booking code collision persists")
)

// codeAttempts bounds the regenerate-and-retry loop on booking-code
// uniqueness violations.
const codeAttempts = 3

type MessageType string

const (
	MessagePending    MessageType = "pending"
	MessageProcessing MessageType = "processing"
	MessageConfirmed  MessageType = "confirmed"
	MessageRoomCode   MessageType = "room_code"
)

// Notifier is the outbound lifecycle trigger. Fire-and-forget: delivery
// failure never fails the booking operation.
type Notifier interface {
	Notify(ctx context.Context, bookingID uuid.UUID, messageType MessageType, payload map[string]string) error
}

type HotelRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error)
}

type RoomRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
}

type SurchargeRepo interface {
	ListActiveByRoom(ctx context.Context, roomID uuid.UUID) ([]*surcharge.Rule, error)
}

type InventoryRepo interface {
	RangeByRoom(ctx context.Context, roomID uuid.UUID, from, to time.Time) (map[string]*inventory.Day, error)
	ReserveNights(ctx context.Context, tx db.DBTX, rm *room.Room, dates []time.Time, numRooms int) error
}

type BookingRepo interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Update(ctx context.Context, b *booking.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RoomUnavailableError carries the checker's verdict so callers can surface
// which nights blocked the stay.
type RoomUnavailableError struct {
	Result inventory.AvailabilityResult
}

func (e *RoomUnavailableError) Error() string {
	return "room unavailable: " + string(e.Result.BlockingReason)
}

type CreateBookingParams struct {
	HotelID       uuid.UUID
	RoomID        uuid.UUID
	CheckIn       string
	CheckOut      string
	NumRooms      int
	NumAdults     int
	NumChildren   int
	ChildrenAges  []int
	PriceType     string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Discount      int64
	CouponCode    string
	TransportMeta json.RawMessage
	InvoiceMeta   json.RawMessage
	ClientIP      string
	UserAgent     string
}

type CreateBookingResult struct {
	BookingID uuid.UUID `json:"booking_id"`
	Code      string    `json:"booking_code"`
	Hash      string    `json:"booking_hash"`
}

type BookingCommands interface {
	Create(ctx context.Context, params CreateBookingParams) (*CreateBookingResult, error)
	Update(ctx context.Context, id uuid.UUID, fields booking.UpdateFields) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	MarkAsPaid(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	tx         shared.TxManager
	hotels     HotelRepo
	rooms      RoomRepo
	surcharges SurchargeRepo
	inventory  InventoryRepo
	bookings   BookingRepo
	engine     *pricing.Engine
	notifier   Notifier
	clock      clock.Clock
	cfg        config.BookingConfig
}

func NewBookingCommands(
	tx shared.TxManager,
	hotels HotelRepo,
	rooms RoomRepo,
	surcharges SurchargeRepo,
	inv InventoryRepo,
	bookings BookingRepo,
	engine *pricing.Engine,
	notifier Notifier,
	clk clock.Clock,
	cfg config.BookingConfig,
) BookingCommands {
	return &bookingCommandsImpl{
		tx:         tx,
		hotels:     hotels,
		rooms:      rooms,
		surcharges: surcharges,
		inventory:  inv,
		bookings:   bookings,
		engine:     engine,
		notifier:   notifier,
		clock:      clk,
		cfg:        cfg,
	}
}

// Create runs the ordered creation gates: structural validation, existence
// checks, availability pre-check, price computation, then a single
// transaction covering the booking insert and the conditional stock
// reservation so a lost race rolls everything back.
func (c *bookingCommandsImpl) Create(ctx context.Context, params CreateBookingParams) (*CreateBookingResult, error) {
	if err := c.validateStructure(params); err != nil {
		return nil, err
	}

	priceType := pricing.PriceType(params.PriceType)
	if !priceType.IsValid() {
		priceType = pricing.PriceTypeRoom
	}

	rng, err := stay.ParseRange(params.CheckIn, params.CheckOut)
	if err != nil {
		return nil, err
	}
	guests, err := stay.NewGuests(params.NumRooms, params.NumAdults, params.NumChildren, params.ChildrenAges)
	if err != nil {
		return nil, err
	}

	if _, err := c.hotels.FindByID(ctx, params.HotelID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	rm, err := c.rooms.FindByID(ctx, params.RoomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	if rm.HotelID() != params.HotelID || !rm.IsActive() {
		return nil, ErrRoomNotFound
	}

	days, err := c.inventory.RangeByRoom(ctx, rm.ID(), rng.CheckIn(), rng.CheckOut())
	if err != nil {
		return nil, err
	}
	availability := inventory.CheckAvailability(rm, days, rng, guests.Rooms)
	if !availability.Available {
		metrics.IncBookingFailure(string(availability.BlockingReason))
		return nil, errs.Mark(&RoomUnavailableError{Result: availability}, ErrRoomUnavailable)
	}

	rules, err := c.surcharges.ListActiveByRoom(ctx, rm.ID())
	if err != nil {
		return nil, err
	}
	quote := c.engine.Calculate(rm, days, rules, rng, guests, priceType)

	now := c.clock.Now()
	customer := booking.Customer{
		Name:  params.CustomerName,
		Phone: params.CustomerPhone,
		Email: params.CustomerEmail,
	}
	audit := booking.Audit{ClientIP: params.ClientIP, UserAgent: params.UserAgent}

	var created *booking.Booking
	for attempt := 0; attempt < codeAttempts; attempt++ {
		b, err := booking.New(
			booking.NewCode(now), booking.NewHash(),
			params.HotelID, rm.ID(), rng, guests, customer, quote,
			params.Discount, params.CouponCode,
			params.TransportMeta, params.InvoiceMeta,
			audit, now,
		)
		if err != nil {
			metrics.IncBookingFailure("invalid_base_amount")
			slog.WarnContext(ctx, "rejecting booking with non-positive base amount",
				"room_id", rm.ID(), "check_in", params.CheckIn, "check_out", params.CheckOut)
			return nil, err
		}

		err = c.tx.Do(ctx, func(tx db.DBTX) error {
			if err := c.bookings.Create(ctx, tx, b); err != nil {
				return err
			}
			return c.inventory.ReserveNights(ctx, tx, rm, rng.Dates(), guests.Rooms)
		})
		if err == nil {
			created = b
			break
		}
		if infra.IsKind(err, infra.KindDuplicateKey) {
			slog.WarnContext(ctx, "booking code collision, regenerating", "code", b.Code(), "attempt", attempt+1)
			continue
		}
		if infra.IsKind(err, infra.KindConflict) {
			metrics.IncBookingFailure("insufficient_stock")
			return nil, errs.Mark(&RoomUnavailableError{
				Result: inventory.AvailabilityResult{BlockingReason: inventory.ReasonInsufficientStock},
			}, ErrRoomUnavailable)
		}
		return nil, err
	}
	if created == nil {
		return nil, ErrCodeCollision
	}

	metrics.IncBookingCreated()
	c.notify(ctx, created.ID(), MessagePending, nil)

	return &CreateBookingResult{
		BookingID: created.ID(),
		Code:      created.Code(),
		Hash:      created.Hash(),
	}, nil
}

func (c *bookingCommandsImpl) validateStructure(params CreateBookingParams) error {
	if params.HotelID == uuid.Nil || params.RoomID == uuid.Nil ||
		params.CheckIn == "" || params.CheckOut == "" || params.CustomerName == "" {
		return ErrMissingField
	}
	return booking.ValidatePhone(params.CustomerPhone)
}

func (c *bookingCommandsImpl) Update(ctx context.Context, id uuid.UUID, fields booking.UpdateFields) error {
	b, err := c.findBooking(ctx, id)
	if err != nil {
		return err
	}

	prevStatus := b.Status()
	prevRoomCode := b.RoomCode()
	if err := b.ApplyUpdate(fields, c.cfg.StrictTransitions, c.clock.Now()); err != nil {
		return err
	}
	if err := c.bookings.Update(ctx, b); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return err
	}

	c.notifyTransitions(ctx, b, prevStatus, prevRoomCode)
	return nil
}

func (c *bookingCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	next := booking.Status(status)
	if !next.IsValid() {
		return booking.ErrInvalidStatus
	}
	return c.Update(ctx, id, booking.UpdateFields{Status: &next})
}

func (c *bookingCommandsImpl) MarkAsPaid(ctx context.Context, id uuid.UUID) error {
	b, err := c.findBooking(ctx, id)
	if err != nil {
		return err
	}

	prevStatus := b.Status()
	b.MarkPaid(c.clock.Now())
	if err := c.bookings.Update(ctx, b); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return err
	}

	if prevStatus != b.Status() {
		c.notify(ctx, b.ID(), MessageProcessing, nil)
	}
	return nil
}

// Delete is a hard delete. Reserved stock stays decremented; restoring it is
// a manual operator step.
func (c *bookingCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.bookings.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return err
	}
	return nil
}

func (c *bookingCommandsImpl) findBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, err := c.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (c *bookingCommandsImpl) notifyTransitions(ctx context.Context, b *booking.Booking, prevStatus booking.Status, prevRoomCode string) {
	if b.Status() != prevStatus {
		switch b.Status() {
		case booking.StatusProcessing:
			c.notify(ctx, b.ID(), MessageProcessing, nil)
		case booking.StatusConfirmed:
			c.notify(ctx, b.ID(), MessageConfirmed, nil)
		}
	}
	if b.RoomCode() != "" && b.RoomCode() != prevRoomCode {
		c.notify(ctx, b.ID(), MessageRoomCode, map[string]string{"room_code": b.RoomCode()})
	}
}

func (c *bookingCommandsImpl) notify(ctx context.Context, id uuid.UUID, messageType MessageType, payload map[string]string) {
	if err := c.notifier.Notify(ctx, id, messageType, payload); err != nil {
		slog.WarnContext(ctx, "notification delivery failed",
			"booking_id", id, "message_type", string(messageType), "error", err)
	}
}
