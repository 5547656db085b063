package request

import (
	"encoding/json"
	"strings"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	HotelID       uuid.UUID       `json:"hotel_id" binding:"required"`
	RoomID        uuid.UUID       `json:"room_id" binding:"required"`
	CheckIn       string          `json:"check_in" binding:"required"`
	CheckOut      string          `json:"check_out" binding:"required"`
	NumRooms      int             `json:"num_rooms"`
	NumAdults     int             `json:"num_adults" binding:"required,min=1"`
	NumChildren   int             `json:"num_children"`
	ChildrenAges  []int           `json:"children_ages"`
	PriceType     string          `json:"price_type"`
	CustomerName  string          `json:"customer_name" binding:"required"`
	CustomerPhone string          `json:"customer_phone" binding:"required"`
	CustomerEmail string          `json:"customer_email"`
	Discount      int64           `json:"discount_amount"`
	CouponCode    string          `json:"coupon_code"`
	TransportMeta json.RawMessage `json:"transport_meta,omitempty"`
	InvoiceMeta   json.RawMessage `json:"invoice_meta,omitempty"`
}

func (r CreateBookingRequest) ToParams(clientIP, userAgent string) commands.CreateBookingParams {
	numRooms := r.NumRooms
	if numRooms < 1 {
		numRooms = 1
	}
	priceType := r.PriceType
	if priceType == "" {
		priceType = "room"
	}
	return commands.CreateBookingParams{
		HotelID:       r.HotelID,
		RoomID:        r.RoomID,
		CheckIn:       strings.TrimSpace(r.CheckIn),
		CheckOut:      strings.TrimSpace(r.CheckOut),
		NumRooms:      numRooms,
		NumAdults:     r.NumAdults,
		NumChildren:   r.NumChildren,
		ChildrenAges:  r.ChildrenAges,
		PriceType:     priceType,
		CustomerName:  strings.TrimSpace(r.CustomerName),
		CustomerPhone: strings.TrimSpace(r.CustomerPhone),
		CustomerEmail: strings.TrimSpace(r.CustomerEmail),
		Discount:      r.Discount,
		CouponCode:    r.CouponCode,
		TransportMeta: r.TransportMeta,
		InvoiceMeta:   r.InvoiceMeta,
		ClientIP:      clientIP,
		UserAgent:     userAgent,
	}
}

type UpdateBookingRequest struct {
	Status        *string `json:"status,omitempty"`
	PaymentStatus *string `json:"payment_status,omitempty"`
	PaymentMethod *string `json:"payment_method,omitempty"`
	CustomerName  *string `json:"customer_name,omitempty"`
	CustomerPhone *string `json:"customer_phone,omitempty"`
	CustomerEmail *string `json:"customer_email,omitempty"`
	AdminNote     *string `json:"admin_note,omitempty"`
	RoomCode      *string `json:"room_code,omitempty"`
}

func (r UpdateBookingRequest) ToFields() booking.UpdateFields {
	fields := booking.UpdateFields{
		PaymentMethod: r.PaymentMethod,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CustomerEmail: r.CustomerEmail,
		AdminNote:     r.AdminNote,
		RoomCode:      r.RoomCode,
	}
	if r.Status != nil {
		s := booking.Status(*r.Status)
		fields.Status = &s
	}
	if r.PaymentStatus != nil {
		p := booking.PaymentStatus(*r.PaymentStatus)
		fields.PaymentStatus = &p
	}
	return fields
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListBookingsRequest struct {
	Status   string `form:"status"`
	HotelID  string `form:"hotel_id"`
	From     string `form:"from"`
	To       string `form:"to"`
	Search   string `form:"search"`
	Page     int    `form:"page,default=1"`
	PerPage  int    `form:"per_page,default=20"`
	SortDesc bool   `form:"sort_desc,default=true"`
}
