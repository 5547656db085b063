package api

import (
	"errors"
	"net/http"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/stay"
	reqdto "hotel-booking-core/internal/handler/dto/request"
	"hotel-booking-core/internal/handler/httperr"
	"hotel-booking-core/internal/usecase/commands"
	"hotel-booking-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Price, reserve and persist a new booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} commands.CreateBookingResult
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := req.ToParams(c.ClientIP(), c.Request.UserAgent())
	result, err := h.bookingCommands.Create(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrMissingField):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Required field missing",
			})
		case errors.Is(err, booking.ErrInvalidPhone):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Phone number must be 10-11 digits",
			})
		case errors.Is(err, stay.ErrInvalidDates):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid dates",
			})
		case errors.Is(err, stay.ErrInvalidParty):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid party composition",
			})
		case errors.Is(err, commands.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Hotel not found",
			})
		case errors.Is(err, commands.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, commands.ErrRoomUnavailable):
			h.respondUnavailable(c, err)
		case errors.Is(err, booking.ErrInvalidBaseAmount):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Stay has no sellable rate",
			})
		default:
			httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *BookingHandler) respondUnavailable(c *gin.Context, err error) {
	resp := gin.H{"error": "Room unavailable"}

	var unavailable *commands.RoomUnavailableError
	if errors.As(err, &unavailable) {
		resp["blocking_reason"] = string(unavailable.Result.BlockingReason)
		dates := make([]gin.H, 0, len(unavailable.Result.UnavailableDates))
		for _, d := range unavailable.Result.UnavailableDates {
			dates = append(dates, gin.H{
				"date":   stay.DateKey(d.Date),
				"reason": string(d.Reason),
				"stock":  d.Stock,
			})
		}
		if len(dates) > 0 {
			resp["unavailable_dates"] = dates
		}
	}
	c.JSON(http.StatusConflict, resp)
}

// @Summary Get booking
// @Description Get a booking by id, code or opaque hash
// @Tags bookings
// @Produce json
// @Param id path string true "Booking id, code or hash"
// @Success 200 {object} queries.BookingView
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetByRef(c *gin.Context) {
	view, err := h.bookingQueries.GetByRef(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary List bookings
// @Description List bookings with filters and pagination
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Booking status"
// @Param hotel_id query string false "Hotel ID"
// @Param from query string false "Check-in from date"
// @Param to query string false "Check-in to date"
// @Param search query string false "Matches code, customer name or phone"
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {object} queries.BookingList
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var req reqdto.ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	filter, err := buildListFilter(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	list, err := h.bookingQueries.List(c.Request.Context(), filter)
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, list)
}

func buildListFilter(req reqdto.ListBookingsRequest) (queries.BookingListFilter, error) {
	filter := queries.BookingListFilter{
		Search:   req.Search,
		Page:     req.Page,
		PerPage:  req.PerPage,
		SortDesc: req.SortDesc,
	}

	if req.Status != "" {
		status := booking.Status(req.Status)
		if !status.IsValid() {
			return filter, errors.New("unknown booking status")
		}
		filter.Status = &status
	}
	if req.HotelID != "" {
		hotelID, err := uuid.Parse(req.HotelID)
		if err != nil {
			return filter, errors.New("invalid hotel ID format")
		}
		filter.HotelID = &hotelID
	}
	if req.From != "" {
		from, err := stay.ParseDate(req.From)
		if err != nil {
			return filter, errors.New("invalid from date")
		}
		filter.From = &from
	}
	if req.To != "" {
		to, err := stay.ParseDate(req.To)
		if err != nil {
			return filter, errors.New("invalid to date")
		}
		filter.To = &to
	}
	return filter, nil
}

// @Summary Update booking
// @Description Update the allow-listed booking fields
// @Tags bookings
// @Accept json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingRequest true "Fields to update"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id} [patch]
func (h *BookingHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.bookingCommands.Update(c.Request.Context(), id, req.ToFields()); err != nil {
		h.respondUpdateError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Update booking status
// @Description Move a booking to another lifecycle status
// @Tags bookings
// @Accept json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateStatusRequest true "Target status"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.bookingCommands.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		h.respondUpdateError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Mark booking as paid
// @Description Record payment and take the pending_payment to processing edge
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/paid [post]
func (h *BookingHandler) MarkPaid(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	if err := h.bookingCommands.MarkAsPaid(c.Request.Context(), id); err != nil {
		h.respondUpdateError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete booking
// @Description Hard-delete a booking; reserved stock is not restored
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	if err := h.bookingCommands.Delete(c.Request.Context(), id); err != nil {
		h.respondUpdateError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) respondUpdateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, booking.ErrNoData):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No updatable fields supplied",
		})
	case errors.Is(err, booking.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown status value",
		})
	case errors.Is(err, booking.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Status transition not allowed",
		})
	case errors.Is(err, booking.ErrInvalidPhone):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Phone number must be 10-11 digits",
		})
	default:
		httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
