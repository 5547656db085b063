package api

import (
	"errors"
	"net/http"

	reqdto "hotel-booking-core/internal/handler/dto/request"
	"hotel-booking-core/internal/handler/httperr"
	"hotel-booking-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	pricingQueries queries.PricingQueries
}

func NewPricingHandler(pricingQueries queries.PricingQueries) *PricingHandler {
	return &PricingHandler{
		pricingQueries: pricingQueries,
	}
}

// @Summary Quote a stay
// @Description Compute the full price breakdown for a stay without reserving anything
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} pricing.Quote
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pricing/quote [post]
func (h *PricingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	quote, err := h.pricingQueries.Quote(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, queries.ErrInvalidDates):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid dates",
			})
		case errors.Is(err, queries.ErrInvalidParty):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid party composition",
			})
		case errors.Is(err, queries.ErrInvalidPriceType):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid price type",
			})
		default:
			httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, quote)
}

// @Summary Check availability
// @Description Check whether the requested room count is sellable on every night of a stay
// @Tags pricing
// @Produce json
// @Param room_id query string true "Room ID"
// @Param check_in query string true "Check-in date"
// @Param check_out query string true "Check-out date"
// @Param num_rooms query int false "Number of rooms"
// @Success 200 {object} queries.AvailabilityView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /availability [get]
func (h *PricingHandler) Availability(c *gin.Context) {
	var req reqdto.AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.pricingQueries.Availability(c.Request.Context(), req.RoomID, req.CheckIn, req.CheckOut, req.NumRooms)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, queries.ErrInvalidDates):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid dates",
			})
		default:
			httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, view)
}
