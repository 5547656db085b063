package api

import (
	"errors"
	"net/http"
	"strconv"

	"hotel-booking-core/internal/handler/httperr"
	"hotel-booking-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CalendarHandler struct {
	calendarQueries queries.CalendarQueries
}

func NewCalendarHandler(calendarQueries queries.CalendarQueries) *CalendarHandler {
	return &CalendarHandler{
		calendarQueries: calendarQueries,
	}
}

// @Summary Monthly price calendar
// @Description Per-day minimum prices and sold-out flags for a month, with a 7-day overlap on each side
// @Tags calendar
// @Produce json
// @Param id path string true "Hotel ID"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} map[string]queries.CalendarDay
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hotels/{id}/calendar [get]
func (h *CalendarHandler) GetCalendar(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hotel ID format",
		})
		return
	}

	year, errYear := strconv.Atoi(c.Query("year"))
	month, errMonth := strconv.Atoi(c.Query("month"))
	if errYear != nil || errMonth != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "year and month query parameters are required",
		})
		return
	}

	calendar, err := h.calendarQueries.MonthlyPrices(c.Request.Context(), hotelID, year, month)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidMonth):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid year or month",
			})
		case errors.Is(err, queries.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Hotel not found",
			})
		default:
			httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, calendar)
}
