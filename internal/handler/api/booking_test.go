//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/handler/api"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/commands"
	"hotel-booking-core/internal/usecase/queries"
	"hotel-booking-core/tests/common/httptest"
	commandsmock "hotel-booking-core/tests/mock/commands"
	queriesmock "hotel-booking-core/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := stay.ParseDate(value)
	require.NoError(t, err)
	return d
}

func wrapUnavailable(e *commands.RoomUnavailableError) error {
	return errs.Mark(e, commands.ErrRoomUnavailable)
}

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	// Stand-in for the staff JWT middleware
	staffMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Set("staff_subject", "staff-1")
		c.Next()
	}

	s.router.POST("/bookings", s.handler.Create)
	s.router.GET("/bookings/:id", s.handler.GetByRef)
	s.router.GET("/bookings", staffMiddleware, s.handler.List)
	s.router.PATCH("/bookings/:id", staffMiddleware, s.handler.Update)
	s.router.PATCH("/bookings/:id/status", staffMiddleware, s.handler.UpdateStatus)
	s.router.POST("/bookings/:id/paid", staffMiddleware, s.handler.MarkPaid)
	s.router.DELETE("/bookings/:id", staffMiddleware, s.handler.Delete)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func validCreateBody() map[string]any {
	return map[string]any{
		"hotel_id":       uuid.New().String(),
		"room_id":        uuid.New().String(),
		"check_in":       "2026-09-15",
		"check_out":      "2026-09-18",
		"num_rooms":      1,
		"num_adults":     2,
		"customer_name":  "Taro Yamada",
		"customer_phone": "09012345678",
	}
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	expected := &commands.CreateBookingResult{
		BookingID: uuid.New(),
		Code:      "BK-20260901-A1B2",
		Hash:      "0123456789abcdef0123456789abcdef",
	}

	s.Run("success: returns 201 Created with the booking references", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(expected, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validCreateBody(), "")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(expected.BookingID.String(), body["booking_id"])
		s.Equal(expected.Code, body["booking_code"])
		s.Equal(expected.Hash, body["booking_hash"])
	})

	s.Run("success: forged totals and unknown fields are ignored", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(expected, nil).Times(1)

		// Pricing is always recomputed server side, so caller-supplied
		// amounts must not even fail decoding.
		body := validCreateBody()
		body["total_amount"] = 1
		body["base_amount"] = 1
		body["free_upgrade"] = true

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var result map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &result)
		s.Equal(expected.Code, result["booking_code"])
	})

	s.Run("error: 400 Bad Request on missing required fields", func() {
		for _, field := range []string{"hotel_id", "room_id", "check_in", "check_out", "num_adults", "customer_name", "customer_phone"} {
			s.Run("missing "+field, func() {
				body := validCreateBody()
				delete(body, field)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"missing field", commands.ErrMissingField, http.StatusBadRequest, "Required field missing"},
			{"invalid phone", booking.ErrInvalidPhone, http.StatusBadRequest, "Phone number"},
			{"invalid dates", stay.ErrInvalidDates, http.StatusBadRequest, "Invalid dates"},
			{"invalid party", stay.ErrInvalidParty, http.StatusBadRequest, "Invalid party"},
			{"unknown hotel", commands.ErrHotelNotFound, http.StatusNotFound, "Hotel not found"},
			{"unknown room", commands.ErrRoomNotFound, http.StatusNotFound, "Room not found"},
			{"unsellable stay", booking.ErrInvalidBaseAmount, http.StatusUnprocessableEntity, "no sellable rate"},
			{"infrastructure failure", errors.New("connection reset"), http.StatusInternalServerError, "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validCreateBody(), "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 409 Conflict carries the blocked nights", func() {
		unavailableErr := &commands.RoomUnavailableError{
			Result: inventory.AvailabilityResult{
				Available:      false,
				BlockingReason: inventory.ReasonSoldOut,
				UnavailableDates: []inventory.UnavailableDate{
					{Date: mustDate(s.T(), "2026-09-16"), Reason: inventory.ReasonSoldOut},
				},
			},
		}
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, wrapUnavailable(unavailableErr)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validCreateBody(), "")

		s.Equal(http.StatusConflict, rec.Code)
		var body struct {
			Error            string           `json:"error"`
			BlockingReason   string           `json:"blocking_reason"`
			UnavailableDates []map[string]any `json:"unavailable_dates"`
		}
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
		s.Equal("sold_out", body.BlockingReason)
		s.Require().Len(body.UnavailableDates, 1)
		s.Equal("2026-09-16", body.UnavailableDates[0]["date"])
	})
}

func (s *BookingHandlerTestSuite) TestGetByRef() {
	bookingID := uuid.New()
	view := &queries.BookingView{
		ID:           bookingID,
		Code:         "BK-20260901-A1B2",
		CustomerName: "Taro Yamada",
		Status:       "pending_payment",
	}

	s.Run("success: resolves by id", func() {
		s.mockQueries.EXPECT().GetByRef(gomock.Any(), bookingID.String()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+bookingID.String(), nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(bookingID.String(), body["id"])
	})

	s.Run("success: resolves by code", func() {
		s.mockQueries.EXPECT().GetByRef(gomock.Any(), "BK-20260901-A1B2").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/BK-20260901-A1B2", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 Not Found for an unknown reference", func() {
		s.mockQueries.EXPECT().GetByRef(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/ffffffffffffffffffffffffffffffff", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	url := "/bookings"

	s.Run("success: returns the paginated list", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(&queries.BookingList{Total: 1, TotalPages: 1, Items: []*queries.BookingListItem{{Code: "BK-20260901-A1B2"}}}, nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=confirmed&page=1&per_page=20", nil, "bearer-token")

		var body queries.BookingList
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(1), body.Total)
		s.Len(body.Items, 1)
	})

	s.Run("error: 400 Bad Request on an unknown status filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=shipped", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "unknown booking status")
	})

	s.Run("error: 400 Bad Request on a malformed hotel filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?hotel_id=not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid hotel ID")
	})

	s.Run("error: 401 Unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *BookingHandlerTestSuite) TestUpdate() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), bookingID, gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"admin_note": "VIP"}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request on a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/not-a-uuid", map[string]any{"admin_note": "VIP"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"unknown booking", commands.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
			{"empty update", booking.ErrNoData, http.StatusBadRequest, "No updatable fields"},
			{"invalid status", booking.ErrInvalidStatus, http.StatusBadRequest, "Unknown status"},
			{"forbidden transition", booking.ErrInvalidTransition, http.StatusConflict, "transition not allowed"},
			{"invalid phone", booking.ErrInvalidPhone, http.StatusBadRequest, "Phone number"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Update(gomock.Any(), bookingID, gomock.Any()).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"admin_note": "x"}, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 401 Unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"admin_note": "x"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *BookingHandlerTestSuite) TestUpdateStatus() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/status"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), bookingID, "confirmed").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "confirmed"}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request when status is omitted", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 409 Conflict on a forbidden transition", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), bookingID, "completed").
			Return(booking.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "completed"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "transition not allowed")
	})
}

func (s *BookingHandlerTestSuite) TestMarkPaid() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/paid"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().MarkAsPaid(gomock.Any(), bookingID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for an unknown booking", func() {
		s.mockCommands.EXPECT().MarkAsPaid(gomock.Any(), bookingID).
			Return(commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestDelete() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), bookingID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for an unknown booking", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), bookingID).
			Return(commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}
