//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-booking-core/internal/handler/api"
	"hotel-booking-core/internal/usecase/queries"
	"hotel-booking-core/tests/common/httptest"
	queriesmock "hotel-booking-core/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CalendarHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockCalendarQueries
	handler     *api.CalendarHandler
}

func (s *CalendarHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCalendarQueries(s.mockCtrl)
	s.handler = api.NewCalendarHandler(s.mockQueries)

	s.router.GET("/hotels/:id/calendar", s.handler.GetCalendar)
}

func (s *CalendarHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCalendarHandlerSuite(t *testing.T) {
	suite.Run(t, new(CalendarHandlerTestSuite))
}

func (s *CalendarHandlerTestSuite) TestGetCalendar() {
	hotelID := uuid.New()
	url := "/hotels/" + hotelID.String() + "/calendar"

	s.Run("success: returns 200 OK keyed by date", func() {
		min := int64(9000)
		s.mockQueries.EXPECT().MonthlyPrices(gomock.Any(), hotelID, 2026, 9).
			Return(map[string]*queries.CalendarDay{
				"2026-09-10": {RoomMin: &min, Status: "available"},
				"2026-09-11": {SoldOut: true, Status: "sold_out"},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?year=2026&month=9", nil, "")

		var body map[string]*queries.CalendarDay
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Contains(body, "2026-09-10")
		s.Equal(int64(9000), *body["2026-09-10"].RoomMin)
		s.True(body["2026-09-11"].SoldOut)
	})

	s.Run("error: 400 Bad Request on a malformed hotel id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hotels/not-a-uuid/calendar?year=2026&month=9", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid hotel ID")
	})

	s.Run("error: 400 Bad Request when year or month is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?year=2026", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "year and month")
	})

	s.Run("error: 400 Bad Request on an out-of-range month", func() {
		s.mockQueries.EXPECT().MonthlyPrices(gomock.Any(), hotelID, 2026, 13).
			Return(nil, queries.ErrInvalidMonth).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?year=2026&month=13", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid year or month")
	})

	s.Run("error: 404 Not Found for an unknown hotel", func() {
		s.mockQueries.EXPECT().MonthlyPrices(gomock.Any(), hotelID, 2026, 9).
			Return(nil, queries.ErrHotelNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?year=2026&month=9", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Hotel not found")
	})
}
