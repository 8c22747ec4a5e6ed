//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"station-booking/internal/domain/reservation"
	"station-booking/internal/handler/api"
	resdto "station-booking/internal/handler/dto/response"
	"station-booking/internal/pkg/errs"
	"station-booking/internal/usecase/queries"
	"station-booking/tests/common/builder"
	"station-booking/tests/common/httptest"
	queriesmock "station-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CalendarHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockCalendarQueries
}

func (s *CalendarHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCalendarQueries(s.mockCtrl)
	handler := api.NewCalendarHandler(s.mockQueries)

	s.router.GET("/calendar/:date", handler.GetDay)
	s.router.GET("/availability", handler.GetAvailability)
}

func (s *CalendarHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCalendarHandlerSuite(t *testing.T) {
	suite.Run(t, new(CalendarHandlerTestSuite))
}

func (s *CalendarHandlerTestSuite) TestGetDay() {
	date, err := reservation.ParseDate("2030-06-01")
	s.Require().NoError(err)

	s.Run("success: dense grid", func() {
		r := builder.NewReservationBuilder().WithSlot(reservation.KindConsole, 2, "18:00", 1).BuildDomain()
		view := queries.ToDayCalendarView(date, reservation.BuildDayGrid([]*reservation.Reservation{r}))
		s.mockQueries.EXPECT().DayCalendar(gomock.Any(), date).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/calendar/2030-06-01", nil, "")

		var body resdto.CalendarResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("2030-06-01", body.Date)
		s.Len(body.Hours, 12)
		s.Require().Len(body.Kinds, 2)
		s.Len(body.Kinds[0].Rows, 12)
		s.Len(body.Kinds[1].Stations, 9)
		s.False(body.Unavailable)
	})

	s.Run("success: unavailable store still answers 200", func() {
		view := queries.ToDayCalendarView(date, reservation.BuildDayGrid(nil))
		view.Unavailable = true
		s.mockQueries.EXPECT().DayCalendar(gomock.Any(), date).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/calendar/2030-06-01", nil, "")

		var body resdto.CalendarResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Unavailable)
	})

	s.Run("error: 400 on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/calendar/tomorrow", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockQueries.EXPECT().DayCalendar(gomock.Any(), date).Return(nil, errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/calendar/2030-06-01", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "boom")
	})
}

func (s *CalendarHandlerTestSuite) TestGetAvailability() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().
			Availability(gomock.Any(), gomock.Any(), reservation.KindPC, reservation.NewClockTimeFromHour(14), 2).
			Return(&queries.AvailabilityView{
				Date: "2030-06-01", Type: "pc", Time: "14:00", Duration: 2,
				Reserved: []int{3}, Free: []int{1, 2, 4, 5, 6, 7, 8, 9},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/availability?date=2030-06-01&type=pc&time=14:00&duration=2", nil, "")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]int{3}, body.Reserved)
		s.Len(body.Free, 8)
	})

	s.Run("error: 400 on bad input", func() {
		paths := []string{
			"/availability?date=2030-06-01&type=pc&time=14:00",
			"/availability?date=2030-06-01&type=xbox&time=14:00&duration=1",
			"/availability?date=2030-06-01&type=pc&time=2pm&duration=1",
			"/availability?date=01-06-2030&type=pc&time=14:00&duration=1",
		}
		for _, path := range paths {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})

	s.Run("error: 400 when duration is rejected downstream", func() {
		s.mockQueries.EXPECT().Availability(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), -1).
			Return(nil, errs.Invalid("duration -1")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/availability?date=2030-06-01&type=pc&time=14:00&duration=-1", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
