//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"station-booking/internal/handler/api"
	resdto "station-booking/internal/handler/dto/response"
	"station-booking/internal/pkg/errs"
	"station-booking/internal/usecase/commands"
	"station-booking/internal/usecase/queries"
	"station-booking/tests/common/builder"
	"station-booking/tests/common/httptest"
	"station-booking/tests/common/testutil"
	commandsmock "station-booking/tests/mock/commands"
	queriesmock "station-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockCalendarQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCalendarQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		c.Set("user_id", "user-123")
		c.Set("user_email", "ana@example.com")
		c.Next()
	}

	s.router.POST("/reservations", authMiddleware, s.handler.Create)
	s.router.GET("/reservations", authMiddleware, s.handler.List)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"

	b := builder.NewReservationBuilder()
	reqBody := b.BuildCreateRequestDTO()
	booked := &commands.SubmitResult{
		Booked:   []*queries.ReservationView{b.BuildView()},
		Calendar: &queries.DayCalendarView{Date: b.Date, Hours: []int{12, 13}},
	}

	missing := []testCaseReservation{
		{name: "missing field: type (required)", mutate: testutil.Field("type", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: stations (required)", mutate: testutil.Field("stations", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: date (required)", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: time (required)", mutate: testutil.Field("time", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: duration (required)", mutate: testutil.Field("duration", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: name (required)", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: phone (required)", mutate: testutil.Field("phone", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: email (required)", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
	}

	malformed := []testCaseReservation{
		{name: "empty stations", mutate: testutil.Field("stations", []int{}), expectCode: http.StatusBadRequest},
		{name: "invalid email", mutate: testutil.Field("email", "not-an-email"), expectCode: http.StatusBadRequest},
		{name: "stations not a list", mutate: testutil.Field("stations", "3"), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created when every station is booked", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), reqBody.ToInput("user-123")).Return(booked, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.SubmitReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Require().Len(body.Booked, 1)
		s.Equal(b.ID, body.Booked[0].ID)
		s.Equal("15:00", body.Booked[0].EndTime)
		s.Nil(body.Failed)
		s.Empty(body.Skipped)
		s.Require().NotNil(body.Calendar)
		s.Equal(b.Date, body.Calendar.Date)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, group := range [][]testCaseReservation{missing, malformed} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
				})
			}
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("partial: returns 207 with failed and skipped stations", func() {
		partial := &commands.SubmitResult{
			Booked:  []*queries.ReservationView{b.BuildView()},
			Failed:  &commands.FailedStation{Station: 4, Err: errs.Mark(errors.New("i/o timeout"), errs.ErrStoreUnavailable)},
			Skipped: []int{5},
		}
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(partial, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.SubmitReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusMultiStatus, &body)
		s.Require().NotNil(body.Failed)
		s.Equal(4, body.Failed.Station)
		s.Equal("Reservation store is unavailable, please retry", body.Failed.Reason)
		s.NotContains(rec.Body.String(), "i/o timeout")
		s.Equal([]int{5}, body.Skipped)
		s.Nil(body.Calendar)
	})

	s.Run("error: 409 Conflict lists taken stations", func() {
		conflict := errs.Mark(&commands.ConflictError{Stations: []int{3}}, errs.ErrSlotConflict)
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, conflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "no longer available")

		detail := httptest.DecodeErrorDetail(s.T(), rec)
		s.Equal([]any{float64(3)}, detail["conflicting_stations"])
	})

	s.Run("error: nothing booked reports failed and skipped stations", func() {
		batchErr := &commands.BatchError{
			Failed:  2,
			Skipped: []int{5},
			Err:     errs.Mark(errors.New("dial tcp 10.0.0.7:5432: connection refused"), errs.ErrStoreUnavailable),
		}
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, batchErr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "unavailable")

		detail := httptest.DecodeErrorDetail(s.T(), rec)
		s.Equal(float64(2), detail["failed_station"])
		s.Equal([]any{float64(5)}, detail["skipped_stations"])
		s.NotContains(rec.Body.String(), "10.0.0.7")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid argument",
				commandsError:  errs.Invalid("station 10 out of range"),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid request",
			},
			{
				name:           "store unavailable",
				commandsError:  errs.Mark(errors.New("connection refused"), errs.ErrStoreUnavailable),
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "unavailable",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *ReservationHandlerTestSuite) TestList() {
	view := builder.NewReservationBuilder().BuildView()

	s.Run("success: filters by date", func() {
		s.mockQueries.EXPECT().ListReservations(gomock.Any(), gomock.Not(gomock.Nil())).
			Return([]*queries.ReservationView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?date=2030-06-01", nil, "bearer-token")

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(view.ID, body[0].ID)
		s.Equal(view.Email, body[0].Email)
	})

	s.Run("success: lists everything without a date", func() {
		s.mockQueries.EXPECT().ListReservations(gomock.Any(), gomock.Nil()).
			Return([]*queries.ReservationView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "bearer-token")

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("error: 400 on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?date=June", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 503 when the store is down", func() {
		s.mockQueries.EXPECT().ListReservations(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("refused"), errs.ErrStoreUnavailable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "")
	})
}
