package api

import (
	"net/http"

	"station-booking/internal/domain/reservation"
	reqdto "station-booking/internal/handler/dto/request"
	resdto "station-booking/internal/handler/dto/response"
	"station-booking/internal/handler/httperr"
	"station-booking/internal/pkg/errs"
	"station-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	q queries.CalendarQueries
}

func NewCalendarHandler(q queries.CalendarQueries) *CalendarHandler {
	return &CalendarHandler{q: q}
}

// @Summary Day calendar
// @Description Hour by station occupancy for both station types. When the store is unreachable the grid is empty and unavailable is true.
// @Tags calendar
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Router /api/calendar/{date} [get]
func (h *CalendarHandler) GetDay(c *gin.Context) {
	date, err := reservation.ParseDate(c.Param("date"))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	view, err := h.q.DayCalendar(c.Request.Context(), date)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDayCalendarView(view))
}

// @Summary Station availability
// @Description Reserved and free stations of one type for a candidate start time and duration
// @Tags calendar
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param type query string true "Station type (ps5 or pc)"
// @Param time query string true "Start time (HH:MM)"
// @Param duration query int true "Duration in hours"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/availability [get]
func (h *CalendarHandler) GetAvailability(c *gin.Context) {
	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrInvalidArgument), "Invalid query", err.Error())
		return
	}

	date, err := reservation.ParseDate(query.Date)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	kind, err := reservation.ParseKind(query.Type)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	start, err := reservation.ParseClockTime(query.Time)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	view, err := h.q.Availability(c.Request.Context(), date, kind, start, query.Duration)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}
