package api

import (
	"net/http"

	"station-booking/internal/domain/reservation"
	reqdto "station-booking/internal/handler/dto/request"
	resdto "station-booking/internal/handler/dto/response"
	"station-booking/internal/handler/httperr"
	"station-booking/internal/handler/middleware"
	"station-booking/internal/pkg/errs"
	"station-booking/internal/pkg/patch"
	"station-booking/internal/usecase/commands"
	"station-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errMissingIdentity = errs.New("authenticated user missing from context")

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.CalendarQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.CalendarQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Submit reservation
// @Description Book one or more stations for the same date, time and duration. Stations are booked in ascending order and the batch stops at the first failure.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.SubmitReservationResponse
// @Success 207 {object} resdto.SubmitReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrInvalidArgument), "Invalid request", err.Error())
		return
	}

	result, err := h.cmds.Submit(c.Request.Context(), req.ToInput(userID))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	if result.Complete() {
		c.JSON(http.StatusCreated, resdto.FromSubmitResult(result, ""))
		return
	}

	_, reason := httperr.StatusOf(result.Failed.Err)
	c.JSON(http.StatusMultiStatus, resdto.FromSubmitResult(result, reason))
}

// @Summary List reservations
// @Description List reservations for one date, or all reservations when no date is given
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	var query reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrInvalidArgument), "Invalid query", err.Error())
		return
	}

	var date *reservation.Date
	if raw := patch.Coalesce(query.Date, ""); raw != "" {
		d, err := reservation.ParseDate(raw)
		if err != nil {
			httperr.AbortWithDomainError(c, err)
			return
		}
		date = patch.Ptr(d)
	}

	views, err := h.q.ListReservations(c.Request.Context(), date)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}
