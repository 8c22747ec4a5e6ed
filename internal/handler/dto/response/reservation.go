package response

import (
	"time"

	"station-booking/internal/usecase/commands"
	"station-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Station   int       `json:"station"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	EndTime   string    `json:"endTime"`
	Duration  int       `json:"duration"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	UserID    string    `json:"userId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type FailedStationResponse struct {
	Station int    `json:"station"`
	Reason  string `json:"reason"`
}

type SubmitReservationResponse struct {
	Booked   []*ReservationResponse `json:"booked"`
	Failed   *FailedStationResponse `json:"failed,omitempty"`
	Skipped  []int                  `json:"skipped"`
	Calendar *CalendarResponse      `json:"calendar,omitempty"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:        v.ID,
		Type:      v.Type,
		Station:   v.Station,
		Date:      v.Date,
		Time:      v.Time,
		EndTime:   v.EndTime,
		Duration:  v.Duration,
		Name:      v.Name,
		Phone:     v.Phone,
		Email:     v.Email,
		UserID:    v.UserID,
		CreatedAt: v.CreatedAt,
	}
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(views))
	for i, v := range views {
		out[i] = FromReservationView(v)
	}
	return out
}

// FromSubmitResult hides the failure's internal error text behind a generic reason.
func FromSubmitResult(r *commands.SubmitResult, failedReason string) *SubmitReservationResponse {
	resp := &SubmitReservationResponse{
		Booked:  FromReservationViews(r.Booked),
		Skipped: r.Skipped,
	}
	if resp.Skipped == nil {
		resp.Skipped = []int{}
	}
	if r.Failed != nil {
		resp.Failed = &FailedStationResponse{Station: r.Failed.Station, Reason: failedReason}
	}
	if r.Calendar != nil {
		resp.Calendar = FromDayCalendarView(r.Calendar)
	}
	return resp
}
