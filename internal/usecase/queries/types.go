package queries

import (
	"time"

	"station-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Station   int       `json:"station"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	EndTime   string    `json:"end_time"`
	Duration  int       `json:"duration"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	UserID    string    `json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CellView struct {
	Station       int        `json:"station"`
	Reserved      bool       `json:"reserved"`
	ReservationID *uuid.UUID `json:"reservation_id,omitempty"`
}

type HourRowView struct {
	Hour  int        `json:"hour"`
	Label string     `json:"label"`
	Cells []CellView `json:"cells"`
}

type KindCalendarView struct {
	Type     string        `json:"type"`
	Stations []int         `json:"stations"`
	Rows     []HourRowView `json:"rows"`
}

// DayCalendarView is always dense: every operating hour and every station is present.
type DayCalendarView struct {
	Date        string             `json:"date"`
	Hours       []int              `json:"hours"`
	Kinds       []KindCalendarView `json:"kinds"`
	Warnings    []string           `json:"warnings,omitempty"`
	Unavailable bool               `json:"unavailable"`
}

type AvailabilityView struct {
	Date     string `json:"date"`
	Type     string `json:"type"`
	Time     string `json:"time"`
	Duration int    `json:"duration"`
	Reserved []int  `json:"reserved"`
	Free     []int  `json:"free"`
}

func ToReservationView(r *reservation.Reservation) *ReservationView {
	contact := r.Contact()
	return &ReservationView{
		ID:        r.ID(),
		Type:      r.Kind().String(),
		Station:   r.Station(),
		Date:      r.Date().String(),
		Time:      r.Start().String(),
		EndTime:   r.End().String(),
		Duration:  r.DurationHours(),
		Name:      contact.Name(),
		Phone:     contact.Phone(),
		Email:     contact.Email(),
		UserID:    r.OwnerID(),
		CreatedAt: r.CreatedAt(),
	}
}

func ToReservationViews(rs []*reservation.Reservation) []*ReservationView {
	views := make([]*ReservationView, 0, len(rs))
	for _, r := range rs {
		if r == nil {
			continue
		}
		views = append(views, ToReservationView(r))
	}
	return views
}

// ToDayCalendarView flattens the grid in display order: kinds, then hours, then stations.
func ToDayCalendarView(date reservation.Date, grid reservation.DayGrid) *DayCalendarView {
	view := &DayCalendarView{
		Date:  date.String(),
		Hours: grid.Hours(),
	}

	for _, kind := range reservation.Kinds() {
		kv := KindCalendarView{
			Type:     kind.String(),
			Stations: kind.Stations(),
			Rows:     make([]HourRowView, 0, len(view.Hours)),
		}
		for _, h := range view.Hours {
			row := HourRowView{
				Hour:  h,
				Label: reservation.NewClockTimeFromHour(h).String(),
				Cells: make([]CellView, 0, kind.StationCount()),
			}
			for _, s := range kind.Stations() {
				cell := CellView{Station: s}
				if r := grid.Occupied(kind, h, s); r != nil {
					id := r.ID()
					cell.Reserved = true
					cell.ReservationID = &id
				}
				row.Cells = append(row.Cells, cell)
			}
			kv.Rows = append(kv.Rows, row)
		}
		view.Kinds = append(view.Kinds, kv)
	}

	for _, w := range grid.Warnings {
		view.Warnings = append(view.Warnings, w.Error())
	}
	return view
}
