package queries

import (
	"context"
	"log/slog"

	"station-booking/internal/domain/reservation"
	"station-booking/internal/pkg/errs"
	"station-booking/internal/usecase/shared"
)

//go:generate mockgen -source=calendar.go -destination=../../../tests/mock/queries/calendar_mock.go -package=queriesmock

type CalendarQueries interface {
	DayCalendar(ctx context.Context, date reservation.Date) (*DayCalendarView, error)
	Availability(ctx context.Context, date reservation.Date, kind reservation.Kind, start reservation.ClockTime, durationHours int) (*AvailabilityView, error)
	ListReservations(ctx context.Context, date *reservation.Date) ([]*ReservationView, error)
}

type calendarQueriesImpl struct {
	store shared.ReservationStore
}

func NewCalendarQueries(store shared.ReservationStore) CalendarQueries {
	return &calendarQueriesImpl{
		store: store,
	}
}

// DayCalendar degrades to an empty grid flagged Unavailable when the store cannot be reached.
func (q *calendarQueriesImpl) DayCalendar(ctx context.Context, date reservation.Date) (*DayCalendarView, error) {
	reservations, err := q.store.ListByDate(ctx, date)
	if err != nil {
		if errs.Is(err, errs.ErrStoreUnavailable) {
			slog.Warn("calendar served without reservations: store unavailable",
				"date", date.String(),
				"error", err.Error())
			view := ToDayCalendarView(date, reservation.BuildDayGrid(nil))
			view.Unavailable = true
			return view, nil
		}
		return nil, errs.Wrap(err, "failed to load day calendar")
	}

	grid := reservation.BuildDayGrid(reservations)
	for _, w := range grid.Warnings {
		slog.Warn("reservation data integrity",
			"date", date.String(),
			"type", w.Kind.String(),
			"station", w.Station,
			"hour", w.Hour,
			"reservation_id", w.ReservationID.String(),
			"displaced_id", w.DisplacedID.String(),
			"reason", w.Reason)
	}

	return ToDayCalendarView(date, grid), nil
}

func (q *calendarQueriesImpl) Availability(
	ctx context.Context,
	date reservation.Date,
	kind reservation.Kind,
	start reservation.ClockTime,
	durationHours int,
) (*AvailabilityView, error) {
	reservations, err := q.store.ListByDate(ctx, date)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load reservations for availability")
	}

	reserved, err := reservation.ConflictingStations(reservations, kind, start, durationHours)
	if err != nil {
		return nil, err
	}

	free := make([]int, 0, kind.StationCount())
	for _, s := range kind.Stations() {
		if !reserved.Contains(s) {
			free = append(free, s)
		}
	}

	return &AvailabilityView{
		Date:     date.String(),
		Type:     kind.String(),
		Time:     start.String(),
		Duration: durationHours,
		Reserved: reserved.Sorted(),
		Free:     free,
	}, nil
}

// ListReservations lists one day when date is set, otherwise everything.
func (q *calendarQueriesImpl) ListReservations(ctx context.Context, date *reservation.Date) ([]*ReservationView, error) {
	var (
		reservations []*reservation.Reservation
		err          error
	)
	if date != nil {
		reservations, err = q.store.ListByDate(ctx, *date)
	} else {
		reservations, err = q.store.ListAll(ctx)
	}
	if err != nil {
		return nil, errs.Wrap(err, "failed to list reservations")
	}

	return ToReservationViews(reservations), nil
}
