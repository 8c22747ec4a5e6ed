package commands

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"station-booking/internal/domain/reservation"
	"station-booking/internal/pkg/clock"
	"station-booking/internal/pkg/config"
	"station-booking/internal/pkg/errs"
	"station-booking/internal/usecase/queries"
	"station-booking/internal/usecase/shared"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation_mock.go -package=commandsmock

type ReservationCommands interface {
	Submit(ctx context.Context, input SubmitInput) (*SubmitResult, error)
}

type bookingWindow struct {
	openHour      int
	lastStartHour int
	maxDuration   int
	location      *time.Location
}

type reservationCommandsImpl struct {
	store     shared.ReservationStore
	publisher shared.EventPublisher
	calendar  queries.CalendarQueries
	clock     clock.Clock
	window    bookingWindow
}

func NewReservationCommands(
	store shared.ReservationStore,
	publisher shared.EventPublisher,
	calendar queries.CalendarQueries,
	clk clock.Clock,
	cfg config.Config,
) (ReservationCommands, error) {
	loc, err := time.LoadLocation(cfg.Booking.Location)
	if err != nil {
		return nil, errs.Wrapf(err, "invalid BOOKING_LOCATION %q", cfg.Booking.Location)
	}

	return &reservationCommandsImpl{
		store:     store,
		publisher: publisher,
		calendar:  calendar,
		clock:     clk,
		window: bookingWindow{
			openHour:      cfg.Booking.OpenHour,
			lastStartHour: cfg.Booking.LastStartHour,
			maxDuration:   cfg.Booking.MaxDurationHours,
			location:      loc,
		},
	}, nil
}

// Submit books one reservation per selected station. Nothing is written when any
// station is already taken. Once inserts start there is no rollback: a failure
// leaves earlier stations booked and the rest skipped.
func (c *reservationCommandsImpl) Submit(ctx context.Context, input SubmitInput) (*SubmitResult, error) {
	drafts, err := c.buildDrafts(input)
	if err != nil {
		return nil, err
	}
	first := drafts[0]

	existing, err := c.store.ListByDate(ctx, first.Date())
	if err != nil {
		return nil, errs.Wrap(err, "failed to check availability")
	}
	reserved, err := reservation.ConflictingStations(existing, first.Kind(), first.Start(), first.DurationHours())
	if err != nil {
		return nil, err
	}
	var conflicts []int
	for _, d := range drafts {
		if reserved.Contains(d.Station()) {
			conflicts = append(conflicts, d.Station())
		}
	}
	if len(conflicts) > 0 {
		return nil, errs.Mark(&ConflictError{Stations: conflicts}, errs.ErrSlotConflict)
	}

	result := &SubmitResult{}
	for i, d := range drafts {
		created, err := c.store.Create(ctx, d)
		if err != nil {
			result.Failed = &FailedStation{Station: d.Station(), Err: err}
			for _, rest := range drafts[i+1:] {
				result.Skipped = append(result.Skipped, rest.Station())
			}
			slog.Error("reservation batch stopped",
				"type", d.Kind().String(),
				"station", d.Station(),
				"booked", len(result.Booked),
				"skipped", result.Skipped,
				"error", err.Error())
			break
		}
		result.Booked = append(result.Booked, queries.ToReservationView(created))
		c.publish(ctx, created)
	}

	if len(result.Booked) == 0 && result.Failed != nil {
		return nil, &BatchError{Failed: result.Failed.Station, Skipped: result.Skipped, Err: result.Failed.Err}
	}

	result.Calendar = c.refresh(ctx, first.Date())
	return result, nil
}

func (c *reservationCommandsImpl) buildDrafts(input SubmitInput) ([]reservation.Draft, error) {
	kind, err := reservation.ParseKind(input.Type)
	if err != nil {
		return nil, err
	}
	date, err := reservation.ParseDate(input.Date)
	if err != nil {
		return nil, err
	}
	start, err := reservation.ParseClockTime(input.Time)
	if err != nil {
		return nil, err
	}
	contact, err := reservation.NewContact(input.Name, input.Phone, input.Email)
	if err != nil {
		return nil, err
	}

	stations, err := normalizeStations(kind, input.Stations)
	if err != nil {
		return nil, err
	}
	if err := c.checkWindow(date, start, input.Duration); err != nil {
		return nil, err
	}

	drafts := make([]reservation.Draft, 0, len(stations))
	for _, s := range stations {
		d, err := reservation.NewDraft(kind, s, date, start, input.Duration, contact, input.OwnerID)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, d)
	}
	return drafts, nil
}

// normalizeStations returns the stations sorted ascending.
func normalizeStations(kind reservation.Kind, stations []int) ([]int, error) {
	if len(stations) == 0 {
		return nil, errs.Invalid("at least one station must be selected")
	}
	if len(stations) > 1 && !kind.AllowsMultiStation() {
		return nil, errs.Invalid("%s bookings take exactly one station, got %d", kind, len(stations))
	}

	sorted := slices.Clone(stations)
	slices.Sort(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return nil, errs.Invalid("station %d selected more than once", sorted[i])
		}
	}
	return sorted, nil
}

func (c *reservationCommandsImpl) checkWindow(date reservation.Date, start reservation.ClockTime, duration int) error {
	w := c.window
	if !start.IsWholeHour() || start.Hour() < w.openHour || start.Hour() > w.lastStartHour {
		return errs.Mark(
			errs.Wrapf(errs.ErrOutsideBookingHours, "start %s must be a whole hour between %02d:00 and %02d:00", start, w.openHour, w.lastStartHour),
			errs.ErrInvalidArgument)
	}
	if duration < 1 || duration > w.maxDuration {
		return errs.Mark(
			errs.Wrapf(errs.ErrOutsideBookingHours, "duration %d must be between 1 and %d hours", duration, w.maxDuration),
			errs.ErrInvalidArgument)
	}
	today := reservation.DateOf(clock.Today(c.clock, w.location))
	if date.Before(today) {
		return errs.Mark(
			errs.Wrapf(errs.ErrDateInPast, "date %s is before %s", date, today),
			errs.ErrInvalidArgument)
	}
	return nil
}

// publish is best-effort; a broker failure never fails a booking that is already stored.
func (c *reservationCommandsImpl) publish(ctx context.Context, r *reservation.Reservation) {
	if err := c.publisher.PublishReservationCreated(ctx, shared.NewReservationCreatedEvent(r)); err != nil {
		slog.Warn("failed to publish reservation event",
			"reservation_id", r.ID().String(),
			"error", err.Error())
	}
}

// refresh returns nil when the calendar cannot be reloaded.
func (c *reservationCommandsImpl) refresh(ctx context.Context, date reservation.Date) *queries.DayCalendarView {
	view, err := c.calendar.DayCalendar(ctx, date)
	if err != nil || view == nil || view.Unavailable {
		return nil
	}
	return view
}
