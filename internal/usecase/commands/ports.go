package commands

import (
	"fmt"

	"station-booking/internal/usecase/queries"
)

// SubmitInput carries raw booking form values; Submit parses and validates them.
type SubmitInput struct {
	Type     string
	Stations []int
	Date     string
	Time     string
	Duration int
	Name     string
	Phone    string
	Email    string
	OwnerID  string
}

type FailedStation struct {
	Station int
	Err     error
}

// SubmitResult reports a batch that ran. Stations are attempted in ascending order and
// the batch stops at the first failure; stations after it are Skipped.
type SubmitResult struct {
	Booked   []*queries.ReservationView
	Failed   *FailedStation
	Skipped  []int
	Calendar *queries.DayCalendarView
}

func (r *SubmitResult) Complete() bool {
	return r.Failed == nil && len(r.Skipped) == 0
}

// ConflictError lists stations already taken for the requested interval.
type ConflictError struct {
	Stations []int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("stations %v are already reserved for the requested time", e.Stations)
}

func (e *ConflictError) Detail() any {
	return map[string]any{"conflicting_stations": e.Stations}
}

// BatchError is returned when the first insert of a batch fails, so nothing was booked.
// It unwraps to the store error; Detail names the stations without its text.
type BatchError struct {
	Failed  int
	Skipped []int
	Err     error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("failed to book station %d: %v", e.Failed, e.Err)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}

func (e *BatchError) Detail() any {
	skipped := e.Skipped
	if skipped == nil {
		skipped = []int{}
	}
	return map[string]any{"failed_station": e.Failed, "skipped_stations": skipped}
}
