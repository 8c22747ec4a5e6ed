package reservation

import (
	"fmt"
	"slices"

	"station-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	FirstOperatingHour = 12
	LastOperatingHour  = 23
)

// OperatingHours returns the fixed display buckets 12..23.
func OperatingHours() []int {
	hours := make([]int, 0, LastOperatingHour-FirstOperatingHour+1)
	for h := FirstOperatingHour; h <= LastOperatingHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// StationSet holds distinct station numbers. Membership is what matters; Sorted gives a stable order.
type StationSet map[int]struct{}

func (s StationSet) add(station int) {
	s[station] = struct{}{}
}

func (s StationSet) Contains(station int) bool {
	_, ok := s[station]
	return ok
}

func (s StationSet) Len() int {
	return len(s)
}

func (s StationSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for station := range s {
		out = append(out, station)
	}
	slices.Sort(out)
	return out
}

// ConflictingStations returns the stations of kind whose reservations overlap
// [start, start+durationHours). Reservations are expected to share one date.
func ConflictingStations(reservations []*Reservation, kind Kind, start ClockTime, durationHours int) (StationSet, error) {
	if !kind.IsValid() {
		return nil, invalid(ErrInvalidKind, "kind %q", kind)
	}
	if durationHours <= 0 {
		return nil, invalid(ErrInvalidDuration, "duration %d", durationHours)
	}

	candidate := NewInterval(start, durationHours)
	reserved := StationSet{}
	for _, r := range reservations {
		if r == nil || r.Kind() != kind {
			continue
		}
		// zero or negative duration rows occupy nothing
		existing := r.Interval()
		if existing.IsEmpty() {
			continue
		}
		if candidate.Overlaps(existing) {
			reserved.add(r.Station())
		}
	}
	return reserved, nil
}

// KindGrid maps operating hour -> station -> occupying reservation (nil when free).
type KindGrid map[int]map[int]*Reservation

func newKindGrid(kind Kind) KindGrid {
	grid := make(KindGrid, LastOperatingHour-FirstOperatingHour+1)
	for _, h := range OperatingHours() {
		row := make(map[int]*Reservation, kind.StationCount())
		for _, s := range kind.Stations() {
			row[s] = nil
		}
		grid[h] = row
	}
	return grid
}

// IntegrityWarning reports a persisted row that breaks the no-overlap invariant
// or cannot be placed on the grid at all.
type IntegrityWarning struct {
	Kind          Kind
	Station       int
	Hour          int
	ReservationID uuid.UUID
	DisplacedID   uuid.UUID
	Reason        string
}

func (w IntegrityWarning) Error() string {
	if w.DisplacedID != uuid.Nil {
		return fmt.Sprintf("%s station %d at %02d:00: reservation %s overrides %s: %s",
			w.Kind, w.Station, w.Hour, w.ReservationID, w.DisplacedID, w.Reason)
	}
	return fmt.Sprintf("%s station %d: reservation %s: %s", w.Kind, w.Station, w.ReservationID, w.Reason)
}

// Err returns the warning as an error marked with errs.ErrDataIntegrity.
func (w IntegrityWarning) Err() error {
	return errs.Mark(w, errs.ErrDataIntegrity)
}

type DayGrid struct {
	Console  KindGrid
	PC       KindGrid
	Warnings []IntegrityWarning
}

// BuildDayGrid lays reservations onto a dense hour x station grid for both kinds.
// A reservation spanning several hours marks every hour it overlaps. When two
// reservations claim the same cell the later one in the input wins and a warning is recorded.
func BuildDayGrid(reservations []*Reservation) DayGrid {
	grid := DayGrid{
		Console: newKindGrid(KindConsole),
		PC:      newKindGrid(KindPC),
	}

	for _, r := range reservations {
		if r == nil {
			continue
		}
		kg := grid.Grid(r.Kind())
		if kg == nil {
			grid.Warnings = append(grid.Warnings, IntegrityWarning{
				Kind: r.Kind(), Station: r.Station(), ReservationID: r.ID(),
				Reason: "unknown resource kind",
			})
			continue
		}
		if !r.Kind().HasStation(r.Station()) {
			grid.Warnings = append(grid.Warnings, IntegrityWarning{
				Kind: r.Kind(), Station: r.Station(), ReservationID: r.ID(),
				Reason: "station out of range",
			})
			continue
		}

		occupied := r.Interval()
		if occupied.IsEmpty() {
			continue
		}
		for _, h := range OperatingHours() {
			if !occupied.Overlaps(HourInterval(h)) {
				continue
			}
			if prev := kg[h][r.Station()]; prev != nil && prev.ID() != r.ID() {
				grid.Warnings = append(grid.Warnings, IntegrityWarning{
					Kind: r.Kind(), Station: r.Station(), Hour: h,
					ReservationID: r.ID(), DisplacedID: prev.ID(),
					Reason: "overlapping reservations",
				})
			}
			kg[h][r.Station()] = r
		}
	}
	return grid
}

// Grid returns nil for an unknown kind.
func (g DayGrid) Grid(kind Kind) KindGrid {
	switch kind {
	case KindConsole:
		return g.Console
	case KindPC:
		return g.PC
	default:
		return nil
	}
}

// Occupied returns the reservation holding the cell, or nil.
func (g DayGrid) Occupied(kind Kind, hour, station int) *Reservation {
	kg := g.Grid(kind)
	if kg == nil {
		return nil
	}
	return kg[hour][station]
}

func (g DayGrid) Hours() []int {
	return OperatingHours()
}

func (g DayGrid) HasWarnings() bool {
	return len(g.Warnings) > 0
}

// IsEmpty reports whether no cell is occupied.
func (g DayGrid) IsEmpty() bool {
	for _, kind := range Kinds() {
		for _, row := range g.Grid(kind) {
			for _, r := range row {
				if r != nil {
					return false
				}
			}
		}
	}
	return true
}
