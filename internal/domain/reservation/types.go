package reservation

import (
	"strings"

	"station-booking/internal/pkg/errs"
)

// Kind is the station category. Values match the persisted "type" field.
type Kind string

const (
	KindConsole Kind = "ps5"
	KindPC      Kind = "pc"
)

const (
	ConsoleStationCount = 5
	PCStationCount      = 9
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindConsole, KindPC:
		return true
	default:
		return false
	}
}

// StationCount returns 0 for an invalid kind.
func (k Kind) StationCount() int {
	switch k {
	case KindConsole:
		return ConsoleStationCount
	case KindPC:
		return PCStationCount
	default:
		return 0
	}
}

func (k Kind) HasStation(station int) bool {
	return station >= 1 && station <= k.StationCount()
}

// Stations lists 1..StationCount in ascending order.
func (k Kind) Stations() []int {
	n := k.StationCount()
	stations := make([]int, n)
	for i := range n {
		stations[i] = i + 1
	}
	return stations
}

// AllowsMultiStation reports whether one submission may book several stations.
// Console bays are booked one at a time.
func (k Kind) AllowsMultiStation() bool {
	return k == KindPC
}

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", invalid(ErrInvalidKind, "kind %q", s)
	}
	return k, nil
}

// Kinds returns every kind in display order.
func Kinds() []Kind {
	return []Kind{KindConsole, KindPC}
}

func invalid(sentinel error, format string, args ...any) error {
	return errs.Mark(errs.Wrapf(sentinel, format, args...), errs.ErrInvalidArgument)
}
