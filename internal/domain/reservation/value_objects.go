package reservation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"station-booking/internal/pkg/errs"
)

var (
	ErrInvalidKind       = errs.New("invalid resource kind")
	ErrStationOutOfRange = errs.New("station number out of range")
	ErrInvalidDuration   = errs.New("duration must be a positive number of hours")
	ErrInvalidDate       = errs.New("invalid date")
	ErrInvalidClockTime  = errs.New("invalid clock time")
	ErrEmptyContact      = errs.New("contact name, phone and email are required")
)

const DateLayout = "2006-01-02"

// Date is a calendar date without a time component.
type Date struct {
	t time.Time
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, invalid(ErrInvalidDate, "date %q", s)
	}
	return Date{t: t}, nil
}

// DateOf takes the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// ClockTime is a local wall-clock time stored as minutes since midnight.
type ClockTime struct {
	minutes int
}

// ParseClockTime accepts "H:MM" or "HH:MM". 24:00 is accepted as the end of the day.
func ParseClockTime(s string) (ClockTime, error) {
	hs, ms, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(ms) != 2 || hs == "" || len(hs) > 2 || !allDigits(hs) || !allDigits(ms) {
		return ClockTime{}, invalid(ErrInvalidClockTime, "time %q", s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return ClockTime{}, invalid(ErrInvalidClockTime, "time %q", s)
	}
	m, err := strconv.Atoi(ms)
	if err != nil {
		return ClockTime{}, invalid(ErrInvalidClockTime, "time %q", s)
	}
	if h < 0 || m < 0 || m > 59 || h > 24 || (h == 24 && m != 0) {
		return ClockTime{}, invalid(ErrInvalidClockTime, "time %q", s)
	}
	return ClockTime{minutes: h*60 + m}, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func NewClockTimeFromHour(hour int) ClockTime {
	return ClockTime{minutes: hour * 60}
}

// NewClockTimeFromMinutes does not bound the value; arithmetic on slots works for any minute.
func NewClockTimeFromMinutes(minutes int) ClockTime {
	return ClockTime{minutes: minutes}
}

func (c ClockTime) Minutes() int {
	return c.minutes
}

func (c ClockTime) Hour() int {
	return c.minutes / 60
}

func (c ClockTime) Minute() int {
	return c.minutes % 60
}

func (c ClockTime) IsWholeHour() bool {
	return c.minutes%60 == 0
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// Interval is a half-open [Start, End) range in minutes since midnight.
type Interval struct {
	Start int
	End   int
}

// NewInterval saturates the end at the int range, so a huge duration still covers the rest of the day.
func NewInterval(start ClockTime, durationHours int) Interval {
	from := start.Minutes()
	var end int
	switch {
	case durationHours > 0 && durationHours > (math.MaxInt-max(from, 0))/60:
		end = math.MaxInt
	case durationHours < 0 && durationHours < (math.MinInt-min(from, 0))/60:
		end = math.MinInt
	default:
		end = from + durationHours*60
	}
	return Interval{Start: from, End: end}
}

// HourInterval covers [hour*60, (hour+1)*60).
func HourInterval(hour int) Interval {
	return Interval{Start: hour * 60, End: (hour + 1) * 60}
}

func (i Interval) IsEmpty() bool {
	return i.End <= i.Start
}

// Overlaps treats touching endpoints as disjoint. An empty interval overlaps nothing.
func (i Interval) Overlaps(other Interval) bool {
	if i.IsEmpty() || other.IsEmpty() {
		return false
	}
	return i.Start < other.End && i.End > other.Start
}

type Contact struct {
	name  string
	phone string
	email string
}

func NewContact(name, phone, email string) (Contact, error) {
	c := Contact{
		name:  strings.TrimSpace(name),
		phone: strings.TrimSpace(phone),
		email: strings.TrimSpace(email),
	}
	if c.name == "" || c.phone == "" || c.email == "" {
		return Contact{}, invalid(ErrEmptyContact, "name=%t phone=%t email=%t", c.name != "", c.phone != "", c.email != "")
	}
	return c, nil
}

// ReconstructContact skips validation for rows already persisted.
func ReconstructContact(name, phone, email string) Contact {
	return Contact{name: name, phone: phone, email: email}
}

func (c Contact) Name() string  { return c.name }
func (c Contact) Phone() string { return c.phone }
func (c Contact) Email() string { return c.email }
