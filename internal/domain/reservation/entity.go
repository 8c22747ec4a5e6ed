package reservation

import (
	"time"

	"github.com/google/uuid"
)

type details struct {
	kind          Kind
	station       int
	date          Date
	start         ClockTime
	durationHours int
	contact       Contact
	ownerID       string
}

func (d details) Kind() Kind         { return d.kind }
func (d details) Station() int       { return d.station }
func (d details) Date() Date         { return d.date }
func (d details) Start() ClockTime   { return d.start }
func (d details) DurationHours() int { return d.durationHours }
func (d details) Contact() Contact   { return d.contact }
func (d details) OwnerID() string    { return d.ownerID }
func (d details) Interval() Interval { return NewInterval(d.start, d.durationHours) }
func (d details) End() ClockTime     { return NewClockTimeFromMinutes(d.Interval().End) }
func (d details) HasOwner() bool     { return d.ownerID != "" }
func (d details) Slot() Slot         { return Slot{Kind: d.kind, Station: d.station, Start: d.start, DurationHours: d.durationHours} }

// Slot is a candidate or existing booking interval on one station.
type Slot struct {
	Kind          Kind
	Station       int
	Start         ClockTime
	DurationHours int
}

func (s Slot) Interval() Interval {
	return NewInterval(s.Start, s.DurationHours)
}

// Draft is a reservation that has not been persisted yet: no id, no createdAt.
type Draft struct {
	details
}

// NewDraft enforces the creation invariants. The owner id is optional and only kept for audit.
func NewDraft(
	kind Kind,
	station int,
	date Date,
	start ClockTime,
	durationHours int,
	contact Contact,
	ownerID string,
) (Draft, error) {
	if !kind.IsValid() {
		return Draft{}, invalid(ErrInvalidKind, "kind %q", kind)
	}
	if !kind.HasStation(station) {
		return Draft{}, invalid(ErrStationOutOfRange, "station %d for %s (1-%d)", station, kind, kind.StationCount())
	}
	if date.IsZero() {
		return Draft{}, invalid(ErrInvalidDate, "date is required")
	}
	if durationHours <= 0 {
		return Draft{}, invalid(ErrInvalidDuration, "duration %d", durationHours)
	}
	if contact.Name() == "" || contact.Phone() == "" || contact.Email() == "" {
		return Draft{}, invalid(ErrEmptyContact, "contact is incomplete")
	}

	return Draft{details: details{
		kind:          kind,
		station:       station,
		date:          date,
		start:         start,
		durationHours: durationHours,
		contact:       contact,
		ownerID:       ownerID,
	}}, nil
}

// WithStation copies the draft onto another station of the same kind.
func (d Draft) WithStation(station int) (Draft, error) {
	return NewDraft(d.kind, station, d.date, d.start, d.durationHours, d.contact, d.ownerID)
}

// Reservation is a persisted booking. It is never mutated after creation.
type Reservation struct {
	details
	id        uuid.UUID
	createdAt time.Time
}

// ReconstructReservation rebuilds a row read from the store without re-validating it,
// so that corrupt rows still reach the grid and surface as integrity warnings.
func ReconstructReservation(
	id uuid.UUID,
	kind Kind,
	station int,
	date Date,
	start ClockTime,
	durationHours int,
	contact Contact,
	ownerID string,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		details: details{
			kind:          kind,
			station:       station,
			date:          date,
			start:         start,
			durationHours: durationHours,
			contact:       contact,
			ownerID:       ownerID,
		},
		id:        id,
		createdAt: createdAt,
	}
}

// FromDraft attaches the store-assigned id and createdAt.
func FromDraft(d Draft, id uuid.UUID, createdAt time.Time) *Reservation {
	return &Reservation{details: d.details, id: id, createdAt: createdAt}
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
