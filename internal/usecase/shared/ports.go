package shared

import (
	"context"
	"time"

	"station-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports_mock.go -package=sharedmock

// ReservationStore persists reservations. Implementations mark unreachable-store
// failures with errs.ErrStoreUnavailable and never check for overlaps.
type ReservationStore interface {
	ListByDate(ctx context.Context, date reservation.Date) ([]*reservation.Reservation, error)
	Create(ctx context.Context, draft reservation.Draft) (*reservation.Reservation, error)
	ListAll(ctx context.Context) ([]*reservation.Reservation, error)
}

// ReservationCreatedEvent is published once per stored reservation.
type ReservationCreatedEvent struct {
	ReservationID uuid.UUID `json:"reservationId"`
	Type          string    `json:"type"`
	Station       int       `json:"station"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Duration      int       `json:"duration"`
	UserID        string    `json:"userId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func NewReservationCreatedEvent(r *reservation.Reservation) ReservationCreatedEvent {
	return ReservationCreatedEvent{
		ReservationID: r.ID(),
		Type:          r.Kind().String(),
		Station:       r.Station(),
		Date:          r.Date().String(),
		Time:          r.Start().String(),
		Duration:      r.DurationHours(),
		UserID:        r.OwnerID(),
		CreatedAt:     r.CreatedAt(),
	}
}

type EventPublisher interface {
	PublishReservationCreated(ctx context.Context, event ReservationCreatedEvent) error
}
