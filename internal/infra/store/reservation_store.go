package store

import (
	"context"

	"station-booking/internal/domain/reservation"
	"station-booking/internal/pkg/config"
	"station-booking/internal/pkg/errs"
	"station-booking/internal/usecase/shared"
)

//go:generate mockgen -source=reservation_store.go -destination=../../../tests/mock/store/reservation_store_mock.go -package=storemock

type ReservationReader interface {
	FindByDate(ctx context.Context, date reservation.Date) ([]*reservation.Reservation, error)
	FindAll(ctx context.Context) ([]*reservation.Reservation, error)
}

type ReservationWriter interface {
	Create(ctx context.Context, draft reservation.Draft) (*reservation.Reservation, error)
}

// PostgresReservationStore is the reservation store adapter: date-scoped reads and
// single-record inserts with per-operation timeouts.
type PostgresReservationStore struct {
	reader ReservationReader
	writer ReservationWriter
	cfg    config.StoreConfig
}

var _ shared.ReservationStore = (*PostgresReservationStore)(nil)

func NewPostgresReservationStore(reader ReservationReader, writer ReservationWriter, cfg config.Config) *PostgresReservationStore {
	return &PostgresReservationStore{
		reader: reader,
		writer: writer,
		cfg:    cfg.Store,
	}
}

// ListByDate is idempotent and therefore retried.
func (s *PostgresReservationStore) ListByDate(ctx context.Context, date reservation.Date) ([]*reservation.Reservation, error) {
	if date.IsZero() {
		return nil, errs.Invalid("date is required")
	}

	return withRetry(ctx, "list_by_date", s.cfg.OpTimeout, s.cfg.MaxRetries, s.cfg.RetryBackoff,
		func(ctx context.Context) ([]*reservation.Reservation, error) {
			return s.reader.FindByDate(ctx, date)
		})
}

func (s *PostgresReservationStore) ListAll(ctx context.Context) ([]*reservation.Reservation, error) {
	return withRetry(ctx, "list_all", s.cfg.OpTimeout, s.cfg.MaxRetries, s.cfg.RetryBackoff,
		func(ctx context.Context) ([]*reservation.Reservation, error) {
			return s.reader.FindAll(ctx)
		})
}

// Create is not retried: an insert that timed out may still have landed.
func (s *PostgresReservationStore) Create(ctx context.Context, draft reservation.Draft) (*reservation.Reservation, error) {
	if !draft.Kind().IsValid() {
		return nil, errs.Invalid("reservation draft is not initialized")
	}

	return withTimeout(ctx, s.cfg.OpTimeout, func(ctx context.Context) (*reservation.Reservation, error) {
		return s.writer.Create(ctx, draft)
	})
}
