package readstore

import (
	"context"

	"station-booking/internal/domain/reservation"
	"station-booking/internal/infra"
	"station-booking/internal/infra/repository/converter"
	sqlc "station-booking/internal/infra/sqlc/generated"
	"station-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/readstore/reservation_mock.go -package=readstoremock

type ReservationReadQueries interface {
	ListReservationsByDate(ctx context.Context, db sqlc.DBTX, date pgtype.Date) ([]sqlc.Reservations, error)
	ListReservations(ctx context.Context, db sqlc.DBTX) ([]sqlc.Reservations, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByDate returns every reservation on date, in insertion order.
func (r *ReservationReadStore) FindByDate(ctx context.Context, date reservation.Date) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListReservationsByDate(ctx, r.db, pgconv.DateToPgtype(date.Time()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by date", err)
	}

	return converter.RowsToDomain(rows), nil
}

func (r *ReservationReadStore) FindAll(ctx context.Context) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListReservations(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	return converter.RowsToDomain(rows), nil
}
