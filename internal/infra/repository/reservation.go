package repository

import (
	"context"

	"station-booking/internal/domain/reservation"
	"station-booking/internal/infra"
	"station-booking/internal/infra/repository/converter"
	sqlc "station-booking/internal/infra/sqlc/generated"
	"station-booking/internal/pkg/pgconv"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/repository/reservation_mock.go -package=repositorymock

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (sqlc.CreateReservationRow, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts one row. No overlap check happens here.
func (r *ReservationRepository) Create(ctx context.Context, draft reservation.Draft) (*reservation.Reservation, error) {
	params, err := converter.DraftToInfra(draft)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation", err)
	}

	row, err := r.queries.CreateReservation(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return reservation.FromDraft(draft, row.ID, pgconv.TimeFromPgtype(row.CreatedAt)), nil
}
