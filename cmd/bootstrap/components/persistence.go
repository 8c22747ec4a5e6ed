package components

import (
	"station-booking/internal/infra/readstore"
	"station-booking/internal/infra/repository"
	sqlc "station-booking/internal/infra/sqlc/generated"
	"station-booking/internal/infra/store"
	"station-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
	storeModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationReadQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(store.ReservationReader)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.ReservationWriteQueries)),
		),
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(store.ReservationWriter)),
		),
	),
)

var storeModule = fx.Module("persistence/store",
	fx.Provide(
		fx.Annotate(
			store.NewPostgresReservationStore,
			fx.As(new(shared.ReservationStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
