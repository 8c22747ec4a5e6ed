package converter

import (
	"math"

	"station-booking/internal/domain/reservation"
	sqlc "station-booking/internal/infra/sqlc/generated"
	"station-booking/internal/pkg/errs"
	"station-booking/internal/pkg/pgconv"
)

// DraftToInfra fails with ErrInvalidArgument when station or duration does not fit the int4 columns.
func DraftToInfra(d reservation.Draft) (sqlc.CreateReservationParams, error) {
	station, err := toInt32("station", d.Station())
	if err != nil {
		return sqlc.CreateReservationParams{}, err
	}
	duration, err := toInt32("duration", d.DurationHours())
	if err != nil {
		return sqlc.CreateReservationParams{}, err
	}

	contact := d.Contact()
	return sqlc.CreateReservationParams{
		Type:     d.Kind().String(),
		Station:  station,
		Date:     pgconv.DateToPgtype(d.Date().Time()),
		Time:     pgconv.MinutesToPgtypeTime(d.Start().Minutes()),
		Duration: duration,
		Name:     contact.Name(),
		Phone:    contact.Phone(),
		Email:    contact.Email(),
		UserID:   pgconv.OptionalStringToPgtype(d.OwnerID()),
	}, nil
}

// RowToDomain does not validate: stored rows that break invariants must still reach the grid.
func RowToDomain(row sqlc.Reservations) *reservation.Reservation {
	return reservation.ReconstructReservation(
		row.ID,
		reservation.Kind(row.Type),
		int(row.Station),
		reservation.DateOf(pgconv.DateFromPgtype(row.Date)),
		reservation.NewClockTimeFromMinutes(pgconv.MinutesFromPgtypeTime(row.Time)),
		int(row.Duration),
		reservation.ReconstructContact(row.Name, row.Phone, row.Email),
		pgconv.StringFromPgtype(row.UserID),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func RowsToDomain(rows []sqlc.Reservations) []*reservation.Reservation {
	result := make([]*reservation.Reservation, len(rows))
	for i, row := range rows {
		result[i] = RowToDomain(row)
	}
	return result
}

func toInt32(field string, v int) (int32, error) {
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, errs.Invalid("%s out of int32 range: %d", field, v)
	}
	return int32(v), nil
}
