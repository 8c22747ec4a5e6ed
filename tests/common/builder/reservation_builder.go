//go:build unit || e2e

package builder

import (
	"time"

	"station-booking/internal/domain/reservation"
	reqdto "station-booking/internal/handler/dto/request"
	sqlc "station-booking/internal/infra/sqlc/generated"
	"station-booking/internal/usecase/commands"
	"station-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationBuilder struct {
	ID        uuid.UUID
	Kind      reservation.Kind
	Station   int
	Stations  []int
	Date      string
	Time      string
	Duration  int
	Name      string
	Phone     string
	Email     string
	OwnerID   string
	CreatedAt time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:        uuid.New(),
		Kind:      reservation.KindPC,
		Station:   3,
		Stations:  []int{3},
		Date:      "2030-06-01",
		Time:      "13:00",
		Duration:  2,
		Name:      "Ana Popescu",
		Phone:     "+40 712 345 678",
		Email:     "ana@example.com",
		OwnerID:   "user-123",
		CreatedAt: time.Date(2030, 5, 20, 10, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithSlot(kind reservation.Kind, station int, clock string, duration int) *ReservationBuilder {
	b.Kind = kind
	b.Station = station
	b.Stations = []int{station}
	b.Time = clock
	b.Duration = duration
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDraft() (reservation.Draft, error) {
	date, err := reservation.ParseDate(b.Date)
	if err != nil {
		return reservation.Draft{}, err
	}
	start, err := reservation.ParseClockTime(b.Time)
	if err != nil {
		return reservation.Draft{}, err
	}
	contact, err := reservation.NewContact(b.Name, b.Phone, b.Email)
	if err != nil {
		return reservation.Draft{}, err
	}
	return reservation.NewDraft(b.Kind, b.Station, date, start, b.Duration, contact, b.OwnerID)
}

// MustDraft panics on invalid builder state; use BuildDraft to test validation.
func (b *ReservationBuilder) MustDraft() reservation.Draft {
	d, err := b.BuildDraft()
	if err != nil {
		panic(err)
	}
	return d
}

// BuildDomain skips validation like a row read back from the store.
func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	date, _ := reservation.ParseDate(b.Date)
	start, err := reservation.ParseClockTime(b.Time)
	if err != nil {
		start = reservation.NewClockTimeFromHour(0)
	}
	return reservation.ReconstructReservation(
		b.ID,
		b.Kind,
		b.Station,
		date,
		start,
		b.Duration,
		reservation.ReconstructContact(b.Name, b.Phone, b.Email),
		b.OwnerID,
		b.CreatedAt,
	)
}

func (b *ReservationBuilder) BuildInfra() sqlc.Reservations {
	d := b.BuildDomain()
	userID := pgtype.Text{}
	if b.OwnerID != "" {
		userID = pgtype.Text{String: b.OwnerID, Valid: true}
	}
	return sqlc.Reservations{
		ID:        b.ID,
		Type:      string(b.Kind),
		Station:   int32(b.Station),
		Date:      pgtype.Date{Time: d.Date().Time(), Valid: true},
		Time:      pgtype.Time{Microseconds: int64(d.Start().Minutes()) * int64(time.Minute/time.Microsecond), Valid: true},
		Duration:  int32(b.Duration),
		Name:      b.Name,
		Phone:     b.Phone,
		Email:     b.Email,
		UserID:    userID,
		CreatedAt: pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return queries.ToReservationView(b.BuildDomain())
}

func (b *ReservationBuilder) BuildSubmitInput() commands.SubmitInput {
	return commands.SubmitInput{
		Type:     string(b.Kind),
		Stations: b.Stations,
		Date:     b.Date,
		Time:     b.Time,
		Duration: b.Duration,
		Name:     b.Name,
		Phone:    b.Phone,
		Email:    b.Email,
		OwnerID:  b.OwnerID,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		Type:     string(b.Kind),
		Stations: b.Stations,
		Date:     b.Date,
		Time:     b.Time,
		Duration: b.Duration,
		Name:     b.Name,
		Phone:    b.Phone,
		Email:    b.Email,
	}
}
