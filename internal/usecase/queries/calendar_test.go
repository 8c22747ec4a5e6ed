//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"station-booking/internal/domain/reservation"
	"station-booking/internal/pkg/errs"
	"station-booking/internal/usecase/queries"
	"station-booking/tests/common/builder"
	sharedmock "station-booking/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func mustDate(t *testing.T, s string) reservation.Date {
	t.Helper()
	d, err := reservation.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestCalendarQueries_DayCalendar(t *testing.T) {
	ctx := context.Background()
	date := mustDate(t, "2030-06-01")

	t.Run("予約が時間と席に展開される", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sharedmock.NewMockReservationStore(ctrl)
		q := queries.NewCalendarQueries(store)

		r := builder.NewReservationBuilder().WithSlot(reservation.KindPC, 4, "14:00", 2).BuildDomain()
		store.EXPECT().ListByDate(ctx, date).Return([]*reservation.Reservation{r}, nil)

		view, err := q.DayCalendar(ctx, date)
		require.NoError(t, err)

		assert.Equal(t, "2030-06-01", view.Date)
		assert.False(t, view.Unavailable)
		assert.Empty(t, view.Warnings)
		require.Len(t, view.Kinds, 2)
		assert.Equal(t, "ps5", view.Kinds[0].Type)
		assert.Equal(t, "pc", view.Kinds[1].Type)

		pc := view.Kinds[1]
		require.Len(t, pc.Rows, 12)
		var reserved []string
		for _, row := range pc.Rows {
			require.Len(t, row.Cells, 9)
			for _, cell := range row.Cells {
				if cell.Reserved {
					reserved = append(reserved, row.Label)
					assert.Equal(t, 4, cell.Station)
					assert.Equal(t, r.ID(), *cell.ReservationID)
				}
			}
		}
		if diff := cmp.Diff([]string{"14:00", "15:00"}, reserved); diff != "" {
			t.Errorf("reserved hours mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("ストア不可用時は空のグリッド", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sharedmock.NewMockReservationStore(ctrl)
		q := queries.NewCalendarQueries(store)

		store.EXPECT().ListByDate(ctx, date).Return(nil, errs.Mark(errors.New("dial tcp"), errs.ErrStoreUnavailable))

		view, err := q.DayCalendar(ctx, date)
		require.NoError(t, err)
		assert.True(t, view.Unavailable)
		require.Len(t, view.Kinds, 2)
		assert.Len(t, view.Kinds[0].Rows, 12)
		for _, kv := range view.Kinds {
			for _, row := range kv.Rows {
				for _, cell := range row.Cells {
					assert.False(t, cell.Reserved)
				}
			}
		}
	})

	t.Run("その他のエラーはそのまま返す", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sharedmock.NewMockReservationStore(ctrl)
		q := queries.NewCalendarQueries(store)

		store.EXPECT().ListByDate(ctx, date).Return(nil, errors.New("syntax error"))

		view, err := q.DayCalendar(ctx, date)
		assert.Nil(t, view)
		assert.Error(t, err)
	})

	t.Run("重複データは警告付きで返す", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sharedmock.NewMockReservationStore(ctrl)
		q := queries.NewCalendarQueries(store)

		store.EXPECT().ListByDate(ctx, date).Return([]*reservation.Reservation{
			builder.NewReservationBuilder().WithSlot(reservation.KindConsole, 1, "13:00", 1).BuildDomain(),
			builder.NewReservationBuilder().WithSlot(reservation.KindConsole, 1, "13:00", 1).BuildDomain(),
		}, nil)

		view, err := q.DayCalendar(ctx, date)
		require.NoError(t, err)
		require.Len(t, view.Warnings, 1)
		assert.Contains(t, view.Warnings[0], "overlapping reservations")
	})
}

func TestCalendarQueries_Availability(t *testing.T) {
	ctx := context.Background()
	date := mustDate(t, "2030-06-01")

	ctrl := gomock.NewController(t)
	store := sharedmock.NewMockReservationStore(ctrl)
	q := queries.NewCalendarQueries(store)

	store.EXPECT().ListByDate(ctx, date).Return([]*reservation.Reservation{
		builder.NewReservationBuilder().WithSlot(reservation.KindPC, 3, "13:00", 2).BuildDomain(),
		builder.NewReservationBuilder().WithSlot(reservation.KindPC, 8, "15:00", 1).BuildDomain(),
	}, nil).Times(2)

	view, err := q.Availability(ctx, date, reservation.KindPC, reservation.NewClockTimeFromHour(14), 1)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, view.Reserved)
	assert.Equal(t, []int{1, 2, 4, 5, 6, 7, 8, 9}, view.Free)
	assert.Equal(t, "14:00", view.Time)

	_, err = q.Availability(ctx, date, reservation.KindPC, reservation.NewClockTimeFromHour(14), 0)
	assert.True(t, errs.Is(err, errs.ErrInvalidArgument))
}

func TestCalendarQueries_ListReservations(t *testing.T) {
	ctx := context.Background()
	r := builder.NewReservationBuilder().BuildDomain()

	t.Run("日付指定", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sharedmock.NewMockReservationStore(ctrl)
		q := queries.NewCalendarQueries(store)

		date := mustDate(t, "2030-06-01")
		store.EXPECT().ListByDate(ctx, date).Return([]*reservation.Reservation{r}, nil)

		views, err := q.ListReservations(ctx, &date)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, r.ID(), views[0].ID)
		assert.Equal(t, "15:00", views[0].EndTime)
	})

	t.Run("日付なしは全件", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sharedmock.NewMockReservationStore(ctrl)
		q := queries.NewCalendarQueries(store)

		store.EXPECT().ListAll(ctx).Return([]*reservation.Reservation{r, nil}, nil)

		views, err := q.ListReservations(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, views, 1)
	})
}
