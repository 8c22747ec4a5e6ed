//go:build unit

package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"station-booking/internal/domain/reservation"
	"station-booking/internal/infra"
	"station-booking/internal/infra/store"
	"station-booking/internal/pkg/config"
	"station-booking/internal/pkg/errs"
	"station-booking/tests/common/builder"
	storemock "station-booking/tests/mock/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newStore(t *testing.T, mutate func(*config.StoreConfig)) (*store.PostgresReservationStore, *storemock.MockReservationReader, *storemock.MockReservationWriter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	reader := storemock.NewMockReservationReader(ctrl)
	writer := storemock.NewMockReservationWriter(ctrl)

	cfg := config.NewTestConfig()
	if mutate != nil {
		mutate(&cfg.Store)
	}
	return store.NewPostgresReservationStore(reader, writer, cfg), reader, writer
}

func unavailable() error {
	return infra.WrapRepoErr("failed to list reservations by date", context.DeadlineExceeded)
}

func TestStore_ListByDate(t *testing.T) {
	ctx := context.Background()
	date, err := reservation.ParseDate("2030-06-01")
	require.NoError(t, err)
	rows := []*reservation.Reservation{builder.NewReservationBuilder().BuildDomain()}

	t.Run("一時的な障害はリトライされる", func(t *testing.T) {
		s, reader, _ := newStore(t, nil)
		gomock.InOrder(
			reader.EXPECT().FindByDate(gomock.Any(), date).Return(nil, unavailable()),
			reader.EXPECT().FindByDate(gomock.Any(), date).Return(rows, nil),
		)

		actual, err := s.ListByDate(ctx, date)
		require.NoError(t, err)
		assert.Equal(t, rows, actual)
	})

	t.Run("リトライ上限で不可用エラーを返す", func(t *testing.T) {
		s, reader, _ := newStore(t, nil)
		reader.EXPECT().FindByDate(gomock.Any(), date).Return(nil, unavailable()).Times(2)

		_, err := s.ListByDate(ctx, date)
		assert.True(t, errs.Is(err, errs.ErrStoreUnavailable))
	})

	t.Run("リトライ不可のエラーは一度だけ", func(t *testing.T) {
		s, reader, _ := newStore(t, nil)
		reader.EXPECT().FindByDate(gomock.Any(), date).Return(nil, infra.WrapRepoErr("bad query", errors.New("syntax error"))).Times(1)

		_, err := s.ListByDate(ctx, date)
		require.Error(t, err)
		assert.False(t, errs.Is(err, errs.ErrStoreUnavailable))
	})

	t.Run("操作ごとのタイムアウト", func(t *testing.T) {
		s, reader, _ := newStore(t, func(c *config.StoreConfig) {
			c.OpTimeout = 20 * time.Millisecond
			c.MaxRetries = 0
		})
		reader.EXPECT().FindByDate(gomock.Any(), date).
			DoAndReturn(func(ctx context.Context, _ reservation.Date) ([]*reservation.Reservation, error) {
				_, hasDeadline := ctx.Deadline()
				assert.True(t, hasDeadline)
				<-ctx.Done()
				return nil, infra.WrapRepoErr("failed to list reservations by date", ctx.Err())
			})

		_, err := s.ListByDate(ctx, date)
		assert.True(t, errs.Is(err, errs.ErrStoreUnavailable))
	})

	t.Run("日付なしは不正な引数", func(t *testing.T) {
		s, _, _ := newStore(t, nil)

		_, err := s.ListByDate(ctx, reservation.Date{})
		assert.True(t, errs.Is(err, errs.ErrInvalidArgument))
	})
}

func TestStore_ListAll(t *testing.T) {
	s, reader, _ := newStore(t, nil)
	reader.EXPECT().FindAll(gomock.Any()).Return(nil, nil)

	actual, err := s.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, actual)
}

func TestStore_Create(t *testing.T) {
	ctx := context.Background()
	draft := builder.NewReservationBuilder().MustDraft()

	t.Run("success", func(t *testing.T) {
		s, _, writer := newStore(t, nil)
		created := builder.NewReservationBuilder().BuildDomain()
		writer.EXPECT().Create(gomock.Any(), draft).Return(created, nil)

		actual, err := s.Create(ctx, draft)
		require.NoError(t, err)
		assert.Equal(t, created, actual)
	})

	t.Run("書き込みはリトライしない", func(t *testing.T) {
		s, _, writer := newStore(t, nil)
		writer.EXPECT().Create(gomock.Any(), draft).Return(nil, unavailable()).Times(1)

		_, err := s.Create(ctx, draft)
		assert.True(t, errs.Is(err, errs.ErrStoreUnavailable))
	})

	t.Run("未初期化のドラフト", func(t *testing.T) {
		s, _, _ := newStore(t, nil)

		_, err := s.Create(ctx, reservation.Draft{})
		assert.True(t, errs.Is(err, errs.ErrInvalidArgument))
	})
}
