//go:build unit

package mq_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"station-booking/internal/infra/mq"
	"station-booking/internal/usecase/shared"
	"station-booking/tests/common/builder"
	mqmock "station-booking/tests/mock/mq"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPublisher_PublishReservationCreated(t *testing.T) {
	ctx := context.Background()
	r := builder.NewReservationBuilder().BuildDomain()
	event := shared.NewReservationCreatedEvent(r)

	t.Run("success: persistent json message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ch := mqmock.NewMockChannel(ctrl)
		p := mq.NewPublisherWithChannel(ch, "reservations")

		ch.EXPECT().PublishWithContext(ctx, "reservations", mq.RoutingKeyReservationCreated, false, false, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, _, _ bool, msg amqp.Publishing) error {
				assert.Equal(t, "application/json", msg.ContentType)
				assert.Equal(t, amqp.Persistent, msg.DeliveryMode)

				var body map[string]any
				require.NoError(t, json.Unmarshal(msg.Body, &body))
				assert.Equal(t, r.ID().String(), body["reservationId"])
				assert.Equal(t, "pc", body["type"])
				assert.Equal(t, float64(3), body["station"])
				assert.Equal(t, "13:00", body["time"])
				return nil
			})

		assert.NoError(t, p.PublishReservationCreated(ctx, event))
	})

	t.Run("error: broker rejects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ch := mqmock.NewMockChannel(ctrl)
		p := mq.NewPublisherWithChannel(ch, "reservations")

		ch.EXPECT().PublishWithContext(gomock.Any(), gomock.Any(), gomock.Any(), false, false, gomock.Any()).
			Return(errors.New("channel closed"))

		err := p.PublishReservationCreated(ctx, event)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reservation.created")
	})

	t.Run("close releases the channel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ch := mqmock.NewMockChannel(ctrl)
		p := mq.NewPublisherWithChannel(ch, "reservations")

		ch.EXPECT().Close().Return(nil)
		assert.NoError(t, p.Close())
	})
}

func TestNoopPublisher(t *testing.T) {
	event := shared.NewReservationCreatedEvent(builder.NewReservationBuilder().BuildDomain())
	assert.NoError(t, mq.NoopPublisher{}.PublishReservationCreated(context.Background(), event))
}
