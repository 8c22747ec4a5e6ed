package mq

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"station-booking/internal/pkg/errs"
	"station-booking/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

//go:generate mockgen -source=publisher.go -destination=../../../tests/mock/mq/publisher_mock.go -package=mqmock

const RoutingKeyReservationCreated = "reservation.created"

// Channel is the subset of *amqp.Channel the publisher needs.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type Publisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       Channel
	exchange string
}

var _ shared.EventPublisher = (*Publisher)(nil)

func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errs.Wrap(err, "dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "open channel")
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, "declare exchange")
	}
	return &Publisher{conn: conn, ch: ch, exchange: exchange}, nil
}

// NewPublisherWithChannel publishes on an already opened channel.
func NewPublisherWithChannel(ch Channel, exchange string) *Publisher {
	return &Publisher{ch: ch, exchange: exchange}
}

func (p *Publisher) PublishReservationCreated(ctx context.Context, event shared.ReservationCreatedEvent) error {
	return p.PublishJSON(ctx, RoutingKeyReservationCreated, event)
}

func (p *Publisher) PublishJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return errs.Wrap(err, "marshal event")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         b,
	})
	if err != nil {
		return errs.Wrapf(err, "publish %s", key)
	}
	return nil
}

func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

var _ shared.EventPublisher = NoopPublisher{}

func (NoopPublisher) PublishReservationCreated(_ context.Context, event shared.ReservationCreatedEvent) error {
	slog.Debug("event publishing disabled", "reservation_id", event.ReservationID.String())
	return nil
}
