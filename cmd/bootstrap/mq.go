package bootstrap

import (
	"context"
	"log/slog"

	"station-booking/internal/infra/mq"
	"station-booking/internal/pkg/config"
	"station-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var MQModule = fx.Module("mq",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher falls back to a no-op publisher when RABBITMQ_URL is unset.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) (shared.EventPublisher, error) {
	if cfg.MQ.URL == "" {
		slog.Info("RABBITMQ_URL not set; reservation events are not published")
		return mq.NoopPublisher{}, nil
	}

	publisher, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}
