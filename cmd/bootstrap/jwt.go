package bootstrap

import (
	"time"

	"station-booking/internal/pkg/config"
	"station-booking/internal/pkg/errs"
	"station-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	tokenDuration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, errs.Wrapf(err, "invalid JWT_DURATION %q", cfg.JWT.Duration)
	}

	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Issuer, tokenDuration), nil
}
