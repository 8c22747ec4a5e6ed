package bootstrap

import (
	"station-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	MQModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
