package bootstrap

import (
	"little-lemon/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	BookingModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
	ManagerModule,
)
