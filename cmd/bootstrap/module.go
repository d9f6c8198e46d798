package bootstrap

import (
	"smartwash/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	StorageModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
