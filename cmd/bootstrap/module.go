package bootstrap

import (
	"stand-ledger/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// CoreModule is everything below the HTTP layer. CLI commands run on it alone.
var CoreModule = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	components.PersistenceModule,
	components.UseCaseModule,
)

var Module = fx.Options(
	CoreModule,
	JWTModule,
	ProvisionModule,
	components.HandlerModule,
)
