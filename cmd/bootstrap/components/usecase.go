package components

import (
	"stand-ledger/internal/pkg/clock"
	"stand-ledger/internal/usecase"
	"stand-ledger/internal/usecase/commands"
	"stand-ledger/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewOrderUseCase,
		commands.NewSaleUseCase,
		commands.NewProvisionUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewSaleQueries,
		queries.NewOrderQueries,
	),
)

// ValidatorsModule needs the JWT service, so only the HTTP application includes it.
var ValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
