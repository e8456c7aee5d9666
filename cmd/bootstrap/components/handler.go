package components

import (
	"stand-ledger/internal/handler"
	"stand-ledger/internal/handler/api"
	"stand-ledger/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	ValidatorsModule,
	fx.Provide(
		api.NewCatalogHandler,
		api.NewSaleHandler,
		api.NewOrderHandler,
		middleware.NewAuthMiddleware,
		func(catalog *api.CatalogHandler, sale *api.SaleHandler, order *api.OrderHandler) handler.Handlers {
			return handler.Handlers{Catalog: catalog, Sale: sale, Order: order}
		},
	),
	fx.Invoke(handler.NewRouter),
)
