package components

import (
	"online-store/internal/handler"
	"online-store/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewProductHandler,
		api.NewCustomerHandler,
		api.NewAdminHandler,
		func(p *api.ProductHandler, c *api.CustomerHandler, a *api.AdminHandler) handler.Handlers {
			return handler.Handlers{Product: p, Customer: c, Admin: a}
		},
	),
	fx.Invoke(handler.NewRouter),
)
