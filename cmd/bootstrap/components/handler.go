package components

import (
	"food-preorder/internal/handler"
	"food-preorder/internal/handler/api"
	"food-preorder/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewMenuHandler,
		api.NewSlotHandler,
		api.NewOrderHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
