package components

import (
	"coupon-portal/internal/handler"
	"coupon-portal/internal/handler/api"
	"coupon-portal/internal/handler/middleware"
	"coupon-portal/internal/handler/presenter"
	"coupon-portal/internal/handler/web"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		presenter.NewPresenter,
		api.NewFormHandler,
		web.NewPageHandler,
		middleware.NewSessionMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
