package components

import (
	"hotel-booking-core/internal/handler"
	"hotel-booking-core/internal/handler/api"
	"hotel-booking-core/internal/handler/middleware"
	"hotel-booking-core/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPricingHandler,
		api.NewBookingHandler,
		api.NewCalendarHandler,
		func(cfg config.Config) config.AuthConfig { return cfg.Auth },
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
