package components

import (
	"smartwash/internal/handler"
	"smartwash/internal/handler/api"
	"smartwash/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewWalletHandler,
		api.NewLocationHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	wallet *api.WalletHandler,
	location *api.LocationHandler,
	admin *api.AdminHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Booking:  booking,
		Wallet:   wallet,
		Location: location,
		Admin:    admin,
	}
}
