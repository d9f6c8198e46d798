package components

import (
	"smartwash/internal/pkg/clock"
	"smartwash/internal/pkg/config"
	"smartwash/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		func(cfg config.Config) config.BookingConfig {
			return cfg.Booking
		},
		usecase.NewAuthUseCase,
		usecase.NewBookingUseCase,
		usecase.NewLocationUseCase,
		usecase.NewRechargeUseCase,
		usecase.NewAdminUseCase,
	),
)
