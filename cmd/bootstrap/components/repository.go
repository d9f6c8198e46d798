package components

import (
	"smartwash/internal/infra/db"
	repo_impl "smartwash/internal/infra/repository"
	"smartwash/internal/infra/uow"
	"smartwash/internal/usecase"
	"smartwash/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewLocationRepository,
			fx.As(new(usecase.LocationRepository)),
		),
		fx.Annotate(
			repo_impl.NewRechargeRepository,
			fx.As(new(usecase.RechargeRepository)),
		),
		fx.Annotate(
			repo_impl.NewLedgerRepository,
			fx.As(new(usecase.LedgerRepository)),
		),
		fx.Annotate(
			repo_impl.NewSettingsRepository,
			fx.As(new(usecase.SettingsRepository)),
		),
		fx.Annotate(
			repo_impl.NewStatsRepository,
			fx.As(new(usecase.StatsRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
