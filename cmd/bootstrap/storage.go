package bootstrap

import (
	"smartwash/internal/infra/storage"
	"smartwash/internal/pkg/config"
	"smartwash/internal/usecase"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		fx.Annotate(
			NewLocalStore,
			fx.As(new(usecase.ScreenshotStore)),
		),
	),
)

func NewLocalStore(cfg config.Config) (*storage.LocalStore, error) {
	return storage.NewLocalStore(cfg.Storage)
}
