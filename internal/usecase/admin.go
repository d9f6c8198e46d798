package usecase

import (
	"context"
	"errors"

	"smartwash/internal/domain/user"
	"smartwash/internal/infra"
	"smartwash/internal/infra/db"
	"smartwash/internal/usecase/readmodel"
	"smartwash/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrSettingNotFound = errors.New("setting not found")

type StatsRepository interface {
	Dashboard(ctx context.Context) (*readmodel.DashboardRM, error)
}

type AdminUseCase interface {
	Dashboard(ctx context.Context) (*readmodel.DashboardRM, error)
	ListUsers(ctx context.Context) ([]*readmodel.ProfileRM, error)
	AssignRole(ctx context.Context, userID uuid.UUID, role user.Role) error
	ListSettings(ctx context.Context) ([]*readmodel.SettingRM, error)
	UpdateSetting(ctx context.Context, key, value string, description *string) ([]*readmodel.SettingRM, error)
}

type adminUseCaseImpl struct {
	uow       shared.UnitOfWork
	statsRepo StatsRepository
	userRepo  UserRepository
	settings  SettingsRepository
}

func NewAdminUseCase(
	uow shared.UnitOfWork,
	statsRepo StatsRepository,
	userRepo UserRepository,
	settings SettingsRepository,
) AdminUseCase {
	return &adminUseCaseImpl{
		uow:       uow,
		statsRepo: statsRepo,
		userRepo:  userRepo,
		settings:  settings,
	}
}

func (a *adminUseCaseImpl) Dashboard(ctx context.Context) (*readmodel.DashboardRM, error) {
	return a.statsRepo.Dashboard(ctx)
}

func (a *adminUseCaseImpl) ListUsers(ctx context.Context) ([]*readmodel.ProfileRM, error) {
	return a.userRepo.ListProfiles(ctx)
}

func (a *adminUseCaseImpl) AssignRole(ctx context.Context, userID uuid.UUID, role user.Role) error {
	if !role.IsValid() {
		return user.ErrInvalidRole
	}

	err := a.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		return a.userRepo.AssignRole(ctx, tx, userID, role)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (a *adminUseCaseImpl) ListSettings(ctx context.Context) ([]*readmodel.SettingRM, error) {
	return a.settings.List(ctx)
}

func (a *adminUseCaseImpl) UpdateSetting(ctx context.Context, key, value string, description *string) ([]*readmodel.SettingRM, error) {
	if err := a.settings.Set(ctx, key, value, description); err != nil {
		return nil, err
	}
	return a.settings.List(ctx)
}
