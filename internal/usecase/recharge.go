package usecase

import (
	"context"
	"errors"
	"io"
	"time"

	"smartwash/internal/domain/recharge"
	"smartwash/internal/infra"
	"smartwash/internal/infra/db"
	"smartwash/internal/infra/repository"
	"smartwash/internal/pkg/clock"
	"smartwash/internal/pkg/config"
	"smartwash/internal/usecase/readmodel"
	"smartwash/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRechargeNotFound       = errors.New("recharge request not found")
	ErrRechargeAlreadyDecided = errors.New("recharge request already decided")
	ErrInvalidRechargeStatus  = errors.New("invalid recharge status")
	ErrScreenshotRejected     = errors.New("screenshot could not be stored")
)

type RechargeRepository interface {
	Create(ctx context.Context, req *recharge.Request) error
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.RechargeRM, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*readmodel.RechargeRM, error)
	List(ctx context.Context, status *string) ([]*readmodel.RechargeRM, error)
	Decide(ctx context.Context, tx db.DBTX, id uuid.UUID, to recharge.Status, by uuid.UUID, at time.Time, note *string) (bool, error)
}

// ScreenshotStore persists payment proof uploads and returns a public URL.
type ScreenshotStore interface {
	SaveScreenshot(ctx context.Context, r io.Reader) (string, error)
}

type SubmitRechargeInput struct {
	Amount        int64
	Method        string
	TransactionID *string
	Screenshot    io.Reader
}

type RechargeUseCase interface {
	Submit(ctx context.Context, userID uuid.UUID, input SubmitRechargeInput) (*readmodel.RechargeRM, error)
	Get(ctx context.Context, id uuid.UUID) (*readmodel.RechargeRM, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]*readmodel.RechargeRM, error)
	List(ctx context.Context, status *string) ([]*readmodel.RechargeRM, error)
	Approve(ctx context.Context, id, adminID uuid.UUID, note *string) (*readmodel.RechargeRM, error)
	Reject(ctx context.Context, id, adminID uuid.UUID, note *string) (*readmodel.RechargeRM, error)
	Balance(ctx context.Context, userID uuid.UUID) (int64, error)
}

type rechargeUseCaseImpl struct {
	uow          shared.UnitOfWork
	rechargeRepo RechargeRepository
	ledger       LedgerRepository
	settings     SettingsRepository
	screenshots  ScreenshotStore
	clock        clock.Clock
	cfg          config.BookingConfig
}

func NewRechargeUseCase(
	uow shared.UnitOfWork,
	rechargeRepo RechargeRepository,
	ledger LedgerRepository,
	settings SettingsRepository,
	screenshots ScreenshotStore,
	clk clock.Clock,
	cfg config.BookingConfig,
) RechargeUseCase {
	return &rechargeUseCaseImpl{
		uow:          uow,
		rechargeRepo: rechargeRepo,
		ledger:       ledger,
		settings:     settings,
		screenshots:  screenshots,
		clock:        clk,
		cfg:          cfg,
	}
}

// Submit records the top-up claim as pending. Nothing is credited until an
// admin approves it.
func (r *rechargeUseCaseImpl) Submit(ctx context.Context, userID uuid.UUID, input SubmitRechargeInput) (*readmodel.RechargeRM, error) {
	method, err := recharge.NewMethod(input.Method)
	if err != nil {
		return nil, err
	}

	var screenshotURL *string
	if input.Screenshot != nil {
		url, err := r.screenshots.SaveScreenshot(ctx, input.Screenshot)
		if err != nil {
			return nil, ErrScreenshotRejected
		}
		screenshotURL = &url
	}

	minAmount := r.settings.GetInt64(ctx, repository.SettingMinRecharge, r.cfg.MinRecharge)
	req, err := recharge.NewRequest(userID, input.Amount, minAmount, method, input.TransactionID, screenshotURL)
	if err != nil {
		return nil, err
	}

	if err := r.rechargeRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	return r.Get(ctx, req.ID())
}

func (r *rechargeUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*readmodel.RechargeRM, error) {
	rm, err := r.rechargeRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRechargeNotFound
		}
		return nil, err
	}
	return rm, nil
}

func (r *rechargeUseCaseImpl) ListMine(ctx context.Context, userID uuid.UUID) ([]*readmodel.RechargeRM, error) {
	return r.rechargeRepo.ListByUser(ctx, userID)
}

func (r *rechargeUseCaseImpl) List(ctx context.Context, status *string) ([]*readmodel.RechargeRM, error) {
	if status != nil {
		if _, err := recharge.NewStatus(*status); err != nil {
			return nil, ErrInvalidRechargeStatus
		}
	}
	return r.rechargeRepo.List(ctx, status)
}

// Approve credits the wallet in the same transaction that flips the status.
// The pending-only guard in the repository makes a raced second approval a
// no-op instead of a double credit.
func (r *rechargeUseCaseImpl) Approve(ctx context.Context, id, adminID uuid.UUID, note *string) (*readmodel.RechargeRM, error) {
	rm, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		decided, err := r.rechargeRepo.Decide(ctx, tx, id, recharge.StatusApproved, adminID, r.clock.Now(), note)
		if err != nil {
			return err
		}
		if !decided {
			return ErrRechargeAlreadyDecided
		}
		return r.ledger.Credit(ctx, tx, rm.UserID, rm.Amount)
	})
	if err != nil {
		return nil, err
	}

	return r.Get(ctx, id)
}

// Reject stamps the reviewer with no ledger effect.
func (r *rechargeUseCaseImpl) Reject(ctx context.Context, id, adminID uuid.UUID, note *string) (*readmodel.RechargeRM, error) {
	if _, err := r.Get(ctx, id); err != nil {
		return nil, err
	}

	err := r.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		decided, err := r.rechargeRepo.Decide(ctx, tx, id, recharge.StatusRejected, adminID, r.clock.Now(), note)
		if err != nil {
			return err
		}
		if !decided {
			return ErrRechargeAlreadyDecided
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.Get(ctx, id)
}

func (r *rechargeUseCaseImpl) Balance(ctx context.Context, userID uuid.UUID) (int64, error) {
	balance, err := r.ledger.Balance(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	return balance, nil
}
