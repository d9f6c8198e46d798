package usecase

import (
	"context"
	"errors"
	"time"

	"smartwash/internal/domain/booking"
	"smartwash/internal/domain/user"
	"smartwash/internal/infra"
	"smartwash/internal/infra/db"
	"smartwash/internal/infra/repository"
	"smartwash/internal/pkg/clock"
	"smartwash/internal/pkg/config"
	"smartwash/internal/pkg/otp"
	"smartwash/internal/usecase/readmodel"
	"smartwash/internal/usecase/shared"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrLocationUnavailable  = errors.New("location is not available for booking")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrBookingNotActive     = errors.New("booking is not active")
	ErrInvalidOTP           = errors.New("invalid or expired otp")
	ErrForbidden            = errors.New("operation not permitted for this user")
	ErrOTPGenerationFailed  = errors.New("failed to generate otp")
	ErrBookingCreateFailed  = errors.New("failed to create booking")
	ErrCancellationTooLate  = errors.New("cancellation cutoff has passed")
	ErrInvalidBookingStatus = errors.New("invalid booking status")
)

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error)
	FindEntityByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*readmodel.BookingListRM, error)
	List(ctx context.Context, status *string) ([]*readmodel.BookingRM, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, to booking.Status) (bool, error)
}

type LedgerRepository interface {
	Credit(ctx context.Context, tx db.DBTX, userID uuid.UUID, amount int64) error
	Debit(ctx context.Context, tx db.DBTX, userID uuid.UUID, amount int64) (bool, error)
	Balance(ctx context.Context, userID uuid.UUID) (int64, error)
}

type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	GetInt64(ctx context.Context, key string, fallback int64) int64
	Set(ctx context.Context, key, value string, description *string) error
	List(ctx context.Context) ([]*readmodel.SettingRM, error)
}

type BookingUseCase interface {
	Create(ctx context.Context, userID, locationID uuid.UUID, start time.Time) (*readmodel.BookingRM, error)
	Get(ctx context.Context, id, requesterID uuid.UUID, requesterRole user.Role) (*readmodel.BookingRM, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]*readmodel.BookingListRM, error)
	List(ctx context.Context, status *string) ([]*readmodel.BookingRM, error)
	Cancel(ctx context.Context, id, userID uuid.UUID) error
	Transition(ctx context.Context, id uuid.UUID, to booking.Status) error
	VerifyOTP(ctx context.Context, id uuid.UUID, code string) error
	OTPQRCode(ctx context.Context, id, requesterID uuid.UUID, requesterRole user.Role) ([]byte, error)
}

type bookingUseCaseImpl struct {
	uow          shared.UnitOfWork
	bookingRepo  BookingRepository
	locationRepo LocationRepository
	ledger       LedgerRepository
	settings     SettingsRepository
	clock        clock.Clock
	cfg          config.BookingConfig
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	bookingRepo BookingRepository,
	locationRepo LocationRepository,
	ledger LedgerRepository,
	settings SettingsRepository,
	clk clock.Clock,
	cfg config.BookingConfig,
) BookingUseCase {
	return &bookingUseCaseImpl{
		uow:          uow,
		bookingRepo:  bookingRepo,
		locationRepo: locationRepo,
		ledger:       ledger,
		settings:     settings,
		clock:        clk,
		cfg:          cfg,
	}
}

// Create debits the slot price and inserts the booking in one transaction, so
// a failed insert never leaves the wallet short.
func (b *bookingUseCaseImpl) Create(ctx context.Context, userID, locationID uuid.UUID, start time.Time) (*readmodel.BookingRM, error) {
	loc, err := b.locationRepo.FindByID(ctx, locationID)
	if err != nil || !loc.IsActive {
		return nil, ErrLocationUnavailable
	}

	now := b.clock.Now()
	advanceDays := int(b.settings.GetInt64(ctx, repository.SettingAdvanceDays, int64(b.cfg.AdvanceDays)))
	slot, err := booking.NewTimeSlot(start, now, advanceDays)
	if err != nil {
		return nil, err
	}

	price := b.settings.GetInt64(ctx, repository.SettingWashingPrice, b.cfg.SlotPrice)
	amount, err := booking.NewAmount(price)
	if err != nil {
		return nil, ErrBookingCreateFailed
	}

	code, err := otp.Generate()
	if err != nil {
		return nil, ErrOTPGenerationFailed
	}

	entity := booking.NewBooking(userID, locationID, slot, amount, code)

	err = b.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		debited, err := b.ledger.Debit(ctx, tx, userID, price)
		if err != nil {
			return err
		}
		if !debited {
			return ErrInsufficientBalance
		}
		return b.bookingRepo.Create(ctx, tx, entity)
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientBalance) {
			return nil, ErrInsufficientBalance
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrLocationUnavailable
		}
		return nil, err
	}

	return b.findWithOTPWindow(ctx, entity.ID())
}

// Get hides the booking from everyone but its owner and staff.
func (b *bookingUseCaseImpl) Get(ctx context.Context, id, requesterID uuid.UUID, requesterRole user.Role) (*readmodel.BookingRM, error) {
	rm, err := b.findWithOTPWindow(ctx, id)
	if err != nil {
		return nil, err
	}
	if rm.UserID != requesterID && !requesterRole.AtLeast(user.RoleModerator) {
		return nil, ErrForbidden
	}
	return rm, nil
}

func (b *bookingUseCaseImpl) findWithOTPWindow(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	rm, err := b.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	now := b.clock.Now()
	rm.OTPValid = rm.Status == booking.StatusActive.String() &&
		booking.ReconstructTimeSlot(rm.StartTime, rm.EndTime).OTPWindowContains(now)
	return rm, nil
}

func (b *bookingUseCaseImpl) ListMine(ctx context.Context, userID uuid.UUID) ([]*readmodel.BookingListRM, error) {
	return b.bookingRepo.FindByUserID(ctx, userID)
}

func (b *bookingUseCaseImpl) List(ctx context.Context, status *string) ([]*readmodel.BookingRM, error) {
	if status != nil {
		if _, err := booking.NewStatus(*status); err != nil {
			return nil, ErrInvalidBookingStatus
		}
	}
	return b.bookingRepo.List(ctx, status)
}

// Cancel refunds the slot price inside the same transaction that flips the
// status, guarded so a raced double-cancel refunds once.
func (b *bookingUseCaseImpl) Cancel(ctx context.Context, id, userID uuid.UUID) error {
	entity, err := b.bookingRepo.FindEntityByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return err
	}
	if entity.UserID() != userID {
		return ErrForbidden
	}

	cutoff := time.Duration(b.cfg.CancelCutoffHours) * time.Hour
	if err := entity.CancellableBy(b.clock.Now(), cutoff); err != nil {
		switch {
		case errors.Is(err, booking.ErrNotActive):
			return ErrBookingNotActive
		case errors.Is(err, booking.ErrCancelTooLate):
			return ErrCancellationTooLate
		default:
			return err
		}
	}

	return b.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		flipped, err := b.bookingRepo.UpdateStatus(ctx, tx, id, booking.StatusCancelled)
		if err != nil {
			return err
		}
		if !flipped {
			return ErrBookingNotActive
		}
		return b.ledger.Credit(ctx, tx, userID, entity.Amount().Value())
	})
}

// Transition is the staff-side status change (complete, expire). No money
// moves here.
func (b *bookingUseCaseImpl) Transition(ctx context.Context, id uuid.UUID, to booking.Status) error {
	entity, err := b.bookingRepo.FindEntityByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return err
	}

	if err := entity.Transition(to); err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidStatus):
			return ErrInvalidBookingStatus
		case errors.Is(err, booking.ErrNotActive):
			return ErrBookingNotActive
		default:
			return err
		}
	}

	return b.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		flipped, err := b.bookingRepo.UpdateStatus(ctx, tx, id, to)
		if err != nil {
			return err
		}
		if !flipped {
			return ErrBookingNotActive
		}
		return nil
	})
}

// VerifyOTP checks the code presented at the machine against the stored one
// inside the validity window.
func (b *bookingUseCaseImpl) VerifyOTP(ctx context.Context, id uuid.UUID, code string) error {
	if !otp.IsWellFormed(code) {
		return ErrInvalidOTP
	}

	entity, err := b.bookingRepo.FindEntityByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return err
	}

	if !entity.VerifyOTP(code, b.clock.Now()) {
		return ErrInvalidOTP
	}
	return nil
}

// OTPQRCode renders the booking code as a PNG so the user can scan it at the
// machine instead of typing. Owner only.
func (b *bookingUseCaseImpl) OTPQRCode(ctx context.Context, id, requesterID uuid.UUID, requesterRole user.Role) ([]byte, error) {
	entity, err := b.bookingRepo.FindEntityByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if entity.UserID() != requesterID && !requesterRole.AtLeast(user.RoleModerator) {
		return nil, ErrForbidden
	}
	if !entity.IsOTPValid(b.clock.Now()) {
		return nil, ErrInvalidOTP
	}

	png, err := qrcode.Encode(entity.OTP(), qrcode.Medium, 256)
	if err != nil {
		return nil, err
	}
	return png, nil
}
