//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"smartwash/internal/domain/booking"
	"smartwash/internal/domain/user"
	"smartwash/internal/infra"
	"smartwash/internal/infra/db"
	"smartwash/internal/infra/repository"
	"smartwash/internal/pkg/clock"
	"smartwash/internal/pkg/config"
	"smartwash/internal/usecase"
	"smartwash/internal/usecase/readmodel"
	sharedmock "smartwash/tests/mock/shared"
	usecasemock "smartwash/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingUseCaseTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	uow          *sharedmock.MockUnitOfWork
	bookingRepo  *usecasemock.MockBookingRepository
	locationRepo *usecasemock.MockLocationRepository
	ledger       *usecasemock.MockLedgerRepository
	settings     *usecasemock.MockSettingsRepository
	clock        *clock.MockClock
	useCase      usecase.BookingUseCase

	now time.Time
}

func TestBookingUseCaseSuite(t *testing.T) {
	suite.Run(t, new(BookingUseCaseTestSuite))
}

func (s *BookingUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.bookingRepo = usecasemock.NewMockBookingRepository(s.ctrl)
	s.locationRepo = usecasemock.NewMockLocationRepository(s.ctrl)
	s.ledger = usecasemock.NewMockLedgerRepository(s.ctrl)
	s.settings = usecasemock.NewMockSettingsRepository(s.ctrl)
	s.now = time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	s.clock = clock.NewMockClock(s.now)

	s.useCase = usecase.NewBookingUseCase(
		s.uow,
		s.bookingRepo,
		s.locationRepo,
		s.ledger,
		s.settings,
		s.clock,
		config.NewTestConfig().Booking,
	)
}

func (s *BookingUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// expectTx makes the unit of work run the closure directly, without a real
// transaction.
func (s *BookingUseCaseTestSuite) expectTx() {
	s.uow.EXPECT().
		Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
			return fn(ctx, nil)
		})
}

func (s *BookingUseCaseTestSuite) activeLocation(id uuid.UUID) *readmodel.LocationRM {
	return &readmodel.LocationRM{ID: id, Name: "Hall 1 Rooftop", IsActive: true}
}

func (s *BookingUseCaseTestSuite) TestCreate_Success() {
	userID := uuid.New()
	locationID := uuid.New()
	start := s.now.Add(time.Hour)

	s.locationRepo.EXPECT().FindByID(gomock.Any(), locationID).Return(s.activeLocation(locationID), nil)
	s.settings.EXPECT().GetInt64(gomock.Any(), repository.SettingAdvanceDays, int64(7)).Return(int64(7))
	s.settings.EXPECT().GetInt64(gomock.Any(), repository.SettingWashingPrice, int64(50)).Return(int64(50))
	s.expectTx()
	s.ledger.EXPECT().Debit(gomock.Any(), gomock.Any(), userID, int64(50)).Return(true, nil)

	var createdID uuid.UUID
	s.bookingRepo.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ db.DBTX, b *booking.Booking) error {
			createdID = b.ID()
			s.Equal(userID, b.UserID())
			s.Equal(start.Add(90*time.Minute), b.Slot().End())
			s.Len(b.OTP(), 6)
			return nil
		})
	s.bookingRepo.EXPECT().
		FindByID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
			s.Equal(createdID, id)
			return &readmodel.BookingRM{
				ID:        id,
				UserID:    userID,
				StartTime: start,
				EndTime:   start.Add(90 * time.Minute),
				Amount:    50,
				Status:    "active",
			}, nil
		})

	rm, err := s.useCase.Create(context.Background(), userID, locationID, start)

	s.Require().NoError(err)
	s.Equal(int64(50), rm.Amount)
	s.False(rm.OTPValid, "code is not yet usable before the slot starts")
}

func (s *BookingUseCaseTestSuite) TestCreate_InsufficientBalance() {
	userID := uuid.New()
	locationID := uuid.New()

	s.locationRepo.EXPECT().FindByID(gomock.Any(), locationID).Return(s.activeLocation(locationID), nil)
	s.settings.EXPECT().GetInt64(gomock.Any(), repository.SettingAdvanceDays, int64(7)).Return(int64(7))
	s.settings.EXPECT().GetInt64(gomock.Any(), repository.SettingWashingPrice, int64(50)).Return(int64(50))
	s.expectTx()
	s.ledger.EXPECT().Debit(gomock.Any(), gomock.Any(), userID, int64(50)).Return(false, nil)

	_, err := s.useCase.Create(context.Background(), userID, locationID, s.now.Add(time.Hour))

	s.Require().ErrorIs(err, usecase.ErrInsufficientBalance)
}

func (s *BookingUseCaseTestSuite) TestCreate_InactiveLocation() {
	locationID := uuid.New()
	s.locationRepo.EXPECT().
		FindByID(gomock.Any(), locationID).
		Return(&readmodel.LocationRM{ID: locationID, IsActive: false}, nil)

	_, err := s.useCase.Create(context.Background(), uuid.New(), locationID, s.now.Add(time.Hour))

	s.Require().ErrorIs(err, usecase.ErrLocationUnavailable)
}

func (s *BookingUseCaseTestSuite) TestCreate_SlotInPast() {
	locationID := uuid.New()
	s.locationRepo.EXPECT().FindByID(gomock.Any(), locationID).Return(s.activeLocation(locationID), nil)
	s.settings.EXPECT().GetInt64(gomock.Any(), repository.SettingAdvanceDays, int64(7)).Return(int64(7))

	_, err := s.useCase.Create(context.Background(), uuid.New(), locationID, s.now.Add(-time.Minute))

	s.Require().ErrorIs(err, booking.ErrSlotInPast)
}

func (s *BookingUseCaseTestSuite) entity(userID uuid.UUID, start time.Time, status booking.Status) *booking.Booking {
	amount, err := booking.NewAmount(50)
	s.Require().NoError(err)
	return booking.ReconstructBooking(
		uuid.New(), userID, uuid.New(),
		booking.ReconstructTimeSlot(start, start.Add(90*time.Minute)),
		amount, "123456", status,
		s.now.Add(-time.Hour), s.now.Add(-time.Hour),
	)
}

func (s *BookingUseCaseTestSuite) TestCancel_RefundsInSameTransaction() {
	userID := uuid.New()
	entity := s.entity(userID, s.now.Add(5*time.Hour), booking.StatusActive)

	s.bookingRepo.EXPECT().FindEntityByID(gomock.Any(), entity.ID()).Return(entity, nil)
	s.expectTx()
	s.bookingRepo.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), entity.ID(), booking.StatusCancelled).
		Return(true, nil)
	s.ledger.EXPECT().Credit(gomock.Any(), gomock.Any(), userID, int64(50)).Return(nil)

	s.Require().NoError(s.useCase.Cancel(context.Background(), entity.ID(), userID))
}

func (s *BookingUseCaseTestSuite) TestCancel_TooLate() {
	userID := uuid.New()
	entity := s.entity(userID, s.now.Add(time.Hour), booking.StatusActive)

	s.bookingRepo.EXPECT().FindEntityByID(gomock.Any(), entity.ID()).Return(entity, nil)

	err := s.useCase.Cancel(context.Background(), entity.ID(), userID)

	s.Require().ErrorIs(err, usecase.ErrCancellationTooLate)
}

func (s *BookingUseCaseTestSuite) TestCancel_NotOwner() {
	entity := s.entity(uuid.New(), s.now.Add(5*time.Hour), booking.StatusActive)

	s.bookingRepo.EXPECT().FindEntityByID(gomock.Any(), entity.ID()).Return(entity, nil)

	err := s.useCase.Cancel(context.Background(), entity.ID(), uuid.New())

	s.Require().ErrorIs(err, usecase.ErrForbidden)
}

func (s *BookingUseCaseTestSuite) TestCancel_AlreadyCancelled() {
	userID := uuid.New()
	entity := s.entity(userID, s.now.Add(5*time.Hour), booking.StatusCancelled)

	s.bookingRepo.EXPECT().FindEntityByID(gomock.Any(), entity.ID()).Return(entity, nil)

	err := s.useCase.Cancel(context.Background(), entity.ID(), userID)

	s.Require().ErrorIs(err, usecase.ErrBookingNotActive)
}

func (s *BookingUseCaseTestSuite) TestCancel_NotFound() {
	id := uuid.New()
	s.bookingRepo.EXPECT().
		FindEntityByID(gomock.Any(), id).
		Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

	err := s.useCase.Cancel(context.Background(), id, uuid.New())

	s.Require().ErrorIs(err, usecase.ErrBookingNotFound)
}

func (s *BookingUseCaseTestSuite) TestVerifyOTP() {
	s.Run("valid code inside the window", func() {
		entity := s.entity(uuid.New(), s.now.Add(-30*time.Minute), booking.StatusActive)
		s.bookingRepo.EXPECT().FindEntityByID(gomock.Any(), entity.ID()).Return(entity, nil)

		s.Require().NoError(s.useCase.VerifyOTP(context.Background(), entity.ID(), "123456"))
	})

	s.Run("wrong code", func() {
		entity := s.entity(uuid.New(), s.now.Add(-30*time.Minute), booking.StatusActive)
		s.bookingRepo.EXPECT().FindEntityByID(gomock.Any(), entity.ID()).Return(entity, nil)

		err := s.useCase.VerifyOTP(context.Background(), entity.ID(), "654321")
		s.Require().ErrorIs(err, usecase.ErrInvalidOTP)
	})

	s.Run("window expired", func() {
		entity := s.entity(uuid.New(), s.now.Add(-61*time.Minute), booking.StatusActive)
		s.bookingRepo.EXPECT().FindEntityByID(gomock.Any(), entity.ID()).Return(entity, nil)

		err := s.useCase.VerifyOTP(context.Background(), entity.ID(), "123456")
		s.Require().ErrorIs(err, usecase.ErrInvalidOTP)
	})

	s.Run("malformed code never hits the repository", func() {
		err := s.useCase.VerifyOTP(context.Background(), uuid.New(), "12ab56")
		s.Require().ErrorIs(err, usecase.ErrInvalidOTP)
	})
}

func (s *BookingUseCaseTestSuite) TestTransition() {
	s.Run("complete an active booking", func() {
		entity := s.entity(uuid.New(), s.now.Add(-time.Hour), booking.StatusActive)
		s.bookingRepo.EXPECT().FindEntityByID(gomock.Any(), entity.ID()).Return(entity, nil)
		s.expectTx()
		s.bookingRepo.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), entity.ID(), booking.StatusCompleted).
			Return(true, nil)

		s.Require().NoError(s.useCase.Transition(context.Background(), entity.ID(), booking.StatusCompleted))
	})

	s.Run("terminal booking rejects further changes", func() {
		entity := s.entity(uuid.New(), s.now.Add(-time.Hour), booking.StatusCompleted)
		s.bookingRepo.EXPECT().FindEntityByID(gomock.Any(), entity.ID()).Return(entity, nil)

		err := s.useCase.Transition(context.Background(), entity.ID(), booking.StatusExpired)
		s.Require().ErrorIs(err, usecase.ErrBookingNotActive)
	})

	s.Run("active is not a transition target", func() {
		entity := s.entity(uuid.New(), s.now.Add(-time.Hour), booking.StatusActive)
		s.bookingRepo.EXPECT().FindEntityByID(gomock.Any(), entity.ID()).Return(entity, nil)

		err := s.useCase.Transition(context.Background(), entity.ID(), booking.StatusActive)
		s.Require().ErrorIs(err, usecase.ErrInvalidBookingStatus)
	})
}

func (s *BookingUseCaseTestSuite) TestGet_HiddenFromStrangers() {
	rm := &readmodel.BookingRM{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		StartTime: s.now.Add(time.Hour),
		EndTime:   s.now.Add(time.Hour + 90*time.Minute),
		Status:    "active",
	}

	s.Run("owner sees it", func() {
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), rm.ID).Return(rm, nil)
		got, err := s.useCase.Get(context.Background(), rm.ID, rm.UserID, user.RoleUser)
		s.Require().NoError(err)
		s.Equal(rm.ID, got.ID)
	})

	s.Run("moderator sees it", func() {
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), rm.ID).Return(rm, nil)
		_, err := s.useCase.Get(context.Background(), rm.ID, uuid.New(), user.RoleModerator)
		s.Require().NoError(err)
	})

	s.Run("another user does not", func() {
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), rm.ID).Return(rm, nil)
		_, err := s.useCase.Get(context.Background(), rm.ID, uuid.New(), user.RoleUser)
		s.Require().ErrorIs(err, usecase.ErrForbidden)
	})
}

func (s *BookingUseCaseTestSuite) TestList_InvalidStatusFilter() {
	status := "paused"
	_, err := s.useCase.List(context.Background(), &status)
	s.Require().ErrorIs(err, usecase.ErrInvalidBookingStatus)
}

func (s *BookingUseCaseTestSuite) TestOTPQRCode() {
	s.Run("owner gets a png inside the window", func() {
		userID := uuid.New()
		entity := s.entity(userID, s.now.Add(-10*time.Minute), booking.StatusActive)
		s.bookingRepo.EXPECT().FindEntityByID(gomock.Any(), entity.ID()).Return(entity, nil)

		png, err := s.useCase.OTPQRCode(context.Background(), entity.ID(), userID, user.RoleUser)
		s.Require().NoError(err)
		s.NotEmpty(png)
	})

	s.Run("expired window", func() {
		userID := uuid.New()
		entity := s.entity(userID, s.now.Add(-2*time.Hour), booking.StatusActive)
		s.bookingRepo.EXPECT().FindEntityByID(gomock.Any(), entity.ID()).Return(entity, nil)

		_, err := s.useCase.OTPQRCode(context.Background(), entity.ID(), userID, user.RoleUser)
		s.Require().ErrorIs(err, usecase.ErrInvalidOTP)
	})

	s.Run("stranger is refused", func() {
		entity := s.entity(uuid.New(), s.now.Add(-10*time.Minute), booking.StatusActive)
		s.bookingRepo.EXPECT().FindEntityByID(gomock.Any(), entity.ID()).Return(entity, nil)

		_, err := s.useCase.OTPQRCode(context.Background(), entity.ID(), uuid.New(), user.RoleUser)
		s.Require().ErrorIs(err, usecase.ErrForbidden)
	})
}
