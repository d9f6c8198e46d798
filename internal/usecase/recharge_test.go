//go:build unit

package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"smartwash/internal/domain/recharge"
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

type RechargeUseCaseTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	uow          *sharedmock.MockUnitOfWork
	rechargeRepo *usecasemock.MockRechargeRepository
	ledger       *usecasemock.MockLedgerRepository
	settings     *usecasemock.MockSettingsRepository
	screenshots  *usecasemock.MockScreenshotStore
	clock        *clock.MockClock
	useCase      usecase.RechargeUseCase

	now time.Time
}

func TestRechargeUseCaseSuite(t *testing.T) {
	suite.Run(t, new(RechargeUseCaseTestSuite))
}

func (s *RechargeUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.rechargeRepo = usecasemock.NewMockRechargeRepository(s.ctrl)
	s.ledger = usecasemock.NewMockLedgerRepository(s.ctrl)
	s.settings = usecasemock.NewMockSettingsRepository(s.ctrl)
	s.screenshots = usecasemock.NewMockScreenshotStore(s.ctrl)
	s.now = time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	s.clock = clock.NewMockClock(s.now)

	s.useCase = usecase.NewRechargeUseCase(
		s.uow,
		s.rechargeRepo,
		s.ledger,
		s.settings,
		s.screenshots,
		s.clock,
		config.NewTestConfig().Booking,
	)
}

func (s *RechargeUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RechargeUseCaseTestSuite) expectTx() {
	s.uow.EXPECT().
		Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
			return fn(ctx, nil)
		})
}

func (s *RechargeUseCaseTestSuite) pendingRM(id, userID uuid.UUID, amount int64) *readmodel.RechargeRM {
	return &readmodel.RechargeRM{
		ID:            id,
		UserID:        userID,
		UserName:      "Rahim Uddin",
		Amount:        amount,
		PaymentMethod: "bkash",
		Status:        "pending",
		CreatedAt:     s.now.Add(-time.Hour),
	}
}

func (s *RechargeUseCaseTestSuite) TestSubmit_Success() {
	userID := uuid.New()
	txID := "TXN8H2K1"

	s.settings.EXPECT().GetInt64(gomock.Any(), repository.SettingMinRecharge, int64(50)).Return(int64(50))

	var createdID uuid.UUID
	s.rechargeRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *recharge.Request) error {
			createdID = req.ID()
			s.Equal(userID, req.UserID())
			s.Equal(recharge.StatusPending, req.Status())
			return nil
		})
	s.rechargeRepo.EXPECT().
		FindByID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (*readmodel.RechargeRM, error) {
			s.Equal(createdID, id)
			return s.pendingRM(id, userID, 200), nil
		})

	rm, err := s.useCase.Submit(context.Background(), userID, usecase.SubmitRechargeInput{
		Amount:        200,
		Method:        "bkash",
		TransactionID: &txID,
	})

	s.Require().NoError(err)
	s.Equal("pending", rm.Status)
}

func (s *RechargeUseCaseTestSuite) TestSubmit_WithScreenshot() {
	userID := uuid.New()
	url := "http://localhost:8889/uploads/screenshots/abc.jpg"

	s.screenshots.EXPECT().SaveScreenshot(gomock.Any(), gomock.Any()).Return(url, nil)
	s.settings.EXPECT().GetInt64(gomock.Any(), repository.SettingMinRecharge, int64(50)).Return(int64(50))
	s.rechargeRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *recharge.Request) error {
			s.Require().NotNil(req.ScreenshotURL())
			s.Equal(url, *req.ScreenshotURL())
			return nil
		})
	s.rechargeRepo.EXPECT().
		FindByID(gomock.Any(), gomock.Any()).
		Return(s.pendingRM(uuid.New(), userID, 200), nil)

	_, err := s.useCase.Submit(context.Background(), userID, usecase.SubmitRechargeInput{
		Amount:     200,
		Method:     "nagad",
		Screenshot: strings.NewReader("fake image bytes"),
	})

	s.Require().NoError(err)
}

func (s *RechargeUseCaseTestSuite) TestSubmit_BelowMinimum() {
	s.settings.EXPECT().GetInt64(gomock.Any(), repository.SettingMinRecharge, int64(50)).Return(int64(50))

	_, err := s.useCase.Submit(context.Background(), uuid.New(), usecase.SubmitRechargeInput{
		Amount: 49,
		Method: "bkash",
	})

	s.Require().ErrorIs(err, recharge.ErrAmountTooSmall)
}

func (s *RechargeUseCaseTestSuite) TestSubmit_UnknownMethod() {
	_, err := s.useCase.Submit(context.Background(), uuid.New(), usecase.SubmitRechargeInput{
		Amount: 200,
		Method: "paypal",
	})

	s.Require().ErrorIs(err, recharge.ErrInvalidMethod)
}

func (s *RechargeUseCaseTestSuite) TestApprove_CreditsWalletOnce() {
	id := uuid.New()
	userID := uuid.New()
	adminID := uuid.New()
	note := "matched bKash statement"

	pending := s.pendingRM(id, userID, 200)
	approved := *pending
	approved.Status = "approved"
	approved.ApprovedBy = &adminID

	s.rechargeRepo.EXPECT().FindByID(gomock.Any(), id).Return(pending, nil)
	s.expectTx()
	s.rechargeRepo.EXPECT().
		Decide(gomock.Any(), gomock.Any(), id, recharge.StatusApproved, adminID, s.now, &note).
		Return(true, nil)
	s.ledger.EXPECT().Credit(gomock.Any(), gomock.Any(), userID, int64(200)).Return(nil)
	s.rechargeRepo.EXPECT().FindByID(gomock.Any(), id).Return(&approved, nil)

	rm, err := s.useCase.Approve(context.Background(), id, adminID, &note)

	s.Require().NoError(err)
	s.Equal("approved", rm.Status)
}

func (s *RechargeUseCaseTestSuite) TestApprove_RacedSecondApproval() {
	id := uuid.New()
	adminID := uuid.New()

	s.rechargeRepo.EXPECT().FindByID(gomock.Any(), id).Return(s.pendingRM(id, uuid.New(), 200), nil)
	s.expectTx()
	s.rechargeRepo.EXPECT().
		Decide(gomock.Any(), gomock.Any(), id, recharge.StatusApproved, adminID, s.now, nil).
		Return(false, nil)

	_, err := s.useCase.Approve(context.Background(), id, adminID, nil)

	// no Credit expectation: the raced approval must not touch the wallet
	s.Require().ErrorIs(err, usecase.ErrRechargeAlreadyDecided)
}

func (s *RechargeUseCaseTestSuite) TestReject_NoLedgerEffect() {
	id := uuid.New()
	adminID := uuid.New()
	userID := uuid.New()

	pending := s.pendingRM(id, userID, 200)
	rejected := *pending
	rejected.Status = "rejected"

	s.rechargeRepo.EXPECT().FindByID(gomock.Any(), id).Return(pending, nil)
	s.expectTx()
	s.rechargeRepo.EXPECT().
		Decide(gomock.Any(), gomock.Any(), id, recharge.StatusRejected, adminID, s.now, nil).
		Return(true, nil)
	s.rechargeRepo.EXPECT().FindByID(gomock.Any(), id).Return(&rejected, nil)

	rm, err := s.useCase.Reject(context.Background(), id, adminID, nil)

	s.Require().NoError(err)
	s.Equal("rejected", rm.Status)
}

func (s *RechargeUseCaseTestSuite) TestApprove_NotFound() {
	id := uuid.New()
	s.rechargeRepo.EXPECT().
		FindByID(gomock.Any(), id).
		Return(nil, infra.WrapRepoErr("recharge request not found", nil, infra.KindNotFound))

	_, err := s.useCase.Approve(context.Background(), id, uuid.New(), nil)

	s.Require().ErrorIs(err, usecase.ErrRechargeNotFound)
}

func (s *RechargeUseCaseTestSuite) TestList_InvalidStatusFilter() {
	status := "cancelled"
	_, err := s.useCase.List(context.Background(), &status)
	s.Require().ErrorIs(err, usecase.ErrInvalidRechargeStatus)
}

func (s *RechargeUseCaseTestSuite) TestBalance() {
	s.Run("returns the ledger balance", func() {
		userID := uuid.New()
		s.ledger.EXPECT().Balance(gomock.Any(), userID).Return(int64(350), nil)

		balance, err := s.useCase.Balance(context.Background(), userID)
		s.Require().NoError(err)
		s.Equal(int64(350), balance)
	})

	s.Run("unknown user", func() {
		userID := uuid.New()
		s.ledger.EXPECT().
			Balance(gomock.Any(), userID).
			Return(int64(0), infra.WrapRepoErr("profile not found", nil, infra.KindNotFound))

		_, err := s.useCase.Balance(context.Background(), userID)
		s.Require().ErrorIs(err, usecase.ErrUserNotFound)
	})
}
