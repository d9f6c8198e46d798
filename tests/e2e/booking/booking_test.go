//go:build e2e

package booking_test

import (
	"net/http"
	"net/url"
	"strconv"
	"testing"
	"time"

	"smartwash/internal/domain/user"
	reqdto "smartwash/internal/handler/dto/request"
	resdto "smartwash/internal/handler/dto/response"
	"smartwash/tests/common/dbtest"
	"smartwash/tests/common/httptest"
	"smartwash/tests/e2e"
	"smartwash/tests/e2e/common/helper"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL  = "/api/bookings"
	balanceURL   = "/api/wallet/balance"
	rechargesURL = "/api/wallet/recharges"
)

type bookingSuite struct {
	e2e.SharedSuite
	tokens *helper.TokenHelper

	memberID    uuid.UUID
	neighborID  uuid.UUID
	moderatorID uuid.UUID
	adminID     uuid.UUID

	memberToken    string
	neighborToken  string
	moderatorToken string
	adminToken     string
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.tokens = helper.NewTokenHelper(s.Config.JWT)
}

func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	t := s.T()

	var err error
	s.memberID, err = dbtest.CreateUser(s.DB, "member@example.com", "password123", "Karim Ahmed", "user")
	require.NoError(t, err)
	s.neighborID, err = dbtest.CreateUser(s.DB, "neighbor@example.com", "password123", "Fatima Begum", "user")
	require.NoError(t, err)
	s.moderatorID, err = dbtest.CreateUser(s.DB, "moderator@example.com", "password123", "Hall Moderator", "moderator")
	require.NoError(t, err)
	s.adminID, err = dbtest.CreateUser(s.DB, "admin@example.com", "password123", "Hall Admin", "admin")
	require.NoError(t, err)

	s.memberToken = s.tokens.AccessToken(t, s.memberID, user.RoleUser)
	s.neighborToken = s.tokens.AccessToken(t, s.neighborID, user.RoleUser)
	s.moderatorToken = s.tokens.AccessToken(t, s.moderatorID, user.RoleModerator)
	s.adminToken = s.tokens.AccessToken(t, s.adminID, user.RoleAdmin)
}

func (s *bookingSuite) createBooking(start time.Time, token string) resdto.BookingResponse {
	s.T().Helper()

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, reqdto.CreateBookingRequest{
		LocationID: dbtest.DefaultLocationID,
		StartTime:  start,
	}, token)

	var booking resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &booking)
	return booking
}

func (s *bookingSuite) TestBookingLifecycle() {
	s.Run("booking debits the wallet and issues an OTP", func() {
		t := s.T()
		require.NoError(t, dbtest.TopUp(s.DB, s.memberID, 200))

		start := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
		booking := s.createBooking(start, s.memberToken)

		require.Equal(t, int64(50), booking.Amount)
		require.Len(t, booking.OTP, 6)
		require.Equal(t, "active", booking.Status)
		require.True(t, booking.EndTime.Equal(booking.StartTime.Add(90*time.Minute)))

		balance, err := dbtest.Balance(s.DB, s.memberID)
		require.NoError(t, err)
		require.Equal(t, int64(150), balance)

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, balanceURL, nil, s.memberToken)
		var wallet resdto.BalanceResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &wallet)
		require.Equal(t, int64(150), wallet.Balance)

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+booking.ID.String(), nil, s.memberToken)
		var fetched resdto.BookingResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &fetched)

		expected := &resdto.BookingResponse{
			UserID:       s.memberID,
			UserName:     "Karim Ahmed",
			LocationID:   dbtest.DefaultLocationID,
			LocationName: "Hall 1 Rooftop",
			Amount:       50,
			OTP:          booking.OTP,
			Status:       "active",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(resdto.BookingResponse{}, "ID", "StartTime", "EndTime", "OTPValid", "CreatedAt"),
		}
		if diff := cmp.Diff(expected, &fetched, opts...); diff != "" {
			t.Errorf("Booking response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("booking fails when the wallet cannot cover the slot", func() {
		t := s.T()

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqdto.CreateBookingRequest{
			LocationID: dbtest.DefaultLocationID,
			StartTime:  time.Now().Add(24 * time.Hour).UTC(),
		}, s.memberToken)
		httptest.AssertErrorResponse(t, rec, http.StatusPaymentRequired, "Insufficient balance")

		balance, err := dbtest.Balance(s.DB, s.memberID)
		require.NoError(t, err)
		require.Equal(t, int64(0), balance, "a failed booking must not touch the wallet")
	})

	s.Run("cancelling before the cutoff refunds the slot price", func() {
		t := s.T()
		require.NoError(t, dbtest.TopUp(s.DB, s.memberID, 100))

		booking := s.createBooking(time.Now().Add(24*time.Hour).UTC(), s.memberToken)

		rec := httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingsURL+"/"+booking.ID.String(), nil, s.memberToken)
		require.Equal(t, http.StatusNoContent, rec.Code)

		balance, err := dbtest.Balance(s.DB, s.memberID)
		require.NoError(t, err)
		require.Equal(t, int64(100), balance)

		var status string
		err = s.DB.QueryRow(t.Context(),
			"SELECT status FROM bookings WHERE id = $1", booking.ID).Scan(&status)
		require.NoError(t, err)
		require.Equal(t, "cancelled", status)
	})

	s.Run("cancelling inside the cutoff is refused", func() {
		t := s.T()
		require.NoError(t, dbtest.TopUp(s.DB, s.memberID, 100))

		booking := s.createBooking(time.Now().Add(time.Hour).UTC(), s.memberToken)

		rec := httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingsURL+"/"+booking.ID.String(), nil, s.memberToken)
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Cancellation cutoff has passed")

		balance, err := dbtest.Balance(s.DB, s.memberID)
		require.NoError(t, err)
		require.Equal(t, int64(50), balance, "a refused cancellation must not refund")
	})

	s.Run("bookings are hidden from other members", func() {
		t := s.T()
		require.NoError(t, dbtest.TopUp(s.DB, s.memberID, 100))

		booking := s.createBooking(time.Now().Add(24*time.Hour).UTC(), s.memberToken)
		bookingURL := bookingsURL + "/" + booking.ID.String()

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingURL, nil, s.neighborToken)
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Not your booking")

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingURL, nil, s.moderatorToken)
		require.Equal(t, http.StatusOK, rec.Code, "staff can inspect any booking")
	})
}

func (s *bookingSuite) TestOTPVerification() {
	// Creation requires a future start, so tests shift the slot into the
	// OTP validity window directly in the database.
	shiftIntoWindow := func(id uuid.UUID) {
		_, err := s.DB.Exec(s.T().Context(), `
			UPDATE bookings
			SET start_time = now() - interval '5 minutes',
			    end_time = now() + interval '85 minutes'
			WHERE id = $1`, id)
		require.NoError(s.T(), err)
	}

	s.Run("moderator verifies a valid code at the machine", func() {
		t := s.T()
		require.NoError(t, dbtest.TopUp(s.DB, s.memberID, 100))

		booking := s.createBooking(time.Now().Add(3*time.Hour).UTC(), s.memberToken)
		shiftIntoWindow(booking.ID)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost,
			bookingsURL+"/"+booking.ID.String()+"/verify",
			reqdto.VerifyOTPRequest{Code: booking.OTP}, s.moderatorToken)
		require.Equal(t, http.StatusNoContent, rec.Code)
	})

	s.Run("wrong code is rejected", func() {
		t := s.T()
		require.NoError(t, dbtest.TopUp(s.DB, s.memberID, 100))

		booking := s.createBooking(time.Now().Add(3*time.Hour).UTC(), s.memberToken)
		shiftIntoWindow(booking.ID)

		wrongCode := "000000"
		if booking.OTP == wrongCode {
			wrongCode = "999999"
		}
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost,
			bookingsURL+"/"+booking.ID.String()+"/verify",
			reqdto.VerifyOTPRequest{Code: wrongCode}, s.moderatorToken)
		httptest.AssertErrorResponse(t, rec, http.StatusUnprocessableEntity, "Invalid or expired OTP")
	})

	s.Run("code outside the validity window is rejected", func() {
		t := s.T()
		require.NoError(t, dbtest.TopUp(s.DB, s.memberID, 100))

		booking := s.createBooking(time.Now().Add(3*time.Hour).UTC(), s.memberToken)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost,
			bookingsURL+"/"+booking.ID.String()+"/verify",
			reqdto.VerifyOTPRequest{Code: booking.OTP}, s.moderatorToken)
		httptest.AssertErrorResponse(t, rec, http.StatusUnprocessableEntity, "Invalid or expired OTP")
	})

	s.Run("regular members cannot verify codes", func() {
		t := s.T()
		require.NoError(t, dbtest.TopUp(s.DB, s.memberID, 100))

		booking := s.createBooking(time.Now().Add(3*time.Hour).UTC(), s.memberToken)
		shiftIntoWindow(booking.ID)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost,
			bookingsURL+"/"+booking.ID.String()+"/verify",
			reqdto.VerifyOTPRequest{Code: booking.OTP}, s.memberToken)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func (s *bookingSuite) submitRecharge(amount int64, method, token string) resdto.RechargeResponse {
	s.T().Helper()

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("method", method)

	rec := httptest.PerformFormRequest(s.T(), s.Router, http.MethodPost, rechargesURL, form, token)

	var recharge resdto.RechargeResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &recharge)
	return recharge
}

func (s *bookingSuite) TestRechargeApproval() {
	s.Run("approved recharge credits the wallet exactly once", func() {
		t := s.T()

		recharge := s.submitRecharge(200, "bkash", s.memberToken)
		require.Equal(t, "pending", recharge.Status)

		approveURL := "/api/admin/recharges/" + recharge.ID.String() + "/approve"
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, approveURL,
			reqdto.DecideRechargeRequest{}, s.adminToken)
		var decided resdto.RechargeResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &decided)
		require.Equal(t, "approved", decided.Status)
		require.NotNil(t, decided.ApprovedBy)
		require.Equal(t, s.adminID, *decided.ApprovedBy)

		balance, err := dbtest.Balance(s.DB, s.memberID)
		require.NoError(t, err)
		require.Equal(t, int64(200), balance)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, approveURL,
			reqdto.DecideRechargeRequest{}, s.adminToken)
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Recharge request already decided")

		balance, err = dbtest.Balance(s.DB, s.memberID)
		require.NoError(t, err)
		require.Equal(t, int64(200), balance, "a repeated approval must not credit again")
	})

	s.Run("rejected recharge leaves the wallet untouched", func() {
		t := s.T()

		recharge := s.submitRecharge(500, "nagad", s.memberToken)

		note := "Transaction not found in the bKash statement"
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost,
			"/api/admin/recharges/"+recharge.ID.String()+"/reject",
			reqdto.DecideRechargeRequest{Note: &note}, s.adminToken)
		var decided resdto.RechargeResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &decided)
		require.Equal(t, "rejected", decided.Status)
		require.NotNil(t, decided.AdminNote)

		balance, err := dbtest.Balance(s.DB, s.memberID)
		require.NoError(t, err)
		require.Equal(t, int64(0), balance)
	})

	s.Run("recharge below the minimum is refused", func() {
		t := s.T()

		form := url.Values{}
		form.Set("amount", "20")
		form.Set("method", "bkash")
		rec := httptest.PerformFormRequest(t, s.Router, http.MethodPost, rechargesURL, form, s.memberToken)
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Amount below minimum recharge")
	})

	s.Run("moderator cannot decide recharges", func() {
		t := s.T()

		recharge := s.submitRecharge(200, "rocket", s.memberToken)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost,
			"/api/admin/recharges/"+recharge.ID.String()+"/approve",
			reqdto.DecideRechargeRequest{}, s.moderatorToken)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}
