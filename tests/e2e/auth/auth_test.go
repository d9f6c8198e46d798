//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"smartwash/internal/domain/user"
	reqdto "smartwash/internal/handler/dto/request"
	resdto "smartwash/internal/handler/dto/response"
	"smartwash/tests/common/dbtest"
	"smartwash/tests/common/httptest"
	"smartwash/tests/e2e"
	"smartwash/tests/e2e/common/helper"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	refreshURL  = "/api/auth/refresh"
	logoutURL   = "/api/auth/logout"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	tokens *helper.TokenHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.tokens = helper.NewTokenHelper(s.Config.JWT)
}

// The register and login endpoints sit behind a rate limiter, so this suite
// keeps its calls to them sparse and mints JWTs directly everywhere else.
func (s *authSuite) TestRegisterAndLogin() {
	s.Run("full signup flow", func() {
		t := s.T()

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqdto.RegisterRequest{
			Email:    "rahim@example.com",
			Password: "password123",
			FullName: "Rahim Uddin",
		}, "")
		var profile resdto.ProfileResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &profile)
		require.Equal(t, "Rahim Uddin", profile.FullName)
		require.Equal(t, int64(0), profile.Balance)
		require.Equal(t, "user", profile.Role)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqdto.RegisterRequest{
			Email:    "rahim@example.com",
			Password: "password456",
			FullName: "Someone Else",
		}, "")
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Email already registered")

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqdto.LoginRequest{
			Email:    "rahim@example.com",
			Password: "password123",
		}, "")
		var login resdto.LoginResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &login)
		require.NotEmpty(t, login.AccessToken)
		require.NotEmpty(t, login.RefreshToken)
		require.Equal(t, "rahim@example.com", login.User.Email)

		var lastLogin any
		err := s.DB.QueryRow(t.Context(),
			"SELECT last_login FROM users WHERE email = 'rahim@example.com'").Scan(&lastLogin)
		require.NoError(t, err)
		require.NotNil(t, lastLogin, "last_login was not stamped")

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, login.AccessToken)
		var me map[string]any
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &me)
		require.Equal(t, "rahim@example.com", me["email"])

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqdto.LoginRequest{
			Email:    "rahim@example.com",
			Password: "wrongpassword",
		}, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid email or password")
	})
}

func (s *authSuite) TestInactiveAccount() {
	s.Run("deactivated account cannot log in", func() {
		t := s.T()

		_, err := dbtest.CreateUser(s.DB, "inactive@example.com", "password123", "Inactive User", "user")
		require.NoError(t, err)
		_, err = s.DB.Exec(t.Context(),
			"UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqdto.LoginRequest{
			Email:    "inactive@example.com",
			Password: "password123",
		}, "")
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Account is inactive")
	})
}

func (s *authSuite) TestRefresh() {
	s.Run("valid refresh token rotates the pair", func() {
		t := s.T()

		userID, err := dbtest.CreateUser(s.DB, "refresh@example.com", "password123", "Refresh User", "user")
		require.NoError(t, err)
		refreshToken := s.tokens.RefreshToken(t, userID, user.RoleUser)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			reqdto.RefreshRequest{RefreshToken: refreshToken}, "")
		var pair resdto.TokenResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &pair)
		require.NotEmpty(t, pair.AccessToken)
		require.NotEmpty(t, pair.RefreshToken)
	})

	s.Run("access token is not accepted as a refresh token", func() {
		t := s.T()

		userID, err := dbtest.CreateUser(s.DB, "refresh2@example.com", "password123", "Refresh User", "user")
		require.NoError(t, err)
		accessToken := s.tokens.AccessToken(t, userID, user.RoleUser)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			reqdto.RefreshRequest{RefreshToken: accessToken}, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired refresh token")
	})

	s.Run("empty refresh token is rejected", func() {
		t := s.T()

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			reqdto.RefreshRequest{RefreshToken: ""}, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("expired access token is rejected", func() {
		t := s.T()

		userID, err := dbtest.CreateUser(s.DB, "expired@example.com", "password123", "Expired User", "user")
		require.NoError(t, err)
		expired := s.tokens.ExpiredAccessToken(t, userID, user.RoleUser)

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expired)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *authSuite) TestAuthenticationRequired() {
	s.Run("protected endpoints reject anonymous requests", func() {
		t := s.T()

		endpoints := []struct {
			method string
			path   string
		}{
			{http.MethodGet, meURL},
			{http.MethodPost, logoutURL},
		}
		for _, endpoint := range endpoints {
			rec := httptest.PerformRequest(t, s.Router, endpoint.method, endpoint.path, nil, "")
			require.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s should require a token", endpoint.method, endpoint.path)
		}
	})

	s.Run("logout with a minted token succeeds", func() {
		t := s.T()

		userID, err := dbtest.CreateUser(s.DB, "logout@example.com", "password123", "Logout User", "user")
		require.NoError(t, err)
		token := s.tokens.AccessToken(t, userID, user.RoleUser)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, rec.Code)
	})
}
