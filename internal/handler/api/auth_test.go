//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"smartwash/internal/handler/api"
	reqdto "smartwash/internal/handler/dto/request"
	resdto "smartwash/internal/handler/dto/response"
	"smartwash/internal/usecase"
	"smartwash/internal/usecase/readmodel"
	"smartwash/tests/common/httptest"
	usecasemock "smartwash/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockAuthUseCase
	handler     *api.AuthHandler

	userID uuid.UUID
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockUseCase)
	s.userID = uuid.New()

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/refresh", s.handler.Refresh)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// stand-in for the auth middleware
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	reqBody := reqdto.RegisterRequest{
		Email:    "rahim@example.com",
		Password: "password123",
		FullName: "Rahim Uddin",
	}

	s.Run("success: returns 201 with the new profile", func() {
		s.mockUseCase.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(&readmodel.ProfileRM{UserID: s.userID, FullName: "Rahim Uddin", Role: "user"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.ProfileResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("Rahim Uddin", response.FullName)
		s.Equal(int64(0), response.Balance)
	})

	s.Run("error: 409 when the email is taken", func() {
		s.mockUseCase.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrEmailTaken)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Email already registered")
	})

	s.Run("error: 400 on missing required fields", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"email": "rahim@example.com",
		}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := reqdto.LoginRequest{Email: "rahim@example.com", Password: "password123"}
	returnUser := &readmodel.AuthorizedUserRM{ID: s.userID, Email: "rahim@example.com", Role: "user", IsActive: true}

	s.Run("success: returns tokens and the user", func() {
		s.mockUseCase.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(&usecase.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, returnUser, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("access", response.AccessToken)
		s.Equal(returnUser.Email, response.User.Email)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			useCaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid credentials",
				useCaseError:   usecase.ErrInvalidCredentials,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid email or password",
			},
			{
				name:           "user not found",
				useCaseError:   usecase.ErrUserNotFound,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid email or password",
			},
			{
				name:           "user inactive",
				useCaseError:   usecase.ErrUserInactive,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Account is inactive",
			},
			{
				name:           "internal server error",
				useCaseError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockUseCase.EXPECT().
					Login(gomock.Any(), gomock.Any()).
					Return(nil, nil, tc.useCaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 400 on malformed credentials", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.LoginRequest{
			Email:    "not-an-email",
			Password: "password123",
		}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request data")
	})
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	url := "/auth/refresh"

	s.Run("success: returns a new pair", func() {
		s.mockUseCase.EXPECT().
			RefreshToken(gomock.Any(), "old-refresh").
			Return(&usecase.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.RefreshRequest{RefreshToken: "old-refresh"}, "")

		var response resdto.TokenResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("new-access", response.AccessToken)
	})

	s.Run("error: 401 for an invalid token", func() {
		s.mockUseCase.EXPECT().
			RefreshToken(gomock.Any(), "garbage").
			Return(nil, usecase.ErrTokenValidation)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.RefreshRequest{RefreshToken: "garbage"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired refresh token")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: returns 204 No Content", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns current user info", func() {
		s.mockUseCase.EXPECT().
			GetCurrentUser(gomock.Any(), s.userID).
			Return(&readmodel.AuthorizedUserRM{ID: s.userID, Email: "rahim@example.com", Role: "user", IsActive: true}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("rahim@example.com", response["email"])
	})

	s.Run("error: 401 when user_id missing in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not authenticated")
	})

	s.Run("error: 404 when the account vanished", func() {
		s.mockUseCase.EXPECT().
			GetCurrentUser(gomock.Any(), s.userID).
			Return(nil, usecase.ErrUserNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}
