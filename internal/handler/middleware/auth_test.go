//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"smartwash/internal/domain/user"
	"smartwash/internal/handler/middleware"
	"smartwash/tests/common/httptest"
	usecasemock "smartwash/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockAuthUseCase
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	mw := middleware.NewAuthMiddleware(s.mockUseCase)

	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	s.router.GET("/protected", mw.RequireAuth(), ok)
	s.router.GET("/staff", mw.RequireAuth(), mw.RequireRoleAtLeast(user.RoleModerator), ok)
	s.router.GET("/admin", mw.RequireAuth(), mw.RequireRoleAtLeast(user.RoleAdmin), ok)
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("valid token passes", func() {
		s.mockUseCase.EXPECT().ValidateToken("good").Return(uuid.New(), user.RoleUser, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/protected", nil, "good")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("missing header is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/protected", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("invalid token is rejected", func() {
		s.mockUseCase.EXPECT().ValidateToken("bad").Return(uuid.Nil, user.Role(""), errors.New("expired"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/protected", nil, "bad")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireRoleAtLeast() {
	cases := []struct {
		name       string
		path       string
		role       user.Role
		expectCode int
	}{
		{name: "moderator reaches staff routes", path: "/staff", role: user.RoleModerator, expectCode: http.StatusOK},
		{name: "admin reaches staff routes", path: "/staff", role: user.RoleAdmin, expectCode: http.StatusOK},
		{name: "user is kept out of staff routes", path: "/staff", role: user.RoleUser, expectCode: http.StatusForbidden},
		{name: "moderator is kept out of admin routes", path: "/admin", role: user.RoleModerator, expectCode: http.StatusForbidden},
		{name: "admin reaches admin routes", path: "/admin", role: user.RoleAdmin, expectCode: http.StatusOK},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockUseCase.EXPECT().ValidateToken("token").Return(uuid.New(), tc.role, nil)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.path, nil, "token")
			s.Equal(tc.expectCode, rec.Code)
		})
	}
}
