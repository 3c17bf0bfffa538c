//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"marina-ops/internal/handler/api"
	resdto "marina-ops/internal/handler/dto/response"
	"marina-ops/internal/pkg/config"
	"marina-ops/internal/pkg/jwt"
	"marina-ops/internal/usecase/commands"
	"marina-ops/internal/usecase/queries"
	"marina-ops/tests/common/builder"
	"marina-ops/tests/common/helper"
	"marina-ops/tests/common/testutil"
	commandsmock "marina-ops/tests/mock/commands"
	queriesmock "marina-ops/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	jwtService := jwt.NewService("test-secret", 15*time.Minute, 24*time.Hour)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, jwtService, config.NewTestConfig().Cookie)

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			c.Set("user_id", uuid.New())
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	reqBody := builder.NewAuthBuilder().BuildDTO()
	returnUser := builder.NewUserBuilder().BuildReadModel()

	s.Run("success", func() {
		result := &commands.LoginResult{
			UserID: returnUser.ID,
			TokenPair: &commands.TokenPair{
				AccessToken:  "test-access-token",
				RefreshToken: "test-refresh-token",
			},
		}
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).Return(result, nil)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), returnUser.ID).Return(returnUser, nil)

		w := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var resp resdto.LoginResponse
		helper.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("test-access-token", resp.AccessToken)
		s.Equal(returnUser.Email, resp.User.Email)
	})

	s.Run("invalid credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).Return(nil, commands.ErrInvalidCredentials)

		w := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		helper.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("inactive account", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).Return(nil, commands.ErrUserInactive)

		w := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		helper.AssertErrorResponse(s.T(), w, http.StatusForbidden, "inactive")
	})

	s.Run("malformed email", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("email", "not-an-email"))

		w := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		helper.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("missing password", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("password", nil))

		w := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		helper.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success", func() {
		returnUser := builder.NewUserBuilder().BuildReadModel()
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).Return(returnUser, nil)

		w := helper.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "some-token")

		var resp queries.AuthorizedUserView
		helper.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(returnUser.Email, resp.Email)
	})

	s.Run("unauthenticated", func() {
		w := helper.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		helper.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "not authenticated")
	})

	s.Run("user not found", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).Return(nil, queries.ErrUserNotFound)

		w := helper.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "some-token")

		helper.AssertErrorResponse(s.T(), w, http.StatusNotFound, "User not found")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	w := helper.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "some-token")
	s.Equal(http.StatusNoContent, w.Code)
}
