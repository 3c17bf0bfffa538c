//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"marina-ops/internal/domain/user"
	"marina-ops/internal/handler/dto/request"
	"marina-ops/internal/handler/dto/response"
	"marina-ops/tests/common/dbtest"
	"marina-ops/tests/common/helper"
	"marina-ops/tests/e2e"
	jwtHelper "marina-ops/tests/e2e/common/helper"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *jwtHelper.JWTTestHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = jwtHelper.NewJWTTestHelper(s.DB, s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "manager@example.com", string(user.RoleManager))
	dbtest.CreateTestUser(s.T(), s.DB, "inspector@example.com", string(user.RoleInspector))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleManager))

	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE profiles SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "valid credentials",
			email:          "manager@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown user",
			email:          "nonexistent@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong password",
			email:          "manager@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "inactive user",
			email:          "inactive@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "empty email",
			email:          "",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty password",
			email:          "manager@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}

			w := helper.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var loginRes response.LoginResponse
				err := helper.DecodeResponseBody(t, w.Body, &loginRes)
				require.NoError(t, err)
				require.NotEmpty(t, loginRes.AccessToken, "access token missing")
				require.NotNil(t, loginRes.User, "user view missing")
				require.Equal(t, tt.email, loginRes.User.Email)

				var lastLogin any
				err = s.DB.QueryRow(s.T().Context(), "SELECT last_login FROM profiles WHERE email = $1", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_login not updated")
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	tests := []struct {
		name              string
		setupRefreshToken func() string
		expectedStatus    int
	}{
		{
			name: "valid refresh token",
			setupRefreshToken: func() string {
				w := helper.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
					request.LoginRequest{Email: "manager@example.com", Password: dbtest.TestPassword}, "")
				require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
				for _, c := range w.Result().Cookies() {
					if c.Name == "refresh_token" {
						return c.Value
					}
				}
				return ""
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "garbage refresh token",
			setupRefreshToken: func() string {
				return "invalid-refresh-token"
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "missing refresh token",
			setupRefreshToken: func() string {
				return ""
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			refreshToken := tt.setupRefreshToken()
			var body any
			if refreshToken != "" {
				body = request.RefreshRequest{RefreshToken: refreshToken}
			}

			w := helper.PerformRequest(t, s.Router, http.MethodPost, refreshURL, body, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var refreshRes response.TokenResponse
				err := helper.DecodeResponseBody(t, w.Body, &refreshRes)
				require.NoError(t, err)
				require.NotEmpty(t, refreshRes.AccessToken, "new access token missing")
			}
		})
	}
}

func (s *authSuite) TestMe() {
	tests := []struct {
		name           string
		setupUser      func() (string, string, string) // email, role, token
		expectedStatus int
	}{
		{
			name: "manager profile",
			setupUser: func() (string, string, string) {
				email := "manager@example.com"
				role := string(user.RoleManager)
				token := s.jwtHelper.LoginUser(s.T(), s.Router, email, dbtest.TestPassword)
				return email, role, token
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "inspector profile",
			setupUser: func() (string, string, string) {
				email := "inspector@example.com"
				role := string(user.RoleInspector)
				token := s.jwtHelper.LoginUser(s.T(), s.Router, email, dbtest.TestPassword)
				return email, role, token
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "garbage token",
			setupUser: func() (string, string, string) {
				return "", "", "invalid-token"
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "no token",
			setupUser: func() (string, string, string) {
				return "", "", ""
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			email, role, token := tt.setupUser()
			w := helper.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				responseBody := w.Body.String()
				require.Contains(t, responseBody, email)
				require.Contains(t, responseBody, role)
				require.NotContains(t, responseBody, "password")
			}
		})
	}
}

func (s *authSuite) TestLogout() {
	s.Run("logout clears the session", func() {
		t := s.T()

		token := s.jwtHelper.LoginUser(t, s.Router, "manager@example.com", dbtest.TestPassword)
		w := helper.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)
	})

	s.Run("logout requires authentication", func() {
		t := s.T()

		w := helper.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("expired token is rejected", func() {
		t := s.T()

		userID := s.jwtHelper.CreateTestUser(t, "expiry@example.com", string(user.RoleManager))
		expiredToken := s.jwtHelper.CreateExpiredToken(t, userID, user.RoleManager)

		w := helper.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expiredToken)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestConcurrentLogin() {
	s.Run("two sessions for the same user", func() {
		t := s.T()

		token1 := s.jwtHelper.LoginUser(t, s.Router, "manager@example.com", dbtest.TestPassword)
		token2 := s.jwtHelper.LoginUser(t, s.Router, "manager@example.com", dbtest.TestPassword)

		w1 := helper.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token1)
		w2 := helper.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token2)

		require.Equal(t, http.StatusOK, w1.Code)
		require.Equal(t, http.StatusOK, w2.Code)
	})
}
