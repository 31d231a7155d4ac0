//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"delivery-admin/internal/domain/activesession"
	"delivery-admin/internal/handler/api"
	"delivery-admin/internal/handler/middleware"
	"delivery-admin/internal/pkg/config"
	"delivery-admin/internal/pkg/cookie"
	"delivery-admin/internal/usecase/commands"
	"delivery-admin/internal/usecase/queries"
	"delivery-admin/tests/common/builder"
	"delivery-admin/tests/common/httptest"
	commandsmock "delivery-admin/tests/mock/commands"
	queriesmock "delivery-admin/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SessionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSessionCommands
	mockQueries  *queriesmock.MockSessionQueries
	handler      *api.SessionHandler
}

func (s *SessionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSessionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSessionQueries(s.mockCtrl)
	s.handler = api.NewSessionHandler(s.mockCommands, s.mockQueries, config.Config{
		Cookie: config.CookieConfig{SameSite: "Lax"},
	})
	sessionMw := middleware.NewSessionMiddleware(s.mockCommands)

	s.router.GET("/active-sessions", s.handler.ListActive)
	s.router.POST("/active-sessions", s.handler.Login)
	s.router.GET("/active-sessions/me", sessionMw.RequireSession(), s.handler.Me)
	s.router.GET("/active-sessions/:id", s.handler.Validate)
	s.router.DELETE("/active-sessions/:id", s.handler.Logout)
}

func (s *SessionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SessionHandlerTestSuite))
}

func (s *SessionHandlerTestSuite) sessionCustomer() *queries.SessionCustomer {
	return &queries.SessionCustomer{ID: 1, FullName: "Ana Pérez", Email: "ana@example.com", Type: "BUYER"}
}

func (s *SessionHandlerTestSuite) liveResult(token string) *queries.SessionResult {
	return builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) {
		b.StartedAt = time.Now().Add(-time.Minute)
	}).BuildResult(s.sessionCustomer(), token)
}

// ================================================================================
// TestLogin
// ================================================================================

func (s *SessionHandlerTestSuite) TestLogin() {
	s.Run("success: 201 Created sets the session cookie", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), int64(1)).Return(s.liveResult("signed"), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/active-sessions", map[string]any{"customerId": 1}, "")

		var body struct {
			ID       int64  `json:"id"`
			Active   bool   `json:"active"`
			Token    string `json:"token"`
			Customer struct {
				FullName string `json:"fullName"`
			} `json:"customer"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(int64(42), body.ID)
		s.True(body.Active)
		s.Equal("signed", body.Token)
		s.Equal("Ana Pérez", body.Customer.FullName)

		c := httptest.AssertSessionCookieSet(s.T(), rec)
		s.Equal("signed", c.Value)
	})

	s.Run("error: 409 Conflict while another session is live", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), int64(1)).Return(nil, activesession.ErrAlreadyActive).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/active-sessions", map[string]any{"customerId": 1}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, activesession.ErrAlreadyActive.Error())
		s.Nil(httptest.SessionCookie(rec))
	})

	s.Run("error: 404 Not Found for an unknown customer", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), int64(9)).Return(nil, commands.ErrCustomerNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/active-sessions", map[string]any{"customerId": 9}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, commands.ErrCustomerNotFound.Error())
	})

	s.Run("error: 400 Bad Request without customerId", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/active-sessions", map[string]any{}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid request")
	})
}

// ================================================================================
// TestValidate / TestLogout
// ================================================================================

func (s *SessionHandlerTestSuite) TestValidate() {
	s.Run("success: 200 OK for a live session", func() {
		s.mockCommands.EXPECT().Validate(gomock.Any(), int64(42)).Return(s.liveResult(""), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/active-sessions/42", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.NotContains(rec.Body.String(), `"token"`)
	})

	s.Run("error: 404 Not Found once expired", func() {
		s.mockCommands.EXPECT().Validate(gomock.Any(), int64(42)).Return(nil, commands.ErrSessionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/active-sessions/42", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, commands.ErrSessionNotFound.Error())
	})
}

func (s *SessionHandlerTestSuite) TestLogout() {
	s.Run("success: 204 No Content clears the cookie", func() {
		s.mockCommands.EXPECT().Logout(gomock.Any(), int64(42)).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/active-sessions/42", nil, "")

		s.Equal(http.StatusNoContent, rec.Code)
		httptest.AssertSessionCookieCleared(s.T(), rec)
	})

	s.Run("error: 404 Not Found", func() {
		s.mockCommands.EXPECT().Logout(gomock.Any(), int64(43)).Return(commands.ErrSessionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/active-sessions/43", nil, "")

		s.Equal(http.StatusNotFound, rec.Code)
	})
}

// ================================================================================
// TestListActive / TestMe
// ================================================================================

func (s *SessionHandlerTestSuite) TestListActive() {
	now := time.Now()
	view := builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) { b.StartedAt = now }).BuildView(now)
	s.mockQueries.EXPECT().ListActive(gomock.Any()).Return([]*queries.SessionView{view}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/active-sessions", nil, "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"active":true`)
}

func (s *SessionHandlerTestSuite) TestMe() {
	s.Run("success: bearer token resolves the session", func() {
		s.mockCommands.EXPECT().Authenticate(gomock.Any(), "signed").Return(s.liveResult(""), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/active-sessions/me", nil, "signed")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"customerId":1`)
	})

	s.Run("success: cookie token resolves the session", func() {
		s.mockCommands.EXPECT().Authenticate(gomock.Any(), "from-cookie").Return(s.liveResult(""), nil).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/active-sessions/me", nil,
			[]*http.Cookie{{Name: cookie.SessionTokenCookieName, Value: "from-cookie"}}, "")

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 401 Unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/active-sessions/me", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "unauthorized")
	})

	s.Run("error: 401 Unauthorized once the session ended", func() {
		s.mockCommands.EXPECT().Authenticate(gomock.Any(), "stale").Return(nil, commands.ErrSessionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/active-sessions/me", nil, "stale")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "unauthorized")
	})
}
