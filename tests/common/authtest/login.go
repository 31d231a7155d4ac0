//go:build unit || e2e

package authtest

import (
	"net/http"
	"strconv"
	"testing"

	"delivery-admin/internal/handler/dto/request"
	"delivery-admin/internal/handler/dto/response"
	"delivery-admin/tests/common/dbtest"
	"delivery-admin/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginCustomer opens a session and returns its token and id.
func LoginCustomer(t *testing.T, router *gin.Engine, customerID int64) (string, int64) {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/active-sessions",
		request.LoginRequest{CustomerID: customerID}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	sessionCookie := httptest.AssertSessionCookieSet(t, w)

	var body response.SessionResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
	require.Equal(t, sessionCookie.Value, body.Token)

	return sessionCookie.Value, body.ID
}

func CreateAndLogin(t *testing.T, db dbtest.Querier, router *gin.Engine, email string) (customerID int64, token string, sessionID int64) {
	t.Helper()
	customerID = dbtest.CreateTestCustomer(t, db, email)
	token, sessionID = LoginCustomer(t, router, customerID)
	return customerID, token, sessionID
}

func LogoutSession(t *testing.T, router *gin.Engine, sessionID int64) {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodDelete, "/api/active-sessions/"+strconv.FormatInt(sessionID, 10), nil, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
