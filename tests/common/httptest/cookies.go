//go:build unit || e2e

package httptest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"delivery-admin/internal/pkg/cookie"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// SessionCookie returns the session token cookie set by w, or nil.
func SessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == cookie.SessionTokenCookieName {
			return c
		}
	}
	return nil
}

func AssertSessionCookieSet(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	c := SessionCookie(w)
	require.NotNil(t, c, "session cookie not set")
	assert.NotEmpty(t, c.Value)
	assert.True(t, c.HttpOnly)
	assert.Positive(t, c.MaxAge)
	return c
}

func AssertSessionCookieCleared(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()

	c := SessionCookie(w)
	require.NotNil(t, c, "session cookie not cleared")
	assert.Empty(t, c.Value)
	assert.Negative(t, c.MaxAge)
}
