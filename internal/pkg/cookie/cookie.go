package cookie

import (
	"net/http"
	"time"

	"delivery-admin/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const SessionTokenCookieName = "session_token"

// SetSessionCookie stores token until expiresAt, the end of the session it
// belongs to. The cookie never outlives the session.
func SetSessionCookie(c *gin.Context, cfg config.CookieConfig, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge < 1 {
		maxAge = 1
	}
	http.SetCookie(c.Writer, sessionCookie(cfg, token, maxAge, expiresAt))
}

func ClearSessionCookie(c *gin.Context, cfg config.CookieConfig) {
	http.SetCookie(c.Writer, sessionCookie(cfg, "", -1, time.Unix(0, 0)))
}

func GetSessionToken(c *gin.Context) string {
	token, _ := c.Cookie(SessionTokenCookieName)
	return token
}

func sessionCookie(cfg config.CookieConfig, value string, maxAge int, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     SessionTokenCookieName,
		Value:    value,
		Path:     "/",
		Domain:   cfg.Domain,
		Expires:  expires.UTC(),
		MaxAge:   maxAge,
		Secure:   cfg.Secure || cfg.SameSite == "None",
		HttpOnly: true,
		SameSite: sameSite(cfg.SameSite),
	}
}

func sameSite(s string) http.SameSite {
	switch s {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
