package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"delivery-admin/internal/handler/httperr"
	"delivery-admin/internal/pkg/cookie"
	"delivery-admin/internal/usecase/commands"
	"delivery-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	ctxSessionKey    = "session"
	ctxCustomerIDKey = "customer_id"
	ctxCustomerType  = "customer_type"
)

type SessionMiddleware struct {
	sessions commands.SessionCommands
}

func NewSessionMiddleware(sessions commands.SessionCommands) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

// RequireSession accepts the session token from the cookie or a Bearer header
// and rejects the request unless the session is still live.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrInvalidSessionToken, "unauthorized", nil)
			return
		}

		result, err := m.sessions.Authenticate(c.Request.Context(), token)
		if err != nil {
			if commands.IsSessionRejection(err) {
				slog.Warn("session rejected", "error", err.Error())
				httperr.AbortWithError(c, http.StatusUnauthorized, err, "unauthorized", nil)
				return
			}
			httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError, nil)
			return
		}

		c.Set(ctxSessionKey, result)
		c.Set(ctxCustomerIDKey, result.Customer.ID)
		c.Set(ctxCustomerType, result.Customer.Type)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetSessionToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetSession(c *gin.Context) (*queries.SessionResult, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return nil, false
	}
	result, ok := v.(*queries.SessionResult)
	return result, ok
}

func GetCustomerID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ctxCustomerIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

func extractCustomerContext(c *gin.Context) (customerID, customerType string) {
	if id, ok := GetCustomerID(c); ok {
		customerID = strconv.FormatInt(id, 10)
	}
	if t, exists := c.Get(ctxCustomerType); exists {
		customerType, _ = t.(string)
	}
	return
}
