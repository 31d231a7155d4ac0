package middleware

import (
	"log/slog"
	"net/http"

	"delivery-admin/internal/handler/httperr"
	"delivery-admin/internal/pkg/errs"
	"delivery-admin/internal/pkg/i18n"

	"github.com/gin-gonic/gin"
)

const msgInternalError = "internal server error"

// Locale makes tr available to httperr for the rest of the chain.
func Locale(tr *i18n.Translator) gin.HandlerFunc {
	return func(c *gin.Context) {
		httperr.SetTranslator(c, tr)
		c.Next()
	}
}

// ErrorHandler renders the last public error left by a handler that did not
// write a response itself. 5xx causes are logged with the request id since
// the client only ever sees the generic message.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, e := range c.Errors {
			if resp, ok := e.Meta.(httperr.Response); ok && resp.Status >= http.StatusInternalServerError {
				logger.ErrorContext(c.Request.Context(), "request failed",
					"request_id", GetRequestID(c), "route", c.FullPath(), "error", e.Err,
					"stack", errs.ExtractStackLines(e.Err, 12))
			}
		}

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			e := c.Errors[i]
			if !e.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := e.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.NewResponse(c, http.StatusInternalServerError, msgInternalError))
	}
}

func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(c.Request.Context(), "recovered from panic",
					"request_id", GetRequestID(c), "path", c.Request.URL.Path, "panic", rec)

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.NewResponse(c, http.StatusInternalServerError, msgInternalError))
			}
		}()
		c.Next()
	}
}
