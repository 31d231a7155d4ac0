package httperr

import (
	"delivery-admin/internal/pkg/i18n"

	"github.com/gin-gonic/gin"
)

const translatorKey = "translator"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(c, status, msg)
	if s, ok := detail.(string); ok {
		detail = Localize(c, s)
	}
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

func NewResponse(c *gin.Context, status int, msg string) Response {
	resp := Response{Status: status}
	resp.Error.Message = Localize(c, msg)
	return resp
}

func SetTranslator(c *gin.Context, tr *i18n.Translator) {
	c.Set(translatorKey, tr)
}

// Localize renders msg in the request's Accept-Language. Without a translator
// msg is returned as is.
func Localize(c *gin.Context, msg string) string {
	v, ok := c.Get(translatorKey)
	if !ok {
		return msg
	}
	tr, ok := v.(*i18n.Translator)
	if !ok || tr == nil {
		return msg
	}
	return tr.Translate(c.GetHeader("Accept-Language"), msg)
}
