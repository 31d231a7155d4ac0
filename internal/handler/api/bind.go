package api

import (
	"net/http"

	reqdto "delivery-admin/internal/handler/dto/request"
	"delivery-admin/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// bindInput decodes the JSON body into req and maps it onto the usecase input T.
func bindInput[T any](c *gin.Context, req any) (T, bool) {
	var zero T
	if err := c.ShouldBindJSON(req); err != nil {
		abortWithBindError(c, err)
		return zero, false
	}
	in, err := reqdto.Into[T](req)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError, nil)
		return zero, false
	}
	return in, true
}
