package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"delivery-admin/internal/domain/activesession"
	"delivery-admin/internal/domain/reservation"
	"delivery-admin/internal/handler/httperr"
	"delivery-admin/internal/usecase/commands"
	"delivery-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest = "invalid request"
	msgInternalError  = "internal server error"
)

type statusRule struct {
	err    error
	status int
}

// Order matters: the first matching sentinel decides the status.
var statusRules = []statusRule{
	{commands.ErrCustomerNotFound, http.StatusNotFound},
	{queries.ErrCustomerNotFound, http.StatusNotFound},
	{commands.ErrAddressNotFound, http.StatusNotFound},
	{queries.ErrAddressNotFound, http.StatusNotFound},
	{commands.ErrTemplateNotFound, http.StatusNotFound},
	{queries.ErrTemplateNotFound, http.StatusNotFound},
	{commands.ErrSlotNotFound, http.StatusNotFound},
	{queries.ErrSlotNotFound, http.StatusNotFound},
	{commands.ErrZoneNotFound, http.StatusNotFound},
	{queries.ErrZoneNotFound, http.StatusNotFound},
	{commands.ErrCommuneNotFound, http.StatusNotFound},
	{queries.ErrCommuneNotFound, http.StatusNotFound},
	{queries.ErrCityNotFound, http.StatusNotFound},
	{queries.ErrRegionNotFound, http.StatusNotFound},
	{commands.ErrReservationNotFound, http.StatusNotFound},
	{queries.ErrReservationNotFound, http.StatusNotFound},
	{commands.ErrSessionNotFound, http.StatusNotFound},
	{queries.ErrSessionNotFound, http.StatusNotFound},
	{queries.ErrNoSuggestion, http.StatusNotFound},

	{commands.ErrEmailTaken, http.StatusConflict},
	{commands.ErrDuplicateSlot, http.StatusConflict},
	{commands.ErrTemplateInUse, http.StatusConflict},
	{commands.ErrSlotInUse, http.StatusConflict},
	{commands.ErrAddressInUse, http.StatusConflict},
	{commands.ErrReservationConflict, http.StatusConflict},
	{reservation.ErrNoCapacity, http.StatusConflict},
	{activesession.ErrAlreadyActive, http.StatusConflict},

	{commands.ErrOutsideCoverage, http.StatusBadRequest},
	{commands.ErrInvalidSessionToken, http.StatusUnauthorized},
	{queries.ErrInvalidCursor, http.StatusBadRequest},
}

// abortWithUsecaseError answers with the status of the first known sentinel in
// err. Validation failures carry every broken rule in detail.
func abortWithUsecaseError(c *gin.Context, err error) {
	var verr *commands.ValidationError
	if errors.As(err, &verr) {
		msgs := verr.Messages()
		for i, m := range msgs {
			msgs[i] = httperr.Localize(c, m)
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, strings.Join(msgs, "; "))
		return
	}
	for _, rule := range statusRules {
		if errors.Is(err, rule.err) {
			httperr.AbortWithError(c, rule.status, err, rule.err.Error(), nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError, nil)
}

func abortWithBindError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, err.Error())
}

func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = errors.New("id must be positive")
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// optionalInt64 reads a positive integer query parameter. A missing parameter
// yields nil; a malformed one aborts the request.
func optionalInt64(c *gin.Context, name string) (*int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		if err == nil {
			err = errors.New(name + " must be positive")
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, "invalid "+name)
		return nil, false
	}
	return &v, true
}
