package api

import (
	"net/http"
	"strconv"

	"delivery-admin/internal/handler/httperr"
	"delivery-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Resolve available delivery slots
// @Description Without an address every active slot is returned. With one, only the slot its coverage zone links.
// @Tags availability
// @Produce json
// @Param addressId query int false "Delivery address ID"
// @Param selectedSlotId query int false "Slot already held by the reservation being edited"
// @Param preserveStale query bool false "Keep selectedSlotId even when the rules drop it"
// @Success 200 {object} queries.AvailabilityView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /availability [get]
func (h *AvailabilityHandler) Resolve(c *gin.Context) {
	addressID, ok := optionalInt64(c, "addressId")
	if !ok {
		return
	}
	selected, ok := optionalInt64(c, "selectedSlotId")
	if !ok {
		return
	}
	preserve := false
	if raw := c.Query("preserveStale"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, "invalid preserveStale")
			return
		}
		preserve = v
	}

	view, err := h.q.Resolve(c.Request.Context(), queries.AvailabilityRequest{
		AddressID:      addressID,
		SelectedSlotID: selected,
		PreserveStale:  preserve,
	})
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
