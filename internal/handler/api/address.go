package api

import (
	"net/http"

	reqdto "delivery-admin/internal/handler/dto/request"
	resdto "delivery-admin/internal/handler/dto/response"
	"delivery-admin/internal/usecase/commands"
	"delivery-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AddressHandler struct {
	cmds         commands.AddressCommands
	q            queries.AddressQueries
	availability queries.AvailabilityQueries
}

func NewAddressHandler(cmds commands.AddressCommands, q queries.AddressQueries, availability queries.AvailabilityQueries) *AddressHandler {
	return &AddressHandler{cmds: cmds, q: q, availability: availability}
}

// @Summary List delivery addresses
// @Tags delivery-addresses
// @Produce json
// @Param customerId query int false "Only this customer's addresses"
// @Success 200 {object} resdto.ListResponse[queries.AddressView]
// @Router /delivery-addresses [get]
func (h *AddressHandler) List(c *gin.Context) {
	customerID, ok := optionalInt64(c, "customerId")
	if !ok {
		return
	}
	h.list(c, customerID)
}

// @Summary List a customer's delivery addresses
// @Tags delivery-addresses
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} resdto.ListResponse[queries.AddressView]
// @Router /customers/{id}/delivery-addresses [get]
func (h *AddressHandler) ListByCustomer(c *gin.Context) {
	customerID, ok := parseID(c, "id")
	if !ok {
		return
	}
	h.list(c, &customerID)
}

func (h *AddressHandler) list(c *gin.Context, customerID *int64) {
	views, err := h.q.List(c.Request.Context(), customerID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.List(views))
}

// @Summary Get delivery address
// @Tags delivery-addresses
// @Produce json
// @Param id path int true "Address ID"
// @Success 200 {object} queries.AddressView
// @Failure 404 {object} httperr.Response
// @Router /delivery-addresses/{id} [get]
func (h *AddressHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	h.respond(c, http.StatusOK, id)
}

// @Summary Create delivery address
// @Description Addresses with coordinates are placed in the first active coverage zone containing them.
// @Tags delivery-addresses
// @Accept json
// @Produce json
// @Param request body reqdto.AddressRequest true "Address"
// @Success 201 {object} queries.AddressView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /delivery-addresses [post]
func (h *AddressHandler) Create(c *gin.Context) {
	in, ok := bindInput[commands.AddressInput](c, &reqdto.AddressRequest{})
	if !ok {
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), in)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respond(c, http.StatusCreated, id)
}

// @Summary Update delivery address
// @Tags delivery-addresses
// @Accept json
// @Produce json
// @Param id path int true "Address ID"
// @Param request body reqdto.AddressRequest true "Address"
// @Success 200 {object} queries.AddressView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /delivery-addresses/{id} [put]
func (h *AddressHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	in, ok := bindInput[commands.AddressInput](c, &reqdto.AddressRequest{})
	if !ok {
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, in); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respond(c, http.StatusOK, id)
}

// @Summary Delete delivery address
// @Tags delivery-addresses
// @Param id path int true "Address ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /delivery-addresses/{id} [delete]
func (h *AddressHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Suggest a reservation
// @Description Pre-fills slot, date and time from the slot the address zone links.
// @Tags delivery-addresses
// @Produce json
// @Param id path int true "Address ID"
// @Success 200 {object} queries.SuggestionView
// @Failure 404 {object} httperr.Response
// @Router /delivery-addresses/{id}/reservation-suggestion [get]
func (h *AddressHandler) Suggest(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	view, err := h.availability.Suggest(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *AddressHandler) respond(c *gin.Context, status int, id int64) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(status, view)
}
