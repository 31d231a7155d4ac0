package api

import (
	"net/http"

	reqdto "delivery-admin/internal/handler/dto/request"
	resdto "delivery-admin/internal/handler/dto/response"
	"delivery-admin/internal/usecase/commands"
	"delivery-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	cmds commands.CustomerCommands
	q    queries.CustomerQueries
}

func NewCustomerHandler(cmds commands.CustomerCommands, q queries.CustomerQueries) *CustomerHandler {
	return &CustomerHandler{cmds: cmds, q: q}
}

// @Summary List customers
// @Tags customers
// @Produce json
// @Param email query string false "Exact email lookup (case-insensitive)"
// @Success 200 {object} resdto.ListResponse[queries.CustomerView]
// @Router /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	if email := c.Query("email"); email != "" {
		view, err := h.q.GetByEmail(c.Request.Context(), email)
		if err != nil {
			abortWithUsecaseError(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.List([]*queries.CustomerView{view}))
		return
	}
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.List(views))
}

// @Summary Get customer
// @Tags customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} queries.CustomerView
// @Failure 404 {object} httperr.Response
// @Router /customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create customer
// @Tags customers
// @Accept json
// @Produce json
// @Param request body reqdto.CustomerRequest true "Customer"
// @Success 201 {object} queries.CustomerView
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	in, ok := bindInput[commands.CustomerInput](c, &reqdto.CustomerRequest{})
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

// @Summary Update customer
// @Tags customers
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Param request body reqdto.CustomerRequest true "Customer"
// @Success 200 {object} queries.CustomerView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	in, ok := bindInput[commands.CustomerInput](c, &reqdto.CustomerRequest{})
	if !ok {
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, in); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respond(c, http.StatusOK, id)
}

// @Summary Delete customer
// @Tags customers
// @Param id path int true "Customer ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
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

func (h *CustomerHandler) respond(c *gin.Context, status int, id int64) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(status, view)
}
