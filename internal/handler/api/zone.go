package api

import (
	"net/http"

	reqdto "delivery-admin/internal/handler/dto/request"
	resdto "delivery-admin/internal/handler/dto/response"
	"delivery-admin/internal/usecase/commands"
	"delivery-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ZoneHandler struct {
	cmds commands.ZoneCommands
	q    queries.ZoneQueries
}

func NewZoneHandler(cmds commands.ZoneCommands, q queries.ZoneQueries) *ZoneHandler {
	return &ZoneHandler{cmds: cmds, q: q}
}

// @Summary List coverage zones
// @Tags coverage-zones
// @Produce json
// @Success 200 {object} resdto.ListResponse[queries.ZoneView]
// @Router /coverage-zones [get]
func (h *ZoneHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.List(views))
}

// @Summary Get coverage zone
// @Tags coverage-zones
// @Produce json
// @Param id path int true "Zone ID"
// @Success 200 {object} queries.ZoneView
// @Failure 404 {object} httperr.Response
// @Router /coverage-zones/{id} [get]
func (h *ZoneHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	h.respond(c, http.StatusOK, id)
}

// @Summary Create coverage zone
// @Description The boundary is a GeoJSON Polygon; it is stored closed.
// @Tags coverage-zones
// @Accept json
// @Produce json
// @Param request body reqdto.ZoneRequest true "Zone"
// @Success 201 {object} queries.ZoneView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /coverage-zones [post]
func (h *ZoneHandler) Create(c *gin.Context) {
	in, ok := bindInput[commands.ZoneInput](c, &reqdto.ZoneRequest{})
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

// @Summary Update coverage zone
// @Tags coverage-zones
// @Accept json
// @Produce json
// @Param id path int true "Zone ID"
// @Param request body reqdto.ZoneRequest true "Zone"
// @Success 200 {object} queries.ZoneView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /coverage-zones/{id} [put]
func (h *ZoneHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	in, ok := bindInput[commands.ZoneInput](c, &reqdto.ZoneRequest{})
	if !ok {
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, in); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respond(c, http.StatusOK, id)
}

// @Summary Delete coverage zone
// @Tags coverage-zones
// @Param id path int true "Zone ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /coverage-zones/{id} [delete]
func (h *ZoneHandler) Delete(c *gin.Context) {
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

func (h *ZoneHandler) respond(c *gin.Context, status int, id int64) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(status, view)
}
