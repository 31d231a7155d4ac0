package api

import (
	"net/http"

	reqdto "delivery-admin/internal/handler/dto/request"
	resdto "delivery-admin/internal/handler/dto/response"
	"delivery-admin/internal/usecase/commands"
	"delivery-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TemplateHandler struct {
	cmds commands.TemplateCommands
	q    queries.TemplateQueries
}

func NewTemplateHandler(cmds commands.TemplateCommands, q queries.TemplateQueries) *TemplateHandler {
	return &TemplateHandler{cmds: cmds, q: q}
}

// @Summary List time slot templates
// @Tags time-slot-templates
// @Produce json
// @Success 200 {object} resdto.ListResponse[queries.TemplateView]
// @Router /time-slot-templates [get]
func (h *TemplateHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.List(views))
}

// @Summary Get time slot template
// @Tags time-slot-templates
// @Produce json
// @Param id path int true "Template ID"
// @Success 200 {object} queries.TemplateView
// @Failure 404 {object} httperr.Response
// @Router /time-slot-templates/{id} [get]
func (h *TemplateHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	h.respond(c, http.StatusOK, id)
}

// @Summary Create time slot template
// @Tags time-slot-templates
// @Accept json
// @Produce json
// @Param request body reqdto.TemplateRequest true "Template"
// @Success 201 {object} queries.TemplateView
// @Failure 400 {object} httperr.Response
// @Router /time-slot-templates [post]
func (h *TemplateHandler) Create(c *gin.Context) {
	in, ok := bindInput[commands.TemplateInput](c, &reqdto.TemplateRequest{})
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

// @Summary Update time slot template
// @Tags time-slot-templates
// @Accept json
// @Produce json
// @Param id path int true "Template ID"
// @Param request body reqdto.TemplateRequest true "Template"
// @Success 200 {object} queries.TemplateView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /time-slot-templates/{id} [put]
func (h *TemplateHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	in, ok := bindInput[commands.TemplateInput](c, &reqdto.TemplateRequest{})
	if !ok {
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, in); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respond(c, http.StatusOK, id)
}

// @Summary Delete time slot template
// @Tags time-slot-templates
// @Param id path int true "Template ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /time-slot-templates/{id} [delete]
func (h *TemplateHandler) Delete(c *gin.Context) {
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

func (h *TemplateHandler) respond(c *gin.Context, status int, id int64) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(status, view)
}

type SlotHandler struct {
	cmds commands.SlotCommands
	q    queries.SlotQueries
}

func NewSlotHandler(cmds commands.SlotCommands, q queries.SlotQueries) *SlotHandler {
	return &SlotHandler{cmds: cmds, q: q}
}

// @Summary List delivery slots
// @Description Ordered by delivery date, then template.
// @Tags delivery-slots
// @Produce json
// @Success 200 {object} resdto.ListResponse[queries.SlotView]
// @Router /delivery-slots [get]
func (h *SlotHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.List(views))
}

// @Summary Get delivery slot
// @Tags delivery-slots
// @Produce json
// @Param id path int true "Slot ID"
// @Success 200 {object} queries.SlotView
// @Failure 404 {object} httperr.Response
// @Router /delivery-slots/{id} [get]
func (h *SlotHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	h.respond(c, http.StatusOK, id)
}

// @Summary Create delivery slot
// @Tags delivery-slots
// @Accept json
// @Produce json
// @Param request body reqdto.SlotRequest true "Slot"
// @Success 201 {object} queries.SlotView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /delivery-slots [post]
func (h *SlotHandler) Create(c *gin.Context) {
	in, ok := bindInput[commands.SlotInput](c, &reqdto.SlotRequest{})
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

// @Summary Update delivery slot
// @Tags delivery-slots
// @Accept json
// @Produce json
// @Param id path int true "Slot ID"
// @Param request body reqdto.SlotRequest true "Slot"
// @Success 200 {object} queries.SlotView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /delivery-slots/{id} [put]
func (h *SlotHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	in, ok := bindInput[commands.SlotInput](c, &reqdto.SlotRequest{})
	if !ok {
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, in); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respond(c, http.StatusOK, id)
}

// @Summary Delete delivery slot
// @Tags delivery-slots
// @Param id path int true "Slot ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /delivery-slots/{id} [delete]
func (h *SlotHandler) Delete(c *gin.Context) {
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

func (h *SlotHandler) respond(c *gin.Context, status int, id int64) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(status, view)
}
