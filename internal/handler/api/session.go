package api

import (
	"net/http"

	reqdto "delivery-admin/internal/handler/dto/request"
	resdto "delivery-admin/internal/handler/dto/response"
	"delivery-admin/internal/handler/middleware"
	"delivery-admin/internal/pkg/config"
	"delivery-admin/internal/pkg/cookie"
	"delivery-admin/internal/usecase/commands"
	"delivery-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	cmds      commands.SessionCommands
	q         queries.SessionQueries
	cookieCfg config.CookieConfig
}

func NewSessionHandler(cmds commands.SessionCommands, q queries.SessionQueries, cfg config.Config) *SessionHandler {
	return &SessionHandler{cmds: cmds, q: q, cookieCfg: cfg.Cookie}
}

// @Summary Log in
// @Description Opens a fixed-lifetime session. Fails while the customer already has a live one.
// @Tags active-sessions
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login"
// @Success 201 {object} resdto.SessionResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /active-sessions [post]
func (h *SessionHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	result, err := h.cmds.Login(c.Request.Context(), req.CustomerID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	cookie.SetSessionCookie(c, h.cookieCfg, result.Token, result.Session.ExpiresAt)
	c.JSON(http.StatusCreated, resdto.FromSessionResult(result))
}

// @Summary List live sessions
// @Tags active-sessions
// @Produce json
// @Success 200 {object} resdto.ListResponse[queries.SessionView]
// @Router /active-sessions [get]
func (h *SessionHandler) ListActive(c *gin.Context) {
	views, err := h.q.ListActive(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.List(views))
}

// @Summary Validate session
// @Description Returns the session while it is live. An expired session is closed and reported as not found.
// @Tags active-sessions
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 404 {object} httperr.Response
// @Router /active-sessions/{id} [get]
func (h *SessionHandler) Validate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	result, err := h.cmds.Validate(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionResult(result))
}

// @Summary Log out
// @Description Ending an already ended session is a no-op.
// @Tags active-sessions
// @Param id path int true "Session ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /active-sessions/{id} [delete]
func (h *SessionHandler) Logout(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Logout(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	cookie.ClearSessionCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Current session
// @Tags active-sessions
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.SessionResponse
// @Failure 401 {object} httperr.Response
// @Router /active-sessions/me [get]
func (h *SessionHandler) Me(c *gin.Context) {
	result, ok := middleware.GetSession(c)
	if !ok {
		abortWithUsecaseError(c, commands.ErrInvalidSessionToken)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionResult(result))
}
