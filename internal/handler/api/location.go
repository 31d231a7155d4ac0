package api

import (
	"net/http"

	resdto "delivery-admin/internal/handler/dto/response"
	"delivery-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// LocationHandler serves the read-only region > city > commune catalog.
type LocationHandler struct {
	q queries.LocationQueries
}

func NewLocationHandler(q queries.LocationQueries) *LocationHandler {
	return &LocationHandler{q: q}
}

// @Summary List regions
// @Description Regions in geographic order.
// @Tags locations
// @Produce json
// @Success 200 {object} resdto.ListResponse[queries.RegionView]
// @Router /regions [get]
func (h *LocationHandler) ListRegions(c *gin.Context) {
	views, err := h.q.ListRegions(c.Request.Context())
	writeList(c, views, err)
}

// @Summary Get region
// @Tags locations
// @Produce json
// @Param id path int true "Region ID"
// @Success 200 {object} queries.RegionView
// @Failure 404 {object} httperr.Response
// @Router /regions/{id} [get]
func (h *LocationHandler) GetRegion(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	v, err := h.q.GetRegion(c.Request.Context(), id)
	writeOne(c, v, err)
}

// @Summary List cities of a region
// @Description Sorted by name. An unknown region yields an empty list.
// @Tags locations
// @Produce json
// @Param id path int true "Region ID"
// @Success 200 {object} resdto.ListResponse[queries.CityView]
// @Router /regions/{id}/cities [get]
func (h *LocationHandler) ListCities(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	views, err := h.q.ListCities(c.Request.Context(), id)
	writeList(c, views, err)
}

// @Summary Get city
// @Tags locations
// @Produce json
// @Param id path int true "City ID"
// @Success 200 {object} queries.CityView
// @Failure 404 {object} httperr.Response
// @Router /cities/{id} [get]
func (h *LocationHandler) GetCity(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	v, err := h.q.GetCity(c.Request.Context(), id)
	writeOne(c, v, err)
}

// @Summary List communes of a city
// @Description Sorted by name. An unknown city yields an empty list.
// @Tags locations
// @Produce json
// @Param id path int true "City ID"
// @Success 200 {object} resdto.ListResponse[queries.CommuneView]
// @Router /cities/{id}/communes [get]
func (h *LocationHandler) ListCommunes(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	views, err := h.q.ListCommunes(c.Request.Context(), id)
	writeList(c, views, err)
}

// @Summary Get commune
// @Tags locations
// @Produce json
// @Param id path int true "Commune ID"
// @Success 200 {object} queries.CommuneView
// @Failure 404 {object} httperr.Response
// @Router /communes/{id} [get]
func (h *LocationHandler) GetCommune(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	v, err := h.q.GetCommune(c.Request.Context(), id)
	writeOne(c, v, err)
}

func writeList[T any](c *gin.Context, views []T, err error) {
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.List(views))
}

func writeOne[T any](c *gin.Context, view *T, err error) {
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
