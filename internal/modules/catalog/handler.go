package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"techrent/internal/listing"
	"techrent/internal/pkg/response"
	"techrent/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	v1.GET("/equipment", h.ListEquipment)
	v1.GET("/equipment/:id", h.GetEquipment)
	v1.GET("/categories", h.GetCategories)
}

// ListEquipment handles GET /api/v1/equipment with the customer facing filters.
func (h *Handler) ListEquipment(c *gin.Context) {
	p := listing.Params(c.Request.URL.Query())
	f := repository.EquipmentFilterFromParams(p)
	page, pageSize := p.Page()

	res, err := h.service.ListEquipment(c.Request.Context(), f, page, pageSize)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "Failed to load equipment")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"equipment": res,
		"filters":   f,
	})
}

func (h *Handler) GetEquipment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid equipment ID")
		return
	}

	e, err := h.service.GetEquipment(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Equipment not found")
			return
		}
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "Failed to load equipment")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"equipment": e})
}

func (h *Handler) GetCategories(c *gin.Context) {
	cats, err := h.service.Categories(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "Failed to load categories")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"categories": cats})
}
