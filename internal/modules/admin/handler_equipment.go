package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"techrent/internal/pkg/response"
)

// ListEquipment GET /admin/equipment
func (h *Handler) ListEquipment(c *gin.Context) {
	page, pageSize := queryPage(c)
	res, err := h.service.ListEquipment(c.Request.Context(), equipmentFilterFromQuery(c), page, pageSize)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

// ExportEquipment streams the whole filtered listing as a spreadsheet.
func (h *Handler) ExportEquipment(c *gin.Context) {
	wb, err := h.service.ExportEquipment(c.Request.Context(), equipmentFilterFromQuery(c))
	if err != nil {
		writeError(c, err)
		return
	}
	sendWorkbook(c, "equipment", wb)
}

func (h *Handler) GetEquipment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	e, err := h.service.GetEquipment(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, e)
}

func (h *Handler) CreateEquipment(c *gin.Context) {
	var req EquipmentInput
	if !bindJSON(c, &req) {
		return
	}
	e, err := h.service.CreateEquipment(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, e)
}

func (h *Handler) UpdateEquipment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateEquipmentRequest
	if !bindJSON(c, &req) {
		return
	}
	e, err := h.service.UpdateEquipment(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, e)
}

func (h *Handler) DeleteEquipment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteEquipment(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Equipment deleted"})
}
