package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"techrent/internal/pkg/response"
)

func (h *Handler) ListCategories(c *gin.Context) {
	page, pageSize := queryPage(c)
	res, err := h.service.ListCategories(c.Request.Context(), categoryFilterFromQuery(c), page, pageSize)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) GetCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	cat, err := h.service.GetCategory(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cat)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryInput
	if !bindJSON(c, &req) {
		return
	}
	cat, err := h.service.CreateCategory(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, cat)
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	cat, err := h.service.UpdateCategory(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cat)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteCategory(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Category deleted"})
}
