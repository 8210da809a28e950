package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"techrent/internal/pkg/response"
)

func (h *Handler) ListReviews(c *gin.Context) {
	page, pageSize := queryPage(c)
	res, err := h.service.ListReviews(c.Request.Context(), reviewFilterFromQuery(c), page, pageSize)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) ExportReviews(c *gin.Context) {
	wb, err := h.service.ExportReviews(c.Request.Context(), reviewFilterFromQuery(c))
	if err != nil {
		writeError(c, err)
		return
	}
	sendWorkbook(c, "reviews", wb)
}

func (h *Handler) GetReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	r, err := h.service.GetReview(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, r)
}

func (h *Handler) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	r, err := h.service.CreateReview(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, r)
}

func (h *Handler) UpdateReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	r, err := h.service.UpdateReview(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, r)
}

func (h *Handler) DeleteReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteReview(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Review deleted"})
}
