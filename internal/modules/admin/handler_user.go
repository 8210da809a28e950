package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"techrent/internal/pkg/response"
)

func (h *Handler) ListUsers(c *gin.Context) {
	page, pageSize := queryPage(c)
	res, err := h.service.ListUsers(c.Request.Context(), userFilterFromQuery(c), page, pageSize)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) GetUser(c *gin.Context) {
	u, err := h.service.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u)
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}
	u, err := h.service.CreateUser(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, u)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}
	u, err := h.service.UpdateUser(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	actorID := c.GetString("user_id")
	if actorID == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}
	if err := h.service.DeleteUser(c.Request.Context(), actorID, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "User deleted"})
}
