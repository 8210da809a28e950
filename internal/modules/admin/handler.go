package admin

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"techrent/internal/modules/auth"
	"techrent/internal/pkg/response"
	"techrent/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the back-office API. The group must already require
// an authenticated admin.
func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/stats", h.GetStats)

	admin.GET("/equipment", h.ListEquipment)
	admin.GET("/equipment/export", h.ExportEquipment)
	admin.POST("/equipment", h.CreateEquipment)
	admin.GET("/equipment/:id", h.GetEquipment)
	admin.PUT("/equipment/:id", h.UpdateEquipment)
	admin.DELETE("/equipment/:id", h.DeleteEquipment)

	admin.GET("/categories", h.ListCategories)
	admin.POST("/categories", h.CreateCategory)
	admin.GET("/categories/:id", h.GetCategory)
	admin.PUT("/categories/:id", h.UpdateCategory)
	admin.DELETE("/categories/:id", h.DeleteCategory)

	admin.GET("/users", h.ListUsers)
	admin.POST("/users", h.CreateUser)
	admin.GET("/users/:id", h.GetUser)
	admin.PUT("/users/:id", h.UpdateUser)
	admin.DELETE("/users/:id", h.DeleteUser)

	admin.GET("/reviews", h.ListReviews)
	admin.GET("/reviews/export", h.ExportReviews)
	admin.POST("/reviews", h.CreateReview)
	admin.GET("/reviews/:id", h.GetReview)
	admin.PUT("/reviews/:id", h.UpdateReview)
	admin.DELETE("/reviews/:id", h.DeleteReview)
}

func (h *Handler) GetStats(c *gin.Context) {
	st, err := h.service.Stats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, st)
}

// writeError maps service errors onto the response envelope.
func writeError(c *gin.Context, err error) {
	var verr *ValidationError
	var idErr *auth.IdentityError

	switch {
	case errors.As(err, &verr):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request", verr.Fields)
	case errors.As(err, &idErr):
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "IDENTITY_ERROR", "The identity provider refused the operation", idErr.Reasons)
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
	case errors.Is(err, ErrConflict):
		response.Error(c, http.StatusConflict, "CONCURRENT_MODIFICATION", "The record was modified or deleted by another user. Reload and try again.")
	case errors.Is(err, ErrCategoryInUse):
		response.Error(c, http.StatusConflict, "CATEGORY_IN_USE", "Cannot delete category that has equipment assigned to it.")
	case errors.Is(err, ErrEquipmentInUse):
		response.Error(c, http.StatusConflict, "EQUIPMENT_IN_USE", "Cannot delete equipment that has bookings.")
	case errors.Is(err, ErrUserInUse):
		response.Error(c, http.StatusConflict, "USER_IN_USE", "Cannot delete a user who has bookings or reviews.")
	case errors.Is(err, ErrSelfDelete):
		response.Error(c, http.StatusConflict, "SELF_DELETE", "You cannot delete your own account.")
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}

// bindJSON decodes and validates the body. It writes the error response
// itself and reports whether the handler may continue.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return false
	}
	if errs := validator.Validate(dst); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request", errs)
		return false
	}
	return true
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID")
		return 0, false
	}
	return id, true
}

func sendWorkbook(c *gin.Context, prefix string, wb *excelize.File) {
	defer wb.Close()
	name := fmt.Sprintf("%s_%s.xlsx", prefix, time.Now().UTC().Format("2006-01-02"))
	if err := response.Attachment(c, XLSXContentType, name, func(w io.Writer) error {
		_, err := wb.WriteTo(w)
		return err
	}); err != nil {
		_ = c.Error(err)
	}
}
