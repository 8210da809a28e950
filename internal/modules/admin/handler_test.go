package admin

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"techrent/internal/domain"
	"techrent/internal/listing"
	"techrent/internal/modules/auth"
	"techrent/internal/repository"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string         `json:"code"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func newTestRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/admin", func(c *gin.Context) {
		c.Set("user_id", "admin-1")
		c.Next()
	})
	NewHandler(svc).RegisterRoutes(group)
	return r
}

func do(t *testing.T, r http.Handler, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") != XLSXContentType {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func TestListEquipmentHandler_ParsesQuery(t *testing.T) {
	svc, m := newTestService()
	r := newTestRouter(svc)

	want := repository.EquipmentFilter{
		Search:        "drill",
		CategoryID:    null.Int64From(2),
		MaxPrice:      null.Float64From(2000),
		AvailableOnly: true,
		Rating:        "4+stars",
	}
	req := listing.PageRequest{Page: 1, PageSize: listing.MaxPageSize}
	m.equipment.On("List", mock.Anything, want, req).
		Return(listing.NewPage([]domain.Equipment{{ID: 2, Name: "Bosch Hammer Drill"}}, req, 1), nil)
	m.categories.On("All", mock.Anything).Return([]domain.Category{}, nil)

	w, env := do(t, r, http.MethodGet,
		"/admin/equipment?searchString=+drill+&categoryId=2&minPrice=abc&maxPrice=2000&availableOnly=true&lowStockOnly=false&rating=4%2Bstars&page=0&pageSize=500", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var data struct {
		Items         []map[string]any `json:"items"`
		TotalItems    int64            `json:"total_items"`
		RatingOptions []string         `json:"rating_options"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, int64(1), data.TotalItems)
	assert.Equal(t, "Bosch Hammer Drill", data.Items[0]["name"])
	assert.Nil(t, data.Items[0]["average_rating"])
	assert.Equal(t, []string{"5stars", "4+stars", "3+stars", "2+stars"}, data.RatingOptions)
}

func TestUpdateCategoryHandler_Conflict(t *testing.T) {
	svc, m := newTestService()
	r := newTestRouter(svc)
	m.categories.On("Update", mock.Anything, mock.Anything).Return(repository.UpdateConflict, nil)

	w, env := do(t, r, http.MethodPut, "/admin/categories/5", map[string]any{"name": "Pumps", "display_order": 1, "version": 3})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CONCURRENT_MODIFICATION", env.Error.Code)
}

func TestCreateCategoryHandler_Validation(t *testing.T) {
	svc, m := newTestService()
	r := newTestRouter(svc)

	w, env := do(t, r, http.MethodPost, "/admin/categories", map[string]any{"display_order": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Details, "name")
	assert.Contains(t, env.Error.Details, "display_order")
	m.categories.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateUserHandler_IdentityError(t *testing.T) {
	svc, m := newTestService()
	r := newTestRouter(svc)
	m.identity.On("CreateAccount", mock.Anything, mock.Anything).
		Return(nil, &auth.IdentityError{Reasons: []string{"Passwords must have at least one digit ('0'-'9')."}})

	w, env := do(t, r, http.MethodPost, "/admin/users", map[string]any{
		"email":            "new@example.com",
		"password":         "Secret!",
		"confirm_password": "Secret!",
		"role":             "User",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "IDENTITY_ERROR", env.Error.Code)
}

func TestDeleteUserHandler_Self(t *testing.T) {
	svc, _ := newTestService()
	r := newTestRouter(svc)

	w, env := do(t, r, http.MethodDelete, "/admin/users/admin-1", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "SELF_DELETE", env.Error.Code)
}

func TestDeleteCategoryHandler_InUse(t *testing.T) {
	svc, m := newTestService()
	r := newTestRouter(svc)
	m.categories.On("Exists", mock.Anything, int64(1)).Return(true, nil)
	m.equipment.On("CountByCategory", mock.Anything, int64(1)).Return(int64(2), nil)

	w, env := do(t, r, http.MethodDelete, "/admin/categories/1", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CATEGORY_IN_USE", env.Error.Code)
}

func TestGetEquipmentHandler_BadAndMissingID(t *testing.T) {
	svc, m := newTestService()
	r := newTestRouter(svc)
	m.equipment.On("GetByID", mock.Anything, int64(42)).Return(nil, repository.ErrNotFound)

	w, env := do(t, r, http.MethodGet, "/admin/equipment/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ID", env.Error.Code)

	w, env = do(t, r, http.MethodGet, "/admin/equipment/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestExportEquipmentHandler(t *testing.T) {
	svc, m := newTestService()
	r := newTestRouter(svc)
	m.equipment.On("ListAll", mock.Anything, repository.EquipmentFilter{OutOfStockOnly: true}).Return([]domain.Equipment{
		{ID: 3, Name: "Scaffold Set", PricePerDay: 2500, Deposit: 10000, Category: &domain.Category{Name: "Scaffolding"}},
	}, nil)

	w, _ := do(t, r, http.MethodGet, "/admin/equipment/export?outOfStockOnly=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, XLSXContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "equipment_")

	wb, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer wb.Close()
	rows, err := wb.GetRows(equipmentSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Name", rows[0][1])
	require.GreaterOrEqual(t, len(rows[1]), 7)
	assert.Equal(t, []string{"3", "Scaffold Set", "Scaffolding", "2500", "10000", "0", "0"}, rows[1][:7])
}
