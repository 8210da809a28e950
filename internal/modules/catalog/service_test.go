package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"techrent/internal/database"
	"techrent/internal/listing"
	"techrent/internal/modules/auth"
	"techrent/internal/repository"
	"techrent/internal/seed"
)

func setupService(t *testing.T) *Service {
	t.Helper()
	db, err := database.Connect(":memory:", zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	identity := auth.NewIdentityStore(db).WithBcryptCost(bcrypt.MinCost)
	require.NoError(t, seed.Run(context.Background(), db, identity, zap.NewNop(), time.Now().UTC()))

	return NewService(repository.NewEquipmentRepository(db), repository.NewCategoryRepository(db), listing.Limits{})
}

func TestListEquipment_PriceRange(t *testing.T) {
	svc := setupService(t)

	page, err := svc.ListEquipment(context.Background(), repository.EquipmentFilter{
		MinPrice: null.Float64From(1000),
		MaxPrice: null.Float64From(2000),
	}, 1, 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, 1500, page.Items[0].PricePerDay)
	assert.Equal(t, 1200, page.Items[1].PricePerDay)
	assert.Equal(t, "Бетономешалки", page.Items[0].Category)
	assert.True(t, page.Items[0].InStock)
	assert.True(t, page.Items[0].LowStock)
	assert.InDelta(t, 5.0, page.Items[0].AverageRating.Float64, 1e-9)
	assert.False(t, page.Items[1].AverageRating.Valid)
}

func TestListEquipment_SearchCyrillic(t *testing.T) {
	svc := setupService(t)

	for _, term := range []string{"Бетономешалка", "БЕТОНОМЕШАЛКА", "бетономешалка"} {
		page, err := svc.ListEquipment(context.Background(), repository.EquipmentFilter{Search: term}, 1, 0)
		require.NoError(t, err)
		require.Len(t, page.Items, 1, term)
		assert.Equal(t, "Бетономешалка 150л", page.Items[0].Name)
	}
}

func TestGetEquipment(t *testing.T) {
	svc := setupService(t)

	d, err := svc.GetEquipment(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Перфоратор Bosch", d.Name)
	require.Len(t, d.Reviews, 1)
	assert.Equal(t, 4, d.Reviews[0].Rating)
	assert.Equal(t, seed.UserEmail, d.Reviews[0].Author)

	_, err = svc.GetEquipment(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(setupService(t)).RegisterRoutes(r.Group("/api/v1"))

	get := func(path string) (*httptest.ResponseRecorder, map[string]any) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		return w, body
	}

	w, body := get("/api/v1/equipment?searchString=bosch&pageSize=2")
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]any)
	eq := data["equipment"].(map[string]any)
	assert.EqualValues(t, 1, eq["total_items"])
	assert.EqualValues(t, 2, eq["page_size"])

	total := func(query string) any {
		w, body := get("/api/v1/equipment?" + query)
		require.Equal(t, http.StatusOK, w.Code, query)
		return body["data"].(map[string]any)["equipment"].(map[string]any)["total_items"]
	}
	assert.EqualValues(t, 5, total("lowStockOnly=yes"))
	assert.EqualValues(t, 0, total("outOfStockOnly=1"))
	assert.EqualValues(t, 5, total("availableOnly=on"))
	assert.EqualValues(t, 0, total("availableOnly=on&outOfStockOnly=true"))
	assert.EqualValues(t, 1, total("searchString="+url.QueryEscape("ПЕРФОРАТОР")))

	w, body = get("/api/v1/categories")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["data"].(map[string]any)["categories"], 4)

	w, _ = get("/api/v1/equipment/x")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = get("/api/v1/equipment/999")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
