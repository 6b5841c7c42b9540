package product_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/robomart-commerce/robomart-backend/config"
	"github.com/robomart-commerce/robomart-backend/models"
)

func setupProductDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))
	config.DB = db

	seed := []models.Product{
		{Title: "Patrol bot", Slug: "patrol-bot", Price: 129000, Category1: "Outdoor", Category2: "Patrol", MenuID: 5,
			Sizes: models.SizeList{{Size: 270, Stock: 3}}, Status: "Active"},
		{Title: "Cleaning bot", Slug: "cleaning-bot", Price: 89000, Category1: "Indoor", Category2: "Cleaning", MenuID: 8,
			Sizes: models.SizeList{{Size: 0, Stock: 10}}, Status: "Active"},
		{Title: "Prototype bot", Slug: "prototype-bot", Price: 999000, Category1: "Indoor", MenuID: 8,
			Sizes: models.SizeList{}, Status: "Draft"},
	}
	require.NoError(t, db.Create(&seed).Error)
}

func newProductRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	setupProductDB(t)

	r := gin.New()
	r.GET("/api/products", ListProducts)
	r.GET("/api/products/:id", GetProductByID)
	r.GET("/api/products/slug/:slug", GetProductBySlug)
	return r
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func decodeProducts(t *testing.T, w *httptest.ResponseRecorder) ([]models.Product, models.ApiResponse) {
	t.Helper()
	var resp models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var products []models.Product
	require.NoError(t, json.Unmarshal(raw, &products))
	return products, resp
}

func TestListProducts(t *testing.T) {
	r := newProductRouter(t)

	t.Run("drafts are hidden", func(t *testing.T) {
		w := doGet(r, "/api/products")
		require.Equal(t, http.StatusOK, w.Code)
		products, resp := decodeProducts(t, w)
		assert.Len(t, products, 2)
		require.NotNil(t, resp.Meta)
		assert.Equal(t, 2, resp.Meta.Total)
	})

	t.Run("category filter", func(t *testing.T) {
		w := doGet(r, "/api/products?category1=Indoor")
		require.Equal(t, http.StatusOK, w.Code)
		products, _ := decodeProducts(t, w)
		require.Len(t, products, 1)
		assert.Equal(t, "cleaning-bot", products[0].Slug)
	})

	t.Run("menu filter", func(t *testing.T) {
		w := doGet(r, "/api/products?menuId=5")
		require.Equal(t, http.StatusOK, w.Code)
		products, _ := decodeProducts(t, w)
		require.Len(t, products, 1)
		assert.Equal(t, "patrol-bot", products[0].Slug)
	})

	t.Run("pagination meta", func(t *testing.T) {
		w := doGet(r, "/api/products?page=1&limit=1")
		require.Equal(t, http.StatusOK, w.Code)
		products, resp := decodeProducts(t, w)
		assert.Len(t, products, 1)
		require.NotNil(t, resp.Meta)
		assert.Equal(t, 2, resp.Meta.Total)
		assert.Equal(t, 2, resp.Meta.TotalPages)
	})
}

func TestGetProductByID(t *testing.T) {
	r := newProductRouter(t)

	w := doGet(r, "/api/products/1")
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("invalid id", func(t *testing.T) {
		w := doGet(r, "/api/products/abc")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("drafts are not reachable", func(t *testing.T) {
		w := doGet(r, "/api/products/3")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetProductBySlug(t *testing.T) {
	r := newProductRouter(t)

	w := doGet(r, "/api/products/slug/patrol-bot")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]any)
	assert.Equal(t, float64(1), data["views"])

	t.Run("each view bumps the counter", func(t *testing.T) {
		w := doGet(r, "/api/products/slug/patrol-bot")
		require.Equal(t, http.StatusOK, w.Code)
		var resp models.ApiResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp.Data.(map[string]any)
		assert.Equal(t, float64(2), data["views"])
	})

	t.Run("unknown slug", func(t *testing.T) {
		w := doGet(r, "/api/products/slug/nope")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
