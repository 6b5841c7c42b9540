package checkout_controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robomart-commerce/robomart-backend/blobstore"
	"github.com/robomart-commerce/robomart-backend/models"
	"github.com/robomart-commerce/robomart-backend/services"
)

// setAuth fakes the auth middleware: a non-empty userID is a logged-in
// shopper, role developer marks a staff account.
func setAuth(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != "" {
			c.Set("userID", userID)
			c.Set("userRole", role)
		}
		c.Next()
	}
}

func newCheckoutRouter(t *testing.T, userID, role string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	services.InitStores(blobstore.NewMemoryStore())

	r := gin.New()
	r.Use(setAuth(userID, role))
	r.POST("/api/checkout", Checkout)
	r.POST("/api/checkout/select", SelectPayment)
	r.POST("/api/orders", PlaceOrder)
	r.GET("/api/deliveries/current", CurrentDelivery)
	return r
}

func seedCart(t *testing.T, userID string) {
	t.Helper()
	_, err := services.GetCartService().AddOrMerge(context.Background(), userID,
		models.CartItem{ProductID: 7, Title: "Patrol bot", Price: 129000, Size: 270, Qty: 2})
	require.NoError(t, err)
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckout(t *testing.T) {
	t.Run("requires login", func(t *testing.T) {
		r := newCheckoutRouter(t, "", "")
		w := doJSON(r, http.MethodPost, "/api/checkout", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("developer accounts cannot purchase", func(t *testing.T) {
		r := newCheckoutRouter(t, "dev-1", models.RoleDeveloper)
		seedCart(t, "dev-1")
		w := doJSON(r, http.MethodPost, "/api/checkout", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("empty cart", func(t *testing.T) {
		r := newCheckoutRouter(t, "u1", models.RoleConsumer)
		w := doJSON(r, http.MethodPost, "/api/checkout", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("returns total and payment methods", func(t *testing.T) {
		r := newCheckoutRouter(t, "u1", models.RoleConsumer)
		seedCart(t, "u1")
		w := doJSON(r, http.MethodPost, "/api/checkout", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp models.ApiResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp.Data.(map[string]any)
		assert.Equal(t, float64(258000), data["totalPrice"])
		assert.ElementsMatch(t, []any{"kakao", "card"}, data["paymentMethods"].([]any))
	})
}

func TestSelectPayment(t *testing.T) {
	r := newCheckoutRouter(t, "u1", models.RoleConsumer)

	t.Run("redirect carries the method", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/checkout/select",
			models.SelectPaymentRequest{PaymentMethod: "card"})
		require.Equal(t, http.StatusOK, w.Code)

		var resp models.ApiResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp.Data.(map[string]any)
		assert.Equal(t, "/orders?pm=card", data["redirect"])
	})

	t.Run("unknown method", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/checkout/select",
			map[string]string{"paymentMethod": "bitcoin"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPlaceOrderEndpoint(t *testing.T) {
	t.Run("creates the delivery", func(t *testing.T) {
		r := newCheckoutRouter(t, "u1", models.RoleConsumer)
		seedCart(t, "u1")

		w := doJSON(r, http.MethodPost, "/api/orders", models.PlaceOrderRequest{
			Address:       "123 Teheran-ro",
			PaymentMethod: "kakao",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		// The slot is readable right away
		w = doJSON(r, http.MethodGet, "/api/deliveries/current", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp models.ApiResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp.Data.(map[string]any)
		assert.Equal(t, "READY", data["status"])
		assert.Equal(t, "kakao", data["paymentMethod"])

		// The cart survives the order
		items, _, err := services.GetCartService().Load(context.Background(), "u1")
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("empty cart", func(t *testing.T) {
		r := newCheckoutRouter(t, "u1", models.RoleConsumer)
		w := doJSON(r, http.MethodPost, "/api/orders", models.PlaceOrderRequest{
			Address:       "123 Teheran-ro",
			PaymentMethod: "card",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("address is required", func(t *testing.T) {
		r := newCheckoutRouter(t, "u1", models.RoleConsumer)
		seedCart(t, "u1")
		w := doJSON(r, http.MethodPost, "/api/orders", map[string]string{
			"paymentMethod": "card",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCurrentDeliveryEndpoint(t *testing.T) {
	r := newCheckoutRouter(t, "u1", models.RoleConsumer)
	w := doJSON(r, http.MethodGet, "/api/deliveries/current", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
