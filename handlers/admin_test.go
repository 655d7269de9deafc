package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront-service/internal/cart"
	"storefront-service/internal/catalog"
	"storefront-service/internal/checkout"
	"storefront-service/internal/products"
	"storefront-service/internal/wishlist"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires the handlers over the in-memory repository, without the
// auth middleware, so the gateway behavior can be exercised directly.
func newTestRouter(t *testing.T) (*gin.Engine, products.Conf, *catalog.Cache) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conf, err := products.NewConf(products.NewMemoryRepository())
	require.NoError(t, err)

	cache := catalog.NewCache(conf)
	require.NoError(t, cache.Refresh(context.Background()))

	h := NewHandler(conf, cache, cart.NewStore(), wishlist.NewStore(), nil, checkout.Conf{
		StoreName:      "Trident Nova",
		WhatsAppNumber: "917871947562",
	})

	r := gin.New()
	r.GET("/products", h.ListProducts)
	r.GET("/cart", h.GetCart)
	r.POST("/cart", h.AddToCart)
	r.PATCH("/cart/:id", h.UpdateCartQuantity)
	r.POST("/checkout", h.Checkout)
	r.POST("/wishlist/toggle", h.ToggleWishlist)
	r.POST("/wishlist/:id/move-to-cart", h.MoveToCart)
	r.GET("/wishlist", h.GetWishlist)
	r.GET("/admin/products", h.AdminListProducts)
	r.POST("/admin/products", h.CreateProduct)
	r.PUT("/admin/products/:id", h.UpdateProduct)
	r.DELETE("/admin/products/:id", h.DeleteProduct)
	r.POST("/admin/categories", h.CreateCategory)
	return r, conf, cache
}

func doJSON(r *gin.Engine, method, target, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateProduct(t *testing.T) {
	r, conf, _ := newTestRouter(t)

	t.Run("creates a product from a text form", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/admin/products",
			`{"name":"Monitor","price":"12999.50","category":"Electronics","stock":"10"}`, nil)

		require.Equal(t, http.StatusOK, w.Code)

		list, err := conf.ListProducts(context.Background())
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Monitor", list[0].Name)
		assert.Equal(t, 12999.50, list[0].Price)
		assert.Equal(t, 10, list[0].Stock)
	})

	t.Run("unparsable price and stock coerce to zero", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/admin/products",
			`{"name":"Freebie","price":"not-a-number","category":"Misc","stock":"lots"}`, nil)

		require.Equal(t, http.StatusOK, w.Code)

		list, err := conf.ListProducts(context.Background())
		require.NoError(t, err)
		p := list[len(list)-1]
		assert.Equal(t, 0.0, p.Price)
		assert.Equal(t, 0, p.Stock)
	})

	t.Run("missing name is rejected", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/admin/products", `{"price":"10"}`, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty category falls back to the first existing one", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/admin/categories", `{"name":"Accessories"}`, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(r, http.MethodPost, "/admin/products", `{"name":"Strap","price":"199"}`, nil)
		require.Equal(t, http.StatusOK, w.Code)

		list, err := conf.ListProducts(context.Background())
		require.NoError(t, err)
		p := list[len(list)-1]
		assert.Equal(t, "Accessories", p.Category)
	})
}

func TestUpdateAndDeleteProduct(t *testing.T) {
	r, conf, _ := newTestRouter(t)

	created, err := conf.InsertProduct(context.Background(), products.NewProduct{Name: "Monitor", Price: 100})
	require.NoError(t, err)

	t.Run("update rewrites the document", func(t *testing.T) {
		w := doJSON(r, http.MethodPut, "/admin/products/"+created.ID,
			`{"name":"Monitor v2","price":"150","category":"Electronics","stock":"3"}`, nil)
		require.Equal(t, http.StatusOK, w.Code)

		got, err := conf.GetProductByID(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Monitor v2", got.Name)
		assert.Equal(t, 150.0, got.Price)
		assert.Equal(t, created.CreatedAt, got.CreatedAt)
	})

	t.Run("update of an unknown id is 404", func(t *testing.T) {
		w := doJSON(r, http.MethodPut, "/admin/products/missing", `{"name":"X","price":"1"}`, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete removes the document", func(t *testing.T) {
		w := doJSON(r, http.MethodDelete, "/admin/products/"+created.ID, "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		_, err := conf.GetProductByID(context.Background(), created.ID)
		assert.Error(t, err)
	})

	t.Run("delete of an unknown id is 404", func(t *testing.T) {
		w := doJSON(r, http.MethodDelete, "/admin/products/"+created.ID, "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAdminSearch(t *testing.T) {
	r, conf, _ := newTestRouter(t)

	ctx := context.Background()
	_, err := conf.InsertProduct(ctx, products.NewProduct{Name: "Ultra Slim LED Monitor", Category: "Electronics"})
	require.NoError(t, err)
	_, err = conf.InsertProduct(ctx, products.NewProduct{Name: "Leather Wallet", Category: "Accessories"})
	require.NoError(t, err)

	w := doJSON(r, http.MethodGet, "/admin/products?search=mon", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ultra Slim LED Monitor")
	assert.NotContains(t, w.Body.String(), "Leather Wallet")
}
