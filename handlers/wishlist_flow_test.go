package handlers

import (
	"context"
	"net/http"
	"testing"

	"storefront-service/internal/products"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistFlow(t *testing.T) {
	r, conf, cache := newTestRouter(t)

	ctx := context.Background()
	p, err := conf.InsertProduct(ctx, products.NewProduct{Name: "Wallet", Price: 799})
	require.NoError(t, err)
	require.NoError(t, cache.Refresh(ctx))

	w := doJSON(r, http.MethodPost, "/wishlist/toggle", `{"product_id":"`+p.ID+`"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"wishlisted":true`)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	t.Run("move to cart empties the wishlist and fills the bag", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/wishlist/"+p.ID+"/move-to-cart", "", cookies)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(r, http.MethodGet, "/wishlist", "", cookies)
		assert.NotContains(t, w.Body.String(), p.ID)

		w = doJSON(r, http.MethodGet, "/cart", "", cookies)
		assert.Contains(t, w.Body.String(), p.ID)
	})

	t.Run("moving a product that is not wishlisted is 404", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/wishlist/"+p.ID+"/move-to-cart", "", cookies)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
