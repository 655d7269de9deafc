package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"storefront-service/internal/products"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartFlow(t *testing.T) {
	r, conf, cache := newTestRouter(t)

	ctx := context.Background()
	p, err := conf.InsertProduct(ctx, products.NewProduct{Name: "Monitor", Price: 12999, Category: "Electronics"})
	require.NoError(t, err)
	require.NoError(t, cache.Refresh(ctx))

	// First touch mints the session cookie; reuse it for the whole flow.
	w := doJSON(r, http.MethodPost, "/cart", `{"product_id":"`+p.ID+`"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	t.Run("second add increments the same line", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/cart", `{"product_id":"`+p.ID+`"}`, cookies)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Items []struct {
				ID       string `json:"id"`
				Quantity int    `json:"quantity"`
			} `json:"items"`
			Total float64 `json:"total"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Items, 1)
		assert.Equal(t, 2, resp.Items[0].Quantity)
		assert.Equal(t, 25998.0, resp.Total)
	})

	t.Run("negative delta below one removes the line", func(t *testing.T) {
		w := doJSON(r, http.MethodPatch, "/cart/"+p.ID, `{"delta":-2}`, cookies)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"items":[]`)
	})

	t.Run("checkout of an empty bag is refused", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/checkout", "", cookies)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("checkout issues a deep link and keeps the bag", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/cart", `{"product_id":"`+p.ID+`"}`, cookies)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(r, http.MethodPost, "/checkout", "", cookies)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "https://wa.me/917871947562?text=")

		// The bag is not cleared by checkout.
		w = doJSON(r, http.MethodGet, "/cart", "", cookies)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), p.ID)
	})

	t.Run("unknown product cannot be added", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/cart", `{"product_id":"missing"}`, cookies)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
