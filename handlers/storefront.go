package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"storefront-service/internal/catalog"
	"storefront-service/internal/drive"
	"storefront-service/internal/products"
	"storefront-service/pkg/ctxmanage"
	"storefront-service/pkg/logkey"

	"github.com/gin-gonic/gin"
)

// displayProduct swaps the stored drive share link for the embeddable URL,
// the same conversion the original UI applies at render time.
func displayProduct(p products.Product) products.Product {
	p.Image = drive.ConvertDriveLink(p.Image)
	return p
}

func displayProducts(list []products.Product) []products.Product {
	out := make([]products.Product, len(list))
	for i, p := range list {
		out[i] = displayProduct(p)
	}
	return out
}

// ListProducts serves the cached catalog with optional free-text search and
// category filters.
func (h *Handler) ListProducts(c *gin.Context) {
	list := h.cache.Products()
	list = catalog.FilterByCategory(list, c.Query("category"))
	list = catalog.Filter(list, c.Query("search"))

	c.JSON(http.StatusOK, gin.H{"products": displayProducts(list)})
}

// GetProduct serves a single product, falling back to the database when the
// cache has not caught up yet.
func (h *Handler) GetProduct(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)
	productID := c.Param("id")

	if p, ok := h.cache.Product(productID); ok {
		c.JSON(http.StatusOK, displayProduct(p))
		return
	}

	p, err := h.conf.GetProductByID(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			slog.Error("product not found", slog.String(logkey.TraceID, traceId), slog.String("ProductID", productID))
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			slog.Error("error in retrieving product", slog.String(logkey.TraceID, traceId), slog.String("ProductID", productID), slog.String(logkey.ERROR, err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		}
		return
	}
	c.JSON(http.StatusOK, displayProduct(p))
}

// ListCategories serves the cached category labels.
func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.cache.Categories()})
}

// lookupProduct resolves a product id through the cache with a database
// fallback, used by the cart and wishlist intents.
func (h *Handler) lookupProduct(c *gin.Context, productID string) (products.Product, bool) {
	if p, ok := h.cache.Product(productID); ok {
		return p, true
	}
	p, err := h.conf.GetProductByID(c.Request.Context(), productID)
	if err != nil {
		return products.Product{}, false
	}
	return p, true
}
