package handlers

import (
	"log/slog"
	"net/http"

	"storefront-service/internal/cart"
	"storefront-service/internal/drive"
	"storefront-service/pkg/ctxmanage"
	"storefront-service/pkg/logkey"

	"github.com/gin-gonic/gin"
)

func displayItems(items []cart.Item) []cart.Item {
	out := make([]cart.Item, len(items))
	for i, it := range items {
		it.Image = drive.ConvertDriveLink(it.Image)
		out[i] = it
	}
	return out
}

// GetCart serves the bag with its derived total, recomputed on every read.
func (h *Handler) GetCart(c *gin.Context) {
	sid := sessionID(c)
	items := h.carts.Items(sid)

	c.JSON(http.StatusOK, gin.H{
		"items": displayItems(items),
		"total": h.carts.Total(sid),
	})
}

// AddToCart inserts a line for the product or increments the existing one.
func (h *Handler) AddToCart(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)

	var request struct {
		ProductID string `json:"product_id"`
	}
	if err := c.ShouldBindJSON(&request); err != nil || request.ProductID == "" {
		slog.Error("invalid request body", slog.String(logkey.TraceID, traceId))
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Product ID is required"})
		return
	}

	p, ok := h.lookupProduct(c, request.ProductID)
	if !ok {
		slog.Error("product not found", slog.String(logkey.TraceID, traceId), slog.String("ProductID", request.ProductID))
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	sid := sessionID(c)
	h.carts.Add(sid, p)

	slog.Info("product added to cart", slog.String(logkey.TraceID, traceId),
		slog.String("ProductID", p.ID), slog.String("SessionID", sid))
	c.JSON(http.StatusOK, gin.H{
		"items": displayItems(h.carts.Items(sid)),
		"total": h.carts.Total(sid),
	})
}

// UpdateCartQuantity applies a signed quantity delta to a line. The line is
// removed when the quantity would fall to zero or below.
func (h *Handler) UpdateCartQuantity(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)
	productID := c.Param("id")

	var request struct {
		Delta int `json:"delta"`
	}
	if err := c.ShouldBindJSON(&request); err != nil || request.Delta == 0 {
		slog.Error("invalid request body", slog.String(logkey.TraceID, traceId))
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "A non-zero delta is required"})
		return
	}

	sid := sessionID(c)
	h.carts.UpdateQuantity(sid, productID, request.Delta)

	c.JSON(http.StatusOK, gin.H{
		"items": displayItems(h.carts.Items(sid)),
		"total": h.carts.Total(sid),
	})
}

// RemoveFromCart deletes a line unconditionally.
func (h *Handler) RemoveFromCart(c *gin.Context) {
	sid := sessionID(c)
	h.carts.Remove(sid, c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"items": displayItems(h.carts.Items(sid)),
		"total": h.carts.Total(sid),
	})
}

// ClearCart empties the bag. Checkout never does this implicitly.
func (h *Handler) ClearCart(c *gin.Context) {
	sid := sessionID(c)
	h.carts.Clear(sid)

	c.JSON(http.StatusOK, gin.H{"items": []cart.Item{}, "total": 0})
}
