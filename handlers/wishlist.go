package handlers

import (
	"log/slog"
	"net/http"

	"storefront-service/pkg/ctxmanage"
	"storefront-service/pkg/logkey"

	"github.com/gin-gonic/gin"
)

// GetWishlist serves the saved products.
func (h *Handler) GetWishlist(c *gin.Context) {
	sid := sessionID(c)
	c.JSON(http.StatusOK, gin.H{"items": displayProducts(h.wishes.Items(sid))})
}

// ToggleWishlist adds the product if absent and removes it if present.
func (h *Handler) ToggleWishlist(c *gin.Context) {
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
	wishlisted := h.wishes.Toggle(sid, p)

	c.JSON(http.StatusOK, gin.H{
		"wishlisted": wishlisted,
		"items":      displayProducts(h.wishes.Items(sid)),
	})
}

// RemoveFromWishlist deletes an entry unconditionally.
func (h *Handler) RemoveFromWishlist(c *gin.Context) {
	sid := sessionID(c)
	h.wishes.Remove(sid, c.Param("id"))

	c.JSON(http.StatusOK, gin.H{"items": displayProducts(h.wishes.Items(sid))})
}

// MoveToCart moves a wishlist entry into the bag within one interaction.
func (h *Handler) MoveToCart(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)
	productID := c.Param("id")
	sid := sessionID(c)

	var found bool
	for _, p := range h.wishes.Items(sid) {
		if p.ID == productID {
			h.wishes.MoveToCart(sid, p, h.carts)
			found = true
			break
		}
	}
	if !found {
		slog.Error("product not in wishlist", slog.String(logkey.TraceID, traceId), slog.String("ProductID", productID))
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Product not in wishlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"wishlist": displayProducts(h.wishes.Items(sid)),
		"items":    displayItems(h.carts.Items(sid)),
		"total":    h.carts.Total(sid),
	})
}
