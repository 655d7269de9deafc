package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"storefront-service/internal/checkout"
	"storefront-service/pkg/ctxmanage"
	"storefront-service/pkg/logkey"

	"github.com/gin-gonic/gin"
)

// Checkout returns the WhatsApp deep link for the current bag. The bag is
// left as-is; the shopper clears it manually if they want to.
func (h *Handler) Checkout(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)
	sid := sessionID(c)

	items := h.carts.Items(sid)
	link, err := h.checkout.OrderLink(items)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"message": "Cart is empty"})
			return
		}
		slog.Error("error building checkout link", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Failed to build checkout link"})
		return
	}

	slog.Info("checkout link issued", slog.String(logkey.TraceID, traceId),
		slog.String("SessionID", sid), slog.Int("Items", len(items)))
	c.JSON(http.StatusOK, gin.H{
		"checkout_url": link,
		"total":        h.carts.Total(sid),
	})
}
