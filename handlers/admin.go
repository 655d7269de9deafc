package handlers

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"storefront-service/internal/catalog"
	"storefront-service/internal/products"
	"storefront-service/internal/stores/kafka"
	"storefront-service/pkg/ctxmanage"
	"storefront-service/pkg/logkey"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// productForm is the admin payload. Price and stock arrive as text and are
// coerced, never rejected: unparsable values become 0, matching the
// storefront's deliberate leniency.
type productForm struct {
	Name        string `json:"name" validate:"required"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Stock       string `json:"stock"`
}

func coercePrice(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func coerceStock(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// toNewProduct coerces the form into a catalog document, defaulting the
// category to the first existing one like the original admin form.
func (h *Handler) toNewProduct(ctx context.Context, form productForm) products.NewProduct {
	category := form.Category
	if category == "" {
		category = "Uncategorized"
		if cats, err := h.conf.ListCategories(ctx); err == nil && len(cats) > 0 {
			category = cats[0].Name
		}
	}
	return products.NewProduct{
		Name:        form.Name,
		Price:       coercePrice(form.Price),
		Category:    category,
		Description: form.Description,
		Image:       form.Image,
		Stock:       coerceStock(form.Stock),
	}
}

// publishCatalogEvent notifies subscribed catalog caches about a mutation.
// Best effort: a publish failure is logged and the mutation still succeeds,
// the interval refresh catches the cache up.
func (h *Handler) publishCatalogEvent(traceId, collection, docID, action string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		ev := kafka.CatalogEvent{
			Collection: collection,
			DocID:      docID,
			Action:     action,
			OccurredAt: time.Now().UTC(),
		}
		if err := h.producer.PublishCatalogEvent(ctx, ev); err != nil {
			slog.Error("error publishing catalog event", slog.String(logkey.TraceID, traceId),
				slog.String("Collection", collection), slog.String(logkey.ERROR, err.Error()))
		}
	}()
}

// AdminListProducts always reads live from the database, with the same
// free-text search the storefront filter uses.
func (h *Handler) AdminListProducts(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)

	list, err := h.conf.ListProducts(c.Request.Context())
	if err != nil {
		slog.Error("error in fetching products", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	list = catalog.Filter(list, c.Query("search"))
	c.JSON(http.StatusOK, gin.H{"products": list})
}

func (h *Handler) CreateProduct(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)

	// Check if the size of the request body exceeds 5 KB
	if c.Request.ContentLength > 5*1024 {
		slog.Error("request body limit breached", slog.String(logkey.TraceID, traceId), slog.Int64("Size Received", c.Request.ContentLength))
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Request body too large."})
		return
	}

	var form productForm
	if err := c.ShouldBindJSON(&form); err != nil {
		slog.Error("json validation error", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": http.StatusText(http.StatusBadRequest)})
		return
	}

	if err := h.validate.Struct(form); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			slog.Error("validation failed", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": vErrs[0].Field() + " value missing"})
			return
		}
		slog.Error("validation failed", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": http.StatusText(http.StatusBadRequest)})
		return
	}

	insertedProduct, err := h.conf.InsertProduct(c.Request.Context(), h.toNewProduct(c.Request.Context(), form))
	if err != nil {
		slog.Error("error in inserting the product", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Product Creation Failed"})
		return
	}

	h.publishCatalogEvent(traceId, "products", insertedProduct.ID, kafka.ActionCreated)
	c.JSON(http.StatusOK, insertedProduct)
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)

	productID := c.Param("id")
	if productID == "" {
		slog.Error("missing product ID in request", slog.String(logkey.TraceID, traceId))
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
		return
	}

	// Fetch the current product so an update of a vanished id reports 404.
	_, err := h.conf.GetProductByID(c.Request.Context(), productID)
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

	var form productForm
	if err := c.ShouldBindJSON(&form); err != nil {
		slog.Error("json validation error", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload"})
		return
	}
	if err := h.validate.Struct(form); err != nil {
		slog.Error("validation failed", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "name value missing"})
		return
	}

	product, err := h.conf.UpdateProduct(c.Request.Context(), productID, h.toNewProduct(c.Request.Context(), form))
	if err != nil {
		slog.Error("error in updating the product", slog.String(logkey.TraceID, traceId), slog.String("ProductID", productID), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Product update failed"})
		return
	}

	h.publishCatalogEvent(traceId, "products", productID, kafka.ActionUpdated)

	slog.Info("product updated successfully", slog.String(logkey.TraceID, traceId), slog.String("ProductID", productID))
	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": product})
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)
	productID := c.Param("id")

	err := h.conf.DeleteProduct(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			slog.Error("product not found", slog.String(logkey.TraceID, traceId), slog.String("ProductID", productID))
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		slog.Error("error in deleting the product", slog.String(logkey.TraceID, traceId), slog.String("ProductID", productID), slog.String(logkey.ERROR, err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Product deletion failed"})
		return
	}

	h.publishCatalogEvent(traceId, "products", productID, kafka.ActionDeleted)
	c.JSON(http.StatusOK, gin.H{"message": "Product successfully deleted"})
}

func (h *Handler) AdminListCategories(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)

	list, err := h.conf.ListCategories(c.Request.Context())
	if err != nil {
		slog.Error("error in fetching categories", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": list})
}

func (h *Handler) CreateCategory(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)

	var request struct {
		Name string `json:"name" validate:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil || strings.TrimSpace(request.Name) == "" {
		slog.Error("invalid category payload", slog.String(logkey.TraceID, traceId))
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
		return
	}

	cat, err := h.conf.InsertCategory(c.Request.Context(), strings.TrimSpace(request.Name))
	if err != nil {
		slog.Error("error in inserting the category", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Category Creation Failed"})
		return
	}

	h.publishCatalogEvent(traceId, "categories", cat.ID, kafka.ActionCreated)
	c.JSON(http.StatusOK, cat)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)
	categoryID := c.Param("id")

	err := h.conf.DeleteCategory(c.Request.Context(), categoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			slog.Error("category not found", slog.String(logkey.TraceID, traceId), slog.String("CategoryID", categoryID))
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		slog.Error("error in deleting the category", slog.String(logkey.TraceID, traceId), slog.String("CategoryID", categoryID), slog.String(logkey.ERROR, err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Category deletion failed"})
		return
	}

	h.publishCatalogEvent(traceId, "categories", categoryID, kafka.ActionDeleted)
	c.JSON(http.StatusOK, gin.H{"message": "Category successfully deleted"})
}
