package handlers

import (
	"fmt"
	"net/http"
	"os"

	"storefront-service/config"
	"storefront-service/internal/auth"
	"storefront-service/internal/cart"
	"storefront-service/internal/catalog"
	"storefront-service/internal/checkout"
	"storefront-service/internal/products"
	"storefront-service/internal/stores/kafka"
	"storefront-service/internal/wishlist"
	"storefront-service/middleware"
	"storefront-service/pkg/ctxmanage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	conf     products.Conf
	cache    *catalog.Cache
	carts    *cart.Store
	wishes   *wishlist.Store
	producer *kafka.Producer
	checkout checkout.Conf
	validate *validator.Validate
}

func NewHandler(conf products.Conf, cache *catalog.Cache, carts *cart.Store, wishes *wishlist.Store, producer *kafka.Producer, co checkout.Conf) *Handler {
	return &Handler{
		conf:     conf,
		cache:    cache,
		carts:    carts,
		wishes:   wishes,
		producer: producer,
		checkout: co,
		validate: validator.New(),
	}
}

// API wires the storefront and admin routes onto a gin engine.
func API(cfg config.Conf, conf products.Conf, cache *catalog.Cache, carts *cart.Store, wishes *wishlist.Store, producer *kafka.Producer, keys *auth.Keys) *gin.Engine {

	r := gin.New()
	mode := os.Getenv("GIN_MODE")
	if mode == gin.ReleaseMode {
		gin.SetMode(mode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	m := middleware.NewMid(keys)
	h := NewHandler(conf, cache, carts, wishes, producer, checkout.Conf{
		StoreName:      cfg.StoreName,
		WhatsAppNumber: cfg.WhatsAppNumber,
	})

	r.Use(middleware.Logger(), gin.Recovery())
	r.GET("/ping", healthCheck)

	v1 := r.Group(cfg.EndpointPrefix)
	{
		// Storefront reads are served from the catalog cache; no login
		// needed for shopping, a session cookie keys cart and wishlist.
		v1.GET("/products", h.ListProducts)
		v1.GET("/products/:id", h.GetProduct)
		v1.GET("/categories", h.ListCategories)

		v1.GET("/cart", h.GetCart)
		v1.POST("/cart", h.AddToCart)
		v1.PATCH("/cart/:id", h.UpdateCartQuantity)
		v1.DELETE("/cart/:id", h.RemoveFromCart)
		v1.DELETE("/cart", h.ClearCart)

		v1.GET("/wishlist", h.GetWishlist)
		v1.POST("/wishlist/toggle", h.ToggleWishlist)
		v1.DELETE("/wishlist/:id", h.RemoveFromWishlist)
		v1.POST("/wishlist/:id/move-to-cart", h.MoveToCart)

		v1.POST("/checkout", h.Checkout)

		admin := v1.Group("/admin")
		admin.Use(m.Authentication())
		{
			admin.GET("/products", m.Authorize(h.AdminListProducts, auth.RoleAdmin))
			admin.POST("/products", m.Authorize(h.CreateProduct, auth.RoleAdmin))
			admin.PUT("/products/:id", m.Authorize(h.UpdateProduct, auth.RoleAdmin))
			admin.DELETE("/products/:id", m.Authorize(h.DeleteProduct, auth.RoleAdmin))

			admin.GET("/categories", m.Authorize(h.AdminListCategories, auth.RoleAdmin))
			admin.POST("/categories", m.Authorize(h.CreateCategory, auth.RoleAdmin))
			admin.DELETE("/categories/:id", m.Authorize(h.DeleteCategory, auth.RoleAdmin))
		}
	}

	return r
}

func healthCheck(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)

	fmt.Println("healthCheck handler ", traceId)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
