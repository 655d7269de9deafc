// Package catalog keeps the storefront's cached, eventually-consistent copy
// of the products and categories collections. Admin reads bypass this cache
// and always hit the database.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"storefront-service/internal/products"
	"storefront-service/internal/stores/kafka"
	"storefront-service/pkg/logkey"
)

// Cache holds the latest catalog snapshot. Refreshed when a catalog-updated
// event arrives and on a fallback interval when events are unavailable.
type Cache struct {
	conf products.Conf

	mu         sync.RWMutex
	products   []products.Product
	categories []products.Category
}

func NewCache(conf products.Conf) *Cache {
	return &Cache{conf: conf}
}

// Refresh re-reads both collections and swaps the snapshot.
func (c *Cache) Refresh(ctx context.Context) error {
	list, err := c.conf.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("refreshing products: %w", err)
	}
	cats, err := c.conf.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("refreshing categories: %w", err)
	}

	c.mu.Lock()
	c.products = list
	c.categories = cats
	c.mu.Unlock()
	return nil
}

// Run refreshes the snapshot whenever a catalog event arrives, with a ticker
// as the fallback when no consumer is configured. Blocks until ctx is done.
func (c *Cache) Run(ctx context.Context, consumer *kafka.Consumer, interval time.Duration) {
	var events <-chan kafka.CatalogEvent
	if consumer != nil {
		events = consumer.Events(ctx)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			slog.Info("catalog event received",
				slog.String("Collection", ev.Collection),
				slog.String("DocID", ev.DocID),
				slog.String("Action", ev.Action))
			if err := c.Refresh(ctx); err != nil {
				slog.Error("catalog refresh failed", slog.String(logkey.ERROR, err.Error()))
			}
		case <-ticker.C:
			if err := c.Refresh(ctx); err != nil {
				slog.Error("catalog refresh failed", slog.String(logkey.ERROR, err.Error()))
			}
		}
	}
}

// Products returns the cached product snapshot.
func (c *Cache) Products() []products.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]products.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Categories returns the cached category snapshot.
func (c *Cache) Categories() []products.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]products.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Product looks a single product up in the snapshot.
func (c *Cache) Product(id string) (products.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return products.Product{}, false
}
