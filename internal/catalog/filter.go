package catalog

import (
	"strings"

	"storefront-service/internal/products"
)

// Filter returns the products whose name or category label contains the query
// as a case-insensitive substring, preserving input order. An empty query
// returns the input unchanged.
func Filter(list []products.Product, query string) []products.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return list
	}

	out := make([]products.Product, 0, len(list))
	for _, p := range list {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out
}

// FilterByCategory returns the products whose category label equals the given
// label, case-insensitively, preserving input order. An empty label returns
// the input unchanged.
func FilterByCategory(list []products.Product, category string) []products.Product {
	if category == "" {
		return list
	}

	out := make([]products.Product, 0, len(list))
	for _, p := range list {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}
