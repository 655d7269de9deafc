package products

import (
	"context"
	"fmt"
)

// Repository is the narrow catalog persistence capability the rest of the
// service depends on. The postgres implementation is the production binding;
// MemoryRepository backs tests.
type Repository interface {
	InsertProduct(ctx context.Context, np NewProduct) (Product, error)
	GetProductByID(ctx context.Context, id string) (Product, error)
	UpdateProduct(ctx context.Context, id string, np NewProduct) (Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ListProducts(ctx context.Context) ([]Product, error)

	InsertCategory(ctx context.Context, name string) (Category, error)
	DeleteCategory(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]Category, error)
}

// Conf wraps the repository interface so handler packages depend on a struct
// rather than on a concrete store type.
type Conf struct {
	Repository
}

func NewConf(r Repository) (Conf, error) {
	if r == nil {
		return Conf{}, fmt.Errorf("repository is nil")
	}
	return Conf{Repository: r}, nil
}
