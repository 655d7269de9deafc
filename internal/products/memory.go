package products

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository is an in-process Repository used by tests and local runs
// without a database. Listing order matches insertion order, like the
// postgres binding's created_at ordering.
type MemoryRepository struct {
	mu         sync.RWMutex
	products   map[string]Product
	categories map[string]Category
	seq        int
	order      map[string]int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		products:   make(map[string]Product),
		categories: make(map[string]Category),
		order:      make(map[string]int),
	}
}

func (r *MemoryRepository) InsertProduct(_ context.Context, np NewProduct) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	p := Product{
		ID:          uuid.NewString(),
		Name:        np.Name,
		Price:       np.Price,
		Category:    np.Category,
		Description: np.Description,
		Image:       np.Image,
		Stock:       np.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.products[p.ID] = p
	r.order[p.ID] = r.seq
	r.seq++
	return p, nil
}

func (r *MemoryRepository) GetProductByID(_ context.Context, id string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return Product{}, sql.ErrNoRows
	}
	return p, nil
}

func (r *MemoryRepository) UpdateProduct(_ context.Context, id string, np NewProduct) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return Product{}, sql.ErrNoRows
	}
	p.Name = np.Name
	p.Price = np.Price
	p.Category = np.Category
	p.Description = np.Description
	p.Image = np.Image
	p.Stock = np.Stock
	p.UpdatedAt = time.Now().UTC()
	r.products[id] = p
	return p, nil
}

func (r *MemoryRepository) DeleteProduct(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return sql.ErrNoRows
	}
	delete(r.products, id)
	delete(r.order, id)
	return nil
}

func (r *MemoryRepository) ListProducts(_ context.Context) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]Product, 0, len(r.products))
	for _, p := range r.products {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool {
		return r.order[list[i].ID] < r.order[list[j].ID]
	})
	return list, nil
}

func (r *MemoryRepository) InsertCategory(_ context.Context, name string) (Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cat := Category{ID: uuid.NewString(), Name: name}
	r.categories[cat.ID] = cat
	return cat, nil
}

func (r *MemoryRepository) DeleteCategory(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[id]; !ok {
		return sql.ErrNoRows
	}
	delete(r.categories, id)
	return nil
}

func (r *MemoryRepository) ListCategories(_ context.Context) ([]Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]Category, 0, len(r.categories))
	for _, cat := range r.categories {
		list = append(list, cat)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}
