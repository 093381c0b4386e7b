package catalog

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"
)

// Sort orders for List.
const (
	SortPopular   = "popular"
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
)

// Filters narrows a List call. Zero values mean "no filter".
type Filters struct {
	Search      string
	Category    string
	Subcategory string
	Occasions   []string
	MinPrice    int
	MaxPrice    int
	SortBy      string
}

// ErrNotFound indicates a write targeted a product id that does not exist.
var ErrNotFound = errors.New("product not found")

// Repository is an in-memory product collection behind a fetch-like API.
// Every call sleeps for a configured delay to simulate backend latency; the
// delay is context-aware so callers can bail out early.
type Repository struct {
	mu       sync.RWMutex
	products []Product
	delay    time.Duration
}

// NewRepository seeds a repository with its own copy of products.
func NewRepository(products []Product, delay time.Duration) *Repository {
	cp := make([]Product, len(products))
	copy(cp, products)
	return &Repository{products: cp, delay: delay}
}

func (r *Repository) wait(ctx context.Context) error {
	if r.delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(r.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// List returns products matching the filters, sorted as requested.
func (r *Repository) List(ctx context.Context, f Filters) ([]Product, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Product, 0, len(r.products))
	for _, p := range r.products {
		if !matches(p, f) {
			continue
		}
		result = append(result, p)
	}

	switch f.SortBy {
	case SortPopular:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Popular && !result[j].Popular
		})
	case SortPriceLow:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price > result[j].Price
		})
	case SortNewest:
		// seed order is oldest-first; newest shows latest additions first
		for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
			result[i], result[j] = result[j], result[i]
		}
	}
	return result, nil
}

func matches(p Product, f Filters) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) &&
			!tagsContain(p.Tags, q) {
			return false
		}
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Subcategory != "" && p.Subcategory != f.Subcategory {
		return false
	}
	if len(f.Occasions) > 0 {
		found := false
		for _, o := range f.Occasions {
			if p.HasOccasion(o) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.MinPrice > 0 && p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	return true
}

func tagsContain(tags []string, q string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

// Get fetches a product by id. Returns (nil, nil) if not found.
func (r *Repository) Get(ctx context.Context, id string) (*Product, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

// Popular returns up to limit popular, available products.
func (r *Repository) Popular(ctx context.Context, limit int) ([]Product, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := []Product{}
	for _, p := range r.products {
		if p.Popular && p.Available {
			result = append(result, p)
			if limit > 0 && len(result) == limit {
				break
			}
		}
	}
	return result, nil
}

// Related returns up to limit products sharing a category, excluding the
// product itself.
func (r *Repository) Related(ctx context.Context, productID, category string, limit int) ([]Product, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := []Product{}
	for _, p := range r.products {
		if p.ID == productID || p.Category != category || !p.Available {
			continue
		}
		result = append(result, p)
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

// Create appends a new product. Admin path only.
func (r *Repository) Create(ctx context.Context, p Product) (*Product, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = append(r.products, p)
	return &p, nil
}

// Update replaces the product with matching id.
func (r *Repository) Update(ctx context.Context, p Product) (*Product, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == p.ID {
			r.products[i] = p
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

// Delete removes the product with matching id.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.wait(ctx); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
