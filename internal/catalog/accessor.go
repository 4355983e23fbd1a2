// Package catalog fetches the product list and derives filtered listings from it.
package catalog

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/nikolayk812/jewelry-storefront/internal/domain"
	"github.com/nikolayk812/jewelry-storefront/internal/port"
	"go.uber.org/zap"
)

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Listing is a read-only view of the catalog under the current filters.
type Listing struct {
	Status   Status
	Products []domain.Product
	Category string
	Search   string
	Err      error
}

// Empty reports a loaded catalog with no matches, as opposed to loading or failure.
func (l Listing) Empty() bool {
	return l.Status == StatusReady && len(l.Products) == 0
}

type Accessor struct {
	api    port.CatalogAPI
	logger *zap.Logger

	mu       sync.RWMutex
	status   Status
	products []domain.Product
	err      error
	category string
	search   string
}

func NewAccessor(api port.CatalogAPI, logger *zap.Logger) *Accessor {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Accessor{
		api:      api,
		logger:   logger,
		category: domain.CategoryAll,
	}
}

// Load fetches the full product list. Listings stay readable while it runs.
func (a *Accessor) Load(ctx context.Context) error {
	a.mu.Lock()
	a.status = StatusLoading
	a.err = nil
	a.mu.Unlock()

	products, err := a.api.ListProducts(ctx)

	a.mu.Lock()
	defer a.mu.Unlock()

	if err != nil {
		a.status = StatusFailed
		a.err = err
		a.logger.Error("failed to load catalog", zap.Error(err))
		return fmt.Errorf("api.ListProducts: %w", err)
	}

	a.products = products
	a.status = StatusReady
	a.logger.Debug("catalog loaded", zap.Int("products", len(products)))

	return nil
}

// Retry re-issues the catalog request.
func (a *Accessor) Retry(ctx context.Context) error {
	return a.Load(ctx)
}

func (a *Accessor) SetCategory(category string) {
	if category == "" {
		category = domain.CategoryAll
	}

	a.mu.Lock()
	a.category = category
	a.mu.Unlock()
}

// SetSearch changes the search term. A changed term resets the category to
// CategoryAll and reports true so the caller can scroll to the listing.
func (a *Accessor) SetSearch(term string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if term == a.search {
		return false
	}

	a.search = term
	a.category = domain.CategoryAll

	return true
}

func (a *Accessor) Listing() Listing {
	a.mu.RLock()
	defer a.mu.RUnlock()

	listing := Listing{
		Status:   a.status,
		Category: a.category,
		Search:   a.search,
		Err:      a.err,
	}

	if a.status == StatusReady {
		listing.Products = slices.Clone(Filter(a.products, a.category, a.search))
	}

	return listing
}

// Categories lists the categories of the loaded catalog.
func (a *Accessor) Categories() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return Categories(a.products)
}

// Product looks up a loaded product by id.
func (a *Accessor) Product(productID string) (domain.Product, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	idx := slices.IndexFunc(a.products, func(p domain.Product) bool {
		return p.ID == productID
	})
	if idx < 0 {
		return domain.Product{}, false
	}
	return a.products[idx], true
}
