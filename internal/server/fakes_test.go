package server_test

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/nikolayk812/jewelry-storefront/internal/domain"
	"github.com/nikolayk812/jewelry-storefront/internal/port"
	"github.com/nikolayk812/jewelry-storefront/internal/server"
)

// store is an in-memory implementation of every repository port. err, when
// set, is returned by every call.
type store struct {
	mu       sync.Mutex
	err      error
	products []domain.Product
	carts    map[string][]domain.CartItem
	orders   map[string][]domain.Order
	profiles map[string]domain.Profile
	contacts []domain.ContactMessage
}

func newStore(products ...domain.Product) *store {
	return &store{
		products: products,
		carts:    map[string][]domain.CartItem{},
		orders:   map[string][]domain.Order{},
		profiles: map[string]domain.Profile{},
	}
}

func (s *store) repositories() server.Repositories {
	return server.Repositories{
		Products: productRepo{s},
		Carts:    cartRepo{s},
		Orders:   orderRepo{s},
		Profiles: profileRepo{s},
		Contacts: contactRepo{s},
	}
}

func (s *store) product(productID string) (domain.Product, bool) {
	idx := slices.IndexFunc(s.products, func(p domain.Product) bool { return p.ID == productID })
	if idx < 0 {
		return domain.Product{}, false
	}
	return s.products[idx], true
}

func (s *store) savedContacts() []domain.ContactMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.contacts)
}

type productRepo struct{ s *store }

func (r productRepo) ListProducts(_ context.Context) ([]domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return slices.Clone(r.s.products), r.s.err
}

func (r productRepo) GetProduct(_ context.Context, productID string) (domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return domain.Product{}, r.s.err
	}
	p, ok := r.s.product(productID)
	if !ok {
		return domain.Product{}, port.ErrNotFound
	}
	return p, nil
}

func (r productRepo) UpsertProduct(_ context.Context, p domain.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products = append(r.s.products, p)
	return r.s.err
}

type cartRepo struct{ s *store }

func (r cartRepo) GetCart(_ context.Context, ownerID string) (domain.Cart, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return domain.Cart{}, r.s.err
	}
	return domain.Cart{OwnerID: ownerID, Items: slices.Clone(r.s.carts[ownerID])}, nil
}

func (r cartRepo) AddItem(_ context.Context, ownerID, productID string, quantity int) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return 0, r.s.err
	}

	p, ok := r.s.product(productID)
	if !ok {
		return 0, fmt.Errorf("q.AddItem: %w", port.ErrNotFound)
	}

	items := r.s.carts[ownerID]
	for i := range items {
		if items[i].Product.ID == productID {
			items[i].Quantity += quantity
			return items[i].Quantity, nil
		}
	}
	r.s.carts[ownerID] = append(items, domain.CartItem{Product: p, Quantity: quantity, CreatedAt: time.Now()})
	return quantity, nil
}

func (r cartRepo) UpdateItem(_ context.Context, ownerID, productID string, quantity int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return r.s.err
	}

	items := r.s.carts[ownerID]
	for i := range items {
		if items[i].Product.ID == productID {
			items[i].Quantity = quantity
			return nil
		}
	}
	return fmt.Errorf("q.UpdateItem: %w", port.ErrNotFound)
}

func (r cartRepo) DeleteItem(_ context.Context, ownerID, productID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return false, r.s.err
	}

	items := r.s.carts[ownerID]
	idx := slices.IndexFunc(items, func(item domain.CartItem) bool { return item.Product.ID == productID })
	if idx < 0 {
		return false, nil
	}
	r.s.carts[ownerID] = slices.Delete(items, idx, idx+1)
	return true, nil
}

type orderRepo struct{ s *store }

func (r orderRepo) PlaceOrder(_ context.Context, ownerID string, order domain.Order) (domain.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return domain.Order{}, r.s.err
	}

	now := time.Now().UTC()
	order.ID = int64(len(r.s.orders[ownerID]) + 1)
	order.OrderID = domain.NewOrderID(now)
	order.CreatedAt = now
	order.TotalAmount = domain.Purchase{Items: order.Items}.Total()

	r.s.orders[ownerID] = append([]domain.Order{order}, r.s.orders[ownerID]...)
	delete(r.s.carts, ownerID)
	return order, nil
}

func (r orderRepo) ListOrders(_ context.Context, ownerID string) ([]domain.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return slices.Clone(r.s.orders[ownerID]), r.s.err
}

type profileRepo struct{ s *store }

func (r profileRepo) GetProfile(_ context.Context, ownerID string) (domain.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return domain.Profile{}, r.s.err
	}
	p, ok := r.s.profiles[ownerID]
	if !ok {
		return domain.Profile{}, fmt.Errorf("q.GetProfile: %w", port.ErrNotFound)
	}
	return p, nil
}

func (r profileRepo) SaveProfile(_ context.Context, ownerID string, p domain.Profile) (domain.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return domain.Profile{}, r.s.err
	}
	r.s.profiles[ownerID] = p
	return p, nil
}

type contactRepo struct{ s *store }

func (r contactRepo) SaveMessage(_ context.Context, msg domain.ContactMessage) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return r.s.err
	}
	r.s.contacts = append(r.s.contacts, msg)
	return nil
}
