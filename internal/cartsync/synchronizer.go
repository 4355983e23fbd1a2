// Package cartsync owns the session cart. Every mutation is applied locally
// right away and mirrored to the remote API on a best-effort basis: remote
// failures are reported to the logger and never roll local state back.
package cartsync

import (
	"context"
	"fmt"
	"sync"

	"github.com/nikolayk812/jewelry-storefront/internal/domain"
	"github.com/nikolayk812/jewelry-storefront/internal/port"
	"go.uber.org/zap"
)

type Op string

const (
	OpAdd    Op = "add"
	OpUpdate Op = "update"
	OpRemove Op = "remove"
)

// MirrorResult describes one finished remote call.
type MirrorResult struct {
	Op        Op
	ProductID string
	Quantity  int
	Err       error
}

type Option func(*Synchronizer)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Synchronizer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithOnChange registers an observer called with a snapshot after every local transition.
func WithOnChange(fn func(domain.Cart)) Option {
	return func(s *Synchronizer) {
		s.onChange = fn
	}
}

// WithOnMirror registers an observer called from the mirroring goroutine.
func WithOnMirror(fn func(MirrorResult)) Option {
	return func(s *Synchronizer) {
		s.onMirror = fn
	}
}

type Synchronizer struct {
	api      port.CartAPI
	logger   *zap.Logger
	onChange func(domain.Cart)
	onMirror func(MirrorResult)

	mu   sync.Mutex
	cart domain.Cart

	inflight sync.WaitGroup
}

func New(api port.CartAPI, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		api:    api,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Add mirrors a quantity-1 add and increments or inserts the item locally.
func (s *Synchronizer) Add(ctx context.Context, p domain.Product) {
	s.mirror(ctx, OpAdd, p.ID, 1, func(ctx context.Context) error {
		return s.api.AddToCart(ctx, p.ID, 1)
	})

	s.apply(func(cart *domain.Cart) {
		cart.Add(p)
	})
}

// UpdateQuantity mirrors the update and sets the local quantity as given.
// Callers clamp the quantity; no validation happens here.
func (s *Synchronizer) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	s.mirror(ctx, OpUpdate, productID, quantity, func(ctx context.Context) error {
		return s.api.UpdateCartItem(ctx, productID, quantity)
	})

	s.apply(func(cart *domain.Cart) {
		cart.SetQuantity(productID, quantity)
	})
}

// Remove mirrors the removal and deletes the local item.
func (s *Synchronizer) Remove(ctx context.Context, productID string) {
	s.mirror(ctx, OpRemove, productID, 0, func(ctx context.Context) error {
		return s.api.RemoveFromCart(ctx, productID)
	})

	s.apply(func(cart *domain.Cart) {
		cart.Remove(productID)
	})
}

func (s *Synchronizer) Cart() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Clone()
}

func (s *Synchronizer) Summary(policy domain.ShippingPolicy) domain.CartSummary {
	return s.Cart().Summary(policy)
}

// Wait blocks until every dispatched remote call has returned.
func (s *Synchronizer) Wait() {
	s.inflight.Wait()
}

// Drift compares the local cart with the server cart. Local state is left
// untouched; the caller decides what to do with the differences.
func (s *Synchronizer) Drift(ctx context.Context) ([]domain.CartDrift, error) {
	lines, err := s.api.GetCart(ctx)
	if err != nil {
		return nil, fmt.Errorf("api.GetCart: %w", err)
	}

	remote := make(map[string]int, len(lines))
	for _, line := range lines {
		remote[line.ProductID] += line.Quantity
	}

	var drifts []domain.CartDrift

	local := s.Cart()
	for _, item := range local.Items {
		remoteQty := remote[item.Product.ID]
		delete(remote, item.Product.ID)

		if remoteQty != item.Quantity {
			drifts = append(drifts, domain.CartDrift{
				ProductID:      item.Product.ID,
				LocalQuantity:  item.Quantity,
				RemoteQuantity: remoteQty,
			})
		}
	}

	for _, line := range lines {
		qty, ok := remote[line.ProductID]
		if !ok {
			continue
		}
		delete(remote, line.ProductID)

		drifts = append(drifts, domain.CartDrift{
			ProductID:      line.ProductID,
			RemoteQuantity: qty,
		})
	}

	return drifts, nil
}

func (s *Synchronizer) apply(fn func(cart *domain.Cart)) {
	s.mu.Lock()
	fn(&s.cart)
	snapshot := s.cart.Clone()
	s.mu.Unlock()

	if s.onChange != nil {
		s.onChange(snapshot)
	}
}

// mirror dispatches call without waiting for it. The call outlives the
// caller's cancellation so a finished UI action still reaches the server.
func (s *Synchronizer) mirror(ctx context.Context, op Op, productID string, quantity int, call func(context.Context) error) {
	ctx = context.WithoutCancel(ctx)

	s.inflight.Go(func() {
		err := call(ctx)

		if err != nil {
			s.logger.Warn("cart mirror failed",
				zap.String("op", string(op)),
				zap.String("product_id", productID),
				zap.Int("quantity", quantity),
				zap.Error(err))
		} else {
			s.logger.Debug("cart mirrored",
				zap.String("op", string(op)),
				zap.String("product_id", productID),
				zap.Int("quantity", quantity))
		}

		if s.onMirror != nil {
			s.onMirror(MirrorResult{Op: op, ProductID: productID, Quantity: quantity, Err: err})
		}
	})
}
