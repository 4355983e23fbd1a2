// Package checkout turns a cart into a purchase submission.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nikolayk812/jewelry-storefront/internal/domain"
	"github.com/nikolayk812/jewelry-storefront/internal/port"
	"go.uber.org/zap"
)

var ErrEmptyCart = errors.New("cart is empty")

// BuildPurchase derives one line item per cart item, in cart order.
func BuildPurchase(cart domain.Cart, at time.Time) domain.Purchase {
	items := make([]domain.LineItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, domain.LineItem{
			ProductID:   item.Product.ID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			Price:       item.Product.Price.Amount,
			Total:       item.LineTotal().Amount,
		})
	}

	return domain.Purchase{
		Items:     items,
		Timestamp: at,
	}
}

type Orchestrator struct {
	api    port.CheckoutAPI
	logger *zap.Logger
	now    func() time.Time
}

func NewOrchestrator(api port.CheckoutAPI, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Orchestrator{
		api:    api,
		logger: logger,
		now:    time.Now,
	}
}

// Checkout submits the cart as a single purchase. The cart itself is never
// modified; clearing it is up to the caller.
func (o *Orchestrator) Checkout(ctx context.Context, cart domain.Cart) (domain.PurchaseReceipt, error) {
	if cart.IsEmpty() {
		return domain.PurchaseReceipt{}, ErrEmptyCart
	}

	purchase := BuildPurchase(cart, o.now())

	receipt, err := o.api.Purchase(ctx, purchase)
	if err != nil {
		o.logger.Error("checkout failed",
			zap.Int("items", len(purchase.Items)),
			zap.Stringer("total", purchase.Total()),
			zap.Error(err))
		return domain.PurchaseReceipt{}, fmt.Errorf("api.Purchase: %w", err)
	}

	o.logger.Info("checkout completed",
		zap.String("order_id", receipt.OrderID),
		zap.Int("items", receipt.ItemsPurchased))

	return receipt, nil
}
