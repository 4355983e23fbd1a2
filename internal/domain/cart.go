package domain

import (
	"math"
	"slices"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// MaxQuantity is the largest quantity a cart line can be stored with.
const MaxQuantity = math.MaxInt32

// Cart keeps at most one CartItem per product id, in insertion order.
type Cart struct {
	OwnerID string
	Items   []CartItem
}

type CartItem struct {
	Product  Product
	Quantity int

	CreatedAt time.Time
}

func (i CartItem) LineTotal() Money {
	return i.Product.Price.Mul(i.Quantity)
}

// Add increments the quantity of an existing item or appends a new one with
// quantity 1. It returns the resulting quantity.
func (c *Cart) Add(p Product) int {
	if idx := c.index(p.ID); idx >= 0 {
		c.Items[idx].Quantity++
		return c.Items[idx].Quantity
	}

	c.Items = append(c.Items, CartItem{Product: p, Quantity: 1})
	return 1
}

// SetQuantity overwrites the quantity of an existing item. Unknown ids are ignored.
func (c *Cart) SetQuantity(productID string, quantity int) bool {
	idx := c.index(productID)
	if idx < 0 {
		return false
	}

	c.Items[idx].Quantity = quantity
	return true
}

// Remove deletes the item for productID. Unknown ids are ignored.
func (c *Cart) Remove(productID string) bool {
	idx := c.index(productID)
	if idx < 0 {
		return false
	}

	c.Items = slices.Delete(c.Items, idx, idx+1)
	return true
}

func (c Cart) Find(productID string) (CartItem, bool) {
	idx := c.index(productID)
	if idx < 0 {
		return CartItem{}, false
	}
	return c.Items[idx], true
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c Cart) Clone() Cart {
	return Cart{
		OwnerID: c.OwnerID,
		Items:   slices.Clone(c.Items),
	}
}

func (c Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

func (c Cart) Subtotal() Money {
	subtotal := Money{Amount: decimal.Zero, Currency: c.currency()}
	for _, item := range c.Items {
		subtotal.Amount = subtotal.Amount.Add(item.LineTotal().Amount)
	}
	return subtotal
}

// Summary recomputes every derived value from the items.
func (c Cart) Summary(policy ShippingPolicy) CartSummary {
	subtotal := c.Subtotal()
	if len(c.Items) == 0 {
		subtotal.Currency = policy.Currency
	}
	shipping := Money{Amount: policy.FeeFor(subtotal.Amount), Currency: subtotal.Currency}

	return CartSummary{
		ItemCount: c.ItemCount(),
		Subtotal:  subtotal,
		Shipping:  shipping,
		Total:     Money{Amount: subtotal.Amount.Add(shipping.Amount), Currency: subtotal.Currency},
	}
}

func (c Cart) index(productID string) int {
	return slices.IndexFunc(c.Items, func(item CartItem) bool {
		return item.Product.ID == productID
	})
}

func (c Cart) currency() currency.Unit {
	if len(c.Items) == 0 {
		return currency.Unit{}
	}
	return c.Items[0].Product.Price.Currency
}

type CartSummary struct {
	ItemCount int
	Subtotal  Money
	Shipping  Money
	Total     Money
}

// ShippingPolicy charges a flat Fee unless the subtotal strictly exceeds FreeAbove.
// Currency prices the summary of an empty cart.
type ShippingPolicy struct {
	Fee       decimal.Decimal
	FreeAbove decimal.Decimal
	Currency  currency.Unit
}

func DefaultShippingPolicy() ShippingPolicy {
	return ShippingPolicy{
		Fee:       decimal.NewFromInt(25),
		FreeAbove: decimal.NewFromInt(500),
		Currency:  currency.INR,
	}
}

func (p ShippingPolicy) FeeFor(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(p.FreeAbove) {
		return decimal.Zero
	}
	return p.Fee
}

// CartDrift is a per-product difference between the local and the server cart.
type CartDrift struct {
	ProductID      string
	LocalQuantity  int
	RemoteQuantity int
}

// RemoteCartLine is a cart row as reported by the remote API.
type RemoteCartLine struct {
	ProductID string
	Quantity  int
}
