package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusCompleted  OrderStatus = "completed"
)

var orderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
	OrderStatusCompleted,
}

func (s OrderStatus) Valid() bool {
	return slices.Contains(orderStatuses, s)
}

// Order is owned by the server; the client only displays it.
type Order struct {
	ID              int64
	OrderID         string
	Items           []LineItem
	TotalAmount     decimal.Decimal
	Status          OrderStatus
	CreatedAt       time.Time
	ShippingAddress *Address
}

type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

// LineItem is one row of a purchase, derived from a CartItem.
type LineItem struct {
	ProductID   string
	ProductName string
	Quantity    int
	Price       decimal.Decimal
	Total       decimal.Decimal
}

type Purchase struct {
	Items     []LineItem
	Timestamp time.Time
}

// Total sums the line totals, the way the server prices an order.
func (p Purchase) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range p.Items {
		total = total.Add(item.Total)
	}
	return total
}

type PurchaseReceipt struct {
	OrderID        string
	Message        string
	ItemsPurchased int
	Timestamp      string
}

// NewOrderID formats an order number as ORD-YYYYMMDD-HHMMSS-xxxxxxxx, the
// suffix being the first eight characters of a random UUID.
func NewOrderID(at time.Time) string {
	return "ORD-" + at.Format("20060102-150405") + "-" + uuid.NewString()[:8]
}
