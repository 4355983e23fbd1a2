package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/jewelry-storefront/internal/db"
	"github.com/nikolayk812/jewelry-storefront/internal/domain"
	"github.com/nikolayk812/jewelry-storefront/internal/port"
	"github.com/shopspring/decimal"
)

type orderRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
	now  func() time.Time
}

func NewOrder(pool *pgxpool.Pool) (port.OrderRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &orderRepository{
		q:    db.New(pool),
		pool: pool,
		now:  time.Now,
	}, nil
}

func NewOrderWithTx(tx pgx.Tx) port.OrderRepository {
	return &orderRepository{
		q:   db.New(tx),
		now: time.Now,
	}
}

// lineItemRecord is the JSONB shape of one order line.
type lineItemRecord struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
}

type addressRecord struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

// PlaceOrder stores the order and clears the owner's cart atomically. An empty
// OrderID is generated, an empty status becomes completed and the total is
// always the sum of the line totals.
func (r *orderRepository) PlaceOrder(ctx context.Context, ownerID string, order domain.Order) (domain.Order, error) {
	if ownerID == "" {
		return domain.Order{}, fmt.Errorf("ownerID is empty")
	}

	if order.OrderID == "" {
		order.OrderID = domain.NewOrderID(r.now())
	}

	if order.Status == "" {
		order.Status = domain.OrderStatusCompleted
	}

	if !order.Status.Valid() {
		return domain.Order{}, fmt.Errorf("status[%s] is not valid", order.Status)
	}

	order.TotalAmount = domain.Purchase{Items: order.Items}.Total()

	items, err := json.Marshal(mapLineItemsToRecords(order.Items))
	if err != nil {
		return domain.Order{}, fmt.Errorf("json.Marshal: %w", err)
	}

	var address []byte
	if a := order.ShippingAddress; a != nil {
		address, err = json.Marshal(addressRecord(*a))
		if err != nil {
			return domain.Order{}, fmt.Errorf("json.Marshal: %w", err)
		}
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.Order, error) {
		row, err := q.InsertOrder(ctx, db.InsertOrderParams{
			OrderID:         order.OrderID,
			OwnerID:         ownerID,
			Items:           items,
			TotalAmount:     order.TotalAmount,
			Status:          string(order.Status),
			ShippingAddress: address,
		})
		if err != nil {
			return domain.Order{}, fmt.Errorf("q.InsertOrder: %w", err)
		}

		if _, err := q.ClearCart(ctx, ownerID); err != nil {
			return domain.Order{}, fmt.Errorf("q.ClearCart: %w", err)
		}

		order.ID = row.ID
		order.CreatedAt = row.CreatedAt

		return order, nil
	})
}

func (r *orderRepository) ListOrders(ctx context.Context, ownerID string) ([]domain.Order, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}

	rows, err := r.q.ListOrders(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("q.ListOrders: %w", err)
	}

	orders := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		order, err := mapOrderToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapOrderToDomain: %w", err)
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func mapOrderToDomain(row db.Order) (domain.Order, error) {
	var records []lineItemRecord
	if err := json.Unmarshal(row.Items, &records); err != nil {
		return domain.Order{}, fmt.Errorf("order[%s] items: %w", row.OrderID, err)
	}

	order := domain.Order{
		ID:          row.ID,
		OrderID:     row.OrderID,
		Items:       make([]domain.LineItem, 0, len(records)),
		TotalAmount: row.TotalAmount,
		Status:      domain.OrderStatus(row.Status),
		CreatedAt:   row.CreatedAt,
	}

	for _, rec := range records {
		order.Items = append(order.Items, domain.LineItem(rec))
	}

	if len(row.ShippingAddress) > 0 {
		var address addressRecord
		if err := json.Unmarshal(row.ShippingAddress, &address); err != nil {
			return domain.Order{}, fmt.Errorf("order[%s] shipping address: %w", row.OrderID, err)
		}
		shipping := domain.Address(address)
		order.ShippingAddress = &shipping
	}

	return order, nil
}

func mapLineItemsToRecords(items []domain.LineItem) []lineItemRecord {
	records := make([]lineItemRecord, 0, len(items))
	for _, item := range items {
		records = append(records, lineItemRecord(item))
	}
	return records
}
