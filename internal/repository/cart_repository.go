package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/jewelry-storefront/internal/db"
	"github.com/nikolayk812/jewelry-storefront/internal/domain"
	"github.com/nikolayk812/jewelry-storefront/internal/port"
	"golang.org/x/text/currency"
)

type cartRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewCart(pool *pgxpool.Pool) (port.CartRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &cartRepository{
		q:    db.New(pool),
		pool: pool,
	}, nil
}

func NewCartWithTx(tx pgx.Tx) port.CartRepository {
	return &cartRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *cartRepository) GetCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, fmt.Errorf("ownerID is empty")
	}

	dbCartItems, err := r.q.GetCart(ctx, ownerID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("q.GetCart: %w", err)
	}

	items, err := mapGetCartRowsToDomain(dbCartItems)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("mapGetCartRowsToDomain: %w", err)
	}

	return domain.Cart{
		OwnerID: ownerID,
		Items:   items,
	}, nil
}

// AddItem inserts the item or increments its quantity and returns the new quantity.
func (r *cartRepository) AddItem(ctx context.Context, ownerID, productID string, quantity int) (int, error) {
	if err := validateItem(ownerID, productID, quantity); err != nil {
		return 0, err
	}

	total, err := r.q.AddItem(ctx, db.AddItemParams{
		OwnerID:   ownerID,
		ProductID: productID,
		Quantity:  int32(quantity),
	})
	if err != nil {
		return 0, notFound("q.AddItem", err)
	}

	return int(total), nil
}

func (r *cartRepository) UpdateItem(ctx context.Context, ownerID, productID string, quantity int) error {
	if err := validateItem(ownerID, productID, quantity); err != nil {
		return err
	}

	rowsAffected, err := r.q.UpdateItem(ctx, db.UpdateItemParams{
		OwnerID:   ownerID,
		ProductID: productID,
		Quantity:  int32(quantity),
	})
	if err != nil {
		return fmt.Errorf("q.UpdateItem: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("q.UpdateItem: %w", port.ErrNotFound)
	}

	return nil
}

func (r *cartRepository) DeleteItem(ctx context.Context, ownerID, productID string) (bool, error) {
	if ownerID == "" {
		return false, fmt.Errorf("ownerID is empty")
	}

	rowsAffected, err := r.q.DeleteItem(ctx, db.DeleteItemParams{
		OwnerID:   ownerID,
		ProductID: productID,
	})
	if err != nil {
		return false, fmt.Errorf("q.DeleteItem: %w", err)
	}

	return rowsAffected > 0, nil
}

func validateItem(ownerID, productID string, quantity int) error {
	if ownerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	if productID == "" {
		return fmt.Errorf("productID is empty")
	}

	if quantity < 1 {
		return fmt.Errorf("quantity[%d] is not positive", quantity)
	}

	if quantity > domain.MaxQuantity {
		return fmt.Errorf("quantity[%d] is too large", quantity)
	}

	return nil
}

func mapGetCartRowToDomain(row db.GetCartRow) (domain.CartItem, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	return domain.CartItem{
		Product: domain.Product{
			ID:          row.ProductID,
			Name:        row.Name,
			Description: row.Description,
			Price:       domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
			Category:    row.Category,
			ImageURL:    row.ImageUrl,
			Material:    row.Material,
			InStock:     row.InStock,
			Featured:    row.Featured,
		},
		Quantity:  int(row.Quantity),
		CreatedAt: row.CreatedAt,
	}, nil
}

func mapGetCartRowsToDomain(rows []db.GetCartRow) ([]domain.CartItem, error) {
	var items []domain.CartItem

	for _, row := range rows {
		item, err := mapGetCartRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapGetCartRowToDomain: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}
