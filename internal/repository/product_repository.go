package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/jewelry-storefront/internal/db"
	"github.com/nikolayk812/jewelry-storefront/internal/domain"
	"github.com/nikolayk812/jewelry-storefront/internal/port"
	"golang.org/x/text/currency"
)

type productRepository struct {
	q *db.Queries
}

func NewProduct(pool *pgxpool.Pool) (port.ProductRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &productRepository{q: db.New(pool)}, nil
}

func (r *productRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.q.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListProducts: %w", err)
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		p, err := mapProductToDomain(db.GetProductRow(row))
		if err != nil {
			return nil, fmt.Errorf("mapProductToDomain: %w", err)
		}
		products = append(products, p)
	}

	return products, nil
}

func (r *productRepository) GetProduct(ctx context.Context, productID string) (domain.Product, error) {
	if productID == "" {
		return domain.Product{}, fmt.Errorf("productID is empty")
	}

	row, err := r.q.GetProduct(ctx, productID)
	if err != nil {
		return domain.Product{}, notFound("q.GetProduct", err)
	}

	p, err := mapProductToDomain(row)
	if err != nil {
		return domain.Product{}, fmt.Errorf("mapProductToDomain: %w", err)
	}

	return p, nil
}

func (r *productRepository) UpsertProduct(ctx context.Context, p domain.Product) error {
	if p.ID == "" {
		return fmt.Errorf("productID is empty")
	}

	if p.Price.Amount.IsNegative() {
		return fmt.Errorf("price[%s] is negative", p.Price.Amount)
	}

	if p.Price.Currency == (currency.Unit{}) {
		return fmt.Errorf("currency is empty")
	}

	err := r.q.UpsertProduct(ctx, db.UpsertProductParams{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		PriceAmount:   p.Price.Amount,
		PriceCurrency: p.Price.Currency.String(),
		Category:      p.Category,
		ImageUrl:      p.ImageURL,
		Material:      p.Material,
		InStock:       p.InStock,
		Featured:      p.Featured,
	})
	if err != nil {
		return fmt.Errorf("q.UpsertProduct: %w", err)
	}

	return nil
}

func mapProductToDomain(row db.GetProductRow) (domain.Product, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.Product{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	return domain.Product{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Price:       domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
		Category:    row.Category,
		ImageURL:    row.ImageUrl,
		Material:    row.Material,
		InStock:     row.InStock,
		Featured:    row.Featured,
	}, nil
}
