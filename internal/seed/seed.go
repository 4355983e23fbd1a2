// Package seed loads the sample jewelry catalog shipped with the API server.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/nikolayk812/jewelry-storefront/internal/api"
	"github.com/nikolayk812/jewelry-storefront/internal/domain"
	"github.com/nikolayk812/jewelry-storefront/internal/port"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

//go:embed products.json
var productsJSON []byte

// Products decodes the embedded catalog, pricing it in unit.
func Products(unit currency.Unit) ([]domain.Product, error) {
	var dtos []api.Product
	if err := json.Unmarshal(productsJSON, &dtos); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	products := make([]domain.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := dto.ToDomain(unit)
		if err != nil {
			return nil, fmt.Errorf("dto.ToDomain: %w", err)
		}
		products = append(products, p)
	}

	return products, nil
}

// Load upserts the embedded catalog in file order and returns the number of
// products written. Existing products with the same id are overwritten.
func Load(ctx context.Context, repo port.ProductRepository, unit currency.Unit, logger *zap.Logger) (int, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	products, err := Products(unit)
	if err != nil {
		return 0, fmt.Errorf("Products: %w", err)
	}

	for _, p := range products {
		if err := repo.UpsertProduct(ctx, p); err != nil {
			return 0, fmt.Errorf("repo.UpsertProduct[%s]: %w", p.ID, err)
		}
		logger.Debug("product seeded", zap.String("product_id", p.ID), zap.String("name", p.Name))
	}

	logger.Info("catalog seeded", zap.Int("products", len(products)))

	return len(products), nil
}
