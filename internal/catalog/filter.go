package catalog

import (
	"strings"

	"github.com/nikolayk812/jewelry-storefront/internal/domain"
	"golang.org/x/text/cases"
)

// Filter narrows products by category, then by a case-insensitive search on
// name or description. It never mutates its input.
func Filter(products []domain.Product, category, search string) []domain.Product {
	byCategory := filterByCategory(products, category)
	return filterBySearch(byCategory, search)
}

func filterByCategory(products []domain.Product, category string) []domain.Product {
	if category == "" || category == domain.CategoryAll {
		return products
	}

	var result []domain.Product
	for _, p := range products {
		if p.Category == category {
			result = append(result, p)
		}
	}
	return result
}

func filterBySearch(products []domain.Product, search string) []domain.Product {
	if search == "" {
		return products
	}

	// Caser is stateful, one per call.
	fold := cases.Fold()
	needle := fold.String(search)

	var result []domain.Product
	for _, p := range products {
		if strings.Contains(fold.String(p.Name), needle) || strings.Contains(fold.String(p.Description), needle) {
			result = append(result, p)
		}
	}
	return result
}

// Categories lists the categories present in products in first-seen order,
// prefixed with CategoryAll.
func Categories(products []domain.Product) []string {
	result := []string{domain.CategoryAll}
	seen := map[string]bool{domain.CategoryAll: true}

	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		result = append(result, p.Category)
	}
	return result
}
