package pricing

import (
	"github.com/nikolayk812/jewelry-storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// Selection is the state of an open price-customization dialog.
// It is not safe for concurrent use.
type Selection struct {
	product domain.Product
	metal   Metal
	weight  string
}

// NewSelection opens a dialog for p. An empty defaultMetal is derived from the
// product material.
func NewSelection(p domain.Product, defaultMetal Metal) *Selection {
	s := &Selection{}
	s.Reset(p, defaultMetal)
	return s
}

// Reset switches the dialog to another product and clears the weight.
func (s *Selection) Reset(p domain.Product, defaultMetal Metal) {
	s.product = p
	s.metal = defaultMetal
	if s.metal == "" {
		s.metal = MetalFor(p.Material)
	}
	s.weight = ""
}

func (s *Selection) Product() domain.Product {
	return s.product
}

func (s *Selection) Metal() Metal {
	return s.metal
}

func (s *Selection) Weight() string {
	return s.weight
}

// SetMetal changes the metal; a different metal clears the weight input.
func (s *Selection) SetMetal(m Metal) {
	if m == s.metal {
		return
	}
	s.metal = m
	s.weight = ""
}

func (s *Selection) SetWeight(input string) {
	s.weight = input
}

func (s *Selection) Price() decimal.Decimal {
	return Quote(s.metal, s.weight)
}

func (s *Selection) Confirmable() bool {
	return s.Price().IsPositive()
}

type Confirmation struct {
	// Product carries the quoted price instead of the catalog price.
	Product domain.Product
	Metal   Metal
	Grams   decimal.Decimal
	Price   decimal.Decimal
}

func (s *Selection) Confirm() (Confirmation, error) {
	grams, ok := ParseWeight(s.weight)
	if !ok {
		return Confirmation{}, ErrInvalidWeight
	}

	price := Price(s.metal, grams)
	if !price.IsPositive() {
		return Confirmation{}, ErrInvalidWeight
	}

	priced := s.product
	priced.Price = domain.NewMoney(price, s.product.Price.Currency)

	return Confirmation{
		Product: priced,
		Metal:   s.metal,
		Grams:   grams,
		Price:   price,
	}, nil
}
