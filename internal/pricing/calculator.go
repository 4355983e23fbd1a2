// Package pricing quotes weight-based prices for gold and silver pieces.
package pricing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Metal string

const (
	MetalGold   Metal = "gold"
	MetalSilver Metal = "silver"
)

var (
	GoldRatePerGram   = decimal.NewFromInt(12117) // 24k
	SilverRatePerGram = decimal.NewFromInt(185)
)

var ErrInvalidWeight = errors.New("weight must be a positive number")

func ParseMetal(s string) (Metal, error) {
	switch Metal(strings.ToLower(strings.TrimSpace(s))) {
	case MetalGold:
		return MetalGold, nil
	case MetalSilver:
		return MetalSilver, nil
	default:
		return "", fmt.Errorf("metal[%s] is not valid", s)
	}
}

// Rate returns the per-gram rate. Unknown metals have a zero rate.
func (m Metal) Rate() decimal.Decimal {
	switch m {
	case MetalGold:
		return GoldRatePerGram
	case MetalSilver:
		return SilverRatePerGram
	default:
		return decimal.Zero
	}
}

// MetalFor guesses the metal from a product material description.
func MetalFor(material string) Metal {
	if strings.Contains(strings.ToLower(material), string(MetalGold)) {
		return MetalGold
	}
	return MetalSilver
}

// ParseWeight accepts a positive decimal number of grams.
func ParseWeight(s string) (decimal.Decimal, bool) {
	grams, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || !grams.IsPositive() {
		return decimal.Zero, false
	}
	return grams, true
}

// Price is round(grams × rate), or zero for a non-positive weight.
func Price(metal Metal, grams decimal.Decimal) decimal.Decimal {
	if !grams.IsPositive() {
		return decimal.Zero
	}
	return grams.Mul(metal.Rate()).Round(0)
}

// Quote prices raw weight input; anything unparsable quotes zero.
func Quote(metal Metal, input string) decimal.Decimal {
	grams, ok := ParseWeight(input)
	if !ok {
		return decimal.Zero
	}
	return Price(metal, grams)
}
