package storefront

import (
	"github.com/nikolayk812/jewelry-storefront/internal/catalog"
	"github.com/nikolayk812/jewelry-storefront/internal/domain"
	"github.com/nikolayk812/jewelry-storefront/internal/pricing"
	"github.com/shopspring/decimal"
)

type View int

const (
	ViewHome View = iota
	ViewOrders
	ViewProfile
)

func (v View) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewOrders:
		return "orders"
	case ViewProfile:
		return "profile"
	default:
		return "unknown"
	}
}

// PricingView is the read-only state of the open price-customization dialog.
type PricingView struct {
	Product     domain.Product
	Metal       pricing.Metal
	Weight      string
	Price       decimal.Decimal
	Confirmable bool
}

// State is a snapshot for rendering. Mutating it has no effect on the controller.
type State struct {
	View View

	Listing    catalog.Listing
	Categories []string

	Cart              domain.Cart
	Summary           domain.CartSummary
	CheckoutAvailable bool

	ProductDetail *domain.Product
	Pricing       *PricingView
	CartOpen      bool
	AuthOpen      bool

	Orders        []domain.Order
	OrdersLoading bool

	Profile        domain.Profile
	ProfileLoading bool

	ScrollCue bool
}
