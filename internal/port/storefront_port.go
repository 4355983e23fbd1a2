package port

import (
	"context"

	"github.com/nikolayk812/jewelry-storefront/internal/domain"
)

type CatalogAPI interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

type CartAPI interface {
	AddToCart(ctx context.Context, productID string, quantity int) error
	UpdateCartItem(ctx context.Context, productID string, quantity int) error
	RemoveFromCart(ctx context.Context, productID string) error
	GetCart(ctx context.Context) ([]domain.RemoteCartLine, error)
}

type CheckoutAPI interface {
	Purchase(ctx context.Context, purchase domain.Purchase) (domain.PurchaseReceipt, error)
}

type OrderAPI interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
}

type ProfileAPI interface {
	GetProfile(ctx context.Context) (domain.Profile, error)
	UpdateProfile(ctx context.Context, profile domain.Profile) (domain.Profile, error)
}

type ContactAPI interface {
	SubmitContact(ctx context.Context, msg domain.ContactMessage) error
}

// StorefrontAPI is the remote REST collaborator of the storefront client.
type StorefrontAPI interface {
	CatalogAPI
	CartAPI
	CheckoutAPI
	OrderAPI
	ProfileAPI
	ContactAPI
}

// Notifier surfaces blocking notices to the user.
type Notifier interface {
	Notify(notice domain.Notice)
}
