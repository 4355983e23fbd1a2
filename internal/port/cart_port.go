package port

import (
	"context"
	"errors"

	"github.com/nikolayk812/jewelry-storefront/internal/domain"
)

var ErrNotFound = errors.New("not found")

// CartRepository stores carts keyed by the owner session.
type CartRepository interface {
	GetCart(ctx context.Context, ownerID string) (domain.Cart, error)
	AddItem(ctx context.Context, ownerID, productID string, quantity int) (int, error)
	UpdateItem(ctx context.Context, ownerID, productID string, quantity int) error
	DeleteItem(ctx context.Context, ownerID, productID string) (bool, error)
}

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, productID string) (domain.Product, error)
	UpsertProduct(ctx context.Context, product domain.Product) error
}

// OrderRepository places orders and clears the owner's cart in one transaction.
type OrderRepository interface {
	PlaceOrder(ctx context.Context, ownerID string, order domain.Order) (domain.Order, error)
	ListOrders(ctx context.Context, ownerID string) ([]domain.Order, error)
}

type ProfileRepository interface {
	GetProfile(ctx context.Context, ownerID string) (domain.Profile, error)
	SaveProfile(ctx context.Context, ownerID string, profile domain.Profile) (domain.Profile, error)
}

type ContactRepository interface {
	SaveMessage(ctx context.Context, msg domain.ContactMessage) error
}
