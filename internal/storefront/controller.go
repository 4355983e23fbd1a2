// Package storefront is the page controller of the jewelry storefront client.
// It owns the current view and overlays and routes user actions to the
// catalog, cart, checkout and account collaborators.
package storefront

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/nikolayk812/jewelry-storefront/internal/cartsync"
	"github.com/nikolayk812/jewelry-storefront/internal/catalog"
	"github.com/nikolayk812/jewelry-storefront/internal/checkout"
	"github.com/nikolayk812/jewelry-storefront/internal/domain"
	"github.com/nikolayk812/jewelry-storefront/internal/port"
	"github.com/nikolayk812/jewelry-storefront/internal/pricing"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

const (
	msgPurchaseSucceeded = "Purchase successful! Order ID: %s"
	msgCheckoutFailed    = "Checkout failed. Please try again."
	msgProfileUpdated    = "Profile updated successfully!"
	msgProfileFailed     = "Error updating profile"
	msgContactSent       = "Thank you! Your message has been sent."
	msgContactFailed     = "Error sending message. Please try again."
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrNoPricingDialog = errors.New("pricing dialog is not open")
)

type Option func(*Controller)

func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithNotifier(notifier port.Notifier) Option {
	return func(c *Controller) {
		if notifier != nil {
			c.notifier = notifier
		}
	}
}

func WithShippingPolicy(policy domain.ShippingPolicy) Option {
	return func(c *Controller) {
		c.policy = policy
	}
}

// WithCurrency sets the currency an empty cart summary is shown in.
func WithCurrency(unit currency.Unit) Option {
	return func(c *Controller) {
		c.policy.Currency = unit
	}
}

// WithDefaultMetal preselects the metal of every pricing dialog.
func WithDefaultMetal(m pricing.Metal) Option {
	return func(c *Controller) {
		c.defaultMetal = m
	}
}

type Controller struct {
	api          port.StorefrontAPI
	logger       *zap.Logger
	notifier     port.Notifier
	policy       domain.ShippingPolicy
	defaultMetal pricing.Metal

	catalog  *catalog.Accessor
	cart     *cartsync.Synchronizer
	checkout *checkout.Orchestrator

	mu             sync.Mutex
	view           View
	detail         *domain.Product
	pricing        *pricing.Selection
	cartOpen       bool
	authOpen       bool
	orders         []domain.Order
	ordersLoading  bool
	profile        domain.Profile
	profileLoading bool
	scrollCue      bool
}

func New(api port.StorefrontAPI, opts ...Option) *Controller {
	c := &Controller{
		api:    api,
		logger: zap.NewNop(),
		policy: domain.DefaultShippingPolicy(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.notifier == nil {
		c.notifier = NewLogNotifier(c.logger)
	}

	c.catalog = catalog.NewAccessor(api, c.logger.Named("catalog"))
	c.cart = cartsync.New(api, cartsync.WithLogger(c.logger.Named("cart")))
	c.checkout = checkout.NewOrchestrator(api, c.logger.Named("checkout"))

	return c
}

// Start loads the catalog. A failure leaves the listing in the failed state
// and can be retried with RetryCatalog.
func (c *Controller) Start(ctx context.Context) error {
	return c.catalog.Load(ctx)
}

func (c *Controller) RetryCatalog(ctx context.Context) error {
	return c.catalog.Retry(ctx)
}

// Wait blocks until pending cart mirrors have finished.
func (c *Controller) Wait() {
	c.cart.Wait()
}

// Navigate switches the page. Orders and profile pages fetch their data on entry.
func (c *Controller) Navigate(ctx context.Context, view View) {
	c.mu.Lock()
	c.view = view
	c.mu.Unlock()

	switch view {
	case ViewOrders:
		c.loadOrders(ctx)
	case ViewProfile:
		c.loadProfile(ctx)
	}
}

func (c *Controller) Back() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.view = ViewHome
}

func (c *Controller) SetCategory(category string) {
	c.catalog.SetCategory(category)
}

// SetSearch forwards the term to the catalog and records a scroll cue when it changed.
func (c *Controller) SetSearch(term string) {
	if !c.catalog.SetSearch(term) {
		return
	}

	c.mu.Lock()
	c.scrollCue = true
	c.mu.Unlock()
}

// TakeScrollCue reports and clears a pending request to scroll to the listing.
func (c *Controller) TakeScrollCue() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	cue := c.scrollCue
	c.scrollCue = false
	return cue
}

func (c *Controller) OpenProduct(productID string) error {
	p, ok := c.catalog.Product(productID)
	if !ok {
		return fmt.Errorf("product[%s]: %w", productID, ErrProductNotFound)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.detail = &p
	return nil
}

func (c *Controller) CloseProduct() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.detail = nil
}

// OpenPricing opens the price-customization dialog for a product.
func (c *Controller) OpenPricing(productID string) error {
	p, ok := c.catalog.Product(productID)
	if !ok {
		return fmt.Errorf("product[%s]: %w", productID, ErrProductNotFound)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pricing == nil {
		c.pricing = pricing.NewSelection(p, c.defaultMetal)
	} else {
		c.pricing.Reset(p, c.defaultMetal)
	}
	return nil
}

func (c *Controller) SetPricingMetal(m pricing.Metal) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pricing == nil {
		return ErrNoPricingDialog
	}
	c.pricing.SetMetal(m)
	return nil
}

func (c *Controller) SetPricingWeight(input string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pricing == nil {
		return ErrNoPricingDialog
	}
	c.pricing.SetWeight(input)
	return nil
}

func (c *Controller) CancelPricing() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pricing = nil
}

// ConfirmPricing adds the product at the quoted price, closes the dialog and
// opens the cart drawer. An unconfirmable weight leaves the dialog open.
func (c *Controller) ConfirmPricing(ctx context.Context) error {
	c.mu.Lock()
	if c.pricing == nil {
		c.mu.Unlock()
		return ErrNoPricingDialog
	}

	confirmation, err := c.pricing.Confirm()
	if err != nil {
		c.mu.Unlock()
		return fmt.Errorf("pricing.Confirm: %w", err)
	}

	c.pricing = nil
	c.cartOpen = true
	c.mu.Unlock()

	c.logger.Debug("custom price confirmed",
		zap.String("product_id", confirmation.Product.ID),
		zap.String("metal", string(confirmation.Metal)),
		zap.Stringer("grams", confirmation.Grams),
		zap.Stringer("price", confirmation.Price))

	c.cart.Add(ctx, confirmation.Product)
	return nil
}

func (c *Controller) OpenCart() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cartOpen = true
}

func (c *Controller) CloseCart() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cartOpen = false
}

func (c *Controller) OpenAuth() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.authOpen = true
}

func (c *Controller) CloseAuth() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.authOpen = false
}

// AddToCart adds one unit of a catalog product at its list price.
func (c *Controller) AddToCart(ctx context.Context, productID string) error {
	p, ok := c.catalog.Product(productID)
	if !ok {
		return fmt.Errorf("product[%s]: %w", productID, ErrProductNotFound)
	}

	c.cart.Add(ctx, p)
	return nil
}

func (c *Controller) IncrementQuantity(ctx context.Context, productID string) {
	item, ok := c.cart.Cart().Find(productID)
	if !ok {
		return
	}

	c.cart.UpdateQuantity(ctx, productID, item.Quantity+1)
}

// DecrementQuantity never goes below one; removal is a separate action.
func (c *Controller) DecrementQuantity(ctx context.Context, productID string) {
	item, ok := c.cart.Cart().Find(productID)
	if !ok {
		return
	}

	c.cart.UpdateQuantity(ctx, productID, max(1, item.Quantity-1))
}

func (c *Controller) RemoveFromCart(ctx context.Context, productID string) {
	c.cart.Remove(ctx, productID)
}

// Checkout submits the cart. On success the drawer closes and the auth dialog
// opens; on failure the cart and drawer stay as they were.
func (c *Controller) Checkout(ctx context.Context) (domain.PurchaseReceipt, error) {
	receipt, err := c.checkout.Checkout(ctx, c.cart.Cart())
	if errors.Is(err, checkout.ErrEmptyCart) {
		return domain.PurchaseReceipt{}, err
	}
	if err != nil {
		c.notify(domain.NoticeError, msgCheckoutFailed)
		return domain.PurchaseReceipt{}, fmt.Errorf("checkout.Checkout: %w", err)
	}

	c.notify(domain.NoticeInfo, fmt.Sprintf(msgPurchaseSucceeded, receipt.OrderID))

	c.mu.Lock()
	c.cartOpen = false
	c.authOpen = true
	c.mu.Unlock()

	return receipt, nil
}

// EditProfile changes one field of the profile being edited. Nothing is sent
// until SaveProfile.
func (c *Controller) EditProfile(field domain.ProfileField, value string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.profile.Set(field, value)
}

func (c *Controller) SaveProfile(ctx context.Context) error {
	c.mu.Lock()
	profile := c.profile
	c.mu.Unlock()

	saved, err := c.api.UpdateProfile(ctx, profile)
	if err != nil {
		c.logger.Error("failed to update profile", zap.Error(err))
		c.notify(domain.NoticeError, msgProfileFailed)
		return fmt.Errorf("api.UpdateProfile: %w", err)
	}

	c.mu.Lock()
	c.profile = saved
	c.mu.Unlock()

	c.notify(domain.NoticeInfo, msgProfileUpdated)
	return nil
}

func (c *Controller) SubmitContact(ctx context.Context, msg domain.ContactMessage) error {
	if err := c.api.SubmitContact(ctx, msg); err != nil {
		c.logger.Error("failed to submit contact form", zap.Error(err))
		c.notify(domain.NoticeError, msgContactFailed)
		return fmt.Errorf("api.SubmitContact: %w", err)
	}

	c.notify(domain.NoticeInfo, msgContactSent)
	return nil
}

func (c *Controller) State() State {
	listing := c.catalog.Listing()
	categories := c.catalog.Categories()
	cart := c.cart.Cart()

	c.mu.Lock()
	defer c.mu.Unlock()

	state := State{
		View:              c.view,
		Listing:           listing,
		Categories:        categories,
		Cart:              cart,
		Summary:           cart.Summary(c.policy),
		CheckoutAvailable: !cart.IsEmpty(),
		CartOpen:          c.cartOpen,
		AuthOpen:          c.authOpen,
		Orders:            slices.Clone(c.orders),
		OrdersLoading:     c.ordersLoading,
		Profile:           c.profile,
		ProfileLoading:    c.profileLoading,
		ScrollCue:         c.scrollCue,
	}

	if dob := c.profile.DateOfBirth; dob != nil {
		copied := *dob
		state.Profile.DateOfBirth = &copied
	}

	if c.detail != nil {
		detail := *c.detail
		state.ProductDetail = &detail
	}

	if c.pricing != nil {
		state.Pricing = &PricingView{
			Product:     c.pricing.Product(),
			Metal:       c.pricing.Metal(),
			Weight:      c.pricing.Weight(),
			Price:       c.pricing.Price(),
			Confirmable: c.pricing.Confirmable(),
		}
	}

	return state
}

// loadOrders shows an empty list when the fetch fails.
func (c *Controller) loadOrders(ctx context.Context) {
	c.mu.Lock()
	c.ordersLoading = true
	c.mu.Unlock()

	orders, err := c.api.ListOrders(ctx)
	if err != nil {
		c.logger.Error("failed to fetch orders", zap.Error(err))
		orders = nil
	}

	c.mu.Lock()
	c.orders = orders
	c.ordersLoading = false
	c.mu.Unlock()
}

// loadProfile keeps the previous profile when the fetch fails.
func (c *Controller) loadProfile(ctx context.Context) {
	c.mu.Lock()
	c.profileLoading = true
	c.mu.Unlock()

	profile, err := c.api.GetProfile(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.profileLoading = false
	if err != nil {
		c.logger.Error("failed to fetch profile", zap.Error(err))
		return
	}
	c.profile = profile
}

func (c *Controller) notify(kind domain.NoticeKind, message string) {
	c.notifier.Notify(domain.Notice{Kind: kind, Message: message})
}
