// Package api is the storefront REST contract: wire types shared by the
// HTTP server and a cookie-keeping client for it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/nikolayk812/jewelry-storefront/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

const (
	DefaultBaseURL = "http://localhost:8000/api"
	DefaultTimeout = 30 * time.Second
)

type Option func(*Client)

// WithHTTPClient replaces the underlying client. A client without a cookie
// jar gets one.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithCurrency sets the currency of decoded prices.
func WithCurrency(unit currency.Unit) Option {
	return func(c *Client) {
		c.currency = unit
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Client talks to the storefront REST API. The server keys the cart by a
// session cookie, so one Client is one shopping session.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	currency   currency.Unit
	logger     *zap.Logger
}

func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("url.ParseRequestURI: %w", err)
	}

	c := &Client{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		timeout:  DefaultTimeout,
		currency: currency.INR,
		logger:   zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}

	if c.httpClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("cookiejar.New: %w", err)
		}
		c.httpClient.Jar = jar
	}

	return c, nil
}

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var resp ProductsResponse
	if err := c.do(ctx, "ListProducts", http.MethodGet, "/products/", nil, &resp); err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(resp.Products))
	for _, dto := range resp.Products {
		p, err := dto.ToDomain(c.currency)
		if err != nil {
			return nil, payloadError("ListProducts", err)
		}
		products = append(products, p)
	}

	return products, nil
}

func (c *Client) AddToCart(ctx context.Context, productID string, quantity int) error {
	req := CartItemRequest{ProductID: ID(productID), Quantity: quantity}
	return c.do(ctx, "AddToCart", http.MethodPost, "/cart/add/", req, &CartMutationResponse{})
}

func (c *Client) UpdateCartItem(ctx context.Context, productID string, quantity int) error {
	req := CartItemRequest{ProductID: ID(productID), Quantity: quantity}
	return c.do(ctx, "UpdateCartItem", http.MethodPut, "/cart/update/", req, &CartMutationResponse{})
}

func (c *Client) RemoveFromCart(ctx context.Context, productID string) error {
	req := CartRemoveRequest{ProductID: ID(productID)}
	return c.do(ctx, "RemoveFromCart", http.MethodDelete, "/cart/remove/", req, &CartMutationResponse{})
}

func (c *Client) GetCart(ctx context.Context) ([]domain.RemoteCartLine, error) {
	var resp CartResponse
	if err := c.do(ctx, "GetCart", http.MethodGet, "/cart/", nil, &resp); err != nil {
		return nil, err
	}

	lines := make([]domain.RemoteCartLine, 0, len(resp.Cart))
	for _, line := range resp.Cart {
		lines = append(lines, domain.RemoteCartLine{
			ProductID: string(line.ProductID),
			Quantity:  line.Quantity,
		})
	}

	return lines, nil
}

func (c *Client) Purchase(ctx context.Context, purchase domain.Purchase) (domain.PurchaseReceipt, error) {
	var resp PurchaseResponse
	if err := c.do(ctx, "Purchase", http.MethodPost, "/buy/", FromPurchase(purchase), &resp); err != nil {
		return domain.PurchaseReceipt{}, err
	}

	return domain.PurchaseReceipt{
		OrderID:        resp.OrderID,
		Message:        resp.Message,
		ItemsPurchased: resp.ItemsPurchased,
		Timestamp:      resp.Timestamp,
	}, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var resp OrdersResponse
	if err := c.do(ctx, "ListOrders", http.MethodGet, "/orders/", nil, &resp); err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(resp.Orders))
	for _, dto := range resp.Orders {
		o, err := dto.ToDomain()
		if err != nil {
			return nil, payloadError("ListOrders", err)
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (c *Client) GetProfile(ctx context.Context) (domain.Profile, error) {
	var resp ProfileResponse
	if err := c.do(ctx, "GetProfile", http.MethodGet, "/profile/", nil, &resp); err != nil {
		return domain.Profile{}, err
	}

	return resp.Profile.ToDomain(), nil
}

func (c *Client) UpdateProfile(ctx context.Context, profile domain.Profile) (domain.Profile, error) {
	var resp ProfileResponse
	if err := c.do(ctx, "UpdateProfile", http.MethodPut, "/profile/update/", FromProfile(profile), &resp); err != nil {
		return domain.Profile{}, err
	}

	return resp.Profile.ToDomain(), nil
}

func (c *Client) SubmitContact(ctx context.Context, msg domain.ContactMessage) error {
	return c.do(ctx, "SubmitContact", http.MethodPost, "/contact/", FromContact(msg), &ContactResponse{})
}

// envelope is implemented by every response type through the embedded Envelope.
type envelope interface {
	envelope() Envelope
}

func (e Envelope) envelope() Envelope {
	return e
}

// do performs one JSON round trip. Every failure comes back as *Error.
func (c *Client) do(ctx context.Context, op, method, path string, in any, out envelope) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return &Error{Op: op, Kind: KindTransport, Err: fmt.Errorf("json.Marshal: %w", err)}
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &Error{Op: op, Kind: KindTransport, Err: fmt.Errorf("http.NewRequestWithContext: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			zap.String("op", op),
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return &Error{Op: op, Kind: KindTransport, Err: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("failed to close response body", zap.String("op", op), zap.Error(err))
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Op: op, Kind: KindTransport, StatusCode: resp.StatusCode, Err: fmt.Errorf("io.ReadAll: %w", err)}
	}

	c.logger.Debug("request completed",
		zap.String("op", op),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env Envelope
		_ = json.Unmarshal(respBody, &env)
		return &Error{Op: op, Kind: KindStatus, StatusCode: resp.StatusCode, Message: env.Message}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return &Error{Op: op, Kind: KindPayload, StatusCode: resp.StatusCode, Err: fmt.Errorf("json.Unmarshal: %w", err)}
	}

	if env := out.envelope(); !env.Success {
		return &Error{Op: op, Kind: KindPayload, StatusCode: resp.StatusCode, Message: env.Message}
	}

	return nil
}

func payloadError(op string, err error) error {
	return &Error{Op: op, Kind: KindPayload, Err: err}
}
