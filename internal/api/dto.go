package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nikolayk812/jewelry-storefront/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// TimestampLayout is the purchase timestamp format, millisecond ISO-8601 in UTC.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// ID is a product identifier that decodes from a JSON string or number.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id[%s] is neither string nor number", b)
	}
	*id = ID(n.String())
	return nil
}

// Envelope is common to every response body.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type Product struct {
	ID          ID          `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       json.Number `json:"price"`
	Material    string      `json:"material"`
	Category    string      `json:"category"`
	ImageURL    string      `json:"imageUrl"`
	InStock     bool        `json:"inStock"`
	Featured    bool        `json:"featured"`
}

type ProductsResponse struct {
	Envelope
	Products []Product `json:"products"`
}

type CartItemRequest struct {
	ProductID ID  `json:"productId"`
	Quantity  int `json:"quantity"`
}

type CartRemoveRequest struct {
	ProductID ID `json:"productId"`
}

type CartMutationResponse struct {
	Envelope
	ProductID ID  `json:"productId"`
	Quantity  int `json:"quantity,omitempty"`
}

type CartLine struct {
	ProductID ID  `json:"productId"`
	Quantity  int `json:"quantity"`
}

type CartResponse struct {
	Envelope
	Cart       []CartLine `json:"cart"`
	TotalItems int        `json:"totalItems"`
}

type LineItem struct {
	ProductID   ID          `json:"productId"`
	ProductName string      `json:"productName"`
	Quantity    int         `json:"quantity"`
	Price       json.Number `json:"price"`
	Total       json.Number `json:"total"`
}

type PurchaseRequest struct {
	Items     []LineItem `json:"items"`
	Timestamp string     `json:"timestamp"`
}

type PurchaseResponse struct {
	Envelope
	OrderID        string `json:"orderId"`
	ItemsPurchased int    `json:"itemsPurchased"`
	Timestamp      string `json:"timestamp"`
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

type Order struct {
	ID              int64       `json:"id"`
	OrderID         string      `json:"order_id"`
	Items           []LineItem  `json:"items"`
	TotalAmount     json.Number `json:"total_amount"`
	Status          string      `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	ShippingAddress *Address    `json:"shipping_address,omitempty"`
}

type OrdersResponse struct {
	Envelope
	Orders []Order `json:"orders"`
}

type Profile struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	ZipCode     string  `json:"zip_code"`
	Country     string  `json:"country"`
	DateOfBirth *string `json:"date_of_birth"`
}

type ProfileResponse struct {
	Envelope
	Profile Profile `json:"profile"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type ContactResponse struct {
	Envelope
	Data ContactRequest `json:"data"`
}

func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// ParseNumber converts a JSON number into a decimal; an empty number is zero.
func ParseNumber(n json.Number) (decimal.Decimal, error) {
	if n == "" {
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("decimal.NewFromString: %w", err)
	}
	return d, nil
}

func FromProduct(p domain.Product) Product {
	return Product{
		ID:          ID(p.ID),
		Name:        p.Name,
		Description: p.Description,
		Price:       number(p.Price.Amount),
		Material:    p.Material,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		InStock:     p.InStock,
		Featured:    p.Featured,
	}
}

func (p Product) ToDomain(unit currency.Unit) (domain.Product, error) {
	price, err := ParseNumber(p.Price)
	if err != nil {
		return domain.Product{}, fmt.Errorf("product[%s] price: %w", p.ID, err)
	}

	return domain.Product{
		ID:          string(p.ID),
		Name:        p.Name,
		Description: p.Description,
		Price:       domain.NewMoney(price, unit),
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		Material:    p.Material,
		InStock:     p.InStock,
		Featured:    p.Featured,
	}, nil
}

func FromLineItem(item domain.LineItem) LineItem {
	return LineItem{
		ProductID:   ID(item.ProductID),
		ProductName: item.ProductName,
		Quantity:    item.Quantity,
		Price:       number(item.Price),
		Total:       number(item.Total),
	}
}

func (l LineItem) ToDomain() (domain.LineItem, error) {
	price, err := ParseNumber(l.Price)
	if err != nil {
		return domain.LineItem{}, fmt.Errorf("line[%s] price: %w", l.ProductID, err)
	}

	total, err := ParseNumber(l.Total)
	if err != nil {
		return domain.LineItem{}, fmt.Errorf("line[%s] total: %w", l.ProductID, err)
	}

	return domain.LineItem{
		ProductID:   string(l.ProductID),
		ProductName: l.ProductName,
		Quantity:    l.Quantity,
		Price:       price,
		Total:       total,
	}, nil
}

func FromPurchase(p domain.Purchase) PurchaseRequest {
	items := make([]LineItem, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, FromLineItem(item))
	}

	return PurchaseRequest{
		Items:     items,
		Timestamp: p.Timestamp.UTC().Format(TimestampLayout),
	}
}

func (r PurchaseRequest) ToDomain() (domain.Purchase, error) {
	purchase := domain.Purchase{
		Items: make([]domain.LineItem, 0, len(r.Items)),
	}

	for _, dto := range r.Items {
		item, err := dto.ToDomain()
		if err != nil {
			return domain.Purchase{}, err
		}
		purchase.Items = append(purchase.Items, item)
	}

	if r.Timestamp != "" {
		ts, err := time.Parse(time.RFC3339Nano, r.Timestamp)
		if err != nil {
			return domain.Purchase{}, fmt.Errorf("timestamp[%s] is not valid: %w", r.Timestamp, err)
		}
		purchase.Timestamp = ts
	}

	return purchase, nil
}

func FromOrder(o domain.Order) Order {
	items := make([]LineItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, FromLineItem(item))
	}

	dto := Order{
		ID:          o.ID,
		OrderID:     o.OrderID,
		Items:       items,
		TotalAmount: number(o.TotalAmount),
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
	}

	if a := o.ShippingAddress; a != nil {
		dto.ShippingAddress = &Address{
			Street:  a.Street,
			City:    a.City,
			State:   a.State,
			ZipCode: a.ZipCode,
			Country: a.Country,
		}
	}

	return dto
}

func (o Order) ToDomain() (domain.Order, error) {
	total, err := ParseNumber(o.TotalAmount)
	if err != nil {
		return domain.Order{}, fmt.Errorf("order[%s] total: %w", o.OrderID, err)
	}

	order := domain.Order{
		ID:          o.ID,
		OrderID:     o.OrderID,
		Items:       make([]domain.LineItem, 0, len(o.Items)),
		TotalAmount: total,
		Status:      domain.OrderStatus(o.Status),
		CreatedAt:   o.CreatedAt,
	}

	for _, dto := range o.Items {
		item, err := dto.ToDomain()
		if err != nil {
			return domain.Order{}, fmt.Errorf("order[%s]: %w", o.OrderID, err)
		}
		order.Items = append(order.Items, item)
	}

	if a := o.ShippingAddress; a != nil {
		order.ShippingAddress = &domain.Address{
			Street:  a.Street,
			City:    a.City,
			State:   a.State,
			ZipCode: a.ZipCode,
			Country: a.Country,
		}
	}

	return order, nil
}

func FromProfile(p domain.Profile) Profile {
	return Profile(p)
}

func (p Profile) ToDomain() domain.Profile {
	return domain.Profile(p)
}

func FromContact(m domain.ContactMessage) ContactRequest {
	return ContactRequest(m)
}

func (r ContactRequest) ToDomain() domain.ContactMessage {
	return domain.ContactMessage(r)
}
