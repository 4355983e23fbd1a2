package repository_test

import (
	"regexp"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/nikolayk812/jewelry-storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderIDPattern = regexp.MustCompile(`^ORD-\d{8}-\d{6}-[0-9a-f]{8}$`)

func (suite *repositorySuite) TestPlaceOrder() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	products := suite.insertProducts(2)
	ownerID := gofakeit.UUID()
	otherOwnerID := gofakeit.UUID()

	for _, p := range products {
		_, err := suite.carts.AddItem(ctx, ownerID, p.ID, 2)
		require.NoError(t, err)
	}
	_, err := suite.carts.AddItem(ctx, otherOwnerID, products[0].ID, 1)
	require.NoError(t, err)

	order := domain.Order{
		Items: []domain.LineItem{
			lineItem(products[0], 2),
			lineItem(products[1], 2),
		},
		ShippingAddress: &domain.Address{
			Street:  gofakeit.Street(),
			City:    gofakeit.City(),
			State:   gofakeit.State(),
			ZipCode: gofakeit.Zip(),
			Country: gofakeit.Country(),
		},
	}

	placed, err := suite.orders.PlaceOrder(ctx, ownerID, order)
	require.NoError(t, err)

	assert.Regexp(t, orderIDPattern, placed.OrderID)
	assert.Equal(t, domain.OrderStatusCompleted, placed.Status)
	assert.NotZero(t, placed.ID)
	assert.False(t, placed.CreatedAt.IsZero())

	wantTotal := order.Items[0].Total.Add(order.Items[1].Total)
	assert.True(t, wantTotal.Equal(placed.TotalAmount), "total is the sum of line totals")

	cart, err := suite.carts.GetCart(ctx, ownerID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items, "purchase clears the cart")

	other, err := suite.carts.GetCart(ctx, otherOwnerID)
	require.NoError(t, err)
	assert.Len(t, other.Items, 1, "other sessions are untouched")

	orders, err := suite.orders.ListOrders(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	diff := cmp.Diff(placed, orders[0], cmpopts.EquateApproxTime(0))
	assert.Empty(t, diff)
}

func (suite *repositorySuite) TestPlaceOrderValidation() {
	defer suite.deleteAll()

	tests := []struct {
		name      string
		ownerID   string
		order     domain.Order
		wantError string
	}{
		{
			name:      "empty owner ID: error",
			ownerID:   "",
			wantError: "ownerID is empty",
		},
		{
			name:      "unknown status: error",
			ownerID:   gofakeit.UUID(),
			order:     domain.Order{Status: "lost"},
			wantError: "status[lost] is not valid",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			_, err := suite.orders.PlaceOrder(t.Context(), tt.ownerID, tt.order)
			require.EqualError(t, err, tt.wantError)
		})
	}
}

func (suite *repositorySuite) TestPlaceOrderDuplicateIDRollsBack() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	products := suite.insertProducts(1)
	ownerID := gofakeit.UUID()

	first, err := suite.orders.PlaceOrder(ctx, ownerID, domain.Order{Items: []domain.LineItem{lineItem(products[0], 1)}})
	require.NoError(t, err)

	_, err = suite.carts.AddItem(ctx, ownerID, products[0].ID, 3)
	require.NoError(t, err)

	_, err = suite.orders.PlaceOrder(ctx, ownerID, domain.Order{
		OrderID: first.OrderID,
		Items:   []domain.LineItem{lineItem(products[0], 3)},
	})
	require.Error(t, err)

	cart, err := suite.carts.GetCart(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1, "failed order keeps the cart")
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func (suite *repositorySuite) TestListOrdersNewestFirst() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	products := suite.insertProducts(1)
	ownerID := gofakeit.UUID()

	var ids []string
	for range 3 {
		placed, err := suite.orders.PlaceOrder(ctx, ownerID, domain.Order{
			Items: []domain.LineItem{lineItem(products[0], gofakeit.IntRange(1, 5))},
		})
		require.NoError(t, err)
		ids = append([]string{placed.OrderID}, ids...)
	}

	orders, err := suite.orders.ListOrders(ctx, ownerID)
	require.NoError(t, err)

	var got []string
	for _, o := range orders {
		got = append(got, o.OrderID)
	}
	assert.Equal(t, ids, got)

	none, err := suite.orders.ListOrders(ctx, gofakeit.UUID())
	require.NoError(t, err)
	assert.Empty(t, none)
}

func lineItem(p domain.Product, quantity int) domain.LineItem {
	return domain.LineItem{
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    quantity,
		Price:       p.Price.Amount,
		Total:       p.Price.Amount.Mul(decimal.NewFromInt(int64(quantity))),
	}
}
