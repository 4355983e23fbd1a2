package repository_test

import (
	"math"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/nikolayk812/jewelry-storefront/internal/domain"
	"github.com/nikolayk812/jewelry-storefront/internal/port"
	"github.com/nikolayk812/jewelry-storefront/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func (suite *repositorySuite) TestAddItem() {
	defer suite.deleteAll()

	products := suite.insertProducts(1)
	productID := products[0].ID

	tests := []struct {
		name      string
		ownerID   string
		productID string
		quantity  int
		wantError string
		notFound  bool
	}{
		{
			name:      "add item to cart: ok",
			ownerID:   gofakeit.UUID(),
			productID: productID,
			quantity:  1,
		},
		{
			name:      "add item with empty owner ID: error",
			ownerID:   "",
			productID: productID,
			quantity:  1,
			wantError: "ownerID is empty",
		},
		{
			name:      "add item with empty product ID: error",
			ownerID:   gofakeit.UUID(),
			productID: "",
			quantity:  1,
			wantError: "productID is empty",
		},
		{
			name:      "add item with zero quantity: error",
			ownerID:   gofakeit.UUID(),
			productID: productID,
			quantity:  0,
			wantError: "quantity[0] is not positive",
		},
		{
			name:      "add item with quantity above int32: error",
			ownerID:   gofakeit.UUID(),
			productID: productID,
			quantity:  math.MaxInt32 + 1,
			wantError: "quantity[2147483648] is too large",
		},
		{
			name:      "add unknown product: not found",
			ownerID:   gofakeit.UUID(),
			productID: gofakeit.UUID(),
			quantity:  1,
			notFound:  true,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			got, err := suite.carts.AddItem(ctx, tt.ownerID, tt.productID, tt.quantity)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			if tt.notFound {
				require.ErrorIs(t, err, port.ErrNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.quantity, got)

			cart, err := suite.carts.GetCart(ctx, tt.ownerID)
			require.NoError(t, err)

			require.Len(t, cart.Items, 1)
			assertCartItem(t, domain.CartItem{Product: products[0], Quantity: tt.quantity}, cart.Items[0])
		})
	}
}

func (suite *repositorySuite) TestAddItemIncrementsQuantity() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	products := suite.insertProducts(1)
	ownerID := gofakeit.UUID()

	for want := 1; want <= 3; want++ {
		got, err := suite.carts.AddItem(ctx, ownerID, products[0].ID, 1)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	got, err := suite.carts.AddItem(ctx, ownerID, products[0].ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 8, got)

	cart, err := suite.carts.GetCart(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1, "one row per session and product")
	assert.Equal(t, 8, cart.Items[0].Quantity)
}

func (suite *repositorySuite) TestUpdateItem() {
	defer suite.deleteAll()

	products := suite.insertProducts(2)

	tests := []struct {
		name      string
		productID string
		quantity  int
		wantError string
		notFound  bool
	}{
		{
			name:      "update existing item: ok",
			productID: products[0].ID,
			quantity:  4,
		},
		{
			name:      "update item not in cart: not found",
			productID: products[1].ID,
			quantity:  2,
			notFound:  true,
		},
		{
			name:      "update with negative quantity: error",
			productID: products[0].ID,
			quantity:  -1,
			wantError: "quantity[-1] is not positive",
		},
		{
			name:      "update with quantity that would wrap to 5: error",
			productID: products[0].ID,
			quantity:  4294967301,
			wantError: "quantity[4294967301] is too large",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			ownerID := gofakeit.UUID()
			_, err := suite.carts.AddItem(ctx, ownerID, products[0].ID, 1)
			require.NoError(t, err)

			err = suite.carts.UpdateItem(ctx, ownerID, tt.productID, tt.quantity)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			if tt.notFound {
				require.ErrorIs(t, err, port.ErrNotFound)
				return
			}
			require.NoError(t, err)

			cart, err := suite.carts.GetCart(ctx, ownerID)
			require.NoError(t, err)

			item, ok := cart.Find(tt.productID)
			require.True(t, ok)
			assert.Equal(t, tt.quantity, item.Quantity)
		})
	}
}

func (suite *repositorySuite) TestDeleteItem() {
	defer suite.deleteAll()

	products := suite.insertProducts(2)

	tests := []struct {
		name        string
		ownerID     string
		productID   string
		setupItems  []string
		wantDeleted bool
		wantError   string
	}{
		{
			name:        "delete existing item: ok",
			ownerID:     gofakeit.UUID(),
			productID:   products[0].ID,
			setupItems:  []string{products[0].ID, products[1].ID},
			wantDeleted: true,
		},
		{
			name:        "delete non-existing item: not found",
			ownerID:     gofakeit.UUID(),
			productID:   products[0].ID,
			setupItems:  []string{products[1].ID},
			wantDeleted: false,
		},
		{
			name:        "delete from empty cart: not found",
			ownerID:     gofakeit.UUID(),
			productID:   products[0].ID,
			wantDeleted: false,
		},
		{
			name:      "delete with empty owner ID: error",
			ownerID:   "",
			productID: products[0].ID,
			wantError: "ownerID is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			for _, productID := range tt.setupItems {
				_, err := suite.carts.AddItem(ctx, tt.ownerID, productID, 1)
				require.NoError(t, err)
			}

			deleted, err := suite.carts.DeleteItem(ctx, tt.ownerID, tt.productID)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDeleted, deleted)

			cart, err := suite.carts.GetCart(ctx, tt.ownerID)
			require.NoError(t, err)
			_, present := cart.Find(tt.productID)
			assert.False(t, present)
		})
	}
}

func (suite *repositorySuite) TestGetCart() {
	defer suite.deleteAll()

	products := suite.insertProducts(3)

	tests := []struct {
		name       string
		ownerID    string
		setupItems []domain.Product
		wantError  string
	}{
		{
			name:       "get cart with items: ok",
			ownerID:    gofakeit.UUID(),
			setupItems: products,
		},
		{
			name:       "get empty cart: ok",
			ownerID:    gofakeit.UUID(),
			setupItems: []domain.Product{},
		},
		{
			name:      "get cart with empty owner ID: error",
			ownerID:   "",
			wantError: "ownerID is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			for _, p := range tt.setupItems {
				_, err := suite.carts.AddItem(ctx, tt.ownerID, p.ID, 1)
				require.NoError(t, err)
			}

			cart, err := suite.carts.GetCart(ctx, tt.ownerID)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.ownerID, cart.OwnerID)
			require.Len(t, cart.Items, len(tt.setupItems))

			for i, p := range tt.setupItems {
				assertCartItem(t, domain.CartItem{Product: p, Quantity: 1}, cart.Items[i])
			}
		})
	}
}

func (suite *repositorySuite) TestCartWithTxRollback() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	products := suite.insertProducts(1)
	ownerID := gofakeit.UUID()

	tx, err := suite.pool.Begin(ctx)
	require.NoError(t, err)

	txCarts := repository.NewCartWithTx(tx)
	_, err = txCarts.AddItem(ctx, ownerID, products[0].ID, 2)
	require.NoError(t, err)

	inside, err := txCarts.GetCart(ctx, ownerID)
	require.NoError(t, err)
	assert.Len(t, inside.Items, 1)

	require.NoError(t, tx.Rollback(ctx))

	outside, err := suite.carts.GetCart(ctx, ownerID)
	require.NoError(t, err)
	assert.Empty(t, outside.Items)
}

func assertCartItem(t *testing.T, expected, actual domain.CartItem) {
	t.Helper()

	currencyComparer := cmp.Comparer(func(x, y currency.Unit) bool {
		return x.String() == y.String()
	})

	opts := cmp.Options{
		cmpopts.IgnoreFields(domain.CartItem{}, "CreatedAt"),
		currencyComparer,
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)

	assert.False(t, actual.CreatedAt.IsZero())
}
