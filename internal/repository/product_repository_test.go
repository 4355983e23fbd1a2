package repository_test

import (
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/nikolayk812/jewelry-storefront/internal/domain"
	"github.com/nikolayk812/jewelry-storefront/internal/port"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

var currencyComparer = cmp.Comparer(func(x, y currency.Unit) bool {
	return x.String() == y.String()
})

func (suite *repositorySuite) TestListProductsKeepsInsertionOrder() {
	defer suite.deleteAll()

	t := suite.T()

	want := suite.insertProducts(5)

	got, err := suite.products.ListProducts(t.Context())
	require.NoError(t, err)

	diff := cmp.Diff(want, got, currencyComparer)
	assert.Empty(t, diff)
}

func (suite *repositorySuite) TestGetProduct() {
	defer suite.deleteAll()

	stored := suite.insertProducts(1)[0]

	tests := []struct {
		name      string
		productID string
		want      domain.Product
		wantError string
		notFound  bool
	}{
		{
			name:      "existing product: ok",
			productID: stored.ID,
			want:      stored,
		},
		{
			name:      "unknown product: not found",
			productID: gofakeit.UUID(),
			notFound:  true,
		},
		{
			name:      "empty product ID: error",
			productID: "",
			wantError: "productID is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			got, err := suite.products.GetProduct(t.Context(), tt.productID)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			if tt.notFound {
				require.ErrorIs(t, err, port.ErrNotFound)
				return
			}
			require.NoError(t, err)

			diff := cmp.Diff(tt.want, got, currencyComparer)
			assert.Empty(t, diff)
		})
	}
}

func (suite *repositorySuite) TestUpsertProduct() {
	defer suite.deleteAll()

	tests := []struct {
		name      string
		modify    func(p *domain.Product)
		wantError string
	}{
		{
			name:   "insert: ok",
			modify: func(*domain.Product) {},
		},
		{
			name:      "empty ID: error",
			modify:    func(p *domain.Product) { p.ID = "" },
			wantError: "productID is empty",
		},
		{
			name:      "negative price: error",
			modify:    func(p *domain.Product) { p.Price.Amount = decimal.NewFromInt(-1) },
			wantError: "price[-1] is negative",
		},
		{
			name:      "missing currency: error",
			modify:    func(p *domain.Product) { p.Price.Currency = currency.Unit{} },
			wantError: "currency is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			p := randomProduct()
			tt.modify(&p)

			err := suite.products.UpsertProduct(ctx, p)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			got, err := suite.products.GetProduct(ctx, p.ID)
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(p, got, currencyComparer))
		})
	}
}

func (suite *repositorySuite) TestUpsertProductOverwrites() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	first := suite.insertProducts(2)

	updated := first[0]
	updated.Name = gofakeit.ProductName()
	updated.Price = randomMoney()
	updated.InStock = !updated.InStock
	require.NoError(t, suite.products.UpsertProduct(ctx, updated))

	got, err := suite.products.ListProducts(ctx)
	require.NoError(t, err)

	diff := cmp.Diff([]domain.Product{updated, first[1]}, got, currencyComparer)
	assert.Empty(t, diff, "upsert keeps the original position")
}
